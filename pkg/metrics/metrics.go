// Package metrics holds the Prometheus collectors of the quote service.
// Every method is nil-safe so components can run without a registry.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

type QuoteMetrics struct {
	commits     *prometheus.CounterVec
	resolutions *prometheus.CounterVec
	approvals   *prometheus.CounterVec
	transitions *prometheus.CounterVec
	exports     prometheus.Counter
}

// NewQuoteMetrics registers the collectors on reg. A nil reg yields a
// no-op instance.
func NewQuoteMetrics(reg prometheus.Registerer) *QuoteMetrics {
	if reg == nil {
		return &QuoteMetrics{}
	}
	m := &QuoteMetrics{
		commits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "focusquote_quote_commits_total",
			Help: "Quote builder commits by outcome (created, updated, invalid, error).",
		}, []string{"outcome"}),
		resolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "focusquote_public_resolutions_total",
			Help: "Public link resolutions by outcome and whether the status was changed to viewed.",
		}, []string{"outcome", "marked_viewed"}),
		approvals: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "focusquote_quote_approvals_total",
			Help: "Quote approvals by channel (public, owner) and outcome.",
		}, []string{"channel", "outcome"}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "focusquote_quote_transitions_total",
			Help: "Owner-driven status transitions by target status.",
		}, []string{"to"}),
		exports: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "focusquote_document_exports_total",
			Help: "PDF documents exported.",
		}),
	}
	reg.MustRegister(m.commits, m.resolutions, m.approvals, m.transitions, m.exports)
	return m
}

func (m *QuoteMetrics) IncCommit(outcome string) {
	if m == nil || m.commits == nil {
		return
	}
	m.commits.WithLabelValues(outcome).Inc()
}

func (m *QuoteMetrics) IncResolution(outcome string, markedViewed bool) {
	if m == nil || m.resolutions == nil {
		return
	}
	m.resolutions.WithLabelValues(outcome, strconv.FormatBool(markedViewed)).Inc()
}

func (m *QuoteMetrics) IncApproval(channel, outcome string) {
	if m == nil || m.approvals == nil {
		return
	}
	m.approvals.WithLabelValues(channel, outcome).Inc()
}

func (m *QuoteMetrics) IncTransition(to string) {
	if m == nil || m.transitions == nil {
		return
	}
	m.transitions.WithLabelValues(to).Inc()
}

func (m *QuoteMetrics) IncExport() {
	if m == nil || m.exports == nil {
		return
	}
	m.exports.Inc()
}
