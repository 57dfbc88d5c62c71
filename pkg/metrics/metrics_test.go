package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestQuoteMetrics_NilSafe(t *testing.T) {
	var m *QuoteMetrics
	m.IncCommit("created")
	m.IncResolution("ok", true)
	m.IncApproval("public", "ok")
	m.IncTransition("sent")
	m.IncExport()

	noop := NewQuoteMetrics(nil)
	noop.IncCommit("created")
	noop.IncExport()
}

func TestQuoteMetrics_Counts(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewQuoteMetrics(reg)

	m.IncResolution("ok", true)
	m.IncResolution("ok", true)
	m.IncResolution("not_found", false)
	m.IncExport()

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}

	got := map[string]float64{}
	for _, fam := range families {
		for _, metric := range fam.GetMetric() {
			got[fam.GetName()+labelKey(metric)] += metric.GetCounter().GetValue()
		}
	}

	if got["focusquote_public_resolutions_total{marked_viewed=true,outcome=ok}"] != 2 {
		t.Fatalf("unexpected resolution counters: %v", got)
	}
	if got["focusquote_public_resolutions_total{marked_viewed=false,outcome=not_found}"] != 1 {
		t.Fatalf("unexpected resolution counters: %v", got)
	}
	if got["focusquote_document_exports_total"] != 1 {
		t.Fatalf("unexpected export counter: %v", got)
	}
}

func labelKey(m *dto.Metric) string {
	if len(m.GetLabel()) == 0 {
		return ""
	}
	out := "{"
	for i, lp := range m.GetLabel() {
		if i > 0 {
			out += ","
		}
		out += lp.GetName() + "=" + lp.GetValue()
	}
	return out + "}"
}
