package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"focusquote/internal/document"
	"focusquote/internal/domain/entities"
	"focusquote/internal/domain/lifecycle"
	"focusquote/internal/usecase/interfaces"
	"focusquote/pkg/logger"
	"focusquote/pkg/metrics"
)

// PublicRef is what a public link carries: the quote id, the owner id and,
// when link signing is enabled, the token binding the two.
type PublicRef struct {
	QuoteID string
	OwnerID string
	Token   string
}

// Resolution is a quote looked up through its public link together with the
// data needed to render it.
type Resolution struct {
	Quote        entities.Quote
	Profile      entities.PhotographerProfile
	Client       entities.Client
	MarkedViewed bool
}

type PublicDocument struct {
	Resolution Resolution
	Document   document.Document
}

type PDFFile struct {
	Filename string
	Content  []byte
}

// IPublicLinkUseCase serves the unauthenticated side of a quote.
//
// Security property: without a signing secret a link is the literal pair
// (quoteId, ownerId). Anyone holding both ids can view and approve the
// quote. With a secret configured the link also carries a token and the
// bare pair is rejected.
//
// Resolving is not a pure read: a Draft or Sent quote is written back as
// Viewed.

type IPublicLinkUseCase interface {
	BuildLink(quoteID, ownerID string) (string, error)
	Resolve(ctx context.Context, ref PublicRef) (Resolution, error)
	ResolveDocument(ctx context.Context, ref PublicRef) (PublicDocument, error)
	ResolvePDF(ctx context.Context, ref PublicRef) (PDFFile, error)
	Approve(ctx context.Context, ref PublicRef) (entities.Quote, error)
}

type PublicLinkDeps struct {
	Repo     interfaces.IQuoteRepository
	Clients  interfaces.IClientDirectory
	Profiles interfaces.IProfileDirectory
	Signer   interfaces.ILinkSigner
	// BaseURL is the page that renders public quotes, e.g. https://app.example.com/.
	BaseURL  string
	Renderer document.Renderer
	Machine  *lifecycle.Machine
	Logger   *logger.Logger
	Metrics  *metrics.QuoteMetrics
}

type PublicLinkUseCase struct {
	repo     interfaces.IQuoteRepository
	clients  interfaces.IClientDirectory
	profiles interfaces.IProfileDirectory
	signer   interfaces.ILinkSigner
	baseURL  string
	renderer document.Renderer
	machine  lifecycle.Machine
	log      *logger.Logger
	metrics  *metrics.QuoteMetrics
}

var _ IPublicLinkUseCase = (*PublicLinkUseCase)(nil)

func NewPublicLinkUseCase(deps PublicLinkDeps) *PublicLinkUseCase {
	uc := &PublicLinkUseCase{
		repo:     deps.Repo,
		clients:  deps.Clients,
		profiles: deps.Profiles,
		signer:   deps.Signer,
		baseURL:  deps.BaseURL,
		renderer: deps.Renderer,
		machine:  lifecycle.Default,
		log:      deps.Logger,
		metrics:  deps.Metrics,
	}
	if deps.Machine != nil {
		uc.machine = *deps.Machine
	}
	if uc.renderer.Locale == (document.Locale{}) {
		uc.renderer.Locale = document.PtBR
	}
	if uc.log == nil {
		uc.log = logger.Nop()
	}
	return uc
}

// BuildLink returns <base>?view=public&q=<quoteId>&u=<ownerId>, plus
// &t=<token> when signing is enabled.
func (u *PublicLinkUseCase) BuildLink(quoteID, ownerID string) (string, error) {
	quoteID = strings.TrimSpace(quoteID)
	ownerID = strings.TrimSpace(ownerID)
	if quoteID == "" {
		return "", ErrInvalidQuoteID
	}
	if ownerID == "" {
		return "", ErrInvalidOwnerID
	}

	base := u.baseURL
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	link := base + sep + "view=public&q=" + url.QueryEscape(quoteID) + "&u=" + url.QueryEscape(ownerID)

	if u.signer != nil && u.signer.Enabled() {
		token, err := u.signer.Sign(quoteID, ownerID)
		if err != nil {
			return "", fmt.Errorf("sign public link: %w", err)
		}
		link += "&t=" + url.QueryEscape(token)
	}
	return link, nil
}

func (u *PublicLinkUseCase) Resolve(ctx context.Context, ref PublicRef) (Resolution, error) {
	ref = trimRef(ref)
	ctx = u.log.WithQuoteID(u.log.WithOwnerID(ctx, ref.OwnerID), ref.QuoteID)

	res, err := u.resolve(ctx, ref)
	if err != nil {
		u.metrics.IncResolution(outcomeOf(err), false)
		if !errors.Is(err, ErrNotFound) && !errors.Is(err, ErrInvalidLinkToken) {
			u.log.Error(ctx, err, "public resolution failed")
		}
		return Resolution{}, err
	}
	u.metrics.IncResolution("ok", res.MarkedViewed)
	if res.MarkedViewed {
		u.log.Info(ctx, "quote %s marked as viewed", res.Quote.Number)
	}
	return res, nil
}

func (u *PublicLinkUseCase) resolve(ctx context.Context, ref PublicRef) (Resolution, error) {
	if err := u.verify(ref); err != nil {
		return Resolution{}, err
	}

	c, err := u.repo.Load(ctx, ref.OwnerID)
	if err != nil {
		return Resolution{}, err
	}
	if !c.Exists {
		return Resolution{}, ErrOwnerDataNotFound
	}
	q, i := c.Find(ref.QuoteID)
	if i < 0 {
		return Resolution{}, ErrQuoteNotFound
	}

	profile, ok, err := u.profiles.GetProfile(ctx, ref.OwnerID)
	if err != nil {
		return Resolution{}, err
	}
	if !ok {
		return Resolution{}, ErrProfileNotFound
	}
	client, ok, err := u.clients.GetClient(ctx, ref.OwnerID, q.ClientID)
	if err != nil {
		return Resolution{}, err
	}
	if !ok {
		return Resolution{}, ErrClientNotFound
	}

	res := Resolution{Quote: q, Profile: profile, Client: client}
	if t, err := u.machine.Transition(q, lifecycle.EventView); err != nil || !t.Changed {
		return res, err
	}

	_, err = u.repo.Update(ctx, ref.OwnerID, func(c *entities.QuoteCollection) (bool, error) {
		current, i := c.Find(ref.QuoteID)
		if i < 0 {
			return false, ErrQuoteNotFound
		}
		t, err := u.machine.Transition(current, lifecycle.EventView)
		if err != nil {
			return false, err
		}
		res.Quote = t.Quote
		if !t.Changed {
			return false, nil
		}
		c.Quotes[i] = t.Quote
		res.MarkedViewed = true
		return true, nil
	})
	if err != nil {
		return Resolution{}, err
	}
	return res, nil
}

func (u *PublicLinkUseCase) ResolveDocument(ctx context.Context, ref PublicRef) (PublicDocument, error) {
	res, err := u.Resolve(ctx, ref)
	if err != nil {
		return PublicDocument{}, err
	}
	return PublicDocument{
		Resolution: res,
		Document:   u.renderer.Render(res.Quote, &res.Profile, &res.Client),
	}, nil
}

func (u *PublicLinkUseCase) ResolvePDF(ctx context.Context, ref PublicRef) (PDFFile, error) {
	pd, err := u.ResolveDocument(ctx, ref)
	if err != nil {
		return PDFFile{}, err
	}
	return exportPDF(u.renderer, pd.Document, u.metrics)
}

// Approve is idempotent: approving an approved quote succeeds without a
// write.
func (u *PublicLinkUseCase) Approve(ctx context.Context, ref PublicRef) (entities.Quote, error) {
	ref = trimRef(ref)
	ctx = u.log.WithQuoteID(u.log.WithOwnerID(ctx, ref.OwnerID), ref.QuoteID)

	if err := u.verify(ref); err != nil {
		u.metrics.IncApproval("public", outcomeOf(err))
		return entities.Quote{}, err
	}

	var (
		approved entities.Quote
		changed  bool
	)
	_, err := u.repo.Update(ctx, ref.OwnerID, func(c *entities.QuoteCollection) (bool, error) {
		if !c.Exists {
			return false, ErrOwnerDataNotFound
		}
		q, i := c.Find(ref.QuoteID)
		if i < 0 {
			return false, ErrQuoteNotFound
		}
		t, err := u.machine.Transition(q, lifecycle.EventApprove)
		if err != nil {
			return false, err
		}
		approved, changed = t.Quote, t.Changed
		if !t.Changed {
			return false, nil
		}
		c.Quotes[i] = t.Quote
		return true, nil
	})
	if err != nil {
		u.metrics.IncApproval("public", outcomeOf(err))
		if !errors.Is(err, ErrNotFound) {
			u.log.Error(ctx, err, "public approval failed")
		}
		return entities.Quote{}, err
	}

	u.metrics.IncApproval("public", "ok")
	if changed {
		u.log.Info(ctx, "quote %s approved by client", approved.Number)
	}
	return approved, nil
}

func (u *PublicLinkUseCase) verify(ref PublicRef) error {
	if ref.QuoteID == "" {
		return ErrQuoteNotFound
	}
	if ref.OwnerID == "" {
		return ErrOwnerDataNotFound
	}
	if u.signer == nil {
		return nil
	}
	if err := u.signer.Verify(ref.Token, ref.QuoteID, ref.OwnerID); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidLinkToken, err)
	}
	return nil
}

func trimRef(ref PublicRef) PublicRef {
	return PublicRef{
		QuoteID: strings.TrimSpace(ref.QuoteID),
		OwnerID: strings.TrimSpace(ref.OwnerID),
		Token:   strings.TrimSpace(ref.Token),
	}
}

func outcomeOf(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrInvalidLinkToken):
		return "invalid_token"
	default:
		return "error"
	}
}

func exportPDF(r document.Renderer, doc document.Document, m *metrics.QuoteMetrics) (PDFFile, error) {
	var buf bytes.Buffer
	if err := r.ExportPDF(doc, &buf); err != nil {
		return PDFFile{}, fmt.Errorf("export pdf: %w", err)
	}
	m.IncExport()
	return PDFFile{Filename: doc.Filename, Content: buf.Bytes()}, nil
}
