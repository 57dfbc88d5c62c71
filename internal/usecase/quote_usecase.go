package usecase

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"focusquote/internal/document"
	"focusquote/internal/domain/entities"
	"focusquote/internal/domain/lifecycle"
	"focusquote/internal/usecase/interfaces"
	"focusquote/pkg/logger"
	"focusquote/pkg/metrics"

	"github.com/shopspring/decimal"
)

const (
	recentQuotesLimit = 5
	goalProgressCap   = 100
)

// DefaultMonthlyGoal applies when the profile has no goal of its own.
var DefaultMonthlyGoal = decimal.NewFromInt(5000)

// ItemInput is one line of a create/update command. An empty ID, or an ID
// that is not in the stored quote, adds a new item.
type ItemInput struct {
	ID          string
	Name        string
	Description string
	UnitPrice   decimal.Decimal
	Quantity    int
	Type        entities.ItemType
}

// QuoteInput is the full editable state of a quote. Zero dates, an empty
// payment method and empty payment conditions keep the current values.
type QuoteInput struct {
	ClientID          string
	Date              time.Time
	ValidUntil        time.Time
	Items             []ItemInput
	Discount          decimal.Decimal
	ExtraFees         decimal.Decimal
	PaymentMethod     entities.PaymentMethod
	PaymentConditions string
	Notes             string
}

// ListFilter narrows List. Search matches the quote number or the client
// name (case-insensitive).
type ListFilter struct {
	Status entities.QuoteStatus
	Search string
}

type QuoteSummary struct {
	Quote      entities.Quote
	ClientName string
}

type ShareLink struct {
	PublicURL   string
	Phone       string
	Message     string
	WhatsAppURL string
}

type DashboardStats struct {
	Total         int
	Approved      int
	Pending       int
	Revenue       decimal.Decimal
	MonthRevenue  decimal.Decimal
	MonthlyGoal   decimal.Decimal
	GoalProgress  int
	GoalRemaining decimal.Decimal
	Recent        []QuoteSummary
}

// IQuoteUseCase exposes the owner-side quote operations.

type IQuoteUseCase interface {
	List(ctx context.Context, ownerID string, filter ListFilter) ([]QuoteSummary, error)
	GetByID(ctx context.Context, ownerID, quoteID string) (entities.Quote, error)
	Create(ctx context.Context, ownerID string, in QuoteInput) (CommitResult, error)
	Update(ctx context.Context, ownerID, quoteID string, in QuoteInput) (CommitResult, error)
	Delete(ctx context.Context, ownerID, quoteID string) error
	Send(ctx context.Context, ownerID, quoteID string) (entities.Quote, error)
	Approve(ctx context.Context, ownerID, quoteID string) (entities.Quote, error)
	Decline(ctx context.Context, ownerID, quoteID string) (entities.Quote, error)
	RenderDocument(ctx context.Context, ownerID, quoteID string) (document.Document, error)
	ExportPDF(ctx context.Context, ownerID, quoteID string) (PDFFile, error)
	Share(ctx context.Context, ownerID, quoteID string) (ShareLink, error)
	Dashboard(ctx context.Context, ownerID string) (DashboardStats, error)
}

type QuoteUseCaseDeps struct {
	Repo           interfaces.IQuoteRepository
	Clients        interfaces.IClientDirectory
	Profiles       interfaces.IProfileDirectory
	Links          IPublicLinkUseCase
	Renderer       document.Renderer
	Machine        *lifecycle.Machine
	Logger         *logger.Logger
	Metrics        *metrics.QuoteMetrics
	Now            func() time.Time
	BuilderOptions []BuilderOption
}

type QuoteUseCase struct {
	repo        interfaces.IQuoteRepository
	clients     interfaces.IClientDirectory
	profiles    interfaces.IProfileDirectory
	links       IPublicLinkUseCase
	renderer    document.Renderer
	machine     lifecycle.Machine
	log         *logger.Logger
	metrics     *metrics.QuoteMetrics
	now         func() time.Time
	builderOpts []BuilderOption
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(deps QuoteUseCaseDeps) *QuoteUseCase {
	uc := &QuoteUseCase{
		repo:     deps.Repo,
		clients:  deps.Clients,
		profiles: deps.Profiles,
		links:    deps.Links,
		renderer: deps.Renderer,
		machine:  lifecycle.Default,
		log:      deps.Logger,
		metrics:  deps.Metrics,
		now:      deps.Now,
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
	if uc.now == nil {
		uc.now = time.Now
	}
	uc.builderOpts = append([]BuilderOption{
		WithClock(uc.now),
		WithBuilderLogger(uc.log),
		WithBuilderMetrics(uc.metrics),
	}, deps.BuilderOptions...)
	return uc
}

func (u *QuoteUseCase) List(ctx context.Context, ownerID string, filter ListFilter) ([]QuoteSummary, error) {
	ownerID, err := requireOwner(ownerID)
	if err != nil {
		return nil, err
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, filter.Status)
	}

	c, err := u.repo.Load(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	names, err := u.clientNames(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	term := strings.ToLower(strings.TrimSpace(filter.Search))
	out := make([]QuoteSummary, 0, len(c.Quotes))
	for _, q := range c.Quotes {
		if filter.Status != "" && q.Status != filter.Status {
			continue
		}
		name := clientName(names, q.ClientID)
		if term != "" && !strings.Contains(strings.ToLower(q.Number), term) && !strings.Contains(strings.ToLower(name), term) {
			continue
		}
		out = append(out, QuoteSummary{Quote: q, ClientName: name})
	}
	return out, nil
}

func (u *QuoteUseCase) GetByID(ctx context.Context, ownerID, quoteID string) (entities.Quote, error) {
	ownerID, quoteID, err := requireIDs(ownerID, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	c, err := u.repo.Load(ctx, ownerID)
	if err != nil {
		return entities.Quote{}, err
	}
	q, i := c.Find(quoteID)
	if i < 0 {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) Create(ctx context.Context, ownerID string, in QuoteInput) (CommitResult, error) {
	b := NewQuoteBuilder(u.repo, u.builderOpts...)
	if err := applyInput(b, in); err != nil {
		return CommitResult{}, err
	}
	return b.Commit(ctx, ownerID)
}

func (u *QuoteUseCase) Update(ctx context.Context, ownerID, quoteID string, in QuoteInput) (CommitResult, error) {
	b := NewQuoteBuilder(u.repo, u.builderOpts...)
	if err := b.Edit(ctx, ownerID, quoteID); err != nil {
		return CommitResult{}, err
	}
	if err := applyInput(b, in); err != nil {
		return CommitResult{}, err
	}
	return b.Commit(ctx, ownerID)
}

// Delete removes the quote. Outstanding public links stop resolving.
func (u *QuoteUseCase) Delete(ctx context.Context, ownerID, quoteID string) error {
	ownerID, quoteID, err := requireIDs(ownerID, quoteID)
	if err != nil {
		return err
	}
	ctx = u.log.WithQuoteID(u.log.WithOwnerID(ctx, ownerID), quoteID)

	_, err = u.repo.Update(ctx, ownerID, func(c *entities.QuoteCollection) (bool, error) {
		if !c.Remove(quoteID) {
			return false, ErrQuoteNotFound
		}
		return true, nil
	})
	if err != nil {
		return err
	}
	u.log.Info(ctx, "quote deleted")
	return nil
}

func (u *QuoteUseCase) Send(ctx context.Context, ownerID, quoteID string) (entities.Quote, error) {
	return u.transition(ctx, ownerID, quoteID, lifecycle.EventSend)
}

func (u *QuoteUseCase) Approve(ctx context.Context, ownerID, quoteID string) (entities.Quote, error) {
	q, err := u.transition(ctx, ownerID, quoteID, lifecycle.EventApprove)
	if err != nil {
		u.metrics.IncApproval("owner", outcomeOf(err))
		return entities.Quote{}, err
	}
	u.metrics.IncApproval("owner", "ok")
	return q, nil
}

func (u *QuoteUseCase) Decline(ctx context.Context, ownerID, quoteID string) (entities.Quote, error) {
	return u.transition(ctx, ownerID, quoteID, lifecycle.EventDecline)
}

func (u *QuoteUseCase) transition(ctx context.Context, ownerID, quoteID string, ev lifecycle.Event) (entities.Quote, error) {
	ownerID, quoteID, err := requireIDs(ownerID, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	ctx = u.log.WithQuoteID(u.log.WithOwnerID(ctx, ownerID), quoteID)

	var t lifecycle.Transition
	_, err = u.repo.Update(ctx, ownerID, func(c *entities.QuoteCollection) (bool, error) {
		q, i := c.Find(quoteID)
		if i < 0 {
			return false, ErrQuoteNotFound
		}
		var err error
		t, err = u.machine.Transition(q, ev)
		if err != nil {
			return false, err
		}
		if !t.Changed {
			return false, nil
		}
		c.Quotes[i] = t.Quote
		return true, nil
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if t.Changed {
		u.metrics.IncTransition(string(t.To))
		u.log.Info(ctx, "quote status %s -> %s", t.From, t.To)
	}
	return t.Quote, nil
}

// RenderDocument renders the stored quote. Unlike a public resolution a
// missing client or profile does not fail; those blocks render blank.
func (u *QuoteUseCase) RenderDocument(ctx context.Context, ownerID, quoteID string) (document.Document, error) {
	q, err := u.GetByID(ctx, ownerID, quoteID)
	if err != nil {
		return document.Document{}, err
	}
	ownerID = strings.TrimSpace(ownerID)

	var profile *entities.PhotographerProfile
	p, ok, err := u.profiles.GetProfile(ctx, ownerID)
	if err != nil {
		return document.Document{}, err
	}
	if ok {
		profile = &p
	}

	var client *entities.Client
	cl, ok, err := u.clients.GetClient(ctx, ownerID, q.ClientID)
	if err != nil {
		return document.Document{}, err
	}
	if ok {
		client = &cl
	}
	return u.renderer.Render(q, profile, client), nil
}

func (u *QuoteUseCase) ExportPDF(ctx context.Context, ownerID, quoteID string) (PDFFile, error) {
	doc, err := u.RenderDocument(ctx, ownerID, quoteID)
	if err != nil {
		return PDFFile{}, err
	}
	return exportPDF(u.renderer, doc, u.metrics)
}

var nonDigits = regexp.MustCompile(`\D`)

// Share builds the public link and the WhatsApp message that carries it.
func (u *QuoteUseCase) Share(ctx context.Context, ownerID, quoteID string) (ShareLink, error) {
	q, err := u.GetByID(ctx, ownerID, quoteID)
	if err != nil {
		return ShareLink{}, err
	}
	ownerID = strings.TrimSpace(ownerID)

	client, ok, err := u.clients.GetClient(ctx, ownerID, q.ClientID)
	if err != nil {
		return ShareLink{}, err
	}
	if !ok {
		return ShareLink{}, ErrClientNotFound
	}
	phone := nonDigits.ReplaceAllString(client.Phone, "")
	if phone == "" {
		return ShareLink{}, ErrClientPhoneMissing
	}

	link, err := u.links.BuildLink(q.ID, ownerID)
	if err != nil {
		return ShareLink{}, err
	}
	msg := fmt.Sprintf(
		"Olá %s! 📸\n\nSegue meu orçamento #%s no valor de %s.\n\nVocê pode visualizar os detalhes e aprovar online através deste link:\n%s\n\nFico no aguardo!",
		client.Name, q.Number, u.renderer.Locale.Money(q.Total), link,
	)
	return ShareLink{
		PublicURL:   link,
		Phone:       phone,
		Message:     msg,
		WhatsAppURL: "https://wa.me/" + phone + "?text=" + encodeURIComponent(msg),
	}, nil
}

// Dashboard aggregates approved revenue and the monthly goal. Pending counts
// quotes still waiting on the client (draft, sent and viewed).
func (u *QuoteUseCase) Dashboard(ctx context.Context, ownerID string) (DashboardStats, error) {
	ownerID, err := requireOwner(ownerID)
	if err != nil {
		return DashboardStats{}, err
	}
	c, err := u.repo.Load(ctx, ownerID)
	if err != nil {
		return DashboardStats{}, err
	}
	names, err := u.clientNames(ctx, ownerID)
	if err != nil {
		return DashboardStats{}, err
	}
	profile, _, err := u.profiles.GetProfile(ctx, ownerID)
	if err != nil {
		return DashboardStats{}, err
	}

	now := u.now()
	stats := DashboardStats{
		Total:        len(c.Quotes),
		Revenue:      decimal.Zero,
		MonthRevenue: decimal.Zero,
		MonthlyGoal:  DefaultMonthlyGoal,
		Recent:       []QuoteSummary{},
	}
	if profile.MonthlyGoal.IsPositive() {
		stats.MonthlyGoal = profile.MonthlyGoal
	}

	for _, q := range c.Quotes {
		switch q.Status {
		case entities.QuoteStatusApproved:
			stats.Approved++
			stats.Revenue = stats.Revenue.Add(q.Total)
			if q.Date.Year() == now.Year() && q.Date.Month() == now.Month() {
				stats.MonthRevenue = stats.MonthRevenue.Add(q.Total)
			}
		case entities.QuoteStatusDraft, entities.QuoteStatusSent, entities.QuoteStatusViewed:
			stats.Pending++
		}
		if len(stats.Recent) < recentQuotesLimit {
			stats.Recent = append(stats.Recent, QuoteSummary{Quote: q, ClientName: clientName(names, q.ClientID)})
		}
	}

	progress := stats.MonthRevenue.Div(stats.MonthlyGoal).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	if progress > goalProgressCap {
		progress = goalProgressCap
	}
	if progress < 0 {
		progress = 0
	}
	stats.GoalProgress = int(progress)
	stats.GoalRemaining = decimal.Max(stats.MonthlyGoal.Sub(stats.MonthRevenue), decimal.Zero)
	return stats, nil
}

func (u *QuoteUseCase) clientNames(ctx context.Context, ownerID string) (map[string]string, error) {
	clients, err := u.clients.ListClients(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(clients))
	for _, cl := range clients {
		names[cl.ID] = cl.Name
	}
	return names, nil
}

func clientName(names map[string]string, clientID string) string {
	if n := names[clientID]; n != "" {
		return n
	}
	return document.UnknownClientName
}

// applyInput drives the builder so that its draft matches in: items missing
// from in are removed, known ids are updated in place, the rest are added,
// and the final order follows in.
func applyInput(b *QuoteBuilder, in QuoteInput) error {
	current := b.Draft()

	b.SetClient(in.ClientID)
	date, validUntil := current.Date, current.ValidUntil
	if !in.Date.IsZero() {
		date = in.Date
	}
	if !in.ValidUntil.IsZero() {
		validUntil = in.ValidUntil
	}
	b.SetDates(date, validUntil)

	keep := make(map[string]bool, len(in.Items))
	for _, it := range in.Items {
		if it.ID == "" {
			continue
		}
		if keep[it.ID] {
			return fmt.Errorf("%w: item %s appears more than once", ErrInvalidItemValue, it.ID)
		}
		keep[it.ID] = true
	}
	for _, it := range current.Items {
		if !keep[it.ID] {
			if err := b.RemoveItem(it.ID); err != nil {
				return err
			}
		}
	}

	order := make([]string, 0, len(in.Items))
	for _, it := range in.Items {
		id := it.ID
		if id == "" || b.Draft().ItemIndex(id) < 0 {
			id = b.AddItem()
		}
		if err := b.UpdateItem(id, ItemFieldName, it.Name); err != nil {
			return err
		}
		if err := b.UpdateItem(id, ItemFieldDescription, it.Description); err != nil {
			return err
		}
		if err := b.UpdateItem(id, ItemFieldUnitPrice, it.UnitPrice); err != nil {
			return err
		}
		if err := b.UpdateItem(id, ItemFieldQuantity, it.Quantity); err != nil {
			return err
		}
		if it.Type != "" {
			if err := b.UpdateItem(id, ItemFieldType, it.Type); err != nil {
				return err
			}
		}
		order = append(order, id)
	}
	if err := b.ReorderItems(order); err != nil {
		return err
	}

	method := in.PaymentMethod
	if method == "" {
		method = current.PaymentMethod
	}
	conditions := in.PaymentConditions
	if conditions == "" {
		conditions = current.PaymentConditions
	}
	return b.SetFinancials(in.Discount, in.ExtraFees, method, conditions, in.Notes)
}

func requireOwner(ownerID string) (string, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return "", ErrInvalidOwnerID
	}
	return ownerID, nil
}

func requireIDs(ownerID, quoteID string) (string, string, error) {
	ownerID, err := requireOwner(ownerID)
	if err != nil {
		return "", "", err
	}
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return "", "", ErrInvalidQuoteID
	}
	return ownerID, quoteID, nil
}

// encodeURIComponent escapes spaces as %20, which wa.me expects.
func encodeURIComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
