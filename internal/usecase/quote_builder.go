package usecase

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"focusquote/internal/domain/entities"
	"focusquote/internal/domain/lifecycle"
	"focusquote/internal/domain/pricing"
	"focusquote/internal/usecase/interfaces"
	"focusquote/pkg/logger"
	"focusquote/pkg/metrics"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	DefaultValidityDays      = 15
	DefaultPaymentConditions = "50% reserva + 50% entrega"
)

// ItemField names the editable columns of a draft item.
type ItemField string

const (
	ItemFieldName        ItemField = "name"
	ItemFieldDescription ItemField = "description"
	ItemFieldUnitPrice   ItemField = "unit_price"
	ItemFieldQuantity    ItemField = "quantity"
	ItemFieldType        ItemField = "type"
)

// CommitResult is what a successful commit persisted. Warnings are advisory
// (for example an approved quote was edited).
type CommitResult struct {
	Quote    entities.Quote
	Created  bool
	Warnings []lifecycle.Warning
}

type BuilderOption func(*QuoteBuilder)

func WithClock(now func() time.Time) BuilderOption {
	return func(b *QuoteBuilder) { b.now = now }
}

func WithIDGenerator(next func() string) BuilderOption {
	return func(b *QuoteBuilder) { b.newID = next }
}

func WithNumberGenerator(next func() string) BuilderOption {
	return func(b *QuoteBuilder) { b.newNumber = next }
}

func WithBuilderLogger(l *logger.Logger) BuilderOption {
	return func(b *QuoteBuilder) { b.log = l }
}

func WithBuilderMetrics(m *metrics.QuoteMetrics) BuilderOption {
	return func(b *QuoteBuilder) { b.metrics = m }
}

// QuoteBuilder holds one in-progress quote. It is not safe for concurrent
// use; create one per editing session or request.
//
// The builder never changes a quote's status. On commit over an existing
// quote the stored status is kept.
type QuoteBuilder struct {
	repo    interfaces.IQuoteRepository
	log     *logger.Logger
	metrics *metrics.QuoteMetrics

	now       func() time.Time
	newID     func() string
	newNumber func() string

	draft entities.Quote
	// editing is set when the draft was loaded from a stored quote.
	editing bool
}

func NewQuoteBuilder(repo interfaces.IQuoteRepository, opts ...BuilderOption) *QuoteBuilder {
	b := &QuoteBuilder{
		repo:      repo,
		log:       logger.Nop(),
		now:       time.Now,
		newID:     uuid.NewString,
		newNumber: randomQuoteNumber,
	}
	for _, opt := range opts {
		opt(b)
	}
	b.Reset()
	return b
}

// Reset discards the draft and starts a new quote with the default values.
func (b *QuoteBuilder) Reset() {
	today := dateOnly(b.now())
	b.editing = false
	b.draft = entities.Quote{
		ID:                b.newID(),
		Number:            b.newNumber(),
		Date:              today,
		ValidUntil:        today.AddDate(0, 0, DefaultValidityDays),
		Status:            entities.QuoteStatusDraft,
		Items:             []entities.QuoteItem{},
		PaymentMethod:     entities.PaymentMethodPix,
		PaymentConditions: DefaultPaymentConditions,
	}
}

// Edit replaces the draft with a stored quote.
func (b *QuoteBuilder) Edit(ctx context.Context, ownerID, quoteID string) error {
	ownerID = strings.TrimSpace(ownerID)
	quoteID = strings.TrimSpace(quoteID)
	if ownerID == "" {
		return ErrInvalidOwnerID
	}
	if quoteID == "" {
		return ErrInvalidQuoteID
	}

	c, err := b.repo.Load(ctx, ownerID)
	if err != nil {
		return err
	}
	q, i := c.Find(quoteID)
	if i < 0 {
		return ErrQuoteNotFound
	}
	b.draft = q.Clone()
	b.editing = true
	return nil
}

// Draft returns a copy of the draft with its total up to date.
func (b *QuoteBuilder) Draft() entities.Quote {
	q := b.draft.Clone()
	pricing.Apply(&q)
	return q
}

// AddItem appends an item (quantity 1, price 0, package) and returns its id.
func (b *QuoteBuilder) AddItem() string {
	id := b.newID()
	b.draft.Items = append(b.draft.Items, entities.QuoteItem{
		ID:        id,
		UnitPrice: decimal.Zero,
		Quantity:  1,
		Type:      entities.ItemTypePackage,
	})
	pricing.Apply(&b.draft)
	return id
}

func (b *QuoteBuilder) RemoveItem(itemID string) error {
	i := b.draft.ItemIndex(itemID)
	if i < 0 {
		return ErrItemNotFound
	}
	items := make([]entities.QuoteItem, 0, len(b.draft.Items)-1)
	items = append(items, b.draft.Items[:i]...)
	b.draft.Items = append(items, b.draft.Items[i+1:]...)
	pricing.Apply(&b.draft)
	return nil
}

// UpdateItem sets one field of an item. Accepted value types:
// name and description take string; unit_price takes decimal.Decimal,
// string, float64 or int; quantity takes int, int64 or an integral float64;
// type takes entities.ItemType or string.
func (b *QuoteBuilder) UpdateItem(itemID string, field ItemField, value any) error {
	i := b.draft.ItemIndex(itemID)
	if i < 0 {
		return ErrItemNotFound
	}
	it := b.draft.Items[i]

	switch field {
	case ItemFieldName:
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("%w: name must be text", ErrInvalidItemValue)
		}
		it.Name = s
	case ItemFieldDescription:
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("%w: description must be text", ErrInvalidItemValue)
		}
		it.Description = s
	case ItemFieldUnitPrice:
		d, err := toDecimal(value)
		if err != nil {
			return fmt.Errorf("%w: unit price: %v", ErrInvalidItemValue, err)
		}
		if d.IsNegative() {
			return fmt.Errorf("%w: unit price must not be negative", ErrInvalidItemValue)
		}
		it.UnitPrice = d
	case ItemFieldQuantity:
		n, err := toQuantity(value)
		if err != nil {
			return fmt.Errorf("%w: quantity: %v", ErrInvalidItemValue, err)
		}
		if n < 1 {
			return fmt.Errorf("%w: quantity must be at least 1", ErrInvalidItemValue)
		}
		it.Quantity = n
	case ItemFieldType:
		t, ok := toItemType(value)
		if !ok {
			return fmt.Errorf("%w: unknown item type %v", ErrInvalidItemValue, value)
		}
		it.Type = t
	default:
		return fmt.Errorf("%w: %q", ErrInvalidItemField, field)
	}

	b.draft.Items[i] = it
	pricing.Apply(&b.draft)
	return nil
}

// ReorderItems puts the listed items first, in the given order. Items not
// listed keep their relative order after them.
func (b *QuoteBuilder) ReorderItems(itemIDs []string) error {
	seen := make(map[string]bool, len(itemIDs))
	ordered := make([]entities.QuoteItem, 0, len(b.draft.Items))
	for _, id := range itemIDs {
		i := b.draft.ItemIndex(id)
		if i < 0 {
			return ErrItemNotFound
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		ordered = append(ordered, b.draft.Items[i])
	}
	for _, it := range b.draft.Items {
		if !seen[it.ID] {
			ordered = append(ordered, it)
		}
	}
	b.draft.Items = ordered
	return nil
}

// SetClient accepts any id, including an empty one; the check happens on
// commit.
func (b *QuoteBuilder) SetClient(clientID string) {
	b.draft.ClientID = strings.TrimSpace(clientID)
}

func (b *QuoteBuilder) SetDates(date, validUntil time.Time) {
	b.draft.Date = dateOnly(date)
	b.draft.ValidUntil = dateOnly(validUntil)
}

func (b *QuoteBuilder) SetFinancials(discount, extraFees decimal.Decimal, method entities.PaymentMethod, conditions, notes string) error {
	if discount.IsNegative() || extraFees.IsNegative() {
		return ErrInvalidAdjustment
	}
	m, ok := entities.ParsePaymentMethod(string(method))
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidPaymentMethod, method)
	}
	b.draft.Discount = discount
	b.draft.ExtraFees = extraFees
	b.draft.PaymentMethod = m
	b.draft.PaymentConditions = conditions
	b.draft.Notes = notes
	pricing.Apply(&b.draft)
	return nil
}

// Commit validates the draft and writes it to the owner's collection,
// replacing a quote with the same id in place or prepending a new one. On a
// validation error nothing is written and the draft is left as it was.
// A stored quote deleted since it was loaded is not written back; Commit
// returns ErrQuoteNotFound instead.
func (b *QuoteBuilder) Commit(ctx context.Context, ownerID string) (CommitResult, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return CommitResult{}, ErrInvalidOwnerID
	}
	if err := b.validate(); err != nil {
		b.metrics.IncCommit("invalid")
		return CommitResult{}, err
	}

	ctx = b.log.WithQuoteID(b.log.WithOwnerID(ctx, ownerID), b.draft.ID)

	q := b.draft.Clone()
	pricing.Apply(&q)

	var res CommitResult
	_, err := b.repo.Update(ctx, ownerID, func(c *entities.QuoteCollection) (bool, error) {
		res = CommitResult{}
		stored, i := c.Find(q.ID)
		if i >= 0 {
			res.Warnings = lifecycle.EditWarnings(stored)
			q.Status = stored.Status
		} else if b.editing {
			return false, ErrQuoteNotFound
		}
		res.Created = c.Upsert(q)
		res.Quote = q
		return true, nil
	})
	if err != nil {
		b.metrics.IncCommit("error")
		b.log.Error(ctx, err, "quote commit failed")
		return CommitResult{}, err
	}

	b.draft = res.Quote.Clone()
	b.editing = true
	if res.Created {
		b.metrics.IncCommit("created")
		b.log.Info(ctx, "quote %s created", res.Quote.Number)
	} else {
		b.metrics.IncCommit("updated")
		b.log.Info(ctx, "quote %s updated", res.Quote.Number)
	}
	for _, w := range res.Warnings {
		b.log.Warn(ctx, "quote %s committed with warning %s", res.Quote.Number, w)
	}
	return res, nil
}

func (b *QuoteBuilder) validate() error {
	if strings.TrimSpace(b.draft.ClientID) == "" {
		return ErrClientRequired
	}
	if len(b.draft.Items) == 0 {
		return ErrItemsRequired
	}
	return nil
}

func randomQuoteNumber() string {
	return strconv.Itoa(1000 + rand.IntN(9000))
}

func dateOnly(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func toDecimal(v any) (decimal.Decimal, error) {
	switch x := v.(type) {
	case decimal.Decimal:
		return x, nil
	case string:
		return decimal.NewFromString(strings.TrimSpace(x))
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return decimal.Decimal{}, fmt.Errorf("not a number")
		}
		return decimal.NewFromFloat(x), nil
	case int:
		return decimal.NewFromInt(int64(x)), nil
	case int64:
		return decimal.NewFromInt(x), nil
	default:
		return decimal.Decimal{}, fmt.Errorf("unsupported type %T", v)
	}
}

func toQuantity(v any) (int, error) {
	switch x := v.(type) {
	case int:
		return x, nil
	case int64:
		return int(x), nil
	case float64:
		if x != math.Trunc(x) {
			return 0, fmt.Errorf("must be a whole number")
		}
		return int(x), nil
	default:
		return 0, fmt.Errorf("unsupported type %T", v)
	}
}

func toItemType(v any) (entities.ItemType, bool) {
	switch x := v.(type) {
	case entities.ItemType:
		return entities.ParseItemType(string(x))
	case string:
		return entities.ParseItemType(x)
	default:
		return "", false
	}
}
