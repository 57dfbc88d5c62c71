package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"focusquote/internal/domain/entities"
	"focusquote/internal/domain/pricing"
	"focusquote/internal/usecase/interfaces"
)

// ErrCorruptCollection is returned when a stored collection cannot be decoded.
var ErrCorruptCollection = errors.New("stored quote collection is corrupt")

// QuoteRepository persists each owner's quote list as one JSON value.
//
// Reads never trust the stored total; it is recomputed from the items.
// Update runs load, mutate and write under the owner's lock so that two
// requests for the same owner cannot interleave their write-backs.

type QuoteRepository struct {
	store  interfaces.IKeyValueStore
	locker interfaces.IOwnerLocker
}

var _ interfaces.IQuoteRepository = (*QuoteRepository)(nil)

func NewQuoteRepository(store interfaces.IKeyValueStore, locker interfaces.IOwnerLocker) *QuoteRepository {
	return &QuoteRepository{store: store, locker: locker}
}

func (r *QuoteRepository) Load(ctx context.Context, ownerID string) (entities.QuoteCollection, error) {
	raw, err := r.store.Get(ctx, QuotesKey(ownerID))
	if err != nil {
		return entities.QuoteCollection{}, fmt.Errorf("load quotes for %s: %w", ownerID, err)
	}
	return decodeCollection(ownerID, raw)
}

func (r *QuoteRepository) Update(ctx context.Context, ownerID string, fn interfaces.UpdateFunc) (entities.QuoteCollection, error) {
	release, err := r.locker.Lock(ctx, ownerID)
	if err != nil {
		return entities.QuoteCollection{}, fmt.Errorf("lock quotes for %s: %w", ownerID, err)
	}
	defer release()

	c, err := r.Load(ctx, ownerID)
	if err != nil {
		return entities.QuoteCollection{}, err
	}

	write, err := fn(&c)
	if err != nil {
		return entities.QuoteCollection{}, err
	}
	if !write {
		return c, nil
	}

	for i := range c.Quotes {
		pricing.Apply(&c.Quotes[i])
	}
	raw, err := encodeCollection(c)
	if err != nil {
		return entities.QuoteCollection{}, err
	}
	if err := r.store.Set(ctx, QuotesKey(ownerID), raw); err != nil {
		return entities.QuoteCollection{}, fmt.Errorf("save quotes for %s: %w", ownerID, err)
	}
	c.Exists = true
	return c, nil
}

func decodeCollection(ownerID string, raw []byte) (entities.QuoteCollection, error) {
	c := entities.QuoteCollection{OwnerID: ownerID, Quotes: []entities.Quote{}}
	if raw == nil {
		return c, nil
	}
	c.Exists = true
	if len(raw) == 0 {
		return c, nil
	}

	var recs []quoteRecord
	if err := json.Unmarshal(raw, &recs); err != nil {
		return entities.QuoteCollection{}, fmt.Errorf("%w: owner %s: %v", ErrCorruptCollection, ownerID, err)
	}
	for _, rec := range recs {
		q, err := fromQuoteRecord(rec)
		if err != nil {
			return entities.QuoteCollection{}, fmt.Errorf("%w: owner %s: %v", ErrCorruptCollection, ownerID, err)
		}
		pricing.Apply(&q)
		c.Quotes = append(c.Quotes, q)
	}
	return c, nil
}

func encodeCollection(c entities.QuoteCollection) ([]byte, error) {
	recs := make([]quoteRecord, 0, len(c.Quotes))
	for _, q := range c.Quotes {
		recs = append(recs, toQuoteRecord(q))
	}
	raw, err := json.Marshal(recs)
	if err != nil {
		return nil, fmt.Errorf("encode quotes for %s: %w", c.OwnerID, err)
	}
	return raw, nil
}
