package interfaces

import (
	"context"
	"focusquote/internal/domain/entities"
)

// UpdateFunc mutates the loaded collection in memory. Returning write=false
// skips the write-back; returning an error aborts without writing.
type UpdateFunc func(c *entities.QuoteCollection) (write bool, err error)

// IQuoteRepository abstracts owner-scoped persistence of the quote list.
//
// Every mutation is a read-whole-collection, mutate, write-whole-collection
// cycle performed by Update while the owner's lock is held.

type IQuoteRepository interface {
	Load(ctx context.Context, ownerID string) (entities.QuoteCollection, error)
	Update(ctx context.Context, ownerID string, fn UpdateFunc) (entities.QuoteCollection, error)
}
