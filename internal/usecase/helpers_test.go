package usecase

import (
	"context"
	"fmt"
	"time"

	"focusquote/internal/adapter/persistence/kvstore"
	"focusquote/internal/adapter/persistence/repository"
	"focusquote/internal/domain/entities"
	"focusquote/internal/infrastructure/locking"
	"focusquote/internal/usecase/interfaces"
	mock_interfaces "focusquote/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 10, 16, 14, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

// sequentialIDs returns a generator yielding prefix-1, prefix-2, ...
func sequentialIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

func testBuilderOptions() []BuilderOption {
	return []BuilderOption{
		WithClock(fixedClock),
		WithIDGenerator(sequentialIDs("id")),
		WithNumberGenerator(func() string { return "4821" }),
	}
}

func storedQuote(id string, status entities.QuoteStatus) entities.Quote {
	return entities.Quote{
		ID:         id,
		Number:     "1001",
		ClientID:   "c-1",
		Date:       time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		ValidUntil: time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC),
		Status:     status,
		Items: []entities.QuoteItem{
			{ID: id + "-i1", Name: "Ensaio", UnitPrice: decimal.NewFromInt(300), Quantity: 2, Type: entities.ItemTypePackage},
			{ID: id + "-i2", Name: "Hora extra", UnitPrice: decimal.NewFromInt(50), Quantity: 1, Type: entities.ItemTypeHourly},
		},
		Discount:          decimal.NewFromInt(100),
		ExtraFees:         decimal.NewFromInt(20),
		PaymentMethod:     entities.PaymentMethodPix,
		PaymentConditions: DefaultPaymentConditions,
		Total:             decimal.NewFromInt(570),
	}
}

func collectionOf(owner string, quotes ...entities.Quote) entities.QuoteCollection {
	return entities.QuoteCollection{OwnerID: owner, Quotes: quotes, Exists: true}
}

// expectUpdate runs the repository's mutate callback against start and
// records the written collection, if any, into saved.
func expectUpdate(repo *mock_interfaces.MockIQuoteRepository, owner string, start entities.QuoteCollection, saved *entities.QuoteCollection) *gomock.Call {
	return repo.EXPECT().Update(gomock.Any(), owner, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, fn interfaces.UpdateFunc) (entities.QuoteCollection, error) {
			c := start
			c.Quotes = append([]entities.Quote(nil), start.Quotes...)
			write, err := fn(&c)
			if err != nil {
				return entities.QuoteCollection{}, err
			}
			if write {
				c.Exists = true
				if saved != nil {
					*saved = c
				}
			}
			return c, nil
		},
	)
}

type memoryBackend struct {
	store    *kvstore.MemoryStore
	repo     *repository.QuoteRepository
	clients  *repository.ClientDirectory
	profiles *repository.ProfileDirectory
}

func newMemoryBackend() memoryBackend {
	store := kvstore.NewMemoryStore()
	return memoryBackend{
		store:    store,
		repo:     repository.NewQuoteRepository(store, locking.NewMemoryLocker()),
		clients:  repository.NewClientDirectory(store),
		profiles: repository.NewProfileDirectory(store),
	}
}

func (m memoryBackend) seedOwner(owner string) {
	ctx := context.Background()
	_ = m.store.Set(ctx, repository.ClientsKey(owner), []byte(`[{"id":"c-1","name":"Maria Silva","phone":"+55 (11) 98888-7777","email":"maria@example.com","address":"Rua A, 1","type":"PF"}]`))
	_ = m.store.Set(ctx, repository.ProfileKey(owner), []byte(`{"name":"Ana Souza","studioName":"Estúdio Luz","taxId":"","phone":"","whatsapp":"","email":"","address":"","defaultTerms":"Entrega em 30 dias.","monthlyGoal":2000}`))
}
