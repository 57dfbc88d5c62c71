package routes

import (
	"context"
	"fmt"

	"focusquote/internal/adapter/http/handlers"
	"focusquote/internal/adapter/persistence/kvstore"
	"focusquote/internal/adapter/persistence/repository"
	"focusquote/internal/config"
	"focusquote/internal/document"
	"focusquote/internal/infrastructure/database"
	"focusquote/internal/infrastructure/locking"
	"focusquote/internal/infrastructure/publiclink"
	"focusquote/internal/usecase"
	"focusquote/internal/usecase/interfaces"
	"focusquote/pkg/logger"
	"focusquote/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
)

const redisNamespace = "focusquote"

// buildHandlers connects the configured backends and assembles the use
// cases. The returned cleanup releases the connections.
func buildHandlers(ctx context.Context, cfg *config.Config, log *logger.Logger, reg prometheus.Registerer) (handlerSet, func(), error) {
	cleanup := func() {}

	var redisClient *redis.Client
	if cfg.NeedsRedis() {
		client, err := database.ConnectRedis(ctx, cfg.Redis)
		if err != nil {
			return handlerSet{}, cleanup, err
		}
		redisClient = client
		cleanup = func() {
			if err := client.Close(); err != nil {
				log.Error(ctx, err, "closing redis client")
			}
		}
	}

	store, err := newStore(ctx, cfg, redisClient)
	if err != nil {
		cleanup()
		return handlerSet{}, func() {}, err
	}
	locker, err := newLocker(cfg, redisClient)
	if err != nil {
		cleanup()
		return handlerSet{}, func() {}, err
	}
	if cfg.Lock.Backend == config.LockNone {
		log.Warn(ctx, "owner locking disabled: concurrent writes to the same owner keep only the last one")
	}
	log.Info(ctx, "store backend %s, lock backend %s", cfg.Store.Backend, cfg.Lock.Backend)

	repo := repository.NewQuoteRepository(store, locker)
	clients := repository.NewClientDirectory(store)
	profiles := repository.NewProfileDirectory(store)

	quoteMetrics := metrics.NewQuoteMetrics(reg)
	locale := document.PtBR
	locale.CurrencySymbol = cfg.Document.CurrencySymbol
	renderer := document.NewRenderer(locale, document.PDFOptions{Compress: cfg.Document.CompressPDF})

	signer := publiclink.NewSigner(cfg.Link.SigningSecret, cfg.Link.TTL)
	if !signer.Enabled() {
		log.Info(ctx, "public link signing disabled")
	}

	links := usecase.NewPublicLinkUseCase(usecase.PublicLinkDeps{
		Repo:     repo,
		Clients:  clients,
		Profiles: profiles,
		Signer:   signer,
		BaseURL:  cfg.Link.PublicBaseURL,
		Renderer: renderer,
		Logger:   log,
		Metrics:  quoteMetrics,
	})
	quotes := usecase.NewQuoteUseCase(usecase.QuoteUseCaseDeps{
		Repo:     repo,
		Clients:  clients,
		Profiles: profiles,
		Links:    links,
		Renderer: renderer,
		Logger:   log,
		Metrics:  quoteMetrics,
	})

	return handlerSet{
		quotes: handlers.NewQuoteHandler(quotes),
		public: handlers.NewPublicQuoteHandler(links),
	}, cleanup, nil
}

func newStore(ctx context.Context, cfg *config.Config, redisClient *redis.Client) (interfaces.IKeyValueStore, error) {
	switch cfg.Store.Backend {
	case config.StoreDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return nil, err
		}
		return kvstore.NewDynamoStore(ddb, cfg.DynamoDB.Table), nil
	case config.StoreRedis:
		return kvstore.NewRedisStore(redisClient, redisNamespace), nil
	case config.StoreMemory:
		return kvstore.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unsupported store backend %q", cfg.Store.Backend)
	}
}

func newLocker(cfg *config.Config, redisClient *redis.Client) (interfaces.IOwnerLocker, error) {
	switch cfg.Lock.Backend {
	case config.LockMemory:
		return locking.NewMemoryLocker(), nil
	case config.LockRedis:
		l, err := locking.NewRedisLocker(redisClient, cfg.Lock.Lease, cfg.Lock.Wait)
		if err != nil {
			return nil, err
		}
		return l, nil
	case config.LockNone:
		return locking.NoopLocker{}, nil
	default:
		return nil, fmt.Errorf("unsupported lock backend %q", cfg.Lock.Backend)
	}
}
