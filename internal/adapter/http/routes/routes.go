package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	_ "focusquote/docs" // registers the swagger spec
	"focusquote/internal/adapter/http/handlers"
	"focusquote/internal/config"
	"focusquote/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 10 * time.Second
)

type handlerSet struct {
	quotes *handlers.QuoteHandler
	public *handlers.PublicQuoteHandler
}

// Run wires the application, serves HTTP and blocks until ctx is cancelled
// or the server fails.
func Run(ctx context.Context, cfg *config.Config, log *logger.Logger) error {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	h, cleanup, err := buildHandlers(ctx, cfg, log, reg)
	if err != nil {
		return err
	}
	defer cleanup()

	if !cfg.App.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := newRouter(log, h, promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info(ctx, "listening on %s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to startup the application: %w", err)
	case <-ctx.Done():
	}

	log.Info(ctx, "shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func newRouter(log *logger.Logger, h handlerSet, metricsHandler http.Handler) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, log)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if metricsHandler != nil {
		router.GET("/metrics", gin.WrapH(metricsHandler))
	}

	getRoutes(router, h)
	return router
}

func getRoutes(router *gin.Engine, h handlerSet) {
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuoteRoutes(v1, h.quotes)

	// Rotas publicas
	addPublicQuoteRoutes(v1, h.public)
}

func setMiddlewares(router *gin.Engine, log *logger.Logger) {
	router.Use(requestID(log))
	router.Use(requestLogger(log))
	router.Use(recovery(log))
}
