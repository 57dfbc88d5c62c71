package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "focusquote/docs"
	"focusquote/internal/adapter/http/routes"
	"focusquote/internal/config"
	"focusquote/pkg/logger"

	_ "github.com/joho/godotenv/autoload"
)

// @title           FocusQuote API
// @version         1.0
// @description     Quotes for photographers: pricing, status lifecycle, public links and PDF documents.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	bootLog := logger.New(logger.Options{ServiceName: "focusquote"})

	cfg, err := config.Load()
	if err != nil {
		bootLog.Error(context.Background(), err, "failed to load config")
		os.Exit(1)
	}

	format := cfg.App.LogFormat
	if cfg.App.IsDev() && os.Getenv("FOCUSQUOTE_LOG_FORMAT") == "" {
		format = "console"
	}
	log := logger.New(logger.Options{
		ServiceName: "focusquote",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		Format:      format,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := routes.Run(ctx, cfg, log); err != nil {
		log.Error(ctx, err, "server stopped")
		stop()
		os.Exit(1)
	}
}
