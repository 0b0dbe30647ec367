// Command server exposes the numeral parsers as a JSON REST API.
//
// Endpoints:
//
//	GET  /api/parse?word=<word>[&lang=de|fr|nl][&strict=true]
//	POST /api/parse/batch   body: {"lang":"nl","words":["..."],"strict":false}
//	GET  /api/magnitudes?lang=<lang>
//	GET  /api/languages
//	GET  /health
//
// Configuration is read from CONFIG_PATH (default ./config.yaml) and the
// environment; see internal/config.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/cours-de-latin/numerals/all"
	"github.com/cours-de-latin/numerals/internal/app"
	"github.com/cours-de-latin/numerals/internal/config"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := app.NewLogger(cfg.Log)
	logger.Info("starting numerals server",
		slog.String("version", app.BuildVersion()),
		slog.String("default_language", cfg.Parse.DefaultLanguage),
		slog.Bool("strict_spelling", cfg.Parse.StrictSpelling),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return app.Serve(ctx, cfg.Server, newHandler(cfg, logger), logger)
}
