package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/at-ishikawa/transcriptus/internal/bootstrap"
	"github.com/at-ishikawa/transcriptus/internal/server"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	}
}

func serve(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loadConfig() > %w", err)
	}
	if !slog.Default().Enabled(ctx, slog.LevelDebug) {
		setLogLevel(parseLevel(cfg.Log.Level))
	}
	logger := slog.Default()

	app := bootstrap.New(logger)
	components, err := newApplication(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("newApplication() > %w", err)
	}
	app.AddShutdownHook("application", components.Close)

	handler := server.New(server.Services{
		Words:        components.pipeline,
		Daily:        components.selector,
		Translations: components.translator,
		History:      components.history,
		Validator:    components.validator,
	}, cfg.Server.CORS.AllowedOrigins,
		promhttp.HandlerFor(components.registry, promhttp.HandlerOpts{}),
		components.recorder,
		logger,
	).Handler()

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           h2c.NewHandler(handler, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}
	app.AddShutdownHook("http server", srv.Shutdown)

	return app.Run(ctx, func(ctx context.Context) error {
		logger.Info("starting server", slog.String("addr", srv.Addr), slog.Int("ipa_words", components.phonetics.Len()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
}
