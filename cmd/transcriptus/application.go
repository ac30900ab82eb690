package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/at-ishikawa/transcriptus/internal/cache"
	"github.com/at-ishikawa/transcriptus/internal/config"
	"github.com/at-ishikawa/transcriptus/internal/daily"
	"github.com/at-ishikawa/transcriptus/internal/database"
	"github.com/at-ishikawa/transcriptus/internal/dictionary"
	"github.com/at-ishikawa/transcriptus/internal/enrichment"
	"github.com/at-ishikawa/transcriptus/internal/history"
	"github.com/at-ishikawa/transcriptus/internal/inference/gemini"
	"github.com/at-ishikawa/transcriptus/internal/ipa"
	"github.com/at-ishikawa/transcriptus/internal/metrics"
	"github.com/at-ishikawa/transcriptus/internal/provider"
	"github.com/at-ishikawa/transcriptus/internal/ratelimit"
	"github.com/at-ishikawa/transcriptus/internal/scraper"
	"github.com/at-ishikawa/transcriptus/internal/translator"
	"github.com/at-ishikawa/transcriptus/internal/validation"
)

// application holds the components every command is built from.
type application struct {
	registry   *prometheus.Registry
	recorder   *metrics.Recorder
	phonetics  *ipa.Dictionary
	scraper    *scraper.Client
	db         *sqlx.DB
	history    *history.Service
	translator *translator.Service
	pipeline   *enrichment.Pipeline
	selector   *daily.Selector
	validator  *validation.WordValidator
}

func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder := metrics.NewRecorder(registry)

	phonetics, err := ipa.Load(cfg.Phonetics.DictionaryFile)
	if err != nil {
		return nil, fmt.Errorf("ipa.Load() > %w", err)
	}
	validator, err := validation.NewWordValidator(phonetics)
	if err != nil {
		return nil, fmt.Errorf("validation.NewWordValidator() > %w", err)
	}
	fallbacks, err := daily.DefaultFallbacks()
	if err != nil {
		return nil, fmt.Errorf("daily.DefaultFallbacks() > %w", err)
	}

	limiter := ratelimit.New(map[string]time.Duration{
		provider.NameDictionary: cfg.Dictionary.MinInterval,
		provider.NameScraper:    cfg.Scraper.MinInterval,
		provider.NameGenerative: cfg.Gemini.MinInterval,
	})
	dictionaryClient := dictionary.NewClient(dictionary.Config{
		BaseURL: cfg.Dictionary.BaseURL,
		Timeout: cfg.Dictionary.Timeout,
	}, limiter, recorder, logger)
	scraperClient := scraper.NewClient(scraper.Config{
		BaseURL:        cfg.Scraper.BaseURL,
		Timeout:        cfg.Scraper.Timeout,
		RetryAttempts:  cfg.Scraper.RetryAttempts,
		RetryDelay:     cfg.Scraper.RetryDelay,
		SourceLanguage: cfg.Scraper.SourceLanguage,
		TargetLanguage: cfg.Scraper.TargetLanguage,
	}, limiter, recorder, logger)
	geminiClient, err := gemini.NewClient(ctx, gemini.Config{
		APIKey:  cfg.Gemini.APIKey,
		Model:   cfg.Gemini.Model,
		Timeout: cfg.Gemini.Timeout,
	}, limiter, recorder, logger)
	if err != nil {
		return nil, fmt.Errorf("gemini.NewClient() > %w", err)
	}

	app := &application{
		registry:  registry,
		recorder:  recorder,
		phonetics: phonetics,
		scraper:   scraperClient,
		validator: validator,
	}

	var (
		historyRepository history.Repository = history.NopRepository{}
		dailyStore        daily.Store        = daily.NewMemoryStore(cfg.Cache.DailyWordTTL, cache.WithMaxEntries(cfg.Cache.MaxEntries))
	)
	if cfg.Database.Enabled {
		db, err := database.Connect(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("database.Connect() > %w", err)
		}
		app.db = db
		historyRepository = history.NewDBRepository(db)
		dailyStore = daily.NewMySQLStore(db)
	}

	app.history = history.NewService(historyRepository, logger)
	app.translator = translator.NewService(
		geminiClient,
		cache.NewTTL[translator.Key, string](cfg.Cache.TranslationTTL, cache.WithMaxEntries(cfg.Cache.MaxEntries)),
		app.history,
		recorder,
		logger,
	)
	app.pipeline = enrichment.NewPipeline(enrichment.Providers{
		Dictionary: dictionaryClient,
		Scraper:    scraperClient,
		Generative: geminiClient,
		Phonetics:  phonetics,
		Translator: app.translator,
	}, cache.NewTTL[string, enrichment.WordRecord](cfg.Cache.WordTTL, cache.WithMaxEntries(cfg.Cache.MaxEntries)), recorder, logger)
	app.selector = daily.NewSelector(daily.Sources{
		Words:      phonetics,
		Dictionary: dictionaryClient,
		Phonetics:  phonetics,
		Translator: app.translator,
	}, dailyStore, fallbacks, daily.Config{
		Attempts:       cfg.DailyWord.Attempts,
		RetryDelay:     cfg.DailyWord.RetryDelay,
		RandomAttempts: cfg.DailyWord.RandomAttempts,
	}, recorder, logger)

	return app, nil
}

// Close ends the scraper session and closes the database.
func (a *application) Close(ctx context.Context) error {
	var errs []error
	if err := a.scraper.Close(ctx); err != nil {
		errs = append(errs, fmt.Errorf("scraper.Close() > %w", err))
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			errs = append(errs, fmt.Errorf("db.Close() > %w", err))
		}
	}
	return errors.Join(errs...)
}

// withApplication loads the configuration, builds the application, runs fn
// and releases the application.
func withApplication(ctx context.Context, fn func(ctx context.Context, app *application) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loadConfig() > %w", err)
	}
	app, err := newApplication(ctx, cfg, slog.Default())
	if err != nil {
		return fmt.Errorf("newApplication() > %w", err)
	}
	defer func() {
		if err := app.Close(context.WithoutCancel(ctx)); err != nil {
			slog.Warn("failed to close the application", "error", err)
		}
	}()
	return fn(ctx, app)
}
