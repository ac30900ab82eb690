// Package scraper talks to the headless-browser phrase service, which scrapes
// translations and bilingual example sentences.
package scraper

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/avast/retry-go"
	"resty.dev/v3"

	"github.com/at-ishikawa/transcriptus/internal/metrics"
	"github.com/at-ishikawa/transcriptus/internal/provider"
	"github.com/at-ishikawa/transcriptus/internal/ratelimit"
)

const (
	DefaultTimeout        = 30 * time.Second
	DefaultRetryAttempts  = 3
	DefaultRetryDelay     = 2 * time.Second
	DefaultSourceLanguage = "english"
	DefaultTargetLanguage = "portuguese"

	// MaxTranslations caps a single translate result.
	MaxTranslations = 15

	sessionHeader = "X-Session-ID"
)

var (
	errDisabled = errors.New("scraper: base url not configured")
	errClosed   = errors.New("scraper: client closed")
	errEmpty    = fmt.Errorf("empty response: %w", provider.ErrUnavailable)
)

type Config struct {
	BaseURL        string
	Timeout        time.Duration
	RetryAttempts  uint
	RetryDelay     time.Duration
	SourceLanguage string
	TargetLanguage string
}

// Client implements provider.Scraper. The service session is started on the
// first call and shared by every later call; when starting it fails, the
// client stays unavailable for the rest of the process.
type Client struct {
	httpClient *resty.Client
	config     Config
	limiter    *ratelimit.Limiter
	metrics    *metrics.Recorder
	log        *slog.Logger

	once       sync.Once
	sessionID  string
	sessionErr error
}

var _ provider.Scraper = (*Client)(nil)

func NewClient(config Config, limiter *ratelimit.Limiter, recorder *metrics.Recorder, logger *slog.Logger) *Client {
	if config.Timeout <= 0 {
		config.Timeout = DefaultTimeout
	}
	if config.RetryAttempts == 0 {
		config.RetryAttempts = DefaultRetryAttempts
	}
	if config.RetryDelay <= 0 {
		config.RetryDelay = DefaultRetryDelay
	}
	if config.SourceLanguage == "" {
		config.SourceLanguage = DefaultSourceLanguage
	}
	if config.TargetLanguage == "" {
		config.TargetLanguage = DefaultTargetLanguage
	}

	httpClient := resty.New()
	httpClient.SetBaseURL(strings.TrimRight(config.BaseURL, "/"))
	httpClient.SetTimeout(config.Timeout)
	httpClient.SetHeader("Accept", "application/json")

	return &Client{
		httpClient: httpClient,
		config:     config,
		limiter:    limiter,
		metrics:    recorder,
		log:        logger.With("adapter", provider.NameScraper),
	}
}

// Available starts the session if needed and reports whether it is usable.
func (c *Client) Available(ctx context.Context) bool {
	_, err := c.session(ctx)
	return err == nil
}

// Translate returns the translations of word, filtered and capped at
// MaxTranslations.
func (c *Client) Translate(ctx context.Context, word string) ([]string, error) {
	var translations []string
	err := c.call(ctx, "translate", func(ctx context.Context, sessionID string) error {
		res, err := c.request(ctx, sessionID, word).Get("/translate")
		if err := checkResponse(res, err); err != nil {
			return err
		}
		parsed, err := parseTranslations(res.Bytes())
		if err != nil {
			return err
		}
		parsed = provider.FilterTranslations(word, parsed, MaxTranslations)
		if len(parsed) == 0 {
			return errEmpty
		}
		translations = parsed
		return nil
	})
	if err != nil {
		return nil, err
	}
	return translations, nil
}

// Examples returns complete example pairs for word, unique by English text.
func (c *Client) Examples(ctx context.Context, word string) ([]provider.Phrase, error) {
	var phrases []provider.Phrase
	err := c.call(ctx, "examples", func(ctx context.Context, sessionID string) error {
		res, err := c.request(ctx, sessionID, word).Get("/context")
		if err := checkResponse(res, err); err != nil {
			return err
		}
		parsed, err := parseExamples(res.Bytes())
		if err != nil {
			return err
		}
		parsed = provider.MergePhrases(0, nil, parsed)
		if len(parsed) == 0 {
			return errEmpty
		}
		phrases = parsed
		return nil
	})
	if err != nil {
		return nil, err
	}
	return phrases, nil
}

// Close ends the service session, if one was started. It waits for a session
// start in progress, and a client closed before its first call never starts one.
func (c *Client) Close(ctx context.Context) error {
	c.once.Do(func() {
		c.sessionErr = fmt.Errorf("%w: %w", provider.ErrUnavailable, errClosed)
	})
	if c.sessionID != "" {
		_, err := c.httpClient.R().
			SetContext(ctx).
			SetPathParam("id", c.sessionID).
			Delete("/session/{id}")
		if err != nil {
			c.log.WarnContext(ctx, "failed to end scraper session", slog.String("error", err.Error()))
		}
	}
	return c.httpClient.Close()
}

func (c *Client) call(ctx context.Context, operation string, fn func(ctx context.Context, sessionID string) error) error {
	start := time.Now()
	sessionID, err := c.session(ctx)
	if err == nil {
		err = retry.Do(
			func() error {
				if err := c.limiter.Wait(ctx, provider.NameScraper); err != nil {
					return retry.Unrecoverable(fmt.Errorf("%w: %w", provider.ErrUnavailable, err))
				}
				if err := fn(ctx, sessionID); err != nil {
					if !provider.IsTransient(err) {
						return retry.Unrecoverable(err)
					}
					return err
				}
				return nil
			},
			retry.Context(ctx),
			retry.Attempts(c.config.RetryAttempts+1),
			retry.Delay(c.config.RetryDelay),
			retry.DelayType(retry.FixedDelay),
			retry.LastErrorOnly(true),
			retry.OnRetry(func(n uint, err error) {
				c.log.DebugContext(ctx, "retrying scraper call",
					slog.String("operation", operation),
					slog.Uint64("attempt", uint64(n+1)),
					slog.String("error", err.Error()))
			}),
		)
		if err != nil && !errors.Is(err, provider.ErrUnavailable) && !errors.Is(err, provider.ErrRateLimited) {
			err = fmt.Errorf("%w: %w", provider.ErrUnavailable, err)
		}
	}
	c.metrics.ProviderCall(provider.NameScraper, operation, provider.Outcome(err), time.Since(start))

	if err != nil {
		c.log.WarnContext(ctx, "scraper call failed", slog.String("operation", operation), slog.String("error", err.Error()))
		return fmt.Errorf("scraper: %s: %w", operation, err)
	}
	return nil
}

func (c *Client) request(ctx context.Context, sessionID, word string) *resty.Request {
	return c.httpClient.R().
		SetContext(ctx).
		SetHeader(sessionHeader, sessionID).
		SetQueryParams(map[string]string{
			"text": word,
			"from": c.config.SourceLanguage,
			"to":   c.config.TargetLanguage,
		})
}

// session returns the shared session ID, starting the session exactly once.
// Starting ignores ctx cancellation and is bounded by the configured timeout.
func (c *Client) session(ctx context.Context) (string, error) {
	c.once.Do(func() {
		if c.config.BaseURL == "" {
			c.sessionErr = fmt.Errorf("%w: %w", provider.ErrUnavailable, errDisabled)
			c.log.InfoContext(ctx, "scraper disabled")
			return
		}

		startCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.config.Timeout)
		defer cancel()
		c.sessionID, c.sessionErr = c.startSession(startCtx)
		if c.sessionErr != nil {
			c.log.WarnContext(ctx, "scraper session could not be started, scraper disabled",
				slog.String("error", c.sessionErr.Error()))
			return
		}
		c.log.InfoContext(ctx, "scraper session started", slog.String("session", c.sessionID))
	})
	return c.sessionID, c.sessionErr
}

func (c *Client) startSession(ctx context.Context) (string, error) {
	res, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(map[string]string{
			"source_language": c.config.SourceLanguage,
			"target_language": c.config.TargetLanguage,
		}).
		SetResult(&sessionResponse{}).
		Post("/session")
	if err := checkResponse(res, err); err != nil {
		return "", fmt.Errorf("start session > %w", err)
	}

	body, ok := res.Result().(*sessionResponse)
	if !ok || body.sessionID() == "" {
		return "", fmt.Errorf("start session: no session id: %w", provider.ErrMalformed)
	}
	return body.sessionID(), nil
}

func checkResponse(res *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("%w: %w", provider.ErrUnavailable, err)
	}
	switch status := res.StatusCode(); {
	case status == http.StatusTooManyRequests:
		return fmt.Errorf("status %d: %w", status, provider.ErrRateLimited)
	case res.IsError() || status < 200 || status >= 300:
		return fmt.Errorf("status %d: %w", status, provider.ErrUnavailable)
	}
	return nil
}
