// Package dictionary looks English words up in the free dictionary API.
package dictionary

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/at-ishikawa/transcriptus/internal/metrics"
	"github.com/at-ishikawa/transcriptus/internal/provider"
	"github.com/at-ishikawa/transcriptus/internal/ratelimit"
)

const (
	DefaultBaseURL = "https://api.dictionaryapi.dev/api/v2/entries/en"
	DefaultTimeout = 10 * time.Second
)

type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client implements provider.Dictionary.
type Client struct {
	httpClient *resty.Client
	limiter    *ratelimit.Limiter
	metrics    *metrics.Recorder
	log        *slog.Logger
}

var _ provider.Dictionary = (*Client)(nil)

func NewClient(config Config, limiter *ratelimit.Limiter, recorder *metrics.Recorder, logger *slog.Logger) *Client {
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.Timeout <= 0 {
		config.Timeout = DefaultTimeout
	}

	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(config.BaseURL, "/")).
		SetTimeout(config.Timeout).
		SetHeader("Accept", "application/json")

	return &Client{
		httpClient: httpClient,
		limiter:    limiter,
		metrics:    recorder,
		log:        logger.With("adapter", provider.NameDictionary),
	}
}

// Lookup returns the entry for word, or nil when the API has no definition
// for it. Rate limiting is reported as provider.ErrRateLimited and every
// other failure as provider.ErrUnavailable.
func (c *Client) Lookup(ctx context.Context, word string) (*provider.DictionaryEntry, error) {
	if err := c.limiter.Wait(ctx, provider.NameDictionary); err != nil {
		return nil, fmt.Errorf("dictionary: %w: %w", provider.ErrUnavailable, err)
	}

	start := time.Now()
	entry, err := c.lookup(ctx, word)
	outcome := provider.Outcome(err)
	if err == nil && entry == nil {
		outcome = "not_found"
	}
	c.metrics.ProviderCall(provider.NameDictionary, "lookup", outcome, time.Since(start))

	if err != nil {
		c.log.WarnContext(ctx, "dictionary lookup failed", slog.String("word", word), slog.String("error", err.Error()))
		return nil, err
	}
	return entry, nil
}

func (c *Client) lookup(ctx context.Context, word string) (*provider.DictionaryEntry, error) {
	res, err := c.httpClient.R().
		SetContext(ctx).
		SetPathParam("word", word).
		Get("/{word}")
	if err != nil {
		return nil, fmt.Errorf("dictionary: client.R.Get > %w: %w", provider.ErrUnavailable, err)
	}

	switch status := res.StatusCode(); {
	case status == http.StatusNotFound:
		c.log.DebugContext(ctx, "dictionary has no entry", slog.String("word", word))
		return nil, nil
	case status == http.StatusTooManyRequests:
		return nil, fmt.Errorf("dictionary: status %d: %w", status, provider.ErrRateLimited)
	case status < 200 || status >= 300:
		return nil, fmt.Errorf("dictionary: status %d: %w", status, provider.ErrUnavailable)
	}

	var entries []apiEntry
	if err := json.Unmarshal(res.Body(), &entries); err != nil {
		return nil, fmt.Errorf("dictionary: json.Unmarshal > %w: %w", provider.ErrMalformed, err)
	}
	return toEntry(word, entries), nil
}
