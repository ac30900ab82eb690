// Package gemini is the generative fallback provider backed by the Google
// Gemini API.
package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/at-ishikawa/transcriptus/internal/metrics"
	"github.com/at-ishikawa/transcriptus/internal/provider"
	"github.com/at-ishikawa/transcriptus/internal/ratelimit"
)

const (
	DefaultModel   = "gemini-2.0-flash"
	DefaultTimeout = 30 * time.Second

	MaxTranslations = 10
	MaxExamples     = 5
)

type Config struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

// generator is the part of genai.Models the client uses.
type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Client implements provider.Generative. Without an API key every call fails
// with provider.ErrMisconfigured.
type Client struct {
	models  generator
	model   string
	timeout time.Duration
	limiter *ratelimit.Limiter
	metrics *metrics.Recorder
	log     *slog.Logger
}

var _ provider.Generative = (*Client)(nil)

func NewClient(ctx context.Context, config Config, limiter *ratelimit.Limiter, recorder *metrics.Recorder, logger *slog.Logger) (*Client, error) {
	var models generator
	if config.APIKey != "" {
		genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  config.APIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("genai.NewClient > %w", err)
		}
		models = genaiClient.Models
	} else {
		logger.WarnContext(ctx, "gemini api key is not configured")
	}
	return newClient(models, config, limiter, recorder, logger), nil
}

func newClient(models generator, config Config, limiter *ratelimit.Limiter, recorder *metrics.Recorder, logger *slog.Logger) *Client {
	if config.Model == "" {
		config.Model = DefaultModel
	}
	if config.Timeout <= 0 {
		config.Timeout = DefaultTimeout
	}
	return &Client{
		models:  models,
		model:   config.Model,
		timeout: config.Timeout,
		limiter: limiter,
		metrics: recorder,
		log:     logger.With("adapter", provider.NameGenerative),
	}
}

// TranslateWord asks for up to MaxTranslations Portuguese translations of
// word. A reply without a JSON array yields an empty slice.
func (c *Client) TranslateWord(ctx context.Context, word string) ([]string, error) {
	text, err := c.generate(ctx, "translate_word", translateWordPrompt(word))
	if err != nil {
		return nil, err
	}

	var candidates []string
	if fragment, ok := extractJSONArray(text); ok {
		if err := json.Unmarshal([]byte(fragment), &candidates); err != nil {
			c.log.DebugContext(ctx, "unexpected translation shape", slog.String("word", word), slog.String("error", err.Error()))
		}
	}
	return provider.FilterTranslations(word, candidates, MaxTranslations), nil
}

// TranslateText translates free text. Language codes without a known name
// are passed to the model as is.
func (c *Client) TranslateText(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	translated, err := c.generate(ctx, "translate_text", translateTextPrompt(text, sourceLang, targetLang))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(translated), nil
}

// GenerateExamples asks for example sentences using word, steering the model
// away from the excluded ones. Returned phrases never repeat an excluded
// English sentence.
func (c *Client) GenerateExamples(ctx context.Context, word string, exclude []provider.Phrase) ([]provider.Phrase, error) {
	text, err := c.generate(ctx, "generate_examples", examplesPrompt(word, exclude))
	if err != nil {
		return nil, err
	}

	var candidates []provider.Phrase
	if fragment, ok := extractJSONArray(text); ok {
		if err := json.Unmarshal([]byte(fragment), &candidates); err != nil {
			c.log.DebugContext(ctx, "unexpected examples shape", slog.String("word", word), slog.String("error", err.Error()))
		}
	}
	return provider.MergePhrases(MaxExamples, exclude, candidates), nil
}

func (c *Client) generate(ctx context.Context, operation, prompt string) (string, error) {
	if c.models == nil {
		err := fmt.Errorf("gemini: %s: api key not configured: %w", operation, provider.ErrMisconfigured)
		c.metrics.ProviderCall(provider.NameGenerative, operation, provider.Outcome(err), 0)
		return "", err
	}
	if err := c.limiter.Wait(ctx, provider.NameGenerative); err != nil {
		return "", fmt.Errorf("gemini: %s: %w: %w", operation, provider.ErrUnavailable, err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	res, err := c.models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		err = fmt.Errorf("gemini: %s: models.GenerateContent > %w", operation, classify(err))
	}
	c.metrics.ProviderCall(provider.NameGenerative, operation, provider.Outcome(err), time.Since(start))
	if err != nil {
		c.log.WarnContext(ctx, "gemini call failed", slog.String("operation", operation), slog.String("error", err.Error()))
		return "", err
	}
	return extractText(res), nil
}

func classify(err error) error {
	code := 0
	var apiErr genai.APIError
	var apiErrPtr *genai.APIError
	switch {
	case errors.As(err, &apiErr):
		code = apiErr.Code
	case errors.As(err, &apiErrPtr) && apiErrPtr != nil:
		code = apiErrPtr.Code
	}
	if code == http.StatusTooManyRequests {
		return fmt.Errorf("%w: %w", provider.ErrRateLimited, err)
	}
	return fmt.Errorf("%w: %w", provider.ErrUnavailable, err)
}

func extractText(res *genai.GenerateContentResponse) string {
	if res == nil || len(res.Candidates) == 0 || res.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range res.Candidates[0].Content.Parts {
		if part != nil {
			sb.WriteString(part.Text)
		}
	}
	return sb.String()
}
