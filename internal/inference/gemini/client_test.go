package gemini

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/at-ishikawa/transcriptus/internal/metrics"
	"github.com/at-ishikawa/transcriptus/internal/provider"
)

type fakeGenerator struct {
	reply   string
	err     error
	prompts []string
	models  []string
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.models = append(f.models, model)
	for _, content := range contents {
		for _, part := range content.Parts {
			f.prompts = append(f.prompts, part.Text)
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []*genai.Part{{Text: f.reply}}}},
		},
	}, nil
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestClient_TranslateWord(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  []string
	}{
		{
			name:  "array wrapped in a code fence",
			reply: "```json\n[\"correr\", \"Run\", \"executar\", \"correr\", \"x\", \"rerun\"]\n```",
			want:  []string{"correr", "executar"},
		},
		{
			name:  "caps at ten",
			reply: `["a1","a2","a3","a4","a5","a6","a7","a8","a9","a10","a11","a12"]`,
			want:  []string{"a1", "a2", "a3", "a4", "a5", "a6", "a7", "a8", "a9", "a10"},
		},
		{
			name:  "no json yields empty",
			reply: "Sorry, I cannot help with that.",
			want:  []string{},
		},
		{
			name:  "array of the wrong shape yields empty",
			reply: `[{"word":"correr"}]`,
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &fakeGenerator{reply: tt.reply}
			client := newClient(gen, Config{}, nil, nil, newTestLogger())

			got, err := client.TranslateWord(context.Background(), "run")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			require.Len(t, gen.prompts, 1)
			assert.Contains(t, gen.prompts[0], `"run"`)
			assert.Equal(t, []string{DefaultModel}, gen.models)
		})
	}
}

func TestClient_TranslateText(t *testing.T) {
	gen := &fakeGenerator{reply: "  Bom dia!\n"}
	client := newClient(gen, Config{Model: "gemini-test"}, nil, nil, newTestLogger())

	got, err := client.TranslateText(context.Background(), "Good morning!", "en", "pt")
	require.NoError(t, err)
	assert.Equal(t, "Bom dia!", got)
	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "from English to Portuguese")
	assert.Contains(t, gen.prompts[0], `"Good morning!"`)
	assert.Equal(t, []string{"gemini-test"}, gen.models)
}

func TestClient_GenerateExamples(t *testing.T) {
	gen := &fakeGenerator{reply: `Here you go:
[
  {"english": "I run every day.", "portuguese": "Eu corro todo dia."},
  {"english": "She runs [fast].", "portuguese": "Ela corre rápido."},
  {"english": "Run!", "portuguese": ""},
  {"english": "she runs [fast].", "portuguese": "Ela corre depressa."},
  {"english": "They run a shop.", "portuguese": "Eles administram uma loja."}
]`}
	client := newClient(gen, Config{}, nil, nil, newTestLogger())

	exclude := []provider.Phrase{{English: "I run every day.", Portuguese: "Eu corro diariamente."}}
	got, err := client.GenerateExamples(context.Background(), "run", exclude)
	require.NoError(t, err)
	assert.Equal(t, []provider.Phrase{
		{English: "She runs [fast].", Portuguese: "Ela corre rápido."},
		{English: "They run a shop.", Portuguese: "Eles administram uma loja."},
	}, got)
	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], `["I run every day."]`)
}

func TestClient_Errors(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantErrIs   error
		wantOutcome string
	}{
		{
			name:        "429 is rate limited",
			err:         genai.APIError{Code: 429, Message: "quota exceeded"},
			wantErrIs:   provider.ErrRateLimited,
			wantOutcome: "rate_limited",
		},
		{
			name:        "429 pointer is rate limited",
			err:         &genai.APIError{Code: 429, Message: "quota exceeded"},
			wantErrIs:   provider.ErrRateLimited,
			wantOutcome: "rate_limited",
		},
		{
			name:        "server error is unavailable",
			err:         genai.APIError{Code: 503, Message: "overloaded"},
			wantErrIs:   provider.ErrUnavailable,
			wantOutcome: "unavailable",
		},
		{
			name:        "transport error is unavailable",
			err:         errors.New("connection reset"),
			wantErrIs:   provider.ErrUnavailable,
			wantOutcome: "unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := prometheus.NewRegistry()
			client := newClient(&fakeGenerator{err: tt.err}, Config{}, nil, metrics.NewRecorder(reg), newTestLogger())

			_, err := client.TranslateText(context.Background(), "hello", "en", "pt")
			assert.ErrorIs(t, err, tt.wantErrIs)
			_, err = client.TranslateWord(context.Background(), "hello")
			assert.ErrorIs(t, err, tt.wantErrIs)
			_, err = client.GenerateExamples(context.Background(), "hello", nil)
			assert.ErrorIs(t, err, tt.wantErrIs)

			count, err := testutil.GatherAndCount(reg, "transcriptus_provider_calls_total")
			require.NoError(t, err)
			assert.Equal(t, 3, count)
			assert.Equal(t, 3.0, callsWithOutcome(t, reg, tt.wantOutcome))
		})
	}
}

func callsWithOutcome(t *testing.T, reg *prometheus.Registry, outcome string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	total := 0.0
	for _, family := range families {
		if family.GetName() != "transcriptus_provider_calls_total" {
			continue
		}
		for _, m := range family.GetMetric() {
			for _, label := range m.GetLabel() {
				if label.GetName() == "outcome" && label.GetValue() == outcome {
					total += m.GetCounter().GetValue()
				}
			}
		}
	}
	return total
}

func TestClient_MissingAPIKey(t *testing.T) {
	client, err := NewClient(context.Background(), Config{}, nil, nil, newTestLogger())
	require.NoError(t, err)

	_, err = client.TranslateWord(context.Background(), "run")
	assert.ErrorIs(t, err, provider.ErrMisconfigured)
	assert.False(t, provider.IsTransient(err))
	_, err = client.TranslateText(context.Background(), "run", "en", "pt")
	assert.ErrorIs(t, err, provider.ErrMisconfigured)
	_, err = client.GenerateExamples(context.Background(), "run", nil)
	assert.ErrorIs(t, err, provider.ErrMisconfigured)
}

func TestExtractJSONArray(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   string
		wantOK bool
	}{
		{name: "plain", text: `["a","b"]`, want: `["a","b"]`, wantOK: true},
		{name: "surrounded by prose", text: `Sure! ["a"] Hope it helps.`, want: `["a"]`, wantOK: true},
		{name: "brackets inside strings", text: `[{"english":"a ] b","portuguese":"c [ d"}]`, want: `[{"english":"a ] b","portuguese":"c [ d"}]`, wantOK: true},
		{name: "skips an invalid fragment", text: `[see below] ["ok"]`, want: `["ok"]`, wantOK: true},
		{name: "unterminated", text: `["a", "b"`, wantOK: false},
		{name: "none", text: `nothing here`, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := extractJSONArray(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLanguageName(t *testing.T) {
	assert.Equal(t, "Portuguese", LanguageName("pt"))
	assert.Equal(t, "German", LanguageName("DE"))
	assert.Equal(t, "ja", LanguageName("ja"))
	assert.Equal(t, []string{"de", "en", "es", "fr", "it", "pt"}, Languages())
}
