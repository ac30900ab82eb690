package main

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/transcriptus/internal/daily"
	"github.com/at-ishikawa/transcriptus/internal/enrichment"
	"github.com/at-ishikawa/transcriptus/internal/provider"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		debugMode bool
		wantLevel slog.Level
	}{
		{
			name:      "debug mode enabled",
			debugMode: true,
			wantLevel: slog.LevelDebug,
		},
		{
			name:      "debug mode disabled",
			debugMode: false,
			wantLevel: slog.LevelInfo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupLogger(tt.debugMode)
			logger := slog.Default()
			assert.NotNil(t, logger)
			assert.Equal(t, tt.wantLevel <= slog.LevelDebug, logger.Enabled(context.Background(), slog.LevelDebug))
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{level: "debug", want: slog.LevelDebug},
		{level: "INFO", want: slog.LevelInfo},
		{level: "warn", want: slog.LevelWarn},
		{level: "error", want: slog.LevelError},
		{level: "", want: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLevel(tt.level))
		})
	}
}

func TestFlagValues(t *testing.T) {
	t.Run("output format", func(t *testing.T) {
		var output outputFormat
		require.NoError(t, output.Set("yaml"))
		assert.Equal(t, outputYAML, output)
		assert.EqualError(t, output.Set("xml"), "invalid output format: xml")
	})

	t.Run("language", func(t *testing.T) {
		var lang language
		require.NoError(t, lang.Set("es"))
		assert.Equal(t, "es", lang.String())
		assert.ErrorContains(t, lang.Set("klingon"), "invalid language: klingon")
	})
}

func TestPrinter(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	record := enrichment.WordRecord{
		Word:                 "happy",
		Definition:           "Feeling joy.",
		TranslatedDefinition: "Sentindo alegria.",
		Translations:         []string{"feliz", "contente"},
		Phonetic:             "ˈhæpi",
		Pronunciation:        "·rrapee",
		Phrases:              []provider.Phrase{{English: "I am happy.", Portuguese: "Eu estou feliz."}},
	}

	tests := []struct {
		name   string
		format outputFormat
		print  func(p *printer) error
		want   string
	}{
		{
			name:   "word as text",
			format: outputText,
			print:  func(p *printer) error { return p.WordRecord(record) },
			want: `happy
Phonetic: ˈhæpi
Pronunciation: ·rrapee
Definition: Feeling joy.
Definição: Sentindo alegria.
Translations: [feliz contente]
Phrases:
  1. I am happy.
     Eu estou feliz.
`,
		},
		{
			name:   "word as yaml",
			format: outputYAML,
			print:  func(p *printer) error { return p.WordRecord(record) },
			want: `word: happy
definition: Feeling joy.
translated_definition: Sentindo alegria.
translations:
  - feliz
  - contente
phonetic: ˈhæpi
pronunciation: ·rrapee
phrases:
  - english: I am happy.
    portuguese: Eu estou feliz.
`,
		},
		{
			name:   "daily word as json",
			format: outputJSON,
			print: func(p *printer) error {
				return p.DailyWord(daily.DailyWord{Date: "2026/10/19", DailyWord: "happy", Definition: "Feeling joy.", Phonetic: "ˈhæpi"})
			},
			want: `{
  "date": "2026/10/19",
  "dailyWord": "happy",
  "definition": "Feeling joy.",
  "phonetic": "ˈhæpi"
}
`,
		},
		{
			name:   "random word as text",
			format: outputText,
			print: func(p *printer) error {
				return p.RandomWord(daily.RandomWord{RandomWord: "novel", Definition: "A long story.", Phonetic: "ˈnɑvəl", TranslatedDefinition: "Uma longa história."})
			},
			want: `novel
Phonetic: ˈnɑvəl
Definition: A long story.
Definição: Uma longa história.
`,
		},
		{
			name:   "more phrases as text",
			format: outputText,
			print: func(p *printer) error {
				return p.MorePhrases(enrichment.MorePhrases{
					Phrases: []provider.Phrase{{English: "We run.", Portuguese: "Nós corremos."}},
					HasMore: true,
					Message: "1 new phrases found.",
				})
			},
			want: `  1. We run.
     Nós corremos.
1 new phrases found.
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, tt.print(newPrinter(&buf, tt.format)))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestExcludedPhrases(t *testing.T) {
	got := excludedPhrases([]string{" I run. ", "", "We run."})
	assert.Equal(t, []provider.Phrase{{English: "I run."}, {English: "We run."}}, got)
}

func TestSchemaCommand(t *testing.T) {
	cmd := newSchemaCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "CREATE TABLE IF NOT EXISTS daily_words")
}

func TestCommands(t *testing.T) {
	tests := []struct {
		name    string
		command func() *cobra.Command
		use     string
	}{
		{name: "serve", command: newServeCommand, use: "serve"},
		{name: "word", command: newWordCommand, use: "word <word>"},
		{name: "daily", command: newDailyCommand, use: "daily"},
		{name: "random", command: newRandomCommand, use: "random"},
		{name: "translate", command: newTranslateCommand, use: "translate <text>"},
		{name: "phrases", command: newPhrasesCommand, use: "phrases <word>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := tt.command()
			assert.Equal(t, tt.use, cmd.Use)
			assert.NotEmpty(t, cmd.Short)
			assert.NotNil(t, cmd.RunE)
		})
	}
}
