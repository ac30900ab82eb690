package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/at-ishikawa/transcriptus/internal/daily"
	"github.com/at-ishikawa/transcriptus/internal/enrichment"
	"github.com/at-ishikawa/transcriptus/internal/inference/gemini"
	"github.com/at-ishikawa/transcriptus/internal/provider"
)

type outputFormat string

const (
	outputText outputFormat = "text"
	outputYAML outputFormat = "yaml"
	outputJSON outputFormat = "json"
)

var allOutputFormats = []outputFormat{outputText, outputYAML, outputJSON}

func (o *outputFormat) Set(val string) error {
	for _, format := range allOutputFormats {
		if val == string(format) {
			*o = format
			return nil
		}
	}
	return fmt.Errorf("invalid output format: %s", val)
}

func (o outputFormat) String() string {
	return string(o)
}

func (o *outputFormat) Type() string {
	return "format"
}

type language string

func (l *language) Set(val string) error {
	for _, code := range gemini.Languages() {
		if val == code {
			*l = language(code)
			return nil
		}
	}
	return fmt.Errorf("invalid language: %s. Possible values are %v", val, gemini.Languages())
}

func (l language) String() string {
	return string(l)
}

func (l *language) Type() string {
	return "language"
}

var (
	_ pflag.Value = (*outputFormat)(nil)
	_ pflag.Value = (*language)(nil)
)

// printer writes command results in the selected format.
type printer struct {
	w      io.Writer
	format outputFormat
	title  *color.Color
	label  *color.Color
	muted  *color.Color
}

func newPrinter(w io.Writer, format outputFormat) *printer {
	return &printer{
		w:      w,
		format: format,
		title:  color.New(color.Bold, color.FgCyan),
		label:  color.New(color.Bold),
		muted:  color.New(color.Faint),
	}
}

// encode writes v as YAML or JSON and reports whether it did.
func (p *printer) encode(v any) (bool, error) {
	switch p.format {
	case outputYAML:
		encoder := yaml.NewEncoder(p.w)
		encoder.SetIndent(2)
		if err := encoder.Encode(v); err != nil {
			return true, fmt.Errorf("yaml.Encode > %w", err)
		}
		return true, encoder.Close()
	case outputJSON:
		encoder := json.NewEncoder(p.w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(v); err != nil {
			return true, fmt.Errorf("json.Encode > %w", err)
		}
		return true, nil
	}
	return false, nil
}

func (p *printer) field(name, value string) {
	p.label.Fprintf(p.w, "%s: ", name)
	fmt.Fprintln(p.w, value)
}

func (p *printer) phrases(phrases []provider.Phrase) {
	for i, phrase := range phrases {
		fmt.Fprintf(p.w, "  %d. %s\n", i+1, phrase.English)
		p.muted.Fprintf(p.w, "     %s\n", phrase.Portuguese)
	}
}

func (p *printer) WordRecord(record enrichment.WordRecord) error {
	if ok, err := p.encode(record); ok {
		return err
	}
	p.title.Fprintln(p.w, record.Word)
	p.field("Phonetic", record.Phonetic)
	p.field("Pronunciation", record.Pronunciation)
	p.field("Definition", record.Definition)
	p.field("Definição", record.TranslatedDefinition)
	p.field("Translations", fmt.Sprintf("%v", record.Translations))
	p.label.Fprintln(p.w, "Phrases:")
	p.phrases(record.Phrases)
	return nil
}

func (p *printer) MorePhrases(more enrichment.MorePhrases) error {
	if ok, err := p.encode(more); ok {
		return err
	}
	p.phrases(more.Phrases)
	p.muted.Fprintln(p.w, more.Message)
	return nil
}

func (p *printer) DailyWord(word daily.DailyWord) error {
	if ok, err := p.encode(word); ok {
		return err
	}
	p.title.Fprintf(p.w, "%s (%s)\n", word.DailyWord, word.Date)
	p.field("Phonetic", word.Phonetic)
	p.field("Definition", word.Definition)
	return nil
}

func (p *printer) RandomWord(word daily.RandomWord) error {
	if ok, err := p.encode(word); ok {
		return err
	}
	p.title.Fprintln(p.w, word.RandomWord)
	p.field("Phonetic", word.Phonetic)
	p.field("Definition", word.Definition)
	p.field("Definição", word.TranslatedDefinition)
	return nil
}
