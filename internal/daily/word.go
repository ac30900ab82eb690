package daily

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

// DateLayout formats the calendar date a daily word is stored under.
const DateLayout = "2006/01/02"

// DailyWord is the word of the day for Date.
type DailyWord struct {
	Date       string `json:"date" yaml:"date" db:"date"`
	DailyWord  string `json:"dailyWord" yaml:"daily_word" db:"word"`
	Definition string `json:"definition" yaml:"definition" db:"definition"`
	Phonetic   string `json:"phonetic" yaml:"phonetic" db:"phonetic"`
}

// RandomWord is a freshly sampled word with its translated definition.
type RandomWord struct {
	RandomWord           string `json:"randomWord" yaml:"random_word"`
	Definition           string `json:"definition" yaml:"definition"`
	Phonetic             string `json:"phonetic" yaml:"phonetic"`
	TranslatedDefinition string `json:"translatedDefinition" yaml:"translated_definition"`
}

// Fallback is a known-good word served when sampling fails.
type Fallback struct {
	Word                 string `yaml:"word"`
	Definition           string `yaml:"definition"`
	Phonetic             string `yaml:"phonetic"`
	TranslatedDefinition string `yaml:"translated_definition"`
}

//go:embed fallbacks.yaml
var fallbacksYAML []byte

// DefaultFallbacks returns the built-in fallback table.
func DefaultFallbacks() ([]Fallback, error) {
	var fallbacks []Fallback
	if err := yaml.Unmarshal(fallbacksYAML, &fallbacks); err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal > %w", err)
	}
	if len(fallbacks) == 0 {
		return nil, fmt.Errorf("no fallback words")
	}
	return fallbacks, nil
}
