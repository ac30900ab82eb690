// Response shapes of https://dictionaryapi.dev/

package dictionary

import (
	"strings"

	"github.com/at-ishikawa/transcriptus/internal/provider"
)

type apiEntry struct {
	Word      string        `json:"word"`
	Phonetic  string        `json:"phonetic"`
	Phonetics []apiPhonetic `json:"phonetics"`
	Meanings  []apiMeaning  `json:"meanings"`
}

type apiPhonetic struct {
	Text  string `json:"text"`
	Audio string `json:"audio"`
}

type apiMeaning struct {
	PartOfSpeech string          `json:"partOfSpeech"`
	Definitions  []apiDefinition `json:"definitions"`
}

type apiDefinition struct {
	Definition string `json:"definition"`
	Example    string `json:"example"`
}

// toEntry flattens the entries in document order. It returns nil when no
// entry carries a definition.
func toEntry(word string, entries []apiEntry) *provider.DictionaryEntry {
	result := &provider.DictionaryEntry{
		Word:        word,
		Definitions: []string{},
		Phonetics:   []string{},
	}
	seenPhonetics := make(map[string]struct{})
	addPhonetic := func(text string) {
		text = strings.TrimSpace(text)
		if text == "" {
			return
		}
		if _, ok := seenPhonetics[text]; ok {
			return
		}
		seenPhonetics[text] = struct{}{}
		result.Phonetics = append(result.Phonetics, text)
	}

	for _, entry := range entries {
		if result.Word == "" {
			result.Word = entry.Word
		}
		addPhonetic(entry.Phonetic)
		for _, ph := range entry.Phonetics {
			addPhonetic(ph.Text)
		}
		for _, meaning := range entry.Meanings {
			for _, def := range meaning.Definitions {
				if d := strings.TrimSpace(def.Definition); d != "" {
					result.Definitions = append(result.Definitions, d)
				}
			}
		}
	}

	if len(result.Definitions) == 0 {
		return nil
	}
	return result
}
