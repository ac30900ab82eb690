package gemini

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/at-ishikawa/transcriptus/internal/provider"
)

var languageNames = map[string]string{
	"en": "English",
	"pt": "Portuguese",
	"es": "Spanish",
	"fr": "French",
	"de": "German",
	"it": "Italian",
}

// LanguageName returns the English name of a language code, or the code
// itself when it is unknown.
func LanguageName(code string) string {
	if name, ok := languageNames[strings.ToLower(code)]; ok {
		return name
	}
	return code
}

// Languages returns the language codes with a known name, sorted.
func Languages() []string {
	return slices.Sorted(maps.Keys(languageNames))
}

func translateWordPrompt(word string) string {
	return fmt.Sprintf(`Translate the English word "%s" into Brazilian Portuguese.

Return ONLY a JSON array of strings with up to %d distinct translations, most common first.
Do not include the English word itself, explanations or any text outside the JSON.

Example: ["correr", "executar", "administrar"]`, word, MaxTranslations)
}

func translateTextPrompt(text, sourceLang, targetLang string) string {
	return fmt.Sprintf(`Translate the following text from %s to %s:

"%s"

IMPORTANT:
- Provide ONLY the translation, without explanations
- Keep the original formatting (line breaks, punctuation)
- Translate slang and idioms naturally`, LanguageName(sourceLang), LanguageName(targetLang), text)
}

func examplesPrompt(word string, exclude []provider.Phrase) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `Write %d short, natural English example sentences using the word "%s", each with its Brazilian Portuguese translation.

Return ONLY a JSON array of objects shaped like {"english": "...", "portuguese": "..."}, with no text outside the JSON.`, MaxExamples, word)

	if len(exclude) > 0 {
		sentences := make([]string, 0, len(exclude))
		for _, p := range exclude {
			sentences = append(sentences, p.English)
		}
		quoted, _ := json.Marshal(sentences)
		fmt.Fprintf(&sb, "\n\nDo NOT repeat or paraphrase any of these sentences:\n%s", quoted)
	}
	return sb.String()
}

// extractJSONArray returns the first balanced and valid JSON array in text.
func extractJSONArray(text string) (string, bool) {
	for start := strings.IndexByte(text, '['); start >= 0; {
		if end := matchingBracket(text, start); end > start {
			candidate := text[start : end+1]
			if json.Valid([]byte(candidate)) {
				return candidate, true
			}
		}
		next := strings.IndexByte(text[start+1:], '[')
		if next < 0 {
			break
		}
		start += next + 1
	}
	return "", false
}

// matchingBracket returns the index of the bracket closing the one at start,
// or -1. Brackets inside JSON strings are ignored.
func matchingBracket(text string, start int) int {
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		ch := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '[', '{':
			depth++
		case ']', '}':
			depth--
			if depth == 0 {
				if ch == ']' {
					return i
				}
				return -1
			}
		}
	}
	return -1
}
