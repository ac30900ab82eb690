package provider

import (
	"strings"
	"unicode/utf8"
)

const minTranslationLength = 2

// FilterTranslations drops candidates that are too short, that contain the
// source word (case-insensitively) or that repeat an earlier candidate.
// At most limit items are returned; limit <= 0 means no cap.
func FilterTranslations(source string, candidates []string, limit int) []string {
	return MergeTranslations(source, limit, candidates)
}

// MergeTranslations filters and concatenates the lists in order, so earlier
// lists take precedence over later ones.
func MergeTranslations(source string, limit int, lists ...[]string) []string {
	source = strings.ToLower(strings.TrimSpace(source))
	seen := make(map[string]struct{})
	result := make([]string, 0)

	for _, list := range lists {
		for _, candidate := range list {
			if limit > 0 && len(result) >= limit {
				return result
			}
			candidate = strings.TrimSpace(candidate)
			if utf8.RuneCountInString(candidate) < minTranslationLength {
				continue
			}
			key := strings.ToLower(candidate)
			if source != "" && strings.Contains(key, source) {
				continue
			}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			result = append(result, candidate)
		}
	}
	return result
}

// MergePhrases collects complete phrases from the lists in order, skipping
// any whose English side matches (case-insensitively) an excluded phrase or
// an already collected one.
func MergePhrases(limit int, exclude []Phrase, lists ...[]Phrase) []Phrase {
	seen := make(map[string]struct{}, len(exclude))
	for _, p := range exclude {
		seen[phraseKey(p)] = struct{}{}
	}

	result := make([]Phrase, 0)
	for _, list := range lists {
		for _, p := range list {
			if limit > 0 && len(result) >= limit {
				return result
			}
			p = Phrase{
				English:    strings.TrimSpace(p.English),
				Portuguese: strings.TrimSpace(p.Portuguese),
			}
			if p.English == "" || p.Portuguese == "" {
				continue
			}
			key := phraseKey(p)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			result = append(result, p)
		}
	}
	return result
}

func phraseKey(p Phrase) string {
	return strings.ToLower(strings.TrimSpace(p.English))
}
