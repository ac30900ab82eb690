package ipa

import (
	"strings"
)

// respellings maps IPA symbols to letters read the Portuguese way.
// Two-rune symbols are matched before single runes.
var respellings = map[string]string{
	"dʒ": "g",
	"aɪ": "ai",
	"oʊ": "ow",
	"aʊ": "au",
	"ɔɪ": "ói",
	"ər": "êr",

	"b": "b",
	"l": "l",
	"ʌ": "uh",
	"d": "d",
	"θ": "th",
	"h": "rr",
	"e": "e",
	"æ": "a",
	"p": "p",
	"y": "i",
	"i": "ee",
	"ʊ": "uh",
	"u": "uw",
	"ə": "á",
	"k": "k",
	"m": "m",
	"n": "n",
	"s": "s",
	"v": "v",
	"t": "t",
	"ɛ": "é",
	"ɔ": "ao",
	"ʧ": "ch",
	"ɪ": "ih",
	"j": "y",
	"a": "a",
	"g": "g",
	"ɡ": "g",
	"z": "z",
	"f": "f",
	"r": "r",
	"ɹ": "r",
	"w": "w",
	"o": "o",
	"ɑ": "aa",
	"ŋ": "ng",
	"ɚ": "er",
	"ð": "dh",
	"ʒ": "zh",
	"ʃ": "sh",
	"ʤ": "j",
	"ˈ": "·",
}

// Respell converts a transcription, possibly holding alternatives joined by
// " / ", into a respelling. Alternatives are joined by " ou " and symbols
// without a respelling are dropped.
func Respell(transcription string) string {
	alternatives := strings.Split(transcription, "/")
	respelled := make([]string, 0, len(alternatives))
	for _, alternative := range alternatives {
		alternative = strings.TrimSpace(alternative)
		if alternative == "" {
			continue
		}
		respelled = append(respelled, respellOne(alternative))
	}
	return strings.Join(respelled, " ou ")
}

func respellOne(ipa string) string {
	runes := []rune(ipa)
	var sb strings.Builder
	for i := 0; i < len(runes); i++ {
		if i+1 < len(runes) {
			if s, ok := respellings[string(runes[i:i+2])]; ok {
				sb.WriteString(s)
				i++
				continue
			}
		}
		if s, ok := respellings[string(runes[i])]; ok {
			sb.WriteString(s)
		}
	}
	return sb.String()
}
