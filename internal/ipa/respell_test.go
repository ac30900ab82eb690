package ipa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRespell(t *testing.T) {
	tests := []struct {
		name string
		ipa  string
		want string
	}{
		{name: "stress mark", ipa: "ˈhæpi", want: "·rrapee"},
		{name: "two-rune symbols first", ipa: "ˈdʒʌdʒ", want: "·guhg"},
		{name: "diphthong", ipa: "həˈloʊ", want: "rrá·low"},
		{name: "alternatives", ipa: "ˈɹid / ˈɹɛd", want: "·reed ou ·réd"},
		{name: "slash delimited", ipa: "/ˈhæpi/", want: "·rrapee"},
		{name: "unknown symbols dropped", ipa: "ˌhæ:pi", want: "rrapee"},
		{name: "empty", ipa: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Respell(tt.ipa))
		})
	}
}
