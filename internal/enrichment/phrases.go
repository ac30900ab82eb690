package enrichment

import (
	"context"
	"fmt"

	"github.com/at-ishikawa/transcriptus/internal/provider"
)

// GenerateMorePhrases returns up to MaxPhrases new phrases for word that
// are not in exclude. Once exclude holds MaxTotalPhrases phrases, no
// provider is called and HasMore is false.
func (p *Pipeline) GenerateMorePhrases(ctx context.Context, word string, exclude []provider.Phrase) MorePhrases {
	word = Normalize(word)
	if len(exclude) >= MaxTotalPhrases {
		return MorePhrases{
			Phrases: []provider.Phrase{},
			HasMore: false,
			Message: fmt.Sprintf("You have reached the limit of %d phrases for this word.", MaxTotalPhrases),
		}
	}

	limit := min(MaxPhrases, MaxTotalPhrases-len(exclude))
	phrases := p.phrases(ctx, word, exclude, limit)
	total := len(exclude) + len(phrases)

	switch {
	case len(phrases) == 0:
		return MorePhrases{
			Phrases: phrases,
			HasMore: false,
			Message: "No new phrases were found for this word.",
		}
	case total >= MaxTotalPhrases:
		return MorePhrases{
			Phrases: phrases,
			HasMore: false,
			Message: fmt.Sprintf("You have reached the limit of %d phrases for this word.", MaxTotalPhrases),
		}
	default:
		return MorePhrases{
			Phrases: phrases,
			HasMore: true,
			Message: fmt.Sprintf("%d new phrases found.", len(phrases)),
		}
	}
}
