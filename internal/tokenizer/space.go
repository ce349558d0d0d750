package tokenizer

import (
	"unicode"

	"github.com/vocadex/vocadex-backend/internal/domain"
)

// Space segments whitespace-delimited languages. Words are maximal runs of
// letters and digits; apostrophes and hyphens are kept when they join two
// word runes ("don't", "well-known"), everything else is a boundary.
type Space struct{}

// NewSpace creates the whitespace/punctuation splitter.
func NewSpace() *Space {
	return &Space{}
}

// Segment splits raw text into word tokens. Normalization lowercases and
// NFKC-folds the surface form. Never fails; unknown input yields an empty
// stream.
func (s *Space) Segment(raw string) []Token {
	var tokens []Token

	runes := []rune(raw)
	start := -1
	flush := func(end int) {
		if start < 0 {
			return
		}
		surface := string(runes[start:end])
		start = -1
		normalized := domain.NormalizeText(surface)
		if normalized == "" {
			return
		}
		tokens = append(tokens, Token{Text: surface, Normalized: normalized})
	}

	for i, r := range runes {
		switch {
		case isWordRune(r):
			if start < 0 {
				start = i
			}
		case (r == '\'' || r == '-' || r == '’') && start >= 0 && i+1 < len(runes) && isWordRune(runes[i+1]):
			// joiner inside a word
		default:
			flush(i)
		}
	}
	flush(len(runes))

	return tokens
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
