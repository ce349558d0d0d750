package tokenizer

import (
	"strings"

	"github.com/ikawaha/kagome-dict/ipa"
	kagome "github.com/ikawaha/kagome/v2/tokenizer"

	"github.com/vocadex/vocadex-backend/internal/domain"
)

// Japanese segments text with the kagome morphological analyzer and the IPA
// dictionary. Tokens are normalized to their dictionary (base) form so that
// conjugated surface forms ("行っ", "行き") canonicalize to one vocabulary
// row ("行く"); the katakana reading is carried as the annotation.
type Japanese struct {
	t *kagome.Tokenizer
}

// NewJapanese loads the IPA dictionary and builds the analyzer.
func NewJapanese() (*Japanese, error) {
	t, err := kagome.New(ipa.Dict(), kagome.OmitBosEos())
	if err != nil {
		return nil, err
	}
	return &Japanese{t: t}, nil
}

// IPA dictionary feature slots.
const (
	featPOS      = 0
	featBaseForm = 6
	featReading  = 7
)

// posSymbol is the IPA part-of-speech label for punctuation and symbols.
const posSymbol = "記号"

// Segment tokenizes raw text, dropping whitespace and symbol tokens.
func (j *Japanese) Segment(raw string) []Token {
	var tokens []Token

	for _, tok := range j.t.Tokenize(raw) {
		if tok.Class == kagome.DUMMY {
			continue
		}
		if strings.TrimSpace(tok.Surface) == "" {
			continue
		}

		features := tok.Features()
		if len(features) > featPOS && features[featPOS] == posSymbol {
			continue
		}

		base := tok.Surface
		if len(features) > featBaseForm && features[featBaseForm] != "*" {
			base = features[featBaseForm]
		}

		reading := ""
		if len(features) > featReading && features[featReading] != "*" {
			reading = features[featReading]
		}

		normalized := domain.NormalizeText(base)
		if normalized == "" {
			continue
		}

		tokens = append(tokens, Token{
			Text:       tok.Surface,
			Normalized: normalized,
			Annotation: reading,
		})
	}

	return tokens
}
