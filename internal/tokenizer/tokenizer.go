// Package tokenizer provides per-language text segmentation. Each supported
// language registers a Tokenizer implementation; languages without explicit
// word boundaries (Japanese) use dictionary-based segmentation, whitespace
// languages use a rune-class splitter. Both satisfy the same contract:
// segmentation is deterministic, total, and may produce an empty stream.
package tokenizer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vocadex/vocadex-backend/internal/domain"
)

// ErrUnsupportedLanguage is returned by Resolve for a language code with no
// registered tokenizer. It is a configuration error: callers must check
// Language.IsSupported before submitting text, and must never degrade to a
// no-op tokenizer.
var ErrUnsupportedLanguage = fmt.Errorf("unsupported language: %w", domain.ErrConfiguration)

// Token is a single segmented unit of text.
type Token struct {
	// Text is the surface form with its original casing.
	Text string
	// Normalized is the canonical form used for vocabulary identity.
	Normalized string
	// Annotation is optional parsed text, e.g. a katakana reading. Empty if
	// the tokenizer produces none.
	Annotation string
	// IsPhrase marks multi-word units. Tokenizers emit single words only;
	// phrases enter the system through learner curation.
	IsPhrase bool
}

// Tokenizer segments raw text into an ordered token sequence.
type Tokenizer interface {
	Segment(raw string) []Token
}

// Registry maps language codes to tokenizer implementations.
type Registry struct {
	byCode map[string]Tokenizer
}

// NewRegistry builds a registry with every built-in language registered.
// Loading the Japanese dictionary can fail, so construction returns an error.
func NewRegistry() (*Registry, error) {
	r := &Registry{byCode: make(map[string]Tokenizer)}

	space := NewSpace()
	for _, code := range []string{"en", "es", "fr", "de", "it", "pt", "nl", "sv"} {
		r.Register(code, space)
	}

	ja, err := NewJapanese()
	if err != nil {
		return nil, fmt.Errorf("japanese tokenizer: %w", err)
	}
	r.Register("ja", ja)

	return r, nil
}

// Register adds or replaces the tokenizer for a language code.
func (r *Registry) Register(code string, t Tokenizer) {
	r.byCode[strings.ToLower(code)] = t
}

// Resolve returns the tokenizer for the given language code.
func (r *Registry) Resolve(code string) (Tokenizer, error) {
	t, ok := r.byCode[strings.ToLower(code)]
	if !ok {
		return nil, fmt.Errorf("%q: %w", code, ErrUnsupportedLanguage)
	}
	return t, nil
}

// Supported returns the registered language codes, sorted.
func (r *Registry) Supported() []string {
	codes := make([]string, 0, len(r.byCode))
	for code := range r.byCode {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Dedupe collapses repeated tokens case-insensitively, keyed by
// (Normalized, IsPhrase). The first-seen token wins, preserving its original
// casing and annotation. Order of first appearance is kept.
func Dedupe(tokens []Token) []Token {
	type key struct {
		normalized string
		isPhrase   bool
	}

	seen := make(map[key]struct{}, len(tokens))
	out := make([]Token, 0, len(tokens))
	for _, tok := range tokens {
		k := key{normalized: tok.Normalized, isPhrase: tok.IsPhrase}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, tok)
	}
	return out
}
