package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Indexing.validate(); err != nil {
		return fmt.Errorf("indexing: %w", err)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	return nil
}

func (i *IndexingConfig) validate() error {
	if i.MaxTextLength <= 0 {
		return fmt.Errorf("max_text_length must be > 0 (got %d)", i.MaxTextLength)
	}
	if i.ReindexChunkSize <= 0 {
		return fmt.Errorf("reindex_chunk_size must be > 0 (got %d)", i.ReindexChunkSize)
	}

	langs, err := ParseLanguageCodes(i.SupportedLanguagesRaw)
	if err != nil {
		return fmt.Errorf("supported_languages: %w", err)
	}
	i.SupportedLanguages = langs

	return nil
}

// ParseLanguageCodes parses a comma-separated string of language codes
// (e.g. "en,ja") into a lowercased, deduplicated slice. An empty string
// returns a nil slice.
func ParseLanguageCodes(raw string) ([]string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	seen := make(map[string]struct{}, len(parts))
	codes := make([]string, 0, len(parts))

	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		if len(p) < 2 || len(p) > 8 {
			return nil, fmt.Errorf("invalid language code %q", p)
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		codes = append(codes, p)
	}

	return codes, nil
}
