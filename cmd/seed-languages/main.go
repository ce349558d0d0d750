// Command seed-languages upserts the language reference table. Languages
// listed in the indexing config are marked as supported; previously seeded
// languages missing from the list are marked unsupported by a later upsert,
// never deleted.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/vocadex/vocadex-backend/internal/adapter/postgres/language"
	"github.com/vocadex/vocadex-backend/internal/app"
	"github.com/vocadex/vocadex-backend/internal/domain"
)

// languageNames maps ISO 639-1 codes to English display names. Codes outside
// the map are seeded with the code as the name.
var languageNames = map[string]string{
	"en": "English",
	"es": "Spanish",
	"fr": "French",
	"de": "German",
	"it": "Italian",
	"pt": "Portuguese",
	"nl": "Dutch",
	"sv": "Swedish",
	"ja": "Japanese",
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cfg, logger, pool, err := app.Bootstrap(ctx)
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}
	defer pool.Close()

	langs := make([]domain.Language, 0, len(cfg.Indexing.SupportedLanguages))
	for _, code := range cfg.Indexing.SupportedLanguages {
		name, ok := languageNames[code]
		if !ok {
			name = code
		}
		langs = append(langs, domain.Language{
			Code:        code,
			Name:        name,
			IsSupported: true,
		})
	}

	repo := language.New(pool)

	upserted, err := repo.Upsert(ctx, langs)
	if err != nil {
		logger.Error("seed languages", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("languages seeded",
		slog.Int("upserted", upserted),
		slog.Int("configured", len(langs)),
	)
}
