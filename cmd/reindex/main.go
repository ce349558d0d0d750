// Command reindex re-tokenizes stored content texts and reconciles their
// vocabulary links. Run it after tokenizer upgrades or normalization rule
// changes; reconciliation is idempotent, so interrupted runs can simply be
// restarted.
//
// Flags:
//
//	--language  only reindex content in this language (default: all)
//	--dry-run   tokenize without writing link deltas
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/vocadex/vocadex-backend/internal/adapter/postgres"
	"github.com/vocadex/vocadex-backend/internal/adapter/postgres/content"
	"github.com/vocadex/vocadex-backend/internal/adapter/postgres/contentlink"
	"github.com/vocadex/vocadex-backend/internal/adapter/postgres/vocabulary"
	"github.com/vocadex/vocadex-backend/internal/app"
	"github.com/vocadex/vocadex-backend/internal/service/linker"
	vocabsvc "github.com/vocadex/vocadex-backend/internal/service/vocabulary"
	"github.com/vocadex/vocadex-backend/internal/tokenizer"
)

func main() {
	languageFlag := flag.String("language", "", "only reindex content in this language (default: all)")
	dryRunFlag := flag.Bool("dry-run", false, "tokenize without writing link deltas")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	cfg, logger, pool, err := app.Bootstrap(ctx)
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}
	defer pool.Close()

	registry, err := tokenizer.NewRegistry()
	if err != nil {
		logger.Error("build tokenizer registry", slog.String("error", err.Error()))
		os.Exit(1)
	}

	txm := postgres.NewTxManager(pool)
	contentRepo := content.New(pool)
	linkRepo := contentlink.New(pool)
	vocabRepo := vocabulary.New(pool)

	vocabSvc := vocabsvc.NewService(logger, vocabRepo)
	linkerSvc := linker.NewService(logger, contentRepo, linkRepo, vocabSvc, registry, txm)

	var langCode *string
	if *languageFlag != "" {
		langCode = languageFlag
	}

	items, err := contentRepo.ListWithBodies(ctx, langCode)
	if err != nil {
		logger.Error("list content", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("reindex starting",
		slog.Int("items", len(items)),
		slog.Bool("dry_run", *dryRunFlag),
	)

	var failed, added, removed int
	for i, item := range items {
		if i > 0 && i%cfg.Indexing.ReindexChunkSize == 0 {
			logger.Info("reindex progress",
				slog.Int("processed", i),
				slog.Int("total", len(items)),
			)
		}
		if len(item.Body) > cfg.Indexing.MaxTextLength {
			logger.Warn("skipping oversized content",
				slog.String("content_id", item.ID.String()),
				slog.Int("length", len(item.Body)),
			)
			continue
		}

		if *dryRunFlag {
			tok, err := registry.Resolve(item.LanguageCode)
			if err != nil {
				logger.Warn("skipping content in unsupported language",
					slog.String("content_id", item.ID.String()),
					slog.String("language", item.LanguageCode),
				)
				continue
			}
			tokens := tokenizer.Dedupe(tok.Segment(item.Body))
			logger.Info("dry run",
				slog.String("content_id", item.ID.String()),
				slog.Int("tokens", len(tokens)),
			)
			continue
		}

		result, err := linkerSvc.Reconcile(ctx, item.ID, item.Body)
		if err != nil {
			failed++
			logger.Error("reconcile failed",
				slog.String("content_id", item.ID.String()),
				slog.String("error", err.Error()),
			)
			continue
		}
		added += len(result.Added)
		removed += len(result.Removed)
	}

	logger.Info("reindex completed",
		slog.Int("items", len(items)),
		slog.Int("failed", failed),
		slog.Int("links_added", added),
		slog.Int("links_removed", removed),
	)

	if failed > 0 {
		os.Exit(1)
	}
}
