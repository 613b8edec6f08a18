// Command analyze runs sentiment analysis for a single comment batch from
// the command line. It is an operator tool for re-running analysis after
// provider outages without going through the GraphQL API.
//
// Usage:
//
//	analyze -batch <uuid>
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

	"github.com/google/uuid"

	"github.com/ndvoronin/creatorpulse-backend/internal/adapter/postgres/commentbatch"
	creatorrepo "github.com/ndvoronin/creatorpulse-backend/internal/adapter/postgres/creator"
	snapshotrepo "github.com/ndvoronin/creatorpulse-backend/internal/adapter/postgres/snapshot"

	activityrepo "github.com/ndvoronin/creatorpulse-backend/internal/adapter/postgres/activity"
	"github.com/ndvoronin/creatorpulse-backend/internal/adapter/postgres"
	"github.com/ndvoronin/creatorpulse-backend/internal/adapter/provider/anthropic"
	"github.com/ndvoronin/creatorpulse-backend/internal/app"
	"github.com/ndvoronin/creatorpulse-backend/internal/config"
	activitysvc "github.com/ndvoronin/creatorpulse-backend/internal/service/activity"
	sentimentsvc "github.com/ndvoronin/creatorpulse-backend/internal/service/sentiment"
	"github.com/ndvoronin/creatorpulse-backend/pkg/ctxutil"
)

func main() {
	batchFlag := flag.String("batch", "", "comment batch id to analyze")
	flag.Parse()

	batchID, err := uuid.Parse(*batchFlag)
	if err != nil {
		log.Fatalf("invalid -batch value %q: %v", *batchFlag, err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	batches := commentbatch.New(pool)
	snapshots := snapshotrepo.New(pool)
	creators := creatorrepo.New(pool)
	events := activityrepo.New(pool)

	providerConfigured := cfg.Provider.HasProviderKey()
	var textGen *anthropic.Client
	if providerConfigured {
		textGen = anthropic.New(cfg.Provider)
	} else {
		logger.Warn("provider not configured, analysis will run degraded")
	}

	activityService := activitysvc.NewService(logger, events)
	sentimentService := sentimentsvc.NewService(
		logger, batches, snapshots, creators, textGen, activityService,
		cfg.Pipeline, providerConfigured,
	)

	// Run as the batch owner so the ownership check passes.
	batch, err := batches.GetByID(ctx, batchID)
	if err != nil {
		logger.Error("load batch", slog.String("error", err.Error()))
		os.Exit(1)
	}
	creator, err := creators.GetByID(ctx, batch.CreatorID)
	if err != nil {
		logger.Error("load creator", slog.String("error", err.Error()))
		os.Exit(1)
	}
	runCtx := ctxutil.WithUserID(ctx, creator.UserID)

	result, err := sentimentService.Analyze(runCtx, batchID)
	if err != nil {
		logger.Error("analysis failed",
			slog.String("batch_id", batchID.String()),
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}

	logger.Info("analysis completed",
		slog.String("batch_id", batchID.String()),
		slog.String("snapshot_id", result.Snapshot.ID.String()),
		slog.Int("comment_count", result.Snapshot.TotalCount()),
		slog.Int("degraded_chunks", result.DegradedChunks),
	)
}
