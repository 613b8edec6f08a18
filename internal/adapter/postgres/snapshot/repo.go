// Package snapshot implements the SentimentSnapshot repository using
// PostgreSQL. Keyword, request and per-tier aggregates are stored as
// JSONB documents alongside the scalar counters.
package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ndvoronin/creatorpulse-backend/internal/adapter/postgres"
	"github.com/ndvoronin/creatorpulse-backend/internal/domain"
)

const table = "sentiment_snapshots"

var columns = []string{
	"id", "creator_id", "comment_batch_id", "time_range_start", "time_range_end",
	"overall_sentiment_score", "positive_count", "negative_count", "neutral_count",
	"top_keywords", "top_requests", "by_tier", "created_at",
}

// Repo provides sentiment snapshot persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new snapshot repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts an analysis snapshot and returns the persisted row.
func (r *Repo) Create(ctx context.Context, s domain.SentimentSnapshot) (domain.SentimentSnapshot, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	keywords, err := json.Marshal(s.TopKeywords)
	if err != nil {
		return domain.SentimentSnapshot{}, fmt.Errorf("snapshot marshal keywords: %w", err)
	}
	requests, err := json.Marshal(s.TopRequests)
	if err != nil {
		return domain.SentimentSnapshot{}, fmt.Errorf("snapshot marshal requests: %w", err)
	}
	byTier, err := json.Marshal(s.ByTier)
	if err != nil {
		return domain.SentimentSnapshot{}, fmt.Errorf("snapshot marshal by_tier: %w", err)
	}

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(s.ID, s.CreatorID, s.CommentBatchID, s.TimeRangeStart, s.TimeRangeEnd,
			s.OverallSentimentScore, s.PositiveCount, s.NegativeCount, s.NeutralCount,
			keywords, requests, byTier, s.CreatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return domain.SentimentSnapshot{}, fmt.Errorf("build insert snapshot: %w", err)
	}

	row, err := scanSnapshot(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return domain.SentimentSnapshot{}, postgres.MapError(err, "snapshot", s.ID)
	}
	return row, nil
}

// GetByID returns a snapshot by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.SentimentSnapshot, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return domain.SentimentSnapshot{}, fmt.Errorf("build select snapshot: %w", err)
	}

	row, err := scanSnapshot(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return domain.SentimentSnapshot{}, postgres.MapError(err, "snapshot", id)
	}
	return row, nil
}

// ListByCreator returns a creator's snapshots, newest first.
func (r *Repo) ListByCreator(ctx context.Context, creatorID uuid.UUID, limit, offset int) ([]domain.SentimentSnapshot, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"creator_id": creatorID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list snapshots: %w", err)
	}
	return r.list(ctx, sql, args)
}

// ListByBatch returns every snapshot produced for one comment batch, newest
// first. A batch analyzed repeatedly accumulates snapshots.
func (r *Repo) ListByBatch(ctx context.Context, batchID uuid.UUID) ([]domain.SentimentSnapshot, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"comment_batch_id": batchID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list snapshots by batch: %w", err)
	}
	return r.list(ctx, sql, args)
}

// GetByBatchIDs loads snapshots for many batches in one query, for the
// dataloader. Results are keyed by comment_batch_id.
func (r *Repo) GetByBatchIDs(ctx context.Context, batchIDs []uuid.UUID) (map[uuid.UUID][]domain.SentimentSnapshot, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"comment_batch_id": batchIDs}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build batch-load snapshots: %w", err)
	}

	snaps, err := r.list(ctx, sql, args)
	if err != nil {
		return nil, err
	}

	byBatch := make(map[uuid.UUID][]domain.SentimentSnapshot, len(batchIDs))
	for _, s := range snaps {
		byBatch[s.CommentBatchID] = append(byBatch[s.CommentBatchID], s)
	}
	return byBatch, nil
}

func (r *Repo) list(ctx context.Context, sql string, args []any) ([]domain.SentimentSnapshot, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	defer rows.Close()

	var snaps []domain.SentimentSnapshot
	for rows.Next() {
		s, err := scanSnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("scan snapshot: %w", err)
		}
		snaps = append(snaps, s)
	}
	return snaps, rows.Err()
}

func scanSnapshot(row pgx.Row) (domain.SentimentSnapshot, error) {
	var (
		s        domain.SentimentSnapshot
		keywords []byte
		requests []byte
		byTier   []byte
	)
	err := row.Scan(&s.ID, &s.CreatorID, &s.CommentBatchID, &s.TimeRangeStart, &s.TimeRangeEnd,
		&s.OverallSentimentScore, &s.PositiveCount, &s.NegativeCount, &s.NeutralCount,
		&keywords, &requests, &byTier, &s.CreatedAt)
	if err != nil {
		return domain.SentimentSnapshot{}, err
	}
	if err := json.Unmarshal(keywords, &s.TopKeywords); err != nil {
		return domain.SentimentSnapshot{}, fmt.Errorf("snapshot %s unmarshal keywords: %w", s.ID, err)
	}
	if err := json.Unmarshal(requests, &s.TopRequests); err != nil {
		return domain.SentimentSnapshot{}, fmt.Errorf("snapshot %s unmarshal requests: %w", s.ID, err)
	}
	if err := json.Unmarshal(byTier, &s.ByTier); err != nil {
		return domain.SentimentSnapshot{}, fmt.Errorf("snapshot %s unmarshal by_tier: %w", s.ID, err)
	}
	return s, nil
}
