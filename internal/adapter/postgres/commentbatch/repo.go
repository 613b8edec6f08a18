// Package commentbatch implements the CommentBatch repository using
// PostgreSQL. The comment payload is stored as a JSONB document; it is
// written once at import and never modified. Only the pipeline status
// column changes after creation.
package commentbatch

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

const table = "comment_batches"

var columns = []string{
	"id", "creator_id", "source", "raw_comments", "status",
	"linked_content_item_id", "imported_at",
}

// Repo provides comment batch persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new comment batch repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new immutable batch and returns the persisted row.
func (r *Repo) Create(ctx context.Context, b domain.CommentBatch) (domain.CommentBatch, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	payload, err := json.Marshal(b.RawComments)
	if err != nil {
		return domain.CommentBatch{}, fmt.Errorf("comment_batch marshal comments: %w", err)
	}

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(b.ID, b.CreatorID, b.Source, payload, b.Status, b.LinkedContentItemID, b.ImportedAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return domain.CommentBatch{}, fmt.Errorf("build insert comment_batch: %w", err)
	}

	row, err := scanBatch(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return domain.CommentBatch{}, postgres.MapError(err, "comment_batch", b.ID)
	}
	return row, nil
}

// GetByID returns a batch by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.CommentBatch, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return domain.CommentBatch{}, fmt.Errorf("build select comment_batch: %w", err)
	}

	row, err := scanBatch(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return domain.CommentBatch{}, postgres.MapError(err, "comment_batch", id)
	}
	return row, nil
}

// ListByCreator returns a creator's batches ordered by imported_at DESC.
func (r *Repo) ListByCreator(ctx context.Context, creatorID uuid.UUID, limit, offset int) ([]domain.CommentBatch, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	countSQL, countArgs, err := postgres.Builder().
		Select("COUNT(*)").
		From(table).
		Where(sq.Eq{"creator_id": creatorID}).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count comment_batches: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count comment_batches: %w", err)
	}

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"creator_id": creatorID}).
		OrderBy("imported_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list comment_batches: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list comment_batches: %w", err)
	}
	defer rows.Close()

	var batches []domain.CommentBatch
	for rows.Next() {
		b, err := scanBatch(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan comment_batch: %w", err)
		}
		batches = append(batches, b)
	}
	return batches, total, rows.Err()
}

// UpdateStatus moves a batch to a new pipeline status.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BatchStatus) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Update(table).
		Set("status", status).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update comment_batch status: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "comment_batch", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("comment_batch %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanBatch(row pgx.Row) (domain.CommentBatch, error) {
	var (
		b       domain.CommentBatch
		payload []byte
	)
	err := row.Scan(&b.ID, &b.CreatorID, &b.Source, &payload, &b.Status,
		&b.LinkedContentItemID, &b.ImportedAt)
	if err != nil {
		return domain.CommentBatch{}, err
	}
	if err := json.Unmarshal(payload, &b.RawComments); err != nil {
		return domain.CommentBatch{}, fmt.Errorf("comment_batch %s unmarshal comments: %w", b.ID, err)
	}
	return b, nil
}
