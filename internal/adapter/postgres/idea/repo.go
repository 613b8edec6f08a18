// Package idea implements the IdeaSuggestion repository using PostgreSQL.
package idea

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

const table = "idea_suggestions"

var columns = []string{
	"id", "creator_id", "source_snapshot_id", "tier_target", "idea_type",
	"title", "description", "outline", "status", "created_at", "updated_at",
}

// Repo provides idea suggestion persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new idea repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// CreateBatch inserts a generation's ideas. The caller wraps this in a
// transaction so a partial generation is never persisted.
func (r *Repo) CreateBatch(ctx context.Context, ideas []domain.IdeaSuggestion) ([]domain.IdeaSuggestion, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	builder := postgres.Builder().
		Insert(table).
		Columns(columns...)

	for _, i := range ideas {
		outline, err := json.Marshal(i.Outline)
		if err != nil {
			return nil, fmt.Errorf("idea marshal outline: %w", err)
		}
		builder = builder.Values(i.ID, i.CreatorID, i.SourceSnapshotID, i.TierTarget, i.IdeaType,
			i.Title, i.Description, outline, i.Status, i.CreatedAt, i.UpdatedAt)
	}

	sql, args, err := builder.
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert ideas: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "idea", uuid.Nil)
	}
	defer rows.Close()

	var created []domain.IdeaSuggestion
	for rows.Next() {
		i, err := scanIdea(rows)
		if err != nil {
			return nil, fmt.Errorf("scan idea: %w", err)
		}
		created = append(created, i)
	}
	return created, rows.Err()
}

// GetByID returns an idea by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.IdeaSuggestion, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return domain.IdeaSuggestion{}, fmt.Errorf("build select idea: %w", err)
	}

	row, err := scanIdea(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return domain.IdeaSuggestion{}, postgres.MapError(err, "idea", id)
	}
	return row, nil
}

// UpdateStatus transitions an idea's workflow status and returns the
// updated row.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.IdeaStatus) (domain.IdeaSuggestion, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Update(table).
		Set("status", status).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return domain.IdeaSuggestion{}, fmt.Errorf("build update idea status: %w", err)
	}

	row, err := scanIdea(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return domain.IdeaSuggestion{}, postgres.MapError(err, "idea", id)
	}
	return row, nil
}

// ListByCreator returns a creator's ideas, newest first, optionally
// filtered by status.
func (r *Repo) ListByCreator(ctx context.Context, creatorID uuid.UUID, status *domain.IdeaStatus, limit, offset int) ([]domain.IdeaSuggestion, error) {
	builder := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"creator_id": creatorID})
	if status != nil {
		builder = builder.Where(sq.Eq{"status": *status})
	}

	sql, args, err := builder.
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list ideas: %w", err)
	}
	return r.list(ctx, sql, args)
}

// ListBySnapshot returns the ideas generated from one snapshot.
func (r *Repo) ListBySnapshot(ctx context.Context, snapshotID uuid.UUID) ([]domain.IdeaSuggestion, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"source_snapshot_id": snapshotID}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list ideas by snapshot: %w", err)
	}
	return r.list(ctx, sql, args)
}

// GetBySnapshotIDs loads ideas for many snapshots in one query, for the
// dataloader. Results are keyed by source_snapshot_id.
func (r *Repo) GetBySnapshotIDs(ctx context.Context, snapshotIDs []uuid.UUID) (map[uuid.UUID][]domain.IdeaSuggestion, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"source_snapshot_id": snapshotIDs}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build batch-load ideas: %w", err)
	}

	ideas, err := r.list(ctx, sql, args)
	if err != nil {
		return nil, err
	}

	bySnapshot := make(map[uuid.UUID][]domain.IdeaSuggestion, len(snapshotIDs))
	for _, i := range ideas {
		bySnapshot[i.SourceSnapshotID] = append(bySnapshot[i.SourceSnapshotID], i)
	}
	return bySnapshot, nil
}

func (r *Repo) list(ctx context.Context, sql string, args []any) ([]domain.IdeaSuggestion, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list ideas: %w", err)
	}
	defer rows.Close()

	var ideas []domain.IdeaSuggestion
	for rows.Next() {
		i, err := scanIdea(rows)
		if err != nil {
			return nil, fmt.Errorf("scan idea: %w", err)
		}
		ideas = append(ideas, i)
	}
	return ideas, rows.Err()
}

func scanIdea(row pgx.Row) (domain.IdeaSuggestion, error) {
	var (
		i       domain.IdeaSuggestion
		outline []byte
	)
	err := row.Scan(&i.ID, &i.CreatorID, &i.SourceSnapshotID, &i.TierTarget, &i.IdeaType,
		&i.Title, &i.Description, &outline, &i.Status, &i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		return domain.IdeaSuggestion{}, err
	}
	if err := json.Unmarshal(outline, &i.Outline); err != nil {
		return domain.IdeaSuggestion{}, fmt.Errorf("idea %s unmarshal outline: %w", i.ID, err)
	}
	return i, nil
}
