// Package content implements the ContentItem repository using PostgreSQL.
package content

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ndvoronin/creatorpulse-backend/internal/adapter/postgres"
	"github.com/ndvoronin/creatorpulse-backend/internal/domain"
)

const table = "content_items"

var columns = []string{
	"id", "creator_id", "title", "content_type", "is_premium",
	"required_tier", "status", "created_at", "updated_at", "published_at",
}

// Repo provides content item persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new content repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new content item and returns the persisted row.
func (r *Repo) Create(ctx context.Context, c domain.ContentItem) (domain.ContentItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(c.ID, c.CreatorID, c.Title, c.Type, c.IsPremium,
			c.RequiredTier, c.Status, c.CreatedAt, c.UpdatedAt, c.PublishedAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return domain.ContentItem{}, fmt.Errorf("build insert content_item: %w", err)
	}

	row, err := scanItem(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return domain.ContentItem{}, postgres.MapError(err, "content_item", c.ID)
	}
	return row, nil
}

// GetByID returns a content item by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.ContentItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return domain.ContentItem{}, fmt.Errorf("build select content_item: %w", err)
	}

	row, err := scanItem(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return domain.ContentItem{}, postgres.MapError(err, "content_item", id)
	}
	return row, nil
}

// Update overwrites the mutable fields of a content item.
func (r *Repo) Update(ctx context.Context, c domain.ContentItem) (domain.ContentItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Update(table).
		Set("title", c.Title).
		Set("content_type", c.Type).
		Set("is_premium", c.IsPremium).
		Set("required_tier", c.RequiredTier).
		Set("status", c.Status).
		Set("published_at", c.PublishedAt).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": c.ID}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return domain.ContentItem{}, fmt.Errorf("build update content_item: %w", err)
	}

	row, err := scanItem(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return domain.ContentItem{}, postgres.MapError(err, "content_item", c.ID)
	}
	return row, nil
}

// ListByCreator returns a creator's content ordered by created_at DESC.
// When publishedOnly is true, drafts are excluded in SQL.
func (r *Repo) ListByCreator(ctx context.Context, creatorID uuid.UUID, publishedOnly bool, limit, offset int) ([]domain.ContentItem, error) {
	builder := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"creator_id": creatorID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	if publishedOnly {
		builder = builder.Where(sq.Eq{"status": domain.ContentStatusPublished})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list content_items: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list content_items: %w", err)
	}
	defer rows.Close()

	var items []domain.ContentItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan content_item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// Delete removes a content item. Returns domain.ErrNotFound if absent.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete content_item: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "content_item", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("content_item %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanItem(row pgx.Row) (domain.ContentItem, error) {
	var c domain.ContentItem
	err := row.Scan(&c.ID, &c.CreatorID, &c.Title, &c.Type, &c.IsPremium,
		&c.RequiredTier, &c.Status, &c.CreatedAt, &c.UpdatedAt, &c.PublishedAt)
	return c, err
}
