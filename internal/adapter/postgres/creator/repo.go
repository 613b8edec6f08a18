// Package creator implements the CreatorProfile repository using PostgreSQL.
package creator

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

const table = "creator_profiles"

var columns = []string{"id", "user_id", "display_name", "niche", "bio", "created_at", "updated_at"}

// Repo provides creator profile persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new creator repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new creator profile. A user may own at most one profile;
// a second insert maps to domain.ErrAlreadyExists via the unique constraint.
func (r *Repo) Create(ctx context.Context, p domain.CreatorProfile) (domain.CreatorProfile, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(p.ID, p.UserID, p.DisplayName, p.Niche, p.Bio, p.CreatedAt, p.UpdatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return domain.CreatorProfile{}, fmt.Errorf("build insert creator_profile: %w", err)
	}

	row, err := scanProfile(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return domain.CreatorProfile{}, postgres.MapError(err, "creator_profile", p.ID)
	}
	return row, nil
}

// GetByID returns a creator profile by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.CreatorProfile, error) {
	return r.getBy(ctx, sq.Eq{"id": id}, id)
}

// GetByUserID returns the profile owned by a user.
func (r *Repo) GetByUserID(ctx context.Context, userID uuid.UUID) (domain.CreatorProfile, error) {
	return r.getBy(ctx, sq.Eq{"user_id": userID}, userID)
}

// GetByIDs returns profiles for the given ids in no particular order.
// Missing ids are silently absent (dataloader contract).
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.CreatorProfile, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select creator_profiles: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("get creator_profiles by ids: %w", err)
	}
	defer rows.Close()

	var profiles []domain.CreatorProfile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("scan creator_profile: %w", err)
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

// Update overwrites display name, niche, and bio.
func (r *Repo) Update(ctx context.Context, p domain.CreatorProfile) (domain.CreatorProfile, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Update(table).
		Set("display_name", p.DisplayName).
		Set("niche", p.Niche).
		Set("bio", p.Bio).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": p.ID}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return domain.CreatorProfile{}, fmt.Errorf("build update creator_profile: %w", err)
	}

	row, err := scanProfile(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return domain.CreatorProfile{}, postgres.MapError(err, "creator_profile", p.ID)
	}
	return row, nil
}

// List returns creator profiles ordered by created_at DESC with pagination.
func (r *Repo) List(ctx context.Context, limit, offset int) ([]domain.CreatorProfile, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list creator_profiles: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list creator_profiles: %w", err)
	}
	defer rows.Close()

	var profiles []domain.CreatorProfile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("scan creator_profile: %w", err)
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

func (r *Repo) getBy(ctx context.Context, where sq.Eq, id uuid.UUID) (domain.CreatorProfile, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(where).
		ToSql()
	if err != nil {
		return domain.CreatorProfile{}, fmt.Errorf("build select creator_profile: %w", err)
	}

	row, err := scanProfile(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return domain.CreatorProfile{}, postgres.MapError(err, "creator_profile", id)
	}
	return row, nil
}

func scanProfile(row pgx.Row) (domain.CreatorProfile, error) {
	var p domain.CreatorProfile
	err := row.Scan(&p.ID, &p.UserID, &p.DisplayName, &p.Niche, &p.Bio, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}
