// Package subscriber implements the SubscriberProfile repository using
// PostgreSQL. The table enforces one row per (user, creator) pair; tier
// changes are upserts against that constraint.
package subscriber

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ndvoronin/creatorpulse-backend/internal/adapter/postgres"
	"github.com/ndvoronin/creatorpulse-backend/internal/domain"
)

const table = "subscriber_profiles"

var columns = []string{"id", "user_id", "creator_id", "tier", "joined_at", "updated_at"}

// Repo provides subscriber profile persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new subscriber repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Upsert inserts a subscription or, when the (user, creator) pair already
// exists, updates its tier in place. Returns the persisted row and whether
// a new subscription was created.
func (r *Repo) Upsert(ctx context.Context, s domain.SubscriberProfile) (domain.SubscriberProfile, bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(s.ID, s.UserID, s.CreatorID, s.Tier, s.JoinedAt, s.UpdatedAt).
		Suffix(`ON CONFLICT (user_id, creator_id) DO UPDATE
			SET tier = EXCLUDED.tier, updated_at = EXCLUDED.updated_at
			RETURNING ` + strings.Join(columns, ", ") + `, (xmax = 0) AS inserted`).
		ToSql()
	if err != nil {
		return domain.SubscriberProfile{}, false, fmt.Errorf("build upsert subscriber_profile: %w", err)
	}

	var (
		out      domain.SubscriberProfile
		inserted bool
	)
	err = q.QueryRow(ctx, sql, args...).Scan(
		&out.ID, &out.UserID, &out.CreatorID, &out.Tier, &out.JoinedAt, &out.UpdatedAt, &inserted,
	)
	if err != nil {
		return domain.SubscriberProfile{}, false, postgres.MapError(err, "subscriber_profile", s.ID)
	}
	return out, inserted, nil
}

// GetByUserAndCreator returns the subscription a user holds with a creator.
func (r *Repo) GetByUserAndCreator(ctx context.Context, userID, creatorID uuid.UUID) (domain.SubscriberProfile, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID, "creator_id": creatorID}).
		ToSql()
	if err != nil {
		return domain.SubscriberProfile{}, fmt.Errorf("build select subscriber_profile: %w", err)
	}

	row, err := scanSubscriber(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return domain.SubscriberProfile{}, postgres.MapError(err, "subscriber_profile", userID)
	}
	return row, nil
}

// ListByCreator returns a creator's subscribers ordered by joined_at DESC.
func (r *Repo) ListByCreator(ctx context.Context, creatorID uuid.UUID, limit, offset int) ([]domain.SubscriberProfile, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"creator_id": creatorID}).
		OrderBy("joined_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list subscriber_profiles: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list subscriber_profiles: %w", err)
	}
	defer rows.Close()

	var subs []domain.SubscriberProfile
	for rows.Next() {
		s, err := scanSubscriber(rows)
		if err != nil {
			return nil, fmt.Errorf("scan subscriber_profile: %w", err)
		}
		subs = append(subs, s)
	}
	return subs, rows.Err()
}

// CountByCreator returns the number of active subscriptions for a creator.
func (r *Repo) CountByCreator(ctx context.Context, creatorID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select("COUNT(*)").
		From(table).
		Where(sq.Eq{"creator_id": creatorID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count subscriber_profiles: %w", err)
	}

	var count int
	if err := q.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count subscriber_profiles: %w", err)
	}
	return count, nil
}

func scanSubscriber(row pgx.Row) (domain.SubscriberProfile, error) {
	var s domain.SubscriberProfile
	err := row.Scan(&s.ID, &s.UserID, &s.CreatorID, &s.Tier, &s.JoinedAt, &s.UpdatedAt)
	return s, err
}
