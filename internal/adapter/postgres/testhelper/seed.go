package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ndvoronin/creatorpulse-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with the given role. Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool, role domain.UserRole) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		Name:         "Test User " + suffix,
		PasswordHash: "$2a$10$test-hash-" + suffix,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, name, password_hash, role, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Email, user.Name, user.PasswordHash, string(user.Role), user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedCreator creates a user plus a creator profile owned by that user.
// Returns the filled domain.CreatorProfile.
func SeedCreator(t *testing.T, pool *pgxpool.Pool) domain.CreatorProfile {
	t.Helper()
	ctx := context.Background()

	user := SeedUser(t, pool, domain.UserRoleUser)

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	bio := "Test bio " + suffix
	creator := domain.CreatorProfile{
		ID:          uuid.New(),
		UserID:      user.ID,
		DisplayName: "Creator " + suffix,
		Niche:       "woodworking",
		Bio:         &bio,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO creator_profiles (id, user_id, display_name, niche, bio, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		creator.ID, creator.UserID, creator.DisplayName, creator.Niche, creator.Bio, creator.CreatedAt, creator.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCreator insert creator_profile: %v", err)
	}

	return creator
}

// SeedSubscriber subscribes a fresh user to the given creator at the given tier.
// Returns the filled domain.SubscriberProfile.
func SeedSubscriber(t *testing.T, pool *pgxpool.Pool, creatorID uuid.UUID, tier domain.Tier) domain.SubscriberProfile {
	t.Helper()
	ctx := context.Background()

	user := SeedUser(t, pool, domain.UserRoleUser)

	now := time.Now().UTC().Truncate(time.Microsecond)
	sub := domain.SubscriberProfile{
		ID:        uuid.New(),
		UserID:    user.ID,
		CreatorID: creatorID,
		Tier:      tier,
		JoinedAt:  now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO subscriber_profiles (id, user_id, creator_id, tier, joined_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		sub.ID, sub.UserID, sub.CreatorID, string(sub.Tier), sub.JoinedAt, sub.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSubscriber insert subscriber_profile: %v", err)
	}

	return sub
}

// SeedCommentBatch creates a comment batch for the creator with the given
// comments and status IMPORTED.
func SeedCommentBatch(t *testing.T, pool *pgxpool.Pool, creatorID uuid.UUID, comments []domain.RawComment) domain.CommentBatch {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	batch := domain.CommentBatch{
		ID:          uuid.New(),
		CreatorID:   creatorID,
		Source:      domain.BatchSourceManualPaste,
		RawComments: comments,
		Status:      domain.BatchStatusImported,
		ImportedAt:  now,
	}

	payload, err := json.Marshal(batch.RawComments)
	if err != nil {
		t.Fatalf("testhelper: SeedCommentBatch marshal comments: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO comment_batches (id, creator_id, source, raw_comments, status, imported_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		batch.ID, batch.CreatorID, string(batch.Source), payload, string(batch.Status), batch.ImportedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCommentBatch insert comment_batch: %v", err)
	}

	return batch
}
