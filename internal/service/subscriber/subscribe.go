package subscriber

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ndvoronin/creatorpulse-backend/internal/domain"
	"github.com/ndvoronin/creatorpulse-backend/pkg/ctxutil"
)

// SubscribeInput holds parameters for the subscribe operation.
type SubscribeInput struct {
	CreatorID uuid.UUID
	Tier      domain.Tier
}

// Validate validates the subscribe input.
func (i SubscribeInput) Validate() error {
	var errs []domain.FieldError

	if i.CreatorID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "creator_id", Message: "required"})
	}
	if !i.Tier.IsValid() {
		errs = append(errs, domain.FieldError{Field: "tier", Message: "must be T1, T2 or T3"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Subscribe starts or changes a subscription to a creator. One row exists
// per (user, creator) pair; subscribing again at a different tier moves the
// existing subscription to that tier, up or down.
func (s *Service) Subscribe(ctx context.Context, input SubscribeInput) (domain.SubscriberProfile, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.SubscriberProfile{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.SubscriberProfile{}, err
	}

	creator, err := s.creators.GetByID(ctx, input.CreatorID)
	if err != nil {
		return domain.SubscriberProfile{}, fmt.Errorf("subscriber.Subscribe get creator: %w", err)
	}
	if creator.UserID == userID {
		return domain.SubscriberProfile{}, fmt.Errorf("subscriber.Subscribe: cannot subscribe to own profile: %w", domain.ErrConflict)
	}

	previousTier := ""
	if existing, err := s.subscribers.GetByUserAndCreator(ctx, userID, input.CreatorID); err == nil {
		previousTier = existing.Tier.String()
	} else if !errors.Is(err, domain.ErrNotFound) {
		return domain.SubscriberProfile{}, fmt.Errorf("subscriber.Subscribe get existing: %w", err)
	}

	now := time.Now().UTC()
	sub, inserted, err := s.subscribers.Upsert(ctx, domain.SubscriberProfile{
		ID:        uuid.New(),
		UserID:    userID,
		CreatorID: input.CreatorID,
		Tier:      input.Tier,
		JoinedAt:  now,
		UpdatedAt: now,
	})
	if err != nil {
		return domain.SubscriberProfile{}, fmt.Errorf("subscriber.Subscribe: %w", err)
	}

	switch {
	case inserted:
		if err := s.activity.Log(ctx, domain.EventSubscriptionStarted, &userID, &input.CreatorID,
			map[string]any{"tier": input.Tier.String()}); err != nil {
			s.log.WarnContext(ctx, "failed to record subscription event", slog.Any("error", err))
		}
	case previousTier != input.Tier.String():
		if err := s.activity.Log(ctx, domain.EventSubscriptionTierChange, &userID, &input.CreatorID,
			map[string]any{"from": previousTier, "to": input.Tier.String()}); err != nil {
			s.log.WarnContext(ctx, "failed to record tier change event", slog.Any("error", err))
		}
	}

	s.log.InfoContext(ctx, "subscription upserted",
		slog.String("creator_id", input.CreatorID.String()),
		slog.String("tier", input.Tier.String()),
		slog.Bool("new", inserted))

	return sub, nil
}

// MySubscription returns the current user's subscription to a creator, or
// ErrNotFound when none exists.
func (s *Service) MySubscription(ctx context.Context, creatorID uuid.UUID) (domain.SubscriberProfile, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.SubscriberProfile{}, domain.ErrUnauthorized
	}

	sub, err := s.subscribers.GetByUserAndCreator(ctx, userID, creatorID)
	if err != nil {
		return domain.SubscriberProfile{}, fmt.Errorf("subscriber.MySubscription: %w", err)
	}
	return sub, nil
}

// ListSubscribers returns the current creator's subscribers plus the total
// count. Only the profile owner may call this.
func (s *Service) ListSubscribers(ctx context.Context, limit, offset int) ([]domain.SubscriberProfile, int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, 0, domain.ErrUnauthorized
	}

	creator, err := s.creators.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, 0, domain.ErrForbidden
		}
		return nil, 0, fmt.Errorf("subscriber.ListSubscribers get creator: %w", err)
	}

	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	subs, err := s.subscribers.ListByCreator(ctx, creator.ID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("subscriber.ListSubscribers: %w", err)
	}

	total, err := s.subscribers.CountByCreator(ctx, creator.ID)
	if err != nil {
		return nil, 0, fmt.Errorf("subscriber.ListSubscribers count: %w", err)
	}

	return subs, total, nil
}

// CountSubscribers returns a creator's subscriber count. Public.
func (s *Service) CountSubscribers(ctx context.Context, creatorID uuid.UUID) (int, error) {
	count, err := s.subscribers.CountByCreator(ctx, creatorID)
	if err != nil {
		return 0, fmt.Errorf("subscriber.CountSubscribers: %w", err)
	}
	return count, nil
}
