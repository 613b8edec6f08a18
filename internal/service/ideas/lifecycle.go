package ideas

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ndvoronin/creatorpulse-backend/internal/domain"
)

// GetIdea returns a single suggestion readable by its creator's owner or an admin.
func (s *Service) GetIdea(ctx context.Context, id uuid.UUID) (domain.IdeaSuggestion, error) {
	idea, err := s.ideas.GetByID(ctx, id)
	if err != nil {
		return domain.IdeaSuggestion{}, fmt.Errorf("ideas.GetIdea: %w", err)
	}

	if _, err := s.requireCreatorOwner(ctx, idea.CreatorID); err != nil {
		return domain.IdeaSuggestion{}, err
	}
	return idea, nil
}

// UpdateIdeaStatus moves a suggestion through its creator-driven lifecycle
// (new, saved, implemented). Owner or admin only.
func (s *Service) UpdateIdeaStatus(ctx context.Context, id uuid.UUID, status domain.IdeaStatus) (domain.IdeaSuggestion, error) {
	if !status.IsValid() {
		return domain.IdeaSuggestion{}, domain.NewValidationError("status", "unknown idea status")
	}

	idea, err := s.ideas.GetByID(ctx, id)
	if err != nil {
		return domain.IdeaSuggestion{}, fmt.Errorf("ideas.UpdateIdeaStatus: %w", err)
	}
	if _, err := s.requireCreatorOwner(ctx, idea.CreatorID); err != nil {
		return domain.IdeaSuggestion{}, err
	}

	updated, err := s.ideas.UpdateStatus(ctx, id, status)
	if err != nil {
		return domain.IdeaSuggestion{}, fmt.Errorf("ideas.UpdateIdeaStatus: %w", err)
	}
	return updated, nil
}

// ListIdeas returns a creator's suggestions, newest first, optionally
// filtered by status. Owner or admin only.
func (s *Service) ListIdeas(ctx context.Context, in ListInput) ([]domain.IdeaSuggestion, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.requireCreatorOwner(ctx, in.CreatorID); err != nil {
		return nil, err
	}

	limit := in.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := in.Offset
	if offset < 0 {
		offset = 0
	}

	ideas, err := s.ideas.ListByCreator(ctx, in.CreatorID, in.Status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("ideas.ListIdeas: %w", err)
	}
	return ideas, nil
}

// ListBySnapshot returns the suggestions generated from one snapshot.
// Owner or admin only.
func (s *Service) ListBySnapshot(ctx context.Context, snapshotID uuid.UUID) ([]domain.IdeaSuggestion, error) {
	snap, err := s.snapshots.GetByID(ctx, snapshotID)
	if err != nil {
		return nil, fmt.Errorf("ideas.ListBySnapshot: %w", err)
	}
	if _, err := s.requireCreatorOwner(ctx, snap.CreatorID); err != nil {
		return nil, err
	}

	ideas, err := s.ideas.ListBySnapshot(ctx, snapshotID)
	if err != nil {
		return nil, fmt.Errorf("ideas.ListBySnapshot: %w", err)
	}
	return ideas, nil
}
