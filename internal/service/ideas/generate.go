package ideas

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ndvoronin/creatorpulse-backend/internal/domain"
)

// Generate runs one idea generation call against the snapshot's sentiment
// data and persists the resulting suggestions. Timeouts and unparsable
// responses are hard failures.
func (s *Service) Generate(ctx context.Context, in GenerateInput) ([]domain.IdeaSuggestion, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	snap, err := s.snapshots.GetByID(ctx, in.SnapshotID)
	if err != nil {
		return nil, fmt.Errorf("ideas.Generate get snapshot: %w", err)
	}

	creator, err := s.requireCreatorOwner(ctx, snap.CreatorID)
	if err != nil {
		return nil, err
	}

	if !s.configured {
		return nil, fmt.Errorf("text generation provider is not configured: %w", domain.ErrConfiguration)
	}

	tierTarget := in.tierTarget()
	prompt := buildPrompt(snap, creator.Niche, tierTarget, s.cfg.IdeasPerGeneration)

	callCtx, cancel := context.WithTimeout(ctx, s.cfg.IdeaTimeout)
	defer cancel()

	response, err := s.provider.GenerateText(callCtx, prompt)
	if err != nil {
		return nil, fmt.Errorf("ideas.Generate provider call: %w", err)
	}

	wire, err := parseIdeas(response)
	if err != nil {
		return nil, fmt.Errorf("ideas.Generate: %w", err)
	}
	if len(wire) > s.cfg.IdeasPerGeneration {
		wire = wire[:s.cfg.IdeasPerGeneration]
	}

	now := time.Now().UTC()
	suggestions := make([]domain.IdeaSuggestion, len(wire))
	for i, w := range wire {
		title, description, ideaType, outline := normalizeIdea(w)
		suggestions[i] = domain.IdeaSuggestion{
			ID:               uuid.New(),
			CreatorID:        snap.CreatorID,
			SourceSnapshotID: snap.ID,
			TierTarget:       tierTarget,
			IdeaType:         ideaType,
			Title:            title,
			Description:      description,
			Outline:          outline,
			Status:           domain.IdeaStatusNew,
			CreatedAt:        now,
			UpdatedAt:        now,
		}
	}

	var created []domain.IdeaSuggestion
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var txErr error
		created, txErr = s.ideas.CreateBatch(ctx, suggestions)
		if txErr != nil {
			return txErr
		}
		return s.batches.UpdateStatus(ctx, snap.CommentBatchID, domain.BatchStatusIdeasGenerated)
	})
	if err != nil {
		return nil, fmt.Errorf("ideas.Generate persist: %w", err)
	}

	if err := s.activity.Log(ctx, domain.EventIdeasGenerated, nil, &creator.ID, map[string]any{
		"snapshot_id": snap.ID.String(),
		"count":       len(created),
		"tier_target": tierTarget,
	}); err != nil {
		s.log.WarnContext(ctx, "failed to record generation event", slog.Any("error", err))
	}

	s.log.InfoContext(ctx, "ideas generated",
		slog.String("snapshot_id", snap.ID.String()),
		slog.Int("count", len(created)),
		slog.String("tier_target", tierTarget))

	return created, nil
}
