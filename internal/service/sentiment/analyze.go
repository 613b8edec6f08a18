package sentiment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ndvoronin/creatorpulse-backend/internal/domain"
)

// AnalyzeResult carries the persisted snapshot plus how many chunks fell
// back to neutral classification, so a degraded run is distinguishable
// from a clean one.
type AnalyzeResult struct {
	Snapshot       domain.SentimentSnapshot
	DegradedChunks int
}

// Analyze runs sentiment analysis over one comment batch and persists a
// new snapshot. A batch may be analyzed repeatedly; every run produces a
// fresh snapshot. Chunk failures degrade to neutral instead of failing
// the batch.
func (s *Service) Analyze(ctx context.Context, batchID uuid.UUID) (AnalyzeResult, error) {
	batch, err := s.batches.GetByID(ctx, batchID)
	if err != nil {
		return AnalyzeResult{}, fmt.Errorf("sentiment.Analyze get batch: %w", err)
	}

	creator, err := s.requireCreatorOwner(ctx, batch.CreatorID)
	if err != nil {
		return AnalyzeResult{}, err
	}

	if err := s.batches.UpdateStatus(ctx, batch.ID, domain.BatchStatusAnalyzing); err != nil {
		return AnalyzeResult{}, fmt.Errorf("sentiment.Analyze mark analyzing: %w", err)
	}

	judgments, degraded := s.classifyAll(ctx, batch.RawComments)

	snap := aggregate(batch.RawComments, judgments, s.cfg.TopKeywords)
	snap.ID = uuid.New()
	snap.CreatorID = batch.CreatorID
	snap.CommentBatchID = batch.ID
	snap.TopRequests = s.extractRequests(ctx, batch.RawComments)
	snap.CreatedAt = time.Now().UTC()

	first, last := timeRange(batch.RawComments)
	snap.TimeRangeStart = first.Timestamp
	snap.TimeRangeEnd = last.Timestamp

	created, err := s.snapshots.Create(ctx, snap)
	if err != nil {
		return AnalyzeResult{}, fmt.Errorf("sentiment.Analyze persist snapshot: %w", err)
	}

	if err := s.batches.UpdateStatus(ctx, batch.ID, domain.BatchStatusAnalyzed); err != nil {
		// The snapshot is already durable; a failed status write leaves the
		// batch resumable but does not invalidate the analysis.
		s.log.WarnContext(ctx, "failed to mark batch analyzed", slog.Any("error", err))
	}

	if err := s.activity.Log(ctx, domain.EventSentimentAnalyzed, nil, &creator.ID, map[string]any{
		"batch_id":        batch.ID.String(),
		"snapshot_id":     created.ID.String(),
		"comment_count":   batch.CommentCount(),
		"degraded_chunks": degraded,
	}); err != nil {
		s.log.WarnContext(ctx, "failed to record analysis event", slog.Any("error", err))
	}

	s.log.InfoContext(ctx, "batch analyzed",
		slog.String("batch_id", batch.ID.String()),
		slog.String("snapshot_id", created.ID.String()),
		slog.Int("degraded_chunks", degraded))

	return AnalyzeResult{Snapshot: created, DegradedChunks: degraded}, nil
}

// classifyAll runs the chunked classification calls. Without a configured
// provider every chunk is neutral and no network call is made.
func (s *Service) classifyAll(ctx context.Context, comments []domain.RawComment) ([]domain.CommentJudgment, int) {
	judgments := make([]domain.CommentJudgment, 0, len(comments))
	degraded := 0

	for start := 0; start < len(comments); start += s.cfg.ChunkSize {
		end := min(start+s.cfg.ChunkSize, len(comments))
		chunk := comments[start:end]

		chunkJudgments, ok := s.classifyChunk(ctx, chunk)
		if !ok {
			degraded++
			chunkJudgments = neutralChunk(len(chunk))
		}
		judgments = append(judgments, chunkJudgments...)
	}

	return judgments, degraded
}

// classifyChunk issues one time-boxed model call for a chunk. Any failure
// (no provider, timeout, unparsable response) reports ok=false.
func (s *Service) classifyChunk(ctx context.Context, chunk []domain.RawComment) ([]domain.CommentJudgment, bool) {
	if !s.configured {
		return nil, false
	}

	callCtx, cancel := context.WithTimeout(ctx, s.cfg.ChunkTimeout)
	defer cancel()

	response, err := s.provider.GenerateText(callCtx, buildClassifyPrompt(chunk))
	if err != nil {
		s.log.WarnContext(ctx, "chunk classification failed", slog.Any("error", err))
		return nil, false
	}

	judgments, err := parseJudgments(response, len(chunk))
	if err != nil {
		s.log.WarnContext(ctx, "chunk response unparsable", slog.Any("error", err))
		return nil, false
	}
	return judgments, true
}

// extractRequests summarizes a sample of comment texts into at most
// MaxRequests feature-request strings. Failure yields an empty list and
// never fails the snapshot.
func (s *Service) extractRequests(ctx context.Context, comments []domain.RawComment) []string {
	if !s.configured {
		return []string{}
	}

	sample := comments
	if len(sample) > s.cfg.RequestSampleSize {
		sample = sample[:s.cfg.RequestSampleSize]
	}
	texts := make([]string, len(sample))
	for i, c := range sample {
		texts[i] = c.Text
	}

	callCtx, cancel := context.WithTimeout(ctx, s.cfg.ChunkTimeout)
	defer cancel()

	response, err := s.provider.GenerateText(callCtx, buildRequestsPrompt(texts, s.cfg.MaxRequests))
	if err != nil {
		s.log.WarnContext(ctx, "request extraction failed", slog.Any("error", err))
		return []string{}
	}

	requests, err := parseRequests(response, s.cfg.MaxRequests)
	if err != nil {
		s.log.WarnContext(ctx, "request response unparsable", slog.Any("error", err))
		return []string{}
	}
	return requests
}

func neutralChunk(n int) []domain.CommentJudgment {
	judgments := make([]domain.CommentJudgment, n)
	for i := range judgments {
		judgments[i] = domain.NeutralJudgment()
	}
	return judgments
}
