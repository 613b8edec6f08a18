package ideas

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ndvoronin/creatorpulse-backend/internal/config"
	"github.com/ndvoronin/creatorpulse-backend/internal/domain"
	"github.com/ndvoronin/creatorpulse-backend/pkg/ctxutil"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testCfg() config.PipelineConfig {
	return config.PipelineConfig{
		IdeaTimeout:        time.Second,
		IdeasPerGeneration: 3,
	}
}

const threeIdeasJSON = `[
  {"title": "Idea One", "description": "First.", "ideaType": "VIDEO", "outline": ["a"]},
  {"title": "Idea Two", "description": "Second.", "ideaType": "LIVE_QA", "outline": ["b"]},
  {"title": "Idea Three", "description": "Third.", "ideaType": "MINI_COURSE", "outline": ["c"]}
]`

type fixture struct {
	ownerID    uuid.UUID
	creatorID  uuid.UUID
	snapshotID uuid.UUID
	batchID    uuid.UUID

	ideas     *ideaRepoMock
	snapshots *snapshotRepoMock
	batches   *batchRepoMock
	creators  *creatorRepoMock
	activity  *activityLogMock

	created       []domain.IdeaSuggestion
	batchStatuses []domain.BatchStatus
}

func newFixture() *fixture {
	f := &fixture{
		ownerID:    uuid.New(),
		creatorID:  uuid.New(),
		snapshotID: uuid.New(),
		batchID:    uuid.New(),
	}

	f.ideas = &ideaRepoMock{
		CreateBatchFunc: func(ctx context.Context, ideas []domain.IdeaSuggestion) ([]domain.IdeaSuggestion, error) {
			f.created = ideas
			return ideas, nil
		},
	}
	f.snapshots = &snapshotRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (domain.SentimentSnapshot, error) {
			if id != f.snapshotID {
				return domain.SentimentSnapshot{}, domain.ErrNotFound
			}
			return domain.SentimentSnapshot{
				ID:             f.snapshotID,
				CreatorID:      f.creatorID,
				CommentBatchID: f.batchID,
				PositiveCount:  5,
				NeutralCount:   2,
				TopKeywords:    []string{"editing", "pacing"},
				TopRequests:    []string{"more tutorials"},
			}, nil
		},
	}
	f.batches = &batchRepoMock{
		UpdateStatusFunc: func(ctx context.Context, id uuid.UUID, status domain.BatchStatus) error {
			f.batchStatuses = append(f.batchStatuses, status)
			return nil
		},
	}
	f.creators = &creatorRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (domain.CreatorProfile, error) {
			if id != f.creatorID {
				return domain.CreatorProfile{}, domain.ErrNotFound
			}
			return domain.CreatorProfile{ID: f.creatorID, UserID: f.ownerID, Niche: "Technology"}, nil
		},
	}
	f.activity = &activityLogMock{}
	return f
}

func (f *fixture) service(provider textGenerator, configured bool) *Service {
	return NewService(testLogger(), f.ideas, f.snapshots, f.batches, f.creators,
		provider, txManagerMock{}, f.activity, testCfg(), configured)
}

func (f *fixture) ownerCtx() context.Context {
	return ctxutil.WithUserID(context.Background(), f.ownerID)
}

func staticProvider(response string) *textGeneratorMock {
	return &textGeneratorMock{
		GenerateTextFunc: func(ctx context.Context, prompt string) (string, error) {
			return response, nil
		},
	}
}

func TestService_Generate(t *testing.T) {
	t.Parallel()

	f := newFixture()
	var gotPrompt string
	provider := &textGeneratorMock{
		GenerateTextFunc: func(ctx context.Context, prompt string) (string, error) {
			gotPrompt = prompt
			return threeIdeasJSON, nil
		},
	}
	var gotMeta map[string]any
	f.activity.LogFunc = func(ctx context.Context, eventType domain.EventType, userID, creatorID *uuid.UUID, metadata map[string]any) error {
		if eventType != domain.EventIdeasGenerated {
			t.Errorf("event type = %s, want IDEAS_GENERATED", eventType)
		}
		gotMeta = metadata
		return nil
	}
	svc := f.service(provider, true)

	ideas, err := svc.Generate(f.ownerCtx(), GenerateInput{SnapshotID: f.snapshotID})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	if len(ideas) != 3 {
		t.Fatalf("got %d ideas, want 3", len(ideas))
	}
	for _, idea := range ideas {
		if idea.SourceSnapshotID != f.snapshotID {
			t.Errorf("SourceSnapshotID = %s, want %s", idea.SourceSnapshotID, f.snapshotID)
		}
		if idea.Status != domain.IdeaStatusNew {
			t.Errorf("status = %s, want NEW", idea.Status)
		}
		if idea.TierTarget != domain.TierTargetAll {
			t.Errorf("TierTarget = %s, want ALL", idea.TierTarget)
		}
	}

	if !strings.Contains(gotPrompt, "Technology") {
		t.Error("prompt must embed the creator's niche")
	}
	if !strings.Contains(gotPrompt, "more tutorials") {
		t.Error("prompt must embed the snapshot's top requests")
	}

	if len(f.batchStatuses) != 1 || f.batchStatuses[0] != domain.BatchStatusIdeasGenerated {
		t.Errorf("batch statuses = %v, want [IDEAS_GENERATED]", f.batchStatuses)
	}
	if gotMeta["count"] != 3 {
		t.Errorf("count metadata = %v, want 3", gotMeta["count"])
	}
	if gotMeta["tier_target"] != domain.TierTargetAll {
		t.Errorf("tier_target metadata = %v", gotMeta["tier_target"])
	}
}

func TestService_Generate_TierTarget(t *testing.T) {
	t.Parallel()

	f := newFixture()
	var gotPrompt string
	provider := &textGeneratorMock{
		GenerateTextFunc: func(ctx context.Context, prompt string) (string, error) {
			gotPrompt = prompt
			return threeIdeasJSON, nil
		},
	}
	svc := f.service(provider, true)

	target := string(domain.TierT2)
	ideas, err := svc.Generate(f.ownerCtx(), GenerateInput{SnapshotID: f.snapshotID, TierTarget: &target})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	for _, idea := range ideas {
		if idea.TierTarget != "T2" {
			t.Errorf("TierTarget = %s, want T2", idea.TierTarget)
		}
	}
	if !strings.Contains(gotPrompt, "tier T2") {
		t.Error("prompt must name the target tier")
	}
}

func TestService_Generate_NotConfigured(t *testing.T) {
	t.Parallel()

	f := newFixture()
	provider := &textGeneratorMock{
		GenerateTextFunc: func(ctx context.Context, prompt string) (string, error) {
			t.Error("provider must not be called without an API key")
			return "", nil
		},
	}
	svc := f.service(provider, false)

	_, err := svc.Generate(f.ownerCtx(), GenerateInput{SnapshotID: f.snapshotID})
	if !errors.Is(err, domain.ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
	if f.created != nil {
		t.Error("no ideas must be persisted")
	}
}

func TestService_Generate_ProviderError(t *testing.T) {
	t.Parallel()

	f := newFixture()
	provider := &textGeneratorMock{
		GenerateTextFunc: func(ctx context.Context, prompt string) (string, error) {
			return "", context.DeadlineExceeded
		},
	}
	svc := f.service(provider, true)

	if _, err := svc.Generate(f.ownerCtx(), GenerateInput{SnapshotID: f.snapshotID}); err == nil {
		t.Fatal("expected error on provider failure")
	}
	if f.created != nil {
		t.Error("no ideas must be persisted")
	}
}

func TestService_Generate_UnparsableResponse(t *testing.T) {
	t.Parallel()

	f := newFixture()
	svc := f.service(staticProvider("I have no ideas today."), true)

	_, err := svc.Generate(f.ownerCtx(), GenerateInput{SnapshotID: f.snapshotID})
	if err == nil {
		t.Fatal("expected error for unparsable response")
	}
	if !strings.Contains(err.Error(), "could not parse AI response") {
		t.Errorf("error = %q, want parse-specific message", err)
	}
	if f.created != nil {
		t.Error("no ideas must be persisted")
	}
}

func TestService_Generate_NormalizesIdeas(t *testing.T) {
	t.Parallel()

	f := newFixture()
	response := `[
	  {"description": "No title here.", "ideaType": "ESSAY", "outline": "not an array"},
	  {"title": "Named", "ideaType": "LIVE_QA", "outline": ["x"]},
	  {"title": "Third", "ideaType": "VIDEO"}
	]`
	svc := f.service(staticProvider(response), true)

	ideas, err := svc.Generate(f.ownerCtx(), GenerateInput{SnapshotID: f.snapshotID})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	if ideas[0].Title != "Untitled Idea" {
		t.Errorf("title = %q, want Untitled Idea", ideas[0].Title)
	}
	if ideas[0].IdeaType != domain.IdeaTypeVideo {
		t.Errorf("ideaType = %s, want fallback VIDEO", ideas[0].IdeaType)
	}
	if ideas[0].Outline == nil || len(ideas[0].Outline) != 0 {
		t.Errorf("outline = %v, want empty non-nil", ideas[0].Outline)
	}
}

func TestService_Generate_InvalidTierTarget(t *testing.T) {
	t.Parallel()

	f := newFixture()
	svc := f.service(staticProvider(threeIdeasJSON), true)

	target := "GOLD"
	_, err := svc.Generate(f.ownerCtx(), GenerateInput{SnapshotID: f.snapshotID, TierTarget: &target})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestService_Generate_Forbidden(t *testing.T) {
	t.Parallel()

	f := newFixture()
	svc := f.service(staticProvider(threeIdeasJSON), true)

	ctx := ctxutil.WithUserID(context.Background(), uuid.New())
	if _, err := svc.Generate(ctx, GenerateInput{SnapshotID: f.snapshotID}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestService_UpdateIdeaStatus(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ideaID := uuid.New()
	f.ideas.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (domain.IdeaSuggestion, error) {
		return domain.IdeaSuggestion{ID: ideaID, CreatorID: f.creatorID, Status: domain.IdeaStatusNew}, nil
	}
	f.ideas.UpdateStatusFunc = func(ctx context.Context, id uuid.UUID, status domain.IdeaStatus) (domain.IdeaSuggestion, error) {
		return domain.IdeaSuggestion{ID: id, CreatorID: f.creatorID, Status: status}, nil
	}
	svc := f.service(nil, false)

	updated, err := svc.UpdateIdeaStatus(f.ownerCtx(), ideaID, domain.IdeaStatusSaved)
	if err != nil {
		t.Fatalf("UpdateIdeaStatus returned error: %v", err)
	}
	if updated.Status != domain.IdeaStatusSaved {
		t.Errorf("status = %s, want SAVED", updated.Status)
	}
}

func TestService_UpdateIdeaStatus_Invalid(t *testing.T) {
	t.Parallel()

	f := newFixture()
	svc := f.service(nil, false)

	_, err := svc.UpdateIdeaStatus(f.ownerCtx(), uuid.New(), domain.IdeaStatus("ARCHIVED"))
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestService_UpdateIdeaStatus_Forbidden(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ideaID := uuid.New()
	f.ideas.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (domain.IdeaSuggestion, error) {
		return domain.IdeaSuggestion{ID: ideaID, CreatorID: f.creatorID}, nil
	}
	svc := f.service(nil, false)

	ctx := ctxutil.WithUserID(context.Background(), uuid.New())
	if _, err := svc.UpdateIdeaStatus(ctx, ideaID, domain.IdeaStatusSaved); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestService_ListIdeas_ClampsLimit(t *testing.T) {
	t.Parallel()

	f := newFixture()
	var gotLimit int
	f.ideas.ListByCreatorFunc = func(ctx context.Context, creatorID uuid.UUID, status *domain.IdeaStatus, limit, offset int) ([]domain.IdeaSuggestion, error) {
		gotLimit = limit
		return nil, nil
	}
	svc := f.service(nil, false)

	if _, err := svc.ListIdeas(f.ownerCtx(), ListInput{CreatorID: f.creatorID, Limit: -1}); err != nil {
		t.Fatalf("ListIdeas returned error: %v", err)
	}
	if gotLimit != 20 {
		t.Errorf("limit = %d, want default 20", gotLimit)
	}
}
