package resolver

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ndvoronin/creatorpulse-backend/internal/domain"
	"github.com/ndvoronin/creatorpulse-backend/internal/service/activity"
	"github.com/ndvoronin/creatorpulse-backend/internal/service/auth"
	"github.com/ndvoronin/creatorpulse-backend/internal/service/comments"
	"github.com/ndvoronin/creatorpulse-backend/internal/service/content"
	"github.com/ndvoronin/creatorpulse-backend/internal/service/creator"
	"github.com/ndvoronin/creatorpulse-backend/internal/service/ideas"
	"github.com/ndvoronin/creatorpulse-backend/internal/service/sentiment"
	"github.com/ndvoronin/creatorpulse-backend/internal/service/subscriber"
)

// authService defines what resolver needs from the Auth service.
type authService interface {
	Register(ctx context.Context, input auth.RegisterInput) (auth.AuthResult, error)
	Login(ctx context.Context, input auth.LoginInput) (auth.AuthResult, error)
	Me(ctx context.Context) (domain.User, error)
}

// creatorService defines what resolver needs from the Creator service.
type creatorService interface {
	CreateProfile(ctx context.Context, input creator.CreateProfileInput) (domain.CreatorProfile, error)
	UpdateProfile(ctx context.Context, input creator.UpdateProfileInput) (domain.CreatorProfile, error)
	MyProfile(ctx context.Context) (domain.CreatorProfile, error)
	GetProfile(ctx context.Context, id uuid.UUID) (domain.CreatorProfile, error)
	ListProfiles(ctx context.Context, limit, offset int) ([]domain.CreatorProfile, error)
}

// subscriberService defines what resolver needs from the Subscriber service.
type subscriberService interface {
	Subscribe(ctx context.Context, input subscriber.SubscribeInput) (domain.SubscriberProfile, error)
	MySubscription(ctx context.Context, creatorID uuid.UUID) (domain.SubscriberProfile, error)
	ListSubscribers(ctx context.Context, limit, offset int) ([]domain.SubscriberProfile, int, error)
	CountSubscribers(ctx context.Context, creatorID uuid.UUID) (int, error)
}

// contentService defines what resolver needs from the Content service.
type contentService interface {
	Create(ctx context.Context, input content.CreateInput) (domain.ContentItem, error)
	Update(ctx context.Context, id uuid.UUID, input content.UpdateInput) (domain.ContentItem, error)
	Publish(ctx context.Context, id uuid.UUID) (domain.ContentItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (domain.ContentItem, error)
	ListByCreator(ctx context.Context, creatorID uuid.UUID, limit, offset int) ([]domain.ContentItem, error)
}

// commentsService defines what resolver needs from the Comments service.
type commentsService interface {
	Import(ctx context.Context, input comments.ImportInput) (domain.CommentBatch, error)
	GetBatch(ctx context.Context, id uuid.UUID) (domain.CommentBatch, error)
	ListBatches(ctx context.Context, creatorID uuid.UUID, limit, offset int) ([]domain.CommentBatch, int, error)
}

// sentimentService defines what resolver needs from the Sentiment service.
type sentimentService interface {
	Analyze(ctx context.Context, batchID uuid.UUID) (sentiment.AnalyzeResult, error)
	GetSnapshot(ctx context.Context, id uuid.UUID) (domain.SentimentSnapshot, error)
	ListSnapshots(ctx context.Context, creatorID uuid.UUID, limit, offset int) ([]domain.SentimentSnapshot, error)
}

// ideasService defines what resolver needs from the Ideas service.
type ideasService interface {
	Generate(ctx context.Context, input ideas.GenerateInput) ([]domain.IdeaSuggestion, error)
	GetIdea(ctx context.Context, id uuid.UUID) (domain.IdeaSuggestion, error)
	UpdateIdeaStatus(ctx context.Context, id uuid.UUID, status domain.IdeaStatus) (domain.IdeaSuggestion, error)
	ListIdeas(ctx context.Context, input ideas.ListInput) ([]domain.IdeaSuggestion, error)
}

// activityService defines what resolver needs from the Activity service.
type activityService interface {
	Query(ctx context.Context, input activity.QueryInput) (activity.QueryResult, error)
	Stats(ctx context.Context, input activity.QueryInput) (domain.ActivityStats, error)
}

// Resolver is the root resolver containing all service dependencies.
type Resolver struct {
	auth       authService
	creator    creatorService
	subscriber subscriberService
	content    contentService
	comments   commentsService
	sentiment  sentimentService
	ideas      ideasService
	activity   activityService
	log        *slog.Logger
}

// NewResolver creates a new Resolver with all service dependencies.
func NewResolver(
	log *slog.Logger,
	auth authService,
	creator creatorService,
	subscriber subscriberService,
	content contentService,
	comments commentsService,
	sentiment sentimentService,
	ideas ideasService,
	activity activityService,
) *Resolver {
	return &Resolver{
		auth:       auth,
		creator:    creator,
		subscriber: subscriber,
		content:    content,
		comments:   comments,
		sentiment:  sentiment,
		ideas:      ideas,
		activity:   activity,
		log:        log.With("component", "graphql"),
	}
}
