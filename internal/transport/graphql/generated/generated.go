// Code generated by github.com/99designs/gqlgen, DO NOT EDIT.

package generated

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/99designs/gqlgen/graphql"
	"github.com/99designs/gqlgen/graphql/introspection"
	"github.com/google/uuid"
	"github.com/ndvoronin/creatorpulse-backend/internal/domain"
	"github.com/ndvoronin/creatorpulse-backend/internal/transport/graphql/model"
	gqlparser "github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
)

// region    ************************** generated!.gotpl **************************

// NewExecutableSchema creates an ExecutableSchema from the ResolverRoot interface.
func NewExecutableSchema(cfg Config) graphql.ExecutableSchema {
	return &executableSchema{
		schema:     cfg.Schema,
		resolvers:  cfg.Resolvers,
		directives: cfg.Directives,
		complexity: cfg.Complexity,
	}
}

type Config struct {
	Schema     *ast.Schema
	Resolvers  ResolverRoot
	Directives DirectiveRoot
	Complexity ComplexityRoot
}

type ResolverRoot interface {
	CommentBatch() CommentBatchResolver
	CreatorProfile() CreatorProfileResolver
	Mutation() MutationResolver
	Query() QueryResolver
	SentimentSnapshot() SentimentSnapshotResolver
	SubscriberProfile() SubscriberProfileResolver
	User() UserResolver
}

type DirectiveRoot struct {
}

type ComplexityRoot struct {
	ActivityEvent struct {
		CreatedAt func(childComplexity int) int
		CreatorID func(childComplexity int) int
		EventType func(childComplexity int) int
		ID        func(childComplexity int) int
		Metadata  func(childComplexity int) int
		UserID    func(childComplexity int) int
	}

	ActivityEventPage struct {
		Items func(childComplexity int) int
		Total func(childComplexity int) int
	}

	ActivityStats struct {
		ByEventType func(childComplexity int) int
		Timeline    func(childComplexity int) int
		Total       func(childComplexity int) int
	}

	AnalyzeResult struct {
		DegradedChunks func(childComplexity int) int
		Snapshot       func(childComplexity int) int
	}

	AuthPayload struct {
		AccessToken func(childComplexity int) int
		User        func(childComplexity int) int
	}

	CommentBatch struct {
		CommentCount        func(childComplexity int) int
		CreatorID           func(childComplexity int) int
		ID                  func(childComplexity int) int
		ImportedAt          func(childComplexity int) int
		LinkedContentItemID func(childComplexity int) int
		RawComments         func(childComplexity int) int
		Snapshots           func(childComplexity int) int
		Source              func(childComplexity int) int
		Status              func(childComplexity int) int
	}

	CommentBatchPage struct {
		Items func(childComplexity int) int
		Total func(childComplexity int) int
	}

	ContentItem struct {
		CreatedAt    func(childComplexity int) int
		CreatorID    func(childComplexity int) int
		ID           func(childComplexity int) int
		IsPremium    func(childComplexity int) int
		PublishedAt  func(childComplexity int) int
		RequiredTier func(childComplexity int) int
		Status       func(childComplexity int) int
		Title        func(childComplexity int) int
		Type         func(childComplexity int) int
		UpdatedAt    func(childComplexity int) int
	}

	CreatorProfile struct {
		Bio             func(childComplexity int) int
		CreatedAt       func(childComplexity int) int
		DisplayName     func(childComplexity int) int
		ID              func(childComplexity int) int
		Niche           func(childComplexity int) int
		SubscriberCount func(childComplexity int) int
		UpdatedAt       func(childComplexity int) int
		UserID          func(childComplexity int) int
	}

	DayCount struct {
		Count func(childComplexity int) int
		Day   func(childComplexity int) int
	}

	EventTypeCount struct {
		Count     func(childComplexity int) int
		EventType func(childComplexity int) int
	}

	IdeaSuggestion struct {
		CreatedAt        func(childComplexity int) int
		CreatorID        func(childComplexity int) int
		Description      func(childComplexity int) int
		ID               func(childComplexity int) int
		IdeaType         func(childComplexity int) int
		Outline          func(childComplexity int) int
		SourceSnapshotID func(childComplexity int) int
		Status           func(childComplexity int) int
		TierTarget       func(childComplexity int) int
		Title            func(childComplexity int) int
		UpdatedAt        func(childComplexity int) int
	}

	Mutation struct {
		AnalyzeBatch         func(childComplexity int, batchID uuid.UUID) int
		CreateContent        func(childComplexity int, input model.CreateContentInput) int
		CreateCreatorProfile func(childComplexity int, input model.CreateCreatorProfileInput) int
		DeleteContent        func(childComplexity int, id uuid.UUID) int
		GenerateIdeas        func(childComplexity int, input model.GenerateIdeasInput) int
		ImportComments       func(childComplexity int, input model.ImportCommentsInput) int
		Login                func(childComplexity int, input model.LoginInput) int
		PublishContent       func(childComplexity int, id uuid.UUID) int
		Register             func(childComplexity int, input model.RegisterInput) int
		Subscribe            func(childComplexity int, input model.SubscribeInput) int
		UpdateContent        func(childComplexity int, input model.UpdateContentInput) int
		UpdateCreatorProfile func(childComplexity int, input model.UpdateCreatorProfileInput) int
		UpdateIdeaStatus     func(childComplexity int, id uuid.UUID, status domain.IdeaStatus) int
	}

	Query struct {
		ActivityEvents     func(childComplexity int, filter *model.ActivityFilterInput, limit *int, offset *int) int
		ActivityStats      func(childComplexity int, filter *model.ActivityFilterInput) int
		CommentBatch       func(childComplexity int, id uuid.UUID) int
		CommentBatches     func(childComplexity int, creatorID uuid.UUID, limit *int, offset *int) int
		ContentItem        func(childComplexity int, id uuid.UUID) int
		Creator            func(childComplexity int, id uuid.UUID) int
		CreatorContent     func(childComplexity int, creatorID uuid.UUID, limit *int, offset *int) int
		Creators           func(childComplexity int, limit *int, offset *int) int
		Idea               func(childComplexity int, id uuid.UUID) int
		Ideas              func(childComplexity int, creatorID uuid.UUID, status *domain.IdeaStatus, limit *int, offset *int) int
		Me                 func(childComplexity int) int
		MyCreatorProfile   func(childComplexity int) int
		MySubscribers      func(childComplexity int, limit *int, offset *int) int
		MySubscription     func(childComplexity int, creatorID uuid.UUID) int
		SentimentSnapshot  func(childComplexity int, id uuid.UUID) int
		SentimentSnapshots func(childComplexity int, creatorID uuid.UUID, limit *int, offset *int) int
	}

	RawComment struct {
		Author    func(childComplexity int) int
		Text      func(childComplexity int) int
		Tier      func(childComplexity int) int
		Timestamp func(childComplexity int) int
	}

	SentimentSnapshot struct {
		ByTier                func(childComplexity int) int
		CommentBatchID        func(childComplexity int) int
		CreatedAt             func(childComplexity int) int
		CreatorID             func(childComplexity int) int
		ID                    func(childComplexity int) int
		Ideas                 func(childComplexity int) int
		NegativeCount         func(childComplexity int) int
		NeutralCount          func(childComplexity int) int
		OverallSentimentScore func(childComplexity int) int
		PositiveCount         func(childComplexity int) int
		TimeRangeEnd          func(childComplexity int) int
		TimeRangeStart        func(childComplexity int) int
		TopKeywords           func(childComplexity int) int
		TopRequests           func(childComplexity int) int
	}

	SubscriberPage struct {
		Items func(childComplexity int) int
		Total func(childComplexity int) int
	}

	SubscriberProfile struct {
		Creator   func(childComplexity int) int
		CreatorID func(childComplexity int) int
		ID        func(childComplexity int) int
		JoinedAt  func(childComplexity int) int
		Tier      func(childComplexity int) int
		UpdatedAt func(childComplexity int) int
		UserID    func(childComplexity int) int
	}

	TierSentiment struct {
		NegativeCount func(childComplexity int) int
		PositiveCount func(childComplexity int) int
		Score         func(childComplexity int) int
		Tier          func(childComplexity int) int
	}

	User struct {
		CreatedAt func(childComplexity int) int
		Email     func(childComplexity int) int
		ID        func(childComplexity int) int
		Name      func(childComplexity int) int
		Role      func(childComplexity int) int
	}
}

type CommentBatchResolver interface {
	Snapshots(ctx context.Context, obj *domain.CommentBatch) ([]*domain.SentimentSnapshot, error)
}
type CreatorProfileResolver interface {
	SubscriberCount(ctx context.Context, obj *domain.CreatorProfile) (int, error)
}
type MutationResolver interface {
	Register(ctx context.Context, input model.RegisterInput) (*model.AuthPayload, error)
	Login(ctx context.Context, input model.LoginInput) (*model.AuthPayload, error)
	CreateCreatorProfile(ctx context.Context, input model.CreateCreatorProfileInput) (*domain.CreatorProfile, error)
	UpdateCreatorProfile(ctx context.Context, input model.UpdateCreatorProfileInput) (*domain.CreatorProfile, error)
	Subscribe(ctx context.Context, input model.SubscribeInput) (*domain.SubscriberProfile, error)
	CreateContent(ctx context.Context, input model.CreateContentInput) (*domain.ContentItem, error)
	UpdateContent(ctx context.Context, input model.UpdateContentInput) (*domain.ContentItem, error)
	PublishContent(ctx context.Context, id uuid.UUID) (*domain.ContentItem, error)
	DeleteContent(ctx context.Context, id uuid.UUID) (bool, error)
	ImportComments(ctx context.Context, input model.ImportCommentsInput) (*domain.CommentBatch, error)
	AnalyzeBatch(ctx context.Context, batchID uuid.UUID) (*model.AnalyzeResult, error)
	GenerateIdeas(ctx context.Context, input model.GenerateIdeasInput) ([]*domain.IdeaSuggestion, error)
	UpdateIdeaStatus(ctx context.Context, id uuid.UUID, status domain.IdeaStatus) (*domain.IdeaSuggestion, error)
}
type QueryResolver interface {
	Me(ctx context.Context) (*domain.User, error)
	Creator(ctx context.Context, id uuid.UUID) (*domain.CreatorProfile, error)
	Creators(ctx context.Context, limit *int, offset *int) ([]*domain.CreatorProfile, error)
	MyCreatorProfile(ctx context.Context) (*domain.CreatorProfile, error)
	MySubscription(ctx context.Context, creatorID uuid.UUID) (*domain.SubscriberProfile, error)
	MySubscribers(ctx context.Context, limit *int, offset *int) (*model.SubscriberPage, error)
	ContentItem(ctx context.Context, id uuid.UUID) (*domain.ContentItem, error)
	CreatorContent(ctx context.Context, creatorID uuid.UUID, limit *int, offset *int) ([]*domain.ContentItem, error)
	CommentBatch(ctx context.Context, id uuid.UUID) (*domain.CommentBatch, error)
	CommentBatches(ctx context.Context, creatorID uuid.UUID, limit *int, offset *int) (*model.CommentBatchPage, error)
	SentimentSnapshot(ctx context.Context, id uuid.UUID) (*domain.SentimentSnapshot, error)
	SentimentSnapshots(ctx context.Context, creatorID uuid.UUID, limit *int, offset *int) ([]*domain.SentimentSnapshot, error)
	Idea(ctx context.Context, id uuid.UUID) (*domain.IdeaSuggestion, error)
	Ideas(ctx context.Context, creatorID uuid.UUID, status *domain.IdeaStatus, limit *int, offset *int) ([]*domain.IdeaSuggestion, error)
	ActivityEvents(ctx context.Context, filter *model.ActivityFilterInput, limit *int, offset *int) (*model.ActivityEventPage, error)
	ActivityStats(ctx context.Context, filter *model.ActivityFilterInput) (*domain.ActivityStats, error)
}
type SentimentSnapshotResolver interface {
	Ideas(ctx context.Context, obj *domain.SentimentSnapshot) ([]*domain.IdeaSuggestion, error)
}
type SubscriberProfileResolver interface {
	Creator(ctx context.Context, obj *domain.SubscriberProfile) (*domain.CreatorProfile, error)
}
type UserResolver interface {
	Role(ctx context.Context, obj *domain.User) (string, error)
}

type executableSchema struct {
	schema     *ast.Schema
	resolvers  ResolverRoot
	directives DirectiveRoot
	complexity ComplexityRoot
}

func (e *executableSchema) Schema() *ast.Schema {
	if e.schema != nil {
		return e.schema
	}
	return parsedSchema
}

func (e *executableSchema) Complexity(ctx context.Context, typeName, field string, childComplexity int, rawArgs map[string]any) (int, bool) {
	ec := executionContext{nil, e, 0, 0, nil}
	_ = ec
	switch typeName + "." + field {

	case "ActivityEvent.createdAt":
		if e.complexity.ActivityEvent.CreatedAt == nil {
			break
		}

		return e.complexity.ActivityEvent.CreatedAt(childComplexity), true
	case "ActivityEvent.creatorId":
		if e.complexity.ActivityEvent.CreatorID == nil {
			break
		}

		return e.complexity.ActivityEvent.CreatorID(childComplexity), true
	case "ActivityEvent.eventType":
		if e.complexity.ActivityEvent.EventType == nil {
			break
		}

		return e.complexity.ActivityEvent.EventType(childComplexity), true
	case "ActivityEvent.id":
		if e.complexity.ActivityEvent.ID == nil {
			break
		}

		return e.complexity.ActivityEvent.ID(childComplexity), true
	case "ActivityEvent.metadata":
		if e.complexity.ActivityEvent.Metadata == nil {
			break
		}

		return e.complexity.ActivityEvent.Metadata(childComplexity), true
	case "ActivityEvent.userId":
		if e.complexity.ActivityEvent.UserID == nil {
			break
		}

		return e.complexity.ActivityEvent.UserID(childComplexity), true

	case "ActivityEventPage.items":
		if e.complexity.ActivityEventPage.Items == nil {
			break
		}

		return e.complexity.ActivityEventPage.Items(childComplexity), true
	case "ActivityEventPage.total":
		if e.complexity.ActivityEventPage.Total == nil {
			break
		}

		return e.complexity.ActivityEventPage.Total(childComplexity), true

	case "ActivityStats.byEventType":
		if e.complexity.ActivityStats.ByEventType == nil {
			break
		}

		return e.complexity.ActivityStats.ByEventType(childComplexity), true
	case "ActivityStats.timeline":
		if e.complexity.ActivityStats.Timeline == nil {
			break
		}

		return e.complexity.ActivityStats.Timeline(childComplexity), true
	case "ActivityStats.total":
		if e.complexity.ActivityStats.Total == nil {
			break
		}

		return e.complexity.ActivityStats.Total(childComplexity), true

	case "AnalyzeResult.degradedChunks":
		if e.complexity.AnalyzeResult.DegradedChunks == nil {
			break
		}

		return e.complexity.AnalyzeResult.DegradedChunks(childComplexity), true
	case "AnalyzeResult.snapshot":
		if e.complexity.AnalyzeResult.Snapshot == nil {
			break
		}

		return e.complexity.AnalyzeResult.Snapshot(childComplexity), true

	case "AuthPayload.accessToken":
		if e.complexity.AuthPayload.AccessToken == nil {
			break
		}

		return e.complexity.AuthPayload.AccessToken(childComplexity), true
	case "AuthPayload.user":
		if e.complexity.AuthPayload.User == nil {
			break
		}

		return e.complexity.AuthPayload.User(childComplexity), true

	case "CommentBatch.commentCount":
		if e.complexity.CommentBatch.CommentCount == nil {
			break
		}

		return e.complexity.CommentBatch.CommentCount(childComplexity), true
	case "CommentBatch.creatorId":
		if e.complexity.CommentBatch.CreatorID == nil {
			break
		}

		return e.complexity.CommentBatch.CreatorID(childComplexity), true
	case "CommentBatch.id":
		if e.complexity.CommentBatch.ID == nil {
			break
		}

		return e.complexity.CommentBatch.ID(childComplexity), true
	case "CommentBatch.importedAt":
		if e.complexity.CommentBatch.ImportedAt == nil {
			break
		}

		return e.complexity.CommentBatch.ImportedAt(childComplexity), true
	case "CommentBatch.linkedContentItemId":
		if e.complexity.CommentBatch.LinkedContentItemID == nil {
			break
		}

		return e.complexity.CommentBatch.LinkedContentItemID(childComplexity), true
	case "CommentBatch.rawComments":
		if e.complexity.CommentBatch.RawComments == nil {
			break
		}

		return e.complexity.CommentBatch.RawComments(childComplexity), true
	case "CommentBatch.snapshots":
		if e.complexity.CommentBatch.Snapshots == nil {
			break
		}

		return e.complexity.CommentBatch.Snapshots(childComplexity), true
	case "CommentBatch.source":
		if e.complexity.CommentBatch.Source == nil {
			break
		}

		return e.complexity.CommentBatch.Source(childComplexity), true
	case "CommentBatch.status":
		if e.complexity.CommentBatch.Status == nil {
			break
		}

		return e.complexity.CommentBatch.Status(childComplexity), true

	case "CommentBatchPage.items":
		if e.complexity.CommentBatchPage.Items == nil {
			break
		}

		return e.complexity.CommentBatchPage.Items(childComplexity), true
	case "CommentBatchPage.total":
		if e.complexity.CommentBatchPage.Total == nil {
			break
		}

		return e.complexity.CommentBatchPage.Total(childComplexity), true

	case "ContentItem.createdAt":
		if e.complexity.ContentItem.CreatedAt == nil {
			break
		}

		return e.complexity.ContentItem.CreatedAt(childComplexity), true
	case "ContentItem.creatorId":
		if e.complexity.ContentItem.CreatorID == nil {
			break
		}

		return e.complexity.ContentItem.CreatorID(childComplexity), true
	case "ContentItem.id":
		if e.complexity.ContentItem.ID == nil {
			break
		}

		return e.complexity.ContentItem.ID(childComplexity), true
	case "ContentItem.isPremium":
		if e.complexity.ContentItem.IsPremium == nil {
			break
		}

		return e.complexity.ContentItem.IsPremium(childComplexity), true
	case "ContentItem.publishedAt":
		if e.complexity.ContentItem.PublishedAt == nil {
			break
		}

		return e.complexity.ContentItem.PublishedAt(childComplexity), true
	case "ContentItem.requiredTier":
		if e.complexity.ContentItem.RequiredTier == nil {
			break
		}

		return e.complexity.ContentItem.RequiredTier(childComplexity), true
	case "ContentItem.status":
		if e.complexity.ContentItem.Status == nil {
			break
		}

		return e.complexity.ContentItem.Status(childComplexity), true
	case "ContentItem.title":
		if e.complexity.ContentItem.Title == nil {
			break
		}

		return e.complexity.ContentItem.Title(childComplexity), true
	case "ContentItem.type":
		if e.complexity.ContentItem.Type == nil {
			break
		}

		return e.complexity.ContentItem.Type(childComplexity), true
	case "ContentItem.updatedAt":
		if e.complexity.ContentItem.UpdatedAt == nil {
			break
		}

		return e.complexity.ContentItem.UpdatedAt(childComplexity), true

	case "CreatorProfile.bio":
		if e.complexity.CreatorProfile.Bio == nil {
			break
		}

		return e.complexity.CreatorProfile.Bio(childComplexity), true
	case "CreatorProfile.createdAt":
		if e.complexity.CreatorProfile.CreatedAt == nil {
			break
		}

		return e.complexity.CreatorProfile.CreatedAt(childComplexity), true
	case "CreatorProfile.displayName":
		if e.complexity.CreatorProfile.DisplayName == nil {
			break
		}

		return e.complexity.CreatorProfile.DisplayName(childComplexity), true
	case "CreatorProfile.id":
		if e.complexity.CreatorProfile.ID == nil {
			break
		}

		return e.complexity.CreatorProfile.ID(childComplexity), true
	case "CreatorProfile.niche":
		if e.complexity.CreatorProfile.Niche == nil {
			break
		}

		return e.complexity.CreatorProfile.Niche(childComplexity), true
	case "CreatorProfile.subscriberCount":
		if e.complexity.CreatorProfile.SubscriberCount == nil {
			break
		}

		return e.complexity.CreatorProfile.SubscriberCount(childComplexity), true
	case "CreatorProfile.updatedAt":
		if e.complexity.CreatorProfile.UpdatedAt == nil {
			break
		}

		return e.complexity.CreatorProfile.UpdatedAt(childComplexity), true
	case "CreatorProfile.userId":
		if e.complexity.CreatorProfile.UserID == nil {
			break
		}

		return e.complexity.CreatorProfile.UserID(childComplexity), true

	case "DayCount.count":
		if e.complexity.DayCount.Count == nil {
			break
		}

		return e.complexity.DayCount.Count(childComplexity), true
	case "DayCount.day":
		if e.complexity.DayCount.Day == nil {
			break
		}

		return e.complexity.DayCount.Day(childComplexity), true

	case "EventTypeCount.count":
		if e.complexity.EventTypeCount.Count == nil {
			break
		}

		return e.complexity.EventTypeCount.Count(childComplexity), true
	case "EventTypeCount.eventType":
		if e.complexity.EventTypeCount.EventType == nil {
			break
		}

		return e.complexity.EventTypeCount.EventType(childComplexity), true

	case "IdeaSuggestion.createdAt":
		if e.complexity.IdeaSuggestion.CreatedAt == nil {
			break
		}

		return e.complexity.IdeaSuggestion.CreatedAt(childComplexity), true
	case "IdeaSuggestion.creatorId":
		if e.complexity.IdeaSuggestion.CreatorID == nil {
			break
		}

		return e.complexity.IdeaSuggestion.CreatorID(childComplexity), true
	case "IdeaSuggestion.description":
		if e.complexity.IdeaSuggestion.Description == nil {
			break
		}

		return e.complexity.IdeaSuggestion.Description(childComplexity), true
	case "IdeaSuggestion.id":
		if e.complexity.IdeaSuggestion.ID == nil {
			break
		}

		return e.complexity.IdeaSuggestion.ID(childComplexity), true
	case "IdeaSuggestion.ideaType":
		if e.complexity.IdeaSuggestion.IdeaType == nil {
			break
		}

		return e.complexity.IdeaSuggestion.IdeaType(childComplexity), true
	case "IdeaSuggestion.outline":
		if e.complexity.IdeaSuggestion.Outline == nil {
			break
		}

		return e.complexity.IdeaSuggestion.Outline(childComplexity), true
	case "IdeaSuggestion.sourceSnapshotId":
		if e.complexity.IdeaSuggestion.SourceSnapshotID == nil {
			break
		}

		return e.complexity.IdeaSuggestion.SourceSnapshotID(childComplexity), true
	case "IdeaSuggestion.status":
		if e.complexity.IdeaSuggestion.Status == nil {
			break
		}

		return e.complexity.IdeaSuggestion.Status(childComplexity), true
	case "IdeaSuggestion.tierTarget":
		if e.complexity.IdeaSuggestion.TierTarget == nil {
			break
		}

		return e.complexity.IdeaSuggestion.TierTarget(childComplexity), true
	case "IdeaSuggestion.title":
		if e.complexity.IdeaSuggestion.Title == nil {
			break
		}

		return e.complexity.IdeaSuggestion.Title(childComplexity), true
	case "IdeaSuggestion.updatedAt":
		if e.complexity.IdeaSuggestion.UpdatedAt == nil {
			break
		}

		return e.complexity.IdeaSuggestion.UpdatedAt(childComplexity), true

	case "Mutation.analyzeBatch":
		if e.complexity.Mutation.AnalyzeBatch == nil {
			break
		}

		args, err := ec.field_Mutation_analyzeBatch_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.AnalyzeBatch(childComplexity, args["batchId"].(uuid.UUID)), true
	case "Mutation.createContent":
		if e.complexity.Mutation.CreateContent == nil {
			break
		}

		args, err := ec.field_Mutation_createContent_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.CreateContent(childComplexity, args["input"].(model.CreateContentInput)), true
	case "Mutation.createCreatorProfile":
		if e.complexity.Mutation.CreateCreatorProfile == nil {
			break
		}

		args, err := ec.field_Mutation_createCreatorProfile_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.CreateCreatorProfile(childComplexity, args["input"].(model.CreateCreatorProfileInput)), true
	case "Mutation.deleteContent":
		if e.complexity.Mutation.DeleteContent == nil {
			break
		}

		args, err := ec.field_Mutation_deleteContent_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.DeleteContent(childComplexity, args["id"].(uuid.UUID)), true
	case "Mutation.generateIdeas":
		if e.complexity.Mutation.GenerateIdeas == nil {
			break
		}

		args, err := ec.field_Mutation_generateIdeas_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.GenerateIdeas(childComplexity, args["input"].(model.GenerateIdeasInput)), true
	case "Mutation.importComments":
		if e.complexity.Mutation.ImportComments == nil {
			break
		}

		args, err := ec.field_Mutation_importComments_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.ImportComments(childComplexity, args["input"].(model.ImportCommentsInput)), true
	case "Mutation.login":
		if e.complexity.Mutation.Login == nil {
			break
		}

		args, err := ec.field_Mutation_login_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.Login(childComplexity, args["input"].(model.LoginInput)), true
	case "Mutation.publishContent":
		if e.complexity.Mutation.PublishContent == nil {
			break
		}

		args, err := ec.field_Mutation_publishContent_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.PublishContent(childComplexity, args["id"].(uuid.UUID)), true
	case "Mutation.register":
		if e.complexity.Mutation.Register == nil {
			break
		}

		args, err := ec.field_Mutation_register_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.Register(childComplexity, args["input"].(model.RegisterInput)), true
	case "Mutation.subscribe":
		if e.complexity.Mutation.Subscribe == nil {
			break
		}

		args, err := ec.field_Mutation_subscribe_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.Subscribe(childComplexity, args["input"].(model.SubscribeInput)), true
	case "Mutation.updateContent":
		if e.complexity.Mutation.UpdateContent == nil {
			break
		}

		args, err := ec.field_Mutation_updateContent_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.UpdateContent(childComplexity, args["input"].(model.UpdateContentInput)), true
	case "Mutation.updateCreatorProfile":
		if e.complexity.Mutation.UpdateCreatorProfile == nil {
			break
		}

		args, err := ec.field_Mutation_updateCreatorProfile_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.UpdateCreatorProfile(childComplexity, args["input"].(model.UpdateCreatorProfileInput)), true
	case "Mutation.updateIdeaStatus":
		if e.complexity.Mutation.UpdateIdeaStatus == nil {
			break
		}

		args, err := ec.field_Mutation_updateIdeaStatus_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.UpdateIdeaStatus(childComplexity, args["id"].(uuid.UUID), args["status"].(domain.IdeaStatus)), true

	case "Query.activityEvents":
		if e.complexity.Query.ActivityEvents == nil {
			break
		}

		args, err := ec.field_Query_activityEvents_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Query.ActivityEvents(childComplexity, args["filter"].(*model.ActivityFilterInput), args["limit"].(*int), args["offset"].(*int)), true
	case "Query.activityStats":
		if e.complexity.Query.ActivityStats == nil {
			break
		}

		args, err := ec.field_Query_activityStats_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Query.ActivityStats(childComplexity, args["filter"].(*model.ActivityFilterInput)), true
	case "Query.commentBatch":
		if e.complexity.Query.CommentBatch == nil {
			break
		}

		args, err := ec.field_Query_commentBatch_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Query.CommentBatch(childComplexity, args["id"].(uuid.UUID)), true
	case "Query.commentBatches":
		if e.complexity.Query.CommentBatches == nil {
			break
		}

		args, err := ec.field_Query_commentBatches_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Query.CommentBatches(childComplexity, args["creatorId"].(uuid.UUID), args["limit"].(*int), args["offset"].(*int)), true
	case "Query.contentItem":
		if e.complexity.Query.ContentItem == nil {
			break
		}

		args, err := ec.field_Query_contentItem_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Query.ContentItem(childComplexity, args["id"].(uuid.UUID)), true
	case "Query.creator":
		if e.complexity.Query.Creator == nil {
			break
		}

		args, err := ec.field_Query_creator_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Query.Creator(childComplexity, args["id"].(uuid.UUID)), true
	case "Query.creatorContent":
		if e.complexity.Query.CreatorContent == nil {
			break
		}

		args, err := ec.field_Query_creatorContent_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Query.CreatorContent(childComplexity, args["creatorId"].(uuid.UUID), args["limit"].(*int), args["offset"].(*int)), true
	case "Query.creators":
		if e.complexity.Query.Creators == nil {
			break
		}

		args, err := ec.field_Query_creators_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Query.Creators(childComplexity, args["limit"].(*int), args["offset"].(*int)), true
	case "Query.idea":
		if e.complexity.Query.Idea == nil {
			break
		}

		args, err := ec.field_Query_idea_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Query.Idea(childComplexity, args["id"].(uuid.UUID)), true
	case "Query.ideas":
		if e.complexity.Query.Ideas == nil {
			break
		}

		args, err := ec.field_Query_ideas_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Query.Ideas(childComplexity, args["creatorId"].(uuid.UUID), args["status"].(*domain.IdeaStatus), args["limit"].(*int), args["offset"].(*int)), true
	case "Query.me":
		if e.complexity.Query.Me == nil {
			break
		}

		return e.complexity.Query.Me(childComplexity), true
	case "Query.myCreatorProfile":
		if e.complexity.Query.MyCreatorProfile == nil {
			break
		}

		return e.complexity.Query.MyCreatorProfile(childComplexity), true
	case "Query.mySubscribers":
		if e.complexity.Query.MySubscribers == nil {
			break
		}

		args, err := ec.field_Query_mySubscribers_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Query.MySubscribers(childComplexity, args["limit"].(*int), args["offset"].(*int)), true
	case "Query.mySubscription":
		if e.complexity.Query.MySubscription == nil {
			break
		}

		args, err := ec.field_Query_mySubscription_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Query.MySubscription(childComplexity, args["creatorId"].(uuid.UUID)), true
	case "Query.sentimentSnapshot":
		if e.complexity.Query.SentimentSnapshot == nil {
			break
		}

		args, err := ec.field_Query_sentimentSnapshot_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Query.SentimentSnapshot(childComplexity, args["id"].(uuid.UUID)), true
	case "Query.sentimentSnapshots":
		if e.complexity.Query.SentimentSnapshots == nil {
			break
		}

		args, err := ec.field_Query_sentimentSnapshots_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Query.SentimentSnapshots(childComplexity, args["creatorId"].(uuid.UUID), args["limit"].(*int), args["offset"].(*int)), true

	case "RawComment.author":
		if e.complexity.RawComment.Author == nil {
			break
		}

		return e.complexity.RawComment.Author(childComplexity), true
	case "RawComment.text":
		if e.complexity.RawComment.Text == nil {
			break
		}

		return e.complexity.RawComment.Text(childComplexity), true
	case "RawComment.tier":
		if e.complexity.RawComment.Tier == nil {
			break
		}

		return e.complexity.RawComment.Tier(childComplexity), true
	case "RawComment.timestamp":
		if e.complexity.RawComment.Timestamp == nil {
			break
		}

		return e.complexity.RawComment.Timestamp(childComplexity), true

	case "SentimentSnapshot.byTier":
		if e.complexity.SentimentSnapshot.ByTier == nil {
			break
		}

		return e.complexity.SentimentSnapshot.ByTier(childComplexity), true
	case "SentimentSnapshot.commentBatchId":
		if e.complexity.SentimentSnapshot.CommentBatchID == nil {
			break
		}

		return e.complexity.SentimentSnapshot.CommentBatchID(childComplexity), true
	case "SentimentSnapshot.createdAt":
		if e.complexity.SentimentSnapshot.CreatedAt == nil {
			break
		}

		return e.complexity.SentimentSnapshot.CreatedAt(childComplexity), true
	case "SentimentSnapshot.creatorId":
		if e.complexity.SentimentSnapshot.CreatorID == nil {
			break
		}

		return e.complexity.SentimentSnapshot.CreatorID(childComplexity), true
	case "SentimentSnapshot.id":
		if e.complexity.SentimentSnapshot.ID == nil {
			break
		}

		return e.complexity.SentimentSnapshot.ID(childComplexity), true
	case "SentimentSnapshot.ideas":
		if e.complexity.SentimentSnapshot.Ideas == nil {
			break
		}

		return e.complexity.SentimentSnapshot.Ideas(childComplexity), true
	case "SentimentSnapshot.negativeCount":
		if e.complexity.SentimentSnapshot.NegativeCount == nil {
			break
		}

		return e.complexity.SentimentSnapshot.NegativeCount(childComplexity), true
	case "SentimentSnapshot.neutralCount":
		if e.complexity.SentimentSnapshot.NeutralCount == nil {
			break
		}

		return e.complexity.SentimentSnapshot.NeutralCount(childComplexity), true
	case "SentimentSnapshot.overallSentimentScore":
		if e.complexity.SentimentSnapshot.OverallSentimentScore == nil {
			break
		}

		return e.complexity.SentimentSnapshot.OverallSentimentScore(childComplexity), true
	case "SentimentSnapshot.positiveCount":
		if e.complexity.SentimentSnapshot.PositiveCount == nil {
			break
		}

		return e.complexity.SentimentSnapshot.PositiveCount(childComplexity), true
	case "SentimentSnapshot.timeRangeEnd":
		if e.complexity.SentimentSnapshot.TimeRangeEnd == nil {
			break
		}

		return e.complexity.SentimentSnapshot.TimeRangeEnd(childComplexity), true
	case "SentimentSnapshot.timeRangeStart":
		if e.complexity.SentimentSnapshot.TimeRangeStart == nil {
			break
		}

		return e.complexity.SentimentSnapshot.TimeRangeStart(childComplexity), true
	case "SentimentSnapshot.topKeywords":
		if e.complexity.SentimentSnapshot.TopKeywords == nil {
			break
		}

		return e.complexity.SentimentSnapshot.TopKeywords(childComplexity), true
	case "SentimentSnapshot.topRequests":
		if e.complexity.SentimentSnapshot.TopRequests == nil {
			break
		}

		return e.complexity.SentimentSnapshot.TopRequests(childComplexity), true

	case "SubscriberPage.items":
		if e.complexity.SubscriberPage.Items == nil {
			break
		}

		return e.complexity.SubscriberPage.Items(childComplexity), true
	case "SubscriberPage.total":
		if e.complexity.SubscriberPage.Total == nil {
			break
		}

		return e.complexity.SubscriberPage.Total(childComplexity), true

	case "SubscriberProfile.creator":
		if e.complexity.SubscriberProfile.Creator == nil {
			break
		}

		return e.complexity.SubscriberProfile.Creator(childComplexity), true
	case "SubscriberProfile.creatorId":
		if e.complexity.SubscriberProfile.CreatorID == nil {
			break
		}

		return e.complexity.SubscriberProfile.CreatorID(childComplexity), true
	case "SubscriberProfile.id":
		if e.complexity.SubscriberProfile.ID == nil {
			break
		}

		return e.complexity.SubscriberProfile.ID(childComplexity), true
	case "SubscriberProfile.joinedAt":
		if e.complexity.SubscriberProfile.JoinedAt == nil {
			break
		}

		return e.complexity.SubscriberProfile.JoinedAt(childComplexity), true
	case "SubscriberProfile.tier":
		if e.complexity.SubscriberProfile.Tier == nil {
			break
		}

		return e.complexity.SubscriberProfile.Tier(childComplexity), true
	case "SubscriberProfile.updatedAt":
		if e.complexity.SubscriberProfile.UpdatedAt == nil {
			break
		}

		return e.complexity.SubscriberProfile.UpdatedAt(childComplexity), true
	case "SubscriberProfile.userId":
		if e.complexity.SubscriberProfile.UserID == nil {
			break
		}

		return e.complexity.SubscriberProfile.UserID(childComplexity), true

	case "TierSentiment.negativeCount":
		if e.complexity.TierSentiment.NegativeCount == nil {
			break
		}

		return e.complexity.TierSentiment.NegativeCount(childComplexity), true
	case "TierSentiment.positiveCount":
		if e.complexity.TierSentiment.PositiveCount == nil {
			break
		}

		return e.complexity.TierSentiment.PositiveCount(childComplexity), true
	case "TierSentiment.score":
		if e.complexity.TierSentiment.Score == nil {
			break
		}

		return e.complexity.TierSentiment.Score(childComplexity), true
	case "TierSentiment.tier":
		if e.complexity.TierSentiment.Tier == nil {
			break
		}

		return e.complexity.TierSentiment.Tier(childComplexity), true

	case "User.createdAt":
		if e.complexity.User.CreatedAt == nil {
			break
		}

		return e.complexity.User.CreatedAt(childComplexity), true
	case "User.email":
		if e.complexity.User.Email == nil {
			break
		}

		return e.complexity.User.Email(childComplexity), true
	case "User.id":
		if e.complexity.User.ID == nil {
			break
		}

		return e.complexity.User.ID(childComplexity), true
	case "User.name":
		if e.complexity.User.Name == nil {
			break
		}

		return e.complexity.User.Name(childComplexity), true
	case "User.role":
		if e.complexity.User.Role == nil {
			break
		}

		return e.complexity.User.Role(childComplexity), true

	}
	return 0, false
}

func (e *executableSchema) Exec(ctx context.Context) graphql.ResponseHandler {
	opCtx := graphql.GetOperationContext(ctx)
	ec := executionContext{opCtx, e, 0, 0, make(chan graphql.DeferredResult)}
	inputUnmarshalMap := graphql.BuildUnmarshalerMap(
		ec.unmarshalInputActivityFilterInput,
		ec.unmarshalInputCreateContentInput,
		ec.unmarshalInputCreateCreatorProfileInput,
		ec.unmarshalInputGenerateIdeasInput,
		ec.unmarshalInputImportCommentsInput,
		ec.unmarshalInputLoginInput,
		ec.unmarshalInputRegisterInput,
		ec.unmarshalInputSubscribeInput,
		ec.unmarshalInputUpdateContentInput,
		ec.unmarshalInputUpdateCreatorProfileInput,
	)
	first := true

	switch opCtx.Operation.Operation {
	case ast.Query:
		return func(ctx context.Context) *graphql.Response {
			var response graphql.Response
			var data graphql.Marshaler
			if first {
				first = false
				ctx = graphql.WithUnmarshalerMap(ctx, inputUnmarshalMap)
				data = ec._Query(ctx, opCtx.Operation.SelectionSet)
			} else {
				if atomic.LoadInt32(&ec.pendingDeferred) > 0 {
					result := <-ec.deferredResults
					atomic.AddInt32(&ec.pendingDeferred, -1)
					data = result.Result
					response.Path = result.Path
					response.Label = result.Label
					response.Errors = result.Errors
				} else {
					return nil
				}
			}
			var buf bytes.Buffer
			data.MarshalGQL(&buf)
			response.Data = buf.Bytes()
			if atomic.LoadInt32(&ec.deferred) > 0 {
				hasNext := atomic.LoadInt32(&ec.pendingDeferred) > 0
				response.HasNext = &hasNext
			}

			return &response
		}
	case ast.Mutation:
		return func(ctx context.Context) *graphql.Response {
			if !first {
				return nil
			}
			first = false
			ctx = graphql.WithUnmarshalerMap(ctx, inputUnmarshalMap)
			data := ec._Mutation(ctx, opCtx.Operation.SelectionSet)
			var buf bytes.Buffer
			data.MarshalGQL(&buf)

			return &graphql.Response{
				Data: buf.Bytes(),
			}
		}

	default:
		return graphql.OneShot(graphql.ErrorResponse(ctx, "unsupported GraphQL operation"))
	}
}

type executionContext struct {
	*graphql.OperationContext
	*executableSchema
	deferred        int32
	pendingDeferred int32
	deferredResults chan graphql.DeferredResult
}

func (ec *executionContext) processDeferredGroup(dg graphql.DeferredGroup) {
	atomic.AddInt32(&ec.pendingDeferred, 1)
	go func() {
		ctx := graphql.WithFreshResponseContext(dg.Context)
		dg.FieldSet.Dispatch(ctx)
		ds := graphql.DeferredResult{
			Path:   dg.Path,
			Label:  dg.Label,
			Result: dg.FieldSet,
			Errors: graphql.GetErrors(ctx),
		}
		// null fields should bubble up
		if dg.FieldSet.Invalids > 0 {
			ds.Result = graphql.Null
		}
		ec.deferredResults <- ds
	}()
}

func (ec *executionContext) introspectSchema() (*introspection.Schema, error) {
	if ec.DisableIntrospection {
		return nil, errors.New("introspection disabled")
	}
	return introspection.WrapSchema(ec.Schema()), nil
}

func (ec *executionContext) introspectType(name string) (*introspection.Type, error) {
	if ec.DisableIntrospection {
		return nil, errors.New("introspection disabled")
	}
	return introspection.WrapTypeFromDef(ec.Schema(), ec.Schema().Types[name]), nil
}

var sources = []*ast.Source{
	{Name: "../schema.graphqls", Input: `scalar UUID
scalar DateTime
scalar JSON

enum Tier {
  T1
  T2
  T3
}

enum ContentType {
  VIDEO
  ARTICLE
  PODCAST
  DOWNLOAD
}

enum ContentStatus {
  DRAFT
  PUBLISHED
}

enum BatchSource {
  PLATFORM_EXPORT
  CSV_UPLOAD
  MANUAL_PASTE
}

enum BatchStatus {
  IMPORTED
  ANALYZING
  ANALYZED
  IDEAS_GENERATED
}

enum Sentiment {
  POSITIVE
  NEGATIVE
  NEUTRAL
}

enum IdeaType {
  VIDEO
  MINI_COURSE
  LIVE_QA
  COMMUNITY_CHALLENGE
}

enum IdeaStatus {
  NEW
  SAVED
  IMPLEMENTED
}

enum EventType {
  USER_REGISTERED
  CONTENT_PUBLISHED
  COMMENT_BATCH_IMPORTED
  SENTIMENT_ANALYZED
  IDEAS_GENERATED
  SUBSCRIPTION_STARTED
  SUBSCRIPTION_TIER_CHANGED
}

type User {
  id: UUID!
  email: String!
  name: String!
  role: String!
  createdAt: DateTime!
}

type AuthPayload {
  accessToken: String!
  user: User!
}

type CreatorProfile {
  id: UUID!
  userId: UUID!
  displayName: String!
  niche: String!
  bio: String
  subscriberCount: Int!
  createdAt: DateTime!
  updatedAt: DateTime!
}

type SubscriberProfile {
  id: UUID!
  userId: UUID!
  creatorId: UUID!
  tier: Tier!
  joinedAt: DateTime!
  updatedAt: DateTime!
  creator: CreatorProfile!
}

type ContentItem {
  id: UUID!
  creatorId: UUID!
  title: String!
  type: ContentType!
  isPremium: Boolean!
  requiredTier: Tier
  status: ContentStatus!
  publishedAt: DateTime
  createdAt: DateTime!
  updatedAt: DateTime!
}

type RawComment {
  author: String!
  text: String!
  timestamp: DateTime!
  tier: Tier
}

type CommentBatch {
  id: UUID!
  creatorId: UUID!
  source: BatchSource!
  status: BatchStatus!
  commentCount: Int!
  rawComments: [RawComment!]!
  linkedContentItemId: UUID
  importedAt: DateTime!
  snapshots: [SentimentSnapshot!]!
}

type SubscriberPage {
  items: [SubscriberProfile!]!
  total: Int!
}

type CommentBatchPage {
  items: [CommentBatch!]!
  total: Int!
}

type TierSentiment {
  tier: Tier!
  score: Float!
  positiveCount: Int!
  negativeCount: Int!
}

type SentimentSnapshot {
  id: UUID!
  creatorId: UUID!
  commentBatchId: UUID!
  timeRangeStart: DateTime!
  timeRangeEnd: DateTime!
  overallSentimentScore: Float!
  positiveCount: Int!
  negativeCount: Int!
  neutralCount: Int!
  topKeywords: [String!]!
  topRequests: [String!]!
  byTier: [TierSentiment!]
  createdAt: DateTime!
  ideas: [IdeaSuggestion!]!
}

type AnalyzeResult {
  snapshot: SentimentSnapshot!
  degradedChunks: Int!
}

type IdeaSuggestion {
  id: UUID!
  creatorId: UUID!
  sourceSnapshotId: UUID!
  tierTarget: String!
  ideaType: IdeaType!
  title: String!
  description: String!
  outline: [String!]!
  status: IdeaStatus!
  createdAt: DateTime!
  updatedAt: DateTime!
}

type ActivityEvent {
  id: UUID!
  eventType: EventType!
  userId: UUID
  creatorId: UUID
  metadata: JSON
  createdAt: DateTime!
}

type ActivityEventPage {
  items: [ActivityEvent!]!
  total: Int!
}

type EventTypeCount {
  eventType: EventType!
  count: Int!
}

type DayCount {
  day: DateTime!
  count: Int!
}

type ActivityStats {
  total: Int!
  byEventType: [EventTypeCount!]!
  timeline: [DayCount!]!
}

input RegisterInput {
  email: String!
  name: String!
  password: String!
}

input LoginInput {
  email: String!
  password: String!
}

input CreateCreatorProfileInput {
  displayName: String!
  niche: String!
  bio: String
}

input UpdateCreatorProfileInput {
  displayName: String
  niche: String
  bio: String
}

input SubscribeInput {
  creatorId: UUID!
  tier: Tier!
}

input CreateContentInput {
  title: String!
  type: ContentType!
  isPremium: Boolean!
  requiredTier: Tier
}

input UpdateContentInput {
  id: UUID!
  title: String
  type: ContentType
  isPremium: Boolean
  requiredTier: Tier
  clearRequiredTier: Boolean
}

input ImportCommentsInput {
  creatorId: UUID!
  source: BatchSource!
  payload: String!
  linkedContentItemId: UUID
}

input GenerateIdeasInput {
  snapshotId: UUID!
  tierTarget: String
}

input ActivityFilterInput {
  eventType: EventType
  userId: UUID
  creatorId: UUID
  from: DateTime
  to: DateTime
}

type Query {
  me: User!

  creator(id: UUID!): CreatorProfile!
  creators(limit: Int, offset: Int): [CreatorProfile!]!
  myCreatorProfile: CreatorProfile!

  mySubscription(creatorId: UUID!): SubscriberProfile
  mySubscribers(limit: Int, offset: Int): SubscriberPage!

  contentItem(id: UUID!): ContentItem!
  creatorContent(creatorId: UUID!, limit: Int, offset: Int): [ContentItem!]!

  commentBatch(id: UUID!): CommentBatch!
  commentBatches(creatorId: UUID!, limit: Int, offset: Int): CommentBatchPage!

  sentimentSnapshot(id: UUID!): SentimentSnapshot!
  sentimentSnapshots(creatorId: UUID!, limit: Int, offset: Int): [SentimentSnapshot!]!

  idea(id: UUID!): IdeaSuggestion!
  ideas(creatorId: UUID!, status: IdeaStatus, limit: Int, offset: Int): [IdeaSuggestion!]!

  activityEvents(filter: ActivityFilterInput, limit: Int, offset: Int): ActivityEventPage!
  activityStats(filter: ActivityFilterInput): ActivityStats!
}

type Mutation {
  register(input: RegisterInput!): AuthPayload!
  login(input: LoginInput!): AuthPayload!

  createCreatorProfile(input: CreateCreatorProfileInput!): CreatorProfile!
  updateCreatorProfile(input: UpdateCreatorProfileInput!): CreatorProfile!

  subscribe(input: SubscribeInput!): SubscriberProfile!

  createContent(input: CreateContentInput!): ContentItem!
  updateContent(input: UpdateContentInput!): ContentItem!
  publishContent(id: UUID!): ContentItem!
  deleteContent(id: UUID!): Boolean!

  importComments(input: ImportCommentsInput!): CommentBatch!
  analyzeBatch(batchId: UUID!): AnalyzeResult!
  generateIdeas(input: GenerateIdeasInput!): [IdeaSuggestion!]!
  updateIdeaStatus(id: UUID!, status: IdeaStatus!): IdeaSuggestion!
}
`, BuiltIn: false},
}
var parsedSchema = gqlparser.MustLoadSchema(sources...)

// endregion ************************** generated!.gotpl **************************

// region    ***************************** args.gotpl *****************************

func (ec *executionContext) field_Mutation_analyzeBatch_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "batchId", ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID)
	if err != nil {
		return nil, err
	}
	args["batchId"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_createContent_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "input", ec.unmarshalNCreateContentInput2githubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋtransportᚋgraphqlᚋmodelᚐCreateContentInput)
	if err != nil {
		return nil, err
	}
	args["input"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_createCreatorProfile_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "input", ec.unmarshalNCreateCreatorProfileInput2githubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋtransportᚋgraphqlᚋmodelᚐCreateCreatorProfileInput)
	if err != nil {
		return nil, err
	}
	args["input"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_deleteContent_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "id", ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID)
	if err != nil {
		return nil, err
	}
	args["id"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_generateIdeas_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "input", ec.unmarshalNGenerateIdeasInput2githubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋtransportᚋgraphqlᚋmodelᚐGenerateIdeasInput)
	if err != nil {
		return nil, err
	}
	args["input"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_importComments_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "input", ec.unmarshalNImportCommentsInput2githubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋtransportᚋgraphqlᚋmodelᚐImportCommentsInput)
	if err != nil {
		return nil, err
	}
	args["input"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_login_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "input", ec.unmarshalNLoginInput2githubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋtransportᚋgraphqlᚋmodelᚐLoginInput)
	if err != nil {
		return nil, err
	}
	args["input"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_publishContent_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "id", ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID)
	if err != nil {
		return nil, err
	}
	args["id"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_register_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "input", ec.unmarshalNRegisterInput2githubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋtransportᚋgraphqlᚋmodelᚐRegisterInput)
	if err != nil {
		return nil, err
	}
	args["input"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_subscribe_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "input", ec.unmarshalNSubscribeInput2githubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋtransportᚋgraphqlᚋmodelᚐSubscribeInput)
	if err != nil {
		return nil, err
	}
	args["input"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_updateContent_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "input", ec.unmarshalNUpdateContentInput2githubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋtransportᚋgraphqlᚋmodelᚐUpdateContentInput)
	if err != nil {
		return nil, err
	}
	args["input"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_updateCreatorProfile_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "input", ec.unmarshalNUpdateCreatorProfileInput2githubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋtransportᚋgraphqlᚋmodelᚐUpdateCreatorProfileInput)
	if err != nil {
		return nil, err
	}
	args["input"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_updateIdeaStatus_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "id", ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID)
	if err != nil {
		return nil, err
	}
	args["id"] = arg0
	arg1, err := graphql.ProcessArgField(ctx, rawArgs, "status", ec.unmarshalNIdeaStatus2githubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐIdeaStatus)
	if err != nil {
		return nil, err
	}
	args["status"] = arg1
	return args, nil
}

func (ec *executionContext) field_Query___type_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "name", ec.unmarshalNString2string)
	if err != nil {
		return nil, err
	}
	args["name"] = arg0
	return args, nil
}

func (ec *executionContext) field_Query_activityEvents_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "filter", ec.unmarshalOActivityFilterInput2ᚖgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋtransportᚋgraphqlᚋmodelᚐActivityFilterInput)
	if err != nil {
		return nil, err
	}
	args["filter"] = arg0
	arg1, err := graphql.ProcessArgField(ctx, rawArgs, "limit", ec.unmarshalOInt2ᚖint)
	if err != nil {
		return nil, err
	}
	args["limit"] = arg1
	arg2, err := graphql.ProcessArgField(ctx, rawArgs, "offset", ec.unmarshalOInt2ᚖint)
	if err != nil {
		return nil, err
	}
	args["offset"] = arg2
	return args, nil
}

func (ec *executionContext) field_Query_activityStats_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "filter", ec.unmarshalOActivityFilterInput2ᚖgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋtransportᚋgraphqlᚋmodelᚐActivityFilterInput)
	if err != nil {
		return nil, err
	}
	args["filter"] = arg0
	return args, nil
}

func (ec *executionContext) field_Query_commentBatch_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "id", ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID)
	if err != nil {
		return nil, err
	}
	args["id"] = arg0
	return args, nil
}

func (ec *executionContext) field_Query_commentBatches_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "creatorId", ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID)
	if err != nil {
		return nil, err
	}
	args["creatorId"] = arg0
	arg1, err := graphql.ProcessArgField(ctx, rawArgs, "limit", ec.unmarshalOInt2ᚖint)
	if err != nil {
		return nil, err
	}
	args["limit"] = arg1
	arg2, err := graphql.ProcessArgField(ctx, rawArgs, "offset", ec.unmarshalOInt2ᚖint)
	if err != nil {
		return nil, err
	}
	args["offset"] = arg2
	return args, nil
}

func (ec *executionContext) field_Query_contentItem_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "id", ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID)
	if err != nil {
		return nil, err
	}
	args["id"] = arg0
	return args, nil
}

func (ec *executionContext) field_Query_creatorContent_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "creatorId", ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID)
	if err != nil {
		return nil, err
	}
	args["creatorId"] = arg0
	arg1, err := graphql.ProcessArgField(ctx, rawArgs, "limit", ec.unmarshalOInt2ᚖint)
	if err != nil {
		return nil, err
	}
	args["limit"] = arg1
	arg2, err := graphql.ProcessArgField(ctx, rawArgs, "offset", ec.unmarshalOInt2ᚖint)
	if err != nil {
		return nil, err
	}
	args["offset"] = arg2
	return args, nil
}

func (ec *executionContext) field_Query_creator_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "id", ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID)
	if err != nil {
		return nil, err
	}
	args["id"] = arg0
	return args, nil
}

func (ec *executionContext) field_Query_creators_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "limit", ec.unmarshalOInt2ᚖint)
	if err != nil {
		return nil, err
	}
	args["limit"] = arg0
	arg1, err := graphql.ProcessArgField(ctx, rawArgs, "offset", ec.unmarshalOInt2ᚖint)
	if err != nil {
		return nil, err
	}
	args["offset"] = arg1
	return args, nil
}

func (ec *executionContext) field_Query_idea_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "id", ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID)
	if err != nil {
		return nil, err
	}
	args["id"] = arg0
	return args, nil
}

func (ec *executionContext) field_Query_ideas_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "creatorId", ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID)
	if err != nil {
		return nil, err
	}
	args["creatorId"] = arg0
	arg1, err := graphql.ProcessArgField(ctx, rawArgs, "status", ec.unmarshalOIdeaStatus2ᚖgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐIdeaStatus)
	if err != nil {
		return nil, err
	}
	args["status"] = arg1
	arg2, err := graphql.ProcessArgField(ctx, rawArgs, "limit", ec.unmarshalOInt2ᚖint)
	if err != nil {
		return nil, err
	}
	args["limit"] = arg2
	arg3, err := graphql.ProcessArgField(ctx, rawArgs, "offset", ec.unmarshalOInt2ᚖint)
	if err != nil {
		return nil, err
	}
	args["offset"] = arg3
	return args, nil
}

func (ec *executionContext) field_Query_mySubscribers_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "limit", ec.unmarshalOInt2ᚖint)
	if err != nil {
		return nil, err
	}
	args["limit"] = arg0
	arg1, err := graphql.ProcessArgField(ctx, rawArgs, "offset", ec.unmarshalOInt2ᚖint)
	if err != nil {
		return nil, err
	}
	args["offset"] = arg1
	return args, nil
}

func (ec *executionContext) field_Query_mySubscription_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "creatorId", ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID)
	if err != nil {
		return nil, err
	}
	args["creatorId"] = arg0
	return args, nil
}

func (ec *executionContext) field_Query_sentimentSnapshot_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "id", ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID)
	if err != nil {
		return nil, err
	}
	args["id"] = arg0
	return args, nil
}

func (ec *executionContext) field_Query_sentimentSnapshots_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "creatorId", ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID)
	if err != nil {
		return nil, err
	}
	args["creatorId"] = arg0
	arg1, err := graphql.ProcessArgField(ctx, rawArgs, "limit", ec.unmarshalOInt2ᚖint)
	if err != nil {
		return nil, err
	}
	args["limit"] = arg1
	arg2, err := graphql.ProcessArgField(ctx, rawArgs, "offset", ec.unmarshalOInt2ᚖint)
	if err != nil {
		return nil, err
	}
	args["offset"] = arg2
	return args, nil
}

func (ec *executionContext) field___Directive_args_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "includeDeprecated", ec.unmarshalOBoolean2ᚖbool)
	if err != nil {
		return nil, err
	}
	args["includeDeprecated"] = arg0
	return args, nil
}

func (ec *executionContext) field___Field_args_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "includeDeprecated", ec.unmarshalOBoolean2ᚖbool)
	if err != nil {
		return nil, err
	}
	args["includeDeprecated"] = arg0
	return args, nil
}

func (ec *executionContext) field___Type_enumValues_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "includeDeprecated", ec.unmarshalOBoolean2bool)
	if err != nil {
		return nil, err
	}
	args["includeDeprecated"] = arg0
	return args, nil
}

func (ec *executionContext) field___Type_fields_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "includeDeprecated", ec.unmarshalOBoolean2bool)
	if err != nil {
		return nil, err
	}
	args["includeDeprecated"] = arg0
	return args, nil
}

// endregion ***************************** args.gotpl *****************************

// region    ************************** directives.gotpl **************************

// endregion ************************** directives.gotpl **************************

// region    **************************** field.gotpl *****************************

func (ec *executionContext) _ActivityEvent_id(ctx context.Context, field graphql.CollectedField, obj *domain.ActivityEvent) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_ActivityEvent_id,
		func(ctx context.Context) (any, error) {
			return obj.ID, nil
		},
		nil,
		ec.marshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_ActivityEvent_id(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "ActivityEvent",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _ActivityEvent_eventType(ctx context.Context, field graphql.CollectedField, obj *domain.ActivityEvent) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_ActivityEvent_eventType,
		func(ctx context.Context) (any, error) {
			return obj.EventType, nil
		},
		nil,
		ec.marshalNEventType2githubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐEventType,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_ActivityEvent_eventType(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "ActivityEvent",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type EventType does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _ActivityEvent_userId(ctx context.Context, field graphql.CollectedField, obj *domain.ActivityEvent) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_ActivityEvent_userId,
		func(ctx context.Context) (any, error) {
			return obj.UserID, nil
		},
		nil,
		ec.marshalOUUID2ᚖgithubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_ActivityEvent_userId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "ActivityEvent",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _ActivityEvent_creatorId(ctx context.Context, field graphql.CollectedField, obj *domain.ActivityEvent) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_ActivityEvent_creatorId,
		func(ctx context.Context) (any, error) {
			return obj.CreatorID, nil
		},
		nil,
		ec.marshalOUUID2ᚖgithubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_ActivityEvent_creatorId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "ActivityEvent",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _ActivityEvent_metadata(ctx context.Context, field graphql.CollectedField, obj *domain.ActivityEvent) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_ActivityEvent_metadata,
		func(ctx context.Context) (any, error) {
			return obj.Metadata, nil
		},
		nil,
		ec.marshalOJSON2map,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_ActivityEvent_metadata(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "ActivityEvent",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type JSON does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _ActivityEvent_createdAt(ctx context.Context, field graphql.CollectedField, obj *domain.ActivityEvent) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_ActivityEvent_createdAt,
		func(ctx context.Context) (any, error) {
			return obj.CreatedAt, nil
		},
		nil,
		ec.marshalNDateTime2timeᚐTime,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_ActivityEvent_createdAt(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "ActivityEvent",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type DateTime does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _ActivityEventPage_items(ctx context.Context, field graphql.CollectedField, obj *model.ActivityEventPage) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_ActivityEventPage_items,
		func(ctx context.Context) (any, error) {
			return obj.Items, nil
		},
		nil,
		ec.marshalNActivityEvent2ᚕᚖgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐActivityEventᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_ActivityEventPage_items(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "ActivityEventPage",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_ActivityEvent_id(ctx, field)
			case "eventType":
				return ec.fieldContext_ActivityEvent_eventType(ctx, field)
			case "userId":
				return ec.fieldContext_ActivityEvent_userId(ctx, field)
			case "creatorId":
				return ec.fieldContext_ActivityEvent_creatorId(ctx, field)
			case "metadata":
				return ec.fieldContext_ActivityEvent_metadata(ctx, field)
			case "createdAt":
				return ec.fieldContext_ActivityEvent_createdAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type ActivityEvent", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _ActivityEventPage_total(ctx context.Context, field graphql.CollectedField, obj *model.ActivityEventPage) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_ActivityEventPage_total,
		func(ctx context.Context) (any, error) {
			return obj.Total, nil
		},
		nil,
		ec.marshalNInt2int,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_ActivityEventPage_total(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "ActivityEventPage",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Int does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _ActivityStats_total(ctx context.Context, field graphql.CollectedField, obj *domain.ActivityStats) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_ActivityStats_total,
		func(ctx context.Context) (any, error) {
			return obj.Total, nil
		},
		nil,
		ec.marshalNInt2int,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_ActivityStats_total(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "ActivityStats",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Int does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _ActivityStats_byEventType(ctx context.Context, field graphql.CollectedField, obj *domain.ActivityStats) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_ActivityStats_byEventType,
		func(ctx context.Context) (any, error) {
			return obj.ByEventType, nil
		},
		nil,
		ec.marshalNEventTypeCount2ᚕgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐEventTypeCountᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_ActivityStats_byEventType(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "ActivityStats",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "eventType":
				return ec.fieldContext_EventTypeCount_eventType(ctx, field)
			case "count":
				return ec.fieldContext_EventTypeCount_count(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type EventTypeCount", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _ActivityStats_timeline(ctx context.Context, field graphql.CollectedField, obj *domain.ActivityStats) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_ActivityStats_timeline,
		func(ctx context.Context) (any, error) {
			return obj.Timeline, nil
		},
		nil,
		ec.marshalNDayCount2ᚕgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐDayCountᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_ActivityStats_timeline(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "ActivityStats",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "day":
				return ec.fieldContext_DayCount_day(ctx, field)
			case "count":
				return ec.fieldContext_DayCount_count(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type DayCount", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _AnalyzeResult_snapshot(ctx context.Context, field graphql.CollectedField, obj *model.AnalyzeResult) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_AnalyzeResult_snapshot,
		func(ctx context.Context) (any, error) {
			return obj.Snapshot, nil
		},
		nil,
		ec.marshalNSentimentSnapshot2ᚖgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐSentimentSnapshot,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_AnalyzeResult_snapshot(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "AnalyzeResult",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_SentimentSnapshot_id(ctx, field)
			case "creatorId":
				return ec.fieldContext_SentimentSnapshot_creatorId(ctx, field)
			case "commentBatchId":
				return ec.fieldContext_SentimentSnapshot_commentBatchId(ctx, field)
			case "timeRangeStart":
				return ec.fieldContext_SentimentSnapshot_timeRangeStart(ctx, field)
			case "timeRangeEnd":
				return ec.fieldContext_SentimentSnapshot_timeRangeEnd(ctx, field)
			case "overallSentimentScore":
				return ec.fieldContext_SentimentSnapshot_overallSentimentScore(ctx, field)
			case "positiveCount":
				return ec.fieldContext_SentimentSnapshot_positiveCount(ctx, field)
			case "negativeCount":
				return ec.fieldContext_SentimentSnapshot_negativeCount(ctx, field)
			case "neutralCount":
				return ec.fieldContext_SentimentSnapshot_neutralCount(ctx, field)
			case "topKeywords":
				return ec.fieldContext_SentimentSnapshot_topKeywords(ctx, field)
			case "topRequests":
				return ec.fieldContext_SentimentSnapshot_topRequests(ctx, field)
			case "byTier":
				return ec.fieldContext_SentimentSnapshot_byTier(ctx, field)
			case "createdAt":
				return ec.fieldContext_SentimentSnapshot_createdAt(ctx, field)
			case "ideas":
				return ec.fieldContext_SentimentSnapshot_ideas(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type SentimentSnapshot", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _AnalyzeResult_degradedChunks(ctx context.Context, field graphql.CollectedField, obj *model.AnalyzeResult) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_AnalyzeResult_degradedChunks,
		func(ctx context.Context) (any, error) {
			return obj.DegradedChunks, nil
		},
		nil,
		ec.marshalNInt2int,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_AnalyzeResult_degradedChunks(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "AnalyzeResult",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Int does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _AuthPayload_accessToken(ctx context.Context, field graphql.CollectedField, obj *model.AuthPayload) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_AuthPayload_accessToken,
		func(ctx context.Context) (any, error) {
			return obj.AccessToken, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_AuthPayload_accessToken(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "AuthPayload",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _AuthPayload_user(ctx context.Context, field graphql.CollectedField, obj *model.AuthPayload) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_AuthPayload_user,
		func(ctx context.Context) (any, error) {
			return obj.User, nil
		},
		nil,
		ec.marshalNUser2ᚖgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐUser,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_AuthPayload_user(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "AuthPayload",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_User_id(ctx, field)
			case "email":
				return ec.fieldContext_User_email(ctx, field)
			case "name":
				return ec.fieldContext_User_name(ctx, field)
			case "role":
				return ec.fieldContext_User_role(ctx, field)
			case "createdAt":
				return ec.fieldContext_User_createdAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type User", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _CommentBatch_id(ctx context.Context, field graphql.CollectedField, obj *domain.CommentBatch) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_CommentBatch_id,
		func(ctx context.Context) (any, error) {
			return obj.ID, nil
		},
		nil,
		ec.marshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_CommentBatch_id(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "CommentBatch",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _CommentBatch_creatorId(ctx context.Context, field graphql.CollectedField, obj *domain.CommentBatch) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_CommentBatch_creatorId,
		func(ctx context.Context) (any, error) {
			return obj.CreatorID, nil
		},
		nil,
		ec.marshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_CommentBatch_creatorId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "CommentBatch",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _CommentBatch_source(ctx context.Context, field graphql.CollectedField, obj *domain.CommentBatch) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_CommentBatch_source,
		func(ctx context.Context) (any, error) {
			return obj.Source, nil
		},
		nil,
		ec.marshalNBatchSource2githubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐBatchSource,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_CommentBatch_source(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "CommentBatch",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type BatchSource does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _CommentBatch_status(ctx context.Context, field graphql.CollectedField, obj *domain.CommentBatch) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_CommentBatch_status,
		func(ctx context.Context) (any, error) {
			return obj.Status, nil
		},
		nil,
		ec.marshalNBatchStatus2githubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐBatchStatus,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_CommentBatch_status(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "CommentBatch",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type BatchStatus does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _CommentBatch_commentCount(ctx context.Context, field graphql.CollectedField, obj *domain.CommentBatch) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_CommentBatch_commentCount,
		func(ctx context.Context) (any, error) {
			return obj.CommentCount(), nil
		},
		nil,
		ec.marshalNInt2int,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_CommentBatch_commentCount(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "CommentBatch",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Int does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _CommentBatch_rawComments(ctx context.Context, field graphql.CollectedField, obj *domain.CommentBatch) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_CommentBatch_rawComments,
		func(ctx context.Context) (any, error) {
			return obj.RawComments, nil
		},
		nil,
		ec.marshalNRawComment2ᚕgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐRawCommentᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_CommentBatch_rawComments(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "CommentBatch",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "author":
				return ec.fieldContext_RawComment_author(ctx, field)
			case "text":
				return ec.fieldContext_RawComment_text(ctx, field)
			case "timestamp":
				return ec.fieldContext_RawComment_timestamp(ctx, field)
			case "tier":
				return ec.fieldContext_RawComment_tier(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type RawComment", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _CommentBatch_linkedContentItemId(ctx context.Context, field graphql.CollectedField, obj *domain.CommentBatch) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_CommentBatch_linkedContentItemId,
		func(ctx context.Context) (any, error) {
			return obj.LinkedContentItemID, nil
		},
		nil,
		ec.marshalOUUID2ᚖgithubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_CommentBatch_linkedContentItemId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "CommentBatch",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _CommentBatch_importedAt(ctx context.Context, field graphql.CollectedField, obj *domain.CommentBatch) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_CommentBatch_importedAt,
		func(ctx context.Context) (any, error) {
			return obj.ImportedAt, nil
		},
		nil,
		ec.marshalNDateTime2timeᚐTime,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_CommentBatch_importedAt(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "CommentBatch",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type DateTime does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _CommentBatch_snapshots(ctx context.Context, field graphql.CollectedField, obj *domain.CommentBatch) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_CommentBatch_snapshots,
		func(ctx context.Context) (any, error) {
			return ec.resolvers.CommentBatch().Snapshots(ctx, obj)
		},
		nil,
		ec.marshalNSentimentSnapshot2ᚕᚖgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐSentimentSnapshotᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_CommentBatch_snapshots(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "CommentBatch",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_SentimentSnapshot_id(ctx, field)
			case "creatorId":
				return ec.fieldContext_SentimentSnapshot_creatorId(ctx, field)
			case "commentBatchId":
				return ec.fieldContext_SentimentSnapshot_commentBatchId(ctx, field)
			case "timeRangeStart":
				return ec.fieldContext_SentimentSnapshot_timeRangeStart(ctx, field)
			case "timeRangeEnd":
				return ec.fieldContext_SentimentSnapshot_timeRangeEnd(ctx, field)
			case "overallSentimentScore":
				return ec.fieldContext_SentimentSnapshot_overallSentimentScore(ctx, field)
			case "positiveCount":
				return ec.fieldContext_SentimentSnapshot_positiveCount(ctx, field)
			case "negativeCount":
				return ec.fieldContext_SentimentSnapshot_negativeCount(ctx, field)
			case "neutralCount":
				return ec.fieldContext_SentimentSnapshot_neutralCount(ctx, field)
			case "topKeywords":
				return ec.fieldContext_SentimentSnapshot_topKeywords(ctx, field)
			case "topRequests":
				return ec.fieldContext_SentimentSnapshot_topRequests(ctx, field)
			case "byTier":
				return ec.fieldContext_SentimentSnapshot_byTier(ctx, field)
			case "createdAt":
				return ec.fieldContext_SentimentSnapshot_createdAt(ctx, field)
			case "ideas":
				return ec.fieldContext_SentimentSnapshot_ideas(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type SentimentSnapshot", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _CommentBatchPage_items(ctx context.Context, field graphql.CollectedField, obj *model.CommentBatchPage) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_CommentBatchPage_items,
		func(ctx context.Context) (any, error) {
			return obj.Items, nil
		},
		nil,
		ec.marshalNCommentBatch2ᚕᚖgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐCommentBatchᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_CommentBatchPage_items(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "CommentBatchPage",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_CommentBatch_id(ctx, field)
			case "creatorId":
				return ec.fieldContext_CommentBatch_creatorId(ctx, field)
			case "source":
				return ec.fieldContext_CommentBatch_source(ctx, field)
			case "status":
				return ec.fieldContext_CommentBatch_status(ctx, field)
			case "commentCount":
				return ec.fieldContext_CommentBatch_commentCount(ctx, field)
			case "rawComments":
				return ec.fieldContext_CommentBatch_rawComments(ctx, field)
			case "linkedContentItemId":
				return ec.fieldContext_CommentBatch_linkedContentItemId(ctx, field)
			case "importedAt":
				return ec.fieldContext_CommentBatch_importedAt(ctx, field)
			case "snapshots":
				return ec.fieldContext_CommentBatch_snapshots(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type CommentBatch", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _CommentBatchPage_total(ctx context.Context, field graphql.CollectedField, obj *model.CommentBatchPage) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_CommentBatchPage_total,
		func(ctx context.Context) (any, error) {
			return obj.Total, nil
		},
		nil,
		ec.marshalNInt2int,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_CommentBatchPage_total(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "CommentBatchPage",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Int does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _ContentItem_id(ctx context.Context, field graphql.CollectedField, obj *domain.ContentItem) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_ContentItem_id,
		func(ctx context.Context) (any, error) {
			return obj.ID, nil
		},
		nil,
		ec.marshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_ContentItem_id(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "ContentItem",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _ContentItem_creatorId(ctx context.Context, field graphql.CollectedField, obj *domain.ContentItem) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_ContentItem_creatorId,
		func(ctx context.Context) (any, error) {
			return obj.CreatorID, nil
		},
		nil,
		ec.marshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_ContentItem_creatorId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "ContentItem",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _ContentItem_title(ctx context.Context, field graphql.CollectedField, obj *domain.ContentItem) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_ContentItem_title,
		func(ctx context.Context) (any, error) {
			return obj.Title, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_ContentItem_title(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "ContentItem",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _ContentItem_type(ctx context.Context, field graphql.CollectedField, obj *domain.ContentItem) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_ContentItem_type,
		func(ctx context.Context) (any, error) {
			return obj.Type, nil
		},
		nil,
		ec.marshalNContentType2githubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐContentType,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_ContentItem_type(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "ContentItem",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type ContentType does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _ContentItem_isPremium(ctx context.Context, field graphql.CollectedField, obj *domain.ContentItem) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_ContentItem_isPremium,
		func(ctx context.Context) (any, error) {
			return obj.IsPremium, nil
		},
		nil,
		ec.marshalNBoolean2bool,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_ContentItem_isPremium(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "ContentItem",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Boolean does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _ContentItem_requiredTier(ctx context.Context, field graphql.CollectedField, obj *domain.ContentItem) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_ContentItem_requiredTier,
		func(ctx context.Context) (any, error) {
			return obj.RequiredTier, nil
		},
		nil,
		ec.marshalOTier2ᚖgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐTier,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_ContentItem_requiredTier(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "ContentItem",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Tier does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _ContentItem_status(ctx context.Context, field graphql.CollectedField, obj *domain.ContentItem) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_ContentItem_status,
		func(ctx context.Context) (any, error) {
			return obj.Status, nil
		},
		nil,
		ec.marshalNContentStatus2githubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐContentStatus,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_ContentItem_status(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "ContentItem",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type ContentStatus does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _ContentItem_publishedAt(ctx context.Context, field graphql.CollectedField, obj *domain.ContentItem) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_ContentItem_publishedAt,
		func(ctx context.Context) (any, error) {
			return obj.PublishedAt, nil
		},
		nil,
		ec.marshalODateTime2ᚖtimeᚐTime,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_ContentItem_publishedAt(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "ContentItem",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type DateTime does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _ContentItem_createdAt(ctx context.Context, field graphql.CollectedField, obj *domain.ContentItem) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_ContentItem_createdAt,
		func(ctx context.Context) (any, error) {
			return obj.CreatedAt, nil
		},
		nil,
		ec.marshalNDateTime2timeᚐTime,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_ContentItem_createdAt(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "ContentItem",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type DateTime does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _ContentItem_updatedAt(ctx context.Context, field graphql.CollectedField, obj *domain.ContentItem) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_ContentItem_updatedAt,
		func(ctx context.Context) (any, error) {
			return obj.UpdatedAt, nil
		},
		nil,
		ec.marshalNDateTime2timeᚐTime,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_ContentItem_updatedAt(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "ContentItem",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type DateTime does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _CreatorProfile_id(ctx context.Context, field graphql.CollectedField, obj *domain.CreatorProfile) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_CreatorProfile_id,
		func(ctx context.Context) (any, error) {
			return obj.ID, nil
		},
		nil,
		ec.marshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_CreatorProfile_id(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "CreatorProfile",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _CreatorProfile_userId(ctx context.Context, field graphql.CollectedField, obj *domain.CreatorProfile) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_CreatorProfile_userId,
		func(ctx context.Context) (any, error) {
			return obj.UserID, nil
		},
		nil,
		ec.marshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_CreatorProfile_userId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "CreatorProfile",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _CreatorProfile_displayName(ctx context.Context, field graphql.CollectedField, obj *domain.CreatorProfile) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_CreatorProfile_displayName,
		func(ctx context.Context) (any, error) {
			return obj.DisplayName, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_CreatorProfile_displayName(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "CreatorProfile",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _CreatorProfile_niche(ctx context.Context, field graphql.CollectedField, obj *domain.CreatorProfile) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_CreatorProfile_niche,
		func(ctx context.Context) (any, error) {
			return obj.Niche, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_CreatorProfile_niche(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "CreatorProfile",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _CreatorProfile_bio(ctx context.Context, field graphql.CollectedField, obj *domain.CreatorProfile) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_CreatorProfile_bio,
		func(ctx context.Context) (any, error) {
			return obj.Bio, nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_CreatorProfile_bio(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "CreatorProfile",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _CreatorProfile_subscriberCount(ctx context.Context, field graphql.CollectedField, obj *domain.CreatorProfile) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_CreatorProfile_subscriberCount,
		func(ctx context.Context) (any, error) {
			return ec.resolvers.CreatorProfile().SubscriberCount(ctx, obj)
		},
		nil,
		ec.marshalNInt2int,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_CreatorProfile_subscriberCount(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "CreatorProfile",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Int does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _CreatorProfile_createdAt(ctx context.Context, field graphql.CollectedField, obj *domain.CreatorProfile) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_CreatorProfile_createdAt,
		func(ctx context.Context) (any, error) {
			return obj.CreatedAt, nil
		},
		nil,
		ec.marshalNDateTime2timeᚐTime,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_CreatorProfile_createdAt(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "CreatorProfile",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type DateTime does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _CreatorProfile_updatedAt(ctx context.Context, field graphql.CollectedField, obj *domain.CreatorProfile) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_CreatorProfile_updatedAt,
		func(ctx context.Context) (any, error) {
			return obj.UpdatedAt, nil
		},
		nil,
		ec.marshalNDateTime2timeᚐTime,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_CreatorProfile_updatedAt(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "CreatorProfile",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type DateTime does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _DayCount_day(ctx context.Context, field graphql.CollectedField, obj *domain.DayCount) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_DayCount_day,
		func(ctx context.Context) (any, error) {
			return obj.Day, nil
		},
		nil,
		ec.marshalNDateTime2timeᚐTime,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_DayCount_day(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "DayCount",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type DateTime does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _DayCount_count(ctx context.Context, field graphql.CollectedField, obj *domain.DayCount) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_DayCount_count,
		func(ctx context.Context) (any, error) {
			return obj.Count, nil
		},
		nil,
		ec.marshalNInt2int,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_DayCount_count(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "DayCount",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Int does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _EventTypeCount_eventType(ctx context.Context, field graphql.CollectedField, obj *domain.EventTypeCount) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_EventTypeCount_eventType,
		func(ctx context.Context) (any, error) {
			return obj.EventType, nil
		},
		nil,
		ec.marshalNEventType2githubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐEventType,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_EventTypeCount_eventType(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "EventTypeCount",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type EventType does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _EventTypeCount_count(ctx context.Context, field graphql.CollectedField, obj *domain.EventTypeCount) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_EventTypeCount_count,
		func(ctx context.Context) (any, error) {
			return obj.Count, nil
		},
		nil,
		ec.marshalNInt2int,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_EventTypeCount_count(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "EventTypeCount",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Int does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _IdeaSuggestion_id(ctx context.Context, field graphql.CollectedField, obj *domain.IdeaSuggestion) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_IdeaSuggestion_id,
		func(ctx context.Context) (any, error) {
			return obj.ID, nil
		},
		nil,
		ec.marshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_IdeaSuggestion_id(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "IdeaSuggestion",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _IdeaSuggestion_creatorId(ctx context.Context, field graphql.CollectedField, obj *domain.IdeaSuggestion) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_IdeaSuggestion_creatorId,
		func(ctx context.Context) (any, error) {
			return obj.CreatorID, nil
		},
		nil,
		ec.marshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_IdeaSuggestion_creatorId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "IdeaSuggestion",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _IdeaSuggestion_sourceSnapshotId(ctx context.Context, field graphql.CollectedField, obj *domain.IdeaSuggestion) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_IdeaSuggestion_sourceSnapshotId,
		func(ctx context.Context) (any, error) {
			return obj.SourceSnapshotID, nil
		},
		nil,
		ec.marshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_IdeaSuggestion_sourceSnapshotId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "IdeaSuggestion",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _IdeaSuggestion_tierTarget(ctx context.Context, field graphql.CollectedField, obj *domain.IdeaSuggestion) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_IdeaSuggestion_tierTarget,
		func(ctx context.Context) (any, error) {
			return obj.TierTarget, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_IdeaSuggestion_tierTarget(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "IdeaSuggestion",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _IdeaSuggestion_ideaType(ctx context.Context, field graphql.CollectedField, obj *domain.IdeaSuggestion) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_IdeaSuggestion_ideaType,
		func(ctx context.Context) (any, error) {
			return obj.IdeaType, nil
		},
		nil,
		ec.marshalNIdeaType2githubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐIdeaType,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_IdeaSuggestion_ideaType(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "IdeaSuggestion",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type IdeaType does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _IdeaSuggestion_title(ctx context.Context, field graphql.CollectedField, obj *domain.IdeaSuggestion) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_IdeaSuggestion_title,
		func(ctx context.Context) (any, error) {
			return obj.Title, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_IdeaSuggestion_title(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "IdeaSuggestion",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _IdeaSuggestion_description(ctx context.Context, field graphql.CollectedField, obj *domain.IdeaSuggestion) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_IdeaSuggestion_description,
		func(ctx context.Context) (any, error) {
			return obj.Description, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_IdeaSuggestion_description(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "IdeaSuggestion",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _IdeaSuggestion_outline(ctx context.Context, field graphql.CollectedField, obj *domain.IdeaSuggestion) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_IdeaSuggestion_outline,
		func(ctx context.Context) (any, error) {
			return obj.Outline, nil
		},
		nil,
		ec.marshalNString2ᚕstringᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_IdeaSuggestion_outline(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "IdeaSuggestion",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _IdeaSuggestion_status(ctx context.Context, field graphql.CollectedField, obj *domain.IdeaSuggestion) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_IdeaSuggestion_status,
		func(ctx context.Context) (any, error) {
			return obj.Status, nil
		},
		nil,
		ec.marshalNIdeaStatus2githubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐIdeaStatus,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_IdeaSuggestion_status(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "IdeaSuggestion",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type IdeaStatus does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _IdeaSuggestion_createdAt(ctx context.Context, field graphql.CollectedField, obj *domain.IdeaSuggestion) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_IdeaSuggestion_createdAt,
		func(ctx context.Context) (any, error) {
			return obj.CreatedAt, nil
		},
		nil,
		ec.marshalNDateTime2timeᚐTime,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_IdeaSuggestion_createdAt(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "IdeaSuggestion",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type DateTime does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _IdeaSuggestion_updatedAt(ctx context.Context, field graphql.CollectedField, obj *domain.IdeaSuggestion) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_IdeaSuggestion_updatedAt,
		func(ctx context.Context) (any, error) {
			return obj.UpdatedAt, nil
		},
		nil,
		ec.marshalNDateTime2timeᚐTime,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_IdeaSuggestion_updatedAt(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "IdeaSuggestion",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type DateTime does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_register(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_register,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().Register(ctx, fc.Args["input"].(model.RegisterInput))
		},
		nil,
		ec.marshalNAuthPayload2ᚖgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋtransportᚋgraphqlᚋmodelᚐAuthPayload,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_register(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "accessToken":
				return ec.fieldContext_AuthPayload_accessToken(ctx, field)
			case "user":
				return ec.fieldContext_AuthPayload_user(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type AuthPayload", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_register_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_login(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_login,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().Login(ctx, fc.Args["input"].(model.LoginInput))
		},
		nil,
		ec.marshalNAuthPayload2ᚖgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋtransportᚋgraphqlᚋmodelᚐAuthPayload,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_login(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "accessToken":
				return ec.fieldContext_AuthPayload_accessToken(ctx, field)
			case "user":
				return ec.fieldContext_AuthPayload_user(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type AuthPayload", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_login_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_createCreatorProfile(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_createCreatorProfile,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().CreateCreatorProfile(ctx, fc.Args["input"].(model.CreateCreatorProfileInput))
		},
		nil,
		ec.marshalNCreatorProfile2ᚖgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐCreatorProfile,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_createCreatorProfile(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_CreatorProfile_id(ctx, field)
			case "userId":
				return ec.fieldContext_CreatorProfile_userId(ctx, field)
			case "displayName":
				return ec.fieldContext_CreatorProfile_displayName(ctx, field)
			case "niche":
				return ec.fieldContext_CreatorProfile_niche(ctx, field)
			case "bio":
				return ec.fieldContext_CreatorProfile_bio(ctx, field)
			case "subscriberCount":
				return ec.fieldContext_CreatorProfile_subscriberCount(ctx, field)
			case "createdAt":
				return ec.fieldContext_CreatorProfile_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_CreatorProfile_updatedAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type CreatorProfile", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_createCreatorProfile_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_updateCreatorProfile(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_updateCreatorProfile,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().UpdateCreatorProfile(ctx, fc.Args["input"].(model.UpdateCreatorProfileInput))
		},
		nil,
		ec.marshalNCreatorProfile2ᚖgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐCreatorProfile,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_updateCreatorProfile(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_CreatorProfile_id(ctx, field)
			case "userId":
				return ec.fieldContext_CreatorProfile_userId(ctx, field)
			case "displayName":
				return ec.fieldContext_CreatorProfile_displayName(ctx, field)
			case "niche":
				return ec.fieldContext_CreatorProfile_niche(ctx, field)
			case "bio":
				return ec.fieldContext_CreatorProfile_bio(ctx, field)
			case "subscriberCount":
				return ec.fieldContext_CreatorProfile_subscriberCount(ctx, field)
			case "createdAt":
				return ec.fieldContext_CreatorProfile_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_CreatorProfile_updatedAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type CreatorProfile", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_updateCreatorProfile_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_subscribe(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_subscribe,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().Subscribe(ctx, fc.Args["input"].(model.SubscribeInput))
		},
		nil,
		ec.marshalNSubscriberProfile2ᚖgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐSubscriberProfile,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_subscribe(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_SubscriberProfile_id(ctx, field)
			case "userId":
				return ec.fieldContext_SubscriberProfile_userId(ctx, field)
			case "creatorId":
				return ec.fieldContext_SubscriberProfile_creatorId(ctx, field)
			case "tier":
				return ec.fieldContext_SubscriberProfile_tier(ctx, field)
			case "joinedAt":
				return ec.fieldContext_SubscriberProfile_joinedAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_SubscriberProfile_updatedAt(ctx, field)
			case "creator":
				return ec.fieldContext_SubscriberProfile_creator(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type SubscriberProfile", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_subscribe_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_createContent(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_createContent,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().CreateContent(ctx, fc.Args["input"].(model.CreateContentInput))
		},
		nil,
		ec.marshalNContentItem2ᚖgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐContentItem,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_createContent(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_ContentItem_id(ctx, field)
			case "creatorId":
				return ec.fieldContext_ContentItem_creatorId(ctx, field)
			case "title":
				return ec.fieldContext_ContentItem_title(ctx, field)
			case "type":
				return ec.fieldContext_ContentItem_type(ctx, field)
			case "isPremium":
				return ec.fieldContext_ContentItem_isPremium(ctx, field)
			case "requiredTier":
				return ec.fieldContext_ContentItem_requiredTier(ctx, field)
			case "status":
				return ec.fieldContext_ContentItem_status(ctx, field)
			case "publishedAt":
				return ec.fieldContext_ContentItem_publishedAt(ctx, field)
			case "createdAt":
				return ec.fieldContext_ContentItem_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_ContentItem_updatedAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type ContentItem", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_createContent_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_updateContent(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_updateContent,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().UpdateContent(ctx, fc.Args["input"].(model.UpdateContentInput))
		},
		nil,
		ec.marshalNContentItem2ᚖgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐContentItem,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_updateContent(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_ContentItem_id(ctx, field)
			case "creatorId":
				return ec.fieldContext_ContentItem_creatorId(ctx, field)
			case "title":
				return ec.fieldContext_ContentItem_title(ctx, field)
			case "type":
				return ec.fieldContext_ContentItem_type(ctx, field)
			case "isPremium":
				return ec.fieldContext_ContentItem_isPremium(ctx, field)
			case "requiredTier":
				return ec.fieldContext_ContentItem_requiredTier(ctx, field)
			case "status":
				return ec.fieldContext_ContentItem_status(ctx, field)
			case "publishedAt":
				return ec.fieldContext_ContentItem_publishedAt(ctx, field)
			case "createdAt":
				return ec.fieldContext_ContentItem_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_ContentItem_updatedAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type ContentItem", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_updateContent_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_publishContent(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_publishContent,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().PublishContent(ctx, fc.Args["id"].(uuid.UUID))
		},
		nil,
		ec.marshalNContentItem2ᚖgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐContentItem,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_publishContent(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_ContentItem_id(ctx, field)
			case "creatorId":
				return ec.fieldContext_ContentItem_creatorId(ctx, field)
			case "title":
				return ec.fieldContext_ContentItem_title(ctx, field)
			case "type":
				return ec.fieldContext_ContentItem_type(ctx, field)
			case "isPremium":
				return ec.fieldContext_ContentItem_isPremium(ctx, field)
			case "requiredTier":
				return ec.fieldContext_ContentItem_requiredTier(ctx, field)
			case "status":
				return ec.fieldContext_ContentItem_status(ctx, field)
			case "publishedAt":
				return ec.fieldContext_ContentItem_publishedAt(ctx, field)
			case "createdAt":
				return ec.fieldContext_ContentItem_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_ContentItem_updatedAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type ContentItem", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_publishContent_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_deleteContent(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_deleteContent,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().DeleteContent(ctx, fc.Args["id"].(uuid.UUID))
		},
		nil,
		ec.marshalNBoolean2bool,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_deleteContent(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Boolean does not have child fields")
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_deleteContent_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_importComments(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_importComments,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().ImportComments(ctx, fc.Args["input"].(model.ImportCommentsInput))
		},
		nil,
		ec.marshalNCommentBatch2ᚖgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐCommentBatch,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_importComments(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_CommentBatch_id(ctx, field)
			case "creatorId":
				return ec.fieldContext_CommentBatch_creatorId(ctx, field)
			case "source":
				return ec.fieldContext_CommentBatch_source(ctx, field)
			case "status":
				return ec.fieldContext_CommentBatch_status(ctx, field)
			case "commentCount":
				return ec.fieldContext_CommentBatch_commentCount(ctx, field)
			case "rawComments":
				return ec.fieldContext_CommentBatch_rawComments(ctx, field)
			case "linkedContentItemId":
				return ec.fieldContext_CommentBatch_linkedContentItemId(ctx, field)
			case "importedAt":
				return ec.fieldContext_CommentBatch_importedAt(ctx, field)
			case "snapshots":
				return ec.fieldContext_CommentBatch_snapshots(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type CommentBatch", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_importComments_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_analyzeBatch(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_analyzeBatch,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().AnalyzeBatch(ctx, fc.Args["batchId"].(uuid.UUID))
		},
		nil,
		ec.marshalNAnalyzeResult2ᚖgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋtransportᚋgraphqlᚋmodelᚐAnalyzeResult,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_analyzeBatch(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "snapshot":
				return ec.fieldContext_AnalyzeResult_snapshot(ctx, field)
			case "degradedChunks":
				return ec.fieldContext_AnalyzeResult_degradedChunks(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type AnalyzeResult", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_analyzeBatch_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_generateIdeas(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_generateIdeas,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().GenerateIdeas(ctx, fc.Args["input"].(model.GenerateIdeasInput))
		},
		nil,
		ec.marshalNIdeaSuggestion2ᚕᚖgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐIdeaSuggestionᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_generateIdeas(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_IdeaSuggestion_id(ctx, field)
			case "creatorId":
				return ec.fieldContext_IdeaSuggestion_creatorId(ctx, field)
			case "sourceSnapshotId":
				return ec.fieldContext_IdeaSuggestion_sourceSnapshotId(ctx, field)
			case "tierTarget":
				return ec.fieldContext_IdeaSuggestion_tierTarget(ctx, field)
			case "ideaType":
				return ec.fieldContext_IdeaSuggestion_ideaType(ctx, field)
			case "title":
				return ec.fieldContext_IdeaSuggestion_title(ctx, field)
			case "description":
				return ec.fieldContext_IdeaSuggestion_description(ctx, field)
			case "outline":
				return ec.fieldContext_IdeaSuggestion_outline(ctx, field)
			case "status":
				return ec.fieldContext_IdeaSuggestion_status(ctx, field)
			case "createdAt":
				return ec.fieldContext_IdeaSuggestion_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_IdeaSuggestion_updatedAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type IdeaSuggestion", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_generateIdeas_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_updateIdeaStatus(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_updateIdeaStatus,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().UpdateIdeaStatus(ctx, fc.Args["id"].(uuid.UUID), fc.Args["status"].(domain.IdeaStatus))
		},
		nil,
		ec.marshalNIdeaSuggestion2ᚖgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐIdeaSuggestion,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_updateIdeaStatus(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_IdeaSuggestion_id(ctx, field)
			case "creatorId":
				return ec.fieldContext_IdeaSuggestion_creatorId(ctx, field)
			case "sourceSnapshotId":
				return ec.fieldContext_IdeaSuggestion_sourceSnapshotId(ctx, field)
			case "tierTarget":
				return ec.fieldContext_IdeaSuggestion_tierTarget(ctx, field)
			case "ideaType":
				return ec.fieldContext_IdeaSuggestion_ideaType(ctx, field)
			case "title":
				return ec.fieldContext_IdeaSuggestion_title(ctx, field)
			case "description":
				return ec.fieldContext_IdeaSuggestion_description(ctx, field)
			case "outline":
				return ec.fieldContext_IdeaSuggestion_outline(ctx, field)
			case "status":
				return ec.fieldContext_IdeaSuggestion_status(ctx, field)
			case "createdAt":
				return ec.fieldContext_IdeaSuggestion_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_IdeaSuggestion_updatedAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type IdeaSuggestion", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_updateIdeaStatus_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Query_me(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query_me,
		func(ctx context.Context) (any, error) {
			return ec.resolvers.Query().Me(ctx)
		},
		nil,
		ec.marshalNUser2ᚖgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐUser,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Query_me(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_User_id(ctx, field)
			case "email":
				return ec.fieldContext_User_email(ctx, field)
			case "name":
				return ec.fieldContext_User_name(ctx, field)
			case "role":
				return ec.fieldContext_User_role(ctx, field)
			case "createdAt":
				return ec.fieldContext_User_createdAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type User", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _Query_creator(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query_creator,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Query().Creator(ctx, fc.Args["id"].(uuid.UUID))
		},
		nil,
		ec.marshalNCreatorProfile2ᚖgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐCreatorProfile,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Query_creator(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_CreatorProfile_id(ctx, field)
			case "userId":
				return ec.fieldContext_CreatorProfile_userId(ctx, field)
			case "displayName":
				return ec.fieldContext_CreatorProfile_displayName(ctx, field)
			case "niche":
				return ec.fieldContext_CreatorProfile_niche(ctx, field)
			case "bio":
				return ec.fieldContext_CreatorProfile_bio(ctx, field)
			case "subscriberCount":
				return ec.fieldContext_CreatorProfile_subscriberCount(ctx, field)
			case "createdAt":
				return ec.fieldContext_CreatorProfile_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_CreatorProfile_updatedAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type CreatorProfile", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Query_creator_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Query_creators(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query_creators,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Query().Creators(ctx, fc.Args["limit"].(*int), fc.Args["offset"].(*int))
		},
		nil,
		ec.marshalNCreatorProfile2ᚕᚖgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐCreatorProfileᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Query_creators(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_CreatorProfile_id(ctx, field)
			case "userId":
				return ec.fieldContext_CreatorProfile_userId(ctx, field)
			case "displayName":
				return ec.fieldContext_CreatorProfile_displayName(ctx, field)
			case "niche":
				return ec.fieldContext_CreatorProfile_niche(ctx, field)
			case "bio":
				return ec.fieldContext_CreatorProfile_bio(ctx, field)
			case "subscriberCount":
				return ec.fieldContext_CreatorProfile_subscriberCount(ctx, field)
			case "createdAt":
				return ec.fieldContext_CreatorProfile_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_CreatorProfile_updatedAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type CreatorProfile", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Query_creators_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Query_myCreatorProfile(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query_myCreatorProfile,
		func(ctx context.Context) (any, error) {
			return ec.resolvers.Query().MyCreatorProfile(ctx)
		},
		nil,
		ec.marshalNCreatorProfile2ᚖgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐCreatorProfile,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Query_myCreatorProfile(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_CreatorProfile_id(ctx, field)
			case "userId":
				return ec.fieldContext_CreatorProfile_userId(ctx, field)
			case "displayName":
				return ec.fieldContext_CreatorProfile_displayName(ctx, field)
			case "niche":
				return ec.fieldContext_CreatorProfile_niche(ctx, field)
			case "bio":
				return ec.fieldContext_CreatorProfile_bio(ctx, field)
			case "subscriberCount":
				return ec.fieldContext_CreatorProfile_subscriberCount(ctx, field)
			case "createdAt":
				return ec.fieldContext_CreatorProfile_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_CreatorProfile_updatedAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type CreatorProfile", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _Query_mySubscription(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query_mySubscription,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Query().MySubscription(ctx, fc.Args["creatorId"].(uuid.UUID))
		},
		nil,
		ec.marshalOSubscriberProfile2ᚖgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐSubscriberProfile,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Query_mySubscription(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_SubscriberProfile_id(ctx, field)
			case "userId":
				return ec.fieldContext_SubscriberProfile_userId(ctx, field)
			case "creatorId":
				return ec.fieldContext_SubscriberProfile_creatorId(ctx, field)
			case "tier":
				return ec.fieldContext_SubscriberProfile_tier(ctx, field)
			case "joinedAt":
				return ec.fieldContext_SubscriberProfile_joinedAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_SubscriberProfile_updatedAt(ctx, field)
			case "creator":
				return ec.fieldContext_SubscriberProfile_creator(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type SubscriberProfile", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Query_mySubscription_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Query_mySubscribers(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query_mySubscribers,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Query().MySubscribers(ctx, fc.Args["limit"].(*int), fc.Args["offset"].(*int))
		},
		nil,
		ec.marshalNSubscriberPage2ᚖgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋtransportᚋgraphqlᚋmodelᚐSubscriberPage,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Query_mySubscribers(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "items":
				return ec.fieldContext_SubscriberPage_items(ctx, field)
			case "total":
				return ec.fieldContext_SubscriberPage_total(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type SubscriberPage", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Query_mySubscribers_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Query_contentItem(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query_contentItem,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Query().ContentItem(ctx, fc.Args["id"].(uuid.UUID))
		},
		nil,
		ec.marshalNContentItem2ᚖgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐContentItem,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Query_contentItem(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_ContentItem_id(ctx, field)
			case "creatorId":
				return ec.fieldContext_ContentItem_creatorId(ctx, field)
			case "title":
				return ec.fieldContext_ContentItem_title(ctx, field)
			case "type":
				return ec.fieldContext_ContentItem_type(ctx, field)
			case "isPremium":
				return ec.fieldContext_ContentItem_isPremium(ctx, field)
			case "requiredTier":
				return ec.fieldContext_ContentItem_requiredTier(ctx, field)
			case "status":
				return ec.fieldContext_ContentItem_status(ctx, field)
			case "publishedAt":
				return ec.fieldContext_ContentItem_publishedAt(ctx, field)
			case "createdAt":
				return ec.fieldContext_ContentItem_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_ContentItem_updatedAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type ContentItem", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Query_contentItem_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Query_creatorContent(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query_creatorContent,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Query().CreatorContent(ctx, fc.Args["creatorId"].(uuid.UUID), fc.Args["limit"].(*int), fc.Args["offset"].(*int))
		},
		nil,
		ec.marshalNContentItem2ᚕᚖgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐContentItemᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Query_creatorContent(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_ContentItem_id(ctx, field)
			case "creatorId":
				return ec.fieldContext_ContentItem_creatorId(ctx, field)
			case "title":
				return ec.fieldContext_ContentItem_title(ctx, field)
			case "type":
				return ec.fieldContext_ContentItem_type(ctx, field)
			case "isPremium":
				return ec.fieldContext_ContentItem_isPremium(ctx, field)
			case "requiredTier":
				return ec.fieldContext_ContentItem_requiredTier(ctx, field)
			case "status":
				return ec.fieldContext_ContentItem_status(ctx, field)
			case "publishedAt":
				return ec.fieldContext_ContentItem_publishedAt(ctx, field)
			case "createdAt":
				return ec.fieldContext_ContentItem_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_ContentItem_updatedAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type ContentItem", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Query_creatorContent_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Query_commentBatch(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query_commentBatch,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Query().CommentBatch(ctx, fc.Args["id"].(uuid.UUID))
		},
		nil,
		ec.marshalNCommentBatch2ᚖgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐCommentBatch,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Query_commentBatch(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_CommentBatch_id(ctx, field)
			case "creatorId":
				return ec.fieldContext_CommentBatch_creatorId(ctx, field)
			case "source":
				return ec.fieldContext_CommentBatch_source(ctx, field)
			case "status":
				return ec.fieldContext_CommentBatch_status(ctx, field)
			case "commentCount":
				return ec.fieldContext_CommentBatch_commentCount(ctx, field)
			case "rawComments":
				return ec.fieldContext_CommentBatch_rawComments(ctx, field)
			case "linkedContentItemId":
				return ec.fieldContext_CommentBatch_linkedContentItemId(ctx, field)
			case "importedAt":
				return ec.fieldContext_CommentBatch_importedAt(ctx, field)
			case "snapshots":
				return ec.fieldContext_CommentBatch_snapshots(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type CommentBatch", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Query_commentBatch_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Query_commentBatches(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query_commentBatches,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Query().CommentBatches(ctx, fc.Args["creatorId"].(uuid.UUID), fc.Args["limit"].(*int), fc.Args["offset"].(*int))
		},
		nil,
		ec.marshalNCommentBatchPage2ᚖgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋtransportᚋgraphqlᚋmodelᚐCommentBatchPage,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Query_commentBatches(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "items":
				return ec.fieldContext_CommentBatchPage_items(ctx, field)
			case "total":
				return ec.fieldContext_CommentBatchPage_total(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type CommentBatchPage", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Query_commentBatches_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Query_sentimentSnapshot(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query_sentimentSnapshot,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Query().SentimentSnapshot(ctx, fc.Args["id"].(uuid.UUID))
		},
		nil,
		ec.marshalNSentimentSnapshot2ᚖgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐSentimentSnapshot,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Query_sentimentSnapshot(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_SentimentSnapshot_id(ctx, field)
			case "creatorId":
				return ec.fieldContext_SentimentSnapshot_creatorId(ctx, field)
			case "commentBatchId":
				return ec.fieldContext_SentimentSnapshot_commentBatchId(ctx, field)
			case "timeRangeStart":
				return ec.fieldContext_SentimentSnapshot_timeRangeStart(ctx, field)
			case "timeRangeEnd":
				return ec.fieldContext_SentimentSnapshot_timeRangeEnd(ctx, field)
			case "overallSentimentScore":
				return ec.fieldContext_SentimentSnapshot_overallSentimentScore(ctx, field)
			case "positiveCount":
				return ec.fieldContext_SentimentSnapshot_positiveCount(ctx, field)
			case "negativeCount":
				return ec.fieldContext_SentimentSnapshot_negativeCount(ctx, field)
			case "neutralCount":
				return ec.fieldContext_SentimentSnapshot_neutralCount(ctx, field)
			case "topKeywords":
				return ec.fieldContext_SentimentSnapshot_topKeywords(ctx, field)
			case "topRequests":
				return ec.fieldContext_SentimentSnapshot_topRequests(ctx, field)
			case "byTier":
				return ec.fieldContext_SentimentSnapshot_byTier(ctx, field)
			case "createdAt":
				return ec.fieldContext_SentimentSnapshot_createdAt(ctx, field)
			case "ideas":
				return ec.fieldContext_SentimentSnapshot_ideas(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type SentimentSnapshot", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Query_sentimentSnapshot_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Query_sentimentSnapshots(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query_sentimentSnapshots,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Query().SentimentSnapshots(ctx, fc.Args["creatorId"].(uuid.UUID), fc.Args["limit"].(*int), fc.Args["offset"].(*int))
		},
		nil,
		ec.marshalNSentimentSnapshot2ᚕᚖgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐSentimentSnapshotᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Query_sentimentSnapshots(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_SentimentSnapshot_id(ctx, field)
			case "creatorId":
				return ec.fieldContext_SentimentSnapshot_creatorId(ctx, field)
			case "commentBatchId":
				return ec.fieldContext_SentimentSnapshot_commentBatchId(ctx, field)
			case "timeRangeStart":
				return ec.fieldContext_SentimentSnapshot_timeRangeStart(ctx, field)
			case "timeRangeEnd":
				return ec.fieldContext_SentimentSnapshot_timeRangeEnd(ctx, field)
			case "overallSentimentScore":
				return ec.fieldContext_SentimentSnapshot_overallSentimentScore(ctx, field)
			case "positiveCount":
				return ec.fieldContext_SentimentSnapshot_positiveCount(ctx, field)
			case "negativeCount":
				return ec.fieldContext_SentimentSnapshot_negativeCount(ctx, field)
			case "neutralCount":
				return ec.fieldContext_SentimentSnapshot_neutralCount(ctx, field)
			case "topKeywords":
				return ec.fieldContext_SentimentSnapshot_topKeywords(ctx, field)
			case "topRequests":
				return ec.fieldContext_SentimentSnapshot_topRequests(ctx, field)
			case "byTier":
				return ec.fieldContext_SentimentSnapshot_byTier(ctx, field)
			case "createdAt":
				return ec.fieldContext_SentimentSnapshot_createdAt(ctx, field)
			case "ideas":
				return ec.fieldContext_SentimentSnapshot_ideas(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type SentimentSnapshot", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Query_sentimentSnapshots_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Query_idea(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query_idea,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Query().Idea(ctx, fc.Args["id"].(uuid.UUID))
		},
		nil,
		ec.marshalNIdeaSuggestion2ᚖgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐIdeaSuggestion,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Query_idea(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_IdeaSuggestion_id(ctx, field)
			case "creatorId":
				return ec.fieldContext_IdeaSuggestion_creatorId(ctx, field)
			case "sourceSnapshotId":
				return ec.fieldContext_IdeaSuggestion_sourceSnapshotId(ctx, field)
			case "tierTarget":
				return ec.fieldContext_IdeaSuggestion_tierTarget(ctx, field)
			case "ideaType":
				return ec.fieldContext_IdeaSuggestion_ideaType(ctx, field)
			case "title":
				return ec.fieldContext_IdeaSuggestion_title(ctx, field)
			case "description":
				return ec.fieldContext_IdeaSuggestion_description(ctx, field)
			case "outline":
				return ec.fieldContext_IdeaSuggestion_outline(ctx, field)
			case "status":
				return ec.fieldContext_IdeaSuggestion_status(ctx, field)
			case "createdAt":
				return ec.fieldContext_IdeaSuggestion_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_IdeaSuggestion_updatedAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type IdeaSuggestion", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Query_idea_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Query_ideas(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query_ideas,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Query().Ideas(ctx, fc.Args["creatorId"].(uuid.UUID), fc.Args["status"].(*domain.IdeaStatus), fc.Args["limit"].(*int), fc.Args["offset"].(*int))
		},
		nil,
		ec.marshalNIdeaSuggestion2ᚕᚖgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐIdeaSuggestionᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Query_ideas(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_IdeaSuggestion_id(ctx, field)
			case "creatorId":
				return ec.fieldContext_IdeaSuggestion_creatorId(ctx, field)
			case "sourceSnapshotId":
				return ec.fieldContext_IdeaSuggestion_sourceSnapshotId(ctx, field)
			case "tierTarget":
				return ec.fieldContext_IdeaSuggestion_tierTarget(ctx, field)
			case "ideaType":
				return ec.fieldContext_IdeaSuggestion_ideaType(ctx, field)
			case "title":
				return ec.fieldContext_IdeaSuggestion_title(ctx, field)
			case "description":
				return ec.fieldContext_IdeaSuggestion_description(ctx, field)
			case "outline":
				return ec.fieldContext_IdeaSuggestion_outline(ctx, field)
			case "status":
				return ec.fieldContext_IdeaSuggestion_status(ctx, field)
			case "createdAt":
				return ec.fieldContext_IdeaSuggestion_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_IdeaSuggestion_updatedAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type IdeaSuggestion", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Query_ideas_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Query_activityEvents(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query_activityEvents,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Query().ActivityEvents(ctx, fc.Args["filter"].(*model.ActivityFilterInput), fc.Args["limit"].(*int), fc.Args["offset"].(*int))
		},
		nil,
		ec.marshalNActivityEventPage2ᚖgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋtransportᚋgraphqlᚋmodelᚐActivityEventPage,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Query_activityEvents(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "items":
				return ec.fieldContext_ActivityEventPage_items(ctx, field)
			case "total":
				return ec.fieldContext_ActivityEventPage_total(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type ActivityEventPage", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Query_activityEvents_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Query_activityStats(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query_activityStats,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Query().ActivityStats(ctx, fc.Args["filter"].(*model.ActivityFilterInput))
		},
		nil,
		ec.marshalNActivityStats2ᚖgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐActivityStats,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Query_activityStats(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "total":
				return ec.fieldContext_ActivityStats_total(ctx, field)
			case "byEventType":
				return ec.fieldContext_ActivityStats_byEventType(ctx, field)
			case "timeline":
				return ec.fieldContext_ActivityStats_timeline(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type ActivityStats", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Query_activityStats_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Query___type(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query___type,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.introspectType(fc.Args["name"].(string))
		},
		nil,
		ec.marshalO__Type2ᚖgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐType,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Query___type(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "kind":
				return ec.fieldContext___Type_kind(ctx, field)
			case "name":
				return ec.fieldContext___Type_name(ctx, field)
			case "description":
				return ec.fieldContext___Type_description(ctx, field)
			case "specifiedByURL":
				return ec.fieldContext___Type_specifiedByURL(ctx, field)
			case "fields":
				return ec.fieldContext___Type_fields(ctx, field)
			case "interfaces":
				return ec.fieldContext___Type_interfaces(ctx, field)
			case "possibleTypes":
				return ec.fieldContext___Type_possibleTypes(ctx, field)
			case "enumValues":
				return ec.fieldContext___Type_enumValues(ctx, field)
			case "inputFields":
				return ec.fieldContext___Type_inputFields(ctx, field)
			case "ofType":
				return ec.fieldContext___Type_ofType(ctx, field)
			case "isOneOf":
				return ec.fieldContext___Type_isOneOf(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __Type", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Query___type_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Query___schema(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query___schema,
		func(ctx context.Context) (any, error) {
			return ec.introspectSchema()
		},
		nil,
		ec.marshalO__Schema2ᚖgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐSchema,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Query___schema(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "description":
				return ec.fieldContext___Schema_description(ctx, field)
			case "types":
				return ec.fieldContext___Schema_types(ctx, field)
			case "queryType":
				return ec.fieldContext___Schema_queryType(ctx, field)
			case "mutationType":
				return ec.fieldContext___Schema_mutationType(ctx, field)
			case "subscriptionType":
				return ec.fieldContext___Schema_subscriptionType(ctx, field)
			case "directives":
				return ec.fieldContext___Schema_directives(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __Schema", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _RawComment_author(ctx context.Context, field graphql.CollectedField, obj *domain.RawComment) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_RawComment_author,
		func(ctx context.Context) (any, error) {
			return obj.Author, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_RawComment_author(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "RawComment",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _RawComment_text(ctx context.Context, field graphql.CollectedField, obj *domain.RawComment) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_RawComment_text,
		func(ctx context.Context) (any, error) {
			return obj.Text, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_RawComment_text(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "RawComment",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _RawComment_timestamp(ctx context.Context, field graphql.CollectedField, obj *domain.RawComment) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_RawComment_timestamp,
		func(ctx context.Context) (any, error) {
			return obj.Timestamp, nil
		},
		nil,
		ec.marshalNDateTime2timeᚐTime,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_RawComment_timestamp(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "RawComment",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type DateTime does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _RawComment_tier(ctx context.Context, field graphql.CollectedField, obj *domain.RawComment) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_RawComment_tier,
		func(ctx context.Context) (any, error) {
			return obj.Tier, nil
		},
		nil,
		ec.marshalOTier2ᚖgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐTier,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_RawComment_tier(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "RawComment",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Tier does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _SentimentSnapshot_id(ctx context.Context, field graphql.CollectedField, obj *domain.SentimentSnapshot) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_SentimentSnapshot_id,
		func(ctx context.Context) (any, error) {
			return obj.ID, nil
		},
		nil,
		ec.marshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_SentimentSnapshot_id(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "SentimentSnapshot",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _SentimentSnapshot_creatorId(ctx context.Context, field graphql.CollectedField, obj *domain.SentimentSnapshot) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_SentimentSnapshot_creatorId,
		func(ctx context.Context) (any, error) {
			return obj.CreatorID, nil
		},
		nil,
		ec.marshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_SentimentSnapshot_creatorId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "SentimentSnapshot",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _SentimentSnapshot_commentBatchId(ctx context.Context, field graphql.CollectedField, obj *domain.SentimentSnapshot) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_SentimentSnapshot_commentBatchId,
		func(ctx context.Context) (any, error) {
			return obj.CommentBatchID, nil
		},
		nil,
		ec.marshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_SentimentSnapshot_commentBatchId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "SentimentSnapshot",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _SentimentSnapshot_timeRangeStart(ctx context.Context, field graphql.CollectedField, obj *domain.SentimentSnapshot) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_SentimentSnapshot_timeRangeStart,
		func(ctx context.Context) (any, error) {
			return obj.TimeRangeStart, nil
		},
		nil,
		ec.marshalNDateTime2timeᚐTime,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_SentimentSnapshot_timeRangeStart(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "SentimentSnapshot",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type DateTime does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _SentimentSnapshot_timeRangeEnd(ctx context.Context, field graphql.CollectedField, obj *domain.SentimentSnapshot) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_SentimentSnapshot_timeRangeEnd,
		func(ctx context.Context) (any, error) {
			return obj.TimeRangeEnd, nil
		},
		nil,
		ec.marshalNDateTime2timeᚐTime,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_SentimentSnapshot_timeRangeEnd(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "SentimentSnapshot",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type DateTime does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _SentimentSnapshot_overallSentimentScore(ctx context.Context, field graphql.CollectedField, obj *domain.SentimentSnapshot) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_SentimentSnapshot_overallSentimentScore,
		func(ctx context.Context) (any, error) {
			return obj.OverallSentimentScore, nil
		},
		nil,
		ec.marshalNFloat2float64,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_SentimentSnapshot_overallSentimentScore(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "SentimentSnapshot",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Float does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _SentimentSnapshot_positiveCount(ctx context.Context, field graphql.CollectedField, obj *domain.SentimentSnapshot) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_SentimentSnapshot_positiveCount,
		func(ctx context.Context) (any, error) {
			return obj.PositiveCount, nil
		},
		nil,
		ec.marshalNInt2int,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_SentimentSnapshot_positiveCount(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "SentimentSnapshot",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Int does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _SentimentSnapshot_negativeCount(ctx context.Context, field graphql.CollectedField, obj *domain.SentimentSnapshot) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_SentimentSnapshot_negativeCount,
		func(ctx context.Context) (any, error) {
			return obj.NegativeCount, nil
		},
		nil,
		ec.marshalNInt2int,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_SentimentSnapshot_negativeCount(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "SentimentSnapshot",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Int does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _SentimentSnapshot_neutralCount(ctx context.Context, field graphql.CollectedField, obj *domain.SentimentSnapshot) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_SentimentSnapshot_neutralCount,
		func(ctx context.Context) (any, error) {
			return obj.NeutralCount, nil
		},
		nil,
		ec.marshalNInt2int,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_SentimentSnapshot_neutralCount(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "SentimentSnapshot",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Int does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _SentimentSnapshot_topKeywords(ctx context.Context, field graphql.CollectedField, obj *domain.SentimentSnapshot) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_SentimentSnapshot_topKeywords,
		func(ctx context.Context) (any, error) {
			return obj.TopKeywords, nil
		},
		nil,
		ec.marshalNString2ᚕstringᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_SentimentSnapshot_topKeywords(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "SentimentSnapshot",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _SentimentSnapshot_topRequests(ctx context.Context, field graphql.CollectedField, obj *domain.SentimentSnapshot) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_SentimentSnapshot_topRequests,
		func(ctx context.Context) (any, error) {
			return obj.TopRequests, nil
		},
		nil,
		ec.marshalNString2ᚕstringᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_SentimentSnapshot_topRequests(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "SentimentSnapshot",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _SentimentSnapshot_byTier(ctx context.Context, field graphql.CollectedField, obj *domain.SentimentSnapshot) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_SentimentSnapshot_byTier,
		func(ctx context.Context) (any, error) {
			return obj.ByTier, nil
		},
		nil,
		ec.marshalOTierSentiment2ᚕgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐTierSentimentᚄ,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_SentimentSnapshot_byTier(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "SentimentSnapshot",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "tier":
				return ec.fieldContext_TierSentiment_tier(ctx, field)
			case "score":
				return ec.fieldContext_TierSentiment_score(ctx, field)
			case "positiveCount":
				return ec.fieldContext_TierSentiment_positiveCount(ctx, field)
			case "negativeCount":
				return ec.fieldContext_TierSentiment_negativeCount(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type TierSentiment", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _SentimentSnapshot_createdAt(ctx context.Context, field graphql.CollectedField, obj *domain.SentimentSnapshot) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_SentimentSnapshot_createdAt,
		func(ctx context.Context) (any, error) {
			return obj.CreatedAt, nil
		},
		nil,
		ec.marshalNDateTime2timeᚐTime,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_SentimentSnapshot_createdAt(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "SentimentSnapshot",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type DateTime does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _SentimentSnapshot_ideas(ctx context.Context, field graphql.CollectedField, obj *domain.SentimentSnapshot) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_SentimentSnapshot_ideas,
		func(ctx context.Context) (any, error) {
			return ec.resolvers.SentimentSnapshot().Ideas(ctx, obj)
		},
		nil,
		ec.marshalNIdeaSuggestion2ᚕᚖgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐIdeaSuggestionᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_SentimentSnapshot_ideas(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "SentimentSnapshot",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_IdeaSuggestion_id(ctx, field)
			case "creatorId":
				return ec.fieldContext_IdeaSuggestion_creatorId(ctx, field)
			case "sourceSnapshotId":
				return ec.fieldContext_IdeaSuggestion_sourceSnapshotId(ctx, field)
			case "tierTarget":
				return ec.fieldContext_IdeaSuggestion_tierTarget(ctx, field)
			case "ideaType":
				return ec.fieldContext_IdeaSuggestion_ideaType(ctx, field)
			case "title":
				return ec.fieldContext_IdeaSuggestion_title(ctx, field)
			case "description":
				return ec.fieldContext_IdeaSuggestion_description(ctx, field)
			case "outline":
				return ec.fieldContext_IdeaSuggestion_outline(ctx, field)
			case "status":
				return ec.fieldContext_IdeaSuggestion_status(ctx, field)
			case "createdAt":
				return ec.fieldContext_IdeaSuggestion_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_IdeaSuggestion_updatedAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type IdeaSuggestion", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _SubscriberPage_items(ctx context.Context, field graphql.CollectedField, obj *model.SubscriberPage) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_SubscriberPage_items,
		func(ctx context.Context) (any, error) {
			return obj.Items, nil
		},
		nil,
		ec.marshalNSubscriberProfile2ᚕᚖgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐSubscriberProfileᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_SubscriberPage_items(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "SubscriberPage",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_SubscriberProfile_id(ctx, field)
			case "userId":
				return ec.fieldContext_SubscriberProfile_userId(ctx, field)
			case "creatorId":
				return ec.fieldContext_SubscriberProfile_creatorId(ctx, field)
			case "tier":
				return ec.fieldContext_SubscriberProfile_tier(ctx, field)
			case "joinedAt":
				return ec.fieldContext_SubscriberProfile_joinedAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_SubscriberProfile_updatedAt(ctx, field)
			case "creator":
				return ec.fieldContext_SubscriberProfile_creator(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type SubscriberProfile", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _SubscriberPage_total(ctx context.Context, field graphql.CollectedField, obj *model.SubscriberPage) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_SubscriberPage_total,
		func(ctx context.Context) (any, error) {
			return obj.Total, nil
		},
		nil,
		ec.marshalNInt2int,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_SubscriberPage_total(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "SubscriberPage",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Int does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _SubscriberProfile_id(ctx context.Context, field graphql.CollectedField, obj *domain.SubscriberProfile) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_SubscriberProfile_id,
		func(ctx context.Context) (any, error) {
			return obj.ID, nil
		},
		nil,
		ec.marshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_SubscriberProfile_id(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "SubscriberProfile",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _SubscriberProfile_userId(ctx context.Context, field graphql.CollectedField, obj *domain.SubscriberProfile) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_SubscriberProfile_userId,
		func(ctx context.Context) (any, error) {
			return obj.UserID, nil
		},
		nil,
		ec.marshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_SubscriberProfile_userId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "SubscriberProfile",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _SubscriberProfile_creatorId(ctx context.Context, field graphql.CollectedField, obj *domain.SubscriberProfile) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_SubscriberProfile_creatorId,
		func(ctx context.Context) (any, error) {
			return obj.CreatorID, nil
		},
		nil,
		ec.marshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_SubscriberProfile_creatorId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "SubscriberProfile",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _SubscriberProfile_tier(ctx context.Context, field graphql.CollectedField, obj *domain.SubscriberProfile) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_SubscriberProfile_tier,
		func(ctx context.Context) (any, error) {
			return obj.Tier, nil
		},
		nil,
		ec.marshalNTier2githubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐTier,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_SubscriberProfile_tier(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "SubscriberProfile",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Tier does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _SubscriberProfile_joinedAt(ctx context.Context, field graphql.CollectedField, obj *domain.SubscriberProfile) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_SubscriberProfile_joinedAt,
		func(ctx context.Context) (any, error) {
			return obj.JoinedAt, nil
		},
		nil,
		ec.marshalNDateTime2timeᚐTime,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_SubscriberProfile_joinedAt(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "SubscriberProfile",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type DateTime does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _SubscriberProfile_updatedAt(ctx context.Context, field graphql.CollectedField, obj *domain.SubscriberProfile) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_SubscriberProfile_updatedAt,
		func(ctx context.Context) (any, error) {
			return obj.UpdatedAt, nil
		},
		nil,
		ec.marshalNDateTime2timeᚐTime,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_SubscriberProfile_updatedAt(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "SubscriberProfile",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type DateTime does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _SubscriberProfile_creator(ctx context.Context, field graphql.CollectedField, obj *domain.SubscriberProfile) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_SubscriberProfile_creator,
		func(ctx context.Context) (any, error) {
			return ec.resolvers.SubscriberProfile().Creator(ctx, obj)
		},
		nil,
		ec.marshalNCreatorProfile2ᚖgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐCreatorProfile,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_SubscriberProfile_creator(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "SubscriberProfile",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_CreatorProfile_id(ctx, field)
			case "userId":
				return ec.fieldContext_CreatorProfile_userId(ctx, field)
			case "displayName":
				return ec.fieldContext_CreatorProfile_displayName(ctx, field)
			case "niche":
				return ec.fieldContext_CreatorProfile_niche(ctx, field)
			case "bio":
				return ec.fieldContext_CreatorProfile_bio(ctx, field)
			case "subscriberCount":
				return ec.fieldContext_CreatorProfile_subscriberCount(ctx, field)
			case "createdAt":
				return ec.fieldContext_CreatorProfile_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_CreatorProfile_updatedAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type CreatorProfile", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _TierSentiment_tier(ctx context.Context, field graphql.CollectedField, obj *domain.TierSentiment) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_TierSentiment_tier,
		func(ctx context.Context) (any, error) {
			return obj.Tier, nil
		},
		nil,
		ec.marshalNTier2githubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐTier,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_TierSentiment_tier(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "TierSentiment",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Tier does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _TierSentiment_score(ctx context.Context, field graphql.CollectedField, obj *domain.TierSentiment) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_TierSentiment_score,
		func(ctx context.Context) (any, error) {
			return obj.Score, nil
		},
		nil,
		ec.marshalNFloat2float64,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_TierSentiment_score(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "TierSentiment",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Float does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _TierSentiment_positiveCount(ctx context.Context, field graphql.CollectedField, obj *domain.TierSentiment) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_TierSentiment_positiveCount,
		func(ctx context.Context) (any, error) {
			return obj.PositiveCount, nil
		},
		nil,
		ec.marshalNInt2int,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_TierSentiment_positiveCount(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "TierSentiment",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Int does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _TierSentiment_negativeCount(ctx context.Context, field graphql.CollectedField, obj *domain.TierSentiment) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_TierSentiment_negativeCount,
		func(ctx context.Context) (any, error) {
			return obj.NegativeCount, nil
		},
		nil,
		ec.marshalNInt2int,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_TierSentiment_negativeCount(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "TierSentiment",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Int does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _User_id(ctx context.Context, field graphql.CollectedField, obj *domain.User) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_User_id,
		func(ctx context.Context) (any, error) {
			return obj.ID, nil
		},
		nil,
		ec.marshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_User_id(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "User",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _User_email(ctx context.Context, field graphql.CollectedField, obj *domain.User) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_User_email,
		func(ctx context.Context) (any, error) {
			return obj.Email, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_User_email(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "User",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _User_name(ctx context.Context, field graphql.CollectedField, obj *domain.User) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_User_name,
		func(ctx context.Context) (any, error) {
			return obj.Name, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_User_name(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "User",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _User_role(ctx context.Context, field graphql.CollectedField, obj *domain.User) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_User_role,
		func(ctx context.Context) (any, error) {
			return ec.resolvers.User().Role(ctx, obj)
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_User_role(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "User",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _User_createdAt(ctx context.Context, field graphql.CollectedField, obj *domain.User) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_User_createdAt,
		func(ctx context.Context) (any, error) {
			return obj.CreatedAt, nil
		},
		nil,
		ec.marshalNDateTime2timeᚐTime,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_User_createdAt(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "User",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type DateTime does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Directive_name(ctx context.Context, field graphql.CollectedField, obj *introspection.Directive) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Directive_name,
		func(ctx context.Context) (any, error) {
			return obj.Name, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___Directive_name(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Directive",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Directive_description(ctx context.Context, field graphql.CollectedField, obj *introspection.Directive) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Directive_description,
		func(ctx context.Context) (any, error) {
			return obj.Description(), nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Directive_description(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Directive",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Directive_isRepeatable(ctx context.Context, field graphql.CollectedField, obj *introspection.Directive) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Directive_isRepeatable,
		func(ctx context.Context) (any, error) {
			return obj.IsRepeatable, nil
		},
		nil,
		ec.marshalNBoolean2bool,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___Directive_isRepeatable(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Directive",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Boolean does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Directive_locations(ctx context.Context, field graphql.CollectedField, obj *introspection.Directive) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Directive_locations,
		func(ctx context.Context) (any, error) {
			return obj.Locations, nil
		},
		nil,
		ec.marshalN__DirectiveLocation2ᚕstringᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___Directive_locations(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Directive",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type __DirectiveLocation does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Directive_args(ctx context.Context, field graphql.CollectedField, obj *introspection.Directive) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Directive_args,
		func(ctx context.Context) (any, error) {
			return obj.Args, nil
		},
		nil,
		ec.marshalN__InputValue2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐInputValueᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___Directive_args(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Directive",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "name":
				return ec.fieldContext___InputValue_name(ctx, field)
			case "description":
				return ec.fieldContext___InputValue_description(ctx, field)
			case "type":
				return ec.fieldContext___InputValue_type(ctx, field)
			case "defaultValue":
				return ec.fieldContext___InputValue_defaultValue(ctx, field)
			case "isDeprecated":
				return ec.fieldContext___InputValue_isDeprecated(ctx, field)
			case "deprecationReason":
				return ec.fieldContext___InputValue_deprecationReason(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __InputValue", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field___Directive_args_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) ___EnumValue_name(ctx context.Context, field graphql.CollectedField, obj *introspection.EnumValue) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___EnumValue_name,
		func(ctx context.Context) (any, error) {
			return obj.Name, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___EnumValue_name(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__EnumValue",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___EnumValue_description(ctx context.Context, field graphql.CollectedField, obj *introspection.EnumValue) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___EnumValue_description,
		func(ctx context.Context) (any, error) {
			return obj.Description(), nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___EnumValue_description(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__EnumValue",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___EnumValue_isDeprecated(ctx context.Context, field graphql.CollectedField, obj *introspection.EnumValue) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___EnumValue_isDeprecated,
		func(ctx context.Context) (any, error) {
			return obj.IsDeprecated(), nil
		},
		nil,
		ec.marshalNBoolean2bool,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___EnumValue_isDeprecated(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__EnumValue",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Boolean does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___EnumValue_deprecationReason(ctx context.Context, field graphql.CollectedField, obj *introspection.EnumValue) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___EnumValue_deprecationReason,
		func(ctx context.Context) (any, error) {
			return obj.DeprecationReason(), nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___EnumValue_deprecationReason(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__EnumValue",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Field_name(ctx context.Context, field graphql.CollectedField, obj *introspection.Field) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Field_name,
		func(ctx context.Context) (any, error) {
			return obj.Name, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___Field_name(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Field",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Field_description(ctx context.Context, field graphql.CollectedField, obj *introspection.Field) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Field_description,
		func(ctx context.Context) (any, error) {
			return obj.Description(), nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Field_description(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Field",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Field_args(ctx context.Context, field graphql.CollectedField, obj *introspection.Field) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Field_args,
		func(ctx context.Context) (any, error) {
			return obj.Args, nil
		},
		nil,
		ec.marshalN__InputValue2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐInputValueᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___Field_args(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Field",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "name":
				return ec.fieldContext___InputValue_name(ctx, field)
			case "description":
				return ec.fieldContext___InputValue_description(ctx, field)
			case "type":
				return ec.fieldContext___InputValue_type(ctx, field)
			case "defaultValue":
				return ec.fieldContext___InputValue_defaultValue(ctx, field)
			case "isDeprecated":
				return ec.fieldContext___InputValue_isDeprecated(ctx, field)
			case "deprecationReason":
				return ec.fieldContext___InputValue_deprecationReason(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __InputValue", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field___Field_args_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) ___Field_type(ctx context.Context, field graphql.CollectedField, obj *introspection.Field) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Field_type,
		func(ctx context.Context) (any, error) {
			return obj.Type, nil
		},
		nil,
		ec.marshalN__Type2ᚖgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐType,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___Field_type(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Field",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "kind":
				return ec.fieldContext___Type_kind(ctx, field)
			case "name":
				return ec.fieldContext___Type_name(ctx, field)
			case "description":
				return ec.fieldContext___Type_description(ctx, field)
			case "specifiedByURL":
				return ec.fieldContext___Type_specifiedByURL(ctx, field)
			case "fields":
				return ec.fieldContext___Type_fields(ctx, field)
			case "interfaces":
				return ec.fieldContext___Type_interfaces(ctx, field)
			case "possibleTypes":
				return ec.fieldContext___Type_possibleTypes(ctx, field)
			case "enumValues":
				return ec.fieldContext___Type_enumValues(ctx, field)
			case "inputFields":
				return ec.fieldContext___Type_inputFields(ctx, field)
			case "ofType":
				return ec.fieldContext___Type_ofType(ctx, field)
			case "isOneOf":
				return ec.fieldContext___Type_isOneOf(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __Type", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Field_isDeprecated(ctx context.Context, field graphql.CollectedField, obj *introspection.Field) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Field_isDeprecated,
		func(ctx context.Context) (any, error) {
			return obj.IsDeprecated(), nil
		},
		nil,
		ec.marshalNBoolean2bool,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___Field_isDeprecated(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Field",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Boolean does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Field_deprecationReason(ctx context.Context, field graphql.CollectedField, obj *introspection.Field) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Field_deprecationReason,
		func(ctx context.Context) (any, error) {
			return obj.DeprecationReason(), nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Field_deprecationReason(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Field",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___InputValue_name(ctx context.Context, field graphql.CollectedField, obj *introspection.InputValue) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___InputValue_name,
		func(ctx context.Context) (any, error) {
			return obj.Name, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___InputValue_name(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__InputValue",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___InputValue_description(ctx context.Context, field graphql.CollectedField, obj *introspection.InputValue) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___InputValue_description,
		func(ctx context.Context) (any, error) {
			return obj.Description(), nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___InputValue_description(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__InputValue",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___InputValue_type(ctx context.Context, field graphql.CollectedField, obj *introspection.InputValue) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___InputValue_type,
		func(ctx context.Context) (any, error) {
			return obj.Type, nil
		},
		nil,
		ec.marshalN__Type2ᚖgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐType,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___InputValue_type(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__InputValue",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "kind":
				return ec.fieldContext___Type_kind(ctx, field)
			case "name":
				return ec.fieldContext___Type_name(ctx, field)
			case "description":
				return ec.fieldContext___Type_description(ctx, field)
			case "specifiedByURL":
				return ec.fieldContext___Type_specifiedByURL(ctx, field)
			case "fields":
				return ec.fieldContext___Type_fields(ctx, field)
			case "interfaces":
				return ec.fieldContext___Type_interfaces(ctx, field)
			case "possibleTypes":
				return ec.fieldContext___Type_possibleTypes(ctx, field)
			case "enumValues":
				return ec.fieldContext___Type_enumValues(ctx, field)
			case "inputFields":
				return ec.fieldContext___Type_inputFields(ctx, field)
			case "ofType":
				return ec.fieldContext___Type_ofType(ctx, field)
			case "isOneOf":
				return ec.fieldContext___Type_isOneOf(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __Type", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) ___InputValue_defaultValue(ctx context.Context, field graphql.CollectedField, obj *introspection.InputValue) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___InputValue_defaultValue,
		func(ctx context.Context) (any, error) {
			return obj.DefaultValue, nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___InputValue_defaultValue(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__InputValue",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___InputValue_isDeprecated(ctx context.Context, field graphql.CollectedField, obj *introspection.InputValue) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___InputValue_isDeprecated,
		func(ctx context.Context) (any, error) {
			return obj.IsDeprecated(), nil
		},
		nil,
		ec.marshalNBoolean2bool,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___InputValue_isDeprecated(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__InputValue",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Boolean does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___InputValue_deprecationReason(ctx context.Context, field graphql.CollectedField, obj *introspection.InputValue) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___InputValue_deprecationReason,
		func(ctx context.Context) (any, error) {
			return obj.DeprecationReason(), nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___InputValue_deprecationReason(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__InputValue",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Schema_description(ctx context.Context, field graphql.CollectedField, obj *introspection.Schema) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Schema_description,
		func(ctx context.Context) (any, error) {
			return obj.Description(), nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Schema_description(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Schema",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Schema_types(ctx context.Context, field graphql.CollectedField, obj *introspection.Schema) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Schema_types,
		func(ctx context.Context) (any, error) {
			return obj.Types(), nil
		},
		nil,
		ec.marshalN__Type2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐTypeᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___Schema_types(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Schema",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "kind":
				return ec.fieldContext___Type_kind(ctx, field)
			case "name":
				return ec.fieldContext___Type_name(ctx, field)
			case "description":
				return ec.fieldContext___Type_description(ctx, field)
			case "specifiedByURL":
				return ec.fieldContext___Type_specifiedByURL(ctx, field)
			case "fields":
				return ec.fieldContext___Type_fields(ctx, field)
			case "interfaces":
				return ec.fieldContext___Type_interfaces(ctx, field)
			case "possibleTypes":
				return ec.fieldContext___Type_possibleTypes(ctx, field)
			case "enumValues":
				return ec.fieldContext___Type_enumValues(ctx, field)
			case "inputFields":
				return ec.fieldContext___Type_inputFields(ctx, field)
			case "ofType":
				return ec.fieldContext___Type_ofType(ctx, field)
			case "isOneOf":
				return ec.fieldContext___Type_isOneOf(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __Type", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Schema_queryType(ctx context.Context, field graphql.CollectedField, obj *introspection.Schema) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Schema_queryType,
		func(ctx context.Context) (any, error) {
			return obj.QueryType(), nil
		},
		nil,
		ec.marshalN__Type2ᚖgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐType,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___Schema_queryType(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Schema",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "kind":
				return ec.fieldContext___Type_kind(ctx, field)
			case "name":
				return ec.fieldContext___Type_name(ctx, field)
			case "description":
				return ec.fieldContext___Type_description(ctx, field)
			case "specifiedByURL":
				return ec.fieldContext___Type_specifiedByURL(ctx, field)
			case "fields":
				return ec.fieldContext___Type_fields(ctx, field)
			case "interfaces":
				return ec.fieldContext___Type_interfaces(ctx, field)
			case "possibleTypes":
				return ec.fieldContext___Type_possibleTypes(ctx, field)
			case "enumValues":
				return ec.fieldContext___Type_enumValues(ctx, field)
			case "inputFields":
				return ec.fieldContext___Type_inputFields(ctx, field)
			case "ofType":
				return ec.fieldContext___Type_ofType(ctx, field)
			case "isOneOf":
				return ec.fieldContext___Type_isOneOf(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __Type", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Schema_mutationType(ctx context.Context, field graphql.CollectedField, obj *introspection.Schema) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Schema_mutationType,
		func(ctx context.Context) (any, error) {
			return obj.MutationType(), nil
		},
		nil,
		ec.marshalO__Type2ᚖgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐType,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Schema_mutationType(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Schema",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "kind":
				return ec.fieldContext___Type_kind(ctx, field)
			case "name":
				return ec.fieldContext___Type_name(ctx, field)
			case "description":
				return ec.fieldContext___Type_description(ctx, field)
			case "specifiedByURL":
				return ec.fieldContext___Type_specifiedByURL(ctx, field)
			case "fields":
				return ec.fieldContext___Type_fields(ctx, field)
			case "interfaces":
				return ec.fieldContext___Type_interfaces(ctx, field)
			case "possibleTypes":
				return ec.fieldContext___Type_possibleTypes(ctx, field)
			case "enumValues":
				return ec.fieldContext___Type_enumValues(ctx, field)
			case "inputFields":
				return ec.fieldContext___Type_inputFields(ctx, field)
			case "ofType":
				return ec.fieldContext___Type_ofType(ctx, field)
			case "isOneOf":
				return ec.fieldContext___Type_isOneOf(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __Type", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Schema_subscriptionType(ctx context.Context, field graphql.CollectedField, obj *introspection.Schema) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Schema_subscriptionType,
		func(ctx context.Context) (any, error) {
			return obj.SubscriptionType(), nil
		},
		nil,
		ec.marshalO__Type2ᚖgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐType,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Schema_subscriptionType(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Schema",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "kind":
				return ec.fieldContext___Type_kind(ctx, field)
			case "name":
				return ec.fieldContext___Type_name(ctx, field)
			case "description":
				return ec.fieldContext___Type_description(ctx, field)
			case "specifiedByURL":
				return ec.fieldContext___Type_specifiedByURL(ctx, field)
			case "fields":
				return ec.fieldContext___Type_fields(ctx, field)
			case "interfaces":
				return ec.fieldContext___Type_interfaces(ctx, field)
			case "possibleTypes":
				return ec.fieldContext___Type_possibleTypes(ctx, field)
			case "enumValues":
				return ec.fieldContext___Type_enumValues(ctx, field)
			case "inputFields":
				return ec.fieldContext___Type_inputFields(ctx, field)
			case "ofType":
				return ec.fieldContext___Type_ofType(ctx, field)
			case "isOneOf":
				return ec.fieldContext___Type_isOneOf(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __Type", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Schema_directives(ctx context.Context, field graphql.CollectedField, obj *introspection.Schema) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Schema_directives,
		func(ctx context.Context) (any, error) {
			return obj.Directives(), nil
		},
		nil,
		ec.marshalN__Directive2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐDirectiveᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___Schema_directives(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Schema",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "name":
				return ec.fieldContext___Directive_name(ctx, field)
			case "description":
				return ec.fieldContext___Directive_description(ctx, field)
			case "isRepeatable":
				return ec.fieldContext___Directive_isRepeatable(ctx, field)
			case "locations":
				return ec.fieldContext___Directive_locations(ctx, field)
			case "args":
				return ec.fieldContext___Directive_args(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __Directive", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Type_kind(ctx context.Context, field graphql.CollectedField, obj *introspection.Type) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Type_kind,
		func(ctx context.Context) (any, error) {
			return obj.Kind(), nil
		},
		nil,
		ec.marshalN__TypeKind2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___Type_kind(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Type",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type __TypeKind does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Type_name(ctx context.Context, field graphql.CollectedField, obj *introspection.Type) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Type_name,
		func(ctx context.Context) (any, error) {
			return obj.Name(), nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Type_name(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Type",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Type_description(ctx context.Context, field graphql.CollectedField, obj *introspection.Type) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Type_description,
		func(ctx context.Context) (any, error) {
			return obj.Description(), nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Type_description(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Type",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Type_specifiedByURL(ctx context.Context, field graphql.CollectedField, obj *introspection.Type) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Type_specifiedByURL,
		func(ctx context.Context) (any, error) {
			return obj.SpecifiedByURL(), nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Type_specifiedByURL(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Type",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Type_fields(ctx context.Context, field graphql.CollectedField, obj *introspection.Type) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Type_fields,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return obj.Fields(fc.Args["includeDeprecated"].(bool)), nil
		},
		nil,
		ec.marshalO__Field2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐFieldᚄ,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Type_fields(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Type",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "name":
				return ec.fieldContext___Field_name(ctx, field)
			case "description":
				return ec.fieldContext___Field_description(ctx, field)
			case "args":
				return ec.fieldContext___Field_args(ctx, field)
			case "type":
				return ec.fieldContext___Field_type(ctx, field)
			case "isDeprecated":
				return ec.fieldContext___Field_isDeprecated(ctx, field)
			case "deprecationReason":
				return ec.fieldContext___Field_deprecationReason(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __Field", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field___Type_fields_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) ___Type_interfaces(ctx context.Context, field graphql.CollectedField, obj *introspection.Type) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Type_interfaces,
		func(ctx context.Context) (any, error) {
			return obj.Interfaces(), nil
		},
		nil,
		ec.marshalO__Type2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐTypeᚄ,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Type_interfaces(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Type",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "kind":
				return ec.fieldContext___Type_kind(ctx, field)
			case "name":
				return ec.fieldContext___Type_name(ctx, field)
			case "description":
				return ec.fieldContext___Type_description(ctx, field)
			case "specifiedByURL":
				return ec.fieldContext___Type_specifiedByURL(ctx, field)
			case "fields":
				return ec.fieldContext___Type_fields(ctx, field)
			case "interfaces":
				return ec.fieldContext___Type_interfaces(ctx, field)
			case "possibleTypes":
				return ec.fieldContext___Type_possibleTypes(ctx, field)
			case "enumValues":
				return ec.fieldContext___Type_enumValues(ctx, field)
			case "inputFields":
				return ec.fieldContext___Type_inputFields(ctx, field)
			case "ofType":
				return ec.fieldContext___Type_ofType(ctx, field)
			case "isOneOf":
				return ec.fieldContext___Type_isOneOf(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __Type", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Type_possibleTypes(ctx context.Context, field graphql.CollectedField, obj *introspection.Type) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Type_possibleTypes,
		func(ctx context.Context) (any, error) {
			return obj.PossibleTypes(), nil
		},
		nil,
		ec.marshalO__Type2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐTypeᚄ,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Type_possibleTypes(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Type",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "kind":
				return ec.fieldContext___Type_kind(ctx, field)
			case "name":
				return ec.fieldContext___Type_name(ctx, field)
			case "description":
				return ec.fieldContext___Type_description(ctx, field)
			case "specifiedByURL":
				return ec.fieldContext___Type_specifiedByURL(ctx, field)
			case "fields":
				return ec.fieldContext___Type_fields(ctx, field)
			case "interfaces":
				return ec.fieldContext___Type_interfaces(ctx, field)
			case "possibleTypes":
				return ec.fieldContext___Type_possibleTypes(ctx, field)
			case "enumValues":
				return ec.fieldContext___Type_enumValues(ctx, field)
			case "inputFields":
				return ec.fieldContext___Type_inputFields(ctx, field)
			case "ofType":
				return ec.fieldContext___Type_ofType(ctx, field)
			case "isOneOf":
				return ec.fieldContext___Type_isOneOf(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __Type", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Type_enumValues(ctx context.Context, field graphql.CollectedField, obj *introspection.Type) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Type_enumValues,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return obj.EnumValues(fc.Args["includeDeprecated"].(bool)), nil
		},
		nil,
		ec.marshalO__EnumValue2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐEnumValueᚄ,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Type_enumValues(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Type",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "name":
				return ec.fieldContext___EnumValue_name(ctx, field)
			case "description":
				return ec.fieldContext___EnumValue_description(ctx, field)
			case "isDeprecated":
				return ec.fieldContext___EnumValue_isDeprecated(ctx, field)
			case "deprecationReason":
				return ec.fieldContext___EnumValue_deprecationReason(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __EnumValue", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field___Type_enumValues_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) ___Type_inputFields(ctx context.Context, field graphql.CollectedField, obj *introspection.Type) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Type_inputFields,
		func(ctx context.Context) (any, error) {
			return obj.InputFields(), nil
		},
		nil,
		ec.marshalO__InputValue2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐInputValueᚄ,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Type_inputFields(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Type",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "name":
				return ec.fieldContext___InputValue_name(ctx, field)
			case "description":
				return ec.fieldContext___InputValue_description(ctx, field)
			case "type":
				return ec.fieldContext___InputValue_type(ctx, field)
			case "defaultValue":
				return ec.fieldContext___InputValue_defaultValue(ctx, field)
			case "isDeprecated":
				return ec.fieldContext___InputValue_isDeprecated(ctx, field)
			case "deprecationReason":
				return ec.fieldContext___InputValue_deprecationReason(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __InputValue", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Type_ofType(ctx context.Context, field graphql.CollectedField, obj *introspection.Type) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Type_ofType,
		func(ctx context.Context) (any, error) {
			return obj.OfType(), nil
		},
		nil,
		ec.marshalO__Type2ᚖgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐType,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Type_ofType(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Type",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "kind":
				return ec.fieldContext___Type_kind(ctx, field)
			case "name":
				return ec.fieldContext___Type_name(ctx, field)
			case "description":
				return ec.fieldContext___Type_description(ctx, field)
			case "specifiedByURL":
				return ec.fieldContext___Type_specifiedByURL(ctx, field)
			case "fields":
				return ec.fieldContext___Type_fields(ctx, field)
			case "interfaces":
				return ec.fieldContext___Type_interfaces(ctx, field)
			case "possibleTypes":
				return ec.fieldContext___Type_possibleTypes(ctx, field)
			case "enumValues":
				return ec.fieldContext___Type_enumValues(ctx, field)
			case "inputFields":
				return ec.fieldContext___Type_inputFields(ctx, field)
			case "ofType":
				return ec.fieldContext___Type_ofType(ctx, field)
			case "isOneOf":
				return ec.fieldContext___Type_isOneOf(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __Type", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Type_isOneOf(ctx context.Context, field graphql.CollectedField, obj *introspection.Type) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Type_isOneOf,
		func(ctx context.Context) (any, error) {
			return obj.IsOneOf(), nil
		},
		nil,
		ec.marshalOBoolean2bool,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Type_isOneOf(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Type",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Boolean does not have child fields")
		},
	}
	return fc, nil
}

// endregion **************************** field.gotpl *****************************

// region    **************************** input.gotpl *****************************

func (ec *executionContext) unmarshalInputActivityFilterInput(ctx context.Context, obj any) (model.ActivityFilterInput, error) {
	var it model.ActivityFilterInput
	asMap := map[string]any{}
	for k, v := range obj.(map[string]any) {
		asMap[k] = v
	}

	fieldsInOrder := [...]string{"eventType", "userId", "creatorId", "from", "to"}
	for _, k := range fieldsInOrder {
		v, ok := asMap[k]
		if !ok {
			continue
		}
		switch k {
		case "eventType":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("eventType"))
			data, err := ec.unmarshalOEventType2ᚖgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐEventType(ctx, v)
			if err != nil {
				return it, err
			}
			it.EventType = data
		case "userId":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("userId"))
			data, err := ec.unmarshalOUUID2ᚖgithubᚗcomᚋgoogleᚋuuidᚐUUID(ctx, v)
			if err != nil {
				return it, err
			}
			it.UserID = data
		case "creatorId":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("creatorId"))
			data, err := ec.unmarshalOUUID2ᚖgithubᚗcomᚋgoogleᚋuuidᚐUUID(ctx, v)
			if err != nil {
				return it, err
			}
			it.CreatorID = data
		case "from":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("from"))
			data, err := ec.unmarshalODateTime2ᚖtimeᚐTime(ctx, v)
			if err != nil {
				return it, err
			}
			it.From = data
		case "to":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("to"))
			data, err := ec.unmarshalODateTime2ᚖtimeᚐTime(ctx, v)
			if err != nil {
				return it, err
			}
			it.To = data
		}
	}

	return it, nil
}

func (ec *executionContext) unmarshalInputCreateContentInput(ctx context.Context, obj any) (model.CreateContentInput, error) {
	var it model.CreateContentInput
	asMap := map[string]any{}
	for k, v := range obj.(map[string]any) {
		asMap[k] = v
	}

	fieldsInOrder := [...]string{"title", "type", "isPremium", "requiredTier"}
	for _, k := range fieldsInOrder {
		v, ok := asMap[k]
		if !ok {
			continue
		}
		switch k {
		case "title":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("title"))
			data, err := ec.unmarshalNString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.Title = data
		case "type":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("type"))
			data, err := ec.unmarshalNContentType2githubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐContentType(ctx, v)
			if err != nil {
				return it, err
			}
			it.Type = data
		case "isPremium":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("isPremium"))
			data, err := ec.unmarshalNBoolean2bool(ctx, v)
			if err != nil {
				return it, err
			}
			it.IsPremium = data
		case "requiredTier":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("requiredTier"))
			data, err := ec.unmarshalOTier2ᚖgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐTier(ctx, v)
			if err != nil {
				return it, err
			}
			it.RequiredTier = data
		}
	}

	return it, nil
}

func (ec *executionContext) unmarshalInputCreateCreatorProfileInput(ctx context.Context, obj any) (model.CreateCreatorProfileInput, error) {
	var it model.CreateCreatorProfileInput
	asMap := map[string]any{}
	for k, v := range obj.(map[string]any) {
		asMap[k] = v
	}

	fieldsInOrder := [...]string{"displayName", "niche", "bio"}
	for _, k := range fieldsInOrder {
		v, ok := asMap[k]
		if !ok {
			continue
		}
		switch k {
		case "displayName":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("displayName"))
			data, err := ec.unmarshalNString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.DisplayName = data
		case "niche":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("niche"))
			data, err := ec.unmarshalNString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.Niche = data
		case "bio":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("bio"))
			data, err := ec.unmarshalOString2ᚖstring(ctx, v)
			if err != nil {
				return it, err
			}
			it.Bio = data
		}
	}

	return it, nil
}

func (ec *executionContext) unmarshalInputGenerateIdeasInput(ctx context.Context, obj any) (model.GenerateIdeasInput, error) {
	var it model.GenerateIdeasInput
	asMap := map[string]any{}
	for k, v := range obj.(map[string]any) {
		asMap[k] = v
	}

	fieldsInOrder := [...]string{"snapshotId", "tierTarget"}
	for _, k := range fieldsInOrder {
		v, ok := asMap[k]
		if !ok {
			continue
		}
		switch k {
		case "snapshotId":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("snapshotId"))
			data, err := ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID(ctx, v)
			if err != nil {
				return it, err
			}
			it.SnapshotID = data
		case "tierTarget":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("tierTarget"))
			data, err := ec.unmarshalOString2ᚖstring(ctx, v)
			if err != nil {
				return it, err
			}
			it.TierTarget = data
		}
	}

	return it, nil
}

func (ec *executionContext) unmarshalInputImportCommentsInput(ctx context.Context, obj any) (model.ImportCommentsInput, error) {
	var it model.ImportCommentsInput
	asMap := map[string]any{}
	for k, v := range obj.(map[string]any) {
		asMap[k] = v
	}

	fieldsInOrder := [...]string{"creatorId", "source", "payload", "linkedContentItemId"}
	for _, k := range fieldsInOrder {
		v, ok := asMap[k]
		if !ok {
			continue
		}
		switch k {
		case "creatorId":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("creatorId"))
			data, err := ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID(ctx, v)
			if err != nil {
				return it, err
			}
			it.CreatorID = data
		case "source":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("source"))
			data, err := ec.unmarshalNBatchSource2githubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐBatchSource(ctx, v)
			if err != nil {
				return it, err
			}
			it.Source = data
		case "payload":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("payload"))
			data, err := ec.unmarshalNString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.Payload = data
		case "linkedContentItemId":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("linkedContentItemId"))
			data, err := ec.unmarshalOUUID2ᚖgithubᚗcomᚋgoogleᚋuuidᚐUUID(ctx, v)
			if err != nil {
				return it, err
			}
			it.LinkedContentItemID = data
		}
	}

	return it, nil
}

func (ec *executionContext) unmarshalInputLoginInput(ctx context.Context, obj any) (model.LoginInput, error) {
	var it model.LoginInput
	asMap := map[string]any{}
	for k, v := range obj.(map[string]any) {
		asMap[k] = v
	}

	fieldsInOrder := [...]string{"email", "password"}
	for _, k := range fieldsInOrder {
		v, ok := asMap[k]
		if !ok {
			continue
		}
		switch k {
		case "email":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("email"))
			data, err := ec.unmarshalNString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.Email = data
		case "password":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("password"))
			data, err := ec.unmarshalNString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.Password = data
		}
	}

	return it, nil
}

func (ec *executionContext) unmarshalInputRegisterInput(ctx context.Context, obj any) (model.RegisterInput, error) {
	var it model.RegisterInput
	asMap := map[string]any{}
	for k, v := range obj.(map[string]any) {
		asMap[k] = v
	}

	fieldsInOrder := [...]string{"email", "name", "password"}
	for _, k := range fieldsInOrder {
		v, ok := asMap[k]
		if !ok {
			continue
		}
		switch k {
		case "email":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("email"))
			data, err := ec.unmarshalNString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.Email = data
		case "name":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("name"))
			data, err := ec.unmarshalNString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.Name = data
		case "password":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("password"))
			data, err := ec.unmarshalNString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.Password = data
		}
	}

	return it, nil
}

func (ec *executionContext) unmarshalInputSubscribeInput(ctx context.Context, obj any) (model.SubscribeInput, error) {
	var it model.SubscribeInput
	asMap := map[string]any{}
	for k, v := range obj.(map[string]any) {
		asMap[k] = v
	}

	fieldsInOrder := [...]string{"creatorId", "tier"}
	for _, k := range fieldsInOrder {
		v, ok := asMap[k]
		if !ok {
			continue
		}
		switch k {
		case "creatorId":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("creatorId"))
			data, err := ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID(ctx, v)
			if err != nil {
				return it, err
			}
			it.CreatorID = data
		case "tier":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("tier"))
			data, err := ec.unmarshalNTier2githubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐTier(ctx, v)
			if err != nil {
				return it, err
			}
			it.Tier = data
		}
	}

	return it, nil
}

func (ec *executionContext) unmarshalInputUpdateContentInput(ctx context.Context, obj any) (model.UpdateContentInput, error) {
	var it model.UpdateContentInput
	asMap := map[string]any{}
	for k, v := range obj.(map[string]any) {
		asMap[k] = v
	}

	fieldsInOrder := [...]string{"id", "title", "type", "isPremium", "requiredTier", "clearRequiredTier"}
	for _, k := range fieldsInOrder {
		v, ok := asMap[k]
		if !ok {
			continue
		}
		switch k {
		case "id":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("id"))
			data, err := ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID(ctx, v)
			if err != nil {
				return it, err
			}
			it.ID = data
		case "title":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("title"))
			data, err := ec.unmarshalOString2ᚖstring(ctx, v)
			if err != nil {
				return it, err
			}
			it.Title = data
		case "type":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("type"))
			data, err := ec.unmarshalOContentType2ᚖgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐContentType(ctx, v)
			if err != nil {
				return it, err
			}
			it.Type = data
		case "isPremium":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("isPremium"))
			data, err := ec.unmarshalOBoolean2ᚖbool(ctx, v)
			if err != nil {
				return it, err
			}
			it.IsPremium = data
		case "requiredTier":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("requiredTier"))
			data, err := ec.unmarshalOTier2ᚖgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐTier(ctx, v)
			if err != nil {
				return it, err
			}
			it.RequiredTier = data
		case "clearRequiredTier":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("clearRequiredTier"))
			data, err := ec.unmarshalOBoolean2ᚖbool(ctx, v)
			if err != nil {
				return it, err
			}
			it.ClearRequiredTier = data
		}
	}

	return it, nil
}

func (ec *executionContext) unmarshalInputUpdateCreatorProfileInput(ctx context.Context, obj any) (model.UpdateCreatorProfileInput, error) {
	var it model.UpdateCreatorProfileInput
	asMap := map[string]any{}
	for k, v := range obj.(map[string]any) {
		asMap[k] = v
	}

	fieldsInOrder := [...]string{"displayName", "niche", "bio"}
	for _, k := range fieldsInOrder {
		v, ok := asMap[k]
		if !ok {
			continue
		}
		switch k {
		case "displayName":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("displayName"))
			data, err := ec.unmarshalOString2ᚖstring(ctx, v)
			if err != nil {
				return it, err
			}
			it.DisplayName = data
		case "niche":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("niche"))
			data, err := ec.unmarshalOString2ᚖstring(ctx, v)
			if err != nil {
				return it, err
			}
			it.Niche = data
		case "bio":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("bio"))
			data, err := ec.unmarshalOString2ᚖstring(ctx, v)
			if err != nil {
				return it, err
			}
			it.Bio = data
		}
	}

	return it, nil
}

// endregion **************************** input.gotpl *****************************

// region    ************************** interface.gotpl ***************************

// endregion ************************** interface.gotpl ***************************

// region    **************************** object.gotpl ****************************

var activityEventImplementors = []string{"ActivityEvent"}

func (ec *executionContext) _ActivityEvent(ctx context.Context, sel ast.SelectionSet, obj *domain.ActivityEvent) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, activityEventImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("ActivityEvent")
		case "id":
			out.Values[i] = ec._ActivityEvent_id(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "eventType":
			out.Values[i] = ec._ActivityEvent_eventType(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "userId":
			out.Values[i] = ec._ActivityEvent_userId(ctx, field, obj)
		case "creatorId":
			out.Values[i] = ec._ActivityEvent_creatorId(ctx, field, obj)
		case "metadata":
			out.Values[i] = ec._ActivityEvent_metadata(ctx, field, obj)
		case "createdAt":
			out.Values[i] = ec._ActivityEvent_createdAt(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var activityEventPageImplementors = []string{"ActivityEventPage"}

func (ec *executionContext) _ActivityEventPage(ctx context.Context, sel ast.SelectionSet, obj *model.ActivityEventPage) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, activityEventPageImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("ActivityEventPage")
		case "items":
			out.Values[i] = ec._ActivityEventPage_items(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "total":
			out.Values[i] = ec._ActivityEventPage_total(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var activityStatsImplementors = []string{"ActivityStats"}

func (ec *executionContext) _ActivityStats(ctx context.Context, sel ast.SelectionSet, obj *domain.ActivityStats) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, activityStatsImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("ActivityStats")
		case "total":
			out.Values[i] = ec._ActivityStats_total(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "byEventType":
			out.Values[i] = ec._ActivityStats_byEventType(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "timeline":
			out.Values[i] = ec._ActivityStats_timeline(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var analyzeResultImplementors = []string{"AnalyzeResult"}

func (ec *executionContext) _AnalyzeResult(ctx context.Context, sel ast.SelectionSet, obj *model.AnalyzeResult) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, analyzeResultImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("AnalyzeResult")
		case "snapshot":
			out.Values[i] = ec._AnalyzeResult_snapshot(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "degradedChunks":
			out.Values[i] = ec._AnalyzeResult_degradedChunks(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var authPayloadImplementors = []string{"AuthPayload"}

func (ec *executionContext) _AuthPayload(ctx context.Context, sel ast.SelectionSet, obj *model.AuthPayload) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, authPayloadImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("AuthPayload")
		case "accessToken":
			out.Values[i] = ec._AuthPayload_accessToken(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "user":
			out.Values[i] = ec._AuthPayload_user(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var commentBatchImplementors = []string{"CommentBatch"}

func (ec *executionContext) _CommentBatch(ctx context.Context, sel ast.SelectionSet, obj *domain.CommentBatch) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, commentBatchImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("CommentBatch")
		case "id":
			out.Values[i] = ec._CommentBatch_id(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "creatorId":
			out.Values[i] = ec._CommentBatch_creatorId(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "source":
			out.Values[i] = ec._CommentBatch_source(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "status":
			out.Values[i] = ec._CommentBatch_status(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "commentCount":
			out.Values[i] = ec._CommentBatch_commentCount(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "rawComments":
			out.Values[i] = ec._CommentBatch_rawComments(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "linkedContentItemId":
			out.Values[i] = ec._CommentBatch_linkedContentItemId(ctx, field, obj)
		case "importedAt":
			out.Values[i] = ec._CommentBatch_importedAt(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "snapshots":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._CommentBatch_snapshots(ctx, field, obj)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			if field.Deferrable != nil {
				dfs, ok := deferred[field.Deferrable.Label]
				di := 0
				if ok {
					dfs.AddField(field)
					di = len(dfs.Values) - 1
				} else {
					dfs = graphql.NewFieldSet([]graphql.CollectedField{field})
					deferred[field.Deferrable.Label] = dfs
				}
				dfs.Concurrently(di, func(ctx context.Context) graphql.Marshaler {
					return innerFunc(ctx, dfs)
				})

				// don't run the out.Concurrently() call below
				out.Values[i] = graphql.Null
				continue
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var commentBatchPageImplementors = []string{"CommentBatchPage"}

func (ec *executionContext) _CommentBatchPage(ctx context.Context, sel ast.SelectionSet, obj *model.CommentBatchPage) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, commentBatchPageImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("CommentBatchPage")
		case "items":
			out.Values[i] = ec._CommentBatchPage_items(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "total":
			out.Values[i] = ec._CommentBatchPage_total(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var contentItemImplementors = []string{"ContentItem"}

func (ec *executionContext) _ContentItem(ctx context.Context, sel ast.SelectionSet, obj *domain.ContentItem) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, contentItemImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("ContentItem")
		case "id":
			out.Values[i] = ec._ContentItem_id(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "creatorId":
			out.Values[i] = ec._ContentItem_creatorId(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "title":
			out.Values[i] = ec._ContentItem_title(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "type":
			out.Values[i] = ec._ContentItem_type(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "isPremium":
			out.Values[i] = ec._ContentItem_isPremium(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "requiredTier":
			out.Values[i] = ec._ContentItem_requiredTier(ctx, field, obj)
		case "status":
			out.Values[i] = ec._ContentItem_status(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "publishedAt":
			out.Values[i] = ec._ContentItem_publishedAt(ctx, field, obj)
		case "createdAt":
			out.Values[i] = ec._ContentItem_createdAt(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "updatedAt":
			out.Values[i] = ec._ContentItem_updatedAt(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var creatorProfileImplementors = []string{"CreatorProfile"}

func (ec *executionContext) _CreatorProfile(ctx context.Context, sel ast.SelectionSet, obj *domain.CreatorProfile) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, creatorProfileImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("CreatorProfile")
		case "id":
			out.Values[i] = ec._CreatorProfile_id(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "userId":
			out.Values[i] = ec._CreatorProfile_userId(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "displayName":
			out.Values[i] = ec._CreatorProfile_displayName(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "niche":
			out.Values[i] = ec._CreatorProfile_niche(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "bio":
			out.Values[i] = ec._CreatorProfile_bio(ctx, field, obj)
		case "subscriberCount":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._CreatorProfile_subscriberCount(ctx, field, obj)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			if field.Deferrable != nil {
				dfs, ok := deferred[field.Deferrable.Label]
				di := 0
				if ok {
					dfs.AddField(field)
					di = len(dfs.Values) - 1
				} else {
					dfs = graphql.NewFieldSet([]graphql.CollectedField{field})
					deferred[field.Deferrable.Label] = dfs
				}
				dfs.Concurrently(di, func(ctx context.Context) graphql.Marshaler {
					return innerFunc(ctx, dfs)
				})

				// don't run the out.Concurrently() call below
				out.Values[i] = graphql.Null
				continue
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
		case "createdAt":
			out.Values[i] = ec._CreatorProfile_createdAt(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "updatedAt":
			out.Values[i] = ec._CreatorProfile_updatedAt(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var dayCountImplementors = []string{"DayCount"}

func (ec *executionContext) _DayCount(ctx context.Context, sel ast.SelectionSet, obj *domain.DayCount) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, dayCountImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("DayCount")
		case "day":
			out.Values[i] = ec._DayCount_day(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "count":
			out.Values[i] = ec._DayCount_count(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var eventTypeCountImplementors = []string{"EventTypeCount"}

func (ec *executionContext) _EventTypeCount(ctx context.Context, sel ast.SelectionSet, obj *domain.EventTypeCount) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, eventTypeCountImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("EventTypeCount")
		case "eventType":
			out.Values[i] = ec._EventTypeCount_eventType(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "count":
			out.Values[i] = ec._EventTypeCount_count(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var ideaSuggestionImplementors = []string{"IdeaSuggestion"}

func (ec *executionContext) _IdeaSuggestion(ctx context.Context, sel ast.SelectionSet, obj *domain.IdeaSuggestion) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, ideaSuggestionImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("IdeaSuggestion")
		case "id":
			out.Values[i] = ec._IdeaSuggestion_id(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "creatorId":
			out.Values[i] = ec._IdeaSuggestion_creatorId(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "sourceSnapshotId":
			out.Values[i] = ec._IdeaSuggestion_sourceSnapshotId(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "tierTarget":
			out.Values[i] = ec._IdeaSuggestion_tierTarget(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "ideaType":
			out.Values[i] = ec._IdeaSuggestion_ideaType(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "title":
			out.Values[i] = ec._IdeaSuggestion_title(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "description":
			out.Values[i] = ec._IdeaSuggestion_description(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "outline":
			out.Values[i] = ec._IdeaSuggestion_outline(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "status":
			out.Values[i] = ec._IdeaSuggestion_status(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "createdAt":
			out.Values[i] = ec._IdeaSuggestion_createdAt(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "updatedAt":
			out.Values[i] = ec._IdeaSuggestion_updatedAt(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var mutationImplementors = []string{"Mutation"}

func (ec *executionContext) _Mutation(ctx context.Context, sel ast.SelectionSet) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, mutationImplementors)
	ctx = graphql.WithFieldContext(ctx, &graphql.FieldContext{
		Object: "Mutation",
	})

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		innerCtx := graphql.WithRootFieldContext(ctx, &graphql.RootFieldContext{
			Object: field.Name,
			Field:  field,
		})

		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("Mutation")
		case "register":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_register(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "login":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_login(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "createCreatorProfile":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_createCreatorProfile(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "updateCreatorProfile":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_updateCreatorProfile(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "subscribe":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_subscribe(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "createContent":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_createContent(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "updateContent":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_updateContent(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "publishContent":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_publishContent(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "deleteContent":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_deleteContent(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "importComments":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_importComments(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "analyzeBatch":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_analyzeBatch(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "generateIdeas":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_generateIdeas(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "updateIdeaStatus":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_updateIdeaStatus(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var queryImplementors = []string{"Query"}

func (ec *executionContext) _Query(ctx context.Context, sel ast.SelectionSet) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, queryImplementors)
	ctx = graphql.WithFieldContext(ctx, &graphql.FieldContext{
		Object: "Query",
	})

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		innerCtx := graphql.WithRootFieldContext(ctx, &graphql.RootFieldContext{
			Object: field.Name,
			Field:  field,
		})

		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("Query")
		case "me":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Query_me(ctx, field)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			rrm := func(ctx context.Context) graphql.Marshaler {
				return ec.OperationContext.RootResolverMiddleware(ctx,
					func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return rrm(innerCtx) })
		case "creator":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Query_creator(ctx, field)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			rrm := func(ctx context.Context) graphql.Marshaler {
				return ec.OperationContext.RootResolverMiddleware(ctx,
					func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return rrm(innerCtx) })
		case "creators":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Query_creators(ctx, field)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			rrm := func(ctx context.Context) graphql.Marshaler {
				return ec.OperationContext.RootResolverMiddleware(ctx,
					func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return rrm(innerCtx) })
		case "myCreatorProfile":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Query_myCreatorProfile(ctx, field)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			rrm := func(ctx context.Context) graphql.Marshaler {
				return ec.OperationContext.RootResolverMiddleware(ctx,
					func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return rrm(innerCtx) })
		case "mySubscription":
			field := field

			innerFunc := func(ctx context.Context, _ *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Query_mySubscription(ctx, field)
				return res
			}

			rrm := func(ctx context.Context) graphql.Marshaler {
				return ec.OperationContext.RootResolverMiddleware(ctx,
					func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return rrm(innerCtx) })
		case "mySubscribers":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Query_mySubscribers(ctx, field)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			rrm := func(ctx context.Context) graphql.Marshaler {
				return ec.OperationContext.RootResolverMiddleware(ctx,
					func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return rrm(innerCtx) })
		case "contentItem":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Query_contentItem(ctx, field)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			rrm := func(ctx context.Context) graphql.Marshaler {
				return ec.OperationContext.RootResolverMiddleware(ctx,
					func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return rrm(innerCtx) })
		case "creatorContent":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Query_creatorContent(ctx, field)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			rrm := func(ctx context.Context) graphql.Marshaler {
				return ec.OperationContext.RootResolverMiddleware(ctx,
					func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return rrm(innerCtx) })
		case "commentBatch":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Query_commentBatch(ctx, field)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			rrm := func(ctx context.Context) graphql.Marshaler {
				return ec.OperationContext.RootResolverMiddleware(ctx,
					func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return rrm(innerCtx) })
		case "commentBatches":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Query_commentBatches(ctx, field)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			rrm := func(ctx context.Context) graphql.Marshaler {
				return ec.OperationContext.RootResolverMiddleware(ctx,
					func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return rrm(innerCtx) })
		case "sentimentSnapshot":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Query_sentimentSnapshot(ctx, field)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			rrm := func(ctx context.Context) graphql.Marshaler {
				return ec.OperationContext.RootResolverMiddleware(ctx,
					func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return rrm(innerCtx) })
		case "sentimentSnapshots":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Query_sentimentSnapshots(ctx, field)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			rrm := func(ctx context.Context) graphql.Marshaler {
				return ec.OperationContext.RootResolverMiddleware(ctx,
					func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return rrm(innerCtx) })
		case "idea":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Query_idea(ctx, field)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			rrm := func(ctx context.Context) graphql.Marshaler {
				return ec.OperationContext.RootResolverMiddleware(ctx,
					func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return rrm(innerCtx) })
		case "ideas":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Query_ideas(ctx, field)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			rrm := func(ctx context.Context) graphql.Marshaler {
				return ec.OperationContext.RootResolverMiddleware(ctx,
					func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return rrm(innerCtx) })
		case "activityEvents":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Query_activityEvents(ctx, field)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			rrm := func(ctx context.Context) graphql.Marshaler {
				return ec.OperationContext.RootResolverMiddleware(ctx,
					func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return rrm(innerCtx) })
		case "activityStats":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Query_activityStats(ctx, field)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			rrm := func(ctx context.Context) graphql.Marshaler {
				return ec.OperationContext.RootResolverMiddleware(ctx,
					func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return rrm(innerCtx) })
		case "__type":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Query___type(ctx, field)
			})
		case "__schema":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Query___schema(ctx, field)
			})
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var rawCommentImplementors = []string{"RawComment"}

func (ec *executionContext) _RawComment(ctx context.Context, sel ast.SelectionSet, obj *domain.RawComment) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, rawCommentImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("RawComment")
		case "author":
			out.Values[i] = ec._RawComment_author(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "text":
			out.Values[i] = ec._RawComment_text(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "timestamp":
			out.Values[i] = ec._RawComment_timestamp(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "tier":
			out.Values[i] = ec._RawComment_tier(ctx, field, obj)
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var sentimentSnapshotImplementors = []string{"SentimentSnapshot"}

func (ec *executionContext) _SentimentSnapshot(ctx context.Context, sel ast.SelectionSet, obj *domain.SentimentSnapshot) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, sentimentSnapshotImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("SentimentSnapshot")
		case "id":
			out.Values[i] = ec._SentimentSnapshot_id(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "creatorId":
			out.Values[i] = ec._SentimentSnapshot_creatorId(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "commentBatchId":
			out.Values[i] = ec._SentimentSnapshot_commentBatchId(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "timeRangeStart":
			out.Values[i] = ec._SentimentSnapshot_timeRangeStart(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "timeRangeEnd":
			out.Values[i] = ec._SentimentSnapshot_timeRangeEnd(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "overallSentimentScore":
			out.Values[i] = ec._SentimentSnapshot_overallSentimentScore(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "positiveCount":
			out.Values[i] = ec._SentimentSnapshot_positiveCount(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "negativeCount":
			out.Values[i] = ec._SentimentSnapshot_negativeCount(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "neutralCount":
			out.Values[i] = ec._SentimentSnapshot_neutralCount(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "topKeywords":
			out.Values[i] = ec._SentimentSnapshot_topKeywords(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "topRequests":
			out.Values[i] = ec._SentimentSnapshot_topRequests(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "byTier":
			out.Values[i] = ec._SentimentSnapshot_byTier(ctx, field, obj)
		case "createdAt":
			out.Values[i] = ec._SentimentSnapshot_createdAt(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "ideas":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._SentimentSnapshot_ideas(ctx, field, obj)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			if field.Deferrable != nil {
				dfs, ok := deferred[field.Deferrable.Label]
				di := 0
				if ok {
					dfs.AddField(field)
					di = len(dfs.Values) - 1
				} else {
					dfs = graphql.NewFieldSet([]graphql.CollectedField{field})
					deferred[field.Deferrable.Label] = dfs
				}
				dfs.Concurrently(di, func(ctx context.Context) graphql.Marshaler {
					return innerFunc(ctx, dfs)
				})

				// don't run the out.Concurrently() call below
				out.Values[i] = graphql.Null
				continue
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var subscriberPageImplementors = []string{"SubscriberPage"}

func (ec *executionContext) _SubscriberPage(ctx context.Context, sel ast.SelectionSet, obj *model.SubscriberPage) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, subscriberPageImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("SubscriberPage")
		case "items":
			out.Values[i] = ec._SubscriberPage_items(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "total":
			out.Values[i] = ec._SubscriberPage_total(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var subscriberProfileImplementors = []string{"SubscriberProfile"}

func (ec *executionContext) _SubscriberProfile(ctx context.Context, sel ast.SelectionSet, obj *domain.SubscriberProfile) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, subscriberProfileImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("SubscriberProfile")
		case "id":
			out.Values[i] = ec._SubscriberProfile_id(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "userId":
			out.Values[i] = ec._SubscriberProfile_userId(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "creatorId":
			out.Values[i] = ec._SubscriberProfile_creatorId(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "tier":
			out.Values[i] = ec._SubscriberProfile_tier(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "joinedAt":
			out.Values[i] = ec._SubscriberProfile_joinedAt(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "updatedAt":
			out.Values[i] = ec._SubscriberProfile_updatedAt(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "creator":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._SubscriberProfile_creator(ctx, field, obj)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			if field.Deferrable != nil {
				dfs, ok := deferred[field.Deferrable.Label]
				di := 0
				if ok {
					dfs.AddField(field)
					di = len(dfs.Values) - 1
				} else {
					dfs = graphql.NewFieldSet([]graphql.CollectedField{field})
					deferred[field.Deferrable.Label] = dfs
				}
				dfs.Concurrently(di, func(ctx context.Context) graphql.Marshaler {
					return innerFunc(ctx, dfs)
				})

				// don't run the out.Concurrently() call below
				out.Values[i] = graphql.Null
				continue
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var tierSentimentImplementors = []string{"TierSentiment"}

func (ec *executionContext) _TierSentiment(ctx context.Context, sel ast.SelectionSet, obj *domain.TierSentiment) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, tierSentimentImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("TierSentiment")
		case "tier":
			out.Values[i] = ec._TierSentiment_tier(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "score":
			out.Values[i] = ec._TierSentiment_score(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "positiveCount":
			out.Values[i] = ec._TierSentiment_positiveCount(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "negativeCount":
			out.Values[i] = ec._TierSentiment_negativeCount(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var userImplementors = []string{"User"}

func (ec *executionContext) _User(ctx context.Context, sel ast.SelectionSet, obj *domain.User) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, userImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("User")
		case "id":
			out.Values[i] = ec._User_id(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "email":
			out.Values[i] = ec._User_email(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "name":
			out.Values[i] = ec._User_name(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "role":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._User_role(ctx, field, obj)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			if field.Deferrable != nil {
				dfs, ok := deferred[field.Deferrable.Label]
				di := 0
				if ok {
					dfs.AddField(field)
					di = len(dfs.Values) - 1
				} else {
					dfs = graphql.NewFieldSet([]graphql.CollectedField{field})
					deferred[field.Deferrable.Label] = dfs
				}
				dfs.Concurrently(di, func(ctx context.Context) graphql.Marshaler {
					return innerFunc(ctx, dfs)
				})

				// don't run the out.Concurrently() call below
				out.Values[i] = graphql.Null
				continue
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
		case "createdAt":
			out.Values[i] = ec._User_createdAt(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var __DirectiveImplementors = []string{"__Directive"}

func (ec *executionContext) ___Directive(ctx context.Context, sel ast.SelectionSet, obj *introspection.Directive) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, __DirectiveImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("__Directive")
		case "name":
			out.Values[i] = ec.___Directive_name(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "description":
			out.Values[i] = ec.___Directive_description(ctx, field, obj)
		case "isRepeatable":
			out.Values[i] = ec.___Directive_isRepeatable(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "locations":
			out.Values[i] = ec.___Directive_locations(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "args":
			out.Values[i] = ec.___Directive_args(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var __EnumValueImplementors = []string{"__EnumValue"}

func (ec *executionContext) ___EnumValue(ctx context.Context, sel ast.SelectionSet, obj *introspection.EnumValue) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, __EnumValueImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("__EnumValue")
		case "name":
			out.Values[i] = ec.___EnumValue_name(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "description":
			out.Values[i] = ec.___EnumValue_description(ctx, field, obj)
		case "isDeprecated":
			out.Values[i] = ec.___EnumValue_isDeprecated(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "deprecationReason":
			out.Values[i] = ec.___EnumValue_deprecationReason(ctx, field, obj)
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var __FieldImplementors = []string{"__Field"}

func (ec *executionContext) ___Field(ctx context.Context, sel ast.SelectionSet, obj *introspection.Field) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, __FieldImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("__Field")
		case "name":
			out.Values[i] = ec.___Field_name(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "description":
			out.Values[i] = ec.___Field_description(ctx, field, obj)
		case "args":
			out.Values[i] = ec.___Field_args(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "type":
			out.Values[i] = ec.___Field_type(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "isDeprecated":
			out.Values[i] = ec.___Field_isDeprecated(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "deprecationReason":
			out.Values[i] = ec.___Field_deprecationReason(ctx, field, obj)
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var __InputValueImplementors = []string{"__InputValue"}

func (ec *executionContext) ___InputValue(ctx context.Context, sel ast.SelectionSet, obj *introspection.InputValue) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, __InputValueImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("__InputValue")
		case "name":
			out.Values[i] = ec.___InputValue_name(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "description":
			out.Values[i] = ec.___InputValue_description(ctx, field, obj)
		case "type":
			out.Values[i] = ec.___InputValue_type(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "defaultValue":
			out.Values[i] = ec.___InputValue_defaultValue(ctx, field, obj)
		case "isDeprecated":
			out.Values[i] = ec.___InputValue_isDeprecated(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "deprecationReason":
			out.Values[i] = ec.___InputValue_deprecationReason(ctx, field, obj)
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var __SchemaImplementors = []string{"__Schema"}

func (ec *executionContext) ___Schema(ctx context.Context, sel ast.SelectionSet, obj *introspection.Schema) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, __SchemaImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("__Schema")
		case "description":
			out.Values[i] = ec.___Schema_description(ctx, field, obj)
		case "types":
			out.Values[i] = ec.___Schema_types(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "queryType":
			out.Values[i] = ec.___Schema_queryType(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "mutationType":
			out.Values[i] = ec.___Schema_mutationType(ctx, field, obj)
		case "subscriptionType":
			out.Values[i] = ec.___Schema_subscriptionType(ctx, field, obj)
		case "directives":
			out.Values[i] = ec.___Schema_directives(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var __TypeImplementors = []string{"__Type"}

func (ec *executionContext) ___Type(ctx context.Context, sel ast.SelectionSet, obj *introspection.Type) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, __TypeImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("__Type")
		case "kind":
			out.Values[i] = ec.___Type_kind(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "name":
			out.Values[i] = ec.___Type_name(ctx, field, obj)
		case "description":
			out.Values[i] = ec.___Type_description(ctx, field, obj)
		case "specifiedByURL":
			out.Values[i] = ec.___Type_specifiedByURL(ctx, field, obj)
		case "fields":
			out.Values[i] = ec.___Type_fields(ctx, field, obj)
		case "interfaces":
			out.Values[i] = ec.___Type_interfaces(ctx, field, obj)
		case "possibleTypes":
			out.Values[i] = ec.___Type_possibleTypes(ctx, field, obj)
		case "enumValues":
			out.Values[i] = ec.___Type_enumValues(ctx, field, obj)
		case "inputFields":
			out.Values[i] = ec.___Type_inputFields(ctx, field, obj)
		case "ofType":
			out.Values[i] = ec.___Type_ofType(ctx, field, obj)
		case "isOneOf":
			out.Values[i] = ec.___Type_isOneOf(ctx, field, obj)
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

// endregion **************************** object.gotpl ****************************

// region    ***************************** type.gotpl *****************************

func (ec *executionContext) marshalNActivityEvent2ᚕᚖgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐActivityEventᚄ(ctx context.Context, sel ast.SelectionSet, v []*domain.ActivityEvent) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalNActivityEvent2ᚖgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐActivityEvent(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalNActivityEvent2ᚖgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐActivityEvent(ctx context.Context, sel ast.SelectionSet, v *domain.ActivityEvent) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._ActivityEvent(ctx, sel, v)
}

func (ec *executionContext) marshalNActivityEventPage2githubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋtransportᚋgraphqlᚋmodelᚐActivityEventPage(ctx context.Context, sel ast.SelectionSet, v model.ActivityEventPage) graphql.Marshaler {
	return ec._ActivityEventPage(ctx, sel, &v)
}

func (ec *executionContext) marshalNActivityEventPage2ᚖgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋtransportᚋgraphqlᚋmodelᚐActivityEventPage(ctx context.Context, sel ast.SelectionSet, v *model.ActivityEventPage) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._ActivityEventPage(ctx, sel, v)
}

func (ec *executionContext) marshalNActivityStats2githubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐActivityStats(ctx context.Context, sel ast.SelectionSet, v domain.ActivityStats) graphql.Marshaler {
	return ec._ActivityStats(ctx, sel, &v)
}

func (ec *executionContext) marshalNActivityStats2ᚖgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐActivityStats(ctx context.Context, sel ast.SelectionSet, v *domain.ActivityStats) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._ActivityStats(ctx, sel, v)
}

func (ec *executionContext) marshalNAnalyzeResult2githubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋtransportᚋgraphqlᚋmodelᚐAnalyzeResult(ctx context.Context, sel ast.SelectionSet, v model.AnalyzeResult) graphql.Marshaler {
	return ec._AnalyzeResult(ctx, sel, &v)
}

func (ec *executionContext) marshalNAnalyzeResult2ᚖgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋtransportᚋgraphqlᚋmodelᚐAnalyzeResult(ctx context.Context, sel ast.SelectionSet, v *model.AnalyzeResult) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._AnalyzeResult(ctx, sel, v)
}

func (ec *executionContext) marshalNAuthPayload2githubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋtransportᚋgraphqlᚋmodelᚐAuthPayload(ctx context.Context, sel ast.SelectionSet, v model.AuthPayload) graphql.Marshaler {
	return ec._AuthPayload(ctx, sel, &v)
}

func (ec *executionContext) marshalNAuthPayload2ᚖgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋtransportᚋgraphqlᚋmodelᚐAuthPayload(ctx context.Context, sel ast.SelectionSet, v *model.AuthPayload) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._AuthPayload(ctx, sel, v)
}

func (ec *executionContext) unmarshalNBatchSource2githubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐBatchSource(ctx context.Context, v any) (domain.BatchSource, error) {
	tmp, err := graphql.UnmarshalString(v)
	res := domain.BatchSource(tmp)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNBatchSource2githubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐBatchSource(ctx context.Context, sel ast.SelectionSet, v domain.BatchSource) graphql.Marshaler {
	_ = sel
	res := graphql.MarshalString(string(v))
	if res == graphql.Null {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
	}
	return res
}

func (ec *executionContext) unmarshalNBatchStatus2githubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐBatchStatus(ctx context.Context, v any) (domain.BatchStatus, error) {
	tmp, err := graphql.UnmarshalString(v)
	res := domain.BatchStatus(tmp)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNBatchStatus2githubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐBatchStatus(ctx context.Context, sel ast.SelectionSet, v domain.BatchStatus) graphql.Marshaler {
	_ = sel
	res := graphql.MarshalString(string(v))
	if res == graphql.Null {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
	}
	return res
}

func (ec *executionContext) unmarshalNBoolean2bool(ctx context.Context, v any) (bool, error) {
	res, err := graphql.UnmarshalBoolean(v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNBoolean2bool(ctx context.Context, sel ast.SelectionSet, v bool) graphql.Marshaler {
	_ = sel
	res := graphql.MarshalBoolean(v)
	if res == graphql.Null {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
	}
	return res
}

func (ec *executionContext) marshalNCommentBatch2githubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐCommentBatch(ctx context.Context, sel ast.SelectionSet, v domain.CommentBatch) graphql.Marshaler {
	return ec._CommentBatch(ctx, sel, &v)
}

func (ec *executionContext) marshalNCommentBatch2ᚕᚖgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐCommentBatchᚄ(ctx context.Context, sel ast.SelectionSet, v []*domain.CommentBatch) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalNCommentBatch2ᚖgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐCommentBatch(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalNCommentBatch2ᚖgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐCommentBatch(ctx context.Context, sel ast.SelectionSet, v *domain.CommentBatch) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._CommentBatch(ctx, sel, v)
}

func (ec *executionContext) marshalNCommentBatchPage2githubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋtransportᚋgraphqlᚋmodelᚐCommentBatchPage(ctx context.Context, sel ast.SelectionSet, v model.CommentBatchPage) graphql.Marshaler {
	return ec._CommentBatchPage(ctx, sel, &v)
}

func (ec *executionContext) marshalNCommentBatchPage2ᚖgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋtransportᚋgraphqlᚋmodelᚐCommentBatchPage(ctx context.Context, sel ast.SelectionSet, v *model.CommentBatchPage) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._CommentBatchPage(ctx, sel, v)
}

func (ec *executionContext) marshalNContentItem2githubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐContentItem(ctx context.Context, sel ast.SelectionSet, v domain.ContentItem) graphql.Marshaler {
	return ec._ContentItem(ctx, sel, &v)
}

func (ec *executionContext) marshalNContentItem2ᚕᚖgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐContentItemᚄ(ctx context.Context, sel ast.SelectionSet, v []*domain.ContentItem) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalNContentItem2ᚖgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐContentItem(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalNContentItem2ᚖgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐContentItem(ctx context.Context, sel ast.SelectionSet, v *domain.ContentItem) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._ContentItem(ctx, sel, v)
}

func (ec *executionContext) unmarshalNContentStatus2githubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐContentStatus(ctx context.Context, v any) (domain.ContentStatus, error) {
	tmp, err := graphql.UnmarshalString(v)
	res := domain.ContentStatus(tmp)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNContentStatus2githubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐContentStatus(ctx context.Context, sel ast.SelectionSet, v domain.ContentStatus) graphql.Marshaler {
	_ = sel
	res := graphql.MarshalString(string(v))
	if res == graphql.Null {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
	}
	return res
}

func (ec *executionContext) unmarshalNContentType2githubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐContentType(ctx context.Context, v any) (domain.ContentType, error) {
	tmp, err := graphql.UnmarshalString(v)
	res := domain.ContentType(tmp)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNContentType2githubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐContentType(ctx context.Context, sel ast.SelectionSet, v domain.ContentType) graphql.Marshaler {
	_ = sel
	res := graphql.MarshalString(string(v))
	if res == graphql.Null {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
	}
	return res
}

func (ec *executionContext) unmarshalNCreateContentInput2githubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋtransportᚋgraphqlᚋmodelᚐCreateContentInput(ctx context.Context, v any) (model.CreateContentInput, error) {
	res, err := ec.unmarshalInputCreateContentInput(ctx, v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) unmarshalNCreateCreatorProfileInput2githubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋtransportᚋgraphqlᚋmodelᚐCreateCreatorProfileInput(ctx context.Context, v any) (model.CreateCreatorProfileInput, error) {
	res, err := ec.unmarshalInputCreateCreatorProfileInput(ctx, v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNCreatorProfile2githubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐCreatorProfile(ctx context.Context, sel ast.SelectionSet, v domain.CreatorProfile) graphql.Marshaler {
	return ec._CreatorProfile(ctx, sel, &v)
}

func (ec *executionContext) marshalNCreatorProfile2ᚕᚖgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐCreatorProfileᚄ(ctx context.Context, sel ast.SelectionSet, v []*domain.CreatorProfile) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalNCreatorProfile2ᚖgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐCreatorProfile(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalNCreatorProfile2ᚖgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐCreatorProfile(ctx context.Context, sel ast.SelectionSet, v *domain.CreatorProfile) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._CreatorProfile(ctx, sel, v)
}

func (ec *executionContext) unmarshalNDateTime2timeᚐTime(ctx context.Context, v any) (time.Time, error) {
	res, err := model.UnmarshalDateTime(v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNDateTime2timeᚐTime(ctx context.Context, sel ast.SelectionSet, v time.Time) graphql.Marshaler {
	_ = sel
	res := model.MarshalDateTime(v)
	if res == graphql.Null {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
	}
	return res
}

func (ec *executionContext) marshalNDayCount2githubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐDayCount(ctx context.Context, sel ast.SelectionSet, v domain.DayCount) graphql.Marshaler {
	return ec._DayCount(ctx, sel, &v)
}

func (ec *executionContext) marshalNDayCount2ᚕgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐDayCountᚄ(ctx context.Context, sel ast.SelectionSet, v []domain.DayCount) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalNDayCount2githubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐDayCount(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) unmarshalNEventType2githubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐEventType(ctx context.Context, v any) (domain.EventType, error) {
	tmp, err := graphql.UnmarshalString(v)
	res := domain.EventType(tmp)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNEventType2githubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐEventType(ctx context.Context, sel ast.SelectionSet, v domain.EventType) graphql.Marshaler {
	_ = sel
	res := graphql.MarshalString(string(v))
	if res == graphql.Null {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
	}
	return res
}

func (ec *executionContext) marshalNEventTypeCount2githubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐEventTypeCount(ctx context.Context, sel ast.SelectionSet, v domain.EventTypeCount) graphql.Marshaler {
	return ec._EventTypeCount(ctx, sel, &v)
}

func (ec *executionContext) marshalNEventTypeCount2ᚕgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐEventTypeCountᚄ(ctx context.Context, sel ast.SelectionSet, v []domain.EventTypeCount) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalNEventTypeCount2githubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐEventTypeCount(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) unmarshalNFloat2float64(ctx context.Context, v any) (float64, error) {
	res, err := graphql.UnmarshalFloatContext(ctx, v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNFloat2float64(ctx context.Context, sel ast.SelectionSet, v float64) graphql.Marshaler {
	_ = sel
	res := graphql.MarshalFloatContext(v)
	if res == graphql.Null {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
	}
	return graphql.WrapContextMarshaler(ctx, res)
}

func (ec *executionContext) unmarshalNGenerateIdeasInput2githubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋtransportᚋgraphqlᚋmodelᚐGenerateIdeasInput(ctx context.Context, v any) (model.GenerateIdeasInput, error) {
	res, err := ec.unmarshalInputGenerateIdeasInput(ctx, v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) unmarshalNIdeaStatus2githubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐIdeaStatus(ctx context.Context, v any) (domain.IdeaStatus, error) {
	tmp, err := graphql.UnmarshalString(v)
	res := domain.IdeaStatus(tmp)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNIdeaStatus2githubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐIdeaStatus(ctx context.Context, sel ast.SelectionSet, v domain.IdeaStatus) graphql.Marshaler {
	_ = sel
	res := graphql.MarshalString(string(v))
	if res == graphql.Null {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
	}
	return res
}

func (ec *executionContext) marshalNIdeaSuggestion2githubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐIdeaSuggestion(ctx context.Context, sel ast.SelectionSet, v domain.IdeaSuggestion) graphql.Marshaler {
	return ec._IdeaSuggestion(ctx, sel, &v)
}

func (ec *executionContext) marshalNIdeaSuggestion2ᚕᚖgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐIdeaSuggestionᚄ(ctx context.Context, sel ast.SelectionSet, v []*domain.IdeaSuggestion) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalNIdeaSuggestion2ᚖgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐIdeaSuggestion(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalNIdeaSuggestion2ᚖgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐIdeaSuggestion(ctx context.Context, sel ast.SelectionSet, v *domain.IdeaSuggestion) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._IdeaSuggestion(ctx, sel, v)
}

func (ec *executionContext) unmarshalNIdeaType2githubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐIdeaType(ctx context.Context, v any) (domain.IdeaType, error) {
	tmp, err := graphql.UnmarshalString(v)
	res := domain.IdeaType(tmp)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNIdeaType2githubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐIdeaType(ctx context.Context, sel ast.SelectionSet, v domain.IdeaType) graphql.Marshaler {
	_ = sel
	res := graphql.MarshalString(string(v))
	if res == graphql.Null {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
	}
	return res
}

func (ec *executionContext) unmarshalNImportCommentsInput2githubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋtransportᚋgraphqlᚋmodelᚐImportCommentsInput(ctx context.Context, v any) (model.ImportCommentsInput, error) {
	res, err := ec.unmarshalInputImportCommentsInput(ctx, v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) unmarshalNInt2int(ctx context.Context, v any) (int, error) {
	res, err := graphql.UnmarshalInt(v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNInt2int(ctx context.Context, sel ast.SelectionSet, v int) graphql.Marshaler {
	_ = sel
	res := graphql.MarshalInt(v)
	if res == graphql.Null {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
	}
	return res
}

func (ec *executionContext) unmarshalNLoginInput2githubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋtransportᚋgraphqlᚋmodelᚐLoginInput(ctx context.Context, v any) (model.LoginInput, error) {
	res, err := ec.unmarshalInputLoginInput(ctx, v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNRawComment2githubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐRawComment(ctx context.Context, sel ast.SelectionSet, v domain.RawComment) graphql.Marshaler {
	return ec._RawComment(ctx, sel, &v)
}

func (ec *executionContext) marshalNRawComment2ᚕgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐRawCommentᚄ(ctx context.Context, sel ast.SelectionSet, v []domain.RawComment) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalNRawComment2githubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐRawComment(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) unmarshalNRegisterInput2githubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋtransportᚋgraphqlᚋmodelᚐRegisterInput(ctx context.Context, v any) (model.RegisterInput, error) {
	res, err := ec.unmarshalInputRegisterInput(ctx, v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNSentimentSnapshot2githubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐSentimentSnapshot(ctx context.Context, sel ast.SelectionSet, v domain.SentimentSnapshot) graphql.Marshaler {
	return ec._SentimentSnapshot(ctx, sel, &v)
}

func (ec *executionContext) marshalNSentimentSnapshot2ᚕᚖgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐSentimentSnapshotᚄ(ctx context.Context, sel ast.SelectionSet, v []*domain.SentimentSnapshot) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalNSentimentSnapshot2ᚖgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐSentimentSnapshot(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalNSentimentSnapshot2ᚖgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐSentimentSnapshot(ctx context.Context, sel ast.SelectionSet, v *domain.SentimentSnapshot) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._SentimentSnapshot(ctx, sel, v)
}

func (ec *executionContext) unmarshalNString2string(ctx context.Context, v any) (string, error) {
	res, err := graphql.UnmarshalString(v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNString2string(ctx context.Context, sel ast.SelectionSet, v string) graphql.Marshaler {
	_ = sel
	res := graphql.MarshalString(v)
	if res == graphql.Null {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
	}
	return res
}

func (ec *executionContext) unmarshalNString2ᚕstringᚄ(ctx context.Context, v any) ([]string, error) {
	var vSlice []any
	vSlice = graphql.CoerceList(v)
	var err error
	res := make([]string, len(vSlice))
	for i := range vSlice {
		ctx := graphql.WithPathContext(ctx, graphql.NewPathWithIndex(i))
		res[i], err = ec.unmarshalNString2string(ctx, vSlice[i])
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

func (ec *executionContext) marshalNString2ᚕstringᚄ(ctx context.Context, sel ast.SelectionSet, v []string) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	for i := range v {
		ret[i] = ec.marshalNString2string(ctx, sel, v[i])
	}

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) unmarshalNSubscribeInput2githubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋtransportᚋgraphqlᚋmodelᚐSubscribeInput(ctx context.Context, v any) (model.SubscribeInput, error) {
	res, err := ec.unmarshalInputSubscribeInput(ctx, v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNSubscriberPage2githubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋtransportᚋgraphqlᚋmodelᚐSubscriberPage(ctx context.Context, sel ast.SelectionSet, v model.SubscriberPage) graphql.Marshaler {
	return ec._SubscriberPage(ctx, sel, &v)
}

func (ec *executionContext) marshalNSubscriberPage2ᚖgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋtransportᚋgraphqlᚋmodelᚐSubscriberPage(ctx context.Context, sel ast.SelectionSet, v *model.SubscriberPage) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._SubscriberPage(ctx, sel, v)
}

func (ec *executionContext) marshalNSubscriberProfile2githubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐSubscriberProfile(ctx context.Context, sel ast.SelectionSet, v domain.SubscriberProfile) graphql.Marshaler {
	return ec._SubscriberProfile(ctx, sel, &v)
}

func (ec *executionContext) marshalNSubscriberProfile2ᚕᚖgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐSubscriberProfileᚄ(ctx context.Context, sel ast.SelectionSet, v []*domain.SubscriberProfile) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalNSubscriberProfile2ᚖgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐSubscriberProfile(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalNSubscriberProfile2ᚖgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐSubscriberProfile(ctx context.Context, sel ast.SelectionSet, v *domain.SubscriberProfile) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._SubscriberProfile(ctx, sel, v)
}

func (ec *executionContext) unmarshalNTier2githubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐTier(ctx context.Context, v any) (domain.Tier, error) {
	tmp, err := graphql.UnmarshalString(v)
	res := domain.Tier(tmp)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNTier2githubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐTier(ctx context.Context, sel ast.SelectionSet, v domain.Tier) graphql.Marshaler {
	_ = sel
	res := graphql.MarshalString(string(v))
	if res == graphql.Null {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
	}
	return res
}

func (ec *executionContext) marshalNTierSentiment2githubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐTierSentiment(ctx context.Context, sel ast.SelectionSet, v domain.TierSentiment) graphql.Marshaler {
	return ec._TierSentiment(ctx, sel, &v)
}

func (ec *executionContext) unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID(ctx context.Context, v any) (uuid.UUID, error) {
	res, err := model.UnmarshalUUID(v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID(ctx context.Context, sel ast.SelectionSet, v uuid.UUID) graphql.Marshaler {
	_ = sel
	res := model.MarshalUUID(v)
	if res == graphql.Null {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
	}
	return res
}

func (ec *executionContext) unmarshalNUpdateContentInput2githubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋtransportᚋgraphqlᚋmodelᚐUpdateContentInput(ctx context.Context, v any) (model.UpdateContentInput, error) {
	res, err := ec.unmarshalInputUpdateContentInput(ctx, v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) unmarshalNUpdateCreatorProfileInput2githubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋtransportᚋgraphqlᚋmodelᚐUpdateCreatorProfileInput(ctx context.Context, v any) (model.UpdateCreatorProfileInput, error) {
	res, err := ec.unmarshalInputUpdateCreatorProfileInput(ctx, v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNUser2githubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐUser(ctx context.Context, sel ast.SelectionSet, v domain.User) graphql.Marshaler {
	return ec._User(ctx, sel, &v)
}

func (ec *executionContext) marshalNUser2ᚖgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐUser(ctx context.Context, sel ast.SelectionSet, v *domain.User) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._User(ctx, sel, v)
}

func (ec *executionContext) marshalN__Directive2githubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐDirective(ctx context.Context, sel ast.SelectionSet, v introspection.Directive) graphql.Marshaler {
	return ec.___Directive(ctx, sel, &v)
}

func (ec *executionContext) marshalN__Directive2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐDirectiveᚄ(ctx context.Context, sel ast.SelectionSet, v []introspection.Directive) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalN__Directive2githubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐDirective(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) unmarshalN__DirectiveLocation2string(ctx context.Context, v any) (string, error) {
	res, err := graphql.UnmarshalString(v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalN__DirectiveLocation2string(ctx context.Context, sel ast.SelectionSet, v string) graphql.Marshaler {
	_ = sel
	res := graphql.MarshalString(v)
	if res == graphql.Null {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
	}
	return res
}

func (ec *executionContext) unmarshalN__DirectiveLocation2ᚕstringᚄ(ctx context.Context, v any) ([]string, error) {
	var vSlice []any
	vSlice = graphql.CoerceList(v)
	var err error
	res := make([]string, len(vSlice))
	for i := range vSlice {
		ctx := graphql.WithPathContext(ctx, graphql.NewPathWithIndex(i))
		res[i], err = ec.unmarshalN__DirectiveLocation2string(ctx, vSlice[i])
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

func (ec *executionContext) marshalN__DirectiveLocation2ᚕstringᚄ(ctx context.Context, sel ast.SelectionSet, v []string) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalN__DirectiveLocation2string(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalN__EnumValue2githubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐEnumValue(ctx context.Context, sel ast.SelectionSet, v introspection.EnumValue) graphql.Marshaler {
	return ec.___EnumValue(ctx, sel, &v)
}

func (ec *executionContext) marshalN__Field2githubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐField(ctx context.Context, sel ast.SelectionSet, v introspection.Field) graphql.Marshaler {
	return ec.___Field(ctx, sel, &v)
}

func (ec *executionContext) marshalN__InputValue2githubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐInputValue(ctx context.Context, sel ast.SelectionSet, v introspection.InputValue) graphql.Marshaler {
	return ec.___InputValue(ctx, sel, &v)
}

func (ec *executionContext) marshalN__InputValue2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐInputValueᚄ(ctx context.Context, sel ast.SelectionSet, v []introspection.InputValue) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalN__InputValue2githubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐInputValue(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalN__Type2githubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐType(ctx context.Context, sel ast.SelectionSet, v introspection.Type) graphql.Marshaler {
	return ec.___Type(ctx, sel, &v)
}

func (ec *executionContext) marshalN__Type2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐTypeᚄ(ctx context.Context, sel ast.SelectionSet, v []introspection.Type) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalN__Type2githubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐType(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalN__Type2ᚖgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐType(ctx context.Context, sel ast.SelectionSet, v *introspection.Type) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec.___Type(ctx, sel, v)
}

func (ec *executionContext) unmarshalN__TypeKind2string(ctx context.Context, v any) (string, error) {
	res, err := graphql.UnmarshalString(v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalN__TypeKind2string(ctx context.Context, sel ast.SelectionSet, v string) graphql.Marshaler {
	_ = sel
	res := graphql.MarshalString(v)
	if res == graphql.Null {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
	}
	return res
}

func (ec *executionContext) unmarshalOActivityFilterInput2ᚖgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋtransportᚋgraphqlᚋmodelᚐActivityFilterInput(ctx context.Context, v any) (*model.ActivityFilterInput, error) {
	if v == nil {
		return nil, nil
	}
	res, err := ec.unmarshalInputActivityFilterInput(ctx, v)
	return &res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) unmarshalOBoolean2bool(ctx context.Context, v any) (bool, error) {
	res, err := graphql.UnmarshalBoolean(v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalOBoolean2bool(ctx context.Context, sel ast.SelectionSet, v bool) graphql.Marshaler {
	_ = sel
	_ = ctx
	res := graphql.MarshalBoolean(v)
	return res
}

func (ec *executionContext) unmarshalOBoolean2ᚖbool(ctx context.Context, v any) (*bool, error) {
	if v == nil {
		return nil, nil
	}
	res, err := graphql.UnmarshalBoolean(v)
	return &res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalOBoolean2ᚖbool(ctx context.Context, sel ast.SelectionSet, v *bool) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	_ = sel
	_ = ctx
	res := graphql.MarshalBoolean(*v)
	return res
}

func (ec *executionContext) unmarshalOContentType2ᚖgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐContentType(ctx context.Context, v any) (*domain.ContentType, error) {
	if v == nil {
		return nil, nil
	}
	tmp, err := graphql.UnmarshalString(v)
	res := domain.ContentType(tmp)
	return &res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalOContentType2ᚖgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐContentType(ctx context.Context, sel ast.SelectionSet, v *domain.ContentType) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	_ = sel
	_ = ctx
	res := graphql.MarshalString(string(*v))
	return res
}

func (ec *executionContext) unmarshalODateTime2ᚖtimeᚐTime(ctx context.Context, v any) (*time.Time, error) {
	if v == nil {
		return nil, nil
	}
	res, err := model.UnmarshalDateTime(v)
	return &res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalODateTime2ᚖtimeᚐTime(ctx context.Context, sel ast.SelectionSet, v *time.Time) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	_ = sel
	_ = ctx
	res := model.MarshalDateTime(*v)
	return res
}

func (ec *executionContext) unmarshalOEventType2ᚖgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐEventType(ctx context.Context, v any) (*domain.EventType, error) {
	if v == nil {
		return nil, nil
	}
	tmp, err := graphql.UnmarshalString(v)
	res := domain.EventType(tmp)
	return &res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalOEventType2ᚖgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐEventType(ctx context.Context, sel ast.SelectionSet, v *domain.EventType) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	_ = sel
	_ = ctx
	res := graphql.MarshalString(string(*v))
	return res
}

func (ec *executionContext) unmarshalOIdeaStatus2ᚖgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐIdeaStatus(ctx context.Context, v any) (*domain.IdeaStatus, error) {
	if v == nil {
		return nil, nil
	}
	tmp, err := graphql.UnmarshalString(v)
	res := domain.IdeaStatus(tmp)
	return &res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalOIdeaStatus2ᚖgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐIdeaStatus(ctx context.Context, sel ast.SelectionSet, v *domain.IdeaStatus) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	_ = sel
	_ = ctx
	res := graphql.MarshalString(string(*v))
	return res
}

func (ec *executionContext) unmarshalOInt2ᚖint(ctx context.Context, v any) (*int, error) {
	if v == nil {
		return nil, nil
	}
	res, err := graphql.UnmarshalInt(v)
	return &res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalOInt2ᚖint(ctx context.Context, sel ast.SelectionSet, v *int) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	_ = sel
	_ = ctx
	res := graphql.MarshalInt(*v)
	return res
}

func (ec *executionContext) unmarshalOJSON2map(ctx context.Context, v any) (map[string]any, error) {
	if v == nil {
		return nil, nil
	}
	res, err := model.UnmarshalJSON(v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalOJSON2map(ctx context.Context, sel ast.SelectionSet, v map[string]any) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	_ = sel
	_ = ctx
	res := model.MarshalJSON(v)
	return res
}

func (ec *executionContext) unmarshalOString2ᚖstring(ctx context.Context, v any) (*string, error) {
	if v == nil {
		return nil, nil
	}
	res, err := graphql.UnmarshalString(v)
	return &res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalOString2ᚖstring(ctx context.Context, sel ast.SelectionSet, v *string) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	_ = sel
	_ = ctx
	res := graphql.MarshalString(*v)
	return res
}

func (ec *executionContext) marshalOSubscriberProfile2ᚖgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐSubscriberProfile(ctx context.Context, sel ast.SelectionSet, v *domain.SubscriberProfile) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	return ec._SubscriberProfile(ctx, sel, v)
}

func (ec *executionContext) unmarshalOTier2ᚖgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐTier(ctx context.Context, v any) (*domain.Tier, error) {
	if v == nil {
		return nil, nil
	}
	tmp, err := graphql.UnmarshalString(v)
	res := domain.Tier(tmp)
	return &res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalOTier2ᚖgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐTier(ctx context.Context, sel ast.SelectionSet, v *domain.Tier) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	_ = sel
	_ = ctx
	res := graphql.MarshalString(string(*v))
	return res
}

func (ec *executionContext) marshalOTierSentiment2ᚕgithubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐTierSentimentᚄ(ctx context.Context, sel ast.SelectionSet, v []domain.TierSentiment) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalNTierSentiment2githubᚗcomᚋndvoroninᚋcreatorpulseᚑbackendᚋinternalᚋdomainᚐTierSentiment(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) unmarshalOUUID2ᚖgithubᚗcomᚋgoogleᚋuuidᚐUUID(ctx context.Context, v any) (*uuid.UUID, error) {
	if v == nil {
		return nil, nil
	}
	res, err := model.UnmarshalUUID(v)
	return &res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalOUUID2ᚖgithubᚗcomᚋgoogleᚋuuidᚐUUID(ctx context.Context, sel ast.SelectionSet, v *uuid.UUID) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	_ = sel
	_ = ctx
	res := model.MarshalUUID(*v)
	return res
}

func (ec *executionContext) marshalO__EnumValue2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐEnumValueᚄ(ctx context.Context, sel ast.SelectionSet, v []introspection.EnumValue) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalN__EnumValue2githubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐEnumValue(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalO__Field2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐFieldᚄ(ctx context.Context, sel ast.SelectionSet, v []introspection.Field) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalN__Field2githubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐField(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalO__InputValue2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐInputValueᚄ(ctx context.Context, sel ast.SelectionSet, v []introspection.InputValue) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalN__InputValue2githubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐInputValue(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalO__Schema2ᚖgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐSchema(ctx context.Context, sel ast.SelectionSet, v *introspection.Schema) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	return ec.___Schema(ctx, sel, v)
}

func (ec *executionContext) marshalO__Type2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐTypeᚄ(ctx context.Context, sel ast.SelectionSet, v []introspection.Type) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalN__Type2githubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐType(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalO__Type2ᚖgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐType(ctx context.Context, sel ast.SelectionSet, v *introspection.Type) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	return ec.___Type(ctx, sel, v)
}

// endregion ***************************** type.gotpl *****************************
