package resolver

// This file will be automatically regenerated based on the schema, any resolver
// implementations
// will be copied through when generating and any unknown code will be moved to the end.
// Code generated by github.com/99designs/gqlgen version v0.17.86

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/ndvoronin/creatorpulse-backend/internal/domain"
	"github.com/ndvoronin/creatorpulse-backend/internal/service/activity"
	"github.com/ndvoronin/creatorpulse-backend/internal/service/auth"
	"github.com/ndvoronin/creatorpulse-backend/internal/service/comments"
	"github.com/ndvoronin/creatorpulse-backend/internal/service/content"
	"github.com/ndvoronin/creatorpulse-backend/internal/service/creator"
	"github.com/ndvoronin/creatorpulse-backend/internal/service/ideas"
	"github.com/ndvoronin/creatorpulse-backend/internal/service/subscriber"
	"github.com/ndvoronin/creatorpulse-backend/internal/transport/graphql/dataloader"
	"github.com/ndvoronin/creatorpulse-backend/internal/transport/graphql/generated"
	"github.com/ndvoronin/creatorpulse-backend/internal/transport/graphql/model"
)

// Snapshots is the resolver for the snapshots field.
func (r *commentBatchResolver) Snapshots(ctx context.Context, obj *domain.CommentBatch) ([]*domain.SentimentSnapshot, error) {
	snaps, err := dataloader.FromContext(ctx).SnapshotsByBatch.Load(ctx, obj.ID)()
	if err != nil {
		return nil, err
	}
	return ptrSlice(snaps), nil
}

// SubscriberCount is the resolver for the subscriberCount field.
func (r *creatorProfileResolver) SubscriberCount(ctx context.Context, obj *domain.CreatorProfile) (int, error) {
	return r.subscriber.CountSubscribers(ctx, obj.ID)
}

// Register is the resolver for the register field.
func (r *mutationResolver) Register(ctx context.Context, input model.RegisterInput) (*model.AuthPayload, error) {
	result, err := r.auth.Register(ctx, auth.RegisterInput{
		Email:    input.Email,
		Name:     input.Name,
		Password: input.Password,
	})
	if err != nil {
		return nil, err
	}
	return &model.AuthPayload{AccessToken: result.AccessToken, User: &result.User}, nil
}

// Login is the resolver for the login field.
func (r *mutationResolver) Login(ctx context.Context, input model.LoginInput) (*model.AuthPayload, error) {
	result, err := r.auth.Login(ctx, auth.LoginInput{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		return nil, err
	}
	return &model.AuthPayload{AccessToken: result.AccessToken, User: &result.User}, nil
}

// CreateCreatorProfile is the resolver for the createCreatorProfile field.
func (r *mutationResolver) CreateCreatorProfile(ctx context.Context, input model.CreateCreatorProfileInput) (*domain.CreatorProfile, error) {
	profile, err := r.creator.CreateProfile(ctx, creator.CreateProfileInput{
		DisplayName: input.DisplayName,
		Niche:       input.Niche,
		Bio:         input.Bio,
	})
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateCreatorProfile is the resolver for the updateCreatorProfile field.
func (r *mutationResolver) UpdateCreatorProfile(ctx context.Context, input model.UpdateCreatorProfileInput) (*domain.CreatorProfile, error) {
	profile, err := r.creator.UpdateProfile(ctx, creator.UpdateProfileInput{
		DisplayName: input.DisplayName,
		Niche:       input.Niche,
		Bio:         input.Bio,
	})
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Subscribe is the resolver for the subscribe field.
func (r *mutationResolver) Subscribe(ctx context.Context, input model.SubscribeInput) (*domain.SubscriberProfile, error) {
	sub, err := r.subscriber.Subscribe(ctx, subscriber.SubscribeInput{
		CreatorID: input.CreatorID,
		Tier:      input.Tier,
	})
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// CreateContent is the resolver for the createContent field.
func (r *mutationResolver) CreateContent(ctx context.Context, input model.CreateContentInput) (*domain.ContentItem, error) {
	item, err := r.content.Create(ctx, content.CreateInput{
		Title:        input.Title,
		Type:         input.Type,
		IsPremium:    input.IsPremium,
		RequiredTier: input.RequiredTier,
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateContent is the resolver for the updateContent field.
func (r *mutationResolver) UpdateContent(ctx context.Context, input model.UpdateContentInput) (*domain.ContentItem, error) {
	in := content.UpdateInput{
		Title:        input.Title,
		Type:         input.Type,
		IsPremium:    input.IsPremium,
		RequiredTier: input.RequiredTier,
	}
	if input.ClearRequiredTier != nil {
		in.ClearTier = *input.ClearRequiredTier
	}

	item, err := r.content.Update(ctx, input.ID, in)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// PublishContent is the resolver for the publishContent field.
func (r *mutationResolver) PublishContent(ctx context.Context, id uuid.UUID) (*domain.ContentItem, error) {
	item, err := r.content.Publish(ctx, id)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteContent is the resolver for the deleteContent field.
func (r *mutationResolver) DeleteContent(ctx context.Context, id uuid.UUID) (bool, error) {
	if err := r.content.Delete(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}

// ImportComments is the resolver for the importComments field.
func (r *mutationResolver) ImportComments(ctx context.Context, input model.ImportCommentsInput) (*domain.CommentBatch, error) {
	batch, err := r.comments.Import(ctx, comments.ImportInput{
		CreatorID:           input.CreatorID,
		Source:              input.Source,
		Payload:             input.Payload,
		LinkedContentItemID: input.LinkedContentItemID,
	})
	if err != nil {
		return nil, err
	}
	return &batch, nil
}

// AnalyzeBatch is the resolver for the analyzeBatch field.
func (r *mutationResolver) AnalyzeBatch(ctx context.Context, batchID uuid.UUID) (*model.AnalyzeResult, error) {
	result, err := r.sentiment.Analyze(ctx, batchID)
	if err != nil {
		return nil, err
	}
	return &model.AnalyzeResult{
		Snapshot:       &result.Snapshot,
		DegradedChunks: result.DegradedChunks,
	}, nil
}

// GenerateIdeas is the resolver for the generateIdeas field.
func (r *mutationResolver) GenerateIdeas(ctx context.Context, input model.GenerateIdeasInput) ([]*domain.IdeaSuggestion, error) {
	suggestions, err := r.ideas.Generate(ctx, ideas.GenerateInput{
		SnapshotID: input.SnapshotID,
		TierTarget: input.TierTarget,
	})
	if err != nil {
		return nil, err
	}
	return ptrSlice(suggestions), nil
}

// UpdateIdeaStatus is the resolver for the updateIdeaStatus field.
func (r *mutationResolver) UpdateIdeaStatus(ctx context.Context, id uuid.UUID, status domain.IdeaStatus) (*domain.IdeaSuggestion, error) {
	idea, err := r.ideas.UpdateIdeaStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	return &idea, nil
}

// Me is the resolver for the me field.
func (r *queryResolver) Me(ctx context.Context) (*domain.User, error) {
	user, err := r.auth.Me(ctx)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Creator is the resolver for the creator field.
func (r *queryResolver) Creator(ctx context.Context, id uuid.UUID) (*domain.CreatorProfile, error) {
	profile, err := r.creator.GetProfile(ctx, id)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Creators is the resolver for the creators field.
func (r *queryResolver) Creators(ctx context.Context, limit *int, offset *int) ([]*domain.CreatorProfile, error) {
	l, o := pageArgs(limit, offset)
	profiles, err := r.creator.ListProfiles(ctx, l, o)
	if err != nil {
		return nil, err
	}
	return ptrSlice(profiles), nil
}

// MyCreatorProfile is the resolver for the myCreatorProfile field.
func (r *queryResolver) MyCreatorProfile(ctx context.Context) (*domain.CreatorProfile, error) {
	profile, err := r.creator.MyProfile(ctx)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// MySubscription is the resolver for the mySubscription field.
func (r *queryResolver) MySubscription(ctx context.Context, creatorID uuid.UUID) (*domain.SubscriberProfile, error) {
	sub, err := r.subscriber.MySubscription(ctx, creatorID)
	if err != nil {
		// No subscription is a valid state, not an error.
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

// MySubscribers is the resolver for the mySubscribers field.
func (r *queryResolver) MySubscribers(ctx context.Context, limit *int, offset *int) (*model.SubscriberPage, error) {
	l, o := pageArgs(limit, offset)
	subs, total, err := r.subscriber.ListSubscribers(ctx, l, o)
	if err != nil {
		return nil, err
	}
	return &model.SubscriberPage{Items: ptrSlice(subs), Total: total}, nil
}

// ContentItem is the resolver for the contentItem field.
func (r *queryResolver) ContentItem(ctx context.Context, id uuid.UUID) (*domain.ContentItem, error) {
	item, err := r.content.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// CreatorContent is the resolver for the creatorContent field.
func (r *queryResolver) CreatorContent(ctx context.Context, creatorID uuid.UUID, limit *int, offset *int) ([]*domain.ContentItem, error) {
	l, o := pageArgs(limit, offset)
	items, err := r.content.ListByCreator(ctx, creatorID, l, o)
	if err != nil {
		return nil, err
	}
	return ptrSlice(items), nil
}

// CommentBatch is the resolver for the commentBatch field.
func (r *queryResolver) CommentBatch(ctx context.Context, id uuid.UUID) (*domain.CommentBatch, error) {
	batch, err := r.comments.GetBatch(ctx, id)
	if err != nil {
		return nil, err
	}
	return &batch, nil
}

// CommentBatches is the resolver for the commentBatches field.
func (r *queryResolver) CommentBatches(ctx context.Context, creatorID uuid.UUID, limit *int, offset *int) (*model.CommentBatchPage, error) {
	l, o := pageArgs(limit, offset)
	batches, total, err := r.comments.ListBatches(ctx, creatorID, l, o)
	if err != nil {
		return nil, err
	}
	return &model.CommentBatchPage{Items: ptrSlice(batches), Total: total}, nil
}

// SentimentSnapshot is the resolver for the sentimentSnapshot field.
func (r *queryResolver) SentimentSnapshot(ctx context.Context, id uuid.UUID) (*domain.SentimentSnapshot, error) {
	snap, err := r.sentiment.GetSnapshot(ctx, id)
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

// SentimentSnapshots is the resolver for the sentimentSnapshots field.
func (r *queryResolver) SentimentSnapshots(ctx context.Context, creatorID uuid.UUID, limit *int, offset *int) ([]*domain.SentimentSnapshot, error) {
	l, o := pageArgs(limit, offset)
	snaps, err := r.sentiment.ListSnapshots(ctx, creatorID, l, o)
	if err != nil {
		return nil, err
	}
	return ptrSlice(snaps), nil
}

// Idea is the resolver for the idea field.
func (r *queryResolver) Idea(ctx context.Context, id uuid.UUID) (*domain.IdeaSuggestion, error) {
	idea, err := r.ideas.GetIdea(ctx, id)
	if err != nil {
		return nil, err
	}
	return &idea, nil
}

// Ideas is the resolver for the ideas field.
func (r *queryResolver) Ideas(ctx context.Context, creatorID uuid.UUID, status *domain.IdeaStatus, limit *int, offset *int) ([]*domain.IdeaSuggestion, error) {
	l, o := pageArgs(limit, offset)
	suggestions, err := r.ideas.ListIdeas(ctx, ideas.ListInput{
		CreatorID: creatorID,
		Status:    status,
		Limit:     l,
		Offset:    o,
	})
	if err != nil {
		return nil, err
	}
	return ptrSlice(suggestions), nil
}

// ActivityEvents is the resolver for the activityEvents field.
func (r *queryResolver) ActivityEvents(ctx context.Context, filter *model.ActivityFilterInput, limit *int, offset *int) (*model.ActivityEventPage, error) {
	l, o := pageArgs(limit, offset)
	result, err := r.activity.Query(ctx, activityQueryInput(filter, l, o))
	if err != nil {
		return nil, err
	}
	return &model.ActivityEventPage{Items: ptrSlice(result.Events), Total: result.Total}, nil
}

// ActivityStats is the resolver for the activityStats field.
func (r *queryResolver) ActivityStats(ctx context.Context, filter *model.ActivityFilterInput) (*domain.ActivityStats, error) {
	stats, err := r.activity.Stats(ctx, activityQueryInput(filter, 0, 0))
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// Ideas is the resolver for the ideas field.
func (r *sentimentSnapshotResolver) Ideas(ctx context.Context, obj *domain.SentimentSnapshot) ([]*domain.IdeaSuggestion, error) {
	suggestions, err := dataloader.FromContext(ctx).IdeasBySnapshot.Load(ctx, obj.ID)()
	if err != nil {
		return nil, err
	}
	return ptrSlice(suggestions), nil
}

// Creator is the resolver for the creator field.
func (r *subscriberProfileResolver) Creator(ctx context.Context, obj *domain.SubscriberProfile) (*domain.CreatorProfile, error) {
	return dataloader.FromContext(ctx).CreatorByID.Load(ctx, obj.CreatorID)()
}

// Role is the resolver for the role field.
func (r *userResolver) Role(ctx context.Context, obj *domain.User) (string, error) {
	return obj.Role.String(), nil
}

// CommentBatch returns generated.CommentBatchResolver implementation.
func (r *Resolver) CommentBatch() generated.CommentBatchResolver { return &commentBatchResolver{r} }

// CreatorProfile returns generated.CreatorProfileResolver implementation.
func (r *Resolver) CreatorProfile() generated.CreatorProfileResolver {
	return &creatorProfileResolver{r}
}

// Mutation returns generated.MutationResolver implementation.
func (r *Resolver) Mutation() generated.MutationResolver { return &mutationResolver{r} }

// Query returns generated.QueryResolver implementation.
func (r *Resolver) Query() generated.QueryResolver { return &queryResolver{r} }

// SentimentSnapshot returns generated.SentimentSnapshotResolver implementation.
func (r *Resolver) SentimentSnapshot() generated.SentimentSnapshotResolver {
	return &sentimentSnapshotResolver{r}
}

// SubscriberProfile returns generated.SubscriberProfileResolver implementation.
func (r *Resolver) SubscriberProfile() generated.SubscriberProfileResolver {
	return &subscriberProfileResolver{r}
}

// User returns generated.UserResolver implementation.
func (r *Resolver) User() generated.UserResolver { return &userResolver{r} }

type commentBatchResolver struct{ *Resolver }
type creatorProfileResolver struct{ *Resolver }
type mutationResolver struct{ *Resolver }
type queryResolver struct{ *Resolver }
type sentimentSnapshotResolver struct{ *Resolver }
type subscriberProfileResolver struct{ *Resolver }
type userResolver struct{ *Resolver }

// activityQueryInput converts the GraphQL filter into the service input.
func activityQueryInput(filter *model.ActivityFilterInput, limit, offset int) activity.QueryInput {
	in := activity.QueryInput{Limit: limit, Offset: offset}
	if filter != nil {
		in.EventType = filter.EventType
		in.UserID = filter.UserID
		in.CreatorID = filter.CreatorID
		in.From = filter.From
		in.To = filter.To
	}
	return in
}
