// Code generated by github.com/99designs/gqlgen, DO NOT EDIT.

package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/ndvoronin/creatorpulse-backend/internal/domain"
)

type ActivityEventPage struct {
	Items []*domain.ActivityEvent `json:"items"`
	Total int                     `json:"total"`
}

type ActivityFilterInput struct {
	EventType *domain.EventType `json:"eventType,omitempty"`
	UserID    *uuid.UUID        `json:"userId,omitempty"`
	CreatorID *uuid.UUID        `json:"creatorId,omitempty"`
	From      *time.Time        `json:"from,omitempty"`
	To        *time.Time        `json:"to,omitempty"`
}

type AnalyzeResult struct {
	Snapshot       *domain.SentimentSnapshot `json:"snapshot"`
	DegradedChunks int                       `json:"degradedChunks"`
}

type AuthPayload struct {
	AccessToken string       `json:"accessToken"`
	User        *domain.User `json:"user"`
}

type CommentBatchPage struct {
	Items []*domain.CommentBatch `json:"items"`
	Total int                    `json:"total"`
}

type CreateContentInput struct {
	Title        string             `json:"title"`
	Type         domain.ContentType `json:"type"`
	IsPremium    bool               `json:"isPremium"`
	RequiredTier *domain.Tier       `json:"requiredTier,omitempty"`
}

type CreateCreatorProfileInput struct {
	DisplayName string  `json:"displayName"`
	Niche       string  `json:"niche"`
	Bio         *string `json:"bio,omitempty"`
}

type GenerateIdeasInput struct {
	SnapshotID uuid.UUID `json:"snapshotId"`
	TierTarget *string   `json:"tierTarget,omitempty"`
}

type ImportCommentsInput struct {
	CreatorID           uuid.UUID          `json:"creatorId"`
	Source              domain.BatchSource `json:"source"`
	Payload             string             `json:"payload"`
	LinkedContentItemID *uuid.UUID         `json:"linkedContentItemId,omitempty"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Mutation struct {
}

type Query struct {
}

type RegisterInput struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type SubscribeInput struct {
	CreatorID uuid.UUID   `json:"creatorId"`
	Tier      domain.Tier `json:"tier"`
}

type SubscriberPage struct {
	Items []*domain.SubscriberProfile `json:"items"`
	Total int                         `json:"total"`
}

type UpdateContentInput struct {
	ID                uuid.UUID           `json:"id"`
	Title             *string             `json:"title,omitempty"`
	Type              *domain.ContentType `json:"type,omitempty"`
	IsPremium         *bool               `json:"isPremium,omitempty"`
	RequiredTier      *domain.Tier        `json:"requiredTier,omitempty"`
	ClearRequiredTier *bool               `json:"clearRequiredTier,omitempty"`
}

type UpdateCreatorProfileInput struct {
	DisplayName *string `json:"displayName,omitempty"`
	Niche       *string `json:"niche,omitempty"`
	Bio         *string `json:"bio,omitempty"`
}
