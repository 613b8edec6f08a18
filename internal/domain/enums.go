package domain

// Tier represents a paid subscription level. Tiers are ordered:
// T1 < T2 < T3. A subscriber at tier N can access content requiring
// tier N or below.
type Tier string

const (
	TierT1 Tier = "T1"
	TierT2 Tier = "T2"
	TierT3 Tier = "T3"
)

func (t Tier) String() string { return string(t) }

func (t Tier) IsValid() bool {
	switch t {
	case TierT1, TierT2, TierT3:
		return true
	}
	return false
}

// Rank returns the ordinal position of the tier (T1=1 .. T3=3).
// Unknown tiers rank 0, below every valid tier.
func (t Tier) Rank() int {
	switch t {
	case TierT1:
		return 1
	case TierT2:
		return 2
	case TierT3:
		return 3
	}
	return 0
}

// AtLeast reports whether t grants access to content requiring `required`.
func (t Tier) AtLeast(required Tier) bool {
	return t.Rank() >= required.Rank()
}

// BatchSource identifies how a comment batch entered the system.
type BatchSource string

const (
	BatchSourcePlatformExport BatchSource = "PLATFORM_EXPORT"
	BatchSourceCSVUpload      BatchSource = "CSV_UPLOAD"
	BatchSourceManualPaste    BatchSource = "MANUAL_PASTE"
)

func (s BatchSource) String() string { return string(s) }

func (s BatchSource) IsValid() bool {
	switch s {
	case BatchSourcePlatformExport, BatchSourceCSVUpload, BatchSourceManualPaste:
		return true
	}
	return false
}

// BatchStatus tracks a comment batch through the analysis pipeline.
// Transitions: IMPORTED → ANALYZING → ANALYZED → IDEAS_GENERATED.
// A batch may re-enter ANALYZING from ANALYZED (re-analysis is allowed).
type BatchStatus string

const (
	BatchStatusImported       BatchStatus = "IMPORTED"
	BatchStatusAnalyzing      BatchStatus = "ANALYZING"
	BatchStatusAnalyzed       BatchStatus = "ANALYZED"
	BatchStatusIdeasGenerated BatchStatus = "IDEAS_GENERATED"
)

func (s BatchStatus) String() string { return string(s) }

func (s BatchStatus) IsValid() bool {
	switch s {
	case BatchStatusImported, BatchStatusAnalyzing, BatchStatusAnalyzed, BatchStatusIdeasGenerated:
		return true
	}
	return false
}

// Sentiment is the classification assigned to a single comment.
type Sentiment string

const (
	SentimentPositive Sentiment = "POSITIVE"
	SentimentNegative Sentiment = "NEGATIVE"
	SentimentNeutral  Sentiment = "NEUTRAL"
)

func (s Sentiment) String() string { return string(s) }

func (s Sentiment) IsValid() bool {
	switch s {
	case SentimentPositive, SentimentNegative, SentimentNeutral:
		return true
	}
	return false
}

// IdeaType categorizes a generated content idea.
type IdeaType string

const (
	IdeaTypeVideo              IdeaType = "VIDEO"
	IdeaTypeMiniCourse         IdeaType = "MINI_COURSE"
	IdeaTypeLiveQA             IdeaType = "LIVE_QA"
	IdeaTypeCommunityChallenge IdeaType = "COMMUNITY_CHALLENGE"
)

func (t IdeaType) String() string { return string(t) }

func (t IdeaType) IsValid() bool {
	switch t {
	case IdeaTypeVideo, IdeaTypeMiniCourse, IdeaTypeLiveQA, IdeaTypeCommunityChallenge:
		return true
	}
	return false
}

// IdeaStatus is the creator-driven lifecycle state of an idea suggestion.
type IdeaStatus string

const (
	IdeaStatusNew         IdeaStatus = "NEW"
	IdeaStatusSaved       IdeaStatus = "SAVED"
	IdeaStatusImplemented IdeaStatus = "IMPLEMENTED"
)

func (s IdeaStatus) String() string { return string(s) }

func (s IdeaStatus) IsValid() bool {
	switch s {
	case IdeaStatusNew, IdeaStatusSaved, IdeaStatusImplemented:
		return true
	}
	return false
}

// ContentStatus is the publication state of a content item.
type ContentStatus string

const (
	ContentStatusDraft     ContentStatus = "DRAFT"
	ContentStatusPublished ContentStatus = "PUBLISHED"
)

func (s ContentStatus) String() string { return string(s) }

func (s ContentStatus) IsValid() bool {
	switch s {
	case ContentStatusDraft, ContentStatusPublished:
		return true
	}
	return false
}

// ContentType categorizes a content item.
type ContentType string

const (
	ContentTypeVideo    ContentType = "VIDEO"
	ContentTypeArticle  ContentType = "ARTICLE"
	ContentTypePodcast  ContentType = "PODCAST"
	ContentTypeDownload ContentType = "DOWNLOAD"
)

func (t ContentType) String() string { return string(t) }

func (t ContentType) IsValid() bool {
	switch t {
	case ContentTypeVideo, ContentTypeArticle, ContentTypePodcast, ContentTypeDownload:
		return true
	}
	return false
}

// EventType identifies a domain event recorded in the activity log.
type EventType string

const (
	EventUserRegistered         EventType = "USER_REGISTERED"
	EventContentPublished       EventType = "CONTENT_PUBLISHED"
	EventCommentBatchImported   EventType = "COMMENT_BATCH_IMPORTED"
	EventSentimentAnalyzed      EventType = "SENTIMENT_ANALYZED"
	EventIdeasGenerated         EventType = "IDEAS_GENERATED"
	EventSubscriptionStarted    EventType = "SUBSCRIPTION_STARTED"
	EventSubscriptionTierChange EventType = "SUBSCRIPTION_TIER_CHANGED"
)

func (t EventType) String() string { return string(t) }

func (t EventType) IsValid() bool {
	switch t {
	case EventUserRegistered, EventContentPublished, EventCommentBatchImported,
		EventSentimentAnalyzed, EventIdeasGenerated, EventSubscriptionStarted,
		EventSubscriptionTierChange:
		return true
	}
	return false
}

// UserRole controls access to admin-only operations.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	return r == UserRoleUser || r == UserRoleAdmin
}
