package ideas

import (
	"github.com/google/uuid"

	"github.com/ndvoronin/creatorpulse-backend/internal/domain"
)

// GenerateInput carries the parameters for one idea generation run.
type GenerateInput struct {
	SnapshotID uuid.UUID
	TierTarget *string // a Tier value or "ALL"; nil means "ALL"
}

// Validate checks the input fields.
func (in GenerateInput) Validate() error {
	var errs []domain.FieldError

	if in.SnapshotID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "snapshot_id", Message: "snapshot id is required"})
	}
	if in.TierTarget != nil && !domain.ValidTierTarget(*in.TierTarget) {
		errs = append(errs, domain.FieldError{Field: "tier_target", Message: "must be T1, T2, T3 or ALL"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// tierTarget resolves the effective target, defaulting to the whole audience.
func (in GenerateInput) tierTarget() string {
	if in.TierTarget == nil {
		return domain.TierTargetAll
	}
	return *in.TierTarget
}

// ListInput carries filters for listing a creator's ideas.
type ListInput struct {
	CreatorID uuid.UUID
	Status    *domain.IdeaStatus
	Limit     int
	Offset    int
}

// Validate checks the input fields.
func (in ListInput) Validate() error {
	var errs []domain.FieldError

	if in.CreatorID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "creator_id", Message: "creator id is required"})
	}
	if in.Status != nil && !in.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown idea status"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
