package content

import (
	"github.com/ndvoronin/creatorpulse-backend/internal/domain"
)

// CreateInput holds parameters for creating a content item.
type CreateInput struct {
	Title        string
	Type         domain.ContentType
	IsPremium    bool
	RequiredTier *domain.Tier
}

// Validate validates the create input.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.Title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(i.Title) > 200 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}

	if !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "content_type", Message: "unknown content type"})
	}

	if i.RequiredTier != nil {
		if !i.IsPremium {
			errs = append(errs, domain.FieldError{Field: "required_tier", Message: "only premium content can require a tier"})
		} else if !i.RequiredTier.IsValid() {
			errs = append(errs, domain.FieldError{Field: "required_tier", Message: "must be T1, T2 or T3"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds parameters for updating a content item.
// Nil fields are left unchanged.
type UpdateInput struct {
	Title        *string
	Type         *domain.ContentType
	IsPremium    *bool
	RequiredTier *domain.Tier
	ClearTier    bool
}

// Validate validates the update input.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.Title != nil && (*i.Title == "" || len(*i.Title) > 200) {
		errs = append(errs, domain.FieldError{Field: "title", Message: "must be 1-200 characters"})
	}
	if i.Type != nil && !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "content_type", Message: "unknown content type"})
	}
	if i.RequiredTier != nil {
		if i.ClearTier {
			errs = append(errs, domain.FieldError{Field: "required_tier", Message: "cannot both set and clear"})
		} else if !i.RequiredTier.IsValid() {
			errs = append(errs, domain.FieldError{Field: "required_tier", Message: "must be T1, T2 or T3"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
