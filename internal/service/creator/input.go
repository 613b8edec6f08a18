package creator

import (
	"github.com/ndvoronin/creatorpulse-backend/internal/domain"
)

// CreateProfileInput holds parameters for creating a creator profile.
type CreateProfileInput struct {
	DisplayName string
	Niche       string
	Bio         *string
}

// Validate validates the create profile input.
func (i CreateProfileInput) Validate() error {
	var errs []domain.FieldError

	if i.DisplayName == "" {
		errs = append(errs, domain.FieldError{Field: "display_name", Message: "required"})
	} else if len(i.DisplayName) > 100 {
		errs = append(errs, domain.FieldError{Field: "display_name", Message: "too long"})
	}

	if i.Niche == "" {
		errs = append(errs, domain.FieldError{Field: "niche", Message: "required"})
	} else if len(i.Niche) > 100 {
		errs = append(errs, domain.FieldError{Field: "niche", Message: "too long"})
	}

	if i.Bio != nil && len(*i.Bio) > 2000 {
		errs = append(errs, domain.FieldError{Field: "bio", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateProfileInput holds parameters for updating a creator profile.
// Nil fields are left unchanged.
type UpdateProfileInput struct {
	DisplayName *string
	Niche       *string
	Bio         *string
}

// Validate validates the update profile input.
func (i UpdateProfileInput) Validate() error {
	var errs []domain.FieldError

	if i.DisplayName != nil && (*i.DisplayName == "" || len(*i.DisplayName) > 100) {
		errs = append(errs, domain.FieldError{Field: "display_name", Message: "must be 1-100 characters"})
	}
	if i.Niche != nil && (*i.Niche == "" || len(*i.Niche) > 100) {
		errs = append(errs, domain.FieldError{Field: "niche", Message: "must be 1-100 characters"})
	}
	if i.Bio != nil && len(*i.Bio) > 2000 {
		errs = append(errs, domain.FieldError{Field: "bio", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
