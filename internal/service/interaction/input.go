package interaction

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/tastebite-backend/internal/domain"
)

const maxCommentLength = 2000

// RateInput holds the parameters for rating a recipe.
type RateInput struct {
	RecipeID uuid.UUID
	Value    int
}

// Validate checks all fields and collects all errors.
func (i RateInput) Validate() error {
	var errs []domain.FieldError

	if i.RecipeID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "recipe_id", Message: "required"})
	}
	if i.Value < domain.MinRatingValue || i.Value > domain.MaxRatingValue {
		errs = append(errs, domain.FieldError{
			Field:   "value",
			Message: fmt.Sprintf("must be between %d and %d", domain.MinRatingValue, domain.MaxRatingValue),
		})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CommentInput holds the parameters for commenting on a recipe.
type CommentInput struct {
	RecipeID uuid.UUID
	Body     string
}

// Validate checks all fields and collects all errors.
func (i CommentInput) Validate() error {
	var errs []domain.FieldError

	if i.RecipeID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "recipe_id", Message: "required"})
	}
	body := strings.TrimSpace(i.Body)
	if body == "" {
		errs = append(errs, domain.FieldError{Field: "body", Message: "required"})
	}
	if utf8.RuneCountInString(body) > maxCommentLength {
		errs = append(errs, domain.FieldError{Field: "body", Message: fmt.Sprintf("max %d characters", maxCommentLength)})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
