package registry

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/tastebite-backend/internal/domain"
)

const (
	maxExternalIDLength = 64
	maxTitleLength      = 255
	maxIngredients      = 100
)

// ImportInput holds a client-supplied recipe to import under a catalog id.
type ImportInput struct {
	ExternalID string
	Payload    domain.RecipePayload
}

// Validate checks all fields and collects all errors.
func (i ImportInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, validateExternalID(i.ExternalID)...)

	title := strings.TrimSpace(i.Payload.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		errs = append(errs, domain.FieldError{Field: "title", Message: fmt.Sprintf("max %d characters", maxTitleLength)})
	}
	if strings.TrimSpace(i.Payload.Instructions) == "" {
		errs = append(errs, domain.FieldError{Field: "instructions", Message: "required"})
	}

	if len(i.Payload.Ingredients) > maxIngredients {
		errs = append(errs, domain.FieldError{Field: "ingredients", Message: fmt.Sprintf("max %d items", maxIngredients)})
	}
	for k, ing := range i.Payload.Ingredients {
		if strings.TrimSpace(ing.Name) == "" {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("ingredients[%d].name", k), Message: "required"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateExternalID(id string) []domain.FieldError {
	id = strings.TrimSpace(id)
	if id == "" {
		return []domain.FieldError{{Field: "external_id", Message: "required"}}
	}
	if len(id) > maxExternalIDLength {
		return []domain.FieldError{{Field: "external_id", Message: fmt.Sprintf("max %d characters", maxExternalIDLength)}}
	}
	return nil
}
