package domain

import (
	"time"

	"github.com/google/uuid"
)

// Rating bounds.
const (
	MinRatingValue = 1
	MaxRatingValue = 5
)

// Favorite marks a recipe as favorited by a user. Unique per (user, recipe).
type Favorite struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	RecipeID  uuid.UUID
	CreatedAt time.Time
}

// Rating is a user's 1..5 score for a recipe. Unique per (user, recipe).
// RatedAt decides which value wins when two ratings are merged.
type Rating struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	RecipeID uuid.UUID
	Value    int
	RatedAt  time.Time
}

// Comment is free text on a recipe. A user may comment many times.
type Comment struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	RecipeID  uuid.UUID
	Body      string
	CreatedAt time.Time
}
