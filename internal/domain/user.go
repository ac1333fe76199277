package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an account known to the system. IsSystem marks the service
// account that owns canonical catalog recipes.
type User struct {
	ID        uuid.UUID
	Email     string
	Name      string
	IsSystem  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
