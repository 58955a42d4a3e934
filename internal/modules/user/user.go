package user

import (
	"time"

	"github.com/google/uuid"
)

// User is a back-office account. Only whitelisted emails can reach
// the dashboard, but accounts exist independently of the whitelist so
// access can be granted or revoked without touching stored rows.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
