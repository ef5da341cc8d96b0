package entity

import (
	"time"

	"github.com/google/uuid"
)

// Admin is a back-office operator. Every write operation in this service
// checks that the acting admin exists and is active before touching any
// entity.
type Admin struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
