package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category groups products. Soft deleting a category severs the categoryId
// link on every product that referenced it; the products themselves stay
// sellable.
type Category struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
