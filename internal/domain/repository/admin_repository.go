package repository

import (
	"context"

	"backoffice/internal/domain/entity"
	"backoffice/internal/errors"

	"github.com/google/uuid"
)

// ErrAdminNotFound is returned when an admin is not found.
var ErrAdminNotFound = errors.New("admin not found")

// AdminRepository defines the interface for admin account lookups. Account
// CRUD lives in a separate service; this one only resolves identities.
type AdminRepository interface {
	// FindByID retrieves an admin by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Admin, error)

	// FindByEmail retrieves an admin by e-mail for login.
	FindByEmail(ctx context.Context, email string) (*entity.Admin, error)
}
