// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"

	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// requireActiveAdmin resolves the acting admin and rejects the operation
// before any entity is touched when the admin is missing or inactive.
func requireActiveAdmin(ctx context.Context, adminRepo repository.AdminRepository, adminID uuid.UUID) error {
	admin, err := adminRepo.FindByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return errors.Wrap(domainerrors.ErrAdminNotFound, "admin not found")
		}

		return errors.Wrap(err, "failed to find admin")
	}

	if !admin.IsActive {
		return errors.Wrap(domainerrors.ErrAdminInactive, "admin is not active")
	}

	return nil
}
