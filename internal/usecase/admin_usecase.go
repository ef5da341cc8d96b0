// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"backoffice/internal/domain/entity"

	"github.com/google/uuid"
)

// LoginInput represents admin login credentials
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginOutput represents the result of a successful login
type LoginOutput struct {
	Token string        `json:"token"`
	Admin *entity.Admin `json:"admin"`
}

// AdminUsecase defines the interface for admin identity use cases
type AdminUsecase interface {
	// Login authenticates an admin and issues an access token
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// GetAdmin retrieves an admin by ID
	GetAdmin(ctx context.Context, adminID uuid.UUID) (*entity.Admin, error)
}
