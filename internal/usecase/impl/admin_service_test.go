package impl

import (
	"context"
	"testing"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	mockRepo "backoffice/internal/mocks/repository"
	mockService "backoffice/internal/mocks/service"
	"backoffice/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type adminServiceMocks struct {
	adminRepo    *mockRepo.MockAdminRepository
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
}

func newAdminService(t *testing.T) (usecase.AdminUsecase, *adminServiceMocks) {
	m := &adminServiceMocks{
		adminRepo:    mockRepo.NewMockAdminRepository(t),
		hasher:       mockService.NewMockPasswordHasher(t),
		tokenService: mockService.NewMockTokenService(t),
	}
	service := NewAdminService(AdminServiceParams{
		AdminRepo:    m.adminRepo,
		Hasher:       m.hasher,
		TokenService: m.tokenService,
		Logger:       testLogger(),
	})

	return service, m
}

func TestAdminService_Login_Success(t *testing.T) {
	service, m := newAdminService(t)
	ctx := context.Background()

	admin := &entity.Admin{
		ID:           uuid.New(),
		Email:        "admin@example.com",
		PasswordHash: "hashed",
		IsActive:     true,
	}

	m.adminRepo.EXPECT().FindByEmail(ctx, admin.Email).Return(admin, nil)
	m.hasher.EXPECT().Check("secret", "hashed").Return(true)
	m.tokenService.EXPECT().GenerateToken(admin.ID, admin.Email).Return("token-abc", nil)

	output, err := service.Login(ctx, &usecase.LoginInput{Email: admin.Email, Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "token-abc", output.Token)
	assert.Equal(t, admin, output.Admin)
}

func TestAdminService_Login_WrongPassword(t *testing.T) {
	service, m := newAdminService(t)
	ctx := context.Background()

	admin := &entity.Admin{
		ID:           uuid.New(),
		Email:        "admin@example.com",
		PasswordHash: "hashed",
		IsActive:     true,
	}

	m.adminRepo.EXPECT().FindByEmail(ctx, admin.Email).Return(admin, nil)
	m.hasher.EXPECT().Check("wrong", "hashed").Return(false)

	_, err := service.Login(ctx, &usecase.LoginInput{Email: admin.Email, Password: "wrong"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

// Unknown emails produce the same credential error as a wrong password, so the
// response does not reveal which accounts exist.
func TestAdminService_Login_UnknownEmail(t *testing.T) {
	service, m := newAdminService(t)
	ctx := context.Background()

	m.adminRepo.EXPECT().FindByEmail(ctx, "nobody@example.com").Return(nil, repository.ErrAdminNotFound)

	_, err := service.Login(ctx, &usecase.LoginInput{Email: "nobody@example.com", Password: "secret"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAdminService_Login_InactiveAdmin(t *testing.T) {
	service, m := newAdminService(t)
	ctx := context.Background()

	admin := &entity.Admin{
		ID:           uuid.New(),
		Email:        "admin@example.com",
		PasswordHash: "hashed",
		IsActive:     false,
	}

	m.adminRepo.EXPECT().FindByEmail(ctx, admin.Email).Return(admin, nil)

	_, err := service.Login(ctx, &usecase.LoginInput{Email: admin.Email, Password: "secret"})
	assert.ErrorIs(t, err, domainerrors.ErrAdminInactive)

	m.hasher.AssertNotCalled(t, "Check")
}

func TestAdminService_GetAdmin_NotFound(t *testing.T) {
	service, m := newAdminService(t)
	ctx := context.Background()
	adminID := uuid.New()

	m.adminRepo.EXPECT().FindByID(ctx, adminID).Return(nil, repository.ErrAdminNotFound)

	_, err := service.GetAdmin(ctx, adminID)
	assert.ErrorIs(t, err, domainerrors.ErrAdminNotFound)
}
