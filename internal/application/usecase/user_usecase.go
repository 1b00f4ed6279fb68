package usecase

import (
	"context"
	"time"

	"github.com/sekolahku/inventaris-api/internal/application/dto"
	"github.com/sekolahku/inventaris-api/internal/domain"
	"github.com/sekolahku/inventaris-api/internal/domain/entity"
	"github.com/sekolahku/inventaris-api/internal/domain/repository"
)

// UserUseCase covers Admin user management: listing accounts and
// changing roles.
type UserUseCase struct {
	userRepo repository.UserRepository
}

// NewUserUseCase builds the user usecase.
func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo}
}

// List returns all users.
func (uc *UserUseCase) List(ctx context.Context) ([]*entity.User, error) {
	return uc.userRepo.List(ctx)
}

// UpdateRole sets a user's role to one of the closed set of values.
func (uc *UserUseCase) UpdateRole(ctx context.Context, userID string, in dto.UpdateRoleRequest) (*entity.User, error) {
	role := entity.Role(in.Role)
	if !role.IsValid() {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	user.Role = role
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
