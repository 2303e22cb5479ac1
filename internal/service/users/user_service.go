package users

import (
	"context"
	"errors"

	"github.com/ShadowMirage/Freight-Management/internal/domain"
	"github.com/ShadowMirage/Freight-Management/internal/repository"
	"github.com/google/uuid"
)

type UserUseCase interface {
	Register(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetOrCreateByPhone(ctx context.Context, phone string, role domain.UserRole) (*domain.User, error)
}

type UserService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) Register(ctx context.Context, user *domain.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	return s.repo.Create(ctx, user)
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

// GetOrCreateByPhone backs the conversational entry point, where the phone
// number is the only identity available.
func (s *UserService) GetOrCreateByPhone(ctx context.Context, phone string, role domain.UserRole) (*domain.User, error) {
	user, err := s.repo.GetByPhone(ctx, phone)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	user = &domain.User{ID: uuid.NewString(), PhoneNumber: phone, Role: role}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

var _ UserUseCase = (*UserService)(nil)
