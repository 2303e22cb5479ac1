package loads

import (
	"context"

	"github.com/ShadowMirage/Freight-Management/internal/domain"
	"github.com/ShadowMirage/Freight-Management/internal/repository"
	"github.com/google/uuid"
)

type LoadUseCase interface {
	Create(ctx context.Context, load *domain.Load) error
	GetByID(ctx context.Context, id string) (*domain.Load, error)
	List(ctx context.Context, limit, offset int) ([]domain.Load, error)
}

type LoadService struct {
	repo repository.LoadRepository
}

func NewLoadService(repo repository.LoadRepository) *LoadService {
	return &LoadService{repo: repo}
}

func (s *LoadService) Create(ctx context.Context, load *domain.Load) error {
	if load.ID == "" {
		load.ID = uuid.NewString()
	}
	return s.repo.Create(ctx, load)
}

func (s *LoadService) GetByID(ctx context.Context, id string) (*domain.Load, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *LoadService) List(ctx context.Context, limit, offset int) ([]domain.Load, error) {
	return s.repo.List(ctx, limit, offset)
}

var _ LoadUseCase = (*LoadService)(nil)
