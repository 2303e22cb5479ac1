package trucks

import (
	"context"

	"github.com/ShadowMirage/Freight-Management/internal/domain"
	"github.com/ShadowMirage/Freight-Management/internal/repository"
	"github.com/google/uuid"
)

type TruckUseCase interface {
	Create(ctx context.Context, truck *domain.Truck) error
	GetByID(ctx context.Context, id string) (*domain.Truck, error)
	List(ctx context.Context, limit, offset int) ([]domain.Truck, error)
	ListOpen(ctx context.Context) ([]domain.Truck, error)
}

type Cache interface {
	GetOpenTrucks(ctx context.Context) ([]domain.Truck, error)
	SetOpenTrucks(ctx context.Context, trucks []domain.Truck) error
}

type TruckService struct {
	repo  repository.TruckRepository
	cache Cache
}

func NewTruckService(repo repository.TruckRepository, cache Cache) *TruckService {
	return &TruckService{repo: repo, cache: cache}
}

func (s *TruckService) Create(ctx context.Context, truck *domain.Truck) error {
	if truck.ID == "" {
		truck.ID = uuid.NewString()
	}
	return s.repo.Create(ctx, truck)
}

func (s *TruckService) GetByID(ctx context.Context, id string) (*domain.Truck, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *TruckService) List(ctx context.Context, limit, offset int) ([]domain.Truck, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *TruckService) ListOpen(ctx context.Context) ([]domain.Truck, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetOpenTrucks(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	trucks, err := s.repo.ListOpen(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetOpenTrucks(ctx, trucks)
	}
	return trucks, nil
}

var _ TruckUseCase = (*TruckService)(nil)
