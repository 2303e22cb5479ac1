package matching

import (
	"context"
	"errors"
	"time"

	"github.com/ShadowMirage/Freight-Management/internal/domain"
	"github.com/ShadowMirage/Freight-Management/internal/repository"
)

var (
	ErrNoPendingMatches    = errors.New("no pending matches for this phone")
	ErrSelectionOutOfRange = errors.New("selection out of range")
)

type MatchingUseCase interface {
	LoadsForTruck(ctx context.Context, truckID string) (*domain.Truck, []domain.Load, error)
	TrucksForLoad(ctx context.Context, loadID string) (*domain.Load, []domain.Truck, error)
	RememberMatches(ctx context.Context, phone, kind, ownID string, matchIDs []string) error
	ResolveSelection(ctx context.Context, phone string, selection int) (string, error)
}

// Cache holds the last match list presented to a phone number, so a later
// "book N" resolves to a concrete id across restarts and instances.
type Cache interface {
	GetPendingMatches(ctx context.Context, phone string) (*domain.PendingMatches, error)
	SetPendingMatches(ctx context.Context, phone string, pm *domain.PendingMatches) error
	ClearPendingMatches(ctx context.Context, phone string) error
}

type Service struct {
	trucks repository.TruckRepository
	loads  repository.LoadRepository
	cache  Cache
	limit  int
}

func NewService(trucks repository.TruckRepository, loads repository.LoadRepository, cache Cache, limit int) *Service {
	return &Service{trucks: trucks, loads: loads, cache: cache, limit: limit}
}

func (s *Service) LoadsForTruck(ctx context.Context, truckID string) (*domain.Truck, []domain.Load, error) {
	truck, err := s.trucks.GetByID(ctx, truckID)
	if err != nil {
		return nil, nil, err
	}
	loads, err := s.loads.FindCandidatesForTruck(ctx, truck, s.limit)
	if err != nil {
		return nil, nil, err
	}
	return truck, loads, nil
}

func (s *Service) TrucksForLoad(ctx context.Context, loadID string) (*domain.Load, []domain.Truck, error) {
	load, err := s.loads.GetByID(ctx, loadID)
	if err != nil {
		return nil, nil, err
	}
	trucks, err := s.trucks.FindCandidatesForLoad(ctx, load, s.limit)
	if err != nil {
		return nil, nil, err
	}
	return load, trucks, nil
}

func (s *Service) RememberMatches(ctx context.Context, phone, kind, ownID string, matchIDs []string) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.SetPendingMatches(ctx, phone, &domain.PendingMatches{
		Kind:        kind,
		OwnID:       ownID,
		MatchIDs:    matchIDs,
		PresentedAt: time.Now(),
	})
}

// ResolveSelection maps a 1-based selection index to the resource id it was
// presented against, and clears the pending list so the selection is one-shot.
func (s *Service) ResolveSelection(ctx context.Context, phone string, selection int) (string, error) {
	pm, err := s.cache.GetPendingMatches(ctx, phone)
	if err != nil {
		return "", err
	}
	if pm == nil || len(pm.MatchIDs) == 0 {
		return "", ErrNoPendingMatches
	}
	if selection < 1 || selection > len(pm.MatchIDs) {
		return "", ErrSelectionOutOfRange
	}

	id := pm.MatchIDs[selection-1]
	_ = s.cache.ClearPendingMatches(ctx, phone)
	return id, nil
}

var _ MatchingUseCase = (*Service)(nil)
