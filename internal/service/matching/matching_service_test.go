package matching

import (
	"context"
	"testing"
	"time"

	"github.com/ShadowMirage/Freight-Management/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockTruckRepository struct {
	mock.Mock
}

func (m *MockTruckRepository) Create(ctx context.Context, truck *domain.Truck) error {
	args := m.Called(ctx, truck)
	return args.Error(0)
}

func (m *MockTruckRepository) GetByID(ctx context.Context, id string) (*domain.Truck, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Truck), args.Error(1)
}

func (m *MockTruckRepository) List(ctx context.Context, limit, offset int) ([]domain.Truck, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]domain.Truck), args.Error(1)
}

func (m *MockTruckRepository) ListOpen(ctx context.Context) ([]domain.Truck, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Truck), args.Error(1)
}

func (m *MockTruckRepository) FindCandidatesForLoad(ctx context.Context, load *domain.Load, limit int) ([]domain.Truck, error) {
	args := m.Called(ctx, load, limit)
	return args.Get(0).([]domain.Truck), args.Error(1)
}

type MockLoadRepository struct {
	mock.Mock
}

func (m *MockLoadRepository) Create(ctx context.Context, load *domain.Load) error {
	args := m.Called(ctx, load)
	return args.Error(0)
}

func (m *MockLoadRepository) GetByID(ctx context.Context, id string) (*domain.Load, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Load), args.Error(1)
}

func (m *MockLoadRepository) List(ctx context.Context, limit, offset int) ([]domain.Load, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]domain.Load), args.Error(1)
}

func (m *MockLoadRepository) FindCandidatesForTruck(ctx context.Context, truck *domain.Truck, limit int) ([]domain.Load, error) {
	args := m.Called(ctx, truck, limit)
	return args.Get(0).([]domain.Load), args.Error(1)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetPendingMatches(ctx context.Context, phone string) (*domain.PendingMatches, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PendingMatches), args.Error(1)
}

func (m *MockCache) SetPendingMatches(ctx context.Context, phone string, pm *domain.PendingMatches) error {
	args := m.Called(ctx, phone, pm)
	return args.Error(0)
}

func (m *MockCache) ClearPendingMatches(ctx context.Context, phone string) error {
	args := m.Called(ctx, phone)
	return args.Error(0)
}

func TestService_LoadsForTruck(t *testing.T) {
	mockTrucks := &MockTruckRepository{}
	mockLoads := &MockLoadRepository{}
	service := NewService(mockTrucks, mockLoads, nil, 5)

	ctx := context.Background()
	truck := &domain.Truck{
		ID:                "truck-1",
		SourceCity:        "Nairobi",
		DestinationCity:   "Mombasa",
		CapacityAvailable: 20,
		DepartureTime:     time.Now().Add(48 * time.Hour),
		Status:            domain.FreightStatusOpen,
	}
	candidates := []domain.Load{{ID: "load-1"}, {ID: "load-2"}}

	mockTrucks.On("GetByID", ctx, "truck-1").Return(truck, nil).Once()
	mockLoads.On("FindCandidatesForTruck", ctx, truck, 5).Return(candidates, nil).Once()

	got, loads, err := service.LoadsForTruck(ctx, "truck-1")

	assert.NoError(t, err)
	assert.Equal(t, truck, got)
	assert.Len(t, loads, 2)
	mockTrucks.AssertExpectations(t)
	mockLoads.AssertExpectations(t)
}

func TestService_TrucksForLoad(t *testing.T) {
	mockTrucks := &MockTruckRepository{}
	mockLoads := &MockLoadRepository{}
	service := NewService(mockTrucks, mockLoads, nil, 5)

	ctx := context.Background()
	load := &domain.Load{ID: "load-1", PickupCity: "Nairobi", DropCity: "Mombasa", Weight: 12}
	candidates := []domain.Truck{{ID: "truck-1"}}

	mockLoads.On("GetByID", ctx, "load-1").Return(load, nil).Once()
	mockTrucks.On("FindCandidatesForLoad", ctx, load, 5).Return(candidates, nil).Once()

	got, trucks, err := service.TrucksForLoad(ctx, "load-1")

	assert.NoError(t, err)
	assert.Equal(t, load, got)
	assert.Len(t, trucks, 1)
}

func TestService_ResolveSelection(t *testing.T) {
	mockCache := &MockCache{}
	service := NewService(nil, nil, mockCache, 5)

	ctx := context.Background()
	pm := &domain.PendingMatches{
		Kind:     "truck",
		OwnID:    "truck-1",
		MatchIDs: []string{"load-1", "load-2", "load-3"},
	}

	mockCache.On("GetPendingMatches", ctx, "+254700000001").Return(pm, nil).Once()
	mockCache.On("ClearPendingMatches", ctx, "+254700000001").Return(nil).Once()

	id, err := service.ResolveSelection(ctx, "+254700000001", 2)

	assert.NoError(t, err)
	assert.Equal(t, "load-2", id)
	mockCache.AssertExpectations(t)
}

func TestService_ResolveSelection_Errors(t *testing.T) {
	testCases := []struct {
		name      string
		pending   *domain.PendingMatches
		selection int
		wantErr   error
	}{
		{"no pending matches", nil, 1, ErrNoPendingMatches},
		{"selection too low", &domain.PendingMatches{MatchIDs: []string{"a"}}, 0, ErrSelectionOutOfRange},
		{"selection too high", &domain.PendingMatches{MatchIDs: []string{"a"}}, 2, ErrSelectionOutOfRange},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockCache := &MockCache{}
			service := NewService(nil, nil, mockCache, 5)
			mockCache.On("GetPendingMatches", mock.Anything, "+254700000001").Return(tc.pending, nil).Once()

			_, err := service.ResolveSelection(context.Background(), "+254700000001", tc.selection)
			assert.ErrorIs(t, err, tc.wantErr)
			mockCache.AssertNotCalled(t, "ClearPendingMatches")
		})
	}
}

func TestService_RememberMatches(t *testing.T) {
	mockCache := &MockCache{}
	service := NewService(nil, nil, mockCache, 5)

	ctx := context.Background()
	mockCache.On("SetPendingMatches", ctx, "+254700000001", mock.AnythingOfType("*domain.PendingMatches")).
		Run(func(args mock.Arguments) {
			pm := args.Get(2).(*domain.PendingMatches)
			assert.Equal(t, "truck", pm.Kind)
			assert.Equal(t, []string{"load-1"}, pm.MatchIDs)
		}).Return(nil).Once()

	err := service.RememberMatches(ctx, "+254700000001", "truck", "truck-1", []string{"load-1"})
	assert.NoError(t, err)
	mockCache.AssertExpectations(t)
}
