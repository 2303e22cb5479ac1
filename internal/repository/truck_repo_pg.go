package repository

import (
	"context"
	"errors"
	"time"

	"github.com/ShadowMirage/Freight-Management/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TruckRepository interface {
	Create(ctx context.Context, truck *domain.Truck) error
	GetByID(ctx context.Context, id string) (*domain.Truck, error)
	List(ctx context.Context, limit, offset int) ([]domain.Truck, error)
	ListOpen(ctx context.Context) ([]domain.Truck, error)
	FindCandidatesForLoad(ctx context.Context, load *domain.Load, limit int) ([]domain.Truck, error)
}

type PGTruckRepository struct {
	db *pgxpool.Pool
}

func NewTruckRepository(db *pgxpool.Pool) TruckRepository {
	return &PGTruckRepository{db: db}
}

const truckColumns = `id, driver_id, source_city, destination_city, source_lat, source_lng, dest_lat, dest_lng, departure_time, capacity_total, capacity_available, status, created_at, updated_at`

func scanTruck(row pgx.Row) (*domain.Truck, error) {
	var t domain.Truck
	if err := row.Scan(&t.ID, &t.DriverID, &t.SourceCity, &t.DestinationCity, &t.SourceLat, &t.SourceLng, &t.DestLat, &t.DestLng, &t.DepartureTime, &t.CapacityTotal, &t.CapacityAvailable, &t.Status, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *PGTruckRepository) Create(ctx context.Context, truck *domain.Truck) error {
	truck.Status = domain.FreightStatusOpen
	return r.db.QueryRow(ctx, `INSERT INTO trucks (id, driver_id, source_city, destination_city, source_lat, source_lng, dest_lat, dest_lng, departure_time, capacity_total, capacity_available, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING created_at, updated_at`,
		truck.ID, truck.DriverID, truck.SourceCity, truck.DestinationCity, truck.SourceLat, truck.SourceLng, truck.DestLat, truck.DestLng, truck.DepartureTime, truck.CapacityTotal, truck.CapacityAvailable, truck.Status).
		Scan(&truck.CreatedAt, &truck.UpdatedAt)
}

func (r *PGTruckRepository) GetByID(ctx context.Context, id string) (*domain.Truck, error) {
	truck, err := scanTruck(r.db.QueryRow(ctx, `SELECT `+truckColumns+` FROM trucks WHERE id=$1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return truck, err
}

func (r *PGTruckRepository) List(ctx context.Context, limit, offset int) ([]domain.Truck, error) {
	rows, err := r.db.Query(ctx, `SELECT `+truckColumns+` FROM trucks ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	return collectTrucks(rows)
}

func (r *PGTruckRepository) ListOpen(ctx context.Context) ([]domain.Truck, error) {
	rows, err := r.db.Query(ctx, `SELECT `+truckColumns+` FROM trucks WHERE status=$1 ORDER BY departure_time`, domain.FreightStatusOpen)
	if err != nil {
		return nil, err
	}
	return collectTrucks(rows)
}

// FindCandidatesForLoad is the bounded matching lookup: open trucks on the
// same route with enough free capacity, departing within a day of the load's
// deadline.
func (r *PGTruckRepository) FindCandidatesForLoad(ctx context.Context, load *domain.Load, limit int) ([]domain.Truck, error) {
	rows, err := r.db.Query(ctx, `SELECT `+truckColumns+` FROM trucks
		WHERE source_city ILIKE $1
		  AND destination_city ILIKE $2
		  AND capacity_available >= $3
		  AND status = $4
		  AND departure_time BETWEEN $5 AND $6
		ORDER BY departure_time
		LIMIT $7`,
		load.PickupCity, load.DropCity, load.Weight, domain.FreightStatusOpen,
		load.Deadline.Add(-24*time.Hour), load.Deadline.Add(24*time.Hour), limit)
	if err != nil {
		return nil, err
	}
	return collectTrucks(rows)
}

func collectTrucks(rows pgx.Rows) ([]domain.Truck, error) {
	defer rows.Close()

	trucks := make([]domain.Truck, 0)
	for rows.Next() {
		t, err := scanTruck(rows)
		if err != nil {
			return nil, err
		}
		trucks = append(trucks, *t)
	}
	return trucks, rows.Err()
}

var _ TruckRepository = (*PGTruckRepository)(nil)
