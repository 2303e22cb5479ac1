package repository

import (
	"context"
	"errors"
	"time"

	"github.com/ShadowMirage/Freight-Management/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type LoadRepository interface {
	Create(ctx context.Context, load *domain.Load) error
	GetByID(ctx context.Context, id string) (*domain.Load, error)
	List(ctx context.Context, limit, offset int) ([]domain.Load, error)
	FindCandidatesForTruck(ctx context.Context, truck *domain.Truck, limit int) ([]domain.Load, error)
}

type PGLoadRepository struct {
	db *pgxpool.Pool
}

func NewLoadRepository(db *pgxpool.Pool) LoadRepository {
	return &PGLoadRepository{db: db}
}

const loadColumns = `id, shipper_id, pickup_city, drop_city, pickup_lat, pickup_lng, drop_lat, drop_lng, weight, category, deadline, status, created_at, updated_at`

func scanLoad(row pgx.Row) (*domain.Load, error) {
	var l domain.Load
	if err := row.Scan(&l.ID, &l.ShipperID, &l.PickupCity, &l.DropCity, &l.PickupLat, &l.PickupLng, &l.DropLat, &l.DropLng, &l.Weight, &l.Category, &l.Deadline, &l.Status, &l.CreatedAt, &l.UpdatedAt); err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *PGLoadRepository) Create(ctx context.Context, load *domain.Load) error {
	load.Status = domain.FreightStatusOpen
	if load.Category == "" {
		load.Category = "General"
	}
	return r.db.QueryRow(ctx, `INSERT INTO loads (id, shipper_id, pickup_city, drop_city, pickup_lat, pickup_lng, drop_lat, drop_lng, weight, category, deadline, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING created_at, updated_at`,
		load.ID, load.ShipperID, load.PickupCity, load.DropCity, load.PickupLat, load.PickupLng, load.DropLat, load.DropLng, load.Weight, load.Category, load.Deadline, load.Status).
		Scan(&load.CreatedAt, &load.UpdatedAt)
}

func (r *PGLoadRepository) GetByID(ctx context.Context, id string) (*domain.Load, error) {
	load, err := scanLoad(r.db.QueryRow(ctx, `SELECT `+loadColumns+` FROM loads WHERE id=$1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return load, err
}

func (r *PGLoadRepository) List(ctx context.Context, limit, offset int) ([]domain.Load, error) {
	rows, err := r.db.Query(ctx, `SELECT `+loadColumns+` FROM loads ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	return collectLoads(rows)
}

// FindCandidatesForTruck mirrors FindCandidatesForLoad from the truck side.
func (r *PGLoadRepository) FindCandidatesForTruck(ctx context.Context, truck *domain.Truck, limit int) ([]domain.Load, error) {
	rows, err := r.db.Query(ctx, `SELECT `+loadColumns+` FROM loads
		WHERE pickup_city ILIKE $1
		  AND drop_city ILIKE $2
		  AND weight <= $3
		  AND status = $4
		  AND deadline BETWEEN $5 AND $6
		ORDER BY deadline
		LIMIT $7`,
		truck.SourceCity, truck.DestinationCity, truck.CapacityAvailable, domain.FreightStatusOpen,
		truck.DepartureTime.Add(-24*time.Hour), truck.DepartureTime.Add(24*time.Hour), limit)
	if err != nil {
		return nil, err
	}
	return collectLoads(rows)
}

func collectLoads(rows pgx.Rows) ([]domain.Load, error) {
	defer rows.Close()

	loads := make([]domain.Load, 0)
	for rows.Next() {
		l, err := scanLoad(rows)
		if err != nil {
			return nil, err
		}
		loads = append(loads, *l)
	}
	return loads, rows.Err()
}

var _ LoadRepository = (*PGLoadRepository)(nil)
