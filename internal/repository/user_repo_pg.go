package repository

import (
	"context"
	"errors"

	"github.com/ShadowMirage/Freight-Management/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByPhone(ctx context.Context, phone string) (*domain.User, error)
}

type PGUserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) UserRepository {
	return &PGUserRepository{db: db}
}

func (r *PGUserRepository) Create(ctx context.Context, user *domain.User) error {
	return r.db.QueryRow(ctx, `INSERT INTO users (id, phone_number, name, role) VALUES ($1, $2, $3, $4) RETURNING created_at`,
		user.ID, user.PhoneNumber, user.Name, user.Role).Scan(&user.CreatedAt)
}

func (r *PGUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.scanOne(r.db.QueryRow(ctx, `SELECT id, phone_number, name, role, created_at FROM users WHERE id=$1`, id))
}

func (r *PGUserRepository) GetByPhone(ctx context.Context, phone string) (*domain.User, error) {
	return r.scanOne(r.db.QueryRow(ctx, `SELECT id, phone_number, name, role, created_at FROM users WHERE phone_number=$1`, phone))
}

func (r *PGUserRepository) scanOne(row pgx.Row) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.PhoneNumber, &u.Name, &u.Role, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

var _ UserRepository = (*PGUserRepository)(nil)
