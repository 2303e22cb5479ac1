package repository

import (
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
)

func TestNewTruckRepository(t *testing.T) {
	pool := &pgxpool.Pool{}
	repo := NewTruckRepository(pool)
	assert.NotNil(t, repo)
}

func TestNewLoadRepository(t *testing.T) {
	pool := &pgxpool.Pool{}
	repo := NewLoadRepository(pool)
	assert.NotNil(t, repo)
}
