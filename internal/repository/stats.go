package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// StatsRepository computes the dashboard aggregates. Every value is
// recomputed per call; nothing is cached.
type StatsRepository interface {
	CountActiveCustomers(ctx context.Context) (int64, error)
	CountActiveNAS(ctx context.Context) (int64, error)
	// ActiveMonthlyRevenue sums the current profile price over all active
	// customers. Advisory: historical bills keep the price they were cut at.
	ActiveMonthlyRevenue(ctx context.Context) (float64, error)
}

type StatsRepositoryImpl struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) *StatsRepositoryImpl {
	return &StatsRepositoryImpl{db: db}
}

var _ StatsRepository = (*StatsRepositoryImpl)(nil)

func (r *StatsRepositoryImpl) CountActiveCustomers(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM customers WHERE status = 'active'`)
	return n, err
}

func (r *StatsRepositoryImpl) CountActiveNAS(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM nas_devices WHERE status = 'active'`)
	return n, err
}

func (r *StatsRepositoryImpl) ActiveMonthlyRevenue(ctx context.Context) (float64, error) {
	var sum float64
	err := r.db.GetContext(ctx, &sum, `
		SELECT COALESCE(SUM(sp.price), 0)
		  FROM customers c
		  JOIN service_profiles sp ON c.service_profile = sp.name
		 WHERE c.status = 'active'
	`)
	return sum, err
}
