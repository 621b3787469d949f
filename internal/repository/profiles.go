package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmehdipour/radius-admin/internal/model"
	"github.com/jmoiron/sqlx"
)

// ProfilesRepository reads the service-profile catalog. The catalog is
// written by the seed command (or an external process), never by requests.
type ProfilesRepository interface {
	ListByPrice(ctx context.Context) ([]model.ServiceProfile, error)
	// PriceByName returns the current price of the named profile, or
	// model.ErrNotFound. Runs inside the provisioning transaction.
	PriceByName(ctx context.Context, tx *sqlx.Tx, name string) (float64, error)
}

type ProfilesRepositoryImpl struct {
	db *sqlx.DB
}

func NewProfilesRepository(db *sqlx.DB) *ProfilesRepositoryImpl {
	return &ProfilesRepositoryImpl{db: db}
}

var _ ProfilesRepository = (*ProfilesRepositoryImpl)(nil)

func (r *ProfilesRepositoryImpl) ListByPrice(ctx context.Context) ([]model.ServiceProfile, error) {
	const q = `
		SELECT id, name, download_speed, upload_speed, data_limit, price, description
		  FROM service_profiles
		 ORDER BY price
	`
	rows := []model.ServiceProfile{}
	if err := r.db.SelectContext(ctx, &rows, q); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ProfilesRepositoryImpl) PriceByName(ctx context.Context, tx *sqlx.Tx, name string) (float64, error) {
	var price float64
	err := tx.QueryRowxContext(ctx, `SELECT price FROM service_profiles WHERE name = ?`, name).Scan(&price)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("service profile %q: %w", name, model.ErrNotFound)
	}
	if err != nil {
		return 0, err
	}
	return price, nil
}
