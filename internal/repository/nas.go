package repository

import (
	"context"

	"github.com/jmehdipour/radius-admin/internal/model"
	"github.com/jmoiron/sqlx"
)

// NASRepository defines persistence for nas_devices. There is no update or
// delete path; stale entries accumulate (known functional gap, kept).
type NASRepository interface {
	Insert(ctx context.Context, d model.NASDevice) error
	List(ctx context.Context) ([]model.NASDevice, error)
}

type NASRepositoryImpl struct {
	db *sqlx.DB
}

func NewNASRepository(db *sqlx.DB) *NASRepositoryImpl {
	return &NASRepositoryImpl{db: db}
}

var _ NASRepository = (*NASRepositoryImpl)(nil)

// Insert registers a device. nas_type is stored as submitted; status comes
// from the schema default ('active').
func (r *NASRepositoryImpl) Insert(ctx context.Context, d model.NASDevice) error {
	const q = `
		INSERT INTO nas_devices (nas_name, nas_ip, nas_type, shared_secret, location, created_at)
		VALUES (?, ?, ?, ?, ?, NOW())
	`
	_, err := r.db.ExecContext(ctx, q, d.Name, d.IP, d.Type, d.SharedSecret, d.Location)
	return err
}

func (r *NASRepositoryImpl) List(ctx context.Context) ([]model.NASDevice, error) {
	const q = `
		SELECT id, nas_name, nas_ip, nas_type, shared_secret, location, status, created_at
		  FROM nas_devices
		 ORDER BY created_at DESC
	`
	rows := []model.NASDevice{}
	if err := r.db.SelectContext(ctx, &rows, q); err != nil {
		return nil, err
	}
	return rows, nil
}
