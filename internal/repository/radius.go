package repository

import (
	"context"

	"github.com/jmehdipour/radius-admin/internal/model"
	"github.com/jmoiron/sqlx"
)

// RadiusRepository maintains the radcheck/radusergroup rows consumed by the
// external RADIUS server. All methods run inside the caller's transaction so
// credential and group rows never exist without their customer row.
type RadiusRepository interface {
	InsertCheck(ctx context.Context, tx *sqlx.Tx, username, password string) error
	InsertUserGroup(ctx context.Context, tx *sqlx.Tx, username, groupName string) error
	DeleteCheck(ctx context.Context, tx *sqlx.Tx, username string) error
	DeleteUserGroup(ctx context.Context, tx *sqlx.Tx, username string) error
}

type radiusRepo struct{}

func NewRadiusRepository() RadiusRepository { return &radiusRepo{} }

func (r *radiusRepo) InsertCheck(ctx context.Context, tx *sqlx.Tx, username, password string) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO radcheck (username, attribute, op, value)
		VALUES (?, ?, ?, ?)
	`, username, model.RadcheckAttrPassword, model.RadcheckOpSet, password)
	return err
}

func (r *radiusRepo) InsertUserGroup(ctx context.Context, tx *sqlx.Tx, username, groupName string) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO radusergroup (username, groupname, priority)
		VALUES (?, ?, ?)
	`, username, groupName, model.GroupPriority)
	return err
}

func (r *radiusRepo) DeleteCheck(ctx context.Context, tx *sqlx.Tx, username string) error {
	_, err := tx.ExecContext(ctx, `DELETE FROM radcheck WHERE username = ?`, username)
	return err
}

func (r *radiusRepo) DeleteUserGroup(ctx context.Context, tx *sqlx.Tx, username string) error {
	_, err := tx.ExecContext(ctx, `DELETE FROM radusergroup WHERE username = ?`, username)
	return err
}
