package repository

import (
	"context"

	"github.com/jmehdipour/radius-admin/internal/model"
	"github.com/jmoiron/sqlx"
)

// SessionsRepository lists accounting sessions from the ClickHouse radacct
// mirror. The mirror is fed by an external pipeline; this is read-only.
type SessionsRepository interface {
	List(ctx context.Context, username, nasIP string, limit, offset int) ([]model.Session, error)
}

type sessionsRepository struct {
	ch *sqlx.DB // ClickHouse connection
}

func NewSessionsRepository(ch *sqlx.DB) SessionsRepository {
	return &sessionsRepository{ch: ch}
}

func (r *sessionsRepository) List(ctx context.Context, username, nasIP string, limit, offset int) ([]model.Session, error) {
	if limit <= 0 || limit > 1000 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	q := `
		SELECT session_id, username, nas_ip, framed_ip, started_at, stopped_at, bytes_in, bytes_out
		FROM radius.sessions
		WHERE 1 = 1
	`
	args := []any{}

	if username != "" {
		q += " AND username = ?"
		args = append(args, username)
	}
	if nasIP != "" {
		q += " AND nas_ip = ?"
		args = append(args, nasIP)
	}

	q += " ORDER BY started_at DESC LIMIT ? OFFSET ?"
	args = append(args, limit, offset)

	rows := []model.Session{}
	if err := r.ch.SelectContext(ctx, &rows, q, args...); err != nil {
		return nil, err
	}
	return rows, nil
}
