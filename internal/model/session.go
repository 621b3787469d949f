package model

import "time"

// Session is one accounting row from the ClickHouse radacct mirror. The
// mirror is fed by an external pipeline; this service only reads it.
type Session struct {
	SessionID string     `db:"session_id" json:"session_id"`
	Username  string     `db:"username" json:"username"`
	NASIP     string     `db:"nas_ip" json:"nas_ip"`
	FramedIP  string     `db:"framed_ip" json:"framed_ip"`
	StartedAt time.Time  `db:"started_at" json:"started_at"`
	StoppedAt *time.Time `db:"stopped_at" json:"stopped_at"` // nil while online
	BytesIn   int64      `db:"bytes_in" json:"bytes_in"`
	BytesOut  int64      `db:"bytes_out" json:"bytes_out"`
}
