package model

import "time"

// Timestamps are maintained by the repository on insert and update. Rows
// written by older releases may hold NULL in either column.
type Timestamps struct {
	CreatedAt *time.Time `db:"created_at"`
	UpdatedAt *time.Time `db:"updated_at"`
}

func (t *Timestamps) TouchCreated(now time.Time) {
	t.CreatedAt = &now
	t.UpdatedAt = &now
}

func (t *Timestamps) TouchUpdated(now time.Time) {
	t.UpdatedAt = &now
}
