package model

import (
	"time"

	gModel "pgms/shared/model"
)

const (
	EntityName = "staff"

	FieldID       = "id"
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldRole     = "role"
)

type Staff struct {
	ID       int64   `db:"id"`
	Username string  `db:"username"`
	Email    string  `db:"email"`
	Phone    *string `db:"phone"`
	Role     *string `db:"role"`
	gModel.Timestamps
}

func (s *Staff) PrimaryKey() int64 {
	return s.ID
}

func (s *Staff) SetPrimaryKey(id int64) {
	s.ID = id
}

func (s *Staff) BeforeInsert(now time.Time) {
	s.TouchCreated(now)
}

func (s *Staff) BeforeUpdate(now time.Time) {
	s.TouchUpdated(now)
}
