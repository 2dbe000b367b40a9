package model

import (
	"time"

	gModel "pgms/shared/model"
)

const (
	TableName  = "appointments"
	EntityName = "appointment"

	FieldID              = "id"
	FieldAdminID         = "admin_id"
	FieldStatus          = "status"
	FieldAppointmentDate = "appointment_date"
)

const (
	StatusPending   = "PENDING"
	StatusConfirmed = "CONFIRMED"
	StatusCancelled = "CANCELLED"
	StatusCompleted = "COMPLETED"
)

// Appointment is a visit a prospective occupant books with a hostel.
type Appointment struct {
	ID              int64     `db:"id"`
	AdminID         int64     `db:"admin_id"`
	CandidateName   string    `db:"candidate_name"`
	CandidatePhone  string    `db:"candidate_phone"`
	CandidateEmail  string    `db:"candidate_email"`
	AppointmentDate time.Time `db:"appointment_date"`
	Message         *string   `db:"message"`
	Status          string    `db:"status"`
	gModel.Timestamps
}

func (a *Appointment) PrimaryKey() int64 {
	return a.ID
}

func (a *Appointment) SetPrimaryKey(id int64) {
	a.ID = id
}

func (a *Appointment) BeforeInsert(now time.Time) {
	if a.Status == "" {
		a.Status = StatusPending
	}

	a.TouchCreated(now)
}

func (a *Appointment) BeforeUpdate(now time.Time) {
	a.TouchUpdated(now)
}
