package model

import (
	"time"

	gModel "pgms/shared/model"
)

const (
	EntityName = "occupant"

	FieldID         = "id"
	FieldName       = "name"
	FieldPhone      = "phone"
	FieldEmail      = "email"
	FieldRoomNumber = "room_number"
	FieldBedNumber  = "bed_number"
	FieldStatus     = "status"
)

const (
	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"
	StatusVacated  = "VACATED"
)

// Occupant is a resident of the hostel. Pointer fields are nullable columns.
type Occupant struct {
	ID                int64        `db:"id"`
	Name              string       `db:"name"`
	Age               *int         `db:"age"`
	Gender            *string      `db:"gender"`
	Phone             string       `db:"phone"`
	Email             *string      `db:"email"`
	RoomNumber        string       `db:"room_number"`
	BedNumber         *int         `db:"bed_number"`
	Address           *string      `db:"address"`
	JoiningDate       *gModel.Date `db:"joining_date"`
	IdentityProofType *string      `db:"identity_proof_type"`
	IdentityProof     *string      `db:"identity_proof"`
	Status            string       `db:"status"`
	gModel.Timestamps
}

func (o *Occupant) PrimaryKey() int64 {
	return o.ID
}

func (o *Occupant) SetPrimaryKey(id int64) {
	o.ID = id
}

func (o *Occupant) BeforeInsert(now time.Time) {
	if o.Status == "" {
		o.Status = StatusActive
	}

	o.TouchCreated(now)
}

func (o *Occupant) BeforeUpdate(now time.Time) {
	o.TouchUpdated(now)
}

// HasBed reports whether the occupant holds a numbered bed.
func (o *Occupant) HasBed() bool {
	return o.BedNumber != nil && o.RoomNumber != ""
}
