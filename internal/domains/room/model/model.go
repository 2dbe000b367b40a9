package model

import (
	"time"

	gModel "pgms/shared/model"

	"github.com/shopspring/decimal"
)

const (
	EntityName = "room"

	FieldID                 = "id"
	FieldRoomNumber         = "room_number"
	FieldCapacity           = "capacity"
	FieldOccupiedBeds       = "occupied_beds"
	FieldOccupiedBedNumbers = "occupied_bed_numbers"
	FieldRent               = "rent"
	FieldStatus             = "status"
)

const (
	StatusAvailable   = "AVAILABLE"
	StatusOccupied    = "OCCUPIED"
	StatusMaintenance = "MAINTENANCE"
)

type Room struct {
	ID                 int64           `db:"id"`
	RoomNumber         string          `db:"room_number"`
	Capacity           *int            `db:"capacity"`
	OccupiedBeds       int             `db:"occupied_beds"`
	OccupiedBedNumbers BedSet          `db:"occupied_bed_numbers"`
	Rent               decimal.Decimal `db:"rent"`
	Status             string          `db:"status"`
	Description        *string         `db:"description"`
	gModel.Timestamps
}

func (r *Room) PrimaryKey() int64 {
	return r.ID
}

func (r *Room) SetPrimaryKey(id int64) {
	r.ID = id
}

func (r *Room) BeforeInsert(now time.Time) {
	if r.Status == "" {
		r.Status = StatusAvailable
	}

	r.syncOccupiedBeds()
	r.TouchCreated(now)
}

func (r *Room) BeforeUpdate(now time.Time) {
	r.syncOccupiedBeds()
	r.TouchUpdated(now)
}

// syncOccupiedBeds keeps the count in step with the bed set once beds are tracked by number.
func (r *Room) syncOccupiedBeds() {
	if len(r.OccupiedBedNumbers) > 0 {
		r.OccupiedBeds = len(r.OccupiedBedNumbers)
	}
}

// BedInRange reports whether bed is a valid bed number for the room.
func (r *Room) BedInRange(bed int) bool {
	if bed < 1 {
		return false
	}

	return r.Capacity == nil || bed <= *r.Capacity
}
