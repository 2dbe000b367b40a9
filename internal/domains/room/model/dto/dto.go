package dto

import (
	"pgms/internal/domains/room/model"
	"pgms/shared"
	gDto "pgms/shared/dto"

	"github.com/shopspring/decimal"
)

type CreateRoomRequest struct {
	RoomNumber  string          `json:"room_number" validate:"required,max=50"`
	Capacity    *int            `json:"capacity"    validate:"omitempty,min=1,max=50"`
	Rent        decimal.Decimal `json:"rent"        validate:"gte=0"`
	Status      string          `json:"status"      validate:"omitempty,oneof=AVAILABLE OCCUPIED MAINTENANCE"`
	Description *string         `json:"description" validate:"omitempty,max=1000"`
}

func (c *CreateRoomRequest) ToModel() model.Room {
	return model.Room{
		RoomNumber:         c.RoomNumber,
		Capacity:           c.Capacity,
		OccupiedBedNumbers: model.BedSet{},
		Rent:               c.Rent,
		Status:             c.Status,
		Description:        c.Description,
	}
}

// UpdateRoomRequest is a partial update; nil fields keep their stored value.
type UpdateRoomRequest struct {
	RoomNumber   *string          `json:"room_number"   validate:"omitempty,max=50"`
	Capacity     *int             `json:"capacity"      validate:"omitempty,min=1,max=50"`
	OccupiedBeds *int             `json:"occupied_beds" validate:"omitempty,min=0"`
	Rent         *decimal.Decimal `json:"rent"          validate:"omitempty,gte=0"`
	Status       *string          `json:"status"        validate:"omitempty,oneof=AVAILABLE OCCUPIED MAINTENANCE"`
	Description  *string          `json:"description"   validate:"omitempty,max=1000"`
}

func (u *UpdateRoomRequest) Apply(room *model.Room) {
	if u.RoomNumber != nil {
		room.RoomNumber = *u.RoomNumber
	}

	if u.Capacity != nil {
		room.Capacity = u.Capacity
	}

	if u.OccupiedBeds != nil {
		room.OccupiedBeds = *u.OccupiedBeds
	}

	if u.Rent != nil {
		room.Rent = *u.Rent
	}

	if u.Status != nil {
		room.Status = *u.Status
	}

	if u.Description != nil {
		room.Description = u.Description
	}
}

type BedRequest struct {
	BedNumber int `json:"bed_number" validate:"required,min=1"`
}

type RoomResponse struct {
	ID                 int64           `json:"id"`
	RoomNumber         string          `json:"room_number"`
	Capacity           *int            `json:"capacity"`
	OccupiedBeds       int             `json:"occupied_beds"`
	OccupiedBedNumbers []int           `json:"occupied_bed_numbers"`
	Rent               decimal.Decimal `json:"rent"`
	Status             string          `json:"status"`
	Description        *string         `json:"description"`
	gDto.Timestamps
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.RoomNumber = model.RoomNumber
	r.Capacity = model.Capacity
	r.OccupiedBeds = model.OccupiedBeds
	r.OccupiedBedNumbers = []int(model.OccupiedBedNumbers)
	r.Rent = model.Rent
	r.Status = model.Status
	r.Description = model.Description
	r.Timestamps.FromModel(model.Timestamps)

	if r.OccupiedBedNumbers == nil {
		r.OccupiedBedNumbers = []int{}
	}
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
