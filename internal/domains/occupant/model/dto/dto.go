package dto

import (
	"pgms/internal/domains/occupant/model"
	"pgms/shared"
	gDto "pgms/shared/dto"
	gModel "pgms/shared/model"
)

type CreateOccupantRequest struct {
	Name              string  `json:"name"                validate:"required,max=255"`
	Age               *int    `json:"age"                 validate:"omitempty,min=18,max=100"`
	Gender            *string `json:"gender"              validate:"omitempty,max=20"`
	Phone             string  `json:"phone"               validate:"required,numeric,len=10"`
	Email             *string `json:"email"               validate:"omitempty,email,max=255"`
	RoomNumber        string  `json:"room_number"         validate:"required,max=50"`
	BedNumber         *int    `json:"bed_number"          validate:"omitempty,min=1"`
	Address           *string `json:"address"             validate:"omitempty,max=1000"`
	JoiningDate       *string `json:"joining_date"        validate:"omitempty,date"`
	IdentityProofType *string `json:"identity_proof_type" validate:"omitempty,max=50"`
	IdentityProof     *string `json:"identity_proof"      validate:"omitempty,datauri,mimetypes=image/png image/jpeg application/pdf,maxfilesize=5"`
	Status            string  `json:"status"              validate:"omitempty,oneof=ACTIVE INACTIVE VACATED"`
}

func (c *CreateOccupantRequest) ToModel() (model.Occupant, error) {
	joiningDate, err := parseDate(c.JoiningDate)
	if err != nil {
		return model.Occupant{}, err
	}

	return model.Occupant{
		Name:              c.Name,
		Age:               c.Age,
		Gender:            c.Gender,
		Phone:             c.Phone,
		Email:             c.Email,
		RoomNumber:        c.RoomNumber,
		BedNumber:         c.BedNumber,
		Address:           c.Address,
		JoiningDate:       joiningDate,
		IdentityProofType: c.IdentityProofType,
		IdentityProof:     c.IdentityProof,
		Status:            c.Status,
	}, nil
}

func parseDate(value *string) (*gModel.Date, error) {
	if value == nil || *value == "" {
		return nil, nil
	}

	date, err := gModel.ParseDate(*value)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

// UpdateOccupantRequest is a partial update; nil fields keep their stored value.
type UpdateOccupantRequest struct {
	Name              *string `json:"name"                validate:"omitempty,max=255"`
	Age               *int    `json:"age"                 validate:"omitempty,min=18,max=100"`
	Gender            *string `json:"gender"              validate:"omitempty,max=20"`
	Phone             *string `json:"phone"               validate:"omitempty,numeric,len=10"`
	Email             *string `json:"email"               validate:"omitempty,email,max=255"`
	RoomNumber        *string `json:"room_number"         validate:"omitempty,max=50"`
	BedNumber         *int    `json:"bed_number"          validate:"omitempty,min=1"`
	Address           *string `json:"address"             validate:"omitempty,max=1000"`
	JoiningDate       *string `json:"joining_date"        validate:"omitempty,date"`
	IdentityProofType *string `json:"identity_proof_type" validate:"omitempty,max=50"`
	IdentityProof     *string `json:"identity_proof"      validate:"omitempty,datauri,mimetypes=image/png image/jpeg application/pdf,maxfilesize=5"`
	Status            *string `json:"status"              validate:"omitempty,oneof=ACTIVE INACTIVE VACATED"`
}

// Apply copies the set fields onto occupant. The phone is left to the caller,
// which checks it for duplicates first.
func (u *UpdateOccupantRequest) Apply(occupant *model.Occupant) error {
	joiningDate, err := parseDate(u.JoiningDate)
	if err != nil {
		return err
	}

	if joiningDate != nil {
		occupant.JoiningDate = joiningDate
	}

	if u.Name != nil {
		occupant.Name = *u.Name
	}

	if u.Age != nil {
		occupant.Age = u.Age
	}

	if u.Gender != nil {
		occupant.Gender = u.Gender
	}

	if u.Email != nil {
		occupant.Email = u.Email
	}

	if u.RoomNumber != nil {
		occupant.RoomNumber = *u.RoomNumber
	}

	if u.BedNumber != nil {
		occupant.BedNumber = u.BedNumber
	}

	if u.Address != nil {
		occupant.Address = u.Address
	}

	if u.IdentityProofType != nil {
		occupant.IdentityProofType = u.IdentityProofType
	}

	if u.IdentityProof != nil {
		occupant.IdentityProof = u.IdentityProof
	}

	if u.Status != nil {
		occupant.Status = *u.Status
	}

	return nil
}

type OccupantResponse struct {
	ID                int64   `json:"id"`
	Name              string  `json:"name"`
	Age               *int    `json:"age"`
	Gender            *string `json:"gender"`
	Phone             string  `json:"phone"`
	Email             *string `json:"email"`
	RoomNumber        string  `json:"room_number"`
	BedNumber         *int    `json:"bed_number"`
	Address           *string `json:"address"`
	JoiningDate       *string `json:"joining_date"`
	IdentityProofType *string `json:"identity_proof_type"`
	IdentityProof     *string `json:"identity_proof,omitempty"`
	Status            string  `json:"status"`
	gDto.Timestamps
}

func (r *OccupantResponse) FromModel(model model.Occupant) {
	r.ID = model.ID
	r.Name = model.Name
	r.Age = model.Age
	r.Gender = model.Gender
	r.Phone = model.Phone
	r.Email = model.Email
	r.RoomNumber = model.RoomNumber
	r.BedNumber = model.BedNumber
	r.Address = model.Address
	r.IdentityProofType = model.IdentityProofType
	r.IdentityProof = model.IdentityProof
	r.Status = model.Status
	r.Timestamps.FromModel(model.Timestamps)

	if model.JoiningDate != nil {
		date := model.JoiningDate.String()
		r.JoiningDate = &date
	}
}

type GetOccupantsResponse struct {
	Occupants []OccupantResponse `json:"occupants"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetOccupantsResponse) FromModels(models []model.Occupant, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Occupants = FromModels(models)
}

func FromModels(models []model.Occupant) []OccupantResponse {
	res := make([]OccupantResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}
