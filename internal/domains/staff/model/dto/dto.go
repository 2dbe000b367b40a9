package dto

import (
	"pgms/internal/domains/staff/model"
	"pgms/shared"
	gDto "pgms/shared/dto"
)

type CreateStaffRequest struct {
	Username string  `json:"username" validate:"required,max=100"`
	Email    string  `json:"email"    validate:"required,email,max=255"`
	Phone    *string `json:"phone"    validate:"omitempty,phone"`
	Role     *string `json:"role"     validate:"omitempty,max=50"`
}

func (c *CreateStaffRequest) ToModel() model.Staff {
	return model.Staff{
		Username: c.Username,
		Email:    c.Email,
		Phone:    c.Phone,
		Role:     c.Role,
	}
}

type UpdateStaffRequest struct {
	Username *string `json:"username" validate:"omitempty,max=100"`
	Email    *string `json:"email"    validate:"omitempty,email,max=255"`
	Phone    *string `json:"phone"    validate:"omitempty,phone"`
	Role     *string `json:"role"     validate:"omitempty,max=50"`
}

// Apply copies phone and role; username and email are checked for
// duplicates by the caller before they are set.
func (u *UpdateStaffRequest) Apply(staff *model.Staff) {
	if u.Phone != nil {
		staff.Phone = u.Phone
	}

	if u.Role != nil {
		staff.Role = u.Role
	}
}

type StaffResponse struct {
	ID       int64   `json:"id"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Phone    *string `json:"phone"`
	Role     *string `json:"role"`
	gDto.Timestamps
}

func (r *StaffResponse) FromModel(model model.Staff) {
	r.ID = model.ID
	r.Username = model.Username
	r.Email = model.Email
	r.Phone = model.Phone
	r.Role = model.Role
	r.Timestamps.FromModel(model.Timestamps)
}

type GetStaffResponse struct {
	Staff     []StaffResponse `json:"staff"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetStaffResponse) FromModels(models []model.Staff, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Staff = make([]StaffResponse, len(models))
	for i, mod := range models {
		r.Staff[i].FromModel(mod)
	}
}
