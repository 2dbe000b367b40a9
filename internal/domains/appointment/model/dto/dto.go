package dto

import (
	"time"

	"pgms/internal/domains/appointment/model"
	"pgms/shared/constant"
	gDto "pgms/shared/dto"
	"pgms/shared/timezone"
)

type CreateAppointmentRequest struct {
	AdminID         int64     `json:"admin_id"         validate:"required,gt=0"`
	CandidateName   string    `json:"candidate_name"   validate:"required,max=100"`
	CandidatePhone  string    `json:"candidate_phone"  validate:"required,phone"`
	CandidateEmail  string    `json:"candidate_email"  validate:"required,email,max=255"`
	AppointmentDate time.Time `json:"appointment_date" validate:"required"`
	Message         *string   `json:"message"          validate:"omitempty,max=1000"`
}

func (c *CreateAppointmentRequest) ToModel() model.Appointment {
	return model.Appointment{
		AdminID:         c.AdminID,
		CandidateName:   c.CandidateName,
		CandidatePhone:  c.CandidatePhone,
		CandidateEmail:  c.CandidateEmail,
		AppointmentDate: c.AppointmentDate,
		Message:         c.Message,
		Status:          model.StatusPending,
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING CONFIRMED CANCELLED COMPLETED"`
}

type AppointmentResponse struct {
	ID              int64   `json:"id"`
	AdminID         int64   `json:"admin_id"`
	CandidateName   string  `json:"candidate_name"`
	CandidatePhone  string  `json:"candidate_phone"`
	CandidateEmail  string  `json:"candidate_email"`
	AppointmentDate string  `json:"appointment_date"`
	Message         *string `json:"message"`
	Status          string  `json:"status"`
	gDto.Timestamps
}

func (r *AppointmentResponse) FromModel(model model.Appointment) {
	r.ID = model.ID
	r.AdminID = model.AdminID
	r.CandidateName = model.CandidateName
	r.CandidatePhone = model.CandidatePhone
	r.CandidateEmail = model.CandidateEmail
	r.AppointmentDate = timezone.Format(model.AppointmentDate, constant.DateFormat)
	r.Message = model.Message
	r.Status = model.Status
	r.Timestamps.FromModel(model.Timestamps)
}

func FromModels(models []model.Appointment) []AppointmentResponse {
	res := make([]AppointmentResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}

// AppointmentConfirmedEvent is published when a hostel confirms a visit, so
// the candidate can be notified.
type AppointmentConfirmedEvent struct {
	AppointmentID   int64  `json:"appointment_id"`
	AdminID         int64  `json:"admin_id"`
	CandidateName   string `json:"candidate_name"`
	CandidateEmail  string `json:"candidate_email"`
	CandidatePhone  string `json:"candidate_phone"`
	AppointmentDate string `json:"appointment_date"`
}
