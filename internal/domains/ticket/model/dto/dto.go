package dto

import (
	"mime/multipart"

	"pgms/internal/domains/ticket/model"
	gDto "pgms/shared/dto"
)

type CreateTicketRequest struct {
	Title       string `json:"title"       validate:"required,max=200"`
	Description string `json:"description" validate:"required,max=5000"`
	Priority    string `json:"priority"    validate:"omitempty,oneof=LOW MEDIUM HIGH"`
}

func (c *CreateTicketRequest) ToModel(adminID int64) model.Ticket {
	return model.Ticket{
		AdminID:     adminID,
		Title:       c.Title,
		Description: c.Description,
		Priority:    c.Priority,
	}
}

// Attachment is an optional file sent with a new ticket.
type Attachment struct {
	File   multipart.File
	Header *multipart.FileHeader
}

type RespondTicketRequest struct {
	Response string `json:"response" validate:"required,max=5000"`
	Status   string `json:"status"   validate:"omitempty,oneof=OPEN IN_PROGRESS RESOLVED CLOSED"`
}

type TicketResponse struct {
	ID            int64   `json:"id"`
	AdminID       int64   `json:"admin_id"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Priority      string  `json:"priority"`
	Status        string  `json:"status"`
	AttachmentURL *string `json:"attachment_url"`
	Response      *string `json:"response"`
	gDto.Timestamps
}

func (r *TicketResponse) FromModel(model model.Ticket) {
	r.ID = model.ID
	r.AdminID = model.AdminID
	r.Title = model.Title
	r.Description = model.Description
	r.Priority = model.Priority
	r.Status = model.Status
	r.AttachmentURL = model.AttachmentURL
	r.Response = model.Response
	r.Timestamps.FromModel(model.Timestamps)
}

func FromModels(models []model.Ticket) []TicketResponse {
	res := make([]TicketResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}

// TicketRespondedEvent is published when support answers a ticket.
type TicketRespondedEvent struct {
	TicketID int64  `json:"ticket_id"`
	AdminID  int64  `json:"admin_id"`
	Title    string `json:"title"`
	Status   string `json:"status"`
	Response string `json:"response"`
}
