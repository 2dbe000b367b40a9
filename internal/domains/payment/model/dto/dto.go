package dto

import (
	"pgms/internal/domains/payment/model"
	"pgms/shared"
	gDto "pgms/shared/dto"
	gModel "pgms/shared/model"

	"github.com/shopspring/decimal"
)

type CreatePaymentRequest struct {
	OccupantID    *int64          `json:"occupant_id"    validate:"omitempty,gt=0"`
	PayerName     string          `json:"payer_name"     validate:"required,max=255"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentDate   *gModel.Date    `json:"payment_date"   swaggertype:"string" example:"2026-10-16"`
	Method        string          `json:"method"         validate:"required,max=50"`
	Status        string          `json:"status"         validate:"omitempty,oneof=COMPLETED PENDING FAILED"`
	Notes         *string         `json:"notes"          validate:"omitempty,max=2000"`
	TransactionID *string         `json:"transaction_id" validate:"omitempty,max=100"`
}

func (c *CreatePaymentRequest) ToModel() model.Payment {
	payment := model.Payment{
		OccupantID:    c.OccupantID,
		PayerName:     c.PayerName,
		Amount:        c.Amount,
		Method:        c.Method,
		Status:        c.Status,
		Notes:         c.Notes,
		TransactionID: c.TransactionID,
	}

	if c.PaymentDate != nil {
		payment.PaymentDate = *c.PaymentDate
	}

	return payment
}

// UpdatePaymentRequest is a partial update; nil fields keep their stored value.
type UpdatePaymentRequest struct {
	OccupantID  *int64           `json:"occupant_id"  validate:"omitempty,gt=0"`
	PayerName   *string          `json:"payer_name"   validate:"omitempty,max=255"`
	Amount      *decimal.Decimal `json:"amount"`
	PaymentDate *gModel.Date     `json:"payment_date" swaggertype:"string" example:"2026-10-16"`
	Method      *string          `json:"method"       validate:"omitempty,max=50"`
	Status      *string          `json:"status"       validate:"omitempty,oneof=COMPLETED PENDING FAILED"`
	Notes       *string          `json:"notes"        validate:"omitempty,max=2000"`
}

func (u *UpdatePaymentRequest) Apply(payment *model.Payment) {
	if u.OccupantID != nil {
		payment.OccupantID = u.OccupantID
	}

	if u.PayerName != nil {
		payment.PayerName = *u.PayerName
	}

	if u.Amount != nil {
		payment.Amount = *u.Amount
	}

	if u.PaymentDate != nil {
		payment.PaymentDate = *u.PaymentDate
	}

	if u.Method != nil {
		payment.Method = *u.Method
	}

	if u.Status != nil {
		payment.Status = *u.Status
	}

	if u.Notes != nil {
		payment.Notes = u.Notes
	}
}

type PaymentResponse struct {
	ID                 int64           `json:"id"`
	OccupantID         *int64          `json:"occupant_id"`
	PayerName          string          `json:"payer_name"`
	Amount             decimal.Decimal `json:"amount"`
	PaymentDate        string          `json:"payment_date"`
	Method             string          `json:"method"`
	Status             string          `json:"status"`
	Notes              *string         `json:"notes"`
	TransactionID      *string         `json:"transaction_id"`
	TransactionDetails *string         `json:"transaction_details"`
	gDto.Timestamps
}

func (r *PaymentResponse) FromModel(model model.Payment) {
	r.ID = model.ID
	r.OccupantID = model.OccupantID
	r.PayerName = model.PayerName
	r.Amount = model.Amount
	r.PaymentDate = model.PaymentDate.String()
	r.Method = model.Method
	r.Status = model.Status
	r.Notes = model.Notes
	r.TransactionID = model.TransactionID
	r.TransactionDetails = model.TransactionDetails
	r.Timestamps.FromModel(model.Timestamps)
}

type GetPaymentsResponse struct {
	Payments  []PaymentResponse `json:"payments"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetPaymentsResponse) FromModels(models []model.Payment, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)
	r.Payments = FromModels(models)
}

func FromModels(models []model.Payment) []PaymentResponse {
	res := make([]PaymentResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}

// PaymentRecordedEvent is published after a payment is stored.
type PaymentRecordedEvent struct {
	TenantID      int64           `json:"tenant_id"`
	PaymentID     int64           `json:"payment_id"`
	PayerName     string          `json:"payer_name"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentDate   string          `json:"payment_date"`
	Method        string          `json:"method"`
	TransactionID string          `json:"transaction_id"`
}

func (e *PaymentRecordedEvent) FromModel(tenantID int64, model model.Payment) {
	e.TenantID = tenantID
	e.PaymentID = model.ID
	e.PayerName = model.PayerName
	e.Amount = model.Amount
	e.PaymentDate = model.PaymentDate.String()
	e.Method = model.Method

	if model.TransactionID != nil {
		e.TransactionID = *model.TransactionID
	}
}
