package dto

import (
	"pgms/internal/domains/subscription/model"
	gDto "pgms/shared/dto"

	"github.com/shopspring/decimal"
)

type CreatePlanRequest struct {
	Name         string          `json:"name"          validate:"required,max=100"`
	Duration     int             `json:"duration"      validate:"gte=1,lte=3650"`
	DurationType string          `json:"duration_type" validate:"omitempty,oneof=DAY MONTH"`
	Price        decimal.Decimal `json:"price"         validate:"gte=0"`
	Features     *string         `json:"features"      validate:"omitempty,max=2000"`
	Offer        *string         `json:"offer"         validate:"omitempty,max=255"`
}

func (c *CreatePlanRequest) ToModel() model.Plan {
	return model.Plan{
		Name:         c.Name,
		Duration:     c.Duration,
		DurationType: c.DurationType,
		Price:        c.Price,
		Features:     c.Features,
		Offer:        c.Offer,
		Active:       true,
	}
}

type UpdatePlanRequest struct {
	Name         *string          `json:"name"          validate:"omitempty,max=100"`
	Duration     *int             `json:"duration"      validate:"omitempty,gte=1,lte=3650"`
	DurationType *string          `json:"duration_type" validate:"omitempty,oneof=DAY MONTH"`
	Price        *decimal.Decimal `json:"price"         validate:"omitempty,gte=0"`
	Features     *string          `json:"features"      validate:"omitempty,max=2000"`
	Offer        *string          `json:"offer"         validate:"omitempty,max=255"`
}

// Apply copies every field but the name, which the caller checks for
// duplicates first.
func (u *UpdatePlanRequest) Apply(plan *model.Plan) {
	if u.Duration != nil {
		plan.Duration = *u.Duration
	}

	if u.DurationType != nil {
		plan.DurationType = *u.DurationType
	}

	if u.Price != nil {
		plan.Price = *u.Price
	}

	if u.Features != nil {
		plan.Features = u.Features
	}

	if u.Offer != nil {
		plan.Offer = u.Offer
	}
}

type ActivatePlanRequest struct {
	PlanID int64 `json:"plan_id" validate:"required,gt=0"`
}

type PlanResponse struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Duration     int             `json:"duration"`
	DurationType string          `json:"duration_type"`
	Price        decimal.Decimal `json:"price"`
	Features     *string         `json:"features"`
	Offer        *string         `json:"offer"`
	Active       bool            `json:"is_active"`
	gDto.Timestamps
}

func (r *PlanResponse) FromModel(model model.Plan) {
	r.ID = model.ID
	r.Name = model.Name
	r.Duration = model.Duration
	r.DurationType = model.DurationType
	r.Price = model.Price
	r.Features = model.Features
	r.Offer = model.Offer
	r.Active = model.Active
	r.Timestamps.FromModel(model.Timestamps)
}

func FromModels(models []model.Plan) []PlanResponse {
	res := make([]PlanResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}

// SubscriptionActivatedEvent is published when an account starts a plan.
type SubscriptionActivatedEvent struct {
	AdminID   int64  `json:"admin_id"`
	PlanID    int64  `json:"plan_id"`
	Plan      string `json:"plan"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}
