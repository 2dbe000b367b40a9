package model

import (
	"time"

	gModel "pgms/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "subscription_plans"
	EntityName = "subscription_plan"

	FieldID       = "id"
	FieldName     = "name"
	FieldDuration = "duration"
	FieldActive   = "is_active"
)

const (
	DurationDay   = "DAY"
	DurationMonth = "MONTH"
)

// Plan is a subscription tier offered to hostel accounts.
type Plan struct {
	ID           int64           `db:"id"`
	Name         string          `db:"name"`
	Duration     int             `db:"duration"`
	DurationType string          `db:"duration_type"`
	Price        decimal.Decimal `db:"price"`
	Features     *string         `db:"features"`
	Offer        *string         `db:"offer"`
	Active       bool            `db:"is_active"`
	gModel.Timestamps
}

func (p *Plan) PrimaryKey() int64 {
	return p.ID
}

func (p *Plan) SetPrimaryKey(id int64) {
	p.ID = id
}

func (p *Plan) BeforeInsert(now time.Time) {
	if p.DurationType == "" {
		p.DurationType = DurationMonth
	}

	p.TouchCreated(now)
}

func (p *Plan) BeforeUpdate(now time.Time) {
	p.TouchUpdated(now)
}

// Free reports whether the plan can be activated without a payment.
func (p *Plan) Free() bool {
	return p.Price.IsZero()
}

// EndsAt is the end of a subscription to the plan that starts at start.
func (p *Plan) EndsAt(start time.Time) time.Time {
	if p.DurationType == DurationDay {
		return start.AddDate(0, 0, p.Duration)
	}

	return start.AddDate(0, p.Duration, 0)
}
