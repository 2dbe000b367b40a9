package model

import (
	"fmt"
	"math/rand/v2"
	"time"

	gModel "pgms/shared/model"

	"github.com/shopspring/decimal"
)

const (
	EntityName = "payment"

	FieldID          = "id"
	FieldOccupantID  = "occupant_id"
	FieldPayerName   = "payer_name"
	FieldPaymentDate = "payment_date"
	FieldMethod      = "method"
	FieldStatus      = "status"
)

const (
	StatusCompleted = "COMPLETED"
	StatusPending   = "PENDING"
	StatusFailed    = "FAILED"
)

type Payment struct {
	ID                 int64           `db:"id"`
	OccupantID         *int64          `db:"occupant_id"`
	PayerName          string          `db:"payer_name"`
	Amount             decimal.Decimal `db:"amount"`
	PaymentDate        gModel.Date     `db:"payment_date"`
	Method             string          `db:"method"`
	Status             string          `db:"status"`
	Notes              *string         `db:"notes"`
	TransactionID      *string         `db:"transaction_id"`
	TransactionDetails *string         `db:"transaction_details"`
	gModel.Timestamps
}

func (p *Payment) PrimaryKey() int64 {
	return p.ID
}

func (p *Payment) SetPrimaryKey(id int64) {
	p.ID = id
}

// BeforeInsert fills the status, date, transaction id and details that the
// caller left blank.
func (p *Payment) BeforeInsert(now time.Time) {
	if p.Status == "" {
		p.Status = StatusCompleted
	}

	if p.PaymentDate.IsZero() {
		p.PaymentDate = gModel.DateOf(now)
	}

	if p.TransactionID == nil || *p.TransactionID == "" {
		id := NewTransactionID(now)
		p.TransactionID = &id
	}

	if p.TransactionDetails == nil || *p.TransactionDetails == "" {
		details := p.Describe()
		p.TransactionDetails = &details
	}

	p.TouchCreated(now)
}

func (p *Payment) BeforeUpdate(now time.Time) {
	p.TouchUpdated(now)
}

// NewTransactionID returns TXN followed by the unix time in milliseconds and
// four random digits.
func NewTransactionID(now time.Time) string {
	return fmt.Sprintf("TXN%d%04d", now.UnixMilli(), rand.IntN(10000)) //nolint:gosec
}

// Describe renders the human readable summary stored as transaction details.
func (p *Payment) Describe() string {
	return fmt.Sprintf("Payment of ₹%s by %s via %s on %s", p.Amount.StringFixed(2), p.PayerName, p.Method, p.PaymentDate)
}
