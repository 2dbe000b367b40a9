package model

import (
	"cmp"
	"slices"
	"time"

	gModel "pgms/shared/model"
)

const (
	TableName  = "tickets"
	EntityName = "ticket"

	FieldID        = "id"
	FieldAdminID   = "admin_id"
	FieldStatus    = "status"
	FieldPriority  = "priority"
	FieldCreatedAt = "created_at"
)

const (
	PriorityLow    = "LOW"
	PriorityMedium = "MEDIUM"
	PriorityHigh   = "HIGH"
)

const (
	StatusOpen       = "OPEN"
	StatusInProgress = "IN_PROGRESS"
	StatusResolved   = "RESOLVED"
	StatusClosed     = "CLOSED"
)

// Ticket is a support request raised by a hostel account.
type Ticket struct {
	ID            int64   `db:"id"`
	AdminID       int64   `db:"admin_id"`
	Title         string  `db:"title"`
	Description   string  `db:"description"`
	Priority      string  `db:"priority"`
	Status        string  `db:"status"`
	AttachmentURL *string `db:"attachment_url"`
	Response      *string `db:"response"`
	gModel.Timestamps
}

func (t *Ticket) PrimaryKey() int64 {
	return t.ID
}

func (t *Ticket) SetPrimaryKey(id int64) {
	t.ID = id
}

func (t *Ticket) BeforeInsert(now time.Time) {
	if t.Priority == "" {
		t.Priority = PriorityMedium
	}

	if t.Status == "" {
		t.Status = StatusOpen
	}

	t.TouchCreated(now)
}

func (t *Ticket) BeforeUpdate(now time.Time) {
	t.TouchUpdated(now)
}

// Rank orders priorities, HIGH first. Unknown priorities sort last.
func Rank(priority string) int {
	switch priority {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}

// SortForTriage orders tickets by priority, HIGH first, keeping the existing
// order within a priority.
func SortForTriage(tickets []Ticket) {
	slices.SortStableFunc(tickets, func(a, b Ticket) int {
		return cmp.Compare(Rank(a.Priority), Rank(b.Priority))
	})
}
