package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"pgms/internal/domains/ticket/model"
)

var ticketTime = time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC)

func TestSortForTriage(t *testing.T) {
	tickets := []model.Ticket{
		{ID: 1, Priority: model.PriorityLow},
		{ID: 2, Priority: model.PriorityHigh},
		{ID: 3, Priority: model.PriorityMedium},
		{ID: 4, Priority: model.PriorityHigh},
		{ID: 5, Priority: "URGENT"},
	}

	model.SortForTriage(tickets)

	ids := make([]int64, len(tickets))
	for i, ticket := range tickets {
		ids[i] = ticket.ID
	}

	assert.Equal(t, []int64{2, 4, 3, 1, 5}, ids)
}

func TestTicket_BeforeInsertDefaults(t *testing.T) {
	ticket := model.Ticket{}
	ticket.BeforeInsert(ticketTime)

	assert.Equal(t, model.PriorityMedium, ticket.Priority)
	assert.Equal(t, model.StatusOpen, ticket.Status)
	assert.Equal(t, ticketTime, *ticket.CreatedAt)
}
