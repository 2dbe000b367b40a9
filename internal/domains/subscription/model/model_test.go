package model_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"pgms/internal/domains/subscription/model"
)

func TestPlan_EndsAt(t *testing.T) {
	start := time.Date(2026, time.January, 31, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		plan model.Plan
		want time.Time
	}{
		{name: "days", plan: model.Plan{Duration: 7, DurationType: model.DurationDay}, want: start.AddDate(0, 0, 7)},
		{name: "months", plan: model.Plan{Duration: 3, DurationType: model.DurationMonth}, want: start.AddDate(0, 3, 0)},
		{name: "unset type counts months", plan: model.Plan{Duration: 1}, want: start.AddDate(0, 1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.plan.EndsAt(start))
		})
	}
}

func TestPlan_Free(t *testing.T) {
	assert.True(t, (&model.Plan{}).Free())
	assert.True(t, (&model.Plan{Price: decimal.RequireFromString("0.00")}).Free())
	assert.False(t, (&model.Plan{Price: decimal.NewFromInt(499)}).Free())
}
