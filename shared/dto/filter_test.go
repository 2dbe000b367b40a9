package dto_test

import (
	"testing"

	"pgms/shared/dto"

	"github.com/stretchr/testify/assert"
)

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "eq with table",
			filter:    dto.Filter{Field: "status", Value: "PAID", Operator: dto.FilterOperatorEq, Table: "payments"},
			wantWhere: "payments.status = :status",
			wantArgs:  map[string]any{"status": "PAID"},
		},
		{
			name:      "arg name overrides field",
			filter:    dto.Filter{ArgName: "from", Field: "payment_date", Value: "2024-01-01", Operator: dto.FilterOperatorGreaterEq},
			wantWhere: "payment_date >= :from",
			wantArgs:  map[string]any{"from": "2024-01-01"},
		},
		{
			name:      "like escapes wildcards",
			filter:    dto.Filter{Field: "name", Value: "50%_a!", Operator: dto.FilterOperatorLike},
			wantWhere: "LOWER(name) LIKE LOWER(:name) ESCAPE '!'",
			wantArgs:  map[string]any{"name": "%50!%!_a!!%"},
		},
		{
			name:      "in with slice",
			filter:    dto.Filter{Field: "id", Value: []int64{1, 2}, Operator: dto.FilterOperatorIn},
			wantWhere: "id IN (:id_0, :id_1)",
			wantArgs:  map[string]any{"id_0": int64(1), "id_1": int64(2)},
		},
		{
			name:      "in with scalar",
			filter:    dto.Filter{Field: "id", Value: int64(7), Operator: dto.FilterOperatorIn},
			wantWhere: "id IN (:id)",
			wantArgs:  map[string]any{"id": int64(7)},
		},
		{
			name:      "in with empty slice",
			filter:    dto.Filter{Field: "id", Value: []int64{}, Operator: dto.FilterOperatorIn},
			wantWhere: "1 = 0",
			wantArgs:  map[string]any{},
		},
		{
			name:      "is null",
			filter:    dto.Filter{Field: "bed_number", Operator: dto.FilterIsNull},
			wantWhere: "bed_number IS NULL",
			wantArgs:  map[string]any{},
		},
		{
			name:      "unknown operator",
			filter:    dto.Filter{Field: "name", Value: "x", Operator: "between"},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: "status", Value: "ACTIVE", Operator: dto.FilterOperatorEq},
			dto.Filter{Field: "name", Value: "x", Operator: "between"},
			dto.FilterGroup{
				Operator: dto.FilterGroupOperatorOr,
				Filters: []any{
					dto.Filter{Field: "room_number", Value: "101", Operator: dto.FilterOperatorEq},
					dto.Filter{Field: "bed_number", Operator: dto.FilterIsNull},
				},
			},
			"ignored",
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(status = :status AND (room_number = :room_number OR bed_number IS NULL))", where)
	assert.Equal(t, map[string]any{"status": "ACTIVE", "room_number": "101"}, args)
}

func TestFilterGroup_Empty(t *testing.T) {
	group := dto.FilterGroup{}

	where, args := group.GetWhereClause()

	assert.Empty(t, where)
	assert.Empty(t, args)
}
