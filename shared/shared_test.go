package shared_test

import (
	"net/http"
	"testing"
	"time"

	"pgms/shared"
	"pgms/shared/constant"
	"pgms/shared/dto"
	"pgms/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOptionalBool(t *testing.T) {
	yes, no := true, false

	tests := []struct {
		name    string
		value   string
		want    *bool
		wantErr bool
	}{
		{name: "empty", value: ""},
		{name: "blank", value: "  "},
		{name: "true", value: "true", want: &yes},
		{name: "numeric false", value: "0", want: &no},
		{name: "upper case", value: "TRUE", want: &yes},
		{name: "invalid", value: "frozen", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := shared.ParseOptionalBool("is_frozen", tt.value)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
				assert.Equal(t, "is_frozen must be true or false", err.Error())

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		total, limit, want int
	}{
		{total: 0, limit: 10, want: 1},
		{total: 10, limit: 10, want: 1},
		{total: 11, limit: 10, want: 2},
		{total: 95, limit: 10, want: 10},
		{total: 5, limit: 0, want: 1},
		{total: 5, limit: -1, want: 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, shared.CalculateTotalPage(tt.total, tt.limit), "total=%d limit=%d", tt.total, tt.limit)
	}
}

type roomPatch struct {
	RoomNumber string  `db:"room_number"`
	Capacity   int     `db:"capacity"`
	Rent       *string `db:"rent"`
	Notes      string  `db:"-"`
	Untagged   string
	internal   string `db:"internal"`
}

func TestTransformFields(t *testing.T) {
	rent := "4500.00"
	before := time.Now()

	fields := shared.TransformFields(roomPatch{RoomNumber: "101", Rent: &rent, Notes: "x", Untagged: "y", internal: "z"})

	assert.Len(t, fields, 3)
	assert.Equal(t, "101", fields["room_number"])
	assert.Equal(t, &rent, fields["rent"])
	assert.NotContains(t, fields, "capacity")
	assert.NotContains(t, fields, "internal")

	stamped, ok := fields[constant.FieldUpdatedAt].(time.Time)
	require.True(t, ok)
	assert.False(t, stamped.Before(before.Truncate(time.Second)))
}

func TestTransformFields_Pointer(t *testing.T) {
	fields := shared.TransformFields(&roomPatch{Capacity: 4})

	assert.Equal(t, 4, fields["capacity"])
	assert.Contains(t, fields, constant.FieldUpdatedAt)
}

func TestTransformFields_NotStruct(t *testing.T) {
	assert.Panics(t, func() { shared.TransformFields(map[string]any{"a": 1}) })
}

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID(42, constant.FieldID, "admins")

	assert.Equal(t, dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: "id", Value: int64(42), Operator: dto.FilterOperatorEq, Table: "admins"},
		},
	}, group)

	where, args := group.GetWhereClause()
	assert.Equal(t, "(admins.id = :id)", where)
	assert.Equal(t, map[string]any{"id": int64(42)}, args)
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "admin:profile:42", shared.BuildCacheKey("admin", "profile", "42"))
	assert.Equal(t, "admin", shared.BuildCacheKey("admin"))
}
