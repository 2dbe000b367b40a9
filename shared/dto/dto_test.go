package dto_test

import (
	"math"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"pgms/shared/constant"
	"pgms/shared/dto"
	"pgms/shared/model"
	"pgms/shared/timezone"

	"github.com/stretchr/testify/assert"
)

func TestTimestamps_FromModel(t *testing.T) {
	createdAt := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	updatedAt := time.Date(2023, 1, 2, 12, 0, 0, 0, time.UTC)

	timestamps := &dto.Timestamps{}
	timestamps.FromModel(model.Timestamps{CreatedAt: &createdAt, UpdatedAt: &updatedAt})

	expectedCreatedAt := timezone.Format(createdAt, constant.DateFormat)
	expectedUpdatedAt := timezone.Format(updatedAt, constant.DateFormat)

	if timestamps.CreatedAt != expectedCreatedAt {
		t.Errorf("expected CreatedAt to be %s, got %s", expectedCreatedAt, timestamps.CreatedAt)
	}

	if timestamps.UpdatedAt != expectedUpdatedAt {
		t.Errorf("expected UpdatedAt to be %s, got %s", expectedUpdatedAt, timestamps.UpdatedAt)
	}
}

func TestTimestamps_FromModelNull(t *testing.T) {
	timestamps := &dto.Timestamps{}
	timestamps.FromModel(model.Timestamps{})

	if timestamps.CreatedAt != "" || timestamps.UpdatedAt != "" {
		t.Errorf("expected empty timestamps for NULL columns, got %+v", timestamps)
	}
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name         string
		query        url.Values
		withDefaults bool
		expected     dto.QueryParams
	}{
		{
			name:     "all parameters",
			query:    url.Values{"page": {"2"}, "limit": {"20"}, "sort_by": {"name"}, "sort_dir": {"ASC"}},
			expected: dto.QueryParams{Page: 2, Limit: 20, SortBy: "name", SortDir: dto.SortDirAsc},
		},
		{
			name:         "defaults when empty",
			query:        url.Values{},
			withDefaults: true,
			expected:     dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:     "no defaults when empty",
			query:    url.Values{},
			expected: dto.QueryParams{},
		},
		{
			name:         "malformed page falls back",
			query:        url.Values{"page": {"invalid"}},
			withDefaults: true,
			expected:     dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:         "non-positive numbers fall back",
			query:        url.Values{"page": {"0"}, "limit": {"-10"}},
			withDefaults: true,
			expected:     dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:     "limit capped",
			query:    url.Values{"limit": {"5000"}},
			expected: dto.QueryParams{Limit: constant.MaxValueLimit},
		},
		{
			name:     "page capped",
			query:    url.Values{"page": {"9223372036854775807"}, "limit": {"100"}},
			expected: dto.QueryParams{Page: constant.MaxValuePage, Limit: constant.MaxValueLimit},
		},
		{
			name:     "sort normalized",
			query:    url.Values{"sort_by": {" Room_Number "}, "sort_dir": {"desc"}},
			expected: dto.QueryParams{SortBy: "room_number", SortDir: dto.SortDirDesc},
		},
		{
			name:     "unknown sort direction ignored",
			query:    url.Values{"sort_dir": {"sideways"}},
			expected: dto.QueryParams{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/rooms?"+tt.query.Encode(), nil)

			params := dto.QueryParams{}
			params.FromRequest(req, tt.withDefaults)

			assert.Equal(t, tt.expected, params)
		})
	}
}

func TestQueryParams_Offset(t *testing.T) {
	assert.Equal(t, 0, dto.QueryParams{}.Offset())
	assert.Equal(t, 0, dto.QueryParams{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 20, dto.QueryParams{Page: 3, Limit: 10}.Offset())
	assert.Equal(t, 0, dto.QueryParams{Page: 3}.Offset())

	huge := dto.QueryParams{Page: math.MaxInt, Limit: math.MaxInt}
	assert.Equal(t, (constant.MaxValuePage-1)*constant.MaxValueLimit, huge.Offset())
	assert.Positive(t, huge.Offset())
}
