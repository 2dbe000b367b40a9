package response_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"pgms/internal/tenancy"
	"pgms/shared/constant"
	"pgms/shared/failure"
	"pgms/transport/http/response"

	"github.com/stretchr/testify/assert"
)

func TestWithError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "bad request keeps message",
			err:      failure.BadRequestFromString("amount must be greater than 0"),
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"amount must be greater than 0"}`,
		},
		{
			name:     "typed not found",
			err:      fmt.Errorf("get room: %w", &failure.NotFoundError{Entity: "room", ID: 4}),
			wantCode: http.StatusNotFound,
			wantBody: `{"error":"get room: room not found with id: 4"}`,
		},
		{
			name:     "schema missing is classified",
			err:      &tenancy.SchemaMissingError{TenantID: 3, Kind: tenancy.KindRooms, Err: errors.New("no such table")},
			wantCode: http.StatusServiceUnavailable,
		},
		{
			name:     "raw error is hidden",
			err:      errors.New(`pq: relation "tenant_3_rooms" does not exist`),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"` + constant.ResponseErrorInternal + `"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()

			response.WithError(recorder, tt.err)

			assert.Equal(t, tt.wantCode, recorder.Code)
			assert.Equal(t, constant.ContentTypeJSON, recorder.Header().Get(constant.RequestHeaderContentType))

			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, recorder.Body.String())
			}
		})
	}
}

func TestWithJSON(t *testing.T) {
	recorder := httptest.NewRecorder()

	response.WithJSON(recorder, http.StatusCreated, map[string]int{"id": 7})

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.JSONEq(t, `{"data":{"id":7}}`, recorder.Body.String())
}

func TestWithJSON_Unmarshalable(t *testing.T) {
	recorder := httptest.NewRecorder()

	response.WithJSON(recorder, http.StatusOK, make(chan int))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}

func TestWithPreparingShutdown(t *testing.T) {
	recorder := httptest.NewRecorder()

	response.WithPreparingShutdown(recorder)

	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	assert.JSONEq(t, `{"message":"`+constant.ResponseErrorPrepareShutdown+`"}`, recorder.Body.String())
}
