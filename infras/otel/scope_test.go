package otel_test

import (
	"context"
	"errors"
	"testing"

	"pgms/infras/otel"
	"pgms/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

type tenantID int64

func (t tenantID) Int64() int64 { return int64(t) }

func recordSpan(t *testing.T, fn func(scope otel.Scope)) sdktrace.ReadOnlySpan {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	_, span := provider.Tracer("test").Start(context.Background(), "test.span")
	scope := otel.NewScope(span)
	fn(scope)
	scope.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)

	return ended[0]
}

func TestScope_TraceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus codes.Code
	}{
		{name: "internal failure", err: errors.New("connection reset"), wantStatus: codes.Error},
		{name: "not found", err: &failure.NotFoundError{Entity: "room", ID: 9}, wantStatus: codes.Unset},
		{name: "bad request", err: failure.BadRequestFromString("amount must be greater than 0"), wantStatus: codes.Unset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			span := recordSpan(t, func(scope otel.Scope) {
				scope.TraceIfError(nil)
				scope.TraceError(tt.err)
			})

			assert.Equal(t, tt.wantStatus, span.Status().Code)
			require.Len(t, span.Events(), 1)
			assert.Equal(t, "exception", span.Events()[0].Name)
		})
	}
}

func TestAttribute(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  attribute.Value
	}{
		{name: "bool", value: true, want: attribute.BoolValue(true)},
		{name: "int", value: 3, want: attribute.IntValue(3)},
		{name: "float", value: 12.5, want: attribute.Float64Value(12.5)},
		{name: "ids", value: []int64{1, 2}, want: attribute.Int64SliceValue([]int64{1, 2})},
		{name: "tenant id", value: tenantID(42), want: attribute.Int64Value(42)},
		{name: "fallback", value: struct{ A int }{A: 1}, want: attribute.StringValue("{1}")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, otel.Attribute("key", tt.value).Value)
		})
	}
}

func TestScope_SetAttributes(t *testing.T) {
	span := recordSpan(t, func(scope otel.Scope) {
		scope.SetAttribute("tenant.id", tenantID(7))
		scope.SetAttributes(map[string]any{"room.number": "101", "beds": 3})
	})

	attrs := map[attribute.Key]attribute.Value{}
	for _, kv := range span.Attributes() {
		attrs[kv.Key] = kv.Value
	}

	assert.Equal(t, attribute.Int64Value(7), attrs["tenant.id"])
	assert.Equal(t, attribute.StringValue("101"), attrs["room.number"])
	assert.Equal(t, attribute.IntValue(3), attrs["beds"])
}
