// Package mocks provides tracing stand-ins for tests. Spans are discarded.
package mocks

import (
	"context"

	"pgms/infras/otel"
)

type noopScope struct{}

func (noopScope) End() {}
func (noopScope) TraceError(error) {}
func (noopScope) TraceIfError(error) {}
func (noopScope) AddEvent(string) {}
func (noopScope) SetAttribute(string, any) {}
func (noopScope) SetAttributes(map[string]any) {}

type noopOtel struct{}

func (noopOtel) NewScope(ctx context.Context, _, _ string) (context.Context, otel.Scope) {
	return ctx, noopScope{}
}

func (noopOtel) Shutdown(context.Context) error {
	return nil
}

func NewScope() otel.Scope {
	return noopScope{}
}

func NewOtel() otel.Otel {
	return noopOtel{}
}
