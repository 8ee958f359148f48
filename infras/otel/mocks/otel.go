// Package mocks provides a tracer that records nothing, for tests.
package mocks

import (
	"context"

	"beautyhub/infras/otel"
)

type noopOtel struct{}

func (noopOtel) NewScope(ctx context.Context, _, _ string) (context.Context, otel.Scope) {
	return ctx, NewScope()
}

func NewOtel() otel.Otel {
	return noopOtel{}
}
