package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type traceKey struct{}
type staffKey struct{}

// TraceData carries the request-scoped correlation ids attached by the
// trace-context middleware.
type TraceData struct {
	TraceID   string
	RequestID string
}

// StaffData identifies the authenticated staff principal for the request.
type StaffData struct {
	StaffID uuid.UUID
	Email   string
}

func WithTraceData(ctx context.Context, td *TraceData) context.Context {
	return context.WithValue(ctx, traceKey{}, td)
}

func GetTraceData(ctx context.Context) *TraceData {
	td, _ := ctx.Value(traceKey{}).(*TraceData)
	return td
}

func WithStaff(ctx context.Context, sd *StaffData) context.Context {
	return context.WithValue(ctx, staffKey{}, sd)
}

func GetStaff(ctx context.Context) *StaffData {
	sd, _ := ctx.Value(staffKey{}).(*StaffData)
	return sd
}
