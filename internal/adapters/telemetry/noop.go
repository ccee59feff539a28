// Package telemetry provides progress-recording adapters.
package telemetry

import (
	"context"
	"io"

	"go.trai.ch/parsnip/internal/core/ports"
)

// NoOp is a ports.Telemetry that records nothing. Used in synchronous mode
// and in tests.
type NoOp struct{}

// NewNoOp creates a NoOp telemetry.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// Record returns a vertex that discards everything.
func (t *NoOp) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	return ctx, &NoOpVertex{}
}

// Close does nothing.
func (t *NoOp) Close() error { return nil }

// NoOpVertex discards all vertex activity.
type NoOpVertex struct{}

// Stdout returns a discarding writer.
func (v *NoOpVertex) Stdout() io.Writer { return io.Discard }

// Stderr returns a discarding writer.
func (v *NoOpVertex) Stderr() io.Writer { return io.Discard }

// Info does nothing.
func (v *NoOpVertex) Info(string) {}

// Complete does nothing.
func (v *NoOpVertex) Complete(error) {}

// Skipped does nothing.
func (v *NoOpVertex) Skipped() {}
