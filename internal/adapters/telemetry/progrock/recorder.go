// Package progrock records pipeline progress on a Progrock tape.
package progrock

import (
	"context"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"

	"go.trai.ch/parsnip/internal/core/ports"
)

// Recorder implements ports.Telemetry using the Progrock library. Each
// pipeline becomes one vertex on the tape.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder
}

// New creates a Recorder with a default tape.
func New() ports.Telemetry {
	return NewRecorder(progrock.NewTape())
}

// NewRecorder creates a Recorder over the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Record starts a vertex for one pipeline.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	v := r.rec.Vertex(digest.FromString(name), name)
	return ctx, &Vertex{vertex: v}
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
