package ports

import (
	"context"
	"io"
)

// Telemetry records per-pipeline progress vertices. It is an observational
// side channel for the user, not a control interface.
type Telemetry interface {
	// Record starts a new vertex for one pipeline.
	Record(ctx context.Context, name string) (context.Context, Vertex)

	// Close flushes and closes the recording session.
	Close() error
}

// Vertex represents one pipeline in the progress display.
type Vertex interface {
	// Stdout returns a writer mirroring the pipeline's informational output.
	Stdout() io.Writer

	// Stderr returns a writer mirroring the pipeline's error output.
	Stderr() io.Writer

	// Info surfaces a step's informational message.
	Info(msg string)

	// Complete marks the vertex finished, successfully when err is nil.
	Complete(err error)

	// Skipped marks the vertex as skipped (already up to date).
	Skipped()
}
