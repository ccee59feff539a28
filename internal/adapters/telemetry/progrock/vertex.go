package progrock

import (
	"fmt"
	"io"

	"github.com/vito/progrock"
)

// Vertex implements ports.Vertex wrapping *progrock.VertexRecorder.
type Vertex struct {
	vertex *progrock.VertexRecorder
}

// Stdout returns a writer mirroring the pipeline's informational output.
func (v *Vertex) Stdout() io.Writer {
	return v.vertex.Stdout()
}

// Stderr returns a writer mirroring the pipeline's error output.
func (v *Vertex) Stderr() io.Writer {
	return v.vertex.Stderr()
}

// Info surfaces a step's informational message on the vertex.
func (v *Vertex) Info(msg string) {
	_, _ = fmt.Fprintln(v.vertex.Stdout(), msg)
}

// Complete marks the vertex finished, successfully when err is nil.
func (v *Vertex) Complete(err error) {
	v.vertex.Done(err)
}

// Skipped marks the vertex as skipped without running.
func (v *Vertex) Skipped() {
	v.vertex.Cached()
}
