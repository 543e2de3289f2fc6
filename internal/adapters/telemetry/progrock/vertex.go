package progrock

import (
	"fmt"

	"github.com/vito/progrock"
	"go.trai.ch/stale/internal/core/ports"
)

var _ ports.Vertex = (*Vertex)(nil)

// Vertex implements ports.Vertex wrapping *progrock.VertexRecorder.
type Vertex struct {
	vertex *progrock.VertexRecorder
}

// Log attaches a line of detail to the vertex.
func (v *Vertex) Log(msg string) {
	_, _ = fmt.Fprintln(v.vertex.Stdout(), msg)
}

// Fresh marks the object as up to date.
func (v *Vertex) Fresh() {
	v.vertex.Cached()
}

// Complete marks the decision as finished.
func (v *Vertex) Complete(err error) {
	v.vertex.Done(err)
}
