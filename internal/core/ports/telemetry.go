package ports

// Telemetry records per-object decision progress for display.
//
//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks
type Telemetry interface {
	// Record starts recording a decision for the named object.
	Record(name string) Vertex

	// Close flushes and closes the recording session.
	Close() error
}

// Vertex is one recorded decision.
type Vertex interface {
	// Log attaches a line of detail to the vertex.
	Log(msg string)

	// Fresh marks the object as up to date.
	Fresh()

	// Complete marks the decision as finished, with an error if deciding
	// failed.
	Complete(err error)
}
