package ports

import "go.trai.ch/stale/internal/core/domain"

// ChecksumStore holds the fingerprints recorded after the previous build.
// A missing fingerprint is never an error; the checker interprets absence
// as "changed".
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ChecksumStore interface {
	// Checksum returns the stored fingerprint for the key, and whether one
	// was recorded.
	Checksum(key domain.ChecksumKey) (string, bool)

	// Record stores a fingerprint for the key, replacing any previous one.
	Record(key domain.ChecksumKey, sum string)
}

// SequenceStore holds the serialized processing-rule sequence previously
// used for each representation (and layout), keyed by reference.
type SequenceStore interface {
	// Sequence returns the stored serialized sequence for the reference,
	// and whether one was recorded.
	Sequence(ref domain.InternedString) (string, bool)

	// RecordSequence stores the serialized sequence for the reference.
	RecordSequence(ref domain.InternedString, serialized string)
}

// GraphStore holds the persisted dependency graph of the previous build.
type GraphStore interface {
	// Graph returns the stored graph snapshot, and whether one exists.
	Graph() (domain.GraphSnapshot, bool)

	// SetGraph replaces the stored graph snapshot.
	SetGraph(snap domain.GraphSnapshot)
}

// StateStore bundles every per-build store behind one load-once,
// save-once surface. The checker only ever reads; the build driver
// records and saves after compilation.
type StateStore interface {
	ChecksumStore
	SequenceStore
	OutputLog
	GraphStore

	// Save persists the current state.
	Save() error
}

// StateOpener opens the state store for a site directory.
type StateOpener interface {
	// Open loads (or initializes empty) the state for the site at dir.
	Open(dir string) (StateStore, error)
}

// OutputLog records which representations have ever produced output. A
// representation with no entry has never been written and is
// unconditionally outdated.
type OutputLog interface {
	// Written reports whether the representation ever produced output.
	Written(ref domain.InternedString) bool

	// MarkWritten records that the representation produced output.
	MarkWritten(ref domain.InternedString)
}
