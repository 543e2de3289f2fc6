// Package state implements the persisted build state: checksums, action
// sequences, the output log and the dependency graph, stored as one flat
// JSON file per site.
package state

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"go.trai.ch/stale/internal/core/domain"
	"go.trai.ch/stale/internal/core/ports"
	"go.trai.ch/zerr"
)

// FileName is the state file location relative to the site directory.
const FileName = ".stale/state.json"

var _ ports.StateStore = (*Store)(nil)

type checksumEntry struct {
	Key domain.ChecksumKey `json:"key"`
	Sum string             `json:"sum"`
}

type fileFormat struct {
	Checksums []checksumEntry       `json:"checksums,omitzero"`
	Sequences map[string]string     `json:"sequences,omitzero"`
	Outputs   []string              `json:"outputs,omitzero"`
	Graph     *domain.GraphSnapshot `json:"graph,omitzero"`
}

// Store implements ports.StateStore using a flat JSON file. It is read
// once when opened and written once by Save.
type Store struct {
	path string

	mu        sync.RWMutex
	checksums map[domain.ChecksumKey]string
	sequences map[domain.InternedString]string
	outputs   map[domain.InternedString]bool
	graph     *domain.GraphSnapshot
}

// NewStore creates a store backed by the file at the given path and loads
// any existing state. A missing file yields an empty store, never an
// error.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:      filepath.Clean(path),
		checksums: make(map[domain.ChecksumKey]string),
		sequences: make(map[domain.InternedString]string),
		outputs:   make(map[domain.InternedString]bool),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, "failed to read state file")
	}
	if len(data) == 0 {
		return nil
	}

	var file fileFormat
	if err := json.Unmarshal(data, &file); err != nil {
		return zerr.Wrap(err, "failed to unmarshal state file")
	}

	for _, e := range file.Checksums {
		s.checksums[e.Key] = e.Sum
	}
	for ref, seq := range file.Sequences {
		s.sequences[domain.NewInternedString(ref)] = seq
	}
	for _, ref := range file.Outputs {
		s.outputs[domain.NewInternedString(ref)] = true
	}
	s.graph = file.Graph
	return nil
}

// Save persists the current state to disk.
func (s *Store) Save() error {
	s.mu.RLock()
	file := fileFormat{
		Sequences: make(map[string]string, len(s.sequences)),
		Graph:     s.graph,
	}
	for key, sum := range s.checksums {
		file.Checksums = append(file.Checksums, checksumEntry{Key: key, Sum: sum})
	}
	for ref, seq := range s.sequences {
		file.Sequences[ref.String()] = seq
	}
	for ref := range s.outputs {
		file.Outputs = append(file.Outputs, ref.String())
	}
	s.mu.RUnlock()

	// Deterministic output keeps the file diffable across builds.
	sort.Slice(file.Checksums, func(i, j int) bool {
		a, b := file.Checksums[i].Key, file.Checksums[j].Key
		if a.Ref != b.Ref {
			return a.Ref.String() < b.Ref.String()
		}
		if a.Kind != b.Kind {
			return a.Kind < b.Kind
		}
		return a.Attribute < b.Attribute
	})
	sort.Strings(file.Outputs)

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal state file")
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return zerr.Wrap(err, "failed to create state directory")
	}
	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return zerr.Wrap(err, "failed to write state file")
	}
	return nil
}

// Checksum returns the stored fingerprint for the key.
func (s *Store) Checksum(key domain.ChecksumKey) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sum, ok := s.checksums[key]
	return sum, ok
}

// Record stores a fingerprint for the key.
func (s *Store) Record(key domain.ChecksumKey, sum string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checksums[key] = sum
}

// Sequence returns the stored serialized action sequence for a reference.
func (s *Store) Sequence(ref domain.InternedString) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	seq, ok := s.sequences[ref]
	return seq, ok
}

// RecordSequence is Record for the sequence store surface.
func (s *Store) RecordSequence(ref domain.InternedString, serialized string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sequences[ref] = serialized
}

// Written reports whether the representation ever produced output.
func (s *Store) Written(ref domain.InternedString) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.outputs[ref]
}

// MarkWritten records that the representation produced output.
func (s *Store) MarkWritten(ref domain.InternedString) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.outputs[ref] = true
}

// Graph returns the stored dependency graph snapshot.
func (s *Store) Graph() (domain.GraphSnapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.graph == nil {
		return domain.GraphSnapshot{}, false
	}
	return *s.graph, true
}

// SetGraph replaces the stored dependency graph snapshot.
func (s *Store) SetGraph(snap domain.GraphSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.graph = &snap
}
