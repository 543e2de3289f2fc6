package domain

import (
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Action is a single step of a processing-rule sequence: either a filter
// application (Filter + Arguments) or a snapshot declaration (Snapshot +
// optional Path). Exactly one of Filter and Snapshot is set.
type Action struct {
	Filter    string         `yaml:"filter,omitempty"`
	Arguments map[string]any `yaml:"arguments,omitempty"`
	Snapshot  string         `yaml:"snapshot,omitempty"`
	Path      string         `yaml:"path,omitempty"`
}

// ActionSequence is the ordered list of actions describing how a
// representation (or a layout) is produced.
type ActionSequence []Action

// Serialize renders the sequence into its canonical comparable form.
// Two sequences are equal iff their serialized forms are byte-equal;
// this is the sole signal used for "rules changed". yaml.v3 marshals map
// keys in sorted order, which keeps argument sets stable.
func (s ActionSequence) Serialize() (string, error) {
	if len(s) == 0 {
		return "", nil
	}
	data, err := yaml.Marshal([]Action(s))
	if err != nil {
		return "", zerr.Wrap(err, "failed to serialize action sequence")
	}
	return string(data), nil
}

// SnapshotPaths returns the snapshot-name to output-path pairs implied by
// the sequence. Snapshots without a path are omitted.
func (s ActionSequence) SnapshotPaths() map[string]string {
	paths := make(map[string]string)
	for _, a := range s {
		if a.Snapshot != "" && a.Path != "" {
			paths[a.Snapshot] = a.Path
		}
	}
	return paths
}

// SnapshotPathsOfSerialized parses a previously stored serialized sequence
// and returns its snapshot-path pairs. An empty or unparseable stored form
// yields nil, which never compares equal to a non-empty current set.
func SnapshotPathsOfSerialized(serialized string) map[string]string {
	if serialized == "" {
		return nil
	}
	var actions []Action
	if err := yaml.Unmarshal([]byte(serialized), &actions); err != nil {
		return nil
	}
	return ActionSequence(actions).SnapshotPaths()
}

// SamePaths compares two snapshot-path maps for equality.
func SamePaths(a, b map[string]string) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if bv, ok := b[k]; !ok || bv != v {
			return false
		}
	}
	return true
}
