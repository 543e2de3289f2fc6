package domain

// Dependency is one directed edge of the dependency graph: To depends on
// From, and Props names the aspects of From that To consumed. A nil From
// marks an externally forced edge that unconditionally outdates To.
// Collection-membership deltas and dependencies on deleted objects
// surface as forced edges.
type Dependency struct {
	From  Object
	To    Object
	Props PropSet
}

// Forced reports whether the edge unconditionally outdates its consumer.
func (d Dependency) Forced() bool {
	return d.From == nil
}

// DependencyRecord is the persisted form of one explicit edge. An empty
// From marks a forced edge; a From that no longer resolves to a live
// object also loads as forced, so dependencies on deleted objects stay
// conservative.
type DependencyRecord struct {
	From  string  `json:"from,omitzero"`
	To    string  `json:"to"`
	Props PropSet `json:"props"`
}

// CollectionDependencyRecord is the persisted form of one collection
// dependency.
type CollectionDependencyRecord struct {
	Collection  CollectionKind `json:"collection"`
	To          string         `json:"to"`
	Props       PropSet        `json:"props"`
	PatternKind PatternKind    `json:"pattern_kind,omitzero"`
	Pattern     string         `json:"pattern,omitzero"`
}

// GraphSnapshot is the persisted dependency graph: all recorded edges plus
// the membership snapshot of the tracked collections at store time.
type GraphSnapshot struct {
	Edges           []DependencyRecord           `json:"edges,omitzero"`
	CollectionEdges []CollectionDependencyRecord `json:"collection_edges,omitzero"`
	Items           []string                     `json:"items,omitzero"`
	Layouts         []string                     `json:"layouts,omitzero"`
}
