package domain

// ReasonKind names why an object is outdated.
type ReasonKind string

const (
	// ReasonRulesModified indicates the processing-rule sequence changed.
	ReasonRulesModified ReasonKind = "rules_modified"
	// ReasonPathsModified indicates the snapshot output paths changed.
	ReasonPathsModified ReasonKind = "paths_modified"
	// ReasonContentModified indicates the raw content changed.
	ReasonContentModified ReasonKind = "content_modified"
	// ReasonAttributesModified indicates one or more attributes changed.
	ReasonAttributesModified ReasonKind = "attributes_modified"
	// ReasonNotWritten indicates the representation never produced output.
	ReasonNotWritten ReasonKind = "not_written"
	// ReasonCodeSnippetsModified indicates an auxiliary code unit changed;
	// this outdates every object.
	ReasonCodeSnippetsModified ReasonKind = "code_snippets_modified"
	// ReasonConfigurationModified indicates the site configuration changed;
	// this outdates every object.
	ReasonConfigurationModified ReasonKind = "configuration_modified"
	// ReasonItemCollectionExtended indicates the item collection gained
	// members since the last build.
	ReasonItemCollectionExtended ReasonKind = "item_collection_extended"
	// ReasonLayoutCollectionExtended indicates the layout collection gained
	// members since the last build.
	ReasonLayoutCollectionExtended ReasonKind = "layout_collection_extended"
	// ReasonDependenciesOutdated indicates a transitively reachable
	// dependency is outdated.
	ReasonDependenciesOutdated ReasonKind = "dependencies_outdated"
)

// Reason is one contributing cause of outdatedness together with the props
// of the object it marks as changed. Collection-extension reasons also
// carry the newly added member references.
type Reason struct {
	Kind       ReasonKind
	Props      PropSet
	NewMembers []InternedString
}

// Status is the accumulated outdatedness decision for one object: the
// ordered list of contributing reasons plus the union of their props. The
// first reason is the user-facing one; the rest are kept for diagnostics.
type Status struct {
	Reasons []Reason
	Props   PropSet
}

// Add appends a reason and folds its props into the accumulated set.
func (s Status) Add(r Reason) Status {
	return Status{
		Reasons: append(s.Reasons, r),
		Props:   s.Props.Union(r.Props),
	}
}

// Merge folds another status into this one, keeping reason order.
func (s Status) Merge(other Status) Status {
	res := s
	for _, r := range other.Reasons {
		res = res.Add(r)
	}
	return res
}

// Outdated reports whether any reason contributed.
func (s Status) Outdated() bool {
	return len(s.Reasons) > 0
}

// First returns the primary (user-facing) reason, or nil when fresh.
func (s Status) First() *Reason {
	if len(s.Reasons) == 0 {
		return nil
	}
	r := s.Reasons[0]
	return &r
}
