package outdated

import (
	"go.trai.ch/stale/internal/core/domain"
)

// basicRule is one side-effect-free outdatedness predicate. contributes is
// the upper bound of props the rule can add; it drives the skip
// optimization and never changes the decision.
type basicRule struct {
	contributes domain.PropSet
	probe       func(c *Checker, obj domain.Object) (*domain.Reason, error)
}

// Rule sets per object kind, in fixed priority order. The first triggering
// rule's reason is primary; every triggering rule contributes its props.
var (
	repRules = []basicRule{
		{domain.NewPropSet(domain.PropRules), probeRulesModified},
		{domain.NewPropSet(domain.PropPath), probePathsModified},
		{domain.NewPropSet(domain.PropRawContent), probeContentModified},
		{domain.NewAttributeProps(), probeAttributesModified},
		{domain.NewPropSet(domain.AllProps), probeNotWritten},
		{domain.NewPropSet(domain.AllProps), probeCodeSnippetsModified},
		{domain.NewPropSet(domain.AllProps), probeConfigurationModified},
	}
	layoutRules = []basicRule{
		{domain.NewPropSet(domain.PropRules), probeRulesModified},
		{domain.NewPropSet(domain.PropRawContent), probeContentModified},
		{domain.NewAttributeProps(), probeAttributesModified},
	}
	configRules = []basicRule{
		{domain.NewAttributeProps(), probeAttributesModified},
	}
	snippetRules = []basicRule{
		{domain.NewPropSet(domain.PropRawContent), probeContentModified},
	}
)

// applyRules folds the rule set into an accumulating status. A rule whose
// possible contribution is already covered by the accumulated props is
// skipped; the outcome is identical either way.
func (c *Checker) applyRules(rules []basicRule, obj domain.Object) (domain.Status, error) {
	var status domain.Status
	for _, r := range rules {
		if covered(status.Props, r.contributes) {
			continue
		}
		reason, err := r.probe(c, obj)
		if err != nil {
			return domain.Status{}, err
		}
		if reason != nil {
			status = status.Add(*reason)
		}
	}
	return status, nil
}

// covered reports whether contributes cannot add anything to have. An
// attributes contribution only counts as covered by an unrestricted
// attributes prop.
func covered(have, contributes domain.PropSet) bool {
	if !have.Has(contributes.Bits()) {
		return false
	}
	if contributes.Has(domain.PropAttributes) && have.AttributeNames() != nil {
		return false
	}
	return true
}

// sequenceOf returns the current action sequence and sequence-store
// reference of a rep or layout, or ok=false for kinds without one.
func sequenceOf(obj domain.Object) (domain.ActionSequence, domain.InternedString, bool) {
	switch o := obj.(type) {
	case *domain.Rep:
		return o.Sequence, o.Reference(), true
	case *domain.Layout:
		return o.Sequence, o.Reference(), true
	}
	return nil, domain.InternedString{}, false
}

// documentOf returns the owning document of a rep, layout or item, or
// ok=false for kinds without document state.
func documentOf(obj domain.Object) (*domain.Document, bool) {
	switch o := obj.(type) {
	case *domain.Rep:
		return &o.Item.Document, true
	case *domain.Item:
		return &o.Document, true
	case *domain.Layout:
		return &o.Document, true
	}
	return nil, false
}

// probeRulesModified fires when the current action sequence differs from
// the stored one. A missing stored sequence counts as changed.
func probeRulesModified(c *Checker, obj domain.Object) (*domain.Reason, error) {
	seq, ref, ok := sequenceOf(obj)
	if !ok {
		return nil, nil
	}
	current, err := seq.Serialize()
	if err != nil {
		return nil, err
	}
	stored, found := c.sequences.Sequence(ref)
	if found && stored == current {
		return nil, nil
	}
	return &domain.Reason{
		Kind:  domain.ReasonRulesModified,
		Props: domain.NewPropSet(domain.PropRules),
	}, nil
}

// probePathsModified fires when the snapshot-name to output-path pairs
// implied by the current sequence differ from the previous ones.
func probePathsModified(c *Checker, obj domain.Object) (*domain.Reason, error) {
	seq, ref, ok := sequenceOf(obj)
	if !ok {
		return nil, nil
	}
	stored, _ := c.sequences.Sequence(ref)
	if domain.SamePaths(seq.SnapshotPaths(), domain.SnapshotPathsOfSerialized(stored)) {
		return nil, nil
	}
	return &domain.Reason{
		Kind:  domain.ReasonPathsModified,
		Props: domain.NewPropSet(domain.PropPath),
	}, nil
}

// probeContentModified fires when the content fingerprint of the owning
// document differs from the stored one.
func probeContentModified(c *Checker, obj domain.Object) (*domain.Reason, error) {
	var ref domain.InternedString
	if sn, ok := obj.(*domain.CodeSnippet); ok {
		ref = sn.Ref
	} else {
		doc, ok := documentOf(obj)
		if !ok {
			return nil, nil
		}
		ref = doc.Ref
	}
	if c.checksumChanged(domain.ContentKey(ref)) {
		return &domain.Reason{
			Kind:  domain.ReasonContentModified,
			Props: domain.NewPropSet(domain.PropRawContent),
		}, nil
	}
	return nil, nil
}

// probeAttributesModified fires when per-attribute fingerprints of the
// owning document (or the configuration) differ from the stored ones. The
// reason's props are restricted to the changed attribute names; when only
// the whole-object fallback differs the props stay unrestricted.
func probeAttributesModified(c *Checker, obj domain.Object) (*domain.Reason, error) {
	var ref domain.InternedString
	var attrs map[string]any
	if cfg, ok := obj.(*domain.Config); ok {
		ref = cfg.Reference()
		attrs = cfg.Attributes
	} else {
		doc, ok := documentOf(obj)
		if !ok {
			return nil, nil
		}
		ref = doc.Ref
		attrs = doc.Attributes
	}

	var changed []string
	for name := range attrs {
		if c.checksumChanged(domain.AttributeKey(ref, name)) {
			changed = append(changed, name)
		}
	}
	if len(changed) > 0 {
		return &domain.Reason{
			Kind:  domain.ReasonAttributesModified,
			Props: domain.NewAttributeProps(changed...),
		}, nil
	}
	// Removed attributes are invisible to the per-name comparison; the
	// whole-object fingerprint catches them.
	if c.checksumChanged(domain.ObjectKey(ref)) {
		return &domain.Reason{
			Kind:  domain.ReasonAttributesModified,
			Props: domain.NewAttributeProps(),
		}, nil
	}
	return nil, nil
}

// probeNotWritten fires when no record exists of the representation ever
// having produced output. It contributes every prop, so dependents treat
// the rep as fully changed.
func probeNotWritten(c *Checker, obj domain.Object) (*domain.Reason, error) {
	rep, ok := obj.(*domain.Rep)
	if !ok {
		return nil, nil
	}
	if c.outputs.Written(rep.Reference()) {
		return nil, nil
	}
	return &domain.Reason{
		Kind:  domain.ReasonNotWritten,
		Props: domain.NewPropSet(domain.AllProps),
	}, nil
}

// probeCodeSnippetsModified fires for every object when any code unit's
// fingerprint differs from the stored one. Global, deliberately
// conservative.
func probeCodeSnippetsModified(c *Checker, _ domain.Object) (*domain.Reason, error) {
	for _, sn := range c.site.Snippets {
		if c.checksumChanged(domain.ContentKey(sn.Ref)) {
			return &domain.Reason{
				Kind:  domain.ReasonCodeSnippetsModified,
				Props: domain.NewPropSet(domain.AllProps),
			}, nil
		}
	}
	return nil, nil
}

// probeConfigurationModified fires for every object when the
// configuration's fingerprints differ. Global, deliberately conservative.
func probeConfigurationModified(c *Checker, _ domain.Object) (*domain.Reason, error) {
	if c.checksumChanged(domain.ObjectKey(c.site.Config.Reference())) {
		return &domain.Reason{
			Kind:  domain.ReasonConfigurationModified,
			Props: domain.NewPropSet(domain.AllProps),
		}, nil
	}
	return nil, nil
}

// checksumChanged compares the current fingerprint for key against the
// stored one. Absence on either side counts as changed.
func (c *Checker) checksumChanged(key domain.ChecksumKey) bool {
	current, ok := c.batch.Get(key)
	if !ok {
		return true
	}
	stored, found := c.checksums.Checksum(key)
	return !found || stored != current
}

// collectionStatus is the basic outdatedness of a tracked collection:
// outdated iff it gained members since the last snapshot. Shrinking never
// makes the collection itself outdated.
func (c *Checker) collectionStatus(kind domain.CollectionKind) domain.Status {
	added := c.deps.NewMembers(kind)
	if len(added) == 0 {
		return domain.Status{}
	}
	reasonKind := domain.ReasonItemCollectionExtended
	if kind == domain.KindLayouts {
		reasonKind = domain.ReasonLayoutCollectionExtended
	}
	var status domain.Status
	return status.Add(domain.Reason{
		Kind:       reasonKind,
		Props:      domain.NewPropSet(domain.PropRawContent),
		NewMembers: added,
	})
}
