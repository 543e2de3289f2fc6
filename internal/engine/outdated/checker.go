package outdated

import (
	"fmt"
	"sync"

	"go.trai.ch/stale/internal/core/domain"
	"go.trai.ch/stale/internal/core/ports"
	"go.trai.ch/zerr"
)

// Checker decides per object whether it must be recompiled and why. It
// combines the basic (non-dependency) rules with a memoized, cycle-guarded
// walk of the dependency graph. All results are memoized for the lifetime
// of one build; a new build requires a new Checker.
type Checker struct {
	site      *domain.Site
	batch     *domain.ChecksumBatch
	checksums ports.ChecksumStore
	sequences ports.SequenceStore
	outputs   ports.OutputLog
	deps      *DependencyStore

	// mu serializes queries so the memo tables stay consistent when the
	// host fans decisions out over goroutines.
	mu        sync.Mutex
	basicMemo map[domain.InternedString]domain.Status
	depMemo   map[domain.InternedString]bool
}

// NewChecker creates a Checker over the given site state. batch holds the
// fingerprints of the current state; the stores hold what the previous
// build recorded.
func NewChecker(
	site *domain.Site,
	batch *domain.ChecksumBatch,
	checksums ports.ChecksumStore,
	sequences ports.SequenceStore,
	outputs ports.OutputLog,
	deps *DependencyStore,
) *Checker {
	return &Checker{
		site:      site,
		batch:     batch,
		checksums: checksums,
		sequences: sequences,
		outputs:   outputs,
		deps:      deps,
		basicMemo: make(map[domain.InternedString]domain.Status),
		depMemo:   make(map[domain.InternedString]bool),
	}
}

// Outdated reports whether the object must be recompiled.
func (c *Checker) Outdated(obj domain.Object) (bool, error) {
	status, err := c.Status(obj)
	if err != nil {
		return false, err
	}
	return status.Outdated(), nil
}

// Reason returns the user-facing reason the object is outdated, or nil
// when it is fresh.
func (c *Checker) Reason(obj domain.Object) (*domain.Reason, error) {
	status, err := c.Status(obj)
	if err != nil {
		return nil, err
	}
	return status.First(), nil
}

// Status returns the full outdatedness status: every contributing basic
// reason, plus a generic dependencies-outdated reason when a transitively
// reachable dependency changed in a relevant way.
func (c *Checker) Status(obj domain.Object) (domain.Status, error) {
	if obj == nil {
		return domain.Status{}, zerr.With(zerr.Wrap(domain.ErrUnsupportedObject, "cannot check object"), "kind", "nil")
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	status, err := c.basicStatus(obj)
	if err != nil {
		return domain.Status{}, err
	}
	depOutdated, _, err := c.outdatedDueToDeps(obj, nil)
	if err != nil {
		return domain.Status{}, err
	}
	if depOutdated {
		status = status.Add(domain.Reason{Kind: domain.ReasonDependenciesOutdated})
	}
	return status, nil
}

// basicStatus evaluates the non-dependency rules for the object, memoized
// by reference. Callers hold c.mu.
func (c *Checker) basicStatus(obj domain.Object) (domain.Status, error) {
	ref := obj.Reference()
	if status, ok := c.basicMemo[ref]; ok {
		return status, nil
	}

	var status domain.Status
	var err error
	switch o := obj.(type) {
	case *domain.Item:
		// An item's basic status is the union over all its representations.
		// Having no representations is not itself an outdatedness cause.
		for _, rep := range o.Reps {
			repStatus, repErr := c.basicStatus(rep)
			if repErr != nil {
				return domain.Status{}, repErr
			}
			status = status.Merge(repStatus)
		}
	case *domain.Rep:
		status, err = c.applyRules(repRules, o)
	case *domain.Layout:
		status, err = c.applyRules(layoutRules, o)
	case *domain.Config:
		status, err = c.applyRules(configRules, o)
	case *domain.CodeSnippet:
		status, err = c.applyRules(snippetRules, o)
	case *domain.ItemCollection:
		status = c.collectionStatus(domain.KindItems)
	case *domain.LayoutCollection:
		status = c.collectionStatus(domain.KindLayouts)
	default:
		return domain.Status{}, zerr.With(zerr.Wrap(domain.ErrUnsupportedObject, "cannot check object"), "kind", fmt.Sprintf("%T", obj))
	}
	if err != nil {
		return domain.Status{}, err
	}

	c.basicMemo[ref] = status
	return status, nil
}

// outdatedDueToDeps walks the dependency graph backward from obj. visited
// is the copy-on-extend set of references on the current traversal path;
// re-entering one yields a local false. The second return value reports
// whether the walk was complete: a false derived from a truncated walk is
// not memoized, so a later query entering the same object from a
// different path still finds a true cause behind the cycle. A true result
// is always complete, since the witness edge needed no truncated subwalk.
// Callers hold c.mu.
func (c *Checker) outdatedDueToDeps(obj domain.Object, visited map[domain.InternedString]bool) (bool, bool, error) {
	// Dependency checks operate on items, never individual reps.
	if rep, ok := obj.(*domain.Rep); ok {
		obj = rep.Item
	}
	ref := obj.Reference()

	if result, ok := c.depMemo[ref]; ok {
		return result, true, nil
	}
	if visited[ref] {
		return false, false, nil
	}

	result := false
	complete := true
	for _, edge := range c.deps.DependenciesOf(obj) {
		caused, edgeComplete, err := c.edgeCausesOutdatedness(edge, ref, visited)
		if err != nil {
			return false, false, err
		}
		if caused {
			result = true
			complete = true
			break
		}
		if !edgeComplete {
			complete = false
		}
	}

	if complete {
		c.depMemo[ref] = result
	}
	return result, complete, nil
}

// edgeCausesOutdatedness reports whether one incoming edge outdates its
// consumer: forced edges always do; otherwise the edge's props must
// intersect the basic props of its upstream object, or the upstream must
// itself be dependency-outdated.
func (c *Checker) edgeCausesOutdatedness(edge domain.Dependency, consumer domain.InternedString, visited map[domain.InternedString]bool) (bool, bool, error) {
	if edge.Forced() {
		return true, true, nil
	}
	status, err := c.basicStatus(edge.From)
	if err != nil {
		return false, false, err
	}
	if status.Props.Intersects(edge.Props) {
		return true, true, nil
	}
	return c.outdatedDueToDeps(edge.From, extend(visited, consumer))
}

// extend returns a copy of visited with ref added.
func extend(visited map[domain.InternedString]bool, ref domain.InternedString) map[domain.InternedString]bool {
	next := make(map[domain.InternedString]bool, len(visited)+1)
	for k := range visited {
		next[k] = true
	}
	next[ref] = true
	return next
}
