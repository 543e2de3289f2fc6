// Package outdated implements the outdatedness engine: the dependency
// store and the memoized, cycle-guarded checker that decides which
// objects must be recompiled.
package outdated

import (
	"sort"
	"sync"

	"go.trai.ch/stale/internal/core/domain"
)

// collectionDependency is one recorded dependency on a tracked collection:
// To depends on the membership of the collection, optionally restricted by
// a pattern.
type collectionDependency struct {
	kind    domain.CollectionKind
	to      domain.InternedString
	props   domain.PropSet
	pattern *domain.Pattern
}

// DependencyStore records typed edges between objects and dependencies on
// collection membership. Queries against it are order-independent with
// respect to recording order: only the set of edges and the membership
// delta matter.
type DependencyStore struct {
	site *domain.Site

	mu       sync.RWMutex
	edges    map[domain.InternedString][]domain.Dependency
	collDeps []collectionDependency

	// Membership snapshot of the previous build. Queries see no synthetic
	// edges until a snapshot has been loaded.
	prevItems   map[domain.InternedString]bool
	prevLayouts map[domain.InternedString]bool
	loaded      bool
}

// NewDependencyStore creates an empty store attached to the given site.
func NewDependencyStore(site *domain.Site) *DependencyStore {
	return &DependencyStore{
		site:  site,
		edges: make(map[domain.InternedString][]domain.Dependency),
	}
}

// RecordDependency appends an edge recording that to depends on from,
// with props naming the aspects of from that to consumed. Multiple edges
// between the same pair coexist; their props union emerges at query time.
// A nil from records an externally forced edge.
func (s *DependencyStore) RecordDependency(from, to domain.Object, props domain.PropSet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ref := to.Reference()
	s.edges[ref] = append(s.edges[ref], domain.Dependency{From: from, To: to, Props: props})
}

// RecordCollectionDependency records that to depends on the membership of
// the given collection. pattern restricts which members trigger it; nil
// means any membership change does.
func (s *DependencyStore) RecordCollectionDependency(kind domain.CollectionKind, to domain.Object, props domain.PropSet, pattern *domain.Pattern) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collDeps = append(s.collDeps, collectionDependency{
		kind:    kind,
		to:      to.Reference(),
		props:   props,
		pattern: pattern,
	})
}

// DependenciesOf returns every edge that can cause outdatedness of obj:
// the explicitly recorded edges whose consumer is obj, plus one synthetic
// forced edge per collection dependency of obj whose tracked membership
// snapshot differs from the current membership (added or removed members
// matching the pattern).
func (s *DependencyStore) DependenciesOf(obj domain.Object) []domain.Dependency {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ref := obj.Reference()
	deps := make([]domain.Dependency, len(s.edges[ref]))
	copy(deps, s.edges[ref])

	if !s.loaded {
		return deps
	}
	for _, cd := range s.collDeps {
		if cd.to != ref {
			continue
		}
		added, removed := s.delta(cd.kind)
		if anyMatch(cd.pattern, added) || anyMatch(cd.pattern, removed) {
			deps = append(deps, domain.Dependency{To: obj, Props: domain.NewPropSet(domain.AllProps)})
		}
	}
	return deps
}

// NewMembers returns the members the collection gained since the stored
// snapshot, in current collection order. Nil before any snapshot was
// loaded; shrinking never surfaces here.
func (s *DependencyStore) NewMembers(kind domain.CollectionKind) []domain.InternedString {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return nil
	}
	added, _ := s.delta(kind)
	return added
}

// delta computes added and removed member references of a collection
// relative to the snapshot. Callers hold s.mu.
func (s *DependencyStore) delta(kind domain.CollectionKind) (added, removed []domain.InternedString) {
	var current []domain.InternedString
	var prev map[domain.InternedString]bool
	switch kind {
	case domain.KindItems:
		current = s.site.Items.References()
		prev = s.prevItems
	case domain.KindLayouts:
		current = s.site.Layouts.References()
		prev = s.prevLayouts
	default:
		return nil, nil
	}

	currentSet := make(map[domain.InternedString]bool, len(current))
	for _, r := range current {
		currentSet[r] = true
		if !prev[r] {
			added = append(added, r)
		}
	}
	for r := range prev {
		if !currentSet[r] {
			removed = append(removed, r)
		}
	}
	return added, removed
}

func anyMatch(p *domain.Pattern, refs []domain.InternedString) bool {
	for _, r := range refs {
		if p.Match(r) {
			return true
		}
	}
	return false
}

// Store captures the current graph and collection membership as a
// snapshot, to be persisted as the baseline for the next build.
func (s *DependencyStore) Store() domain.GraphSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var snap domain.GraphSnapshot
	for _, edges := range s.edges {
		for _, e := range edges {
			rec := domain.DependencyRecord{To: e.To.Reference().String(), Props: e.Props}
			if e.From != nil {
				rec.From = e.From.Reference().String()
			}
			snap.Edges = append(snap.Edges, rec)
		}
	}
	// Edges are collected from a map; sort for a stable persisted form.
	sort.Slice(snap.Edges, func(i, j int) bool {
		if snap.Edges[i].To != snap.Edges[j].To {
			return snap.Edges[i].To < snap.Edges[j].To
		}
		return snap.Edges[i].From < snap.Edges[j].From
	})
	for _, cd := range s.collDeps {
		rec := domain.CollectionDependencyRecord{
			Collection: cd.kind,
			To:         cd.to.String(),
			Props:      cd.props,
		}
		if cd.pattern != nil {
			rec.PatternKind = cd.pattern.Kind
			rec.Pattern = cd.pattern.Raw
		}
		snap.CollectionEdges = append(snap.CollectionEdges, rec)
	}
	for _, r := range s.site.Items.References() {
		snap.Items = append(snap.Items, r.String())
	}
	for _, r := range s.site.Layouts.References() {
		snap.Layouts = append(snap.Layouts, r.String())
	}
	return snap
}

// Load replaces the store's contents with a persisted snapshot, resolving
// references against the attached site. Edges whose consumer no longer
// exists are dropped; edges whose upstream no longer exists load as
// forced, so consumers of deleted objects stay outdated. After Load,
// membership deltas against the snapshot become visible to queries.
func (s *DependencyStore) Load(snap domain.GraphSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.edges = make(map[domain.InternedString][]domain.Dependency)
	s.collDeps = nil

	for _, rec := range snap.Edges {
		toRef := domain.NewInternedString(rec.To)
		to := s.site.Resolve(toRef)
		if to == nil {
			continue
		}
		var from domain.Object
		if rec.From != "" {
			from = s.site.Resolve(domain.NewInternedString(rec.From))
		}
		s.edges[toRef] = append(s.edges[toRef], domain.Dependency{From: from, To: to, Props: rec.Props})
	}

	for _, rec := range snap.CollectionEdges {
		if s.site.Resolve(domain.NewInternedString(rec.To)) == nil {
			continue
		}
		var pattern *domain.Pattern
		if rec.PatternKind != "" {
			p, err := domain.NewPattern(rec.PatternKind, rec.Pattern)
			if err != nil {
				return err
			}
			pattern = p
		}
		s.collDeps = append(s.collDeps, collectionDependency{
			kind:    rec.Collection,
			to:      domain.NewInternedString(rec.To),
			props:   rec.Props,
			pattern: pattern,
		})
	}

	s.prevItems = make(map[domain.InternedString]bool, len(snap.Items))
	for _, r := range snap.Items {
		s.prevItems[domain.NewInternedString(r)] = true
	}
	s.prevLayouts = make(map[domain.InternedString]bool, len(snap.Layouts))
	for _, r := range snap.Layouts {
		s.prevLayouts[domain.NewInternedString(r)] = true
	}
	s.loaded = true
	return nil
}
