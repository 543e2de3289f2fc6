package outdated_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stale/internal/core/domain"
	"go.trai.ch/stale/internal/engine/outdated"
)

func TestChecker_DependencyOnAttributes(t *testing.T) {
	site := testSite(t)
	st := newMemState()
	recordState(t, site, st, true)

	consumer := site.Items.Get(domain.NewInternedString("/about/"))
	upstream := site.Items.Get(domain.NewInternedString("/articles/go/"))

	deps := outdated.NewDependencyStore(site)
	deps.RecordDependency(upstream, consumer, domain.NewAttributeProps())

	t.Run("attribute change propagates", func(t *testing.T) {
		upstream.Attributes["title"] = "Go, revisited"
		defer func() { upstream.Attributes["title"] = "Go" }()

		c := newChecker(t, site, st, deps)
		requireReason(t, c, consumer, domain.ReasonDependenciesOutdated)
	})

	t.Run("content change does not", func(t *testing.T) {
		upstream.Content = []byte("rewritten")

		c := newChecker(t, site, st, deps)
		// The upstream itself is outdated, but its change is outside the
		// edge's active props.
		requireReason(t, c, upstream, domain.ReasonContentModified)
		requireFresh(t, c, consumer)
	})
}

func TestChecker_DependencyOnContent(t *testing.T) {
	site := testSite(t)
	st := newMemState()
	recordState(t, site, st, true)

	consumer := site.Items.Get(domain.NewInternedString("/about/"))
	upstream := site.Items.Get(domain.NewInternedString("/articles/go/"))

	deps := outdated.NewDependencyStore(site)
	deps.RecordDependency(upstream, consumer, domain.NewPropSet(domain.PropRawContent))

	upstream.Content = []byte("rewritten")

	c := newChecker(t, site, st, deps)
	requireReason(t, c, consumer, domain.ReasonDependenciesOutdated)
}

func TestChecker_DependencyChainIsTransitive(t *testing.T) {
	site := testSite(t)
	first := addItem(t, site, "/a/", "a", map[string]any{})
	second := addItem(t, site, "/b/", "b", map[string]any{})
	third := addItem(t, site, "/c/", "c", map[string]any{})
	st := newMemState()
	recordState(t, site, st, true)

	deps := outdated.NewDependencyStore(site)
	deps.RecordDependency(second, first, domain.NewPropSet(domain.PropRawContent))
	deps.RecordDependency(third, second, domain.NewPropSet(domain.PropRawContent))

	third.Content = []byte("changed at the far end")

	c := newChecker(t, site, st, deps)
	requireReason(t, c, third, domain.ReasonContentModified)
	requireReason(t, c, second, domain.ReasonDependenciesOutdated)
	requireReason(t, c, first, domain.ReasonDependenciesOutdated)
}

func TestChecker_DependencyChainStopsOnPropMismatch(t *testing.T) {
	site := testSite(t)
	first := addItem(t, site, "/a/", "a", map[string]any{"x": 1})
	second := addItem(t, site, "/b/", "b", map[string]any{"x": 1})
	third := addItem(t, site, "/c/", "c", map[string]any{"x": 1})
	st := newMemState()
	recordState(t, site, st, true)

	deps := outdated.NewDependencyStore(site)
	deps.RecordDependency(second, first, domain.NewAttributeProps())
	deps.RecordDependency(third, second, domain.NewAttributeProps())

	// Content is not among the active props anywhere along the chain.
	third.Content = []byte("changed at the far end")

	c := newChecker(t, site, st, deps)
	requireReason(t, c, third, domain.ReasonContentModified)
	requireFresh(t, c, second)
	requireFresh(t, c, first)
}

func TestChecker_ForcedEdge(t *testing.T) {
	site := testSite(t)
	st := newMemState()
	recordState(t, site, st, true)

	consumer := site.Items.Get(domain.NewInternedString("/about/"))
	deps := outdated.NewDependencyStore(site)
	deps.RecordDependency(nil, consumer, domain.NewPropSet(0))

	c := newChecker(t, site, st, deps)
	requireReason(t, c, consumer, domain.ReasonDependenciesOutdated)
}

func TestChecker_ConfigDependencyRestricted(t *testing.T) {
	site := testSite(t)
	st := newMemState()
	recordState(t, site, st, true)

	// Layouts carry no global configuration rule, so only the recorded
	// dependency can make them outdated here.
	layout := site.Layouts.All()[0]
	deps := outdated.NewDependencyStore(site)
	deps.RecordDependency(site.Config, layout, domain.NewAttributeProps("title"))

	t.Run("unrelated key stays fresh", func(t *testing.T) {
		site.Config.Attributes["author"] = "sam"
		defer func() { site.Config.Attributes["author"] = "jo" }()

		c := newChecker(t, site, st, deps)
		requireFresh(t, c, layout)
	})

	t.Run("named key propagates", func(t *testing.T) {
		site.Config.Attributes["title"] = "Renamed Site"

		c := newChecker(t, site, st, deps)
		requireReason(t, c, layout, domain.ReasonDependenciesOutdated)
	})
}

func TestChecker_DependencyCycle(t *testing.T) {
	site := testSite(t)
	first := addItem(t, site, "/a/", "a", map[string]any{})
	second := addItem(t, site, "/b/", "b", map[string]any{})
	third := addItem(t, site, "/c/", "c", map[string]any{})
	st := newMemState()
	recordState(t, site, st, true)

	deps := outdated.NewDependencyStore(site)
	deps.RecordDependency(second, first, domain.NewPropSet(domain.PropRawContent))
	deps.RecordDependency(first, second, domain.NewPropSet(domain.PropRawContent))
	deps.RecordDependency(third, first, domain.NewPropSet(domain.PropRawContent))

	t.Run("quiet cycle terminates fresh", func(t *testing.T) {
		c := newChecker(t, site, st, deps)
		requireFresh(t, c, first)
		requireFresh(t, c, second)
	})

	t.Run("cause outside the cycle still propagates", func(t *testing.T) {
		third.Content = []byte("changed")

		c := newChecker(t, site, st, deps)
		requireReason(t, c, first, domain.ReasonDependenciesOutdated)
		requireReason(t, c, second, domain.ReasonDependenciesOutdated)
	})

	t.Run("truncated subwalk is not memoized", func(t *testing.T) {
		// Querying /a/ first evaluates /b/ as a subwalk that the cycle
		// guard cuts short before /b/ can see the cause behind /a/. A
		// later direct query of /b/ must still find it.
		c := newChecker(t, site, st, deps)
		out, err := c.Outdated(first)
		require.NoError(t, err)
		require.True(t, out)
		requireReason(t, c, second, domain.ReasonDependenciesOutdated)
	})
}

func TestChecker_SelfDependency(t *testing.T) {
	site := testSite(t)
	st := newMemState()
	recordState(t, site, st, true)

	item := site.Items.Get(domain.NewInternedString("/about/"))
	deps := outdated.NewDependencyStore(site)
	deps.RecordDependency(item, item, domain.NewPropSet(domain.PropRawContent))

	c := newChecker(t, site, st, deps)
	requireFresh(t, c, item)
}

func TestChecker_ItemCollectionExtended(t *testing.T) {
	site := testSite(t)
	st := newMemState()
	recordState(t, site, st, true)

	consumer := site.Items.Get(domain.NewInternedString("/about/"))
	bystander := site.Items.Get(domain.NewInternedString("/articles/go/"))

	deps := outdated.NewDependencyStore(site)
	deps.RecordCollectionDependency(domain.KindItems, consumer, domain.NewPropSet(domain.PropRawContent), nil)
	snap := deps.Store()

	added := addItem(t, site, "/articles/rust/", "all about rust", map[string]any{"title": "Rust"})
	require.NoError(t, deps.Load(snap))

	c := newChecker(t, site, st, deps)
	reason := requireReason(t, c, site.Items, domain.ReasonItemCollectionExtended)
	assert.Equal(t, []domain.InternedString{added.Ref}, reason.NewMembers)
	assert.True(t, reason.Props.Has(domain.PropRawContent))

	requireReason(t, c, consumer, domain.ReasonDependenciesOutdated)
	requireFresh(t, c, bystander)
	requireFresh(t, c, site.Layouts)
}

func TestChecker_ItemCollectionPatternRestricted(t *testing.T) {
	site := testSite(t)
	st := newMemState()
	recordState(t, site, st, true)

	articles := site.Items.Get(domain.NewInternedString("/articles/go/"))
	about := site.Items.Get(domain.NewInternedString("/about/"))

	matching, err := domain.NewPattern(domain.PatternGlob, "/articles/*/")
	require.NoError(t, err)
	other, err := domain.NewPattern(domain.PatternGlob, "/pages/*/")
	require.NoError(t, err)

	deps := outdated.NewDependencyStore(site)
	deps.RecordCollectionDependency(domain.KindItems, articles, domain.NewPropSet(domain.PropRawContent), matching)
	deps.RecordCollectionDependency(domain.KindItems, about, domain.NewPropSet(domain.PropRawContent), other)
	snap := deps.Store()

	addItem(t, site, "/articles/rust/", "all about rust", map[string]any{"title": "Rust"})
	require.NoError(t, deps.Load(snap))

	c := newChecker(t, site, st, deps)
	requireReason(t, c, articles, domain.ReasonDependenciesOutdated)
	requireFresh(t, c, about)
}

func TestChecker_ItemCollectionShrunk(t *testing.T) {
	site := testSite(t)
	removed := addItem(t, site, "/obsolete/", "old", map[string]any{})
	st := newMemState()
	recordState(t, site, st, true)

	consumer := site.Items.Get(domain.NewInternedString("/about/"))
	deps := outdated.NewDependencyStore(site)
	deps.RecordCollectionDependency(domain.KindItems, consumer, domain.NewPropSet(domain.PropRawContent), nil)
	snap := deps.Store()

	// Rebuild the site without the obsolete item.
	next := domain.NewSite()
	for _, item := range site.Items.All() {
		if item.Ref == removed.Ref {
			continue
		}
		require.NoError(t, next.Items.Add(item))
	}
	for _, layout := range site.Layouts.All() {
		require.NoError(t, next.Layouts.Add(layout))
	}
	next.Config = site.Config
	next.Snippets = site.Snippets

	nextDeps := outdated.NewDependencyStore(next)
	require.NoError(t, nextDeps.Load(snap))

	c := newChecker(t, next, st, nextDeps)
	// Shrinking never extends the collection, but it does force consumers
	// that depend on its membership.
	requireFresh(t, c, next.Items)
	requireReason(t, c, next.Items.Get(consumer.Ref), domain.ReasonDependenciesOutdated)
}

func TestChecker_ItemCollectionShrunkPatternRestricted(t *testing.T) {
	site := testSite(t)
	removed := addItem(t, site, "/articles/old/", "stale draft", map[string]any{})
	st := newMemState()
	recordState(t, site, st, true)

	articles := site.Items.Get(domain.NewInternedString("/articles/go/"))
	about := site.Items.Get(domain.NewInternedString("/about/"))

	matching, err := domain.NewPattern(domain.PatternGlob, "/articles/*/")
	require.NoError(t, err)
	other, err := domain.NewPattern(domain.PatternGlob, "/pages/*/")
	require.NoError(t, err)

	deps := outdated.NewDependencyStore(site)
	deps.RecordCollectionDependency(domain.KindItems, articles, domain.NewPropSet(domain.PropRawContent), matching)
	deps.RecordCollectionDependency(domain.KindItems, about, domain.NewPropSet(domain.PropRawContent), other)
	snap := deps.Store()

	next := domain.NewSite()
	for _, item := range site.Items.All() {
		if item.Ref == removed.Ref {
			continue
		}
		require.NoError(t, next.Items.Add(item))
	}
	for _, layout := range site.Layouts.All() {
		require.NoError(t, next.Layouts.Add(layout))
	}
	next.Config = site.Config
	next.Snippets = site.Snippets

	nextDeps := outdated.NewDependencyStore(next)
	require.NoError(t, nextDeps.Load(snap))

	c := newChecker(t, next, st, nextDeps)
	// A removal is a membership change for any dependency whose pattern
	// the removed member matched.
	requireReason(t, c, next.Items.Get(articles.Ref), domain.ReasonDependenciesOutdated)
	requireFresh(t, c, next.Items.Get(about.Ref))
}

func TestChecker_LayoutCollectionExtended(t *testing.T) {
	site := testSite(t)
	st := newMemState()
	recordState(t, site, st, true)

	deps := outdated.NewDependencyStore(site)
	snap := deps.Store()

	added := addLayout(t, site, "/article/", "<article><%= yield %></article>")
	require.NoError(t, deps.Load(snap))

	c := newChecker(t, site, st, deps)
	reason := requireReason(t, c, site.Layouts, domain.ReasonLayoutCollectionExtended)
	assert.Equal(t, []domain.InternedString{added.Ref}, reason.NewMembers)
	requireFresh(t, c, site.Items)
}
