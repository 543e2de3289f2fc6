package outdated_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stale/internal/adapters/checksum"
	"go.trai.ch/stale/internal/core/domain"
	"go.trai.ch/stale/internal/engine/outdated"
)

// memState is an in-memory stand-in for the persisted build state.
type memState struct {
	checksums map[domain.ChecksumKey]string
	sequences map[domain.InternedString]string
	written   map[domain.InternedString]bool
}

func newMemState() *memState {
	return &memState{
		checksums: make(map[domain.ChecksumKey]string),
		sequences: make(map[domain.InternedString]string),
		written:   make(map[domain.InternedString]bool),
	}
}

func (m *memState) Checksum(key domain.ChecksumKey) (string, bool) {
	sum, ok := m.checksums[key]
	return sum, ok
}

func (m *memState) Record(key domain.ChecksumKey, sum string) {
	m.checksums[key] = sum
}

func (m *memState) Sequence(ref domain.InternedString) (string, bool) {
	seq, ok := m.sequences[ref]
	return seq, ok
}

func (m *memState) RecordSequence(ref domain.InternedString, serialized string) {
	m.sequences[ref] = serialized
}

func (m *memState) Written(ref domain.InternedString) bool {
	return m.written[ref]
}

func (m *memState) MarkWritten(ref domain.InternedString) {
	m.written[ref] = true
}

// addItem adds an item with a single default rep whose sequence filters
// through markdown and writes a final snapshot under ref.
func addItem(t *testing.T, site *domain.Site, ref, content string, attrs map[string]any) *domain.Item {
	t.Helper()
	item := &domain.Item{Document: domain.Document{
		Ref:        domain.NewInternedString(ref),
		Content:    []byte(content),
		Attributes: attrs,
	}}
	item.Reps = []*domain.Rep{{
		Item: item,
		Name: domain.NewInternedString("default"),
		Sequence: domain.ActionSequence{
			{Filter: "markdown"},
			{Snapshot: "last", Path: ref + "index.html"},
		},
	}}
	require.NoError(t, site.Items.Add(item))
	return item
}

func addLayout(t *testing.T, site *domain.Site, ref, content string) *domain.Layout {
	t.Helper()
	layout := &domain.Layout{
		Document: domain.Document{
			Ref:        domain.NewInternedString(ref),
			Content:    []byte(content),
			Attributes: map[string]any{"kind": "wrapper"},
		},
		Sequence: domain.ActionSequence{{Filter: "erb"}},
	}
	require.NoError(t, site.Layouts.Add(layout))
	return layout
}

func testSite(t *testing.T) *domain.Site {
	t.Helper()
	site := domain.NewSite()
	addItem(t, site, "/about/", "about this site", map[string]any{"title": "About"})
	addItem(t, site, "/articles/go/", "all about go", map[string]any{"title": "Go", "draft": false})
	addLayout(t, site, "/default/", "<html><%= yield %></html>")
	site.Config.Attributes = map[string]any{"title": "Test Site", "author": "jo"}
	site.Snippets = append(site.Snippets, &domain.CodeSnippet{
		Ref:     domain.NewInternedString("lib/helpers.rb"),
		Content: []byte("def helper; end"),
	})
	return site
}

// recordState persists the current site state the way a completed build
// would: all fingerprints, all action sequences, and (optionally) the
// output log.
func recordState(t *testing.T, site *domain.Site, st *memState, markWritten bool) {
	t.Helper()
	batch, err := checksum.New().BatchFor(site)
	require.NoError(t, err)
	for _, key := range batch.Keys() {
		sum, _ := batch.Get(key)
		st.Record(key, sum)
	}
	for _, item := range site.Items.All() {
		for _, rep := range item.Reps {
			serialized, serr := rep.Sequence.Serialize()
			require.NoError(t, serr)
			st.RecordSequence(rep.Reference(), serialized)
			if markWritten {
				st.MarkWritten(rep.Reference())
			}
		}
	}
	for _, layout := range site.Layouts.All() {
		serialized, serr := layout.Sequence.Serialize()
		require.NoError(t, serr)
		st.RecordSequence(layout.Reference(), serialized)
	}
}

// newChecker builds a checker over the site's current state. A nil deps
// gets an empty dependency store.
func newChecker(t *testing.T, site *domain.Site, st *memState, deps *outdated.DependencyStore) *outdated.Checker {
	t.Helper()
	batch, err := checksum.New().BatchFor(site)
	require.NoError(t, err)
	if deps == nil {
		deps = outdated.NewDependencyStore(site)
	}
	return outdated.NewChecker(site, batch, st, st, st, deps)
}

func requireFresh(t *testing.T, c *outdated.Checker, obj domain.Object) {
	t.Helper()
	outdatedNow, err := c.Outdated(obj)
	require.NoError(t, err)
	assert.False(t, outdatedNow, "expected %s to be fresh", obj.Reference())
}

func requireReason(t *testing.T, c *outdated.Checker, obj domain.Object, kind domain.ReasonKind) *domain.Reason {
	t.Helper()
	reason, err := c.Reason(obj)
	require.NoError(t, err)
	require.NotNil(t, reason, "expected %s to be outdated", obj.Reference())
	assert.Equal(t, kind, reason.Kind)
	return reason
}

func TestChecker_FreshAfterRecord(t *testing.T) {
	site := testSite(t)
	st := newMemState()
	recordState(t, site, st, true)

	c := newChecker(t, site, st, nil)
	for _, item := range site.Items.All() {
		requireFresh(t, c, item)
		for _, rep := range item.Reps {
			requireFresh(t, c, rep)
		}
	}
	for _, layout := range site.Layouts.All() {
		requireFresh(t, c, layout)
	}
	requireFresh(t, c, site.Config)
	requireFresh(t, c, site.Snippets[0])
	requireFresh(t, c, site.Items)
	requireFresh(t, c, site.Layouts)
}

func TestChecker_EverythingOutdatedOnFirstBuild(t *testing.T) {
	site := testSite(t)
	c := newChecker(t, site, newMemState(), nil)

	item := site.Items.Get(domain.NewInternedString("/about/"))
	// With nothing recorded, the sequence comparison fires first.
	requireReason(t, c, item, domain.ReasonRulesModified)
	requireReason(t, c, site.Layouts.All()[0], domain.ReasonRulesModified)
}

func TestChecker_NotWrittenIsPrimaryWhenOnlyOutputMissing(t *testing.T) {
	site := testSite(t)
	st := newMemState()
	recordState(t, site, st, false)

	c := newChecker(t, site, st, nil)
	rep := site.Items.Get(domain.NewInternedString("/about/")).Reps[0]
	reason := requireReason(t, c, rep, domain.ReasonNotWritten)
	assert.True(t, reason.Props.Has(domain.AllProps))
}

func TestChecker_RulesModified(t *testing.T) {
	site := testSite(t)
	st := newMemState()
	recordState(t, site, st, true)

	rep := site.Items.Get(domain.NewInternedString("/about/")).Reps[0]
	rep.Sequence[0].Filter = "asciidoc"

	c := newChecker(t, site, st, nil)
	reason := requireReason(t, c, rep, domain.ReasonRulesModified)
	assert.True(t, reason.Props.Has(domain.PropRules))

	// A filter swap leaves the snapshot paths untouched.
	status, err := c.Status(rep)
	require.NoError(t, err)
	for _, r := range status.Reasons {
		assert.NotEqual(t, domain.ReasonPathsModified, r.Kind)
	}

	// The owning item aggregates its reps.
	requireReason(t, c, rep.Item, domain.ReasonRulesModified)
	// Other items are untouched.
	requireFresh(t, c, site.Items.Get(domain.NewInternedString("/articles/go/")))
}

func TestChecker_PathsModified(t *testing.T) {
	site := testSite(t)
	st := newMemState()
	recordState(t, site, st, true)

	rep := site.Items.Get(domain.NewInternedString("/about/")).Reps[0]
	rep.Sequence[1].Path = "/about.html"

	c := newChecker(t, site, st, nil)
	// Changing a path also changes the serialized sequence, so the rules
	// comparison fires first; the path comparison still contributes.
	status, err := c.Status(rep)
	require.NoError(t, err)
	require.True(t, status.Outdated())
	kinds := make([]domain.ReasonKind, 0, len(status.Reasons))
	for _, r := range status.Reasons {
		kinds = append(kinds, r.Kind)
	}
	assert.Contains(t, kinds, domain.ReasonRulesModified)
	assert.Contains(t, kinds, domain.ReasonPathsModified)
	assert.True(t, status.Props.Has(domain.PropPath))
}

func TestChecker_ContentModified(t *testing.T) {
	site := testSite(t)
	item := site.Items.Get(domain.NewInternedString("/about/"))
	item.Reps = append(item.Reps, &domain.Rep{
		Item:     item,
		Name:     domain.NewInternedString("feed"),
		Sequence: domain.ActionSequence{{Snapshot: "last", Path: "/about.xml"}},
	})
	st := newMemState()
	recordState(t, site, st, true)

	item.Content = []byte("rewritten")

	c := newChecker(t, site, st, nil)
	// Every rep of the item reports the change.
	for _, rep := range item.Reps {
		reason := requireReason(t, c, rep, domain.ReasonContentModified)
		assert.True(t, reason.Props.Has(domain.PropRawContent))
	}
	requireReason(t, c, item, domain.ReasonContentModified)
}

func TestChecker_AttributesModified(t *testing.T) {
	t.Run("changed value restricts to its name", func(t *testing.T) {
		site := testSite(t)
		st := newMemState()
		recordState(t, site, st, true)

		item := site.Items.Get(domain.NewInternedString("/about/"))
		item.Attributes["title"] = "About Us"

		c := newChecker(t, site, st, nil)
		reason := requireReason(t, c, item.Reps[0], domain.ReasonAttributesModified)
		assert.Equal(t, []string{"title"}, reason.Props.AttributeNames())
	})

	t.Run("added attribute restricts to its name", func(t *testing.T) {
		site := testSite(t)
		st := newMemState()
		recordState(t, site, st, true)

		item := site.Items.Get(domain.NewInternedString("/about/"))
		item.Attributes["subtitle"] = "who we are"

		c := newChecker(t, site, st, nil)
		reason := requireReason(t, c, item.Reps[0], domain.ReasonAttributesModified)
		assert.Equal(t, []string{"subtitle"}, reason.Props.AttributeNames())
	})

	t.Run("removed attribute is unrestricted", func(t *testing.T) {
		site := testSite(t)
		st := newMemState()
		recordState(t, site, st, true)

		item := site.Items.Get(domain.NewInternedString("/about/"))
		delete(item.Attributes, "title")

		c := newChecker(t, site, st, nil)
		reason := requireReason(t, c, item.Reps[0], domain.ReasonAttributesModified)
		assert.Nil(t, reason.Props.AttributeNames())
	})
}

func TestChecker_CodeSnippetsModified(t *testing.T) {
	site := testSite(t)
	st := newMemState()
	recordState(t, site, st, true)

	site.Snippets[0].Content = []byte("def helper; 42; end")

	c := newChecker(t, site, st, nil)
	// Every item is outdated; the snippet itself reports a content change.
	for _, item := range site.Items.All() {
		requireReason(t, c, item, domain.ReasonCodeSnippetsModified)
	}
	requireReason(t, c, site.Snippets[0], domain.ReasonContentModified)
	// Layouts do not carry the global code rule.
	requireFresh(t, c, site.Layouts.All()[0])
}

func TestChecker_ConfigurationModified(t *testing.T) {
	site := testSite(t)
	st := newMemState()
	recordState(t, site, st, true)

	site.Config.Attributes["author"] = "sam"

	c := newChecker(t, site, st, nil)
	for _, item := range site.Items.All() {
		requireReason(t, c, item, domain.ReasonConfigurationModified)
	}
	reason := requireReason(t, c, site.Config, domain.ReasonAttributesModified)
	assert.Equal(t, []string{"author"}, reason.Props.AttributeNames())
}

func TestChecker_MemoizedAcrossQueries(t *testing.T) {
	site := testSite(t)
	st := newMemState()
	recordState(t, site, st, true)

	item := site.Items.Get(domain.NewInternedString("/about/"))
	c := newChecker(t, site, st, nil)
	requireFresh(t, c, item)

	// Mutating after the first query must not change this checker's
	// answer: results hold for the lifetime of one build.
	item.Content = []byte("changed after the fact")
	requireFresh(t, c, item)
}

func TestChecker_NilObject(t *testing.T) {
	site := testSite(t)
	c := newChecker(t, site, newMemState(), nil)

	_, err := c.Status(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnsupportedObject))
}
