package domain

import (
	"path"
	"regexp"

	"go.trai.ch/zerr"
)

// CollectionKind names one of the two tracked document collections.
type CollectionKind string

const (
	// KindItems is the collection of all items.
	KindItems CollectionKind = "items"
	// KindLayouts is the collection of all layouts.
	KindLayouts CollectionKind = "layouts"
)

// ItemCollection is the ordered set of all items, keyed by reference.
type ItemCollection struct {
	items []*Item
	byRef map[InternedString]*Item
}

// NewItemCollection creates an empty ItemCollection.
func NewItemCollection() *ItemCollection {
	return &ItemCollection{byRef: make(map[InternedString]*Item)}
}

// Reference returns the collection's distinguished identity.
func (c *ItemCollection) Reference() InternedString {
	return NewInternedString(string(KindItems))
}

func (c *ItemCollection) sealedObject() {}

// Add appends an item. It returns an error if an item with the same
// reference already exists.
func (c *ItemCollection) Add(i *Item) error {
	if _, exists := c.byRef[i.Ref]; exists {
		return zerr.With(ErrItemAlreadyExists, "reference", i.Ref.String())
	}
	c.items = append(c.items, i)
	c.byRef[i.Ref] = i
	return nil
}

// Get returns the item with the given reference, or nil.
func (c *ItemCollection) Get(ref InternedString) *Item {
	return c.byRef[ref]
}

// All returns the items in insertion order.
func (c *ItemCollection) All() []*Item {
	return c.items
}

// References returns the member references in insertion order.
func (c *ItemCollection) References() []InternedString {
	refs := make([]InternedString, len(c.items))
	for i, it := range c.items {
		refs[i] = it.Ref
	}
	return refs
}

// LayoutCollection is the ordered set of all layouts, keyed by reference.
type LayoutCollection struct {
	layouts []*Layout
	byRef   map[InternedString]*Layout
}

// NewLayoutCollection creates an empty LayoutCollection.
func NewLayoutCollection() *LayoutCollection {
	return &LayoutCollection{byRef: make(map[InternedString]*Layout)}
}

// Reference returns the collection's distinguished identity.
func (c *LayoutCollection) Reference() InternedString {
	return NewInternedString(string(KindLayouts))
}

func (c *LayoutCollection) sealedObject() {}

// Add appends a layout. It returns an error if a layout with the same
// reference already exists.
func (c *LayoutCollection) Add(l *Layout) error {
	if _, exists := c.byRef[l.Ref]; exists {
		return zerr.With(ErrLayoutAlreadyExists, "reference", l.Ref.String())
	}
	c.layouts = append(c.layouts, l)
	c.byRef[l.Ref] = l
	return nil
}

// Get returns the layout with the given reference, or nil.
func (c *LayoutCollection) Get(ref InternedString) *Layout {
	return c.byRef[ref]
}

// All returns the layouts in insertion order.
func (c *LayoutCollection) All() []*Layout {
	return c.layouts
}

// References returns the member references in insertion order.
func (c *LayoutCollection) References() []InternedString {
	refs := make([]InternedString, len(c.layouts))
	for i, l := range c.layouts {
		refs[i] = l.Ref
	}
	return refs
}

// PatternKind names how a membership predicate matches references.
type PatternKind string

const (
	// PatternExact matches a reference string verbatim.
	PatternExact PatternKind = "exact"
	// PatternGlob matches with path.Match syntax.
	PatternGlob PatternKind = "glob"
	// PatternRegexp matches with a compiled regular expression.
	PatternRegexp PatternKind = "regexp"
)

// Pattern is an optional predicate restricting which collection members a
// collection dependency reacts to. A nil *Pattern matches any member.
type Pattern struct {
	Kind PatternKind
	Raw  string

	re *regexp.Regexp
}

// NewPattern compiles a predicate of the given kind.
func NewPattern(kind PatternKind, raw string) (*Pattern, error) {
	p := &Pattern{Kind: kind, Raw: raw}
	switch kind {
	case PatternExact:
	case PatternGlob:
		// Validate the glob eagerly so a bad pattern fails at record time,
		// not silently at query time.
		if _, err := path.Match(raw, ""); err != nil {
			return nil, zerr.With(ErrInvalidPattern, "pattern", raw)
		}
	case PatternRegexp:
		re, err := regexp.Compile(raw)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to compile pattern"), "pattern", raw)
		}
		p.re = re
	default:
		return nil, zerr.With(ErrInvalidPattern, "kind", string(kind))
	}
	return p, nil
}

// Match reports whether the given reference satisfies the predicate.
// A nil pattern matches everything.
func (p *Pattern) Match(ref InternedString) bool {
	if p == nil {
		return true
	}
	s := ref.String()
	switch p.Kind {
	case PatternExact:
		return s == p.Raw
	case PatternGlob:
		ok, err := path.Match(p.Raw, s)
		return err == nil && ok
	case PatternRegexp:
		return p.re.MatchString(s)
	}
	return false
}
