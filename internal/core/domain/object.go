// Package domain contains the core domain models for the outdatedness
// engine: documents, representations, typed dependency props, checksums
// and decision statuses.
package domain

// Object is the closed set of things the engine can decide outdatedness
// for: *Item, *Layout, *Rep, *Config, *ItemCollection, *LayoutCollection
// and *CodeSnippet. The unexported method seals the interface so dispatch
// by type switch stays exhaustive.
type Object interface {
	// Reference returns the stable identity of the object.
	Reference() InternedString

	sealedObject()
}

// Document is the shared state of an Item or Layout: a stable reference,
// mutable content and an attribute mapping.
type Document struct {
	Ref        InternedString
	Content    []byte
	Attributes map[string]any
}

// Item is a source document with zero or more named representations.
type Item struct {
	Document
	Reps []*Rep
}

// Reference returns the item's identity.
func (i *Item) Reference() InternedString { return i.Ref }

func (i *Item) sealedObject() {}

// Rep looks up a representation by name. Returns nil if absent.
func (i *Item) Rep(name string) *Rep {
	for _, r := range i.Reps {
		if r.Name.String() == name {
			return r
		}
	}
	return nil
}

// Layout is a source document used to wrap compiled items. Layouts have a
// single processing-rule sequence and no representations.
type Layout struct {
	Document
	Sequence ActionSequence
}

// Reference returns the layout's identity.
func (l *Layout) Reference() InternedString { return l.Ref }

func (l *Layout) sealedObject() {}

// Rep is one named output variant of an Item, defined by its action
// sequence.
type Rep struct {
	Item     *Item
	Name     InternedString
	Sequence ActionSequence
}

// Reference returns the representation's identity, derived from the
// owning item's reference and the rep name.
func (r *Rep) Reference() InternedString {
	return NewInternedString(r.Item.Ref.String() + "#" + r.Name.String())
}

func (r *Rep) sealedObject() {}

// ConfigReference is the distinguished identity of the site configuration.
const ConfigReference = "config"

// Config is the site configuration, a pseudo-document with attributes but
// no content. It participates in checksums and dependencies exactly like a
// document.
type Config struct {
	Attributes map[string]any
}

// Reference returns the configuration's distinguished identity.
func (c *Config) Reference() InternedString {
	return NewInternedString(ConfigReference)
}

func (c *Config) sealedObject() {}

// CodeSnippet is an auxiliary code unit. Any change to any snippet is a
// global rebuild signal.
type CodeSnippet struct {
	Ref     InternedString
	Content []byte
}

// Reference returns the snippet's identity.
func (c *CodeSnippet) Reference() InternedString { return c.Ref }

func (c *CodeSnippet) sealedObject() {}
