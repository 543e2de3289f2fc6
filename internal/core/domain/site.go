package domain

// Site is the full in-memory state the engine decides over: all items and
// layouts, the configuration, and the auxiliary code snippets, each as of
// "now". Loading it is the data-source layer's job.
type Site struct {
	Items    *ItemCollection
	Layouts  *LayoutCollection
	Config   *Config
	Snippets []*CodeSnippet
}

// NewSite creates an empty site with an empty configuration.
func NewSite() *Site {
	return &Site{
		Items:   NewItemCollection(),
		Layouts: NewLayoutCollection(),
		Config:  &Config{Attributes: make(map[string]any)},
	}
}

// Resolve maps a reference back to the live object it names: an item, a
// layout, a code snippet, the configuration or a collection. Returns nil
// when nothing matches.
func (s *Site) Resolve(ref InternedString) Object {
	switch ref.String() {
	case ConfigReference:
		return s.Config
	case string(KindItems):
		return s.Items
	case string(KindLayouts):
		return s.Layouts
	}
	if item := s.Items.Get(ref); item != nil {
		return item
	}
	if layout := s.Layouts.Get(ref); layout != nil {
		return layout
	}
	for _, sn := range s.Snippets {
		if sn.Ref == ref {
			return sn
		}
	}
	return nil
}
