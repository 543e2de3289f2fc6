package domain

import (
	"encoding/json"
	"sort"
	"strings"
)

// Prop identifies one aspect of an object that a change or a dependency
// edge can refer to.
type Prop uint8

const (
	// PropRawContent marks the object's uncompiled content.
	PropRawContent Prop = 1 << iota
	// PropAttributes marks the object's attribute mapping.
	PropAttributes
	// PropCompiledContent marks the object's compiled output content.
	PropCompiledContent
	// PropPath marks the object's output path(s).
	PropPath
	// PropRules marks the processing-rule sequence used for the object.
	PropRules
)

// AllProps is the union of every prop bit.
const AllProps = PropRawContent | PropAttributes | PropCompiledContent | PropPath | PropRules

// PropSet is a set of props, where the attributes prop may optionally be
// restricted to a set of attribute names. A nil attribute restriction means
// "all attributes".
type PropSet struct {
	bits  Prop
	attrs map[string]struct{}
}

// NewPropSet creates a PropSet with the given bits and no attribute
// restriction.
func NewPropSet(bits Prop) PropSet {
	return PropSet{bits: bits}
}

// NewAttributeProps creates a PropSet containing only the attributes prop,
// restricted to the given attribute names. An empty name list yields an
// unrestricted attributes prop.
func NewAttributeProps(names ...string) PropSet {
	ps := PropSet{bits: PropAttributes}
	if len(names) > 0 {
		ps.attrs = make(map[string]struct{}, len(names))
		for _, n := range names {
			ps.attrs[n] = struct{}{}
		}
	}
	return ps
}

// Bits returns the raw prop bits of the set.
func (ps PropSet) Bits() Prop {
	return ps.bits
}

// Empty reports whether the set contains no props.
func (ps PropSet) Empty() bool {
	return ps.bits == 0
}

// Has reports whether all bits in p are present in the set. The attribute
// restriction is ignored; a restricted attributes prop still counts.
func (ps PropSet) Has(p Prop) bool {
	return ps.bits&p == p
}

// AttributeNames returns the sorted attribute restriction, or nil when the
// attributes prop is unrestricted or absent.
func (ps PropSet) AttributeNames() []string {
	if ps.attrs == nil {
		return nil
	}
	names := make([]string, 0, len(ps.attrs))
	for n := range ps.attrs {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Union returns the union of two PropSets. Attribute restrictions merge;
// if either side carries an unrestricted attributes prop the result is
// unrestricted.
func (ps PropSet) Union(other PropSet) PropSet {
	res := PropSet{bits: ps.bits | other.bits}
	if res.bits&PropAttributes == 0 {
		return res
	}
	unrestricted := (ps.bits&PropAttributes != 0 && ps.attrs == nil) ||
		(other.bits&PropAttributes != 0 && other.attrs == nil)
	if unrestricted {
		return res
	}
	res.attrs = make(map[string]struct{}, len(ps.attrs)+len(other.attrs))
	for n := range ps.attrs {
		res.attrs[n] = struct{}{}
	}
	for n := range other.attrs {
		res.attrs[n] = struct{}{}
	}
	return res
}

// Intersects reports whether the two sets share at least one prop. Two
// restricted attributes props only intersect when their name sets overlap;
// an unrestricted attributes prop intersects any attributes prop.
func (ps PropSet) Intersects(other PropSet) bool {
	common := ps.bits & other.bits
	if common&^PropAttributes != 0 {
		return true
	}
	if common&PropAttributes == 0 {
		return false
	}
	if ps.attrs == nil || other.attrs == nil {
		return true
	}
	for n := range ps.attrs {
		if _, ok := other.attrs[n]; ok {
			return true
		}
	}
	return false
}

type propSetJSON struct {
	Bits       uint8    `json:"bits"`
	Restricted bool     `json:"restricted,omitzero"`
	Attributes []string `json:"attributes,omitzero"`
}

// MarshalJSON implements json.Marshaler for the persisted graph form.
func (ps PropSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(propSetJSON{
		Bits:       uint8(ps.bits),
		Restricted: ps.attrs != nil,
		Attributes: ps.AttributeNames(),
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (ps *PropSet) UnmarshalJSON(data []byte) error {
	var raw propSetJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	ps.bits = Prop(raw.Bits)
	ps.attrs = nil
	if raw.Restricted {
		ps.attrs = make(map[string]struct{}, len(raw.Attributes))
		for _, n := range raw.Attributes {
			ps.attrs[n] = struct{}{}
		}
	}
	return nil
}

// String renders the set for diagnostics, e.g. "raw_content|attributes(title)".
func (ps PropSet) String() string {
	var parts []string
	if ps.bits&PropRawContent != 0 {
		parts = append(parts, "raw_content")
	}
	if ps.bits&PropAttributes != 0 {
		if names := ps.AttributeNames(); names != nil {
			parts = append(parts, "attributes("+strings.Join(names, ",")+")")
		} else {
			parts = append(parts, "attributes")
		}
	}
	if ps.bits&PropCompiledContent != 0 {
		parts = append(parts, "compiled_content")
	}
	if ps.bits&PropPath != 0 {
		parts = append(parts, "path")
	}
	if ps.bits&PropRules != 0 {
		parts = append(parts, "rules")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}
