package domain_test

import (
	"encoding/json"
	"testing"

	"go.trai.ch/stale/internal/core/domain"
)

func TestPropSet_Intersects(t *testing.T) {
	tests := []struct {
		name string
		a    domain.PropSet
		b    domain.PropSet
		want bool
	}{
		{
			name: "disjoint bits",
			a:    domain.NewPropSet(domain.PropRawContent),
			b:    domain.NewPropSet(domain.PropPath),
			want: false,
		},
		{
			name: "shared bit",
			a:    domain.NewPropSet(domain.PropRawContent | domain.PropRules),
			b:    domain.NewPropSet(domain.PropRules),
			want: true,
		},
		{
			name: "unrestricted attributes meets restricted",
			a:    domain.NewAttributeProps(),
			b:    domain.NewAttributeProps("title"),
			want: true,
		},
		{
			name: "restricted attributes overlap",
			a:    domain.NewAttributeProps("title", "author"),
			b:    domain.NewAttributeProps("title"),
			want: true,
		},
		{
			name: "restricted attributes disjoint",
			a:    domain.NewAttributeProps("author"),
			b:    domain.NewAttributeProps("title"),
			want: false,
		},
		{
			name: "attributes never meet raw content",
			a:    domain.NewAttributeProps("title"),
			b:    domain.NewPropSet(domain.PropRawContent),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects() = %v, want %v", got, tt.want)
			}
			// Intersection is symmetric.
			if got := tt.b.Intersects(tt.a); got != tt.want {
				t.Errorf("reverse Intersects() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPropSet_Union(t *testing.T) {
	a := domain.NewAttributeProps("title")
	b := domain.NewAttributeProps("author")

	u := a.Union(b)
	names := u.AttributeNames()
	if len(names) != 2 || names[0] != "author" || names[1] != "title" {
		t.Fatalf("expected merged restriction [author title], got %v", names)
	}

	// Union with an unrestricted side drops the restriction.
	u = a.Union(domain.NewAttributeProps())
	if u.AttributeNames() != nil {
		t.Errorf("expected unrestricted union, got %v", u.AttributeNames())
	}

	u = a.Union(domain.NewPropSet(domain.PropRules))
	if !u.Has(domain.PropRules) || !u.Has(domain.PropAttributes) {
		t.Errorf("expected rules and attributes in union, got %s", u)
	}
	if got := u.AttributeNames(); len(got) != 1 || got[0] != "title" {
		t.Errorf("expected restriction to survive bit union, got %v", got)
	}
}

func TestPropSet_JSONRoundtrip(t *testing.T) {
	original := domain.NewAttributeProps("title").Union(domain.NewPropSet(domain.PropPath))

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded domain.PropSet
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if decoded.Bits() != original.Bits() {
		t.Errorf("bits mismatch: %v != %v", decoded.Bits(), original.Bits())
	}
	names := decoded.AttributeNames()
	if len(names) != 1 || names[0] != "title" {
		t.Errorf("expected restriction [title], got %v", names)
	}
}

func TestPropSet_String(t *testing.T) {
	ps := domain.NewPropSet(domain.PropRawContent).Union(domain.NewAttributeProps("title"))
	if got := ps.String(); got != "raw_content|attributes(title)" {
		t.Errorf("unexpected rendering: %s", got)
	}
	if got := domain.NewPropSet(0).String(); got != "none" {
		t.Errorf("unexpected rendering for empty set: %s", got)
	}
}
