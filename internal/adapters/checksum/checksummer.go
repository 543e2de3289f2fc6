// Package checksum implements fingerprinting of site objects with xxhash.
package checksum

import (
	"fmt"
	"sort"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/stale/internal/core/domain"
	"go.trai.ch/stale/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.Checksummer = (*Checksummer)(nil)

// Checksummer computes xxhash fingerprints over content, attribute values
// and whole attribute mappings. Fingerprints are exact strings; the engine
// never normalizes beyond byte equality.
type Checksummer struct{}

// New creates a new Checksummer.
func New() *Checksummer {
	return &Checksummer{}
}

// ContentChecksum fingerprints raw content bytes.
func (c *Checksummer) ContentChecksum(content []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(content))
}

// ValueChecksum fingerprints a single attribute value via its canonical
// YAML form. yaml.v3 marshals map keys in sorted order, which keeps
// nested values stable.
func (c *Checksummer) ValueChecksum(value any) (string, error) {
	data, err := yaml.Marshal(value)
	if err != nil {
		return "", zerr.Wrap(err, "failed to serialize attribute value")
	}
	return fmt.Sprintf("%016x", xxhash.Sum64(data)), nil
}

// attributesChecksum fingerprints a whole attribute mapping: names and
// value fingerprints in sorted name order, NUL separated.
func (c *Checksummer) attributesChecksum(attrs map[string]any) (string, error) {
	names := make([]string, 0, len(attrs))
	for n := range attrs {
		names = append(names, n)
	}
	sort.Strings(names)

	hasher := xxhash.New()
	for _, n := range names {
		sum, err := c.ValueChecksum(attrs[n])
		if err != nil {
			return "", err
		}
		_, _ = hasher.WriteString(n)
		_, _ = hasher.Write([]byte{0})
		_, _ = hasher.WriteString(sum)
		_, _ = hasher.Write([]byte{0})
	}
	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

// BatchFor computes the fingerprints of the site's current state.
func (c *Checksummer) BatchFor(site *domain.Site) (*domain.ChecksumBatch, error) {
	batch := domain.NewChecksumBatch()

	for _, item := range site.Items.All() {
		if err := c.addDocument(batch, &item.Document); err != nil {
			return nil, err
		}
	}
	for _, layout := range site.Layouts.All() {
		if err := c.addDocument(batch, &layout.Document); err != nil {
			return nil, err
		}
	}

	cfgRef := site.Config.Reference()
	if err := c.addAttributes(batch, cfgRef, site.Config.Attributes); err != nil {
		return nil, err
	}

	for _, sn := range site.Snippets {
		batch.Set(domain.ContentKey(sn.Ref), c.ContentChecksum(sn.Content))
	}

	return batch, nil
}

func (c *Checksummer) addDocument(batch *domain.ChecksumBatch, doc *domain.Document) error {
	batch.Set(domain.ContentKey(doc.Ref), c.ContentChecksum(doc.Content))
	return c.addAttributes(batch, doc.Ref, doc.Attributes)
}

func (c *Checksummer) addAttributes(batch *domain.ChecksumBatch, ref domain.InternedString, attrs map[string]any) error {
	for name, value := range attrs {
		sum, err := c.ValueChecksum(value)
		if err != nil {
			return zerr.With(err, "reference", ref.String())
		}
		batch.Set(domain.AttributeKey(ref, name), sum)
	}
	whole, err := c.attributesChecksum(attrs)
	if err != nil {
		return zerr.With(err, "reference", ref.String())
	}
	batch.Set(domain.ObjectKey(ref), whole)
	return nil
}
