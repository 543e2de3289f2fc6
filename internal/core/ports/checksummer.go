package ports

import "go.trai.ch/stale/internal/core/domain"

// Checksummer computes the fingerprints the engine compares across builds.
//
//go:generate go run go.uber.org/mock/mockgen -source=checksummer.go -destination=mocks/mock_checksummer.go -package=mocks
type Checksummer interface {
	// ContentChecksum fingerprints raw content bytes.
	ContentChecksum(content []byte) string

	// ValueChecksum fingerprints a single attribute value.
	ValueChecksum(value any) (string, error)

	// BatchFor computes the fingerprints of the site's current state:
	// content and per-attribute sums for every item and layout, the
	// configuration's attribute and whole-object sums, and one content sum
	// per code snippet.
	BatchFor(site *domain.Site) (*domain.ChecksumBatch, error)
}
