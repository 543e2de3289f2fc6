package ports

import "go.trai.ch/stale/internal/core/domain"

// SiteLoader materializes the current site state from a source directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=loader.go -destination=mocks/mock_loader.go -package=mocks
type SiteLoader interface {
	// Load reads the site rooted at dir.
	Load(dir string) (*domain.Site, error)
}
