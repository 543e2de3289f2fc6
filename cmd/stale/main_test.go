package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	tests := []struct {
		name         string
		setup        func(t *testing.T) []string
		expectedExit int
	}{
		{
			name: "version",
			setup: func(_ *testing.T) []string {
				return []string{"stale", "version"}
			},
			expectedExit: 0,
		},
		{
			name: "check a valid site",
			setup: func(t *testing.T) []string {
				dir := t.TempDir()
				site := `
items:
  /about/:
    content: "about this site"
    reps:
      default:
        actions:
          - filter: markdown
`
				require.NoError(t, os.WriteFile(filepath.Join(dir, "site.yaml"), []byte(site), 0o600))
				return []string{"stale", "check", dir}
			},
			expectedExit: 0,
		},
		{
			name: "check without a site file",
			setup: func(t *testing.T) []string {
				return []string{"stale", "check", t.TempDir()}
			},
			expectedExit: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.setup(t)
			assert.Equal(t, tt.expectedExit, run())
		})
	}
}
