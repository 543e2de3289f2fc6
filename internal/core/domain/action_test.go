package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stale/internal/core/domain"
)

func TestActionSequence_SerializeEquality(t *testing.T) {
	base := domain.ActionSequence{
		{Filter: "markdown", Arguments: map[string]any{"smart": true}},
		{Snapshot: "last", Path: "/out/index.html"},
	}
	same := domain.ActionSequence{
		{Filter: "markdown", Arguments: map[string]any{"smart": true}},
		{Snapshot: "last", Path: "/out/index.html"},
	}

	a, err := base.Serialize()
	require.NoError(t, err)
	b, err := same.Serialize()
	require.NoError(t, err)
	assert.Equal(t, a, b, "structurally equal sequences must serialize identically")

	// Any filter, argument or snapshot difference changes the serialized form.
	changedArg := domain.ActionSequence{
		{Filter: "markdown", Arguments: map[string]any{"smart": false}},
		{Snapshot: "last", Path: "/out/index.html"},
	}
	c, err := changedArg.Serialize()
	require.NoError(t, err)
	assert.NotEqual(t, a, c)

	reordered := domain.ActionSequence{
		{Snapshot: "last", Path: "/out/index.html"},
		{Filter: "markdown", Arguments: map[string]any{"smart": true}},
	}
	d, err := reordered.Serialize()
	require.NoError(t, err)
	assert.NotEqual(t, a, d, "serialization is order-sensitive")
}

func TestActionSequence_SerializeEmpty(t *testing.T) {
	var seq domain.ActionSequence
	s, err := seq.Serialize()
	require.NoError(t, err)
	assert.Equal(t, "", s)
}

func TestActionSequence_SnapshotPaths(t *testing.T) {
	seq := domain.ActionSequence{
		{Filter: "erb"},
		{Snapshot: "pre"},
		{Snapshot: "last", Path: "/out/a.html"},
	}

	paths := seq.SnapshotPaths()
	assert.Equal(t, map[string]string{"last": "/out/a.html"}, paths)

	serialized, err := seq.Serialize()
	require.NoError(t, err)
	assert.True(t, domain.SamePaths(paths, domain.SnapshotPathsOfSerialized(serialized)))

	assert.Nil(t, domain.SnapshotPathsOfSerialized(""))
	assert.True(t, domain.SamePaths(nil, map[string]string{}))
	assert.False(t, domain.SamePaths(paths, nil))
}
