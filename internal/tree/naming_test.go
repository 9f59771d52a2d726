package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNamingTransitions(t *testing.T) {
	var nm Naming
	assert.False(t, nm.Active())
	assert.Zero(t, nm.ExtraRows())

	t.Run("create", func(t *testing.T) {
		nm.StartCreate("/ws/dirA", false, 2, 1)

		assert.True(t, nm.Active())
		assert.Equal(t, NamingCreate, nm.State)
		assert.Equal(t, 1, nm.ExtraRows())
		assert.True(t, nm.InsertsAtRow(2))
		assert.False(t, nm.InsertsAtRow(3))
		assert.False(t, nm.ReplacesRow(2))
	})

	t.Run("cancel clears everything", func(t *testing.T) {
		nm.Cancel()

		assert.False(t, nm.Active())
		assert.Zero(t, nm.ExtraRows())
		assert.Empty(t, nm.ParentPath)
	})

	t.Run("rename replaces instead of inserting", func(t *testing.T) {
		nm.StartRename("/ws/fileB", 4, 0)

		assert.True(t, nm.Active())
		assert.Equal(t, NamingRename, nm.State)
		assert.Zero(t, nm.ExtraRows())
		assert.True(t, nm.ReplacesRow(4))
		assert.False(t, nm.InsertsAtRow(4))
	})

	t.Run("starting a new overlay discards the old one", func(t *testing.T) {
		nm.StartCreate("/ws", true, 1, 0)

		assert.Equal(t, NamingCreate, nm.State)
		assert.Empty(t, nm.TargetPath)
		assert.True(t, nm.IsDir)
	})
}
