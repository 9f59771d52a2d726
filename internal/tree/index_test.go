package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeAtRow(t *testing.T) {
	t.Run("unread closed directory and sibling file", func(t *testing.T) {
		tr := newWorkspace(t)

		assert.Equal(t, 2, tr.TotalRows())
		require.NotNil(t, tr.NodeAtRow(1))
		assert.Equal(t, "dirA", tr.NodeAtRow(1).Name)
		assert.Equal(t, "fileB", tr.NodeAtRow(2).Name)
	})

	t.Run("after expansion", func(t *testing.T) {
		tr := newWorkspace(t)
		openDirA(t, tr)

		assert.Equal(t, 4, tr.TotalRows())
		assert.Equal(t, "dirA", tr.NodeAtRow(1).Name)
		assert.Equal(t, "fileC", tr.NodeAtRow(2).Name)
		assert.Equal(t, "fileD", tr.NodeAtRow(3).Name)
		assert.Equal(t, "fileB", tr.NodeAtRow(4).Name)
	})

	t.Run("row zero is the workspace", func(t *testing.T) {
		tr := newWorkspace(t)
		assert.Equal(t, tr.Workspace, tr.NodeAtRow(0))
	})

	t.Run("out of range is nil, not an error", func(t *testing.T) {
		tr := newWorkspace(t)
		assert.Nil(t, tr.NodeAtRow(3))
		assert.Nil(t, tr.NodeAtRow(100))
		assert.Nil(t, tr.NodeAtRow(-1))
	})

	t.Run("skips closed subtrees", func(t *testing.T) {
		tr := newWorkspace(t)
		openDirA(t, tr)

		// Close dirA again; its loaded children must not occupy rows.
		dirA := tr.Find("/ws/dirA")
		dirA.Open = false
		tr.RefreshCounts(dirA.Path)

		assert.Equal(t, 2, tr.TotalRows())
		assert.Equal(t, "fileB", tr.NodeAtRow(2).Name)
	})
}

func TestResolveRoundTrip(t *testing.T) {
	tr := newWorkspace(t)
	openDirA(t, tr)
	require.NoError(t, tr.SetChildren("/ws", []Entry{
		{Name: "dirA", IsDir: true},
		{Name: "dirE", IsDir: true},
		{Name: "fileB"},
	}))
	require.NoError(t, tr.SetChildren("/ws/dirE", []Entry{
		{Name: "nested", IsDir: true},
		{Name: "fileF"},
	}))
	tr.Find("/ws/dirE").Open = true
	tr.RefreshCounts("/ws/dirE")

	// Every visible node must resolve back to the row it was visited at.
	visited := 0
	tr.WalkRange(1, tr.TotalRows(), func(n *Node, depth, row int) {
		visited++
		assert.Same(t, n, tr.NodeAtRow(row), "row %d", row)
		assert.Equal(t, row, tr.RowOfPath(n.Path), "path %s", n.Path)
		assert.Equal(t, depth, tr.DepthOfPath(n.Path), "path %s", n.Path)
	})
	assert.Equal(t, tr.TotalRows(), visited)
}

func TestRowOfPath(t *testing.T) {
	tr := newWorkspace(t)
	openDirA(t, tr)

	t.Run("workspace is row zero", func(t *testing.T) {
		assert.Equal(t, 0, tr.RowOfPath("/ws"))
	})

	t.Run("visible nodes", func(t *testing.T) {
		assert.Equal(t, 1, tr.RowOfPath("/ws/dirA"))
		assert.Equal(t, 2, tr.RowOfPath("/ws/dirA/fileC"))
		assert.Equal(t, 4, tr.RowOfPath("/ws/fileB"))
	})

	t.Run("inside a closed directory", func(t *testing.T) {
		dirA := tr.Find("/ws/dirA")
		dirA.Open = false
		tr.RefreshCounts(dirA.Path)

		assert.Equal(t, -1, tr.RowOfPath("/ws/dirA/fileC"))
		assert.Equal(t, 1, tr.RowOfPath("/ws/dirA"))

		dirA.Open = true
		tr.RefreshCounts(dirA.Path)
	})

	t.Run("unknown path", func(t *testing.T) {
		assert.Equal(t, -1, tr.RowOfPath("/ws/ghost"))
	})
}
