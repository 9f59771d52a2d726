package tree

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// deepTree builds (display order is dirs first, case-insensitive):
//
//	/ws
//	├── dirA/        row 1
//	│   ├── sub/     row 2
//	│   │   ├── s1   row 3
//	│   │   └── s2   row 4
//	│   └── fileC    row 5
//	├── extras/      row 6 (loaded but collapsed)
//	└── fileB        row 7
func deepTree(t *testing.T) *Tree {
	t.Helper()
	tr := New("/ws")
	require.NoError(t, tr.SetChildren("/ws", []Entry{
		{Name: "dirA", IsDir: true},
		{Name: "extras", IsDir: true},
		{Name: "fileB"},
	}))
	require.NoError(t, tr.SetChildren("/ws/dirA", []Entry{
		{Name: "sub", IsDir: true},
		{Name: "fileC"},
	}))
	require.NoError(t, tr.SetChildren("/ws/dirA/sub", []Entry{
		{Name: "s1"}, {Name: "s2"},
	}))
	require.NoError(t, tr.SetChildren("/ws/extras", []Entry{
		{Name: "hiddenRow1"}, {Name: "hiddenRow2"},
	}))
	for _, p := range []string{"/ws/dirA/sub", "/ws/dirA"} {
		tr.Find(p).Open = true
		tr.RefreshCounts(p)
	}
	return tr
}

func TestWalkRangeFull(t *testing.T) {
	tr := deepTree(t)
	require.Equal(t, 7, tr.TotalRows())

	type hit struct {
		name  string
		depth int
		row   int
	}
	var hits []hit
	last := tr.WalkRange(1, tr.TotalRows(), func(n *Node, depth, row int) {
		hits = append(hits, hit{n.Name, depth, row})
	})

	assert.Equal(t, []hit{
		{"dirA", 0, 1},
		{"sub", 1, 2},
		{"s1", 2, 3},
		{"s2", 2, 4},
		{"fileC", 1, 5},
		{"extras", 0, 6},
		{"fileB", 0, 7},
	}, hits)
	assert.Equal(t, 7, last)
}

func TestWalkRangeViewport(t *testing.T) {
	tr := deepTree(t)

	t.Run("middle window", func(t *testing.T) {
		var rows []int
		tr.WalkRange(3, 5, func(n *Node, depth, row int) {
			rows = append(rows, row)
		})
		assert.Equal(t, []int{3, 4, 5}, rows)
	})

	t.Run("prunes subtrees above the window", func(t *testing.T) {
		var names []string
		tr.WalkRange(6, 7, func(n *Node, depth, row int) {
			names = append(names, n.Name)
		})
		assert.Equal(t, []string{"extras", "fileB"}, names)
	})

	t.Run("stops past the window", func(t *testing.T) {
		var names []string
		last := tr.WalkRange(1, 2, func(n *Node, depth, row int) {
			names = append(names, n.Name)
		})
		assert.Equal(t, []string{"dirA", "sub"}, names)
		assert.Greater(t, last, 2)
	})

	t.Run("window past the end visits nothing", func(t *testing.T) {
		calls := 0
		tr.WalkRange(50, 60, func(n *Node, depth, row int) {
			calls++
		})
		assert.Zero(t, calls)
	})
}

func TestWalkRangeSkipArithmetic(t *testing.T) {
	// A wide closed directory must be skipped without descending into it:
	// the nodes after it still land on the right rows.
	tr := deepTree(t)
	entries := make([]Entry, 500)
	for i := range entries {
		entries[i] = Entry{Name: fmt.Sprintf("f%03d", i)}
	}
	require.NoError(t, tr.SetChildren("/ws/extras", entries))

	var names []string
	tr.WalkRange(6, 7, func(n *Node, depth, row int) {
		names = append(names, n.Name)
	})
	assert.Equal(t, []string{"extras", "fileB"}, names)
}
