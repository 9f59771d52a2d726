package tree

import (
	"path/filepath"
	"sort"
	"strings"
)

// Node represents one filesystem entry in the workspace tree.
type Node struct {
	Path  string
	Name  string
	IsDir bool
	Open  bool // whether the directory's children are currently displayed
	Read  bool // whether children have ever been fetched

	// OpenCount is the number of rows this node's subtree contributes to
	// the flat listing while Open (0 when closed or unread). The node's own
	// row is counted by its parent, not here. Callers that mutate Open or
	// the children must recompute counts via Tree.RefreshCounts; nothing
	// here auto-propagates.
	OpenCount int

	children map[string]*Node
	sorted   []*Node // cached display order, nil when stale
}

func newNode(path, name string, isDir bool) *Node {
	return &Node{Path: path, Name: name, IsDir: isDir}
}

// Child returns the named child, or nil.
func (n *Node) Child(name string) *Node {
	return n.children[name]
}

// NumChildren returns the number of fetched children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// IsHidden returns true for dotfile entries.
func (n *Node) IsHidden() bool {
	return len(n.Name) > 0 && n.Name[0] == '.'
}

// SortedChildren returns the children in display order: directories first,
// then case-insensitive lexicographic. The order is stable regardless of the
// order entries arrived in.
func (n *Node) SortedChildren() []*Node {
	if n.sorted != nil {
		return n.sorted
	}
	kids := make([]*Node, 0, len(n.children))
	for _, c := range n.children {
		kids = append(kids, c)
	}
	sort.Slice(kids, func(i, j int) bool {
		if kids[i].IsDir != kids[j].IsDir {
			return kids[i].IsDir
		}
		return strings.ToLower(kids[i].Name) < strings.ToLower(kids[j].Name)
	})
	n.sorted = kids
	return kids
}

// setChildren replaces the node's children and marks it read. Existing
// children whose name and kind survive are kept so their expansion state and
// loaded subtrees are preserved across a reload.
func (n *Node) setChildren(entries []Entry) {
	prev := n.children
	n.children = make(map[string]*Node, len(entries))
	for _, e := range entries {
		if old, ok := prev[e.Name]; ok && old.IsDir == e.IsDir {
			n.children[e.Name] = old
			continue
		}
		n.children[e.Name] = newNode(filepath.Join(n.Path, e.Name), e.Name, e.IsDir)
	}
	n.Read = true
	n.sorted = nil
}

// insertChild adds a single freshly created entry.
func (n *Node) insertChild(name string, isDir bool) *Node {
	if n.children == nil {
		n.children = make(map[string]*Node)
	}
	c := newNode(filepath.Join(n.Path, name), name, isDir)
	n.children[name] = c
	n.sorted = nil
	return c
}

// removeChild deletes the named child, returning it for inspection.
func (n *Node) removeChild(name string) *Node {
	c := n.children[name]
	if c != nil {
		delete(n.children, name)
		n.sorted = nil
	}
	return c
}

// setPath updates the node's path and every descendant's stored path.
func (n *Node) setPath(path string) {
	n.Path = path
	for name, c := range n.children {
		c.setPath(filepath.Join(path, name))
	}
}
