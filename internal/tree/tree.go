package tree

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Entry is one directory-listing result used to populate children.
type Entry struct {
	Name  string
	IsDir bool
}

// Tree holds the workspace root and the display policy that row counts are
// derived under. The workspace node itself occupies no visible row; its
// children are listed starting at row 1.
type Tree struct {
	Workspace *Node

	// ShowHidden controls whether dotfile entries contribute rows. Counts
	// are recomputed for the whole tree when it changes.
	ShowHidden bool
}

// New creates a tree rooted at the given absolute workspace path. The
// workspace starts unread; callers populate it with SetChildren once the
// first listing arrives.
func New(workspacePath string) *Tree {
	ws := newNode(filepath.Clean(workspacePath), filepath.Base(workspacePath), true)
	ws.Open = true // conceptually always open
	return &Tree{Workspace: ws, ShowHidden: true}
}

// Find resolves a path to its node by walking components from the workspace.
// Returns nil when the path is outside the workspace or not (yet) in the
// tree — the stable-key lookup used to validate async completions.
func (t *Tree) Find(path string) *Node {
	chain := t.lineage(path)
	if chain == nil {
		return nil
	}
	return chain[len(chain)-1]
}

// lineage returns the nodes from the workspace down to path inclusive, or
// nil if any component is missing.
func (t *Tree) lineage(path string) []*Node {
	path = filepath.Clean(path)
	if path == t.Workspace.Path {
		return []*Node{t.Workspace}
	}
	rel, err := filepath.Rel(t.Workspace.Path, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) || filepath.IsAbs(rel) {
		return nil
	}
	chain := []*Node{t.Workspace}
	cur := t.Workspace
	for _, part := range strings.Split(rel, string(filepath.Separator)) {
		cur = cur.Child(part)
		if cur == nil {
			return nil
		}
		chain = append(chain, cur)
	}
	return chain
}

// TotalRows returns the number of visible rows the tree occupies.
func (t *Tree) TotalRows() int {
	return t.Workspace.OpenCount
}

// visibleChildren returns the display-ordered children that contribute rows
// under the current hidden-file policy.
func (t *Tree) visibleChildren(n *Node) []*Node {
	kids := n.SortedChildren()
	if t.ShowHidden {
		return kids
	}
	hidden := 0
	for _, c := range kids {
		if c.IsHidden() {
			hidden++
		}
	}
	if hidden == 0 {
		return kids
	}
	vis := make([]*Node, 0, len(kids)-hidden)
	for _, c := range kids {
		if !c.IsHidden() {
			vis = append(vis, c)
		}
	}
	return vis
}

// recount recomputes a single node's OpenCount from its children's cached
// counts. Children must already be current.
func (t *Tree) recount(n *Node) {
	if !n.IsDir || !n.Read || !n.Open {
		n.OpenCount = 0
		return
	}
	count := 0
	for _, c := range t.visibleChildren(n) {
		count++
		if c.Open {
			count += c.OpenCount
		}
	}
	n.OpenCount = count
}

// RefreshCounts recomputes OpenCount for the node at path and every strict
// ancestor up to the workspace. Every open/close/children mutation must be
// followed by a call to this before any row arithmetic is trusted.
func (t *Tree) RefreshCounts(path string) {
	chain := t.lineage(path)
	for i := len(chain) - 1; i >= 0; i-- {
		t.recount(chain[i])
	}
}

// SetShowHidden switches the hidden-file policy and recomputes every count
// in the tree.
func (t *Tree) SetShowHidden(show bool) {
	if t.ShowHidden == show {
		return
	}
	t.ShowHidden = show
	t.recountSubtree(t.Workspace)
}

func (t *Tree) recountSubtree(n *Node) {
	for _, c := range n.SortedChildren() {
		t.recountSubtree(c)
	}
	t.recount(n)
}

// SetChildren replaces the children of the directory at path with the given
// listing, marks it read, and refreshes counts. Surviving subtrees keep
// their expansion state.
func (t *Tree) SetChildren(path string, entries []Entry) error {
	n := t.Find(path)
	if n == nil {
		return fmt.Errorf("set children: %s not in tree", path)
	}
	if !n.IsDir {
		return fmt.Errorf("set children: %s is not a directory", path)
	}
	n.setChildren(entries)
	// A reload can carry subtrees whose counts are already cached, so only
	// the node and its ancestors need recomputing.
	t.RefreshCounts(path)
	return nil
}

// InsertChild adds one freshly created entry under parentPath and refreshes
// counts.
func (t *Tree) InsertChild(parentPath, name string, isDir bool) (*Node, error) {
	parent := t.Find(parentPath)
	if parent == nil {
		return nil, fmt.Errorf("insert %s: %s not in tree", name, parentPath)
	}
	if !parent.Read {
		return nil, fmt.Errorf("insert %s: %s is unread", name, parentPath)
	}
	if parent.Child(name) != nil {
		return nil, fmt.Errorf("insert %s: already exists in %s", name, parentPath)
	}
	c := parent.insertChild(name, isDir)
	t.RefreshCounts(parentPath)
	return c, nil
}

// RemoveNode detaches the node at path from its parent and refreshes counts.
func (t *Tree) RemoveNode(path string) (*Node, error) {
	chain := t.lineage(path)
	if chain == nil || len(chain) < 2 {
		return nil, fmt.Errorf("remove: %s not in tree", path)
	}
	parent := chain[len(chain)-2]
	n := parent.removeChild(chain[len(chain)-1].Name)
	t.RefreshCounts(parent.Path)
	return n, nil
}

// RenameNode renames the entry at path within its parent, rewriting the
// stored path of the node and every descendant. Returns the renamed node.
func (t *Tree) RenameNode(path, newName string) (*Node, error) {
	chain := t.lineage(path)
	if chain == nil || len(chain) < 2 {
		return nil, fmt.Errorf("rename: %s not in tree", path)
	}
	parent := chain[len(chain)-2]
	n := chain[len(chain)-1]
	if parent.Child(newName) != nil {
		return nil, fmt.Errorf("rename: %s already exists in %s", newName, parent.Path)
	}
	parent.removeChild(n.Name)
	n.Name = newName
	n.setPath(filepath.Join(parent.Path, newName))
	parent.children[newName] = n
	parent.sorted = nil
	t.RefreshCounts(parent.Path)
	return n, nil
}
