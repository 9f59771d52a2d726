package tree

// NodeAtRow resolves a 1-based visible row to its node, or nil when the row
// is past the end of the listing. Row 0 is the workspace itself, which is
// never rendered. Resolution walks the tree using cached counts, descending
// into a child only when the target can fall within the child's contributed
// span and skipping whole subtrees otherwise, so the cost is proportional to
// the depth of the target plus the open siblings scanned on the way — not to
// the total number of visible rows.
func (t *Tree) NodeAtRow(row int) *Node {
	if row < 0 {
		return nil
	}
	_, n := t.nodeAt(0, row, t.Workspace)
	return n
}

func (t *Tree) nodeAt(i, target int, n *Node) (int, *Node) {
	if i == target {
		return i, n
	}
	if n.Open {
		for _, c := range t.visibleChildren(n) {
			if i+c.OpenCount+1 >= target {
				if ni, found := t.nodeAt(i+1, target, c); found != nil {
					return ni, found
				}
			}
			i += c.OpenCount + 1
		}
	}
	return i, nil
}

// RowOfPath returns the visible row occupied by path, 0 for the workspace
// itself, or -1 when the path is not currently visible (missing from the
// tree or inside a closed directory).
func (t *Tree) RowOfPath(path string) int {
	chain := t.lineage(path)
	if chain == nil {
		return -1
	}
	row := 0
	for depth := 1; depth < len(chain); depth++ {
		parent := chain[depth-1]
		if !parent.Open {
			return -1
		}
		found := false
		for _, sib := range t.visibleChildren(parent) {
			row++
			if sib == chain[depth] {
				found = true
				break
			}
			if sib.Open {
				row += sib.OpenCount
			}
		}
		if !found {
			return -1 // hidden by the display policy
		}
	}
	return row
}

// DepthOfPath returns the indent level of path, with workspace children at
// depth 0, or -1 when the path is not in the tree.
func (t *Tree) DepthOfPath(path string) int {
	chain := t.lineage(path)
	if chain == nil {
		return -1
	}
	return len(chain) - 2
}
