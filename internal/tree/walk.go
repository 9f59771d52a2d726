package tree

// VisitFunc receives one visible node, its indent depth (workspace children
// at 0), and the 1-based row it occupies.
type VisitFunc func(n *Node, depth, row int)

// WalkRange calls visit for every node whose row lies in [min, max], in
// depth-first display order, pruning whole subtrees that fall outside the
// range via cached counts. It returns the final row counter reached so
// callers can detect early termination. Rendering through this keeps the
// per-frame cost proportional to the viewport, not the tree.
func (t *Tree) WalkRange(min, max int, visit VisitFunc) int {
	i := 0
	for _, c := range t.visibleChildren(t.Workspace) {
		i = t.walkNode(c, min, max, 0, i+1, visit)
		if i > max {
			return i
		}
	}
	return i
}

func (t *Tree) walkNode(n *Node, min, max, depth, current int, visit VisitFunc) int {
	if current > max {
		return current
	}
	// The whole subtree ends above the viewport: skip it in one step.
	if current+n.OpenCount < min {
		return current + n.OpenCount
	}
	if current >= min {
		visit(n, depth, current)
	}
	i := current
	if n.Open {
		for _, c := range t.visibleChildren(n) {
			i = t.walkNode(c, min, max, depth+1, i+1, visit)
			if i > max {
				return i
			}
		}
	}
	return i
}
