package filetree

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mattgale/treetop/internal/theme"
	"github.com/mattgale/treetop/internal/tree"
)

// View renders the viewport. Only the rows inside it are visited: the walk
// prunes every subtree outside [first, last] through the cached counts, so a
// huge tree costs the same as a small one.
func (m Model) View() string {
	w, h := m.Size()
	if w == 0 || h == 0 {
		return ""
	}

	height := m.viewportHeight()
	innerWidth := w - 2

	first := m.offset + 1
	last := m.offset + height

	// Collect the tree rows backing the display window. While the create
	// overlay is active the display shifts one row at the anchor, so the
	// backing range shrinks by one past it.
	type rowInfo struct {
		node  *tree.Node
		depth int
	}
	rows := make(map[int]rowInfo, height)

	minTree := m.displayToTreeRowFloor(first)
	maxTree := m.displayToTreeRowFloor(last)
	if maxTree >= minTree && maxTree >= 1 {
		m.tree.WalkRange(minTree, maxTree, func(n *tree.Node, depth, row int) {
			rows[row] = rowInfo{node: n, depth: depth}
		})
	}

	lines := make([]string, 0, height)
	for dr := first; dr <= last; dr++ {
		switch {
		case m.naming.InsertsAtRow(dr):
			lines = append(lines, m.renderOverlayRow(innerWidth))
		case m.naming.ReplacesRow(dr):
			lines = append(lines, m.renderOverlayRow(innerWidth))
		default:
			info, ok := rows[m.displayToTreeRow(dr)]
			if !ok {
				lines = append(lines, "")
				continue
			}
			lines = append(lines, m.renderRow(info.node, info.depth, dr == m.cursor, innerWidth))
		}
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)

	border := theme.PanelBorder
	if m.Focused() {
		border = theme.PanelBorderFocused
	}
	return border.Width(innerWidth).Height(height).Render(content)
}

// displayToTreeRowFloor maps a display row to the nearest backing tree row
// at or below it, for computing walk bounds.
func (m Model) displayToTreeRowFloor(row int) int {
	if m.naming.State == tree.NamingCreate && row >= m.naming.AnchorRow {
		return row - 1
	}
	return row
}

func (m Model) renderRow(n *tree.Node, depth int, selected bool, maxWidth int) string {
	indent := strings.Repeat(m.indentUnit(), depth)

	var icon string
	if n.IsDir {
		icon = m.theme.Chevron(n.Open) + " " + m.theme.DirIcon(n.Open)
	} else {
		icon = "  " + m.theme.FileIcon(extension(n.Name))
	}

	name := n.Name
	if n.IsDir {
		name += "/"
	}

	line := indent + icon + " " + name
	if m.loading[n.Path] {
		line += " " + theme.TreeLoading.Render(theme.IconLoading)
	}
	if lipgloss.Width(line) > maxWidth && maxWidth > 1 {
		line = truncate(line, maxWidth-1) + "…"
	}

	switch {
	case selected:
		return theme.TreeSelected.Width(maxWidth).Render(line)
	case n.IsDir:
		return theme.TreeDir.Render(line)
	default:
		return theme.TreeFile.Render(line)
	}
}

func (m Model) renderOverlayRow(maxWidth int) string {
	indent := strings.Repeat(m.indentUnit(), m.naming.Depth)

	var icon string
	if m.naming.State == tree.NamingCreate && m.naming.IsDir {
		icon = m.theme.DirIcon(false)
	} else if m.naming.State == tree.NamingCreate {
		icon = m.theme.FileIcon("")
	} else {
		icon = m.theme.FileIcon(extension(m.input.Value()))
	}

	line := indent + "  " + icon + " " + m.input.View()
	if lipgloss.Width(line) > maxWidth && maxWidth > 1 {
		line = truncate(line, maxWidth)
	}
	return theme.TreeOverlay.Render(line)
}

func (m Model) indentUnit() string {
	if m.compactIndent {
		return theme.IndentCompact
	}
	return theme.IndentWide
}

func extension(name string) string {
	if i := strings.LastIndexByte(name, '.'); i > 0 {
		return strings.ToLower(name[i:])
	}
	return ""
}

// truncate cuts a string to at most width cells, rune-safe.
func truncate(s string, width int) string {
	var b strings.Builder
	used := 0
	for _, r := range s {
		rw := lipgloss.Width(string(r))
		if used+rw > width {
			break
		}
		b.WriteRune(r)
		used += rw
	}
	return b.String()
}
