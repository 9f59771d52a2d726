package filetree

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mattgale/treetop/internal/tree"
)

// startRename opens the rename overlay on the cursor row, replacing the
// node's row with an editable one.
func (m Model) startRename() (Model, tea.Cmd) {
	row := m.displayToTreeRow(m.cursor)
	n := m.tree.NodeAtRow(row)
	if n == nil || n == m.tree.Workspace {
		return m, nil
	}

	m.naming.StartRename(n.Path, row, m.tree.DepthOfPath(n.Path))
	m.input.SetValue(n.Name)
	m.input.CursorEnd()
	m.input.Focus()
	return m, textinput.Blink
}

// startCreate opens the compose overlay for a new entry. When the cursor is
// on a directory the entry goes inside it, expanding it first if necessary;
// on a file, the entry becomes a sibling.
func (m Model) startCreate(isDir bool) (Model, tea.Cmd) {
	row := m.displayToTreeRow(m.cursor)
	n := m.tree.NodeAtRow(row)

	if n == nil || n == m.tree.Workspace {
		// Empty listing or no selection: compose at the top of the tree.
		if !m.tree.Workspace.Read {
			return m, nil
		}
		return m.handleCompose(composeMsg{
			parentPath: m.tree.Workspace.Path,
			isDir:      isDir,
			anchorRow:  1,
		})
	}

	depth := m.tree.DepthOfPath(n.Path)
	if n.IsDir {
		// The overlay lands directly under the directory's row once it is
		// open; expansion may be asynchronous, so the overlay start rides
		// the continuation.
		msg := composeMsg{parentPath: n.Path, isDir: isDir, anchorRow: row + 1, depth: depth + 1}
		return m.expandThen(n, func() tea.Msg { return msg })
	}
	return m.handleCompose(composeMsg{
		parentPath: filepath.Dir(n.Path),
		isDir:      isDir,
		anchorRow:  row + 1,
		depth:      depth,
	})
}

func (m Model) handleCompose(msg composeMsg) (Model, tea.Cmd) {
	parent := m.tree.Find(msg.parentPath)
	if parent == nil || !parent.Read {
		return m, nil
	}

	m.naming.StartCreate(msg.parentPath, msg.isDir, msg.anchorRow, msg.depth)
	m.input.SetValue("")
	m.input.Focus()
	m.cursor = msg.anchorRow
	m.ensureVisible()
	return m, textinput.Blink
}

func (m Model) handleNamingKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return m.commitNaming()
	case "esc":
		m.cancelNaming()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// commitNaming ends the overlay and emits the file operation it was
// composing. The overlay goes idle immediately; the tree mutates only when
// the operation's completion arrives without an error.
func (m Model) commitNaming() (Model, tea.Cmd) {
	st := m.naming
	name := strings.TrimSpace(m.input.Value())
	m.cancelNaming()

	if name == "" {
		return m, nil
	}
	if strings.ContainsRune(name, filepath.Separator) {
		err := fmt.Errorf("invalid name %q", name)
		op := OpRename
		if st.State == tree.NamingCreate {
			op = OpCreateFile
		}
		return m, func() tea.Msg { return FileOpMsg{Op: op, Err: err} }
	}

	switch st.State {
	case tree.NamingCreate:
		return m, doCreate(filepath.Join(st.ParentPath, name), st.IsDir)

	case tree.NamingRename:
		if name == filepath.Base(st.TargetPath) {
			return m, nil
		}
		newPath := filepath.Join(filepath.Dir(st.TargetPath), name)
		return m, doRename(st.TargetPath, newPath)
	}
	return m, nil
}

func (m *Model) cancelNaming() {
	m.naming.Cancel()
	m.input.Blur()
	m.input.SetValue("")
	m.clampCursor()
}

// reconcileNaming implicitly cancels the overlay when a structural change
// invalidates its anchor: the overlay must never reference a row that no
// longer exists.
func (m *Model) reconcileNaming() {
	switch m.naming.State {
	case tree.NamingRename:
		n := m.tree.NodeAtRow(m.naming.AnchorRow)
		if n == nil || n.Path != m.naming.TargetPath {
			m.cancelNaming()
		}

	case tree.NamingCreate:
		parent := m.tree.Find(m.naming.ParentPath)
		if parent == nil || !parent.Read {
			m.cancelNaming()
			return
		}
		if parent != m.tree.Workspace {
			if !parent.Open || m.tree.RowOfPath(parent.Path) < 1 {
				m.cancelNaming()
				return
			}
		}
		if m.naming.AnchorRow > m.tree.TotalRows()+1 {
			m.cancelNaming()
		}
	}
}

// trashSelected moves the cursor row's entry to the trash.
func (m Model) trashSelected() (Model, tea.Cmd) {
	n := m.tree.NodeAtRow(m.displayToTreeRow(m.cursor))
	if n == nil || n == m.tree.Workspace {
		return m, nil
	}
	return m, doTrash(n.Path)
}
