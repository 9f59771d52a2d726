// Package filetree implements the workspace file-tree panel: a lazily
// loaded directory tree rendered through a row-indexed viewport, with inline
// create/rename editing.
//
// The panel never materializes the flat row list. Every query goes through
// the tree's cached subtree counts: the cursor is a row number, clicks
// resolve rows to nodes, and rendering walks only the rows inside the
// viewport.
package filetree

import (
	"path/filepath"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"github.com/mattgale/treetop/internal/components"
	"github.com/mattgale/treetop/internal/config"
	"github.com/mattgale/treetop/internal/fsops"
	"github.com/mattgale/treetop/internal/theme"
	"github.com/mattgale/treetop/internal/tree"
)

// KeyMap defines the key bindings for the file tree.
type KeyMap struct {
	Up            key.Binding
	Down          key.Binding
	Left          key.Binding
	Right         key.Binding
	Enter         key.Binding
	PageUp        key.Binding
	PageDown      key.Binding
	Home          key.Binding
	End           key.Binding
	Toggle        key.Binding
	Rename        key.Binding
	NewFile       key.Binding
	NewDir        key.Binding
	Trash         key.Binding
	ToggleHidden  key.Binding
	CompactIndent key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:            key.NewBinding(key.WithKeys("up", "k")),
		Down:          key.NewBinding(key.WithKeys("down", "j")),
		Left:          key.NewBinding(key.WithKeys("left", "h")),
		Right:         key.NewBinding(key.WithKeys("right", "l")),
		Enter:         key.NewBinding(key.WithKeys("enter")),
		PageUp:        key.NewBinding(key.WithKeys("pgup", "ctrl+u")),
		PageDown:      key.NewBinding(key.WithKeys("pgdown", "ctrl+d")),
		Home:          key.NewBinding(key.WithKeys("home", "g")),
		End:           key.NewBinding(key.WithKeys("end", "G")),
		Toggle:        key.NewBinding(key.WithKeys(" ")),
		Rename:        key.NewBinding(key.WithKeys("r")),
		NewFile:       key.NewBinding(key.WithKeys("n")),
		NewDir:        key.NewBinding(key.WithKeys("N")),
		Trash:         key.NewBinding(key.WithKeys("d")),
		ToggleHidden:  key.NewBinding(key.WithKeys(".")),
		CompactIndent: key.NewBinding(key.WithKeys("i")),
	}
}

// Model is the file tree panel.
type Model struct {
	components.Base

	tree   *tree.Tree
	cursor int // 1-based display row, 0 when the listing is empty
	offset int // rows scrolled past above the viewport

	naming tree.Naming
	input  textinput.Model

	loading     map[string]bool      // listing requests in flight, keyed by path
	pendingOpen map[string]bool      // expand intents awaiting their listing
	onLoaded    map[string][]tea.Cmd // continuations to run after a path loads

	compactIndent bool

	keys  KeyMap
	theme *theme.Theme
}

// New creates a file tree panel rooted at the given absolute workspace path.
func New(workspacePath string, cfg config.Config) Model {
	ti := textinput.New()
	ti.CharLimit = 255
	ti.Prompt = ""

	t := tree.New(workspacePath)
	t.ShowHidden = cfg.ShowHidden

	th := theme.Default()
	th.UseNerdFonts = cfg.NerdFonts

	return Model{
		tree:          t,
		input:         ti,
		loading:       make(map[string]bool),
		pendingOpen:   make(map[string]bool),
		onLoaded:      make(map[string][]tea.Cmd),
		compactIndent: cfg.CompactIndent,
		keys:          DefaultKeyMap(),
		theme:         th,
	}
}

// Init issues the initial workspace listing.
func (m Model) Init() tea.Cmd {
	m.loading[m.tree.Workspace.Path] = true
	return listDir(m.tree.Workspace.Path)
}

// Workspace returns the workspace root path.
func (m Model) Workspace() string {
	return m.tree.Workspace.Path
}

// TotalVisibleRows returns the number of display rows, including the naming
// overlay's phantom row while one is active.
func (m Model) TotalVisibleRows() int {
	return m.tree.TotalRows() + m.naming.ExtraRows()
}

// Naming exposes the overlay state for the renderer and tests.
func (m Model) Naming() tree.Naming {
	return m.naming
}

// NodeAtRow resolves a tree row for the surrounding UI.
func (m Model) NodeAtRow(row int) *tree.Node {
	return m.tree.NodeAtRow(row)
}

// SelectedPath returns the path under the cursor, or "".
func (m Model) SelectedPath() string {
	if n := m.tree.NodeAtRow(m.displayToTreeRow(m.cursor)); n != nil {
		return n.Path
	}
	return ""
}

// ShowHidden reports the current hidden-file policy.
func (m Model) ShowHidden() bool {
	return m.tree.ShowHidden
}

// CompactIndent reports whether 2-space indentation is active.
func (m Model) CompactIndent() bool {
	return m.compactIndent
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	// Completions are handled regardless of focus.
	case LoadedMsg:
		return m.handleLoaded(msg)
	case FileOpMsg:
		return m.handleFileOp(msg)
	case composeMsg:
		return m.handleCompose(msg)

	case tea.KeyMsg:
		if !m.Focused() {
			return m, nil
		}
		if m.naming.Active() {
			return m.handleNamingKey(msg)
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)

	case key.Matches(msg, m.keys.PageUp):
		m.moveCursor(-m.viewportHeight() / 2)

	case key.Matches(msg, m.keys.PageDown):
		m.moveCursor(m.viewportHeight() / 2)

	case key.Matches(msg, m.keys.Home):
		if m.TotalVisibleRows() > 0 {
			m.cursor = 1
		}
		m.offset = 0

	case key.Matches(msg, m.keys.End):
		if total := m.TotalVisibleRows(); total > 0 {
			m.cursor = total
			m.ensureVisible()
		}

	case key.Matches(msg, m.keys.Enter), key.Matches(msg, m.keys.Right):
		return m.activateRow(m.cursor)

	case key.Matches(msg, m.keys.Left):
		return m.collapseOrAscend()

	case key.Matches(msg, m.keys.Toggle):
		return m.toggleRow(m.cursor)

	case key.Matches(msg, m.keys.Rename):
		return m.startRename()

	case key.Matches(msg, m.keys.NewFile):
		return m.startCreate(false)

	case key.Matches(msg, m.keys.NewDir):
		return m.startCreate(true)

	case key.Matches(msg, m.keys.Trash):
		return m.trashSelected()

	case key.Matches(msg, m.keys.ToggleHidden):
		m.tree.SetShowHidden(!m.tree.ShowHidden)
		m.reconcileNaming()
		m.clampCursor()

	case key.Matches(msg, m.keys.CompactIndent):
		m.compactIndent = !m.compactIndent
	}

	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	// A click outside the overlay commits it, like pressing enter. Wheel
	// events also arrive as presses, so match the button too.
	if m.naming.Active() && msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		return m.commitNaming()
	}

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.moveCursor(-3)
	case msg.Button == tea.MouseButtonWheelDown:
		m.moveCursor(3)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		row := m.offset + msg.Y
		if row >= 1 && row <= m.TotalVisibleRows() {
			m.cursor = row
			return m.activateRow(row)
		}
	}
	return m, nil
}

// activateRow opens a file or expands/collapses a directory at a display
// row. An out-of-range row is a no-op, not an error.
func (m Model) activateRow(row int) (Model, tea.Cmd) {
	if m.naming.InsertsAtRow(row) {
		return m, nil
	}
	n := m.tree.NodeAtRow(m.displayToTreeRow(row))
	if n == nil || n == m.tree.Workspace {
		return m, nil
	}

	if !n.IsDir {
		path := n.Path
		return m, func() tea.Msg { return ActiveMsg{Path: path} }
	}
	return m.toggleDir(n)
}

func (m Model) toggleRow(row int) (Model, tea.Cmd) {
	if m.naming.InsertsAtRow(row) {
		return m, nil
	}
	n := m.tree.NodeAtRow(m.displayToTreeRow(row))
	if n == nil || n == m.tree.Workspace || !n.IsDir {
		return m, nil
	}
	return m.toggleDir(n)
}

// toggleDir is the expand/collapse entry point and the lazy-load trigger.
func (m Model) toggleDir(n *tree.Node) (Model, tea.Cmd) {
	if n.Open {
		// Explicit collapse withdraws any outstanding expand intent so a
		// late listing completion will not force the directory back open.
		n.Open = false
		delete(m.pendingOpen, n.Path)
		m.tree.RefreshCounts(n.Path)
		m.reconcileNaming()
		m.clampCursor()
		return m, nil
	}

	if n.Read {
		n.Open = true
		m.tree.RefreshCounts(n.Path)
		m.reconcileNaming()
		return m, nil
	}

	// Unread: defer opening until the listing arrives.
	m.pendingOpen[n.Path] = true
	if m.loading[n.Path] {
		return m, nil // a request is already in flight; coalesce
	}
	m.loading[n.Path] = true
	return m, listDir(n.Path)
}

// expandThen makes sure the directory at the given tree row is open and then
// delivers the continuation: immediately when no load is needed, otherwise
// once the listing lands.
func (m Model) expandThen(n *tree.Node, then tea.Cmd) (Model, tea.Cmd) {
	if n == nil || !n.IsDir {
		return m, then
	}
	if n.Read {
		if !n.Open {
			n.Open = true
			m.tree.RefreshCounts(n.Path)
			m.reconcileNaming()
		}
		return m, then
	}

	m.pendingOpen[n.Path] = true
	m.onLoaded[n.Path] = append(m.onLoaded[n.Path], then)
	if m.loading[n.Path] {
		return m, nil
	}
	m.loading[n.Path] = true
	return m, listDir(n.Path)
}

func (m Model) collapseOrAscend() (Model, tea.Cmd) {
	n := m.tree.NodeAtRow(m.displayToTreeRow(m.cursor))
	if n == nil || n == m.tree.Workspace {
		return m, nil
	}

	if n.IsDir && n.Open {
		return m.toggleDir(n)
	}

	// Move to the parent directory's row.
	parent := filepath.Dir(n.Path)
	if row := m.tree.RowOfPath(parent); row >= 1 {
		m.cursor = m.treeToDisplayRow(row)
		m.ensureVisible()
	}
	return m, nil
}

func (m Model) handleLoaded(msg LoadedMsg) (Model, tea.Cmd) {
	delete(m.loading, msg.Path)

	if msg.Err != nil {
		// The node stays unread; the next explicit expand retries.
		log.WithField("path", msg.Path).WithError(msg.Err).Warn("directory listing failed")
		delete(m.pendingOpen, msg.Path)
		delete(m.onLoaded, msg.Path)
		return m, nil
	}

	// Re-resolve by path: the node may have been renamed or removed while
	// the listing was in flight. A missing target is a stale completion.
	n := m.tree.Find(msg.Path)
	if n == nil {
		log.WithField("path", msg.Path).Debug("discarding stale listing")
		delete(m.pendingOpen, msg.Path)
		delete(m.onLoaded, msg.Path)
		return m, nil
	}

	entries := make([]tree.Entry, len(msg.Entries))
	for i, e := range msg.Entries {
		entries[i] = tree.Entry{Name: e.Name, IsDir: e.IsDir}
	}

	oldTotal := m.tree.TotalRows()
	dirRow := m.tree.RowOfPath(msg.Path)

	if err := m.tree.SetChildren(msg.Path, entries); err != nil {
		log.WithError(err).Debug("discarding listing")
		delete(m.pendingOpen, msg.Path)
		delete(m.onLoaded, msg.Path)
		return m, nil
	}
	if m.pendingOpen[msg.Path] {
		delete(m.pendingOpen, msg.Path)
		n.Open = true
	}
	m.tree.RefreshCounts(msg.Path)

	m.shiftCreateAnchor(dirRow, m.tree.TotalRows()-oldTotal)
	m.reconcileNaming()
	m.clampCursor()

	if conts := m.onLoaded[msg.Path]; len(conts) > 0 {
		delete(m.onLoaded, msg.Path)
		return m, tea.Batch(conts...)
	}
	return m, nil
}

// shiftCreateAnchor keeps the compose overlay's phantom row attached to the
// same predecessor when a completed load inserts or removes rows above it.
// dirRow is the loaded directory's tree row before the mutation; delta is
// the resulting row-count change.
func (m *Model) shiftCreateAnchor(dirRow, delta int) {
	if delta == 0 || dirRow < 0 || m.naming.State != tree.NamingCreate {
		return
	}
	if m.naming.AnchorRow <= m.treeToDisplayRow(dirRow) {
		return
	}
	oldAnchor := m.naming.AnchorRow
	m.naming.AnchorRow += delta
	if m.cursor == oldAnchor {
		m.cursor = m.naming.AnchorRow
		m.ensureVisible()
	}
}

func (m Model) handleFileOp(msg FileOpMsg) (Model, tea.Cmd) {
	if msg.Err != nil {
		// The tree is untouched; the app surfaces the notice.
		log.WithField("op", msg.Op.String()).WithError(msg.Err).Warn("file operation failed")
		return m, nil
	}

	switch msg.Op {
	case OpCreateFile, OpCreateDir:
		parent := filepath.Dir(msg.Path)
		if _, err := m.tree.InsertChild(parent, filepath.Base(msg.Path), msg.IsDir); err != nil {
			log.WithError(err).Debug("discarding stale create completion")
			return m, nil
		}
		if row := m.tree.RowOfPath(msg.Path); row >= 1 {
			m.cursor = m.treeToDisplayRow(row)
			m.ensureVisible()
		}

	case OpRename:
		if _, err := m.tree.RenameNode(msg.Path, filepath.Base(msg.NewPath)); err != nil {
			log.WithError(err).Debug("discarding stale rename completion")
			return m, nil
		}
		if row := m.tree.RowOfPath(msg.NewPath); row >= 1 {
			m.cursor = m.treeToDisplayRow(row)
			m.ensureVisible()
		}

	case OpTrash:
		if _, err := m.tree.RemoveNode(msg.Path); err != nil {
			log.WithError(err).Debug("discarding stale trash completion")
			return m, nil
		}
	}

	m.reconcileNaming()
	m.clampCursor()
	return m, nil
}

// Commands

func listDir(path string) tea.Cmd {
	return func() tea.Msg {
		entries, err := fsops.List(path)
		return LoadedMsg{Path: path, Entries: entries, Err: err}
	}
}

func doCreate(path string, isDir bool) tea.Cmd {
	return func() tea.Msg {
		op := OpCreateFile
		var err error
		if isDir {
			op = OpCreateDir
			err = fsops.CreateDir(path)
		} else {
			err = fsops.CreateFile(path)
		}
		return FileOpMsg{Op: op, Path: path, IsDir: isDir, Err: err}
	}
}

func doRename(old, new string) tea.Cmd {
	return func() tea.Msg {
		return FileOpMsg{Op: OpRename, Path: old, NewPath: new, Err: fsops.Rename(old, new)}
	}
}

func doTrash(path string) tea.Cmd {
	return func() tea.Msg {
		return FileOpMsg{Op: OpTrash, Path: path, Err: fsops.Trash(path)}
	}
}

// Cursor and viewport plumbing

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
	m.ensureVisible()
}

func (m *Model) clampCursor() {
	total := m.TotalVisibleRows()
	if m.cursor > total {
		m.cursor = total
	}
	if m.cursor < 1 {
		if total > 0 {
			m.cursor = 1
		} else {
			m.cursor = 0
		}
	}
	if m.offset > 0 && m.offset+m.viewportHeight() > total {
		m.offset = total - m.viewportHeight()
		if m.offset < 0 {
			m.offset = 0
		}
	}
}

func (m *Model) ensureVisible() {
	h := m.viewportHeight()
	if h <= 0 || m.cursor == 0 {
		return
	}
	if m.cursor <= m.offset {
		m.offset = m.cursor - 1
	}
	if m.cursor > m.offset+h {
		m.offset = m.cursor - h
	}
}

func (m Model) viewportHeight() int {
	_, h := m.Size()
	if h <= 2 {
		return 0
	}
	return h - 2 // border rows
}

// displayToTreeRow maps a display row (which may include the create
// overlay's phantom row) to the underlying tree row.
func (m Model) displayToTreeRow(row int) int {
	if m.naming.State == tree.NamingCreate {
		if row == m.naming.AnchorRow {
			return -1 // the phantom row backs no node
		}
		if row > m.naming.AnchorRow {
			return row - 1
		}
	}
	return row
}

// treeToDisplayRow is the inverse mapping for cursor placement.
func (m Model) treeToDisplayRow(row int) int {
	if m.naming.State == tree.NamingCreate && row >= m.naming.AnchorRow {
		return row + 1
	}
	return row
}

// Focus gives focus to this component.
func (m Model) Focus() Model {
	m.Base.Focus()
	return m
}

// Blur removes focus from this component.
func (m Model) Blur() Model {
	m.Base.Blur()
	return m
}

// SetSize updates the component's dimensions.
func (m Model) SetSize(width, height int) Model {
	m.Base.SetSize(width, height)
	m.ensureVisible()
	return m
}
