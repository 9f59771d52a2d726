// Package app wires the file tree panel into a full-screen application:
// window sizing, a status bar for operation results, quit confirmation, and
// settings persistence.
package app

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	log "github.com/sirupsen/logrus"

	"github.com/mattgale/treetop/internal/components/filetree"
	"github.com/mattgale/treetop/internal/config"
	"github.com/mattgale/treetop/internal/theme"
)

// Version is the application version, set at build time via ldflags
var Version = "dev"

// Model is the root application model.
type Model struct {
	fileTree filetree.Model

	cfg       config.Config
	workspace string

	// Active file, as last reported by the panel.
	activePath string

	status    notice
	statusSeq int

	showHelp      bool
	showQuit      bool
	lastQuitPress time.Time // double-tap ctrl+q quits without confirming

	width  int
	height int
	ready  bool

	keys KeyMap
}

// New creates the application model rooted at the given workspace path.
func New(workspacePath string, cfg config.Config) Model {
	ft := filetree.New(workspacePath, cfg)
	ft = ft.Focus()

	return Model{
		fileTree:  ft,
		cfg:       cfg,
		workspace: workspacePath,
		keys:      DefaultKeyMap(),
	}
}

// Init initializes the application.
func (m Model) Init() tea.Cmd {
	return m.fileTree.Init()
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.fileTree = m.fileTree.SetSize(msg.Width, msg.Height-1)
		return m, nil

	case filetree.ActiveMsg:
		m.activePath = msg.Path
		return m.setNotice(relPath(m.workspace, msg.Path), noticeInfo)

	case filetree.FileOpMsg:
		return m.handleFileOp(msg)

	case filetree.LoadedMsg:
		var cmds []tea.Cmd
		if msg.Err != nil {
			var cmd tea.Cmd
			m, cmd = m.setNotice(fmt.Sprintf("cannot list %s: %v", relPath(m.workspace, msg.Path), msg.Err), noticeError)
			cmds = append(cmds, cmd)
		}
		var cmd tea.Cmd
		m.fileTree, cmd = m.fileTree.Update(msg)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)

	case noticeExpireMsg:
		if msg.seq == m.statusSeq {
			m.status = notice{}
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.fileTree, cmd = m.fileTree.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.fileTree, cmd = m.fileTree.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showQuit {
		switch msg.String() {
		case "y", "Y", "enter", "ctrl+q":
			return m, tea.Quit
		case "n", "N", "esc":
			m.showQuit = false
			// Declining also disarms the double-tap window, so the next
			// ctrl+q asks again instead of quitting outright.
			m.lastQuitPress = time.Time{}
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		now := time.Now()
		if now.Sub(m.lastQuitPress) < 400*time.Millisecond {
			return m, tea.Quit
		}
		m.lastQuitPress = now
		m.showQuit = true
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil
	}

	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	var cmd tea.Cmd
	m.fileTree, cmd = m.fileTree.Update(msg)
	m.persistSettings()
	return m, cmd
}

func (m Model) handleFileOp(msg filetree.FileOpMsg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	var cmd tea.Cmd
	if msg.Err != nil {
		m, cmd = m.setNotice(fmt.Sprintf("%s failed: %v", msg.Op, msg.Err), noticeError)
	} else {
		m, cmd = m.setNotice(fmt.Sprintf("%s %s", msg.Op, relPath(m.workspace, msg.Path)), noticeInfo)
	}
	cmds = append(cmds, cmd)

	m.fileTree, cmd = m.fileTree.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// setNotice replaces the status notice and arms its expiry timer.
func (m Model) setNotice(text string, level noticeLevel) (Model, tea.Cmd) {
	m.statusSeq++
	m.status = notice{Text: text, Level: level}
	return m, expireNotice(m.statusSeq)
}

// persistSettings writes the config back when a panel toggle changed it.
// Best effort: a failed write only logs.
func (m *Model) persistSettings() {
	changed := false
	if m.fileTree.ShowHidden() != m.cfg.ShowHidden {
		m.cfg.ShowHidden = m.fileTree.ShowHidden()
		changed = true
	}
	if m.fileTree.CompactIndent() != m.cfg.CompactIndent {
		m.cfg.CompactIndent = m.fileTree.CompactIndent()
		changed = true
	}
	if !changed {
		return
	}
	if err := m.cfg.Save(); err != nil {
		log.WithError(err).Warn("saving settings failed")
	}
}

// View renders the application.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	view := lipgloss.JoinVertical(lipgloss.Left,
		m.fileTree.View(),
		m.renderStatusBar(),
	)

	switch {
	case m.showQuit:
		return m.renderDialog(quitDialog)
	case m.showHelp:
		return m.renderDialog(helpDialog)
	}
	return view
}

// renderStatusBar renders the one-row bar under the panel.
func (m Model) renderStatusBar() string {
	var left string
	switch {
	case m.status.Text != "" && m.status.Level == noticeError:
		left = theme.StatusError.Render(" " + m.status.Text)
	case m.status.Text != "":
		left = theme.StatusActive.Render(" " + m.status.Text)
	default:
		left = theme.StatusBar.Render(" " + filepath.Base(m.workspace))
	}

	right := theme.StatusMuted.Render("^H help │ ^Q quit │ " + Version + " ")

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	return left + theme.StatusBar.Width(gap).Render("") + right
}

var helpDialog = []string{
	"╭──────────────────────────────────────╮",
	"│ NAVIGATION                           │",
	"│   ↑/k ↓/j     move                   │",
	"│   ←/h         collapse / go to dir   │",
	"│   →/l enter   open / expand          │",
	"│   space       expand / collapse      │",
	"│   pgup pgdn   half page              │",
	"│   home/g end/G top / bottom          │",
	"│                                      │",
	"│ FILES                                │",
	"│   n           new file               │",
	"│   N           new directory          │",
	"│   r           rename                 │",
	"│   d           move to trash          │",
	"│                                      │",
	"│ DISPLAY                              │",
	"│   .           toggle hidden files    │",
	"│   i           toggle compact indent  │",
	"│                                      │",
	"│        press any key to close        │",
	"╰──────────────────────────────────────╯",
}

var quitDialog = []string{
	"╭──────────────────────────────╮",
	"│         Quit treetop?        │",
	"│                              │",
	"│   [Y]es   [N]o   [^Q] quit   │",
	"╰──────────────────────────────╯",
}

func (m Model) renderDialog(lines []string) string {
	box := theme.StatusActive.UnsetBackground().
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// relPath shortens a workspace-internal path for display.
func relPath(workspace, path string) string {
	if rel, err := filepath.Rel(workspace, path); err == nil && rel != "." {
		return rel
	}
	return path
}
