package theme

import "github.com/charmbracelet/lipgloss"

// Panel styles
var (
	PanelBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Shade)

	PanelBorderFocused = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(Sky)
)

// File tree row styles
var (
	TreeDir      = lipgloss.NewStyle().Foreground(Moss)
	TreeFile     = lipgloss.NewStyle().Foreground(Chalk)
	TreeSelected = lipgloss.NewStyle().Foreground(Chalk).Background(Canopy).Bold(true)
	TreeLoading  = lipgloss.NewStyle().Foreground(Amber)
	TreeOverlay  = lipgloss.NewStyle().Foreground(Orchid)
)

// Status bar styles
var (
	StatusBar    = lipgloss.NewStyle().Background(Mulch).Foreground(Stone)
	StatusError  = lipgloss.NewStyle().Background(Mulch).Foreground(Ember).Bold(true)
	StatusActive = lipgloss.NewStyle().Background(Mulch).Foreground(Sky)
	StatusMuted  = lipgloss.NewStyle().Background(Mulch).Foreground(Slate)
)
