package theme

import "github.com/charmbracelet/lipgloss"

// Accent colors
var (
	Moss   = lipgloss.Color("#8EC07C") // directories/success
	Sky    = lipgloss.Color("#83A598") // focus/selection accent
	Amber  = lipgloss.Color("#FABD2F") // warnings/loading
	Ember  = lipgloss.Color("#FB4934") // errors
	Orchid = lipgloss.Color("#D3869B") // naming overlay accent
)

// Backgrounds
var (
	Bark   = lipgloss.Color("#1D2021") // primary background
	Loam   = lipgloss.Color("#282828") // panel background
	Canopy = lipgloss.Color("#3C3836") // selected row background
	Mulch  = lipgloss.Color("#32302F") // status bar background
)

// Text hierarchy
var (
	Chalk = lipgloss.Color("#EBDBB2") // primary text
	Stone = lipgloss.Color("#BDAE93") // secondary text
	Slate = lipgloss.Color("#928374") // muted text
	Shade = lipgloss.Color("#665C54") // dim text
)
