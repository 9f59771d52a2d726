package theme

// Directory and tree icons
const (
	IconDirCollapsed = "▸"
	IconDirExpanded  = "▾"
	IconFile         = "·"
)

// Indentation units
const (
	IndentWide    = "    "
	IndentCompact = "  "
)

// IconLoading marks a directory whose listing is in flight.
const IconLoading = "⋯"

// NerdDirCollapsed and NerdDirExpanded are the Nerd Font directory icons.
const (
	NerdDirCollapsed = ""
	NerdDirExpanded  = ""
	NerdFile         = ""
)

// FileIcons maps file extensions to Nerd Font icons.
var FileIcons = map[string]string{
	".go":   "󰟓",
	".mod":  "󰏗",
	".sum":  "󰏗",
	".js":   "",
	".ts":   "",
	".html": "",
	".css":  "",
	".json": "",
	".yaml": "",
	".yml":  "",
	".toml": "",
	".md":   "",
	".txt":  "",
	".sh":   "",
	".py":   "",
	".rs":   "",
	".c":    "",
	".h":    "",
	".git":  "",
	".lock": "",
	".png":  "",
	".jpg":  "",
	".svg":  "󰜡",
}

// GetFileIcon returns the Nerd Font icon for an extension, falling back to a
// generic file icon.
func GetFileIcon(ext string) string {
	if icon, ok := FileIcons[ext]; ok {
		return icon
	}
	return NerdFile
}
