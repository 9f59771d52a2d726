package theme

// Theme holds the visual configuration consulted by the renderers.
type Theme struct {
	Name string

	// UseNerdFonts switches file and directory icons to Nerd Font glyphs.
	UseNerdFonts bool
}

// Default returns the standard theme.
func Default() *Theme {
	return &Theme{Name: "Grove", UseNerdFonts: true}
}

// FileIcon returns the icon for a file with the given extension.
func (t *Theme) FileIcon(ext string) string {
	if !t.UseNerdFonts {
		return IconFile
	}
	return GetFileIcon(ext)
}

// DirIcon returns the icon for a directory in the given open state.
func (t *Theme) DirIcon(open bool) string {
	if t.UseNerdFonts {
		if open {
			return NerdDirExpanded
		}
		return NerdDirCollapsed
	}
	if open {
		return IconDirExpanded
	}
	return IconDirCollapsed
}

// Chevron returns the expand/collapse marker drawn before a directory.
func (t *Theme) Chevron(open bool) string {
	if open {
		return IconDirExpanded
	}
	return IconDirCollapsed
}
