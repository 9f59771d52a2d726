package tree

// NamingState identifies what the inline naming overlay is doing.
type NamingState int

const (
	// NamingIdle means no overlay is shown.
	NamingIdle NamingState = iota
	// NamingCreate means an uncommitted new entry is being typed. It
	// occupies a phantom row at the anchor that no node backs.
	NamingCreate
	// NamingRename means an existing node's row is replaced by an editable
	// one. No extra row is added.
	NamingRename
)

// Naming is the inline create/rename overlay state, anchored to a visible
// row and indent depth. It is a single mutable slot owned by the panel;
// transitions happen only through the methods here, and the panel must
// implicitly cancel it whenever a structural change invalidates the anchor.
type Naming struct {
	State     NamingState
	AnchorRow int
	Depth     int

	// Create fields.
	ParentPath string
	IsDir      bool

	// Rename field.
	TargetPath string
}

// StartCreate begins composing a new entry under parentPath.
func (nm *Naming) StartCreate(parentPath string, isDir bool, anchorRow, depth int) {
	*nm = Naming{
		State:      NamingCreate,
		AnchorRow:  anchorRow,
		Depth:      depth,
		ParentPath: parentPath,
		IsDir:      isDir,
	}
}

// StartRename begins renaming the entry at targetPath in place.
func (nm *Naming) StartRename(targetPath string, anchorRow, depth int) {
	*nm = Naming{
		State:      NamingRename,
		AnchorRow:  anchorRow,
		Depth:      depth,
		TargetPath: targetPath,
	}
}

// Cancel returns the overlay to idle with no side effect.
func (nm *Naming) Cancel() {
	*nm = Naming{}
}

// Active reports whether an overlay is shown.
func (nm Naming) Active() bool {
	return nm.State != NamingIdle
}

// ExtraRows is the number of phantom rows the overlay adds to the listing:
// one while composing a new entry, zero otherwise. Row-count consumers apply
// this once per layout or paint pass instead of threading overlay cases
// through the resolver.
func (nm Naming) ExtraRows() int {
	if nm.State == NamingCreate {
		return 1
	}
	return 0
}

// ReplacesRow reports whether the overlay substitutes the given row's node
// with the editable row.
func (nm Naming) ReplacesRow(row int) bool {
	return nm.State == NamingRename && nm.AnchorRow == row
}

// InsertsAtRow reports whether the overlay's phantom row sits at the given
// row of the displayed listing.
func (nm Naming) InsertsAtRow(row int) bool {
	return nm.State == NamingCreate && nm.AnchorRow == row
}
