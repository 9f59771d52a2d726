package filetree

import "github.com/mattgale/treetop/internal/fsops"

// OpKind identifies a filesystem operation requested by the panel.
type OpKind int

const (
	OpCreateFile OpKind = iota
	OpCreateDir
	OpRename
	OpTrash
)

// String returns the op name for logging.
func (k OpKind) String() string {
	switch k {
	case OpCreateFile:
		return "create-file"
	case OpCreateDir:
		return "create-dir"
	case OpRename:
		return "rename"
	case OpTrash:
		return "trash"
	default:
		return "unknown"
	}
}

type (
	// LoadedMsg is sent when a directory listing completes.
	LoadedMsg struct {
		Path    string
		Entries []fsops.Entry
		Err     error
	}

	// FileOpMsg is sent when a create/rename/trash operation completes.
	FileOpMsg struct {
		Op      OpKind
		Path    string
		NewPath string // rename only
		IsDir   bool
		Err     error
	}

	// ActiveMsg is sent when a file row is activated, for the surrounding
	// UI to open it.
	ActiveMsg struct {
		Path string
	}

	// composeMsg starts the create overlay once its anchor directory is
	// expanded. It is the continuation attached to the expand request.
	composeMsg struct {
		parentPath string
		isDir      bool
		anchorRow  int
		depth      int
	}
)
