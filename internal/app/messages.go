package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// noticeTTL is how long a status notice stays on screen.
const noticeTTL = 4 * time.Second

type noticeLevel int

const (
	noticeInfo noticeLevel = iota
	noticeError
)

// notice is a transient status bar message.
type notice struct {
	Text  string
	Level noticeLevel
}

// noticeExpireMsg clears the status notice. The sequence number guards
// against an old timer wiping a newer notice.
type noticeExpireMsg struct {
	seq int
}

func expireNotice(seq int) tea.Cmd {
	return tea.Tick(noticeTTL, func(time.Time) tea.Msg {
		return noticeExpireMsg{seq: seq}
	})
}
