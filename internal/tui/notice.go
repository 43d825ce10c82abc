package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// NoticeKind classifies a transient notification.
type NoticeKind int

const (
	NoticeSuccess NoticeKind = iota
	NoticeError
)

// Notice is the single-slot transient notification: Idle (nil) or Showing.
// A new notice always replaces the current one and restarts the countdown.
type Notice struct {
	Message   string
	Kind      NoticeKind
	CreatedAt time.Time
}

// showNotice replaces the notice slot and arms a fresh expiry timer. The
// generation tag makes superseded timers no-ops: only the countdown that
// belongs to the latest notice can clear it.
func (m *ConsoleModel) showNotice(kind NoticeKind, message string) tea.Cmd {
	m.noticeGen++
	gen := m.noticeGen
	m.notice = &Notice{
		Message:   message,
		Kind:      kind,
		CreatedAt: time.Now(),
	}
	return tea.Tick(m.noticeDuration, func(time.Time) tea.Msg {
		return noticeExpiredMsg{gen: gen}
	})
}
