package tui

import (
	"strings"
	"testing"

	"github.com/sniperdeck/sniperdeck/internal/model"
)

func TestView_FirstRenderShowsPlaceholders(t *testing.T) {
	t.Parallel()

	m := newTestModel(&fakeAPI{})
	out := m.View()

	for _, want := range []string{"UNKNOWN", statPlaceholder, "No tokens scanned yet", "No trades yet"} {
		if !strings.Contains(out, want) {
			t.Errorf("first render missing %q", want)
		}
	}
	if m.StartEnabled() || m.StopEnabled() {
		t.Error("controls enabled before the first snapshot arrived")
	}
}

func TestView_RunningSnapshot(t *testing.T) {
	t.Parallel()

	m := newTestModel(&fakeAPI{})
	m.status = &model.StatusSnapshot{
		IsRunning:     true,
		Network:       model.NetworkMainnet,
		WalletBalance: 4.2,
		TokensScanned: 128,
		ActiveTrades:  3,
	}
	out := m.View()

	for _, want := range []string{"RUNNING", "mainnet", "4.2000 SOL", "128"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}
	if m.StartEnabled() {
		t.Error("start enabled while running")
	}
	if !m.StopEnabled() {
		t.Error("stop disabled while running")
	}
}

func TestView_NoticeBanner(t *testing.T) {
	t.Parallel()

	m := newTestModel(&fakeAPI{})
	m.showNotice(NoticeSuccess, "Bot Started Successfully")

	if !strings.Contains(m.View(), "Bot Started Successfully") {
		t.Error("live notice not rendered")
	}

	m.Update(noticeExpiredMsg{gen: m.noticeGen})
	if strings.Contains(m.View(), "Bot Started Successfully") {
		t.Error("expired notice still rendered")
	}
}

func TestView_SizeGuards(t *testing.T) {
	t.Parallel()

	m := NewConsoleModel(&fakeAPI{}, "test", 0, 0, false)
	if !strings.Contains(m.View(), "Initializing") {
		t.Error("unsized model did not render the init screen")
	}

	m.width, m.height = 40, 10
	if !strings.Contains(m.View(), "Terminal too small") {
		t.Error("undersized terminal did not render the resize hint")
	}
}

func TestWindowStart(t *testing.T) {
	t.Parallel()

	tests := []struct {
		cursor, total, visible, want int
	}{
		{0, 10, 5, 0},
		{4, 10, 5, 2},
		{9, 10, 5, 5},
		{2, 3, 5, 0},
		{1, 10, 5, 0},
	}
	for _, tt := range tests {
		if got := windowStart(tt.cursor, tt.total, tt.visible); got != tt.want {
			t.Errorf("windowStart(%d, %d, %d) = %d, want %d",
				tt.cursor, tt.total, tt.visible, got, tt.want)
		}
	}
}
