package tui

import (
	"errors"
	"testing"

	"github.com/sniperdeck/sniperdeck/internal/model"
)

func TestControlEnablement(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		snap      *model.StatusSnapshot
		wantStart bool
		wantStop  bool
	}{
		{"unknown", nil, false, false},
		{"stopped", &model.StatusSnapshot{IsRunning: false}, true, false},
		{"running", &model.StatusSnapshot{IsRunning: true}, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, stop := controlEnablement(tt.snap)
			if start != tt.wantStart || stop != tt.wantStop {
				t.Errorf("controlEnablement(%s) = %v/%v, want %v/%v",
					tt.name, start, stop, tt.wantStart, tt.wantStop)
			}
		})
	}
}

func TestStart_ShortCircuitsWhileRunning(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{}
	m := newTestModel(api)
	m.status = &model.StatusSnapshot{IsRunning: true}

	if cmd := m.startBot(); cmd != nil {
		t.Error("startBot returned a command while running")
	}
	if api.startCalls != 0 {
		t.Errorf("startCalls = %d, want 0", api.startCalls)
	}
}

func TestControls_DisabledWhileUnknown(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{}
	m := newTestModel(api)

	if cmd := m.startBot(); cmd != nil {
		t.Error("startBot enabled before first snapshot")
	}
	if cmd := m.stopBot(); cmd != nil {
		t.Error("stopBot enabled before first snapshot")
	}
	if cmd := m.switchNetwork(); cmd != nil {
		t.Error("switchNetwork enabled before first snapshot")
	}
	if api.startCalls+api.stopCalls+api.networkCalls != 0 {
		t.Error("controller contacted while snapshot unknown")
	}
}

func TestStartSuccess_NoticeAndImmediateStatusRefresh(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{}
	m := newTestModel(api)
	m.status = &model.StatusSnapshot{IsRunning: false}

	cmd := m.startBot()
	if cmd == nil {
		t.Fatal("startBot returned no command while stopped")
	}
	statusSeqBefore := m.statusSeq
	tokensSeqBefore := m.tokensSeq

	m.Update(cmd())

	if api.startCalls != 1 {
		t.Fatalf("startCalls = %d, want 1", api.startCalls)
	}
	if m.notice == nil || m.notice.Message != "Bot Started Successfully" {
		t.Fatalf("notice = %+v, want start success", m.notice)
	}
	if m.notice.Kind != NoticeSuccess {
		t.Error("start success raised a non-success notice")
	}
	if m.statusSeq != statusSeqBefore+1 {
		t.Error("no out-of-cycle status refresh scheduled after success")
	}
	if m.tokensSeq != tokensSeqBefore {
		t.Error("token refresh scheduled by an action; lists wait for the next cycle")
	}
	if m.actionInFlight {
		t.Error("actionInFlight not cleared after completion")
	}

	// The refresh lands and flips the derived enablement.
	m.Update(statusFetchedMsg{seq: m.statusSeq, snapshot: model.StatusSnapshot{IsRunning: true}})
	start, stop := controlEnablement(m.status)
	if start || !stop {
		t.Errorf("enablement after refresh = %v/%v, want false/true", start, stop)
	}
}

func TestStopFailure_ErrorNoticeLeavesSnapshot(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{stopErr: errors.New("boom")}
	m := newTestModel(api)
	m.status = &model.StatusSnapshot{IsRunning: true, WalletBalance: 3.5}

	cmd := m.stopBot()
	if cmd == nil {
		t.Fatal("stopBot returned no command while running")
	}
	m.Update(cmd())

	if m.notice == nil || m.notice.Kind != NoticeError {
		t.Fatalf("notice = %+v, want error notice", m.notice)
	}
	if m.notice.Message != "Error Stopping Bot" {
		t.Errorf("notice message = %q", m.notice.Message)
	}
	if !m.status.IsRunning || m.status.WalletBalance != 3.5 {
		t.Errorf("snapshot mutated by failed action: %+v", m.status)
	}
	if m.actionInFlight {
		t.Error("actionInFlight stuck after failure")
	}
	if _, stop := controlEnablement(m.status); !stop {
		t.Error("stop disabled after failed attempt; retry must stay possible")
	}
}

func TestDoublePress_SecondRequestSuppressed(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{}
	m := newTestModel(api)
	m.status = &model.StatusSnapshot{IsRunning: false}

	first := m.startBot()
	if first == nil {
		t.Fatal("first press returned no command")
	}
	if second := m.startBot(); second != nil {
		t.Error("second press issued a command while the first was in flight")
	}

	m.Update(first())
	if api.startCalls != 1 {
		t.Errorf("startCalls = %d, want 1", api.startCalls)
	}
}

func TestSwitchNetwork_TogglesAndReportsTarget(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{}
	m := newTestModel(api)
	m.status = &model.StatusSnapshot{IsRunning: true, Network: model.NetworkDevnet}

	cmd := m.switchNetwork()
	if cmd == nil {
		t.Fatal("switchNetwork returned no command")
	}
	m.Update(cmd())

	if api.networkCalls != 1 || api.lastNetwork != model.NetworkMainnet {
		t.Fatalf("SetNetwork called %d times with %q, want once with mainnet",
			api.networkCalls, api.lastNetwork)
	}
	if m.notice == nil || m.notice.Message != "Network Changed to mainnet" {
		t.Errorf("notice = %+v", m.notice)
	}
}
