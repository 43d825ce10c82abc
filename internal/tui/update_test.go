package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sniperdeck/sniperdeck/internal/model"
)

// fakeAPI is a scriptable controller double that counts calls.
type fakeAPI struct {
	status    model.StatusSnapshot
	statusErr error
	tokens    []model.Token
	tokensErr error
	trades    []model.Trade
	tradesErr error

	startErr   error
	stopErr    error
	networkErr error

	statusCalls  int
	tokensCalls  int
	tradesCalls  int
	startCalls   int
	stopCalls    int
	networkCalls int

	lastNetwork string
}

func (f *fakeAPI) Status(_ context.Context) (model.StatusSnapshot, error) {
	f.statusCalls++
	return f.status, f.statusErr
}

func (f *fakeAPI) Tokens(_ context.Context) ([]model.Token, error) {
	f.tokensCalls++
	return f.tokens, f.tokensErr
}

func (f *fakeAPI) Trades(_ context.Context) ([]model.Trade, error) {
	f.tradesCalls++
	return f.trades, f.tradesErr
}

func (f *fakeAPI) Start(_ context.Context) error {
	f.startCalls++
	return f.startErr
}

func (f *fakeAPI) Stop(_ context.Context) error {
	f.stopCalls++
	return f.stopErr
}

func (f *fakeAPI) SetNetwork(_ context.Context, network string) error {
	f.networkCalls++
	f.lastNetwork = network
	return f.networkErr
}

func newTestModel(api *fakeAPI) *ConsoleModel {
	m := NewConsoleModel(api, "test", 50*time.Millisecond, 10*time.Millisecond, false)
	m.width = 100
	m.height = 32
	return m
}

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestPollCycle_IndependentFailureIsolation(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{
		status:    model.StatusSnapshot{IsRunning: true, Network: "devnet", TokensScanned: 9},
		tokensErr: context.DeadlineExceeded,
	}
	m := newTestModel(api)

	// Previous cycle already populated the token slot.
	m.tokens = []model.Token{{Address: "keepme", Symbol: "OLD"}}
	m.tokensSeq, m.tokensApplied = 1, 1

	statusMsg := m.fetchStatusCmd()()
	tokensMsg := m.fetchTokensCmd()()
	m.Update(statusMsg)
	m.Update(tokensMsg)

	if m.status == nil || !m.status.IsRunning {
		t.Fatal("status slot not updated despite successful status fetch")
	}
	if len(m.tokens) != 1 || m.tokens[0].Address != "keepme" {
		t.Fatalf("token slot corrupted by failed fetch: %+v", m.tokens)
	}
	if m.tokensErr == "" {
		t.Error("tokens fetch failure not recorded for the status line")
	}
	if m.statusErr != "" {
		t.Errorf("statusErr = %q, want empty", m.statusErr)
	}
}

func TestStaleResponseDiscarded(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{status: model.StatusSnapshot{WalletBalance: 1}}
	m := newTestModel(api)

	earlyMsg := m.fetchStatusCmd()() // slow cycle, captured first
	api.status.WalletBalance = 2
	lateMsg := m.fetchStatusCmd()() // later cycle, arrives first

	m.Update(lateMsg)
	if m.status.WalletBalance != 2 {
		t.Fatalf("WalletBalance = %v, want 2", m.status.WalletBalance)
	}

	m.Update(earlyMsg)
	if m.status.WalletBalance != 2 {
		t.Errorf("stale response overwrote newer snapshot: balance = %v", m.status.WalletBalance)
	}
}

func TestStaleErrorDiscarded(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{statusErr: context.DeadlineExceeded}
	m := newTestModel(api)

	failedMsg := m.fetchStatusCmd()()
	api.statusErr = nil
	api.status = model.StatusSnapshot{IsRunning: true}
	okMsg := m.fetchStatusCmd()()

	m.Update(okMsg)
	m.Update(failedMsg)

	if m.statusErr != "" {
		t.Errorf("superseded failure surfaced: statusErr = %q", m.statusErr)
	}
	if m.status == nil || !m.status.IsRunning {
		t.Error("applied snapshot lost after stale error arrived")
	}
}

func TestTick_IssuesAllFetchesAndRearms(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{}
	m := newTestModel(api)

	_, cmd := m.Update(TickMsg(time.Now()))
	if cmd == nil {
		t.Fatal("tick returned no command")
	}
	if m.statusSeq != 1 || m.tokensSeq != 1 || m.tradesSeq != 1 {
		t.Errorf("fetch sequences = %d/%d/%d, want 1/1/1",
			m.statusSeq, m.tokensSeq, m.tradesSeq)
	}
}

func TestTeardown_NoFetchAfterQuit(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{}
	m := newTestModel(api)

	_, cmd := m.Update(keyPress('q'))
	if cmd == nil {
		t.Fatal("quit key returned no command")
	}

	// A tick that was already pending when the operator quit.
	_, cmd = m.Update(TickMsg(time.Now()))
	if cmd != nil {
		t.Error("tick after quit returned a command; poller must stay cancelled")
	}
	if m.statusSeq != 0 || m.tokensSeq != 0 || m.tradesSeq != 0 {
		t.Errorf("fetches issued after quit: %d/%d/%d", m.statusSeq, m.tokensSeq, m.tradesSeq)
	}
	if api.statusCalls != 0 || api.tokensCalls != 0 || api.tradesCalls != 0 {
		t.Error("controller contacted after teardown")
	}
}

func TestScanHistory_RecordsPerCycleDeltas(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{}
	m := newTestModel(api)

	for _, total := range []int{5, 8, 7} {
		api.status = model.StatusSnapshot{TokensScanned: total}
		m.Update(m.fetchStatusCmd()())
	}

	// First fetch establishes the baseline; the drop from 8 to 7 clamps to 0.
	want := []int{3, 0}
	if len(m.scanHistory) != len(want) {
		t.Fatalf("scanHistory = %v, want %v", m.scanHistory, want)
	}
	for i := range want {
		if m.scanHistory[i] != want[i] {
			t.Errorf("scanHistory[%d] = %d, want %d", i, m.scanHistory[i], want[i])
		}
	}
}

func TestSectionNavigation(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{}
	m := newTestModel(api)
	m.tokens = []model.Token{{Address: "a"}, {Address: "b"}, {Address: "c"}}
	m.trades = []model.Trade{{TokenAddress: "a"}}

	if m.activeSection != SectionTokens {
		t.Fatalf("initial section = %v, want tokens", m.activeSection)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if m.tokenCursor != 2 {
		t.Errorf("tokenCursor = %d, want 2", m.tokenCursor)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if m.tokenCursor != 2 {
		t.Errorf("tokenCursor moved past end: %d", m.tokenCursor)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.activeSection != SectionTrades {
		t.Error("tab did not switch to trades")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if m.tradeCursor != 0 {
		t.Errorf("tradeCursor = %d, want 0 with a single trade", m.tradeCursor)
	}
}

func TestTokenReplacement_ClampsCursor(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{tokens: []model.Token{{Address: "only"}}}
	m := newTestModel(api)
	m.tokens = []model.Token{{Address: "a"}, {Address: "b"}, {Address: "c"}}
	m.tokenCursor = 2

	m.Update(m.fetchTokensCmd()())

	if len(m.tokens) != 1 {
		t.Fatalf("len(tokens) = %d, want 1 after wholesale replacement", len(m.tokens))
	}
	if m.tokenCursor != 0 {
		t.Errorf("tokenCursor = %d, want clamped to 0", m.tokenCursor)
	}
}
