package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages. All state mutation happens here, on the single
// Bubble Tea event loop; fetch commands only read the fields captured at
// issue time and report back via messages.
func (m *ConsoleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampCursors()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case TickMsg:
		// Quitting cancels the recurring tick: it is simply not re-armed,
		// and no new fetches are issued.
		if m.quitting {
			return m, nil
		}
		return m, tea.Batch(m.pollCycleCmd(), m.tickCmd())

	case statusFetchedMsg:
		m.applyStatusFetch(msg)
		return m, nil

	case tokensFetchedMsg:
		m.applyTokensFetch(msg)
		return m, nil

	case tradesFetchedMsg:
		m.applyTradesFetch(msg)
		return m, nil

	case actionDoneMsg:
		return m.finishAction(msg)

	case noticeExpiredMsg:
		if msg.gen == m.noticeGen {
			m.notice = nil
		}
		return m, nil
	}

	return m, nil
}

func (m *ConsoleModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit), key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.StartBot):
		return m, m.startBot()

	case key.Matches(msg, m.keys.StopBot):
		return m, m.stopBot()

	case key.Matches(msg, m.keys.SwitchNetwork):
		return m, m.switchNetwork()

	case key.Matches(msg, m.keys.Refresh):
		if m.quitting {
			return m, nil
		}
		return m, m.pollCycleCmd()

	case key.Matches(msg, m.keys.NextSection):
		m.toggleSection()
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.moveSelection(-1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.moveSelection(1)
		return m, nil

	case key.Matches(msg, m.keys.Home):
		m.setSelection(0)
		return m, nil

	case key.Matches(msg, m.keys.End):
		m.setSelection(m.activeListLen() - 1)
		return m, nil
	}

	return m, nil
}

func (m *ConsoleModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if m.reverseScrollWheel {
			m.moveSelection(1)
		} else {
			m.moveSelection(-1)
		}
	case tea.MouseButtonWheelDown:
		if m.reverseScrollWheel {
			m.moveSelection(-1)
		} else {
			m.moveSelection(1)
		}
	}
	return m, nil
}

// fetchStatusCmd allocates the next status sequence number and returns a
// command that fetches the snapshot under it.
func (m *ConsoleModel) fetchStatusCmd() tea.Cmd {
	m.statusSeq++
	seq := m.statusSeq
	api := m.api
	timeout := m.requestTimeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		snap, err := api.Status(ctx)
		return statusFetchedMsg{seq: seq, snapshot: snap, err: err}
	}
}

func (m *ConsoleModel) fetchTokensCmd() tea.Cmd {
	m.tokensSeq++
	seq := m.tokensSeq
	api := m.api
	timeout := m.requestTimeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		tokens, err := api.Tokens(ctx)
		return tokensFetchedMsg{seq: seq, tokens: tokens, err: err}
	}
}

func (m *ConsoleModel) fetchTradesCmd() tea.Cmd {
	m.tradesSeq++
	seq := m.tradesSeq
	api := m.api
	timeout := m.requestTimeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		trades, err := api.Trades(ctx)
		return tradesFetchedMsg{seq: seq, trades: trades, err: err}
	}
}

// applyStatusFetch replaces the status slot. Responses at or below the last
// applied sequence are superseded and dropped, including their errors.
func (m *ConsoleModel) applyStatusFetch(msg statusFetchedMsg) {
	if msg.seq <= m.statusApplied {
		return
	}
	if msg.err != nil {
		m.statusErr = msg.err.Error()
		return
	}
	m.statusApplied = msg.seq
	snap := msg.snapshot
	m.status = &snap
	m.statusErr = ""
	m.lastSyncAt = time.Now()
	m.recordScanSample(snap.TokensScanned)
}

func (m *ConsoleModel) applyTokensFetch(msg tokensFetchedMsg) {
	if msg.seq <= m.tokensApplied {
		return
	}
	if msg.err != nil {
		m.tokensErr = msg.err.Error()
		return
	}
	m.tokensApplied = msg.seq
	m.tokens = msg.tokens
	m.tokensErr = ""
	m.clampCursors()
}

func (m *ConsoleModel) applyTradesFetch(msg tradesFetchedMsg) {
	if msg.seq <= m.tradesApplied {
		return
	}
	if msg.err != nil {
		m.tradesErr = msg.err.Error()
		return
	}
	m.tradesApplied = msg.seq
	m.trades = msg.trades
	m.tradesErr = ""
	m.clampCursors()
}

// recordScanSample appends the per-cycle delta of TokensScanned to the chart
// window. The first sample only establishes the baseline; a negative delta
// (controller counter reset, e.g. after a network switch) is clamped to zero.
func (m *ConsoleModel) recordScanSample(total int) {
	if m.hasScanBase {
		delta := total - m.lastScanned
		if delta < 0 {
			delta = 0
		}
		m.scanHistory = append(m.scanHistory, delta)
		if len(m.scanHistory) > maxScanHistory {
			m.scanHistory = m.scanHistory[len(m.scanHistory)-maxScanHistory:]
		}
	}
	m.lastScanned = total
	m.hasScanBase = true
}

func (m *ConsoleModel) toggleSection() {
	if m.activeSection == SectionTokens {
		m.activeSection = SectionTrades
	} else {
		m.activeSection = SectionTokens
	}
}

func (m *ConsoleModel) activeListLen() int {
	if m.activeSection == SectionTrades {
		return len(m.trades)
	}
	return len(m.tokens)
}

func (m *ConsoleModel) moveSelection(delta int) {
	if m.activeSection == SectionTrades {
		m.tradeCursor = clamp(m.tradeCursor+delta, 0, len(m.trades)-1)
		return
	}
	m.tokenCursor = clamp(m.tokenCursor+delta, 0, len(m.tokens)-1)
}

func (m *ConsoleModel) setSelection(idx int) {
	if m.activeSection == SectionTrades {
		m.tradeCursor = clamp(idx, 0, len(m.trades)-1)
		return
	}
	m.tokenCursor = clamp(idx, 0, len(m.tokens)-1)
}

func (m *ConsoleModel) clampCursors() {
	m.tokenCursor = clamp(m.tokenCursor, 0, len(m.tokens)-1)
	m.tradeCursor = clamp(m.tradeCursor, 0, len(m.trades)-1)
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// pollErrorLine returns the first live background-fetch error for the status
// line, empty when the last cycle was clean.
func (m *ConsoleModel) pollErrorLine() string {
	switch {
	case m.statusErr != "":
		return "status: " + m.statusErr
	case m.tokensErr != "":
		return "tokens: " + m.tokensErr
	case m.tradesErr != "":
		return "trades: " + m.tradesErr
	}
	return ""
}
