package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sniperdeck/sniperdeck/internal/model"
)

// controlAction identifies a control-surface request.
type controlAction int

const (
	actionStart controlAction = iota
	actionStop
	actionSwitchNetwork
)

func (a controlAction) successMessage(target string) string {
	switch a {
	case actionStart:
		return "Bot Started Successfully"
	case actionStop:
		return "Bot Stopped Successfully"
	case actionSwitchNetwork:
		return "Network Changed to " + target
	}
	return ""
}

func (a controlAction) failureMessage() string {
	switch a {
	case actionStart:
		return "Error Starting Bot"
	case actionStop:
		return "Error Stopping Bot"
	case actionSwitchNetwork:
		return "Error Changing Network"
	}
	return ""
}

// controlEnablement derives action availability from the snapshot: start is
// enabled iff the snapshot is known and the bot is not running, stop iff
// known and running. While the snapshot is unknown both are disabled.
func controlEnablement(snap *model.StatusSnapshot) (startEnabled, stopEnabled bool) {
	if snap == nil {
		return false, false
	}
	return !snap.IsRunning, snap.IsRunning
}

// startBot issues a start request. The precondition short-circuits without a
// request when start is not enabled or another action is already in flight.
func (m *ConsoleModel) startBot() tea.Cmd {
	if m.actionInFlight {
		return nil
	}
	startEnabled, _ := controlEnablement(m.status)
	if !startEnabled {
		return nil
	}
	m.actionInFlight = true
	api := m.api
	timeout := m.requestTimeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return actionDoneMsg{action: actionStart, err: api.Start(ctx)}
	}
}

// stopBot is symmetric with startBot.
func (m *ConsoleModel) stopBot() tea.Cmd {
	if m.actionInFlight {
		return nil
	}
	_, stopEnabled := controlEnablement(m.status)
	if !stopEnabled {
		return nil
	}
	m.actionInFlight = true
	api := m.api
	timeout := m.requestTimeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return actionDoneMsg{action: actionStop, err: api.Stop(ctx)}
	}
}

// switchNetwork toggles devnet/mainnet. Disabled while the snapshot is
// unknown, since the target is derived from the current network.
func (m *ConsoleModel) switchNetwork() tea.Cmd {
	if m.actionInFlight || m.status == nil {
		return nil
	}
	target := model.NetworkDevnet
	if m.status.Network == model.NetworkDevnet {
		target = model.NetworkMainnet
	}
	m.actionInFlight = true
	api := m.api
	timeout := m.requestTimeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return actionDoneMsg{action: actionSwitchNetwork, target: target, err: api.SetNetwork(ctx, target)}
	}
}

// finishAction resolves a completed control request: an error raises an error
// notice and leaves the snapshot untouched; success raises a success notice
// and triggers one immediate out-of-cycle status refresh. Tokens and trades
// are not re-fetched here; they wait for the next scheduled cycle.
func (m *ConsoleModel) finishAction(msg actionDoneMsg) (tea.Model, tea.Cmd) {
	m.actionInFlight = false
	if msg.err != nil {
		return m, m.showNotice(NoticeError, msg.action.failureMessage())
	}
	return m, tea.Batch(
		m.showNotice(NoticeSuccess, msg.action.successMessage(msg.target)),
		m.fetchStatusCmd(),
	)
}
