package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the console.
func (m *ConsoleModel) View() string {
	if m.width <= 0 || m.height <= 0 {
		return "Initializing console..."
	}
	if m.height < 16 || m.width < 70 {
		return "Terminal too small. Resize to at least 70x16."
	}

	titleRow := m.renderTitleRow()
	noticeRow := m.renderNoticeRow()
	cards := m.renderStatCards()
	statusLine := m.renderStatusLine()

	fixed := 1 + 1 + lipgloss.Height(cards) + 1
	remaining := m.height - fixed

	chartHeight := 0
	if remaining >= 16 {
		chartHeight = 8
	}
	tablesHeight := remaining - chartHeight
	if tablesHeight < 5 {
		tablesHeight = 5
	}

	sections := []string{titleRow, noticeRow, cards}
	if chartHeight > 0 {
		sections = append(sections, m.renderScanChart(m.width, chartHeight))
	}
	sections = append(sections, m.renderTables(tablesHeight), statusLine)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderTitleRow renders the branding line with the controller address.
func (m *ConsoleModel) renderTitleRow() string {
	brand := renderBranding()
	subtitle := helpStyle.Render("  sniper bot console")
	left := brand + subtitle

	right := helpStyle.Render(m.apiLabel)
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + right
}

// renderBranding renders "Snipe!" with a purple-to-green gradient.
func renderBranding() string {
	colors := []string{
		"#9945FF", // Solana purple (S)
		"#7B5BFF", // (n)
		"#5D72FF", // (i)
		"#3F88FF", // (p)
		"#21CF9A", // (e)
		"#14F195", // Solana green (!)
	}
	chars := []string{"S", "n", "i", "p", "e", "!"}

	var result string
	for i, char := range chars {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(colors[i])).Bold(true)
		result += style.Render(char)
	}
	return result
}

// renderNoticeRow renders the transient notification banner, or a blank line
// when idle so the layout does not jump.
func (m *ConsoleModel) renderNoticeRow() string {
	if m.notice == nil {
		return strings.Repeat(" ", m.width)
	}
	style := successNoticeStyle
	if m.notice.Kind == NoticeError {
		style = errorNoticeStyle
	}
	text := " " + m.notice.Message + " "
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, style.Render(text))
}

// renderStatCards renders the five status cards. Before the first successful
// fetch every value is a placeholder and the run state reads UNKNOWN.
func (m *ConsoleModel) renderStatCards() string {
	runState := unknownStyle.Render("UNKNOWN")
	network := statPlaceholder
	balance := statPlaceholder
	scanned := statPlaceholder
	trades := statPlaceholder

	if snap := m.status; snap != nil {
		if snap.IsRunning {
			runState = runningStyle.Render("RUNNING")
		} else {
			runState = stoppedStyle.Render("STOPPED")
		}
		network = snap.Network
		balance = formatSOL(snap.WalletBalance)
		scanned = fmt.Sprintf("%d", snap.TokensScanned)
		trades = fmt.Sprintf("%d", snap.ActiveTrades)
	}

	cardWidth := (m.width-2)/5 - 2
	if cardWidth < 12 {
		cardWidth = 12
	}

	cards := []string{
		renderCard("Status", runState, cardWidth),
		renderCard("Network", network, cardWidth),
		renderCard("Wallet", balance, cardWidth),
		renderCard("Tokens Scanned", scanned, cardWidth),
		renderCard("Active Trades", trades, cardWidth),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func renderCard(title, value string, width int) string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		cardTitleStyle.Render(title),
		cardValueStyle.Render(value),
	)
	return sectionStyle.Width(width).Render(content)
}

// renderTables lays out the token and trade tables side by side.
func (m *ConsoleModel) renderTables(height int) string {
	tokensWidth := m.width * 3 / 5
	tradesWidth := m.width - tokensWidth

	tokensTable := m.renderTokenTable(tokensWidth-2, height-2)
	tradesTable := m.renderTradeTable(tradesWidth-2, height-2)
	return lipgloss.JoinHorizontal(lipgloss.Top, tokensTable, tradesTable)
}

// renderStatusLine renders the help/connectivity line at the very bottom.
func (m *ConsoleModel) renderStatusLine() string {
	startEnabled, stopEnabled := controlEnablement(m.status)

	var actions []string
	actions = append(actions, renderActionHint("s", "start", startEnabled && !m.actionInFlight))
	actions = append(actions, renderActionHint("x", "stop", stopEnabled && !m.actionInFlight))
	actions = append(actions, renderActionHint("n", "network", m.status != nil && !m.actionInFlight))
	left := " " + strings.Join(actions, " • ")

	help := "r: refresh • tab: switch table • ↑↓: navigate • q: quit"

	var right string
	if errLine := m.pollErrorLine(); errLine != "" {
		right = pollErrorStyle.Render("poll failed: " + errLine + " ")
	} else if !m.lastSyncAt.IsZero() {
		right = statusLineStyle.Render("synced " + m.lastSyncAt.Format("15:04:05") + " ")
	}

	middleWidth := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	middle := ""
	if middleWidth > len(help)+2 {
		middle = lipgloss.PlaceHorizontal(middleWidth, lipgloss.Center, help)
	} else if middleWidth > 0 {
		middle = strings.Repeat(" ", middleWidth)
	}

	line := left + middle + right
	return statusLineStyle.Width(m.width).Render(line)
}

// renderActionHint shows a control key, dimmed when the action is disabled.
func renderActionHint(keyName, label string, enabled bool) string {
	text := keyName + ": " + label
	if !enabled {
		return helpStyle.Render(text)
	}
	return lipgloss.NewStyle().Foreground(ColorGreen).Render(text)
}

// StartEnabled reports derived start availability, including the in-flight
// guard. Exposed for the status line and tests.
func (m *ConsoleModel) StartEnabled() bool {
	start, _ := controlEnablement(m.status)
	return start && !m.actionInFlight
}

// StopEnabled reports derived stop availability.
func (m *ConsoleModel) StopEnabled() bool {
	_, stop := controlEnablement(m.status)
	return stop && !m.actionInFlight
}
