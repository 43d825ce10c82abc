package tui

import (
	"fmt"
	"strings"
	"time"
)

// renderTradeTable renders the recent-trade table. width and height are the
// content box dimensions, excluding the border.
func (m *ConsoleModel) renderTradeTable(width, height int) string {
	style := sectionStyle
	if m.activeSection == SectionTrades {
		style = activeSectionStyle
	}
	style = style.Width(width).Height(height)

	title := sectionTitleStyle.Render(fmt.Sprintf("Recent Trades (%d)", len(m.trades)))

	sideW := 5
	amountW := 11
	statusW := 10
	timeW := 9
	addrW := width - sideW - amountW - statusW - timeW - 4
	if addrW < 10 {
		addrW = 10
	}

	header := tableHeaderStyle.Render(
		padOrTrim("SIDE", sideW) + " " +
			padOrTrim("TOKEN", addrW) + " " +
			padOrTrim("AMOUNT", amountW) + " " +
			padOrTrim("STATUS", statusW) + " " +
			padOrTrim("TIME", timeW))

	visible := height - 2
	if visible < 1 {
		visible = 1
	}

	lines := []string{title, header}
	if len(m.trades) == 0 {
		lines = append(lines, helpStyle.Render("No trades yet"))
	} else {
		start := windowStart(m.tradeCursor, len(m.trades), visible)
		for i := start; i < len(m.trades) && i < start+visible; i++ {
			tr := m.trades[i]
			sideStyle := gainStyle
			if tr.Type == "sell" {
				sideStyle = lossStyle
			}
			side := padOrTrim(strings.ToUpper(tr.Type), sideW)
			rest := " " + padOrTrim(shortAddress(tr.TokenAddress), addrW) + " " +
				padOrTrim(formatSOL(tr.Amount), amountW) + " " +
				padOrTrim(tr.Status, statusW) + " " +
				padOrTrim(formatTradeTime(tr.Timestamp), timeW)

			if i == m.tradeCursor && m.activeSection == SectionTrades {
				lines = append(lines, selectedRowStyle.Render(side+rest))
			} else {
				lines = append(lines, sideStyle.Render(side)+rest)
			}
		}
	}

	return style.Render(strings.Join(lines, "\n"))
}

// formatTradeTime shows just the clock part of an RFC3339 trade timestamp;
// anything unparsable passes through trimmed.
func formatTradeTime(ts string) string {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return ts
	}
	return t.Local().Format("15:04:05")
}
