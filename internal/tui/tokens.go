package tui

import (
	"fmt"
	"strings"
)

// renderTokenTable renders the scanned-token table. width and height are the
// content box dimensions, excluding the border.
func (m *ConsoleModel) renderTokenTable(width, height int) string {
	style := sectionStyle
	if m.activeSection == SectionTokens {
		style = activeSectionStyle
	}
	style = style.Width(width).Height(height)

	title := sectionTitleStyle.Render(fmt.Sprintf("Scanned Tokens (%d)", len(m.tokens)))

	// Column split: address, symbol, price, volume, 1h change.
	addrW := 14
	symW := 8
	chgW := 8
	volW := 10
	priceW := width - addrW - symW - volW - chgW - 4
	if priceW < 10 {
		priceW = 10
	}

	header := tableHeaderStyle.Render(
		padOrTrim("ADDRESS", addrW) + " " +
			padOrTrim("SYMBOL", symW) + " " +
			padOrTrim("PRICE", priceW) + " " +
			padOrTrim("VOL 24H", volW) + " " +
			padOrTrim("1H", chgW))

	visible := height - 2 // title + header
	if visible < 1 {
		visible = 1
	}

	lines := []string{title, header}
	if len(m.tokens) == 0 {
		lines = append(lines, helpStyle.Render("No tokens scanned yet"))
	} else {
		start := windowStart(m.tokenCursor, len(m.tokens), visible)
		for i := start; i < len(m.tokens) && i < start+visible; i++ {
			tok := m.tokens[i]
			changeStyle := gainStyle
			if tok.PriceChange1h < 0 {
				changeStyle = lossStyle
			}
			row := padOrTrim(shortAddress(tok.Address), addrW) + " " +
				padOrTrim(tok.Symbol, symW) + " " +
				padOrTrim(formatPrice(tok.Price), priceW) + " " +
				padOrTrim(formatVolume(tok.Volume24h), volW) + " "
			change := padOrTrim(formatChange(tok.PriceChange1h), chgW)

			if i == m.tokenCursor && m.activeSection == SectionTokens {
				lines = append(lines, selectedRowStyle.Render(row+change))
			} else {
				lines = append(lines, row+changeStyle.Render(change))
			}
		}
	}

	return style.Render(strings.Join(lines, "\n"))
}

// windowStart positions a scroll window of size visible so cursor stays in view.
func windowStart(cursor, total, visible int) int {
	if total <= visible {
		return 0
	}
	start := cursor - visible/2
	if start < 0 {
		start = 0
	}
	if start > total-visible {
		start = total - visible
	}
	return start
}
