package tui

import "fmt"

// statPlaceholder renders for every stat before the first successful fetch.
const statPlaceholder = "—"

// formatPrice picks a precision fit for meme-token magnitudes.
func formatPrice(p float64) string {
	switch {
	case p >= 1:
		return fmt.Sprintf("$%.2f", p)
	case p >= 0.01:
		return fmt.Sprintf("$%.4f", p)
	default:
		return fmt.Sprintf("$%.8f", p)
	}
}

// formatVolume renders a 24h volume with K/M suffixes.
func formatVolume(v float64) string {
	switch {
	case v >= 1e6:
		return fmt.Sprintf("$%.1fM", v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("$%.1fK", v/1e3)
	default:
		return fmt.Sprintf("$%.0f", v)
	}
}

// formatChange renders a signed percentage, keeping the plus sign.
func formatChange(pct float64) string {
	return fmt.Sprintf("%+.1f%%", pct)
}

// formatSOL renders a SOL amount.
func formatSOL(v float64) string {
	return fmt.Sprintf("%.4f SOL", v)
}

// shortAddress elides the middle of a base58 address for table display.
func shortAddress(addr string) string {
	if len(addr) <= 12 {
		return addr
	}
	return addr[:5] + "…" + addr[len(addr)-4:]
}

// padOrTrim fits s into exactly width cells, space-padded on the right.
// Assumes single-width runes, which holds for everything the console prints.
func padOrTrim(s string, width int) string {
	runes := []rune(s)
	if len(runes) > width {
		if width <= 1 {
			return string(runes[:width])
		}
		return string(runes[:width-1]) + "…"
	}
	for len(runes) < width {
		runes = append(runes, ' ')
	}
	return string(runes)
}
