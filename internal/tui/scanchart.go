package tui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
)

// renderScanChart renders the scan-activity bar chart: one bar per poll
// cycle, bar height = newly scanned tokens in that cycle. height includes
// the border and title line.
func (m *ConsoleModel) renderScanChart(width, height int) string {
	contentWidth := width - 2
	chartHeight := height - 3 // border + title
	if chartHeight < 2 {
		chartHeight = 2
	}

	title := sectionTitleStyle.Render("Scan Activity")
	if len(m.scanHistory) > 0 {
		total := 0
		peak := 0
		for _, v := range m.scanHistory {
			total += v
			if v > peak {
				peak = v
			}
		}
		rightStats := fmt.Sprintf("Window: %d | Peak: %d/cycle", total, peak)
		spacer := contentWidth - lipgloss.Width(title) - len(rightStats)
		if spacer > 0 {
			title += strings.Repeat(" ", spacer) + helpStyle.Render(rightStats)
		}
	}

	var content string
	if len(m.scanHistory) == 0 {
		content = helpStyle.Render("No scan data yet")
	} else {
		content = m.renderScanBars(contentWidth, chartHeight)
	}

	return sectionStyle.Width(contentWidth).Height(height - 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m *ConsoleModel) renderScanBars(width, height int) string {
	barStyle := lipgloss.NewStyle().Foreground(ColorGreen).Background(ColorGreen)
	emptyStyle := lipgloss.NewStyle().Foreground(ColorDim).Background(ColorDim)

	maxBars := width / 2
	if maxBars < 1 {
		maxBars = 1
	}

	dataPoints := len(m.scanHistory)
	var paddingCount, dataStartIdx int
	if dataPoints < maxBars {
		paddingCount = maxBars - dataPoints
	} else {
		dataStartIdx = dataPoints - maxBars
	}

	bc := barchart.New(width, height,
		barchart.WithBarGap(1),
		barchart.WithBarWidth(1),
		barchart.WithNoAxis(),
	)

	for i := 0; i < paddingCount; i++ {
		bc.Push(barchart.BarData{
			Label: "",
			Values: []barchart.BarValue{
				{Name: "EMPTY", Value: 0, Style: emptyStyle},
			},
		})
	}
	for i := dataStartIdx; i < dataPoints; i++ {
		bc.Push(barchart.BarData{
			Label: "",
			Values: []barchart.BarValue{
				{Name: "SCANS", Value: float64(m.scanHistory[i]), Style: barStyle},
			},
		})
	}

	bc.Draw()
	return bc.View()
}
