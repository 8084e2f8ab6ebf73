package wizard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sebsgrace/AI-Government-Bid-Evaluator/cmd/bideval/ui"
	"github.com/sebsgrace/AI-Government-Bid-Evaluator/internal/types"
)

// chartBarWidth is the maximum bar length in cells.
const chartBarWidth = 40

// RenderBidChart draws a horizontal bar chart comparing each bid against
// the approved budget. Bars scale to the largest value so an over-budget
// bid never overflows the frame. Returns "" when there is nothing to
// draw.
func RenderBidChart(s ui.Styles, bidders []types.Bidder, budgetLabel string, budget int64) string {
	if len(bidders) == 0 {
		return ""
	}

	maxVal := float64(budget)
	for _, b := range bidders {
		if b.Amount > maxVal {
			maxVal = b.Amount
		}
	}
	if maxVal <= 0 {
		return ""
	}

	labelWidth := lipgloss.Width(budgetLabel)
	for _, b := range bidders {
		if w := lipgloss.Width(b.Name); w > labelWidth {
			labelWidth = w
		}
	}

	var sb strings.Builder
	sb.WriteString(s.Subtitle.Render("Bids vs Approved Budget"))
	sb.WriteString("\n")
	for _, b := range bidders {
		sb.WriteString(chartRow(s.ChartLabel, s.ChartBid, labelWidth, b.Name, b.Amount, maxVal, types.FormatBidAmount(b.Amount)))
		sb.WriteString("\n")
	}
	sb.WriteString(chartRow(s.ChartLabel, s.ChartBudget, labelWidth, budgetLabel, float64(budget), maxVal, types.FormatPesos(budget)))
	sb.WriteString("\n")
	return sb.String()
}

func chartRow(labelStyle, barStyle lipgloss.Style, labelWidth int, label string, value, maxVal float64, amount string) string {
	cells := int(value / maxVal * chartBarWidth)
	if cells < 1 && value > 0 {
		cells = 1
	}
	if cells > chartBarWidth {
		cells = chartBarWidth
	}
	bar := strings.Repeat("█", cells)
	return fmt.Sprintf("%s %s %s",
		labelStyle.Width(labelWidth).Render(label),
		barStyle.Render(bar),
		amount,
	)
}
