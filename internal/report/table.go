package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/lox/blackjackforbots/internal/payout"
	"github.com/lox/blackjackforbots/internal/statistics"
	"github.com/lox/blackjackforbots/internal/trial"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Padding(0, 1)
	cellStyle     = lipgloss.NewStyle().Padding(0, 1)
	positiveStyle = cellStyle.Foreground(lipgloss.Color("10"))
	negativeStyle = cellStyle.Foreground(lipgloss.Color("9"))
	borderStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

const meanColumn = 4

// RenderSummary draws one row per analysis as a terminal table.
func RenderSummary(results []*trial.AnalysisResult) string {
	level := statistics.DefaultConfidence
	if len(results) > 0 && results[0].Summary.Confidence > 0 {
		level = results[0].Summary.Confidence
	}
	ci := fmt.Sprintf("%g%% CI", math.Round(level*1000)/10)
	headers := []string{"Strategy", "Table", "Rules", "Trials", "Mean", ci, "Min", "Max", "Hands"}
	rows := make([][]string, 0, len(results))
	means := make([]float64, 0, len(results))
	for _, r := range results {
		s := r.Summary
		rows = append(rows, []string{
			r.Strategy,
			r.Rules.Name,
			r.Rules.Casino.Description,
			fmt.Sprintf("%d", s.N),
			fmt.Sprintf("%.2f", s.Mean),
			formatInterval(s.CILow, s.CIHigh),
			fmt.Sprintf("%.0f", s.Min),
			fmt.Sprintf("%.0f", s.Max),
			fmt.Sprintf("%d", r.HandsPlayed),
		})
		means = append(means, s.Mean)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == meanColumn && row >= 0 && row < len(means) && means[row] > 0:
				return positiveStyle
			case col == meanColumn && row >= 0 && row < len(means) && means[row] < 0:
				return negativeStyle
			default:
				return cellStyle
			}
		})
	return t.Render()
}

// RenderOutcomes draws the hand outcome frequencies of each analysis.
func RenderOutcomes(results []*trial.AnalysisResult) string {
	headers := []string{"Strategy", "Table"}
	for _, c := range payout.Categories {
		headers = append(headers, c.Label())
	}

	rows := make([][]string, 0, len(results))
	for _, r := range results {
		row := []string{r.Strategy, r.Rules.Name}
		total := r.Tally.Total()
		for _, n := range r.Tally.Counts() {
			row = append(row, fmt.Sprintf("%d (%s)", n, percent(n, total)))
		}
		rows = append(rows, row)
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Render()
}

func formatInterval(lo, hi float64) string {
	if math.IsNaN(lo) || math.IsNaN(hi) {
		return "n/a"
	}
	return fmt.Sprintf("[%.2f, %.2f]", lo, hi)
}

func percent(n, total int) string {
	if total == 0 {
		return "0.0%"
	}
	return strings.TrimSpace(fmt.Sprintf("%5.1f%%", 100*float64(n)/float64(total)))
}
