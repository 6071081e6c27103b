// Package console prints table events for people watching a session and
// lets a person play a session from the terminal.
package console

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lox/blackjackforbots/internal/deck"
	"github.com/muesli/termenv"
)

var (
	roundStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	redCardStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6B6B"))
	cardStyle    = lipgloss.NewStyle().Bold(true)
	hiddenStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))
	winStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#96CEB4"))
	lossStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	pushStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFEAA7"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))
)

// DisableColor renders all console output without ANSI styling.
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// RenderCard draws a card, red suits in red.
func RenderCard(c deck.Card) string {
	if c.IsRed() {
		return redCardStyle.Render(c.String())
	}
	return cardStyle.Render(c.String())
}

// RenderCards draws cards separated by spaces.
func RenderCards(cards []deck.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = RenderCard(c)
	}
	return strings.Join(parts, " ")
}

func hiddenCard() string {
	return hiddenStyle.Render("??")
}
