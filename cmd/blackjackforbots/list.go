package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/lox/blackjackforbots/internal/strategy"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("8"))).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

type StrategiesCmd struct{}

func (c *StrategiesCmd) Run(_ *Globals) error {
	t := newTable("Name", "Description")
	for _, name := range strategy.Names() {
		t.Row(name, strategy.Describe(name))
	}
	fmt.Println(t.Render())
	return nil
}

type RulesCmd struct {
	Config string `arg:"" optional:"" type:"existingfile" help:"Session file (.hcl, .json, .yaml)"`
}

func (c *RulesCmd) Run(_ *Globals) error {
	combos, err := loadCombinations(c.Config)
	if err != nil {
		return err
	}

	t := newTable("#", "Table", "Rules", "Money", "Bets", "Decks", "Rounds", "Seed",
		"BJ pays", "Push pays", "H17", "Pen.", "Fallback", "Resplit", "DAS")
	for i, tr := range combos {
		cr := tr.Casino
		t.Row(
			strconv.Itoa(i),
			tr.Name,
			cr.Description,
			strconv.Itoa(tr.InitialMoney),
			fmt.Sprintf("%d-%d", tr.MinBet, tr.MaxBet),
			strconv.Itoa(tr.NumDecks),
			strconv.Itoa(tr.NumRounds),
			strconv.FormatInt(tr.DeckNumber, 10),
			strconv.FormatFloat(cr.BlackjackPayoutRatio, 'f', -1, 64),
			strconv.FormatFloat(cr.PushPayoutRatio, 'f', -1, 64),
			yesNo(cr.DealerHitsSoft17),
			fmt.Sprintf("%d%%", cr.DeckPenetrationPercent),
			yesNo(cr.UseRealRulesWhenOutOfCards),
			yesNo(cr.AllowResplit),
			yesNo(cr.AllowDoubleAfterSplit),
		)
	}
	fmt.Println(t.Render())
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
