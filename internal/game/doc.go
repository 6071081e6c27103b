// Package game implements the blackjack round engine.
//
// The main type is Table, which plays rounds for one strategy against the
// dealer under a fixed set of table rules. A round moves through the
// states AwaitBet, InitialDeal, PlayerTurn, DealerTurn and Settlement;
// PlaySession repeats rounds, adding a WalkAwayCheck after each and
// finishing in SessionEnd.
//
// # Basic Usage
//
//	tr := rules.Default()
//	t := game.NewTable(tr, strategy.NewBasic())
//	summary, err := t.PlaySession()
//	if err != nil {
//	    // the strategy made an illegal decision or bet
//	}
//	fmt.Println(summary.Net())
//
// # Deterministic Testing
//
// The shoe is seeded from the table's DeckNumber. A deck.Chooser can force
// particular cards for a scenario:
//
//	chooser := deck.NewScriptedChooser(deck.MustParseCards("TsTdAsQh")...)
//	t := game.NewTable(tr, s, game.WithChooser(chooser))
//
// # Observers
//
// Subscribers registered with WithSubscriber receive every event
// synchronously, in registration order, before the next card is drawn.
// They see snapshots and must not call back into the table.
package game
