package game

import (
	"fmt"
	"strings"
)

// Decision is what a strategy chooses to do with a live hand.
type Decision int

const (
	Hit Decision = iota
	Stand
	DoubleDown
	Split
)

// Decisions lists every decision, in declaration order.
var Decisions = [...]Decision{Hit, Stand, DoubleDown, Split}

func (d Decision) String() string {
	switch d {
	case Hit:
		return "HIT"
	case Stand:
		return "STAND"
	case DoubleDown:
		return "DOUBLE_DOWN"
	case Split:
		return "SPLIT"
	default:
		return fmt.Sprintf("Decision(%d)", int(d))
	}
}

// ParseDecision accepts the decision names and their usual shorthands.
func ParseDecision(s string) (Decision, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "h", "hit":
		return Hit, nil
	case "s", "stand":
		return Stand, nil
	case "d", "double", "double_down", "doubledown":
		return DoubleDown, nil
	case "p", "split":
		return Split, nil
	}
	return 0, fmt.Errorf("unknown decision %q", s)
}
