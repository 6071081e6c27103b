package deck

// Chooser may override which card the shoe deals next. Returning ok=false
// keeps the default shuffle order. A returned card must be drawable.
type Chooser interface {
	Choose(view *View) (card Card, ok bool)
}

// ChooserFunc adapts a function to the Chooser interface.
type ChooserFunc func(view *View) (Card, bool)

// Choose calls f(view).
func (f ChooserFunc) Choose(view *View) (Card, bool) {
	return f(view)
}

// NoOverride always defers to the shuffle order.
type NoOverride struct{}

// Choose implements Chooser.
func (NoOverride) Choose(*View) (Card, bool) {
	return Card{}, false
}

// View is the read-only window a chooser gets onto the drawable pool.
// It is only valid for the duration of one Choose call.
type View struct {
	shoe *Shoe
}

// Next returns the card the shoe would deal by default.
func (v *View) Next() Card {
	return v.shoe.drawable[len(v.shoe.drawable)-1]
}

// Drawable returns the number of drawable cards.
func (v *View) Drawable() int {
	return len(v.shoe.drawable)
}

// ByRank groups the drawable cards by rank, each group in shoe order from the top.
func (v *View) ByRank() map[Rank][]Card {
	groups := make(map[Rank][]Card, len(Ranks))
	for i := len(v.shoe.drawable) - 1; i >= 0; i-- {
		c := v.shoe.drawable[i]
		groups[c.Rank] = append(groups[c.Rank], c)
	}
	return groups
}

// Find returns the drawable card nearest the top with the given face.
func (v *View) Find(rank Rank, suit Suit) (Card, bool) {
	for i := len(v.shoe.drawable) - 1; i >= 0; i-- {
		if c := v.shoe.drawable[i]; c.Rank == rank && c.Suit == suit {
			return c, true
		}
	}
	return Card{}, false
}

// FindRank returns the drawable card nearest the top with the given rank.
func (v *View) FindRank(rank Rank) (Card, bool) {
	for i := len(v.shoe.drawable) - 1; i >= 0; i-- {
		if c := v.shoe.drawable[i]; c.Rank == rank {
			return c, true
		}
	}
	return Card{}, false
}

// Reshuffle shuffles the discards back in before the chooser decides.
func (v *View) Reshuffle() {
	v.shoe.reshuffleWithReason("chooser")
}

// ScriptedChooser deals a fixed sequence of faces, then falls back to the
// shuffle order. Faces missing from the drawable pool are still returned so
// that the shoe reports them as foreign cards.
type ScriptedChooser struct {
	script         []Card
	pos            int
	reshuffleFirst bool
}

// NewScriptedChooser returns a chooser that deals cards in script order.
func NewScriptedChooser(script ...Card) *ScriptedChooser {
	return &ScriptedChooser{script: script}
}

// ReshuffleFirst makes the chooser reshuffle the shoe before its first pick.
func (c *ScriptedChooser) ReshuffleFirst() *ScriptedChooser {
	c.reshuffleFirst = true
	return c
}

// Choose implements Chooser.
func (c *ScriptedChooser) Choose(view *View) (Card, bool) {
	if c.reshuffleFirst {
		c.reshuffleFirst = false
		view.Reshuffle()
	}
	if c.pos >= len(c.script) {
		return Card{}, false
	}

	want := c.script[c.pos]
	c.pos++
	if card, ok := view.Find(want.Rank, want.Suit); ok {
		return card, true
	}
	return want, true
}
