package game

import "fmt"

// Action is a care intent resolved against the pet and the ledger.
type Action int

const (
	ActionFeed Action = iota
	ActionPlay
	ActionRest
	ActionClean
)

func (a Action) String() string {
	switch a {
	case ActionFeed:
		return "feed"
	case ActionPlay:
		return "play"
	case ActionRest:
		return "rest"
	case ActionClean:
		return "clean"
	default:
		return "unknown"
	}
}

// actionCosts lists the item each gated action consumes. Rest is free.
var actionCosts = map[Action]Item{
	ActionFeed:  Meowmunch,
	ActionPlay:  Purrplay,
	ActionClean: Furbath,
}

// Requirement returns the item a consumes, if any.
func (a Action) Requirement() (Item, bool) {
	it, ok := actionCosts[a]
	return it, ok
}

// Perform applies a to the pet and pays for it from the ledger. The gate is
// checked before anything mutates, so either both change or neither does.
func Perform(p *Pet, l *Ledger, a Action) error {
	if item, gated := a.Requirement(); gated {
		if err := l.Consume(item); err != nil {
			return fmt.Errorf("%s: %w", a, err)
		}
	}
	switch a {
	case ActionFeed:
		p.Feed()
	case ActionPlay:
		p.Play()
	case ActionRest:
		p.Rest()
	case ActionClean:
		p.Clean()
	default:
		return fmt.Errorf("perform: unknown action %d", a)
	}
	return nil
}
