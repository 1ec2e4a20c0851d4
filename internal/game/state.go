package game

import "fmt"

// State is the persisted snapshot of one save slot.
type State struct {
	Pet     Pet
	Economy Economy
}

// NewState is the state right after character setup.
func NewState(p Pet, startingMoney int) State {
	return State{
		Pet: p,
		Economy: Economy{
			Money:     startingMoney,
			Inventory: map[Item]int{},
		},
	}
}

// Validate checks every pet and wallet invariant.
func (s State) Validate() error {
	if err := s.Pet.Validate(); err != nil {
		return fmt.Errorf("state: %w", err)
	}
	if err := s.Economy.Validate(); err != nil {
		return fmt.Errorf("state: %w", err)
	}
	return nil
}

// Screen is the top-level mode of the controller.
type Screen int

const (
	ScreenSetup Screen = iota
	ScreenPlay
)

func (s Screen) String() string {
	if s == ScreenPlay {
		return "play"
	}
	return "setup"
}

// Snapshot is a read-only copy of everything the renderer draws.
type Snapshot struct {
	Tick     int
	Screen   Screen
	Finished bool

	Setup Setup

	Pet     Pet
	Mood    Mood
	Economy Economy
	Catalog []CatalogEntry

	StoreOpen    bool
	StoreMessage string
	Affordable   map[Item]bool

	Chore        ChoreState
	ChoreSession *ChoreSession
}
