// Package save is the single-slot persistence gateway. The slot is a flat,
// indented JSON record:
//
//	{ name, type, personality,
//	  stats: { hunger, happiness, energy, cleanliness, health },
//	  money, total_spent, inventory: { item: count } }
//
// Required fields must be present and valid; unknown fields are ignored. The
// stored health is advisory and is recomputed from the four stats on load.
package save

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/Garsondee/Feline-Finances/internal/game"
)

// ErrCorrupt matches every *CorruptDataError via errors.Is.
var ErrCorrupt = errors.New("corrupt save data")

// CorruptDataError reports why a slot could not be decoded.
type CorruptDataError struct {
	Reason string
	Err    error
}

func (e *CorruptDataError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("corrupt save data: %s: %v", e.Reason, e.Err)
	}
	return "corrupt save data: " + e.Reason
}

func (e *CorruptDataError) Unwrap() error { return e.Err }

func (e *CorruptDataError) Is(target error) bool { return target == ErrCorrupt }

func corrupt(err error, format string, args ...any) error {
	return &CorruptDataError{Reason: fmt.Sprintf(format, args...), Err: err}
}

// Record is the on-disk layout.
type Record struct {
	Name        string         `json:"name"`
	Type        string         `json:"type"`
	Personality string         `json:"personality"`
	Stats       Stats          `json:"stats"`
	Money       int            `json:"money"`
	TotalSpent  int            `json:"total_spent"`
	Inventory   map[string]int `json:"inventory"`
}

type Stats struct {
	Hunger      int     `json:"hunger"`
	Happiness   int     `json:"happiness"`
	Energy      int     `json:"energy"`
	Cleanliness int     `json:"cleanliness"`
	Health      float64 `json:"health"`
}

// rawRecord mirrors Record with pointers so absent fields can be told apart
// from zero values.
type rawRecord struct {
	Name        *string        `json:"name"`
	Type        *string        `json:"type"`
	Personality *string        `json:"personality"`
	Stats       *rawStats      `json:"stats"`
	Money       *int           `json:"money"`
	TotalSpent  *int           `json:"total_spent"`
	Inventory   map[string]int `json:"inventory"`
}

type rawStats struct {
	Hunger      *int     `json:"hunger"`
	Happiness   *int     `json:"happiness"`
	Energy      *int     `json:"energy"`
	Cleanliness *int     `json:"cleanliness"`
	Health      *float64 `json:"health"`
}

// FromState converts a game state to its on-disk record.
func FromState(st game.State) Record {
	inv := make(map[string]int, len(st.Economy.Inventory))
	for it, n := range st.Economy.Inventory {
		inv[string(it)] = n
	}
	return Record{
		Name:        st.Pet.Name,
		Type:        st.Pet.Type.String(),
		Personality: st.Pet.Personality.String(),
		Stats: Stats{
			Hunger:      st.Pet.Hunger,
			Happiness:   st.Pet.Happiness,
			Energy:      st.Pet.Energy,
			Cleanliness: st.Pet.Cleanliness,
			Health:      st.Pet.Health,
		},
		Money:      st.Economy.Money,
		TotalSpent: st.Economy.TotalSpent,
		Inventory:  inv,
	}
}

// Encode serialises st. Invalid states are refused so a bad write can never
// replace a good slot.
func Encode(st game.State) ([]byte, error) {
	if err := st.Validate(); err != nil {
		return nil, fmt.Errorf("save: encode: %w", err)
	}
	b, err := json.MarshalIndent(FromState(st), "", "    ")
	if err != nil {
		return nil, fmt.Errorf("save: encode: %w", err)
	}
	return append(b, '\n'), nil
}

// Decode parses and validates a slot.
func Decode(data []byte) (game.State, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return game.State{}, corrupt(nil, "empty file")
	}
	var raw rawRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return game.State{}, corrupt(err, "malformed json")
	}

	missing := raw.missingFields()
	if len(missing) > 0 {
		return game.State{}, corrupt(nil, "missing fields %v", missing)
	}

	catType, err := game.ParseCatType(*raw.Type)
	if err != nil {
		return game.State{}, corrupt(err, "type")
	}
	pers, err := game.ParsePersonality(*raw.Personality)
	if err != nil {
		return game.State{}, corrupt(err, "personality")
	}

	inv := make(map[game.Item]int, len(raw.Inventory))
	for name, n := range raw.Inventory {
		it, err := game.ParseItem(name)
		if err != nil {
			return game.State{}, corrupt(err, "inventory")
		}
		inv[it] = n
	}

	st := game.State{
		Pet: game.Pet{
			Name:        *raw.Name,
			Type:        catType,
			Personality: pers,
			Hunger:      *raw.Stats.Hunger,
			Happiness:   *raw.Stats.Happiness,
			Energy:      *raw.Stats.Energy,
			Cleanliness: *raw.Stats.Cleanliness,
		},
		Economy: game.Economy{
			Money:      *raw.Money,
			TotalSpent: *raw.TotalSpent,
			Inventory:  inv,
		},
	}
	st.Pet.RecomputeHealth()
	if err := st.Validate(); err != nil {
		return game.State{}, corrupt(err, "invalid state")
	}
	return st, nil
}

func (r rawRecord) missingFields() []string {
	var missing []string
	check := func(name string, present bool) {
		if !present {
			missing = append(missing, name)
		}
	}
	check("name", r.Name != nil)
	check("type", r.Type != nil)
	check("personality", r.Personality != nil)
	check("stats", r.Stats != nil)
	if r.Stats != nil {
		check("stats.hunger", r.Stats.Hunger != nil)
		check("stats.happiness", r.Stats.Happiness != nil)
		check("stats.energy", r.Stats.Energy != nil)
		check("stats.cleanliness", r.Stats.Cleanliness != nil)
	}
	check("money", r.Money != nil)
	check("total_spent", r.TotalSpent != nil)
	check("inventory", r.Inventory != nil)
	sort.Strings(missing)
	return missing
}
