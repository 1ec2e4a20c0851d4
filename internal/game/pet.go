package game

import (
	"fmt"
	"unicode/utf8"
)

const (
	StatMin = 0
	StatMax = 100

	// MaxNameLen is counted in runes.
	MaxNameLen = 10
)

// --- Cat type ---

// CatType is the coat of the cat. It only affects presentation.
type CatType int

const (
	CatOrange CatType = iota
	CatGrey
	CatWhite
	CatCalico
	catTypeCount
)

var catTypeNames = [catTypeCount]string{"Orange", "Grey", "White", "Calico"}

func (c CatType) String() string {
	if c < 0 || c >= catTypeCount {
		return "unknown"
	}
	return catTypeNames[c]
}

func (c CatType) Valid() bool { return c >= 0 && c < catTypeCount }

// Next cycles forward with wraparound.
func (c CatType) Next() CatType { return (c + 1) % catTypeCount }

// Prev cycles backward with wraparound.
func (c CatType) Prev() CatType { return (c + catTypeCount - 1) % catTypeCount }

// ParseCatType maps a persisted name back to a CatType.
func ParseCatType(s string) (CatType, error) {
	for i, name := range catTypeNames {
		if name == s {
			return CatType(i), nil
		}
	}
	return 0, fmt.Errorf("%w: cat type %q", ErrInvalidPet, s)
}

// --- Personality ---

type Personality int

const (
	PersonalityPlayful Personality = iota
	PersonalityLazy
	PersonalityShy
	PersonalityEnergetic
	personalityCount
)

var personalityNames = [personalityCount]string{"Playful", "Lazy", "Shy", "Energetic"}

func (p Personality) String() string {
	if p < 0 || p >= personalityCount {
		return "unknown"
	}
	return personalityNames[p]
}

func (p Personality) Valid() bool { return p >= 0 && p < personalityCount }

func (p Personality) Next() Personality { return (p + 1) % personalityCount }

func (p Personality) Prev() Personality { return (p + personalityCount - 1) % personalityCount }

func ParsePersonality(s string) (Personality, error) {
	for i, name := range personalityNames {
		if name == s {
			return Personality(i), nil
		}
	}
	return 0, fmt.Errorf("%w: personality %q", ErrInvalidPet, s)
}

// --- Mood ---

type Mood string

const (
	MoodSick      Mood = "Sick"
	MoodSad       Mood = "Sad"
	MoodEnergetic Mood = "Energetic"
	MoodHappy     Mood = "Happy"
)

const (
	sickHealthBelow   = 40
	sadHappinessBelow = 40
	energeticAbove    = 80
)

// --- Effects ---

// Effect is a signed change applied to the four care stats.
type Effect struct {
	Hunger      int
	Happiness   int
	Energy      int
	Cleanliness int
}

var (
	feedEffect  = Effect{Hunger: 20}
	playEffect  = Effect{Happiness: 20, Energy: -5}
	restEffect  = Effect{Energy: 30, Happiness: 5}
	cleanEffect = Effect{Cleanliness: 30, Happiness: 5}

	// decayEffect is one step of the passive decay ticker.
	decayEffect = Effect{Hunger: -2, Happiness: -1, Energy: -1, Cleanliness: -1}
)

// --- Pet ---

// Pet is the cat. Health is cached: every mutator recomputes it, and nothing
// else may write it.
type Pet struct {
	Name        string
	Type        CatType
	Personality Personality

	Hunger      int
	Happiness   int
	Energy      int
	Cleanliness int

	Health float64
}

// NewPet returns a pet with every stat full.
func NewPet(name string, t CatType, p Personality) (Pet, error) {
	pet := Pet{
		Name:        name,
		Type:        t,
		Personality: p,
		Hunger:      StatMax,
		Happiness:   StatMax,
		Energy:      StatMax,
		Cleanliness: StatMax,
	}
	pet.RecomputeHealth()
	if err := pet.Validate(); err != nil {
		return Pet{}, err
	}
	return pet, nil
}

// Validate checks every pet invariant, including the cached health.
func (p Pet) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidPet)
	}
	if n := utf8.RuneCountInString(p.Name); n > MaxNameLen {
		return fmt.Errorf("%w: name %q has %d runes, max %d", ErrInvalidPet, p.Name, n, MaxNameLen)
	}
	if !p.Type.Valid() {
		return fmt.Errorf("%w: cat type %d", ErrInvalidPet, p.Type)
	}
	if !p.Personality.Valid() {
		return fmt.Errorf("%w: personality %d", ErrInvalidPet, p.Personality)
	}
	stats := []struct {
		name string
		v    int
	}{
		{"hunger", p.Hunger},
		{"happiness", p.Happiness},
		{"energy", p.Energy},
		{"cleanliness", p.Cleanliness},
	}
	for _, s := range stats {
		if s.v < StatMin || s.v > StatMax {
			return fmt.Errorf("%w: %s %d outside [%d,%d]", ErrInvalidPet, s.name, s.v, StatMin, StatMax)
		}
	}
	if p.Health != p.meanStats() {
		return fmt.Errorf("%w: health %.2f is not the mean of the stats", ErrInvalidPet, p.Health)
	}
	return nil
}

func (p Pet) meanStats() float64 {
	return float64(p.Hunger+p.Happiness+p.Energy+p.Cleanliness) / 4
}

// RecomputeHealth refreshes the cached health from the four stats.
func (p *Pet) RecomputeHealth() {
	p.Health = p.meanStats()
}

// Apply adds e to the stats, clamps each into [StatMin, StatMax] and
// recomputes health.
func (p *Pet) Apply(e Effect) {
	p.Hunger = clampStat(p.Hunger + e.Hunger)
	p.Happiness = clampStat(p.Happiness + e.Happiness)
	p.Energy = clampStat(p.Energy + e.Energy)
	p.Cleanliness = clampStat(p.Cleanliness + e.Cleanliness)
	p.RecomputeHealth()
}

func (p *Pet) Feed()  { p.Apply(feedEffect) }
func (p *Pet) Play()  { p.Apply(playEffect) }
func (p *Pet) Rest()  { p.Apply(restEffect) }
func (p *Pet) Clean() { p.Apply(cleanEffect) }

// Mood derives the displayed mood from the cached stats. First match wins.
func (p Pet) Mood() Mood {
	switch {
	case p.Health < sickHealthBelow:
		return MoodSick
	case p.Happiness < sadHappinessBelow:
		return MoodSad
	case p.Energy > energeticAbove:
		return MoodEnergetic
	default:
		return MoodHappy
	}
}

func clampStat(v int) int {
	if v < StatMin {
		return StatMin
	}
	if v > StatMax {
		return StatMax
	}
	return v
}
