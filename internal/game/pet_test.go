package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPetStartsFull(t *testing.T) {
	p, err := NewPet("Mochi", CatGrey, PersonalityLazy)
	require.NoError(t, err)
	assert.Equal(t, 100, p.Hunger)
	assert.Equal(t, 100, p.Happiness)
	assert.Equal(t, 100, p.Energy)
	assert.Equal(t, 100, p.Cleanliness)
	assert.Equal(t, 100.0, p.Health)
	assert.Equal(t, MoodEnergetic, p.Mood())
}

func TestNewPetRejectsBadNames(t *testing.T) {
	_, err := NewPet("", CatOrange, PersonalityShy)
	assert.ErrorIs(t, err, ErrInvalidPet)

	_, err = NewPet("Bartholomew", CatOrange, PersonalityShy)
	assert.ErrorIs(t, err, ErrInvalidPet)

	// Length is counted in runes, not bytes.
	_, err = NewPet("ÉbèneÑoñoé", CatOrange, PersonalityShy)
	assert.NoError(t, err)
}

func TestApplyClampsAndRecomputesHealth(t *testing.T) {
	p, err := NewPet("Tom", CatWhite, PersonalityPlayful)
	require.NoError(t, err)

	p.Feed()
	assert.Equal(t, 100, p.Hunger, "feed clamps at max")

	p.Apply(Effect{Hunger: -250, Energy: -30})
	assert.Equal(t, 0, p.Hunger)
	assert.Equal(t, 70, p.Energy)
	assert.Equal(t, float64(0+100+70+100)/4, p.Health)
	require.NoError(t, p.Validate())
}

func TestCareActionDeltas(t *testing.T) {
	base := func() Pet {
		p, err := NewPet("Tom", CatWhite, PersonalityPlayful)
		require.NoError(t, err)
		p.Apply(Effect{Hunger: -50, Happiness: -50, Energy: -50, Cleanliness: -50})
		return p
	}

	p := base()
	p.Feed()
	assert.Equal(t, [4]int{70, 50, 50, 50}, stats(p))

	p = base()
	p.Play()
	assert.Equal(t, [4]int{50, 70, 45, 50}, stats(p))

	p = base()
	p.Rest()
	assert.Equal(t, [4]int{50, 55, 80, 50}, stats(p))

	p = base()
	p.Clean()
	assert.Equal(t, [4]int{50, 55, 50, 80}, stats(p))
}

func TestEveryActionKeepsStatsInRange(t *testing.T) {
	actions := []Action{ActionFeed, ActionPlay, ActionRest, ActionClean}
	for seed := int64(0); seed < 200; seed++ {
		rng := rand.New(rand.NewSource(seed)) // #nosec G404 -- test
		start, err := NewPet("Tom", CatType(rng.Intn(int(catTypeCount))), Personality(rng.Intn(int(personalityCount))))
		require.NoError(t, err)
		start.Hunger = rng.Intn(StatMax + 1)
		start.Happiness = rng.Intn(StatMax + 1)
		start.Energy = rng.Intn(StatMax + 1)
		start.Cleanliness = rng.Intn(StatMax + 1)
		start.RecomputeHealth()

		for _, a := range actions {
			p := start
			l := newTestLedger(0, map[Item]int{Meowmunch: 1, Purrplay: 1, Furbath: 1})
			require.NoError(t, Perform(&p, l, a))
			require.NoError(t, p.Validate(), "seed %d after %s: %+v", seed, a, p)
		}

		p := start
		p.Apply(decayEffect)
		require.NoError(t, p.Validate(), "seed %d after decay: %+v", seed, p)
	}
}

func stats(p Pet) [4]int {
	return [4]int{p.Hunger, p.Happiness, p.Energy, p.Cleanliness}
}

func TestMoodPriority(t *testing.T) {
	cases := []struct {
		name string
		s    [4]int
		want Mood
	}{
		{"sick wins over sad", [4]int{10, 10, 90, 10}, MoodSick},
		{"sad", [4]int{100, 39, 50, 100}, MoodSad},
		{"energetic", [4]int{100, 40, 81, 100}, MoodEnergetic},
		{"energy at threshold is happy", [4]int{100, 100, 80, 100}, MoodHappy},
		{"health exactly 40 is not sick", [4]int{40, 40, 40, 40}, MoodHappy},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := Pet{Name: "X", Hunger: tc.s[0], Happiness: tc.s[1], Energy: tc.s[2], Cleanliness: tc.s[3]}
			p.RecomputeHealth()
			assert.Equal(t, tc.want, p.Mood())
		})
	}
}

func TestValidateCatchesStaleHealth(t *testing.T) {
	p, err := NewPet("Tom", CatWhite, PersonalityPlayful)
	require.NoError(t, err)
	p.Hunger = 20
	assert.ErrorIs(t, p.Validate(), ErrInvalidPet)
	p.RecomputeHealth()
	assert.NoError(t, p.Validate())
}

func TestEnumCyclingWraps(t *testing.T) {
	assert.Equal(t, CatCalico, CatOrange.Prev())
	assert.Equal(t, CatOrange, CatCalico.Next())
	assert.Equal(t, PersonalityEnergetic, PersonalityPlayful.Prev())
	assert.Equal(t, PersonalityPlayful, PersonalityEnergetic.Next())

	for c := CatOrange; c < catTypeCount; c++ {
		got, err := ParseCatType(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
	_, err := ParsePersonality("Grumpy")
	assert.ErrorIs(t, err, ErrInvalidPet)
}
