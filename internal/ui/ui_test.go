package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Garsondee/Feline-Finances/internal/game"
)

func TestStatusCard(t *testing.T) {
	ts := game.NewTestSim(
		game.WithPet("Mochi", game.CatCalico, game.PersonalityShy),
		game.WithStats(80, 30, 90, 60),
		game.WithMoney(42),
		game.WithInventory(game.Purrplay, 2),
	)
	card := StatusCard(ts.Game.Snapshot())

	lines := strings.Split(strings.TrimSpace(card), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "MOCHI the Calico cat (Shy)", lines[0])
	assert.Equal(t, "Mood: Sad  Health: 65.0", lines[1])
	assert.Equal(t, "Hunger 80  Happiness 30  Energy 90  Cleanliness 60", lines[2])
	assert.Equal(t, "Money: $42  Spent: $0", lines[3])
	assert.Equal(t, "Inventory: Meowmunch x0, Purrplay x2, Furbath x0", lines[4])
}

func TestStatusCardEmptyDuringSetup(t *testing.T) {
	ts := game.NewTestSim()
	assert.Equal(t, "", StatusCard(ts.Game.Snapshot()))
}

func TestActivityLogWraps(t *testing.T) {
	al := NewActivityLog()
	for i := 0; i < activityMaxEntries+5; i++ {
		al.Add(i, "action", "x")
	}
	recent := al.Recent()
	require.Len(t, recent, activityMaxEntries)
	assert.Equal(t, 5, recent[0].Tick)
	assert.Equal(t, activityMaxEntries+4, recent[len(recent)-1].Tick)
}

func TestActivityLogFollowsJournal(t *testing.T) {
	ts := game.NewTestSim(game.WithPet("Tom", game.CatGrey, game.PersonalityLazy), game.WithMoney(7))
	al := NewActivityLog()

	require.NoError(t, ts.Buy(game.Meowmunch))
	ts.Click(game.ButtonFeed)
	ts.Click(game.ButtonPlay)
	al.Follow(ts.Journal)

	var msgs []string
	for _, e := range al.Recent() {
		msgs = append(msgs, e.Message)
	}
	assert.Contains(t, msgs, "Bought Meowmunch for $5")
	assert.Contains(t, msgs, "You fed the cat")
	assert.Contains(t, msgs, "Can't: play: consume Purrplay: missing item")
	for _, m := range msgs {
		assert.NotContains(t, m, "store", "store open/close is not shown")
	}

	n := len(al.Recent())
	al.Follow(ts.Journal)
	assert.Len(t, al.Recent(), n, "nothing new to follow")
}

func TestPetHeader(t *testing.T) {
	ts := game.NewTestSim(game.WithPet("Mochi", game.CatCalico, game.PersonalityShy))
	title, personality := petHeader(ts.Pet())
	assert.Equal(t, "MOCHI the Calico Cat", title)
	assert.Equal(t, "Personality: Shy", personality)
}

func TestStoreHintFollowsAffordability(t *testing.T) {
	ts := game.NewTestSim(game.WithPet("Tom", game.CatGrey, game.PersonalityLazy), game.WithMoney(12))
	snap := ts.Game.Snapshot()

	hints := map[game.Item]string{}
	for _, e := range snap.Catalog {
		hints[e.Item], _ = storeHint(snap.Affordable[e.Item])
	}
	assert.Equal(t, "Click to buy", hints[game.Meowmunch])
	assert.Equal(t, "Click to buy", hints[game.Purrplay])
	assert.Equal(t, "Not enough money", hints[game.Furbath])

	_, warn := storeHint(false)
	_, buy := storeHint(true)
	assert.NotEqual(t, warn, buy, "the two hints use different colours")
}
