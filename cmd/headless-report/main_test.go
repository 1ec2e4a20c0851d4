package main

import (
	"testing"
	"time"

	"github.com/Garsondee/Feline-Finances/internal/config"
	"github.com/Garsondee/Feline-Finances/internal/game"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		health    float64
		sickTicks int
		want      string
	}{
		{95, 0, "thriving"},
		{95, 10, "coping"},
		{55, 0, "coping"},
		{12, 0, "neglected"},
	}
	for _, tc := range cases {
		rs := runStats{final: game.Pet{Health: tc.health}, sickTicks: tc.sickTicks}
		if got := classify(rs); got != tc.want {
			t.Fatalf("classify(health=%.0f sick=%d) = %s, want %s", tc.health, tc.sickTicks, got, tc.want)
		}
	}
}

func TestFirstTick(t *testing.T) {
	entries := []game.JournalEntry{
		{Tick: 10, Category: "mood", Key: "change", Value: "Energetic → Happy"},
		{Tick: 20, Category: "mood", Key: "change", Value: "Happy → Sad"},
		{Tick: 30, Category: "mood", Key: "change", Value: "Sad → Happy"},
	}
	if got := firstTick(entries, "mood", "change", "→ Sad"); got != 20 {
		t.Fatalf("first sad = %d, want 20", got)
	}
	if got := firstTick(entries, "mood", "change", "→ Sick"); got != -1 {
		t.Fatalf("first sick = %d, want -1", got)
	}
}

func TestAvgTickString(t *testing.T) {
	if got := avgTickString(nil); got != "n/a" {
		t.Fatalf("empty = %s", got)
	}
	if got := avgTickString([]int{10, 21}); got != "15.5" {
		t.Fatalf("avg = %s", got)
	}
}

func TestNeglectDecaysAndAttentiveHolds(t *testing.T) {
	b := config.Default()
	length := 5 * time.Minute

	neglect := runScenario(1, 42, "neglect", scenarios["neglect"], b, length)
	attentive := runScenario(1, 42, "attentive", scenarios["attentive"], b, length)

	// Five minutes is about 60 decay steps of -2 hunger, so hunger bottoms out.
	if neglect.decaySteps < 55 || neglect.final.Hunger != 0 {
		t.Fatalf("neglect: decay_steps=%d hunger=%d", neglect.decaySteps, neglect.final.Hunger)
	}
	if neglect.purchases != 0 || neglect.choresDone != 0 {
		t.Fatalf("neglect run did something: purchases=%d chores=%d", neglect.purchases, neglect.choresDone)
	}
	if attentive.final.Health <= neglect.final.Health {
		t.Fatalf("attentive health %.2f should beat neglect %.2f", attentive.final.Health, neglect.final.Health)
	}
	if attentive.choresDone == 0 {
		t.Fatal("attentive policy never worked a chore")
	}
	if attentive.choreEarnings != attentive.choresDone*b.Chores.TrashReward {
		t.Fatalf("earnings %d != chores %d * reward", attentive.choreEarnings, attentive.choresDone)
	}
}
