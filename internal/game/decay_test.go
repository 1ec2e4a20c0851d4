package game

import (
	"testing"
	"time"
)

func TestDecayFiresAtInterval(t *testing.T) {
	p, _ := NewPet("Tom", CatOrange, PersonalityShy)
	d := NewDecayScheduler(5 * time.Second)

	if d.Advance(4999*time.Millisecond, &p) {
		t.Fatal("decay fired before the interval")
	}
	if !d.Advance(time.Millisecond, &p) {
		t.Fatal("decay did not fire at exactly the interval")
	}
	if p.Hunger != 98 || p.Happiness != 99 || p.Energy != 99 || p.Cleanliness != 99 {
		t.Fatalf("unexpected stats after one step: %+v", p)
	}
	if p.Health != 98.75 {
		t.Fatalf("health = %.2f, want 98.75", p.Health)
	}
	if d.Elapsed() != 0 {
		t.Fatalf("accumulator = %v, want 0", d.Elapsed())
	}
}

func TestDecayLongFrameAppliesOneStep(t *testing.T) {
	p, _ := NewPet("Tom", CatOrange, PersonalityShy)
	d := NewDecayScheduler(5 * time.Second)

	if !d.Advance(17*time.Second, &p) {
		t.Fatal("expected a step")
	}
	if d.Steps() != 1 || p.Hunger != 98 {
		t.Fatalf("steps=%d hunger=%d, want one step", d.Steps(), p.Hunger)
	}
	if d.Elapsed() != 0 {
		t.Fatalf("excess should be dropped, accumulator = %v", d.Elapsed())
	}
}

func TestDecayFloorsAtZero(t *testing.T) {
	p, _ := NewPet("Tom", CatOrange, PersonalityShy)
	p.Apply(Effect{Hunger: -99, Happiness: -100, Energy: -100, Cleanliness: -100})
	d := NewDecayScheduler(time.Second)
	d.Advance(time.Second, &p)
	if p.Hunger != 0 || p.Happiness != 0 || p.Health != 0 {
		t.Fatalf("stats should floor at zero: %+v", p)
	}
}

func TestDecayNeglectTimeline(t *testing.T) {
	p, _ := NewPet("Tom", CatOrange, PersonalityShy)
	d := NewDecayScheduler(5 * time.Second)
	frame := time.Second / 60

	// 30 seconds at 60 fps is six steps.
	for i := 0; i < 30*60; i++ {
		d.Advance(frame, &p)
	}
	if d.Steps() < 5 || d.Steps() > 6 {
		t.Fatalf("steps = %d after 30s", d.Steps())
	}
	if p.Hunger != 100-2*d.Steps() {
		t.Fatalf("hunger = %d after %d steps", p.Hunger, d.Steps())
	}
}
