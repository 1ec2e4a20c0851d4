package game

import (
	"errors"
	"image"
	"math/rand"
	"testing"
)

func newTestBoard(seed int64) *ChoreBoard {
	return NewChoreBoard(rand.New(rand.NewSource(seed)), OverlayRect(), 5, 5) // #nosec G404 -- test
}

func TestChoreBoardTransitions(t *testing.T) {
	b := newTestBoard(1)
	if b.State() != ChoreIdle {
		t.Fatalf("initial state = %s", b.State())
	}
	if err := b.Select(ChoreTrash); err == nil {
		t.Fatal("select from idle should fail")
	}
	if !b.Open() {
		t.Fatal("open from idle should succeed")
	}
	if b.Open() {
		t.Fatal("second open should be a no-op")
	}
	if err := b.Select(ChoreTrash); err != nil {
		t.Fatalf("select trash: %v", err)
	}
	if b.State() != ChoreMinigameActive {
		t.Fatalf("state = %s, want minigame", b.State())
	}
	s := b.Session()
	if s == nil || len(s.Targets) != 5 || s.Reward != 5 {
		t.Fatalf("unexpected session %+v", s)
	}
}

func TestChoreTargetsInsideOverlay(t *testing.T) {
	o := OverlayRect()
	for seed := int64(0); seed < 50; seed++ {
		b := newTestBoard(seed)
		b.Open()
		if err := b.Select(ChoreTrash); err != nil {
			t.Fatal(err)
		}
		for _, tg := range b.Session().Targets {
			if tg.X < o.Min.X+80 || tg.X > o.Max.X-80 {
				t.Fatalf("seed %d: x=%d outside [%d,%d]", seed, tg.X, o.Min.X+80, o.Max.X-80)
			}
			if tg.Y < o.Min.Y+120 || tg.Y > o.Max.Y-80 {
				t.Fatalf("seed %d: y=%d outside [%d,%d]", seed, tg.Y, o.Min.Y+120, o.Max.Y-80)
			}
		}
	}
}

func TestChoreCompletionPaysOnce(t *testing.T) {
	b := newTestBoard(7)
	b.Open()
	_ = b.Select(ChoreTrash)

	targets := b.Session().Targets
	total := 0
	for i, tg := range targets {
		c := tg.Bounds().Min.Add(image.Pt(TargetSize/2, TargetSize/2))
		ok, reward := b.Collect(c.X, c.Y)
		if !ok {
			t.Fatalf("target %d at (%d,%d) not collected", i, tg.X, tg.Y)
		}
		if i < len(targets)-1 && reward != 0 {
			t.Fatalf("reward %d paid before the last target", reward)
		}
		total += reward
	}
	if total != 5 {
		t.Fatalf("total reward = %d, want 5", total)
	}
	if b.State() != ChoreTaskboardOpen || b.Session() != nil {
		t.Fatalf("after completion: state=%s session=%v", b.State(), b.Session())
	}
	if ok, _ := b.Collect(targets[0].X+1, targets[0].Y+1); ok {
		t.Fatal("collect after completion should be ignored")
	}
}

func TestChoreCollectMissesAndRepeats(t *testing.T) {
	b := newTestBoard(3)
	b.Open()
	_ = b.Select(ChoreTrash)
	tg := b.Session().Targets[0]

	if ok, _ := b.Collect(0, 0); ok {
		t.Fatal("click outside every target collected something")
	}
	if ok, _ := b.Collect(tg.X, tg.Y); !ok {
		t.Fatal("top-left corner should hit")
	}
	// A second click on the same spot only collects an overlapping target.
	if ok, _ := b.Collect(tg.X, tg.Y); ok {
		for _, other := range b.Session().Targets[1:] {
			if image.Pt(tg.X, tg.Y).In(other.Bounds()) {
				return
			}
		}
		t.Fatal("collected an already collected target")
	}
	if done, _ := b.Session().Progress(); done != 1 {
		t.Fatalf("progress = %d, want 1", done)
	}
}

func TestChoreCancelDiscardsProgress(t *testing.T) {
	b := newTestBoard(9)
	b.Open()
	_ = b.Select(ChoreTrash)
	for _, tg := range b.Session().Targets[:4] {
		b.Collect(tg.X+1, tg.Y+1)
	}
	b.Cancel()
	if b.State() != ChoreIdle || b.Session() != nil {
		t.Fatalf("cancel left state=%s session=%v", b.State(), b.Session())
	}
}

func TestChoreInertKinds(t *testing.T) {
	b := newTestBoard(1)
	b.Open()
	for _, k := range []ChoreKind{ChoreLaundry, ChoreStovetop} {
		err := b.Select(k)
		if !errors.Is(err, ErrChoreNotImplemented) {
			t.Fatalf("select %s: err = %v", k, err)
		}
		if b.State() != ChoreTaskboardOpen {
			t.Fatalf("select %s changed state to %s", k, b.State())
		}
	}
}

func TestChoreSessionIsACopy(t *testing.T) {
	b := newTestBoard(1)
	b.Open()
	_ = b.Select(ChoreTrash)
	s := b.Session()
	s.Targets[0].Collected = true
	if done, _ := b.Session().Progress(); done != 0 {
		t.Fatal("mutating a session copy leaked into the board")
	}
}
