package game

import (
	"fmt"
	"image"
	"math/rand"
)

// ChoreKind is an entry on the taskboard.
type ChoreKind int

const (
	ChoreTrash ChoreKind = iota
	ChoreLaundry
	ChoreStovetop
	choreKindCount
)

var choreKindInfo = [choreKindCount]struct {
	id, title   string
	implemented bool
}{
	ChoreTrash:    {"trash", "Take Out The Trash", true},
	ChoreLaundry:  {"laundry", "Put Away Laundry", false},
	ChoreStovetop: {"stovetop", "Stove Top Sizzler", false},
}

func (k ChoreKind) String() string {
	if k < 0 || k >= choreKindCount {
		return "unknown"
	}
	return choreKindInfo[k].id
}

// Title is the taskboard label.
func (k ChoreKind) Title() string {
	if k < 0 || k >= choreKindCount {
		return "unknown"
	}
	return choreKindInfo[k].title
}

// Implemented reports whether the kind has a minigame body.
func (k ChoreKind) Implemented() bool {
	return k >= 0 && k < choreKindCount && choreKindInfo[k].implemented
}

// ChoreKinds lists the taskboard in display order.
func ChoreKinds() []ChoreKind {
	return []ChoreKind{ChoreTrash, ChoreLaundry, ChoreStovetop}
}

// ChoreState is the taskboard overlay state.
type ChoreState int

const (
	ChoreIdle ChoreState = iota
	ChoreTaskboardOpen
	ChoreMinigameActive
)

func (s ChoreState) String() string {
	switch s {
	case ChoreIdle:
		return "idle"
	case ChoreTaskboardOpen:
		return "taskboard"
	case ChoreMinigameActive:
		return "minigame"
	default:
		return "unknown"
	}
}

// Target is one collectible of a minigame.
type Target struct {
	X, Y      int
	Collected bool
}

// Bounds is the clickable box of the target.
func (t Target) Bounds() image.Rectangle {
	return rectXYWH(t.X, t.Y, TargetSize, TargetSize)
}

// ChoreSession is an in-progress minigame.
type ChoreSession struct {
	Kind    ChoreKind
	Targets []Target
	Reward  int
}

// Progress returns collected and total target counts.
func (s *ChoreSession) Progress() (collected, total int) {
	for _, t := range s.Targets {
		if t.Collected {
			collected++
		}
	}
	return collected, len(s.Targets)
}

func (s *ChoreSession) clone() *ChoreSession {
	c := *s
	c.Targets = append([]Target(nil), s.Targets...)
	return &c
}

// ChoreBoard is the taskboard state machine:
// Idle -> TaskboardOpen -> MinigameActive -> TaskboardOpen.
// Cancel returns to Idle from anywhere and discards partial progress.
type ChoreBoard struct {
	state   ChoreState
	session *ChoreSession
	rng     *rand.Rand
	area    image.Rectangle
	count   int
	reward  int
}

// NewChoreBoard places targets inside area using rng; count targets are
// spawned per trash run and reward is paid on completion.
func NewChoreBoard(rng *rand.Rand, area image.Rectangle, count, reward int) *ChoreBoard {
	return &ChoreBoard{rng: rng, area: area, count: count, reward: reward}
}

func (b *ChoreBoard) State() ChoreState { return b.state }

// Session returns a copy of the active session, or nil.
func (b *ChoreBoard) Session() *ChoreSession {
	if b.session == nil {
		return nil
	}
	return b.session.clone()
}

// Open shows the taskboard. It is a no-op unless the board is idle.
func (b *ChoreBoard) Open() bool {
	if b.state != ChoreIdle {
		return false
	}
	b.state = ChoreTaskboardOpen
	return true
}

// Select starts a chore from the open taskboard.
func (b *ChoreBoard) Select(kind ChoreKind) error {
	if b.state != ChoreTaskboardOpen {
		return fmt.Errorf("select %s: taskboard is %s", kind, b.state)
	}
	if !kind.Implemented() {
		return fmt.Errorf("select %s: %w", kind, ErrChoreNotImplemented)
	}
	b.session = &ChoreSession{
		Kind:    kind,
		Targets: b.spawnTargets(),
		Reward:  b.reward,
	}
	b.state = ChoreMinigameActive
	return nil
}

func (b *ChoreBoard) spawnTargets() []Target {
	targets := make([]Target, 0, b.count)
	for i := 0; i < b.count; i++ {
		targets = append(targets, Target{
			X: b.area.Min.X + 80 + b.randInclusive(b.area.Dx()-160),
			Y: b.area.Min.Y + 120 + b.randInclusive(b.area.Dy()-200),
		})
	}
	return targets
}

// randInclusive returns a value in [0, n].
func (b *ChoreBoard) randInclusive(n int) int {
	if n <= 0 {
		return 0
	}
	return b.rng.Intn(n + 1)
}

// Collect marks the first uncollected target under (x, y). When that was the
// last one, the session closes, the board returns to the taskboard and the
// reward is returned for crediting.
func (b *ChoreBoard) Collect(x, y int) (collected bool, reward int) {
	if b.state != ChoreMinigameActive || b.session == nil {
		return false, 0
	}
	pt := image.Pt(x, y)
	for i := range b.session.Targets {
		t := &b.session.Targets[i]
		if t.Collected || !pt.In(t.Bounds()) {
			continue
		}
		t.Collected = true
		if done, total := b.session.Progress(); done == total {
			reward = b.session.Reward
			b.session = nil
			b.state = ChoreTaskboardOpen
		}
		return true, reward
	}
	return false, 0
}

// Cancel closes the overlay and drops any session without payout.
func (b *ChoreBoard) Cancel() {
	b.session = nil
	b.state = ChoreIdle
}
