package game

import (
	"fmt"
	"image"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/Garsondee/Feline-Finances/internal/config"
)

// SimTPS is the frame rate the harness steps at.
const SimTPS = 60

// TestSim is a headless harness around Game used by tests and the headless
// report. It drives the controller purely through intents at a fixed frame
// time, so runs are deterministic for a given seed.
type TestSim struct {
	Game    *Game
	Journal *Journal
	Frame   time.Duration

	balance config.Balance
	rng     *rand.Rand
	saver   Saver
	verbose bool

	// resume state, built up by the state options
	pet     *Pet
	economy *Economy
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptInfra simOptionKind = iota // seed, balance, saver, verbose: applied first
	simOptState                      // pet and wallet: applied once the balance is known
)

// SimOption is a builder function applied to a TestSim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*TestSim)
}

// WithSimSeed sets the RNG seed for chore target placement.
func WithSimSeed(seed int64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.rng = rand.New(rand.NewSource(seed)) // #nosec G404 -- test harness
	}}
}

// WithSimBalance replaces the stock balance.
func WithSimBalance(b config.Balance) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) { ts.balance = b }}
}

func WithSimSaver(s Saver) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) { ts.saver = s }}
}

// WithVerbose keeps per-intent journal entries.
func WithVerbose(v bool) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) { ts.verbose = v }}
}

// WithFrame overrides the per-step frame time.
func WithFrame(dt time.Duration) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) { ts.Frame = dt }}
}

// WithPet skips setup and starts play with a full-stat pet.
func WithPet(name string, t CatType, p Personality) SimOption {
	return SimOption{simOptState, func(ts *TestSim) {
		pet, err := NewPet(name, t, p)
		if err != nil {
			panic(fmt.Sprintf("test harness: %v", err))
		}
		ts.pet = &pet
	}}
}

// WithStats overrides the pet's four care stats. Requires WithPet.
func WithStats(hunger, happiness, energy, cleanliness int) SimOption {
	return SimOption{simOptState, func(ts *TestSim) {
		if ts.pet == nil {
			panic("test harness: WithStats needs WithPet first")
		}
		ts.pet.Hunger = hunger
		ts.pet.Happiness = happiness
		ts.pet.Energy = energy
		ts.pet.Cleanliness = cleanliness
		ts.pet.RecomputeHealth()
	}}
}

// WithMoney sets the starting wallet.
func WithMoney(money int) SimOption {
	return SimOption{simOptState, func(ts *TestSim) {
		ts.wallet().Money = money
	}}
}

// WithInventory stocks n of item.
func WithInventory(item Item, n int) SimOption {
	return SimOption{simOptState, func(ts *TestSim) {
		ts.wallet().Inventory[item] = n
	}}
}

func (ts *TestSim) wallet() *Economy {
	if ts.economy == nil {
		ts.economy = &Economy{Money: ts.balance.StartingMoney, Inventory: map[Item]int{}}
	}
	return ts.economy
}

// NewTestSim constructs a TestSim in two ordered passes:
//  1. Infrastructure (seed, balance, saver, verbose, frame)
//  2. Pet and wallet
//
// Without WithPet the game starts on the setup screen.
func NewTestSim(opts ...SimOption) *TestSim {
	ts := &TestSim{
		Frame:   time.Second / SimTPS,
		balance: config.Default(),
		rng:     rand.New(rand.NewSource(1)), // #nosec G404 -- test harness default
	}
	for _, o := range opts {
		if o.kind == simOptInfra {
			o.fn(ts)
		}
	}
	for _, o := range opts {
		if o.kind == simOptState {
			o.fn(ts)
		}
	}
	ts.Journal = NewJournal(ts.verbose)

	gameOpts := []Option{
		WithBalance(ts.balance),
		WithRand(ts.rng),
		WithJournal(ts.Journal),
		WithSaver(ts.saver),
		WithLogger(discardLogger()),
	}
	if ts.pet != nil {
		gameOpts = append(gameOpts, WithState(State{Pet: *ts.pet, Economy: *ts.wallet()}))
	}
	g, err := New(gameOpts...)
	if err != nil {
		panic(fmt.Sprintf("test harness: %v", err))
	}
	ts.Game = g
	return ts
}

// Step runs one frame with the given intents.
func (ts *TestSim) Step(intents ...Intent) {
	ts.Game.Update(ts.Frame, intents)
}

// RunTicks advances n idle frames.
func (ts *TestSim) RunTicks(n int) {
	for i := 0; i < n; i++ {
		ts.Step()
	}
}

// RunFor advances idle frames until d of game time has passed.
func (ts *TestSim) RunFor(d time.Duration) {
	ts.RunTicks(ts.ticksIn(d))
}

func (ts *TestSim) ticksIn(d time.Duration) int {
	if ts.Frame <= 0 {
		return 0
	}
	return int((d + ts.Frame - 1) / ts.Frame)
}

// RunUntil advances up to maxTicks idle frames, stopping once predicate holds.
// Returns the tick at which the predicate was satisfied, or -1.
func (ts *TestSim) RunUntil(predicate func(*TestSim) bool, maxTicks int) int {
	for i := 0; i < maxTicks; i++ {
		ts.Step()
		if predicate(ts) {
			return ts.Game.Tick()
		}
	}
	return -1
}

// ClickPoint clicks at pt in one frame.
func (ts *TestSim) ClickPoint(pt image.Point) {
	ts.Step(ClickAt(pt.X, pt.Y))
}

// Click presses a play-screen button.
func (ts *TestSim) Click(b Button) {
	ts.ClickPoint(center(ButtonRect(b)))
}

// CreatePet walks the setup form the way a player would: type the name,
// cycle the enums, then confirm on the start row.
func (ts *TestSim) CreatePet(name string, t CatType, p Personality) {
	intents := []Intent{}
	for _, r := range name {
		intents = append(intents, TextInput(r))
	}
	intents = append(intents, SelectField(+1))
	for i := 0; i < int(t); i++ {
		intents = append(intents, AdjustField(+1))
	}
	intents = append(intents, SelectField(+1))
	for i := 0; i < int(p); i++ {
		intents = append(intents, AdjustField(+1))
	}
	intents = append(intents, SelectField(+1), Confirm())
	ts.Step(intents...)
}

// Buy opens Whiskermart, clicks the item row and goes back. An unchanged
// wallet is reported as ErrInsufficientFunds.
func (ts *TestSim) Buy(item Item) error {
	row := -1
	for i, e := range ts.Game.Catalog().Entries() {
		if e.Item == item {
			row = i
		}
	}
	if row < 0 {
		return fmt.Errorf("buy %q: %w", item, ErrUnknownItem)
	}
	ts.Click(ButtonStore)
	before := ts.Game.Snapshot().Economy.Money
	ts.ClickPoint(center(StoreRowRect(row)))
	after := ts.Game.Snapshot().Economy.Money
	ts.ClickPoint(center(BackRect()))
	if after == before {
		return fmt.Errorf("buy %s: %w", item, ErrInsufficientFunds)
	}
	return nil
}

// DoTrashChore opens the taskboard, plays the trash minigame by clicking
// each target centre, then closes the board. It returns the money earned.
func (ts *TestSim) DoTrashChore() int {
	before := ts.Game.Snapshot().Economy.Money
	ts.Click(ButtonTaskboard)
	ts.ClickPoint(center(ChoreRowRect(int(ChoreTrash))))
	if s := ts.Game.Snapshot().ChoreSession; s != nil {
		for _, tg := range s.Targets {
			ts.ClickPoint(center(tg.Bounds()))
		}
	}
	ts.ClickPoint(center(BackRect()))
	return ts.Game.Snapshot().Economy.Money - before
}

// Pet returns the current pet. Zero before setup completes.
func (ts *TestSim) Pet() Pet { return ts.Game.Snapshot().Pet }

// Money returns the wallet balance.
func (ts *TestSim) Money() int { return ts.Game.Snapshot().Economy.Money }

// Count returns the stock of item.
func (ts *TestSim) Count(item Item) int { return ts.Game.Snapshot().Economy.Inventory[item] }

// CurrentTick returns the current simulation tick.
func (ts *TestSim) CurrentTick() int { return ts.Game.Tick() }

// Elapsed is the game time simulated so far.
func (ts *TestSim) Elapsed() time.Duration {
	return time.Duration(ts.Game.Tick()) * ts.Frame
}

func discardLogger() *log.Logger { return log.New(io.Discard, "", 0) }

func center(r image.Rectangle) image.Point {
	return image.Pt((r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2)
}
