package game

import (
	"errors"
	"fmt"
	"image"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/Garsondee/Feline-Finances/internal/config"
)

// defaultJournalLimit bounds the in-game journal so a long session does not
// grow without limit. Tests and the headless report pass their own journal.
const defaultJournalLimit = 2000

// Saver persists the single save slot.
type Saver interface {
	Save(State) error
}

type settings struct {
	balance config.Balance
	saver   Saver
	logger  *log.Logger
	rng     *rand.Rand
	journal *Journal
	resume  *State
}

// Option configures a Game at construction.
type Option func(*settings)

// WithBalance overrides the stock balance.
func WithBalance(b config.Balance) Option {
	return func(s *settings) { s.balance = b }
}

// WithSaver sets the slot written by autosave, setup and shutdown.
func WithSaver(sv Saver) Option {
	return func(s *settings) { s.saver = sv }
}

func WithLogger(l *log.Logger) Option {
	return func(s *settings) { s.logger = l }
}

// WithRand injects the generator used for chore target placement.
func WithRand(r *rand.Rand) Option {
	return func(s *settings) { s.rng = r }
}

// WithSeed is WithRand with a fresh generator seeded by seed.
func WithSeed(seed int64) Option {
	return func(s *settings) {
		s.rng = rand.New(rand.NewSource(seed)) // #nosec G404 -- gameplay only
	}
}

func WithJournal(j *Journal) Option {
	return func(s *settings) { s.journal = j }
}

// WithState resumes from a loaded save instead of starting at setup.
func WithState(st State) Option {
	return func(s *settings) {
		cp := State{Pet: st.Pet, Economy: st.Economy.Clone()}
		s.resume = &cp
	}
}

// Game owns all mutable simulation state. Everything is mutated from Update
// on a single goroutine, so nothing here is locked.
type Game struct {
	balance config.Balance
	catalog Catalog
	saver   Saver
	logger  *log.Logger
	journal *Journal

	screen Screen
	setup  Setup

	pet    Pet
	ledger *Ledger

	decay  *DecayScheduler
	chores *ChoreBoard
	shop   *Shop

	autosaveEvery   time.Duration
	autosaveElapsed time.Duration

	tick     int
	cues     []Cue
	finished bool
	lastMood Mood
}

// New builds a controller. Without WithState it starts at character setup.
func New(opts ...Option) (*Game, error) {
	s := settings{balance: config.Default()}
	for _, o := range opts {
		o(&s)
	}
	if s.logger == nil {
		s.logger = log.New(os.Stderr, "feline: ", log.LstdFlags)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano())) // #nosec G404 -- gameplay only
	}
	if s.journal == nil {
		s.journal = NewBoundedJournal(defaultJournalLimit, false)
	}
	catalog, err := NewCatalog(s.balance.Prices)
	if err != nil {
		return nil, err
	}

	g := &Game{
		balance:       s.balance,
		catalog:       catalog,
		saver:         s.saver,
		logger:        s.logger,
		journal:       s.journal,
		decay:         NewDecayScheduler(s.balance.Timers.DecayInterval()),
		chores:        NewChoreBoard(s.rng, OverlayRect(), s.balance.Chores.TrashCount, s.balance.Chores.TrashReward),
		shop:          NewShop(s.balance.Timers.StoreMessage()),
		autosaveEvery: s.balance.Timers.AutosaveInterval(),
	}
	if s.resume != nil {
		if err := s.resume.Validate(); err != nil {
			return nil, fmt.Errorf("resume: %w", err)
		}
		g.enterPlay(*s.resume)
		g.journal.Add(g.tick, "save", "resumed", s.resume.Pet.Name, float64(s.resume.Economy.Money))
	}
	return g, nil
}

func (g *Game) enterPlay(st State) {
	g.pet = st.Pet
	g.ledger = NewLedger(g.catalog, st.Economy)
	g.screen = ScreenPlay
	g.lastMood = g.pet.Mood()
	g.autosaveElapsed = 0
}

// Update runs one frame: timers, then intents in order, then decay.
func (g *Game) Update(dt time.Duration, intents []Intent) {
	if g.finished {
		return
	}
	g.tick++
	g.shop.Advance(dt)

	if g.screen == ScreenPlay && g.autosaveEvery > 0 {
		g.autosaveElapsed += dt
		if g.autosaveElapsed >= g.autosaveEvery {
			_ = g.save("autosave")
			g.autosaveElapsed = 0
		}
	}

	for _, in := range intents {
		g.handle(in)
		if g.finished {
			return
		}
	}

	if g.screen != ScreenPlay {
		return
	}
	if g.decay.Advance(dt, &g.pet) {
		g.journal.Add(g.tick, "decay", "step",
			fmt.Sprintf("hunger=%d happiness=%d energy=%d cleanliness=%d",
				g.pet.Hunger, g.pet.Happiness, g.pet.Energy, g.pet.Cleanliness),
			g.pet.Health)
	}
	g.trackMood()
}

func (g *Game) handle(in Intent) {
	g.journal.AddVerbose(g.tick, "input", in.Kind.String(), in.String(), 0)
	if in.Kind == IntentQuit {
		g.quit()
		return
	}
	switch g.screen {
	case ScreenSetup:
		g.handleSetup(in)
	case ScreenPlay:
		g.handlePlay(in)
	}
}

func (g *Game) quit() {
	_ = g.save("shutdown")
	g.finished = true
	g.journal.Add(g.tick, "game", "quit", g.screen.String(), 0)
}

// --- Setup screen ---

func (g *Game) handleSetup(in Intent) {
	switch in.Kind {
	case IntentSelectField:
		g.setup.Move(in.Dir)
		g.cue(CueClick)
	case IntentAdjustField:
		if g.setup.Adjust(in.Dir) {
			g.cue(CueClick)
		}
	case IntentTextInput:
		if g.setup.TypeRune(in.Char) {
			g.cue(CueClick)
		}
	case IntentBackspace:
		if g.setup.Backspace() {
			g.cue(CueClick)
		}
	case IntentConfirm:
		pet, ok := g.setup.Confirm()
		if !ok {
			return
		}
		g.cue(CueClick)
		g.enterPlay(NewState(pet, g.balance.StartingMoney))
		g.journal.Add(g.tick, "setup", "complete",
			fmt.Sprintf("%s the %s cat (%s)", pet.Name, pet.Type, pet.Personality), 0)
		_ = g.save("setup")
	}
}

// --- Play screen ---

func (g *Game) handlePlay(in Intent) {
	switch in.Kind {
	case IntentCancel:
		if g.shop.IsOpen() {
			g.shop.Close()
			g.journal.Add(g.tick, "store", "close", "cancel", 0)
		}
		if g.chores.State() != ChoreIdle {
			g.closeTaskboard()
		}
	case IntentClickAt:
		switch {
		case g.shop.IsOpen():
			g.clickStore(in.X, in.Y)
		case g.chores.State() != ChoreIdle:
			g.clickTaskboard(in.X, in.Y)
		default:
			g.clickMain(in.X, in.Y)
		}
	}
}

func (g *Game) clickMain(x, y int) {
	b, ok := ButtonAt(x, y)
	if !ok {
		return
	}
	switch b {
	case ButtonFeed:
		_ = g.Do(ActionFeed)
	case ButtonPlay:
		_ = g.Do(ActionPlay)
	case ButtonClean:
		_ = g.Do(ActionClean)
	case ButtonRest:
		_ = g.Do(ActionRest)
	case ButtonTaskboard:
		if g.chores.Open() {
			g.cue(CueClick)
			g.journal.Add(g.tick, "chore", "open", "", 0)
		}
	case ButtonStore:
		g.shop.Toggle()
		g.cue(CueClick)
		g.journal.Add(g.tick, "store", "open", "", 0)
	}
}

func (g *Game) clickStore(x, y int) {
	pt := image.Pt(x, y)
	if pt.In(BackRect()) {
		g.shop.Close()
		g.cue(CueClick)
		g.journal.Add(g.tick, "store", "close", "back", 0)
		return
	}
	for i, e := range g.catalog.Entries() {
		if pt.In(StoreRowRect(i)) {
			_ = g.Buy(e.Item)
			return
		}
	}
}

func (g *Game) clickTaskboard(x, y int) {
	pt := image.Pt(x, y)
	// The state at the start of the event decides which controls are live, so
	// the click that finishes a minigame cannot also pick a new chore.
	state := g.chores.State()

	if state == ChoreMinigameActive {
		if collected, reward := g.chores.Collect(x, y); collected {
			g.cue(CueClick)
			g.journal.Add(g.tick, "chore", "collect", fmt.Sprintf("(%d,%d)", x, y), 0)
			if reward > 0 {
				g.ledger.CreditReward(reward)
				g.journal.Add(g.tick, "chore", "complete", ChoreTrash.String(), float64(reward))
			}
		}
	}

	if pt.In(BackRect()) {
		g.cue(CueClick)
		g.closeTaskboard()
		return
	}

	if state != ChoreTaskboardOpen {
		return
	}
	for i, kind := range ChoreKinds() {
		if !pt.In(ChoreRowRect(i)) {
			continue
		}
		g.cue(CueClick)
		if err := g.chores.Select(kind); err != nil {
			g.journal.Add(g.tick, "chore", "unavailable", kind.String(), 0)
			return
		}
		g.journal.Add(g.tick, "chore", "start", kind.String(), 0)
		return
	}
}

func (g *Game) closeTaskboard() {
	if s := g.chores.Session(); s != nil {
		done, total := s.Progress()
		g.journal.Add(g.tick, "chore", "abandon", fmt.Sprintf("%s %d/%d", s.Kind, done, total), float64(done))
	}
	g.chores.Cancel()
	g.journal.Add(g.tick, "chore", "close", "", 0)
}

// Do performs a care action on the play screen.
func (g *Game) Do(a Action) error {
	if g.screen != ScreenPlay {
		return fmt.Errorf("%s: no pet yet", a)
	}
	if err := Perform(&g.pet, g.ledger, a); err != nil {
		g.cue(CueError)
		g.journal.Add(g.tick, "action", "blocked", err.Error(), 0)
		return err
	}
	g.cue(CueClick)
	g.journal.Add(g.tick, "action", a.String(), fmt.Sprintf("health=%.2f", g.pet.Health), g.pet.Health)
	return nil
}

// Buy purchases one item. A shortfall flashes the store message.
func (g *Game) Buy(item Item) error {
	if g.screen != ScreenPlay {
		return fmt.Errorf("buy %s: no pet yet", item)
	}
	price, err := g.ledger.Purchase(item)
	if err != nil {
		g.cue(CueError)
		if errors.Is(err, ErrInsufficientFunds) {
			g.shop.Flash(insufficientFundsMessage)
			g.journal.Add(g.tick, "economy", "insufficient_funds", string(item), float64(price))
		} else {
			g.journal.Add(g.tick, "economy", "purchase_failed", err.Error(), 0)
		}
		return err
	}
	g.cue(CueClick)
	g.journal.Add(g.tick, "economy", "purchase", string(item), float64(price))
	return nil
}

func (g *Game) trackMood() {
	m := g.pet.Mood()
	if m == g.lastMood {
		return
	}
	g.journal.Add(g.tick, "mood", "change", fmt.Sprintf("%s → %s", g.lastMood, m), g.pet.Health)
	g.lastMood = m
}

func (g *Game) cue(c Cue) {
	g.cues = append(g.cues, c)
}

// --- Persistence ---

func (g *Game) save(reason string) error {
	if g.saver == nil || g.screen != ScreenPlay {
		return nil
	}
	if err := g.saver.Save(g.mustState()); err != nil {
		g.logger.Printf("warning: %s save failed, continuing unsaved: %v", reason, err)
		g.journal.Add(g.tick, "save", "failed", reason, 0)
		return err
	}
	g.journal.Add(g.tick, "save", reason, g.pet.Name, float64(g.ledger.Money()))
	return nil
}

// SaveNow writes the slot immediately.
func (g *Game) SaveNow() error { return g.save("manual") }

func (g *Game) mustState() State {
	return State{Pet: g.pet, Economy: g.ledger.Economy()}
}

// State returns the persistable state; false while still in setup.
func (g *Game) State() (State, bool) {
	if g.screen != ScreenPlay {
		return State{}, false
	}
	return g.mustState(), true
}

// --- Read side ---

// Snapshot copies everything the renderer needs.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:         g.tick,
		Screen:       g.screen,
		Finished:     g.finished,
		Setup:        g.setup,
		Catalog:      g.catalog.Entries(),
		StoreOpen:    g.shop.IsOpen(),
		StoreMessage: g.shop.Message(),
		Chore:        g.chores.State(),
		ChoreSession: g.chores.Session(),
	}
	if g.screen == ScreenPlay {
		snap.Pet = g.pet
		snap.Mood = g.pet.Mood()
		snap.Economy = g.ledger.Economy()
		snap.Affordable = make(map[Item]bool, len(snap.Catalog))
		for _, e := range snap.Catalog {
			snap.Affordable[e.Item] = g.ledger.CanAfford(e.Item)
		}
	}
	return snap
}

// DrainCues hands pending audio cues to the front-end.
func (g *Game) DrainCues() []Cue {
	out := g.cues
	g.cues = nil
	return out
}

func (g *Game) Finished() bool          { return g.finished }
func (g *Game) Screen() Screen          { return g.screen }
func (g *Game) Tick() int               { return g.tick }
func (g *Game) Journal() *Journal       { return g.journal }
func (g *Game) DecaySteps() int         { return g.decay.Steps() }
func (g *Game) Catalog() Catalog        { return g.catalog }
func (g *Game) Balance() config.Balance { return g.balance }
