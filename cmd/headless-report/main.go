package main

import (
	"flag"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Garsondee/Feline-Finances/internal/config"
	"github.com/Garsondee/Feline-Finances/internal/game"
)

// decisionEvery is how often a policy gets to act, in ticks.
const decisionEvery = game.SimTPS

type policy func(ts *game.TestSim)

var scenarios = map[string]policy{
	"attentive": attentivePolicy,
	"frugal":    frugalPolicy,
	"neglect":   func(*game.TestSim) {},
}

type runStats struct {
	runIndex int
	seed     int64
	scenario string

	final      game.Pet
	finalMood  game.Mood
	money      int
	totalSpent int
	minHealth  float64

	firstSadTick  int
	firstSickTick int
	sickTicks     int

	purchases     int
	shortfalls    int
	choresDone    int
	choreEarnings int
	actions       map[string]int
	blocked       int
	decaySteps    int
	moodChanges   int
	moodsSeen     map[string]struct{}
}

func main() {
	var runs int
	var minutes int
	var seedBase int64
	var seedStep int64
	var scenario string
	var balancePath string

	flag.IntVar(&runs, "runs", 5, "number of headless simulation runs")
	flag.IntVar(&minutes, "minutes", 10, "minutes of game time per run")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&scenario, "scenario", "attentive", "care policy: "+strings.Join(scenarioNames(), ", "))
	flag.StringVar(&balancePath, "balance", "", "optional balance YAML file")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if minutes <= 0 {
		fmt.Println("error: -minutes must be > 0")
		return
	}
	pol, ok := scenarios[scenario]
	if !ok {
		fmt.Printf("error: unsupported scenario %q (supported: %s)\n", scenario, strings.Join(scenarioNames(), ", "))
		return
	}
	balance, err := config.LoadBalance(balancePath)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	fmt.Printf("=== Headless Care Report ===\n")
	fmt.Printf("scenario=%s runs=%d minutes=%d seed_base=%d seed_step=%d\n\n", scenario, runs, minutes, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		stats := runScenario(i+1, seed, scenario, pol, balance, time.Duration(minutes)*time.Minute)
		all = append(all, stats)
		printRun(stats)
	}

	printAggregate(all)
}

func scenarioNames() []string {
	names := make([]string, 0, len(scenarios))
	for k := range scenarios {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func runScenario(runIndex int, seed int64, name string, pol policy, balance config.Balance, length time.Duration) runStats {
	ts := game.NewTestSim(
		game.WithSimSeed(seed),
		game.WithSimBalance(balance),
	)
	ts.CreatePet("Report", game.CatType(seed%4), game.Personality(seed%4))

	total := int(length / ts.Frame)
	minHealth := ts.Pet().Health
	sickTicks := 0
	next := 0
	for ts.CurrentTick() < total {
		if ts.CurrentTick() >= next {
			pol(ts)
			next += decisionEvery
		}
		ts.Step()
		p := ts.Pet()
		if p.Health < minHealth {
			minHealth = p.Health
		}
		if p.Mood() == game.MoodSick {
			sickTicks++
		}
	}

	j := ts.Journal
	entries := j.Entries()
	actions := map[string]int{}
	for _, a := range []game.Action{game.ActionFeed, game.ActionPlay, game.ActionRest, game.ActionClean} {
		actions[a.String()] = j.Count("action", a.String())
	}
	earnings := 0
	for _, e := range j.Filter("chore", "complete") {
		earnings += int(e.NumVal)
	}
	moods := map[string]struct{}{}
	for _, e := range j.Filter("mood", "change") {
		if _, to, ok := strings.Cut(e.Value, "→ "); ok {
			moods[to] = struct{}{}
		}
	}

	snap := ts.Game.Snapshot()
	return runStats{
		runIndex:      runIndex,
		seed:          seed,
		scenario:      name,
		final:         snap.Pet,
		finalMood:     snap.Mood,
		money:         snap.Economy.Money,
		totalSpent:    snap.Economy.TotalSpent,
		minHealth:     minHealth,
		firstSadTick:  firstTick(entries, "mood", "change", "→ Sad"),
		firstSickTick: firstTick(entries, "mood", "change", "→ Sick"),
		sickTicks:     sickTicks,
		purchases:     j.Count("economy", "purchase"),
		shortfalls:    j.Count("economy", "insufficient_funds"),
		choresDone:    j.Count("chore", "complete"),
		choreEarnings: earnings,
		actions:       actions,
		blocked:       j.Count("action", "blocked"),
		decaySteps:    ts.Game.DecaySteps(),
		moodChanges:   j.Count("mood", "change"),
		moodsSeen:     moods,
	}
}

// attentivePolicy keeps every stat above 70, buying what it needs and doing
// chores whenever it cannot afford the next item.
func attentivePolicy(ts *game.TestSim) {
	p := ts.Pet()
	if p.Energy < 70 {
		ts.Click(game.ButtonRest)
	}
	needs := []struct {
		low  bool
		item game.Item
		btn  game.Button
	}{
		{p.Hunger < 70, game.Meowmunch, game.ButtonFeed},
		{p.Happiness < 70, game.Purrplay, game.ButtonPlay},
		{p.Cleanliness < 70, game.Furbath, game.ButtonClean},
	}
	for _, n := range needs {
		if !n.low {
			continue
		}
		if ts.Count(n.item) == 0 && ts.Buy(n.item) != nil {
			ts.DoTrashChore()
			continue
		}
		ts.Click(n.btn)
	}
}

// frugalPolicy only ever buys food, rests for happiness and works a chore
// whenever the wallet drops below the price of a meal.
func frugalPolicy(ts *game.TestSim) {
	p := ts.Pet()
	price, _ := ts.Game.Catalog().Price(game.Meowmunch)
	if ts.Money() < price {
		ts.DoTrashChore()
	}
	if p.Hunger < 50 {
		if ts.Count(game.Meowmunch) > 0 || ts.Buy(game.Meowmunch) == nil {
			ts.Click(game.ButtonFeed)
		}
	}
	if p.Energy < 60 || p.Happiness < 50 {
		ts.Click(game.ButtonRest)
	}
}

func firstTick(entries []game.JournalEntry, category, key, contains string) int {
	for _, e := range entries {
		if e.Category != category || e.Key != key {
			continue
		}
		if contains == "" || strings.Contains(e.Value, contains) {
			return e.Tick
		}
	}
	return -1
}

// classify buckets a run by how the cat ended up.
func classify(rs runStats) string {
	switch {
	case rs.final.Health >= 70 && rs.sickTicks == 0:
		return "thriving"
	case rs.final.Health >= 40:
		return "coping"
	default:
		return "neglected"
	}
}

func printRun(rs runStats) {
	p := rs.final
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("final_pet: hunger=%d happiness=%d energy=%d cleanliness=%d health=%.2f mood=%s outcome=%s\n",
		p.Hunger, p.Happiness, p.Energy, p.Cleanliness, p.Health, rs.finalMood, classify(rs))
	fmt.Printf("phase_markers: first_sad=%d first_sick=%d sick_ticks=%d min_health=%.2f\n",
		rs.firstSadTick, rs.firstSickTick, rs.sickTicks, rs.minHealth)
	fmt.Printf("economy: money=%d total_spent=%d purchases=%d shortfalls=%d chores=%d chore_earnings=%d\n",
		rs.money, rs.totalSpent, rs.purchases, rs.shortfalls, rs.choresDone, rs.choreEarnings)
	fmt.Printf("care: feed=%d play=%d rest=%d clean=%d blocked=%d decay_steps=%d mood_changes=%d\n",
		rs.actions["feed"], rs.actions["play"], rs.actions["rest"], rs.actions["clean"], rs.blocked, rs.decaySteps, rs.moodChanges)
	fmt.Printf("moods_seen: %s\n", joinSet(rs.moodsSeen))
	fmt.Println()
}

func printAggregate(all []runStats) {
	totalHealth := 0.0
	totalMoney := 0
	totalSpent := 0
	totalChores := 0
	totalShortfalls := 0
	totalSick := 0
	sadTicks := make([]int, 0, len(all))
	sickTicks := make([]int, 0, len(all))
	outcomes := map[string]int{}
	moodsGlobal := map[string]struct{}{}

	for _, rs := range all {
		totalHealth += rs.final.Health
		totalMoney += rs.money
		totalSpent += rs.totalSpent
		totalChores += rs.choresDone
		totalShortfalls += rs.shortfalls
		totalSick += rs.sickTicks
		if rs.firstSadTick >= 0 {
			sadTicks = append(sadTicks, rs.firstSadTick)
		}
		if rs.firstSickTick >= 0 {
			sickTicks = append(sickTicks, rs.firstSickTick)
		}
		outcomes[classify(rs)]++
		for m := range rs.moodsSeen {
			moodsGlobal[m] = struct{}{}
		}
	}

	n := len(all)
	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d\n", n)
	avgHealth := 0.0
	if n > 0 {
		avgHealth = totalHealth / float64(n)
	}
	fmt.Printf("avg_final_health=%.2f avg_money=%.1f avg_total_spent=%.1f avg_chores=%.1f avg_shortfalls=%.1f avg_sick_ticks=%.1f\n",
		avgHealth, avg(totalMoney, n), avg(totalSpent, n), avg(totalChores, n), avg(totalShortfalls, n), avg(totalSick, n))
	fmt.Printf("phase_marker_avg_ticks: first_sad=%s first_sick=%s\n", avgTickString(sadTicks), avgTickString(sickTicks))
	fmt.Printf("outcomes: thriving=%d coping=%d neglected=%d\n", outcomes["thriving"], outcomes["coping"], outcomes["neglected"])
	fmt.Printf("moods_seen=%d [%s]\n", len(moodsGlobal), joinSet(moodsGlobal))
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgTickString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}

func joinSet(s map[string]struct{}) string {
	if len(s) == 0 {
		return "none"
	}
	labels := make([]string, 0, len(s))
	for k := range s {
		labels = append(labels, k)
	}
	sort.Strings(labels)
	return strings.Join(labels, ",")
}
