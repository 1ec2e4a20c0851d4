package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Feline-Finances/internal/game"
)

const (
	activityMaxEntries = 40
	activityLineHeight = 14
	activityVisible    = 6
)

// ActivityEntry is a single line in the activity panel.
type ActivityEntry struct {
	Tick     int
	Category string
	Message  string
}

// ActivityLog is a ring buffer of recent journal events rendered on-screen.
type ActivityLog struct {
	entries []ActivityEntry
	head    int
	count   int
	seen    int // journal entries already consumed
}

func NewActivityLog() *ActivityLog {
	return &ActivityLog{entries: make([]ActivityEntry, activityMaxEntries)}
}

// Add appends an entry to the log.
func (al *ActivityLog) Add(tick int, category, msg string) {
	al.entries[al.head] = ActivityEntry{Tick: tick, Category: category, Message: msg}
	al.head = (al.head + 1) % activityMaxEntries
	if al.count < activityMaxEntries {
		al.count++
	}
}

// Follow pulls any journal entries added since the last call. Per-frame noise
// (input, decay) is skipped.
func (al *ActivityLog) Follow(j *game.Journal) {
	for _, e := range j.Since(al.seen) {
		if msg, ok := describe(e); ok {
			al.Add(e.Tick, e.Category, msg)
		}
	}
	al.seen = j.Total()
}

// Recent returns entries in chronological order (oldest first).
func (al *ActivityLog) Recent() []ActivityEntry {
	result := make([]ActivityEntry, al.count)
	for i := 0; i < al.count; i++ {
		idx := (al.head - al.count + i + activityMaxEntries) % activityMaxEntries
		result[i] = al.entries[idx]
	}
	return result
}

func describe(e game.JournalEntry) (string, bool) {
	switch e.Category {
	case "action":
		if e.Key == "blocked" {
			return "Can't: " + e.Value, true
		}
		return fmt.Sprintf("You %s the cat", verbPast(e.Key)), true
	case "economy":
		switch e.Key {
		case "purchase":
			return fmt.Sprintf("Bought %s for $%.0f", e.Value, e.NumVal), true
		case "insufficient_funds":
			return fmt.Sprintf("Not enough money for %s", e.Value), true
		}
	case "chore":
		switch e.Key {
		case "complete":
			return fmt.Sprintf("Chore done! +$%.0f", e.NumVal), true
		case "abandon":
			return "Chore abandoned (" + e.Value + ")", true
		case "unavailable":
			return "That chore isn't ready yet", true
		}
	case "mood":
		return "Mood: " + e.Value, true
	case "save":
		switch e.Key {
		case "failed":
			return "Save failed (" + e.Value + ")", true
		case "resumed":
			return "Welcome back, " + e.Value, true
		}
	case "setup":
		return "Adopted " + e.Value, true
	}
	return "", false
}

func verbPast(action string) string {
	switch action {
	case "feed":
		return "fed"
	case "play":
		return "played with"
	case "rest":
		return "rested"
	case "clean":
		return "cleaned"
	default:
		return action
	}
}

// Draw renders the last few entries in a strip above the action buttons.
func (al *ActivityLog) Draw(screen *ebiten.Image, x, y, w int) {
	entries := al.Recent()
	if len(entries) > activityVisible {
		entries = entries[len(entries)-activityVisible:]
	}
	h := activityVisible*activityLineHeight + 8
	vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), color.RGBA{R: 24, G: 22, B: 30, A: 200}, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1.0, color.RGBA{R: 80, G: 72, B: 100, A: 200}, false)

	ty := y + 4
	for i, e := range entries {
		if i == len(entries)-1 {
			vector.FillRect(screen, float32(x+2), float32(ty), float32(w-4), activityLineHeight, color.RGBA{R: 50, G: 44, B: 64, A: 160}, false)
		}
		ebitenutil.DebugPrintAt(screen, e.Message, x+8, ty)
		ty += activityLineHeight
	}
}
