package game

import (
	"fmt"
	"strings"
)

// JournalEntry is one recorded gameplay event.
type JournalEntry struct {
	Tick     int
	Category string  // setup, action, economy, decay, chore, store, save, mood
	Key      string  // specific event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[T=00300] economy  purchase         Meowmunch
func (e JournalEntry) String() string {
	return fmt.Sprintf("[T=%05d] %-8s %-16s %s", e.Tick, e.Category, e.Key, e.Value)
}

// Journal collects structured events. With a limit > 0 it keeps only the most
// recent entries; Total keeps counting so callers can follow it with Since.
type Journal struct {
	entries []JournalEntry
	dropped int
	limit   int
	verbose bool
}

// NewJournal creates an unbounded journal. If verbose is true, per-frame
// detail recorded with AddVerbose is kept too.
func NewJournal(verbose bool) *Journal {
	return &Journal{verbose: verbose}
}

// NewBoundedJournal keeps at most limit entries.
func NewBoundedJournal(limit int, verbose bool) *Journal {
	return &Journal{limit: limit, verbose: verbose}
}

// Add records a new entry.
func (j *Journal) Add(tick int, category, key, value string, numVal float64) {
	j.entries = append(j.entries, JournalEntry{
		Tick:     tick,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
	if j.limit > 0 && len(j.entries) > j.limit {
		over := len(j.entries) - j.limit
		j.entries = append(j.entries[:0:0], j.entries[over:]...)
		j.dropped += over
	}
}

// AddVerbose records an entry only when verbose mode is on.
func (j *Journal) AddVerbose(tick int, category, key, value string, numVal float64) {
	if !j.verbose {
		return
	}
	j.Add(tick, category, key, value, numVal)
}

// Entries returns the retained entries.
func (j *Journal) Entries() []JournalEntry {
	return j.entries
}

// Total counts every entry ever added, including dropped ones.
func (j *Journal) Total() int {
	return j.dropped + len(j.entries)
}

// Since returns retained entries added after the first n.
func (j *Journal) Since(n int) []JournalEntry {
	idx := n - j.dropped
	if idx < 0 {
		idx = 0
	}
	if idx >= len(j.entries) {
		return nil
	}
	return j.entries[idx:]
}

// match reports whether e falls under category and key. An empty argument
// matches anything.
func (e JournalEntry) match(category, key string) bool {
	return (category == "" || e.Category == category) && (key == "" || e.Key == key)
}

// Filter returns the retained entries under category and key.
func (j *Journal) Filter(category, key string) []JournalEntry {
	var out []JournalEntry
	for _, e := range j.entries {
		if e.match(category, key) {
			out = append(out, e)
		}
	}
	return out
}

func (j *Journal) Count(category, key string) int {
	n := 0
	for _, e := range j.entries {
		if e.match(category, key) {
			n++
		}
	}
	return n
}

// HasEntry reports whether any retained entry under category and key has a
// value containing substr.
func (j *Journal) HasEntry(category, key, substr string) bool {
	for _, e := range j.entries {
		if e.match(category, key) && strings.Contains(e.Value, substr) {
			return true
		}
	}
	return false
}
