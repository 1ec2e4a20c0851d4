package game

import (
	"strings"
	"testing"
)

func TestJournalFilterAndCount(t *testing.T) {
	j := NewJournal(false)
	j.Add(1, "economy", "purchase", "Meowmunch", 5)
	j.Add(2, "action", "feed", "health=100.00", 100)
	j.Add(3, "economy", "purchase", "Furbath", 15)
	j.AddVerbose(4, "input", "click", "click(1,2)", 0)

	if got := j.Count("economy", "purchase"); got != 2 {
		t.Fatalf("purchases = %d", got)
	}
	if got := len(j.Filter("", "")); got != 3 {
		t.Fatalf("verbose entry kept without verbose mode: %d entries", got)
	}
	if got := j.Filter("economy", ""); len(got) != 2 || got[1].Value != "Furbath" || got[1].NumVal != 15 {
		t.Fatalf("economy entries = %+v", got)
	}
	if got := j.Count("", "feed"); got != 1 {
		t.Fatalf("feeds = %d", got)
	}
	if !j.HasEntry("action", "", "health=") {
		t.Fatal("HasEntry missed the feed entry")
	}
	if j.HasEntry("economy", "purchase", "Purrplay") {
		t.Fatal("HasEntry matched a value that was never logged")
	}
	if got := j.Entries()[2].String(); !strings.Contains(got, "economy  purchase         Furbath") {
		t.Fatalf("unexpected line %q", got)
	}
}

func TestBoundedJournalSince(t *testing.T) {
	j := NewBoundedJournal(3, false)
	for i := 0; i < 5; i++ {
		j.Add(i, "decay", "step", "", float64(i))
	}
	if len(j.Entries()) != 3 || j.Total() != 5 {
		t.Fatalf("entries=%d total=%d", len(j.Entries()), j.Total())
	}
	if got := j.Since(0); len(got) != 3 || got[0].Tick != 2 {
		t.Fatalf("Since(0) = %+v", got)
	}
	if got := j.Since(4); len(got) != 1 || got[0].Tick != 4 {
		t.Fatalf("Since(4) = %+v", got)
	}
	if got := j.Since(5); got != nil {
		t.Fatalf("Since(total) = %+v, want nil", got)
	}
}
