package ui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Garsondee/Feline-Finances/internal/game"
)

var upper = cases.Upper(language.English)

// StatusCard formats the pet and wallet as plain text for sharing.
func StatusCard(snap game.Snapshot) string {
	if snap.Screen != game.ScreenPlay {
		return ""
	}
	p := snap.Pet
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s the %s cat (%s)\n", upper.String(p.Name), p.Type, p.Personality)
	fmt.Fprintf(&sb, "Mood: %s  Health: %.1f\n", snap.Mood, p.Health)
	fmt.Fprintf(&sb, "Hunger %d  Happiness %d  Energy %d  Cleanliness %d\n",
		p.Hunger, p.Happiness, p.Energy, p.Cleanliness)
	fmt.Fprintf(&sb, "Money: $%d  Spent: $%d\n", snap.Economy.Money, snap.Economy.TotalSpent)
	parts := make([]string, 0, len(snap.Catalog))
	for _, e := range snap.Catalog {
		parts = append(parts, fmt.Sprintf("%s x%d", e.Item, snap.Economy.Inventory[e.Item]))
	}
	sb.WriteString("Inventory: " + strings.Join(parts, ", ") + "\n")
	return sb.String()
}

func copyStatus(snap game.Snapshot) error {
	card := StatusCard(snap)
	if card == "" {
		return nil
	}
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard: unsupported on this platform")
	}
	return clipboard.WriteAll(card)
}
