package game

import (
	"fmt"
	"sort"
)

// Item is a consumable sold at Whiskermart.
type Item string

const (
	Meowmunch Item = "Meowmunch"
	Purrplay  Item = "Purrplay"
	Furbath   Item = "Furbath"
)

// catalogOrder is the shelf order; the catalog set itself never changes.
var catalogOrder = []Item{Meowmunch, Purrplay, Furbath}

// ParseItem maps a persisted item name to a catalog item.
func ParseItem(s string) (Item, error) {
	for _, it := range catalogOrder {
		if string(it) == s {
			return it, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownItem, s)
}

// CatalogEntry is one shelf row.
type CatalogEntry struct {
	Item  Item
	Price int
}

// Catalog is the immutable price table.
type Catalog struct {
	entries []CatalogEntry
}

// NewCatalog builds the price table from a name->price map. Every catalog item
// must be priced and nothing else may be.
func NewCatalog(prices map[string]int) (Catalog, error) {
	entries := make([]CatalogEntry, 0, len(catalogOrder))
	for _, it := range catalogOrder {
		p, ok := prices[string(it)]
		if !ok {
			return Catalog{}, fmt.Errorf("catalog: no price for %s", it)
		}
		if p <= 0 {
			return Catalog{}, fmt.Errorf("catalog: price of %s must be > 0, got %d", it, p)
		}
		entries = append(entries, CatalogEntry{Item: it, Price: p})
	}
	if len(prices) != len(catalogOrder) {
		for name := range prices {
			if _, err := ParseItem(name); err != nil {
				return Catalog{}, fmt.Errorf("catalog: %w", err)
			}
		}
	}
	return Catalog{entries: entries}, nil
}

// DefaultCatalog returns {Meowmunch:5, Purrplay:10, Furbath:15}.
func DefaultCatalog() Catalog {
	return Catalog{entries: []CatalogEntry{
		{Item: Meowmunch, Price: 5},
		{Item: Purrplay, Price: 10},
		{Item: Furbath, Price: 15},
	}}
}

// Entries returns the shelf rows in display order.
func (c Catalog) Entries() []CatalogEntry {
	out := make([]CatalogEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Price reports the price of item.
func (c Catalog) Price(item Item) (int, bool) {
	for _, e := range c.entries {
		if e.Item == item {
			return e.Price, true
		}
	}
	return 0, false
}

// --- Economy ---

// Economy is the persisted wallet state. Inventory is never nil in a valid
// Economy.
type Economy struct {
	Money      int
	TotalSpent int
	Inventory  map[Item]int
}

// Clone deep-copies the inventory map.
func (e Economy) Clone() Economy {
	inv := make(map[Item]int, len(e.Inventory))
	for k, v := range e.Inventory {
		inv[k] = v
	}
	e.Inventory = inv
	return e
}

// Validate checks the wallet invariants.
func (e Economy) Validate() error {
	if e.Money < 0 {
		return fmt.Errorf("%w: money %d < 0", ErrInvalidEconomy, e.Money)
	}
	if e.TotalSpent < 0 {
		return fmt.Errorf("%w: total_spent %d < 0", ErrInvalidEconomy, e.TotalSpent)
	}
	// The slot always carries an inventory object, even an empty one.
	if e.Inventory == nil {
		return fmt.Errorf("%w: no inventory", ErrInvalidEconomy)
	}
	items := make([]string, 0, len(e.Inventory))
	for it := range e.Inventory {
		items = append(items, string(it))
	}
	sort.Strings(items)
	for _, name := range items {
		if _, err := ParseItem(name); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidEconomy, err)
		}
		if n := e.Inventory[Item(name)]; n < 0 {
			return fmt.Errorf("%w: %s count %d < 0", ErrInvalidEconomy, name, n)
		}
	}
	return nil
}

// --- Ledger ---

// Ledger applies purchases, consumption and rewards to an Economy.
type Ledger struct {
	eco     Economy
	catalog Catalog
}

// NewLedger takes ownership of a copy of eco.
func NewLedger(catalog Catalog, eco Economy) *Ledger {
	return &Ledger{eco: eco.Clone(), catalog: catalog}
}

// Economy returns a copy of the current wallet.
func (l *Ledger) Economy() Economy { return l.eco.Clone() }

func (l *Ledger) Money() int      { return l.eco.Money }
func (l *Ledger) TotalSpent() int { return l.eco.TotalSpent }

// Count returns the stock of item; absent items count as zero.
func (l *Ledger) Count(item Item) int { return l.eco.Inventory[item] }

// CanAfford reports whether a purchase of item would succeed.
func (l *Ledger) CanAfford(item Item) bool {
	price, ok := l.catalog.Price(item)
	return ok && l.eco.Money >= price
}

// Purchase buys one item at its catalog price. On failure nothing changes.
func (l *Ledger) Purchase(item Item) (int, error) {
	price, ok := l.catalog.Price(item)
	if !ok {
		return 0, fmt.Errorf("purchase %q: %w", item, ErrUnknownItem)
	}
	if l.eco.Money < price {
		return price, fmt.Errorf("purchase %s for %d with %d: %w", item, price, l.eco.Money, ErrInsufficientFunds)
	}
	l.eco.Money -= price
	l.eco.TotalSpent += price
	l.eco.Inventory[item]++
	return price, nil
}

// Consume removes one item from stock.
func (l *Ledger) Consume(item Item) error {
	if l.eco.Inventory[item] <= 0 {
		return fmt.Errorf("consume %s: %w", item, ErrMissingItem)
	}
	l.eco.Inventory[item]--
	return nil
}

// CreditReward adds earned money. total_spent is untouched.
func (l *Ledger) CreditReward(amount int) {
	if amount <= 0 {
		return
	}
	l.eco.Money += amount
}
