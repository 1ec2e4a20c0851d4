package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Balance holds the tunable numbers of the simulation. Every zero field is
// filled from the defaults by ApplyDefaults, so a balance file only needs the
// values it overrides.
type Balance struct {
	StartingMoney int            `yaml:"starting_money"`
	Prices        map[string]int `yaml:"prices"`
	Timers        Timers         `yaml:"timers"`
	Chores        Chores         `yaml:"chores"`
}

// Timers are expressed in milliseconds of gameplay.
type Timers struct {
	DecayIntervalMS    int `yaml:"decay_interval_ms"`
	AutosaveIntervalMS int `yaml:"autosave_interval_ms"`
	StoreMessageMS     int `yaml:"store_message_ms"`
}

type Chores struct {
	TrashCount  int `yaml:"trash_count"`
	TrashReward int `yaml:"trash_reward"`
}

const (
	DefaultStartingMoney      = 50
	DefaultDecayIntervalMS    = 5000
	DefaultAutosaveIntervalMS = 10000
	DefaultStoreMessageMS     = 2000
	DefaultTrashCount         = 5
	DefaultTrashReward        = 5
)

// DefaultPrices is the Whiskermart price table.
func DefaultPrices() map[string]int {
	return map[string]int{
		"Meowmunch": 5,
		"Purrplay":  10,
		"Furbath":   15,
	}
}

// Default returns the stock balance.
func Default() Balance {
	var b Balance
	b.ApplyDefaults()
	return b
}

func (t *Timers) ApplyDefaults() {
	if t.DecayIntervalMS == 0 {
		t.DecayIntervalMS = DefaultDecayIntervalMS
	}
	if t.AutosaveIntervalMS == 0 {
		t.AutosaveIntervalMS = DefaultAutosaveIntervalMS
	}
	if t.StoreMessageMS == 0 {
		t.StoreMessageMS = DefaultStoreMessageMS
	}
}

func (c *Chores) ApplyDefaults() {
	if c.TrashCount == 0 {
		c.TrashCount = DefaultTrashCount
	}
	if c.TrashReward == 0 {
		c.TrashReward = DefaultTrashReward
	}
}

func (b *Balance) ApplyDefaults() {
	if b.StartingMoney == 0 {
		b.StartingMoney = DefaultStartingMoney
	}
	if b.Prices == nil {
		b.Prices = map[string]int{}
	}
	for item, price := range DefaultPrices() {
		if b.Prices[item] == 0 {
			b.Prices[item] = price
		}
	}
	b.Timers.ApplyDefaults()
	b.Chores.ApplyDefaults()
}

// Validate rejects balances the simulation cannot honour.
func (b Balance) Validate() error {
	defaults := DefaultPrices()
	for item, price := range b.Prices {
		if _, ok := defaults[item]; !ok {
			return fmt.Errorf("balance: unknown item %q in prices", item)
		}
		if price <= 0 {
			return fmt.Errorf("balance: price of %s must be > 0, got %d", item, price)
		}
	}
	if b.StartingMoney < 0 {
		return fmt.Errorf("balance: starting_money must be >= 0, got %d", b.StartingMoney)
	}
	if b.Timers.DecayIntervalMS < 0 || b.Timers.AutosaveIntervalMS < 0 || b.Timers.StoreMessageMS < 0 {
		return fmt.Errorf("balance: timers must be >= 0")
	}
	if b.Chores.TrashCount < 0 || b.Chores.TrashReward < 0 {
		return fmt.Errorf("balance: chores must be >= 0")
	}
	return nil
}

func (t Timers) DecayInterval() time.Duration {
	return time.Duration(t.DecayIntervalMS) * time.Millisecond
}

func (t Timers) AutosaveInterval() time.Duration {
	return time.Duration(t.AutosaveIntervalMS) * time.Millisecond
}

func (t Timers) StoreMessage() time.Duration {
	return time.Duration(t.StoreMessageMS) * time.Millisecond
}

// LoadBalance reads a YAML balance file. An empty path yields the defaults.
func LoadBalance(path string) (Balance, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Balance{}, fmt.Errorf("balance: %w", err)
	}
	var bal Balance
	if err := yaml.Unmarshal(b, &bal); err != nil {
		return Balance{}, fmt.Errorf("balance: decode %s: %w", path, err)
	}
	bal.ApplyDefaults()
	if err := bal.Validate(); err != nil {
		return Balance{}, err
	}
	return bal, nil
}
