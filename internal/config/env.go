package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env is the process-level configuration read from FELINE_* variables.
type Env struct {
	SavePath    string `env:"FELINE_SAVE_PATH" envDefault:"save_data.json"`
	BalancePath string `env:"FELINE_BALANCE_PATH"`
	// Seed drives chore target placement. 0 picks a time-based seed.
	Seed    int64 `env:"FELINE_SEED" envDefault:"0"`
	TPS     int   `env:"FELINE_TPS" envDefault:"60"`
	Verbose bool  `env:"FELINE_VERBOSE" envDefault:"false"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadEnv parses Env and rejects values the game loop cannot run with.
func LoadEnv() (Env, error) {
	var e Env
	if err := ParseEnv(&e); err != nil {
		return Env{}, err
	}
	if e.SavePath == "" {
		return Env{}, fmt.Errorf("parse env: FELINE_SAVE_PATH must not be empty")
	}
	if e.TPS <= 0 {
		return Env{}, fmt.Errorf("parse env: FELINE_TPS must be > 0, got %d", e.TPS)
	}
	return e, nil
}
