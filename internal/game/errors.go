package game

import "errors"

var (
	// ErrInsufficientFunds is returned by a purchase the wallet cannot cover.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrUnknownItem is returned for item names outside the catalog.
	ErrUnknownItem = errors.New("unknown item")
	// ErrMissingItem is returned when a gated action has nothing to consume.
	ErrMissingItem = errors.New("missing item")
	// ErrChoreNotImplemented marks chore kinds with no minigame body.
	ErrChoreNotImplemented = errors.New("chore not implemented")
	// ErrInvalidPet is returned when pet fields break an invariant.
	ErrInvalidPet = errors.New("invalid pet")
	// ErrInvalidEconomy is returned when wallet or inventory values break an invariant.
	ErrInvalidEconomy = errors.New("invalid economy")
)
