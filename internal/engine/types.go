package engine

import (
	"github.com/boardwalk-games/boardwalk/internal/dice"
)

// Config holds configuration for an engine instance
type Config struct {
	// Seed drives the dice and the deck shuffles. Zero falls back to
	// a time-based seed; fixed seeds reproduce whole games.
	Seed int64

	// GameID overrides the generated game ID, for reproducible runs
	GameID string

	// Players in seating order
	Players []PlayerSetup

	// StartingBalance defaults to 1500
	StartingBalance int

	// Roller overrides the seeded dice roller, for tests
	Roller dice.Roller

	// Scenario holds optional per-player state overrides applied once
	// against the freshly created state
	Scenario []PlayerOverride
}

// PlayerSetup names one player joining the game
type PlayerSetup struct {
	// ID is the unique identifier for the player
	ID string

	// Name is the display name
	Name string
}

// PlayerOverride seeds one player's state at setup
type PlayerOverride struct {
	// PlayerID selects the player to override
	PlayerID string

	// Balance replaces the starting balance when set
	Balance *int

	// Position replaces the starting position when set
	Position *int

	// InJail jails the player from the start when set
	InJail *bool

	// JailCards sets the Get Out of Jail Free card count when set
	JailCards *int

	// Properties are pre-placed holdings
	Properties []PropertyOverride
}

// PropertyOverride pre-places one owned property
type PropertyOverride struct {
	// Position is the board position; it must be ownable
	Position int

	// Houses is 0-4, or 5 for a hotel. Pre-placed improvements are
	// debited from the bank's supply.
	Houses int

	// Mortgaged marks the property as mortgaged
	Mortgaged bool
}

// Bid is one auction bid. Resolution order follows slice order; the
// first-seen highest strictly-positive bid wins.
type Bid struct {
	// PlayerID is the bidding player
	PlayerID string

	// Amount is the bid; zero means pass
	Amount int
}
