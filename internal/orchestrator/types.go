package orchestrator

import (
	"context"

	"github.com/boardwalk-games/boardwalk/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_agent.go github.com/boardwalk-games/boardwalk/internal/orchestrator Agent

// Agent makes decisions for one player. The orchestrator constrains
// every choice to the engine's legal-actions list; an agent that
// strays is retried and eventually overridden with a deterministic
// fallback.
type Agent interface {
	// ChooseAction picks exactly one of the legal actions
	ChooseAction(ctx context.Context, input *ChooseActionInput) (models.Action, error)

	// Bid returns the player's auction bid for a property; zero passes
	Bid(ctx context.Context, input *BidInput) (int, error)
}

// ChooseActionInput frames one decision point
type ChooseActionInput struct {
	// State is a read-only snapshot
	State *models.GameState

	// PlayerID is the player deciding
	PlayerID string

	// LegalActions are the only valid choices
	LegalActions []models.LegalAction

	// Summary is a textual account of the state for the agent
	Summary string
}

// BidInput frames one auction poll
type BidInput struct {
	// State is a read-only snapshot
	State *models.GameState

	// PlayerID is the player being polled
	PlayerID string

	// Position is the board position under the hammer
	Position int
}

// EventSink consumes the event stream and state snapshots. It emits
// nothing back; rendering is strictly downstream of the engine.
type EventSink interface {
	Observe(state *models.GameState, events []models.Event)
}

// RunOutput summarizes a finished run
type RunOutput struct {
	// State is the final snapshot
	State *models.GameState

	// Winner is the winning player's ID, empty if the turn limit hit
	Winner string

	// Turns is the number of turns played
	Turns int
}
