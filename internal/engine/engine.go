// Package engine implements the turn state machine: the legal-actions
// query, action validation and application, the automatic
// landing-resolution pipeline, and the auction, trade, and bankruptcy
// protocols. The engine owns the authoritative GameState; every
// successful action replaces it with a fresh deep copy, so snapshots
// handed out to callers are never mutated afterwards.
package engine

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/boardwalk-games/boardwalk/internal/bank"
	"github.com/boardwalk-games/boardwalk/internal/board"
	"github.com/boardwalk-games/boardwalk/internal/cards"
	"github.com/boardwalk-games/boardwalk/internal/dice"
	"github.com/boardwalk-games/boardwalk/internal/models"
)

// Define errors
var (
	// ErrIllegalAction rejects an action whose preconditions fail.
	// The state is left unchanged; the same actor chooses again.
	ErrIllegalAction = errors.New("illegal action")

	// ErrUnknownAction rejects an unrecognized or malformed action
	ErrUnknownAction = errors.New("unknown action")

	// ErrInvariant reports a caller contract breach, such as a player
	// ID that does not exist. Not a recoverable game condition.
	ErrInvariant = errors.New("invariant violation")
)

// DefaultStartingBalance is the classic starting cash
const DefaultStartingBalance = 1500

// Engine drives one game. Not safe for concurrent use: there is
// exactly one logical writer, the orchestrator.
type Engine struct {
	roller dice.Roller
	random *rand.Rand
	state  *models.GameState
}

// New creates an engine with a freshly set-up game
func New(cfg *Config) (*Engine, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if len(cfg.Players) < 2 {
		return nil, errors.New("at least two players are required")
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.New(&dice.Config{Seed: seed})
	}

	// The shuffle source is separate from the dice so that injecting
	// a test roller does not disturb deck order.
	random := rand.New(rand.NewSource(seed))

	gameID := cfg.GameID
	if gameID == "" {
		gameID = uuid.New().String()
	}

	balance := cfg.StartingBalance
	if balance == 0 {
		balance = DefaultStartingBalance
	}

	state := &models.GameState{
		ID:             gameID,
		Phase:          models.PhasePreRoll,
		BankHouses:     bank.TotalHouses,
		BankHotels:     bank.TotalHotels,
		Chance:         cards.NewDeck(len(cards.Chance()), random),
		CommunityChest: cards.NewDeck(len(cards.CommunityChest()), random),
		Events:         []models.Event{},
	}

	seen := make(map[string]bool, len(cfg.Players))
	for _, setup := range cfg.Players {
		if setup.ID == "" {
			return nil, errors.New("player ID cannot be empty")
		}
		if seen[setup.ID] {
			return nil, fmt.Errorf("duplicate player ID %q", setup.ID)
		}
		seen[setup.ID] = true

		state.Players = append(state.Players, &models.Player{
			ID:         setup.ID,
			Name:       setup.Name,
			Balance:    balance,
			Properties: map[int]*models.PropertyState{},
		})
	}

	if err := applyScenario(state, cfg.Scenario); err != nil {
		return nil, err
	}

	if state.CurrentPlayer().InJail {
		state.Phase = models.PhaseAwaitingRoll
	}

	return &Engine{
		roller: roller,
		random: random,
		state:  state,
	}, nil
}

// State returns the authoritative snapshot. Callers hold it read-only;
// the engine never mutates a snapshot it has handed out.
func (e *Engine) State() *models.GameState {
	return e.state
}

// GameOver reports whether a winner has been declared
func (e *Engine) GameOver() bool {
	return e.state.Winner != ""
}

// Apply validates and applies one action. On success it returns the
// new snapshot plus the events the action emitted; on failure the
// original state is returned untouched.
func (e *Engine) Apply(action models.Action) (*models.GameState, []models.Event, error) {
	next := e.state.Clone()

	if err := e.apply(next, action); err != nil {
		return e.state, nil, err
	}

	events := next.Events[len(e.state.Events):]
	e.state = next
	return next, events, nil
}

// AdvanceTurn moves a completed turn to the next non-bankrupt player,
// performing the end-of-turn winner check.
func (e *Engine) AdvanceTurn() (*models.GameState, []models.Event, error) {
	if e.GameOver() {
		return e.state, nil, fmt.Errorf("%w: the game is over", ErrIllegalAction)
	}
	if e.state.Phase != models.PhaseTurnComplete {
		return e.state, nil, fmt.Errorf("%w: turn is not complete", ErrIllegalAction)
	}

	next := e.state.Clone()

	next.CurrentPlayer().DoublesCount = 0
	next.LastRoll = nil
	next.Turn++

	if declareWinnerIfDecided(next) {
		events := next.Events[len(e.state.Events):]
		e.state = next
		return next, events, nil
	}

	for {
		next.Current = (next.Current + 1) % len(next.Players)
		if !next.CurrentPlayer().Bankrupt {
			break
		}
	}

	if next.CurrentPlayer().InJail {
		next.Phase = models.PhaseAwaitingRoll
	} else {
		next.Phase = models.PhasePreRoll
	}

	events := next.Events[len(e.state.Events):]
	e.state = next
	return next, events, nil
}

// declareWinnerIfDecided sets the winner when exactly one non-bankrupt
// player remains and reports whether the game is over.
func declareWinnerIfDecided(g *models.GameState) bool {
	if g.Winner != "" {
		return true
	}
	active := g.ActivePlayers()
	if len(active) != 1 {
		return false
	}
	g.Winner = active[0].ID
	g.Record(models.Event{
		Type:        models.EventGameOver,
		PlayerID:    active[0].ID,
		Description: fmt.Sprintf("%s wins the game", active[0].Name),
	})
	return true
}

// space is shorthand for the catalog lookup
func space(position int) *models.Space {
	return board.Space(position)
}
