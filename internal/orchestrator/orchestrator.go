// Package orchestrator drives one game to completion: it repeatedly
// asks the engine for legal actions, obtains a choice from the
// deciding player's agent, applies it, and handles the flows the
// engine deliberately leaves external — auction bid collection, trade
// response routing, and turn advancement. External-layer failures
// (agent errors, invalid choices) never reach the engine: after a
// bounded number of attempts a deterministic fallback action is
// applied instead.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/boardwalk-games/boardwalk/internal/engine"
	"github.com/boardwalk-games/boardwalk/internal/models"
	gameRepo "github.com/boardwalk-games/boardwalk/internal/repositories/game"
)

// Config holds configuration for the orchestrator
type Config struct {
	// Engine is the game being driven
	Engine *engine.Engine

	// Agents maps player IDs to their deciders
	Agents map[string]Agent

	// Sink receives events and snapshots; optional
	Sink EventSink

	// Repo persists snapshots and event history; optional
	Repo gameRepo.Repository

	// MaxTurns stops a game that will not end; defaults to 500
	MaxTurns int

	// MaxAttempts is how many invalid agent choices are tolerated
	// per decision before the fallback applies; defaults to 3
	MaxAttempts int
}

// Orchestrator drives one game
type Orchestrator struct {
	engine      *engine.Engine
	agents      map[string]Agent
	sink        EventSink
	repo        gameRepo.Repository
	maxTurns    int
	maxAttempts int
}

// New creates an orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Engine == nil {
		return nil, errors.New("engine cannot be nil")
	}
	for _, p := range cfg.Engine.State().Players {
		if cfg.Agents[p.ID] == nil {
			return nil, fmt.Errorf("no agent for player %q", p.ID)
		}
	}

	maxTurns := cfg.MaxTurns
	if maxTurns == 0 {
		maxTurns = 500
	}
	maxAttempts := cfg.MaxAttempts
	if maxAttempts == 0 {
		maxAttempts = 3
	}

	return &Orchestrator{
		engine:      cfg.Engine,
		agents:      cfg.Agents,
		sink:        cfg.Sink,
		repo:        cfg.Repo,
		maxTurns:    maxTurns,
		maxAttempts: maxAttempts,
	}, nil
}

// Run plays the game to completion or the turn limit
func (o *Orchestrator) Run(ctx context.Context) (*RunOutput, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		state := o.engine.State()
		if o.engine.GameOver() || state.Turn >= o.maxTurns {
			break
		}

		var err error
		switch state.Phase {
		case models.PhaseTurnComplete:
			err = o.advanceTurn(ctx)
		case models.PhaseAuction:
			err = o.runAuction(ctx, state)
		default:
			err = o.runDecision(ctx, state)
		}
		if err != nil {
			return nil, err
		}
	}

	state := o.engine.State()
	return &RunOutput{
		State:  state,
		Winner: state.Winner,
		Turns:  state.Turn,
	}, nil
}

func (o *Orchestrator) advanceTurn(ctx context.Context) error {
	state, events, err := o.engine.AdvanceTurn()
	if err != nil {
		return err
	}
	o.forward(ctx, state, events)
	return nil
}

// runAuction polls every non-bankrupt player for a bid in seating
// order and feeds the collection to the engine for resolution.
func (o *Orchestrator) runAuction(ctx context.Context, state *models.GameState) error {
	position := state.CurrentPlayer().Position

	var bids []engine.Bid
	for _, p := range state.ActivePlayers() {
		amount, err := o.agents[p.ID].Bid(ctx, &BidInput{
			State:    state,
			PlayerID: p.ID,
			Position: position,
		})
		if err != nil || amount < 0 {
			// A failing bidder passes
			amount = 0
		}
		if amount > p.Balance {
			amount = p.Balance
		}
		bids = append(bids, engine.Bid{PlayerID: p.ID, Amount: amount})
	}

	next, events, err := o.engine.ResolveAuction(bids)
	if err != nil {
		return err
	}
	o.forward(ctx, next, events)
	return nil
}

// runDecision asks the deciding player's agent for one action and
// applies it, falling back deterministically after repeated failures.
func (o *Orchestrator) runDecision(ctx context.Context, state *models.GameState) error {
	legal := o.engine.LegalActions()
	if len(legal) == 0 {
		return fmt.Errorf("no legal actions in phase %s", state.Phase)
	}

	deciderID := state.CurrentPlayer().ID
	if state.Phase == models.PhaseTrading && state.Trade != nil {
		deciderID = state.Trade.To
	}

	input := &ChooseActionInput{
		State:        state,
		PlayerID:     deciderID,
		LegalActions: legal,
		Summary:      summarize(state),
	}

	for attempt := 0; attempt < o.maxAttempts; attempt++ {
		action, err := o.agents[deciderID].ChooseAction(ctx, input)
		if err != nil {
			log.Printf("agent for %s failed to choose: %v", deciderID, err)
			continue
		}

		next, events, applyErr := o.engine.Apply(action)
		if applyErr != nil {
			log.Printf("agent for %s chose an invalid action %s: %v", deciderID, action.Type, applyErr)
			continue
		}
		o.forward(ctx, next, events)
		return nil
	}

	// Deterministic fallback keeps the game moving
	next, events, err := o.engine.Apply(fallbackAction(state.Phase))
	if err != nil {
		return fmt.Errorf("fallback action failed in phase %s: %w", state.Phase, err)
	}
	o.forward(ctx, next, events)
	return nil
}

// fallbackAction is the forced choice applied when an agent cannot
// produce a valid one.
func fallbackAction(phase models.TurnPhase) models.Action {
	switch phase {
	case models.PhasePreRoll, models.PhaseAwaitingRoll:
		return models.Action{Type: models.ActionRollDice}
	case models.PhasePurchaseDecision:
		return models.Action{Type: models.ActionDeclinePurchase}
	case models.PhaseTrading:
		return models.Action{Type: models.ActionRejectTrade}
	case models.PhasePayingDebt:
		return models.Action{Type: models.ActionDeclareBankruptcy}
	default:
		return models.Action{Type: models.ActionEndTurn}
	}
}

// forward hands events to the sink and persists the snapshot
func (o *Orchestrator) forward(ctx context.Context, state *models.GameState, events []models.Event) {
	if o.sink != nil && len(events) > 0 {
		o.sink.Observe(state, events)
	}
	if o.repo != nil {
		if err := o.repo.SaveGame(ctx, &gameRepo.SaveGameInput{State: state}); err != nil {
			log.Printf("failed to save game %s: %v", state.ID, err)
		}
		if len(events) > 0 {
			err := o.repo.AppendEvents(ctx, &gameRepo.AppendEventsInput{
				GameID: state.ID,
				Events: events,
			})
			if err != nil {
				log.Printf("failed to append events for game %s: %v", state.ID, err)
			}
		}
	}
}

// summarize renders a short textual account of the state for agents
func summarize(state *models.GameState) string {
	var b strings.Builder
	fmt.Fprintf(&b, "turn %d, phase %s\n", state.Turn, state.Phase)
	for _, p := range state.Players {
		marker := " "
		if p.ID == state.CurrentPlayer().ID {
			marker = "*"
		}
		status := ""
		if p.Bankrupt {
			status = " (bankrupt)"
		} else if p.InJail {
			status = " (in jail)"
		}
		fmt.Fprintf(&b, "%s %s: $%d at %d, %d properties%s\n", marker, p.Name, p.Balance, p.Position, len(p.Properties), status)
	}
	if state.Debt != nil {
		fmt.Fprintf(&b, "pending debt: $%d to %s (%s)\n", state.Debt.Amount, state.Debt.Creditor, state.Debt.Reason)
	}
	return b.String()
}
