// Package random is a baseline automated agent. It exercises only the
// legal-actions contract: every choice comes from the list the engine
// enumerated, with positions picked from the enumerated values.
package random

import (
	"context"
	"errors"
	"math/rand"

	"github.com/boardwalk-games/boardwalk/internal/board"
	"github.com/boardwalk-games/boardwalk/internal/models"
	"github.com/boardwalk-games/boardwalk/internal/orchestrator"
)

// Config for the random agent
type Config struct {
	// Seed makes the agent reproducible. Zero is a valid fixed seed
	// here; the caller decides.
	Seed int64
}

// Agent picks uniformly among legal actions
type Agent struct {
	random *rand.Rand
}

// New creates a random agent
func New(cfg *Config) *Agent {
	var seed int64
	if cfg != nil {
		seed = cfg.Seed
	}
	return &Agent{
		random: rand.New(rand.NewSource(seed)),
	}
}

// ChooseAction picks one legal action at random. Trades are never
// proposed; everything else is fair game.
func (a *Agent) ChooseAction(_ context.Context, input *orchestrator.ChooseActionInput) (models.Action, error) {
	var candidates []models.LegalAction
	for _, la := range input.LegalActions {
		if la.Type == models.ActionProposeTrade {
			continue
		}
		candidates = append(candidates, la)
	}
	if len(candidates) == 0 {
		return models.Action{}, errors.New("no choosable action")
	}

	chosen := candidates[a.random.Intn(len(candidates))]
	action := models.Action{Type: chosen.Type}
	if len(chosen.Positions) > 0 {
		action.Position = chosen.Positions[a.random.Intn(len(chosen.Positions))]
	}
	return action, nil
}

// Bid offers a random fraction of the list price, bounded by the
// player's balance, passing about half the time.
func (a *Agent) Bid(_ context.Context, input *orchestrator.BidInput) (int, error) {
	p, ok := input.State.PlayerByID(input.PlayerID)
	if !ok {
		return 0, errors.New("unknown player")
	}
	if a.random.Intn(2) == 0 {
		return 0, nil
	}

	price := board.Space(input.Position).Price
	limit := price
	if p.Balance < limit {
		limit = p.Balance
	}
	if limit <= 0 {
		return 0, nil
	}
	return a.random.Intn(limit) + 1, nil
}
