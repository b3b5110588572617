package engine

import (
	"fmt"

	"github.com/boardwalk-games/boardwalk/internal/board"
	"github.com/boardwalk-games/boardwalk/internal/models"
)

// LegalActions enumerates every action valid in the current state.
// The list is the sole contract the agent-facing layer sees: an action
// taken from it (with one of its enumerated positions) always applies
// successfully.
func (e *Engine) LegalActions() []models.LegalAction {
	g := e.state
	if g.Winner != "" {
		return nil
	}

	p := g.CurrentPlayer()

	switch g.Phase {
	case models.PhasePreRoll:
		actions := []models.LegalAction{{
			Type:        models.ActionRollDice,
			Description: "Roll the dice and move",
		}}
		return append(actions, e.managementActions(g, p)...)

	case models.PhaseAwaitingRoll:
		actions := []models.LegalAction{{
			Type:        models.ActionRollDice,
			Description: "Roll for doubles to leave jail",
		}}
		if p.Balance >= board.JailFine {
			actions = append(actions, models.LegalAction{
				Type:        models.ActionPayJailFine,
				Description: fmt.Sprintf("Pay the $%d fine and leave jail", board.JailFine),
			})
		}
		if p.JailCards > 0 {
			actions = append(actions, models.LegalAction{
				Type:        models.ActionUseJailCard,
				Description: "Use a Get Out of Jail Free card",
			})
		}
		return actions

	case models.PhasePurchaseDecision:
		sp := space(p.Position)
		var actions []models.LegalAction
		if p.Balance >= sp.Price {
			actions = append(actions, models.LegalAction{
				Type:        models.ActionBuyProperty,
				Description: fmt.Sprintf("Buy %s for $%d", sp.Name, sp.Price),
				Positions:   []int{p.Position},
			})
		}
		return append(actions, models.LegalAction{
			Type:        models.ActionDeclinePurchase,
			Description: fmt.Sprintf("Decline %s and send it to auction", sp.Name),
		})

	case models.PhaseAuction:
		// Bid collection happens outside the engine
		return nil

	case models.PhasePayingDebt:
		actions := e.raisingActions(g, p)
		if len(g.ActivePlayers()) > 1 {
			actions = append(actions, models.LegalAction{
				Type:        models.ActionProposeTrade,
				Description: "Propose a trade to raise funds",
			})
		}
		return append(actions, models.LegalAction{
			Type:        models.ActionDeclareBankruptcy,
			Description: "Declare bankruptcy",
		})

	case models.PhasePostAction:
		actions := e.managementActions(g, p)
		return append(actions, models.LegalAction{
			Type:        models.ActionEndTurn,
			Description: "End the turn",
		})

	case models.PhaseTrading:
		return []models.LegalAction{
			{Type: models.ActionAcceptTrade, Description: "Accept the trade offer"},
			{Type: models.ActionRejectTrade, Description: "Reject the trade offer"},
		}
	}

	return nil
}

// managementActions are the voluntary build/sell/mortgage/trade moves
// available during pre_roll and post_action.
func (e *Engine) managementActions(g *models.GameState, p *models.Player) []models.LegalAction {
	var actions []models.LegalAction

	if positions := e.buildHousePositions(g, p); len(positions) > 0 {
		actions = append(actions, models.LegalAction{
			Type:        models.ActionBuildHouse,
			Description: "Build a house",
			Positions:   positions,
		})
	}
	if positions := e.buildHotelPositions(g, p); len(positions) > 0 {
		actions = append(actions, models.LegalAction{
			Type:        models.ActionBuildHotel,
			Description: "Build a hotel",
			Positions:   positions,
		})
	}

	actions = append(actions, e.raisingActions(g, p)...)

	if positions := e.unmortgagePositions(g, p); len(positions) > 0 {
		actions = append(actions, models.LegalAction{
			Type:        models.ActionUnmortgage,
			Description: "Lift a mortgage",
			Positions:   positions,
		})
	}
	if len(g.ActivePlayers()) > 1 {
		actions = append(actions, models.LegalAction{
			Type:        models.ActionProposeTrade,
			Description: "Propose a trade",
		})
	}
	return actions
}

// raisingActions are the fund-raising moves also legal while paying
// off a debt.
func (e *Engine) raisingActions(g *models.GameState, p *models.Player) []models.LegalAction {
	var actions []models.LegalAction

	if positions := e.sellHousePositions(g, p); len(positions) > 0 {
		actions = append(actions, models.LegalAction{
			Type:        models.ActionSellHouse,
			Description: "Sell a house",
			Positions:   positions,
		})
	}
	if positions := e.sellHotelPositions(g, p); len(positions) > 0 {
		actions = append(actions, models.LegalAction{
			Type:        models.ActionSellHotel,
			Description: "Sell a hotel",
			Positions:   positions,
		})
	}
	if positions := e.mortgagePositions(g, p); len(positions) > 0 {
		actions = append(actions, models.LegalAction{
			Type:        models.ActionMortgage,
			Description: "Mortgage a property",
			Positions:   positions,
		})
	}
	return actions
}

func (e *Engine) buildHousePositions(g *models.GameState, p *models.Player) []int {
	return e.ownedPositionsWhere(p, func(pos int) bool {
		return e.validateBuildHouse(g, p, pos) == nil
	})
}

func (e *Engine) buildHotelPositions(g *models.GameState, p *models.Player) []int {
	return e.ownedPositionsWhere(p, func(pos int) bool {
		return e.validateBuildHotel(g, p, pos) == nil
	})
}

func (e *Engine) sellHousePositions(g *models.GameState, p *models.Player) []int {
	return e.ownedPositionsWhere(p, func(pos int) bool {
		return e.validateSellHouse(g, p, pos) == nil
	})
}

func (e *Engine) sellHotelPositions(g *models.GameState, p *models.Player) []int {
	return e.ownedPositionsWhere(p, func(pos int) bool {
		return e.validateSellHotel(g, p, pos) == nil
	})
}

func (e *Engine) mortgagePositions(g *models.GameState, p *models.Player) []int {
	return e.ownedPositionsWhere(p, func(pos int) bool {
		return e.validateMortgage(g, p, pos) == nil
	})
}

func (e *Engine) unmortgagePositions(g *models.GameState, p *models.Player) []int {
	return e.ownedPositionsWhere(p, func(pos int) bool {
		return e.validateUnmortgage(g, p, pos) == nil
	})
}

// ownedPositionsWhere filters the player's holdings in board order so
// the enumeration is deterministic.
func (e *Engine) ownedPositionsWhere(p *models.Player, keep func(int) bool) []int {
	var positions []int
	for pos := 0; pos < board.Size; pos++ {
		if p.Owns(pos) && keep(pos) {
			positions = append(positions, pos)
		}
	}
	return positions
}
