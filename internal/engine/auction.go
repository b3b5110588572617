package engine

import (
	"fmt"

	"github.com/boardwalk-games/boardwalk/internal/bank"
	"github.com/boardwalk-games/boardwalk/internal/models"
)

// ResolveAuction settles the auction for the space the current player
// declined. Bid collection is the orchestrator's job; resolution picks
// the first-seen highest strictly-positive bid in slice order. A sweep
// of all-zero bids leaves the property unowned for this pass.
func (e *Engine) ResolveAuction(bids []Bid) (*models.GameState, []models.Event, error) {
	if e.state.Phase != models.PhaseAuction {
		return e.state, nil, fmt.Errorf("%w: no auction is open", ErrIllegalAction)
	}

	next := e.state.Clone()
	position := next.CurrentPlayer().Position
	sp := space(position)

	var winner *models.Player
	highest := 0
	for _, bid := range bids {
		p, ok := next.PlayerByID(bid.PlayerID)
		if !ok {
			return e.state, nil, fmt.Errorf("%w: unknown bidder %q", ErrInvariant, bid.PlayerID)
		}
		if bid.Amount < 0 {
			return e.state, nil, fmt.Errorf("%w: negative bid from %s", ErrIllegalAction, p.Name)
		}
		if p.Bankrupt || bid.Amount == 0 {
			continue
		}
		if bid.Amount > p.Balance {
			return e.state, nil, fmt.Errorf("%w: %s bid more than their balance", ErrIllegalAction, p.Name)
		}
		// Strictly greater: ties go to the first-seen bidder
		if bid.Amount > highest {
			highest = bid.Amount
			winner = p
		}
	}

	if winner == nil {
		next.Record(models.Event{
			Type:        models.EventAuctionNoBids,
			Position:    position,
			Description: fmt.Sprintf("no bids for %s; it stays with the bank", sp.Name),
		})
	} else {
		bank.Debit(next, winner.ID, models.CreditorBank, highest, "auction purchase")
		bank.GrantProperty(next, winner.ID, position)
		next.Record(models.Event{
			Type:        models.EventAuctionWon,
			PlayerID:    winner.ID,
			Position:    position,
			Amount:      highest,
			Description: fmt.Sprintf("%s wins the auction for %s at $%d", winner.Name, sp.Name, highest),
		})
	}

	next.Phase = models.PhasePostAction
	events := next.Events[len(e.state.Events):]
	e.state = next
	return next, events, nil
}
