package engine

import (
	"fmt"
	"strings"

	"github.com/boardwalk-games/boardwalk/internal/bank"
	"github.com/boardwalk-games/boardwalk/internal/board"
	"github.com/boardwalk-games/boardwalk/internal/models"
)

// validateTrade checks a proposal structurally: correct ownership on
// both sides, no houses riding along, and money within each balance.
// Mortgaged properties may be traded; improved ones may not.
func validateTrade(g *models.GameState, offer *models.TradeOffer) error {
	if offer == nil {
		return fmt.Errorf("%w: propose_trade requires a trade offer", ErrUnknownAction)
	}

	from, ok := g.PlayerByID(offer.From)
	if !ok {
		return fmt.Errorf("%w: unknown player %q", ErrInvariant, offer.From)
	}
	to, ok := g.PlayerByID(offer.To)
	if !ok {
		return fmt.Errorf("%w: unknown player %q", ErrInvariant, offer.To)
	}
	if offer.From == offer.To {
		return fmt.Errorf("%w: cannot trade with yourself", ErrIllegalAction)
	}
	if from.Bankrupt || to.Bankrupt {
		return fmt.Errorf("%w: bankrupt players cannot trade", ErrIllegalAction)
	}
	if offer.OfferedMoney < 0 || offer.RequestedMoney < 0 {
		return fmt.Errorf("%w: trade money cannot be negative", ErrIllegalAction)
	}
	if offer.OfferedMoney > from.Balance {
		return fmt.Errorf("%w: %s cannot offer more than their balance", ErrIllegalAction, from.Name)
	}
	if offer.RequestedMoney > to.Balance {
		return fmt.Errorf("%w: %s cannot give more than their balance", ErrIllegalAction, to.Name)
	}
	if len(offer.OfferedProperties)+len(offer.RequestedProperties)+offer.OfferedMoney+offer.RequestedMoney == 0 {
		return fmt.Errorf("%w: a trade must exchange something", ErrIllegalAction)
	}

	if err := validateTradeSide(from, offer.OfferedProperties); err != nil {
		return err
	}
	return validateTradeSide(to, offer.RequestedProperties)
}

func validateTradeSide(p *models.Player, positions []int) error {
	for _, pos := range positions {
		if !board.Valid(pos) {
			return fmt.Errorf("%w: position %d is off the board", ErrIllegalAction, pos)
		}
		ps, ok := p.Properties[pos]
		if !ok {
			return fmt.Errorf("%w: %s does not own %s", ErrIllegalAction, p.Name, space(pos).Name)
		}
		if ps.Houses > 0 {
			return fmt.Errorf("%w: %s has houses and cannot be traded", ErrIllegalAction, space(pos).Name)
		}
	}
	return nil
}

func (e *Engine) applyProposeTrade(g *models.GameState, offer *models.TradeOffer) error {
	if err := requirePhase(g, models.PhasePreRoll, models.PhasePayingDebt, models.PhasePostAction); err != nil {
		return err
	}
	if g.Trade != nil {
		return fmt.Errorf("%w: a trade is already outstanding", ErrIllegalAction)
	}
	if offer != nil && offer.From != g.CurrentPlayer().ID {
		return fmt.Errorf("%w: only the current player may propose a trade", ErrIllegalAction)
	}
	if err := validateTrade(g, offer); err != nil {
		return err
	}

	g.Trade = offer.Clone()
	g.TradeReturn = g.Phase
	g.Phase = models.PhaseTrading
	from, _ := g.PlayerByID(offer.From)
	to, _ := g.PlayerByID(offer.To)
	g.Record(models.Event{
		Type:        models.EventTradeProposed,
		PlayerID:    offer.From,
		OtherID:     offer.To,
		Description: fmt.Sprintf("%s proposes a trade to %s: %s", from.Name, to.Name, describeTrade(offer)),
	})
	return nil
}

// applyAcceptTrade performs the atomic bilateral transfer. The offer
// is revalidated first; a stale offer rejects without mutation.
func (e *Engine) applyAcceptTrade(g *models.GameState) error {
	if err := requirePhase(g, models.PhaseTrading); err != nil {
		return err
	}
	offer := g.Trade
	if err := validateTrade(g, offer); err != nil {
		return err
	}

	from, _ := g.PlayerByID(offer.From)
	to, _ := g.PlayerByID(offer.To)

	if offer.OfferedMoney > 0 {
		bank.ForceTransfer(g, offer.From, offer.To, offer.OfferedMoney)
	}
	if offer.RequestedMoney > 0 {
		bank.ForceTransfer(g, offer.To, offer.From, offer.RequestedMoney)
	}
	for _, pos := range offer.OfferedProperties {
		bank.TransferProperty(g, offer.From, offer.To, pos)
	}
	for _, pos := range offer.RequestedProperties {
		bank.TransferProperty(g, offer.To, offer.From, pos)
	}

	description := fmt.Sprintf("%s and %s complete a trade: %s", from.Name, to.Name, describeTrade(offer))
	g.Record(models.Event{
		Type:        models.EventTradeCompleted,
		PlayerID:    offer.From,
		OtherID:     offer.To,
		Description: description,
	})

	g.Trade = nil
	g.Phase = g.TradeReturn
	g.TradeReturn = ""

	// A trade accepted while paying off a debt may settle it
	if g.Phase == models.PhasePayingDebt {
		e.settleDebtProgress(g, g.CurrentPlayer())
	}
	return nil
}

func (e *Engine) applyRejectTrade(g *models.GameState) error {
	if err := requirePhase(g, models.PhaseTrading); err != nil {
		return err
	}
	offer := g.Trade

	from, _ := g.PlayerByID(offer.From)
	to, _ := g.PlayerByID(offer.To)
	g.Record(models.Event{
		Type:        models.EventTradeRejected,
		PlayerID:    offer.To,
		OtherID:     offer.From,
		Description: fmt.Sprintf("%s rejects the trade from %s", to.Name, from.Name),
	})

	g.Trade = nil
	g.Phase = g.TradeReturn
	g.TradeReturn = ""
	return nil
}

// describeTrade renders a one-line human-readable summary of an offer
func describeTrade(offer *models.TradeOffer) string {
	side := func(positions []int, money int) string {
		var parts []string
		for _, pos := range positions {
			parts = append(parts, space(pos).Name)
		}
		if money > 0 {
			parts = append(parts, fmt.Sprintf("$%d", money))
		}
		if len(parts) == 0 {
			return "nothing"
		}
		return strings.Join(parts, ", ")
	}
	return fmt.Sprintf("%s for %s", side(offer.OfferedProperties, offer.OfferedMoney), side(offer.RequestedProperties, offer.RequestedMoney))
}
