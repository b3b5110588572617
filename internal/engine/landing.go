package engine

import (
	"fmt"

	"github.com/boardwalk-games/boardwalk/internal/bank"
	"github.com/boardwalk-games/boardwalk/internal/board"
	"github.com/boardwalk-games/boardwalk/internal/cards"
	"github.com/boardwalk-games/boardwalk/internal/models"
	"github.com/boardwalk-games/boardwalk/internal/rent"
)

// resolveLanding evaluates the space the player has just arrived on.
// It is automatic: no player choice is solicited until it settles on a
// phase. Card-driven moves re-enter it, looping until a non-moving
// effect lands. rentMultiplier is the card-forced factor, 0 normally.
func (e *Engine) resolveLanding(g *models.GameState, p *models.Player, roll models.DiceRoll, rentMultiplier int) error {
	sp := space(p.Position)
	g.Record(models.Event{
		Type:        models.EventLanded,
		PlayerID:    p.ID,
		Position:    p.Position,
		Description: fmt.Sprintf("%s lands on %s", p.Name, sp.Name),
	})

	switch sp.Kind {
	case models.SpaceKindGo, models.SpaceKindJail, models.SpaceKindFreeParking:
		g.Phase = models.PhasePostAction
		return nil

	case models.SpaceKindGoToJail:
		sendToJail(g, p, "landed on Go To Jail")
		return nil

	case models.SpaceKindTax:
		bank.Debit(g, p.ID, models.CreditorBank, sp.TaxAmount, sp.Name)
		g.Record(models.Event{
			Type:        models.EventTaxPaid,
			PlayerID:    p.ID,
			Position:    p.Position,
			Amount:      sp.TaxAmount,
			Description: fmt.Sprintf("%s pays %s of $%d", p.Name, sp.Name, sp.TaxAmount),
		})
		settleAfterCharge(g)
		return nil

	case models.SpaceKindChance:
		return e.resolveCardDraw(g, p, roll, g.Chance, cards.Chance())

	case models.SpaceKindCommunityChest:
		return e.resolveCardDraw(g, p, roll, g.CommunityChest, cards.CommunityChest())
	}

	// Ownable space
	owner := bank.Owner(g, p.Position)
	if owner == nil {
		g.Phase = models.PhasePurchaseDecision
		return nil
	}
	if owner.ID == p.ID {
		g.Phase = models.PhasePostAction
		return nil
	}

	amount := rent.For(sp, owner, roll, rentMultiplier)
	if amount == 0 {
		// Mortgaged: no rent due
		g.Phase = models.PhasePostAction
		return nil
	}

	bank.Debit(g, p.ID, owner.ID, amount, fmt.Sprintf("rent for %s", sp.Name))
	g.Record(models.Event{
		Type:        models.EventRentPaid,
		PlayerID:    p.ID,
		OtherID:     owner.ID,
		Position:    p.Position,
		Amount:      amount,
		Description: fmt.Sprintf("%s pays %s $%d rent for %s", p.Name, owner.Name, amount, sp.Name),
	})
	settleAfterCharge(g)
	return nil
}

// settleAfterCharge picks the phase after a payment: debt collection
// if the balance went negative, otherwise post-landing management.
func settleAfterCharge(g *models.GameState) {
	if g.Debt != nil {
		g.Phase = models.PhasePayingDebt
	} else {
		g.Phase = models.PhasePostAction
	}
}

// resolveCardDraw draws the top card and applies its effect. Get Out
// of Jail Free cards leave circulation; everything else is discarded.
func (e *Engine) resolveCardDraw(g *models.GameState, p *models.Player, roll models.DiceRoll, deck *models.Deck, table []cards.Card) error {
	idx := cards.Draw(deck, e.random)
	card := table[idx]

	g.Record(models.Event{
		Type:        models.EventCardDrawn,
		PlayerID:    p.ID,
		Position:    p.Position,
		Card:        card.Text,
		Description: fmt.Sprintf("%s draws: %s", p.Name, card.Text),
	})

	if card.Effect != cards.EffectJailCard {
		cards.Discard(deck, idx)
	}

	switch card.Effect {
	case cards.EffectMoveTo:
		teleportPlayer(g, p, card.Position)
		return e.resolveLanding(g, p, roll, 0)

	case cards.EffectMoveBack:
		p.Position = (p.Position - card.Spaces + board.Size) % board.Size
		g.Record(models.Event{
			Type:        models.EventMoved,
			PlayerID:    p.ID,
			Position:    p.Position,
			Description: fmt.Sprintf("%s moves back %d spaces to %s", p.Name, card.Spaces, space(p.Position).Name),
		})
		return e.resolveLanding(g, p, roll, 0)

	case cards.EffectMoveToNearest:
		dest, passedGo := board.NextOfKind(p.Position, card.NearestKind)
		if passedGo {
			payGoBonus(g, p)
		}
		from := p.Position
		p.Position = dest
		g.Record(models.Event{
			Type:        models.EventMoved,
			PlayerID:    p.ID,
			Position:    dest,
			Description: fmt.Sprintf("%s advances from %s to %s", p.Name, space(from).Name, space(dest).Name),
		})
		return e.resolveLanding(g, p, roll, card.RentMultiplier)

	case cards.EffectCollect:
		bank.Credit(g, p.ID, card.Amount)
		g.Record(models.Event{
			Type:        models.EventCollected,
			PlayerID:    p.ID,
			Amount:      card.Amount,
			Description: fmt.Sprintf("%s collects $%d", p.Name, card.Amount),
		})
		g.Phase = models.PhasePostAction
		return nil

	case cards.EffectPay:
		bank.Debit(g, p.ID, models.CreditorBank, card.Amount, card.Text)
		g.Record(models.Event{
			Type:        models.EventPaid,
			PlayerID:    p.ID,
			Amount:      card.Amount,
			Description: fmt.Sprintf("%s pays $%d", p.Name, card.Amount),
		})
		settleAfterCharge(g)
		return nil

	case cards.EffectRepairs:
		houses, hotels := 0, 0
		for _, ps := range p.Properties {
			if ps.HasHotel() {
				hotels++
			} else {
				houses += ps.Houses
			}
		}
		amount := houses*card.PerHouse + hotels*card.PerHotel
		if amount > 0 {
			bank.Debit(g, p.ID, models.CreditorBank, amount, card.Text)
		}
		g.Record(models.Event{
			Type:        models.EventPaid,
			PlayerID:    p.ID,
			Amount:      amount,
			Description: fmt.Sprintf("%s pays $%d for repairs (%d houses, %d hotels)", p.Name, amount, houses, hotels),
		})
		settleAfterCharge(g)
		return nil

	case cards.EffectCollectFromEach:
		for _, other := range g.ActivePlayers() {
			if other.ID == p.ID {
				continue
			}
			bank.ForceTransfer(g, other.ID, p.ID, card.Amount)
			g.Record(models.Event{
				Type:        models.EventTransferred,
				PlayerID:    other.ID,
				OtherID:     p.ID,
				Amount:      card.Amount,
				Description: fmt.Sprintf("%s pays %s $%d", other.Name, p.Name, card.Amount),
			})
		}
		g.Phase = models.PhasePostAction
		return nil

	case cards.EffectPayToEach:
		for _, other := range g.ActivePlayers() {
			if other.ID == p.ID {
				continue
			}
			bank.Debit(g, p.ID, other.ID, card.Amount, card.Text)
			g.Record(models.Event{
				Type:        models.EventTransferred,
				PlayerID:    p.ID,
				OtherID:     other.ID,
				Amount:      card.Amount,
				Description: fmt.Sprintf("%s pays %s $%d", p.Name, other.Name, card.Amount),
			})
		}
		settleAfterCharge(g)
		return nil

	case cards.EffectJailCard:
		p.JailCards++
		g.Phase = models.PhasePostAction
		return nil

	case cards.EffectGoToJail:
		sendToJail(g, p, "drew Go to Jail")
		return nil
	}

	return fmt.Errorf("%w: unhandled card effect %q", ErrInvariant, card.Effect)
}
