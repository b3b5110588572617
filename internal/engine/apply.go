package engine

import (
	"fmt"

	"github.com/boardwalk-games/boardwalk/internal/bank"
	"github.com/boardwalk-games/boardwalk/internal/board"
	"github.com/boardwalk-games/boardwalk/internal/models"
)

// apply mutates the cloned snapshot in place. Returning an error
// aborts the whole application; the caller discards the clone.
func (e *Engine) apply(g *models.GameState, action models.Action) error {
	if g.Winner != "" {
		return fmt.Errorf("%w: the game is over", ErrIllegalAction)
	}

	switch action.Type {
	case models.ActionRollDice:
		return e.applyRollDice(g)
	case models.ActionBuyProperty:
		return e.applyBuyProperty(g)
	case models.ActionDeclinePurchase:
		return e.applyDeclinePurchase(g)
	case models.ActionBuildHouse:
		return e.applyBuildHouse(g, action.Position)
	case models.ActionBuildHotel:
		return e.applyBuildHotel(g, action.Position)
	case models.ActionSellHouse:
		return e.applySellHouse(g, action.Position)
	case models.ActionSellHotel:
		return e.applySellHotel(g, action.Position)
	case models.ActionMortgage:
		return e.applyMortgage(g, action.Position)
	case models.ActionUnmortgage:
		return e.applyUnmortgage(g, action.Position)
	case models.ActionProposeTrade:
		return e.applyProposeTrade(g, action.Trade)
	case models.ActionAcceptTrade:
		return e.applyAcceptTrade(g)
	case models.ActionRejectTrade:
		return e.applyRejectTrade(g)
	case models.ActionPayJailFine:
		return e.applyPayJailFine(g)
	case models.ActionUseJailCard:
		return e.applyUseJailCard(g)
	case models.ActionDeclareBankruptcy:
		return e.applyDeclareBankruptcy(g)
	case models.ActionEndTurn:
		return e.applyEndTurn(g)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, action.Type)
	}
}

// requirePhase rejects the action unless the game is in one of the
// given phases.
func requirePhase(g *models.GameState, phases ...models.TurnPhase) error {
	for _, phase := range phases {
		if g.Phase == phase {
			return nil
		}
	}
	return fmt.Errorf("%w: not available during %s", ErrIllegalAction, g.Phase)
}

func (e *Engine) applyRollDice(g *models.GameState) error {
	if err := requirePhase(g, models.PhasePreRoll, models.PhaseAwaitingRoll); err != nil {
		return err
	}

	p := g.CurrentPlayer()

	d1, d2 := e.roller.RollPair()
	roll := models.DiceRoll{Die1: d1, Die2: d2}
	g.LastRoll = &roll
	g.Record(models.Event{
		Type:        models.EventDiceRolled,
		PlayerID:    p.ID,
		Roll:        &roll,
		Description: fmt.Sprintf("%s rolls %d and %d", p.Name, d1, d2),
	})

	if p.InJail {
		return e.resolveJailRoll(g, p, roll)
	}

	if roll.IsDoubles() {
		p.DoublesCount++
		if p.DoublesCount >= 3 {
			sendToJail(g, p, "three consecutive doubles")
			return nil
		}
	} else {
		p.DoublesCount = 0
	}

	movePlayer(g, p, roll.Sum())
	return e.resolveLanding(g, p, roll, 0)
}

// resolveJailRoll handles the roll-for-doubles escape attempt.
// Doubles release and move without granting an extra roll. The third
// failed attempt forces the fine and then moves by the rolled amount.
func (e *Engine) resolveJailRoll(g *models.GameState, p *models.Player, roll models.DiceRoll) error {
	if roll.IsDoubles() {
		releaseFromJail(g, p, "rolled doubles")
		p.DoublesCount = 0
		movePlayer(g, p, roll.Sum())
		return e.resolveLanding(g, p, roll, 0)
	}

	p.JailAttempts++
	if p.JailAttempts >= 3 {
		bank.Debit(g, p.ID, models.CreditorBank, board.JailFine, "jail fine")
		g.Record(models.Event{
			Type:        models.EventPaid,
			PlayerID:    p.ID,
			Amount:      board.JailFine,
			Description: fmt.Sprintf("%s pays the $%d fine after three failed escape rolls", p.Name, board.JailFine),
		})
		releaseFromJail(g, p, "paid the fine")
		movePlayer(g, p, roll.Sum())
		if err := e.resolveLanding(g, p, roll, 0); err != nil {
			return err
		}
		if g.Debt != nil {
			g.Phase = models.PhasePayingDebt
		}
		return nil
	}

	g.Record(models.Event{
		Type:        models.EventLanded,
		PlayerID:    p.ID,
		Position:    board.JailPosition,
		Description: fmt.Sprintf("%s fails to roll doubles and stays in jail", p.Name),
	})
	g.Phase = models.PhasePostAction
	return nil
}

func (e *Engine) applyPayJailFine(g *models.GameState) error {
	if err := requirePhase(g, models.PhaseAwaitingRoll); err != nil {
		return err
	}

	p := g.CurrentPlayer()
	if !p.InJail {
		return fmt.Errorf("%w: %s is not in jail", ErrIllegalAction, p.Name)
	}
	if p.Balance < board.JailFine {
		return fmt.Errorf("%w: insufficient funds to pay the $%d fine", ErrIllegalAction, board.JailFine)
	}

	bank.Debit(g, p.ID, models.CreditorBank, board.JailFine, "jail fine")
	g.Record(models.Event{
		Type:        models.EventPaid,
		PlayerID:    p.ID,
		Amount:      board.JailFine,
		Description: fmt.Sprintf("%s pays the $%d jail fine", p.Name, board.JailFine),
	})
	releaseFromJail(g, p, "paid the fine")
	g.Phase = models.PhasePreRoll
	return nil
}

func (e *Engine) applyUseJailCard(g *models.GameState) error {
	if err := requirePhase(g, models.PhaseAwaitingRoll); err != nil {
		return err
	}

	p := g.CurrentPlayer()
	if !p.InJail {
		return fmt.Errorf("%w: %s is not in jail", ErrIllegalAction, p.Name)
	}
	if p.JailCards == 0 {
		return fmt.Errorf("%w: no Get Out of Jail Free card held", ErrIllegalAction)
	}

	p.JailCards--
	releaseFromJail(g, p, "used a Get Out of Jail Free card")
	g.Phase = models.PhasePreRoll
	return nil
}

func (e *Engine) applyBuyProperty(g *models.GameState) error {
	if err := requirePhase(g, models.PhasePurchaseDecision); err != nil {
		return err
	}

	p := g.CurrentPlayer()
	sp := space(p.Position)
	if !sp.Ownable() {
		return fmt.Errorf("%w: %s cannot be bought", ErrIllegalAction, sp.Name)
	}
	if bank.Owner(g, p.Position) != nil {
		return fmt.Errorf("%w: %s is already owned", ErrIllegalAction, sp.Name)
	}
	if p.Balance < sp.Price {
		return fmt.Errorf("%w: insufficient funds to buy %s for $%d", ErrIllegalAction, sp.Name, sp.Price)
	}

	bank.Debit(g, p.ID, models.CreditorBank, sp.Price, "property purchase")
	bank.GrantProperty(g, p.ID, p.Position)
	g.Record(models.Event{
		Type:        models.EventPropertyBought,
		PlayerID:    p.ID,
		Position:    p.Position,
		Amount:      sp.Price,
		Description: fmt.Sprintf("%s buys %s for $%d", p.Name, sp.Name, sp.Price),
	})
	g.Phase = models.PhasePostAction
	return nil
}

func (e *Engine) applyDeclinePurchase(g *models.GameState) error {
	if err := requirePhase(g, models.PhasePurchaseDecision); err != nil {
		return err
	}

	p := g.CurrentPlayer()
	sp := space(p.Position)
	g.Record(models.Event{
		Type:        models.EventAuctionStarted,
		PlayerID:    p.ID,
		Position:    p.Position,
		Description: fmt.Sprintf("%s declines %s; it goes to auction", p.Name, sp.Name),
	})
	g.Phase = models.PhaseAuction
	return nil
}

func (e *Engine) applyDeclareBankruptcy(g *models.GameState) error {
	if err := requirePhase(g, models.PhasePayingDebt); err != nil {
		return err
	}

	p := g.CurrentPlayer()
	bank.Bankrupt(g, p.ID)
	g.Phase = models.PhaseTurnComplete
	declareWinnerIfDecided(g)
	return nil
}

func (e *Engine) applyEndTurn(g *models.GameState) error {
	if err := requirePhase(g, models.PhasePostAction); err != nil {
		return err
	}

	p := g.CurrentPlayer()
	if g.LastRoll != nil && g.LastRoll.IsDoubles() && !p.InJail && p.DoublesCount > 0 {
		// Doubles earn an extra roll by the same player
		g.Phase = models.PhasePreRoll
		return nil
	}

	g.Phase = models.PhaseTurnComplete
	p.DoublesCount = 0
	declareWinnerIfDecided(g)
	return nil
}

// movePlayer advances circularly, paying the Go bonus on pass or exact
// landing.
func movePlayer(g *models.GameState, p *models.Player, spaces int) {
	from := p.Position
	p.Position = (p.Position + spaces) % board.Size
	if p.Position < from || p.Position == board.GoPosition {
		payGoBonus(g, p)
	}
	g.Record(models.Event{
		Type:        models.EventMoved,
		PlayerID:    p.ID,
		Position:    p.Position,
		Description: fmt.Sprintf("%s moves from %s to %s", p.Name, space(from).Name, space(p.Position).Name),
	})
}

// teleportPlayer moves to an absolute position, paying the Go bonus if
// Go is crossed or landed on.
func teleportPlayer(g *models.GameState, p *models.Player, dest int) {
	from := p.Position
	p.Position = dest
	if dest <= from {
		payGoBonus(g, p)
	}
	g.Record(models.Event{
		Type:        models.EventMoved,
		PlayerID:    p.ID,
		Position:    dest,
		Description: fmt.Sprintf("%s moves from %s to %s", p.Name, space(from).Name, space(dest).Name),
	})
}

func payGoBonus(g *models.GameState, p *models.Player) {
	bank.Credit(g, p.ID, board.GoBonus)
	g.Record(models.Event{
		Type:        models.EventPassedGo,
		PlayerID:    p.ID,
		Amount:      board.GoBonus,
		Description: fmt.Sprintf("%s passes Go and collects $%d", p.Name, board.GoBonus),
	})
}

func sendToJail(g *models.GameState, p *models.Player, reason string) {
	p.Position = board.JailPosition
	p.InJail = true
	p.JailAttempts = 0
	p.DoublesCount = 0
	g.Record(models.Event{
		Type:        models.EventJailed,
		PlayerID:    p.ID,
		Position:    board.JailPosition,
		Description: fmt.Sprintf("%s goes to jail (%s)", p.Name, reason),
	})
	g.Phase = models.PhaseTurnComplete
}

func releaseFromJail(g *models.GameState, p *models.Player, how string) {
	p.InJail = false
	p.JailAttempts = 0
	g.Record(models.Event{
		Type:        models.EventJailReleased,
		PlayerID:    p.ID,
		Description: fmt.Sprintf("%s leaves jail (%s)", p.Name, how),
	})
}
