// Package bank is the ownership ledger: the only code that mutates
// player balances, property ownership, and the bank's building supply.
// Callers operate on a cloned snapshot; every function here assumes
// its preconditions were validated by the engine and enforces only the
// ledger invariants themselves.
package bank

import (
	"fmt"

	"github.com/boardwalk-games/boardwalk/internal/board"
	"github.com/boardwalk-games/boardwalk/internal/models"
)

const (
	// TotalHouses is the physical house supply of the standard set
	TotalHouses = 32

	// TotalHotels is the physical hotel supply of the standard set
	TotalHotels = 12
)

// mustPlayer resolves a player id or panics. The engine validates ids
// before any ledger mutation, so an unknown id here is a programming
// error and must not be papered over with a silent no-op.
func mustPlayer(g *models.GameState, playerID string) *models.Player {
	p, ok := g.PlayerByID(playerID)
	if !ok {
		panic(fmt.Sprintf("bank: unknown player %q", playerID))
	}
	return p
}

// Credit adds amount to the player's balance
func Credit(g *models.GameState, playerID string, amount int) {
	p := mustPlayer(g, playerID)
	p.Balance += amount
}

// Debit removes amount from the player's balance in favor of creditor
// (a player ID or models.CreditorBank). The creditor is credited
// immediately; if the payer goes negative a PendingDebt is recorded
// and a debt event emitted.
func Debit(g *models.GameState, payerID, creditor string, amount int, reason string) {
	payer := mustPlayer(g, payerID)
	payer.Balance -= amount

	if creditor != models.CreditorBank {
		Credit(g, creditor, amount)
	}

	if payer.Balance < 0 && g.Debt == nil {
		g.Debt = &models.PendingDebt{
			Creditor: creditor,
			Amount:   amount,
			Reason:   reason,
		}
		g.Record(models.Event{
			Type:        models.EventDebtIncurred,
			PlayerID:    payerID,
			Amount:      amount,
			Description: fmt.Sprintf("%s owes $%d (%s) and must raise funds", payer.Name, amount, reason),
		})
	}
}

// ForceTransfer moves amount between players without debt tracking.
// Used for card effects that charge non-acting players; only the
// acting player's shortfall drives the debt phase machinery.
func ForceTransfer(g *models.GameState, fromID, toID string, amount int) {
	from := mustPlayer(g, fromID)
	to := mustPlayer(g, toID)
	from.Balance -= amount
	to.Balance += amount
}

// ClearDebtIfSettled drops the pending debt once the debtor's balance
// is non-negative again and reports whether it did.
func ClearDebtIfSettled(g *models.GameState, playerID string) bool {
	p := mustPlayer(g, playerID)
	if g.Debt != nil && p.Balance >= 0 {
		g.Debt = nil
		return true
	}
	return false
}

// GrantProperty assigns an unowned position to the player
func GrantProperty(g *models.GameState, playerID string, position int) {
	p := mustPlayer(g, playerID)
	p.Properties[position] = &models.PropertyState{}
}

// TransferProperty moves a position between players, improvements and
// mortgage flag intact.
func TransferProperty(g *models.GameState, fromID, toID string, position int) {
	from := mustPlayer(g, fromID)
	to := mustPlayer(g, toID)
	to.Properties[position] = from.Properties[position]
	delete(from.Properties, position)
}

// TakeHouses moves n houses from the bank supply onto nothing in
// particular; the caller has already placed them on a property.
func TakeHouses(g *models.GameState, n int) {
	g.BankHouses -= n
}

// ReturnHouses gives n houses back to the bank supply
func ReturnHouses(g *models.GameState, n int) {
	g.BankHouses += n
}

// TakeHotel moves one hotel out of the bank supply
func TakeHotel(g *models.GameState) {
	g.BankHotels--
}

// ReturnHotel gives one hotel back to the bank supply
func ReturnHotel(g *models.GameState) {
	g.BankHotels++
}

// Bankrupt eliminates the player, transferring assets per the pending
// debt's creditor and emitting the bankruptcy event. Properties and
// residual cash go to a player creditor; for a bank creditor the
// improvements return to the supply and the properties become unowned.
func Bankrupt(g *models.GameState, playerID string) {
	p := mustPlayer(g, playerID)

	creditor := models.CreditorBank
	if g.Debt != nil {
		creditor = g.Debt.Creditor
	}

	if creditor != models.CreditorBank {
		to := mustPlayer(g, creditor)
		for pos, ps := range p.Properties {
			to.Properties[pos] = ps
		}
		if p.Balance > 0 {
			to.Balance += p.Balance
		}
		to.JailCards += p.JailCards
	} else {
		for _, ps := range p.Properties {
			if ps.HasHotel() {
				ReturnHotel(g)
			} else {
				ReturnHouses(g, ps.Houses)
			}
		}
	}

	p.Properties = map[int]*models.PropertyState{}
	p.Balance = 0
	p.JailCards = 0
	p.Bankrupt = true
	g.Debt = nil

	g.Record(models.Event{
		Type:        models.EventBankruptcy,
		PlayerID:    playerID,
		OtherID:     creditorOther(creditor),
		Description: fmt.Sprintf("%s is bankrupt", p.Name),
	})
}

func creditorOther(creditor string) string {
	if creditor == models.CreditorBank {
		return ""
	}
	return creditor
}

// HousesOnBoard counts every house standing on any property, with a
// hotel counting as zero houses (hotels are a separate pool).
func HousesOnBoard(g *models.GameState) int {
	total := 0
	for _, p := range g.Players {
		for _, ps := range p.Properties {
			if !ps.HasHotel() {
				total += ps.Houses
			}
		}
	}
	return total
}

// HotelsOnBoard counts every hotel standing on any property
func HotelsOnBoard(g *models.GameState) int {
	total := 0
	for _, p := range g.Players {
		for _, ps := range p.Properties {
			if ps.HasHotel() {
				total++
			}
		}
	}
	return total
}

// Owner returns the player owning the given position, or nil
func Owner(g *models.GameState, position int) *models.Player {
	for _, p := range g.Players {
		if p.Owns(position) {
			return p
		}
	}
	return nil
}

// GroupFullyOwned reports whether the player owns every member of the
// given space's color group.
func GroupFullyOwned(p *models.Player, space *models.Space) bool {
	if space.Kind != models.SpaceKindProperty {
		return false
	}
	return p.OwnsAll(board.Group(space.Group))
}
