package engine

import (
	"fmt"

	"github.com/boardwalk-games/boardwalk/internal/bank"
	"github.com/boardwalk-games/boardwalk/internal/board"
	"github.com/boardwalk-games/boardwalk/internal/models"
)

// managementAllowed gates voluntary asset management; raisingAllowed
// additionally admits the paying_debt phase, where selling and
// mortgaging are the ways out.
func managementAllowed(g *models.GameState) error {
	return requirePhase(g, models.PhasePreRoll, models.PhasePostAction)
}

func raisingAllowed(g *models.GameState) error {
	return requirePhase(g, models.PhasePreRoll, models.PhasePostAction, models.PhasePayingDebt)
}

// groupHouseBounds returns the minimum and maximum house counts across
// the color group of the given street, hotels counting as five.
func groupHouseBounds(p *models.Player, sp *models.Space) (min, max int) {
	min, max = models.HotelHouseCount, 0
	for _, pos := range board.Group(sp.Group) {
		houses := 0
		if ps, ok := p.Properties[pos]; ok {
			houses = ps.Houses
		}
		if houses < min {
			min = houses
		}
		if houses > max {
			max = houses
		}
	}
	return min, max
}

func groupHasMortgage(p *models.Player, sp *models.Space) bool {
	for _, pos := range board.Group(sp.Group) {
		if ps, ok := p.Properties[pos]; ok && ps.Mortgaged {
			return true
		}
	}
	return false
}

func groupHasHouses(p *models.Player, sp *models.Space) bool {
	for _, pos := range board.Group(sp.Group) {
		if ps, ok := p.Properties[pos]; ok && ps.Houses > 0 {
			return true
		}
	}
	return false
}

func (e *Engine) validateBuildHouse(g *models.GameState, p *models.Player, position int) error {
	if !board.Valid(position) {
		return fmt.Errorf("%w: position %d is off the board", ErrIllegalAction, position)
	}
	sp := space(position)
	if sp.Kind != models.SpaceKindProperty {
		return fmt.Errorf("%w: houses can only be built on street properties", ErrIllegalAction)
	}
	ps, ok := p.Properties[position]
	if !ok {
		return fmt.Errorf("%w: %s does not own %s", ErrIllegalAction, p.Name, sp.Name)
	}
	if ps.Mortgaged {
		return fmt.Errorf("%w: %s is mortgaged", ErrIllegalAction, sp.Name)
	}
	if !bank.GroupFullyOwned(p, sp) {
		return fmt.Errorf("%w: the full %s group is required to build", ErrIllegalAction, sp.Group)
	}
	if groupHasMortgage(p, sp) {
		return fmt.Errorf("%w: the %s group has a mortgaged member", ErrIllegalAction, sp.Group)
	}
	if ps.Houses >= 4 {
		return fmt.Errorf("%w: %s already has four houses", ErrIllegalAction, sp.Name)
	}
	min, _ := groupHouseBounds(p, sp)
	if ps.Houses > min {
		return fmt.Errorf("%w: build evenly across the %s group", ErrIllegalAction, sp.Group)
	}
	if g.BankHouses == 0 {
		return fmt.Errorf("%w: the bank has no houses left", ErrIllegalAction)
	}
	if p.Balance < sp.HouseCost {
		return fmt.Errorf("%w: insufficient funds for a $%d house", ErrIllegalAction, sp.HouseCost)
	}
	return nil
}

func (e *Engine) applyBuildHouse(g *models.GameState, position int) error {
	if err := managementAllowed(g); err != nil {
		return err
	}
	p := g.CurrentPlayer()
	if err := e.validateBuildHouse(g, p, position); err != nil {
		return err
	}

	sp := space(position)
	bank.Debit(g, p.ID, models.CreditorBank, sp.HouseCost, "house purchase")
	bank.TakeHouses(g, 1)
	p.Properties[position].Houses++
	g.Record(models.Event{
		Type:        models.EventHouseBuilt,
		PlayerID:    p.ID,
		Position:    position,
		Amount:      sp.HouseCost,
		Description: fmt.Sprintf("%s builds a house on %s (%d total)", p.Name, sp.Name, p.Properties[position].Houses),
	})
	return nil
}

func (e *Engine) validateBuildHotel(g *models.GameState, p *models.Player, position int) error {
	if !board.Valid(position) {
		return fmt.Errorf("%w: position %d is off the board", ErrIllegalAction, position)
	}
	sp := space(position)
	ps, ok := p.Properties[position]
	if !ok || sp.Kind != models.SpaceKindProperty {
		return fmt.Errorf("%w: %s does not own a street at %s", ErrIllegalAction, p.Name, sp.Name)
	}
	if ps.Houses != 4 {
		return fmt.Errorf("%w: a hotel requires four houses on %s", ErrIllegalAction, sp.Name)
	}
	if g.BankHotels == 0 {
		return fmt.Errorf("%w: the bank has no hotels left", ErrIllegalAction)
	}
	if p.Balance < sp.HouseCost {
		return fmt.Errorf("%w: insufficient funds for a $%d hotel", ErrIllegalAction, sp.HouseCost)
	}
	return nil
}

// applyBuildHotel upgrades four houses to a hotel: the houses return
// to the bank's pool, one hotel leaves it.
func (e *Engine) applyBuildHotel(g *models.GameState, position int) error {
	if err := managementAllowed(g); err != nil {
		return err
	}
	p := g.CurrentPlayer()
	if err := e.validateBuildHotel(g, p, position); err != nil {
		return err
	}

	sp := space(position)
	bank.Debit(g, p.ID, models.CreditorBank, sp.HouseCost, "hotel purchase")
	p.Properties[position].Houses = models.HotelHouseCount
	bank.ReturnHouses(g, 4)
	bank.TakeHotel(g)
	g.Record(models.Event{
		Type:        models.EventHotelBuilt,
		PlayerID:    p.ID,
		Position:    position,
		Amount:      sp.HouseCost,
		Description: fmt.Sprintf("%s builds a hotel on %s", p.Name, sp.Name),
	})
	return nil
}

func (e *Engine) validateSellHouse(g *models.GameState, p *models.Player, position int) error {
	if !board.Valid(position) {
		return fmt.Errorf("%w: position %d is off the board", ErrIllegalAction, position)
	}
	sp := space(position)
	ps, ok := p.Properties[position]
	if !ok || sp.Kind != models.SpaceKindProperty {
		return fmt.Errorf("%w: %s does not own a street at %s", ErrIllegalAction, p.Name, sp.Name)
	}
	if ps.Houses == 0 || ps.HasHotel() {
		return fmt.Errorf("%w: no house to sell on %s", ErrIllegalAction, sp.Name)
	}
	_, max := groupHouseBounds(p, sp)
	if ps.Houses < max {
		return fmt.Errorf("%w: sell evenly across the %s group", ErrIllegalAction, sp.Group)
	}
	return nil
}

func (e *Engine) applySellHouse(g *models.GameState, position int) error {
	if err := raisingAllowed(g); err != nil {
		return err
	}
	p := g.CurrentPlayer()
	if err := e.validateSellHouse(g, p, position); err != nil {
		return err
	}

	sp := space(position)
	refund := sp.HouseCost / 2
	p.Properties[position].Houses--
	bank.ReturnHouses(g, 1)
	bank.Credit(g, p.ID, refund)
	g.Record(models.Event{
		Type:        models.EventHouseSold,
		PlayerID:    p.ID,
		Position:    position,
		Amount:      refund,
		Description: fmt.Sprintf("%s sells a house from %s for $%d", p.Name, sp.Name, refund),
	})
	e.settleDebtProgress(g, p)
	return nil
}

func (e *Engine) validateSellHotel(g *models.GameState, p *models.Player, position int) error {
	if !board.Valid(position) {
		return fmt.Errorf("%w: position %d is off the board", ErrIllegalAction, position)
	}
	sp := space(position)
	ps, ok := p.Properties[position]
	if !ok || sp.Kind != models.SpaceKindProperty {
		return fmt.Errorf("%w: %s does not own a street at %s", ErrIllegalAction, p.Name, sp.Name)
	}
	if !ps.HasHotel() {
		return fmt.Errorf("%w: no hotel on %s", ErrIllegalAction, sp.Name)
	}
	return nil
}

// applySellHotel downgrades the hotel to four houses when the bank can
// supply them; a house shortage sells the whole hotel outright. The
// refund is half the house cost either way.
func (e *Engine) applySellHotel(g *models.GameState, position int) error {
	if err := raisingAllowed(g); err != nil {
		return err
	}
	p := g.CurrentPlayer()
	if err := e.validateSellHotel(g, p, position); err != nil {
		return err
	}

	sp := space(position)
	refund := sp.HouseCost / 2
	bank.ReturnHotel(g)
	if g.BankHouses >= 4 {
		p.Properties[position].Houses = 4
		bank.TakeHouses(g, 4)
	} else {
		p.Properties[position].Houses = 0
	}
	bank.Credit(g, p.ID, refund)
	g.Record(models.Event{
		Type:        models.EventHotelSold,
		PlayerID:    p.ID,
		Position:    position,
		Amount:      refund,
		Description: fmt.Sprintf("%s sells the hotel on %s for $%d", p.Name, sp.Name, refund),
	})
	e.settleDebtProgress(g, p)
	return nil
}

func (e *Engine) validateMortgage(g *models.GameState, p *models.Player, position int) error {
	if !board.Valid(position) {
		return fmt.Errorf("%w: position %d is off the board", ErrIllegalAction, position)
	}
	sp := space(position)
	ps, ok := p.Properties[position]
	if !ok {
		return fmt.Errorf("%w: %s does not own %s", ErrIllegalAction, p.Name, sp.Name)
	}
	if ps.Mortgaged {
		return fmt.Errorf("%w: %s is already mortgaged", ErrIllegalAction, sp.Name)
	}
	if sp.Kind == models.SpaceKindProperty && groupHasHouses(p, sp) {
		return fmt.Errorf("%w: the %s group must carry no houses to mortgage", ErrIllegalAction, sp.Group)
	}
	return nil
}

func (e *Engine) applyMortgage(g *models.GameState, position int) error {
	if err := raisingAllowed(g); err != nil {
		return err
	}
	p := g.CurrentPlayer()
	if err := e.validateMortgage(g, p, position); err != nil {
		return err
	}

	sp := space(position)
	p.Properties[position].Mortgaged = true
	bank.Credit(g, p.ID, sp.MortgageValue)
	g.Record(models.Event{
		Type:        models.EventMortgaged,
		PlayerID:    p.ID,
		Position:    position,
		Amount:      sp.MortgageValue,
		Description: fmt.Sprintf("%s mortgages %s for $%d", p.Name, sp.Name, sp.MortgageValue),
	})
	e.settleDebtProgress(g, p)
	return nil
}

// UnmortgageCost is the mortgage value plus 10% interest, floored
func UnmortgageCost(sp *models.Space) int {
	return sp.MortgageValue * 11 / 10
}

func (e *Engine) validateUnmortgage(g *models.GameState, p *models.Player, position int) error {
	if !board.Valid(position) {
		return fmt.Errorf("%w: position %d is off the board", ErrIllegalAction, position)
	}
	sp := space(position)
	ps, ok := p.Properties[position]
	if !ok {
		return fmt.Errorf("%w: %s does not own %s", ErrIllegalAction, p.Name, sp.Name)
	}
	if !ps.Mortgaged {
		return fmt.Errorf("%w: %s is not mortgaged", ErrIllegalAction, sp.Name)
	}
	if p.Balance < UnmortgageCost(sp) {
		return fmt.Errorf("%w: insufficient funds to lift the mortgage on %s", ErrIllegalAction, sp.Name)
	}
	return nil
}

func (e *Engine) applyUnmortgage(g *models.GameState, position int) error {
	if err := managementAllowed(g); err != nil {
		return err
	}
	p := g.CurrentPlayer()
	if err := e.validateUnmortgage(g, p, position); err != nil {
		return err
	}

	sp := space(position)
	cost := UnmortgageCost(sp)
	bank.Debit(g, p.ID, models.CreditorBank, cost, "mortgage interest")
	p.Properties[position].Mortgaged = false
	g.Record(models.Event{
		Type:        models.EventUnmortgaged,
		PlayerID:    p.ID,
		Position:    position,
		Amount:      cost,
		Description: fmt.Sprintf("%s lifts the mortgage on %s for $%d", p.Name, sp.Name, cost),
	})
	return nil
}

// settleDebtProgress auto-transitions out of paying_debt once a raise
// has brought the balance non-negative.
func (e *Engine) settleDebtProgress(g *models.GameState, p *models.Player) {
	if g.Phase != models.PhasePayingDebt {
		return
	}
	if bank.ClearDebtIfSettled(g, p.ID) {
		g.Phase = models.PhasePostAction
	}
}
