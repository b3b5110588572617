package engine

import (
	"fmt"

	"github.com/boardwalk-games/boardwalk/internal/bank"
	"github.com/boardwalk-games/boardwalk/internal/board"
	"github.com/boardwalk-games/boardwalk/internal/models"
)

// applyScenario applies setup-time overrides against a freshly created
// state. Pre-placed improvements are debited from the bank supply.
func applyScenario(g *models.GameState, overrides []PlayerOverride) error {
	for _, o := range overrides {
		p, ok := g.PlayerByID(o.PlayerID)
		if !ok {
			return fmt.Errorf("scenario references unknown player %q", o.PlayerID)
		}

		if o.Balance != nil {
			p.Balance = *o.Balance
		}
		if o.Position != nil {
			if !board.Valid(*o.Position) {
				return fmt.Errorf("scenario position %d is off the board", *o.Position)
			}
			p.Position = *o.Position
		}
		if o.InJail != nil && *o.InJail {
			p.InJail = true
			p.Position = board.JailPosition
		}
		if o.JailCards != nil {
			p.JailCards = *o.JailCards
		}

		for _, po := range o.Properties {
			if !board.Valid(po.Position) || !board.Space(po.Position).Ownable() {
				return fmt.Errorf("scenario property position %d is not ownable", po.Position)
			}
			if po.Houses < 0 || po.Houses > models.HotelHouseCount {
				return fmt.Errorf("scenario house count %d on position %d is out of range", po.Houses, po.Position)
			}
			if bank.Owner(g, po.Position) != nil {
				return fmt.Errorf("scenario position %d assigned twice", po.Position)
			}

			if po.Houses == models.HotelHouseCount {
				if g.BankHotels == 0 {
					return fmt.Errorf("scenario exhausts the bank hotel supply at position %d", po.Position)
				}
				g.BankHotels--
			} else if po.Houses > 0 {
				if g.BankHouses < po.Houses {
					return fmt.Errorf("scenario exhausts the bank house supply at position %d", po.Position)
				}
				g.BankHouses -= po.Houses
			}

			p.Properties[po.Position] = &models.PropertyState{
				Houses:    po.Houses,
				Mortgaged: po.Mortgaged,
			}
		}
	}
	return nil
}
