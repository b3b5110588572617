// Package rent computes the rent owed for a landed-on space. It is a
// pure function of the space, the owner's holdings, and the dice roll;
// it never touches game state.
package rent

import (
	"github.com/boardwalk-games/boardwalk/internal/board"
	"github.com/boardwalk-games/boardwalk/internal/models"
)

// For returns the rent owed for landing on space while owner holds it.
// multiplier is a card-forced factor (0 when no card is in play): it
// doubles railroad rent, and for utilities it replaces the usual
// per-utility factor entirely. Mortgaged spaces collect nothing.
func For(space *models.Space, owner *models.Player, roll models.DiceRoll, multiplier int) int {
	if owner == nil {
		return 0
	}

	state := owner.Properties[space.Position]
	if state == nil || state.Mortgaged {
		return 0
	}

	switch space.Kind {
	case models.SpaceKindProperty:
		return streetRent(space, owner, state)
	case models.SpaceKindRailroad:
		return railroadRent(owner, multiplier)
	case models.SpaceKindUtility:
		return utilityRent(owner, roll, multiplier)
	}
	return 0
}

func streetRent(space *models.Space, owner *models.Player, state *models.PropertyState) int {
	if state.Houses > 0 {
		return space.Rents[state.Houses]
	}
	if groupOwned(owner, space) {
		return space.Rents[0] * 2
	}
	return space.Rents[0]
}

// railroadRent is 25 doubled per additional unmortgaged railroad held,
// then scaled by any card-forced multiplier.
func railroadRent(owner *models.Player, multiplier int) int {
	count := 0
	for _, pos := range board.Railroads() {
		if ps, ok := owner.Properties[pos]; ok && !ps.Mortgaged {
			count++
		}
	}
	if count == 0 {
		return 0
	}
	amount := 25 << (count - 1)
	if multiplier > 0 {
		amount *= multiplier
	}
	return amount
}

// utilityRent is dice sum times 4 for one owned utility, times 10 for
// both. A card-forced multiplier overrides the count entirely.
func utilityRent(owner *models.Player, roll models.DiceRoll, multiplier int) int {
	if multiplier > 0 {
		return roll.Sum() * multiplier
	}
	count := 0
	for _, pos := range board.Utilities() {
		if owner.Owns(pos) {
			count++
		}
	}
	if count >= 2 {
		return roll.Sum() * 10
	}
	return roll.Sum() * 4
}

func groupOwned(owner *models.Player, space *models.Space) bool {
	return owner.OwnsAll(board.Group(space.Group))
}
