// Package board holds the static 40-space catalog. The data is
// process-wide and read-only; spaces are shared by reference and
// never copied.
package board

import "github.com/boardwalk-games/boardwalk/internal/models"

const (
	// Size is the number of board positions
	Size = 40

	// GoPosition is the Go corner
	GoPosition = 0

	// JailPosition is the jail corner
	JailPosition = 10

	// GoToJailPosition sends the player to jail
	GoToJailPosition = 30

	// GoBonus is paid for passing or landing on Go
	GoBonus = 200

	// JailFine is the cost of buying out of jail
	JailFine = 50
)

func street(pos int, name string, group models.ColorGroup, price int, rents [6]int, houseCost int) models.Space {
	return models.Space{
		Position:      pos,
		Name:          name,
		Kind:          models.SpaceKindProperty,
		Group:         group,
		Price:         price,
		Rents:         rents,
		MortgageValue: price / 2,
		HouseCost:     houseCost,
	}
}

func railroad(pos int, name string) models.Space {
	return models.Space{
		Position:      pos,
		Name:          name,
		Kind:          models.SpaceKindRailroad,
		Price:         200,
		Rents:         [6]int{25},
		MortgageValue: 100,
	}
}

func utility(pos int, name string) models.Space {
	return models.Space{
		Position:      pos,
		Name:          name,
		Kind:          models.SpaceKindUtility,
		Price:         150,
		MortgageValue: 75,
	}
}

// spaces is the classic US board.
var spaces = [Size]models.Space{
	{Position: 0, Name: "Go", Kind: models.SpaceKindGo},
	street(1, "Mediterranean Avenue", models.GroupBrown, 60, [6]int{2, 10, 30, 90, 160, 250}, 50),
	{Position: 2, Name: "Community Chest", Kind: models.SpaceKindCommunityChest},
	street(3, "Baltic Avenue", models.GroupBrown, 60, [6]int{4, 20, 60, 180, 320, 450}, 50),
	{Position: 4, Name: "Income Tax", Kind: models.SpaceKindTax, TaxAmount: 200},
	railroad(5, "Reading Railroad"),
	street(6, "Oriental Avenue", models.GroupLightBlue, 100, [6]int{6, 30, 90, 270, 400, 550}, 50),
	{Position: 7, Name: "Chance", Kind: models.SpaceKindChance},
	street(8, "Vermont Avenue", models.GroupLightBlue, 100, [6]int{6, 30, 90, 270, 400, 550}, 50),
	street(9, "Connecticut Avenue", models.GroupLightBlue, 120, [6]int{8, 40, 100, 300, 450, 600}, 50),
	{Position: 10, Name: "Jail", Kind: models.SpaceKindJail},
	street(11, "St. Charles Place", models.GroupPink, 140, [6]int{10, 50, 150, 450, 625, 750}, 100),
	utility(12, "Electric Company"),
	street(13, "States Avenue", models.GroupPink, 140, [6]int{10, 50, 150, 450, 625, 750}, 100),
	street(14, "Virginia Avenue", models.GroupPink, 160, [6]int{12, 60, 180, 500, 700, 900}, 100),
	railroad(15, "Pennsylvania Railroad"),
	street(16, "St. James Place", models.GroupOrange, 180, [6]int{14, 70, 200, 550, 750, 950}, 100),
	{Position: 17, Name: "Community Chest", Kind: models.SpaceKindCommunityChest},
	street(18, "Tennessee Avenue", models.GroupOrange, 180, [6]int{14, 70, 200, 550, 750, 950}, 100),
	street(19, "New York Avenue", models.GroupOrange, 200, [6]int{16, 80, 220, 600, 800, 1000}, 100),
	{Position: 20, Name: "Free Parking", Kind: models.SpaceKindFreeParking},
	street(21, "Kentucky Avenue", models.GroupRed, 220, [6]int{18, 90, 250, 700, 875, 1050}, 150),
	{Position: 22, Name: "Chance", Kind: models.SpaceKindChance},
	street(23, "Indiana Avenue", models.GroupRed, 220, [6]int{18, 90, 250, 700, 875, 1050}, 150),
	street(24, "Illinois Avenue", models.GroupRed, 240, [6]int{20, 100, 300, 750, 925, 1100}, 150),
	railroad(25, "B. & O. Railroad"),
	street(26, "Atlantic Avenue", models.GroupYellow, 260, [6]int{22, 110, 330, 800, 975, 1150}, 150),
	street(27, "Ventnor Avenue", models.GroupYellow, 260, [6]int{22, 110, 330, 800, 975, 1150}, 150),
	utility(28, "Water Works"),
	street(29, "Marvin Gardens", models.GroupYellow, 280, [6]int{24, 120, 360, 850, 1025, 1200}, 150),
	{Position: 30, Name: "Go To Jail", Kind: models.SpaceKindGoToJail},
	street(31, "Pacific Avenue", models.GroupGreen, 300, [6]int{26, 130, 390, 900, 1100, 1275}, 200),
	street(32, "North Carolina Avenue", models.GroupGreen, 300, [6]int{26, 130, 390, 900, 1100, 1275}, 200),
	{Position: 33, Name: "Community Chest", Kind: models.SpaceKindCommunityChest},
	street(34, "Pennsylvania Avenue", models.GroupGreen, 320, [6]int{28, 150, 450, 1000, 1200, 1400}, 200),
	railroad(35, "Short Line"),
	{Position: 36, Name: "Chance", Kind: models.SpaceKindChance},
	street(37, "Park Place", models.GroupDarkBlue, 350, [6]int{35, 175, 500, 1100, 1300, 1500}, 200),
	{Position: 38, Name: "Luxury Tax", Kind: models.SpaceKindTax, TaxAmount: 100},
	street(39, "Boardwalk", models.GroupDarkBlue, 400, [6]int{50, 200, 600, 1400, 1700, 2000}, 200),
}

// groups maps each color group to its member positions, derived once
// from the catalog.
var groups = func() map[models.ColorGroup][]int {
	m := make(map[models.ColorGroup][]int)
	for i := range spaces {
		if spaces[i].Kind == models.SpaceKindProperty {
			m[spaces[i].Group] = append(m[spaces[i].Group], spaces[i].Position)
		}
	}
	return m
}()

var railroads, utilities = func() (rr, ut []int) {
	for i := range spaces {
		switch spaces[i].Kind {
		case models.SpaceKindRailroad:
			rr = append(rr, spaces[i].Position)
		case models.SpaceKindUtility:
			ut = append(ut, spaces[i].Position)
		}
	}
	return rr, ut
}()

// Space returns the space at the given position. Positions outside
// 0-39 are a caller bug and panic.
func Space(position int) *models.Space {
	return &spaces[position]
}

// Valid reports whether position is a real board index
func Valid(position int) bool {
	return position >= 0 && position < Size
}

// Group returns the member positions of a color group in board order
func Group(group models.ColorGroup) []int {
	return groups[group]
}

// Railroads returns the four railroad positions in board order
func Railroads() []int {
	return railroads
}

// Utilities returns the two utility positions in board order
func Utilities() []int {
	return utilities
}

// NextOfKind returns the first position of the given kind strictly
// ahead of from, wrapping to the earliest if none remain ahead, and
// reports whether the wrap crossed Go.
func NextOfKind(from int, kind models.SpaceKind) (position int, passedGo bool) {
	var candidates []int
	switch kind {
	case models.SpaceKindRailroad:
		candidates = railroads
	case models.SpaceKindUtility:
		candidates = utilities
	}
	for _, pos := range candidates {
		if pos > from {
			return pos, false
		}
	}
	return candidates[0], true
}
