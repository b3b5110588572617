package models

// SpaceKind identifies the behavior of a board space
type SpaceKind string

const (
	// SpaceKindProperty is an ordinary color-group street
	SpaceKindProperty SpaceKind = "property"

	// SpaceKindRailroad is one of the four railroads
	SpaceKindRailroad SpaceKind = "railroad"

	// SpaceKindUtility is one of the two utilities
	SpaceKindUtility SpaceKind = "utility"

	// SpaceKindTax charges a fixed amount on landing
	SpaceKindTax SpaceKind = "tax"

	// SpaceKindChance triggers a Chance card draw
	SpaceKindChance SpaceKind = "chance"

	// SpaceKindCommunityChest triggers a Community Chest card draw
	SpaceKindCommunityChest SpaceKind = "community_chest"

	// SpaceKindGo is the Go corner
	SpaceKindGo SpaceKind = "go"

	// SpaceKindJail is the jail corner (just visiting when landed on)
	SpaceKindJail SpaceKind = "jail"

	// SpaceKindFreeParking is the free parking corner
	SpaceKindFreeParking SpaceKind = "free_parking"

	// SpaceKindGoToJail sends the player to jail
	SpaceKindGoToJail SpaceKind = "go_to_jail"
)

// ColorGroup names the color group of a street property
type ColorGroup string

const (
	GroupBrown     ColorGroup = "brown"
	GroupLightBlue ColorGroup = "light_blue"
	GroupPink      ColorGroup = "pink"
	GroupOrange    ColorGroup = "orange"
	GroupRed       ColorGroup = "red"
	GroupYellow    ColorGroup = "yellow"
	GroupGreen     ColorGroup = "green"
	GroupDarkBlue  ColorGroup = "dark_blue"
)

// Space is one immutable board position. The full catalog lives in the
// board package and is shared by reference for the life of the process.
type Space struct {
	// Position is the board index, 0-39
	Position int

	// Name is the printed name of the space
	Name string

	// Kind determines what happens on landing
	Kind SpaceKind

	// Group is the color group, set only for street properties
	Group ColorGroup

	// Price is the listed purchase price for ownable spaces
	Price int

	// Rents is the rent ladder: base, 1-4 houses, hotel.
	// Only street properties use all six entries.
	Rents [6]int

	// MortgageValue is the cash received when mortgaging
	MortgageValue int

	// HouseCost is the price of one house (and of the hotel upgrade)
	HouseCost int

	// TaxAmount is the charge for tax spaces
	TaxAmount int
}

// Ownable reports whether the space can be bought and owned
func (s *Space) Ownable() bool {
	switch s.Kind {
	case SpaceKindProperty, SpaceKindRailroad, SpaceKindUtility:
		return true
	}
	return false
}
