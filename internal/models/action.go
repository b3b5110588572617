package models

// ActionType tags a player action. The set is closed: the engine
// rejects unknown types without mutating state.
type ActionType string

const (
	// ActionRollDice rolls and moves, or attempts a jail escape roll
	ActionRollDice ActionType = "roll_dice"

	// ActionBuyProperty buys the space the player stands on
	ActionBuyProperty ActionType = "buy_property"

	// ActionDeclinePurchase declines to buy, sending the space to auction
	ActionDeclinePurchase ActionType = "decline_purchase"

	// ActionBuildHouse builds one house on Position
	ActionBuildHouse ActionType = "build_house"

	// ActionBuildHotel upgrades four houses on Position to a hotel
	ActionBuildHotel ActionType = "build_hotel"

	// ActionSellHouse sells one house from Position
	ActionSellHouse ActionType = "sell_house"

	// ActionSellHotel sells the hotel on Position
	ActionSellHotel ActionType = "sell_hotel"

	// ActionMortgage mortgages Position
	ActionMortgage ActionType = "mortgage"

	// ActionUnmortgage lifts the mortgage on Position
	ActionUnmortgage ActionType = "unmortgage"

	// ActionProposeTrade opens the trade carried in Trade
	ActionProposeTrade ActionType = "propose_trade"

	// ActionAcceptTrade accepts the outstanding trade offer
	ActionAcceptTrade ActionType = "accept_trade"

	// ActionRejectTrade rejects the outstanding trade offer
	ActionRejectTrade ActionType = "reject_trade"

	// ActionPayJailFine pays the fine to leave jail
	ActionPayJailFine ActionType = "pay_jail_fine"

	// ActionUseJailCard spends a Get Out of Jail Free card
	ActionUseJailCard ActionType = "use_jail_card"

	// ActionDeclareBankruptcy concedes while a debt is pending
	ActionDeclareBankruptcy ActionType = "declare_bankruptcy"

	// ActionEndTurn finishes the turn
	ActionEndTurn ActionType = "end_turn"
)

// Action is one discriminated player choice. Only the fields the
// action type needs are set.
type Action struct {
	// Type is the action kind
	Type ActionType `json:"type"`

	// Position is the target board position for property actions
	Position int `json:"position,omitempty"`

	// Trade carries the proposal for ActionProposeTrade
	Trade *TradeOffer `json:"trade,omitempty"`
}

// LegalAction describes one currently-valid action for the choosing
// agent: the kind, a human-readable description, and the exact
// parameter values that are valid right now.
type LegalAction struct {
	// Type is the action kind
	Type ActionType `json:"type"`

	// Description is a human-readable summary of the choice
	Description string `json:"description"`

	// Positions enumerates the valid Position values, if the action
	// takes one
	Positions []int `json:"positions,omitempty"`
}
