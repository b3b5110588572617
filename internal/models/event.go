package models

// EventType tags a domain event. The set is closed.
type EventType string

const (
	EventDiceRolled     EventType = "dice_rolled"
	EventMoved          EventType = "moved"
	EventLanded         EventType = "landed"
	EventPassedGo       EventType = "passed_go"
	EventRentPaid       EventType = "rent_paid"
	EventPropertyBought EventType = "property_bought"
	EventAuctionStarted EventType = "auction_started"
	EventAuctionWon     EventType = "auction_won"
	EventAuctionNoBids  EventType = "auction_no_bids"
	EventHouseBuilt     EventType = "house_built"
	EventHotelBuilt     EventType = "hotel_built"
	EventHouseSold      EventType = "house_sold"
	EventHotelSold      EventType = "hotel_sold"
	EventCardDrawn      EventType = "card_drawn"
	EventTaxPaid        EventType = "tax_paid"
	EventJailed         EventType = "jailed"
	EventJailReleased   EventType = "jail_released"
	EventMortgaged      EventType = "mortgaged"
	EventUnmortgaged    EventType = "unmortgaged"
	EventTradeProposed  EventType = "trade_proposed"
	EventTradeCompleted EventType = "trade_completed"
	EventTradeRejected  EventType = "trade_rejected"
	EventDebtIncurred   EventType = "debt_incurred"
	EventBankruptcy     EventType = "bankruptcy"
	EventGameOver       EventType = "game_over"
	EventCollected      EventType = "collected"
	EventPaid           EventType = "paid"
	EventTransferred    EventType = "transferred"
)

// Event is one entry in the append-only game log. It drives both
// rendering and the persisted audit trail.
type Event struct {
	// Type is the event kind
	Type EventType `json:"type"`

	// PlayerID is the acting player, when there is one
	PlayerID string `json:"player_id,omitempty"`

	// OtherID is the counterparty player, when there is one
	OtherID string `json:"other_id,omitempty"`

	// Position is the board position involved, when there is one
	Position int `json:"position,omitempty"`

	// Amount is the money involved, when there is any
	Amount int `json:"amount,omitempty"`

	// Roll carries the dice for dice events
	Roll *DiceRoll `json:"roll,omitempty"`

	// Card is the drawn card's text for card events
	Card string `json:"card,omitempty"`

	// Description is a human-readable account of what happened
	Description string `json:"description"`
}
