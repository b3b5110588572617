package models

import "slices"

// TurnPhase represents where the current player is within their turn
type TurnPhase string

const (
	// PhasePreRoll is the start of a turn: rolling, building,
	// mortgaging, and trading are all available
	PhasePreRoll TurnPhase = "pre_roll"

	// PhaseAwaitingRoll is entered only for a jailed player who must
	// choose how to attempt their escape
	PhaseAwaitingRoll TurnPhase = "awaiting_roll"

	// PhasePostRollLand names the automatic landing-resolution step.
	// Landing resolves synchronously inside the roll or move action,
	// which assigns the resulting phase directly, so no stored
	// snapshot ever carries this value. It exists for event payloads
	// and external consumers that label the step.
	PhasePostRollLand TurnPhase = "post_roll_land"

	// PhasePurchaseDecision awaits a buy-or-decline choice on an
	// unowned ownable space
	PhasePurchaseDecision TurnPhase = "purchase_decision"

	// PhaseAuction awaits bid collection for a declined property
	PhaseAuction TurnPhase = "auction"

	// PhasePayingDebt blocks the turn until a pending debt is resolved
	PhasePayingDebt TurnPhase = "paying_debt"

	// PhasePostAction is post-landing management before ending the turn
	PhasePostAction TurnPhase = "post_action"

	// PhaseTrading is a sub-phase entered while a trade offer is
	// outstanding; control returns to the phase that spawned it
	PhaseTrading TurnPhase = "trading"

	// PhaseTurnComplete is the per-turn terminal state
	PhaseTurnComplete TurnPhase = "turn_complete"
)

// CreditorBank is the creditor value for debts owed to the bank
const CreditorBank = "bank"

// PendingDebt records an unresolved negative-balance obligation
type PendingDebt struct {
	// Creditor is a player ID, or CreditorBank
	Creditor string `json:"creditor"`

	// Amount is the amount owed
	Amount int `json:"amount"`

	// Reason is a human-readable description of the debt's origin
	Reason string `json:"reason"`
}

// Clone returns an independent copy
func (d *PendingDebt) Clone() *PendingDebt {
	cp := *d
	return &cp
}

// TradeOffer is a two-sided proposal between players
type TradeOffer struct {
	// From is the proposing player's ID
	From string `json:"from"`

	// To is the receiving player's ID
	To string `json:"to"`

	// OfferedProperties are board positions From gives up
	OfferedProperties []int `json:"offered_properties"`

	// OfferedMoney is cash From gives up
	OfferedMoney int `json:"offered_money"`

	// RequestedProperties are board positions To gives up
	RequestedProperties []int `json:"requested_properties"`

	// RequestedMoney is cash To gives up
	RequestedMoney int `json:"requested_money"`
}

// Clone returns a deep copy
func (t *TradeOffer) Clone() *TradeOffer {
	cp := *t
	cp.OfferedProperties = slices.Clone(t.OfferedProperties)
	cp.RequestedProperties = slices.Clone(t.RequestedProperties)
	return &cp
}

// Deck is a live draw pile of indices into an immutable card table
type Deck struct {
	// Cards are the remaining draw indices, drawn from the front
	Cards []int `json:"cards"`

	// Discards are drawn indices awaiting reshuffle
	Discards []int `json:"discards"`
}

// Clone returns a deep copy. Emptiness is preserved: an empty pile
// stays an empty slice, never nil, so clones compare and serialize
// identically to their originals.
func (d *Deck) Clone() *Deck {
	return &Deck{
		Cards:    slices.Clone(d.Cards),
		Discards: slices.Clone(d.Discards),
	}
}

// GameState is the full snapshot of one game. Every applied action
// derives a new GameState by value; snapshots never share mutable
// containers.
type GameState struct {
	// ID is the unique identifier for the game
	ID string `json:"id"`

	// Players in seating order. Bankrupt players stay in place.
	Players []*Player `json:"players"`

	// Current is the index of the player whose turn it is
	Current int `json:"current"`

	// Phase is the current turn phase
	Phase TurnPhase `json:"phase"`

	// Turn counts completed turns across all players
	Turn int `json:"turn"`

	// LastRoll is the most recent dice roll, nil before the first
	LastRoll *DiceRoll `json:"last_roll,omitempty"`

	// Chance and CommunityChest are the two live decks
	Chance         *Deck `json:"chance"`
	CommunityChest *Deck `json:"community_chest"`

	// BankHouses and BankHotels are the bank's remaining building supply
	BankHouses int `json:"bank_houses"`
	BankHotels int `json:"bank_hotels"`

	// Debt is the at-most-one pending debt
	Debt *PendingDebt `json:"debt,omitempty"`

	// Trade is the at-most-one outstanding trade offer
	Trade *TradeOffer `json:"trade,omitempty"`

	// TradeReturn is the phase trading was spawned from
	TradeReturn TurnPhase `json:"trade_return,omitempty"`

	// Events is the append-only event log for the whole game
	Events []Event `json:"events"`

	// Winner is the winning player's ID once the game is over
	Winner string `json:"winner,omitempty"`
}

// CurrentPlayer returns the player whose turn it is
func (g *GameState) CurrentPlayer() *Player {
	return g.Players[g.Current]
}

// PlayerByID finds a player by ID
func (g *GameState) PlayerByID(id string) (*Player, bool) {
	for _, p := range g.Players {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// ActivePlayers returns the non-bankrupt players in seating order
func (g *GameState) ActivePlayers() []*Player {
	var active []*Player
	for _, p := range g.Players {
		if !p.Bankrupt {
			active = append(active, p)
		}
	}
	return active
}

// Record appends an event to the game's event log
func (g *GameState) Record(ev Event) {
	g.Events = append(g.Events, ev)
}

// Clone returns a deep copy of the whole snapshot
func (g *GameState) Clone() *GameState {
	cp := *g
	cp.Players = make([]*Player, len(g.Players))
	for i, p := range g.Players {
		cp.Players[i] = p.Clone()
	}
	if g.LastRoll != nil {
		roll := *g.LastRoll
		cp.LastRoll = &roll
	}
	cp.Chance = g.Chance.Clone()
	cp.CommunityChest = g.CommunityChest.Clone()
	if g.Debt != nil {
		cp.Debt = g.Debt.Clone()
	}
	if g.Trade != nil {
		cp.Trade = g.Trade.Clone()
	}
	cp.Events = slices.Clone(g.Events)
	return &cp
}
