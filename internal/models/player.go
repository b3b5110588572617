package models

// HotelHouseCount is the house count that represents a hotel
const HotelHouseCount = 5

// PropertyState tracks the improvements on one owned space
type PropertyState struct {
	// Houses is 0-4 for houses, 5 for a hotel
	Houses int `json:"houses"`

	// Mortgaged suspends rent collection until the mortgage is lifted
	Mortgaged bool `json:"mortgaged"`
}

// HasHotel reports whether the property carries a hotel
func (p *PropertyState) HasHotel() bool {
	return p.Houses == HotelHouseCount
}

// Clone returns an independent copy
func (p *PropertyState) Clone() *PropertyState {
	cp := *p
	return &cp
}

// Player is one participant in a game
type Player struct {
	// ID is the unique identifier for the player
	ID string `json:"id"`

	// Name is the display name of the player
	Name string `json:"name"`

	// Position is the board index the player stands on, 0-39
	Position int `json:"position"`

	// Balance is the player's cash. It may go negative transiently
	// while a debt is pending.
	Balance int `json:"balance"`

	// Properties maps owned board positions to their improvement state
	Properties map[int]*PropertyState `json:"properties"`

	// InJail marks the player as jailed
	InJail bool `json:"in_jail"`

	// JailAttempts counts consecutive failed roll-for-doubles escapes, 0-3
	JailAttempts int `json:"jail_attempts"`

	// JailCards is the number of Get Out of Jail Free cards held
	JailCards int `json:"jail_cards"`

	// Bankrupt marks the player as permanently eliminated
	Bankrupt bool `json:"bankrupt"`

	// DoublesCount counts consecutive doubles this turn, 0-3
	DoublesCount int `json:"doubles_count"`
}

// Owns reports whether the player owns the given board position
func (p *Player) Owns(position int) bool {
	_, ok := p.Properties[position]
	return ok
}

// OwnsAll reports whether the player owns every one of the given positions
func (p *Player) OwnsAll(positions []int) bool {
	for _, pos := range positions {
		if !p.Owns(pos) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy. The properties map is copied entry by entry
// so snapshots never share mutable state.
func (p *Player) Clone() *Player {
	cp := *p
	cp.Properties = make(map[int]*PropertyState, len(p.Properties))
	for pos, ps := range p.Properties {
		cp.Properties[pos] = ps.Clone()
	}
	return &cp
}
