// Package cards holds the canonical Chance and Community Chest tables
// and the draw-pile mechanics. The tables are immutable; live decks are
// index permutations stored on the game state.
package cards

import (
	"math/rand"

	"github.com/boardwalk-games/boardwalk/internal/models"
)

// EffectKind tags a card effect. The set is closed.
type EffectKind string

const (
	// EffectMoveTo moves to an absolute position, paying the Go bonus
	// if Go is passed on the way
	EffectMoveTo EffectKind = "move_to"

	// EffectMoveBack moves back a number of spaces without paying Go
	EffectMoveBack EffectKind = "move_back"

	// EffectMoveToNearest advances to the next space of NearestKind,
	// with RentMultiplier forced on the resulting rent
	EffectMoveToNearest EffectKind = "move_to_nearest"

	// EffectCollect receives Amount from the bank
	EffectCollect EffectKind = "collect"

	// EffectPay pays Amount to the bank
	EffectPay EffectKind = "pay"

	// EffectRepairs pays PerHouse per house and PerHotel per hotel
	EffectRepairs EffectKind = "repairs"

	// EffectCollectFromEach receives Amount from every other player
	EffectCollectFromEach EffectKind = "collect_from_each"

	// EffectPayToEach pays Amount to every other player
	EffectPayToEach EffectKind = "pay_to_each"

	// EffectJailCard grants a Get Out of Jail Free card
	EffectJailCard EffectKind = "jail_card"

	// EffectGoToJail sends the player directly to jail
	EffectGoToJail EffectKind = "go_to_jail"
)

// Card is one canonical card
type Card struct {
	// Text is the printed card text
	Text string

	// Effect selects the state mutation
	Effect EffectKind

	// Amount is the money involved, when there is any
	Amount int

	// Position is the destination for EffectMoveTo
	Position int

	// Spaces is the distance for EffectMoveBack
	Spaces int

	// NearestKind is the target kind for EffectMoveToNearest
	NearestKind models.SpaceKind

	// RentMultiplier forces the rent computation after an
	// EffectMoveToNearest landing
	RentMultiplier int

	// PerHouse and PerHotel are the EffectRepairs rates
	PerHouse int
	PerHotel int
}

var chance = []Card{
	{Text: "Advance to Go (Collect $200)", Effect: EffectMoveTo, Position: 0},
	{Text: "Advance to Illinois Avenue", Effect: EffectMoveTo, Position: 24},
	{Text: "Advance to St. Charles Place", Effect: EffectMoveTo, Position: 11},
	{Text: "Advance to the nearest Utility. If owned, pay the owner ten times your dice roll", Effect: EffectMoveToNearest, NearestKind: models.SpaceKindUtility, RentMultiplier: 10},
	{Text: "Advance to the nearest Railroad. If owned, pay the owner twice the rent", Effect: EffectMoveToNearest, NearestKind: models.SpaceKindRailroad, RentMultiplier: 2},
	{Text: "Advance to the nearest Railroad. If owned, pay the owner twice the rent", Effect: EffectMoveToNearest, NearestKind: models.SpaceKindRailroad, RentMultiplier: 2},
	{Text: "Bank pays you dividend of $50", Effect: EffectCollect, Amount: 50},
	{Text: "Get Out of Jail Free", Effect: EffectJailCard},
	{Text: "Go Back 3 Spaces", Effect: EffectMoveBack, Spaces: 3},
	{Text: "Go to Jail. Do not pass Go, do not collect $200", Effect: EffectGoToJail},
	{Text: "Make general repairs on all your property: $25 per house, $100 per hotel", Effect: EffectRepairs, PerHouse: 25, PerHotel: 100},
	{Text: "Pay poor tax of $15", Effect: EffectPay, Amount: 15},
	{Text: "Take a trip to Reading Railroad", Effect: EffectMoveTo, Position: 5},
	{Text: "Take a walk on the Boardwalk", Effect: EffectMoveTo, Position: 39},
	{Text: "You have been elected Chairman of the Board. Pay each player $50", Effect: EffectPayToEach, Amount: 50},
	{Text: "Your building loan matures. Collect $150", Effect: EffectCollect, Amount: 150},
}

var communityChest = []Card{
	{Text: "Advance to Go (Collect $200)", Effect: EffectMoveTo, Position: 0},
	{Text: "Bank error in your favor. Collect $200", Effect: EffectCollect, Amount: 200},
	{Text: "Doctor's fee. Pay $50", Effect: EffectPay, Amount: 50},
	{Text: "From sale of stock you get $50", Effect: EffectCollect, Amount: 50},
	{Text: "Get Out of Jail Free", Effect: EffectJailCard},
	{Text: "Go to Jail. Do not pass Go, do not collect $200", Effect: EffectGoToJail},
	{Text: "Grand Opera Night. Collect $50 from every player", Effect: EffectCollectFromEach, Amount: 50},
	{Text: "Holiday fund matures. Collect $100", Effect: EffectCollect, Amount: 100},
	{Text: "Income tax refund. Collect $20", Effect: EffectCollect, Amount: 20},
	{Text: "It is your birthday. Collect $10 from every player", Effect: EffectCollectFromEach, Amount: 10},
	{Text: "Life insurance matures. Collect $100", Effect: EffectCollect, Amount: 100},
	{Text: "Pay hospital fees of $100", Effect: EffectPay, Amount: 100},
	{Text: "Pay school fees of $150", Effect: EffectPay, Amount: 150},
	{Text: "Receive $25 consultancy fee", Effect: EffectCollect, Amount: 25},
	{Text: "You are assessed for street repairs: $40 per house, $115 per hotel", Effect: EffectRepairs, PerHouse: 40, PerHotel: 115},
	{Text: "You have won second prize in a beauty contest. Collect $10", Effect: EffectCollect, Amount: 10},
}

// Chance returns the immutable Chance table
func Chance() []Card {
	return chance
}

// CommunityChest returns the immutable Community Chest table
func CommunityChest() []Card {
	return communityChest
}

// NewDeck builds a freshly shuffled deck over a table of n cards
func NewDeck(n int, random *rand.Rand) *models.Deck {
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	shuffle(indices, random)
	return &models.Deck{Cards: indices, Discards: []int{}}
}

// Draw removes and returns the next card index. An exhausted deck
// reshuffles its discard pile in place first.
func Draw(d *models.Deck, random *rand.Rand) int {
	if len(d.Cards) == 0 {
		d.Cards = d.Discards
		d.Discards = []int{}
		shuffle(d.Cards, random)
	}
	idx := d.Cards[0]
	d.Cards = d.Cards[1:]
	return idx
}

// Discard returns a drawn index to the discard pile. Get Out of Jail
// Free cards are never discarded; they leave circulation until spent.
func Discard(d *models.Deck, idx int) {
	d.Discards = append(d.Discards, idx)
}

// shuffle is a Fisher-Yates shuffle over the given indices
func shuffle(indices []int, random *rand.Rand) {
	for i := len(indices) - 1; i > 0; i-- {
		j := random.Intn(i + 1)
		indices[i], indices[j] = indices[j], indices[i]
	}
}
