package models

// DiceRoll records the two dice of a single roll
type DiceRoll struct {
	// Die1 is the first die, 1-6
	Die1 int `json:"die1"`

	// Die2 is the second die, 1-6
	Die2 int `json:"die2"`
}

// Sum returns the combined value of both dice
func (r DiceRoll) Sum() int {
	return r.Die1 + r.Die2
}

// IsDoubles reports whether both dice show the same value
func (r DiceRoll) IsDoubles() bool {
	return r.Die1 == r.Die2
}
