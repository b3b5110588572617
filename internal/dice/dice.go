package dice

import (
	"math/rand"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/boardwalk-games/boardwalk/internal/dice Roller

// Roller provides dice rolling functionality
type Roller interface {
	// RollPair rolls two independent six-sided dice
	RollPair() (int, int)
}

// Config for dice roller
type Config struct {
	// Optional seed for reproducible games
	Seed int64
}

// SeededRoller implements Roller over a private rand source
type SeededRoller struct {
	random *rand.Rand
}

// New creates a new dice roller
func New(cfg *Config) *SeededRoller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)

	return &SeededRoller{
		random: rand.New(source),
	}
}

// RollPair rolls two independent six-sided dice
func (r *SeededRoller) RollPair() (int, int) {
	return r.random.Intn(6) + 1, r.random.Intn(6) + 1
}
