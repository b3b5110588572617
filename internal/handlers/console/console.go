// Package console renders the event stream and state snapshots to a
// writer. It is strictly downstream of the engine: it consumes events
// and emits nothing back.
package console

import (
	"errors"
	"fmt"
	"io"

	"github.com/boardwalk-games/boardwalk/internal/models"
)

// Config holds configuration for the console renderer
type Config struct {
	// Writer receives the rendered output
	Writer io.Writer
}

// Renderer writes a line per event
type Renderer struct {
	w io.Writer
}

// New creates a console renderer
func New(cfg *Config) (*Renderer, error) {
	if cfg == nil || cfg.Writer == nil {
		return nil, errors.New("config and writer cannot be nil")
	}
	return &Renderer{w: cfg.Writer}, nil
}

// Observe prints the new events, and the final standings when the
// game ends.
func (r *Renderer) Observe(state *models.GameState, events []models.Event) {
	for _, ev := range events {
		fmt.Fprintf(r.w, "[turn %d] %s\n", state.Turn, ev.Description)
		if ev.Type == models.EventGameOver {
			r.renderStandings(state)
		}
	}
}

func (r *Renderer) renderStandings(state *models.GameState) {
	fmt.Fprintln(r.w, "final standings:")
	for _, p := range state.Players {
		status := "active"
		if p.Bankrupt {
			status = "bankrupt"
		}
		if p.ID == state.Winner {
			status = "winner"
		}
		fmt.Fprintf(r.w, "  %-20s $%-6d %d properties  %s\n", p.Name, p.Balance, len(p.Properties), status)
	}
}
