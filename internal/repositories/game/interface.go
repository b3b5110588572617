package game

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/boardwalk-games/boardwalk/internal/repositories/game Repository

import (
	"context"

	"github.com/boardwalk-games/boardwalk/internal/models"
)

// Repository defines the interface for game persistence: the latest
// snapshot plus the append-only event history per game.
type Repository interface {
	// SaveGame persists the latest snapshot
	SaveGame(ctx context.Context, input *SaveGameInput) error

	// GetGame retrieves a snapshot by game ID
	GetGame(ctx context.Context, input *GetGameInput) (*models.GameState, error)

	// AppendEvents appends to a game's event history
	AppendEvents(ctx context.Context, input *AppendEventsInput) error

	// GetEvents retrieves a game's full event history
	GetEvents(ctx context.Context, input *GetEventsInput) ([]models.Event, error)

	// ListGames retrieves the IDs of all saved games
	ListGames(ctx context.Context, input *ListGamesInput) (*ListGamesOutput, error)

	// DeleteGame removes a game and its history
	DeleteGame(ctx context.Context, input *DeleteGameInput) error
}
