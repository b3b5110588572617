package game

import "github.com/boardwalk-games/boardwalk/internal/models"

type SaveGameInput struct {
	State *models.GameState
}

type GetGameInput struct {
	GameID string
}

type AppendEventsInput struct {
	GameID string
	Events []models.Event
}

type GetEventsInput struct {
	GameID string
}

type ListGamesInput struct {
}

type ListGamesOutput struct {
	GameIDs []string
}

type DeleteGameInput struct {
	GameID string
}
