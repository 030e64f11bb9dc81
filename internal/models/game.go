package models

import "time"

// GameStatus is the lifecycle state of a game
type GameStatus string

const (
	StatusScheduled  GameStatus = "scheduled"
	StatusInProgress GameStatus = "in_progress"
	StatusCompleted  GameStatus = "completed"
)

// Regular season week bounds
const (
	MinWeek = 1
	MaxWeek = 18
)

// ParseGameStatus converts a raw status string to a GameStatus
func ParseGameStatus(raw string) (GameStatus, error) {
	switch GameStatus(raw) {
	case StatusScheduled, StatusInProgress, StatusCompleted:
		return GameStatus(raw), nil
	default:
		return "", ErrInvalidStatus
	}
}

// Game represents a single matchup
type Game struct {
	ID       string     `json:"id" validate:"required"`
	HomeTeam Team       `json:"homeTeam"`
	AwayTeam Team       `json:"awayTeam"`
	GameTime time.Time  `json:"gameTime" validate:"required"`
	Week     int        `json:"week" validate:"min=1,max=18"`
	Season   int        `json:"season" validate:"required,gt=0"`
	Status   GameStatus `json:"status" validate:"oneof=scheduled in_progress completed"`
}

// Involves reports whether the team with the given abbreviation plays in the game
func (g Game) Involves(abbreviation string) bool {
	return g.HomeTeam.Abbreviation == abbreviation || g.AwayTeam.Abbreviation == abbreviation
}
