package model

// PlayerResponse represents a player with its resolved team name.
type PlayerResponse struct {
	Player   Player `json:"player"`
	TeamName string `json:"team_name"`
}
