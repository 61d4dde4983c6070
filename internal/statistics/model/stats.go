// Package model provides data transfer objects for statistics module.
package model

// PlayerStats represents one player's aggregated match record.
type PlayerStats struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Team   string `json:"team"`
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
	Score  int    `json:"score"`
}

// TeamStats represents one team's aggregated match record, summed over its
// current roster.
type TeamStats struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
	Score  int    `json:"score"`
}

// PlayersResponse represents the player leaderboard response.
type PlayersResponse struct {
	Players []PlayerStats `json:"players"`
	Total   int           `json:"total"`
}

// TeamsResponse represents the team leaderboard response.
type TeamsResponse struct {
	Teams []TeamStats `json:"teams"`
	Total int         `json:"total"`
}

// ChampionResponse represents a date's champion.
type ChampionResponse struct {
	Date     string `json:"date"`
	PlayerID int    `json:"player_id"`
	Name     string `json:"name"`
	Team     string `json:"team"`
}
