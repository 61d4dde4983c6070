package model

import playerModel "github.com/dailygator/dailygator/internal/player/model"

// TeamResponse represents a team with its current roster.
type TeamResponse struct {
	Team    Team                 `json:"team"`
	Members []playerModel.Player `json:"members"`
}

// TeamRankResponse represents a team's 1-based leaderboard position.
type TeamRankResponse struct {
	TeamName string `json:"team_name"`
	Rank     int    `json:"rank"`
}

// TeamMVPResponse represents the best player of a team by (score, wins).
type TeamMVPResponse struct {
	TeamName string             `json:"team_name"`
	MVP      playerModel.Player `json:"mvp"`
	Score    int                `json:"score"`
	Wins     int                `json:"wins"`
}
