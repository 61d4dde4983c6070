// Package model provides domain models for the tournament module.
package model

import (
	matchModel "github.com/dailygator/dailygator/internal/match/model"
	playerModel "github.com/dailygator/dailygator/internal/player/model"
)

// DateFormat is the calendar-day layout used as the tournament identity key.
// At most one tournament exists per date.
const DateFormat = "2006-01-02"

// RunResult represents the outcome of one completed tournament run.
type RunResult struct {
	Date     string             `json:"date"`
	Champion playerModel.Player `json:"champion"`
	Matches  []matchModel.Match `json:"matches"`
}

// RunResponse is the trigger endpoint's response.
type RunResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Champion string `json:"champion,omitempty"`
}

// BracketResponse represents one date's bracket with the champion, matches
// in bracket order (quarter, semi, final, then rank_index).
type BracketResponse struct {
	Date     string             `json:"date"`
	Matches  []matchModel.Match `json:"matches"`
	Champion *string            `json:"champion,omitempty"`
}
