package model

import "errors"

var (
	// ErrAlreadyRan indicates a bracket already exists for the date.
	// Callers should treat this as "already complete", not a failure.
	ErrAlreadyRan = errors.New("tournament already ran for date")
	// ErrEmptyRoster indicates a team has no player to field as its
	// representative. The run aborts before any write, since a missing
	// entrant breaks the bracket's round structure.
	ErrEmptyRoster = errors.New("team has no eligible players")
	// ErrNoTeams indicates there are no teams to draw a bracket from.
	ErrNoTeams = errors.New("no teams registered")
	// ErrInvalidDate indicates the date is not a valid YYYY-MM-DD day.
	ErrInvalidDate = errors.New("invalid date")
)
