package model

import "errors"

var (
	// ErrNoChampion indicates no final-rank match exists for the date.
	ErrNoChampion = errors.New("no champion for date")
)
