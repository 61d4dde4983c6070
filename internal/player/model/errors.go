package model

import "errors"

var (
	// ErrPlayerNotFound indicates that the requested player does not exist.
	ErrPlayerNotFound = errors.New("player not found")
	// ErrInvalidPlayerID indicates that the provided player id is invalid.
	ErrInvalidPlayerID = errors.New("invalid player id")
)
