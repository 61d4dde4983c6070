package model

import "errors"

var (
	// ErrMatchNotFound indicates that no match satisfies the query.
	ErrMatchNotFound = errors.New("match not found")
	// ErrDuplicateBracketSlot indicates an insert collided with an existing
	// (date, rank, rank_index) row.
	ErrDuplicateBracketSlot = errors.New("bracket slot already exists")
)
