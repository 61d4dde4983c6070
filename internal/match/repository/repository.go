// Package repository provides data access layer for the match module.
package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	matchModel "github.com/dailygator/dailygator/internal/match/model"
)

// Repository defines the interface for match data access operations.
// Matches are insert-only; there are no update or delete operations.
type Repository interface {
	// CreateBatch inserts all matches of one bracket in a single statement.
	CreateBatch(ctx context.Context, matches []matchModel.Match) error

	// ExistsForDate reports whether any match exists for the given date.
	ExistsForDate(ctx context.Context, date string) (bool, error)

	// ListByDate returns a date's matches in bracket order
	// (quarter before semi before final, then by rank_index).
	ListByDate(ctx context.Context, date string) ([]matchModel.Match, error)

	// ListAll returns the complete match history.
	ListAll(ctx context.Context) ([]matchModel.Match, error)

	// FinalForDate returns the final-rank match for the given date.
	FinalForDate(ctx context.Context, date string) (*matchModel.Match, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new match repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// CreateBatch inserts all matches of one bracket in a single statement.
func (r *repository) CreateBatch(ctx context.Context, matches []matchModel.Match) error {
	if len(matches) == 0 {
		return nil
	}

	err := r.db.WithContext(ctx).Create(&matches).Error
	if err != nil {
		if isDuplicateError(err) {
			return matchModel.ErrDuplicateBracketSlot
		}
		return err
	}
	return nil
}

// isDuplicateError checks if error is a unique constraint violation.
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "UNIQUE constraint")
}

// ExistsForDate reports whether any match exists for the given date.
func (r *repository) ExistsForDate(ctx context.Context, date string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&matchModel.Match{}).
		Where("date = ?", date).
		Limit(1).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListByDate returns a date's matches in bracket order.
func (r *repository) ListByDate(ctx context.Context, date string) ([]matchModel.Match, error) {
	var matches []matchModel.Match
	err := r.db.WithContext(ctx).
		Where("date = ?", date).
		Order("CASE rank WHEN 'quarter' THEN 0 WHEN 'semi' THEN 1 WHEN 'final' THEN 2 ELSE 3 END, rank_index ASC").
		Find(&matches).Error
	if err != nil {
		return nil, err
	}
	if matches == nil {
		matches = []matchModel.Match{}
	}
	return matches, nil
}

// ListAll returns the complete match history.
func (r *repository) ListAll(ctx context.Context) ([]matchModel.Match, error) {
	var matches []matchModel.Match
	err := r.db.WithContext(ctx).Find(&matches).Error
	if err != nil {
		return nil, err
	}
	if matches == nil {
		matches = []matchModel.Match{}
	}
	return matches, nil
}

// FinalForDate returns the final-rank match for the given date.
func (r *repository) FinalForDate(ctx context.Context, date string) (*matchModel.Match, error) {
	var match matchModel.Match
	err := r.db.WithContext(ctx).
		Where("date = ? AND rank = ?", date, matchModel.RankFinal).
		First(&match).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, matchModel.ErrMatchNotFound
		}
		return nil, err
	}
	return &match, nil
}
