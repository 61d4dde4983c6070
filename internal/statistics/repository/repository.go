// Package repository provides data access layer for statistics module.
package repository

import (
	"context"

	"gorm.io/gorm"

	matchModel "github.com/dailygator/dailygator/internal/match/model"
	playerModel "github.com/dailygator/dailygator/internal/player/model"
	teamModel "github.com/dailygator/dailygator/internal/team/model"
)

// Snapshot is one consistent read of the tables the aggregator consumes.
type Snapshot struct {
	Players []playerModel.Player
	Teams   []teamModel.Team
	Matches []matchModel.Match
}

// Repository defines the interface for statistics data access operations.
type Repository interface {
	// LoadSnapshot reads players, teams and the full match history.
	LoadSnapshot(ctx context.Context) (*Snapshot, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new statistics repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// LoadSnapshot reads players, teams and the full match history.
func (r *repository) LoadSnapshot(ctx context.Context) (*Snapshot, error) {
	snap := &Snapshot{}

	if err := r.db.WithContext(ctx).Order("id ASC").Find(&snap.Players).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&snap.Teams).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Find(&snap.Matches).Error; err != nil {
		return nil, err
	}

	return snap, nil
}
