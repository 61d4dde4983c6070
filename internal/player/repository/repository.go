// Package repository provides data access layer for the player module.
package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	playerModel "github.com/dailygator/dailygator/internal/player/model"
)

// Repository defines the interface for player data access operations.
type Repository interface {
	// GetByID finds a player by id.
	GetByID(ctx context.Context, id int) (*playerModel.Player, error)

	// List returns all players ordered by id.
	List(ctx context.Context) ([]playerModel.Player, error)

	// AddCounters atomically adds one run's deltas to a player's career
	// counters. Increments keep concurrent runs for different dates from
	// clobbering each other's writes.
	AddCounters(ctx context.Context, id, gamesPlayed, gamesWon, tournamentsWon int) error
}

type repository struct {
	db *gorm.DB
}

// New creates a new player repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// GetByID finds a player by id.
func (r *repository) GetByID(ctx context.Context, id int) (*playerModel.Player, error) {
	var player playerModel.Player
	err := r.db.WithContext(ctx).First(&player, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, playerModel.ErrPlayerNotFound
		}
		return nil, err
	}
	return &player, nil
}

// List returns all players ordered by id.
func (r *repository) List(ctx context.Context) ([]playerModel.Player, error) {
	var players []playerModel.Player
	err := r.db.WithContext(ctx).Order("id ASC").Find(&players).Error
	if err != nil {
		return nil, err
	}
	if players == nil {
		players = []playerModel.Player{}
	}
	return players, nil
}

// AddCounters atomically adds one run's deltas to a player's career counters.
func (r *repository) AddCounters(ctx context.Context, id, gamesPlayed, gamesWon, tournamentsWon int) error {
	result := r.db.WithContext(ctx).
		Model(&playerModel.Player{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"games_played":    gorm.Expr("games_played + ?", gamesPlayed),
			"games_won":       gorm.Expr("games_won + ?", gamesWon),
			"tournaments_won": gorm.Expr("tournaments_won + ?", tournamentsWon),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return playerModel.ErrPlayerNotFound
	}
	return nil
}
