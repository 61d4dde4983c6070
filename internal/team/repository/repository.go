// Package repository provides data access layer for the team module.
package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	playerModel "github.com/dailygator/dailygator/internal/player/model"
	teamModel "github.com/dailygator/dailygator/internal/team/model"
)

// Repository defines the interface for team data access operations.
// Teams are seeded reference data; the repository is read-only.
type Repository interface {
	// List returns all teams ordered by id.
	List(ctx context.Context) ([]teamModel.Team, error)

	// GetByName finds a team by name.
	GetByName(ctx context.Context, name string) (*teamModel.Team, error)

	// GetMembers returns the current roster of a team.
	GetMembers(ctx context.Context, teamID int) ([]playerModel.Player, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new team repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// List returns all teams ordered by id.
func (r *repository) List(ctx context.Context) ([]teamModel.Team, error) {
	var teams []teamModel.Team
	err := r.db.WithContext(ctx).Order("id ASC").Find(&teams).Error
	if err != nil {
		return nil, err
	}
	if teams == nil {
		teams = []teamModel.Team{}
	}
	return teams, nil
}

// GetByName finds a team by name.
func (r *repository) GetByName(ctx context.Context, name string) (*teamModel.Team, error) {
	var team teamModel.Team
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&team).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, teamModel.ErrTeamNotFound
		}
		return nil, err
	}
	return &team, nil
}

// GetMembers returns the current roster of a team.
func (r *repository) GetMembers(ctx context.Context, teamID int) ([]playerModel.Player, error) {
	var members []playerModel.Player
	err := r.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		Order("id ASC").
		Find(&members).Error
	if err != nil {
		return nil, err
	}
	if members == nil {
		members = []playerModel.Player{}
	}
	return members, nil
}
