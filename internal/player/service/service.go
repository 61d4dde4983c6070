// Package service provides business logic layer for player module.
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/dailygator/dailygator/internal/player/model"
	"github.com/dailygator/dailygator/internal/player/repository"
	teamRepo "github.com/dailygator/dailygator/internal/team/repository"
)

// Service defines the interface for player business logic operations.
type Service interface {
	// Get returns a player with its resolved team name.
	Get(ctx context.Context, id int) (*model.PlayerResponse, error)
}

type service struct {
	repo   repository.Repository
	teams  teamRepo.Repository
	logger *zap.SugaredLogger
}

// New creates a new player service instance.
func New(repo repository.Repository, teams teamRepo.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, teams: teams, logger: logger}
}

// Get returns a player with its resolved team name.
func (s *service) Get(ctx context.Context, id int) (*model.PlayerResponse, error) {
	if id <= 0 {
		return nil, model.ErrInvalidPlayerID
	}

	player, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := &model.PlayerResponse{Player: *player}

	teams, err := s.teams.List(ctx)
	if err != nil {
		s.logger.Errorw("Get player team lookup failed", "player_id", id, "error", err)
		return nil, err
	}
	for _, t := range teams {
		if t.ID == player.TeamID {
			resp.TeamName = t.Name
			break
		}
	}

	return resp, nil
}
