// Package service provides business logic layer for team module.
package service

import (
	"context"

	"go.uber.org/zap"

	playerRepo "github.com/dailygator/dailygator/internal/player/repository"
	statsService "github.com/dailygator/dailygator/internal/statistics/service"
	"github.com/dailygator/dailygator/internal/team/model"
	"github.com/dailygator/dailygator/internal/team/repository"
)

// Service defines the interface for team business logic operations.
type Service interface {
	// List returns all teams.
	List(ctx context.Context) ([]model.Team, error)

	// Get returns a team with its current roster.
	Get(ctx context.Context, name string) (*model.TeamResponse, error)

	// Rank returns a team's 1-based position in the team leaderboard.
	Rank(ctx context.Context, name string) (*model.TeamRankResponse, error)

	// MVP returns the team member with the best (score, wins).
	MVP(ctx context.Context, name string) (*model.TeamMVPResponse, error)
}

type service struct {
	repo    repository.Repository
	players playerRepo.Repository
	stats   statsService.Service
	logger  *zap.SugaredLogger
}

// New creates a new team service instance.
func New(repo repository.Repository, players playerRepo.Repository, stats statsService.Service, logger *zap.SugaredLogger) Service {
	return &service{
		repo:    repo,
		players: players,
		stats:   stats,
		logger:  logger,
	}
}

// List returns all teams.
func (s *service) List(ctx context.Context) ([]model.Team, error) {
	teams, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Errorw("List teams failed", "error", err)
		return nil, err
	}
	return teams, nil
}

// Get returns a team with its current roster.
func (s *service) Get(ctx context.Context, name string) (*model.TeamResponse, error) {
	if name == "" {
		return nil, model.ErrInvalidTeamName
	}

	team, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}

	members, err := s.repo.GetMembers(ctx, team.ID)
	if err != nil {
		s.logger.Errorw("Get team members failed", "team", name, "error", err)
		return nil, err
	}

	return &model.TeamResponse{Team: *team, Members: members}, nil
}

// Rank returns a team's 1-based position in the team leaderboard.
func (s *service) Rank(ctx context.Context, name string) (*model.TeamRankResponse, error) {
	if name == "" {
		return nil, model.ErrInvalidTeamName
	}

	rank, err := s.stats.TeamRank(ctx, name)
	if err != nil {
		return nil, err
	}

	return &model.TeamRankResponse{TeamName: name, Rank: rank}, nil
}

// MVP returns the team member with the best (score, wins).
func (s *service) MVP(ctx context.Context, name string) (*model.TeamMVPResponse, error) {
	if name == "" {
		return nil, model.ErrInvalidTeamName
	}

	best, err := s.stats.TeamMVP(ctx, name)
	if err != nil {
		return nil, err
	}

	mvp, err := s.players.GetByID(ctx, best.ID)
	if err != nil {
		s.logger.Errorw("MVP player lookup failed", "team", name, "player_id", best.ID, "error", err)
		return nil, err
	}

	return &model.TeamMVPResponse{
		TeamName: name,
		MVP:      *mvp,
		Score:    best.Score,
		Wins:     best.Wins,
	}, nil
}
