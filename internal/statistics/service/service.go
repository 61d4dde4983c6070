// Package service provides leaderboard aggregation for the statistics module.
package service

import (
	"context"
	"errors"
	"sort"
	"strings"

	"go.uber.org/zap"

	matchModel "github.com/dailygator/dailygator/internal/match/model"
	matchRepo "github.com/dailygator/dailygator/internal/match/repository"
	playerModel "github.com/dailygator/dailygator/internal/player/model"
	"github.com/dailygator/dailygator/internal/statistics/cache"
	"github.com/dailygator/dailygator/internal/statistics/model"
	"github.com/dailygator/dailygator/internal/statistics/repository"
	teamModel "github.com/dailygator/dailygator/internal/team/model"
)

// Service defines the interface for statistics business logic operations.
type Service interface {
	// PlayerLeaderboard returns the sorted player leaderboard, optionally
	// truncated to limit entries (limit <= 0 means all).
	PlayerLeaderboard(ctx context.Context, limit int) (*model.PlayersResponse, error)

	// TeamLeaderboard returns the sorted team leaderboard.
	TeamLeaderboard(ctx context.Context, limit int) (*model.TeamsResponse, error)

	// ChampionForDate returns the winner of the date's final-rank match.
	ChampionForDate(ctx context.Context, date string) (*model.ChampionResponse, error)

	// TeamRank returns a team's 1-based position in the team leaderboard.
	TeamRank(ctx context.Context, teamName string) (int, error)

	// TeamMVP returns the member of a team with the best (score, wins).
	TeamMVP(ctx context.Context, teamName string) (*model.PlayerStats, error)
}

type service struct {
	repo    repository.Repository
	matches matchRepo.Repository
	cache   *cache.Cache
	logger  *zap.SugaredLogger
}

// New creates a new statistics service instance. The cache is owned by the
// caller and shared with whatever invalidates it; it may be nil.
func New(repo repository.Repository, matches matchRepo.Repository, c *cache.Cache, logger *zap.SugaredLogger) Service {
	return &service{
		repo:    repo,
		matches: matches,
		cache:   c,
		logger:  logger,
	}
}

// leaderboards returns cached player and team standings, recomputing from a
// fresh snapshot when the cache is empty or stale.
func (s *service) leaderboards(ctx context.Context) ([]model.PlayerStats, []model.TeamStats, error) {
	if s.cache != nil {
		if players, teams, ok := s.cache.Get(); ok {
			return players, teams, nil
		}
	}

	snap, err := s.repo.LoadSnapshot(ctx)
	if err != nil {
		s.logger.Errorw("leaderboard snapshot load failed", "error", err)
		return nil, nil, err
	}

	players := CalculatePlayerStats(snap.Players, snap.Teams, snap.Matches)
	teams := CalculateTeamStats(snap.Teams, snap.Players, snap.Matches)

	if s.cache != nil {
		s.cache.Set(players, teams)
	}

	return players, teams, nil
}

// PlayerLeaderboard returns the sorted player leaderboard.
func (s *service) PlayerLeaderboard(ctx context.Context, limit int) (*model.PlayersResponse, error) {
	players, _, err := s.leaderboards(ctx)
	if err != nil {
		return nil, err
	}

	total := len(players)
	players = TopPlayers(players, limit)

	return &model.PlayersResponse{Players: players, Total: total}, nil
}

// TeamLeaderboard returns the sorted team leaderboard.
func (s *service) TeamLeaderboard(ctx context.Context, limit int) (*model.TeamsResponse, error) {
	_, teams, err := s.leaderboards(ctx)
	if err != nil {
		return nil, err
	}

	total := len(teams)
	teams = TopTeams(teams, limit)

	return &model.TeamsResponse{Teams: teams, Total: total}, nil
}

// ChampionForDate returns the winner of the date's final-rank match.
func (s *service) ChampionForDate(ctx context.Context, date string) (*model.ChampionResponse, error) {
	final, err := s.matches.FinalForDate(ctx, date)
	if err != nil {
		if errors.Is(err, matchModel.ErrMatchNotFound) {
			return nil, model.ErrNoChampion
		}
		return nil, err
	}

	snap, err := s.repo.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	resp := &model.ChampionResponse{Date: date, PlayerID: final.Winner}
	for _, p := range snap.Players {
		if p.ID != final.Winner {
			continue
		}
		resp.Name = p.Name
		for _, t := range snap.Teams {
			if t.ID == p.TeamID {
				resp.Team = t.Name
				break
			}
		}
		break
	}

	return resp, nil
}

// TeamRank returns a team's 1-based position in the team leaderboard.
func (s *service) TeamRank(ctx context.Context, teamName string) (int, error) {
	_, teams, err := s.leaderboards(ctx)
	if err != nil {
		return 0, err
	}

	for i, t := range teams {
		if t.Name == teamName {
			return i + 1, nil
		}
	}
	return 0, teamModel.ErrTeamNotFound
}

// TeamMVP returns the member of a team with the best (score, wins).
// Membership is read from the current roster, not a historical snapshot.
func (s *service) TeamMVP(ctx context.Context, teamName string) (*model.PlayerStats, error) {
	players, _, err := s.leaderboards(ctx)
	if err != nil {
		return nil, err
	}

	// The leaderboard is already sorted by (score, wins), so the first
	// member encountered is the MVP.
	for i := range players {
		if players[i].Team == teamName {
			mvp := players[i]
			return &mvp, nil
		}
	}
	return nil, teamModel.ErrTeamNotFound
}

// CalculatePlayerStats computes per-player win/loss/score standings as a
// pure function of the given snapshot. Matches referencing unknown player
// ids are skipped for that side; the result does not depend on match order.
// Sorted by score desc, wins desc, then name asc for stable output.
func CalculatePlayerStats(
	players []playerModel.Player,
	teams []teamModel.Team,
	matches []matchModel.Match,
) []model.PlayerStats {
	teamNames := make(map[int]string, len(teams))
	for _, t := range teams {
		teamNames[t.ID] = t.Name
	}

	stats := make(map[int]*model.PlayerStats, len(players))
	order := make([]int, 0, len(players))
	for _, p := range players {
		teamName := teamNames[p.TeamID]
		if teamName == "" {
			teamName = "Unknown"
		}
		stats[p.ID] = &model.PlayerStats{
			ID:   p.ID,
			Name: p.Name,
			Team: teamName,
		}
		order = append(order, p.ID)
	}

	for _, m := range matches {
		loserID := m.PlayerA
		if m.PlayerA == m.Winner {
			if m.PlayerB == nil {
				loserID = 0
			} else {
				loserID = *m.PlayerB
			}
		}

		if winner, ok := stats[m.Winner]; ok {
			winner.Wins++
			winner.Score += matchModel.RankPoints[m.Rank]
		}
		if loser, ok := stats[loserID]; ok {
			loser.Losses++
		}
	}

	result := make([]model.PlayerStats, 0, len(order))
	for _, id := range order {
		result = append(result, *stats[id])
	}
	sortStandings(result, func(s model.PlayerStats) (int, int, string) {
		return s.Score, s.Wins, s.Name
	})
	return result
}

// CalculateTeamStats computes per-team standings; a team's record is the sum
// of its current members' match outcomes.
func CalculateTeamStats(
	teams []teamModel.Team,
	players []playerModel.Player,
	matches []matchModel.Match,
) []model.TeamStats {
	playerTeams := make(map[int]int, len(players))
	for _, p := range players {
		playerTeams[p.ID] = p.TeamID
	}

	stats := make(map[int]*model.TeamStats, len(teams))
	order := make([]int, 0, len(teams))
	for _, t := range teams {
		stats[t.ID] = &model.TeamStats{ID: t.ID, Name: t.Name}
		order = append(order, t.ID)
	}

	for _, m := range matches {
		loserID := m.PlayerA
		if m.PlayerA == m.Winner {
			if m.PlayerB == nil {
				loserID = 0
			} else {
				loserID = *m.PlayerB
			}
		}

		if teamID, ok := playerTeams[m.Winner]; ok {
			if team, found := stats[teamID]; found {
				team.Wins++
				team.Score += matchModel.RankPoints[m.Rank]
			}
		}
		if teamID, ok := playerTeams[loserID]; ok {
			if team, found := stats[teamID]; found {
				team.Losses++
			}
		}
	}

	result := make([]model.TeamStats, 0, len(order))
	for _, id := range order {
		result = append(result, *stats[id])
	}
	sortStandings(result, func(s model.TeamStats) (int, int, string) {
		return s.Score, s.Wins, s.Name
	})
	return result
}

// sortStandings orders entries by score desc, wins desc, name asc.
func sortStandings[T any](entries []T, key func(T) (int, int, string)) {
	sort.SliceStable(entries, func(i, j int) bool {
		si, wi, ni := key(entries[i])
		sj, wj, nj := key(entries[j])
		if si != sj {
			return si > sj
		}
		if wi != wj {
			return wi > wj
		}
		return strings.Compare(ni, nj) < 0
	})
}

// TopPlayers truncates a sorted player leaderboard to limit entries.
// limit <= 0 returns the full board.
func TopPlayers(players []model.PlayerStats, limit int) []model.PlayerStats {
	if limit <= 0 || limit >= len(players) {
		return players
	}
	return players[:limit]
}

// TopTeams truncates a sorted team leaderboard to limit entries.
func TopTeams(teams []model.TeamStats, limit int) []model.TeamStats {
	if limit <= 0 || limit >= len(teams) {
		return teams
	}
	return teams[:limit]
}

// WinRate returns a rounded win percentage; 0 when no games were played.
func WinRate(wins, losses int) int {
	total := wins + losses
	if total == 0 {
		return 0
	}
	return int(float64(wins)/float64(total)*100 + 0.5)
}
