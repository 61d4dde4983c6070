// Package service implements the daily single-elimination tournament simulator.
package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	matchModel "github.com/dailygator/dailygator/internal/match/model"
	matchRepo "github.com/dailygator/dailygator/internal/match/repository"
	playerModel "github.com/dailygator/dailygator/internal/player/model"
	playerRepo "github.com/dailygator/dailygator/internal/player/repository"
	teamModel "github.com/dailygator/dailygator/internal/team/model"
	teamRepo "github.com/dailygator/dailygator/internal/team/repository"
	tournamentModel "github.com/dailygator/dailygator/internal/tournament/model"
)

// Invalidator marks cached aggregates stale once new matches exist.
type Invalidator interface {
	InvalidateAfter(t time.Time)
}

// Service defines the interface for tournament business logic operations.
type Service interface {
	// RunForDate simulates and persists the bracket for one calendar date.
	// Returns ErrAlreadyRan when a bracket already exists for the date.
	RunForDate(ctx context.Context, date string) (*tournamentModel.RunResult, error)

	// BracketForDate returns a date's persisted bracket in display order.
	BracketForDate(ctx context.Context, date string) (*tournamentModel.BracketResponse, error)
}

type service struct {
	teams   teamRepo.Repository
	players playerRepo.Repository
	matches matchRepo.Repository
	db      *gorm.DB
	cache   Invalidator

	// rng is not safe for concurrent use; the scheduler and the trigger
	// endpoint can both reach simulate.
	rngMu sync.Mutex
	rng   *rand.Rand

	logger *zap.SugaredLogger
}

// New creates a new tournament service instance. The random source is
// injected so tests can run deterministic brackets; cache may be nil.
func New(
	teams teamRepo.Repository,
	players playerRepo.Repository,
	matches matchRepo.Repository,
	db *gorm.DB,
	rng *rand.Rand,
	cache Invalidator,
	logger *zap.SugaredLogger,
) Service {
	return &service{
		teams:   teams,
		players: players,
		matches: matches,
		db:      db,
		rng:     rng,
		cache:   cache,
		logger:  logger,
	}
}

// RunForDate simulates and persists the bracket for one calendar date.
//
// The run is all-or-nothing: the full bracket is computed in memory first,
// then matches and player counters are committed in one transaction. A date
// is therefore always either absent or complete. The unique index on
// (date, rank, rank_index) closes the race between concurrent invocations
// that both pass the existence check, and counters are written as
// increments so overlapping runs for different dates compose.
func (s *service) RunForDate(ctx context.Context, date string) (*tournamentModel.RunResult, error) {
	if _, err := time.Parse(tournamentModel.DateFormat, date); err != nil {
		return nil, tournamentModel.ErrInvalidDate
	}

	s.logger.Debugw("RunForDate called", "date", date)

	// Fast path: soft duplicate-run guard.
	exists, err := s.matches.ExistsForDate(ctx, date)
	if err != nil {
		return nil, err
	}
	if exists {
		s.logger.Infow("tournament already ran", "date", date)
		return nil, tournamentModel.ErrAlreadyRan
	}

	teams, err := s.teams.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(teams) == 0 {
		return nil, tournamentModel.ErrNoTeams
	}

	players, err := s.players.List(ctx)
	if err != nil {
		return nil, err
	}

	s.rngMu.Lock()
	bracket, err := simulateBracket(s.rng, date, teams, players)
	s.rngMu.Unlock()
	if err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txMatches := matchRepo.New(tx)
		if txErr := txMatches.CreateBatch(ctx, bracket.matches); txErr != nil {
			return txErr
		}

		txPlayers := playerRepo.New(tx)
		for _, id := range bracket.touchedIDs() {
			p := bracket.touched[id]
			base := bracket.base[id]
			if txErr := txPlayers.AddCounters(ctx, id,
				p.GamesPlayed-base.GamesPlayed,
				p.GamesWon-base.GamesWon,
				p.TournamentsWon-base.TournamentsWon,
			); txErr != nil {
				return txErr
			}
		}
		return nil
	})
	if err != nil {
		// A concurrent run won the insert; report "already complete".
		if errors.Is(err, matchModel.ErrDuplicateBracketSlot) {
			s.logger.Infow("lost duplicate-run race", "date", date)
			return nil, tournamentModel.ErrAlreadyRan
		}
		s.logger.Errorw("RunForDate persistence failed", "date", date, "error", err)
		return nil, err
	}

	if s.cache != nil {
		s.cache.InvalidateAfter(time.Now())
	}

	s.logger.Infow("tournament complete",
		"date", date,
		"champion_id", bracket.champion.ID,
		"champion", bracket.champion.Name,
		"matches", len(bracket.matches),
	)

	return &tournamentModel.RunResult{
		Date:     date,
		Champion: bracket.champion,
		Matches:  bracket.matches,
	}, nil
}

// BracketForDate returns a date's persisted bracket in display order.
func (s *service) BracketForDate(ctx context.Context, date string) (*tournamentModel.BracketResponse, error) {
	if _, err := time.Parse(tournamentModel.DateFormat, date); err != nil {
		return nil, tournamentModel.ErrInvalidDate
	}

	matches, err := s.matches.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	resp := &tournamentModel.BracketResponse{
		Date:    date,
		Matches: matches,
	}

	for _, m := range matches {
		if m.Rank != matchModel.RankFinal {
			continue
		}
		champion, champErr := s.players.GetByID(ctx, m.Winner)
		if champErr != nil {
			if errors.Is(champErr, playerModel.ErrPlayerNotFound) {
				break
			}
			return nil, champErr
		}
		resp.Champion = &champion.Name
		break
	}

	return resp, nil
}

// bracket accumulates one simulated run before persistence. base keeps each
// touched player's pre-run counters so persistence can write increments
// rather than absolute values.
type bracket struct {
	matches  []matchModel.Match
	touched  map[int]*playerModel.Player
	base     map[int]playerModel.Player
	champion playerModel.Player
}

// track returns the mutable per-run copy of a player, creating it on the
// first contested appearance. Byes never create an entry.
func (b *bracket) track(p *playerModel.Player) *playerModel.Player {
	if tracked, ok := b.touched[p.ID]; ok {
		return tracked
	}
	b.base[p.ID] = *p
	cp := *p
	b.touched[p.ID] = &cp
	return &cp
}

// touchedIDs returns touched player ids in ascending order so counter
// updates apply in a deterministic sequence.
func (b *bracket) touchedIDs() []int {
	ids := make([]int, 0, len(b.touched))
	for id := range b.touched {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// simulateBracket draws one representative per team, shuffles the seeds and
// plays every round to a single champion. Pure with respect to storage;
// everything is accumulated in memory.
func simulateBracket(
	rng *rand.Rand,
	date string,
	teams []teamModel.Team,
	players []playerModel.Player,
) (*bracket, error) {
	byTeam := make(map[int][]playerModel.Player, len(teams))
	for _, p := range players {
		byTeam[p.TeamID] = append(byTeam[p.TeamID], p)
	}

	reps := make([]*playerModel.Player, 0, len(teams))
	for _, t := range teams {
		roster := byTeam[t.ID]
		if len(roster) == 0 {
			return nil, fmt.Errorf("%w: team %q", tournamentModel.ErrEmptyRoster, t.Name)
		}
		// A sole player never goes through the random pick.
		pick := roster[0]
		if len(roster) > 1 {
			pick = roster[rng.Intn(len(roster))]
		}
		rep := pick
		reps = append(reps, &rep)
	}

	rng.Shuffle(len(reps), func(i, j int) {
		reps[i], reps[j] = reps[j], reps[i]
	})

	b := &bracket{
		touched: make(map[int]*playerModel.Player),
		base:    make(map[int]playerModel.Player),
	}

	totalRounds := int(math.Ceil(math.Log2(float64(len(reps)))))
	entrants := reps
	for round := 1; len(entrants) > 1; round++ {
		entrants = playRound(rng, b, entrants, rankForRound(round, totalRounds), date)
	}

	b.champion = *entrants[0]
	return b, nil
}

// rankForRound maps a 1-based round number to its rank. The last round is
// always the final and the one before it the semifinal, so any power-of-two
// field produces exactly one final-rank match.
func rankForRound(round, totalRounds int) matchModel.Rank {
	switch {
	case round >= totalRounds:
		return matchModel.RankFinal
	case round == totalRounds-1:
		return matchModel.RankSemi
	default:
		return matchModel.RankQuarter
	}
}

// playRound pairs consecutive entrants, flips an unbiased coin per pairing
// and records the match. An odd tail entrant gets a bye: it advances with
// no persisted row and no counter change.
func playRound(
	rng *rand.Rand,
	b *bracket,
	entrants []*playerModel.Player,
	rank matchModel.Rank,
	date string,
) []*playerModel.Player {
	winners := make([]*playerModel.Player, 0, (len(entrants)+1)/2)

	for i := 0; i < len(entrants); i += 2 {
		if i+1 >= len(entrants) {
			winners = append(winners, entrants[i])
			continue
		}

		a := b.track(entrants[i])
		opp := b.track(entrants[i+1])

		a.GamesPlayed++
		opp.GamesPlayed++

		winner := a
		if rng.Intn(2) == 1 {
			winner = opp
		}
		winner.GamesWon++
		if rank == matchModel.RankFinal {
			winner.TournamentsWon++
		}

		oppID := opp.ID
		b.matches = append(b.matches, matchModel.Match{
			Date:      matchModel.Day(date),
			Rank:      rank,
			RankIndex: i/2 + 1,
			PlayerA:   a.ID,
			PlayerB:   &oppID,
			Winner:    winner.ID,
		})

		winners = append(winners, winner)
	}

	return winners
}
