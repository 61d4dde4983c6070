// Package cache provides a caller-owned cache for computed leaderboards.
//
// Leaderboards only change when new matches land, and matches land once per
// UTC day, so a computed snapshot stays valid until the next UTC midnight
// unless explicitly invalidated (e.g. right after a tournament run).
package cache

import (
	"sync"
	"time"

	"github.com/dailygator/dailygator/internal/statistics/model"
)

// Cache holds one computed leaderboard snapshot with a validity horizon.
// The zero value is not usable; construct with New.
type Cache struct {
	mu         sync.RWMutex
	players    []model.PlayerStats
	teams      []model.TeamStats
	populated  bool
	validUntil time.Time

	now func() time.Time
}

// New creates an empty cache.
func New() *Cache {
	return &Cache{now: time.Now}
}

// NewWithClock creates a cache with an injected clock for tests.
func NewWithClock(now func() time.Time) *Cache {
	return &Cache{now: now}
}

// Get returns the cached leaderboards if they are still valid.
func (c *Cache) Get() (players []model.PlayerStats, teams []model.TeamStats, ok bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.populated || !c.now().Before(c.validUntil) {
		return nil, nil, false
	}
	return c.players, c.teams, true
}

// Set stores freshly computed leaderboards, valid until the next UTC
// midnight.
func (c *Cache) Set(players []model.PlayerStats, teams []model.TeamStats) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.players = players
	c.teams = teams
	c.populated = true
	c.validUntil = NextUTCMidnight(c.now())
}

// InvalidateAfter marks the snapshot stale for reads at or after t. Passing
// the current time drops the snapshot immediately.
func (c *Cache) InvalidateAfter(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if t.Before(c.validUntil) {
		c.validUntil = t
	}
}

// NextUTCMidnight returns the first UTC midnight strictly after t.
func NextUTCMidnight(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
}
