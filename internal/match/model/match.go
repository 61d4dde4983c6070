// Package model provides domain models for the match module.
package model

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// Rank identifies the tournament round a match belongs to.
type Rank string

const (
	// RankQuarter is the quarterfinal round.
	RankQuarter Rank = "quarter"
	// RankSemi is the semifinal round.
	RankSemi Rank = "semi"
	// RankFinal is the final round.
	RankFinal Rank = "final"
)

// RankOrder defines the chronological order of rounds within one bracket.
var RankOrder = map[Rank]int{
	RankQuarter: 0,
	RankSemi:    1,
	RankFinal:   2,
}

// RankPoints defines the score awarded for winning a match at each rank.
// Later rounds are worth exponentially more; score is the canonical
// leaderboard ranking key.
var RankPoints = map[Rank]int{
	RankQuarter: 1,
	RankSemi:    4,
	RankFinal:   8,
}

// Day is a calendar date in YYYY-MM-DD form. The postgres driver scans a
// DATE column as time.Time and a bare string would come back as an RFC3339
// timestamp; Day normalizes every representation to the plain date so the
// value a client reads is always valid as a date query parameter.
type Day string

const dayFormat = "2006-01-02"

// Scan implements sql.Scanner.
func (d *Day) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*d = ""
	case time.Time:
		*d = Day(v.Format(dayFormat))
	case string:
		*d = Day(normalizeDay(v))
	case []byte:
		*d = Day(normalizeDay(string(v)))
	default:
		return fmt.Errorf("unsupported date value of type %T", value)
	}
	return nil
}

// Value implements driver.Valuer.
func (d Day) Value() (driver.Value, error) {
	return string(d), nil
}

// normalizeDay trims a timestamp-shaped value down to its date part.
func normalizeDay(s string) string {
	if len(s) <= len(dayFormat) {
		return s
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.Format(dayFormat)
	}
	return s[:len(dayFormat)]
}

// Match represents one head-to-head bracket encounter. Matches are
// insert-only: the simulator never updates or deletes a row. The
// (date, rank, rank_index) triple is unique and acts as the
// duplicate-run guard at the persistence layer.
//
// PlayerB is nil for a bye; the sole participant is the winner. Byes
// are not persisted in the current design, the nullable column exists
// for schema compatibility with historical data.
type Match struct {
	ID        int  `gorm:"primaryKey;column:id"                                                        json:"id"`
	Date      Day  `gorm:"column:date;type:date;not null;uniqueIndex:idx_matches_bracket_slot"        json:"date"`
	Rank      Rank `gorm:"column:rank;type:varchar(16);not null;uniqueIndex:idx_matches_bracket_slot" json:"rank"`
	RankIndex int  `gorm:"column:rank_index;not null;uniqueIndex:idx_matches_bracket_slot"            json:"rank_index"`
	PlayerA   int  `gorm:"column:player_a;not null"                                                   json:"player_a"`
	PlayerB   *int `gorm:"column:player_b"                                                            json:"player_b"`
	Winner    int  `gorm:"column:winner;not null"                                                     json:"winner"`
}

// TableName specifies the table name for GORM.
func (Match) TableName() string {
	return "matches"
}
