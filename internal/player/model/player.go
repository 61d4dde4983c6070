// Package model provides domain models for the player module.
package model

// Player represents an animal mascot belonging to exactly one team.
// The career counters are monotonically non-decreasing and are mutated
// only by the tournament simulator after a completed run.
type Player struct {
	ID             int    `gorm:"primaryKey;column:id"                                       json:"id"`
	TeamID         int    `gorm:"column:team_id;not null;index:idx_players_team_id"          json:"team_id"`
	Name           string `gorm:"column:name;type:varchar(255);not null"                     json:"name"`
	Species        string `gorm:"column:species;type:varchar(255);not null"                  json:"species"`
	Bio            string `gorm:"column:bio;type:text;not null;default:''"                   json:"bio"`
	GamesPlayed    int    `gorm:"column:games_played;not null;default:0"                     json:"games_played"`
	GamesWon       int    `gorm:"column:games_won;not null;default:0"                        json:"games_won"`
	TournamentsWon int    `gorm:"column:tournaments_won;not null;default:0"                  json:"tournaments_won"`
}

// TableName specifies the table name for GORM.
func (Player) TableName() string {
	return "players"
}
