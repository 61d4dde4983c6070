// Package model provides domain models for the team module.
package model

// Team represents an animal mascot team. Teams are immutable reference
// data: seeded once, never mutated by the application.
type Team struct {
	ID   int    `gorm:"primaryKey;column:id"                           json:"id"`
	Name string `gorm:"column:name;type:varchar(255);not null;uniqueIndex:idx_teams_name" json:"name"`
}

// TableName specifies the table name for GORM.
func (Team) TableName() string {
	return "teams"
}
