package models

import (
	"github.com/google/uuid"
)

// MatchStatus represents the lifecycle state of a match
type MatchStatus string

const (
	MatchStatusOngoing   MatchStatus = "Ongoing"
	MatchStatusCompleted MatchStatus = "Completed"
)

// Match represents a scheduled or in-progress match between two teams.
// Team1 and Team2 are not required to be distinct.
type Match struct {
	BaseModel
	Team1ID       uuid.UUID   `json:"team1_id" gorm:"type:uuid;not null;index" validate:"required"`
	Team2ID       uuid.UUID   `json:"team2_id" gorm:"type:uuid;not null;index" validate:"required"`
	Overs         int         `json:"overs" gorm:"not null" validate:"required,min=1"`
	CurrentInning int         `json:"current_inning" gorm:"not null;default:1"`
	Status        MatchStatus `json:"status" gorm:"type:varchar(20);not null;default:'Ongoing'" validate:"omitempty,oneof=Ongoing Completed"`
	CreatedBy     uuid.UUID   `json:"created_by" gorm:"type:uuid;not null;index"`

	// Relationships
	Team1 *Team  `json:"team1,omitempty" gorm:"foreignKey:Team1ID;constraint:OnDelete:CASCADE"`
	Team2 *Team  `json:"team2,omitempty" gorm:"foreignKey:Team2ID;constraint:OnDelete:CASCADE"`
	Balls []Ball `json:"balls,omitempty" gorm:"foreignKey:MatchID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Match
func (Match) TableName() string {
	return "matches"
}
