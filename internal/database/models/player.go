package models

import (
	"github.com/google/uuid"
)

// Player represents a squad member of a team. The batsman/bowler flags are
// informational only and are not enforced when recording deliveries.
type Player struct {
	BaseModel
	TeamID    uuid.UUID `json:"team_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name      string    `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	IsBatsman bool      `json:"is_batsman" gorm:"not null;default:true"`
	IsBowler  bool      `json:"is_bowler" gorm:"not null;default:false"`

	// Relationships
	Team *Team `json:"team,omitempty" gorm:"foreignKey:TeamID"`
}

// TableName returns the table name for Player
func (Player) TableName() string {
	return "players"
}
