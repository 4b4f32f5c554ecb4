package models

import (
	"github.com/google/uuid"
)

// Ball represents a single recorded delivery in a match's ball-by-ball log.
// Records are append-only: there is no update or delete endpoint for them.
// Over and Ball are 1-based; Ball is always in 1..6 within an over.
// Batsman and bowler are not validated against the match's two teams.
type Ball struct {
	BaseModel
	MatchID   uuid.UUID `json:"match_id" gorm:"type:uuid;not null;index" validate:"required"`
	Over      int       `json:"over" gorm:"not null"`
	Ball      int       `json:"ball" gorm:"not null"`
	BatsmanID uuid.UUID `json:"batsman_id" gorm:"type:uuid;not null" validate:"required"`
	BowlerID  uuid.UUID `json:"bowler_id" gorm:"type:uuid;not null" validate:"required"`
	Runs      int       `json:"runs" gorm:"not null;default:0" validate:"min=0"`
	IsWicket  bool      `json:"is_wicket" gorm:"not null;default:false"`

	// Relationships
	Batsman *Player `json:"batsman,omitempty" gorm:"foreignKey:BatsmanID;constraint:OnDelete:CASCADE"`
	Bowler  *Player `json:"bowler,omitempty" gorm:"foreignKey:BowlerID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Ball
func (Ball) TableName() string {
	return "balls"
}
