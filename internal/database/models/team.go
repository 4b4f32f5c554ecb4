package models

// Team represents a cricket team. Names are not unique: two teams may
// share a name, and duplicate prevention happens only on exact-name
// get-or-create during match creation.
type Team struct {
	BaseModel
	Name string `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`

	// Relationships
	Players []Player `json:"players,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
