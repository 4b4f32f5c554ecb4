package models

// User represents a registered scorer account
type User struct {
	BaseModel
	Username     string `json:"username" gorm:"uniqueIndex;not null;size:150" validate:"required,min=1,max=150"`
	PasswordHash string `json:"-" gorm:"not null;size:128"`

	// Relationships
	Matches []Match `json:"matches,omitempty" gorm:"foreignKey:CreatedBy;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
