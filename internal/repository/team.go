package repository

import (
	"cricket-scoring/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create creates a new team
func (r *TeamRepository) Create(team *models.Team) error {
	return r.db.Create(team).Error
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByName retrieves a team by exact name match. With duplicate names the
// oldest team wins, which keeps name-based match creation deterministic.
func (r *TeamRepository) GetByName(name string) (*models.Team, error) {
	var team models.Team
	err := r.db.Order("created_at ASC").First(&team, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetWithPlayers retrieves a team with its full squad
func (r *TeamRepository) GetWithPlayers(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.Preload("Players").First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}
