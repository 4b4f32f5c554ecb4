package repository

import (
	"cricket-scoring/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlayerRepository handles database operations for players
type PlayerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository creates a new player repository
func NewPlayerRepository(db *gorm.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// Create creates a new player
func (r *PlayerRepository) Create(player *models.Player) error {
	return r.db.Create(player).Error
}

// GetByID retrieves a player by ID
func (r *PlayerRepository) GetByID(id uuid.UUID) (*models.Player, error) {
	var player models.Player
	err := r.db.First(&player, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &player, nil
}

// GetByTeamID retrieves all players of a team in registration order
func (r *PlayerRepository) GetByTeamID(teamID uuid.UUID) ([]models.Player, error) {
	var players []models.Player
	err := r.db.Where("team_id = ?", teamID).Order("created_at ASC").Find(&players).Error
	if err != nil {
		return nil, err
	}
	return players, nil
}
