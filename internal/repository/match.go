package repository

import (
	"cricket-scoring/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MatchRepository handles database operations for matches. All owner-scoped
// queries filter on created_by so matches of other users behave exactly as
// if they did not exist.
type MatchRepository struct {
	db *gorm.DB
}

// NewMatchRepository creates a new match repository
func NewMatchRepository(db *gorm.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

// Create creates a new match
func (r *MatchRepository) Create(match *models.Match) error {
	return r.db.Create(match).Error
}

// GetByID retrieves a match by ID regardless of owner
func (r *MatchRepository) GetByID(id uuid.UUID) (*models.Match, error) {
	var match models.Match
	err := r.db.Preload("Team1").Preload("Team2").First(&match, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &match, nil
}

// GetByIDAndOwner retrieves a match by ID scoped to its owner
func (r *MatchRepository) GetByIDAndOwner(id, ownerID uuid.UUID) (*models.Match, error) {
	var match models.Match
	err := r.db.Preload("Team1").Preload("Team2").
		First(&match, "id = ? AND created_by = ?", id, ownerID).Error
	if err != nil {
		return nil, err
	}
	return &match, nil
}

// GetByOwner retrieves all matches created by a user, newest first
func (r *MatchRepository) GetByOwner(ownerID uuid.UUID) ([]models.Match, error) {
	var matches []models.Match
	err := r.db.Preload("Team1").Preload("Team2").
		Where("created_by = ?", ownerID).
		Order("created_at DESC").
		Find(&matches).Error
	if err != nil {
		return nil, err
	}
	return matches, nil
}

// Update updates a match
func (r *MatchRepository) Update(match *models.Match) error {
	return r.db.Save(match).Error
}

// DeleteOwned deletes a match scoped to its owner and reports how many rows
// were affected, so the service can distinguish a miss from a delete.
func (r *MatchRepository) DeleteOwned(id, ownerID uuid.UUID) (int64, error) {
	result := r.db.Delete(&models.Match{}, "id = ? AND created_by = ?", id, ownerID)
	return result.RowsAffected, result.Error
}
