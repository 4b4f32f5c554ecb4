package repository

import (
	"errors"

	"cricket-scoring/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BallRepository handles database operations for the ball-by-ball log
type BallRepository struct {
	db *gorm.DB
}

// NewBallRepository creates a new ball repository
func NewBallRepository(db *gorm.DB) *BallRepository {
	return &BallRepository{db: db}
}

// Create appends a delivery to the log
func (r *BallRepository) Create(ball *models.Ball) error {
	return r.db.Create(ball).Error
}

// GetByMatchID retrieves a match's full log in delivery order
func (r *BallRepository) GetByMatchID(matchID uuid.UUID) ([]models.Ball, error) {
	var balls []models.Ball
	err := r.db.Preload("Batsman").Preload("Bowler").
		Where("match_id = ?", matchID).
		Order("over ASC, ball ASC").
		Find(&balls).Error
	if err != nil {
		return nil, err
	}
	return balls, nil
}

// GetLast retrieves the delivery with the highest (over, ball) coordinate,
// or nil when the log is empty.
func (r *BallRepository) GetLast(matchID uuid.UUID) (*models.Ball, error) {
	var ball models.Ball
	err := r.db.Where("match_id = ?", matchID).
		Order("over DESC, ball DESC").
		First(&ball).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &ball, nil
}
