package repository

import (
	"cricket-scoring/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(team *models.Team) error
	GetByID(id uuid.UUID) (*models.Team, error)
	GetByName(name string) (*models.Team, error)
	GetWithPlayers(id uuid.UUID) (*models.Team, error)
}

// PlayerRepositoryInterface defines the interface for player repository operations
type PlayerRepositoryInterface interface {
	Create(player *models.Player) error
	GetByID(id uuid.UUID) (*models.Player, error)
	GetByTeamID(teamID uuid.UUID) ([]models.Player, error)
}

// MatchRepositoryInterface defines the interface for match repository operations
type MatchRepositoryInterface interface {
	Create(match *models.Match) error
	GetByID(id uuid.UUID) (*models.Match, error)
	GetByIDAndOwner(id, ownerID uuid.UUID) (*models.Match, error)
	GetByOwner(ownerID uuid.UUID) ([]models.Match, error)
	Update(match *models.Match) error
	DeleteOwned(id, ownerID uuid.UUID) (int64, error)
}

// BallRepositoryInterface defines the interface for ball repository operations
type BallRepositoryInterface interface {
	Create(ball *models.Ball) error
	GetByMatchID(matchID uuid.UUID) ([]models.Ball, error)
	GetLast(matchID uuid.UUID) (*models.Ball, error)
}
