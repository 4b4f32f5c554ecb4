package service

import (
	"cricket-scoring/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// AuthServiceInterface defines the interface for the authentication service
type AuthServiceInterface interface {
	Register(username, password string) (*models.User, error)
	Authenticate(username, password string) (*models.User, error)
	IssueToken(user *models.User) (string, error)
}

// MatchServiceInterface defines the interface for match service
type MatchServiceInterface interface {
	Create(callerID uuid.UUID, req *CreateMatchRequest) (*MatchResponse, error)
	GetByID(callerID, id uuid.UUID) (*MatchResponse, error)
	ListByOwner(callerID uuid.UUID) ([]MatchResponse, error)
	Update(callerID, id uuid.UUID, req *UpdateMatchRequest) (*MatchResponse, error)
	Patch(callerID, id uuid.UUID, req *PatchMatchRequest) (*MatchResponse, error)
	Delete(callerID, id uuid.UUID) error
}

// PlayerServiceInterface defines the interface for player service
type PlayerServiceInterface interface {
	AddPlayer(callerID, matchID uuid.UUID, req *AddPlayerRequest) (*PlayerResponse, error)
	ListByMatch(callerID, matchID uuid.UUID) (*MatchPlayersResponse, error)
}

// ScoringServiceInterface defines the interface for the ball log and scorecard service
type ScoringServiceInterface interface {
	RecordBall(callerID, matchID uuid.UUID, req *RecordBallRequest) (*BallResponse, error)
	ListBalls(callerID, matchID uuid.UUID) ([]BallResponse, error)
	Scorecard(callerID, matchID uuid.UUID) (*ScorecardResponse, error)
}
