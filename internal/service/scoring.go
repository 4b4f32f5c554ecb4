package service

import (
	"errors"
	"fmt"
	"sync"

	"cricket-scoring/internal/database/models"
	apperrors "cricket-scoring/internal/errors"
	"cricket-scoring/internal/logger"
	"cricket-scoring/internal/repository"
	"cricket-scoring/internal/scoring"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// matchLocks hands out one mutex per match id so delivery recording is
// serialized per match. Without it two concurrent submissions could read
// the same last coordinate and append duplicate (over, ball) entries.
type matchLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func newMatchLocks() *matchLocks {
	return &matchLocks{locks: make(map[uuid.UUID]*sync.Mutex)}
}

func (l *matchLocks) get(id uuid.UUID) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	lock, ok := l.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		l.locks[id] = lock
	}
	return lock
}

// ScoringService handles the ball-by-ball log and scorecard projection of
// caller-owned matches.
type ScoringService struct {
	repo       repository.BallRepositoryInterface
	matchRepo  repository.MatchRepositoryInterface
	playerRepo repository.PlayerRepositoryInterface
	validator  *validator.Validate
	locks      *matchLocks
}

// NewScoringService creates a new scoring service
func NewScoringService(repo repository.BallRepositoryInterface, matchRepo repository.MatchRepositoryInterface, playerRepo repository.PlayerRepositoryInterface, validator *validator.Validate) *ScoringService {
	return &ScoringService{
		repo:       repo,
		matchRepo:  matchRepo,
		playerRepo: playerRepo,
		validator:  validator,
		locks:      newMatchLocks(),
	}
}

// RecordBallRequest represents the request to record one delivery. The
// (over, ball) coordinate is always computed server-side.
type RecordBallRequest struct {
	BatsmanID uuid.UUID `json:"batsman" validate:"required"`
	BowlerID  uuid.UUID `json:"bowler" validate:"required"`
	Runs      int       `json:"runs" validate:"min=0"`
	IsWicket  bool      `json:"is_wicket"`
}

// BallResponse represents one delivery in API responses
type BallResponse struct {
	ID          uuid.UUID `json:"id"`
	MatchID     uuid.UUID `json:"match_id"`
	Over        int       `json:"over"`
	Ball        int       `json:"ball"`
	BatsmanID   uuid.UUID `json:"batsman_id"`
	BatsmanName string    `json:"batsman_name,omitempty"`
	BowlerID    uuid.UUID `json:"bowler_id"`
	BowlerName  string    `json:"bowler_name,omitempty"`
	Runs        int       `json:"runs"`
	IsWicket    bool      `json:"is_wicket"`
}

// ScorecardResponse combines the match header with its aggregated summary
type ScorecardResponse struct {
	Match   MatchResponse   `json:"match"`
	Summary scoring.Summary `json:"summary"`
}

// RecordBall appends one delivery to a caller-owned match's log. The next
// coordinate comes from the sequencer over the current last entry, and the
// read-then-append pair runs under the match's lock.
func (s *ScoringService) RecordBall(callerID, matchID uuid.UUID, req *RecordBallRequest) (*BallResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	if req.Runs < 0 {
		return nil, apperrors.NewValidationError("runs", "runs must not be negative")
	}

	match, err := s.getOwnedMatch(callerID, matchID)
	if err != nil {
		return nil, err
	}

	// Batsman and bowler must exist, but membership in the match's two
	// teams is not checked.
	batsman, err := s.playerRepo.GetByID(req.BatsmanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBatsmanNotFound
		}
		return nil, fmt.Errorf("failed to get batsman: %w", err)
	}
	bowler, err := s.playerRepo.GetByID(req.BowlerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBowlerNotFound
		}
		return nil, fmt.Errorf("failed to get bowler: %w", err)
	}

	lock := s.locks.get(match.ID)
	lock.Lock()
	defer lock.Unlock()

	last, err := s.repo.GetLast(match.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to read last delivery: %w", err)
	}
	var lastCoord *scoring.Coordinate
	if last != nil {
		lastCoord = &scoring.Coordinate{Over: last.Over, Ball: last.Ball}
	}
	next := scoring.Next(lastCoord)

	ball := &models.Ball{
		MatchID:   match.ID,
		Over:      next.Over,
		Ball:      next.Ball,
		BatsmanID: batsman.ID,
		BowlerID:  bowler.ID,
		Runs:      req.Runs,
		IsWicket:  req.IsWicket,
	}
	if err := s.repo.Create(ball); err != nil {
		return nil, fmt.Errorf("failed to record delivery: %w", err)
	}

	logger.New().WithFields(map[string]interface{}{
		"match_id": match.ID,
		"over":     next.Over,
		"ball":     next.Ball,
		"runs":     req.Runs,
		"wicket":   req.IsWicket,
	}).Debug("delivery recorded")

	ball.Batsman = batsman
	ball.Bowler = bowler
	return toBallResponse(ball), nil
}

// ListBalls returns a caller-owned match's full log in delivery order
func (s *ScoringService) ListBalls(callerID, matchID uuid.UUID) ([]BallResponse, error) {
	match, err := s.getOwnedMatch(callerID, matchID)
	if err != nil {
		return nil, err
	}

	balls, err := s.repo.GetByMatchID(match.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list deliveries: %w", err)
	}

	responses := make([]BallResponse, len(balls))
	for i := range balls {
		responses[i] = *toBallResponse(&balls[i])
	}
	return responses, nil
}

// Scorecard recomputes the aggregated summary from the complete stored log.
// There is no cached running total, so a read immediately after a write
// always reflects it.
func (s *ScoringService) Scorecard(callerID, matchID uuid.UUID) (*ScorecardResponse, error) {
	match, err := s.getOwnedMatch(callerID, matchID)
	if err != nil {
		return nil, err
	}

	balls, err := s.repo.GetByMatchID(match.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load ball log: %w", err)
	}

	resp := &ScorecardResponse{
		Summary: scoring.Aggregate(toScoringBalls(balls)),
	}
	resp.Match = MatchResponse{
		ID:            match.ID,
		Overs:         match.Overs,
		CurrentInning: match.CurrentInning,
		Status:        match.Status,
		CreatedBy:     match.CreatedBy,
	}
	if match.Team1 != nil {
		resp.Match.Team1 = TeamResponse{ID: match.Team1.ID, Name: match.Team1.Name}
	}
	if match.Team2 != nil {
		resp.Match.Team2 = TeamResponse{ID: match.Team2.ID, Name: match.Team2.Name}
	}
	return resp, nil
}

func (s *ScoringService) getOwnedMatch(callerID, matchID uuid.UUID) (*models.Match, error) {
	match, err := s.matchRepo.GetByIDAndOwner(matchID, callerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}
	return match, nil
}

func toBallResponse(ball *models.Ball) *BallResponse {
	resp := &BallResponse{
		ID:        ball.ID,
		MatchID:   ball.MatchID,
		Over:      ball.Over,
		Ball:      ball.Ball,
		BatsmanID: ball.BatsmanID,
		BowlerID:  ball.BowlerID,
		Runs:      ball.Runs,
		IsWicket:  ball.IsWicket,
	}
	if ball.Batsman != nil {
		resp.BatsmanName = ball.Batsman.Name
	}
	if ball.Bowler != nil {
		resp.BowlerName = ball.Bowler.Name
	}
	return resp
}

func toScoringBalls(balls []models.Ball) []scoring.Ball {
	out := make([]scoring.Ball, len(balls))
	for i, b := range balls {
		out[i] = scoring.Ball{
			Coordinate: scoring.Coordinate{Over: b.Over, Ball: b.Ball},
			BatsmanID:  b.BatsmanID,
			BowlerID:   b.BowlerID,
			Runs:       b.Runs,
			IsWicket:   b.IsWicket,
		}
		if b.Batsman != nil {
			out[i].BatsmanName = b.Batsman.Name
		}
		if b.Bowler != nil {
			out[i].BowlerName = b.Bowler.Name
		}
	}
	return out
}
