package service

import (
	"errors"
	"fmt"
	"time"

	"cricket-scoring/internal/database/models"
	apperrors "cricket-scoring/internal/errors"
	"cricket-scoring/internal/logger"
	"cricket-scoring/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MatchService handles business logic for matches. Every operation is
// scoped to the calling user: matches owned by someone else are reported
// as not found.
type MatchService struct {
	repo      repository.MatchRepositoryInterface
	teamRepo  repository.TeamRepositoryInterface
	validator *validator.Validate
}

// NewMatchService creates a new match service
func NewMatchService(repo repository.MatchRepositoryInterface, teamRepo repository.TeamRepositoryInterface, validator *validator.Validate) *MatchService {
	return &MatchService{
		repo:      repo,
		teamRepo:  teamRepo,
		validator: validator,
	}
}

// CreateMatchRequest represents the request to create a match. Each side is
// given either as an existing team id or as a team name; a name that does
// not match an existing team (exact, case-sensitive) creates a new team.
type CreateMatchRequest struct {
	Team1ID   *uuid.UUID `json:"team1,omitempty"`
	Team2ID   *uuid.UUID `json:"team2,omitempty"`
	Team1Name string     `json:"team1_name,omitempty"`
	Team2Name string     `json:"team2_name,omitempty"`
	Overs     int        `json:"overs" validate:"required,min=1"`
}

// UpdateMatchRequest represents a full (PUT) match update
type UpdateMatchRequest struct {
	Team1ID   *uuid.UUID         `json:"team1,omitempty"`
	Team2ID   *uuid.UUID         `json:"team2,omitempty"`
	Team1Name string             `json:"team1_name,omitempty"`
	Team2Name string             `json:"team2_name,omitempty"`
	Overs     int                `json:"overs" validate:"required,min=1"`
	Inning    *int               `json:"current_inning,omitempty" validate:"omitempty,min=1"`
	Status    models.MatchStatus `json:"status,omitempty" validate:"omitempty,oneof=Ongoing Completed"`
}

// PatchMatchRequest represents a partial (PATCH) match update; nil fields
// are left untouched.
type PatchMatchRequest struct {
	Team1ID   *uuid.UUID          `json:"team1,omitempty"`
	Team2ID   *uuid.UUID          `json:"team2,omitempty"`
	Team1Name string              `json:"team1_name,omitempty"`
	Team2Name string              `json:"team2_name,omitempty"`
	Overs     *int                `json:"overs,omitempty" validate:"omitempty,min=1"`
	Inning    *int                `json:"current_inning,omitempty" validate:"omitempty,min=1"`
	Status    *models.MatchStatus `json:"status,omitempty" validate:"omitempty,oneof=Ongoing Completed"`
}

// TeamResponse represents a team in API responses
type TeamResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// MatchResponse represents the response for match operations
type MatchResponse struct {
	ID            uuid.UUID          `json:"id"`
	Team1         TeamResponse       `json:"team1"`
	Team2         TeamResponse       `json:"team2"`
	Overs         int                `json:"overs"`
	CurrentInning int                `json:"current_inning"`
	Status        models.MatchStatus `json:"status"`
	CreatedBy     uuid.UUID          `json:"created_by"`
	CreatedAt     string             `json:"created_at"`
	UpdatedAt     string             `json:"updated_at"`
}

// resolveTeam turns an id-or-name pair into a team row. Ids must reference
// an existing team; names are resolved get-or-create by exact match.
func (s *MatchService) resolveTeam(id *uuid.UUID, name, field string) (*models.Team, error) {
	if id != nil {
		team, err := s.teamRepo.GetByID(*id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.NewValidationError(field, fmt.Sprintf("invalid %s id: %s", field, id))
			}
			return nil, fmt.Errorf("failed to resolve %s: %w", field, err)
		}
		return team, nil
	}

	if name != "" {
		team, err := s.teamRepo.GetByName(name)
		if err == nil {
			return team, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to resolve %s by name: %w", field, err)
		}
		team = &models.Team{Name: name}
		if err := s.teamRepo.Create(team); err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", field, err)
		}
		return team, nil
	}

	return nil, apperrors.NewValidationError(field, fmt.Sprintf("provide %s (id) or %s_name", field, field))
}

// Create creates a new match owned by the caller
func (s *MatchService) Create(callerID uuid.UUID, req *CreateMatchRequest) (*MatchResponse, error) {
	if req.Overs <= 0 {
		return nil, apperrors.NewValidationError("overs", "overs is required")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	team1, err := s.resolveTeam(req.Team1ID, req.Team1Name, "team1")
	if err != nil {
		return nil, err
	}
	team2, err := s.resolveTeam(req.Team2ID, req.Team2Name, "team2")
	if err != nil {
		return nil, err
	}

	match := &models.Match{
		Team1ID:       team1.ID,
		Team2ID:       team2.ID,
		Overs:         req.Overs,
		CurrentInning: 1,
		Status:        models.MatchStatusOngoing,
		CreatedBy:     callerID,
	}
	if err := s.repo.Create(match); err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	logger.New().WithFields(map[string]interface{}{
		"match_id": match.ID,
		"team1":    team1.Name,
		"team2":    team2.Name,
		"owner":    callerID,
	}).Info("match created")

	match.Team1 = team1
	match.Team2 = team2
	return s.toResponse(match), nil
}

// GetByID retrieves a caller-owned match
func (s *MatchService) GetByID(callerID, id uuid.UUID) (*MatchResponse, error) {
	match, err := s.getOwned(callerID, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(match), nil
}

// ListByOwner retrieves all matches created by the caller
func (s *MatchService) ListByOwner(callerID uuid.UUID) ([]MatchResponse, error) {
	matches, err := s.repo.GetByOwner(callerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}

	responses := make([]MatchResponse, len(matches))
	for i := range matches {
		responses[i] = *s.toResponse(&matches[i])
	}
	return responses, nil
}

// Update fully replaces a caller-owned match. Ownership cannot be moved:
// created_by always stays the caller.
func (s *MatchService) Update(callerID, id uuid.UUID, req *UpdateMatchRequest) (*MatchResponse, error) {
	if req.Overs <= 0 {
		return nil, apperrors.NewValidationError("overs", "overs is required")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	match, err := s.getOwned(callerID, id)
	if err != nil {
		return nil, err
	}

	team1, err := s.resolveTeam(req.Team1ID, req.Team1Name, "team1")
	if err != nil {
		return nil, err
	}
	team2, err := s.resolveTeam(req.Team2ID, req.Team2Name, "team2")
	if err != nil {
		return nil, err
	}

	match.Team1ID = team1.ID
	match.Team2ID = team2.ID
	match.Overs = req.Overs
	match.CurrentInning = 1
	if req.Inning != nil {
		match.CurrentInning = *req.Inning
	}
	match.Status = models.MatchStatusOngoing
	if req.Status != "" {
		match.Status = req.Status
	}
	match.CreatedBy = callerID

	if err := s.repo.Update(match); err != nil {
		return nil, fmt.Errorf("failed to update match: %w", err)
	}

	match.Team1 = team1
	match.Team2 = team2
	return s.toResponse(match), nil
}

// Patch partially updates a caller-owned match
func (s *MatchService) Patch(callerID, id uuid.UUID, req *PatchMatchRequest) (*MatchResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	match, err := s.getOwned(callerID, id)
	if err != nil {
		return nil, err
	}

	if req.Team1ID != nil || req.Team1Name != "" {
		team1, err := s.resolveTeam(req.Team1ID, req.Team1Name, "team1")
		if err != nil {
			return nil, err
		}
		match.Team1ID = team1.ID
		match.Team1 = team1
	}
	if req.Team2ID != nil || req.Team2Name != "" {
		team2, err := s.resolveTeam(req.Team2ID, req.Team2Name, "team2")
		if err != nil {
			return nil, err
		}
		match.Team2ID = team2.ID
		match.Team2 = team2
	}
	if req.Overs != nil {
		match.Overs = *req.Overs
	}
	if req.Inning != nil {
		match.CurrentInning = *req.Inning
	}
	if req.Status != nil {
		match.Status = *req.Status
	}
	match.CreatedBy = callerID

	if err := s.repo.Update(match); err != nil {
		return nil, fmt.Errorf("failed to update match: %w", err)
	}

	return s.toResponse(match), nil
}

// Delete removes a caller-owned match together with its cascading players
// and ball log.
func (s *MatchService) Delete(callerID, id uuid.UUID) error {
	affected, err := s.repo.DeleteOwned(id, callerID)
	if err != nil {
		return fmt.Errorf("failed to delete match: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrMatchNotFound
	}

	logger.New().WithFields(map[string]interface{}{
		"match_id": id,
		"owner":    callerID,
	}).Info("match deleted")
	return nil
}

func (s *MatchService) getOwned(callerID, id uuid.UUID) (*models.Match, error) {
	match, err := s.repo.GetByIDAndOwner(id, callerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}
	return match, nil
}

func (s *MatchService) toResponse(match *models.Match) *MatchResponse {
	resp := &MatchResponse{
		ID:            match.ID,
		Overs:         match.Overs,
		CurrentInning: match.CurrentInning,
		Status:        match.Status,
		CreatedBy:     match.CreatedBy,
		CreatedAt:     match.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     match.UpdatedAt.Format(time.RFC3339),
	}
	if match.Team1 != nil {
		resp.Team1 = TeamResponse{ID: match.Team1.ID, Name: match.Team1.Name}
	} else {
		resp.Team1 = TeamResponse{ID: match.Team1ID}
	}
	if match.Team2 != nil {
		resp.Team2 = TeamResponse{ID: match.Team2.ID, Name: match.Team2.Name}
	} else {
		resp.Team2 = TeamResponse{ID: match.Team2ID}
	}
	return resp
}
