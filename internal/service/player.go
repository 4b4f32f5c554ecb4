package service

import (
	"errors"
	"fmt"

	"cricket-scoring/internal/database/models"
	apperrors "cricket-scoring/internal/errors"
	"cricket-scoring/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Side names a match side in player requests
type Side string

const (
	SideTeam1 Side = "team1"
	SideTeam2 Side = "team2"
)

// PlayerService handles business logic for players within a match context
type PlayerService struct {
	repo      repository.PlayerRepositoryInterface
	matchRepo repository.MatchRepositoryInterface
	validator *validator.Validate
}

// NewPlayerService creates a new player service
func NewPlayerService(repo repository.PlayerRepositoryInterface, matchRepo repository.MatchRepositoryInterface, validator *validator.Validate) *PlayerService {
	return &PlayerService{
		repo:      repo,
		matchRepo: matchRepo,
		validator: validator,
	}
}

// AddPlayerRequest represents the request to register a player on one side
// of a match.
type AddPlayerRequest struct {
	Team      Side   `json:"team" validate:"required,oneof=team1 team2"`
	Name      string `json:"player_name" validate:"required,min=1,max=100"`
	IsBatsman *bool  `json:"is_batsman,omitempty"`
	IsBowler  *bool  `json:"is_bowler,omitempty"`
}

// PlayerResponse represents a player in API responses
type PlayerResponse struct {
	ID        uuid.UUID `json:"id"`
	TeamID    uuid.UUID `json:"team_id"`
	Name      string    `json:"name"`
	IsBatsman bool      `json:"is_batsman"`
	IsBowler  bool      `json:"is_bowler"`
}

// TeamPlayersResponse groups one side's team with its squad
type TeamPlayersResponse struct {
	Team    TeamResponse     `json:"team"`
	Players []PlayerResponse `json:"players"`
}

// MatchPlayersResponse lists both squads of a match
type MatchPlayersResponse struct {
	MatchID uuid.UUID           `json:"match_id"`
	Team1   TeamPlayersResponse `json:"team1"`
	Team2   TeamPlayersResponse `json:"team2"`
}

// AddPlayer registers a player on one side of a caller-owned match. The
// batsman flag defaults to true, the bowler flag to false.
func (s *PlayerService) AddPlayer(callerID, matchID uuid.UUID, req *AddPlayerRequest) (*PlayerResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	match, err := s.getOwnedMatch(callerID, matchID)
	if err != nil {
		return nil, err
	}

	teamID := match.Team1ID
	if req.Team == SideTeam2 {
		teamID = match.Team2ID
	}

	player := &models.Player{
		TeamID:    teamID,
		Name:      req.Name,
		IsBatsman: true,
		IsBowler:  false,
	}
	if req.IsBatsman != nil {
		player.IsBatsman = *req.IsBatsman
	}
	if req.IsBowler != nil {
		player.IsBowler = *req.IsBowler
	}

	if err := s.repo.Create(player); err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	return toPlayerResponse(player), nil
}

// ListByMatch returns both squads of a caller-owned match
func (s *PlayerService) ListByMatch(callerID, matchID uuid.UUID) (*MatchPlayersResponse, error) {
	match, err := s.getOwnedMatch(callerID, matchID)
	if err != nil {
		return nil, err
	}

	team1Players, err := s.repo.GetByTeamID(match.Team1ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list team1 players: %w", err)
	}
	team2Players, err := s.repo.GetByTeamID(match.Team2ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list team2 players: %w", err)
	}

	resp := &MatchPlayersResponse{
		MatchID: match.ID,
		Team1: TeamPlayersResponse{
			Players: toPlayerResponses(team1Players),
		},
		Team2: TeamPlayersResponse{
			Players: toPlayerResponses(team2Players),
		},
	}
	if match.Team1 != nil {
		resp.Team1.Team = TeamResponse{ID: match.Team1.ID, Name: match.Team1.Name}
	}
	if match.Team2 != nil {
		resp.Team2.Team = TeamResponse{ID: match.Team2.ID, Name: match.Team2.Name}
	}
	return resp, nil
}

func (s *PlayerService) getOwnedMatch(callerID, matchID uuid.UUID) (*models.Match, error) {
	match, err := s.matchRepo.GetByIDAndOwner(matchID, callerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}
	return match, nil
}

func toPlayerResponse(player *models.Player) *PlayerResponse {
	return &PlayerResponse{
		ID:        player.ID,
		TeamID:    player.TeamID,
		Name:      player.Name,
		IsBatsman: player.IsBatsman,
		IsBowler:  player.IsBowler,
	}
}

func toPlayerResponses(players []models.Player) []PlayerResponse {
	responses := make([]PlayerResponse, len(players))
	for i := range players {
		responses[i] = *toPlayerResponse(&players[i])
	}
	return responses
}
