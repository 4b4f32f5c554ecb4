package handlers

import (
	"net/http"

	"cricket-scoring/internal/auth"
	apperrors "cricket-scoring/internal/errors"
	"cricket-scoring/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MatchHandler handles HTTP requests for match operations
type MatchHandler struct {
	matchService service.MatchServiceInterface
}

// NewMatchHandler creates a new match handler
func NewMatchHandler(matchService service.MatchServiceInterface) *MatchHandler {
	return &MatchHandler{
		matchService: matchService,
	}
}

// callerID pulls the authenticated user id out of the gin context. The auth
// middleware always sets it on protected routes.
func callerID(c *gin.Context) (uuid.UUID, bool) {
	id, ok := auth.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return uuid.Nil, false
	}
	return id, true
}

func matchIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid match ID"})
		return uuid.Nil, false
	}
	return id, true
}

// respondMatchError maps service errors to HTTP statuses. Ownership misses
// come back as the same 404 a truly absent match produces.
func respondMatchError(c *gin.Context, err error) {
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// ListMatches handles GET /api/matches/
// @Summary List own matches
// @Description List all matches created by the authenticated caller
// @Tags matches
// @Accept json
// @Produce json
// @Success 200 {array} service.MatchResponse "Matches owned by the caller"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Security BearerAuth
// @Router /api/matches/ [get]
func (h *MatchHandler) ListMatches(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}

	matches, err := h.matchService.ListByOwner(caller)
	if err != nil {
		respondMatchError(c, err)
		return
	}

	c.JSON(http.StatusOK, matches)
}

// CreateMatch handles POST /api/matches/
// @Summary Create a match
// @Description Create a match from team ids or team names; overs is required and created_by is forced to the caller
// @Tags matches
// @Accept json
// @Produce json
// @Param match body service.CreateMatchRequest true "Match data"
// @Success 201 {object} service.MatchResponse "Created match"
// @Failure 400 {object} ErrorResponse "Missing overs or unresolvable team"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Security BearerAuth
// @Router /api/matches/ [post]
func (h *MatchHandler) CreateMatch(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}

	var req service.CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	match, err := h.matchService.Create(caller, &req)
	if err != nil {
		respondMatchError(c, err)
		return
	}

	c.JSON(http.StatusCreated, match)
}

// GetMatch handles GET /api/matches/:id/
// @Summary Get a match
// @Description Get a caller-owned match by id
// @Tags matches
// @Accept json
// @Produce json
// @Param id path string true "Match ID (UUID)"
// @Success 200 {object} service.MatchResponse "Match"
// @Failure 400 {object} ErrorResponse "Invalid match ID"
// @Failure 404 {object} ErrorResponse "Match not found or not owned"
// @Security BearerAuth
// @Router /api/matches/{id}/ [get]
func (h *MatchHandler) GetMatch(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := matchIDParam(c)
	if !ok {
		return
	}

	match, err := h.matchService.GetByID(caller, id)
	if err != nil {
		respondMatchError(c, err)
		return
	}

	c.JSON(http.StatusOK, match)
}

// UpdateMatch handles PUT /api/matches/:id/
// @Summary Replace a match
// @Description Fully update a caller-owned match; created_by stays the caller
// @Tags matches
// @Accept json
// @Produce json
// @Param id path string true "Match ID (UUID)"
// @Param match body service.UpdateMatchRequest true "Match data"
// @Success 200 {object} service.MatchResponse "Updated match"
// @Failure 400 {object} ErrorResponse "Validation failure"
// @Failure 404 {object} ErrorResponse "Match not found or not owned"
// @Security BearerAuth
// @Router /api/matches/{id}/ [put]
func (h *MatchHandler) UpdateMatch(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := matchIDParam(c)
	if !ok {
		return
	}

	var req service.UpdateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	match, err := h.matchService.Update(caller, id, &req)
	if err != nil {
		respondMatchError(c, err)
		return
	}

	c.JSON(http.StatusOK, match)
}

// PatchMatch handles PATCH /api/matches/:id/
// @Summary Partially update a match
// @Description Update provided fields of a caller-owned match
// @Tags matches
// @Accept json
// @Produce json
// @Param id path string true "Match ID (UUID)"
// @Param match body service.PatchMatchRequest true "Fields to update"
// @Success 200 {object} service.MatchResponse "Updated match"
// @Failure 400 {object} ErrorResponse "Validation failure"
// @Failure 404 {object} ErrorResponse "Match not found or not owned"
// @Security BearerAuth
// @Router /api/matches/{id}/ [patch]
func (h *MatchHandler) PatchMatch(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := matchIDParam(c)
	if !ok {
		return
	}

	var req service.PatchMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	match, err := h.matchService.Patch(caller, id, &req)
	if err != nil {
		respondMatchError(c, err)
		return
	}

	c.JSON(http.StatusOK, match)
}

// DeleteMatch handles DELETE /api/matches/:id/
// @Summary Delete a match
// @Description Delete a caller-owned match together with its ball log
// @Tags matches
// @Accept json
// @Produce json
// @Param id path string true "Match ID (UUID)"
// @Success 204 "Match deleted"
// @Failure 404 {object} ErrorResponse "Match not found or not owned"
// @Security BearerAuth
// @Router /api/matches/{id}/ [delete]
func (h *MatchHandler) DeleteMatch(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := matchIDParam(c)
	if !ok {
		return
	}

	if err := h.matchService.Delete(caller, id); err != nil {
		respondMatchError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
