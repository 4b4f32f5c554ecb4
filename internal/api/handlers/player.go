package handlers

import (
	"net/http"

	"cricket-scoring/internal/service"

	"github.com/gin-gonic/gin"
)

// PlayerHandler handles HTTP requests for match squads
type PlayerHandler struct {
	playerService service.PlayerServiceInterface
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(playerService service.PlayerServiceInterface) *PlayerHandler {
	return &PlayerHandler{
		playerService: playerService,
	}
}

// ListPlayers handles GET /api/matches/:id/players/
// @Summary List match squads
// @Description List both teams' players for a caller-owned match
// @Tags players
// @Accept json
// @Produce json
// @Param id path string true "Match ID (UUID)"
// @Success 200 {object} service.MatchPlayersResponse "Both squads"
// @Failure 404 {object} ErrorResponse "Match not found or not owned"
// @Security BearerAuth
// @Router /api/matches/{id}/players/ [get]
func (h *PlayerHandler) ListPlayers(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := matchIDParam(c)
	if !ok {
		return
	}

	players, err := h.playerService.ListByMatch(caller, id)
	if err != nil {
		respondMatchError(c, err)
		return
	}

	c.JSON(http.StatusOK, players)
}

// AddPlayer handles POST /api/matches/:id/players/
// @Summary Add a player
// @Description Register a player on team1 or team2 of a caller-owned match
// @Tags players
// @Accept json
// @Produce json
// @Param id path string true "Match ID (UUID)"
// @Param player body service.AddPlayerRequest true "Player data"
// @Success 201 {object} service.PlayerResponse "Created player"
// @Failure 400 {object} ErrorResponse "Missing team choice or player name"
// @Failure 404 {object} ErrorResponse "Match not found or not owned"
// @Security BearerAuth
// @Router /api/matches/{id}/players/ [post]
func (h *PlayerHandler) AddPlayer(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := matchIDParam(c)
	if !ok {
		return
	}

	var req service.AddPlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	player, err := h.playerService.AddPlayer(caller, id, &req)
	if err != nil {
		respondMatchError(c, err)
		return
	}

	c.JSON(http.StatusCreated, player)
}
