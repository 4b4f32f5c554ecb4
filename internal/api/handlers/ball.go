package handlers

import (
	"net/http"

	"cricket-scoring/internal/service"

	"github.com/gin-gonic/gin"
)

// BallHandler handles HTTP requests for the ball-by-ball log and scorecard
type BallHandler struct {
	scoringService service.ScoringServiceInterface
}

// NewBallHandler creates a new ball handler
func NewBallHandler(scoringService service.ScoringServiceInterface) *BallHandler {
	return &BallHandler{
		scoringService: scoringService,
	}
}

// ListBalls handles GET /api/matches/:id/balls/
// @Summary List deliveries
// @Description List a caller-owned match's ball log in delivery order
// @Tags scoring
// @Accept json
// @Produce json
// @Param id path string true "Match ID (UUID)"
// @Success 200 {array} service.BallResponse "Ball log"
// @Failure 404 {object} ErrorResponse "Match not found or not owned"
// @Security BearerAuth
// @Router /api/matches/{id}/balls/ [get]
func (h *BallHandler) ListBalls(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := matchIDParam(c)
	if !ok {
		return
	}

	balls, err := h.scoringService.ListBalls(caller, id)
	if err != nil {
		respondMatchError(c, err)
		return
	}

	c.JSON(http.StatusOK, balls)
}

// RecordBall handles POST /api/matches/:id/balls/
// @Summary Record a delivery
// @Description Append one delivery to a caller-owned match's log; the (over, ball) coordinate is computed server-side
// @Tags scoring
// @Accept json
// @Produce json
// @Param id path string true "Match ID (UUID)"
// @Param ball body service.RecordBallRequest true "Delivery data"
// @Success 201 {object} service.BallResponse "Recorded delivery with its coordinate"
// @Failure 400 {object} ErrorResponse "Validation failure"
// @Failure 404 {object} ErrorResponse "Match, batsman or bowler not found"
// @Security BearerAuth
// @Router /api/matches/{id}/balls/ [post]
func (h *BallHandler) RecordBall(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := matchIDParam(c)
	if !ok {
		return
	}

	var req service.RecordBallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ball, err := h.scoringService.RecordBall(caller, id, &req)
	if err != nil {
		respondMatchError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ball)
}

// GetScorecard handles GET /api/matches/:id/scorecard/
// @Summary Get the scorecard
// @Description Recompute the aggregated summary of a caller-owned match from its full ball log
// @Tags scoring
// @Accept json
// @Produce json
// @Param id path string true "Match ID (UUID)"
// @Success 200 {object} service.ScorecardResponse "Aggregated scorecard"
// @Failure 404 {object} ErrorResponse "Match not found or not owned"
// @Security BearerAuth
// @Router /api/matches/{id}/scorecard/ [get]
func (h *BallHandler) GetScorecard(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := matchIDParam(c)
	if !ok {
		return
	}

	scorecard, err := h.scoringService.Scorecard(caller, id)
	if err != nil {
		respondMatchError(c, err)
		return
	}

	c.JSON(http.StatusOK, scorecard)
}
