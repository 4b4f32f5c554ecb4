package handlers_test

import (
	"net/http"
	"testing"

	"cricket-scoring/internal/api/handlers"
	"cricket-scoring/internal/service"
	"cricket-scoring/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// setupValidationRouter wires the handlers over the real services so that
// requests travel the same validation path production traffic does. The
// repositories are nil: every request sent here must fail field validation
// before any data access happens.
func setupValidationRouter() *testutils.HTTPTestSuite {
	validate := validator.New()

	httpSuite := testutils.SetupHTTPTest()
	httpSuite.Router.Use(func(c *gin.Context) {
		c.Set("user_id", uuid.New())
		c.Next()
	})

	matchHandler := handlers.NewMatchHandler(service.NewMatchService(nil, nil, validate))
	playerHandler := handlers.NewPlayerHandler(service.NewPlayerService(nil, nil, validate))
	ballHandler := handlers.NewBallHandler(service.NewScoringService(nil, nil, nil, validate))

	matches := httpSuite.Router.Group("/api/matches")
	{
		matches.PUT("/:id/", matchHandler.UpdateMatch)
		matches.PATCH("/:id/", matchHandler.PatchMatch)
		matches.POST("/:id/players/", playerHandler.AddPlayer)
		matches.POST("/:id/balls/", ballHandler.RecordBall)
	}
	return httpSuite
}

// TestFieldValidationReturns400 checks that struct-level validation failures
// surface as 400 responses with the failing field named, not as 500s.
func TestFieldValidationReturns400(t *testing.T) {
	httpSuite := setupValidationRouter()
	matchID := uuid.New().String()

	t.Run("Add Player With Invalid Side", func(t *testing.T) {
		recorder := httpSuite.MakeRequest("POST", "/api/matches/"+matchID+"/players/", map[string]interface{}{
			"team":        "team3",
			"player_name": "Kohli",
		})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "team")
	})

	t.Run("Add Player Without Name", func(t *testing.T) {
		recorder := httpSuite.MakeRequest("POST", "/api/matches/"+matchID+"/players/", map[string]interface{}{
			"team": "team1",
		})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "name")
	})

	t.Run("Record Ball Without Batsman", func(t *testing.T) {
		recorder := httpSuite.MakeRequest("POST", "/api/matches/"+matchID+"/balls/", map[string]interface{}{
			"bowler": uuid.New().String(),
			"runs":   4,
		})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "batsman")
	})

	t.Run("Record Ball Without Bowler", func(t *testing.T) {
		recorder := httpSuite.MakeRequest("POST", "/api/matches/"+matchID+"/balls/", map[string]interface{}{
			"batsman": uuid.New().String(),
			"runs":    4,
		})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "bowler")
	})

	t.Run("Update Match With Invalid Status", func(t *testing.T) {
		recorder := httpSuite.MakeRequest("PUT", "/api/matches/"+matchID+"/", map[string]interface{}{
			"team1_name": "Lions",
			"team2_name": "Tigers",
			"overs":      20,
			"status":     "Paused",
		})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "status")
	})

	t.Run("Patch Match With Invalid Status", func(t *testing.T) {
		recorder := httpSuite.MakeRequest("PATCH", "/api/matches/"+matchID+"/", map[string]interface{}{
			"status": "Abandoned",
		})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "status")
	})
}
