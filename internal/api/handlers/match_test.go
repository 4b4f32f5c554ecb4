package handlers_test

import (
	"net/http"
	"testing"

	"cricket-scoring/internal/api/handlers"
	"cricket-scoring/internal/database/models"
	apperrors "cricket-scoring/internal/errors"
	"cricket-scoring/internal/mocks"
	"cricket-scoring/internal/service"
	"cricket-scoring/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// MatchHandlerTestSuite defines the test suite for MatchHandler
type MatchHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockMatchServiceInterface
	handler     *handlers.MatchHandler
	httpSuite   *testutils.HTTPTestSuite
	callerID    uuid.UUID
}

// SetupTest sets up the test suite
func (suite *MatchHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockMatchServiceInterface(suite.ctrl)
	suite.callerID = uuid.New()

	// Create handler with mock service
	suite.handler = handlers.NewMatchHandler(suite.mockService)

	// Setup HTTP test suite
	suite.httpSuite = testutils.SetupHTTPTest()

	// Stand-in for the token middleware: inject the caller id
	suite.httpSuite.Router.Use(func(c *gin.Context) {
		c.Set("user_id", suite.callerID)
		c.Next()
	})

	// Register routes
	matches := suite.httpSuite.Router.Group("/api/matches")
	{
		matches.GET("/", suite.handler.ListMatches)
		matches.POST("/", suite.handler.CreateMatch)
		matches.GET("/:id/", suite.handler.GetMatch)
		matches.PUT("/:id/", suite.handler.UpdateMatch)
		matches.PATCH("/:id/", suite.handler.PatchMatch)
		matches.DELETE("/:id/", suite.handler.DeleteMatch)
	}
}

// TearDownTest cleans up after each test
func (suite *MatchHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *MatchHandlerTestSuite) matchResponse(id uuid.UUID) *service.MatchResponse {
	return &service.MatchResponse{
		ID:            id,
		Team1:         service.TeamResponse{ID: uuid.New(), Name: "Lions"},
		Team2:         service.TeamResponse{ID: uuid.New(), Name: "Tigers"},
		Overs:         20,
		CurrentInning: 1,
		Status:        models.MatchStatusOngoing,
		CreatedBy:     suite.callerID,
		CreatedAt:     "2025-06-01T10:00:00Z",
		UpdatedAt:     "2025-06-01T10:00:00Z",
	}
}

// TestListMatches tests the ListMatches handler
func (suite *MatchHandlerTestSuite) TestListMatches() {
	suite.T().Run("Success", func(t *testing.T) {
		expected := []service.MatchResponse{
			*suite.matchResponse(uuid.New()),
			*suite.matchResponse(uuid.New()),
		}

		suite.mockService.EXPECT().
			ListByOwner(suite.callerID).
			Return(expected, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/matches/", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response []service.MatchResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Len(t, response, 2)
		assert.Equal(t, expected[0].ID, response[0].ID)
	})

	suite.T().Run("Empty", func(t *testing.T) {
		suite.mockService.EXPECT().
			ListByOwner(suite.callerID).
			Return([]service.MatchResponse{}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/matches/", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, "[]", recorder.Body.String())
	})
}

// TestCreateMatch tests the CreateMatch handler
func (suite *MatchHandlerTestSuite) TestCreateMatch() {
	suite.T().Run("Success With Team Names", func(t *testing.T) {
		matchID := uuid.New()
		requestBody := map[string]interface{}{
			"team1_name": "Lions",
			"team2_name": "Tigers",
			"overs":      20,
		}

		suite.mockService.EXPECT().
			Create(suite.callerID, gomock.Any()).
			Return(suite.matchResponse(matchID), nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/matches/", requestBody)

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var response service.MatchResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, matchID, response.ID)
		assert.Equal(t, "Lions", response.Team1.Name)
		assert.Equal(t, suite.callerID, response.CreatedBy)
	})

	suite.T().Run("Missing Overs", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"team1_name": "Lions",
			"team2_name": "Tigers",
		}

		suite.mockService.EXPECT().
			Create(suite.callerID, gomock.Any()).
			Return(nil, apperrors.NewValidationError("overs", "overs is required")).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/matches/", requestBody)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "overs")
	})

	suite.T().Run("Unknown Team ID", func(t *testing.T) {
		badID := uuid.New()
		requestBody := map[string]interface{}{
			"team1":      badID.String(),
			"team2_name": "Tigers",
			"overs":      20,
		}

		suite.mockService.EXPECT().
			Create(suite.callerID, gomock.Any()).
			Return(nil, apperrors.NewValidationError("team1", "invalid team1 id: "+badID.String())).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/matches/", requestBody)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid team1 id")
	})
}

// TestGetMatch tests the GetMatch handler
func (suite *MatchHandlerTestSuite) TestGetMatch() {
	suite.T().Run("Success", func(t *testing.T) {
		matchID := uuid.New()

		suite.mockService.EXPECT().
			GetByID(suite.callerID, matchID).
			Return(suite.matchResponse(matchID), nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/matches/"+matchID.String()+"/", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.MatchResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, matchID, response.ID)
	})

	suite.T().Run("Not Owned Returns 404", func(t *testing.T) {
		matchID := uuid.New()

		suite.mockService.EXPECT().
			GetByID(suite.callerID, matchID).
			Return(nil, apperrors.ErrMatchNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/matches/"+matchID.String()+"/", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "match not found")
	})

	suite.T().Run("Invalid ID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("GET", "/api/matches/not-a-uuid/", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid match ID")
	})
}

// TestUpdateMatch tests the UpdateMatch handler
func (suite *MatchHandlerTestSuite) TestUpdateMatch() {
	suite.T().Run("Success", func(t *testing.T) {
		matchID := uuid.New()
		requestBody := map[string]interface{}{
			"team1_name": "Lions",
			"team2_name": "Tigers",
			"overs":      50,
			"status":     "Completed",
		}

		expected := suite.matchResponse(matchID)
		expected.Overs = 50
		expected.Status = models.MatchStatusCompleted

		suite.mockService.EXPECT().
			Update(suite.callerID, matchID, gomock.Any()).
			Return(expected, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PUT", "/api/matches/"+matchID.String()+"/", requestBody)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.MatchResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, 50, response.Overs)
		assert.Equal(t, models.MatchStatusCompleted, response.Status)
	})

	suite.T().Run("Not Found", func(t *testing.T) {
		matchID := uuid.New()
		requestBody := map[string]interface{}{
			"team1_name": "Lions",
			"team2_name": "Tigers",
			"overs":      50,
		}

		suite.mockService.EXPECT().
			Update(suite.callerID, matchID, gomock.Any()).
			Return(nil, apperrors.ErrMatchNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PUT", "/api/matches/"+matchID.String()+"/", requestBody)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "match not found")
	})
}

// TestPatchMatch tests the PatchMatch handler
func (suite *MatchHandlerTestSuite) TestPatchMatch() {
	suite.T().Run("Status Only", func(t *testing.T) {
		matchID := uuid.New()
		requestBody := map[string]interface{}{
			"status": "Completed",
		}

		expected := suite.matchResponse(matchID)
		expected.Status = models.MatchStatusCompleted

		suite.mockService.EXPECT().
			Patch(suite.callerID, matchID, gomock.Any()).
			Return(expected, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PATCH", "/api/matches/"+matchID.String()+"/", requestBody)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.MatchResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, models.MatchStatusCompleted, response.Status)
	})
}

// TestDeleteMatch tests the DeleteMatch handler
func (suite *MatchHandlerTestSuite) TestDeleteMatch() {
	suite.T().Run("Success", func(t *testing.T) {
		matchID := uuid.New()

		suite.mockService.EXPECT().
			Delete(suite.callerID, matchID).
			Return(nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", "/api/matches/"+matchID.String()+"/", nil)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
		assert.Empty(t, recorder.Body.String())
	})

	suite.T().Run("Not Owned Returns 404", func(t *testing.T) {
		matchID := uuid.New()

		suite.mockService.EXPECT().
			Delete(suite.callerID, matchID).
			Return(apperrors.ErrMatchNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", "/api/matches/"+matchID.String()+"/", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "match not found")
	})
}

// TestMatchHandlerTestSuite runs the test suite
func TestMatchHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(MatchHandlerTestSuite))
}
