package service_test

import (
	"sync"
	"testing"

	"cricket-scoring/internal/database/models"
	apperrors "cricket-scoring/internal/errors"
	"cricket-scoring/internal/mocks"
	"cricket-scoring/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// ScoringServiceTestSuite defines the test suite for ScoringService
type ScoringServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockRepo       *mocks.MockBallRepositoryInterface
	mockMatchRepo  *mocks.MockMatchRepositoryInterface
	mockPlayerRepo *mocks.MockPlayerRepositoryInterface
	service        *service.ScoringService
	callerID       uuid.UUID
	match          *models.Match
	batsman        *models.Player
	bowler         *models.Player
}

// SetupTest sets up the test suite
func (suite *ScoringServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockBallRepositoryInterface(suite.ctrl)
	suite.mockMatchRepo = mocks.NewMockMatchRepositoryInterface(suite.ctrl)
	suite.mockPlayerRepo = mocks.NewMockPlayerRepositoryInterface(suite.ctrl)
	suite.service = service.NewScoringService(suite.mockRepo, suite.mockMatchRepo, suite.mockPlayerRepo, validator.New())
	suite.callerID = uuid.New()

	suite.match = &models.Match{
		Team1ID:       uuid.New(),
		Team2ID:       uuid.New(),
		Overs:         20,
		CurrentInning: 1,
		Status:        models.MatchStatusOngoing,
		CreatedBy:     suite.callerID,
		Team1:         &models.Team{Name: "Lions"},
		Team2:         &models.Team{Name: "Tigers"},
	}
	suite.match.ID = uuid.New()
	suite.match.Team1.ID = suite.match.Team1ID
	suite.match.Team2.ID = suite.match.Team2ID

	suite.batsman = &models.Player{TeamID: suite.match.Team1ID, Name: "Kohli", IsBatsman: true}
	suite.batsman.ID = uuid.New()
	suite.bowler = &models.Player{TeamID: suite.match.Team2ID, Name: "Starc", IsBowler: true}
	suite.bowler.ID = uuid.New()
}

// TearDownTest cleans up after each test
func (suite *ScoringServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ScoringServiceTestSuite) recordRequest() *service.RecordBallRequest {
	return &service.RecordBallRequest{
		BatsmanID: suite.batsman.ID,
		BowlerID:  suite.bowler.ID,
		Runs:      4,
	}
}

func (suite *ScoringServiceTestSuite) expectOwnedMatch() {
	suite.mockMatchRepo.EXPECT().
		GetByIDAndOwner(suite.match.ID, suite.callerID).
		Return(suite.match, nil).
		Times(1)
}

func (suite *ScoringServiceTestSuite) expectPlayers() {
	suite.mockPlayerRepo.EXPECT().GetByID(suite.batsman.ID).Return(suite.batsman, nil).Times(1)
	suite.mockPlayerRepo.EXPECT().GetByID(suite.bowler.ID).Return(suite.bowler, nil).Times(1)
}

// TestRecordBall tests delivery recording and coordinate assignment
func (suite *ScoringServiceTestSuite) TestRecordBall() {
	suite.T().Run("First Delivery Of Match", func(t *testing.T) {
		suite.expectOwnedMatch()
		suite.expectPlayers()
		suite.mockRepo.EXPECT().GetLast(suite.match.ID).Return(nil, nil).Times(1)
		suite.mockRepo.EXPECT().
			Create(gomock.Any()).
			DoAndReturn(func(ball *models.Ball) error {
				assert.Equal(t, 1, ball.Over)
				assert.Equal(t, 1, ball.Ball)
				ball.ID = uuid.New()
				return nil
			}).
			Times(1)

		response, err := suite.service.RecordBall(suite.callerID, suite.match.ID, suite.recordRequest())

		assert.NoError(t, err)
		assert.Equal(t, 1, response.Over)
		assert.Equal(t, 1, response.Ball)
		assert.Equal(t, "Kohli", response.BatsmanName)
		assert.Equal(t, "Starc", response.BowlerName)
	})

	suite.T().Run("Continues The Over", func(t *testing.T) {
		last := &models.Ball{MatchID: suite.match.ID, Over: 3, Ball: 4}
		last.ID = uuid.New()

		suite.expectOwnedMatch()
		suite.expectPlayers()
		suite.mockRepo.EXPECT().GetLast(suite.match.ID).Return(last, nil).Times(1)
		suite.mockRepo.EXPECT().
			Create(gomock.Any()).
			DoAndReturn(func(ball *models.Ball) error {
				assert.Equal(t, 3, ball.Over)
				assert.Equal(t, 5, ball.Ball)
				return nil
			}).
			Times(1)

		response, err := suite.service.RecordBall(suite.callerID, suite.match.ID, suite.recordRequest())

		assert.NoError(t, err)
		assert.Equal(t, 3, response.Over)
		assert.Equal(t, 5, response.Ball)
	})

	suite.T().Run("Rolls Over After Sixth Ball", func(t *testing.T) {
		last := &models.Ball{MatchID: suite.match.ID, Over: 3, Ball: 6}
		last.ID = uuid.New()

		suite.expectOwnedMatch()
		suite.expectPlayers()
		suite.mockRepo.EXPECT().GetLast(suite.match.ID).Return(last, nil).Times(1)
		suite.mockRepo.EXPECT().
			Create(gomock.Any()).
			DoAndReturn(func(ball *models.Ball) error {
				assert.Equal(t, 4, ball.Over)
				assert.Equal(t, 1, ball.Ball)
				return nil
			}).
			Times(1)

		response, err := suite.service.RecordBall(suite.callerID, suite.match.ID, suite.recordRequest())

		assert.NoError(t, err)
		assert.Equal(t, 4, response.Over)
		assert.Equal(t, 1, response.Ball)
	})

	suite.T().Run("Unknown Batsman", func(t *testing.T) {
		req := suite.recordRequest()
		req.BatsmanID = uuid.New()

		suite.expectOwnedMatch()
		suite.mockPlayerRepo.EXPECT().
			GetByID(req.BatsmanID).
			Return(nil, gorm.ErrRecordNotFound).
			Times(1)

		response, err := suite.service.RecordBall(suite.callerID, suite.match.ID, req)

		assert.Nil(t, response)
		assert.ErrorIs(t, err, apperrors.ErrBatsmanNotFound)
	})

	suite.T().Run("Unknown Bowler", func(t *testing.T) {
		req := suite.recordRequest()
		req.BowlerID = uuid.New()

		suite.expectOwnedMatch()
		suite.mockPlayerRepo.EXPECT().GetByID(req.BatsmanID).Return(suite.batsman, nil).Times(1)
		suite.mockPlayerRepo.EXPECT().
			GetByID(req.BowlerID).
			Return(nil, gorm.ErrRecordNotFound).
			Times(1)

		response, err := suite.service.RecordBall(suite.callerID, suite.match.ID, req)

		assert.Nil(t, response)
		assert.ErrorIs(t, err, apperrors.ErrBowlerNotFound)
	})

	suite.T().Run("Missing Batsman Id Is A Validation Error", func(t *testing.T) {
		req := suite.recordRequest()
		req.BatsmanID = uuid.Nil

		response, err := suite.service.RecordBall(suite.callerID, suite.match.ID, req)

		assert.Nil(t, response)
		assert.True(t, apperrors.IsValidation(err))
		assert.Contains(t, err.Error(), "batsman")
	})

	suite.T().Run("Match Not Owned", func(t *testing.T) {
		suite.mockMatchRepo.EXPECT().
			GetByIDAndOwner(suite.match.ID, suite.callerID).
			Return(nil, gorm.ErrRecordNotFound).
			Times(1)

		response, err := suite.service.RecordBall(suite.callerID, suite.match.ID, suite.recordRequest())

		assert.Nil(t, response)
		assert.ErrorIs(t, err, apperrors.ErrMatchNotFound)
	})

	suite.T().Run("Concurrent Appends Get Distinct Coordinates", func(t *testing.T) {
		const writers = 8

		suite.mockMatchRepo.EXPECT().
			GetByIDAndOwner(suite.match.ID, suite.callerID).
			Return(suite.match, nil).
			Times(writers)
		suite.mockPlayerRepo.EXPECT().GetByID(suite.batsman.ID).Return(suite.batsman, nil).Times(writers)
		suite.mockPlayerRepo.EXPECT().GetByID(suite.bowler.ID).Return(suite.bowler, nil).Times(writers)

		// Simulated log: GetLast and Create run under the match lock, so
		// this slice sees them serialized.
		var mu sync.Mutex
		var log []*models.Ball

		suite.mockRepo.EXPECT().
			GetLast(suite.match.ID).
			DoAndReturn(func(uuid.UUID) (*models.Ball, error) {
				mu.Lock()
				defer mu.Unlock()
				if len(log) == 0 {
					return nil, nil
				}
				return log[len(log)-1], nil
			}).
			Times(writers)
		suite.mockRepo.EXPECT().
			Create(gomock.Any()).
			DoAndReturn(func(ball *models.Ball) error {
				mu.Lock()
				defer mu.Unlock()
				log = append(log, ball)
				return nil
			}).
			Times(writers)

		var wg sync.WaitGroup
		for i := 0; i < writers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := suite.service.RecordBall(suite.callerID, suite.match.ID, suite.recordRequest())
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		seen := make(map[[2]int]bool)
		for _, ball := range log {
			coord := [2]int{ball.Over, ball.Ball}
			assert.False(t, seen[coord], "coordinate assigned twice: %v", coord)
			seen[coord] = true
		}
		assert.Len(t, seen, writers)
	})
}

// TestScorecard tests on-the-fly aggregation over the ball log
func (suite *ScoringServiceTestSuite) TestScorecard() {
	suite.T().Run("Aggregates The Log", func(t *testing.T) {
		balls := []models.Ball{
			{MatchID: suite.match.ID, Over: 1, Ball: 1, BatsmanID: suite.batsman.ID, BowlerID: suite.bowler.ID, Runs: 4, Batsman: suite.batsman, Bowler: suite.bowler},
			{MatchID: suite.match.ID, Over: 1, Ball: 2, BatsmanID: suite.batsman.ID, BowlerID: suite.bowler.ID, Runs: 6, Batsman: suite.batsman, Bowler: suite.bowler},
			{MatchID: suite.match.ID, Over: 1, Ball: 3, BatsmanID: suite.batsman.ID, BowlerID: suite.bowler.ID, Runs: 0, IsWicket: true, Batsman: suite.batsman, Bowler: suite.bowler},
		}

		suite.expectOwnedMatch()
		suite.mockRepo.EXPECT().GetByMatchID(suite.match.ID).Return(balls, nil).Times(1)

		response, err := suite.service.Scorecard(suite.callerID, suite.match.ID)

		assert.NoError(t, err)
		assert.Equal(t, 10, response.Summary.TotalRuns)
		assert.Equal(t, 1, response.Summary.TotalWickets)
		assert.Len(t, response.Summary.Batsmen, 1)
		assert.Equal(t, "Kohli", response.Summary.Batsmen[0].Name)
		assert.Equal(t, 10, response.Summary.Batsmen[0].Runs)
		assert.Equal(t, 1, response.Summary.Batsmen[0].Fours)
		assert.Equal(t, 1, response.Summary.Batsmen[0].Sixes)
		assert.Len(t, response.Summary.Bowlers, 1)
		assert.Equal(t, "0.3", response.Summary.Bowlers[0].Overs)
		assert.Equal(t, 1, response.Summary.Bowlers[0].Wickets)
	})

	suite.T().Run("Empty Log", func(t *testing.T) {
		suite.expectOwnedMatch()
		suite.mockRepo.EXPECT().GetByMatchID(suite.match.ID).Return([]models.Ball{}, nil).Times(1)

		response, err := suite.service.Scorecard(suite.callerID, suite.match.ID)

		assert.NoError(t, err)
		assert.Equal(t, 0, response.Summary.TotalRuns)
		assert.Empty(t, response.Summary.Batsmen)
		assert.Empty(t, response.Summary.Bowlers)
	})
}

// TestListBalls tests ball log listing
func (suite *ScoringServiceTestSuite) TestListBalls() {
	suite.T().Run("Ordered Log With Names", func(t *testing.T) {
		balls := []models.Ball{
			{MatchID: suite.match.ID, Over: 1, Ball: 1, BatsmanID: suite.batsman.ID, BowlerID: suite.bowler.ID, Runs: 1, Batsman: suite.batsman, Bowler: suite.bowler},
			{MatchID: suite.match.ID, Over: 1, Ball: 2, BatsmanID: suite.batsman.ID, BowlerID: suite.bowler.ID, Runs: 2, Batsman: suite.batsman, Bowler: suite.bowler},
		}

		suite.expectOwnedMatch()
		suite.mockRepo.EXPECT().GetByMatchID(suite.match.ID).Return(balls, nil).Times(1)

		responses, err := suite.service.ListBalls(suite.callerID, suite.match.ID)

		assert.NoError(t, err)
		assert.Len(t, responses, 2)
		assert.Equal(t, "Kohli", responses[0].BatsmanName)
		assert.Equal(t, 2, responses[1].Runs)
	})
}

// TestScoringServiceTestSuite runs the test suite
func TestScoringServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ScoringServiceTestSuite))
}
