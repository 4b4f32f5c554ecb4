package repository

import (
	"testing"
	"time"

	"cricket-scoring/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TeamRepositoryTestSuite tests the TeamRepository
type TeamRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TeamRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *TeamRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewTeamRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *TeamRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TeamRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *TeamRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new team
func (suite *TeamRepositoryTestSuite) TestCreate() {
	team := suite.factories.Team.WithName("Lions")

	err := suite.repo.Create(team)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, team.ID)
	suite.NotZero(team.CreatedAt)
}

// TestDuplicateNamesAllowed tests that team names are not unique
func (suite *TeamRepositoryTestSuite) TestDuplicateNamesAllowed() {
	first := suite.factories.Team.WithName("Lions")
	second := suite.factories.Team.WithName("Lions")

	suite.NoError(suite.repo.Create(first))
	suite.NoError(suite.repo.Create(second))
	suite.NotEqual(first.ID, second.ID)
}

// TestGetByName tests exact-match lookup with oldest-row precedence
func (suite *TeamRepositoryTestSuite) TestGetByName() {
	older := suite.factories.Team.WithName("Lions")
	older.CreatedAt = time.Now().Add(-time.Hour)
	newer := suite.factories.Team.WithName("Lions")

	suite.NoError(suite.repo.Create(older))
	suite.NoError(suite.repo.Create(newer))

	found, err := suite.repo.GetByName("Lions")
	suite.NoError(err)
	suite.Equal(older.ID, found.ID)

	// Lookup is case-sensitive
	_, err = suite.repo.GetByName("lions")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetWithPlayers tests squad preloading
func (suite *TeamRepositoryTestSuite) TestGetWithPlayers() {
	team := suite.factories.Team.WithName("Lions")
	suite.NoError(suite.repo.Create(team))

	playerRepo := NewPlayerRepository(suite.baseTestSuite.DB)
	suite.NoError(playerRepo.Create(suite.factories.Player.WithName(team.ID, "Kohli")))
	suite.NoError(playerRepo.Create(suite.factories.Player.Bowler(team.ID, "Bumrah")))

	found, err := suite.repo.GetWithPlayers(team.ID)
	suite.NoError(err)
	suite.Len(found.Players, 2)
}

// TestTeamRepositoryTestSuite runs the test suite
func TestTeamRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TeamRepositoryTestSuite))
}
