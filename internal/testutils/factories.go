package testutils

import (
	"time"

	"cricket-scoring/internal/database/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// FactorySet bundles all entity factories for test suites
type FactorySet struct {
	User   *UserFactory
	Team   *TeamFactory
	Player *PlayerFactory
	Match  *MatchFactory
	Ball   *BallFactory
}

// NewFactorySet creates a FactorySet with all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:   NewUserFactory(),
		Team:   NewTeamFactory(),
		Player: NewPlayerFactory(),
		Match:  NewMatchFactory(),
		Ball:   NewBallFactory(),
	}
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)

	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		// unique per instance to satisfy the username index
		Username:     "scorer-" + id.String()[:8],
		PasswordHash: string(hash),
	}
}

// WithUsername sets a custom username for the user
func (f *UserFactory) WithUsername(username string) *models.User {
	user := f.Create()
	user.Username = username
	return user
}

// WithPassword sets the password hash from a plaintext password
func (f *UserFactory) WithPassword(username, password string) *models.User {
	user := f.Create()
	user.Username = username
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	user.PasswordHash = string(hash)
	return user
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with default values
func (f *TeamFactory) Create() *models.Team {
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name: "Test XI",
	}
}

// WithName sets a custom name for the team
func (f *TeamFactory) WithName(name string) *models.Team {
	team := f.Create()
	team.Name = name
	return team
}

// PlayerFactory provides methods to create test Player data
type PlayerFactory struct{}

// NewPlayerFactory creates a new PlayerFactory
func NewPlayerFactory() *PlayerFactory {
	return &PlayerFactory{}
}

// Create creates a test Player with default values
func (f *PlayerFactory) Create() *models.Player {
	return &models.Player{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TeamID:    uuid.New(),
		Name:      "Test Player",
		IsBatsman: true,
		IsBowler:  false,
	}
}

// WithTeam sets the team ID for the player
func (f *PlayerFactory) WithTeam(teamID uuid.UUID) *models.Player {
	player := f.Create()
	player.TeamID = teamID
	return player
}

// WithName sets a custom name for the player
func (f *PlayerFactory) WithName(teamID uuid.UUID, name string) *models.Player {
	player := f.Create()
	player.TeamID = teamID
	player.Name = name
	return player
}

// Bowler creates a player flagged as bowler only
func (f *PlayerFactory) Bowler(teamID uuid.UUID, name string) *models.Player {
	player := f.WithName(teamID, name)
	player.IsBatsman = false
	player.IsBowler = true
	return player
}

// MatchFactory provides methods to create test Match data
type MatchFactory struct{}

// NewMatchFactory creates a new MatchFactory
func NewMatchFactory() *MatchFactory {
	return &MatchFactory{}
}

// Create creates a test Match with default values
func (f *MatchFactory) Create() *models.Match {
	return &models.Match{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Team1ID:       uuid.New(),
		Team2ID:       uuid.New(),
		Overs:         20,
		CurrentInning: 1,
		Status:        models.MatchStatusOngoing,
		CreatedBy:     uuid.New(),
	}
}

// WithTeams sets both team IDs for the match
func (f *MatchFactory) WithTeams(team1ID, team2ID uuid.UUID) *models.Match {
	match := f.Create()
	match.Team1ID = team1ID
	match.Team2ID = team2ID
	return match
}

// WithOwner sets the creating user for the match
func (f *MatchFactory) WithOwner(ownerID uuid.UUID) *models.Match {
	match := f.Create()
	match.CreatedBy = ownerID
	return match
}

// BallFactory provides methods to create test Ball data
type BallFactory struct{}

// NewBallFactory creates a new BallFactory
func NewBallFactory() *BallFactory {
	return &BallFactory{}
}

// Create creates a test Ball with default values
func (f *BallFactory) Create() *models.Ball {
	return &models.Ball{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		MatchID:   uuid.New(),
		Over:      1,
		Ball:      1,
		BatsmanID: uuid.New(),
		BowlerID:  uuid.New(),
		Runs:      0,
		IsWicket:  false,
	}
}

// InMatch sets the match and players, at a given position in the over
func (f *BallFactory) InMatch(matchID, batsmanID, bowlerID uuid.UUID, over, ball int) *models.Ball {
	b := f.Create()
	b.MatchID = matchID
	b.BatsmanID = batsmanID
	b.BowlerID = bowlerID
	b.Over = over
	b.Ball = ball
	return b
}
