package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"cricket-scoring/internal/config"
	"cricket-scoring/internal/database"
	"cricket-scoring/internal/database/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type UserData struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

type PlayerData struct {
	Name      string `yaml:"name"`
	IsBatsman *bool  `yaml:"is_batsman,omitempty"`
	IsBowler  *bool  `yaml:"is_bowler,omitempty"`
}

type TeamData struct {
	Name    string       `yaml:"name"`
	Players []PlayerData `yaml:"players,omitempty"`
}

type BallData struct {
	Over     int    `yaml:"over"`
	Ball     int    `yaml:"ball"`
	Batsman  string `yaml:"batsman"`
	Bowler   string `yaml:"bowler"`
	Runs     int    `yaml:"runs"`
	IsWicket bool   `yaml:"is_wicket,omitempty"`
}

type MatchData struct {
	Team1     string     `yaml:"team1"`
	Team2     string     `yaml:"team2"`
	Overs     int        `yaml:"overs"`
	Status    string     `yaml:"status,omitempty"`
	CreatedBy string     `yaml:"created_by"`
	Balls     []BallData `yaml:"balls,omitempty"`
}

// File structures
type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type TeamsFile struct {
	Teams []TeamData `yaml:"teams"`
}

type MatchesFile struct {
	Matches []MatchData `yaml:"matches"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	var usersFile UsersFile
	if err := readYAML(filepath.Join(dataDir, "users.yaml"), &usersFile); err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	var teamsFile TeamsFile
	if err := readYAML(filepath.Join(dataDir, "teams.yaml"), &teamsFile); err != nil {
		return fmt.Errorf("failed to load teams: %w", err)
	}

	var matchesFile MatchesFile
	if err := readYAML(filepath.Join(dataDir, "matches.yaml"), &matchesFile); err != nil {
		return fmt.Errorf("failed to load matches: %w", err)
	}

	for _, u := range usersFile.Users {
		if err := upsertUser(db, u); err != nil {
			return fmt.Errorf("user %q: %w", u.Username, err)
		}
	}
	log.Printf("Loaded %d users", len(usersFile.Users))

	for _, t := range teamsFile.Teams {
		if err := upsertTeam(db, t); err != nil {
			return fmt.Errorf("team %q: %w", t.Name, err)
		}
	}
	log.Printf("Loaded %d teams", len(teamsFile.Teams))

	for i, m := range matchesFile.Matches {
		if err := insertMatch(db, m); err != nil {
			return fmt.Errorf("match %d (%s vs %s): %w", i+1, m.Team1, m.Team2, err)
		}
	}
	log.Printf("Loaded %d matches", len(matchesFile.Matches))

	return nil
}

func readYAML(path string, target interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, target)
}

func upsertUser(db *gorm.DB, data UserData) error {
	var existing models.User
	err := db.Where("username = ?", data.Username).First(&existing).Error
	if err == nil {
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return db.Create(&models.User{
		Username:     data.Username,
		PasswordHash: string(hash),
	}).Error
}

func upsertTeam(db *gorm.DB, data TeamData) error {
	team, err := getOrCreateTeam(db, data.Name)
	if err != nil {
		return err
	}

	for _, p := range data.Players {
		var existing models.Player
		err := db.Where("team_id = ? AND name = ?", team.ID, p.Name).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		player := models.Player{
			TeamID:    team.ID,
			Name:      p.Name,
			IsBatsman: true,
			IsBowler:  false,
		}
		if p.IsBatsman != nil {
			player.IsBatsman = *p.IsBatsman
		}
		if p.IsBowler != nil {
			player.IsBowler = *p.IsBowler
		}
		if err := db.Create(&player).Error; err != nil {
			return err
		}
	}
	return nil
}

func getOrCreateTeam(db *gorm.DB, name string) (*models.Team, error) {
	var team models.Team
	err := db.Where("name = ?", name).Order("created_at ASC").First(&team).Error
	if err == nil {
		return &team, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	team = models.Team{Name: name}
	if err := db.Create(&team).Error; err != nil {
		return nil, err
	}
	return &team, nil
}

func insertMatch(db *gorm.DB, data MatchData) error {
	var owner models.User
	if err := db.Where("username = ?", data.CreatedBy).First(&owner).Error; err != nil {
		return fmt.Errorf("owner %q: %w", data.CreatedBy, err)
	}

	team1, err := getOrCreateTeam(db, data.Team1)
	if err != nil {
		return err
	}
	team2, err := getOrCreateTeam(db, data.Team2)
	if err != nil {
		return err
	}

	status := models.MatchStatusOngoing
	if data.Status != "" {
		status = models.MatchStatus(data.Status)
	}

	match := models.Match{
		Team1ID:       team1.ID,
		Team2ID:       team2.ID,
		Overs:         data.Overs,
		CurrentInning: 1,
		Status:        status,
		CreatedBy:     owner.ID,
	}
	if err := db.Create(&match).Error; err != nil {
		return err
	}

	for _, b := range data.Balls {
		batsman, err := findPlayer(db, team1.ID, team2.ID, b.Batsman)
		if err != nil {
			return fmt.Errorf("batsman %q: %w", b.Batsman, err)
		}
		bowler, err := findPlayer(db, team1.ID, team2.ID, b.Bowler)
		if err != nil {
			return fmt.Errorf("bowler %q: %w", b.Bowler, err)
		}

		ball := models.Ball{
			MatchID:   match.ID,
			Over:      b.Over,
			Ball:      b.Ball,
			BatsmanID: batsman.ID,
			BowlerID:  bowler.ID,
			Runs:      b.Runs,
			IsWicket:  b.IsWicket,
		}
		if err := db.Create(&ball).Error; err != nil {
			return err
		}
	}
	return nil
}

func findPlayer(db *gorm.DB, team1ID, team2ID uuid.UUID, name string) (*models.Player, error) {
	var player models.Player
	err := db.Where("team_id IN ? AND name = ?", []uuid.UUID{team1ID, team2ID}, name).First(&player).Error
	if err != nil {
		return nil, err
	}
	return &player, nil
}
