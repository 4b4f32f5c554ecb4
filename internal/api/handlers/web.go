package handlers

import (
	"net/http"
	"strconv"
	"strings"

	apperrors "cricket-scoring/internal/errors"
	"cricket-scoring/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// WebHandler serves the server-rendered scoring surface. Forms post back to
// the same URL and redirect on success; errors re-render the page with a
// flash message.
type WebHandler struct {
	authService    service.AuthServiceInterface
	matchService   service.MatchServiceInterface
	playerService  service.PlayerServiceInterface
	scoringService service.ScoringServiceInterface
	sessionCookie  string
}

// NewWebHandler creates a new web handler
func NewWebHandler(authService service.AuthServiceInterface, matchService service.MatchServiceInterface, playerService service.PlayerServiceInterface, scoringService service.ScoringServiceInterface, sessionCookie string) *WebHandler {
	return &WebHandler{
		authService:    authService,
		matchService:   matchService,
		playerService:  playerService,
		scoringService: scoringService,
		sessionCookie:  sessionCookie,
	}
}

// RegisterForm renders the registration page
func (h *WebHandler) RegisterForm(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{})
}

// Register handles the registration form post
func (h *WebHandler) Register(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")

	_, err := h.authService.Register(username, password)
	if err != nil {
		status := http.StatusBadRequest
		message := err.Error()
		if apperrors.IsAlreadyExists(err) {
			message = "Username already exists."
		} else if apperrors.IsValidation(err) {
			message = "Username is required."
		} else {
			status = http.StatusInternalServerError
		}
		c.HTML(status, "register.html", gin.H{"error": message})
		return
	}

	c.Redirect(http.StatusFound, "/login")
}

// LoginForm renders the login page
func (h *WebHandler) LoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

// Login handles the login form post and sets the session cookie
func (h *WebHandler) Login(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")

	user, err := h.authService.Authenticate(username, password)
	if err != nil {
		if apperrors.IsAuthentication(err) {
			c.HTML(http.StatusUnauthorized, "login.html", gin.H{"error": "Invalid credentials."})
			return
		}
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{"error": err.Error()})
		return
	}

	token, err := h.authService.IssueToken(user)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{"error": err.Error()})
		return
	}

	c.SetCookie(h.sessionCookie, token, 86400, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

// Logout clears the session cookie
func (h *WebHandler) Logout(c *gin.Context) {
	c.SetCookie(h.sessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/login")
}

// Home renders the list of the caller's matches
func (h *WebHandler) Home(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}

	matches, err := h.matchService.ListByOwner(caller)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "home.html", gin.H{"error": err.Error()})
		return
	}

	c.HTML(http.StatusOK, "home.html", gin.H{
		"username": c.GetString("username"),
		"matches":  matches,
	})
}

// CreateMatchForm renders the match creation page
func (h *WebHandler) CreateMatchForm(c *gin.Context) {
	c.HTML(http.StatusOK, "create_match.html", gin.H{})
}

// CreateMatch handles the match creation form post
func (h *WebHandler) CreateMatch(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}

	overs, err := strconv.Atoi(strings.TrimSpace(c.PostForm("overs")))
	if err != nil || overs <= 0 {
		c.HTML(http.StatusBadRequest, "create_match.html", gin.H{"error": "overs is required."})
		return
	}

	req := &service.CreateMatchRequest{
		Team1Name: strings.TrimSpace(c.PostForm("team1")),
		Team2Name: strings.TrimSpace(c.PostForm("team2")),
		Overs:     overs,
	}

	match, err := h.matchService.Create(caller, req)
	if err != nil {
		c.HTML(http.StatusBadRequest, "create_match.html", gin.H{"error": err.Error()})
		return
	}

	c.Redirect(http.StatusFound, "/match/"+match.ID.String()+"/add-players")
}

// AddPlayersForm renders the squad registration page
func (h *WebHandler) AddPlayersForm(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := h.matchIDFromPath(c)
	if !ok {
		return
	}

	match, err := h.matchService.GetByID(caller, id)
	if err != nil {
		h.renderMatchError(c, err)
		return
	}
	players, err := h.playerService.ListByMatch(caller, id)
	if err != nil {
		h.renderMatchError(c, err)
		return
	}

	c.HTML(http.StatusOK, "add_players.html", gin.H{
		"match":   match,
		"players": players,
	})
}

// AddPlayers handles the squad registration form post. An empty player name
// is silently ignored, matching the form's permissive behavior.
func (h *WebHandler) AddPlayers(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := h.matchIDFromPath(c)
	if !ok {
		return
	}

	name := strings.TrimSpace(c.PostForm("player_name"))
	if name != "" {
		req := &service.AddPlayerRequest{
			Team: service.Side(c.PostForm("team")),
			Name: name,
		}
		if _, err := h.playerService.AddPlayer(caller, id, req); err != nil {
			h.renderMatchError(c, err)
			return
		}
	}

	c.Redirect(http.StatusFound, "/match/"+id.String()+"/add-players")
}

// Dashboard renders the scorecard together with the ball entry form
func (h *WebHandler) Dashboard(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := h.matchIDFromPath(c)
	if !ok {
		return
	}

	scorecard, err := h.scoringService.Scorecard(caller, id)
	if err != nil {
		h.renderMatchError(c, err)
		return
	}
	players, err := h.playerService.ListByMatch(caller, id)
	if err != nil {
		h.renderMatchError(c, err)
		return
	}
	balls, err := h.scoringService.ListBalls(caller, id)
	if err != nil {
		h.renderMatchError(c, err)
		return
	}

	c.HTML(http.StatusOK, "match_dashboard.html", gin.H{
		"match":   scorecard.Match,
		"summary": scorecard.Summary,
		"players": players,
		"balls":   balls,
	})
}

// SubmitBall handles the ball entry form post on the dashboard
func (h *WebHandler) SubmitBall(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := h.matchIDFromPath(c)
	if !ok {
		return
	}

	batsmanID, err := uuid.Parse(c.PostForm("batsman"))
	if err != nil {
		h.renderMatchError(c, apperrors.NewValidationError("batsman", "batsman is required"))
		return
	}
	bowlerID, err := uuid.Parse(c.PostForm("bowler"))
	if err != nil {
		h.renderMatchError(c, apperrors.NewValidationError("bowler", "bowler is required"))
		return
	}
	runs, err := strconv.Atoi(c.PostForm("runs"))
	if err != nil || runs < 0 {
		h.renderMatchError(c, apperrors.NewValidationError("runs", "runs must be a non-negative number"))
		return
	}

	req := &service.RecordBallRequest{
		BatsmanID: batsmanID,
		BowlerID:  bowlerID,
		Runs:      runs,
		IsWicket:  c.PostForm("is_wicket") != "",
	}
	if _, err := h.scoringService.RecordBall(caller, id, req); err != nil {
		h.renderMatchError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/match/"+id.String())
}

func (h *WebHandler) matchIDFromPath(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.HTML(http.StatusNotFound, "error.html", gin.H{"error": "match not found"})
		return uuid.Nil, false
	}
	return id, true
}

func (h *WebHandler) renderMatchError(c *gin.Context, err error) {
	switch {
	case apperrors.IsNotFound(err):
		c.HTML(http.StatusNotFound, "error.html", gin.H{"error": err.Error()})
	case apperrors.IsValidation(err):
		c.HTML(http.StatusBadRequest, "error.html", gin.H{"error": err.Error()})
	default:
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"error": err.Error()})
	}
}
