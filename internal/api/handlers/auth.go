package handlers

import (
	"net/http"

	apperrors "cricket-scoring/internal/errors"
	"cricket-scoring/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles token issuance and registration for the API surface
type AuthHandler struct {
	authService service.AuthServiceInterface
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService service.AuthServiceInterface) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// CredentialsRequest carries a username/password pair
type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse is returned on successful token issuance
type TokenResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// GetToken handles POST /api/get-token/
// @Summary Obtain an API token
// @Description Exchange a username/password pair for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body CredentialsRequest true "User credentials"
// @Success 200 {object} TokenResponse "Token issued"
// @Failure 400 {object} ErrorResponse "Username and password required"
// @Failure 401 {object} ErrorResponse "Invalid credentials"
// @Router /api/get-token/ [post]
func (h *AuthHandler) GetToken(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password required."})
		return
	}

	user, err := h.authService.Authenticate(req.Username, req.Password)
	if err != nil {
		if apperrors.IsAuthentication(err) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	token, err := h.authService.IssueToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, TokenResponse{Token: token, Username: user.Username})
}

// Register handles POST /api/register/
// @Summary Register a new user
// @Description Create a scorer account with a username and password
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body CredentialsRequest true "New user credentials"
// @Success 201 {object} map[string]interface{} "User created"
// @Failure 400 {object} ErrorResponse "Missing or already-taken username"
// @Router /api/register/ [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.authService.Register(req.Username, req.Password)
	if err != nil {
		if apperrors.IsValidation(err) || apperrors.IsAlreadyExists(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": user.ID, "username": user.Username})
}
