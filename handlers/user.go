package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"medibook/config"
	"medibook/services/user"
)

// UserHandler serves registration and session endpoints.
type UserHandler struct {
	Users user.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(us user.UserService) *UserHandler {
	return &UserHandler{Users: us}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// tokenCookieName is where the session token is stored client-side.
const tokenCookieName = "token"

// RegisterUserHandler creates a new user account.
func (uh *UserHandler) RegisterUserHandler(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid request: " + err.Error()})
		return
	}

	if err := uh.Users.Register(c.Request.Context(), req.Name, req.Email, req.Password); err != nil {
		if errors.Is(err, user.ErrUserExists) {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "User already exists"})
			return
		}
		zap.L().Error("Failed to register user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server Error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"msg": "User registered successfully"})
}

// AuthenticateUserHandler verifies credentials and opens a session. The
// token is set as an httpOnly cookie and echoed in the body.
func (uh *UserHandler) AuthenticateUserHandler(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid request: " + err.Error()})
		return
	}

	resp, err := uh.Users.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid credentials"})
			return
		}
		zap.L().Error("Failed to authenticate user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server Error"})
		return
	}

	maxAge := config.AppConfig.TokenTTLMinutes * 60
	c.SetCookie(tokenCookieName, resp.Token, maxAge, "/", "", config.IsProduction(), true)
	c.JSON(http.StatusOK, gin.H{
		"msg":   "Login successful",
		"token": resp.Token,
		"user":  resp.User,
	})
}

// LogoutUserHandler revokes the current session and clears the cookie.
func (uh *UserHandler) LogoutUserHandler(c *gin.Context) {
	token, err := c.Cookie(tokenCookieName)
	if err != nil || token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "No token, authorization denied"})
		return
	}

	if err := uh.Users.Logout(c.Request.Context(), token); err != nil {
		zap.L().Error("Failed to revoke session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server Error"})
		return
	}

	c.SetCookie(tokenCookieName, "", -1, "/", "", config.IsProduction(), true)
	c.JSON(http.StatusOK, gin.H{"msg": "Logged out"})
}

// GetProfileHandler returns the authenticated user's profile.
func (uh *UserHandler) GetProfileHandler(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "Unauthorized"})
		return
	}

	profile, err := uh.Users.GetProfile(c.Request.Context(), userID.(string))
	if err != nil {
		zap.L().Error("Failed to get user profile", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server Error"})
		return
	}

	c.JSON(http.StatusOK, profile)
}
