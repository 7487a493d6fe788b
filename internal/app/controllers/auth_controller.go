package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oalia/scholarsite/internal/app/models"
	"github.com/oalia/scholarsite/internal/app/models/dto"
	"github.com/oalia/scholarsite/internal/app/services"
	"github.com/oalia/scholarsite/internal/middleware"
	"github.com/oalia/scholarsite/internal/session"
)

// AuthController handles authentication endpoints
type AuthController struct {
	authService *services.AuthService
	sessions    *session.Store
	adminEmail  string
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService, sessions *session.Store, adminEmail string) *AuthController {
	return &AuthController{
		authService: authService,
		sessions:    sessions,
		adminEmail:  adminEmail,
	}
}

func toAuthResponse(user *models.User, pair *services.TokenPair) dto.AuthResponse {
	return dto.AuthResponse{
		Token: dto.TokenResponse{
			AccessToken:           pair.AccessToken,
			TokenType:             "Bearer",
			ExpiresIn:             pair.ExpiresIn,
			RefreshToken:          pair.RefreshToken,
			RefreshTokenExpiresIn: pair.RefreshTokenExpiresIn,
		},
		User: dto.ToUserResponse(user),
	}
}

// publishSession mirrors a successful login or refresh into the process
// session store so subscribers observe the change.
func (c *AuthController) publishSession(user *models.User, pair *services.TokenPair) {
	c.sessions.Set(&session.Session{
		UserID:    user.ID,
		Email:     user.Email,
		Role:      user.Role,
		ExpiresAt: time.Now().Add(time.Duration(pair.ExpiresIn) * time.Second),
	})
}

// Login handles user login
// @Summary Log in
// @Description Verifies credentials and returns a token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.APIResponse{data=dto.AuthResponse} "Logged in"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 403 {object} dto.ErrorResponse "Account disabled"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid login data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	user, pair, err := c.authService.Login(ctx, req.Email, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.publishSession(user, pair)
	ctx.JSON(http.StatusOK, dto.APIResponse{Success: true, Data: toAuthResponse(user, pair), Timestamp: time.Now()})
}

// RefreshToken handles token refresh
// @Summary Refresh tokens
// @Description Exchanges a refresh token for a fresh pair; the used token is revoked
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} dto.APIResponse{data=dto.AuthResponse} "Tokens refreshed"
// @Failure 401 {object} dto.ErrorResponse "Invalid, expired or revoked token"
// @Router /auth/refresh [post]
func (c *AuthController) RefreshToken(ctx *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid refresh data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	user, pair, err := c.authService.RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.publishSession(user, pair)
	ctx.JSON(http.StatusOK, dto.APIResponse{Success: true, Data: toAuthResponse(user, pair), Timestamp: time.Now()})
}

// Logout handles sign-out
// @Summary Log out
// @Description Revokes the refresh token
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.LogoutRequest true "Refresh token to revoke"
// @Success 200 {object} dto.APIResponse "Logged out"
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	var req dto.LogoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid logout data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.authService.Logout(ctx, req.RefreshToken); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	c.sessions.Set(nil)
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Logged out"))
}

// LogoutAll revokes every refresh token the caller holds
// @Summary Log out of all devices
// @Description Revokes all of the caller's refresh tokens
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse "Logged out everywhere"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Router /auth/logout-all [post]
func (c *AuthController) LogoutAll(ctx *gin.Context) {
	userID := ctx.GetInt64(middleware.ContextUserID)
	if err := c.authService.LogoutAll(ctx, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	c.sessions.Set(nil)
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Logged out everywhere"))
}

// Me returns the caller's session view
// @Summary Current session
// @Description Returns the authenticated user and whether they hold dashboard access
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.SessionResponse} "Session retrieved"
// @Failure 401 {object} dto.ErrorResponse "Not authenticated"
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	userID := ctx.GetInt64(middleware.ContextUserID)
	user, err := c.authService.GetUser(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	sess := &session.Session{UserID: user.ID, Email: user.Email, Role: user.Role}
	resp := dto.SessionResponse{
		User:         dto.ToUserResponse(user),
		IsPrivileged: session.IsPrivileged(sess, c.adminEmail),
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Success: true, Data: resp, Timestamp: time.Now()})
}
