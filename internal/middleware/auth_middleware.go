package middleware

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	appauth "github.com/oalia/scholarsite/internal/app/auth"
	"github.com/oalia/scholarsite/internal/app/models"
	"github.com/oalia/scholarsite/internal/app/models/dto"
	"github.com/oalia/scholarsite/internal/pkg/auth"
	"github.com/oalia/scholarsite/internal/session"
)

// Context keys set by JWTAuth.
const (
	ContextUserID = "userID"
	ContextEmail  = "email"
	ContextRole   = "role"
)

// AuthMiddleware enforces route access requirements.
type AuthMiddleware struct {
	jwtService *auth.JWTService
	adminEmail string
}

// NewAuthMiddleware creates a new AuthMiddleware. adminEmail is additionally
// treated as privileged regardless of role.
func NewAuthMiddleware(jwtService *auth.JWTService, adminEmail string) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		adminEmail: adminEmail,
	}
}

// snapshot builds the session view for the current request. A request-scoped
// snapshot is never loading: the token either validates or it doesn't.
func (m *AuthMiddleware) snapshot(c *gin.Context) session.Snapshot {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return session.Snapshot{}
	}

	tokenString, err := auth.ExtractBearerToken(authHeader)
	if err != nil {
		return session.Snapshot{}
	}
	claims, err := m.jwtService.ValidateAndExtractClaims(tokenString)
	if err != nil {
		return session.Snapshot{}
	}

	sess := &session.Session{
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   models.Role(claims.Role),
	}
	return session.Snapshot{
		Session:      sess,
		IsPrivileged: session.IsPrivileged(sess, m.adminEmail),
	}
}

// JWTAuth validates the bearer token and attaches the caller's identity to
// the request context. Requests without a valid token are rejected.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required").
				WithDetails("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required").
				WithDetails("Invalid token format")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		claims, err := m.jwtService.ValidateAndExtractClaims(tokenString)
		if err != nil {
			errorCode := dto.ErrorCodeInvalidToken
			details := "Invalid token"
			if errors.Is(err, auth.ErrExpiredToken) {
				errorCode = dto.ErrorCodeExpiredToken
				details = "Token has expired"
			}
			errorDetail := dto.NewErrorDetail(errorCode, "Authentication failed").WithDetails(details)
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}

// Guard enforces a route requirement the way the dashboard's route guard
// decides it. API clients get JSON errors; browser navigation gets redirects,
// with the origin preserved for a post-login return when the guard says so.
func (m *AuthMiddleware) Guard(requirement appauth.Requirement) gin.HandlerFunc {
	return func(c *gin.Context) {
		decision := appauth.Decide(m.snapshot(c), requirement)

		switch decision.Outcome {
		case appauth.Allow:
			c.Next()
			return
		case appauth.Pending:
			// Request-scoped snapshots never load asynchronously; treat an
			// unexpected pending as unavailable rather than letting it through.
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, dto.NewErrorResponse(
				dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Session state unavailable")))
			return
		}

		if wantsJSON(c) {
			status := http.StatusUnauthorized
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			if decision.RedirectTo == appauth.HomePath {
				status = http.StatusForbidden
				errorDetail = dto.NewErrorDetail(dto.ErrorCodeForbidden, "Admin access required")
			}
			c.AbortWithStatusJSON(status, dto.NewErrorResponse(errorDetail))
			return
		}

		target := decision.RedirectTo
		if decision.RememberOrigin {
			target += "?redirect=" + url.QueryEscape(c.Request.URL.RequestURI())
		}
		c.Redirect(http.StatusFound, target)
		c.Abort()
	}
}

// wantsJSON distinguishes API calls from browser navigation.
func wantsJSON(c *gin.Context) bool {
	if strings.HasPrefix(c.Request.URL.Path, "/api/") {
		return true
	}
	return strings.Contains(c.GetHeader("Accept"), "application/json")
}
