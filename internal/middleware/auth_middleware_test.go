package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oalia/scholarsite/internal/app/models"
	"github.com/oalia/scholarsite/internal/app/models/dto"
	"github.com/oalia/scholarsite/internal/pkg/auth"
)

func newTestRouter(m *AuthMiddleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", m.JWTAuth(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func decodeErrorResponse(t *testing.T, body []byte) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("decoding error response: %v", err)
	}
	if resp.Error == nil {
		t.Fatal("expected error detail in response")
	}
	return resp
}

func TestJWTAuthExpiredTokenReportsExpiredCode(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  -time.Minute, // issued already expired
		RefreshTokenExp: time.Hour,
		TokenIssuer:     "test",
	})
	accessToken, _, _, _, err := jwtService.GenerateTokenPair(&models.User{
		ID:    1,
		Email: "prof@example.edu",
		Role:  models.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("generating token: %v", err)
	}

	router := newTestRouter(NewAuthMiddleware(jwtService, "prof@example.edu"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+accessToken)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
	resp := decodeErrorResponse(t, w.Body.Bytes())
	if resp.Error.Code != dto.ErrorCodeExpiredToken {
		t.Errorf("error code = %s, want %s", resp.Error.Code, dto.ErrorCodeExpiredToken)
	}
}

func TestJWTAuthGarbageTokenReportsInvalidCode(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: time.Hour,
		TokenIssuer:     "test",
	})
	router := newTestRouter(NewAuthMiddleware(jwtService, "prof@example.edu"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
	resp := decodeErrorResponse(t, w.Body.Bytes())
	if resp.Error.Code != dto.ErrorCodeInvalidToken {
		t.Errorf("error code = %s, want %s", resp.Error.Code, dto.ErrorCodeInvalidToken)
	}
}
