package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/oalia/scholarsite/internal/app/models/dto"
	"github.com/oalia/scholarsite/internal/pkg/apperrors"
	"github.com/oalia/scholarsite/internal/pkg/auth"
)

func handleError(t *testing.T, err error) (*httptest.ResponseRecorder, dto.ErrorResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	HandleAPIError(c, err)
	return w, decodeErrorResponse(t, w.Body.Bytes())
}

func TestHandleAPIErrorStorageUploadFailure(t *testing.T) {
	w, resp := handleError(t, apperrors.NewCustomError(apperrors.ErrStorageUploadFailed, "connection refused"))

	if w.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadGateway)
	}
	if resp.Error.Code != dto.ErrorCodeStorageError {
		t.Errorf("error code = %s, want %s", resp.Error.Code, dto.ErrorCodeStorageError)
	}
}

func TestHandleAPIErrorExpiredAccessToken(t *testing.T) {
	w, resp := handleError(t, auth.ErrExpiredToken)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
	if resp.Error.Code != dto.ErrorCodeExpiredToken {
		t.Errorf("error code = %s, want %s", resp.Error.Code, dto.ErrorCodeExpiredToken)
	}
}

func TestHandleAPIErrorUnknownFallsBackTo500(t *testing.T) {
	w, resp := handleError(t, errors.New("boom"))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
	if resp.Error.Code != dto.ErrorCodeInternalServer {
		t.Errorf("error code = %s, want %s", resp.Error.Code, dto.ErrorCodeInternalServer)
	}
}
