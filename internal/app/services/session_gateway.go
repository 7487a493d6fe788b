package services

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/oalia/scholarsite/internal/pkg/logger"
	"github.com/oalia/scholarsite/internal/session"
)

// RefreshTokenStore persists the refresh token between process runs so a
// session can be resumed without re-entering credentials.
type RefreshTokenStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// FileTokenStore keeps the refresh token in a mode-0600 file.
type FileTokenStore struct {
	Path string
}

// Load reads the persisted token. A missing file means no session.
func (f *FileTokenStore) Load() (string, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// Save writes the token, replacing any previous one.
func (f *FileTokenStore) Save(token string) error {
	return os.WriteFile(f.Path, []byte(token), 0o600)
}

// Clear removes the persisted token.
func (f *FileTokenStore) Clear() error {
	err := os.Remove(f.Path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// SessionGateway adapts the auth service to the session store: it resumes a
// session from the persisted refresh token and revokes it on sign-out.
type SessionGateway struct {
	auth   *AuthService
	tokens RefreshTokenStore
}

// NewSessionGateway creates the gateway backing the session store.
func NewSessionGateway(auth *AuthService, tokens RefreshTokenStore) *SessionGateway {
	return &SessionGateway{auth: auth, tokens: tokens}
}

// CurrentSession resumes the persisted session, if any. The refresh token is
// rotated as a side effect, and an unusable token is discarded so the next
// start does not retry it.
func (g *SessionGateway) CurrentSession(ctx context.Context) (*session.Session, error) {
	token, err := g.tokens.Load()
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, nil
	}

	user, pair, err := g.auth.RefreshToken(ctx, token)
	if err != nil {
		if clearErr := g.tokens.Clear(); clearErr != nil {
			logger.Warn().Err(clearErr).Msg("Failed to discard unusable refresh token")
		}
		return nil, err
	}
	if err := g.tokens.Save(pair.RefreshToken); err != nil {
		logger.Warn().Err(err).Msg("Failed to persist rotated refresh token")
	}

	return &session.Session{
		UserID:    user.ID,
		Email:     user.Email,
		Role:      user.Role,
		ExpiresAt: time.Now().Add(time.Duration(pair.ExpiresIn) * time.Second),
	}, nil
}

// SignOut revokes the persisted refresh token and clears it. A revocation
// failure is returned without clearing, leaving the session intact.
func (g *SessionGateway) SignOut(ctx context.Context, s *session.Session) error {
	token, err := g.tokens.Load()
	if err != nil {
		return err
	}
	if token == "" {
		return errors.New("no persisted session to sign out")
	}
	if err := g.auth.Logout(ctx, token); err != nil {
		return err
	}
	return g.tokens.Clear()
}
