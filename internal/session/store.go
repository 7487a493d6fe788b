// Package session holds the current authenticated session for a client
// context, derives the privileged flag from it, and notifies subscribers on
// every change. It is constructed once per process and handed to consumers by
// reference so it can be replaced in tests.
package session

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/oalia/scholarsite/internal/app/models"
	"github.com/oalia/scholarsite/internal/pkg/logger"
)

// Session is the transient copy of an authenticated identity.
type Session struct {
	UserID    int64
	Email     string
	Role      models.Role
	ExpiresAt time.Time
}

// Snapshot is what subscribers and the route guard consume.
type Snapshot struct {
	Session      *Session
	IsPrivileged bool
	IsLoading    bool
}

// Gateway is the slice of the auth provider the store depends on: the current
// session, if any, and a way to terminate it.
type Gateway interface {
	CurrentSession(ctx context.Context) (*Session, error)
	SignOut(ctx context.Context, s *Session) error
}

// Listener receives every published snapshot.
type Listener func(Snapshot)

// Store tracks the active session and its derived authorization flag.
type Store struct {
	mu         sync.RWMutex
	gateway    Gateway
	adminEmail string
	current    *Session
	loading    bool
	listeners  []Listener
}

// NewStore creates a Store that treats adminEmail (case-insensitive) as
// privileged in addition to accounts carrying the admin role. The store is in
// the loading state until Init resolves the first snapshot.
func NewStore(gateway Gateway, adminEmail string) *Store {
	return &Store{
		gateway:    gateway,
		adminEmail: strings.ToLower(adminEmail),
		loading:    true,
	}
}

// Init requests the current session from the gateway and publishes the first
// snapshot. Gateway failure resolves to a signed-out snapshot; consumers must
// not stay stuck in loading because the backend hiccuped once.
func (s *Store) Init(ctx context.Context) {
	current, err := s.gateway.CurrentSession(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to resolve initial session")
		current = nil
	}

	s.mu.Lock()
	s.current = current
	s.loading = false
	s.mu.Unlock()
	s.notify()
}

// Snapshot returns the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() Snapshot {
	return Snapshot{
		Session:      s.current,
		IsPrivileged: s.isPrivileged(s.current),
		IsLoading:    s.loading,
	}
}

// isPrivileged is recomputed from the session on every read; it is never
// cached across a sign-out.
func (s *Store) isPrivileged(sess *Session) bool {
	return IsPrivileged(sess, s.adminEmail)
}

// IsPrivileged reports whether a session grants dashboard access: the admin
// role, or the configured admin email compared case-insensitively.
func IsPrivileged(sess *Session, adminEmail string) bool {
	if sess == nil {
		return false
	}
	if sess.Role == models.RoleAdmin {
		return true
	}
	return adminEmail != "" && strings.EqualFold(sess.Email, adminEmail)
}

// Subscribe registers a listener for session changes. The listener is invoked
// immediately with the current snapshot so late subscribers don't miss state.
func (s *Store) Subscribe(l Listener) {
	s.mu.Lock()
	s.listeners = append(s.listeners, l)
	snap := s.snapshotLocked()
	s.mu.Unlock()
	l(snap)
}

// Set publishes a new session (sign-in or token refresh).
func (s *Store) Set(sess *Session) {
	s.mu.Lock()
	s.current = sess
	s.loading = false
	s.mu.Unlock()
	s.notify()
}

// SignOut asks the gateway to terminate the session. On failure local state is
// left unchanged: the UI must not claim "signed out" while the backend
// disagrees. The error is returned for a non-fatal notification.
func (s *Store) SignOut(ctx context.Context) error {
	s.mu.RLock()
	current := s.current
	s.mu.RUnlock()
	if current == nil {
		return nil
	}

	if err := s.gateway.SignOut(ctx, current); err != nil {
		logger.Warn().Err(err).Msg("Sign-out request failed, keeping local session")
		return err
	}

	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
	s.notify()
	return nil
}

func (s *Store) notify() {
	s.mu.RLock()
	listeners := append([]Listener(nil), s.listeners...)
	snap := s.snapshotLocked()
	s.mu.RUnlock()
	for _, l := range listeners {
		l(snap)
	}
}
