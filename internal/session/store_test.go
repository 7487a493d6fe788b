package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/oalia/scholarsite/internal/app/models"
)

type fakeGateway struct {
	current    *Session
	currentErr error
	signOutErr error
	signOuts   int
}

func (g *fakeGateway) CurrentSession(ctx context.Context) (*Session, error) {
	return g.current, g.currentErr
}

func (g *fakeGateway) SignOut(ctx context.Context, s *Session) error {
	g.signOuts++
	return g.signOutErr
}

func adminSession() *Session {
	return &Session{UserID: 1, Email: "owner@example.edu", Role: models.RoleAdmin, ExpiresAt: time.Now().Add(time.Hour)}
}

func TestLoadingUntilFirstSnapshot(t *testing.T) {
	gw := &fakeGateway{}
	store := NewStore(gw, "owner@example.edu")

	if snap := store.Snapshot(); !snap.IsLoading {
		t.Fatal("store not loading before Init")
	}

	store.Init(context.Background())
	snap := store.Snapshot()
	if snap.IsLoading {
		t.Error("store still loading after Init")
	}
	if snap.Session != nil {
		t.Error("unexpected session for signed-out gateway")
	}
}

func TestPrivilegedRecomputedOnChange(t *testing.T) {
	gw := &fakeGateway{}
	store := NewStore(gw, "owner@example.edu")
	store.Init(context.Background())

	var snaps []Snapshot
	store.Subscribe(func(s Snapshot) { snaps = append(snaps, s) })

	// Sign in with the configured admin email but a plain role.
	store.Set(&Session{UserID: 2, Email: "Owner@Example.edu", Role: models.RoleUser})
	if snap := store.Snapshot(); !snap.IsPrivileged {
		t.Error("admin email not recognized as privileged (case-insensitive)")
	}

	// Sign in with the admin role but a different email.
	store.Set(adminSession())
	if snap := store.Snapshot(); !snap.IsPrivileged {
		t.Error("admin role not recognized as privileged")
	}

	// Plain user.
	store.Set(&Session{UserID: 3, Email: "student@example.edu", Role: models.RoleUser})
	if snap := store.Snapshot(); snap.IsPrivileged {
		t.Error("plain user flagged privileged")
	}

	// Subscriber got the immediate snapshot plus one per Set.
	if len(snaps) != 4 {
		t.Errorf("subscriber saw %d snapshots, want 4", len(snaps))
	}
}

func TestSignOutFailureKeepsSession(t *testing.T) {
	gw := &fakeGateway{signOutErr: errors.New("backend unavailable")}
	store := NewStore(gw, "")
	store.Init(context.Background())
	store.Set(adminSession())

	if err := store.SignOut(context.Background()); err == nil {
		t.Fatal("expected sign-out error")
	}
	if snap := store.Snapshot(); snap.Session == nil {
		t.Error("session cleared despite failed sign-out")
	}

	// A successful sign-out clears it and the privileged flag with it.
	gw.signOutErr = nil
	if err := store.SignOut(context.Background()); err != nil {
		t.Fatalf("sign-out: %v", err)
	}
	snap := store.Snapshot()
	if snap.Session != nil || snap.IsPrivileged {
		t.Error("session or privileged flag survived sign-out")
	}
	if gw.signOuts != 2 {
		t.Errorf("gateway sign-out called %d times, want 2", gw.signOuts)
	}
}

func TestSignOutWithoutSessionIsNoop(t *testing.T) {
	gw := &fakeGateway{}
	store := NewStore(gw, "")
	store.Init(context.Background())

	if err := store.SignOut(context.Background()); err != nil {
		t.Fatalf("sign-out without session: %v", err)
	}
	if gw.signOuts != 0 {
		t.Error("gateway called for a no-op sign-out")
	}
}
