package auth

import (
	"testing"

	"github.com/oalia/scholarsite/internal/app/models"
	"github.com/oalia/scholarsite/internal/session"
)

func snapshot(signedIn, privileged, loading bool) session.Snapshot {
	snap := session.Snapshot{IsPrivileged: privileged, IsLoading: loading}
	if signedIn {
		role := models.RoleUser
		if privileged {
			role = models.RoleAdmin
		}
		snap.Session = &session.Session{UserID: 1, Email: "someone@example.edu", Role: role}
	}
	return snap
}

func TestDecideMatrix(t *testing.T) {
	tests := []struct {
		name        string
		signedIn    bool
		privileged  bool
		requirement Requirement
		want        Decision
	}{
		{"public anonymous", false, false, RequirePublic,
			Decision{Outcome: Allow}},
		{"public signed in", true, false, RequirePublic,
			Decision{Outcome: Allow}},
		{"authenticated anonymous", false, false, RequireAuthenticated,
			Decision{Outcome: Redirect, RedirectTo: LoginPath, RememberOrigin: true}},
		{"authenticated signed in", true, false, RequireAuthenticated,
			Decision{Outcome: Allow}},
		{"privileged anonymous", false, false, RequirePrivileged,
			Decision{Outcome: Redirect, RedirectTo: LoginPath, RememberOrigin: true}},
		{"privileged plain user", true, false, RequirePrivileged,
			Decision{Outcome: Redirect, RedirectTo: HomePath}},
		{"privileged admin", true, true, RequirePrivileged,
			Decision{Outcome: Allow}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decide(snapshot(tt.signedIn, tt.privileged, false), tt.requirement)
			if got != tt.want {
				t.Errorf("Decide() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDecidePendingWhileLoading(t *testing.T) {
	for _, req := range []Requirement{RequirePublic, RequireAuthenticated, RequirePrivileged} {
		got := Decide(snapshot(false, false, true), req)
		if got.Outcome != Pending {
			t.Errorf("Decide(loading, %s) = %+v, want Pending", req, got)
		}
	}
}

func TestAuthenticatedUserNeverSeesLoginOnPrivilegedRoute(t *testing.T) {
	got := Decide(snapshot(true, false, false), RequirePrivileged)
	if got.RedirectTo == LoginPath {
		t.Error("signed-in user redirected to login prompt")
	}
	if got.RedirectTo != HomePath {
		t.Errorf("signed-in non-privileged user redirected to %q, want %q", got.RedirectTo, HomePath)
	}
}
