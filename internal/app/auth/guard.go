// Package auth contains the route guard: the pure decision logic mapping the
// current session state and a route's declared requirement to allow/redirect.
package auth

import "github.com/oalia/scholarsite/internal/session"

// Requirement is a route's declared access level.
type Requirement string

const (
	RequirePublic        Requirement = "public"
	RequireAuthenticated Requirement = "authenticated"
	RequirePrivileged    Requirement = "privileged"
)

// Well-known redirect targets.
const (
	LoginPath = "/login"
	HomePath  = "/"
)

// Outcome classifies a guard decision.
type Outcome int

const (
	// Pending means the session is still loading; render a neutral state,
	// decide nothing yet.
	Pending Outcome = iota
	Allow
	Redirect
)

// Decision is the result of evaluating a route requirement.
type Decision struct {
	Outcome        Outcome
	RedirectTo     string
	RememberOrigin bool
}

// Decide evaluates a route requirement against the session snapshot.
// An authenticated but non-privileged user hitting a privileged route is sent
// home, never to the login prompt: they are already signed in.
func Decide(snap session.Snapshot, requirement Requirement) Decision {
	if snap.IsLoading {
		return Decision{Outcome: Pending}
	}

	switch requirement {
	case RequirePublic:
		return Decision{Outcome: Allow}

	case RequireAuthenticated:
		if snap.Session == nil {
			return Decision{Outcome: Redirect, RedirectTo: LoginPath, RememberOrigin: true}
		}
		return Decision{Outcome: Allow}

	case RequirePrivileged:
		if snap.Session == nil {
			return Decision{Outcome: Redirect, RedirectTo: LoginPath, RememberOrigin: true}
		}
		if !snap.IsPrivileged {
			return Decision{Outcome: Redirect, RedirectTo: HomePath}
		}
		return Decision{Outcome: Allow}
	}

	// Unknown requirements fail closed.
	return Decision{Outcome: Redirect, RedirectTo: HomePath}
}
