package forms

import (
	"context"

	"github.com/oalia/scholarsite/internal/pkg/apperrors"
)

// DeleteGate guards a destructive action behind an explicit confirmation
// step. Run refuses to call the action until Confirm has been called, and a
// completed or cancelled gate must be confirmed again before the next run.
type DeleteGate struct {
	confirmed bool
}

// Confirm records the user's confirmation.
func (g *DeleteGate) Confirm() {
	g.confirmed = true
}

// Cancel withdraws a pending confirmation.
func (g *DeleteGate) Cancel() {
	g.confirmed = false
}

// Confirmed reports whether the gate would currently let a delete through.
func (g *DeleteGate) Confirmed() bool {
	return g.confirmed
}

// Run executes the delete if and only if the gate is confirmed, consuming
// the confirmation either way the action ends.
func (g *DeleteGate) Run(ctx context.Context, delete func(ctx context.Context) error) error {
	if !g.confirmed {
		return apperrors.ErrDeleteNotConfirmed
	}
	g.confirmed = false
	return delete(ctx)
}
