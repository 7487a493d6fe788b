package forms

import (
	"context"
	"errors"
	"testing"

	"github.com/oalia/scholarsite/internal/app/models"
	"github.com/oalia/scholarsite/internal/pkg/apperrors"
)

func strptr(s string) *string { return &s }

func TestPublicationFormLoadReshapesAuthors(t *testing.T) {
	f := NewPublicationForm()
	f.Load(&models.Publication{
		ID:      7,
		Title:   "Adaptive Query Scheduling at Scale",
		Authors: []string{"A. Oalia", "B. Chen", "C. Demir"},
		Venue:   "SIGMOD",
		Date:    "2025",
		DOI:     strptr("10.1145/1234567.1234568"),
	})

	if !f.Editing() {
		t.Fatal("loaded form should be in update mode")
	}
	if f.Authors != "A. Oalia, B. Chen, C. Demir" {
		t.Fatalf("authors not joined for editing: %q", f.Authors)
	}
	if f.DOI != "10.1145/1234567.1234568" {
		t.Fatalf("optional DOI not loaded: %q", f.DOI)
	}

	f.Reset()
	if f.Editing() || f.Title != "" || f.Authors != "" {
		t.Fatal("reset should return the form to a blank create draft")
	}
}

func TestPublicationFormValidateRequiredFields(t *testing.T) {
	f := NewPublicationForm()
	f.Title = "Title only"

	err := f.Validate()
	if !errors.Is(err, ErrFormInvalid) {
		t.Fatalf("expected validation failure, got %v", err)
	}

	f.Authors = "A. Oalia"
	f.Venue = "SIGMOD"
	f.Date = "2025"
	if err := f.Validate(); err != nil {
		t.Fatalf("complete draft should validate: %v", err)
	}
}

func TestPublicationFormSubmitInvalidDraftFailsBeforeService(t *testing.T) {
	f := NewPublicationForm()
	// Submitting an empty draft must fail validation before the service is
	// ever touched; a nil service would panic if it were reached.
	if err := f.Submit(context.Background(), nil); !errors.Is(err, ErrFormInvalid) {
		t.Fatalf("expected validation failure, got %v", err)
	}
}

func TestCourseFormLoadReshapesHighlights(t *testing.T) {
	f := NewCourseForm()
	f.Load(&models.Course{
		ID:         3,
		Title:      "Advanced Database Systems",
		Code:       "CS450",
		Semester:   models.SemesterSpring,
		Year:       "2026",
		Status:     models.CourseArchived,
		Highlights: []string{"Query optimization", "Transaction internals"},
	})

	if f.Highlights != "Query optimization\nTransaction internals" {
		t.Fatalf("highlights not joined for editing: %q", f.Highlights)
	}
	if f.Semester != "Spring" || f.Status != "archived" {
		t.Fatalf("enum fields not loaded: %q %q", f.Semester, f.Status)
	}
}

func TestCourseFormRejectsUnknownEnums(t *testing.T) {
	f := NewCourseForm()
	f.Title = "Advanced Database Systems"
	f.Code = "CS450"
	f.Year = "2026"
	f.Semester = "Autumn"

	if err := f.Validate(); !errors.Is(err, ErrFormInvalid) {
		t.Fatalf("expected validation failure for unknown semester, got %v", err)
	}

	f.Semester = "Fall"
	f.Status = "retired"
	if err := f.Validate(); !errors.Is(err, ErrFormInvalid) {
		t.Fatalf("expected validation failure for unknown status, got %v", err)
	}
}

func TestResearchFormDefaultsToActive(t *testing.T) {
	f := NewResearchForm()
	if f.Status != "active" {
		t.Fatalf("new research draft should default to active, got %q", f.Status)
	}
}

func TestDeleteGateBlocksUnconfirmedDelete(t *testing.T) {
	var gate DeleteGate
	calls := 0
	del := func(ctx context.Context) error {
		calls++
		return nil
	}

	if err := gate.Run(context.Background(), del); !errors.Is(err, apperrors.ErrDeleteNotConfirmed) {
		t.Fatalf("unconfirmed delete should be refused, got %v", err)
	}
	if calls != 0 {
		t.Fatal("unconfirmed delete reached the action")
	}

	gate.Confirm()
	if err := gate.Run(context.Background(), del); err != nil {
		t.Fatalf("confirmed delete failed: %v", err)
	}
	if calls != 1 {
		t.Fatalf("confirmed delete should run once, ran %d times", calls)
	}

	// Confirmation is consumed; the next delete needs confirming again.
	if err := gate.Run(context.Background(), del); !errors.Is(err, apperrors.ErrDeleteNotConfirmed) {
		t.Fatalf("confirmation should not carry over, got %v", err)
	}
}

func TestDeleteGateCancelWithdrawsConfirmation(t *testing.T) {
	var gate DeleteGate
	gate.Confirm()
	gate.Cancel()

	err := gate.Run(context.Background(), func(ctx context.Context) error {
		t.Fatal("cancelled delete reached the action")
		return nil
	})
	if !errors.Is(err, apperrors.ErrDeleteNotConfirmed) {
		t.Fatalf("expected refusal after cancel, got %v", err)
	}
}
