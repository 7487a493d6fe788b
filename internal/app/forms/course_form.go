package forms

import (
	"context"
	"fmt"

	"github.com/oalia/scholarsite/internal/app/models"
	"github.com/oalia/scholarsite/internal/app/repositories"
	"github.com/oalia/scholarsite/internal/app/services"
)

// CourseForm is the draft behind the course editor. Highlights are a single
// newline-separated textarea value while editing and are split into the
// stored list on submit.
type CourseForm struct {
	id int64

	Title         string
	Code          string
	Description   string
	Semester      string
	Year          string
	Status        string
	CoverImageURL string
	Highlights    string
}

// NewCourseForm returns a blank create form with defaults.
func NewCourseForm() *CourseForm {
	return &CourseForm{
		Semester: string(models.SemesterFall),
		Status:   string(models.CourseActive),
	}
}

// Load reshapes an existing course into the form.
func (f *CourseForm) Load(c *models.Course) {
	f.id = c.ID
	f.Title = c.Title
	f.Code = c.Code
	f.Description = c.Description
	f.Semester = string(c.Semester)
	f.Year = c.Year
	f.Status = string(c.Status)
	f.CoverImageURL = stringOrEmpty(c.CoverImageURL)
	f.Highlights = repositories.JoinHighlights(c.Highlights)
}

// Editing reports whether submitting will update an existing record.
func (f *CourseForm) Editing() bool {
	return f.id != 0
}

// SetCoverImageURL records the URL returned by a completed image upload.
func (f *CourseForm) SetCoverImageURL(url string) {
	f.CoverImageURL = url
}

// Reset clears the draft back to a blank create form.
func (f *CourseForm) Reset() {
	*f = CourseForm{
		Semester: string(models.SemesterFall),
		Status:   string(models.CourseActive),
	}
}

// Validate checks the draft's required fields and enum values.
func (f *CourseForm) Validate() error {
	if err := requireField("title", f.Title); err != nil {
		return err
	}
	if err := requireField("code", f.Code); err != nil {
		return err
	}
	if err := requireField("year", f.Year); err != nil {
		return err
	}
	if !models.Semester(f.Semester).IsValid() {
		return fmt.Errorf("%w: unknown semester %q", ErrFormInvalid, f.Semester)
	}
	if !models.CourseStatus(f.Status).IsValid() {
		return fmt.Errorf("%w: unknown status %q", ErrFormInvalid, f.Status)
	}
	return nil
}

// Submit validates the draft and persists it.
func (f *CourseForm) Submit(ctx context.Context, svc *services.TeachingService) error {
	if err := f.Validate(); err != nil {
		return err
	}

	c := &models.Course{
		ID:            f.id,
		Title:         f.Title,
		Code:          f.Code,
		Description:   f.Description,
		Semester:      models.Semester(f.Semester),
		Year:          f.Year,
		Status:        models.CourseStatus(f.Status),
		CoverImageURL: optionalString(f.CoverImageURL),
		Highlights:    repositories.SplitHighlights(f.Highlights),
	}

	if f.Editing() {
		if err := svc.UpdateCourse(ctx, c); err != nil {
			return err
		}
	} else {
		if _, err := svc.CreateCourse(ctx, c); err != nil {
			return err
		}
	}
	f.Reset()
	return nil
}
