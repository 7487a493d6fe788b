package forms

import (
	"context"
	"fmt"

	"github.com/oalia/scholarsite/internal/app/models"
	"github.com/oalia/scholarsite/internal/app/services"
)

// ResearchForm is the draft behind the research project editor.
type ResearchForm struct {
	id int64

	Title         string
	Description   string
	Category      string
	Status        string
	CoverImageURL string
}

// NewResearchForm returns a blank create form with the default status.
func NewResearchForm() *ResearchForm {
	return &ResearchForm{Status: string(models.ProjectActive)}
}

// Load reshapes an existing project into the form.
func (f *ResearchForm) Load(p *models.ResearchProject) {
	f.id = p.ID
	f.Title = p.Title
	f.Description = p.Description
	f.Category = p.Category
	f.Status = string(p.Status)
	f.CoverImageURL = stringOrEmpty(p.CoverImageURL)
}

// Editing reports whether submitting will update an existing record.
func (f *ResearchForm) Editing() bool {
	return f.id != 0
}

// SetCoverImageURL records the URL returned by a completed image upload.
func (f *ResearchForm) SetCoverImageURL(url string) {
	f.CoverImageURL = url
}

// Reset clears the draft back to a blank create form.
func (f *ResearchForm) Reset() {
	*f = ResearchForm{Status: string(models.ProjectActive)}
}

// Validate checks the draft's required fields and status value.
func (f *ResearchForm) Validate() error {
	if err := requireField("title", f.Title); err != nil {
		return err
	}
	if err := requireField("category", f.Category); err != nil {
		return err
	}
	if !models.ProjectStatus(f.Status).IsValid() {
		return fmt.Errorf("%w: unknown status %q", ErrFormInvalid, f.Status)
	}
	return nil
}

// Submit validates the draft and persists it.
func (f *ResearchForm) Submit(ctx context.Context, svc *services.ResearchService) error {
	if err := f.Validate(); err != nil {
		return err
	}

	p := &models.ResearchProject{
		ID:            f.id,
		Title:         f.Title,
		Description:   f.Description,
		Category:      f.Category,
		Status:        models.ProjectStatus(f.Status),
		CoverImageURL: optionalString(f.CoverImageURL),
	}

	if f.Editing() {
		if err := svc.Update(ctx, p); err != nil {
			return err
		}
	} else {
		if _, err := svc.Create(ctx, p); err != nil {
			return err
		}
	}
	f.Reset()
	return nil
}
