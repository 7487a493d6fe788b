package forms

import (
	"context"

	"github.com/oalia/scholarsite/internal/app/models"
	"github.com/oalia/scholarsite/internal/app/repositories"
	"github.com/oalia/scholarsite/internal/app/services"
)

// PublicationForm is the draft behind the publication editor. Authors are a
// single comma-separated field while editing and are split into the stored
// list on submit.
type PublicationForm struct {
	id int64

	Title         string
	Authors       string
	Venue         string
	Date          string
	DOI           string
	Abstract      string
	PDFURL        string
	CoverImageURL string
}

// NewPublicationForm returns a blank create form.
func NewPublicationForm() *PublicationForm {
	return &PublicationForm{}
}

// Load reshapes an existing publication into the form, switching it into
// update mode.
func (f *PublicationForm) Load(p *models.Publication) {
	f.id = p.ID
	f.Title = p.Title
	f.Authors = repositories.JoinAuthors(p.Authors)
	f.Venue = p.Venue
	f.Date = p.Date
	f.DOI = stringOrEmpty(p.DOI)
	f.Abstract = p.Abstract
	f.PDFURL = stringOrEmpty(p.PDFURL)
	f.CoverImageURL = stringOrEmpty(p.CoverImageURL)
}

// Editing reports whether submitting will update an existing record.
func (f *PublicationForm) Editing() bool {
	return f.id != 0
}

// SetCoverImageURL records the URL returned by a completed image upload.
func (f *PublicationForm) SetCoverImageURL(url string) {
	f.CoverImageURL = url
}

// Reset clears the draft back to a blank create form.
func (f *PublicationForm) Reset() {
	*f = PublicationForm{}
}

// Validate checks the draft's required fields.
func (f *PublicationForm) Validate() error {
	if err := requireField("title", f.Title); err != nil {
		return err
	}
	if err := requireField("authors", f.Authors); err != nil {
		return err
	}
	if err := requireField("venue", f.Venue); err != nil {
		return err
	}
	return requireField("date", f.Date)
}

// Submit validates the draft and persists it, creating or updating depending
// on how the form was opened. The draft is left untouched on failure so the
// user's input survives the error.
func (f *PublicationForm) Submit(ctx context.Context, svc *services.PublicationService) error {
	if err := f.Validate(); err != nil {
		return err
	}

	p := &models.Publication{
		ID:            f.id,
		Title:         f.Title,
		Authors:       repositories.SplitAuthors(f.Authors),
		Venue:         f.Venue,
		Date:          f.Date,
		DOI:           optionalString(f.DOI),
		Abstract:      f.Abstract,
		PDFURL:        optionalString(f.PDFURL),
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
