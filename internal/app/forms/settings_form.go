package forms

import (
	"context"

	"github.com/oalia/scholarsite/internal/app/models"
	"github.com/oalia/scholarsite/internal/app/services"
)

// SettingsForm is the draft behind the site settings editor. It always edits
// the singleton row and never creates.
type SettingsForm struct {
	id int64

	SiteTitle       string
	SiteDescription string
	FooterText      string
}

// LoadSettingsForm builds the form from the current settings.
func LoadSettingsForm(s *models.SiteSettings) *SettingsForm {
	return &SettingsForm{
		id:              s.ID,
		SiteTitle:       s.SiteTitle,
		SiteDescription: s.SiteDescription,
		FooterText:      s.FooterText,
	}
}

// Validate checks the draft's required fields.
func (f *SettingsForm) Validate() error {
	return requireField("site title", f.SiteTitle)
}

// Submit validates the draft and persists the settings.
func (f *SettingsForm) Submit(ctx context.Context, svc *services.SettingsService) error {
	if err := f.Validate(); err != nil {
		return err
	}
	return svc.Update(ctx, &models.SiteSettings{
		ID:              f.id,
		SiteTitle:       f.SiteTitle,
		SiteDescription: f.SiteDescription,
		FooterText:      f.FooterText,
	})
}
