package models

import "time"

// SiteSettings is the singleton row holding site-wide presentation settings.
// It is created lazily on first read if absent.
type SiteSettings struct {
	ID              int64     `json:"id" db:"id"`
	SiteTitle       string    `json:"siteTitle" db:"site_title"`
	SiteDescription string    `json:"siteDescription" db:"site_description"`
	FooterText      string    `json:"footerText" db:"footer_text"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time `json:"updatedAt" db:"updated_at"`
}
