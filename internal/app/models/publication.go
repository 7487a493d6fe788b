package models

import "time"

// Publication defines a publication entry based on the 'publications' table.
// Authors are stored as a text array; the abstract holds editor-produced HTML
// and is returned verbatim.
type Publication struct {
	ID            int64     `json:"id" db:"id"`
	Title         string    `json:"title" db:"title"`
	Authors       []string  `json:"authors" db:"authors"`
	Venue         string    `json:"venue" db:"venue"`
	Date          string    `json:"date" db:"date" example:"2025"`
	DOI           *string   `json:"doi,omitempty" db:"doi"`
	Abstract      string    `json:"abstract" db:"abstract"`
	PDFURL        *string   `json:"pdfUrl,omitempty" db:"pdf_url"`
	CoverImageURL *string   `json:"coverImageUrl,omitempty" db:"cover_image_url"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`
}
