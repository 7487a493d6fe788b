package models

import "time"

// ResearchProject defines a research project based on the 'research_projects' table.
type ResearchProject struct {
	ID            int64         `json:"id" db:"id"`
	Title         string        `json:"title" db:"title"`
	Description   string        `json:"description" db:"description"`
	Category      string        `json:"category" db:"category"`
	Status        ProjectStatus `json:"status" db:"status" example:"active"`
	CoverImageURL *string       `json:"coverImageUrl,omitempty" db:"cover_image_url"`
	CreatedAt     time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time     `json:"updatedAt" db:"updated_at"`
}
