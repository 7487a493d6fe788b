package models

import "time"

// Course defines a taught course based on the 'courses' table.
// Highlights are short bullet points shown on the teaching page.
type Course struct {
	ID            int64        `json:"id" db:"id"`
	Title         string       `json:"title" db:"title"`
	Code          string       `json:"code" db:"code" example:"CS450"`
	Description   string       `json:"description" db:"description"`
	Semester      Semester     `json:"semester" db:"semester" example:"Fall"`
	Year          string       `json:"year" db:"year" example:"2025"`
	Status        CourseStatus `json:"status" db:"status" example:"active"`
	CoverImageURL *string      `json:"coverImageUrl,omitempty" db:"cover_image_url"`
	Highlights    []string     `json:"highlights,omitempty" db:"highlights"`
	CreatedAt     time.Time    `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time    `json:"updatedAt" db:"updated_at"`
}
