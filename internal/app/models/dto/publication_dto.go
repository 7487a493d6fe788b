package dto

// --- Request DTOs ---

// PublicationRequest represents the data needed to create or update a
// publication. Authors arrive as a single comma-separated string, the way the
// dashboard form captures them.
type PublicationRequest struct {
	Title         string  `json:"title" binding:"required" example:"Adaptive Query Scheduling at Scale"`
	Authors       string  `json:"authors" binding:"required" example:"A. Oalia, B. Chen, C. Demir"`
	Venue         string  `json:"venue" binding:"required" example:"SIGMOD"`
	Date          string  `json:"date" binding:"required" example:"2025"`
	DOI           *string `json:"doi,omitempty" example:"10.1145/1234567.1234568"`
	Abstract      string  `json:"abstract,omitempty"`
	PDFURL        *string `json:"pdfUrl,omitempty"`
	CoverImageURL *string `json:"coverImageUrl,omitempty"`
}

// --- Response DTOs ---

// PublicationResponse represents the data returned for a single publication.
// Authors are returned both as the stored list and as the display string.
type PublicationResponse struct {
	ID            int64    `json:"id" example:"15"`
	Title         string   `json:"title"`
	Authors       []string `json:"authors"`
	AuthorsText   string   `json:"authorsText" example:"A. Oalia, B. Chen, C. Demir"`
	Venue         string   `json:"venue"`
	Date          string   `json:"date" example:"2025"`
	DOI           *string  `json:"doi,omitempty"`
	Abstract      string   `json:"abstract"`
	PDFURL        *string  `json:"pdfUrl,omitempty"`
	CoverImageURL *string  `json:"coverImageUrl,omitempty"`
	CreatedAt     string   `json:"createdAt" example:"2026-01-15T10:00:00Z"`
	UpdatedAt     string   `json:"updatedAt" example:"2026-01-16T11:30:00Z"`
}

// PublicationListResponse represents the response for a list of publications.
type PublicationListResponse struct {
	Publications []PublicationResponse `json:"publications"`
}
