package dto

// --- Request DTOs ---

// ResearchProjectRequest represents the data needed to create or update a
// research project.
type ResearchProjectRequest struct {
	Title         string  `json:"title" binding:"required" example:"Low-Latency Stream Processing"`
	Description   string  `json:"description,omitempty"`
	Category      string  `json:"category" binding:"required" example:"Systems"`
	Status        string  `json:"status" binding:"required,oneof=active completed on-hold" example:"active"`
	CoverImageURL *string `json:"coverImageUrl,omitempty"`
}

// --- Response DTOs ---

// ResearchProjectResponse represents the data returned for a single project.
type ResearchProjectResponse struct {
	ID            int64   `json:"id" example:"7"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Category      string  `json:"category" example:"Systems"`
	Status        string  `json:"status" example:"active"`
	CoverImageURL *string `json:"coverImageUrl,omitempty"`
	CreatedAt     string  `json:"createdAt" example:"2026-01-15T10:00:00Z"`
	UpdatedAt     string  `json:"updatedAt" example:"2026-01-16T11:30:00Z"`
}

// ResearchProjectListResponse represents the response for a list of projects.
type ResearchProjectListResponse struct {
	Projects []ResearchProjectResponse `json:"projects"`
}
