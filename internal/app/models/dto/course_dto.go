package dto

// --- Request DTOs ---

// CourseRequest represents the data needed to create or update a course.
// Highlights arrive as a newline-separated string, one bullet per line.
type CourseRequest struct {
	Title         string  `json:"title" binding:"required" example:"Advanced Database Systems"`
	Code          string  `json:"code" binding:"required" example:"CS450"`
	Description   string  `json:"description,omitempty"`
	Semester      string  `json:"semester" binding:"required,oneof=Fall Spring Summer Winter" example:"Fall"`
	Year          string  `json:"year" binding:"required" example:"2026"`
	Status        string  `json:"status" binding:"required,oneof=active archived upcoming" example:"active"`
	CoverImageURL *string `json:"coverImageUrl,omitempty"`
	Highlights    string  `json:"highlights,omitempty" example:"Query optimization\nTransaction internals"`
}

// CreateMaterialRequest represents the metadata accompanying a material
// upload. The file itself is sent via multipart/form-data.
type CreateMaterialRequest struct {
	Title       string  `form:"title" binding:"required" example:"Week 5 Lecture Notes"`
	Type        string  `form:"type" binding:"required,oneof=pdf syllabus assignment exam video other" example:"pdf"`
	Description *string `form:"description,omitempty"`
}

// --- Response DTOs ---

// CourseResponse represents the data returned for a single course.
type CourseResponse struct {
	ID            int64    `json:"id" example:"3"`
	Title         string   `json:"title"`
	Code          string   `json:"code" example:"CS450"`
	Description   string   `json:"description"`
	Semester      string   `json:"semester" example:"Fall"`
	Year          string   `json:"year" example:"2026"`
	Status        string   `json:"status" example:"active"`
	CoverImageURL *string  `json:"coverImageUrl,omitempty"`
	Highlights    []string `json:"highlights,omitempty"`
	CreatedAt     string   `json:"createdAt" example:"2026-01-15T10:00:00Z"`
	UpdatedAt     string   `json:"updatedAt" example:"2026-01-16T11:30:00Z"`
}

// CourseListResponse represents the response for a list of courses.
type CourseListResponse struct {
	Courses []CourseResponse `json:"courses"`
}

// MaterialResponse represents the data returned for a course material.
type MaterialResponse struct {
	ID          int64   `json:"id" example:"21"`
	CourseID    int64   `json:"courseId" example:"3"`
	Title       string  `json:"title"`
	Type        string  `json:"type" example:"pdf"`
	FilePath    string  `json:"filePath" example:"https://cdn.example.edu/materials/1736944812000-a1b2c3d4.pdf"`
	Description *string `json:"description,omitempty"`
	CreatedAt   string  `json:"createdAt" example:"2026-01-15T10:00:00Z"`
}

// MaterialListResponse represents the response for a course's materials.
type MaterialListResponse struct {
	Materials []MaterialResponse `json:"materials"`
}
