package models

import "time"

// CourseMaterial defines an uploaded material belonging to a course.
// FilePath holds the durable public URL of the stored object.
type CourseMaterial struct {
	ID          int64        `json:"id" db:"id"`
	CourseID    int64        `json:"courseId" db:"course_id"`
	Title       string       `json:"title" db:"title"`
	Type        MaterialType `json:"type" db:"type" example:"pdf"`
	FilePath    string       `json:"filePath" db:"file_path"`
	Description *string      `json:"description,omitempty" db:"description"`
	CreatedAt   time.Time    `json:"createdAt" db:"created_at"`
}
