package models

// Role defines the authorization level of a user account
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// UserStatus defines whether an account may sign in
type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
)

// Semester enumerates the academic terms a course can run in
type Semester string

const (
	SemesterFall   Semester = "Fall"
	SemesterSpring Semester = "Spring"
	SemesterSummer Semester = "Summer"
	SemesterWinter Semester = "Winter"
)

// IsValid reports whether s is one of the known semesters.
func (s Semester) IsValid() bool {
	switch s {
	case SemesterFall, SemesterSpring, SemesterSummer, SemesterWinter:
		return true
	}
	return false
}

// CourseStatus defines the lifecycle state of a course
type CourseStatus string

const (
	CourseActive   CourseStatus = "active"
	CourseArchived CourseStatus = "archived"
	CourseUpcoming CourseStatus = "upcoming"
)

// IsValid reports whether s is one of the known course statuses.
func (s CourseStatus) IsValid() bool {
	switch s {
	case CourseActive, CourseArchived, CourseUpcoming:
		return true
	}
	return false
}

// ProjectStatus defines the lifecycle state of a research project
type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "active"
	ProjectCompleted ProjectStatus = "completed"
	ProjectOnHold    ProjectStatus = "on-hold"
)

// IsValid reports whether s is one of the known project statuses.
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectActive, ProjectCompleted, ProjectOnHold:
		return true
	}
	return false
}

// MaterialType enumerates the kinds of course materials that can be uploaded
type MaterialType string

const (
	MaterialPDF        MaterialType = "pdf"
	MaterialSyllabus   MaterialType = "syllabus"
	MaterialAssignment MaterialType = "assignment"
	MaterialExam       MaterialType = "exam"
	MaterialVideo      MaterialType = "video"
	MaterialOther      MaterialType = "other"
)

// IsValid reports whether t is one of the known material types.
func (t MaterialType) IsValid() bool {
	switch t {
	case MaterialPDF, MaterialSyllabus, MaterialAssignment, MaterialExam, MaterialVideo, MaterialOther:
		return true
	}
	return false
}
