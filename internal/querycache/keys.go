package querycache

import "strconv"

// Entity names used as the first component of cache keys.
const (
	EntityPublications = "publications"
	EntityResearch     = "research_projects"
	EntityCourses      = "courses"
	EntityMaterials    = "course_materials"
	EntityMessages     = "messages"
	EntitySettings     = "site_settings"
	EntityUsers        = "users"
)

// PublicationsKey is the publications list query.
func PublicationsKey() Key { return NewKey(EntityPublications, "") }

// ResearchKey is a research project list query for the given filter params.
func ResearchKey(params string) Key { return NewKey(EntityResearch, params) }

// CoursesKey is a course list query for the given filter params.
func CoursesKey(params string) Key { return NewKey(EntityCourses, params) }

// MaterialsKey is the materials list query scoped to one course.
func MaterialsKey(courseID int64) Key {
	return NewKey(EntityMaterials, strconv.FormatInt(courseID, 10))
}

// MessagesKey is the admin message list query.
func MessagesKey() Key { return NewKey(EntityMessages, "") }

// SettingsKey is the site settings singleton query.
func SettingsKey() Key { return NewKey(EntitySettings, "") }

// UsersKey is the users management list query.
func UsersKey() Key { return NewKey(EntityUsers, "") }
