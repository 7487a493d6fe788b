package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	PublicationRepository *PublicationRepository
	ResearchRepository    *ResearchRepository
	CourseRepository      *CourseRepository
	MaterialRepository    *MaterialRepository
	MessageRepository     *MessageRepository
	SettingsRepository    *SettingsRepository
	UserRepository        *UserRepository
	TokenRepository       *TokenRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		PublicationRepository: NewPublicationRepository(db),
		ResearchRepository:    NewResearchRepository(db),
		CourseRepository:      NewCourseRepository(db),
		MaterialRepository:    NewMaterialRepository(db),
		MessageRepository:     NewMessageRepository(db),
		SettingsRepository:    NewSettingsRepository(db),
		UserRepository:        NewUserRepository(db),
		TokenRepository:       NewTokenRepository(db),
	}
}
