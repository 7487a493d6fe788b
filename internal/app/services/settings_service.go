package services

import (
	"context"

	"github.com/oalia/scholarsite/internal/app/models"
	"github.com/oalia/scholarsite/internal/app/repositories"
	"github.com/oalia/scholarsite/internal/querycache"
)

// SettingsService handles the site settings singleton.
type SettingsService struct {
	settingsRepo *repositories.SettingsRepository
	cache        *querycache.Cache
}

// NewSettingsService creates a new settings service instance
func NewSettingsService(settingsRepo *repositories.SettingsRepository, cache *querycache.Cache) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
		cache:        cache,
	}
}

// Get returns the site settings, creating the row with defaults on first
// read.
func (s *SettingsService) Get(ctx context.Context) (*models.SiteSettings, error) {
	res := s.cache.Query(ctx, querycache.SettingsKey(), func(ctx context.Context) (interface{}, error) {
		return s.settingsRepo.Get(ctx)
	})
	if res.Data == nil {
		return nil, res.Err
	}
	return res.Data.(*models.SiteSettings), res.Err
}

// Update persists changes to the site settings.
func (s *SettingsService) Update(ctx context.Context, settings *models.SiteSettings) error {
	return s.cache.Mutate(ctx, func(ctx context.Context) error {
		return s.settingsRepo.Update(ctx, settings)
	}, querycache.ByKey(querycache.SettingsKey()))
}
