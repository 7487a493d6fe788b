package services

import (
	"context"
	"strings"

	"github.com/oalia/scholarsite/internal/app/models"
	"github.com/oalia/scholarsite/internal/app/repositories"
	"github.com/oalia/scholarsite/internal/querycache"
)

// ResearchService handles research project operations.
type ResearchService struct {
	researchRepo *repositories.ResearchRepository
	cache        *querycache.Cache
}

// NewResearchService creates a new research service instance
func NewResearchService(researchRepo *repositories.ResearchRepository, cache *querycache.Cache) *ResearchService {
	return &ResearchService{
		researchRepo: researchRepo,
		cache:        cache,
	}
}

// filterParams canonicalizes a filter into a stable cache key suffix.
func filterParams(pairs ...string) string {
	var parts []string
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] != "" {
			parts = append(parts, pairs[i]+"="+pairs[i+1])
		}
	}
	return strings.Join(parts, "&")
}

// List returns research projects matching the filter, newest first.
func (s *ResearchService) List(ctx context.Context, filter repositories.ResearchFilter) ([]*models.ResearchProject, error) {
	var status, category string
	if filter.Status != nil {
		status = string(*filter.Status)
	}
	if filter.Category != nil {
		category = *filter.Category
	}
	key := querycache.ResearchKey(filterParams("status", status, "category", category))

	res := s.cache.Query(ctx, key, func(ctx context.Context) (interface{}, error) {
		return s.researchRepo.GetAll(ctx, filter)
	})
	if res.Data == nil {
		return nil, res.Err
	}
	return res.Data.([]*models.ResearchProject), res.Err
}

// Search returns projects whose title, category or description contains the
// query, case-insensitively. It filters the cached unfiltered list in memory
// rather than issuing a new database query per keystroke.
func (s *ResearchService) Search(ctx context.Context, query string) ([]*models.ResearchProject, error) {
	projects, err := s.List(ctx, repositories.ResearchFilter{})
	if projects == nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return projects, err
	}

	var matched []*models.ResearchProject
	for _, p := range projects {
		if matchesProject(p, query) {
			matched = append(matched, p)
		}
	}
	return matched, err
}

func matchesProject(p *models.ResearchProject, query string) bool {
	query = strings.ToLower(query)
	return strings.Contains(strings.ToLower(p.Title), query) ||
		strings.Contains(strings.ToLower(p.Category), query) ||
		strings.Contains(strings.ToLower(p.Description), query)
}

// GetByID returns a single research project.
func (s *ResearchService) GetByID(ctx context.Context, id int64) (*models.ResearchProject, error) {
	return s.researchRepo.GetByID(ctx, id)
}

// Create persists a new research project.
func (s *ResearchService) Create(ctx context.Context, p *models.ResearchProject) (int64, error) {
	var id int64
	err := s.cache.Mutate(ctx, func(ctx context.Context) error {
		var err error
		id, err = s.researchRepo.Create(ctx, p)
		return err
	}, querycache.ByEntity(querycache.EntityResearch))
	return id, err
}

// Update persists changes to an existing research project.
func (s *ResearchService) Update(ctx context.Context, p *models.ResearchProject) error {
	return s.cache.Mutate(ctx, func(ctx context.Context) error {
		return s.researchRepo.Update(ctx, p)
	}, querycache.ByEntity(querycache.EntityResearch))
}

// Delete removes a research project.
func (s *ResearchService) Delete(ctx context.Context, id int64) error {
	return s.cache.Mutate(ctx, func(ctx context.Context) error {
		return s.researchRepo.Delete(ctx, id)
	}, querycache.ByEntity(querycache.EntityResearch))
}
