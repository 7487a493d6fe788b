package services

import (
	"context"
	"strings"

	"github.com/oalia/scholarsite/internal/app/models"
	"github.com/oalia/scholarsite/internal/app/repositories"
	"github.com/oalia/scholarsite/internal/querycache"
)

// PublicationService handles publication-related operations. List reads go
// through the shared query cache; writes invalidate the cached list only
// after the database write succeeds.
type PublicationService struct {
	publicationRepo *repositories.PublicationRepository
	cache           *querycache.Cache
}

// NewPublicationService creates a new publication service instance
func NewPublicationService(publicationRepo *repositories.PublicationRepository, cache *querycache.Cache) *PublicationService {
	return &PublicationService{
		publicationRepo: publicationRepo,
		cache:           cache,
	}
}

// List returns all publications, newest first. The result may be stale when
// the most recent refetch failed; the error is surfaced alongside the data.
func (s *PublicationService) List(ctx context.Context) ([]*models.Publication, error) {
	res := s.cache.Query(ctx, querycache.PublicationsKey(), func(ctx context.Context) (interface{}, error) {
		return s.publicationRepo.GetAll(ctx)
	})
	if res.Data == nil {
		return nil, res.Err
	}
	return res.Data.([]*models.Publication), res.Err
}

// Search returns publications whose title, any author, or venue contains
// the query, case-insensitively, optionally narrowed to an exact year. It
// filters the cached unfiltered list in memory rather than issuing a new
// database query per keystroke.
func (s *PublicationService) Search(ctx context.Context, query, year string) ([]*models.Publication, error) {
	publications, err := s.List(ctx)
	if publications == nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	matched := make([]*models.Publication, 0, len(publications))
	for _, p := range publications {
		if matchesPublication(p, query, year) {
			matched = append(matched, p)
		}
	}
	return matched, err
}

func matchesPublication(p *models.Publication, query, year string) bool {
	if year != "" && p.Date != year {
		return false
	}
	query = strings.ToLower(query)
	if query == "" {
		return true
	}
	if strings.Contains(strings.ToLower(p.Title), query) ||
		strings.Contains(strings.ToLower(p.Venue), query) {
		return true
	}
	for _, author := range p.Authors {
		if strings.Contains(strings.ToLower(author), query) {
			return true
		}
	}
	return false
}

// GetByID returns a single publication.
func (s *PublicationService) GetByID(ctx context.Context, id int64) (*models.Publication, error) {
	return s.publicationRepo.GetByID(ctx, id)
}

// Create persists a new publication and invalidates the cached list.
func (s *PublicationService) Create(ctx context.Context, p *models.Publication) (int64, error) {
	var id int64
	err := s.cache.Mutate(ctx, func(ctx context.Context) error {
		var err error
		id, err = s.publicationRepo.Create(ctx, p)
		return err
	}, querycache.ByEntity(querycache.EntityPublications))
	return id, err
}

// Update persists changes to an existing publication.
func (s *PublicationService) Update(ctx context.Context, p *models.Publication) error {
	return s.cache.Mutate(ctx, func(ctx context.Context) error {
		return s.publicationRepo.Update(ctx, p)
	}, querycache.ByEntity(querycache.EntityPublications))
}

// Delete removes a publication.
func (s *PublicationService) Delete(ctx context.Context, id int64) error {
	return s.cache.Mutate(ctx, func(ctx context.Context) error {
		return s.publicationRepo.Delete(ctx, id)
	}, querycache.ByEntity(querycache.EntityPublications))
}
