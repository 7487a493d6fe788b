package services

import (
	"context"
	"io"
	"mime"
	"net/url"
	"path"
	"path/filepath"
	"strings"

	"github.com/oalia/scholarsite/internal/app/models"
	"github.com/oalia/scholarsite/internal/app/repositories"
	"github.com/oalia/scholarsite/internal/pkg/apperrors"
	"github.com/oalia/scholarsite/internal/pkg/filestorage"
	"github.com/oalia/scholarsite/internal/pkg/logger"
	"github.com/oalia/scholarsite/internal/querycache"
)

// StorageBuckets names the object store buckets the teaching area writes to.
type StorageBuckets struct {
	CoverImages string
	Materials   string
}

// TeachingService handles courses and their uploaded materials.
type TeachingService struct {
	courseRepo   *repositories.CourseRepository
	materialRepo *repositories.MaterialRepository
	storage      filestorage.ObjectStorage
	buckets      StorageBuckets
	cache        *querycache.Cache
}

// NewTeachingService creates a new teaching service instance
func NewTeachingService(courseRepo *repositories.CourseRepository, materialRepo *repositories.MaterialRepository, storage filestorage.ObjectStorage, buckets StorageBuckets, cache *querycache.Cache) *TeachingService {
	return &TeachingService{
		courseRepo:   courseRepo,
		materialRepo: materialRepo,
		storage:      storage,
		buckets:      buckets,
		cache:        cache,
	}
}

// ListCourses returns courses matching the filter, ordered by code.
func (s *TeachingService) ListCourses(ctx context.Context, filter repositories.CourseFilter) ([]*models.Course, error) {
	var status string
	if filter.Status != nil {
		status = string(*filter.Status)
	}
	key := querycache.CoursesKey(filterParams("status", status))

	res := s.cache.Query(ctx, key, func(ctx context.Context) (interface{}, error) {
		return s.courseRepo.GetAll(ctx, filter)
	})
	if res.Data == nil {
		return nil, res.Err
	}
	return res.Data.([]*models.Course), res.Err
}

// GetCourse returns a single course.
func (s *TeachingService) GetCourse(ctx context.Context, id int64) (*models.Course, error) {
	return s.courseRepo.GetByID(ctx, id)
}

// CreateCourse persists a new course.
func (s *TeachingService) CreateCourse(ctx context.Context, c *models.Course) (int64, error) {
	var id int64
	err := s.cache.Mutate(ctx, func(ctx context.Context) error {
		var err error
		id, err = s.courseRepo.Create(ctx, c)
		return err
	}, querycache.ByEntity(querycache.EntityCourses))
	return id, err
}

// UpdateCourse persists changes to an existing course.
func (s *TeachingService) UpdateCourse(ctx context.Context, c *models.Course) error {
	return s.cache.Mutate(ctx, func(ctx context.Context) error {
		return s.courseRepo.Update(ctx, c)
	}, querycache.ByEntity(querycache.EntityCourses))
}

// DeleteCourse removes a course. Its materials rows go with it via the
// database cascade, and their cached list is dropped outright so a deleted
// course's materials can never be served, not even stale.
func (s *TeachingService) DeleteCourse(ctx context.Context, id int64) error {
	err := s.cache.Mutate(ctx, func(ctx context.Context) error {
		return s.courseRepo.Delete(ctx, id)
	}, querycache.ByEntity(querycache.EntityCourses))
	if err != nil {
		return err
	}
	s.cache.Drop(querycache.ByKey(querycache.MaterialsKey(id)))
	return nil
}

// ListMaterials returns the materials of one course, newest first.
func (s *TeachingService) ListMaterials(ctx context.Context, courseID int64) ([]*models.CourseMaterial, error) {
	res := s.cache.Query(ctx, querycache.MaterialsKey(courseID), func(ctx context.Context) (interface{}, error) {
		return s.materialRepo.GetByCourseID(ctx, courseID)
	})
	if res.Data == nil {
		return nil, res.Err
	}
	return res.Data.([]*models.CourseMaterial), res.Err
}

// UploadMaterial validates the upload, stores the file, then records the
// material row. The object is written first; if the row insert fails the
// stored object is left behind and logged rather than rolled back.
func (s *TeachingService) UploadMaterial(ctx context.Context, m *models.CourseMaterial, filename string, r io.Reader, size int64) (int64, error) {
	if err := filestorage.ValidateMaterialUpload(filename, m.Type); err != nil {
		return 0, err
	}

	key := filestorage.ObjectKey(filename)
	contentType := mime.TypeByExtension(filepath.Ext(filename))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	if err := s.storage.Upload(ctx, s.buckets.Materials, key, r, size, contentType); err != nil {
		return 0, apperrors.NewCustomError(apperrors.ErrStorageUploadFailed, err.Error())
	}
	m.FilePath = s.storage.PublicURL(s.buckets.Materials, key)

	var id int64
	err := s.cache.Mutate(ctx, func(ctx context.Context) error {
		var err error
		id, err = s.materialRepo.Create(ctx, m)
		return err
	}, querycache.ByKey(querycache.MaterialsKey(m.CourseID)))
	if err != nil {
		logger.Warn().Err(err).Str("bucket", s.buckets.Materials).Str("key", key).Msg("Material row insert failed, stored object orphaned")
		return 0, err
	}
	return id, nil
}

// DeleteMaterial removes the material row first, then removes the stored
// object best-effort. A storage failure is logged but never surfaced: the
// row is gone and the material no longer exists as far as callers know.
func (s *TeachingService) DeleteMaterial(ctx context.Context, id int64) error {
	material, err := s.materialRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	err = s.cache.Mutate(ctx, func(ctx context.Context) error {
		return s.materialRepo.Delete(ctx, id)
	}, querycache.ByKey(querycache.MaterialsKey(material.CourseID)))
	if err != nil {
		return err
	}

	if key := objectKeyFromURL(material.FilePath); key != "" {
		if rmErr := s.storage.Remove(ctx, s.buckets.Materials, key); rmErr != nil {
			logger.Warn().Err(rmErr).Str("key", key).Msg("Failed to remove stored object for deleted material")
		}
	}
	return nil
}

// UploadCoverImage validates and stores a cover image and returns its public
// URL. Validation runs before any network call.
func (s *TeachingService) UploadCoverImage(ctx context.Context, filename string, r io.Reader, size int64) (string, error) {
	if err := filestorage.ValidateImageUpload(filename, size); err != nil {
		return "", err
	}

	key := filestorage.ObjectKey(filename)
	contentType := mime.TypeByExtension(filepath.Ext(filename))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	if err := s.storage.Upload(ctx, s.buckets.CoverImages, key, r, size, contentType); err != nil {
		return "", apperrors.NewCustomError(apperrors.ErrStorageUploadFailed, err.Error())
	}
	return s.storage.PublicURL(s.buckets.CoverImages, key), nil
}

// objectKeyFromURL extracts the storage key from a stored public URL.
func objectKeyFromURL(fileURL string) string {
	if fileURL == "" {
		return ""
	}
	u, err := url.Parse(fileURL)
	if err != nil {
		return ""
	}
	key := path.Base(u.Path)
	if key == "." || key == "/" || strings.TrimSpace(key) == "" {
		return ""
	}
	return key
}
