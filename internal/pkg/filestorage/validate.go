package filestorage

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/oalia/scholarsite/internal/app/models"
	"github.com/oalia/scholarsite/internal/pkg/apperrors"
)

// MaxImageSize is the upper bound for cover image uploads.
const MaxImageSize = 5 * 1024 * 1024

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// Extensions accepted per material type. Types absent from the map accept
// any extension.
var materialExtensions = map[models.MaterialType]map[string]bool{
	models.MaterialPDF:        {".pdf": true},
	models.MaterialSyllabus:   {".pdf": true},
	models.MaterialAssignment: {".pdf": true},
	models.MaterialExam:       {".pdf": true},
	models.MaterialVideo:      {".mp4": true, ".webm": true, ".mov": true},
}

// ValidateImageUpload checks an image upload before any network call is made.
func ValidateImageUpload(filename string, size int64) error {
	if size > MaxImageSize {
		return apperrors.NewCustomError(apperrors.ErrFileTooLarge,
			fmt.Sprintf("image exceeds the %d MB size limit", MaxImageSize/(1024*1024)))
	}
	ext := strings.ToLower(filepath.Ext(filename))
	if !imageExtensions[ext] {
		return apperrors.NewCustomError(apperrors.ErrFileTypeMismatch,
			fmt.Sprintf("unsupported image format %q", ext))
	}
	return nil
}

// ValidateMaterialUpload checks that the uploaded file's extension is
// consistent with the declared material type.
func ValidateMaterialUpload(filename string, materialType models.MaterialType) error {
	if !materialType.IsValid() {
		return apperrors.NewValidationError("type", fmt.Sprintf("unknown material type %q", materialType))
	}
	allowed, restricted := materialExtensions[materialType]
	if !restricted {
		return nil
	}
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowed[ext] {
		return apperrors.NewCustomError(apperrors.ErrFileTypeMismatch,
			fmt.Sprintf("extension %q is not valid for material type %q", ext, materialType))
	}
	return nil
}

// ObjectKey builds a collision-resistant storage key that keeps the original
// file extension.
func ObjectKey(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	token := strings.Split(uuid.New().String(), "-")[0]
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), token, ext)
}
