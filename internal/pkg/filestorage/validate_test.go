package filestorage

import (
	"errors"
	"strings"
	"testing"

	"github.com/oalia/scholarsite/internal/app/models"
	"github.com/oalia/scholarsite/internal/pkg/apperrors"
)

func TestValidateImageUpload(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		size     int64
		wantErr  error
	}{
		{"small jpeg passes", "cover.jpg", 4 * 1024 * 1024, nil},
		{"exactly at limit passes", "cover.png", MaxImageSize, nil},
		{"oversize rejected", "cover.jpg", 6 * 1024 * 1024, apperrors.ErrFileTooLarge},
		{"uppercase extension accepted", "COVER.PNG", 1024, nil},
		{"non-image rejected", "cover.exe", 1024, apperrors.ErrFileTypeMismatch},
		{"missing extension rejected", "cover", 1024, apperrors.ErrFileTypeMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateImageUpload(tt.filename, tt.size)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateMaterialUpload(t *testing.T) {
	tests := []struct {
		name         string
		filename     string
		materialType models.MaterialType
		wantErr      bool
	}{
		{"pdf for pdf type", "notes.pdf", models.MaterialPDF, false},
		{"pdf for syllabus type", "syllabus.pdf", models.MaterialSyllabus, false},
		{"docx for assignment type", "hw1.docx", models.MaterialAssignment, true},
		{"mp4 for video type", "lecture.mp4", models.MaterialVideo, false},
		{"webm for video type", "lecture.webm", models.MaterialVideo, false},
		{"pdf for video type", "lecture.pdf", models.MaterialVideo, true},
		{"anything for other type", "dataset.csv", models.MaterialOther, false},
		{"unknown type", "notes.pdf", models.MaterialType("bogus"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMaterialUpload(tt.filename, tt.materialType)
			if tt.wantErr && err == nil {
				t.Fatal("expected an error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestObjectKeyKeepsExtension(t *testing.T) {
	key := ObjectKey("My Lecture Notes.PDF")
	if !strings.HasSuffix(key, ".pdf") {
		t.Fatalf("key %q does not keep the lowercased extension", key)
	}
	if strings.ContainsAny(key, " ") {
		t.Fatalf("key %q contains whitespace", key)
	}
	if key == ObjectKey("My Lecture Notes.PDF") {
		t.Fatal("two keys for the same filename collided")
	}
}
