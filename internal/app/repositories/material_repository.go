package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oalia/scholarsite/internal/app/models"
	"github.com/oalia/scholarsite/internal/pkg/apperrors"
	"github.com/oalia/scholarsite/internal/pkg/dberrors"
	"github.com/oalia/scholarsite/internal/pkg/logger"
)

// MaterialRepository handles database operations for course materials.
type MaterialRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewMaterialRepository creates a new MaterialRepository
func NewMaterialRepository(db *pgxpool.Pool) *MaterialRepository {
	return &MaterialRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *MaterialRepository) selectMaterials() squirrel.SelectBuilder {
	return r.sb.Select(
		"id", "course_id", "title", "type", "file_path", "description", "created_at",
	).From("course_materials")
}

func scanMaterial(row pgx.Row) (*models.CourseMaterial, error) {
	var m models.CourseMaterial
	err := row.Scan(&m.ID, &m.CourseID, &m.Title, &m.Type, &m.FilePath, &m.Description, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMaterialNotFound
		}
		logger.Error().Err(err).Msg("Error scanning course material row")
		return nil, err
	}
	return &m, nil
}

// GetByCourseID retrieves all materials for a course, most recent first.
func (r *MaterialRepository) GetByCourseID(ctx context.Context, courseID int64) ([]*models.CourseMaterial, error) {
	sqlStr, args, err := r.selectMaterials().
		Where(squirrel.Eq{"course_id": courseID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get materials by course SQL")
		return nil, err
	}

	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Int64("courseId", courseID).Msg("Error executing get materials query")
		return nil, err
	}
	defer rows.Close()

	materials := make([]*models.CourseMaterial, 0)
	for rows.Next() {
		m, err := scanMaterial(rows)
		if err != nil {
			return nil, err
		}
		materials = append(materials, m)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating material rows")
		return nil, fmt.Errorf("database iteration error: %w", err)
	}

	return materials, nil
}

// GetByID retrieves a single material by its ID.
func (r *MaterialRepository) GetByID(ctx context.Context, id int64) (*models.CourseMaterial, error) {
	sqlStr, args, err := r.selectMaterials().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get material by ID SQL")
		return nil, err
	}

	return scanMaterial(r.db.QueryRow(ctx, sqlStr, args...))
}

// Create inserts a new material row referencing an already-stored file and
// returns its ID.
func (r *MaterialRepository) Create(ctx context.Context, m *models.CourseMaterial) (int64, error) {
	sqlStr, args, err := r.sb.Insert("course_materials").
		Columns("course_id", "title", "type", "file_path", "description").
		Values(m.CourseID, m.Title, m.Type, m.FilePath, m.Description).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create material SQL")
		return 0, err
	}

	var id int64
	if err := r.db.QueryRow(ctx, sqlStr, args...).Scan(&id); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Int64("courseId", m.CourseID).Msg("Error executing create material query")
		return 0, err
	}
	return id, nil
}

// Delete deletes a material row by its ID.
func (r *MaterialRepository) Delete(ctx context.Context, id int64) error {
	sqlStr, args, err := r.sb.Delete("course_materials").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete material SQL")
		return err
	}

	cmdTag, err := r.db.Exec(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing delete material query")
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMaterialNotFound
	}
	return nil
}
