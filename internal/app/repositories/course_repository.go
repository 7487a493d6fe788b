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

// CourseFilter holds optional server-side filters for course listing.
type CourseFilter struct {
	Status *models.CourseStatus
}

// CourseRepository handles database operations for courses.
type CourseRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *CourseRepository) selectCourses() squirrel.SelectBuilder {
	return r.sb.Select(
		"id", "title", "code", "description", "semester", "year", "status",
		"cover_image_url", "highlights", "created_at", "updated_at",
	).From("courses")
}

func scanCourse(row pgx.Row) (*models.Course, error) {
	var c models.Course
	err := row.Scan(
		&c.ID, &c.Title, &c.Code, &c.Description, &c.Semester, &c.Year, &c.Status,
		&c.CoverImageURL, &c.Highlights, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Msg("Error scanning course row")
		return nil, err
	}
	return &c, nil
}

// GetAll retrieves courses ordered by code ascending, with optional status filter.
func (r *CourseRepository) GetAll(ctx context.Context, filter CourseFilter) ([]*models.Course, error) {
	builder := r.selectCourses().OrderBy("code ASC")
	if filter.Status != nil {
		builder = builder.Where(squirrel.Eq{"status": *filter.Status})
	}

	sqlStr, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all courses SQL")
		return nil, err
	}

	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all courses query")
		return nil, err
	}
	defer rows.Close()

	courses := make([]*models.Course, 0)
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating course rows")
		return nil, fmt.Errorf("database iteration error: %w", err)
	}

	return courses, nil
}

// GetByID retrieves a single course by its ID.
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	sqlStr, args, err := r.selectCourses().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get course by ID SQL")
		return nil, err
	}

	return scanCourse(r.db.QueryRow(ctx, sqlStr, args...))
}

// Create inserts a new course and returns its ID.
func (r *CourseRepository) Create(ctx context.Context, c *models.Course) (int64, error) {
	sqlStr, args, err := r.sb.Insert("courses").
		Columns("title", "code", "description", "semester", "year", "status", "cover_image_url", "highlights").
		Values(c.Title, c.Code, c.Description, c.Semester, c.Year, c.Status, c.CoverImageURL, c.Highlights).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create course SQL")
		return 0, err
	}

	var id int64
	if err := r.db.QueryRow(ctx, sqlStr, args...).Scan(&id); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "courses_code_key") {
			return 0, apperrors.ErrCourseAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create course query")
		return 0, err
	}
	return id, nil
}

// Update updates an existing course.
func (r *CourseRepository) Update(ctx context.Context, c *models.Course) error {
	sqlStr, args, err := r.sb.Update("courses").
		Set("title", c.Title).
		Set("code", c.Code).
		Set("description", c.Description).
		Set("semester", c.Semester).
		Set("year", c.Year).
		Set("status", c.Status).
		Set("cover_image_url", c.CoverImageURL).
		Set("highlights", c.Highlights).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": c.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update course SQL")
		return err
	}

	cmdTag, err := r.db.Exec(ctx, sqlStr, args...)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "courses_code_key") {
			return apperrors.ErrCourseAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing update course query")
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}
	return nil
}

// Delete deletes a course by its ID. Materials rows cascade at the database
// level through the course_materials foreign key.
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	sqlStr, args, err := r.sb.Delete("courses").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete course SQL")
		return err
	}

	cmdTag, err := r.db.Exec(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing delete course query")
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}
	return nil
}
