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
	"github.com/oalia/scholarsite/internal/pkg/logger"
)

// ResearchFilter holds optional server-side filters for project listing.
type ResearchFilter struct {
	Status   *models.ProjectStatus
	Category *string
}

// ResearchRepository handles database operations for research projects.
type ResearchRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewResearchRepository creates a new ResearchRepository
func NewResearchRepository(db *pgxpool.Pool) *ResearchRepository {
	return &ResearchRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *ResearchRepository) selectProjects() squirrel.SelectBuilder {
	return r.sb.Select(
		"id", "title", "description", "category", "status",
		"cover_image_url", "created_at", "updated_at",
	).From("research_projects")
}

func scanProject(row pgx.Row) (*models.ResearchProject, error) {
	var p models.ResearchProject
	err := row.Scan(
		&p.ID, &p.Title, &p.Description, &p.Category, &p.Status,
		&p.CoverImageURL, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProjectNotFound
		}
		logger.Error().Err(err).Msg("Error scanning research project row")
		return nil, err
	}
	return &p, nil
}

// GetAll retrieves research projects, most recent first, with optional filters.
func (r *ResearchRepository) GetAll(ctx context.Context, filter ResearchFilter) ([]*models.ResearchProject, error) {
	builder := r.selectProjects().OrderBy("created_at DESC")
	if filter.Status != nil {
		builder = builder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.Category != nil && *filter.Category != "" {
		builder = builder.Where(squirrel.Eq{"category": *filter.Category})
	}

	sqlStr, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all projects SQL")
		return nil, err
	}

	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all projects query")
		return nil, err
	}
	defer rows.Close()

	projects := make([]*models.ResearchProject, 0)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating project rows")
		return nil, fmt.Errorf("database iteration error: %w", err)
	}

	return projects, nil
}

// GetByID retrieves a single research project by its ID.
func (r *ResearchRepository) GetByID(ctx context.Context, id int64) (*models.ResearchProject, error) {
	sqlStr, args, err := r.selectProjects().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get project by ID SQL")
		return nil, err
	}

	return scanProject(r.db.QueryRow(ctx, sqlStr, args...))
}

// Create inserts a new research project and returns its ID.
func (r *ResearchRepository) Create(ctx context.Context, p *models.ResearchProject) (int64, error) {
	sqlStr, args, err := r.sb.Insert("research_projects").
		Columns("title", "description", "category", "status", "cover_image_url").
		Values(p.Title, p.Description, p.Category, p.Status, p.CoverImageURL).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create project SQL")
		return 0, err
	}

	var id int64
	if err := r.db.QueryRow(ctx, sqlStr, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create project query")
		return 0, err
	}
	return id, nil
}

// Update updates an existing research project.
func (r *ResearchRepository) Update(ctx context.Context, p *models.ResearchProject) error {
	sqlStr, args, err := r.sb.Update("research_projects").
		Set("title", p.Title).
		Set("description", p.Description).
		Set("category", p.Category).
		Set("status", p.Status).
		Set("cover_image_url", p.CoverImageURL).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": p.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update project SQL")
		return err
	}

	cmdTag, err := r.db.Exec(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing update project query")
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrProjectNotFound
	}
	return nil
}

// Delete deletes a research project by its ID.
func (r *ResearchRepository) Delete(ctx context.Context, id int64) error {
	sqlStr, args, err := r.sb.Delete("research_projects").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete project SQL")
		return err
	}

	cmdTag, err := r.db.Exec(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing delete project query")
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrProjectNotFound
	}
	return nil
}
