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

// PublicationRepository handles database operations for publications.
type PublicationRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewPublicationRepository creates a new PublicationRepository
func NewPublicationRepository(db *pgxpool.Pool) *PublicationRepository {
	return &PublicationRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *PublicationRepository) selectPublications() squirrel.SelectBuilder {
	return r.sb.Select(
		"id", "title", "authors", "venue", "date", "doi", "abstract",
		"pdf_url", "cover_image_url", "created_at", "updated_at",
	).From("publications")
}

func scanPublication(row pgx.Row) (*models.Publication, error) {
	var p models.Publication
	err := row.Scan(
		&p.ID, &p.Title, &p.Authors, &p.Venue, &p.Date, &p.DOI, &p.Abstract,
		&p.PDFURL, &p.CoverImageURL, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPublicationNotFound
		}
		logger.Error().Err(err).Msg("Error scanning publication row")
		return nil, err
	}
	return &p, nil
}

// GetAll retrieves all publications, most recent first.
func (r *PublicationRepository) GetAll(ctx context.Context) ([]*models.Publication, error) {
	sqlStr, args, err := r.selectPublications().
		OrderBy("date DESC", "created_at DESC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all publications SQL")
		return nil, err
	}

	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all publications query")
		return nil, err
	}
	defer rows.Close()

	publications := make([]*models.Publication, 0)
	for rows.Next() {
		p, err := scanPublication(rows)
		if err != nil {
			return nil, err
		}
		publications = append(publications, p)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating publication rows")
		return nil, fmt.Errorf("database iteration error: %w", err)
	}

	return publications, nil
}

// GetByID retrieves a single publication by its ID.
func (r *PublicationRepository) GetByID(ctx context.Context, id int64) (*models.Publication, error) {
	sqlStr, args, err := r.selectPublications().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get publication by ID SQL")
		return nil, err
	}

	return scanPublication(r.db.QueryRow(ctx, sqlStr, args...))
}

// Create inserts a new publication and returns its ID.
func (r *PublicationRepository) Create(ctx context.Context, p *models.Publication) (int64, error) {
	sqlStr, args, err := r.sb.Insert("publications").
		Columns("title", "authors", "venue", "date", "doi", "abstract", "pdf_url", "cover_image_url").
		Values(p.Title, p.Authors, p.Venue, p.Date, p.DOI, p.Abstract, p.PDFURL, p.CoverImageURL).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create publication SQL")
		return 0, err
	}

	var id int64
	if err := r.db.QueryRow(ctx, sqlStr, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create publication query")
		return 0, err
	}
	return id, nil
}

// Update updates an existing publication.
func (r *PublicationRepository) Update(ctx context.Context, p *models.Publication) error {
	sqlStr, args, err := r.sb.Update("publications").
		Set("title", p.Title).
		Set("authors", p.Authors).
		Set("venue", p.Venue).
		Set("date", p.Date).
		Set("doi", p.DOI).
		Set("abstract", p.Abstract).
		Set("pdf_url", p.PDFURL).
		Set("cover_image_url", p.CoverImageURL).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": p.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update publication SQL")
		return err
	}

	cmdTag, err := r.db.Exec(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing update publication query")
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPublicationNotFound
	}
	return nil
}

// Delete deletes a publication by its ID.
func (r *PublicationRepository) Delete(ctx context.Context, id int64) error {
	sqlStr, args, err := r.sb.Delete("publications").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete publication SQL")
		return err
	}

	cmdTag, err := r.db.Exec(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing delete publication query")
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPublicationNotFound
	}
	return nil
}
