package repositories

import (
	"context"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oalia/scholarsite/internal/app/models"
	"github.com/oalia/scholarsite/internal/pkg/apperrors"
	"github.com/oalia/scholarsite/internal/pkg/logger"
)

// Defaults used when the settings row is created lazily on first read.
const (
	defaultSiteTitle       = "Academic Portfolio"
	defaultSiteDescription = "Personal academic portfolio and publications"
	defaultFooterText      = ""
)

// SettingsRepository handles database operations for the site settings singleton.
type SettingsRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewSettingsRepository creates a new SettingsRepository
func NewSettingsRepository(db *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *SettingsRepository) scanSettings(row pgx.Row) (*models.SiteSettings, error) {
	var s models.SiteSettings
	err := row.Scan(&s.ID, &s.SiteTitle, &s.SiteDescription, &s.FooterText, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Get returns the settings singleton, creating it with defaults if absent.
func (r *SettingsRepository) Get(ctx context.Context) (*models.SiteSettings, error) {
	sqlStr, args, err := r.sb.Select(
		"id", "site_title", "site_description", "footer_text", "created_at", "updated_at",
	).From("site_settings").OrderBy("id ASC").Limit(1).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get settings SQL")
		return nil, err
	}

	settings, err := r.scanSettings(r.db.QueryRow(ctx, sqlStr, args...))
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		logger.Error().Err(err).Msg("Error scanning settings row")
		return nil, err
	}

	// First read: create the singleton with defaults.
	return r.create(ctx)
}

func (r *SettingsRepository) create(ctx context.Context) (*models.SiteSettings, error) {
	sqlStr, args, err := r.sb.Insert("site_settings").
		Columns("site_title", "site_description", "footer_text").
		Values(defaultSiteTitle, defaultSiteDescription, defaultFooterText).
		Suffix("RETURNING id, site_title, site_description, footer_text, created_at, updated_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create settings SQL")
		return nil, err
	}

	settings, err := r.scanSettings(r.db.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		logger.Error().Err(err).Msg("Error creating default settings row")
		return nil, err
	}
	logger.Info().Msg("Created default site settings row")
	return settings, nil
}

// Update updates the settings singleton.
func (r *SettingsRepository) Update(ctx context.Context, s *models.SiteSettings) error {
	sqlStr, args, err := r.sb.Update("site_settings").
		Set("site_title", s.SiteTitle).
		Set("site_description", s.SiteDescription).
		Set("footer_text", s.FooterText).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": s.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update settings SQL")
		return err
	}

	cmdTag, err := r.db.Exec(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing update settings query")
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSettingsNotFound
	}
	return nil
}
