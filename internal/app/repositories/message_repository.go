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

// MessageRepository handles database operations for contact messages.
type MessageRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(db *pgxpool.Pool) *MessageRepository {
	return &MessageRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *MessageRepository) selectMessages() squirrel.SelectBuilder {
	return r.sb.Select(
		"id", "name", "email", "subject", "message", "read", "created_at",
	).From("messages")
}

func scanMessage(row pgx.Row) (*models.Message, error) {
	var m models.Message
	err := row.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.Read, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMessageNotFound
		}
		logger.Error().Err(err).Msg("Error scanning message row")
		return nil, err
	}
	return &m, nil
}

// GetAll retrieves all messages, most recent first.
func (r *MessageRepository) GetAll(ctx context.Context) ([]*models.Message, error) {
	sqlStr, args, err := r.selectMessages().OrderBy("created_at DESC").ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all messages SQL")
		return nil, err
	}

	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all messages query")
		return nil, err
	}
	defer rows.Close()

	messages := make([]*models.Message, 0)
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating message rows")
		return nil, fmt.Errorf("database iteration error: %w", err)
	}

	return messages, nil
}

// GetByID retrieves a single message by its ID.
func (r *MessageRepository) GetByID(ctx context.Context, id int64) (*models.Message, error) {
	sqlStr, args, err := r.selectMessages().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get message by ID SQL")
		return nil, err
	}

	return scanMessage(r.db.QueryRow(ctx, sqlStr, args...))
}

// Create inserts a new contact message and returns its ID.
func (r *MessageRepository) Create(ctx context.Context, m *models.Message) (int64, error) {
	sqlStr, args, err := r.sb.Insert("messages").
		Columns("name", "email", "subject", "message", "read").
		Values(m.Name, m.Email, m.Subject, m.Message, false).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create message SQL")
		return 0, err
	}

	var id int64
	if err := r.db.QueryRow(ctx, sqlStr, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create message query")
		return 0, err
	}
	return id, nil
}

// MarkRead flips the read flag for a message.
func (r *MessageRepository) MarkRead(ctx context.Context, id int64) error {
	sqlStr, args, err := r.sb.Update("messages").
		Set("read", true).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building mark message read SQL")
		return err
	}

	cmdTag, err := r.db.Exec(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing mark message read query")
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMessageNotFound
	}
	return nil
}

// Delete deletes a message by its ID.
func (r *MessageRepository) Delete(ctx context.Context, id int64) error {
	sqlStr, args, err := r.sb.Delete("messages").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete message SQL")
		return err
	}

	cmdTag, err := r.db.Exec(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing delete message query")
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMessageNotFound
	}
	return nil
}
