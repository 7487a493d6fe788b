package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oalia/scholarsite/internal/app/models"
	"github.com/oalia/scholarsite/internal/pkg/apperrors"
	"github.com/oalia/scholarsite/internal/pkg/dberrors"
	"github.com/oalia/scholarsite/internal/pkg/logger"
)

// UserRepository handles database operations for user accounts.
type UserRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *UserRepository) selectUsers() squirrel.SelectBuilder {
	return r.sb.Select(
		"id", "email", "password", "first_name", "last_name", "title",
		"role", "status", "last_login_at", "created_at", "updated_at",
	).From("users")
}

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID, &u.Email, &u.Password, &u.FirstName, &u.LastName, &u.Title,
		&u.Role, &u.Status, &u.LastLoginAt, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Msg("Error scanning user row")
		return nil, err
	}
	return &u, nil
}

// GetAll retrieves all user records ordered by creation time.
func (r *UserRepository) GetAll(ctx context.Context) ([]*models.User, error) {
	sqlStr, args, err := r.selectUsers().OrderBy("created_at ASC").ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all users SQL")
		return nil, err
	}

	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all users query")
		return nil, err
	}
	defer rows.Close()

	users := make([]*models.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating user rows")
		return nil, fmt.Errorf("database iteration error: %w", err)
	}

	return users, nil
}

// GetByID retrieves a user by ID.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	sqlStr, args, err := r.selectUsers().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get user by ID SQL")
		return nil, err
	}

	return scanUser(r.db.QueryRow(ctx, sqlStr, args...))
}

// GetByEmail retrieves a user by email.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	sqlStr, args, err := r.selectUsers().Where(squirrel.Eq{"email": email}).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get user by email SQL")
		return nil, err
	}

	return scanUser(r.db.QueryRow(ctx, sqlStr, args...))
}

// Create inserts a new user and returns its ID.
func (r *UserRepository) Create(ctx context.Context, u *models.User) (int64, error) {
	sqlStr, args, err := r.sb.Insert("users").
		Columns("email", "password", "first_name", "last_name", "title", "role", "status").
		Values(u.Email, u.Password, u.FirstName, u.LastName, u.Title, u.Role, u.Status).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create user SQL")
		return 0, err
	}

	var id int64
	if err := r.db.QueryRow(ctx, sqlStr, args...).Scan(&id); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Str("email", u.Email).Msg("Error executing create user query")
		return 0, err
	}
	return id, nil
}

// Update updates profile fields, role and status of an existing user.
func (r *UserRepository) Update(ctx context.Context, u *models.User) error {
	sqlStr, args, err := r.sb.Update("users").
		Set("first_name", u.FirstName).
		Set("last_name", u.LastName).
		Set("title", u.Title).
		Set("role", u.Role).
		Set("status", u.Status).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": u.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update user SQL")
		return err
	}

	cmdTag, err := r.db.Exec(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing update user query")
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// UpdateLastLogin records a successful sign-in timestamp.
func (r *UserRepository) UpdateLastLogin(ctx context.Context, id int64, t time.Time) error {
	sqlStr, args, err := r.sb.Update("users").
		Set("last_login_at", t).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update last login SQL")
		return err
	}

	if _, err := r.db.Exec(ctx, sqlStr, args...); err != nil {
		logger.Error().Err(err).Int64("userId", id).Msg("Error updating last login")
		return err
	}
	return nil
}

// Delete deletes a user by ID.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	sqlStr, args, err := r.sb.Delete("users").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete user SQL")
		return err
	}

	cmdTag, err := r.db.Exec(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing delete user query")
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}
