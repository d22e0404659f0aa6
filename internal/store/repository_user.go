package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jenca-cloud/authentication/internal/logger"
	"github.com/jenca-cloud/authentication/models"
)

// userRepository is the SQL-backed implementation of [UserStore] used by the
// storage server. It owns the "users" table: one row per email, the email
// column being the primary key.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewUserRepository constructs a [UserStore] backed by the provided database
// connection and logger.
func NewUserRepository(db *DB, log *logger.Logger) UserStore {
	log.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: log,
	}
}

// GetUserByEmail retrieves the record whose email matches exactly.
//
// Error handling:
//   - no matching row → [ErrUserNotFound]
//   - any driver-level error → wrapped as unexpected DB error
func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Select("email", "password_hash").
		From("users").
		Where("email = ?", email).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("error building select query: %w", err)
	}

	var user models.User
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&user.Email, &user.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("email", email).Msg("user lookup failed")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// ListUsers returns every stored user ordered by email.
func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Select("email", "password_hash").
		From("users").
		OrderBy("email").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building select query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Msg("listing users failed")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var user models.User
		if err = rows.Scan(&user.Email, &user.PasswordHash); err != nil {
			log.Err(err).Msg("scanning user row failed")
			return nil, fmt.Errorf("error scanning user row: %w", err)
		}
		users = append(users, user)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}

	return users, nil
}

// CreateUser inserts a new record.
//
// Error handling:
//   - uniqueness violation on the email column → [ErrUserAlreadyExists]
//   - any other driver-level error → wrapped as unexpected DB error
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Insert("users").
		Columns("email", "password_hash").
		Values(user.Email, user.PasswordHash).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("error building insert query: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return models.User{}, ErrUserAlreadyExists
		}
		log.Err(err).Str("email", user.Email).Msg("user creation failed")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// DeleteUser removes the record for email.
//
// Error handling:
//   - zero rows affected → [ErrUserNotFound]
//   - any driver-level error → wrapped as unexpected DB error
func (r *userRepository) DeleteUser(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Delete("users").
		Where("email = ?", email).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building delete query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("email", email).Msg("user deletion failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}
