package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/abcmusiclibrary/backend/internal/apperrors"
	"github.com/abcmusiclibrary/backend/internal/models"
	"github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
)

// mysqlDuplicateEntry is the MySQL error number for a unique key violation
const mysqlDuplicateEntry = 1062

// userRepository implements data access for the users table
type userRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB, logger *zap.Logger) *userRepository {
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a new user. Email uniqueness is enforced by the unique
// key on the table; a concurrent duplicate registration surfaces as a
// validation error, never a second user.
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, email, password_hash, full_name, role, avatar_url, created_at, is_active)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		user.ID,
		user.Email,
		user.PasswordHash,
		user.FullName,
		user.Role,
		user.AvatarURL,
		user.CreatedAt,
		user.IsActive,
	)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
			return apperrors.Validationf("email already registered")
		}
		r.logger.Error("failed to create user", zap.Error(err))
		return apperrors.Upstream(fmt.Errorf("failed to create user: %w", err))
	}

	return nil
}

// ExistsByEmail checks if a user exists with the given email
func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT * FROM users WHERE email = ?)`

	var exists bool
	err := r.db.QueryRowContext(ctx, query, email).Scan(&exists)
	if err != nil {
		r.logger.Error("failed to check email existence", zap.Error(err), zap.String("email", email))
		return false, apperrors.Upstream(fmt.Errorf("failed to check email existence: %w", err))
	}

	return exists, nil
}

// GetByEmail retrieves a user by email
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, email, password_hash, full_name, role, avatar_url, created_at, is_active
		FROM users
		WHERE email = ?
		LIMIT 1
	`

	return r.scanUser(r.db.QueryRowContext(ctx, query, email))
}

// GetByID retrieves a user by ID
func (r *userRepository) GetByID(ctx context.Context, userID string) (*models.User, error) {
	query := `
		SELECT id, email, password_hash, full_name, role, avatar_url, created_at, is_active
		FROM users
		WHERE id = ?
		LIMIT 1
	`

	return r.scanUser(r.db.QueryRowContext(ctx, query, userID))
}

func (r *userRepository) scanUser(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.FullName,
		&user.Role,
		&user.AvatarURL,
		&user.CreatedAt,
		&user.IsActive,
	)

	if err == sql.ErrNoRows {
		return nil, apperrors.NotFoundf("user not found")
	}
	if err != nil {
		r.logger.Error("failed to get user", zap.Error(err))
		return nil, apperrors.Upstream(fmt.Errorf("failed to get user: %w", err))
	}

	return user, nil
}

// UpdateProfile updates only the provided fields. Role is deliberately not
// part of a profile update.
func (r *userRepository) UpdateProfile(ctx context.Context, userID string, fullName, avatarURL *string) error {
	var setClauses []string
	var args []any

	if fullName != nil {
		setClauses = append(setClauses, "full_name = ?")
		args = append(args, *fullName)
	}
	if avatarURL != nil {
		setClauses = append(setClauses, "avatar_url = ?")
		args = append(args, *avatarURL)
	}

	if len(setClauses) == 0 {
		return nil
	}

	query := fmt.Sprintf("UPDATE users SET %s WHERE id = ?", strings.Join(setClauses, ", "))
	args = append(args, userID)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("failed to update profile", zap.Error(err), zap.String("userId", userID))
		return apperrors.Upstream(fmt.Errorf("failed to update profile: %w", err))
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Upstream(fmt.Errorf("failed to get rows affected: %w", err))
	}
	if rowsAffected == 0 {
		// Possible when the new values equal the old ones; verify the row exists
		if _, err := r.GetByID(ctx, userID); err != nil {
			return err
		}
	}

	return nil
}
