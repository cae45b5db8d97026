package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/NIKHILESHGOWDAUS/AG-Signup-AjayKumar/internal/entities"
)

var (
	// ErrNotFound is returned when no user matches the lookup key.
	ErrNotFound = errors.New("user not found")
	// ErrDuplicate is returned when an insert violates the username or
	// email uniqueness constraint.
	ErrDuplicate = errors.New("duplicate user")
)

// uniqueViolation is the Postgres error code for unique_violation.
const uniqueViolation = "23505"

// UserRepository defines the interface for user database operations
type UserRepository interface {
	Create(username, email, passwordHash string, profileImage *string) (*entities.User, error)
	FindByEmail(email string) (*entities.User, error)
	EmailExists(email string) (bool, error)
	Ping() error
}

type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new user into the database
func (r *userRepository) Create(username, email, passwordHash string, profileImage *string) (*entities.User, error) {
	query := `
		INSERT INTO users (username, email, password, profile_image)
		VALUES ($1, $2, $3, $4)
		RETURNING id, username, email, password, profile_image, created_at
	`

	var user entities.User
	err := r.db.QueryRow(query, username, email, passwordHash, profileImage).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.Password,
		&user.ProfileImage,
		&user.CreatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

// FindByEmail finds a user by email
func (r *userRepository) FindByEmail(email string) (*entities.User, error) {
	query := `
		SELECT id, username, email, password, profile_image, created_at
		FROM users
		WHERE email = $1
	`

	var user entities.User
	err := r.db.QueryRow(query, email).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.Password,
		&user.ProfileImage,
		&user.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return &user, nil
}

// EmailExists reports whether a user with the given email is registered
func (r *userRepository) EmailExists(email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`

	var exists bool
	if err := r.db.QueryRow(query, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}

	return exists, nil
}

// Ping issues a no-op query against the store for liveness checks
func (r *userRepository) Ping() error {
	var one int
	if err := r.db.QueryRow(`SELECT 1`).Scan(&one); err != nil {
		return fmt.Errorf("database unreachable: %w", err)
	}
	return nil
}
