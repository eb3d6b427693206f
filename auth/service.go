// Package auth service layer: signup and login against the users table.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/swiftfix/swiftfix-go/apperror"
	"github.com/swiftfix/swiftfix-go/config"
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint violations.
const pgUniqueViolation = "23505"

// invalidCredentials is the single message used for both a missing username
// and a wrong password, so a caller cannot probe which usernames exist.
const invalidCredentials = "Invalid credentials"

// Service defines the credential operations exposed to the HTTP layer.
type Service interface {
	// Signup creates a new credential record. It fails with a conflict error
	// when the username is already taken.
	Signup(ctx context.Context, req SignupRequest) error
	// Login verifies a username/password pair. A missing user and a hash
	// mismatch are indistinguishable to the caller.
	Login(ctx context.Context, req LoginRequest) error
}

// pgService is the pgx-backed implementation of Service.
type pgService struct {
	db  *pgxpool.Pool
	cfg config.AuthConfig
}

// NewService creates the credential service backed by the given pool.
func NewService(db *pgxpool.Pool, cfg config.AuthConfig) Service {
	return &pgService{db: db, cfg: cfg}
}

// Signup hashes the password with the configured cost and inserts the record.
// The unique index on username is the source of truth for conflicts: no
// read-then-write race, the insert either lands or reports 23505.
func (s *pgService) Signup(ctx context.Context, req SignupRequest) error {
	hashed, err := hashPassword(req.Password, s.cfg.BcryptCost)
	if err != nil {
		return apperror.NewInternalError("Server error", fmt.Errorf("failed to hash password: %w", err))
	}

	query := `INSERT INTO users (username, password, phone_number, address)
              VALUES ($1, $2, $3, $4)`
	_, err = s.db.Exec(ctx, query, req.Username, hashed, req.PhoneNumber, req.Address)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.NewConflictError("Username already exists", nil)
		}
		log.Printf("Error during signup: %v", err)
		return apperror.NewDatabaseError("Server error", err)
	}
	return nil
}

// Login fetches the stored hash by username and compares it to the supplied
// password.
func (s *pgService) Login(ctx context.Context, req LoginRequest) error {
	var hashed string
	query := `SELECT password FROM users WHERE username = $1`
	err := s.db.QueryRow(ctx, query, req.Username).Scan(&hashed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperror.NewAuthError(invalidCredentials, nil)
		}
		log.Printf("Error during login: %v", err)
		return apperror.NewDatabaseError("Server error", err)
	}

	if err := verifyPassword(hashed, req.Password); err != nil {
		return apperror.NewAuthError(invalidCredentials, nil)
	}
	return nil
}

// hashPassword produces a salted bcrypt hash at the given cost.
func hashPassword(password string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// verifyPassword compares a stored bcrypt hash with a candidate password.
func verifyPassword(hashed, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password))
}
