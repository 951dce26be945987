package users

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/mattn/go-sqlite3"
)

// ErrDuplicateEmail is returned when a registration email already exists.
// Policy: duplicate registrations are rejected, never upserted, and the
// failed insert leaves the store untouched.
var ErrDuplicateEmail = errors.New("email already registered")

// Repository provides access to the captive portal users store
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new users repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// EnableWAL enables Write-Ahead Logging mode for better concurrent performance
func (r *Repository) EnableWAL() error {
	_, err := r.db.Exec("PRAGMA journal_mode=WAL")
	return err
}

// CreateUser inserts a registration row. The UNIQUE index on email enforces
// the reject-duplicate policy; constraint violations are translated to
// ErrDuplicateEmail.
func (r *Repository) CreateUser(u CaptivePortalUser) (*User, error) {
	email := strings.ToLower(strings.TrimSpace(u.Email))

	result, err := r.db.Exec(`
		INSERT INTO captive_portal_users (full_name, email, phone, marketing_opt_in)
		VALUES (?, ?, ?, ?)
	`, strings.TrimSpace(u.FullName), email, strings.TrimSpace(u.Phone), u.MarketingOptIn)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	id, _ := result.LastInsertId()
	return r.GetUserByID(id)
}

// GetUserByID returns a user by ID
func (r *Repository) GetUserByID(id int64) (*User, error) {
	var u User
	err := r.db.QueryRow(`
		SELECT id, full_name, email, phone, marketing_opt_in, created_at
		FROM captive_portal_users WHERE id = ?
	`, id).Scan(&u.ID, &u.FullName, &u.Email, &u.Phone, &u.MarketingOptIn, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetUserByEmail returns a user by email, or nil when no row matches
func (r *Repository) GetUserByEmail(email string) (*User, error) {
	var u User
	err := r.db.QueryRow(`
		SELECT id, full_name, email, phone, marketing_opt_in, created_at
		FROM captive_portal_users WHERE email = ?
	`, strings.ToLower(strings.TrimSpace(email))).Scan(
		&u.ID, &u.FullName, &u.Email, &u.Phone, &u.MarketingOptIn, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// CountUsers returns the number of stored registrations
func (r *Repository) CountUsers() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM captive_portal_users").Scan(&count)
	return count, err
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}
