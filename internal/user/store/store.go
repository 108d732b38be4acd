package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/acmecorp/invoiceboard/internal/user"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Create(ctx context.Context, u *user.User) error {
	query := `
		INSERT INTO users (name, email, password)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query, u.Name, u.Email, u.PasswordHash).Scan(&u.ID)
	if err != nil {
		return fmt.Errorf("creating user: %w", err)
	}

	return nil
}

// GetByEmail returns the stored user, or (nil, nil) when no row matches.
func (s *Store) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	query := `
		SELECT id, name, email, password
		FROM users
		WHERE email = $1
	`

	var u user.User

	err := s.db.QueryRowContext(ctx, query, email).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, fmt.Errorf("fetching user: %w", err)
	}

	return &u, nil
}
