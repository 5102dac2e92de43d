package postgres

import (
	"context"
	"errors"

	"github.com/Poovarasan-554/Seamless-Maintenance-Bot/internal/models"
	"github.com/Poovarasan-554/Seamless-Maintenance-Bot/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

// Store verifies credentials against a users table seeded at deploy time.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

func (s *Store) Verify(ctx context.Context, username, password string) (models.User, error) {
	var user models.User
	var passwordHash string
	row := s.pool.QueryRow(ctx, `
		SELECT username, full_name, password_hash
		FROM users
		WHERE username = $1
	`, username)
	if err := row.Scan(&user.Username, &user.FullName, &passwordHash); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, store.ErrInvalidCredentials
		}
		return models.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password)); err != nil {
		return models.User{}, store.ErrInvalidCredentials
	}
	return user, nil
}
