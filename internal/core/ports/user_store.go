package ports

import (
	"context"

	"github.com/cityweather/services/internal/core/domain"
)

// UserStore persists user accounts.
type UserStore interface {
	// FindByUsername returns domain.ErrUserNotFound when no record matches.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// Create stores a new record, returning domain.ErrUserExists when the
	// username is already taken.
	Create(ctx context.Context, user domain.User) error
}
