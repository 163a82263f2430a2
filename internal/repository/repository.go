package repository

import (
	"context"
	"errors"

	"github.com/kranthi-07/Dab/internal/domain"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrDuplicateUser   = errors.New("user already exists")
	ErrVersionConflict = errors.New("user document version conflict")
)

// UserRepository defines the interface for user aggregate persistence.
// Consumers define this interface, not the MongoDB implementation.
type UserRepository interface {
	Create(ctx context.Context, account *domain.UserAccount) error
	FindByID(ctx context.Context, id string) (*domain.UserAccount, error)
	FindByMobile(ctx context.Context, mobile string) (*domain.UserAccount, error)
	// Update replaces the stored document only when the caller's Version
	// matches; a concurrent writer surfaces as ErrVersionConflict.
	Update(ctx context.Context, account *domain.UserAccount) error
}
