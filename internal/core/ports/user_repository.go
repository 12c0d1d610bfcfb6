package ports

import (
	"context"

	"github.com/sshuster/job-hero-dashboard/internal/core/domain"
)

// UserRepository defines the interface for identity persistence.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)

	// EnsureAdmin idempotently creates the fixed administrator account.
	// Calling it when the account already exists is a no-op.
	EnsureAdmin(ctx context.Context, user *domain.User) error
}
