package ports

import (
	"context"

	"github.com/sshuster/job-hero-dashboard/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, name, email, password string) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)

	// CurrentUser resolves an opaque bearer token to the user it identifies.
	CurrentUser(ctx context.Context, token string) (*domain.User, error)
}
