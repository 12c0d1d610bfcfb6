package ports

import (
	"context"

	"github.com/sshuster/job-hero-dashboard/internal/core/domain"
)

// ListingRepository defines the interface for listing persistence. All list
// operations return results in a stable order within a single snapshot read.
type ListingRepository interface {
	Create(ctx context.Context, l *domain.Listing) (*domain.Listing, error)
	FindByID(ctx context.Context, id string) (*domain.Listing, error)

	// Update replaces the stored document as one atomic write.
	Update(ctx context.Context, l *domain.Listing) error

	// Delete removes the listing permanently. No tombstone is kept.
	Delete(ctx context.Context, id string) error

	// ListByStatuses returns every listing whose status is in the set.
	ListByStatuses(ctx context.Context, statuses []domain.ListingStatus) ([]*domain.Listing, error)

	// ListByOwner returns every listing owned by ownerID, regardless of status.
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Listing, error)
}
