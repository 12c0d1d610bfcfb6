package ports

import (
	"context"

	"github.com/sshuster/job-hero-dashboard/internal/core/domain"
)

// CreateListingInput carries all data needed to create a listing. The owner
// and the posted date are never part of the input; they come from the acting
// identity and the server clock.
type CreateListingInput struct {
	Title       string
	Description string
	Category    string
	Status      string

	Company  string
	Location string
	Salary   string
	JobType  string

	Price          float64
	Budget         float64
	LeadsCount     int
	ResponsesCount int

	Tags []string

	ImageURL     string
	ContactEmail string
	ContactPhone string
}

// UpdateListingInput is a partial update: nil means "leave the stored value
// untouched", a non-nil pointer overwrites it, including explicit clears.
// The id, owner, and posted date have no corresponding fields; they are
// immutable by construction.
type UpdateListingInput struct {
	Title       *string
	Description *string
	Category    *string
	Status      *string

	Company  *string
	Location *string
	Salary   *string
	JobType  *string

	Price          *float64
	Budget         *float64
	LeadsCount     *int
	ResponsesCount *int

	Tags *[]string

	ImageURL     *string
	ContactEmail *string
	ContactPhone *string
}

type ListingService interface {
	Create(ctx context.Context, actor domain.Actor, in CreateListingInput) (*domain.Listing, error)
	Get(ctx context.Context, actor *domain.Actor, id string) (*domain.Listing, error)
	Update(ctx context.Context, actor domain.Actor, id string, in UpdateListingInput) (*domain.Listing, error)
	Delete(ctx context.Context, actor domain.Actor, id string) error

	ListPublic(ctx context.Context) ([]*domain.Listing, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Listing, error)

	// Stats aggregates the owner's current listings; never cached.
	Stats(ctx context.Context, ownerID string) (*domain.StatsReport, error)
}
