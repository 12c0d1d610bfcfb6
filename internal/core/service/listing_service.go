package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/sshuster/job-hero-dashboard/internal/core/domain"
	"github.com/sshuster/job-hero-dashboard/internal/core/ports"
)

// ListingService implements ownership-checked CRUD and the per-owner stats
// engine for the active variant profile.
type ListingService struct {
	repo    ports.ListingRepository
	profile *domain.Profile
	log     zerolog.Logger

	// now is the clock used for the immutable posted date. Overridable in
	// tests.
	now func() time.Time
}

func NewListingService(repo ports.ListingRepository, profile *domain.Profile, log zerolog.Logger) *ListingService {
	return &ListingService{repo: repo, profile: profile, log: log, now: time.Now}
}

// Create validates the profile's required fields, stamps ownership and the
// posted date, and persists the new listing. The owner is always the acting
// identity; a client can never create a listing on someone else's behalf.
func (s *ListingService) Create(ctx context.Context, actor domain.Actor, in ports.CreateListingInput) (*domain.Listing, error) {
	if err := s.validateRequired(in); err != nil {
		return nil, err
	}

	status := domain.ListingStatus(in.Status)
	if !s.profile.ValidStatus(status) {
		return nil, &domain.ValidationError{Field: "status", Reason: "must be one of the configured statuses"}
	}

	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}

	l := &domain.Listing{
		OwnerID:        actor.ID,
		Title:          in.Title,
		Description:    in.Description,
		Category:       in.Category,
		Status:         status,
		Company:        in.Company,
		Location:       in.Location,
		Salary:         in.Salary,
		JobType:        in.JobType,
		Price:          in.Price,
		Budget:         in.Budget,
		LeadsCount:     in.LeadsCount,
		ResponsesCount: in.ResponsesCount,
		Tags:           tags,
		ImageURL:       in.ImageURL,
		ContactEmail:   in.ContactEmail,
		ContactPhone:   in.ContactPhone,
		PostedDate:     s.now().UTC().Format("2006-01-02"),
	}

	if s.profile.HasRate {
		l.RecomputeRate()
	}

	created, err := s.repo.Create(ctx, l)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create listing")
		return nil, err
	}

	s.log.Info().Str("listing_id", created.ID).Str("owner_id", actor.ID).Msg("listing created")
	return created, nil
}

// Get retrieves a single listing by id. Drafts are visible only to their
// owner or an admin; publicly visible listings to anyone.
func (s *ListingService) Get(ctx context.Context, actor *domain.Actor, id string) (*domain.Listing, error) {
	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanRead(s.profile, actor, l) {
		return nil, domain.ErrForbidden
	}
	return l, nil
}

// Update applies a partial update. Order matters: existence is verified
// first, then ownership, then the write. Fields absent from the input are
// left byte-identical; the owner, id, and posted date are immutable
// regardless of payload.
func (s *ListingService) Update(ctx context.Context, actor domain.Actor, id string, in ports.UpdateListingInput) (*domain.Listing, error) {
	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !domain.CanMutate(actor, l) {
		return nil, domain.ErrForbidden
	}

	if in.Status != nil {
		status := domain.ListingStatus(*in.Status)
		if !s.profile.ValidStatus(status) {
			return nil, &domain.ValidationError{Field: "status", Reason: "must be one of the configured statuses"}
		}
		l.Status = status
	}

	applyString(&l.Title, in.Title)
	applyString(&l.Description, in.Description)
	applyString(&l.Category, in.Category)
	applyString(&l.Company, in.Company)
	applyString(&l.Location, in.Location)
	applyString(&l.Salary, in.Salary)
	applyString(&l.JobType, in.JobType)
	applyString(&l.ImageURL, in.ImageURL)
	applyString(&l.ContactEmail, in.ContactEmail)
	applyString(&l.ContactPhone, in.ContactPhone)

	if in.Price != nil {
		l.Price = *in.Price
	}
	if in.Budget != nil {
		l.Budget = *in.Budget
	}
	if in.LeadsCount != nil {
		l.LeadsCount = *in.LeadsCount
	}
	if in.ResponsesCount != nil {
		l.ResponsesCount = *in.ResponsesCount
	}
	if in.Tags != nil {
		tags := *in.Tags
		if tags == nil {
			tags = []string{}
		}
		l.Tags = tags
	}

	// The derived rate is never stale relative to the metrics just written.
	if s.profile.HasRate {
		l.RecomputeRate()
	}

	if err := s.repo.Update(ctx, l); err != nil {
		s.log.Error().Err(err).Str("listing_id", id).Msg("failed to update listing")
		return nil, err
	}

	s.log.Info().Str("listing_id", id).Str("actor_id", actor.ID).Msg("listing updated")
	return l, nil
}

// Delete removes a listing permanently, under the same existence-then-
// ownership ordering as Update.
func (s *ListingService) Delete(ctx context.Context, actor domain.Actor, id string) error {
	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if !domain.CanMutate(actor, l) {
		return domain.ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Error().Err(err).Str("listing_id", id).Msg("failed to delete listing")
		return err
	}

	s.log.Info().Str("listing_id", id).Str("actor_id", actor.ID).Msg("listing deleted")
	return nil
}

// ListPublic returns the anonymous global collection, filtered to the
// profile's publicly visible statuses.
func (s *ListingService) ListPublic(ctx context.Context) ([]*domain.Listing, error) {
	return s.repo.ListByStatuses(ctx, s.profile.Public)
}

// ListByOwner returns everything the owner has, drafts included.
func (s *ListingService) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Listing, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// Stats aggregates the owner's listings at request time. The report always
// reflects exactly what ListByOwner would return at the same instant.
func (s *ListingService) Stats(ctx context.Context, ownerID string) (*domain.StatsReport, error) {
	listings, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return domain.ComputeStats(s.profile, listings), nil
}

func (s *ListingService) validateRequired(in ports.CreateListingInput) error {
	for _, field := range s.profile.Required {
		switch field {
		case "title":
			if in.Title == "" {
				return domain.NewValidationError("title")
			}
		case "description":
			if in.Description == "" {
				return domain.NewValidationError("description")
			}
		case "category":
			if in.Category == "" {
				return domain.NewValidationError("category")
			}
		case "status":
			if in.Status == "" {
				return domain.NewValidationError("status")
			}
		case "company":
			if in.Company == "" {
				return domain.NewValidationError("company")
			}
		case "location":
			if in.Location == "" {
				return domain.NewValidationError("location")
			}
		case "job_type":
			if in.JobType == "" {
				return domain.NewValidationError("job_type")
			}
		case "price":
			if in.Price <= 0 {
				return &domain.ValidationError{Field: "price", Reason: "must be greater than zero"}
			}
		}
	}
	return nil
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
