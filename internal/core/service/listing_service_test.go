package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/sshuster/job-hero-dashboard/internal/core/domain"
	"github.com/sshuster/job-hero-dashboard/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubListingRepo struct {
	byID      map[string]*domain.Listing
	order     []string
	nextID    int
	updateErr error
}

func newStubListingRepo() *stubListingRepo {
	return &stubListingRepo{byID: make(map[string]*domain.Listing)}
}

func cloneListing(l *domain.Listing) *domain.Listing {
	clone := *l
	if l.ConversionRate != nil {
		r := *l.ConversionRate
		clone.ConversionRate = &r
	}
	clone.Tags = append([]string{}, l.Tags...)
	return &clone
}

func (r *stubListingRepo) Create(_ context.Context, l *domain.Listing) (*domain.Listing, error) {
	clone := cloneListing(l)
	r.nextID++
	clone.ID = fmt.Sprintf("l%d", r.nextID)
	r.byID[clone.ID] = cloneListing(clone)
	r.order = append(r.order, clone.ID)
	return cloneListing(clone), nil
}

func (r *stubListingRepo) FindByID(_ context.Context, id string) (*domain.Listing, error) {
	l, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrListingNotFound
	}
	return cloneListing(l), nil
}

func (r *stubListingRepo) Update(_ context.Context, l *domain.Listing) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.byID[l.ID]; !ok {
		return domain.ErrListingNotFound
	}
	r.byID[l.ID] = cloneListing(l)
	return nil
}

func (r *stubListingRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrListingNotFound
	}
	delete(r.byID, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// ListByStatuses applies the same filter the real Mongo repo would use.
func (r *stubListingRepo) ListByStatuses(_ context.Context, statuses []domain.ListingStatus) ([]*domain.Listing, error) {
	var matched []*domain.Listing
	for _, id := range r.order {
		l := r.byID[id]
		for _, s := range statuses {
			if l.Status == s {
				matched = append(matched, cloneListing(l))
				break
			}
		}
	}
	return matched, nil
}

func (r *stubListingRepo) ListByOwner(_ context.Context, ownerID string) ([]*domain.Listing, error) {
	var matched []*domain.Listing
	for _, id := range r.order {
		if l := r.byID[id]; l.OwnerID == ownerID {
			matched = append(matched, cloneListing(l))
		}
	}
	return matched, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var (
	owner    = domain.Actor{ID: "userA", Role: domain.RoleUser}
	stranger = domain.Actor{ID: "userB", Role: domain.RoleUser}
	admin    = domain.Actor{ID: "root", Role: domain.RoleAdmin}
)

func newTestListingService(repo ports.ListingRepository, profile *domain.Profile) *ListingService {
	svc := NewListingService(repo, profile, zerolog.Nop())
	svc.now = func() time.Time {
		return time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	}
	return svc
}

func campaignInput() ports.CreateListingInput {
	return ports.CreateListingInput{
		Title:       "LinkedIn Sales Outreach",
		Description: "Contacting decision makers.",
		Category:    "LinkedIn",
		Status:      "active",
		Budget:      5000,
		Tags:        []string{"Tech", "SaaS"},
	}
}

func jobInput() ports.CreateListingInput {
	return ports.CreateListingInput{
		Title:       "Frontend Developer",
		Company:     "Tech Solutions Inc.",
		Location:    "San Francisco, CA",
		Description: "React and TypeScript work.",
		Category:    "Development",
		JobType:     "Full-time",
		Status:      "active",
	}
}

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

func TestCreate_SetsOwnerAndDate(t *testing.T) {
	repo := newStubListingRepo()
	svc := newTestListingService(repo, &domain.Campaigns)

	l, err := svc.Create(context.Background(), owner, campaignInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if l.ID == "" {
		t.Fatalf("expected store-assigned id")
	}
	if l.OwnerID != owner.ID {
		t.Fatalf("expected owner %q, got %q", owner.ID, l.OwnerID)
	}
	if l.PostedDate != "2024-03-15" {
		t.Fatalf("expected posted date 2024-03-15, got %q", l.PostedDate)
	}
}

func TestCreate_RequiredFieldMissing(t *testing.T) {
	svc := newTestListingService(newStubListingRepo(), &domain.Jobs)

	in := jobInput()
	in.Company = ""
	_, err := svc.Create(context.Background(), owner, in)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	var ve *domain.ValidationError
	if !errors.As(err, &ve) || ve.Field != "company" {
		t.Fatalf("expected failing field company, got %v", err)
	}
}

func TestCreate_InvalidStatusRejected(t *testing.T) {
	svc := newTestListingService(newStubListingRepo(), &domain.Jobs)

	in := jobInput()
	in.Status = "sold" // marketplace status, not a job status
	if _, err := svc.Create(context.Background(), owner, in); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for foreign status, got %v", err)
	}
}

func TestCreate_MarketplaceRequiresPositivePrice(t *testing.T) {
	svc := newTestListingService(newStubListingRepo(), &domain.Marketplace)

	in := ports.CreateListingInput{
		Title:       "Vintage chair",
		Description: "Good condition.",
		Location:    "Austin, TX",
		Category:    "Furniture",
		Status:      "active",
		Price:       0,
	}
	if _, err := svc.Create(context.Background(), owner, in); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for zero price, got %v", err)
	}
}

func TestCreate_OmittedTagsDefaultToEmptyList(t *testing.T) {
	svc := newTestListingService(newStubListingRepo(), &domain.Campaigns)

	in := campaignInput()
	in.Tags = nil
	l, err := svc.Create(context.Background(), owner, in)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if l.Tags == nil || len(l.Tags) != 0 {
		t.Fatalf("expected empty tag list, got %v", l.Tags)
	}
}

func TestCreate_ComputesRate(t *testing.T) {
	svc := newTestListingService(newStubListingRepo(), &domain.Campaigns)

	in := campaignInput()
	in.LeadsCount = 200
	in.ResponsesCount = 40
	l, err := svc.Create(context.Background(), owner, in)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if l.ConversionRate == nil || math.Abs(*l.ConversionRate-20.0) > 1e-9 {
		t.Fatalf("expected rate 20.0, got %v", l.ConversionRate)
	}
}

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestUpdate_PartialLeavesOtherFieldsUntouched(t *testing.T) {
	repo := newStubListingRepo()
	svc := newTestListingService(repo, &domain.Campaigns)

	created, err := svc.Create(context.Background(), owner, campaignInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.Update(context.Background(), owner, created.ID, ports.UpdateListingInput{
		Title: strPtr("Renamed Campaign"),
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if updated.Title != "Renamed Campaign" {
		t.Fatalf("title not updated: %q", updated.Title)
	}
	// Everything else must be byte-identical to the pre-update state.
	created.Title = updated.Title
	if !reflect.DeepEqual(created, updated) {
		t.Fatalf("unexpected side effects:\n pre: %+v\npost: %+v", created, updated)
	}
}

func TestUpdate_ExplicitClearDiffersFromOmitted(t *testing.T) {
	repo := newStubListingRepo()
	svc := newTestListingService(repo, &domain.Campaigns)

	in := campaignInput()
	in.ContactEmail = "sales@corp.example"
	created, _ := svc.Create(context.Background(), owner, in)

	// Omitted: untouched.
	l, err := svc.Update(context.Background(), owner, created.ID, ports.UpdateListingInput{Title: strPtr("x")})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if l.ContactEmail != "sales@corp.example" {
		t.Fatalf("omitted field was reset: %q", l.ContactEmail)
	}

	// Explicit empty string: cleared.
	l, err = svc.Update(context.Background(), owner, created.ID, ports.UpdateListingInput{ContactEmail: strPtr("")})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if l.ContactEmail != "" {
		t.Fatalf("explicit clear ignored: %q", l.ContactEmail)
	}
}

func TestUpdate_RecomputesRate(t *testing.T) {
	repo := newStubListingRepo()
	svc := newTestListingService(repo, &domain.Campaigns)

	in := campaignInput()
	in.LeadsCount = 200
	in.ResponsesCount = 40
	created, _ := svc.Create(context.Background(), owner, in)

	// Zeroing the denominator unsets the rate; it is not an error.
	updated, err := svc.Update(context.Background(), owner, created.ID, ports.UpdateListingInput{
		LeadsCount: intPtr(0),
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.ConversionRate != nil {
		t.Fatalf("expected rate unset, got %v", *updated.ConversionRate)
	}

	updated, err = svc.Update(context.Background(), owner, created.ID, ports.UpdateListingInput{
		LeadsCount: intPtr(80),
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.ConversionRate == nil || math.Abs(*updated.ConversionRate-50.0) > 1e-9 {
		t.Fatalf("expected rate 50.0, got %v", updated.ConversionRate)
	}
}

func TestUpdate_InvalidStatusRejected(t *testing.T) {
	repo := newStubListingRepo()
	svc := newTestListingService(repo, &domain.Campaigns)

	created, _ := svc.Create(context.Background(), owner, campaignInput())

	_, err := svc.Update(context.Background(), owner, created.ID, ports.UpdateListingInput{
		Status: strPtr("sold"),
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	var ve *domain.ValidationError
	if !errors.As(err, &ve) || ve.Field != "status" {
		t.Fatalf("expected failing field status, got %v", err)
	}

	got, err := svc.Get(context.Background(), &owner, created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Status != domain.StatusActive {
		t.Fatalf("rejected update must not write, status is %s", got.Status)
	}
}

func TestUpdate_NotFoundPrecedesForbidden(t *testing.T) {
	repo := newStubListingRepo()
	svc := newTestListingService(repo, &domain.Campaigns)

	// An absent id yields NotFound for everyone, stranger included.
	_, err := svc.Update(context.Background(), stranger, "missing", ports.UpdateListingInput{Title: strPtr("x")})
	if !errors.Is(err, domain.ErrListingNotFound) {
		t.Fatalf("expected ErrListingNotFound, got %v", err)
	}
}

func TestUpdate_StrangerForbidden(t *testing.T) {
	repo := newStubListingRepo()
	svc := newTestListingService(repo, &domain.Campaigns)

	created, _ := svc.Create(context.Background(), owner, campaignInput())

	_, err := svc.Update(context.Background(), stranger, created.ID, ports.UpdateListingInput{Title: strPtr("x")})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestUpdate_AdminBypassesOwnership(t *testing.T) {
	repo := newStubListingRepo()
	svc := newTestListingService(repo, &domain.Campaigns)

	in := campaignInput()
	in.Status = "draft"
	created, _ := svc.Create(context.Background(), owner, in)

	l, err := svc.Update(context.Background(), admin, created.ID, ports.UpdateListingInput{Status: strPtr("active")})
	if err != nil {
		t.Fatalf("admin update failed: %v", err)
	}
	if l.Status != domain.StatusActive {
		t.Fatalf("expected status active, got %s", l.Status)
	}
}

func TestUpdate_OwnerAndDateImmutable(t *testing.T) {
	repo := newStubListingRepo()
	svc := newTestListingService(repo, &domain.Campaigns)

	created, _ := svc.Create(context.Background(), owner, campaignInput())

	updated, err := svc.Update(context.Background(), admin, created.ID, ports.UpdateListingInput{Title: strPtr("x")})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.OwnerID != owner.ID {
		t.Fatalf("owner changed: %q", updated.OwnerID)
	}
	if updated.PostedDate != created.PostedDate {
		t.Fatalf("posted date changed: %q", updated.PostedDate)
	}
	if updated.ID != created.ID {
		t.Fatalf("id changed: %q", updated.ID)
	}
}

func TestUpdate_TagsRoundTrip(t *testing.T) {
	repo := newStubListingRepo()
	svc := newTestListingService(repo, &domain.Campaigns)

	created, _ := svc.Create(context.Background(), owner, campaignInput())

	tags := []string{"x", "y"}
	if _, err := svc.Update(context.Background(), owner, created.ID, ports.UpdateListingInput{Tags: &tags}); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	got, err := svc.Get(context.Background(), nil, created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !reflect.DeepEqual(got.Tags, tags) {
		t.Fatalf("expected tags %v, got %v", tags, got.Tags)
	}
}

// ---------------------------------------------------------------------------
// Delete / Get
// ---------------------------------------------------------------------------

func TestDelete_OrderingAndOutcome(t *testing.T) {
	repo := newStubListingRepo()
	svc := newTestListingService(repo, &domain.Campaigns)

	created, _ := svc.Create(context.Background(), owner, campaignInput())

	if err := svc.Delete(context.Background(), stranger, created.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := svc.Delete(context.Background(), owner, created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := svc.Delete(context.Background(), owner, created.ID); !errors.Is(err, domain.ErrListingNotFound) {
		t.Fatalf("expected ErrListingNotFound after delete, got %v", err)
	}
}

func TestGet_DraftHiddenFromStrangers(t *testing.T) {
	repo := newStubListingRepo()
	svc := newTestListingService(repo, &domain.Campaigns)

	in := campaignInput()
	in.Status = "draft"
	created, _ := svc.Create(context.Background(), owner, in)

	if _, err := svc.Get(context.Background(), nil, created.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for anonymous, got %v", err)
	}
	if _, err := svc.Get(context.Background(), &stranger, created.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for stranger, got %v", err)
	}
	if _, err := svc.Get(context.Background(), &owner, created.ID); err != nil {
		t.Fatalf("owner should see own draft: %v", err)
	}
	if _, err := svc.Get(context.Background(), &admin, created.ID); err != nil {
		t.Fatalf("admin should see any draft: %v", err)
	}
}

// ---------------------------------------------------------------------------
// Lists and stats
// ---------------------------------------------------------------------------

func TestListPublic_ExcludesDrafts(t *testing.T) {
	repo := newStubListingRepo()
	svc := newTestListingService(repo, &domain.Campaigns)

	active := campaignInput()
	draft := campaignInput()
	draft.Status = "draft"
	_, _ = svc.Create(context.Background(), owner, active)
	d, _ := svc.Create(context.Background(), owner, draft)

	public, err := svc.ListPublic(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	for _, l := range public {
		if l.ID == d.ID {
			t.Fatalf("draft leaked into the public collection")
		}
	}
	if len(public) != 1 {
		t.Fatalf("expected 1 public listing, got %d", len(public))
	}

	mine, err := svc.ListByOwner(context.Background(), owner.ID)
	if err != nil {
		t.Fatalf("list by owner failed: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("owner list must include drafts, got %d", len(mine))
	}
}

func TestStats_HistogramSumMatchesOwnerList(t *testing.T) {
	repo := newStubListingRepo()
	svc := newTestListingService(repo, &domain.Campaigns)

	for _, status := range []string{"active", "active", "completed", "draft"} {
		in := campaignInput()
		in.Status = status
		if _, err := svc.Create(context.Background(), owner, in); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}
	// Another owner's listings must not bleed into the report.
	other := campaignInput()
	if _, err := svc.Create(context.Background(), stranger, other); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	report, err := svc.Stats(context.Background(), owner.ID)
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	mine, _ := svc.ListByOwner(context.Background(), owner.ID)

	sum := 0
	for _, n := range report.StatusCounts {
		sum += n
	}
	if sum != len(mine) {
		t.Fatalf("histogram sum %d, owner list %d", sum, len(mine))
	}
}
