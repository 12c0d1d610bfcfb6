package domain

import "fmt"

// MetricField names a numeric listing field a profile can aggregate over.
type MetricField string

const (
	FieldPrice     MetricField = "price"
	FieldBudget    MetricField = "budget"
	FieldLeads     MetricField = "leads_count"
	FieldResponses MetricField = "responses_count"
)

// Value extracts the metric from a listing.
func (f MetricField) Value(l *Listing) float64 {
	switch f {
	case FieldPrice:
		return l.Price
	case FieldBudget:
		return l.Budget
	case FieldLeads:
		return float64(l.LeadsCount)
	case FieldResponses:
		return float64(l.ResponsesCount)
	}
	return 0
}

// TotalSpec declares one scalar aggregate in the stats report: the sum of
// Field over the owner's listings, restricted to Statuses when non-empty.
type TotalSpec struct {
	Name     string
	Field    MetricField
	Statuses []ListingStatus
}

// Profile is the deployment-time variant configuration. It declares the
// closed status enumeration, which statuses are publicly browsable, the
// fields a create request must carry, and the shape of the stats report.
type Profile struct {
	Name string

	// Statuses is the closed enumeration; no other value is ever persisted.
	Statuses []ListingStatus

	// Public lists the statuses visible in the anonymous global collection.
	Public []ListingStatus

	// CategoryLabel is what the variant calls its categorical field
	// (category, platform). Informational only; storage and stats always
	// use the category field.
	CategoryLabel string

	// Secondary extracts an optional second categorical value counted into
	// the report's by_type histogram. Nil for variants with only one
	// categorical dimension.
	Secondary func(*Listing) string

	// Required names the create-request fields that must be non-empty.
	Required []string

	// HasRate enables the derived conversion rate and its average.
	HasRate bool

	// Totals declares the scalar aggregates of the stats report.
	Totals []TotalSpec
}

// ValidStatus reports whether s belongs to the profile's enumeration.
func (p *Profile) ValidStatus(s ListingStatus) bool {
	for _, v := range p.Statuses {
		if v == s {
			return true
		}
	}
	return false
}

// IsPublic reports whether listings with this status appear in the anonymous
// global collection.
func (p *Profile) IsPublic(s ListingStatus) bool {
	for _, v := range p.Public {
		if v == s {
			return true
		}
	}
	return false
}

// Jobs is the job-board variant.
var Jobs = Profile{
	Name:          "jobs",
	Statuses:      []ListingStatus{StatusActive, StatusClosed, StatusDraft},
	Public:        []ListingStatus{StatusActive, StatusClosed},
	CategoryLabel: "category",
	Secondary:     func(l *Listing) string { return l.JobType },
	Required:      []string{"title", "company", "location", "description", "category", "job_type", "status"},
}

// Campaigns is the outreach-campaign variant.
var Campaigns = Profile{
	Name:          "campaigns",
	Statuses:      []ListingStatus{StatusActive, StatusCompleted, StatusDraft},
	Public:        []ListingStatus{StatusActive, StatusCompleted},
	CategoryLabel: "platform",
	Required:      []string{"title", "description", "category", "status"},
	HasRate:       true,
	Totals: []TotalSpec{
		{Name: "total_budget", Field: FieldBudget, Statuses: []ListingStatus{StatusActive, StatusCompleted}},
		{Name: "total_leads", Field: FieldLeads},
		{Name: "total_responses", Field: FieldResponses},
	},
}

// Marketplace is the classified-listings variant.
var Marketplace = Profile{
	Name:          "marketplace",
	Statuses:      []ListingStatus{StatusActive, StatusSold, StatusDraft},
	Public:        []ListingStatus{StatusActive, StatusSold},
	CategoryLabel: "category",
	Required:      []string{"title", "description", "location", "category", "status", "price"},
	Totals: []TotalSpec{
		{Name: "total_value", Field: FieldPrice, Statuses: []ListingStatus{StatusActive}},
		{Name: "sold_value", Field: FieldPrice, Statuses: []ListingStatus{StatusSold}},
	},
}

// ProfileByName resolves a variant name from configuration.
func ProfileByName(name string) (*Profile, error) {
	switch name {
	case Jobs.Name:
		return &Jobs, nil
	case Campaigns.Name:
		return &Campaigns, nil
	case Marketplace.Name:
		return &Marketplace, nil
	}
	return nil, fmt.Errorf("unknown variant %q", name)
}
