package handler

import "github.com/sshuster/job-hero-dashboard/internal/core/domain"

// --- Request / Response types ---

type createListingRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Status      string `json:"status"`

	Company  string `json:"company"`
	Location string `json:"location"`
	Salary   string `json:"salary"`
	JobType  string `json:"job_type"`

	Price          float64 `json:"price"`
	Budget         float64 `json:"budget"`
	LeadsCount     int     `json:"leads_count"`
	ResponsesCount int     `json:"responses_count"`

	Tags []string `json:"tags"`

	ImageURL     string `json:"image_url"`
	ContactEmail string `json:"contact_email"`
	ContactPhone string `json:"contact_phone"`
}

// updateListingRequest uses pointers throughout so that an omitted key and an
// explicitly cleared value stay distinguishable after decoding.
type updateListingRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Status      *string `json:"status"`

	Company  *string `json:"company"`
	Location *string `json:"location"`
	Salary   *string `json:"salary"`
	JobType  *string `json:"job_type"`

	Price          *float64 `json:"price"`
	Budget         *float64 `json:"budget"`
	LeadsCount     *int     `json:"leads_count"`
	ResponsesCount *int     `json:"responses_count"`

	Tags *[]string `json:"tags"`

	ImageURL     *string `json:"image_url"`
	ContactEmail *string `json:"contact_email"`
	ContactPhone *string `json:"contact_phone"`
}

type listingResponse struct {
	Listing *domain.Listing `json:"listing"`
}

type listingsResponse struct {
	Listings []*domain.Listing `json:"listings"`
}

type statsResponse struct {
	Stats *domain.StatsReport `json:"stats"`
}
