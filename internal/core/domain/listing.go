package domain

import "encoding/json"

// ListingStatus represents the lifecycle state of a listing. Each variant
// profile uses a closed subset of these values.
type ListingStatus string

const (
	StatusActive    ListingStatus = "active"
	StatusClosed    ListingStatus = "closed"
	StatusCompleted ListingStatus = "completed"
	StatusSold      ListingStatus = "sold"
	StatusDraft     ListingStatus = "draft"
)

// Listing is the owned domain entity: a job posting, a marketing campaign, or
// a marketplace item depending on the active variant profile. Fields a variant
// does not use stay at their zero value.
type Listing struct {
	ID          string        `json:"id" bson:"_id,omitempty"`
	OwnerID     string        `json:"owner_id" bson:"owner_id"`
	Title       string        `json:"title" bson:"title"`
	Description string        `json:"description" bson:"description"`
	Category    string        `json:"category" bson:"category"`
	Status      ListingStatus `json:"status" bson:"status"`

	Company  string `json:"company,omitempty" bson:"company,omitempty"`
	Location string `json:"location,omitempty" bson:"location,omitempty"`
	Salary   string `json:"salary,omitempty" bson:"salary,omitempty"`
	JobType  string `json:"job_type,omitempty" bson:"job_type,omitempty"`

	Price          float64  `json:"price,omitempty" bson:"price,omitempty"`
	Budget         float64  `json:"budget,omitempty" bson:"budget,omitempty"`
	LeadsCount     int      `json:"leads_count" bson:"leads_count"`
	ResponsesCount int      `json:"responses_count" bson:"responses_count"`
	ConversionRate *float64 `json:"conversion_rate,omitempty" bson:"conversion_rate,omitempty"`

	Tags []string `json:"tags" bson:"-"`

	ImageURL     string `json:"image_url,omitempty" bson:"image_url,omitempty"`
	ContactEmail string `json:"contact_email,omitempty" bson:"contact_email,omitempty"`
	ContactPhone string `json:"contact_phone,omitempty" bson:"contact_phone,omitempty"`

	// PostedDate is the server date at creation, date-only, immutable.
	PostedDate string `json:"posted_date" bson:"posted_date"`
}

// RecomputeRate refreshes the derived conversion rate from the current metric
// values. The rate is unset when there are no leads: a zero denominator means
// "no rate", never a division result.
func (l *Listing) RecomputeRate() {
	if l.LeadsCount > 0 {
		r := float64(l.ResponsesCount) / float64(l.LeadsCount) * 100
		l.ConversionRate = &r
	} else {
		l.ConversionRate = nil
	}
}

// EncodeTags flattens an ordered tag list into its persisted string form.
// JSON encoding round-trips any tag content, delimiters included.
func EncodeTags(tags []string) string {
	if tags == nil {
		tags = []string{}
	}
	b, _ := json.Marshal(tags)
	return string(b)
}

// DecodeTags reverses EncodeTags. The empty string maps to an empty list,
// never a one-element list holding "".
func DecodeTags(s string) []string {
	if s == "" {
		return []string{}
	}
	var tags []string
	if err := json.Unmarshal([]byte(s), &tags); err != nil || tags == nil {
		return []string{}
	}
	return tags
}
