package domain

// StatsReport is the per-owner aggregate computed live from the owner's
// current listings. All numeric fields are always present and well-typed:
// an owner with no listings gets zeros, not nulls.
type StatsReport struct {
	// StatusCounts has an entry for every status in the profile's
	// enumeration, zero-filled.
	StatusCounts map[string]int `json:"status_counts"`

	// ByCategory counts listings per categorical value actually present in
	// the data. Absent categories are not zero-filled.
	ByCategory map[string]int `json:"by_category"`

	// ByType counts listings per secondary categorical value for profiles
	// that declare one (job type on the jobs variant). Omitted otherwise.
	ByType map[string]int `json:"by_type,omitempty"`

	// Totals carries the profile's declared scalar aggregates.
	Totals map[string]float64 `json:"totals"`

	// AverageConversionRate is the mean of the derived rate over listings
	// with a nonzero denominator; 0 when no listing qualifies.
	AverageConversionRate float64 `json:"average_conversion_rate"`
}

// ComputeStats aggregates an owner's listings in a single pass.
func ComputeStats(p *Profile, listings []*Listing) *StatsReport {
	report := &StatsReport{
		StatusCounts: make(map[string]int, len(p.Statuses)),
		ByCategory:   make(map[string]int),
		Totals:       make(map[string]float64, len(p.Totals)),
	}
	for _, s := range p.Statuses {
		report.StatusCounts[string(s)] = 0
	}
	for _, spec := range p.Totals {
		report.Totals[spec.Name] = 0
	}
	if p.Secondary != nil {
		report.ByType = make(map[string]int)
	}

	rateSum := 0.0
	rated := 0

	for _, l := range listings {
		report.StatusCounts[string(l.Status)]++
		if l.Category != "" {
			report.ByCategory[l.Category]++
		}
		if p.Secondary != nil {
			if v := p.Secondary(l); v != "" {
				report.ByType[v]++
			}
		}

		for _, spec := range p.Totals {
			if statusIn(l.Status, spec.Statuses) {
				report.Totals[spec.Name] += spec.Field.Value(l)
			}
		}

		// Listings with no leads carry no rate and are excluded from both
		// sides of the average.
		if p.HasRate && l.LeadsCount > 0 && l.ConversionRate != nil {
			rateSum += *l.ConversionRate
			rated++
		}
	}

	if rated > 0 {
		report.AverageConversionRate = rateSum / float64(rated)
	}

	return report
}

// statusIn treats an empty restriction as "all statuses".
func statusIn(s ListingStatus, set []ListingStatus) bool {
	if len(set) == 0 {
		return true
	}
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}
