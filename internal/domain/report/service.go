package report

import "context"

// ReportService defines the interface for the aggregation endpoints. All
// reads are stateless, every call reduces over the current rows.
type ReportService interface {
	// Dashboard builds the combined admin dashboard payload
	Dashboard(ctx context.Context) (DashboardResponse, error)

	// OfferSummary aggregates offer counts, the 30 day trend and the
	// college distribution of accepted offers
	OfferSummary(ctx context.Context) (OfferSummaryResponse, error)

	// PreferenceSummary aggregates the domain preference survey
	PreferenceSummary(ctx context.Context) (PreferenceSummaryResponse, error)

	// PreferenceFilters lists distinct filter values for the preference
	// table
	PreferenceFilters(ctx context.Context) (PreferenceFiltersResponse, error)

	// CandidateColleges lists distinct candidate colleges
	CandidateColleges(ctx context.Context) ([]string, error)

	// InternSummary aggregates intern workflow state per domain and month
	InternSummary(ctx context.Context) (InternSummaryResponse, error)

	// CandidatesWithOfferStatus decorates each candidate with its latest
	// offer
	CandidatesWithOfferStatus(ctx context.Context) ([]CandidateWithOfferStatus, error)
}
