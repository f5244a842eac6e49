package candidate

import "context"

// CandidateService defines the interface for candidate read operations.
// Writes happen only through the spreadsheet importer.
type CandidateService interface {
	List(ctx context.Context, filter ListFilter) ([]Candidate, int64, error)
	Get(ctx context.Context, id string) (Candidate, error)
}
