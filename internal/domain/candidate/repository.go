package candidate

import "context"

// ListFilter narrows and pages the admin candidate listing.
type ListFilter struct {
	Search      string // matches name, email, mobile or college, case-insensitive
	College     string // exact college match, case-insensitive
	OldestFirst bool
	Page        int
	Limit       int
}

// CandidateRepository defines the interface for candidate data access
type CandidateRepository interface {
	// GetByID retrieves a candidate by id
	GetByID(ctx context.Context, id string) (Candidate, error)

	// List retrieves a filtered, paginated page plus the total match count
	List(ctx context.Context, filter ListFilter) ([]Candidate, int64, error)

	// ListAll retrieves every candidate, newest first (reporting)
	ListAll(ctx context.Context) ([]Candidate, error)

	// Upsert inserts the candidate or overwrites the existing row with the
	// same email (spreadsheet re-sync semantics)
	Upsert(ctx context.Context, c Candidate) (Candidate, error)
}
