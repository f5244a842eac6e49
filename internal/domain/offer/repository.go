package offer

import (
	"context"
	"time"
)

// ListFilter narrows and pages the admin offer listing.
type ListFilter struct {
	Search string // matches offer email or candidate name/email/college
	Status Status
	Page   int
	Limit  int
}

// OfferRepository defines the interface for offer data access
type OfferRepository interface {
	// Create inserts a new offer row
	Create(ctx context.Context, o Offer) (Offer, error)

	// GetByID retrieves an offer by id
	GetByID(ctx context.Context, id string) (Offer, error)

	// GetByToken retrieves the offer carrying the response token
	GetByToken(ctx context.Context, token string) (Offer, error)

	// GetLatestByCandidateID retrieves the most recently sent offer for a
	// candidate (sent_at descending tie-break)
	GetLatestByCandidateID(ctx context.Context, candidateID string) (Offer, error)

	// GetByCandidateAndStatus retrieves a candidate's offer in the given
	// status, if any
	GetByCandidateAndStatus(ctx context.Context, candidateID string, status Status) (Offer, error)

	// UpdateStatus sets status and responded_at
	UpdateStatus(ctx context.Context, id string, status Status, respondedAt *time.Time) error

	// ResetForResend installs a fresh token and pending state
	ResetForResend(ctx context.Context, id, token string, sentAt, expiresAt time.Time) error

	// SetPhysicalLetterCollected flips the physical letter flag
	SetPhysicalLetterCollected(ctx context.Context, id string, collected bool) error

	// ExpirePending transitions the candidate's stale pending offers to
	// expired and returns the number of rows touched. Idempotent.
	ExpirePending(ctx context.Context, candidateID string, now time.Time) (int64, error)

	// List retrieves a filtered, paginated page with candidate details plus
	// the total match count
	List(ctx context.Context, filter ListFilter) ([]OfferWithCandidate, int64, error)

	// ListAll retrieves every offer with candidate details (reporting)
	ListAll(ctx context.Context) ([]OfferWithCandidate, error)

	// ListCollectedAccepted retrieves accepted offers whose physical letter
	// has been collected (offer letter reconciliation)
	ListCollectedAccepted(ctx context.Context) ([]Offer, error)
}
