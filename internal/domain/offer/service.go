package offer

import "context"

// OfferService defines the interface for offer lifecycle business logic
type OfferService interface {
	// Create extends a fresh offer to a candidate and emails the response
	// links. Stale pending offers are expired first, a live pending or an
	// accepted offer blocks the send.
	Create(ctx context.Context, req CreateRequest) (Offer, error)

	// Resend resets an unaccepted offer to pending with a new token and
	// emails the links again
	Resend(ctx context.Context, offerID string) (Offer, error)

	// Respond applies a candidate's accept/decline response identified by
	// token. Expiry is evaluated first and wins over the response.
	Respond(ctx context.Context, token string, action Action) (Status, error)

	// StatusOf reports the candidate's most recent offer status, applying
	// the lazy expiry check. Returns "not_sent" for candidates without one.
	StatusOf(ctx context.Context, candidateID string) (string, error)

	// ExpireStale bulk-expires the candidate's pending offers past their
	// window
	ExpireStale(ctx context.Context, candidateID string) error

	// SetPhysicalLetterCollected records the offline signed-letter
	// confirmation. Collecting forces the offer to accepted and marks the
	// linked intern profile's letter as issued when one exists.
	SetPhysicalLetterCollected(ctx context.Context, offerID string, collected bool) (Offer, error)

	// SyncOfferLetters repairs intern profiles whose offer letter flag
	// lags behind a collected physical letter
	SyncOfferLetters(ctx context.Context) (int, error)

	// List retrieves offers with candidate details for the admin table
	List(ctx context.Context, filter ListFilter) ([]OfferWithCandidate, int64, error)
}
