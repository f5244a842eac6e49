package offer

import "time"

// Status represents the status of an offer
type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusDeclined Status = "declined"
	StatusExpired  Status = "expired"
)

// StatusNotSent is reported for candidates without any offer. It is never
// stored on an offer row.
const StatusNotSent = "not_sent"

// Action is a candidate's response to an offer link
type Action string

const (
	ActionAccept  Action = "accept"
	ActionDecline Action = "decline"
)

// Offer represents one time-boxed invitation extended to a candidate,
// resolved through a tokenized public link.
type Offer struct {
	ID                      string
	CandidateID             string
	Email                   string
	Mobile                  *string
	Token                   string
	Status                  Status
	PhysicalLetterCollected bool
	SentAt                  time.Time
	ExpiresAt               time.Time
	RespondedAt             *time.Time
	UpdatedAt               time.Time
}

// OfferWithCandidate carries the joined candidate fields shown in listings
type OfferWithCandidate struct {
	Offer
	CandidateName    string
	CandidateCollege string
	CandidateMobile  string
}

// IsExpired reports whether the offer's response window has passed at the
// given instant. Every read and write entry point runs this check, storage
// may still say pending for an offer nobody has touched.
func (o *Offer) IsExpired(now time.Time) bool {
	return now.After(o.ExpiresAt)
}

// IsResolved reports whether the offer reached a terminal response state.
// Accepted and declined offers never regress.
func (o *Offer) IsResolved() bool {
	return o.Status == StatusAccepted || o.Status == StatusDeclined
}

// CanRespond reports whether a response can still be applied
func (o *Offer) CanRespond(now time.Time) bool {
	return o.Status == StatusPending && !o.IsExpired(now)
}
