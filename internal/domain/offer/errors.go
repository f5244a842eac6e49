package offer

import "errors"

var (
	ErrOfferNotFound        = errors.New("offer not found")
	ErrPendingOfferExists   = errors.New("candidate already has a pending offer")
	ErrOfferAlreadyAccepted = errors.New("candidate already accepted an offer")
	ErrOfferNotPending      = errors.New("offer has already been resolved")
	ErrOfferExpired         = errors.New("offer has expired")
	ErrInvalidAction        = errors.New("action must be accept or decline")

	// ErrPartialUpdate signals that the offer write succeeded but a
	// follow-up cross-aggregate write failed. The offer state is committed,
	// the linked profile may be stale until the next reconciliation.
	ErrPartialUpdate = errors.New("offer updated but linked profile update failed")
)
