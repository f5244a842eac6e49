package response

import (
	"errors"
	"net/http"

	"github.com/sandevex/hiring-backend-go/internal/domain/candidate"
	"github.com/sandevex/hiring-backend-go/internal/domain/intern"
	"github.com/sandevex/hiring-backend-go/internal/domain/offer"
	"github.com/sandevex/hiring-backend-go/internal/domain/preference"
	"github.com/sandevex/hiring-backend-go/internal/pkg/validator"
	"github.com/sandevex/hiring-backend-go/internal/service/auth"
	"github.com/sandevex/hiring-backend-go/internal/service/importer"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth
	case errors.Is(err, auth.ErrInvalidPassword):
		Unauthorized(w, "Invalid password")

	// Candidates and preferences
	case errors.Is(err, candidate.ErrCandidateNotFound):
		NotFound(w, "Candidate not found")
	case errors.Is(err, preference.ErrPreferenceNotFound):
		NotFound(w, "Domain preference not found for this candidate")

	// Offer lifecycle
	case errors.Is(err, offer.ErrOfferNotFound):
		NotFound(w, "Offer not found")
	case errors.Is(err, offer.ErrPendingOfferExists):
		Conflict(w, "Candidate already has a pending offer")
	case errors.Is(err, offer.ErrOfferAlreadyAccepted):
		Conflict(w, "Candidate already accepted an offer")
	case errors.Is(err, offer.ErrOfferNotPending):
		Conflict(w, "Offer has already been responded to")
	case errors.Is(err, offer.ErrOfferExpired):
		Gone(w, "Offer has expired")
	case errors.Is(err, offer.ErrInvalidAction):
		BadRequest(w, "Action must be accept or decline", nil)
	case errors.Is(err, offer.ErrPartialUpdate):
		// The offer write committed, only the profile mirror is stale.
		Conflict(w, "Offer updated but the linked intern profile could not be refreshed")

	// Intern conversion
	case errors.Is(err, intern.ErrInternNotFound):
		NotFound(w, "Intern not found")
	case errors.Is(err, intern.ErrProfileNotFound):
		NotFound(w, "Intern profile not found")
	case errors.Is(err, intern.ErrEmailMismatch):
		Conflict(w, "Candidate and offer email do not match")
	case errors.Is(err, intern.ErrPhoneMismatch):
		Conflict(w, "Candidate and offer phone number do not match")
	case errors.Is(err, intern.ErrAlreadyConverted):
		Conflict(w, "Candidate has already been converted")

	// Importer
	case errors.Is(err, importer.ErrUpstream):
		BadGateway(w, "Spreadsheet source is unavailable")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
