package offer

import "github.com/sandevex/hiring-backend-go/internal/pkg/validator"

// CreateRequest - POST /offers
type CreateRequest struct {
	CandidateID string `json:"candidate_id"`
	Email       string `json:"email"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CandidateID) {
		errs = append(errs, validator.ValidationError{
			Field:   "candidate_id",
			Message: "candidate_id is required",
		})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email format is invalid",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// RespondRequest - POST /respond (public)
type RespondRequest struct {
	Token  string `json:"token"`
	Action string `json:"action"`
}

func (r *RespondRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Token) {
		errs = append(errs, validator.ValidationError{
			Field:   "token",
			Message: "token is required",
		})
	} else if !validator.IsValidOfferToken(r.Token) {
		errs = append(errs, validator.ValidationError{
			Field:   "token",
			Message: "token format is invalid",
		})
	}

	if r.Action != string(ActionAccept) && r.Action != string(ActionDecline) {
		errs = append(errs, validator.ValidationError{
			Field:   "action",
			Message: "action must be accept or decline",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ResendRequest - POST /offers/resend
type ResendRequest struct {
	OfferID string `json:"offer_id"`
}

// PhysicalLetterRequest - POST /offers/physical-letter
type PhysicalLetterRequest struct {
	OfferID   string `json:"offer_id"`
	Collected bool   `json:"collected"`
}

// OfferResponse is the wire shape for one offer row
type OfferResponse struct {
	ID                      string  `json:"id"`
	CandidateID             string  `json:"candidate_id"`
	CandidateName           string  `json:"candidate_name,omitempty"`
	CandidateCollege        string  `json:"candidate_college,omitempty"`
	Email                   string  `json:"email"`
	Status                  string  `json:"status"`
	PhysicalLetterCollected bool    `json:"physical_letter_collected"`
	SentAt                  string  `json:"sent_at"`
	ExpiresAt               string  `json:"expires_at"`
	RespondedAt             *string `json:"responded_at,omitempty"`
}
