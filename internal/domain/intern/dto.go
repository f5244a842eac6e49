package intern

import (
	"time"

	"github.com/sandevex/hiring-backend-go/internal/pkg/validator"
)

// ConvertRequest - POST /interns. The domain preference is resolved by the
// candidate's email, the id parameter is accepted for interface parity with
// the admin UI but is not the lookup key.
type ConvertRequest struct {
	CandidateID        string `json:"candidate_id"`
	OfferID            string `json:"offer_id"`
	DomainPreferenceID string `json:"domain_preference_id"`
}

func (r *ConvertRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CandidateID) {
		errs = append(errs, validator.ValidationError{
			Field:   "candidate_id",
			Message: "candidate_id is required",
		})
	}

	if validator.IsEmpty(r.OfferID) {
		errs = append(errs, validator.ValidationError{
			Field:   "offer_id",
			Message: "offer_id is required",
		})
	}

	if validator.IsEmpty(r.DomainPreferenceID) {
		errs = append(errs, validator.ValidationError{
			Field:   "domain_preference_id",
			Message: "domain_preference_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateRequest - PUT /interns/{id}. Nil fields are left untouched.
type UpdateRequest struct {
	FullName    *string `json:"full_name"`
	Email       *string `json:"email"`
	Mobile      *string `json:"mobile"`
	CollegeName *string `json:"college_name"`
	Degree      *string `json:"degree"`
	Branch      *string `json:"branch"`
	YearOfStudy *string `json:"year_of_study"`
	CityState   *string `json:"city_state"`
	Address     *string `json:"address"`

	PreferredDomain   *string   `json:"preferred_domain"`
	SkillLevel        *string   `json:"skill_level"`
	TechnicalSkills   *[]string `json:"technical_skills"`
	PriorExperience   *string   `json:"prior_experience"`
	PortfolioURL      *string   `json:"portfolio_url"`
	OfferStatus       *string   `json:"offer_status"`
	InternshipStatus  *string   `json:"internship_status"`
	InternshipFeePaid *bool     `json:"internship_fee_paid"`
	OfferLetterIssued *bool     `json:"offer_letter_issued"`
	CertificateIssued *bool     `json:"certificate_issued"`
	Notes             *string   `json:"notes"`
}

func (r *UpdateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email format is invalid",
		})
	}

	if r.OfferStatus != nil && !validator.IsInSlice(*r.OfferStatus, []string{
		string(OfferNotSent), string(OfferSent), string(OfferAccepted),
		string(OfferDeclined), string(OfferExpired),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "offer_status",
			Message: "offer_status is not a valid value",
		})
	}

	if r.InternshipStatus != nil && !validator.IsInSlice(*r.InternshipStatus, []string{
		string(InternshipNotStarted), string(InternshipActive),
		string(InternshipCompleted), string(InternshipTerminated),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "internship_status",
			Message: "internship_status is not a valid value",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ProfileResponse is the wire shape of the workflow companion record
type ProfileResponse struct {
	ID                  string     `json:"id"`
	PreferredDomain     string     `json:"preferred_domain"`
	SkillLevel          string     `json:"skill_level"`
	TechnicalSkills     []string   `json:"technical_skills"`
	PriorExperience     string     `json:"prior_experience"`
	PortfolioURL        string     `json:"portfolio_url"`
	OfferStatus         string     `json:"offer_status"`
	InternshipStatus    string     `json:"internship_status"`
	InternshipFeePaid   bool       `json:"internship_fee_paid"`
	FeePaidAt           *time.Time `json:"fee_paid_at,omitempty"`
	OfferLetterIssued   bool       `json:"offer_letter_issued"`
	OfferLetterIssuedAt *time.Time `json:"offer_letter_issued_at,omitempty"`
	CertificateIssued   bool       `json:"certificate_issued"`
	CertificateIssuedAt *time.Time `json:"certificate_issued_at,omitempty"`
	JoinedAt            *time.Time `json:"joined_at,omitempty"`
	CompletedAt         *time.Time `json:"completed_at,omitempty"`
	Notes               string     `json:"notes"`
}

// InternResponse is the wire shape for one intern row with its profile
type InternResponse struct {
	ID          string          `json:"id"`
	FullName    string          `json:"full_name"`
	Email       string          `json:"email"`
	Mobile      string          `json:"mobile"`
	CollegeName string          `json:"college_name"`
	Degree      string          `json:"degree"`
	Branch      string          `json:"branch"`
	YearOfStudy string          `json:"year_of_study"`
	CityState   string          `json:"city_state"`
	Address     string          `json:"address"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	Profile     ProfileResponse `json:"profile"`
}

func (iw *InternWithProfile) ToResponse() InternResponse {
	skills := iw.Profile.TechnicalSkills
	if skills == nil {
		skills = []string{}
	}
	return InternResponse{
		ID:          iw.ID,
		FullName:    iw.FullName,
		Email:       iw.Email,
		Mobile:      iw.Mobile,
		CollegeName: iw.CollegeName,
		Degree:      iw.Degree,
		Branch:      iw.Branch,
		YearOfStudy: iw.YearOfStudy,
		CityState:   iw.CityState,
		Address:     iw.Address,
		CreatedAt:   iw.CreatedAt,
		UpdatedAt:   iw.UpdatedAt,
		Profile: ProfileResponse{
			ID:                  iw.Profile.ID,
			PreferredDomain:     iw.Profile.PreferredDomain,
			SkillLevel:          iw.Profile.SkillLevel,
			TechnicalSkills:     skills,
			PriorExperience:     iw.Profile.PriorExperience,
			PortfolioURL:        iw.Profile.PortfolioURL,
			OfferStatus:         string(iw.Profile.OfferStatus),
			InternshipStatus:    string(iw.Profile.InternshipStatus),
			InternshipFeePaid:   iw.Profile.InternshipFeePaid,
			FeePaidAt:           iw.Profile.FeePaidAt,
			OfferLetterIssued:   iw.Profile.OfferLetterIssued,
			OfferLetterIssuedAt: iw.Profile.OfferLetterIssuedAt,
			CertificateIssued:   iw.Profile.CertificateIssued,
			CertificateIssuedAt: iw.Profile.CertificateIssuedAt,
			JoinedAt:            iw.Profile.JoinedAt,
			CompletedAt:         iw.Profile.CompletedAt,
			Notes:               iw.Profile.Notes,
		},
	}
}
