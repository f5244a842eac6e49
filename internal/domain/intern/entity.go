package intern

import "time"

// OfferStatus is the profile-side mirror of the offer state. It is copied at
// conversion time and maintained by hand afterwards, so it can drift from
// the offer collection.
type OfferStatus string

const (
	OfferNotSent  OfferStatus = "not_sent"
	OfferSent     OfferStatus = "sent"
	OfferAccepted OfferStatus = "accepted"
	OfferDeclined OfferStatus = "declined"
	OfferExpired  OfferStatus = "expired"
)

// InternshipStatus tracks the internship itself
type InternshipStatus string

const (
	InternshipNotStarted InternshipStatus = "not_started"
	InternshipActive     InternshipStatus = "active"
	InternshipCompleted  InternshipStatus = "completed"
	InternshipTerminated InternshipStatus = "terminated"
)

// Intern holds the post-acceptance identity record. Personal data lives
// here, workflow state lives on the companion Profile, the two are split so
// they can evolve independently.
type Intern struct {
	ID          string
	FullName    string
	Email       string
	Mobile      string
	CollegeName string
	Degree      string
	Branch      string
	YearOfStudy string
	CityState   string
	Address     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Profile is the 1:1 workflow/status companion of an Intern
type Profile struct {
	ID                  string
	InternID            string
	PreferredDomain     string
	SkillLevel          string
	TechnicalSkills     []string
	PriorExperience     string
	PortfolioURL        string
	OfferStatus         OfferStatus
	InternshipStatus    InternshipStatus
	InternshipFeePaid   bool
	FeePaidAt           *time.Time
	OfferLetterIssued   bool
	OfferLetterIssuedAt *time.Time
	CertificateIssued   bool
	CertificateIssuedAt *time.Time
	JoinedAt            *time.Time
	CompletedAt         *time.Time
	Notes               string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// InternWithProfile is the joined view used by listings and summaries
type InternWithProfile struct {
	Intern
	Profile Profile
}

// AuditFields exposes the intern's mutable fields for change detection.
// Identity and timestamp fields are deliberately absent.
func (i *Intern) AuditFields() map[string]any {
	return map[string]any{
		"full_name":     i.FullName,
		"email":         i.Email,
		"mobile":        i.Mobile,
		"college_name":  i.CollegeName,
		"degree":        i.Degree,
		"branch":        i.Branch,
		"year_of_study": i.YearOfStudy,
		"city_state":    i.CityState,
		"address":       i.Address,
	}
}

// AuditFields exposes the profile's mutable fields for change detection
func (p *Profile) AuditFields() map[string]any {
	return map[string]any{
		"preferred_domain":    p.PreferredDomain,
		"skill_level":         p.SkillLevel,
		"technical_skills":    p.TechnicalSkills,
		"prior_experience":    p.PriorExperience,
		"portfolio_url":       p.PortfolioURL,
		"offer_status":        string(p.OfferStatus),
		"internship_status":   string(p.InternshipStatus),
		"internship_fee_paid": p.InternshipFeePaid,
		"offer_letter_issued": p.OfferLetterIssued,
		"certificate_issued":  p.CertificateIssued,
		"notes":               p.Notes,
	}
}
