package preference

import "time"

// PreferenceResponse is the wire shape for one domain preference row
type PreferenceResponse struct {
	ID             string    `json:"id"`
	SubmittedAt    time.Time `json:"submitted_at"`
	FullName       string    `json:"full_name"`
	Email          string    `json:"email"`
	ContactNumber  string    `json:"contact_number"`
	CollegeName    string    `json:"college_name"`
	YearOfStudy    string    `json:"year_of_study"`
	Domain         string    `json:"domain"`
	SkillLevel     string    `json:"skill_level"`
	InterestReason string    `json:"interest_reason"`
	Technologies   []string  `json:"technologies"`
	PortfolioURL   string    `json:"portfolio_url"`
	CreatedAt      time.Time `json:"created_at"`
}

func (p *DomainPreference) ToResponse() PreferenceResponse {
	technologies := p.Technologies
	if technologies == nil {
		technologies = []string{}
	}
	return PreferenceResponse{
		ID:             p.ID,
		SubmittedAt:    p.SubmittedAt,
		FullName:       p.FullName,
		Email:          p.Email,
		ContactNumber:  p.ContactNumber,
		CollegeName:    p.CollegeName,
		YearOfStudy:    p.YearOfStudy,
		Domain:         p.Domain,
		SkillLevel:     p.SkillLevel,
		InterestReason: p.InterestReason,
		Technologies:   technologies,
		PortfolioURL:   p.PortfolioURL,
		CreatedAt:      p.CreatedAt,
	}
}
