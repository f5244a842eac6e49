package candidate

import "time"

// CandidateResponse is the wire shape for one candidate row
type CandidateResponse struct {
	ID              string    `json:"id"`
	FullName        string    `json:"full_name"`
	Email           string    `json:"email"`
	Mobile          string    `json:"mobile"`
	CityState       string    `json:"city_state"`
	Address         string    `json:"address"`
	CollegeName     string    `json:"college_name"`
	Degree          string    `json:"degree"`
	Branch          string    `json:"branch"`
	YearOfStudy     string    `json:"year_of_study"`
	PreferredDomain string    `json:"preferred_domain"`
	TechnicalSkills []string  `json:"technical_skills"`
	PriorExperience string    `json:"prior_experience"`
	PortfolioURL    string    `json:"portfolio_url"`
	Motivation      string    `json:"motivation"`
	Declaration     string    `json:"declaration"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (c *Candidate) ToResponse() CandidateResponse {
	skills := c.TechnicalSkills
	if skills == nil {
		skills = []string{}
	}
	return CandidateResponse{
		ID:              c.ID,
		FullName:        c.FullName,
		Email:           c.Email,
		Mobile:          c.Mobile,
		CityState:       c.CityState,
		Address:         c.Address,
		CollegeName:     c.CollegeName,
		Degree:          c.Degree,
		Branch:          c.Branch,
		YearOfStudy:     c.YearOfStudy,
		PreferredDomain: c.PreferredDomain,
		TechnicalSkills: skills,
		PriorExperience: c.PriorExperience,
		PortfolioURL:    c.PortfolioURL,
		Motivation:      c.Motivation,
		Declaration:     c.Declaration,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}
