package preference

import "time"

// DomainPreference is a candidate's domain-interest survey response,
// imported from its own spreadsheet. It is linked to a Candidate only by
// matching email, there is no foreign key between the two.
type DomainPreference struct {
	ID             string
	SubmittedAt    time.Time
	FullName       string
	Email          string
	ContactNumber  string
	CollegeName    string
	YearOfStudy    string
	Domain         string
	SkillLevel     string
	InterestReason string
	Technologies   []string
	PortfolioURL   string
	CreatedAt      time.Time
}
