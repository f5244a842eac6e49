package candidate

import "time"

// Candidate represents an application imported from the candidate
// spreadsheet. Records are owned by the importer: they are only written by
// the sync (upsert by email) and read everywhere else.
type Candidate struct {
	ID              string
	FullName        string
	Email           string
	Mobile          string
	CityState       string
	Address         string
	CollegeName     string
	Degree          string
	Branch          string
	YearOfStudy     string
	PreferredDomain string
	TechnicalSkills []string
	PriorExperience string
	PortfolioURL    string
	Motivation      string
	Declaration     string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
