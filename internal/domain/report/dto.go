package report

import "time"

// NameCount is one labelled bucket in a chart series
type NameCount struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

// DateCount is one calendar-day bucket
type DateCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// ========== MAIN DASHBOARD ==========

// DashboardResponse is the combined payload for the admin dashboard
type DashboardResponse struct {
	TotalCandidates       int64  `json:"total_candidates"`
	UniqueColleges        int64  `json:"unique_colleges"`
	UniqueSkills          int64  `json:"unique_skills"`
	AvgSkillsPerCandidate string `json:"avg_skills_per_candidate"`
	TotalSkillsMentioned  int64  `json:"total_skills_mentioned"`
	CandidatesWithSkills  int64  `json:"candidates_with_skills"`

	CollegeData       []NameCount `json:"college_data"`
	SkillData         []NameCount `json:"skill_data"` // top 15
	DomainData        []NameCount `json:"domain_data"`
	YearData          []NameCount `json:"year_data"`
	DailyApplications []DateCount `json:"daily_applications"`

	TotalOffers  int64 `json:"total_offers"`
	NotSent      int64 `json:"not_sent"`
	Pending      int64 `json:"pending"`
	Accepted     int64 `json:"accepted"`
	Declined     int64 `json:"declined"`
	Expired      int64 `json:"expired"`
	ResponseRate int64 `json:"response_rate"` // percent

	DailyOffers             []DateCount `json:"daily_offers"`
	TopCollegesByAcceptance []NameCount `json:"top_colleges_by_acceptance"` // top 10

	RecentCandidates []RecentCandidate `json:"recent_candidates"`
	RecentOffers     []RecentOffer     `json:"recent_offers"`
}

// RecentCandidate is a dashboard teaser row
type RecentCandidate struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	College string `json:"college"`
	Skills  int    `json:"skills"`
	Applied string `json:"applied"`
}

// RecentOffer is a dashboard teaser row
type RecentOffer struct {
	ID     string    `json:"id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	Status string    `json:"status"`
	SentAt time.Time `json:"sent_at"`
}

// ========== OFFER SUMMARY ==========

// OfferSummaryResponse backs the offer summary modal
type OfferSummaryResponse struct {
	Total               int64       `json:"total"`
	NotSent             int64       `json:"not_sent"`
	Pending             int64       `json:"pending"`
	Accepted            int64       `json:"accepted"`
	Declined            int64       `json:"declined"`
	Expired             int64       `json:"expired"`
	DailyTrend          []DateCount `json:"daily_trend"`          // last 30 days
	CollegeDistribution []NameCount `json:"college_distribution"` // accepted, top 10
}

// ========== DOMAIN PREFERENCE SUMMARY ==========

// PreferenceSummaryResponse backs the domain preference summary modal
type PreferenceSummaryResponse struct {
	Total              int64                       `json:"total"`
	DomainStats        map[string]int64            `json:"domain_stats"`  // top 10
	CollegeStats       map[string]int64            `json:"college_stats"` // top 10
	SkillLevelStats    map[string]int64            `json:"skill_level_stats"`
	SkillLevelByDomain map[string]map[string]int64 `json:"skill_level_by_domain"`
	TechnologyStats    map[string]int64            `json:"technology_stats"` // top 15
	MonthlyStats       map[string]int64            `json:"monthly_stats"`    // YYYY-MM
}

// PreferenceFiltersResponse lists the distinct filter values for the
// preference table
type PreferenceFiltersResponse struct {
	Colleges    []string `json:"colleges"`
	Domains     []string `json:"domains"`
	SkillLevels []string `json:"skill_levels"`
}

// ========== INTERN SUMMARY ==========

// InternDomainStats is the per-domain rollup
type InternDomainStats struct {
	Domain            string `json:"domain"`
	Total             int64  `json:"total"`
	Active            int64  `json:"active"`
	Completed         int64  `json:"completed"`
	Terminated        int64  `json:"terminated"`
	FeePaid           int64  `json:"fee_paid"`
	CertificateIssued int64  `json:"certificate_issued"`
}

// MonthlyConversions counts conversions per calendar month
type MonthlyConversions struct {
	Month   string           `json:"month"` // YYYY-MM
	Count   int64            `json:"count"`
	Domains map[string]int64 `json:"domains"`
}

// InternTotals is the overall intern counter block
type InternTotals struct {
	TotalInterns             int64 `json:"total_interns"`
	ActiveInterns            int64 `json:"active_interns"`
	CompletedInterns         int64 `json:"completed_interns"`
	TerminatedInterns        int64 `json:"terminated_interns"`
	FeePaidInterns           int64 `json:"fee_paid_interns"`
	CertificateIssuedInterns int64 `json:"certificate_issued_interns"`
	OfferLetterIssuedInterns int64 `json:"offer_letter_issued_interns"`
}

// InternActivity is one row of the recent activity feed
type InternActivity struct {
	ID               string    `json:"id"`
	FullName         string    `json:"full_name"`
	Email            string    `json:"email"`
	PreferredDomain  string    `json:"preferred_domain"`
	InternshipStatus string    `json:"internship_status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
	Activity         string    `json:"activity"` // created | updated
}

// SkillLevelCount pairs a skill level with its intern count
type SkillLevelCount struct {
	Level string `json:"level"`
	Count int64  `json:"count"`
}

// InternSummaryResponse backs the intern summary page
type InternSummaryResponse struct {
	Totals             InternTotals         `json:"totals"`
	DomainStats        []InternDomainStats  `json:"domain_stats"`
	MonthlyConversions []MonthlyConversions `json:"monthly_conversions"` // newest month first
	RecentActivity     []InternActivity     `json:"recent_activity"`     // last 30 days
	SkillLevelStats    []SkillLevelCount    `json:"skill_level_stats"`
}

// ========== CANDIDATES WITH OFFER STATUS ==========

// CandidateWithOfferStatus decorates a candidate row with its latest offer
type CandidateWithOfferStatus struct {
	ID              string     `json:"id"`
	FullName        string     `json:"full_name"`
	Email           string     `json:"email"`
	Mobile          string     `json:"mobile"`
	CollegeName     string     `json:"college_name"`
	Degree          string     `json:"degree"`
	Branch          string     `json:"branch"`
	YearOfStudy     string     `json:"year_of_study"`
	TechnicalSkills []string   `json:"technical_skills"`
	CityState       string     `json:"city_state"`
	CreatedAt       time.Time  `json:"created_at"`
	OfferStatus     string     `json:"offer_status"` // not_sent when no offer exists
	OfferID         *string    `json:"offer_id,omitempty"`
	OfferSentAt     *time.Time `json:"offer_sent_at,omitempty"`
	OfferExpiresAt  *time.Time `json:"offer_expires_at,omitempty"`
}
