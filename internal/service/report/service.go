package report

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sandevex/hiring-backend-go/internal/domain/candidate"
	"github.com/sandevex/hiring-backend-go/internal/domain/intern"
	"github.com/sandevex/hiring-backend-go/internal/domain/offer"
	"github.com/sandevex/hiring-backend-go/internal/domain/preference"
	"github.com/sandevex/hiring-backend-go/internal/domain/report"
)

const (
	trendWindow   = 30 * 24 * time.Hour
	dayLabel      = "Jan 2"
	monthLabel    = "2006-01"
	recentRows    = 5
	topColleges   = 10
	topDomains    = 10
	topSkills     = 15
	topTechnology = 15
)

type ReportServiceImpl struct {
	candidateRepo  candidate.CandidateRepository
	offerRepo      offer.OfferRepository
	preferenceRepo preference.PreferenceRepository
	internRepo     intern.InternRepository
}

func NewReportService(
	candidateRepo candidate.CandidateRepository,
	offerRepo offer.OfferRepository,
	preferenceRepo preference.PreferenceRepository,
	internRepo intern.InternRepository,
) report.ReportService {
	return &ReportServiceImpl{
		candidateRepo:  candidateRepo,
		offerRepo:      offerRepo,
		preferenceRepo: preferenceRepo,
		internRepo:     internRepo,
	}
}

// Dashboard implements report.ReportService.
func (s *ReportServiceImpl) Dashboard(ctx context.Context) (report.DashboardResponse, error) {
	candidates, err := s.candidateRepo.ListAll(ctx)
	if err != nil {
		return report.DashboardResponse{}, err
	}
	offers, err := s.offerRepo.ListAll(ctx)
	if err != nil {
		return report.DashboardResponse{}, err
	}

	resp := report.DashboardResponse{
		TotalCandidates: int64(len(candidates)),
	}

	collegeCounts := map[string]int64{}
	skillCounts := map[string]int64{}
	domainCounts := map[string]int64{}
	yearCounts := map[string]int64{}
	uniqueSkills := map[string]bool{}

	for _, c := range candidates {
		if c.CollegeName != "" {
			collegeCounts[c.CollegeName]++
		}
		if c.PreferredDomain != "" {
			domainCounts[c.PreferredDomain]++
		}
		if c.YearOfStudy != "" {
			yearCounts[c.YearOfStudy]++
		}
		if len(c.TechnicalSkills) > 0 {
			resp.CandidatesWithSkills++
		}
		for _, skill := range c.TechnicalSkills {
			key := strings.ToLower(strings.TrimSpace(skill))
			if key == "" {
				continue
			}
			skillCounts[key]++
			uniqueSkills[key] = true
			resp.TotalSkillsMentioned++
		}
	}

	resp.UniqueColleges = int64(len(collegeCounts))
	resp.UniqueSkills = int64(len(uniqueSkills))
	if resp.CandidatesWithSkills > 0 {
		resp.AvgSkillsPerCandidate = fmt.Sprintf("%.1f",
			float64(resp.TotalSkillsMentioned)/float64(resp.CandidatesWithSkills))
	} else {
		resp.AvgSkillsPerCandidate = "0.0"
	}

	resp.CollegeData = topCounts(collegeCounts, topColleges)
	resp.SkillData = topCounts(skillCounts, topSkills)
	resp.DomainData = topCounts(domainCounts, topDomains)
	resp.YearData = topCounts(yearCounts, 0)

	now := time.Now()
	resp.DailyApplications = dailySeries(now, func(add func(time.Time)) {
		for _, c := range candidates {
			add(c.CreatedAt)
		}
	})
	resp.DailyOffers = dailySeries(now, func(add func(time.Time)) {
		for _, o := range offers {
			add(o.SentAt)
		}
	})

	statusCounts, acceptedColleges, withOffer := reduceOffers(offers, now)
	resp.TotalOffers = int64(len(offers))
	resp.Pending = statusCounts[offer.StatusPending]
	resp.Accepted = statusCounts[offer.StatusAccepted]
	resp.Declined = statusCounts[offer.StatusDeclined]
	resp.Expired = statusCounts[offer.StatusExpired]
	resp.NotSent = resp.TotalCandidates - int64(len(withOffer))
	if resp.NotSent < 0 {
		resp.NotSent = 0
	}
	resp.ResponseRate = responseRate(statusCounts)
	resp.TopCollegesByAcceptance = topCounts(acceptedColleges, topColleges)

	for i, c := range candidates {
		if i == recentRows {
			break
		}
		resp.RecentCandidates = append(resp.RecentCandidates, report.RecentCandidate{
			ID:      c.ID,
			Name:    c.FullName,
			Email:   c.Email,
			College: c.CollegeName,
			Skills:  len(c.TechnicalSkills),
			Applied: c.CreatedAt.Format(dayLabel),
		})
	}
	for i, o := range offers {
		if i == recentRows {
			break
		}
		resp.RecentOffers = append(resp.RecentOffers, report.RecentOffer{
			ID:     o.ID,
			Name:   o.CandidateName,
			Email:  o.Email,
			Status: displayStatus(o.Offer, now),
			SentAt: o.SentAt,
		})
	}

	return resp, nil
}

// OfferSummary implements report.ReportService.
func (s *ReportServiceImpl) OfferSummary(ctx context.Context) (report.OfferSummaryResponse, error) {
	candidates, err := s.candidateRepo.ListAll(ctx)
	if err != nil {
		return report.OfferSummaryResponse{}, err
	}
	offers, err := s.offerRepo.ListAll(ctx)
	if err != nil {
		return report.OfferSummaryResponse{}, err
	}

	now := time.Now()
	statusCounts, acceptedColleges, withOffer := reduceOffers(offers, now)

	resp := report.OfferSummaryResponse{
		Total:    int64(len(offers)),
		Pending:  statusCounts[offer.StatusPending],
		Accepted: statusCounts[offer.StatusAccepted],
		Declined: statusCounts[offer.StatusDeclined],
		Expired:  statusCounts[offer.StatusExpired],
		NotSent:  int64(len(candidates)) - int64(len(withOffer)),
	}
	if resp.NotSent < 0 {
		resp.NotSent = 0
	}

	resp.DailyTrend = dailySeries(now, func(add func(time.Time)) {
		for _, o := range offers {
			add(o.SentAt)
		}
	})
	resp.CollegeDistribution = topCounts(acceptedColleges, topColleges)

	return resp, nil
}

// reduceOffers walks the joined offer rows once and returns status counts
// with the lazy expiry applied for display, the college counts of accepted
// offers, and the set of candidates holding at least one offer.
func reduceOffers(offers []offer.OfferWithCandidate, now time.Time) (map[offer.Status]int64, map[string]int64, map[string]bool) {
	statusCounts := map[offer.Status]int64{}
	acceptedColleges := map[string]int64{}
	withOffer := map[string]bool{}

	for _, o := range offers {
		withOffer[o.CandidateID] = true
		status := offer.Status(displayStatus(o.Offer, now))
		statusCounts[status]++
		if status == offer.StatusAccepted && o.CandidateCollege != "" {
			acceptedColleges[o.CandidateCollege]++
		}
	}

	return statusCounts, acceptedColleges, withOffer
}

// displayStatus renders a stored status with the expiry window applied, so
// reports never show a pending offer that can no longer be answered.
func displayStatus(o offer.Offer, now time.Time) string {
	if o.Status == offer.StatusPending && o.IsExpired(now) {
		return string(offer.StatusExpired)
	}
	return string(o.Status)
}

func responseRate(statusCounts map[offer.Status]int64) int64 {
	responded := statusCounts[offer.StatusAccepted] + statusCounts[offer.StatusDeclined]
	total := responded + statusCounts[offer.StatusPending] + statusCounts[offer.StatusExpired]
	if total == 0 {
		return 0
	}
	return int64(float64(responded)/float64(total)*100 + 0.5)
}

// PreferenceSummary implements report.ReportService.
func (s *ReportServiceImpl) PreferenceSummary(ctx context.Context) (report.PreferenceSummaryResponse, error) {
	prefs, err := s.preferenceRepo.ListAll(ctx)
	if err != nil {
		return report.PreferenceSummaryResponse{}, err
	}

	domainStats := map[string]int64{}
	collegeStats := map[string]int64{}
	skillLevelStats := map[string]int64{}
	skillLevelByDomain := map[string]map[string]int64{}
	technologyStats := map[string]int64{}
	monthlyStats := map[string]int64{}

	for _, p := range prefs {
		if p.Domain != "" {
			domainStats[p.Domain]++
			if p.SkillLevel != "" {
				if skillLevelByDomain[p.Domain] == nil {
					skillLevelByDomain[p.Domain] = map[string]int64{}
				}
				skillLevelByDomain[p.Domain][p.SkillLevel]++
			}
		}
		if p.CollegeName != "" {
			collegeStats[p.CollegeName]++
		}
		if p.SkillLevel != "" {
			skillLevelStats[p.SkillLevel]++
		}
		for _, tech := range p.Technologies {
			t := strings.TrimSpace(tech)
			if t != "" {
				technologyStats[t]++
			}
		}
		monthlyStats[p.SubmittedAt.Format(monthLabel)]++
	}

	return report.PreferenceSummaryResponse{
		Total:              int64(len(prefs)),
		DomainStats:        trimCounts(domainStats, topDomains),
		CollegeStats:       trimCounts(collegeStats, topColleges),
		SkillLevelStats:    skillLevelStats,
		SkillLevelByDomain: skillLevelByDomain,
		TechnologyStats:    trimCounts(technologyStats, topTechnology),
		MonthlyStats:       monthlyStats,
	}, nil
}

// PreferenceFilters implements report.ReportService.
func (s *ReportServiceImpl) PreferenceFilters(ctx context.Context) (report.PreferenceFiltersResponse, error) {
	prefs, err := s.preferenceRepo.ListAll(ctx)
	if err != nil {
		return report.PreferenceFiltersResponse{}, err
	}

	colleges := map[string]bool{}
	domains := map[string]bool{}
	skillLevels := map[string]bool{}
	for _, p := range prefs {
		if p.CollegeName != "" {
			colleges[p.CollegeName] = true
		}
		if p.Domain != "" {
			domains[p.Domain] = true
		}
		if p.SkillLevel != "" {
			skillLevels[p.SkillLevel] = true
		}
	}

	return report.PreferenceFiltersResponse{
		Colleges:    sortedKeys(colleges),
		Domains:     sortedKeys(domains),
		SkillLevels: sortedKeys(skillLevels),
	}, nil
}

// CandidateColleges implements report.ReportService.
func (s *ReportServiceImpl) CandidateColleges(ctx context.Context) ([]string, error) {
	candidates, err := s.candidateRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	colleges := map[string]bool{}
	for _, c := range candidates {
		if c.CollegeName != "" {
			colleges[c.CollegeName] = true
		}
	}

	return sortedKeys(colleges), nil
}

// InternSummary implements report.ReportService.
func (s *ReportServiceImpl) InternSummary(ctx context.Context) (report.InternSummaryResponse, error) {
	interns, err := s.internRepo.ListWithProfiles(ctx)
	if err != nil {
		return report.InternSummaryResponse{}, err
	}

	resp := report.InternSummaryResponse{}
	domainStats := map[string]*report.InternDomainStats{}
	monthly := map[string]*report.MonthlyConversions{}
	skillLevels := map[string]int64{}
	cutoff := time.Now().Add(-trendWindow)

	for _, iw := range interns {
		p := iw.Profile

		resp.Totals.TotalInterns++
		switch p.InternshipStatus {
		case intern.InternshipActive:
			resp.Totals.ActiveInterns++
		case intern.InternshipCompleted:
			resp.Totals.CompletedInterns++
		case intern.InternshipTerminated:
			resp.Totals.TerminatedInterns++
		}
		if p.InternshipFeePaid {
			resp.Totals.FeePaidInterns++
		}
		if p.CertificateIssued {
			resp.Totals.CertificateIssuedInterns++
		}
		if p.OfferLetterIssued {
			resp.Totals.OfferLetterIssuedInterns++
		}

		domainName := p.PreferredDomain
		if domainName == "" {
			domainName = "Unassigned"
		}
		ds, ok := domainStats[domainName]
		if !ok {
			ds = &report.InternDomainStats{Domain: domainName}
			domainStats[domainName] = ds
		}
		ds.Total++
		switch p.InternshipStatus {
		case intern.InternshipActive:
			ds.Active++
		case intern.InternshipCompleted:
			ds.Completed++
		case intern.InternshipTerminated:
			ds.Terminated++
		}
		if p.InternshipFeePaid {
			ds.FeePaid++
		}
		if p.CertificateIssued {
			ds.CertificateIssued++
		}

		month := iw.CreatedAt.Format(monthLabel)
		mc, ok := monthly[month]
		if !ok {
			mc = &report.MonthlyConversions{Month: month, Domains: map[string]int64{}}
			monthly[month] = mc
		}
		mc.Count++
		mc.Domains[domainName]++

		if p.SkillLevel != "" {
			skillLevels[p.SkillLevel]++
		}

		if iw.CreatedAt.After(cutoff) || iw.UpdatedAt.After(cutoff) {
			activity := "updated"
			if iw.CreatedAt.After(cutoff) {
				activity = "created"
			}
			resp.RecentActivity = append(resp.RecentActivity, report.InternActivity{
				ID:               iw.ID,
				FullName:         iw.FullName,
				Email:            iw.Email,
				PreferredDomain:  p.PreferredDomain,
				InternshipStatus: string(p.InternshipStatus),
				CreatedAt:        iw.CreatedAt,
				UpdatedAt:        iw.UpdatedAt,
				Activity:         activity,
			})
		}
	}

	for _, ds := range domainStats {
		resp.DomainStats = append(resp.DomainStats, *ds)
	}
	sort.Slice(resp.DomainStats, func(i, j int) bool {
		if resp.DomainStats[i].Total != resp.DomainStats[j].Total {
			return resp.DomainStats[i].Total > resp.DomainStats[j].Total
		}
		return resp.DomainStats[i].Domain < resp.DomainStats[j].Domain
	})

	for _, mc := range monthly {
		resp.MonthlyConversions = append(resp.MonthlyConversions, *mc)
	}
	sort.Slice(resp.MonthlyConversions, func(i, j int) bool {
		return resp.MonthlyConversions[i].Month > resp.MonthlyConversions[j].Month
	})

	for level, count := range skillLevels {
		resp.SkillLevelStats = append(resp.SkillLevelStats, report.SkillLevelCount{
			Level: level,
			Count: count,
		})
	}
	sort.Slice(resp.SkillLevelStats, func(i, j int) bool {
		if resp.SkillLevelStats[i].Count != resp.SkillLevelStats[j].Count {
			return resp.SkillLevelStats[i].Count > resp.SkillLevelStats[j].Count
		}
		return resp.SkillLevelStats[i].Level < resp.SkillLevelStats[j].Level
	})

	sort.Slice(resp.RecentActivity, func(i, j int) bool {
		return resp.RecentActivity[i].UpdatedAt.After(resp.RecentActivity[j].UpdatedAt)
	})

	return resp, nil
}

// CandidatesWithOfferStatus implements report.ReportService.
func (s *ReportServiceImpl) CandidatesWithOfferStatus(ctx context.Context) ([]report.CandidateWithOfferStatus, error) {
	candidates, err := s.candidateRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	offers, err := s.offerRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	latest := map[string]offer.OfferWithCandidate{}
	for _, o := range offers {
		cur, ok := latest[o.CandidateID]
		if !ok || o.SentAt.After(cur.SentAt) {
			latest[o.CandidateID] = o
		}
	}

	now := time.Now()
	out := make([]report.CandidateWithOfferStatus, 0, len(candidates))
	for _, c := range candidates {
		row := report.CandidateWithOfferStatus{
			ID:              c.ID,
			FullName:        c.FullName,
			Email:           c.Email,
			Mobile:          c.Mobile,
			CollegeName:     c.CollegeName,
			Degree:          c.Degree,
			Branch:          c.Branch,
			YearOfStudy:     c.YearOfStudy,
			TechnicalSkills: c.TechnicalSkills,
			CityState:       c.CityState,
			CreatedAt:       c.CreatedAt,
			OfferStatus:     offer.StatusNotSent,
		}

		if o, ok := latest[c.ID]; ok {
			row.OfferStatus = displayStatus(o.Offer, now)
			id := o.ID
			sentAt := o.SentAt
			expiresAt := o.ExpiresAt
			row.OfferID = &id
			row.OfferSentAt = &sentAt
			row.OfferExpiresAt = &expiresAt
		}

		out = append(out, row)
	}

	return out, nil
}

// dailySeries buckets timestamps into the trailing 30 days, one labelled
// entry per day including empty ones
func dailySeries(now time.Time, walk func(add func(time.Time))) []report.DateCount {
	start := now.AddDate(0, 0, -29)
	startDay := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())

	counts := map[string]int64{}
	walk(func(ts time.Time) {
		if ts.Before(startDay) || ts.After(now) {
			return
		}
		counts[ts.Format(dayLabel)]++
	})

	series := make([]report.DateCount, 0, 30)
	for d := startDay; !d.After(now); d = d.AddDate(0, 0, 1) {
		label := d.Format(dayLabel)
		series = append(series, report.DateCount{Date: label, Count: counts[label]})
	}
	return series
}

// topCounts converts a counter map into a sorted slice, trimmed to n when
// n > 0
func topCounts(counts map[string]int64, n int) []report.NameCount {
	out := make([]report.NameCount, 0, len(counts))
	for name, value := range counts {
		out = append(out, report.NameCount{Name: name, Value: value})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Value != out[j].Value {
			return out[i].Value > out[j].Value
		}
		return out[i].Name < out[j].Name
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// trimCounts keeps the n highest entries of a counter map
func trimCounts(counts map[string]int64, n int) map[string]int64 {
	if len(counts) <= n {
		return counts
	}
	trimmed := map[string]int64{}
	for _, nc := range topCounts(counts, n) {
		trimmed[nc.Name] = nc.Value
	}
	return trimmed
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
