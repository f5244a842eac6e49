package report

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/sandevex/hiring-backend-go/internal/domain/candidate"
	"github.com/sandevex/hiring-backend-go/internal/domain/intern"
	"github.com/sandevex/hiring-backend-go/internal/domain/offer"
	"github.com/sandevex/hiring-backend-go/internal/domain/preference"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Listing-only fakes. Reports never write, the remaining interface methods
// are stubs.

type fakeCandidateRepo struct{ all []candidate.Candidate }

func (f *fakeCandidateRepo) GetByID(_ context.Context, _ string) (candidate.Candidate, error) {
	return candidate.Candidate{}, candidate.ErrCandidateNotFound
}
func (f *fakeCandidateRepo) List(_ context.Context, _ candidate.ListFilter) ([]candidate.Candidate, int64, error) {
	return f.all, int64(len(f.all)), nil
}
func (f *fakeCandidateRepo) ListAll(_ context.Context) ([]candidate.Candidate, error) {
	return f.all, nil
}
func (f *fakeCandidateRepo) Upsert(_ context.Context, c candidate.Candidate) (candidate.Candidate, error) {
	return c, nil
}

type fakeOfferRepo struct{ all []offer.OfferWithCandidate }

func (f *fakeOfferRepo) Create(_ context.Context, o offer.Offer) (offer.Offer, error) { return o, nil }
func (f *fakeOfferRepo) GetByID(_ context.Context, _ string) (offer.Offer, error) {
	return offer.Offer{}, offer.ErrOfferNotFound
}
func (f *fakeOfferRepo) GetByToken(_ context.Context, _ string) (offer.Offer, error) {
	return offer.Offer{}, offer.ErrOfferNotFound
}
func (f *fakeOfferRepo) GetLatestByCandidateID(_ context.Context, _ string) (offer.Offer, error) {
	return offer.Offer{}, offer.ErrOfferNotFound
}
func (f *fakeOfferRepo) GetByCandidateAndStatus(_ context.Context, _ string, _ offer.Status) (offer.Offer, error) {
	return offer.Offer{}, offer.ErrOfferNotFound
}
func (f *fakeOfferRepo) UpdateStatus(_ context.Context, _ string, _ offer.Status, _ *time.Time) error {
	return nil
}
func (f *fakeOfferRepo) ResetForResend(_ context.Context, _, _ string, _, _ time.Time) error {
	return nil
}
func (f *fakeOfferRepo) SetPhysicalLetterCollected(_ context.Context, _ string, _ bool) error {
	return nil
}
func (f *fakeOfferRepo) ExpirePending(_ context.Context, _ string, _ time.Time) (int64, error) {
	return 0, nil
}
func (f *fakeOfferRepo) List(_ context.Context, _ offer.ListFilter) ([]offer.OfferWithCandidate, int64, error) {
	return f.all, int64(len(f.all)), nil
}
func (f *fakeOfferRepo) ListAll(_ context.Context) ([]offer.OfferWithCandidate, error) {
	return f.all, nil
}
func (f *fakeOfferRepo) ListCollectedAccepted(_ context.Context) ([]offer.Offer, error) {
	return nil, nil
}

type fakePreferenceRepo struct{ all []preference.DomainPreference }

func (f *fakePreferenceRepo) GetByEmail(_ context.Context, _ string) (preference.DomainPreference, error) {
	return preference.DomainPreference{}, preference.ErrPreferenceNotFound
}
func (f *fakePreferenceRepo) ExistsByEmail(_ context.Context, _ string) (bool, error) {
	return false, nil
}
func (f *fakePreferenceRepo) List(_ context.Context, _ preference.ListFilter) ([]preference.DomainPreference, int64, error) {
	return f.all, int64(len(f.all)), nil
}
func (f *fakePreferenceRepo) ListAll(_ context.Context) ([]preference.DomainPreference, error) {
	return f.all, nil
}
func (f *fakePreferenceRepo) Create(_ context.Context, p preference.DomainPreference) (preference.DomainPreference, error) {
	return p, nil
}

type fakeInternRepo struct{ all []intern.InternWithProfile }

func (f *fakeInternRepo) Create(_ context.Context, i intern.Intern) (intern.Intern, error) {
	return i, nil
}
func (f *fakeInternRepo) GetByID(_ context.Context, _ string) (intern.Intern, error) {
	return intern.Intern{}, intern.ErrInternNotFound
}
func (f *fakeInternRepo) GetByEmail(_ context.Context, _ string) (intern.Intern, error) {
	return intern.Intern{}, intern.ErrInternNotFound
}
func (f *fakeInternRepo) Update(_ context.Context, i intern.Intern) (intern.Intern, error) {
	return i, nil
}
func (f *fakeInternRepo) ListWithProfiles(_ context.Context) ([]intern.InternWithProfile, error) {
	return f.all, nil
}

func newService(
	candidates []candidate.Candidate,
	offers []offer.OfferWithCandidate,
	prefs []preference.DomainPreference,
	interns []intern.InternWithProfile,
) *ReportServiceImpl {
	return &ReportServiceImpl{
		candidateRepo:  &fakeCandidateRepo{all: candidates},
		offerRepo:      &fakeOfferRepo{all: offers},
		preferenceRepo: &fakePreferenceRepo{all: prefs},
		internRepo:     &fakeInternRepo{all: interns},
	}
}

func offerRow(candidateID, college string, status offer.Status, sentAgo time.Duration) offer.OfferWithCandidate {
	now := time.Now()
	return offer.OfferWithCandidate{
		Offer: offer.Offer{
			ID:          candidateID + "-offer",
			CandidateID: candidateID,
			Email:       candidateID + "@example.com",
			Status:      status,
			SentAt:      now.Add(-sentAgo),
			ExpiresAt:   now.Add(24*time.Hour - sentAgo),
		},
		CandidateName:    "Candidate " + candidateID,
		CandidateCollege: college,
	}
}

func TestDashboardCandidateStats(t *testing.T) {
	svc := newService([]candidate.Candidate{
		{ID: "c1", CollegeName: "IIT Delhi", TechnicalSkills: []string{"Go", "SQL"}, CreatedAt: time.Now()},
		{ID: "c2", CollegeName: "IIT Delhi", TechnicalSkills: []string{"go", "react"}, CreatedAt: time.Now()},
		{ID: "c3", CollegeName: "NIT Trichy", CreatedAt: time.Now()},
	}, nil, nil, nil)

	resp, err := svc.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(3), resp.TotalCandidates)
	assert.Equal(t, int64(2), resp.UniqueColleges)
	// Skills are case folded, "Go" and "go" are one skill.
	assert.Equal(t, int64(3), resp.UniqueSkills)
	assert.Equal(t, int64(4), resp.TotalSkillsMentioned)
	assert.Equal(t, int64(2), resp.CandidatesWithSkills)
	assert.Equal(t, "2.0", resp.AvgSkillsPerCandidate)

	require.NotEmpty(t, resp.CollegeData)
	assert.Equal(t, "IIT Delhi", resp.CollegeData[0].Name)
	assert.Equal(t, int64(2), resp.CollegeData[0].Value)
}

func TestDashboardOfferStats(t *testing.T) {
	candidates := []candidate.Candidate{{ID: "c1"}, {ID: "c2"}, {ID: "c3"}, {ID: "c4"}}
	offers := []offer.OfferWithCandidate{
		offerRow("c1", "IIT Delhi", offer.StatusAccepted, time.Hour),
		offerRow("c2", "IIT Bombay", offer.StatusDeclined, time.Hour),
		offerRow("c3", "IIT Delhi", offer.StatusPending, time.Hour),
	}
	svc := newService(candidates, offers, nil, nil)

	resp, err := svc.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(3), resp.TotalOffers)
	assert.Equal(t, int64(1), resp.NotSent)
	assert.Equal(t, int64(1), resp.Accepted)
	assert.Equal(t, int64(1), resp.Declined)
	assert.Equal(t, int64(1), resp.Pending)
	// 2 of 3 responded.
	assert.Equal(t, int64(67), resp.ResponseRate)

	require.NotEmpty(t, resp.TopCollegesByAcceptance)
	assert.Equal(t, "IIT Delhi", resp.TopCollegesByAcceptance[0].Name)
}

func TestDashboardDailySeriesCoversThirtyDays(t *testing.T) {
	svc := newService([]candidate.Candidate{
		{ID: "c1", CreatedAt: time.Now()},
		{ID: "c2", CreatedAt: time.Now().Add(-40 * 24 * time.Hour)}, // outside window
	}, nil, nil, nil)

	resp, err := svc.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Len(t, resp.DailyApplications, 30)
	assert.Equal(t, time.Now().Format("Jan 2"), resp.DailyApplications[29].Date)
	assert.Equal(t, int64(1), resp.DailyApplications[29].Count)

	var total int64
	for _, d := range resp.DailyApplications {
		total += d.Count
	}
	assert.Equal(t, int64(1), total)
}

func TestOfferSummaryLazyExpiryDisplay(t *testing.T) {
	stale := offerRow("c1", "IIT Delhi", offer.StatusPending, time.Hour)
	stale.ExpiresAt = time.Now().Add(-time.Hour)
	svc := newService([]candidate.Candidate{{ID: "c1"}}, []offer.OfferWithCandidate{stale}, nil, nil)

	resp, err := svc.OfferSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(0), resp.Pending)
	assert.Equal(t, int64(1), resp.Expired)
}

func TestPreferenceSummary(t *testing.T) {
	base := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)
	prefs := []preference.DomainPreference{
		{Domain: "Backend", SkillLevel: "Beginner", CollegeName: "IIT Delhi", Technologies: []string{"Go", " SQL "}, SubmittedAt: base},
		{Domain: "Backend", SkillLevel: "Advanced", CollegeName: "IIT Delhi", Technologies: []string{"Go"}, SubmittedAt: base},
		{Domain: "Frontend", SkillLevel: "Beginner", CollegeName: "NIT Trichy", SubmittedAt: base.AddDate(0, 1, 0)},
	}
	svc := newService(nil, nil, prefs, nil)

	resp, err := svc.PreferenceSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(3), resp.Total)
	assert.Equal(t, int64(2), resp.DomainStats["Backend"])
	assert.Equal(t, int64(2), resp.SkillLevelStats["Beginner"])
	assert.Equal(t, int64(1), resp.SkillLevelByDomain["Backend"]["Advanced"])
	assert.Equal(t, int64(2), resp.TechnologyStats["Go"])
	assert.Equal(t, int64(1), resp.TechnologyStats["SQL"])
	assert.Equal(t, int64(2), resp.MonthlyStats["2026-05"])
	assert.Equal(t, int64(1), resp.MonthlyStats["2026-06"])
}

func TestPreferenceSummaryTrimsDomains(t *testing.T) {
	var prefs []preference.DomainPreference
	for i := 0; i < 12; i++ {
		prefs = append(prefs, preference.DomainPreference{
			Domain:      fmt.Sprintf("Domain %d", i),
			SubmittedAt: time.Now(),
		})
	}
	svc := newService(nil, nil, prefs, nil)

	resp, err := svc.PreferenceSummary(context.Background())
	require.NoError(t, err)

	assert.Len(t, resp.DomainStats, 10)
}

func TestPreferenceFilters(t *testing.T) {
	prefs := []preference.DomainPreference{
		{Domain: "Backend", SkillLevel: "Beginner", CollegeName: "B College"},
		{Domain: "Frontend", SkillLevel: "Beginner", CollegeName: "A College"},
	}
	svc := newService(nil, nil, prefs, nil)

	resp, err := svc.PreferenceFilters(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"A College", "B College"}, resp.Colleges)
	assert.Equal(t, []string{"Backend", "Frontend"}, resp.Domains)
	assert.Equal(t, []string{"Beginner"}, resp.SkillLevels)
}

func TestInternSummary(t *testing.T) {
	now := time.Now()
	interns := []intern.InternWithProfile{
		{
			Intern: intern.Intern{ID: "i1", FullName: "Jane Doe", CreatedAt: now, UpdatedAt: now},
			Profile: intern.Profile{
				PreferredDomain:   "Backend",
				SkillLevel:        "Advanced",
				InternshipStatus:  intern.InternshipActive,
				InternshipFeePaid: true,
			},
		},
		{
			Intern: intern.Intern{ID: "i2", FullName: "Bob Roy", CreatedAt: now.Add(-60 * 24 * time.Hour), UpdatedAt: now.Add(-60 * 24 * time.Hour)},
			Profile: intern.Profile{
				PreferredDomain:   "Backend",
				SkillLevel:        "Beginner",
				InternshipStatus:  intern.InternshipCompleted,
				CertificateIssued: true,
			},
		},
	}
	svc := newService(nil, nil, nil, interns)

	resp, err := svc.InternSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(2), resp.Totals.TotalInterns)
	assert.Equal(t, int64(1), resp.Totals.ActiveInterns)
	assert.Equal(t, int64(1), resp.Totals.CompletedInterns)
	assert.Equal(t, int64(1), resp.Totals.FeePaidInterns)
	assert.Equal(t, int64(1), resp.Totals.CertificateIssuedInterns)

	require.Len(t, resp.DomainStats, 1)
	assert.Equal(t, "Backend", resp.DomainStats[0].Domain)
	assert.Equal(t, int64(2), resp.DomainStats[0].Total)
	assert.Equal(t, int64(1), resp.DomainStats[0].Active)

	require.Len(t, resp.MonthlyConversions, 2)
	// Newest month first.
	assert.Equal(t, now.Format("2006-01"), resp.MonthlyConversions[0].Month)

	// Only the recent intern shows in the activity feed.
	require.Len(t, resp.RecentActivity, 1)
	assert.Equal(t, "i1", resp.RecentActivity[0].ID)
	assert.Equal(t, "created", resp.RecentActivity[0].Activity)
}

func TestCandidatesWithOfferStatus(t *testing.T) {
	candidates := []candidate.Candidate{
		{ID: "c1", FullName: "Jane"},
		{ID: "c2", FullName: "Bob"},
	}
	oldOffer := offerRow("c1", "", offer.StatusDeclined, 72*time.Hour)
	newOffer := offerRow("c1", "", offer.StatusPending, time.Hour)
	svc := newService(candidates, []offer.OfferWithCandidate{oldOffer, newOffer}, nil, nil)

	rows, err := svc.CandidatesWithOfferStatus(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	byID := map[string]*struct{ status, offerID string }{}
	for _, r := range rows {
		entry := &struct{ status, offerID string }{status: r.OfferStatus}
		if r.OfferID != nil {
			entry.offerID = *r.OfferID
		}
		byID[r.ID] = entry
	}

	// Latest offer wins for c1.
	assert.Equal(t, string(offer.StatusPending), byID["c1"].status)
	assert.Equal(t, newOffer.ID, byID["c1"].offerID)
	assert.Equal(t, offer.StatusNotSent, byID["c2"].status)
}

func TestResponseRateRounds(t *testing.T) {
	counts := map[offer.Status]int64{
		offer.StatusAccepted: 1,
		offer.StatusPending:  2,
	}
	assert.Equal(t, int64(33), responseRate(counts))
	assert.Equal(t, int64(0), responseRate(map[offer.Status]int64{}))
}
