package intern

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/sandevex/hiring-backend-go/internal/domain/audit"
	"github.com/sandevex/hiring-backend-go/internal/domain/candidate"
	"github.com/sandevex/hiring-backend-go/internal/domain/intern"
	"github.com/sandevex/hiring-backend-go/internal/domain/offer"
	"github.com/sandevex/hiring-backend-go/internal/domain/preference"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeInternRepo struct {
	interns map[string]intern.Intern // keyed by id
	nextID  int
}

func (f *fakeInternRepo) Create(_ context.Context, i intern.Intern) (intern.Intern, error) {
	f.nextID++
	i.ID = fmt.Sprintf("intern-%d", f.nextID)
	f.interns[i.ID] = i
	return i, nil
}

func (f *fakeInternRepo) GetByID(_ context.Context, id string) (intern.Intern, error) {
	i, ok := f.interns[id]
	if !ok {
		return intern.Intern{}, intern.ErrInternNotFound
	}
	return i, nil
}

func (f *fakeInternRepo) GetByEmail(_ context.Context, email string) (intern.Intern, error) {
	for _, i := range f.interns {
		if i.Email == email {
			return i, nil
		}
	}
	return intern.Intern{}, intern.ErrInternNotFound
}

func (f *fakeInternRepo) Update(_ context.Context, i intern.Intern) (intern.Intern, error) {
	if _, ok := f.interns[i.ID]; !ok {
		return intern.Intern{}, intern.ErrInternNotFound
	}
	f.interns[i.ID] = i
	return i, nil
}

func (f *fakeInternRepo) ListWithProfiles(_ context.Context) ([]intern.InternWithProfile, error) {
	return nil, nil
}

type fakeProfileRepo struct {
	profiles map[string]intern.Profile // keyed by intern id
	nextID   int
}

func (f *fakeProfileRepo) Create(_ context.Context, p intern.Profile) (intern.Profile, error) {
	f.nextID++
	p.ID = fmt.Sprintf("profile-%d", f.nextID)
	f.profiles[p.InternID] = p
	return p, nil
}

func (f *fakeProfileRepo) GetByInternID(_ context.Context, internID string) (intern.Profile, error) {
	p, ok := f.profiles[internID]
	if !ok {
		return intern.Profile{}, intern.ErrProfileNotFound
	}
	return p, nil
}

func (f *fakeProfileRepo) Update(_ context.Context, p intern.Profile) (intern.Profile, error) {
	if _, ok := f.profiles[p.InternID]; !ok {
		return intern.Profile{}, intern.ErrProfileNotFound
	}
	f.profiles[p.InternID] = p
	return p, nil
}

func (f *fakeProfileRepo) MarkOfferLetterIssued(_ context.Context, internID string) error {
	p, ok := f.profiles[internID]
	if !ok {
		return intern.ErrProfileNotFound
	}
	p.OfferLetterIssued = true
	f.profiles[internID] = p
	return nil
}

type fakeCandidateRepo struct {
	candidates map[string]candidate.Candidate
}

func (f *fakeCandidateRepo) GetByID(_ context.Context, id string) (candidate.Candidate, error) {
	c, ok := f.candidates[id]
	if !ok {
		return candidate.Candidate{}, candidate.ErrCandidateNotFound
	}
	return c, nil
}

func (f *fakeCandidateRepo) List(_ context.Context, _ candidate.ListFilter) ([]candidate.Candidate, int64, error) {
	return nil, 0, nil
}

func (f *fakeCandidateRepo) ListAll(_ context.Context) ([]candidate.Candidate, error) {
	return nil, nil
}

func (f *fakeCandidateRepo) Upsert(_ context.Context, c candidate.Candidate) (candidate.Candidate, error) {
	f.candidates[c.ID] = c
	return c, nil
}

type fakeOfferRepo struct {
	offers map[string]offer.Offer
}

func (f *fakeOfferRepo) Create(_ context.Context, o offer.Offer) (offer.Offer, error) {
	f.offers[o.ID] = o
	return o, nil
}

func (f *fakeOfferRepo) GetByID(_ context.Context, id string) (offer.Offer, error) {
	o, ok := f.offers[id]
	if !ok {
		return offer.Offer{}, offer.ErrOfferNotFound
	}
	return o, nil
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
	return nil, 0, nil
}

func (f *fakeOfferRepo) ListAll(_ context.Context) ([]offer.OfferWithCandidate, error) {
	return nil, nil
}

func (f *fakeOfferRepo) ListCollectedAccepted(_ context.Context) ([]offer.Offer, error) {
	return nil, nil
}

type fakePreferenceRepo struct {
	byEmail map[string]preference.DomainPreference
}

func (f *fakePreferenceRepo) GetByEmail(_ context.Context, email string) (preference.DomainPreference, error) {
	p, ok := f.byEmail[email]
	if !ok {
		return preference.DomainPreference{}, preference.ErrPreferenceNotFound
	}
	return p, nil
}

func (f *fakePreferenceRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := f.byEmail[email]
	return ok, nil
}

func (f *fakePreferenceRepo) List(_ context.Context, _ preference.ListFilter) ([]preference.DomainPreference, int64, error) {
	return nil, 0, nil
}

func (f *fakePreferenceRepo) ListAll(_ context.Context) ([]preference.DomainPreference, error) {
	return nil, nil
}

func (f *fakePreferenceRepo) Create(_ context.Context, p preference.DomainPreference) (preference.DomainPreference, error) {
	f.byEmail[p.Email] = p
	return p, nil
}

type fakeAuditService struct {
	recorded []audit.Log
}

func (f *fakeAuditService) Record(_ context.Context, l audit.Log) {
	f.recorded = append(f.recorded, l)
}

func (f *fakeAuditService) Query(_ context.Context, _ audit.QueryFilter) ([]audit.Log, int64, error) {
	return f.recorded, int64(len(f.recorded)), nil
}

func (f *fakeAuditService) Stats(_ context.Context) (audit.Stats, error) {
	return audit.Stats{}, nil
}

func (f *fakeAuditService) OperatorActivity(_ context.Context) ([]audit.OperatorActivity, error) {
	return nil, nil
}

type fixture struct {
	svc         *InternServiceImpl
	interns     *fakeInternRepo
	profiles    *fakeProfileRepo
	candidates  *fakeCandidateRepo
	offers      *fakeOfferRepo
	preferences *fakePreferenceRepo
	auditSvc    *fakeAuditService
}

func newFixture() *fixture {
	f := &fixture{
		interns:     &fakeInternRepo{interns: map[string]intern.Intern{}},
		profiles:    &fakeProfileRepo{profiles: map[string]intern.Profile{}},
		candidates:  &fakeCandidateRepo{candidates: map[string]candidate.Candidate{}},
		offers:      &fakeOfferRepo{offers: map[string]offer.Offer{}},
		preferences: &fakePreferenceRepo{byEmail: map[string]preference.DomainPreference{}},
		auditSvc:    &fakeAuditService{},
	}
	f.svc = &InternServiceImpl{
		internRepo:     f.interns,
		profileRepo:    f.profiles,
		candidateRepo:  f.candidates,
		offerRepo:      f.offers,
		preferenceRepo: f.preferences,
		auditService:   f.auditSvc,
		runTx: func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	}
	return f
}

func (f *fixture) seedConvertible() {
	f.candidates.candidates["c1"] = candidate.Candidate{
		ID:              "c1",
		FullName:        "jane.doe",
		Email:           "jane@example.com",
		Mobile:          "9876543210",
		CollegeName:     "IIT Delhi",
		Degree:          "BTech",
		TechnicalSkills: []string{"go", "sql"},
		PriorExperience: "1 summer project",
	}
	mobile := "9876543210"
	f.offers.offers["o1"] = offer.Offer{
		ID:          "o1",
		CandidateID: "c1",
		Email:       "jane@example.com",
		Mobile:      &mobile,
		Status:      offer.StatusAccepted,
	}
	f.preferences.byEmail["jane@example.com"] = preference.DomainPreference{
		ID:           "p1",
		Email:        "jane@example.com",
		Domain:       "Backend",
		SkillLevel:   "Intermediate",
		PortfolioURL: "https://jane.dev",
	}
}

func convertReq() intern.ConvertRequest {
	return intern.ConvertRequest{
		CandidateID:        "c1",
		OfferID:            "o1",
		DomainPreferenceID: "p1",
	}
}

func TestConvert(t *testing.T) {
	f := newFixture()
	f.seedConvertible()

	got, err := f.svc.Convert(context.Background(), convertReq())
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", got.FullName)
	assert.Equal(t, "jane@example.com", got.Intern.Email)
	assert.Equal(t, "Backend", got.Profile.PreferredDomain)
	assert.Equal(t, "Intermediate", got.Profile.SkillLevel)
	assert.Equal(t, "https://jane.dev", got.Profile.PortfolioURL)
	assert.Equal(t, []string{"go", "sql"}, got.Profile.TechnicalSkills)
	assert.Equal(t, intern.OfferAccepted, got.Profile.OfferStatus)
	assert.Equal(t, intern.InternshipActive, got.Profile.InternshipStatus)
	assert.False(t, got.Profile.InternshipFeePaid)
	require.NotNil(t, got.Profile.JoinedAt)
	assert.WithinDuration(t, time.Now(), *got.Profile.JoinedAt, time.Minute)
	assert.Contains(t, got.Profile.Notes, "Converted from candidate record on")
}

func TestConvertRecordsTwoAuditEntries(t *testing.T) {
	f := newFixture()
	f.seedConvertible()

	_, err := f.svc.Convert(context.Background(), convertReq())
	require.NoError(t, err)

	require.Len(t, f.auditSvc.recorded, 2)
	assert.Equal(t, audit.EntityIntern, f.auditSvc.recorded[0].EntityType)
	assert.Equal(t, audit.ActionCreate, f.auditSvc.recorded[0].Action)
	assert.Equal(t, audit.EntityInternProfile, f.auditSvc.recorded[1].EntityType)
}

func TestConvertMapsPendingToNotSent(t *testing.T) {
	f := newFixture()
	f.seedConvertible()
	o := f.offers.offers["o1"]
	o.Status = offer.StatusPending
	f.offers.offers["o1"] = o

	got, err := f.svc.Convert(context.Background(), convertReq())
	require.NoError(t, err)
	assert.Equal(t, intern.OfferNotSent, got.Profile.OfferStatus)
}

func TestConvertEmailMismatch(t *testing.T) {
	f := newFixture()
	f.seedConvertible()
	o := f.offers.offers["o1"]
	o.Email = "someone.else@example.com"
	f.offers.offers["o1"] = o

	_, err := f.svc.Convert(context.Background(), convertReq())
	assert.ErrorIs(t, err, intern.ErrEmailMismatch)
}

func TestConvertEmailComparisonIgnoresCase(t *testing.T) {
	f := newFixture()
	f.seedConvertible()
	o := f.offers.offers["o1"]
	o.Email = "Jane@Example.com"
	f.offers.offers["o1"] = o

	_, err := f.svc.Convert(context.Background(), convertReq())
	assert.NoError(t, err)
}

func TestConvertPhoneMismatch(t *testing.T) {
	f := newFixture()
	f.seedConvertible()
	other := "1112223333"
	o := f.offers.offers["o1"]
	o.Mobile = &other
	f.offers.offers["o1"] = o

	_, err := f.svc.Convert(context.Background(), convertReq())
	assert.ErrorIs(t, err, intern.ErrPhoneMismatch)
}

func TestConvertPhoneCheckSkippedWhenOfferHasNone(t *testing.T) {
	f := newFixture()
	f.seedConvertible()
	o := f.offers.offers["o1"]
	o.Mobile = nil
	f.offers.offers["o1"] = o

	_, err := f.svc.Convert(context.Background(), convertReq())
	assert.NoError(t, err)
}

func TestConvertMissingPreference(t *testing.T) {
	f := newFixture()
	f.seedConvertible()
	delete(f.preferences.byEmail, "jane@example.com")

	_, err := f.svc.Convert(context.Background(), convertReq())
	assert.ErrorIs(t, err, preference.ErrPreferenceNotFound)
}

func TestConvertTwiceRefused(t *testing.T) {
	f := newFixture()
	f.seedConvertible()

	_, err := f.svc.Convert(context.Background(), convertReq())
	require.NoError(t, err)

	_, err = f.svc.Convert(context.Background(), convertReq())
	assert.ErrorIs(t, err, intern.ErrAlreadyConverted)
}

func TestConvertLetterCollectedCarriesOver(t *testing.T) {
	f := newFixture()
	f.seedConvertible()
	o := f.offers.offers["o1"]
	o.PhysicalLetterCollected = true
	f.offers.offers["o1"] = o

	got, err := f.svc.Convert(context.Background(), convertReq())
	require.NoError(t, err)
	assert.True(t, got.Profile.OfferLetterIssued)
	assert.NotNil(t, got.Profile.OfferLetterIssuedAt)
}

func TestUpdatePartialPatch(t *testing.T) {
	f := newFixture()
	f.seedConvertible()
	created, err := f.svc.Convert(context.Background(), convertReq())
	require.NoError(t, err)

	status := string(intern.InternshipCompleted)
	feePaid := true
	got, err := f.svc.Update(context.Background(), created.Intern.ID, intern.UpdateRequest{
		InternshipStatus:  &status,
		InternshipFeePaid: &feePaid,
	})
	require.NoError(t, err)

	assert.Equal(t, intern.InternshipCompleted, got.Profile.InternshipStatus)
	assert.NotNil(t, got.Profile.CompletedAt)
	assert.True(t, got.Profile.InternshipFeePaid)
	assert.NotNil(t, got.Profile.FeePaidAt)
	// Untouched fields survive.
	assert.Equal(t, "Backend", got.Profile.PreferredDomain)
	assert.Equal(t, "Jane Doe", got.FullName)
}

func TestUpdateRecordsChangeAudit(t *testing.T) {
	f := newFixture()
	f.seedConvertible()
	created, err := f.svc.Convert(context.Background(), convertReq())
	require.NoError(t, err)
	f.auditSvc.recorded = nil

	notes := "paperwork done"
	_, err = f.svc.Update(context.Background(), created.Intern.ID, intern.UpdateRequest{Notes: &notes})
	require.NoError(t, err)

	require.Len(t, f.auditSvc.recorded, 1)
	entry := f.auditSvc.recorded[0]
	assert.Equal(t, audit.EntityInternProfile, entry.EntityType)
	assert.Equal(t, audit.ActionUpdate, entry.Action)
	require.Contains(t, entry.Changes, "notes")
	assert.Equal(t, "paperwork done", entry.Changes["notes"].To)
}

func TestUpdateNoChangesNoAudit(t *testing.T) {
	f := newFixture()
	f.seedConvertible()
	created, err := f.svc.Convert(context.Background(), convertReq())
	require.NoError(t, err)
	f.auditSvc.recorded = nil

	_, err = f.svc.Update(context.Background(), created.Intern.ID, intern.UpdateRequest{})
	require.NoError(t, err)

	assert.Empty(t, f.auditSvc.recorded)
}

func TestUpdateUnknownIntern(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Update(context.Background(), "missing", intern.UpdateRequest{})
	assert.ErrorIs(t, err, intern.ErrInternNotFound)
}

func TestNormalizeName(t *testing.T) {
	cases := map[string]string{
		"jane.doe":        "Jane Doe",
		"JOHN SMITH":      "John Smith",
		"  mary   jane ":  "Mary Jane",
		"a.b.c":           "A B C",
		"Jane Doe":        "Jane Doe",
		"":                "",
	}
	for in, want := range cases {
		assert.Equal(t, want, intern.NormalizeName(in), "input %q", in)
	}
}

func TestNormalizeNameIdempotent(t *testing.T) {
	once := intern.NormalizeName("ravi.kumar.s")
	assert.Equal(t, once, intern.NormalizeName(once))
}
