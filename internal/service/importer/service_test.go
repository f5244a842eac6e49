package importer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sandevex/hiring-backend-go/internal/config"
	"github.com/sandevex/hiring-backend-go/internal/domain/candidate"
	"github.com/sandevex/hiring-backend-go/internal/domain/preference"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	rows [][]string
	err  error
}

func (f *fakeSource) Rows(_ context.Context, _, _ string) ([][]string, error) {
	return f.rows, f.err
}

type fakeCandidateRepo struct {
	byEmail map[string]candidate.Candidate
}

func (f *fakeCandidateRepo) GetByID(_ context.Context, _ string) (candidate.Candidate, error) {
	return candidate.Candidate{}, candidate.ErrCandidateNotFound
}
func (f *fakeCandidateRepo) List(_ context.Context, _ candidate.ListFilter) ([]candidate.Candidate, int64, error) {
	return nil, 0, nil
}
func (f *fakeCandidateRepo) ListAll(_ context.Context) ([]candidate.Candidate, error) {
	return nil, nil
}
func (f *fakeCandidateRepo) Upsert(_ context.Context, c candidate.Candidate) (candidate.Candidate, error) {
	f.byEmail[c.Email] = c
	return c, nil
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

func newImporter(src *fakeSource) (ImporterService, *fakeCandidateRepo, *fakePreferenceRepo) {
	candidates := &fakeCandidateRepo{byEmail: map[string]candidate.Candidate{}}
	prefs := &fakePreferenceRepo{byEmail: map[string]preference.DomainPreference{}}
	svc := NewImporterService(src, candidates, prefs, config.SheetsConfig{})
	return svc, candidates, prefs
}

func candidateRow(name, email string) []string {
	return []string{
		"5/10/2026 14:30:00", name, email, "9876543210", "Delhi", "Some Street",
		"IIT Delhi", "BTech", "CSE", "3rd Year", "Backend",
		"Go, SQL, , Docker", "one internship", "https://me.dev",
		"I want to build things", "Yes",
	}
}

func TestSyncCandidatesMapsColumns(t *testing.T) {
	src := &fakeSource{rows: [][]string{candidateRow("Jane Doe", "jane@example.com")}}
	svc, candidates, _ := newImporter(src)

	result, err := svc.SyncCandidates(context.Background())
	require.NoError(t, err)

	assert.Equal(t, SyncResult{Processed: 1, Imported: 1}, result)

	c := candidates.byEmail["jane@example.com"]
	assert.Equal(t, "Jane Doe", c.FullName)
	assert.Equal(t, "9876543210", c.Mobile)
	assert.Equal(t, "IIT Delhi", c.CollegeName)
	assert.Equal(t, "Backend", c.PreferredDomain)
	// Blank segments in the skills column are dropped.
	assert.Equal(t, []string{"Go", "SQL", "Docker"}, c.TechnicalSkills)
	assert.Equal(t, "I want to build things", c.Motivation)
}

func TestSyncCandidatesSkipsRowsWithoutEmail(t *testing.T) {
	src := &fakeSource{rows: [][]string{
		candidateRow("Jane Doe", "jane@example.com"),
		{"5/10/2026 14:30:00", "No Email"},
	}}
	svc, _, _ := newImporter(src)

	result, err := svc.SyncCandidates(context.Background())
	require.NoError(t, err)

	assert.Equal(t, SyncResult{Processed: 2, Imported: 1, Skipped: 1}, result)
}

func TestSyncCandidatesOverwritesOnResync(t *testing.T) {
	src := &fakeSource{rows: [][]string{candidateRow("Jane Doe", "jane@example.com")}}
	svc, candidates, _ := newImporter(src)

	_, err := svc.SyncCandidates(context.Background())
	require.NoError(t, err)

	src.rows = [][]string{candidateRow("Jane D.", "jane@example.com")}
	result, err := svc.SyncCandidates(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, "Jane D.", candidates.byEmail["jane@example.com"].FullName)
}

func TestSyncCandidatesUpstreamFailure(t *testing.T) {
	src := &fakeSource{err: errors.New("quota exceeded")}
	svc, _, _ := newImporter(src)

	_, err := svc.SyncCandidates(context.Background())
	assert.ErrorIs(t, err, ErrUpstream)
}

func preferenceRow(name, email string) []string {
	return []string{
		"5/10/2026 14:30:00", name, email, "9876543210", "IIT Delhi",
		"3rd Year", "Backend", "Intermediate", "I like servers",
		"Go", "", "Postgres", "",
	}
}

func TestSyncPreferencesMapsColumns(t *testing.T) {
	src := &fakeSource{rows: [][]string{preferenceRow("Jane Doe", "jane@example.com")}}
	svc, _, prefs := newImporter(src)

	result, err := svc.SyncDomainPreferences(context.Background())
	require.NoError(t, err)

	assert.Equal(t, SyncResult{Processed: 1, Imported: 1}, result)

	p := prefs.byEmail["jane@example.com"]
	assert.Equal(t, "Jane Doe", p.FullName)
	assert.Equal(t, "Backend", p.Domain)
	assert.Equal(t, "Intermediate", p.SkillLevel)
	// Blank technology columns are dropped.
	assert.Equal(t, []string{"Go", "Postgres"}, p.Technologies)
	assert.Equal(t, time.Date(2026, 5, 10, 14, 30, 0, 0, time.UTC), p.SubmittedAt)
}

func TestSyncPreferencesPrefersDedicatedEmailColumn(t *testing.T) {
	row := preferenceRow("Jane Doe", "typo@example")
	row[12] = "jane@example.com"
	src := &fakeSource{rows: [][]string{row}}
	svc, _, prefs := newImporter(src)

	_, err := svc.SyncDomainPreferences(context.Background())
	require.NoError(t, err)

	assert.Contains(t, prefs.byEmail, "jane@example.com")
	assert.NotContains(t, prefs.byEmail, "typo@example")
}

func TestSyncPreferencesFirstWriteWins(t *testing.T) {
	src := &fakeSource{rows: [][]string{preferenceRow("Jane Doe", "jane@example.com")}}
	svc, _, prefs := newImporter(src)

	_, err := svc.SyncDomainPreferences(context.Background())
	require.NoError(t, err)

	src.rows = [][]string{preferenceRow("Jane Updated", "jane@example.com")}
	result, err := svc.SyncDomainPreferences(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, 0, result.Imported)
	assert.Equal(t, "Jane Doe", prefs.byEmail["jane@example.com"].FullName)
}

func TestSyncPreferencesSkipsEmptyRows(t *testing.T) {
	src := &fakeSource{rows: [][]string{
		{},
		{""},
		preferenceRow("Jane Doe", "jane@example.com"),
	}}
	svc, _, _ := newImporter(src)

	result, err := svc.SyncDomainPreferences(context.Background())
	require.NoError(t, err)

	assert.Equal(t, SyncResult{Processed: 1, Imported: 1}, result)
}
