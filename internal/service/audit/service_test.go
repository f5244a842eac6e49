package audit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sandevex/hiring-backend-go/internal/domain/audit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLogRepo struct {
	logs      []audit.Log
	createErr error

	lastFilter audit.QueryFilter
	lastSince  time.Time
	lastLimit  int
}

func (f *fakeLogRepo) Create(_ context.Context, l audit.Log) (audit.Log, error) {
	if f.createErr != nil {
		return audit.Log{}, f.createErr
	}
	f.logs = append(f.logs, l)
	return l, nil
}

func (f *fakeLogRepo) Query(_ context.Context, filter audit.QueryFilter) ([]audit.Log, int64, error) {
	f.lastFilter = filter
	return f.logs, int64(len(f.logs)), nil
}

func (f *fakeLogRepo) Stats(_ context.Context) (audit.Stats, error) {
	return audit.Stats{TotalLogs: int64(len(f.logs))}, nil
}

func (f *fakeLogRepo) OperatorActivity(_ context.Context, since time.Time, limit int) ([]audit.OperatorActivity, error) {
	f.lastSince = since
	f.lastLimit = limit
	return nil, nil
}

func TestRecordFillsActorFromContext(t *testing.T) {
	repo := &fakeLogRepo{}
	svc := NewAuditService(repo)

	ctx := audit.WithActor(context.Background(), audit.Actor{
		PerformedBy: "admin",
		IPAddress:   "10.0.0.1",
		UserAgent:   "curl/8.0",
	})

	svc.Record(ctx, audit.Log{
		EntityType: audit.EntityIntern,
		EntityID:   "i1",
		Action:     audit.ActionCreate,
	})

	require.Len(t, repo.logs, 1)
	assert.Equal(t, "admin", repo.logs[0].PerformedBy)
	assert.Equal(t, "10.0.0.1", repo.logs[0].IPAddress)
	assert.Equal(t, "curl/8.0", repo.logs[0].UserAgent)
}

func TestRecordDefaultsToSystem(t *testing.T) {
	repo := &fakeLogRepo{}
	svc := NewAuditService(repo)

	svc.Record(context.Background(), audit.Log{
		EntityType: audit.EntityIntern,
		EntityID:   "i1",
		Action:     audit.ActionUpdate,
	})

	require.Len(t, repo.logs, 1)
	assert.Equal(t, "system", repo.logs[0].PerformedBy)
}

func TestRecordSwallowsRepositoryErrors(t *testing.T) {
	repo := &fakeLogRepo{createErr: errors.New("db down")}
	svc := NewAuditService(repo)

	// Must not panic or surface the error.
	svc.Record(context.Background(), audit.Log{
		EntityType: audit.EntityIntern,
		EntityID:   "i1",
		Action:     audit.ActionCreate,
	})

	assert.Empty(t, repo.logs)
}

func TestQueryClampsPagination(t *testing.T) {
	repo := &fakeLogRepo{}
	svc := NewAuditService(repo)

	_, _, err := svc.Query(context.Background(), audit.QueryFilter{Page: 0, Limit: 500})
	require.NoError(t, err)

	assert.Equal(t, 1, repo.lastFilter.Page)
	assert.Equal(t, 20, repo.lastFilter.Limit)
}

func TestOperatorActivityWindow(t *testing.T) {
	repo := &fakeLogRepo{}
	svc := NewAuditService(repo)

	_, err := svc.OperatorActivity(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 10, repo.lastLimit)
	assert.WithinDuration(t, time.Now().Add(-30*24*time.Hour), repo.lastSince, time.Minute)
}
