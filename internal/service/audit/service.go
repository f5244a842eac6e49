package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/sandevex/hiring-backend-go/internal/domain/audit"
)

const (
	activityWindow = 30 * 24 * time.Hour
	activityLimit  = 10
)

type AuditServiceImpl struct {
	logRepo audit.LogRepository
}

func NewAuditService(logRepo audit.LogRepository) audit.AuditService {
	return &AuditServiceImpl{logRepo: logRepo}
}

// Record implements audit.AuditService. The write is best effort, a failed
// audit entry must never roll back the mutation it documents.
func (s *AuditServiceImpl) Record(ctx context.Context, l audit.Log) {
	if l.PerformedBy == "" {
		actor := audit.ActorFromContext(ctx)
		l.PerformedBy = actor.PerformedBy
		l.IPAddress = actor.IPAddress
		l.UserAgent = actor.UserAgent
	}

	if _, err := s.logRepo.Create(ctx, l); err != nil {
		slog.Error("failed to record audit entry",
			"entity_type", l.EntityType,
			"entity_id", l.EntityID,
			"action", l.Action,
			"error", err)
	}
}

// Query implements audit.AuditService.
func (s *AuditServiceImpl) Query(ctx context.Context, filter audit.QueryFilter) ([]audit.Log, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}
	return s.logRepo.Query(ctx, filter)
}

// Stats implements audit.AuditService.
func (s *AuditServiceImpl) Stats(ctx context.Context) (audit.Stats, error) {
	return s.logRepo.Stats(ctx)
}

// OperatorActivity implements audit.AuditService.
func (s *AuditServiceImpl) OperatorActivity(ctx context.Context) ([]audit.OperatorActivity, error) {
	since := time.Now().Add(-activityWindow)
	return s.logRepo.OperatorActivity(ctx, since, activityLimit)
}
