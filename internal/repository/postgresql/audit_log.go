package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/sandevex/hiring-backend-go/internal/domain/audit"
	"github.com/sandevex/hiring-backend-go/internal/pkg/database"
)

type auditLogRepositoryImpl struct {
	db *database.DB
}

// NewAuditLogRepository creates a new audit log repository instance
func NewAuditLogRepository(db *database.DB) audit.LogRepository {
	return &auditLogRepositoryImpl{db: db}
}

const auditLogColumns = `
	id, entity_type, entity_id, action, changes, performed_by, performed_at,
	ip_address, user_agent, description`

func scanAuditLog(row pgx.Row) (audit.Log, error) {
	var l audit.Log
	err := row.Scan(
		&l.ID, &l.EntityType, &l.EntityID, &l.Action, &l.Changes,
		&l.PerformedBy, &l.PerformedAt, &l.IPAddress, &l.UserAgent,
		&l.Description,
	)
	return l, err
}

// Create implements audit.LogRepository.
func (r *auditLogRepositoryImpl) Create(ctx context.Context, l audit.Log) (audit.Log, error) {
	q := GetQuerier(ctx, r.db)

	if l.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return audit.Log{}, fmt.Errorf("failed to generate audit log id: %w", err)
		}
		l.ID = id.String()
	}
	if l.Changes == nil {
		l.Changes = audit.Changes{}
	}

	query := `
		INSERT INTO audit_logs (
			id, entity_type, entity_id, action, changes, performed_by,
			ip_address, user_agent, description
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + auditLogColumns

	created, err := scanAuditLog(q.QueryRow(ctx, query,
		l.ID, l.EntityType, l.EntityID, l.Action, l.Changes, l.PerformedBy,
		l.IPAddress, l.UserAgent, l.Description,
	))
	if err != nil {
		return audit.Log{}, fmt.Errorf("failed to create audit log: %w", err)
	}

	return created, nil
}

// Query implements audit.LogRepository.
func (r *auditLogRepositoryImpl) Query(ctx context.Context, filter audit.QueryFilter) ([]audit.Log, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := ` WHERE ($1 = '' OR entity_type = $1)
		AND ($2 = '' OR action = $2)
		AND ($3::timestamptz IS NULL OR performed_at >= $3)
		AND ($4::timestamptz IS NULL OR performed_at <= $4)`

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM audit_logs`+where,
		string(filter.EntityType), string(filter.Action),
		filter.StartDate, filter.EndDate).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count audit logs: %w", err)
	}

	query := `SELECT ` + auditLogColumns + ` FROM audit_logs` + where + `
		ORDER BY performed_at DESC
		LIMIT $5 OFFSET $6`

	rows, err := q.Query(ctx, query,
		string(filter.EntityType), string(filter.Action),
		filter.StartDate, filter.EndDate,
		filter.Limit, (filter.Page-1)*filter.Limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query audit logs: %w", err)
	}
	defer rows.Close()

	var logs []audit.Log
	for rows.Next() {
		l, err := scanAuditLog(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan audit log: %w", err)
		}
		logs = append(logs, l)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return logs, total, nil
}

// Stats implements audit.LogRepository.
func (r *auditLogRepositoryImpl) Stats(ctx context.Context) (audit.Stats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE action = 'create'),
			COUNT(*) FILTER (WHERE action = 'update'),
			COUNT(*) FILTER (WHERE action = 'delete'),
			COUNT(*) FILTER (WHERE entity_type = 'intern'),
			COUNT(*) FILTER (WHERE entity_type = 'intern_profile')
		FROM audit_logs`

	var s audit.Stats
	err := q.QueryRow(ctx, query).Scan(
		&s.TotalLogs, &s.CreateActions, &s.UpdateActions, &s.DeleteActions,
		&s.InternLogs, &s.ProfileLogs,
	)
	if err != nil {
		return audit.Stats{}, fmt.Errorf("failed to aggregate audit stats: %w", err)
	}

	return s, nil
}

// OperatorActivity implements audit.LogRepository.
func (r *auditLogRepositoryImpl) OperatorActivity(ctx context.Context, since time.Time, limit int) ([]audit.OperatorActivity, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT performed_by, COUNT(*), MAX(performed_at)
		FROM audit_logs
		WHERE performed_at >= $1
		GROUP BY performed_by
		ORDER BY COUNT(*) DESC
		LIMIT $2`

	rows, err := q.Query(ctx, query, since, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query operator activity: %w", err)
	}
	defer rows.Close()

	var activity []audit.OperatorActivity
	for rows.Next() {
		var a audit.OperatorActivity
		if err := rows.Scan(&a.PerformedBy, &a.Count, &a.LastActivity); err != nil {
			return nil, fmt.Errorf("failed to scan operator activity: %w", err)
		}
		activity = append(activity, a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return activity, nil
}
