package audit

import (
	"context"
	"time"
)

// QueryFilter narrows and pages the audit log listing
type QueryFilter struct {
	EntityType EntityType
	Action     Action
	StartDate  *time.Time
	EndDate    *time.Time
	Page       int
	Limit      int
}

// LogRepository defines the interface for audit log data access. The store
// is append-only, there is no update or delete.
type LogRepository interface {
	// Create appends one entry
	Create(ctx context.Context, l Log) (Log, error)

	// Query retrieves a filtered page, newest first, plus the total count
	Query(ctx context.Context, filter QueryFilter) ([]Log, int64, error)

	// Stats aggregates counters over the whole store
	Stats(ctx context.Context) (Stats, error)

	// OperatorActivity ranks operators by action count since the cutoff
	OperatorActivity(ctx context.Context, since time.Time, limit int) ([]OperatorActivity, error)
}
