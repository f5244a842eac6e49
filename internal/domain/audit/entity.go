package audit

import "time"

// EntityType names the aggregate an audit entry belongs to
type EntityType string

const (
	EntityIntern        EntityType = "intern"
	EntityInternProfile EntityType = "intern_profile"
)

// Action is the kind of mutation recorded
type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Change records one field's before and after value
type Change struct {
	From any `json:"from"`
	To   any `json:"to"`
}

// Changes maps field name to its recorded change
type Changes map[string]Change

// Log is one append-only audit entry. Entries are never mutated after
// creation.
type Log struct {
	ID          string
	EntityType  EntityType
	EntityID    string
	Action      Action
	Changes     Changes
	PerformedBy string
	PerformedAt time.Time
	IPAddress   string
	UserAgent   string
	Description string
}

// Stats aggregates entry counts for the audit dashboard
type Stats struct {
	TotalLogs     int64 `json:"total_logs"`
	CreateActions int64 `json:"create_actions"`
	UpdateActions int64 `json:"update_actions"`
	DeleteActions int64 `json:"delete_actions"`
	InternLogs    int64 `json:"intern_logs"`
	ProfileLogs   int64 `json:"profile_logs"`
}

// OperatorActivity summarizes one operator's recent actions
type OperatorActivity struct {
	PerformedBy  string    `json:"performed_by"`
	Count        int64     `json:"count"`
	LastActivity time.Time `json:"last_activity"`
}
