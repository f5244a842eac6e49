package audit

import "time"

// LogResponse is the wire shape for one audit entry
type LogResponse struct {
	ID          string    `json:"id"`
	EntityType  string    `json:"entity_type"`
	EntityID    string    `json:"entity_id"`
	Action      string    `json:"action"`
	Changes     Changes   `json:"changes"`
	PerformedBy string    `json:"performed_by"`
	PerformedAt time.Time `json:"performed_at"`
	IPAddress   string    `json:"ip_address,omitempty"`
	UserAgent   string    `json:"user_agent,omitempty"`
	Description string    `json:"description"`
}

func (l *Log) ToResponse() LogResponse {
	changes := l.Changes
	if changes == nil {
		changes = Changes{}
	}
	return LogResponse{
		ID:          l.ID,
		EntityType:  string(l.EntityType),
		EntityID:    l.EntityID,
		Action:      string(l.Action),
		Changes:     changes,
		PerformedBy: l.PerformedBy,
		PerformedAt: l.PerformedAt,
		IPAddress:   l.IPAddress,
		UserAgent:   l.UserAgent,
		Description: l.Description,
	}
}
