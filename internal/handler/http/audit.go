package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/sandevex/hiring-backend-go/internal/domain/audit"
	"github.com/sandevex/hiring-backend-go/internal/handler/http/response"
)

type AuditHandler interface {
	Query(w http.ResponseWriter, r *http.Request)
	Stats(w http.ResponseWriter, r *http.Request)
	OperatorActivity(w http.ResponseWriter, r *http.Request)
}

type auditHandlerImpl struct {
	auditService audit.AuditService
}

func NewAuditHandler(auditService audit.AuditService) AuditHandler {
	return &auditHandlerImpl{auditService: auditService}
}

// parseDate accepts a bare date and snaps it to midnight UTC
func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}

// Query implements AuditHandler
func (h *auditHandlerImpl) Query(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	filter := audit.QueryFilter{
		EntityType: audit.EntityType(q.Get("entity_type")),
		Action:     audit.Action(q.Get("action")),
		StartDate:  parseDate(q.Get("start_date")),
		EndDate:    parseDate(q.Get("end_date")),
		Page:       page,
		Limit:      limit,
	}
	if filter.EndDate != nil {
		// inclusive end of day
		end := filter.EndDate.Add(24*time.Hour - time.Nanosecond)
		filter.EndDate = &end
	}

	logs, total, err := h.auditService.Query(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	rows := make([]audit.LogResponse, 0, len(logs))
	for i := range logs {
		rows = append(rows, logs[i].ToResponse())
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}
	response.SuccessWithMeta(w, rows, response.NewMeta(filter.Page, filter.Limit, total))
}

// Stats implements AuditHandler
func (h *auditHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.auditService.Stats(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

// OperatorActivity implements AuditHandler
func (h *auditHandlerImpl) OperatorActivity(w http.ResponseWriter, r *http.Request) {
	activity, err := h.auditService.OperatorActivity(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, activity)
}
