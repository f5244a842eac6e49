package http

import (
	"net/http"
	"strconv"

	"github.com/sandevex/hiring-backend-go/internal/domain/preference"
	"github.com/sandevex/hiring-backend-go/internal/domain/report"
	"github.com/sandevex/hiring-backend-go/internal/handler/http/response"
	"github.com/sandevex/hiring-backend-go/internal/service/importer"
)

type PreferenceHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Filters(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
	Sync(w http.ResponseWriter, r *http.Request)
}

type preferenceHandlerImpl struct {
	preferenceService preference.PreferenceService
	reportService     report.ReportService
	importerService   importer.ImporterService
}

func NewPreferenceHandler(
	preferenceService preference.PreferenceService,
	reportService report.ReportService,
	importerService importer.ImporterService,
) PreferenceHandler {
	return &preferenceHandlerImpl{
		preferenceService: preferenceService,
		reportService:     reportService,
		importerService:   importerService,
	}
}

// List implements PreferenceHandler
func (h *preferenceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	filter := preference.ListFilter{
		Search:     q.Get("q"),
		Domain:     q.Get("domain"),
		College:    q.Get("college"),
		SkillLevel: q.Get("skill_level"),
		Page:       page,
		Limit:      limit,
	}

	preferences, total, err := h.preferenceService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	rows := make([]preference.PreferenceResponse, 0, len(preferences))
	for i := range preferences {
		rows = append(rows, preferences[i].ToResponse())
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}
	response.SuccessWithMeta(w, rows, response.NewMeta(filter.Page, filter.Limit, total))
}

// Filters implements PreferenceHandler
func (h *preferenceHandlerImpl) Filters(w http.ResponseWriter, r *http.Request) {
	filters, err := h.reportService.PreferenceFilters(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, filters)
}

// Summary implements PreferenceHandler
func (h *preferenceHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.reportService.PreferenceSummary(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// Sync implements PreferenceHandler
func (h *preferenceHandlerImpl) Sync(w http.ResponseWriter, r *http.Request) {
	result, err := h.importerService.SyncDomainPreferences(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Domain preference sheet synced", result)
}
