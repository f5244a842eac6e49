package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sandevex/hiring-backend-go/internal/domain/candidate"
	"github.com/sandevex/hiring-backend-go/internal/domain/report"
	"github.com/sandevex/hiring-backend-go/internal/handler/http/response"
	"github.com/sandevex/hiring-backend-go/internal/service/importer"
)

type CandidateHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Colleges(w http.ResponseWriter, r *http.Request)
	WithOfferStatus(w http.ResponseWriter, r *http.Request)
	Sync(w http.ResponseWriter, r *http.Request)
}

type candidateHandlerImpl struct {
	candidateService candidate.CandidateService
	reportService    report.ReportService
	importerService  importer.ImporterService
}

func NewCandidateHandler(
	candidateService candidate.CandidateService,
	reportService report.ReportService,
	importerService importer.ImporterService,
) CandidateHandler {
	return &candidateHandlerImpl{
		candidateService: candidateService,
		reportService:    reportService,
		importerService:  importerService,
	}
}

// List implements CandidateHandler
func (h *candidateHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	filter := candidate.ListFilter{
		Search:      q.Get("q"),
		College:     q.Get("college"),
		OldestFirst: q.Get("sort") == "oldest",
		Page:        page,
		Limit:       limit,
	}

	candidates, total, err := h.candidateService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	rows := make([]candidate.CandidateResponse, 0, len(candidates))
	for i := range candidates {
		rows = append(rows, candidates[i].ToResponse())
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}
	response.SuccessWithMeta(w, rows, response.NewMeta(filter.Page, filter.Limit, total))
}

// Get implements CandidateHandler
func (h *candidateHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "candidateID")
	if id == "" {
		response.BadRequest(w, "Candidate id is required", nil)
		return
	}

	c, err := h.candidateService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, c.ToResponse())
}

// Colleges implements CandidateHandler
func (h *candidateHandlerImpl) Colleges(w http.ResponseWriter, r *http.Request) {
	colleges, err := h.reportService.CandidateColleges(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string][]string{"colleges": colleges})
}

// WithOfferStatus implements CandidateHandler
func (h *candidateHandlerImpl) WithOfferStatus(w http.ResponseWriter, r *http.Request) {
	rows, err := h.reportService.CandidatesWithOfferStatus(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rows)
}

// Sync implements CandidateHandler
func (h *candidateHandlerImpl) Sync(w http.ResponseWriter, r *http.Request) {
	result, err := h.importerService.SyncCandidates(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Candidate sheet synced", result)
}
