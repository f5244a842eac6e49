package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sandevex/hiring-backend-go/internal/domain/intern"
	"github.com/sandevex/hiring-backend-go/internal/domain/report"
	"github.com/sandevex/hiring-backend-go/internal/handler/http/response"
)

type InternHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Convert(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
}

type internHandlerImpl struct {
	internService intern.InternService
	reportService report.ReportService
}

func NewInternHandler(internService intern.InternService, reportService report.ReportService) InternHandler {
	return &internHandlerImpl{
		internService: internService,
		reportService: reportService,
	}
}

// List implements InternHandler
func (h *internHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	interns, err := h.internService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	rows := make([]intern.InternResponse, 0, len(interns))
	for i := range interns {
		rows = append(rows, interns[i].ToResponse())
	}

	response.Success(w, rows)
}

// Get implements InternHandler
func (h *internHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "internID")
	if id == "" {
		response.BadRequest(w, "Intern id is required", nil)
		return
	}

	iw, err := h.internService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, iw.ToResponse())
}

// Convert implements InternHandler
func (h *internHandlerImpl) Convert(w http.ResponseWriter, r *http.Request) {
	var req intern.ConvertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	iw, err := h.internService.Convert(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Candidate converted to intern", iw.ToResponse())
}

// Update implements InternHandler
func (h *internHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "internID")
	if id == "" {
		response.BadRequest(w, "Intern id is required", nil)
		return
	}

	var req intern.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	iw, err := h.internService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Intern updated", iw.ToResponse())
}

// Summary implements InternHandler
func (h *internHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.reportService.InternSummary(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}
