package http

import (
	"net/http"

	"github.com/sandevex/hiring-backend-go/internal/domain/report"
	"github.com/sandevex/hiring-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Dashboard(w http.ResponseWriter, r *http.Request)
	OfferSummary(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

// Dashboard implements ReportHandler
func (h *reportHandlerImpl) Dashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.reportService.Dashboard(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, dashboard)
}

// OfferSummary implements ReportHandler
func (h *reportHandlerImpl) OfferSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.reportService.OfferSummary(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}
