package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sandevex/hiring-backend-go/internal/domain/offer"
	"github.com/sandevex/hiring-backend-go/internal/handler/http/response"
)

type OfferHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Resend(w http.ResponseWriter, r *http.Request)
	Status(w http.ResponseWriter, r *http.Request)
	PhysicalLetter(w http.ResponseWriter, r *http.Request)
	SyncLetters(w http.ResponseWriter, r *http.Request)

	// Respond is the public tokenized response endpoint
	Respond(w http.ResponseWriter, r *http.Request)
}

type offerHandlerImpl struct {
	offerService offer.OfferService
}

func NewOfferHandler(offerService offer.OfferService) OfferHandler {
	return &offerHandlerImpl{offerService: offerService}
}

func toOfferResponse(o offer.Offer) offer.OfferResponse {
	resp := offer.OfferResponse{
		ID:                      o.ID,
		CandidateID:             o.CandidateID,
		Email:                   o.Email,
		Status:                  string(o.Status),
		PhysicalLetterCollected: o.PhysicalLetterCollected,
		SentAt:                  o.SentAt.Format(time.RFC3339),
		ExpiresAt:               o.ExpiresAt.Format(time.RFC3339),
	}
	if o.RespondedAt != nil {
		s := o.RespondedAt.Format(time.RFC3339)
		resp.RespondedAt = &s
	}
	return resp
}

// List implements OfferHandler
func (h *offerHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	filter := offer.ListFilter{
		Search: q.Get("q"),
		Status: offer.Status(q.Get("status")),
		Page:   page,
		Limit:  limit,
	}

	offers, total, err := h.offerService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	rows := make([]offer.OfferResponse, 0, len(offers))
	for _, o := range offers {
		resp := toOfferResponse(o.Offer)
		resp.CandidateName = o.CandidateName
		resp.CandidateCollege = o.CandidateCollege
		rows = append(rows, resp)
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}
	response.SuccessWithMeta(w, rows, response.NewMeta(filter.Page, filter.Limit, total))
}

// Create implements OfferHandler
func (h *offerHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req offer.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.offerService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Offer sent", toOfferResponse(created))
}

// Resend implements OfferHandler
func (h *offerHandlerImpl) Resend(w http.ResponseWriter, r *http.Request) {
	var req offer.ResendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if req.OfferID == "" {
		response.BadRequest(w, "offer_id is required", nil)
		return
	}

	resent, err := h.offerService.Resend(r.Context(), req.OfferID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Offer resent", toOfferResponse(resent))
}

// Status implements OfferHandler
func (h *offerHandlerImpl) Status(w http.ResponseWriter, r *http.Request) {
	candidateID := chi.URLParam(r, "candidateID")
	if candidateID == "" {
		response.BadRequest(w, "Candidate id is required", nil)
		return
	}

	status, err := h.offerService.StatusOf(r.Context(), candidateID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]string{"status": status})
}

// PhysicalLetter implements OfferHandler
func (h *offerHandlerImpl) PhysicalLetter(w http.ResponseWriter, r *http.Request) {
	var req offer.PhysicalLetterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if req.OfferID == "" {
		response.BadRequest(w, "offer_id is required", nil)
		return
	}

	updated, err := h.offerService.SetPhysicalLetterCollected(r.Context(), req.OfferID, req.Collected)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Physical letter flag updated", toOfferResponse(updated))
}

// SyncLetters implements OfferHandler
func (h *offerHandlerImpl) SyncLetters(w http.ResponseWriter, r *http.Request) {
	repaired, err := h.offerService.SyncOfferLetters(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Offer letters reconciled", map[string]int{
		"repaired": repaired,
	})
}

// Respond implements OfferHandler. The endpoint is public and deliberately
// vague: every failure renders the same payload so a caller cannot probe
// which tokens exist or in what state they are. The real cause is logged.
func (h *offerHandlerImpl) Respond(w http.ResponseWriter, r *http.Request) {
	var req offer.RespondRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	status, err := h.offerService.Respond(r.Context(), req.Token, offer.Action(req.Action))
	if err != nil {
		slog.Info("public offer response rejected",
			"action", req.Action,
			"reason", err)
		response.Gone(w, "This offer link is invalid or has expired")
		return
	}

	response.SuccessWithMessage(w, "Response recorded", map[string]string{
		"status": string(status),
	})
}
