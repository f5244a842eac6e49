package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sandevex/hiring-backend-go/internal/domain/offer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubOfferService scripts the service responses for handler tests
type stubOfferService struct {
	respondStatus offer.Status
	respondErr    error
	createdOffer  offer.Offer
	createErr     error
	status        string
	statusErr     error
}

func (s *stubOfferService) Create(context.Context, offer.CreateRequest) (offer.Offer, error) {
	return s.createdOffer, s.createErr
}

func (s *stubOfferService) Resend(context.Context, string) (offer.Offer, error) {
	return s.createdOffer, s.createErr
}

func (s *stubOfferService) Respond(context.Context, string, offer.Action) (offer.Status, error) {
	return s.respondStatus, s.respondErr
}

func (s *stubOfferService) StatusOf(context.Context, string) (string, error) {
	return s.status, s.statusErr
}

func (s *stubOfferService) ExpireStale(context.Context, string) error { return nil }

func (s *stubOfferService) SetPhysicalLetterCollected(context.Context, string, bool) (offer.Offer, error) {
	return s.createdOffer, s.createErr
}

func (s *stubOfferService) SyncOfferLetters(context.Context) (int, error) { return 0, nil }

func (s *stubOfferService) List(context.Context, offer.ListFilter) ([]offer.OfferWithCandidate, int64, error) {
	return nil, 0, nil
}

func respondRequest(t *testing.T, token, action string) *http.Request {
	t.Helper()
	body, err := json.Marshal(map[string]string{"token": token, "action": action})
	require.NoError(t, err)
	return httptest.NewRequest(http.MethodPost, "/api/v1/respond", bytes.NewReader(body))
}

func TestRespondSuccess(t *testing.T) {
	h := NewOfferHandler(&stubOfferService{respondStatus: offer.StatusAccepted})

	rec := httptest.NewRecorder()
	h.Respond(rec, respondRequest(t, strings.Repeat("ab", 32), "accept"))

	assert.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Success bool `json:"success"`
		Data    struct {
			Status string `json:"status"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.True(t, payload.Success)
	assert.Equal(t, "accepted", payload.Data.Status)
}

// Every failure kind renders the same payload. The endpoint is public and
// must not reveal whether a token exists, was used or timed out.
func TestRespondFailuresAreIndistinguishable(t *testing.T) {
	failures := []error{
		offer.ErrOfferNotFound,
		offer.ErrOfferNotPending,
		offer.ErrOfferExpired,
	}

	var bodies []string
	for _, failure := range failures {
		h := NewOfferHandler(&stubOfferService{respondErr: failure})

		rec := httptest.NewRecorder()
		h.Respond(rec, respondRequest(t, strings.Repeat("ab", 32), "decline"))

		assert.Equal(t, http.StatusGone, rec.Code)
		bodies = append(bodies, rec.Body.String())
	}

	for i := 1; i < len(bodies); i++ {
		assert.Equal(t, bodies[0], bodies[i])
	}
}

func TestRespondRejectsMalformedToken(t *testing.T) {
	h := NewOfferHandler(&stubOfferService{})

	rec := httptest.NewRecorder()
	h.Respond(rec, respondRequest(t, "not-a-token", "accept"))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestRespondRejectsUnknownAction(t *testing.T) {
	h := NewOfferHandler(&stubOfferService{})

	rec := httptest.NewRecorder()
	h.Respond(rec, respondRequest(t, strings.Repeat("ab", 32), "maybe"))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCreateOfferValidatesBody(t *testing.T) {
	h := NewOfferHandler(&stubOfferService{})

	body := bytes.NewReader([]byte(`{"candidate_id": "", "email": "nope"}`))
	rec := httptest.NewRecorder()
	h.Create(rec, httptest.NewRequest(http.MethodPost, "/api/v1/offers", body))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCreateOfferHappyPath(t *testing.T) {
	now := time.Now()
	h := NewOfferHandler(&stubOfferService{createdOffer: offer.Offer{
		ID:          "o1",
		CandidateID: "c1",
		Email:       "jane@example.com",
		Status:      offer.StatusPending,
		SentAt:      now,
		ExpiresAt:   now.Add(24 * time.Hour),
	}})

	body := bytes.NewReader([]byte(`{"candidate_id": "c1", "email": "jane@example.com"}`))
	rec := httptest.NewRecorder()
	h.Create(rec, httptest.NewRequest(http.MethodPost, "/api/v1/offers", body))

	assert.Equal(t, http.StatusCreated, rec.Code)

	var payload struct {
		Data offer.OfferResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "o1", payload.Data.ID)
	assert.Equal(t, "pending", payload.Data.Status)
}

func TestStatusRejectsConflict(t *testing.T) {
	h := NewOfferHandler(&stubOfferService{createErr: offer.ErrPendingOfferExists})

	body := bytes.NewReader([]byte(`{"candidate_id": "c1", "email": "jane@example.com"}`))
	rec := httptest.NewRecorder()
	h.Create(rec, httptest.NewRequest(http.MethodPost, "/api/v1/offers", body))

	assert.Equal(t, http.StatusConflict, rec.Code)
}
