package offer

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sandevex/hiring-backend-go/internal/config"
	"github.com/sandevex/hiring-backend-go/internal/domain/candidate"
	"github.com/sandevex/hiring-backend-go/internal/domain/intern"
	"github.com/sandevex/hiring-backend-go/internal/domain/offer"
	"github.com/sandevex/hiring-backend-go/internal/pkg/email"
)

type OfferServiceImpl struct {
	offerRepo     offer.OfferRepository
	candidateRepo candidate.CandidateRepository
	internRepo    intern.InternRepository
	profileRepo   intern.ProfileRepository
	emailService  email.EmailService
	frontendURL   string
	expiry        time.Duration
}

func NewOfferService(
	offerRepo offer.OfferRepository,
	candidateRepo candidate.CandidateRepository,
	internRepo intern.InternRepository,
	profileRepo intern.ProfileRepository,
	emailService email.EmailService,
	cfg *config.Config,
) offer.OfferService {
	return &OfferServiceImpl{
		offerRepo:     offerRepo,
		candidateRepo: candidateRepo,
		internRepo:    internRepo,
		profileRepo:   profileRepo,
		emailService:  emailService,
		frontendURL:   cfg.App.FrontendURL,
		expiry:        cfg.Offer.Expiry,
	}
}

// newToken returns a 64 hex character response token. 32 random bytes keeps
// the link unguessable.
func newToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate offer token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// Create implements offer.OfferService.
func (s *OfferServiceImpl) Create(ctx context.Context, req offer.CreateRequest) (offer.Offer, error) {
	cand, err := s.candidateRepo.GetByID(ctx, req.CandidateID)
	if err != nil {
		return offer.Offer{}, err
	}

	now := time.Now()

	// Stale pending offers must not block a fresh send.
	if _, err := s.offerRepo.ExpirePending(ctx, req.CandidateID, now); err != nil {
		return offer.Offer{}, err
	}

	if _, err := s.offerRepo.GetByCandidateAndStatus(ctx, req.CandidateID, offer.StatusAccepted); err == nil {
		return offer.Offer{}, offer.ErrOfferAlreadyAccepted
	} else if !errors.Is(err, offer.ErrOfferNotFound) {
		return offer.Offer{}, err
	}

	if _, err := s.offerRepo.GetByCandidateAndStatus(ctx, req.CandidateID, offer.StatusPending); err == nil {
		return offer.Offer{}, offer.ErrPendingOfferExists
	} else if !errors.Is(err, offer.ErrOfferNotFound) {
		return offer.Offer{}, err
	}

	token, err := newToken()
	if err != nil {
		return offer.Offer{}, err
	}

	o := offer.Offer{
		CandidateID: req.CandidateID,
		Email:       req.Email,
		Token:       token,
		Status:      offer.StatusPending,
		SentAt:      now,
		ExpiresAt:   now.Add(s.expiry),
	}
	if cand.Mobile != "" {
		o.Mobile = &cand.Mobile
	}

	created, err := s.offerRepo.Create(ctx, o)
	if err != nil {
		return offer.Offer{}, err
	}

	s.sendOfferEmail(created, cand.FullName)

	return created, nil
}

// Resend implements offer.OfferService.
func (s *OfferServiceImpl) Resend(ctx context.Context, offerID string) (offer.Offer, error) {
	o, err := s.offerRepo.GetByID(ctx, offerID)
	if err != nil {
		return offer.Offer{}, err
	}

	// An accepted offer is final, resending it would invite a second
	// response to a commitment already made.
	if o.Status == offer.StatusAccepted {
		return offer.Offer{}, offer.ErrOfferAlreadyAccepted
	}

	token, err := newToken()
	if err != nil {
		return offer.Offer{}, err
	}

	now := time.Now()
	if err := s.offerRepo.ResetForResend(ctx, o.ID, token, now, now.Add(s.expiry)); err != nil {
		return offer.Offer{}, err
	}

	refreshed, err := s.offerRepo.GetByID(ctx, o.ID)
	if err != nil {
		return offer.Offer{}, err
	}

	name := refreshed.Email
	if cand, err := s.candidateRepo.GetByID(ctx, refreshed.CandidateID); err == nil {
		name = cand.FullName
	}
	s.sendOfferEmail(refreshed, name)

	return refreshed, nil
}

func (s *OfferServiceImpl) sendOfferEmail(o offer.Offer, candidateName string) {
	acceptLink := fmt.Sprintf("%s/respond/%s?action=accept", s.frontendURL, o.Token)
	declineLink := fmt.Sprintf("%s/respond/%s?action=decline", s.frontendURL, o.Token)
	expiresAt := o.ExpiresAt.Format("Jan 2, 2006 at 3:04 PM")

	if err := s.emailService.SendOffer(o.Email, candidateName, acceptLink, declineLink, expiresAt); err != nil {
		// The offer row is already committed, the admin can resend if the
		// candidate never receives the mail.
		slog.Error("failed to send offer email",
			"offer_id", o.ID,
			"email", o.Email,
			"error", err)
	}
}

// Respond implements offer.OfferService.
func (s *OfferServiceImpl) Respond(ctx context.Context, token string, action offer.Action) (offer.Status, error) {
	if action != offer.ActionAccept && action != offer.ActionDecline {
		return "", offer.ErrInvalidAction
	}

	o, err := s.offerRepo.GetByToken(ctx, token)
	if err != nil {
		return "", err
	}

	if o.Status != offer.StatusPending {
		return o.Status, offer.ErrOfferNotPending
	}

	now := time.Now()

	// Expiry wins over the response even when nothing has materialized it
	// yet.
	if o.IsExpired(now) {
		if err := s.offerRepo.UpdateStatus(ctx, o.ID, offer.StatusExpired, nil); err != nil {
			return "", err
		}
		return offer.StatusExpired, offer.ErrOfferExpired
	}

	status := offer.StatusAccepted
	if action == offer.ActionDecline {
		status = offer.StatusDeclined
	}

	if err := s.offerRepo.UpdateStatus(ctx, o.ID, status, &now); err != nil {
		return "", err
	}

	return status, nil
}

// StatusOf implements offer.OfferService.
func (s *OfferServiceImpl) StatusOf(ctx context.Context, candidateID string) (string, error) {
	o, err := s.offerRepo.GetLatestByCandidateID(ctx, candidateID)
	if err != nil {
		if errors.Is(err, offer.ErrOfferNotFound) {
			return offer.StatusNotSent, nil
		}
		return "", err
	}

	if o.Status == offer.StatusPending && o.IsExpired(time.Now()) {
		if err := s.offerRepo.UpdateStatus(ctx, o.ID, offer.StatusExpired, nil); err != nil {
			return "", err
		}
		return string(offer.StatusExpired), nil
	}

	return string(o.Status), nil
}

// ExpireStale implements offer.OfferService.
func (s *OfferServiceImpl) ExpireStale(ctx context.Context, candidateID string) error {
	expired, err := s.offerRepo.ExpirePending(ctx, candidateID, time.Now())
	if err != nil {
		return err
	}
	if expired > 0 {
		slog.Info("expired stale pending offers",
			"candidate_id", candidateID,
			"count", expired)
	}
	return nil
}

// SetPhysicalLetterCollected implements offer.OfferService.
func (s *OfferServiceImpl) SetPhysicalLetterCollected(ctx context.Context, offerID string, collected bool) (offer.Offer, error) {
	o, err := s.offerRepo.GetByID(ctx, offerID)
	if err != nil {
		return offer.Offer{}, err
	}

	if err := s.offerRepo.SetPhysicalLetterCollected(ctx, o.ID, collected); err != nil {
		return offer.Offer{}, err
	}

	if collected && o.Status != offer.StatusAccepted {
		// A collected signed letter is an acceptance regardless of what
		// happened to the email link.
		now := time.Now()
		if err := s.offerRepo.UpdateStatus(ctx, o.ID, offer.StatusAccepted, &now); err != nil {
			return offer.Offer{}, err
		}
	}

	refreshed, err := s.offerRepo.GetByID(ctx, o.ID)
	if err != nil {
		return offer.Offer{}, err
	}

	if collected {
		if err := s.markProfileLetterIssued(ctx, refreshed.Email); err != nil {
			return refreshed, fmt.Errorf("%w: %v", offer.ErrPartialUpdate, err)
		}
	}

	return refreshed, nil
}

// markProfileLetterIssued mirrors the collected letter onto the intern
// profile when the candidate has already been converted. No intern is not an
// error, collection usually happens before conversion.
func (s *OfferServiceImpl) markProfileLetterIssued(ctx context.Context, candidateEmail string) error {
	i, err := s.internRepo.GetByEmail(ctx, candidateEmail)
	if err != nil {
		if errors.Is(err, intern.ErrInternNotFound) {
			return nil
		}
		return err
	}

	if err := s.profileRepo.MarkOfferLetterIssued(ctx, i.ID); err != nil {
		return err
	}

	return nil
}

// SyncOfferLetters implements offer.OfferService.
func (s *OfferServiceImpl) SyncOfferLetters(ctx context.Context) (int, error) {
	offers, err := s.offerRepo.ListCollectedAccepted(ctx)
	if err != nil {
		return 0, err
	}

	repaired := 0
	for _, o := range offers {
		i, err := s.internRepo.GetByEmail(ctx, o.Email)
		if err != nil {
			if errors.Is(err, intern.ErrInternNotFound) {
				continue
			}
			return repaired, err
		}

		p, err := s.profileRepo.GetByInternID(ctx, i.ID)
		if err != nil {
			if errors.Is(err, intern.ErrProfileNotFound) {
				continue
			}
			return repaired, err
		}

		if p.OfferLetterIssued {
			continue
		}

		if err := s.profileRepo.MarkOfferLetterIssued(ctx, i.ID); err != nil {
			return repaired, err
		}
		repaired++

		slog.Info("repaired intern offer letter flag",
			"intern_id", i.ID,
			"offer_id", o.ID)
	}

	return repaired, nil
}

// List implements offer.OfferService.
func (s *OfferServiceImpl) List(ctx context.Context, filter offer.ListFilter) ([]offer.OfferWithCandidate, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}
	return s.offerRepo.List(ctx, filter)
}
