package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sandevex/hiring-backend-go/internal/domain/offer"
)

const jobTimeout = 5 * time.Minute

// Scheduler runs the background maintenance jobs. Expiry is enforced lazily
// on every read path already, the hourly sweep only keeps stored rows from
// drifting too far behind.
type Scheduler struct {
	cron         *cron.Cron
	offerService offer.OfferService
}

func NewScheduler(offerService offer.OfferService) *Scheduler {
	return &Scheduler{
		cron:         cron.New(),
		offerService: offerService,
	}
}

// Start registers the jobs and launches the cron loop
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc("0 * * * *", s.expireStaleOffers); err != nil {
		return err
	}
	if _, err := s.cron.AddFunc("30 * * * *", s.syncOfferLetters); err != nil {
		return err
	}

	s.cron.Start()
	slog.Info("background jobs started")
	return nil
}

// Stop halts the cron loop and waits for running jobs to finish
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	slog.Info("background jobs stopped")
}

// expireStaleOffers flips every pending offer past its window to expired
func (s *Scheduler) expireStaleOffers() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	if err := s.offerService.ExpireStale(ctx, ""); err != nil {
		slog.Error("offer expiry sweep failed", "error", err)
	}
}

// syncOfferLetters repairs intern profiles lagging behind collected letters
func (s *Scheduler) syncOfferLetters() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	repaired, err := s.offerService.SyncOfferLetters(ctx)
	if err != nil {
		slog.Error("offer letter reconciliation failed", "error", err)
		return
	}
	if repaired > 0 {
		slog.Info("offer letter reconciliation repaired profiles", "count", repaired)
	}
}
