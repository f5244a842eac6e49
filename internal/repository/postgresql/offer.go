package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/sandevex/hiring-backend-go/internal/domain/offer"
	"github.com/sandevex/hiring-backend-go/internal/pkg/database"
)

type offerRepositoryImpl struct {
	db *database.DB
}

// NewOfferRepository creates a new offer repository instance
func NewOfferRepository(db *database.DB) offer.OfferRepository {
	return &offerRepositoryImpl{db: db}
}

const offerColumns = `
	id, candidate_id, email, mobile, token, status, physical_letter_collected,
	sent_at, expires_at, responded_at, updated_at`

func scanOffer(row pgx.Row) (offer.Offer, error) {
	var o offer.Offer
	err := row.Scan(
		&o.ID, &o.CandidateID, &o.Email, &o.Mobile, &o.Token, &o.Status,
		&o.PhysicalLetterCollected, &o.SentAt, &o.ExpiresAt, &o.RespondedAt,
		&o.UpdatedAt,
	)
	return o, err
}

// Create implements offer.OfferRepository.
func (r *offerRepositoryImpl) Create(ctx context.Context, o offer.Offer) (offer.Offer, error) {
	q := GetQuerier(ctx, r.db)

	if o.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return offer.Offer{}, fmt.Errorf("failed to generate offer id: %w", err)
		}
		o.ID = id.String()
	}

	query := `
		INSERT INTO offers (id, candidate_id, email, mobile, token, status, sent_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + offerColumns

	created, err := scanOffer(q.QueryRow(ctx, query,
		o.ID, o.CandidateID, o.Email, o.Mobile, o.Token, o.Status,
		o.SentAt, o.ExpiresAt,
	))
	if err != nil {
		return offer.Offer{}, fmt.Errorf("failed to create offer: %w", err)
	}

	return created, nil
}

// GetByID implements offer.OfferRepository.
func (r *offerRepositoryImpl) GetByID(ctx context.Context, id string) (offer.Offer, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + offerColumns + ` FROM offers WHERE id = $1`

	o, err := scanOffer(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return offer.Offer{}, offer.ErrOfferNotFound
		}
		return offer.Offer{}, fmt.Errorf("failed to get offer: %w", err)
	}

	return o, nil
}

// GetByToken implements offer.OfferRepository.
func (r *offerRepositoryImpl) GetByToken(ctx context.Context, token string) (offer.Offer, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + offerColumns + ` FROM offers WHERE token = $1`

	o, err := scanOffer(q.QueryRow(ctx, query, token))
	if err != nil {
		if err == pgx.ErrNoRows {
			return offer.Offer{}, offer.ErrOfferNotFound
		}
		return offer.Offer{}, fmt.Errorf("failed to get offer by token: %w", err)
	}

	return o, nil
}

// GetLatestByCandidateID implements offer.OfferRepository.
func (r *offerRepositoryImpl) GetLatestByCandidateID(ctx context.Context, candidateID string) (offer.Offer, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + offerColumns + `
		FROM offers
		WHERE candidate_id = $1
		ORDER BY sent_at DESC
		LIMIT 1`

	o, err := scanOffer(q.QueryRow(ctx, query, candidateID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return offer.Offer{}, offer.ErrOfferNotFound
		}
		return offer.Offer{}, fmt.Errorf("failed to get latest offer: %w", err)
	}

	return o, nil
}

// GetByCandidateAndStatus implements offer.OfferRepository.
func (r *offerRepositoryImpl) GetByCandidateAndStatus(ctx context.Context, candidateID string, status offer.Status) (offer.Offer, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + offerColumns + `
		FROM offers
		WHERE candidate_id = $1 AND status = $2
		ORDER BY sent_at DESC
		LIMIT 1`

	o, err := scanOffer(q.QueryRow(ctx, query, candidateID, status))
	if err != nil {
		if err == pgx.ErrNoRows {
			return offer.Offer{}, offer.ErrOfferNotFound
		}
		return offer.Offer{}, fmt.Errorf("failed to get offer by status: %w", err)
	}

	return o, nil
}

// UpdateStatus implements offer.OfferRepository.
func (r *offerRepositoryImpl) UpdateStatus(ctx context.Context, id string, status offer.Status, respondedAt *time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE offers
		SET status = $2, responded_at = $3, updated_at = NOW()
		WHERE id = $1`

	tag, err := q.Exec(ctx, query, id, status, respondedAt)
	if err != nil {
		return fmt.Errorf("failed to update offer status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return offer.ErrOfferNotFound
	}

	return nil
}

// ResetForResend implements offer.OfferRepository.
func (r *offerRepositoryImpl) ResetForResend(ctx context.Context, id, token string, sentAt, expiresAt time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE offers
		SET token = $2, status = 'pending', sent_at = $3, expires_at = $4,
			responded_at = NULL, updated_at = NOW()
		WHERE id = $1`

	tag, err := q.Exec(ctx, query, id, token, sentAt, expiresAt)
	if err != nil {
		return fmt.Errorf("failed to reset offer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return offer.ErrOfferNotFound
	}

	return nil
}

// SetPhysicalLetterCollected implements offer.OfferRepository.
func (r *offerRepositoryImpl) SetPhysicalLetterCollected(ctx context.Context, id string, collected bool) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE offers
		SET physical_letter_collected = $2, updated_at = NOW()
		WHERE id = $1`

	tag, err := q.Exec(ctx, query, id, collected)
	if err != nil {
		return fmt.Errorf("failed to update physical letter flag: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return offer.ErrOfferNotFound
	}

	return nil
}

// ExpirePending implements offer.OfferRepository. Passing an empty
// candidateID sweeps every candidate.
func (r *offerRepositoryImpl) ExpirePending(ctx context.Context, candidateID string, now time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE offers
		SET status = 'expired', updated_at = NOW()
		WHERE status = 'pending'
			AND expires_at < $2
			AND ($1 = '' OR candidate_id::text = $1)`

	tag, err := q.Exec(ctx, query, candidateID, now)
	if err != nil {
		return 0, fmt.Errorf("failed to expire pending offers: %w", err)
	}

	return tag.RowsAffected(), nil
}

func scanOfferWithCandidate(rows pgx.Rows) (offer.OfferWithCandidate, error) {
	var o offer.OfferWithCandidate
	err := rows.Scan(
		&o.ID, &o.CandidateID, &o.Email, &o.Mobile, &o.Token, &o.Status,
		&o.PhysicalLetterCollected, &o.SentAt, &o.ExpiresAt, &o.RespondedAt,
		&o.UpdatedAt, &o.CandidateName, &o.CandidateCollege, &o.CandidateMobile,
	)
	return o, err
}

const offerJoinColumns = `
	o.id, o.candidate_id, o.email, o.mobile, o.token, o.status,
	o.physical_letter_collected, o.sent_at, o.expires_at, o.responded_at,
	o.updated_at, c.full_name, c.college_name, c.mobile`

// List implements offer.OfferRepository.
func (r *offerRepositoryImpl) List(ctx context.Context, filter offer.ListFilter) ([]offer.OfferWithCandidate, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := ` WHERE ($1 = '' OR o.email ILIKE '%' || $1 || '%'
			OR c.full_name ILIKE '%' || $1 || '%'
			OR c.email ILIKE '%' || $1 || '%'
			OR c.college_name ILIKE '%' || $1 || '%')
		AND ($2 = '' OR o.status = $2)`

	var total int64
	countQuery := `SELECT COUNT(*) FROM offers o JOIN candidates c ON c.id = o.candidate_id` + where
	if err := q.QueryRow(ctx, countQuery, filter.Search, string(filter.Status)).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count offers: %w", err)
	}

	query := `
		SELECT ` + offerJoinColumns + `
		FROM offers o
		JOIN candidates c ON c.id = o.candidate_id` + where + `
		ORDER BY o.sent_at DESC
		LIMIT $3 OFFSET $4`

	rows, err := q.Query(ctx, query, filter.Search, string(filter.Status),
		filter.Limit, (filter.Page-1)*filter.Limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list offers: %w", err)
	}
	defer rows.Close()

	var offers []offer.OfferWithCandidate
	for rows.Next() {
		o, err := scanOfferWithCandidate(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan offer: %w", err)
		}
		offers = append(offers, o)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return offers, total, nil
}

// ListAll implements offer.OfferRepository.
func (r *offerRepositoryImpl) ListAll(ctx context.Context) ([]offer.OfferWithCandidate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + offerJoinColumns + `
		FROM offers o
		JOIN candidates c ON c.id = o.candidate_id
		ORDER BY o.sent_at DESC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list offers: %w", err)
	}
	defer rows.Close()

	var offers []offer.OfferWithCandidate
	for rows.Next() {
		o, err := scanOfferWithCandidate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan offer: %w", err)
		}
		offers = append(offers, o)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return offers, nil
}

// ListCollectedAccepted implements offer.OfferRepository.
func (r *offerRepositoryImpl) ListCollectedAccepted(ctx context.Context) ([]offer.Offer, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + offerColumns + `
		FROM offers
		WHERE status = 'accepted' AND physical_letter_collected = TRUE
		ORDER BY sent_at DESC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list collected offers: %w", err)
	}
	defer rows.Close()

	var offers []offer.Offer
	for rows.Next() {
		o, err := scanOffer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan offer: %w", err)
		}
		offers = append(offers, o)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return offers, nil
}
