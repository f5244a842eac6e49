package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/sandevex/hiring-backend-go/internal/domain/intern"
	"github.com/sandevex/hiring-backend-go/internal/pkg/database"
)

type profileRepositoryImpl struct {
	db *database.DB
}

// NewProfileRepository creates a new intern profile repository instance
func NewProfileRepository(db *database.DB) intern.ProfileRepository {
	return &profileRepositoryImpl{db: db}
}

const profileColumns = `
	id, intern_id, preferred_domain, skill_level, technical_skills,
	prior_experience, portfolio_url, offer_status, internship_status,
	internship_fee_paid, fee_paid_at, offer_letter_issued,
	offer_letter_issued_at, certificate_issued, certificate_issued_at,
	joined_at, completed_at, notes, created_at, updated_at`

func scanProfile(row pgx.Row) (intern.Profile, error) {
	var p intern.Profile
	err := row.Scan(
		&p.ID, &p.InternID, &p.PreferredDomain, &p.SkillLevel,
		&p.TechnicalSkills, &p.PriorExperience, &p.PortfolioURL,
		&p.OfferStatus, &p.InternshipStatus, &p.InternshipFeePaid,
		&p.FeePaidAt, &p.OfferLetterIssued, &p.OfferLetterIssuedAt,
		&p.CertificateIssued, &p.CertificateIssuedAt, &p.JoinedAt,
		&p.CompletedAt, &p.Notes, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

// Create implements intern.ProfileRepository.
func (r *profileRepositoryImpl) Create(ctx context.Context, p intern.Profile) (intern.Profile, error) {
	q := GetQuerier(ctx, r.db)

	if p.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return intern.Profile{}, fmt.Errorf("failed to generate profile id: %w", err)
		}
		p.ID = id.String()
	}

	query := `
		INSERT INTO intern_profiles (
			id, intern_id, preferred_domain, skill_level, technical_skills,
			prior_experience, portfolio_url, offer_status, internship_status,
			internship_fee_paid, fee_paid_at, offer_letter_issued,
			offer_letter_issued_at, certificate_issued, certificate_issued_at,
			joined_at, completed_at, notes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING ` + profileColumns

	created, err := scanProfile(q.QueryRow(ctx, query,
		p.ID, p.InternID, p.PreferredDomain, p.SkillLevel, p.TechnicalSkills,
		p.PriorExperience, p.PortfolioURL, p.OfferStatus, p.InternshipStatus,
		p.InternshipFeePaid, p.FeePaidAt, p.OfferLetterIssued,
		p.OfferLetterIssuedAt, p.CertificateIssued, p.CertificateIssuedAt,
		p.JoinedAt, p.CompletedAt, p.Notes,
	))
	if err != nil {
		return intern.Profile{}, fmt.Errorf("failed to create profile: %w", err)
	}

	return created, nil
}

// GetByInternID implements intern.ProfileRepository.
func (r *profileRepositoryImpl) GetByInternID(ctx context.Context, internID string) (intern.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + profileColumns + ` FROM intern_profiles WHERE intern_id = $1`

	p, err := scanProfile(q.QueryRow(ctx, query, internID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return intern.Profile{}, intern.ErrProfileNotFound
		}
		return intern.Profile{}, fmt.Errorf("failed to get profile: %w", err)
	}

	return p, nil
}

// Update implements intern.ProfileRepository.
func (r *profileRepositoryImpl) Update(ctx context.Context, p intern.Profile) (intern.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE intern_profiles
		SET preferred_domain = $2, skill_level = $3, technical_skills = $4,
			prior_experience = $5, portfolio_url = $6, offer_status = $7,
			internship_status = $8, internship_fee_paid = $9, fee_paid_at = $10,
			offer_letter_issued = $11, offer_letter_issued_at = $12,
			certificate_issued = $13, certificate_issued_at = $14,
			joined_at = $15, completed_at = $16, notes = $17,
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + profileColumns

	updated, err := scanProfile(q.QueryRow(ctx, query,
		p.ID, p.PreferredDomain, p.SkillLevel, p.TechnicalSkills,
		p.PriorExperience, p.PortfolioURL, p.OfferStatus, p.InternshipStatus,
		p.InternshipFeePaid, p.FeePaidAt, p.OfferLetterIssued,
		p.OfferLetterIssuedAt, p.CertificateIssued, p.CertificateIssuedAt,
		p.JoinedAt, p.CompletedAt, p.Notes,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return intern.Profile{}, intern.ErrProfileNotFound
		}
		return intern.Profile{}, fmt.Errorf("failed to update profile: %w", err)
	}

	return updated, nil
}

// MarkOfferLetterIssued implements intern.ProfileRepository.
func (r *profileRepositoryImpl) MarkOfferLetterIssued(ctx context.Context, internID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE intern_profiles
		SET offer_letter_issued = TRUE,
			offer_letter_issued_at = COALESCE(offer_letter_issued_at, NOW()),
			offer_status = 'accepted',
			updated_at = NOW()
		WHERE intern_id = $1`

	tag, err := q.Exec(ctx, query, internID)
	if err != nil {
		return fmt.Errorf("failed to mark offer letter issued: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return intern.ErrProfileNotFound
	}

	return nil
}
