package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/sandevex/hiring-backend-go/internal/domain/intern"
	"github.com/sandevex/hiring-backend-go/internal/pkg/database"
)

type internRepositoryImpl struct {
	db *database.DB
}

// NewInternRepository creates a new intern repository instance
func NewInternRepository(db *database.DB) intern.InternRepository {
	return &internRepositoryImpl{db: db}
}

const internColumns = `
	id, full_name, email, mobile, college_name, degree, branch, year_of_study,
	city_state, address, created_at, updated_at`

func scanIntern(row pgx.Row) (intern.Intern, error) {
	var i intern.Intern
	err := row.Scan(
		&i.ID, &i.FullName, &i.Email, &i.Mobile, &i.CollegeName, &i.Degree,
		&i.Branch, &i.YearOfStudy, &i.CityState, &i.Address,
		&i.CreatedAt, &i.UpdatedAt,
	)
	return i, err
}

// Create implements intern.InternRepository.
func (r *internRepositoryImpl) Create(ctx context.Context, i intern.Intern) (intern.Intern, error) {
	q := GetQuerier(ctx, r.db)

	if i.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return intern.Intern{}, fmt.Errorf("failed to generate intern id: %w", err)
		}
		i.ID = id.String()
	}

	query := `
		INSERT INTO interns (
			id, full_name, email, mobile, college_name, degree, branch,
			year_of_study, city_state, address
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + internColumns

	created, err := scanIntern(q.QueryRow(ctx, query,
		i.ID, i.FullName, i.Email, i.Mobile, i.CollegeName, i.Degree,
		i.Branch, i.YearOfStudy, i.CityState, i.Address,
	))
	if err != nil {
		return intern.Intern{}, fmt.Errorf("failed to create intern: %w", err)
	}

	return created, nil
}

// GetByID implements intern.InternRepository.
func (r *internRepositoryImpl) GetByID(ctx context.Context, id string) (intern.Intern, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + internColumns + ` FROM interns WHERE id = $1`

	i, err := scanIntern(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return intern.Intern{}, intern.ErrInternNotFound
		}
		return intern.Intern{}, fmt.Errorf("failed to get intern: %w", err)
	}

	return i, nil
}

// GetByEmail implements intern.InternRepository.
func (r *internRepositoryImpl) GetByEmail(ctx context.Context, email string) (intern.Intern, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + internColumns + ` FROM interns WHERE LOWER(email) = LOWER($1)`

	i, err := scanIntern(q.QueryRow(ctx, query, email))
	if err != nil {
		if err == pgx.ErrNoRows {
			return intern.Intern{}, intern.ErrInternNotFound
		}
		return intern.Intern{}, fmt.Errorf("failed to get intern by email: %w", err)
	}

	return i, nil
}

// Update implements intern.InternRepository.
func (r *internRepositoryImpl) Update(ctx context.Context, i intern.Intern) (intern.Intern, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE interns
		SET full_name = $2, email = $3, mobile = $4, college_name = $5,
			degree = $6, branch = $7, year_of_study = $8, city_state = $9,
			address = $10, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + internColumns

	updated, err := scanIntern(q.QueryRow(ctx, query,
		i.ID, i.FullName, i.Email, i.Mobile, i.CollegeName, i.Degree,
		i.Branch, i.YearOfStudy, i.CityState, i.Address,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return intern.Intern{}, intern.ErrInternNotFound
		}
		return intern.Intern{}, fmt.Errorf("failed to update intern: %w", err)
	}

	return updated, nil
}

// ListWithProfiles implements intern.InternRepository.
func (r *internRepositoryImpl) ListWithProfiles(ctx context.Context) ([]intern.InternWithProfile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			i.id, i.full_name, i.email, i.mobile, i.college_name, i.degree,
			i.branch, i.year_of_study, i.city_state, i.address,
			i.created_at, i.updated_at,
			p.id, p.intern_id, p.preferred_domain, p.skill_level,
			p.technical_skills, p.prior_experience, p.portfolio_url,
			p.offer_status, p.internship_status, p.internship_fee_paid,
			p.fee_paid_at, p.offer_letter_issued, p.offer_letter_issued_at,
			p.certificate_issued, p.certificate_issued_at, p.joined_at,
			p.completed_at, p.notes, p.created_at, p.updated_at
		FROM interns i
		JOIN intern_profiles p ON p.intern_id = i.id
		ORDER BY i.created_at DESC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list interns: %w", err)
	}
	defer rows.Close()

	var interns []intern.InternWithProfile
	for rows.Next() {
		var iw intern.InternWithProfile
		err := rows.Scan(
			&iw.ID, &iw.FullName, &iw.Email, &iw.Mobile, &iw.CollegeName,
			&iw.Degree, &iw.Branch, &iw.YearOfStudy, &iw.CityState,
			&iw.Address, &iw.CreatedAt, &iw.UpdatedAt,
			&iw.Profile.ID, &iw.Profile.InternID, &iw.Profile.PreferredDomain,
			&iw.Profile.SkillLevel, &iw.Profile.TechnicalSkills,
			&iw.Profile.PriorExperience, &iw.Profile.PortfolioURL,
			&iw.Profile.OfferStatus, &iw.Profile.InternshipStatus,
			&iw.Profile.InternshipFeePaid, &iw.Profile.FeePaidAt,
			&iw.Profile.OfferLetterIssued, &iw.Profile.OfferLetterIssuedAt,
			&iw.Profile.CertificateIssued, &iw.Profile.CertificateIssuedAt,
			&iw.Profile.JoinedAt, &iw.Profile.CompletedAt, &iw.Profile.Notes,
			&iw.Profile.CreatedAt, &iw.Profile.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan intern: %w", err)
		}
		interns = append(interns, iw)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return interns, nil
}
