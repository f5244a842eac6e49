package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/sandevex/hiring-backend-go/internal/domain/candidate"
	"github.com/sandevex/hiring-backend-go/internal/pkg/database"
)

type candidateRepositoryImpl struct {
	db *database.DB
}

// NewCandidateRepository creates a new candidate repository instance
func NewCandidateRepository(db *database.DB) candidate.CandidateRepository {
	return &candidateRepositoryImpl{db: db}
}

const candidateColumns = `
	id, full_name, email, mobile, city_state, address, college_name, degree,
	branch, year_of_study, preferred_domain, technical_skills,
	prior_experience, portfolio_url, motivation, declaration,
	created_at, updated_at`

func scanCandidate(row pgx.Row) (candidate.Candidate, error) {
	var c candidate.Candidate
	err := row.Scan(
		&c.ID, &c.FullName, &c.Email, &c.Mobile, &c.CityState, &c.Address,
		&c.CollegeName, &c.Degree, &c.Branch, &c.YearOfStudy,
		&c.PreferredDomain, &c.TechnicalSkills, &c.PriorExperience,
		&c.PortfolioURL, &c.Motivation, &c.Declaration,
		&c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

// GetByID implements candidate.CandidateRepository.
func (r *candidateRepositoryImpl) GetByID(ctx context.Context, id string) (candidate.Candidate, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE id = $1`

	c, err := scanCandidate(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return candidate.Candidate{}, candidate.ErrCandidateNotFound
		}
		return candidate.Candidate{}, fmt.Errorf("failed to get candidate: %w", err)
	}

	return c, nil
}

// List implements candidate.CandidateRepository.
func (r *candidateRepositoryImpl) List(ctx context.Context, filter candidate.ListFilter) ([]candidate.Candidate, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := ` WHERE ($1 = '' OR full_name ILIKE '%' || $1 || '%'
			OR email ILIKE '%' || $1 || '%'
			OR mobile ILIKE '%' || $1 || '%'
			OR college_name ILIKE '%' || $1 || '%')
		AND ($2 = '' OR college_name ILIKE $2)`

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM candidates`+where,
		filter.Search, filter.College).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count candidates: %w", err)
	}

	order := ` ORDER BY created_at DESC`
	if filter.OldestFirst {
		order = ` ORDER BY created_at ASC`
	}

	query := `SELECT ` + candidateColumns + ` FROM candidates` + where + order +
		` LIMIT $3 OFFSET $4`

	rows, err := q.Query(ctx, query, filter.Search, filter.College,
		filter.Limit, (filter.Page-1)*filter.Limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	var candidates []candidate.Candidate
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan candidate: %w", err)
		}
		candidates = append(candidates, c)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return candidates, total, nil
}

// ListAll implements candidate.CandidateRepository.
func (r *candidateRepositoryImpl) ListAll(ctx context.Context) ([]candidate.Candidate, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + candidateColumns + ` FROM candidates ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	var candidates []candidate.Candidate
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		candidates = append(candidates, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return candidates, nil
}

// Upsert implements candidate.CandidateRepository.
func (r *candidateRepositoryImpl) Upsert(ctx context.Context, c candidate.Candidate) (candidate.Candidate, error) {
	q := GetQuerier(ctx, r.db)

	if c.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return candidate.Candidate{}, fmt.Errorf("failed to generate candidate id: %w", err)
		}
		c.ID = id.String()
	}

	query := `
		INSERT INTO candidates (
			id, full_name, email, mobile, city_state, address, college_name,
			degree, branch, year_of_study, preferred_domain, technical_skills,
			prior_experience, portfolio_url, motivation, declaration
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		ON CONFLICT (email) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			mobile = EXCLUDED.mobile,
			city_state = EXCLUDED.city_state,
			address = EXCLUDED.address,
			college_name = EXCLUDED.college_name,
			degree = EXCLUDED.degree,
			branch = EXCLUDED.branch,
			year_of_study = EXCLUDED.year_of_study,
			preferred_domain = EXCLUDED.preferred_domain,
			technical_skills = EXCLUDED.technical_skills,
			prior_experience = EXCLUDED.prior_experience,
			portfolio_url = EXCLUDED.portfolio_url,
			motivation = EXCLUDED.motivation,
			declaration = EXCLUDED.declaration,
			updated_at = NOW()
		RETURNING ` + candidateColumns

	created, err := scanCandidate(q.QueryRow(ctx, query,
		c.ID, c.FullName, c.Email, c.Mobile, c.CityState, c.Address,
		c.CollegeName, c.Degree, c.Branch, c.YearOfStudy, c.PreferredDomain,
		c.TechnicalSkills, c.PriorExperience, c.PortfolioURL, c.Motivation,
		c.Declaration,
	))
	if err != nil {
		return candidate.Candidate{}, fmt.Errorf("failed to upsert candidate: %w", err)
	}

	return created, nil
}
