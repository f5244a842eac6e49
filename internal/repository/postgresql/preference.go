package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/sandevex/hiring-backend-go/internal/domain/preference"
	"github.com/sandevex/hiring-backend-go/internal/pkg/database"
)

type preferenceRepositoryImpl struct {
	db *database.DB
}

// NewPreferenceRepository creates a new domain preference repository instance
func NewPreferenceRepository(db *database.DB) preference.PreferenceRepository {
	return &preferenceRepositoryImpl{db: db}
}

const preferenceColumns = `
	id, submitted_at, full_name, email, contact_number, college_name,
	year_of_study, domain, skill_level, interest_reason, technologies,
	portfolio_url, created_at`

func scanPreference(row pgx.Row) (preference.DomainPreference, error) {
	var p preference.DomainPreference
	err := row.Scan(
		&p.ID, &p.SubmittedAt, &p.FullName, &p.Email, &p.ContactNumber,
		&p.CollegeName, &p.YearOfStudy, &p.Domain, &p.SkillLevel,
		&p.InterestReason, &p.Technologies, &p.PortfolioURL, &p.CreatedAt,
	)
	return p, err
}

// GetByEmail implements preference.PreferenceRepository.
func (r *preferenceRepositoryImpl) GetByEmail(ctx context.Context, email string) (preference.DomainPreference, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + preferenceColumns + `
		FROM domain_preferences
		WHERE LOWER(email) = LOWER($1)
		ORDER BY submitted_at DESC
		LIMIT 1`

	p, err := scanPreference(q.QueryRow(ctx, query, email))
	if err != nil {
		if err == pgx.ErrNoRows {
			return preference.DomainPreference{}, preference.ErrPreferenceNotFound
		}
		return preference.DomainPreference{}, fmt.Errorf("failed to get preference: %w", err)
	}

	return p, nil
}

// ExistsByEmail implements preference.PreferenceRepository.
func (r *preferenceRepositoryImpl) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM domain_preferences WHERE LOWER(email) = LOWER($1))`
	if err := q.QueryRow(ctx, query, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check preference existence: %w", err)
	}

	return exists, nil
}

// List implements preference.PreferenceRepository.
func (r *preferenceRepositoryImpl) List(ctx context.Context, filter preference.ListFilter) ([]preference.DomainPreference, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := ` WHERE ($1 = '' OR full_name ILIKE '%' || $1 || '%'
			OR email ILIKE '%' || $1 || '%'
			OR contact_number ILIKE '%' || $1 || '%'
			OR college_name ILIKE '%' || $1 || '%')
		AND ($2 = '' OR domain ILIKE $2)
		AND ($3 = '' OR college_name ILIKE $3)
		AND ($4 = '' OR skill_level ILIKE $4)`

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM domain_preferences`+where,
		filter.Search, filter.Domain, filter.College, filter.SkillLevel).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count preferences: %w", err)
	}

	query := `SELECT ` + preferenceColumns + ` FROM domain_preferences` + where + `
		ORDER BY submitted_at DESC
		LIMIT $5 OFFSET $6`

	rows, err := q.Query(ctx, query, filter.Search, filter.Domain,
		filter.College, filter.SkillLevel, filter.Limit, (filter.Page-1)*filter.Limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list preferences: %w", err)
	}
	defer rows.Close()

	var prefs []preference.DomainPreference
	for rows.Next() {
		p, err := scanPreference(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan preference: %w", err)
		}
		prefs = append(prefs, p)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return prefs, total, nil
}

// ListAll implements preference.PreferenceRepository.
func (r *preferenceRepositoryImpl) ListAll(ctx context.Context) ([]preference.DomainPreference, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + preferenceColumns + ` FROM domain_preferences ORDER BY submitted_at DESC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list preferences: %w", err)
	}
	defer rows.Close()

	var prefs []preference.DomainPreference
	for rows.Next() {
		p, err := scanPreference(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan preference: %w", err)
		}
		prefs = append(prefs, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return prefs, nil
}

// Create implements preference.PreferenceRepository.
func (r *preferenceRepositoryImpl) Create(ctx context.Context, p preference.DomainPreference) (preference.DomainPreference, error) {
	q := GetQuerier(ctx, r.db)

	if p.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return preference.DomainPreference{}, fmt.Errorf("failed to generate preference id: %w", err)
		}
		p.ID = id.String()
	}

	query := `
		INSERT INTO domain_preferences (
			id, submitted_at, full_name, email, contact_number, college_name,
			year_of_study, domain, skill_level, interest_reason, technologies,
			portfolio_url
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + preferenceColumns

	created, err := scanPreference(q.QueryRow(ctx, query,
		p.ID, p.SubmittedAt, p.FullName, p.Email, p.ContactNumber,
		p.CollegeName, p.YearOfStudy, p.Domain, p.SkillLevel,
		p.InterestReason, p.Technologies, p.PortfolioURL,
	))
	if err != nil {
		return preference.DomainPreference{}, fmt.Errorf("failed to create preference: %w", err)
	}

	return created, nil
}
