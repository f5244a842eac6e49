// Package importer pulls candidate and domain preference rows from the two
// source spreadsheets. Candidate rows upsert by email on every sync, domain
// preference rows are written once and never overwritten, re-running either
// sync is safe.
package importer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/sandevex/hiring-backend-go/internal/config"
	"github.com/sandevex/hiring-backend-go/internal/domain/candidate"
	"github.com/sandevex/hiring-backend-go/internal/domain/preference"
	"github.com/sandevex/hiring-backend-go/internal/pkg/sheets"
)

// ErrUpstream wraps spreadsheet fetch failures so handlers can map them to a
// bad gateway response
var ErrUpstream = errors.New("spreadsheet source unavailable")

// SyncResult reports what one sync run did
type SyncResult struct {
	Processed int `json:"processed"`
	Imported  int `json:"imported"`
	Skipped   int `json:"skipped"`
}

// ImporterService defines the interface for the spreadsheet syncs
type ImporterService interface {
	// SyncCandidates upserts candidate rows keyed by email
	SyncCandidates(ctx context.Context) (SyncResult, error)

	// SyncDomainPreferences inserts preference rows whose email is new,
	// first write wins
	SyncDomainPreferences(ctx context.Context) (SyncResult, error)
}

type ImporterServiceImpl struct {
	source         sheets.RowSource
	candidateRepo  candidate.CandidateRepository
	preferenceRepo preference.PreferenceRepository
	cfg            config.SheetsConfig
}

func NewImporterService(
	source sheets.RowSource,
	candidateRepo candidate.CandidateRepository,
	preferenceRepo preference.PreferenceRepository,
	cfg config.SheetsConfig,
) ImporterService {
	return &ImporterServiceImpl{
		source:         source,
		candidateRepo:  candidateRepo,
		preferenceRepo: preferenceRepo,
		cfg:            cfg,
	}
}

// cell reads a column defensively, short rows read as empty strings
func cell(row []string, i int) string {
	if i < len(row) {
		return strings.TrimSpace(row[i])
	}
	return ""
}

func splitSkills(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}

// Candidate sheet columns: timestamp, full name, email, mobile, city/state,
// address, college, degree, branch, year, preferred domain, skills,
// prior experience, portfolio, motivation, declaration.
func mapCandidateRow(row []string) candidate.Candidate {
	return candidate.Candidate{
		FullName:        cell(row, 1),
		Email:           cell(row, 2),
		Mobile:          cell(row, 3),
		CityState:       cell(row, 4),
		Address:         cell(row, 5),
		CollegeName:     cell(row, 6),
		Degree:          cell(row, 7),
		Branch:          cell(row, 8),
		YearOfStudy:     cell(row, 9),
		PreferredDomain: cell(row, 10),
		TechnicalSkills: splitSkills(cell(row, 11)),
		PriorExperience: cell(row, 12),
		PortfolioURL:    cell(row, 13),
		Motivation:      cell(row, 14),
		Declaration:     cell(row, 15),
	}
}

// SyncCandidates implements ImporterService.
func (s *ImporterServiceImpl) SyncCandidates(ctx context.Context) (SyncResult, error) {
	rows, err := s.source.Rows(ctx, s.cfg.CandidateSpreadsheet, s.cfg.CandidateRange)
	if err != nil {
		return SyncResult{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	var result SyncResult
	for _, row := range rows {
		result.Processed++

		c := mapCandidateRow(row)
		if c.Email == "" {
			result.Skipped++
			continue
		}

		if _, err := s.candidateRepo.Upsert(ctx, c); err != nil {
			return result, fmt.Errorf("failed to upsert candidate %s: %w", c.Email, err)
		}
		result.Imported++
	}

	slog.Info("candidate sync finished",
		"processed", result.Processed,
		"imported", result.Imported,
		"skipped", result.Skipped)

	return result, nil
}

// Preference sheet columns: timestamp, full name, email, contact, college,
// year, domain, skill level, interest reason, three technology columns and
// an optional better email in column 12.
func mapPreferenceRow(row []string) preference.DomainPreference {
	email := cell(row, 12)
	if email == "" {
		email = cell(row, 2)
	}

	technologies := make([]string, 0, 3)
	for _, i := range []int{9, 10, 11} {
		if t := cell(row, i); t != "" {
			technologies = append(technologies, t)
		}
	}

	return preference.DomainPreference{
		SubmittedAt:    parseSheetTime(cell(row, 0)),
		FullName:       cell(row, 1),
		Email:          email,
		ContactNumber:  cell(row, 3),
		CollegeName:    cell(row, 4),
		YearOfStudy:    cell(row, 5),
		Domain:         cell(row, 6),
		SkillLevel:     cell(row, 7),
		InterestReason: cell(row, 8),
		Technologies:   technologies,
	}
}

// sheetTimeLayouts are the timestamp shapes Google Forms exports produce
var sheetTimeLayouts = []string{
	"1/2/2006 15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

func parseSheetTime(raw string) time.Time {
	for _, layout := range sheetTimeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Now()
}

// SyncDomainPreferences implements ImporterService.
func (s *ImporterServiceImpl) SyncDomainPreferences(ctx context.Context) (SyncResult, error) {
	rows, err := s.source.Rows(ctx, s.cfg.PreferenceSpreadsheet, s.cfg.PreferenceRange)
	if err != nil {
		return SyncResult{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	var result SyncResult
	for _, row := range rows {
		if cell(row, 0) == "" {
			continue
		}
		result.Processed++

		p := mapPreferenceRow(row)
		if p.Email == "" {
			result.Skipped++
			continue
		}

		exists, err := s.preferenceRepo.ExistsByEmail(ctx, p.Email)
		if err != nil {
			return result, fmt.Errorf("failed to check preference %s: %w", p.Email, err)
		}
		if exists {
			result.Skipped++
			continue
		}

		if _, err := s.preferenceRepo.Create(ctx, p); err != nil {
			return result, fmt.Errorf("failed to create preference %s: %w", p.Email, err)
		}
		result.Imported++
	}

	slog.Info("domain preference sync finished",
		"processed", result.Processed,
		"imported", result.Imported,
		"skipped", result.Skipped)

	return result, nil
}
