package candidate

import (
	"context"
	"fmt"

	"github.com/sandevex/hiring-backend-go/internal/domain/candidate"
)

// CandidateServiceImpl implements candidate.CandidateService
type CandidateServiceImpl struct {
	candidateRepo candidate.CandidateRepository
}

func NewCandidateService(candidateRepo candidate.CandidateRepository) candidate.CandidateService {
	return &CandidateServiceImpl{candidateRepo: candidateRepo}
}

// List implements candidate.CandidateService
func (s *CandidateServiceImpl) List(ctx context.Context, filter candidate.ListFilter) ([]candidate.Candidate, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	candidates, total, err := s.candidateRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list candidates: %w", err)
	}

	return candidates, total, nil
}

// Get implements candidate.CandidateService
func (s *CandidateServiceImpl) Get(ctx context.Context, id string) (candidate.Candidate, error) {
	return s.candidateRepo.GetByID(ctx, id)
}
