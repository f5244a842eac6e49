package preference

import (
	"context"
	"fmt"

	"github.com/sandevex/hiring-backend-go/internal/domain/preference"
)

// PreferenceServiceImpl implements preference.PreferenceService
type PreferenceServiceImpl struct {
	preferenceRepo preference.PreferenceRepository
}

func NewPreferenceService(preferenceRepo preference.PreferenceRepository) preference.PreferenceService {
	return &PreferenceServiceImpl{preferenceRepo: preferenceRepo}
}

// List implements preference.PreferenceService
func (s *PreferenceServiceImpl) List(ctx context.Context, filter preference.ListFilter) ([]preference.DomainPreference, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	preferences, total, err := s.preferenceRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list domain preferences: %w", err)
	}

	return preferences, total, nil
}
