package preference

import "context"

// PreferenceService defines the interface for domain preference read
// operations. Writes happen only through the spreadsheet importer.
type PreferenceService interface {
	List(ctx context.Context, filter ListFilter) ([]DomainPreference, int64, error)
}
