package preference

import "context"

// ListFilter narrows and pages the admin preference listing.
type ListFilter struct {
	Search     string // matches name, email, contact number or college
	Domain     string
	College    string
	SkillLevel string
	Page       int
	Limit      int
}

// PreferenceRepository defines the interface for domain preference data
// access. GetByEmail is the single shared email-join lookup used by every
// caller that needs to attach a preference to a candidate.
type PreferenceRepository interface {
	// GetByEmail retrieves the preference submitted with the given email
	GetByEmail(ctx context.Context, email string) (DomainPreference, error)

	// ExistsByEmail reports whether a preference row exists for the email
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// List retrieves a filtered, paginated page plus the total match count
	List(ctx context.Context, filter ListFilter) ([]DomainPreference, int64, error)

	// ListAll retrieves every preference, newest submission first (reporting)
	ListAll(ctx context.Context) ([]DomainPreference, error)

	// Create inserts a new preference row
	Create(ctx context.Context, p DomainPreference) (DomainPreference, error)
}
