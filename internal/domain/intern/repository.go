package intern

import "context"

// InternRepository defines the interface for intern identity data access
type InternRepository interface {
	// Create inserts a new intern row
	Create(ctx context.Context, i Intern) (Intern, error)

	// GetByID retrieves an intern by id
	GetByID(ctx context.Context, id string) (Intern, error)

	// GetByEmail retrieves an intern by email
	GetByEmail(ctx context.Context, email string) (Intern, error)

	// Update overwrites the intern's personal fields
	Update(ctx context.Context, i Intern) (Intern, error)

	// ListWithProfiles retrieves every intern joined with its profile,
	// newest conversion first
	ListWithProfiles(ctx context.Context) ([]InternWithProfile, error)
}

// ProfileRepository defines the interface for intern profile data access
type ProfileRepository interface {
	// Create inserts a new profile row
	Create(ctx context.Context, p Profile) (Profile, error)

	// GetByInternID retrieves the profile belonging to an intern
	GetByInternID(ctx context.Context, internID string) (Profile, error)

	// Update overwrites the profile's workflow fields
	Update(ctx context.Context, p Profile) (Profile, error)

	// MarkOfferLetterIssued sets the letter flag, its timestamp and the
	// accepted offer status mirror in one write
	MarkOfferLetterIssued(ctx context.Context, internID string) error
}
