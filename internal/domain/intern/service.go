package intern

import "context"

// InternService defines the interface for intern conversion and maintenance
type InternService interface {
	// Convert promotes a candidate into an intern plus profile. The
	// candidate, offer and email-matched domain preference must line up,
	// and a candidate converts at most once.
	Convert(ctx context.Context, req ConvertRequest) (InternWithProfile, error)

	// Update applies a partial update to an intern and its profile,
	// recording field-level audit entries for what changed
	Update(ctx context.Context, id string, req UpdateRequest) (InternWithProfile, error)

	// Get retrieves one intern with its profile
	Get(ctx context.Context, id string) (InternWithProfile, error)

	// List retrieves every intern with its profile, newest first
	List(ctx context.Context) ([]InternWithProfile, error)
}
