package audit

import "context"

// AuditService defines the interface for recording and querying audit
// entries
type AuditService interface {
	// Record appends an entry. Failures are logged and swallowed, an audit
	// write must never fail the operation it describes.
	Record(ctx context.Context, l Log)

	// Query retrieves a filtered page of entries plus the total count
	Query(ctx context.Context, filter QueryFilter) ([]Log, int64, error)

	// Stats aggregates entry counters for the audit dashboard
	Stats(ctx context.Context) (Stats, error)

	// OperatorActivity ranks operators over the trailing 30 days
	OperatorActivity(ctx context.Context) ([]OperatorActivity, error)
}

// Actor identifies who performed a mutation and from where. Handlers attach
// it to the request context, services read it when recording entries.
type Actor struct {
	PerformedBy string
	IPAddress   string
	UserAgent   string
}

type actorKey struct{}

// WithActor stores the actor on the context
func WithActor(ctx context.Context, a Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, a)
}

// ActorFromContext retrieves the actor, falling back to "system" for
// background jobs and other callers without a request
func ActorFromContext(ctx context.Context) Actor {
	if a, ok := ctx.Value(actorKey{}).(Actor); ok {
		return a
	}
	return Actor{PerformedBy: "system"}
}
