package auditlogs

import "context"

// Actor identifies who performs a request
type Actor struct {
	UserID    string
	Email     string
	Role      string
	IPAddress string
	UserAgent string
}

type actorKey struct{}

// WithActor stores the actor in ctx
func WithActor(ctx context.Context, actor *Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// ActorFromContext returns the actor stored in ctx, or nil for system actions
func ActorFromContext(ctx context.Context) *Actor {
	actor, _ := ctx.Value(actorKey{}).(*Actor)
	return actor
}
