package auth

import (
	"context"

	"machinehub/internal/model"
)

type actorKey struct{}

// Actor is the authenticated caller of a request, freshly loaded from the store.
type Actor struct {
	User      *model.User
	SessionID string
	Claims    *SessionClaims
}

// WithActor returns a copy of ctx carrying the actor.
func WithActor(ctx context.Context, actor *Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// ActorFromContext returns the actor placed on ctx by the access gate.
func ActorFromContext(ctx context.Context) (*Actor, bool) {
	actor, ok := ctx.Value(actorKey{}).(*Actor)
	return actor, ok && actor != nil && actor.User != nil
}
