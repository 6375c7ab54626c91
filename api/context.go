package api

import (
	"context"

	"github.com/inkwell-blog/backend/models"
)

type keyType string

const (
	actorKey keyType = "actor"
)

// ctxWithActor adds the acting user to the context
func ctxWithActor(ctx context.Context, actor models.Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

// ctxGetActor retrieves the acting user from the context. The zero
// Actor (anonymous, non-admin) is returned when none was set, so
// public handlers can call this unconditionally.
func ctxGetActor(ctx context.Context) models.Actor {
	if v := ctx.Value(actorKey); v != nil {
		if actor, ok := v.(models.Actor); ok {
			return actor
		}
	}
	return models.Actor{}
}
