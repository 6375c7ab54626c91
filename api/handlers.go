package api

import (
	"github.com/inkwell-blog/backend/auth"
	"github.com/inkwell-blog/backend/database"
	"github.com/inkwell-blog/backend/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(db database.Database, engine *services.Engine, issuer auth.TokenIssuer, snapshotBucket string) *routeHandlers {
	return &routeHandlers{
		authHandler:    newAuthHandler(db.UserRepo(), issuer),
		postHandler:    newPostHandler(engine),
		tagHandler:     newTagHandler(engine),
		commentHandler: newCommentHandler(engine),
		statsHandler:   newStatsHandler(engine, snapshotBucket),
	}
}
