package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the public surface and the admin group. Mutations
// sit behind token authentication; reads only identify the caller so
// admin views stay out of the counters.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	// Public routes
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Use(authMiddleware.identify)

		r.Post("/login", handlers.authHandler.login())

		r.Get("/posts", handlers.postHandler.listPosts())
		r.Get("/post/{postID}", handlers.postHandler.getPost())
		r.Get("/post/{postID}/comments", handlers.commentHandler.listComments())
		r.Post("/post/{postID}/comments", handlers.commentHandler.addComment())

		r.Get("/tags", handlers.tagHandler.listTags())
	})

	// Admin routes
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Use(authMiddleware.authenticate)

		r.Post("/post", handlers.postHandler.createPost())
		r.Put("/post/{postID}", handlers.postHandler.updatePost())
		r.Delete("/post/{postID}", handlers.postHandler.deletePost())

		r.Post("/tag", handlers.tagHandler.createTag())
		r.Delete("/tag/{tagID}", handlers.tagHandler.deleteTag())

		r.Delete("/comment/{commentID}", handlers.commentHandler.deleteComment())

		r.Get("/dashboard", handlers.statsHandler.dashboard())
		r.Post("/stats/run", handlers.statsHandler.runDailyStats())
	})
}
