package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/inkwell-blog/backend/errs"
	"github.com/inkwell-blog/backend/services"
)

type postHandler struct {
	responder Responder
	logger    zerolog.Logger
	engine    *services.Engine
}

func newPostHandler(engine *services.Engine) postHandler {
	logger := log.With().Str("handlerName", "postHandler").Logger()

	return postHandler{
		responder: NewResponder(logger),
		logger:    logger,
		engine:    engine,
	}
}

// postPayload is the wire shape for creating and editing posts.
type postPayload struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Date    string   `json:"date"` // YYYY-MM-DD
	TagIDs  []string `json:"tagIds"`
}

func (p postPayload) toInput() (services.PostInput, error) {
	var in services.PostInput
	in.Title = p.Title
	in.Content = p.Content

	if p.Date != "" {
		date, err := time.Parse("2006-01-02", p.Date)
		if err != nil {
			return in, errs.NewValidationError("date", "date must be YYYY-MM-DD")
		}
		in.Date = date
	}

	for _, raw := range p.TagIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return in, errs.NewValidationError("tagIds", "invalid tag id "+raw)
		}
		in.TagIDs = append(in.TagIDs, id)
	}
	return in, nil
}

// parseTagFilter reads the optional ?tags=id,id query parameter.
func parseTagFilter(r *http.Request) ([]uuid.UUID, error) {
	raw := r.URL.Query().Get("tags")
	if raw == "" {
		return nil, nil
	}
	var ids []uuid.UUID
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := uuid.Parse(part)
		if err != nil {
			return nil, errs.NewValidationError("tags", "invalid tag id "+part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// listPosts returns all posts newest first, optionally filtered to
// those carrying any of the requested tags.
func (h postHandler) listPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseTagFilter(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		posts, err := h.engine.ListPosts(filter)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]any{"posts": posts, "total": len(posts)})
	}
}

// getPost returns one post with its tags and records the view. Admin
// viewers are identified from the optional bearer token and excluded
// from the counters.
func (h postHandler) getPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := uuid.Parse(chi.URLParam(r, "postID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid postID"))
			return
		}

		actor := ctxGetActor(r.Context())
		post, err := h.engine.ViewPost(postID, actor.IsAdmin)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, post)
	}
}

func (h postHandler) createPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload postPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode post request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		in, err := payload.toInput()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		post, err := h.engine.CreatePost(ctxGetActor(r.Context()), in)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, post)
	}
}

func (h postHandler) updatePost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := uuid.Parse(chi.URLParam(r, "postID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid postID"))
			return
		}

		var payload postPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode post request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		in, err := payload.toInput()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		post, err := h.engine.EditPost(ctxGetActor(r.Context()), postID, in)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, post)
	}
}

func (h postHandler) deletePost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := uuid.Parse(chi.URLParam(r, "postID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid postID"))
			return
		}

		if err := h.engine.DeletePost(ctxGetActor(r.Context()), postID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "post deleted successfully",
		})
	}
}
