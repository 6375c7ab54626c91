package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/inkwell-blog/backend/auth"
	"github.com/inkwell-blog/backend/database"
	"github.com/inkwell-blog/backend/errs"
)

type authHandler struct {
	responder Responder
	logger    zerolog.Logger
	userRepo  *database.UserRepo
	issuer    auth.TokenIssuer
}

func newAuthHandler(userRepo *database.UserRepo, issuer auth.TokenIssuer) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder: NewResponder(logger),
		logger:    logger,
		userRepo:  userRepo,
		issuer:    issuer,
	}
}

// login verifies credentials against the stored bcrypt hash and issues
// a session token. Failed attempts get the same response regardless of
// whether the username exists.
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		user, err := h.userRepo.FindByUsername(payload.Username)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "user", err))
			return
		}
		if user == nil || !auth.VerifyPassword(payload.Password, user.PasswordHash) {
			h.responder.WriteError(w, errs.NewUnauthorizedError("invalid credentials"))
			return
		}

		token, err := h.issuer.Issue(user)
		if err != nil {
			h.logger.Error().Err(err).Msg("failed to issue token")
			h.responder.WriteError(w, errs.NewInternalError("failed to issue token"))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"token":   token,
			"isAdmin": user.IsAdmin(),
		})
	}
}
