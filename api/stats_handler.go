package api

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/inkwell-blog/backend/errs"
	"github.com/inkwell-blog/backend/services"
)

type statsHandler struct {
	responder      Responder
	logger         zerolog.Logger
	engine         *services.Engine
	snapshotBucket string
}

func newStatsHandler(engine *services.Engine, snapshotBucket string) statsHandler {
	logger := log.With().Str("handlerName", "statsHandler").Logger()

	return statsHandler{
		responder:      NewResponder(logger),
		logger:         logger,
		engine:         engine,
		snapshotBucket: snapshotBucket,
	}
}

// dashboard serves the admin analytics payload.
func (h statsHandler) dashboard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := h.engine.Dashboard(ctxGetActor(r.Context()))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, stats)
	}
}

// runDailyStats runs the daily statistics job for today, or for
// ?date=YYYY-MM-DD when replaying a specific day. The scheduled path
// is the cmd/dailystats binary; this route exists for manual runs.
func (h statsHandler) runDailyStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor := ctxGetActor(r.Context())
		if !actor.IsAdmin {
			h.responder.WriteError(w, errs.NewPermissionDenied("run daily stats"))
			return
		}

		day := time.Now()
		if raw := r.URL.Query().Get("date"); raw != "" {
			parsed, err := time.Parse("2006-01-02", raw)
			if err != nil {
				h.responder.WriteError(w, errs.NewValidationError("date", "date must be YYYY-MM-DD"))
				return
			}
			day = parsed
		}

		stat, err := h.engine.RunDailyStatsJob(day)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if h.snapshotBucket != "" {
			go h.exportSnapshot()
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, stat)
	}
}

func (h statsHandler) exportSnapshot() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	client, err := services.NewS3Client(ctx)
	if err != nil {
		h.logger.Error().Err(err).Msg("snapshot export skipped: AWS config unavailable")
		return
	}
	if err := h.engine.ExportSnapshot(ctx, client, h.snapshotBucket); err != nil {
		h.logger.Error().Err(err).Msg("snapshot export failed")
	}
}
