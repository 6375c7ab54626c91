package services

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/inkwell-blog/backend/database"
	"github.com/inkwell-blog/backend/errs"
	"github.com/inkwell-blog/backend/models"
)

// Engine is the content lifecycle engine: it owns referential
// integrity across posts, tags, comments and their links, the view
// counters, and the daily statistics tally. Every public operation
// runs in one transaction against the injected store and either fully
// applies or fully rolls back.
//
// The engine is authorization-agnostic: callers establish the acting
// user however they like and pass a models.Actor; mutating operations
// only check its IsAdmin capability.
type Engine struct {
	db     database.Database
	logger zerolog.Logger
}

func NewEngine(db database.Database) *Engine {
	return &Engine{
		db:     db,
		logger: log.With().Str("component", "engine").Logger(),
	}
}

// requireAdmin rejects the operation before any mutation when the
// actor lacks the admin capability.
func requireAdmin(actor models.Actor, operation string) error {
	if !actor.IsAdmin {
		return errs.NewPermissionDenied(operation)
	}
	return nil
}

// normalizeContent converts newlines to HTML line breaks so paragraph
// formatting survives rendering.
func normalizeContent(content string) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	return strings.ReplaceAll(content, "\n", "<br>")
}

// toDate truncates a timestamp to its calendar day in UTC.
func toDate(t time.Time) datatypes.Date {
	return datatypes.Date(time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC))
}

// dedupeIDs collapses repeated ids, keeping first-seen order.
func dedupeIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// transaction is a small readability wrapper over the store handle.
func (e *Engine) transaction(fn func(tx *gorm.DB) error) error {
	return e.db.Transaction(fn)
}
