package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/damayanti/damayanti-be/internal/http/respond"
	"github.com/damayanti/damayanti-be/internal/storage"
)

// HealthHandler returns uptime and database reachability.
type HealthHandler struct {
	startedAt time.Time
	db        storage.Pinger
	log       logrus.FieldLogger
}

// NewHealthHandler creates a health endpoint handler.
func NewHealthHandler(startedAt time.Time, db storage.Pinger, log logrus.FieldLogger) *HealthHandler {
	return &HealthHandler{startedAt: startedAt, db: db, log: log}
}

func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.log.WithError(err).Error("health check failed")
		respond.Error(w, http.StatusInternalServerError, "Database connection failed")
		return
	}
	respond.JSON(w, http.StatusOK, "ok", map[string]string{
		"uptime": time.Since(h.startedAt).Truncate(time.Second).String(),
	})
}
