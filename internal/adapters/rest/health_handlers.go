package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/srinugalla/the-slice-x/internal/contextkeys"
	"github.com/srinugalla/the-slice-x/internal/core/port"
)

const defaultHealthTimeout = 2 * time.Second

type HealthHandler struct {
	pinger  port.PingerPort
	timeout time.Duration
}

func NewHealthHandler(pinger port.PingerPort, timeout time.Duration) *HealthHandler {
	if timeout <= 0 {
		timeout = defaultHealthTimeout
	}
	return &HealthHandler{pinger: pinger, timeout: timeout}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := h.pinger.Ping(ctx); err != nil {
		contextkeys.LoggerFromContext(r.Context()).Warn("Store ping failed", port.Fields{"error": err.Error()})
		RespondWithJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "unavailable"})
		return
	}
	RespondWithJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}
