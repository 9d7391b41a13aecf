package handlers

import (
	"log/slog"
	"net/http"
	"time"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// foodCounter is the part of the dashboard the health check reads
type foodCounter interface {
	Count() int
}

// HealthHandler provides health check endpoint
type HealthHandler struct {
	foods  foodCounter
	logger *slog.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(foods foodCounter, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		foods:  foods,
		logger: logger,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
	Foods     int       `json:"foods"`
}

// ServeHTTP handles health check requests
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Version:   Version,
		Foods:     h.foods.Count(),
	}

	WriteJSON(w, http.StatusOK, response, h.logger)
}
