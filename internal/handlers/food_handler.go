package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Lixing-Zhang/food-dashboard/internal/dashboard"
	"github.com/Lixing-Zhang/food-dashboard/internal/models"
)

// FoodHandler exposes the dashboard handlers as a JSON action API.
// Every successful action answers with the resulting dashboard state.
type FoodHandler struct {
	dash   *dashboard.Dashboard
	logger *slog.Logger
}

// NewFoodHandler creates a new JSON action handler
func NewFoodHandler(dash *dashboard.Dashboard, logger *slog.Logger) *FoodHandler {
	return &FoodHandler{
		dash:   dash,
		logger: logger,
	}
}

// GetState handles GET /api/state
func (h *FoodHandler) GetState(w http.ResponseWriter, r *http.Request) {
	if err := h.dash.LoadFoods(r.Context()); err != nil {
		h.logger.Warn("initial food load failed", "error", err)
	}
	WriteJSON(w, http.StatusOK, h.dash.State(), h.logger)
}

// AddFood handles POST /api/foods
func (h *FoodHandler) AddFood(w http.ResponseWriter, r *http.Request) {
	var input models.FoodInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.logger.Warn("failed to decode food input", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	if err := h.dash.HandleAddFood(r.Context(), input); err != nil {
		WriteError(w, http.StatusBadGateway, "Failed to add food", h.logger)
		return
	}

	WriteJSON(w, http.StatusCreated, h.dash.State(), h.logger)
}

// EditFood handles POST /api/foods/{foodId}/edit
func (h *FoodHandler) EditFood(w http.ResponseWriter, r *http.Request) {
	id, err := foodID(r)
	if err != nil {
		h.logger.Warn("invalid food ID format", "path", r.URL.Path, "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid ID supplied", h.logger)
		return
	}

	food, ok := h.dash.FindFood(id)
	if !ok {
		h.logger.Info("food not found", "food_id", id)
		WriteError(w, http.StatusNotFound, "Food not found", h.logger)
		return
	}

	h.dash.HandleEditFood(food)
	WriteJSON(w, http.StatusOK, h.dash.State(), h.logger)
}

// UpdateFood handles PUT /api/editing
// The body is merged onto the food currently being edited.
func (h *FoodHandler) UpdateFood(w http.ResponseWriter, r *http.Request) {
	var patch models.FoodPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		h.logger.Warn("failed to decode food patch", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	err := h.dash.HandleUpdateFood(r.Context(), patch)
	switch {
	case err == nil:
		WriteJSON(w, http.StatusOK, h.dash.State(), h.logger)
	case errors.Is(err, dashboard.ErrNoFoodSelected):
		WriteError(w, http.StatusConflict, "No food selected for editing", h.logger)
	default:
		WriteError(w, http.StatusBadGateway, "Failed to update food", h.logger)
	}
}

// DeleteFood handles DELETE /api/foods/{foodId}
func (h *FoodHandler) DeleteFood(w http.ResponseWriter, r *http.Request) {
	id, err := foodID(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid ID supplied", h.logger)
		return
	}

	if err := h.dash.HandleDeleteFood(r.Context(), id); err != nil {
		h.logger.Error("failed to delete food", "food_id", id, "error", err)
		WriteError(w, http.StatusBadGateway, "Failed to delete food", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, h.dash.State(), h.logger)
}

// ToggleAddModal handles POST /api/modals/add/toggle
func (h *FoodHandler) ToggleAddModal(w http.ResponseWriter, r *http.Request) {
	h.dash.ToggleAddModal()
	WriteJSON(w, http.StatusOK, h.dash.State(), h.logger)
}

// ToggleEditModal handles POST /api/modals/edit/toggle
func (h *FoodHandler) ToggleEditModal(w http.ResponseWriter, r *http.Request) {
	h.dash.ToggleEditModal()
	WriteJSON(w, http.StatusOK, h.dash.State(), h.logger)
}
