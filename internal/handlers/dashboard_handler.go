package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Lixing-Zhang/food-dashboard/internal/dashboard"
	"github.com/Lixing-Zhang/food-dashboard/internal/form"
	"github.com/Lixing-Zhang/food-dashboard/internal/models"
	"github.com/Lixing-Zhang/food-dashboard/internal/view"
)

// DashboardHandler serves the HTML dashboard.
// Every action redirects back to the page once the dashboard handled it.
type DashboardHandler struct {
	dash      *dashboard.Dashboard
	addModal  *form.Modal
	editModal *form.Modal
	logger    *slog.Logger
}

// NewDashboardHandler creates the page handler and wires both modals to dash
func NewDashboardHandler(dash *dashboard.Dashboard, logger *slog.Logger) *DashboardHandler {
	addModal := form.NewAddModal(
		func() bool { return dash.State().AddModalOpen },
		dash.ToggleAddModal,
		dash.HandleAddFood,
	)
	editModal := form.NewEditModal(
		func() bool { return dash.State().EditModalOpen },
		func() models.Food {
			food, _ := dash.EditingFood()
			return food
		},
		dash.ToggleEditModal,
		dash.HandleUpdateFoodOf,
	)

	return &DashboardHandler{
		dash:      dash,
		addModal:  addModal,
		editModal: editModal,
		logger:    logger,
	}
}

// Index handles GET /
// The first view triggers the initial load of the list.
func (h *DashboardHandler) Index(w http.ResponseWriter, r *http.Request) {
	if err := h.dash.LoadFoods(r.Context()); err != nil {
		h.logger.Warn("initial food load failed", "error", err)
	}

	page := view.NewPage(h.dash.State(), h.addModal, h.editModal)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := view.Render(w, page); err != nil {
		h.logger.Error("failed to render dashboard", "error", err)
	}
}

// ToggleAddModal handles POST /modals/add
func (h *DashboardHandler) ToggleAddModal(w http.ResponseWriter, r *http.Request) {
	h.dash.ToggleAddModal()
	h.redirect(w, r)
}

// ToggleEditModal handles POST /modals/edit
func (h *DashboardHandler) ToggleEditModal(w http.ResponseWriter, r *http.Request) {
	h.dash.ToggleEditModal()
	h.redirect(w, r)
}

// AddFood handles POST /foods
// Backend failures are already logged by the dashboard and are not shown.
func (h *DashboardHandler) AddFood(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid form", h.logger)
		return
	}

	err := h.addModal.Submit(r.Context(), form.DecodeValues(r.PostForm))
	if errors.Is(err, form.ErrInvalidPrice) {
		WriteError(w, http.StatusBadRequest, "Price must be a number", h.logger)
		return
	}

	h.redirect(w, r)
}

// EditFood handles POST /foods/{foodId}/edit
func (h *DashboardHandler) EditFood(w http.ResponseWriter, r *http.Request) {
	id, err := foodID(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid ID supplied", h.logger)
		return
	}

	food, ok := h.dash.FindFood(id)
	if !ok {
		WriteError(w, http.StatusNotFound, "Food not found", h.logger)
		return
	}

	h.dash.HandleEditFood(food)
	h.redirect(w, r)
}

// UpdateFood handles POST /foods/editing
// The modal closes without waiting for the backend.
func (h *DashboardHandler) UpdateFood(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid form", h.logger)
		return
	}

	err := h.editModal.Submit(r.Context(), form.DecodeValues(r.PostForm))
	if errors.Is(err, form.ErrInvalidPrice) {
		WriteError(w, http.StatusBadRequest, "Price must be a number", h.logger)
		return
	}

	h.redirect(w, r)
}

// DeleteFood handles POST /foods/{foodId}/delete
// A failed delete is not handled by the page: the food stays listed and
// the request fails.
func (h *DashboardHandler) DeleteFood(w http.ResponseWriter, r *http.Request) {
	id, err := foodID(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid ID supplied", h.logger)
		return
	}

	if err := h.dash.HandleDeleteFood(r.Context(), id); err != nil {
		h.logger.Error("unhandled delete failure", "food_id", id, "error", err)
		WriteError(w, http.StatusBadGateway, "Failed to delete food", h.logger)
		return
	}

	h.redirect(w, r)
}

// Wait blocks until background edit submissions are done
func (h *DashboardHandler) Wait() {
	h.editModal.Wait()
}

func (h *DashboardHandler) redirect(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
