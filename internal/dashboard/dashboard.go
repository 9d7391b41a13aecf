package dashboard

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/Lixing-Zhang/food-dashboard/internal/models"
)

var (
	ErrNoFoodSelected = errors.New("no food selected for editing")
)

// FoodsAPI is the REST collaborator the dashboard synchronizes with
type FoodsAPI interface {
	List(ctx context.Context) ([]models.Food, error)
	Create(ctx context.Context, food models.Food) (models.Food, error)
	Update(ctx context.Context, id int64, food models.Food) (models.Food, error)
	Delete(ctx context.Context, id int64) error
}

// State is a snapshot of the dashboard
type State struct {
	Foods         []models.Food `json:"foods"`
	EditingFood   models.Food   `json:"editingFood"`
	AddModalOpen  bool          `json:"addModalOpen"`
	EditModalOpen bool          `json:"editModalOpen"`
}

// Dashboard owns the in-memory food list and the modal state.
// It calls the API and then reconciles the list with the server's answer.
// The lock is never held across an API call.
type Dashboard struct {
	api    FoodsAPI
	logger *slog.Logger

	loadOnce sync.Once
	loadErr  error

	mu            sync.RWMutex
	foods         []models.Food
	editingFood   models.Food
	addModalOpen  bool
	editModalOpen bool
}

// New creates an empty dashboard backed by api
func New(api FoodsAPI, logger *slog.Logger) *Dashboard {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dashboard{
		api:    api,
		logger: logger,
		foods:  []models.Food{},
	}
}

// LoadFoods fetches the whole list and replaces the local one.
// Only the first call reaches the API; later calls return its result.
// On failure the list stays empty. The load outlives the caller's
// cancellation since every later caller shares its result.
func (d *Dashboard) LoadFoods(ctx context.Context) error {
	d.loadOnce.Do(func() {
		foods, err := d.api.List(context.WithoutCancel(ctx))
		if err != nil {
			d.loadErr = err
			return
		}

		d.mu.Lock()
		d.foods = append([]models.Food{}, foods...)
		d.mu.Unlock()

		d.logger.Debug("foods loaded", "count", len(foods))
	})
	return d.loadErr
}

// HandleAddFood creates input as an available food and appends the
// server record to the list. Failures are logged and leave the list as is.
func (d *Dashboard) HandleAddFood(ctx context.Context, input models.FoodInput) error {
	created, err := d.api.Create(ctx, models.NewFood(input))
	if err != nil {
		d.logger.Error("failed to add food", "name", input.Name, "error", err)
		return err
	}

	d.mu.Lock()
	d.foods = append(d.foods, created)
	d.mu.Unlock()

	d.logger.Info("food added", "food_id", created.ID)
	return nil
}

// HandleUpdateFood merges patch onto the food being edited, sends it and
// replaces the list entry carrying the returned id.
// Failures are logged and leave the list as is.
func (d *Dashboard) HandleUpdateFood(ctx context.Context, patch models.FoodPatch) error {
	d.mu.RLock()
	editing := d.editingFood
	d.mu.RUnlock()

	return d.HandleUpdateFoodOf(ctx, editing, patch)
}

// HandleUpdateFoodOf is HandleUpdateFood for a selection captured earlier,
// so a later HandleEditFood cannot redirect the update to another food.
func (d *Dashboard) HandleUpdateFoodOf(ctx context.Context, editing models.Food, patch models.FoodPatch) error {
	if editing.IsZero() {
		d.logger.Error("failed to update food", "error", ErrNoFoodSelected)
		return ErrNoFoodSelected
	}

	updated, err := d.api.Update(ctx, editing.ID, editing.Merge(patch))
	if err != nil {
		d.logger.Error("failed to update food", "food_id", editing.ID, "error", err)
		return err
	}

	d.mu.Lock()
	foods := make([]models.Food, len(d.foods))
	for i, f := range d.foods {
		if f.ID == updated.ID {
			foods[i] = updated
		} else {
			foods[i] = f
		}
	}
	d.foods = foods
	d.mu.Unlock()

	d.logger.Info("food updated", "food_id", updated.ID)
	return nil
}

// HandleDeleteFood deletes the food on the server and then drops it from
// the list. A failed request is returned untouched and the list keeps
// the food.
func (d *Dashboard) HandleDeleteFood(ctx context.Context, id int64) error {
	if err := d.api.Delete(ctx, id); err != nil {
		return err
	}

	d.mu.Lock()
	foods := make([]models.Food, 0, len(d.foods))
	for _, f := range d.foods {
		if f.ID != id {
			foods = append(foods, f)
		}
	}
	d.foods = foods
	d.mu.Unlock()

	d.logger.Info("food deleted", "food_id", id)
	return nil
}

// ToggleAddModal flips the add modal visibility
func (d *Dashboard) ToggleAddModal() {
	d.mu.Lock()
	d.addModalOpen = !d.addModalOpen
	d.mu.Unlock()
}

// ToggleEditModal flips the edit modal visibility
func (d *Dashboard) ToggleEditModal() {
	d.mu.Lock()
	d.editModalOpen = !d.editModalOpen
	d.mu.Unlock()
}

// HandleEditFood selects food for editing and opens the edit modal
func (d *Dashboard) HandleEditFood(food models.Food) {
	d.mu.Lock()
	d.editingFood = food
	d.editModalOpen = true
	d.mu.Unlock()
}

// State returns a copy of the current dashboard state
func (d *Dashboard) State() State {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return State{
		Foods:         append([]models.Food{}, d.foods...),
		EditingFood:   d.editingFood,
		AddModalOpen:  d.addModalOpen,
		EditModalOpen: d.editModalOpen,
	}
}

// Foods returns a copy of the list in arrival order
func (d *Dashboard) Foods() []models.Food {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]models.Food{}, d.foods...)
}

// FindFood looks a food up by id in the local list
func (d *Dashboard) FindFood(id int64) (models.Food, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, f := range d.foods {
		if f.ID == id {
			return f, true
		}
	}
	return models.Food{}, false
}

// EditingFood returns the selected food; it is only meaningful while the
// edit modal is open
func (d *Dashboard) EditingFood() (models.Food, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.editingFood, d.editModalOpen
}

// Count returns the number of foods in the list
func (d *Dashboard) Count() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.foods)
}
