package foodapitest

import (
	"context"
	"net/http"

	"github.com/Lixing-Zhang/food-dashboard/internal/models"
)

type foodKey struct{}

func withFood(ctx context.Context, food models.Food) context.Context {
	return context.WithValue(ctx, foodKey{}, food)
}

// foodFrom returns the food decoded by the recorder, if the body held one
func foodFrom(r *http.Request) (models.Food, bool) {
	food, ok := r.Context().Value(foodKey{}).(models.Food)
	return food, ok
}
