package models

// Food represents one menu item managed by the dashboard
// The id is always assigned by the backend, never by the client
type Food struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Image       string  `json:"image"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Available   bool    `json:"available"`
}

// FoodInput is the payload collected by the add form
type FoodInput struct {
	Name        string  `json:"name"`
	Image       string  `json:"image"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

// FoodPatch holds the fields submitted by the edit form.
// Nil fields keep the value of the food being edited.
type FoodPatch struct {
	Name        *string  `json:"name,omitempty"`
	Image       *string  `json:"image,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Description *string  `json:"description,omitempty"`
	Available   *bool    `json:"available,omitempty"`
}

// NewFood builds the create request body for an input.
// New foods are always sent as available.
func NewFood(input FoodInput) Food {
	return Food{
		Name:        input.Name,
		Image:       input.Image,
		Price:       input.Price,
		Description: input.Description,
		Available:   true,
	}
}

// IsZero reports whether f is the empty placeholder
func (f Food) IsZero() bool {
	return f == Food{}
}

// Merge returns a copy of f with every set patch field applied
func (f Food) Merge(p FoodPatch) Food {
	merged := f
	if p.Name != nil {
		merged.Name = *p.Name
	}
	if p.Image != nil {
		merged.Image = *p.Image
	}
	if p.Price != nil {
		merged.Price = *p.Price
	}
	if p.Description != nil {
		merged.Description = *p.Description
	}
	if p.Available != nil {
		merged.Available = *p.Available
	}
	return merged
}

// PatchFromInput turns a full form submission into a patch that sets
// every form field
func PatchFromInput(input FoodInput) FoodPatch {
	return FoodPatch{
		Name:        &input.Name,
		Image:       &input.Image,
		Price:       &input.Price,
		Description: &input.Description,
	}
}
