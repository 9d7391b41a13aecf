package models

import "testing"

func TestNewFood_SetsAvailable(t *testing.T) {
	food := NewFood(FoodInput{Name: "Ao molho", Image: "http://img/1.png", Price: 19.9, Description: "Macarrão"})

	if food.ID != 0 {
		t.Errorf("expected no id, got %d", food.ID)
	}
	if !food.Available {
		t.Error("expected new food to be available")
	}
	if food.Name != "Ao molho" || food.Price != 19.9 || food.Image != "http://img/1.png" || food.Description != "Macarrão" {
		t.Errorf("unexpected fields: %+v", food)
	}
}

func TestFood_Merge(t *testing.T) {
	base := Food{ID: 3, Name: "Veggie", Image: "a.png", Price: 21.9, Description: "Greens", Available: false}

	name := "Veggie deluxe"
	price := 25.0
	available := true

	tests := []struct {
		name  string
		patch FoodPatch
		want  Food
	}{
		{
			name:  "empty patch keeps everything",
			patch: FoodPatch{},
			want:  base,
		},
		{
			name:  "partial patch",
			patch: FoodPatch{Name: &name, Price: &price},
			want:  Food{ID: 3, Name: "Veggie deluxe", Image: "a.png", Price: 25, Description: "Greens"},
		},
		{
			name:  "availability",
			patch: FoodPatch{Available: &available},
			want:  Food{ID: 3, Name: "Veggie", Image: "a.png", Price: 21.9, Description: "Greens", Available: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := base.Merge(tt.patch)
			if got != tt.want {
				t.Errorf("Merge() = %+v, want %+v", got, tt.want)
			}
		})
	}

	if base.Name != "Veggie" {
		t.Error("Merge must not modify the receiver")
	}
}

func TestPatchFromInput(t *testing.T) {
	base := Food{ID: 1, Name: "A", Price: 1, Available: true}
	merged := base.Merge(PatchFromInput(FoodInput{Name: "B", Image: "b.png", Price: 2, Description: "d"}))

	want := Food{ID: 1, Name: "B", Image: "b.png", Price: 2, Description: "d", Available: true}
	if merged != want {
		t.Errorf("merged = %+v, want %+v", merged, want)
	}
}
