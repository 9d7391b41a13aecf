package foodapitest

import (
	"errors"
	"sync"

	"github.com/Lixing-Zhang/food-dashboard/internal/models"
)

var (
	ErrFoodNotFound = errors.New("food not found")
)

// memoryStore keeps foods in insertion order and assigns ids sequentially
type memoryStore struct {
	mu     sync.RWMutex
	foods  []models.Food
	nextID int64
}

// newMemoryStore creates a store with seed data.
// Ids continue after the highest seeded id.
func newMemoryStore(seed []models.Food) *memoryStore {
	s := &memoryStore{
		foods:  make([]models.Food, 0, len(seed)),
		nextID: 1,
	}
	for _, f := range seed {
		s.foods = append(s.foods, f)
		if f.ID >= s.nextID {
			s.nextID = f.ID + 1
		}
	}
	return s
}

// GetAll returns all foods
func (s *memoryStore) GetAll() []models.Food {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Food{}, s.foods...)
}

// Create stores food under a new id
func (s *memoryStore) Create(food models.Food) models.Food {
	s.mu.Lock()
	defer s.mu.Unlock()

	food.ID = s.nextID
	s.nextID++
	s.foods = append(s.foods, food)
	return food
}

// Update replaces the food with the given id
func (s *memoryStore) Update(id int64, food models.Food) (models.Food, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	food.ID = id
	for i := range s.foods {
		if s.foods[i].ID == id {
			s.foods[i] = food
			return food, nil
		}
	}
	return models.Food{}, ErrFoodNotFound
}

// Delete removes the food with the given id
func (s *memoryStore) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.foods {
		if s.foods[i].ID == id {
			s.foods = append(s.foods[:i], s.foods[i+1:]...)
			return nil
		}
	}
	return ErrFoodNotFound
}
