// Package foodapitest provides an in-memory /foods backend for tests.
package foodapitest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"

	"github.com/Lixing-Zhang/food-dashboard/internal/models"
	"github.com/go-chi/chi/v5"
)

// Request is a recorded call made against the fake
type Request struct {
	Method    string
	Path      string
	APIKey    string
	RequestID string
	Body      map[string]interface{}
}

// Server is a fake of the external foods REST backend
type Server struct {
	*httptest.Server

	store *memoryStore

	mu       sync.Mutex
	failures map[string]int
	requests []Request
}

// NewServer starts a fake backend seeded with foods.
// Ids of new foods continue after the highest seeded id.
func NewServer(seed ...models.Food) *Server {
	s := &Server{
		store:    newMemoryStore(seed),
		failures: make(map[string]int),
	}

	r := chi.NewRouter()
	r.Use(s.record)
	r.Get("/foods", s.list)
	r.Post("/foods", s.create)
	r.Put("/foods/{id}", s.update)
	r.Delete("/foods/{id}", s.delete)

	s.Server = httptest.NewServer(r)
	return s
}

// FailNext makes the next request with method answer status
func (s *Server) FailNext(method string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[method] = status
}

// Foods returns the backend's current records
func (s *Server) Foods() []models.Food {
	return s.store.GetAll()
}

// Requests returns every request received so far
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// CountRequests returns how many requests used method
func (s *Server) CountRequests(method string) int {
	n := 0
	for _, r := range s.Requests() {
		if r.Method == method {
			n++
		}
	}
	return n
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := Request{
			Method:    r.Method,
			Path:      r.URL.Path,
			APIKey:    r.Header.Get("api_key"),
			RequestID: r.Header.Get("X-Request-ID"),
		}
		var (
			food    models.Food
			hasFood bool
		)
		if r.Body != nil && r.ContentLength != 0 {
			if raw, err := io.ReadAll(r.Body); err == nil {
				if json.Unmarshal(raw, &rec.Body) == nil {
					hasFood = json.Unmarshal(raw, &food) == nil
				}
			}
		}

		s.mu.Lock()
		s.requests = append(s.requests, rec)
		status, fail := s.failures[r.Method]
		delete(s.failures, r.Method)
		s.mu.Unlock()

		if fail {
			writeJSON(w, status, map[string]string{"error": "injected failure"})
			return
		}

		// the body was consumed by the recorder, hand the decoded food on
		if hasFood {
			r = r.WithContext(withFood(r.Context(), food))
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.GetAll())
}

func (s *Server) create(w http.ResponseWriter, r *http.Request) {
	food, ok := foodFrom(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid body"})
		return
	}
	writeJSON(w, http.StatusCreated, s.store.Create(food))
}

func (s *Server) update(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	food, ok := foodFrom(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid body"})
		return
	}

	updated, err := s.store.Update(id, food)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	if err := s.store.Delete(id); err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{})
}

func urlID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
