package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

var errInvalidID = errors.New("invalid food id")

// foodID reads the {foodId} URL parameter; ids are positive integers
func foodID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "foodId")
	if raw == "" {
		return 0, errInvalidID
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}
