package foodapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Lixing-Zhang/food-dashboard/internal/models"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

const (
	defaultTimeout = 10 * time.Second
	foodsPath      = "/foods"

	// RequestIDHeader carries the correlation id of the dashboard request
	RequestIDHeader = "X-Request-ID"
)

// StatusError is returned when the backend answers with a non-2xx status
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status code: %d", e.Method, e.Path, e.StatusCode)
}

// Client talks to the REST backend exposing the /foods resource
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// Option configures a Client
type Option func(*Client)

// WithAPIKey sends key in the api_key header of every request
func WithAPIKey(key string) Option {
	return func(c *Client) {
		c.apiKey = key
	}
}

// WithHTTPClient replaces the default http client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the timeout of the default http client
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// NewClient creates a new foods API client for baseURL
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// List returns every food known to the backend (GET /foods)
func (c *Client) List(ctx context.Context) ([]models.Food, error) {
	var foods []models.Food
	if err := c.do(ctx, http.MethodGet, foodsPath, nil, &foods); err != nil {
		return nil, err
	}
	if foods == nil {
		foods = []models.Food{}
	}
	return foods, nil
}

// Create stores a new food (POST /foods) and returns the record with its server-assigned id
func (c *Client) Create(ctx context.Context, food models.Food) (models.Food, error) {
	body := createRequest{
		Name:        food.Name,
		Image:       food.Image,
		Price:       food.Price,
		Description: food.Description,
		Available:   food.Available,
	}

	var created models.Food
	if err := c.do(ctx, http.MethodPost, foodsPath, body, &created); err != nil {
		return models.Food{}, err
	}
	return created, nil
}

// Update replaces the food with the given id (PUT /foods/:id)
func (c *Client) Update(ctx context.Context, id int64, food models.Food) (models.Food, error) {
	var updated models.Food
	if err := c.do(ctx, http.MethodPut, foodPath(id), food, &updated); err != nil {
		return models.Food{}, err
	}
	return updated, nil
}

// Delete removes the food with the given id (DELETE /foods/:id)
// The response body is ignored.
func (c *Client) Delete(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, foodPath(id), nil, nil)
}

// createRequest is the POST body; the client never sends an id
type createRequest struct {
	Name        string  `json:"name"`
	Image       string  `json:"image"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Available   bool    `json:"available"`
}

func foodPath(id int64) string {
	return foodsPath + "/" + strconv.FormatInt(id, 10)
}

func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(RequestIDHeader, requestID(ctx))
	if c.apiKey != "" {
		req.Header.Set("api_key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &StatusError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(msg)),
		}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s %s: failed to decode response: %w", method, path, err)
	}
	return nil
}

// requestID reuses the id chi assigned to the inbound request, if any
func requestID(ctx context.Context) string {
	if id := chimiddleware.GetReqID(ctx); id != "" {
		return id
	}
	return uuid.NewString()
}
