// Package client is the typed HTTP client for the Microstock Prompt
// Generator backend. All endpoints live under /api.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Client talks to the prompt-generator backend.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	log zerolog.Logger
}

// New returns a Client for the given base URL. Generation calls can take
// a while on slow providers, hence the generous timeout.
func New(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		log: zerolog.Nop(),
	}
}

// SetLogger enables request/response debug logging.
func (c *Client) SetLogger(log zerolog.Logger) {
	c.log = log
}

// Health hits GET /api/ as a reachability check.
func (c *Client) Health() (*HealthResponse, error) {
	resp, err := c.get("/api/")
	if err != nil {
		return nil, fmt.Errorf("health check failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, c.parseError(resp)
	}
	var health HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return nil, fmt.Errorf("decode health: %w", err)
	}
	return &health, nil
}

// Generate submits a generation request and returns the fulfilled result.
func (c *Client) Generate(req GenerateRequest) (*Generation, error) {
	c.log.Debug().
		Str("keyword", req.Keyword).
		Str("provider", req.Provider).
		Str("model", req.Model).
		Int("quantity", req.Quantity).
		Msg("generate request")

	resp, err := c.postJSON("/api/generate", req)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, c.parseError(resp)
	}
	var result Generation
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode generation: %w", err)
	}
	c.log.Debug().Str("id", result.ID).Int("prompts", len(result.Prompts)).Msg("generate response")
	return &result, nil
}

// ListHistory fetches past generations, most recent first (backend order).
func (c *Client) ListHistory() ([]Generation, error) {
	resp, err := c.get("/api/history")
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, c.parseError(resp)
	}
	var entries []Generation
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode history: %w", err)
	}
	return entries, nil
}

// ListFavorites fetches all saved favorites.
func (c *Client) ListFavorites() ([]Favorite, error) {
	resp, err := c.get("/api/favorites")
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, c.parseError(resp)
	}
	var entries []Favorite
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode favorites: %w", err)
	}
	return entries, nil
}

// CreateFavorite saves one prompt as a favorite. The backend assigns the
// id and save timestamp.
func (c *Client) CreateFavorite(req FavoriteCreateRequest) (*Favorite, error) {
	resp, err := c.postJSON("/api/favorites", req)
	if err != nil {
		return nil, fmt.Errorf("create favorite: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, c.parseError(resp)
	}
	var result Favorite
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode favorite: %w", err)
	}
	return &result, nil
}

// DeleteFavorite removes a favorite by id. A missing id is an error
// (the backend answers 404).
func (c *Client) DeleteFavorite(id string) error {
	resp, err := c.delete("/api/favorites/" + id)
	if err != nil {
		return fmt.Errorf("delete favorite: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return c.parseError(resp)
	}
	return nil
}

// -- HTTP helpers -------------------------------------------------------------

func (c *Client) get(path string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return nil, err
	}
	return c.HTTPClient.Do(req)
}

func (c *Client) postJSON(path string, body any) (*http.Response, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal: %w", err)
	}
	req, err := http.NewRequest(http.MethodPost, c.BaseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.HTTPClient.Do(req)
}

func (c *Client) delete(path string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodDelete, c.BaseURL+path, nil)
	if err != nil {
		return nil, err
	}
	return c.HTTPClient.Do(req)
}

// APIError is a non-2xx backend response. Detail is the backend's own
// message and is suitable for showing to the user; transport failures
// are plain wrapped errors, never APIError.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API %d: %s", e.Status, e.Detail)
}

// parseError turns a non-2xx response into an *APIError, preferring the
// FastAPI "detail" field when the body carries one.
func (c *Client) parseError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	detail := string(body)
	var apiErr ErrorResponse
	if json.Unmarshal(body, &apiErr) == nil && apiErr.Detail != "" {
		detail = apiErr.Detail
	}
	return &APIError{Status: resp.StatusCode, Detail: detail}
}
