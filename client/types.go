package client

// HealthResponse from GET /api/.
type HealthResponse struct {
	Message string `json:"message"`
}

// GenerateRequest for POST /api/generate.
//
// APIKey and UseSharedKey are mutually exclusive: shared-key mode sends
// use_emergent_key=true and omits api_key; caller-key mode sends the key.
type GenerateRequest struct {
	Keyword      string `json:"keyword"`
	Style        string `json:"style"`
	Provider     string `json:"provider"`
	Model        string `json:"model"`
	Quantity     int    `json:"quantity"`
	OutputFormat string `json:"output_format"`
	APIKey       string `json:"api_key,omitempty"`
	UseSharedKey bool   `json:"use_emergent_key"`
}

// Generation from POST /api/generate and GET /api/history.
// Prompts preserve backend order; display and export concatenate in
// this order.
type Generation struct {
	ID           string   `json:"id"`
	Keyword      string   `json:"keyword"`
	Style        string   `json:"style"`
	Provider     string   `json:"provider"`
	Model        string   `json:"model"`
	Quantity     int      `json:"quantity"`
	Prompts      []string `json:"prompts"`
	OutputFormat string   `json:"output_format"`
	CreatedAt    string   `json:"created_at"`
}

// FavoriteCreateRequest for POST /api/favorites.
type FavoriteCreateRequest struct {
	GenerationID string `json:"prompt_generation_id"`
	PromptText   string `json:"prompt_text"`
	Keyword      string `json:"keyword"`
	Style        string `json:"style"`
}

// Favorite from POST /api/favorites and GET /api/favorites.
// PromptText, Keyword, and Style are snapshots frozen at save time;
// GenerationID is informational and may point at an entry no longer
// present in history.
type Favorite struct {
	ID           string `json:"id"`
	GenerationID string `json:"prompt_generation_id"`
	PromptText   string `json:"prompt_text"`
	Keyword      string `json:"keyword"`
	Style        string `json:"style"`
	SavedAt      string `json:"saved_at"`
}

// DeleteResponse from DELETE /api/favorites/{id}.
type DeleteResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the FastAPI error body shape.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
