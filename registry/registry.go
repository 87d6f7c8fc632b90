// Package registry is the static provider/model compatibility table.
// It is pure data: no I/O, no network, safe from any goroutine.
package registry

import (
	"errors"
	"fmt"
)

// ErrUnknownProvider is returned for providers outside the fixed set.
var ErrUnknownProvider = errors.New("unknown provider")

// Model is one selectable model of a provider.
type Model struct {
	ID    string
	Label string
}

// Style is one of the fixed microstock visual styles.
type Style struct {
	ID    string
	Label string
}

// providerModels maps each provider to its ordered model list. The first
// entry is the provider's default.
var providerModels = map[string][]Model{
	"openai": {
		{ID: "gpt-5.1", Label: "GPT-5.1"},
		{ID: "gpt-5", Label: "GPT-5"},
		{ID: "gpt-4.1", Label: "GPT-4.1"},
		{ID: "gpt-4o", Label: "GPT-4o"},
	},
	"claude": {
		{ID: "claude-4-sonnet-20250514", Label: "Claude 4 Sonnet"},
		{ID: "claude-4-opus-20250514", Label: "Claude 4 Opus"},
		{ID: "claude-3-7-sonnet-20250219", Label: "Claude 3.7 Sonnet"},
	},
	"gemini": {
		{ID: "gemini-2.5-flash", Label: "Gemini 2.5 Flash"},
		{ID: "gemini-2.5-pro", Label: "Gemini 2.5 Pro"},
		{ID: "gemini-2.0-flash", Label: "Gemini 2.0 Flash"},
	},
	"groq": {
		{ID: "llama-3.3-70b-versatile", Label: "Llama 3.3 70B"},
		{ID: "llama-3.1-8b-instant", Label: "Llama 3.1 8B"},
		{ID: "mixtral-8x7b-32768", Label: "Mixtral 8x7B"},
	},
}

// providerOrder fixes the display order of providers.
var providerOrder = []string{"openai", "claude", "gemini", "groq"}

// styles mirrors the backend's accepted style literals.
var styles = []Style{
	{ID: "photo", Label: "Photography"},
	{ID: "illustration", Label: "Illustration"},
	{ID: "vector", Label: "Vector"},
	{ID: "logo", Label: "Logo"},
}

// OutputFormats lists the accepted output_format values.
var OutputFormats = []string{"text", "json"}

// Providers returns the fixed provider set in display order.
func Providers() []string {
	out := make([]string, len(providerOrder))
	copy(out, providerOrder)
	return out
}

// KnownProvider reports whether p is one of the fixed provider set.
func KnownProvider(p string) bool {
	_, ok := providerModels[p]
	return ok
}

// ModelsFor returns the ordered model list for a provider. The list is
// non-empty for every known provider.
func ModelsFor(provider string) ([]Model, error) {
	models, ok := providerModels[provider]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, provider)
	}
	out := make([]Model, len(models))
	copy(out, models)
	return out, nil
}

// DefaultModelFor returns the provider's default model id, always a
// member of ModelsFor(provider).
func DefaultModelFor(provider string) (string, error) {
	models, ok := providerModels[provider]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownProvider, provider)
	}
	return models[0].ID, nil
}

// HasModel reports whether modelID belongs to the provider's model set.
func HasModel(provider, modelID string) bool {
	for _, m := range providerModels[provider] {
		if m.ID == modelID {
			return true
		}
	}
	return false
}

// Styles returns the fixed style set in display order.
func Styles() []Style {
	out := make([]Style, len(styles))
	copy(out, styles)
	return out
}

// KnownStyle reports whether s is one of the fixed style set.
func KnownStyle(s string) bool {
	for _, st := range styles {
		if st.ID == s {
			return true
		}
	}
	return false
}
