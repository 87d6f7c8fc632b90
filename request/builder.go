// Package request validates user-chosen parameters and assembles the
// immutable generation request sent to the backend. Validation happens
// entirely client-side; an invalid request never reaches the network.
package request

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/promptstock/promptstock-tui/client"
	"github.com/promptstock/promptstock-tui/registry"
)

// Quantity bounds accepted by the backend.
const (
	MinQuantity = 1
	MaxQuantity = 20
)

// Validation error codes.
const (
	CodeEmptyKeyword    = "empty_keyword"
	CodeMissingAPIKey   = "missing_api_key"
	CodeInvalidQuantity = "invalid_quantity"
	CodeUnknownProvider = "unknown_provider"
	CodeUnknownStyle    = "unknown_style"
)

// ValidationError is a client-side rejection of raw form input. It is
// surfaced to the user verbatim, so Message is written for humans.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// RawInput is the UI-owned draft of a generation request. Quantity is
// kept raw because it arrives from a free-form field; Build coerces it.
type RawInput struct {
	Keyword      string
	Style        string
	Provider     string
	Model        string
	Quantity     string
	OutputFormat string
	UseSharedKey bool
	APIKey       string
}

// Build validates raw input and produces the request payload. The first
// failing check wins; later checks are not evaluated.
//
// A model that does not belong to the selected provider is not an error:
// it means the provider changed after the model was picked, and the
// request is auto-corrected to the provider's default model.
func Build(in RawInput) (client.GenerateRequest, error) {
	var req client.GenerateRequest

	keyword := strings.TrimSpace(in.Keyword)
	if keyword == "" {
		return req, &ValidationError{Code: CodeEmptyKeyword, Message: "Keyword must not be empty"}
	}

	apiKey := strings.TrimSpace(in.APIKey)
	if !in.UseSharedKey && apiKey == "" {
		return req, &ValidationError{Code: CodeMissingAPIKey, Message: "An API key is required unless the shared key is used"}
	}

	quantity, err := strconv.Atoi(strings.TrimSpace(in.Quantity))
	if err != nil || quantity < MinQuantity || quantity > MaxQuantity {
		return req, &ValidationError{
			Code:    CodeInvalidQuantity,
			Message: fmt.Sprintf("Quantity must be a whole number between %d and %d", MinQuantity, MaxQuantity),
		}
	}

	if !registry.KnownProvider(in.Provider) {
		return req, &ValidationError{Code: CodeUnknownProvider, Message: fmt.Sprintf("Unknown provider %q", in.Provider)}
	}

	if !registry.KnownStyle(in.Style) {
		return req, &ValidationError{Code: CodeUnknownStyle, Message: fmt.Sprintf("Unknown style %q", in.Style)}
	}

	model := in.Model
	if !registry.HasModel(in.Provider, model) {
		model, _ = registry.DefaultModelFor(in.Provider)
	}

	format := in.OutputFormat
	if format != "text" && format != "json" {
		format = "text"
	}

	req = client.GenerateRequest{
		Keyword:      keyword,
		Style:        in.Style,
		Provider:     in.Provider,
		Model:        model,
		Quantity:     quantity,
		OutputFormat: format,
		UseSharedKey: in.UseSharedKey,
	}
	if !in.UseSharedKey {
		req.APIKey = apiKey
	}
	return req, nil
}
