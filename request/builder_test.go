package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptstock/promptstock-tui/registry"
)

func validInput() RawInput {
	return RawInput{
		Keyword:      "sunset over mountain lake",
		Style:        "photo",
		Provider:     "openai",
		Model:        "gpt-4o",
		Quantity:     "5",
		OutputFormat: "text",
		UseSharedKey: true,
	}
}

func TestBuildValid(t *testing.T) {
	req, err := Build(validInput())
	require.NoError(t, err)
	assert.Equal(t, "sunset over mountain lake", req.Keyword)
	assert.Equal(t, "gpt-4o", req.Model)
	assert.Equal(t, 5, req.Quantity)
	assert.True(t, req.UseSharedKey)
	assert.Empty(t, req.APIKey)
}

func TestBuildTrimsKeyword(t *testing.T) {
	in := validInput()
	in.Keyword = "  red fox  "
	req, err := Build(in)
	require.NoError(t, err)
	assert.Equal(t, "red fox", req.Keyword)
}

func TestBuildValidationOrder(t *testing.T) {
	// All fields invalid at once: the empty keyword must win.
	in := RawInput{
		Keyword:      "   ",
		Style:        "sketch",
		Provider:     "midjourney",
		Quantity:     "99",
		UseSharedKey: false,
		APIKey:       "",
	}
	_, err := Build(in)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, CodeEmptyKeyword, verr.Code)

	// Keyword fixed: the missing API key is next.
	in.Keyword = "fox"
	_, err = Build(in)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, CodeMissingAPIKey, verr.Code)

	// Key provided: quantity is next.
	in.APIKey = "sk-test"
	_, err = Build(in)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, CodeInvalidQuantity, verr.Code)

	// Quantity fixed: provider is next.
	in.Quantity = "5"
	_, err = Build(in)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, CodeUnknownProvider, verr.Code)

	// Provider fixed: style is last.
	in.Provider = "groq"
	_, err = Build(in)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, CodeUnknownStyle, verr.Code)
}

func TestBuildQuantityBounds(t *testing.T) {
	cases := []struct {
		quantity string
		ok       bool
	}{
		{"0", false},
		{"1", true},
		{"20", true},
		{"21", false},
		{"-3", false},
		{"", false},
		{"five", false},
		{"2.5", false},
		{" 10 ", true},
	}
	for _, tc := range cases {
		in := validInput()
		in.Quantity = tc.quantity
		_, err := Build(in)
		if tc.ok {
			assert.NoError(t, err, "quantity %q", tc.quantity)
		} else {
			var verr *ValidationError
			require.ErrorAs(t, err, &verr, "quantity %q", tc.quantity)
			assert.Equal(t, CodeInvalidQuantity, verr.Code, "quantity %q", tc.quantity)
		}
	}
}

func TestBuildAutoCorrectsForeignModel(t *testing.T) {
	in := validInput()
	in.Provider = "claude"
	in.Model = "gpt-4o" // stale pick from a previous provider

	req, err := Build(in)
	require.NoError(t, err)

	def, derr := registry.DefaultModelFor("claude")
	require.NoError(t, derr)
	assert.Equal(t, def, req.Model)
}

func TestBuildCallerKeyMode(t *testing.T) {
	in := validInput()
	in.UseSharedKey = false
	in.APIKey = "  sk-live-abc  "

	req, err := Build(in)
	require.NoError(t, err)
	assert.False(t, req.UseSharedKey)
	assert.Equal(t, "sk-live-abc", req.APIKey)
}

func TestBuildWhitespaceKeyIsMissing(t *testing.T) {
	in := validInput()
	in.UseSharedKey = false
	in.APIKey = "   "

	_, err := Build(in)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, CodeMissingAPIKey, verr.Code)
}

func TestBuildDefaultsOutputFormat(t *testing.T) {
	in := validInput()
	in.OutputFormat = "yaml"
	req, err := Build(in)
	require.NoError(t, err)
	assert.Equal(t, "text", req.OutputFormat)

	in.OutputFormat = "json"
	req, err = Build(in)
	require.NoError(t, err)
	assert.Equal(t, "json", req.OutputFormat)
}
