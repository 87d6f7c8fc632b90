package session

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptstock/promptstock-tui/client"
)

func sampleGeneration(prompts ...string) client.Generation {
	return client.Generation{
		ID:      "gen-1",
		Keyword: "fox",
		Style:   "photo",
		Prompts: prompts,
	}
}

func TestBeginFromIdle(t *testing.T) {
	c := NewController()
	assert.Equal(t, Idle, c.State())
	assert.True(t, c.Begin())
	assert.Equal(t, Pending, c.State())
}

func TestBeginRejectedWhilePending(t *testing.T) {
	c := NewController()
	require.True(t, c.Begin())
	assert.False(t, c.Begin(), "second submission must be rejected while one is in flight")
	assert.Equal(t, Pending, c.State())
}

func TestBeginLegalFromFulfilled(t *testing.T) {
	c := NewController()
	require.True(t, c.Begin())
	c.Fulfill(sampleGeneration("a"))

	assert.True(t, c.Begin())
	assert.Equal(t, Pending, c.State())

	// The previous result stays visible through the new Pending phase.
	got, ok := c.Result()
	require.True(t, ok)
	assert.Equal(t, []string{"a"}, got.Prompts)
}

func TestFulfillNotice(t *testing.T) {
	c := NewController()
	require.True(t, c.Begin())
	notice := c.Fulfill(sampleGeneration("a", "b", "c"))
	assert.Equal(t, "Generated 3 prompts successfully!", notice)
	assert.Equal(t, Fulfilled, c.State())
}

func TestFailReturnsToIdleKeepingResult(t *testing.T) {
	c := NewController()
	require.True(t, c.Begin())
	c.Fulfill(sampleGeneration("a", "b"))

	require.True(t, c.Begin())
	notice := c.Fail(errors.New("connection refused"))

	assert.Equal(t, "Generation failed. Please try again.", notice)
	assert.Equal(t, Idle, c.State())

	got, ok := c.Result()
	require.True(t, ok, "prior result must survive a failed attempt")
	assert.Equal(t, []string{"a", "b"}, got.Prompts)

	// And the controller accepts the retry immediately.
	assert.True(t, c.Begin())
}

func TestFailPrefersBackendDetail(t *testing.T) {
	c := NewController()
	require.True(t, c.Begin())
	notice := c.Fail(&client.APIError{Status: 422, Detail: "Invalid API key for provider openai"})
	assert.Equal(t, "Invalid API key for provider openai", notice)
}

func TestFailEmptyDetailFallsBack(t *testing.T) {
	c := NewController()
	require.True(t, c.Begin())
	notice := c.Fail(&client.APIError{Status: 500})
	assert.Equal(t, "Generation failed. Please try again.", notice)
}

func TestResultBeforeAnyFulfill(t *testing.T) {
	c := NewController()
	_, ok := c.Result()
	assert.False(t, ok)
}

func TestResultReturnsCopy(t *testing.T) {
	c := NewController()
	require.True(t, c.Begin())
	c.Fulfill(sampleGeneration("a"))

	got, ok := c.Result()
	require.True(t, ok)
	got.Keyword = "mutated"

	fresh, ok := c.Result()
	require.True(t, ok)
	assert.Equal(t, "fox", fresh.Keyword)
}
