package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultModelIsMember(t *testing.T) {
	for _, p := range Providers() {
		def, err := DefaultModelFor(p)
		require.NoError(t, err, p)
		assert.True(t, HasModel(p, def), "default model of %s must be in its model set", p)
	}
}

func TestModelsForUnknownProvider(t *testing.T) {
	_, err := ModelsFor("midjourney")
	assert.ErrorIs(t, err, ErrUnknownProvider)

	_, err = DefaultModelFor("")
	assert.ErrorIs(t, err, ErrUnknownProvider)
}

func TestModelsForNonEmpty(t *testing.T) {
	for _, p := range Providers() {
		models, err := ModelsFor(p)
		require.NoError(t, err)
		assert.NotEmpty(t, models, p)
	}
}

func TestHasModelCrossProvider(t *testing.T) {
	// A model id from one provider never validates under another.
	assert.True(t, HasModel("openai", "gpt-4o"))
	assert.False(t, HasModel("claude", "gpt-4o"))
	assert.False(t, HasModel("midjourney", "gpt-4o"))
}

func TestKnownStyle(t *testing.T) {
	for _, s := range Styles() {
		assert.True(t, KnownStyle(s.ID))
	}
	assert.False(t, KnownStyle("sketch"))
	assert.False(t, KnownStyle(""))
}

func TestCopiesAreIsolated(t *testing.T) {
	models, err := ModelsFor("openai")
	require.NoError(t, err)
	models[0].ID = "mutated"

	fresh, err := ModelsFor("openai")
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", fresh[0].ID)

	providers := Providers()
	providers[0] = "mutated"
	assert.NotEqual(t, "mutated", Providers()[0])
}
