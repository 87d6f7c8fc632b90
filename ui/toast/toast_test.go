package toast

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueueCapsAtMax(t *testing.T) {
	m := New()
	m.Add("one", Success)
	m.Add("two", Success)
	m.Add("three", Error)
	m.Add("four", Info)

	lines := strings.Split(m.View(80), "\n")
	assert.Len(t, lines, maxToasts)
	assert.NotContains(t, m.View(80), "one", "oldest toast is dropped when over capacity")
	assert.Contains(t, m.View(80), "four")
}

func TestViewEmptyQueue(t *testing.T) {
	m := New()
	assert.False(t, m.HasToasts())
	assert.Equal(t, "", m.View(80))
}

func TestTickPrunesNothingBeforeTTL(t *testing.T) {
	m := New()
	m.Add("fresh", Success)
	m.Tick()
	assert.True(t, m.HasToasts(), "a just-added toast survives an immediate tick")
}
