package topics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlainRenderer(t *testing.T) {
	r := &PlainRenderer{}
	assert.Equal(t, "# Title\n", r.Render("# Title", ".md"))
	assert.Equal(t, "a\nb\n", r.Render("a\r\nb\n\n\n", ".txt"))
}

func TestGlamourRenderer(t *testing.T) {
	r := NewGlamourRenderer(true)
	assert.Equal(t, StyleNoTTY, r.Style)

	t.Run("text_passes_through", func(t *testing.T) {
		assert.Equal(t, "**not markdown**", r.Render("**not markdown**", ".txt"))
	})

	t.Run("renders_markdown", func(t *testing.T) {
		out := r.Render("# Patterns\n\nA pattern has **two** segments.\n", ".md")
		assert.Contains(t, out, "Patterns")
		assert.Contains(t, out, "two")
	})
}
