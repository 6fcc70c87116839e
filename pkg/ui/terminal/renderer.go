// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"io"

	"github.com/arthur-debert/garnix/pkg/style"
	"github.com/arthur-debert/garnix/pkg/ui/display"
)

// Renderer provides colored output with lipgloss styles and pterm badges
type Renderer struct {
	*display.Writer
}

// New creates a new terminal renderer
func New(output io.Writer) (*Renderer, error) {
	w := display.New(output, style.Terminal{})
	w.Badge = style.StatusBadge
	w.Marker = style.RuleMarker
	return &Renderer{Writer: w}, nil
}
