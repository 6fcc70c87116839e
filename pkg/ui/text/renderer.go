// Package text provides plain text output without any styling
package text

import (
	"io"

	"github.com/arthur-debert/garnix/pkg/style"
	"github.com/arthur-debert/garnix/pkg/ui/display"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	*display.Writer
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{Writer: display.New(output, style.Plain{})}, nil
}
