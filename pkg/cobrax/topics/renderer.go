package topics

import "strings"

// Renderer formats topic content. format is the topic file extension,
// such as ".md".
type Renderer interface {
	Render(content string, format string) string
}

// PlainRenderer prints topics as written, ending them with a single newline
type PlainRenderer struct{}

// Render normalizes line endings and the trailing newline of content
func (r *PlainRenderer) Render(content string, format string) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	return strings.TrimRight(content, "\n") + "\n"
}
