package ui

import (
	"os"
	"strings"

	"github.com/arthur-debert/garnix/pkg/errors"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format selects how command results are written
type Format int

const (
	// FormatAuto picks terminal or text output from the destination
	FormatAuto Format = iota
	// FormatTerminal is colored, styled output
	FormatTerminal
	// FormatText is unstyled output
	FormatText
	// FormatJSON is one JSON document per result
	FormatJSON
)

var formatNames = []string{"auto", "term", "text", "json"}

// aliases accepted by ParseFormat besides the canonical names
var formatAliases = map[string]Format{
	"":         FormatAuto,
	"terminal": FormatTerminal,
	"plain":    FormatText,
}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return "unknown"
	}
	return formatNames[f]
}

// FormatNames lists the canonical format names, for flag completion
func FormatNames() []string {
	return append([]string(nil), formatNames...)
}

// ParseFormat parses a --format value, case insensitively
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range formatNames {
		if n == name {
			return Format(i), nil
		}
	}
	if f, ok := formatAliases[name]; ok {
		return f, nil
	}
	return FormatAuto, errors.Newf(errors.ErrInvalidInput, "unknown format: %s", s).
		WithDetail("format", s)
}

// DetectFormat returns FormatTerminal when output is a color capable
// terminal. NO_COLOR forces text and CLICOLOR_FORCE forces the terminal.
func DetectFormat(output *os.File) Format {
	if os.Getenv("NO_COLOR") != "" {
		return FormatText
	}
	if v := os.Getenv("CLICOLOR_FORCE"); v != "" && v != "0" {
		return FormatTerminal
	}

	fd := output.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return FormatText
	}
	if termenv.NewOutput(output).Profile == termenv.Ascii {
		return FormatText
	}
	return FormatTerminal
}

// Resolve replaces FormatAuto with the format detected for output. Writers
// that are not files get text.
func (f Format) Resolve(output interface{}) Format {
	if f != FormatAuto {
		return f
	}
	if file, ok := output.(*os.File); ok {
		return DetectFormat(file)
	}
	return FormatText
}
