package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	// Status styles
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	InfoStyle = lipgloss.NewStyle().
			Foreground(InfoColor)

	TargetStyle = lipgloss.NewStyle().
			Foreground(TargetColor)
)

// Kind names the role of a piece of output
type Kind int

const (
	KindPlain Kind = iota
	KindSuccess
	KindWarning
	KindError
	KindInfo
	KindTarget
	KindMuted
	KindTitle
)

// Styler decorates output by kind
type Styler interface {
	Style(kind Kind, s string) string
}

// Plain leaves text untouched
type Plain struct{}

// Style returns s unchanged
func (Plain) Style(_ Kind, s string) string { return s }

// Terminal styles text with lipgloss
type Terminal struct{}

// Style renders s in the style of kind
func (Terminal) Style(kind Kind, s string) string {
	switch kind {
	case KindSuccess:
		return SuccessStyle.Render(s)
	case KindWarning:
		return WarningStyle.Render(s)
	case KindError:
		return ErrorStyle.Render(s)
	case KindInfo:
		return InfoStyle.Render(s)
	case KindTarget:
		return TargetStyle.Render(s)
	case KindMuted:
		return MutedStyle.Render(s)
	case KindTitle:
		return TitleStyle.Render(s)
	default:
		return s
	}
}
