// Package display writes command results as human readable lines. The
// text and terminal renderers share it and differ only in styling.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/garnix/pkg/style"
	"github.com/arthur-debert/garnix/pkg/types"
)

const itemIndent = "    "

// Writer renders results line by line
type Writer struct {
	out    io.Writer
	styler style.Styler

	// Badge decorates a build status, nil renders nothing
	Badge func(types.BuildStatus) string
	// Marker flags whether a rule applies, nil uses "*" and "-"
	Marker func(applies bool) string
}

// New returns a Writer styling its output with styler
func New(out io.Writer, styler style.Styler) *Writer {
	return &Writer{out: out, styler: styler}
}

func (w *Writer) line(kind style.Kind, format string, args ...interface{}) error {
	_, err := fmt.Fprintln(w.out, w.styler.Style(kind, fmt.Sprintf(format, args...)))
	return err
}

func (w *Writer) item(kind style.Kind, s string) error {
	_, err := fmt.Fprintln(w.out, itemIndent+w.styler.Style(kind, s))
	return err
}

func (w *Writer) blank() error {
	_, err := fmt.Fprintln(w.out)
	return err
}

// RenderResult renders the known result types
func (w *Writer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *types.RunResult:
		return w.renderRun(v)
	case types.BuildOutcome:
		return w.renderOutcome(v)
	case *types.BuildOutcome:
		return w.renderOutcome(*v)
	case *types.AttributesResult:
		return w.renderAttributes(v)
	case *types.ConfigResult:
		return w.renderConfig(v)
	default:
		_, err := fmt.Fprintf(w.out, "%+v\n", result)
		return err
	}
}

// RenderError renders an error in the error style
func (w *Writer) RenderError(err error) error {
	return w.line(style.KindError, "error: %v", err)
}

// RenderMessage renders a simple message
func (w *Writer) RenderMessage(msg string) error {
	return w.line(style.KindPlain, "%s", msg)
}

func (w *Writer) renderRun(r *types.RunResult) error {
	if err := w.line(style.KindSuccess, "running builds for branch: %s", r.Branch); err != nil {
		return err
	}

	switch r.ConfigSource {
	case "file":
		if err := w.line(style.KindSuccess, "config loaded from %s", r.ConfigPath); err != nil {
			return err
		}
	case "null":
		if err := w.line(style.KindWarning, "%s is null, nothing is selected for building", r.ConfigPath); err != nil {
			return err
		}
	default:
		if err := w.line(style.KindSuccess, "no garnix config found, using defaults"); err != nil {
			return err
		}
	}

	if len(r.Matched) == 0 {
		if err := w.line(style.KindWarning, "no attributes match the current config"); err != nil {
			return err
		}
		if err := w.blank(); err != nil {
			return err
		}
		if err := w.line(style.KindInfo, "available attributes:"); err != nil {
			return err
		}
		for _, attr := range r.Available {
			if err := w.item(style.KindPlain, attr); err != nil {
				return err
			}
		}
		return nil
	}

	if err := w.line(style.KindSuccess, "matched %d/%d attributes for building:", len(r.Matched), len(r.Available)); err != nil {
		return err
	}
	for _, attr := range r.Matched {
		if err := w.item(style.KindTarget, attr); err != nil {
			return err
		}
	}

	if r.Incremental {
		if err := w.line(style.KindInfo, "incremental builds enabled for %s", r.Branch); err != nil {
			return err
		}
	}
	if len(r.Servers) > 0 {
		if err := w.line(style.KindInfo, "servers deployed from %s: %s", r.Branch, strings.Join(r.Servers, ", ")); err != nil {
			return err
		}
	}

	if r.DryRun && r.Command != nil {
		if err := w.line(style.KindWarning, "dry-run: would execute:"); err != nil {
			return err
		}
		return w.item(style.KindPlain, r.Command.String())
	}
	return nil
}

func (w *Writer) renderOutcome(o types.BuildOutcome) error {
	var badge string
	if w.Badge != nil {
		badge = w.Badge(o.Status) + " "
	}

	switch o.Status {
	case types.BuildSucceeded:
		if err := w.blank(); err != nil {
			return err
		}
		_, err := fmt.Fprintln(w.out, badge+w.styler.Style(style.KindSuccess, "all builds completed"))
		return err
	case types.BuildFailed:
		if err := w.blank(); err != nil {
			return err
		}
		_, err := fmt.Fprintln(w.out, badge+w.styler.Style(style.KindError, "build failed: "+o.Error))
		return err
	default:
		return nil
	}
}

func (w *Writer) renderAttributes(r *types.AttributesResult) error {
	if len(r.Attributes) == 0 {
		return w.line(style.KindWarning, "no buildable attributes for %s", r.System)
	}
	if err := w.line(style.KindInfo, "available attributes for %s:", r.System); err != nil {
		return err
	}
	for _, attr := range r.Attributes {
		if err := w.item(style.KindPlain, attr); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) marker(applies bool) string {
	if w.Marker != nil {
		return w.Marker(applies)
	}
	if applies {
		return "*"
	}
	return "-"
}

func (w *Writer) renderConfig(r *types.ConfigResult) error {
	if err := w.line(style.KindTitle, "%s (%s)", r.Path, r.Source); err != nil {
		return err
	}

	if len(r.Rules) == 0 {
		if err := w.line(style.KindWarning, "no build rules, nothing is selected for building"); err != nil {
			return err
		}
	}

	for i, rule := range r.Rules {
		branch := "all branches"
		if rule.Branch != nil {
			branch = "branch " + *rule.Branch
		}
		if _, err := fmt.Fprintf(w.out, "%s rule %d (%s)\n", w.marker(rule.Applies), i+1, branch); err != nil {
			return err
		}
		for _, p := range rule.Include {
			if err := w.item(style.KindSuccess, "+ "+p); err != nil {
				return err
			}
		}
		for _, p := range rule.Exclude {
			if err := w.item(style.KindWarning, "- "+p); err != nil {
				return err
			}
		}
	}

	if r.Checked {
		if err := w.blank(); err != nil {
			return err
		}
		if r.Valid() {
			return w.line(style.KindSuccess, "all patterns are valid")
		}
		for _, p := range r.Problems {
			if err := w.line(style.KindError, "%s", p); err != nil {
				return err
			}
		}
	}
	return nil
}
