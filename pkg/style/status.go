package style

import (
	"fmt"

	"github.com/arthur-debert/garnix/pkg/types"
	"github.com/pterm/pterm"
)

// StatusStyle returns the badge style of a build status
func StatusStyle(status types.BuildStatus) *pterm.Style {
	switch status {
	case types.BuildSucceeded:
		return pterm.NewStyle(pterm.BgGreen, pterm.FgWhite)
	case types.BuildFailed:
		return pterm.NewStyle(pterm.BgRed, pterm.FgWhite, pterm.Bold)
	case types.BuildPlanned:
		return pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// StatusBadge renders status as a padded badge
func StatusBadge(status types.BuildStatus) string {
	return StatusStyle(status).Sprint(fmt.Sprintf(" %-9s ", status))
}

// RuleMarker renders the marker shown in front of a rule
func RuleMarker(applies bool) string {
	if applies {
		return pterm.NewStyle(pterm.FgGreen, pterm.Bold).Sprint("*")
	}
	return pterm.NewStyle(pterm.FgGray).Sprint("-")
}
