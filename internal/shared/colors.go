// Package shared provides the palette and styles shared by river-dreams output.
package shared

import (
	"github.com/charmbracelet/lipgloss"
)

// Standard ANSI colors, the same slots the prompt addresses with %F{n}.
var (
	Red     = lipgloss.ANSIColor(1)
	Yellow  = lipgloss.ANSIColor(3)
	Magenta = lipgloss.ANSIColor(5)
	Cyan    = lipgloss.ANSIColor(6)
)

// InfoStyle marks the hint line under a banner.
var InfoStyle = lipgloss.NewStyle().Foreground(Cyan).Bold(true)

// Styles for help pages and banners.
var (
	MarkColonStyle   = lipgloss.NewStyle().Foreground(Yellow).Bold(true)
	MarkDiamondStyle = lipgloss.NewStyle().Foreground(Red).Bold(true)
	HeadingStyle     = lipgloss.NewStyle().Foreground(Magenta).Bold(true)
	CommandStyle     = lipgloss.NewStyle().Foreground(Yellow)
	OptionStyle      = lipgloss.NewStyle().Foreground(Cyan)
	CommandArgStyle  = lipgloss.NewStyle().Foreground(Yellow).Underline(true)
	OptionArgStyle   = lipgloss.NewStyle().Foreground(Cyan).Underline(true)
	LinkStyle        = lipgloss.NewStyle().Foreground(Cyan).Underline(true)
	NameStyle        = lipgloss.NewStyle().Foreground(Magenta).Bold(true)
	ExitStyle        = lipgloss.NewStyle().Foreground(Yellow).Bold(true)
)

// Mark renders the ":<>::" application mark.
func Mark() string {
	return MarkColonStyle.Render(":") + MarkDiamondStyle.Render("<>") + MarkColonStyle.Render("::")
}
