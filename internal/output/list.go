// Package output renders help pages for the terminal.
package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/Veraticus/river-dreams/internal/shared"
)

// Row is one entry of a list: the names it answers to and what it does.
type Row struct {
	Names       []string
	Description string
}

// ListRenderer formats titled lists with aligned descriptions.
type ListRenderer struct {
	titleStyle lipgloss.Style
	nameStyle  lipgloss.Style
	bullet     string
	indent     string
}

// NewListRenderer creates a list renderer whose names use nameStyle.
func NewListRenderer(nameStyle lipgloss.Style) *ListRenderer {
	return &ListRenderer{
		titleStyle: shared.HeadingStyle,
		nameStyle:  nameStyle,
		bullet:     "❡",
		indent:     "    ",
	}
}

// Render formats a title and its rows, padding names so descriptions line up.
func (l *ListRenderer) Render(title string, rows []Row) string {
	var sb strings.Builder

	if title != "" {
		sb.WriteString(l.titleStyle.Render(l.bullet + " " + title))
		sb.WriteString("\n")
	}

	// Find the widest name column for alignment
	maxWidth := 0
	for _, row := range rows {
		maxWidth = max(maxWidth, runewidth.StringWidth(strings.Join(row.Names, ", ")))
	}

	for _, row := range rows {
		styled := make([]string, len(row.Names))
		for i, name := range row.Names {
			styled[i] = l.nameStyle.Render(name)
		}
		plainWidth := runewidth.StringWidth(strings.Join(row.Names, ", "))

		sb.WriteString(l.indent)
		sb.WriteString(strings.Join(styled, ", "))
		sb.WriteString(strings.Repeat(" ", maxWidth-plainWidth+2))
		sb.WriteString(row.Description)
		sb.WriteString("\n")
	}

	return sb.String()
}

// Usage renders the first line of a help page: the mark, the invocation and its placeholders.
// Placeholders are rendered as <ARG> when required and [ARG]... when optional.
func Usage(invocation string, required []string, optional []string) string {
	var sb strings.Builder
	sb.WriteString(shared.Mark())
	sb.WriteString(" ")
	sb.WriteString(shared.HeadingStyle.Render("Usage:"))
	sb.WriteString(" ")
	sb.WriteString(invocation)
	for _, arg := range required {
		sb.WriteString(" <" + shared.CommandArgStyle.Render(arg) + ">")
	}
	for _, arg := range optional {
		sb.WriteString(" [" + shared.OptionArgStyle.Render(arg) + "]...")
	}
	return sb.String()
}

// Info renders a highlighted informational line.
func Info(message string) string {
	return shared.InfoStyle.Render(" INFO:") + " " + message
}
