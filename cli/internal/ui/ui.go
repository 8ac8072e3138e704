// Package ui prints styled CLI output.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/pterm/pterm"
)

// Stdout receives what the Print helpers write.
var Stdout io.Writer = os.Stdout

var (
	// Colors
	SuccessColor = lipgloss.Color("#00FF88")
	WarningColor = lipgloss.Color("#FFB800")
	ErrorColor   = lipgloss.Color("#FF4444")
	InfoColor    = lipgloss.Color("#00D9FF")

	// Styles
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(InfoColor)
)

func terminalWidth() int {
	if w := pterm.GetTerminalWidth(); w > 0 {
		return w
	}
	return 80
}

// PrintSuccess prints a success message
func PrintSuccess(format string, args ...interface{}) {
	FprintSuccess(Stdout, format, args...)
}

// FprintSuccess prints a success message to w.
func FprintSuccess(w io.Writer, format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, SuccessStyle.Render("✓ "+message))
}

// FprintError prints an error message to w.
func FprintError(w io.Writer, format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, ErrorStyle.Render("✗ "+message))
}

// FprintWarning prints a warning message to w.
func FprintWarning(w io.Writer, format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, WarningStyle.Render("⚠ "+message))
}

// PrintInfo prints an info message
func PrintInfo(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	fmt.Fprintln(Stdout, InfoStyle.Render("ℹ "+message))
}

// PrintTable prints a table using pterm
func PrintTable(headers []string, rows [][]string) error {
	tableData := pterm.TableData{headers}
	tableData = append(tableData, rows...)
	out, err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Srender()
	if err != nil {
		return err
	}
	fmt.Fprintln(Stdout, out)
	return nil
}

// FprintList prints a bulleted list to w.
func FprintList(w io.Writer, items []string) {
	for _, item := range items {
		fmt.Fprintf(w, "  • %s\n", item)
	}
}

// PrintMarkdown renders markdown content
func PrintMarkdown(content string) error {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(terminalWidth()),
	)
	if err != nil {
		return err
	}

	out, err := r.Render(content)
	if err != nil {
		return err
	}

	fmt.Fprint(Stdout, out)
	return nil
}

// DisableColor turns off colors for fatih/color and pterm output.
func DisableColor() {
	color.NoColor = true
	pterm.DisableColor()
}
