// Package ui renders CLI output.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/pterm/pterm"
)

var (
	// Out receives regular output.
	Out io.Writer = os.Stdout
	// Err receives error output.
	Err io.Writer = os.Stderr
)

var (
	// Colors
	PrimaryColor   = lipgloss.Color("#00D9FF")
	SuccessColor   = lipgloss.Color("#00FF88")
	WarningColor   = lipgloss.Color("#FFB800")
	ErrorColor     = lipgloss.Color("#FF4444")
	SecondaryColor = lipgloss.Color("#6C757D")

	// Styles
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	SecondaryStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor)
)

// NullText is how SQL NULL is shown in tables.
var NullText = color.New(color.Faint).Sprint("NULL")

// PrintHeader prints a title with a subtitle underneath
func PrintHeader(title string, subtitle string) {
	fmt.Fprintln(Out, TitleStyle.Render(title)+" "+SecondaryStyle.Render(subtitle))
	fmt.Fprintln(Out)
}

// PrintSuccess prints a success message
func PrintSuccess(format string, args ...any) {
	fmt.Fprintln(Out, SuccessStyle.Render("✓ "+fmt.Sprintf(format, args...)))
}

// PrintError prints an error message
func PrintError(format string, args ...any) {
	fmt.Fprintln(Err, ErrorStyle.Render("✗ "+fmt.Sprintf(format, args...)))
}

// PrintWarning prints a warning message
func PrintWarning(format string, args ...any) {
	fmt.Fprintln(Out, WarningStyle.Render("⚠ "+fmt.Sprintf(format, args...)))
}

// PrintInfo prints an info message
func PrintInfo(format string, args ...any) {
	color.New(color.FgCyan).Fprintln(Out, "ℹ "+fmt.Sprintf(format, args...))
}

// PrintTable prints a table using pterm
func PrintTable(headers []string, rows [][]string) error {
	data := pterm.TableData{headers}
	data = append(data, rows...)
	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	fmt.Fprintln(Out, out)
	return nil
}

// PrintMarkdown renders markdown content
func PrintMarkdown(content string) error {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return err
	}

	out, err := r.Render(content)
	if err != nil {
		return err
	}
	fmt.Fprint(Out, out)
	return nil
}

// PrintStatements prints SQL statements, one per line.
func PrintStatements(statements []string) {
	fmt.Fprintln(Out, strings.Join(statements, "\n"))
}

// SQLMarkdown wraps statements in a fenced sql block under a heading.
func SQLMarkdown(title string, statements []string) string {
	var b strings.Builder
	b.WriteString("# " + title + "\n\n```sql\n")
	for _, s := range statements {
		b.WriteString(s + "\n")
	}
	b.WriteString("```\n")
	return b.String()
}
