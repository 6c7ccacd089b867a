package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

var (
	// Color functions - fatih/color disables itself when output is not a TTY
	successColor      = color.New(color.FgGreen, color.Bold)
	warningColor      = color.New(color.FgYellow, color.Bold)
	errorColor        = color.New(color.FgRed, color.Bold)
	infoColor         = color.New(color.FgCyan)
	headerColor       = color.New(color.FgBlue, color.Bold)
	activeHeaderColor = color.New(color.FgCyan, color.Bold)
	labelColor        = color.New(color.FgWhite, color.Bold)
	valueColor        = color.New(color.FgHiBlack)
	dimColor          = color.New(color.FgHiBlack)
)

// PrintSection prints a section header
func PrintSection(title string) {
	fmt.Println()
	_, _ = headerColor.Printf("▸ %s\n", title)
	fmt.Println()
}

// PrintSuccess prints a success message with a checkmark
func PrintSuccess(msg string) {
	_, _ = successColor.Printf("✓ %s\n", msg)
}

// PrintWarning prints a warning message with a warning symbol
func PrintWarning(msg string) {
	_, _ = warningColor.Printf("⚠ %s\n", msg)
}

// PrintError prints an error message to stderr
func PrintError(msg string) {
	_, _ = errorColor.Fprintf(os.Stderr, "✗ %s\n", msg)
}

// PrintInfo prints an informational message
func PrintInfo(msg string) {
	fmt.Println(msg)
}

// PrintLabelValue prints a label-value pair with proper formatting
func PrintLabelValue(label, value string) {
	_, _ = labelColor.Printf("  %s: ", label)
	_, _ = valueColor.Println(value)
}

// PrintEmptyState prints a message when there's no data to show
func PrintEmptyState(msg string) {
	_, _ = dimColor.Printf("  %s\n", msg)
}

// PrintHeading prints a group heading; the heading of the group containing
// the active project is highlighted.
func PrintHeading(title string, active bool) {
	if active {
		_, _ = activeHeaderColor.Printf("%s\n", title)
		return
	}
	_, _ = headerColor.Printf("%s\n", title)
}

// PrintProjectLine prints one listing line: a marker for the active
// project, the 1-based registry index, and the rendered name.
func PrintProjectLine(index int, name string, active bool) {
	if active {
		_, _ = infoColor.Printf("  * %2d. %s\n", index, name)
		return
	}
	fmt.Printf("    %2d. %s\n", index, name)
}
