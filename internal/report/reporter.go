// Package report renders analysis results for the terminal.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/yacobolo/cssusage"
)

// Reporter prints human-readable summaries
type Reporter struct {
	w         io.Writer
	useColors bool
}

// NewReporter creates a reporter writing to w
func NewReporter(w io.Writer, useColors bool) *Reporter {
	return &Reporter{
		w:         w,
		useColors: useColors,
	}
}

// ShouldUseColors determines if colors should be enabled
func ShouldUseColors(force bool) bool {
	// Explicit flag wins
	if force {
		return true
	}

	// Check for FORCE_COLOR environment variable (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	// GitHub Actions supports colors
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	// Auto-detect TTY
	fileInfo, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fileInfo.Mode()&os.ModeCharDevice != 0
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *cssusage.Result, format cssusage.OutputFormat, useColors bool) error {
	switch format {
	case cssusage.OutputSummary:
		reporter := NewReporter(w, useColors)
		reporter.PrintStatistics(result)
		reporter.PrintUnused(result.Report)
		return nil

	case cssusage.OutputMarkdown:
		return cssusage.WriteMarkdown(w, result)

	default:
		return cssusage.WriteJSON(w, result.Report)
	}
}

// PrintStatistics outputs selector and file counts
func (r *Reporter) PrintStatistics(result *cssusage.Result) {
	report := result.Report
	stats := result.Stats

	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "CSS Usage Statistics", r.useColors))
	fmt.Fprintln(r.w, "--------------------")

	fmt.Fprintf(r.w, "Stylesheet:        %s\n", cssusage.GetRelativePath(result.StylesheetPath))
	fmt.Fprintf(r.w, "Classes:           %d\n", report.TotalClasses)
	fmt.Fprintf(r.w, "IDs:               %d\n", report.TotalIDs)
	fmt.Fprintf(r.w, "Unused:            %d\n", report.UnusedCount)
	fmt.Fprintf(r.w, "Files Scanned:     %d\n", stats.FilesScanned)
	fmt.Fprintf(r.w, "Files Skipped:     %d\n", stats.FilesSkipped)
	fmt.Fprintf(r.w, "Dirs Pruned:       %d\n", stats.DirsPruned)

	if stats.FilesUnreadable > 0 {
		fmt.Fprintf(r.w, "Files Unreadable:  %s\n",
			RenderStyle(StyleYellow, fmt.Sprintf("%d", stats.FilesUnreadable), r.useColors))
	}
}

// PrintUnused lists the unused selectors
func (r *Reporter) PrintUnused(report cssusage.Report) {
	fmt.Fprintln(r.w, "")

	if len(report.Unused) == 0 {
		fmt.Fprintln(r.w, RenderStyle(StyleGreen, "No unused selectors found", r.useColors))
		return
	}

	fmt.Fprintf(r.w, "%s:\n", RenderStyle(StyleRed,
		PluralizeCount(report.UnusedCount, "unused selector", "unused selectors"), r.useColors))

	for _, sel := range report.Unused {
		selector := cssusage.Candidate{Kind: sel.Type, Name: sel.Name}.String()
		fmt.Fprintf(r.w, "* %s\n", selector)
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleGray, "Hint: names built at runtime are not detected; check before deleting rules", r.useColors))
}

// PluralizeCount returns a formatted string with count and singular/plural form
func PluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
