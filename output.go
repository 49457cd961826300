package cssusage

// OutputFormat represents how a result is rendered on stdout.
// The persisted report file is always JSON.
type OutputFormat string

const (
	// OutputJSON prints the report exactly as it is persisted (default)
	OutputJSON OutputFormat = "json"
	// OutputSummary prints counts, scan statistics and the unused list
	OutputSummary OutputFormat = "summary"
	// OutputMarkdown prints a Markdown report (shareable reports)
	OutputMarkdown OutputFormat = "markdown"
)

// DetermineOutputFormat selects the output format from a flag value.
// Unknown values fall back to JSON.
func DetermineOutputFormat(formatFlag string) OutputFormat {
	switch formatFlag {
	case "summary", "text":
		return OutputSummary
	case "markdown", "md":
		return OutputMarkdown
	default:
		return OutputJSON
	}
}
