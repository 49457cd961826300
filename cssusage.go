// Package cssusage estimates which CSS selectors of a stylesheet are unused.
//
// It extracts class (.name) and id (#name) selectors from one stylesheet with
// plain pattern matching, walks the project tree and marks a selector used as
// soon as any recognised source file mentions it as a whole word. The result
// is conservative: dynamically built class names are invisible to it, so a
// selector reported as unused still deserves a manual check before removal.
//
// # Analysis
//
//	config := cssusage.DefaultConfig()
//	config.Root = "."
//	result, err := cssusage.Analyze(config)
//	if errors.Is(err, cssusage.ErrStylesheetNotFound) {
//		// nothing was scanned
//	}
//
// # Report
//
// The report is persisted as JSON:
//
//	err := cssusage.WriteReportFile(result.OutputPath, result.Report)
//
// # CLI Tool
//
//	go install github.com/yacobolo/cssusage/cmd/cssusage@latest
package cssusage

import "fmt"

// Analyze loads the stylesheet, extracts its selectors and scans the project
// for references. It writes nothing; see WriteReportFile.
func Analyze(config Config) (*Result, error) {
	config = config.withDefaults()
	logger := config.Logger

	// 1. Load stylesheet (fails fast, before any scanning)
	stylesheetPath := config.resolve(config.Stylesheet)
	css, err := LoadStylesheet(stylesheetPath)
	if err != nil {
		return nil, err
	}

	// 2. Extract candidates
	selectors := ExtractSelectors(css, NewDenylist(config.Ignore...))
	logger.Debug("extracted selectors",
		"stylesheet", stylesheetPath,
		"classes", len(selectors.Classes),
		"ids", len(selectors.IDs))

	// 3. Scan the project tree
	usage, stats, err := ScanUsage(config.Root, selectors, ScanOptions{
		Extensions:   config.Extensions,
		ExcludeDirs:  config.ExcludeDirs,
		Exclude:      config.Exclude,
		UseGitIgnore: config.UseGitIgnore,
		SkipFiles:    []string{stylesheetPath},
	})
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}
	logger.Debug("scanned project",
		"root", config.Root,
		"files", stats.FilesScanned,
		"skipped", stats.FilesSkipped,
		"pruned_dirs", stats.DirsPruned)

	// 4. Summarise
	return &Result{
		Report:         BuildReport(selectors, usage),
		Stats:          stats,
		StylesheetPath: stylesheetPath,
		OutputPath:     config.resolve(config.Output),
	}, nil
}
