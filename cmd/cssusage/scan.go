package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yacobolo/cssusage"
	"github.com/yacobolo/cssusage/internal/report"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Report stylesheet selectors that appear unused",
	Long: `Extract class and id selectors from the stylesheet, scan project files
(.php, .html, .js, .css, .md, .twig by default) for references and write a JSON
report of the selectors nothing mentions.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runScan(cmd)
	},
}

func init() {
	addScanFlags(scanCmd)
}

// addScanFlags registers scan flags; root and scan share them because root runs a scan by default.
func addScanFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("stylesheet", cssusage.DefaultStylesheet, "Stylesheet to analyze (relative to --root)")
	f.String("output", cssusage.DefaultOutput, "Report file path (relative to --root)")
	f.String("format", "json", "Stdout format: json|summary|markdown")
	f.Bool("strict", false, "Exit 1 when unused selectors are found (CI mode)")
	f.StringSlice("ext", cssusage.DefaultExtensions(), "File extensions to scan for references")
	f.StringSlice("exclude-dir", cssusage.DefaultExcludeDirs(), "Directory names never descended into")
	f.StringSlice("exclude", nil, "Glob patterns (relative to --root) to skip")
	f.Bool("gitignore", false, "Skip paths matched by the root .gitignore")
	f.StringSlice("ignore", nil, "Extra selector names to never report")
}

// runScan is shared between `cssusage` and `cssusage scan`.
func runScan(cmd *cobra.Command) error {
	config := buildScanConfig()
	config.Logger = newLogger(cmd.ErrOrStderr(), getBool("verbose", false))

	// A missing stylesheet aborts here, before anything is printed or written
	result, err := cssusage.Analyze(config)
	if err != nil {
		return err
	}

	quiet := getBool("quiet", false)
	out := cmd.OutOrStdout()

	if !quiet {
		format := cssusage.DetermineOutputFormat(getString("report.format", "json"))
		useColors := report.ShouldUseColors(getBool("color", false))
		if err := report.WriteOutput(out, result, format, useColors); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}

	if err := cssusage.WriteReportFile(result.OutputPath, result.Report); err != nil {
		return err
	}

	if !quiet {
		fmt.Fprintf(out, "\nWrote %s\n", cssusage.GetRelativePath(result.OutputPath))
	}

	// Strict mode: any unused selector fails the build
	if getBool("report.strict", false) && result.Report.UnusedCount > 0 {
		return fmt.Errorf("strict mode: %s found",
			report.PluralizeCount(result.Report.UnusedCount, "unused selector", "unused selectors"))
	}

	return nil
}
