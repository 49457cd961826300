package cssusage

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"
)

// WriteMarkdown writes a shareable Markdown version of the result
func WriteMarkdown(w io.Writer, result *Result) error {
	md := markdown.NewMarkdown(w)
	report := result.Report

	md.H1("CSS Usage Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Stylesheet", "`" + GetRelativePath(result.StylesheetPath) + "`"},
			{"Classes", strconv.Itoa(report.TotalClasses)},
			{"IDs", strconv.Itoa(report.TotalIDs)},
			{"Unused", strconv.Itoa(report.UnusedCount)},
			{"Files scanned", strconv.Itoa(result.Stats.FilesScanned)},
		},
	})
	md.PlainText("")

	md.H2("Unused Selectors")
	md.PlainText("")

	if len(report.Unused) == 0 {
		md.Tip("No unused selectors found.")
	} else {
		rows := make([][]string, len(report.Unused))
		for i, sel := range report.Unused {
			rows[i] = []string{string(sel.Type), "`" + Candidate{Kind: sel.Type, Name: sel.Name}.String() + "`"}
		}
		md.Table(markdown.TableSet{
			Header: []string{"Type", "Selector"},
			Rows:   rows,
		})
	}
	md.PlainText("")

	md.Note("This scan is conservative. Dynamically built class names are not detected; review each selector before removing it.")

	return md.Build()
}
