package cssusage

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// Report is the persisted summary of one analysis
type Report struct {
	TotalClasses int              `json:"total_classes"`
	TotalIDs     int              `json:"total_ids"`
	UnusedCount  int              `json:"unused_count"`
	Unused       []UnusedSelector `json:"unused"`
}

// UnusedSelector is a candidate no scanned file references
type UnusedSelector struct {
	Type Kind   `json:"type"` // "class" or "id"
	Name string `json:"name"` // "foo-bar"
}

// BuildReport summarises usage flags.
// Unused selectors are listed classes first, then ids, each sorted by name.
func BuildReport(selectors Selectors, usage Usage) Report {
	unused := make([]UnusedSelector, 0)
	for _, c := range selectors.Candidates() {
		if usage[c] {
			continue
		}
		unused = append(unused, UnusedSelector{Type: c.Kind, Name: c.Name})
	}

	return Report{
		TotalClasses: len(selectors.Classes),
		TotalIDs:     len(selectors.IDs),
		UnusedCount:  len(unused),
		Unused:       unused,
	}
}

// WriteReportFile writes report as JSON to path, replacing any previous file.
// Missing parent directories are created.
func WriteReportFile(path string, report Report) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	var buf bytes.Buffer
	if err := WriteJSON(&buf, report); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}
