package cssusage

import (
	"encoding/json"
	"io"
)

// WriteJSON writes the report as indented JSON
func WriteJSON(w io.Writer, report Report) error {
	if report.Unused == nil {
		// Always emit "unused": [] rather than null
		report.Unused = []UnusedSelector{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}
