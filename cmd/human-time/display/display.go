// Package display provides output formatting for human-time.
//
// Text output is the formatted duration followed by a newline and nothing
// else, so it can be used in shell pipelines. JSON output is a single object
// on one line.
package display

import (
	"encoding/json"
	"fmt"
	"io"
)

// Result is the outcome of one conversion
type Result struct {
	Value     uint64 `json:"value"`
	Unit      string `json:"unit"`
	Formatted string `json:"formatted"`
}

// PrintResult writes r to w in the requested output format
func PrintResult(w io.Writer, output string, r Result) error {
	if output == "json" {
		data, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	_, err := fmt.Fprintln(w, r.Formatted)
	return err
}
