package report

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

func init() {
	Register("text", writeText)
	Register("json", writeJSON)
	Register("yaml", writeYAML)
}

// writeText prints one line: "<path>: <status> (exit N)[ line L][: reason]".
func writeText(w io.Writer, r Report) error {
	if _, err := fmt.Fprintf(w, "%s: %s (exit %d)", r.Path, r.Status, r.Code); err != nil {
		return err
	}
	if !r.Checked {
		if _, err := fmt.Fprintf(w, "; %s is not validated", r.Format); err != nil {
			return err
		}
	}
	if r.Line > 0 {
		if _, err := fmt.Fprintf(w, " line %d", r.Line); err != nil {
			return err
		}
	}
	if r.Reason != "" {
		if _, err := fmt.Fprintf(w, ": %s", r.Reason); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

func writeJSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func writeYAML(w io.Writer, r Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}
