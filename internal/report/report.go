package report

import (
	"errors"

	"bammval/internal/validate"
)

// Report is the verdict of one validator run.
type Report struct {
	Tool    string `json:"tool" yaml:"tool"`
	Path    string `json:"path" yaml:"path"`
	Format  string `json:"format,omitempty" yaml:"format,omitempty"`
	Checked bool   `json:"checked" yaml:"checked"`
	Code    int    `json:"code" yaml:"code"`
	Status  string `json:"status" yaml:"status"`
	Line    int    `json:"line,omitempty" yaml:"line,omitempty"`
	Reason  string `json:"reason,omitempty" yaml:"reason,omitempty"`
	Lines   int    `json:"lines,omitempty" yaml:"lines,omitempty"`
	Records int    `json:"records,omitempty" yaml:"records,omitempty"`
	Width   int    `json:"width,omitempty" yaml:"width,omitempty"`
}

// New fills the verdict fields from the scan error. Callers add the
// scan summary fields themselves.
func New(tool, path string, err error) Report {
	code := validate.ExitCode(err)
	r := Report{
		Tool:    tool,
		Path:    path,
		Checked: true,
		Code:    int(code),
		Status:  code.String(),
	}
	var fe *validate.FormatError
	switch {
	case errors.As(err, &fe):
		r.Line = fe.Line
		r.Reason = fe.Reason
	case err != nil:
		r.Reason = err.Error()
	}
	return r
}
