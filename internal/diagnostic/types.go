package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"order-mapper/internal/common"
)

// Severity ranks a finding about a schema table.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// Diagnostic is one finding about a schema table or one of its fields.
type Diagnostic struct {
	Severity Severity
	// Code is a stable identifier for the kind of finding.
	Code    string
	Message string
	// Table and Field locate the finding; either may be empty.
	Table string
	Field string
	// Hint is a known name close to an unrecognized value.
	Hint string
}

// Detail renders the finding without its table name.
func (d Diagnostic) Detail() string {
	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if d.Hint != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", d.Hint)
	}

	if d.Field != "" {
		return d.Field + ": " + msg
	}

	return msg
}

// String renders the finding with its table name.
func (d Diagnostic) String() string {
	if d.Table == "" {
		return d.Detail()
	}

	return "[" + d.Table + "] " + d.Detail()
}

// Diagnostics collects every finding of a validation pass, split by severity.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Add files diag under its severity.
func (d *Diagnostics) Add(diag Diagnostic) {
	switch diag.Severity {
	case SeverityError:
		d.Errors = append(d.Errors, diag)
	case SeverityWarning:
		d.Warnings = append(d.Warnings, diag)
	default:
		d.Infos = append(d.Infos, diag)
	}
}

// AddError adds an error finding.
func (d *Diagnostics) AddError(code, message, table, field string) {
	d.Add(Diagnostic{Severity: SeverityError, Code: code, Message: message, Table: table, Field: field})
}

// AddWarning adds a warning finding.
func (d *Diagnostics) AddWarning(code, message, table, field string) {
	d.Add(Diagnostic{Severity: SeverityWarning, Code: code, Message: message, Table: table, Field: field})
}

// AddInfo adds an informational finding.
func (d *Diagnostics) AddInfo(code, message, table, field string) {
	d.Add(Diagnostic{Severity: SeverityInfo, Code: code, Message: message, Table: table, Field: field})
}

// HasErrors returns true if there are any error findings.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge appends other's findings.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// All returns every finding, errors first.
func (d *Diagnostics) All() []Diagnostic {
	all := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))
	all = append(all, d.Errors...)
	all = append(all, d.Warnings...)

	return append(all, d.Infos...)
}

// Tables returns the names of the tables with findings, in the order they
// first appear in All. Findings not tied to a table are listed under "".
func (d *Diagnostics) Tables() []string {
	var names []string

	seen := map[string]bool{}

	for _, diag := range d.All() {
		if !seen[diag.Table] {
			seen[diag.Table] = true
			names = append(names, diag.Table)
		}
	}

	return names
}

// ForTable returns the findings for one table, errors first.
func (d *Diagnostics) ForTable(table string) []Diagnostic {
	var out []Diagnostic

	for _, diag := range d.All() {
		if diag.Table == table {
			out = append(out, diag)
		}
	}

	return out
}

// Summary counts the findings, e.g. "1 error, 2 warnings, 0 infos".
func (d *Diagnostics) Summary() string {
	return fmt.Sprintf("%s, %s, %s",
		plural(len(d.Errors), "error"), plural(len(d.Warnings), "warning"), plural(len(d.Infos), "info"))
}

// Error returns a combined error from all error findings, or nil if there are none.
func (d *Diagnostics) Error() error {
	if !d.HasErrors() {
		return nil
	}

	parts := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}

	return fmt.Sprintf("%d %ss", n, noun)
}
