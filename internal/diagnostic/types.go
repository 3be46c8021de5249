package diagnostic

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"

	"driver-generator/internal/common"
	"driver-generator/internal/element"
)

// Diagnostic codes.
const (
	// CodeUnresolved marks an element that has no access path from the root.
	CodeUnresolved = "unresolved"
	// CodeImperfect marks an access path that depends on sibling order.
	CodeImperfect = "imperfect"
	// CodeNotBoundary marks a root that cannot own a driver.
	CodeNotBoundary = "not-boundary"
)

// Diagnostics holds all diagnostic information from candidate discovery.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Root is the driver root the diagnostic relates to (if any).
	Root *element.Node
	// Element is the element the diagnostic relates to (if any).
	Element *element.Node
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message string, root, elem *element.Node, suggestions ...string) {
	d.Errors = append(d.Errors, newDiagnostic(DiagnosticError, code, message, root, elem, suggestions))
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message string, root, elem *element.Node, suggestions ...string) {
	d.Warnings = append(d.Warnings, newDiagnostic(DiagnosticWarning, code, message, root, elem, suggestions))
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message string, root, elem *element.Node, suggestions ...string) {
	d.Infos = append(d.Infos, newDiagnostic(DiagnosticInfo, code, message, root, elem, suggestions))
}

func newDiagnostic(
	severity DiagnosticSeverity,
	code, message string,
	root, elem *element.Node,
	suggestions []string,
) Diagnostic {
	return Diagnostic{
		Severity:    severity,
		Code:        code,
		Message:     message,
		Root:        root,
		Element:     elem,
		Suggestions: suggestions,
	}
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Len returns the number of diagnostics of all severities.
func (d *Diagnostics) Len() int {
	return len(d.Errors) + len(d.Warnings) + len(d.Infos)
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Root != nil {
		prefix = append(prefix, "["+d.Root.String()+"]")
	}

	if d.Element != nil {
		prefix = append(prefix, d.Element.String())
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
