package lessonkit

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lessonkit/lessonkit/i18n"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeMalformedItem       = "malformed_item"       // zero, multiple, or unrecognized shorthand/type keys
	CodeArityMismatch       = "arity_mismatch"       // positional array has the wrong length
	CodeInvalidType         = "invalid_type"         // wrong primitive type for a field
	CodeConstraintViolation = "constraint_violation" // typed correctly but out of range/format
	CodeStyleWarning        = "style_warning"        // authoring guidance; never fatal
	CodeRequired            = "required"             // required field missing
	CodeUnknownKey          = "unknown_key"          // unexpected field on a container or payload object
	CodeParseError          = "parse_error"          // input could not be decoded at all
)

// Severity expresses the severity level for issues.
type Severity int

const (
	Ignore Severity = iota
	Warn
	Error
)

// Issue represents a single validation entry.
type Issue struct {
	Path     string // JSON Pointer (for example: /sections/0/items/2/flip/1).
	Code     string // One of the codes listed above.
	Message  string
	Severity Severity
	Hint     string // Optional: remediation hints, offending values, etc.
	Cause    error  // Optional: underlying error.
	// Params carries structured parameters (e.g., {"max":120, "got":121})
	// for i18n and observability.
	Params map[string]any
}

// Issues is a collection of validation entries that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. arity_mismatch at /sections/0/items/2
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// HasErrors reports whether any entry carries Error severity.
func (iss Issues) HasErrors() bool {
	for _, it := range iss {
		if it.Severity >= Error {
			return true
		}
	}
	return false
}

// Warnings returns only the Warn-severity entries.
func (iss Issues) Warnings() Issues {
	var out Issues
	for _, it := range iss {
		if it.Severity == Warn {
			out = append(out, it)
		}
	}
	return out
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// IssueAt creates an Issue at the given path with the provided code and params
// map. The message is resolved through the i18n catalog; style_warning is the
// only code that carries Warn severity.
func IssueAt(path, code string, params map[string]any) Issue {
	sev := Error
	if code == CodeStyleWarning {
		sev = Warn
	}
	return Issue{Path: path, Code: code, Message: i18n.T(code, nil), Severity: sev, Params: params}
}

// issueHint is IssueAt plus a hint, for call sites with an offending value to
// surface.
func issueHint(path, code, hint string, params map[string]any) Issue {
	it := IssueAt(path, code, params)
	it.Hint = hint
	return it
}
