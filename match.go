package lessonkit

import (
	"strconv"
	"unicode/utf8"

	j "github.com/goccy/go-json"
)

// Coercion helpers shared by the shape matchers. Raw values come from go-json
// with UseNumber (json.Number) or from yaml.v3 (int/float64), so numeric
// fields accept every exactly-integral representation.

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func asBool(v any) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case j.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	case float64:
		i := int(n)
		if float64(i) != n {
			return 0, false
		}
		return i, true
	}
	return 0, false
}

func asSlice(v any) ([]any, bool) {
	arr, ok := v.([]any)
	return arr, ok
}

func asMap(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

func runeLen(s string) int { return utf8.RuneCountInString(s) }

func idxPath(path string, i int) string { return path + "/" + strconv.Itoa(i) }

// wantSlice type-checks the raw payload as an array, or reports invalid_type.
func wantSlice(raw any, path string) ([]any, Issues) {
	arr, ok := asSlice(raw)
	if !ok {
		return nil, Issues{issueHint(path, CodeInvalidType, "expected array", map[string]any{"expected": "array"})}
	}
	return arr, nil
}

// wantMap type-checks the raw payload as an object, or reports invalid_type.
func wantMap(raw any, path string) (map[string]any, Issues) {
	m, ok := asMap(raw)
	if !ok {
		return nil, Issues{issueHint(path, CodeInvalidType, "expected object", map[string]any{"expected": "object"})}
	}
	return m, nil
}

// stringAt type-checks arr[i] as a string, appending invalid_type otherwise.
func stringAt(arr []any, i int, path string, iss *Issues) (string, bool) {
	s, ok := asString(arr[i])
	if !ok {
		*iss = AppendIssues(*iss, issueHint(idxPath(path, i), CodeInvalidType, "expected string", map[string]any{"expected": "string"}))
		return "", false
	}
	return s, true
}

// ceilAt enforces a rune-length ceiling on a string already known to be valid.
func ceilAt(s string, max int, path string, iss *Issues) {
	if n := runeLen(s); n > max {
		*iss = AppendIssues(*iss, IssueAt(path, CodeConstraintViolation, map[string]any{"max": max, "got": n}))
	}
}

func arity(got, want int, path string) Issues {
	return Issues{IssueAt(path, CodeArityMismatch, map[string]any{"want": want, "got": got})}
}

func arityMin(got, min int, path string) Issues {
	return Issues{IssueAt(path, CodeArityMismatch, map[string]any{"min": min, "got": got})}
}
