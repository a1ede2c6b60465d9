package lessonkit

import (
	"bytes"
	"io"

	j "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Input decoding. JSON goes through go-json with UseNumber so integer fields
// survive without float rounding; YAML goes through yaml.v3 and is normalized
// into the same map[string]any / []any shape the matchers consume.

func decodeJSON(r io.Reader) (any, Issues) {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, Issues{{Path: "/", Code: CodeParseError, Message: err.Error(), Severity: Error, Cause: err}}
	}
	// trailing garbage after the document is a parse error too
	if err := dec.Decode(new(any)); err != io.EOF {
		return nil, Issues{issueHint("/", CodeParseError, "unexpected trailing content", nil)}
	}
	return v, nil
}

func decodeYAML(data []byte) (any, Issues) {
	var v any
	if err := yaml.Unmarshal(bytes.TrimSpace(data), &v); err != nil {
		return nil, Issues{{Path: "/", Code: CodeParseError, Message: err.Error(), Severity: Error, Cause: err}}
	}
	return normalizeYAML(v), nil
}

// normalizeYAML rewrites yaml.v3 output into JSON-shaped values: string-keyed
// maps only, non-string keys rejected later as unknown structure.
func normalizeYAML(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, mv := range t {
			out[k] = normalizeYAML(mv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, mv := range t {
			ks, ok := k.(string)
			if !ok {
				continue
			}
			out[ks] = normalizeYAML(mv)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = normalizeYAML(e)
		}
		return out
	default:
		return v
	}
}
