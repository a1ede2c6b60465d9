package lessonkit

import (
	"bytes"
	"context"
	"io"
)

// Validate runs one full validation pass over an already-decoded lesson value
// (maps, slices, strings, numbers). The pass always completes: every container
// is visited and the complete diagnostic set is returned, never just the first
// failure. The last option wins.
func Validate(ctx context.Context, v any, opts ...ValidateOpt) Result {
	var opt ValidateOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	return validateLesson(ctx, v, opt)
}

// ValidateBytes decodes a JSON lesson document and validates it.
func ValidateBytes(ctx context.Context, data []byte, opts ...ValidateOpt) Result {
	return ValidateReader(ctx, bytes.NewReader(data), opts...)
}

// ValidateReader decodes a JSON lesson document from r and validates it.
func ValidateReader(ctx context.Context, r io.Reader, opts ...ValidateOpt) Result {
	v, iss := decodeJSON(r)
	if iss != nil {
		return Result{Issues: iss}
	}
	return Validate(ctx, v, opts...)
}

// ValidateYAML decodes a YAML-authored lesson document and validates it.
func ValidateYAML(ctx context.Context, data []byte, opts ...ValidateOpt) Result {
	v, iss := decodeYAML(data)
	if iss != nil {
		return Result{Issues: iss}
	}
	return Validate(ctx, v, opts...)
}
