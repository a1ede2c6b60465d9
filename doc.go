package lessonkit

// Package lessonkit provides:
//
// - Parsing and structural validation of lesson widget documents (sections,
//   subsections, typed content items) from raw JSON or YAML
// - Normalization of shorthand and full-form widget items into a canonical,
//   kind-tagged lesson tree
// - A stable diagnostic model via Issues (JSON Pointer path, code, message,
//   severity) that accumulates a full report in a single pass
// - A divider policy computing presentational separator positions per container
//
// Design policy:
// - Keep the public API and the widget catalog in the root package; put the CLI
//   under cmd/lessonlint and its plumbing under internal/cli.
// - Matchers are pure and all-or-nothing: an item either yields a typed payload
//   or only diagnostics, and one item's failure never aborts its siblings.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	res := lessonkit.ValidateBytes(ctx, data)
//	if !res.Ok() {
//		for _, it := range res.Issues { ... }
//	}
//	render(res.Lesson)
