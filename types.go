package lessonkit

// State is the terminal state of one validation pass.
type State int

const (
	// Validated means zero Error-severity issues; the canonical tree is
	// renderable. Warn-severity issues may still be present.
	Validated State = iota
	// Rejected means at least one Error-severity issue. The partial canonical
	// tree is still returned for preview tooling; callers decide whether to
	// use it.
	Rejected
)

func (s State) String() string {
	if s == Validated {
		return "validated"
	}
	return "rejected"
}

// ValidateOpt bundles validation options. The last option passed to an entry
// point wins.
type ValidateOpt struct {
	// Parallel validates sibling sections concurrently. Results are merged in
	// section order, so output is identical to the sequential pass.
	Parallel bool
	// DisableStyleChecks suppresses the Warn-severity authoring guidance pass
	// (terminal quiz placement, per-section quiz presence).
	DisableStyleChecks bool
}

// Result is the outcome of validating one lesson document.
type Result struct {
	Lesson *Lesson
	Issues Issues
}

// State derives the terminal state from the collected issues.
func (r Result) State() State {
	if r.Issues.HasErrors() {
		return Rejected
	}
	return Validated
}

// Ok reports whether the document validated (warnings allowed).
func (r Result) Ok() bool { return r.State() == Validated }

// Err returns the issues as an error when the document was rejected, nil
// otherwise.
func (r Result) Err() error {
	if r.Issues.HasErrors() {
		return r.Issues
	}
	return nil
}
