package lessonkit

import (
	j "github.com/goccy/go-json"
)

// Lesson is the root of a canonical validated document. It is never mutated
// after validation; the walker builds a new tree rather than editing input.
type Lesson struct {
	Title    string    `json:"title,omitempty"`
	Sections []Section `json:"sections"`
}

// Section groups subsections and top-level items. Number is display-only
// metadata: if present in raw input it is carried through verbatim, never
// checked against the section's position.
type Section struct {
	Title       string       `json:"title"`
	Number      string       `json:"number,omitempty"`
	Items       []Item       `json:"items,omitempty"`
	Dividers    []int        `json:"dividers,omitempty"`
	Subsections []Subsection `json:"subsections,omitempty"`
}

// Subsection is a titled item container.
type Subsection struct {
	Title    string `json:"title"`
	Items    []Item `json:"items,omitempty"`
	Dividers []int  `json:"dividers,omitempty"`
}

// Item is one normalized widget occurrence. SourcePath locates the raw input
// node for diagnostics only; it carries no semantics.
type Item struct {
	Kind       Kind
	Payload    Payload
	SourcePath string
}

// MarshalJSON emits the item in shorthand wire form ({"flip": [...]}), so a
// canonical tree serializes into a document that validates again unchanged.
func (it Item) MarshalJSON() ([]byte, error) {
	return j.Marshal(map[string]any{string(it.Kind): it.Payload.raw()})
}
