package lessonkit

// Shape constraints. Lengths count runes, not bytes.
const (
	maxFlipFront    = 120
	maxFlipBack     = 160
	maxSwipeText    = 120
	maxSwipeFeed    = 150
	maxChecklistDep = 3 // nesting levels including the root list
	maxStepFlowDep  = 5 // branching levels including the root list
	minMCQChoices   = 2
	minTrEntries    = 2

	placeholderMarker = "___"

	defaultDiagramAlign = "center"
	defaultTermPrompt   = "$"
	defaultEditorLang   = "en"
)

// matchFunc validates one raw payload against its kind's shape.
// All-or-nothing: either a typed payload with nil issues, or issues only.
type matchFunc func(raw any, path string) (Payload, Issues)

// Descriptor declares one widget kind's shape contract.
type Descriptor struct {
	Kind Kind
	// ObjectKeyed marks widgets whose payload is a named-field object rather
	// than a positional array; these are the natural full-form widgets.
	ObjectKeyed bool
	// MaxDepth bounds recursive structures, counting the root list as level 1.
	// Zero means the kind is not depth-limited.
	MaxDepth int
	match    matchFunc
}

// registry is read-only process-wide state, initialized once and never
// mutated at runtime.
var registry = map[Kind]Descriptor{
	KindMarkdown:            {Kind: KindMarkdown, match: matchMarkdown},
	KindFlip:                {Kind: KindFlip, match: matchFlip},
	KindTr:                  {Kind: KindTr, match: matchTr},
	KindFillBlank:           {Kind: KindFillBlank, match: matchFillBlank},
	KindTable:               {Kind: KindTable, match: matchTable},
	KindCompare:             {Kind: KindCompare, match: matchCompare},
	KindSwipeCards:          {Kind: KindSwipeCards, match: matchSwipeCards},
	KindFreeText:            {Kind: KindFreeText, match: matchFreeText},
	KindInputLine:           {Kind: KindInputLine, match: matchInputLine},
	KindStepFlow:            {Kind: KindStepFlow, MaxDepth: maxStepFlowDep, match: matchStepFlow},
	KindASCIIDiagram:        {Kind: KindASCIIDiagram, match: matchASCIIDiagram},
	KindChecklist:           {Kind: KindChecklist, MaxDepth: maxChecklistDep, match: matchChecklist},
	KindInteractiveTerminal: {Kind: KindInteractiveTerminal, ObjectKeyed: true, match: matchInteractiveTerminal},
	KindTerminalDemo:        {Kind: KindTerminalDemo, ObjectKeyed: true, match: matchTerminalDemo},
	KindCodeEditor:          {Kind: KindCodeEditor, match: matchCodeEditor},
	KindTreeView:            {Kind: KindTreeView, ObjectKeyed: true, match: matchTreeView},
	KindMCQs:                {Kind: KindMCQs, ObjectKeyed: true, match: matchMCQs},
}

// Lookup resolves a shorthand key or type value to its shape descriptor.
func Lookup(keyOrType string) (Descriptor, bool) {
	d, ok := registry[Kind(keyOrType)]
	return d, ok
}

// Kinds returns every registered widget kind. Order is unspecified.
func Kinds() []Kind {
	out := make([]Kind, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	return out
}
