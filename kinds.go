package lessonkit

// Kind names one widget kind. The set is closed; see the registry for the
// full catalog.
type Kind string

const (
	KindMarkdown            Kind = "markdown"
	KindFlip                Kind = "flip"
	KindTr                  Kind = "tr"
	KindFillBlank           Kind = "fillblank"
	KindTable               Kind = "table"
	KindCompare             Kind = "compare"
	KindSwipeCards          Kind = "swipecards"
	KindFreeText            Kind = "freeText"
	KindInputLine           Kind = "inputLine"
	KindStepFlow            Kind = "stepFlow"
	KindASCIIDiagram        Kind = "asciiDiagram"
	KindChecklist           Kind = "checklist"
	KindInteractiveTerminal Kind = "interactiveTerminal"
	KindTerminalDemo        Kind = "terminalDemo"
	KindCodeEditor          Kind = "codeEditor"
	KindTreeView            Kind = "treeview"
	KindMCQs                Kind = "mcqs"
)
