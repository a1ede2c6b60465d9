package lessonkit

// Payload is the typed content of one normalized widget item. Concrete types
// form a closed set; renderers type-switch over them.
type Payload interface {
	Kind() Kind
	// raw projects the payload back into its shorthand wire form, so a
	// canonical tree re-serializes into a document this package accepts again.
	raw() any
}

// Markdown is a block of markdown text.
type Markdown struct {
	Text string `json:"text"`
}

func (Markdown) Kind() Kind { return KindMarkdown }
func (p Markdown) raw() any { return p.Text }

// Flip is a flashcard with a front and a back face.
type Flip struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

func (Flip) Kind() Kind { return KindFlip }
func (p Flip) raw() any { return []any{p.Front, p.Back} }

// Tr is a translation drill: two or more language-prefixed entries
// ("EN: Hello", "DE: Hallo").
type Tr struct {
	Entries []string `json:"entries"`
}

func (Tr) Kind() Kind { return KindTr }
func (p Tr) raw() any { return toAnySlice(p.Entries) }

// FillBlank is a cloze exercise. The prompt contains the placeholder marker;
// answers are matched case-insensitively by the runtime.
type FillBlank struct {
	Prompt  string   `json:"prompt"`
	Answers []string `json:"answers"`
}

func (FillBlank) Kind() Kind { return KindFillBlank }
func (p FillBlank) raw() any {
	out := make([]any, 0, len(p.Answers)+1)
	out = append(out, p.Prompt)
	for _, a := range p.Answers {
		out = append(out, a)
	}
	return out
}

// Table is a uniform-width grid; the first row is the header.
type Table struct {
	Rows [][]string `json:"rows"`
}

func (Table) Kind() Kind { return KindTable }
func (p Table) raw() any {
	out := make([]any, 0, len(p.Rows))
	for _, r := range p.Rows {
		out = append(out, toAnySlice(r))
	}
	return out
}

// CompareRow is one left/right pairing of a compare widget.
type CompareRow struct {
	Left  string `json:"left"`
	Right string `json:"right"`
}

// Compare is a two-column comparison; the first row is conventionally the
// column headers.
type Compare struct {
	Rows []CompareRow `json:"rows"`
}

func (Compare) Kind() Kind { return KindCompare }
func (p Compare) raw() any {
	out := make([]any, 0, len(p.Rows))
	for _, r := range p.Rows {
		out = append(out, []any{r.Left, r.Right})
	}
	return out
}

// SwipeCard is one card of a swipe quiz: a statement, the correct swipe
// direction, and feedback shown after answering.
type SwipeCard struct {
	Text     string `json:"text"`
	Right    bool   `json:"right"`
	Feedback string `json:"feedback"`
}

// SwipeCards is a left/right swipe quiz.
type SwipeCards struct {
	Cards []SwipeCard `json:"cards"`
}

func (SwipeCards) Kind() Kind { return KindSwipeCards }
func (p SwipeCards) raw() any {
	out := make([]any, 0, len(p.Cards))
	for _, c := range p.Cards {
		out = append(out, []any{c.Text, c.Right, c.Feedback})
	}
	return out
}

// FreeText is an open writing exercise. SeedLocked is pre-filled text the
// learner cannot edit; exporting seedLocked+userText is a runtime concern.
type FreeText struct {
	Prompt     string `json:"prompt"`
	SeedLocked string `json:"seedLocked,omitempty"`
}

func (FreeText) Kind() Kind { return KindFreeText }
func (p FreeText) raw() any {
	if p.SeedLocked == "" {
		return []any{p.Prompt}
	}
	return []any{p.Prompt, p.SeedLocked}
}

// InputLine is a single-line answer exercise. Matching is case-insensitive
// unless CaseSensitive is set.
type InputLine struct {
	Prompt        string `json:"prompt"`
	Answer        string `json:"answer"`
	CaseSensitive bool   `json:"caseSensitive,omitempty"`
}

func (InputLine) Kind() Kind { return KindInputLine }
func (p InputLine) raw() any {
	if p.CaseSensitive {
		return []any{p.Prompt, p.Answer, true}
	}
	return []any{p.Prompt, p.Answer}
}

// StepNode is one node of a step flow: a plain step (Steps nil) or a labeled
// branch of sub-steps.
type StepNode struct {
	Label string     `json:"label"`
	Steps []StepNode `json:"steps,omitempty"`
}

// StepFlow is an ordered, optionally branching sequence of steps.
type StepFlow struct {
	Steps []StepNode `json:"steps"`
}

func (StepFlow) Kind() Kind { return KindStepFlow }
func (p StepFlow) raw() any { return stepNodesRaw(p.Steps) }

func stepNodesRaw(nodes []StepNode) []any {
	out := make([]any, 0, len(nodes))
	for _, n := range nodes {
		if n.Steps == nil {
			out = append(out, n.Label)
			continue
		}
		out = append(out, []any{n.Label, stepNodesRaw(n.Steps)})
	}
	return out
}

// ASCIIDiagram is a preformatted text diagram with optional alignment.
type ASCIIDiagram struct {
	Text  string `json:"text"`
	Align string `json:"align"` // left, center or right
}

func (ASCIIDiagram) Kind() Kind { return KindASCIIDiagram }
func (p ASCIIDiagram) raw() any {
	if p.Align == defaultDiagramAlign {
		return []any{p.Text}
	}
	return []any{p.Text, p.Align}
}

// ChecklistNode is one entry of a checklist: a checkable leaf (Children nil)
// or a titled group.
type ChecklistNode struct {
	Title    string          `json:"title"`
	Children []ChecklistNode `json:"children,omitempty"`
}

// Checklist is a nested checklist.
type Checklist struct {
	Items []ChecklistNode `json:"items"`
}

func (Checklist) Kind() Kind { return KindChecklist }
func (p Checklist) raw() any { return checklistNodesRaw(p.Items) }

func checklistNodesRaw(nodes []ChecklistNode) []any {
	out := make([]any, 0, len(nodes))
	for _, n := range nodes {
		if n.Children == nil {
			out = append(out, n.Title)
			continue
		}
		out = append(out, []any{n.Title, checklistNodesRaw(n.Children)})
	}
	return out
}

// TermRule is one pattern/response rule of a terminal widget.
type TermRule struct {
	Pattern string `json:"pattern"`
	Level   string `json:"level"`
	Output  string `json:"output"`
}

// InteractiveTerminal is a simulated terminal the learner types into. Rules
// pair input regexes with responses; Level is "ok" or "err".
type InteractiveTerminal struct {
	Welcome string     `json:"welcome,omitempty"`
	Prompt  string     `json:"prompt"`
	Rules   []TermRule `json:"rules"`
}

func (InteractiveTerminal) Kind() Kind { return KindInteractiveTerminal }
func (p InteractiveTerminal) raw() any {
	m := map[string]any{"rules": termRulesRaw(p.Rules)}
	if p.Welcome != "" {
		m["welcome"] = p.Welcome
	}
	if p.Prompt != defaultTermPrompt {
		m["prompt"] = p.Prompt
	}
	return m
}

// TerminalDemo is a scripted terminal playback. Rule tuples are
// [command, level, output]; Level is free-form display metadata here.
type TerminalDemo struct {
	Prompt string     `json:"prompt"`
	Rules  []TermRule `json:"rules"`
}

func (TerminalDemo) Kind() Kind { return KindTerminalDemo }
func (p TerminalDemo) raw() any {
	m := map[string]any{"rules": termRulesRaw(p.Rules)}
	if p.Prompt != defaultTermPrompt {
		m["prompt"] = p.Prompt
	}
	return m
}

func termRulesRaw(rules []TermRule) []any {
	out := make([]any, 0, len(rules))
	for _, r := range rules {
		out = append(out, []any{r.Pattern, r.Level, r.Output})
	}
	return out
}

// CodeEditor is an embedded code editor.
type CodeEditor struct {
	Code     string `json:"code"`
	Lang     string `json:"lang"`
	ReadOnly bool   `json:"readOnly"`
}

func (CodeEditor) Kind() Kind { return KindCodeEditor }
func (p CodeEditor) raw() any {
	switch {
	case p.ReadOnly:
		return []any{p.Code, p.Lang, true}
	case p.Lang != defaultEditorLang:
		return []any{p.Code, p.Lang}
	default:
		return []any{p.Code}
	}
}

// TreeNode is one node of a treeview: a leaf (Children nil) or a named
// subtree.
type TreeNode struct {
	Name     string     `json:"name"`
	Children []TreeNode `json:"children,omitempty"`
}

// TreeView renders a file-tree style hierarchy.
type TreeView struct {
	Root  string     `json:"root"`
	Nodes []TreeNode `json:"nodes"`
}

func (TreeView) Kind() Kind { return KindTreeView }
func (p TreeView) raw() any {
	return map[string]any{"root": p.Root, "nodes": treeNodesRaw(p.Nodes)}
}

func treeNodesRaw(nodes []TreeNode) []any {
	out := make([]any, 0, len(nodes))
	for _, n := range nodes {
		if n.Children == nil {
			out = append(out, n.Name)
			continue
		}
		out = append(out, []any{n.Name, treeNodesRaw(n.Children)})
	}
	return out
}

// MCQ is one multiple-choice question: prompt, choices, index of the correct
// choice and an optional explanation.
type MCQ struct {
	Q   string   `json:"q"`
	C   []string `json:"c"`
	A   int      `json:"a"`
	Why string   `json:"why,omitempty"`
}

// MCQs is a multiple-choice quiz block.
type MCQs struct {
	Questions []MCQ `json:"questions"`
}

func (MCQs) Kind() Kind { return KindMCQs }
func (p MCQs) raw() any {
	qs := make([]any, 0, len(p.Questions))
	for _, q := range p.Questions {
		m := map[string]any{"q": q.Q, "c": toAnySlice(q.C), "a": q.A}
		if q.Why != "" {
			m["why"] = q.Why
		}
		qs = append(qs, m)
	}
	return map[string]any{"questions": qs}
}

func toAnySlice(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
