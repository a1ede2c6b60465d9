package lessonkit

import (
	"regexp"
	"strings"
)

// trPrefixRe: 2-3 letter language code followed by ':' or '-'.
var trPrefixRe = regexp.MustCompile(`^[A-Za-z]{2,3}[:-]`)

func matchMarkdown(raw any, path string) (Payload, Issues) {
	s, ok := asString(raw)
	if !ok {
		return nil, Issues{issueHint(path, CodeInvalidType, "expected string", map[string]any{"expected": "string"})}
	}
	if strings.TrimSpace(s) == "" {
		return nil, Issues{issueHint(path, CodeConstraintViolation, "empty markdown block", nil)}
	}
	return Markdown{Text: s}, nil
}

func matchFlip(raw any, path string) (Payload, Issues) {
	arr, iss := wantSlice(raw, path)
	if iss != nil {
		return nil, iss
	}
	if len(arr) != 2 {
		return nil, arity(len(arr), 2, path)
	}
	front, okF := stringAt(arr, 0, path, &iss)
	back, okB := stringAt(arr, 1, path, &iss)
	if okF {
		ceilAt(front, maxFlipFront, idxPath(path, 0), &iss)
	}
	if okB {
		ceilAt(back, maxFlipBack, idxPath(path, 1), &iss)
	}
	if iss != nil {
		return nil, iss
	}
	return Flip{Front: front, Back: back}, nil
}

func matchTr(raw any, path string) (Payload, Issues) {
	arr, iss := wantSlice(raw, path)
	if iss != nil {
		return nil, iss
	}
	if len(arr) < minTrEntries {
		return nil, arityMin(len(arr), minTrEntries, path)
	}
	entries := make([]string, 0, len(arr))
	for i := range arr {
		s, ok := stringAt(arr, i, path, &iss)
		if !ok {
			continue
		}
		if !trPrefixRe.MatchString(s) {
			iss = AppendIssues(iss, issueHint(idxPath(path, i), CodeConstraintViolation,
				"entry must start with a 2-3 letter language code followed by ':' or '-'", map[string]any{"got": s}))
			continue
		}
		entries = append(entries, s)
	}
	if iss != nil {
		return nil, iss
	}
	return Tr{Entries: entries}, nil
}

func matchFillBlank(raw any, path string) (Payload, Issues) {
	arr, iss := wantSlice(raw, path)
	if iss != nil {
		return nil, iss
	}
	if len(arr) < 2 {
		return nil, arityMin(len(arr), 2, path)
	}
	prompt, okP := stringAt(arr, 0, path, &iss)
	if okP && !strings.Contains(prompt, placeholderMarker) {
		iss = AppendIssues(iss, issueHint(idxPath(path, 0), CodeConstraintViolation,
			"prompt must contain the placeholder marker "+placeholderMarker, nil))
	}
	answers := make([]string, 0, len(arr)-1)
	for i := 1; i < len(arr); i++ {
		a, ok := stringAt(arr, i, path, &iss)
		if !ok {
			continue
		}
		if a == "" {
			iss = AppendIssues(iss, issueHint(idxPath(path, i), CodeConstraintViolation, "empty answer", nil))
			continue
		}
		answers = append(answers, a)
	}
	if iss != nil {
		return nil, iss
	}
	return FillBlank{Prompt: prompt, Answers: answers}, nil
}

func matchFreeText(raw any, path string) (Payload, Issues) {
	arr, iss := wantSlice(raw, path)
	if iss != nil {
		return nil, iss
	}
	if len(arr) < 1 || len(arr) > 2 {
		return nil, arity(len(arr), 1, path)
	}
	prompt, _ := stringAt(arr, 0, path, &iss)
	seed := ""
	if len(arr) == 2 {
		seed, _ = stringAt(arr, 1, path, &iss)
	}
	if iss != nil {
		return nil, iss
	}
	return FreeText{Prompt: prompt, SeedLocked: seed}, nil
}

func matchInputLine(raw any, path string) (Payload, Issues) {
	arr, iss := wantSlice(raw, path)
	if iss != nil {
		return nil, iss
	}
	if len(arr) < 2 || len(arr) > 3 {
		return nil, arity(len(arr), 2, path)
	}
	prompt, _ := stringAt(arr, 0, path, &iss)
	answer, okA := stringAt(arr, 1, path, &iss)
	if okA && answer == "" {
		iss = AppendIssues(iss, issueHint(idxPath(path, 1), CodeConstraintViolation, "empty answer", nil))
	}
	caseSensitive := false
	if len(arr) == 3 {
		b, ok := asBool(arr[2])
		if !ok {
			iss = AppendIssues(iss, issueHint(idxPath(path, 2), CodeInvalidType, "expected bool", map[string]any{"expected": "bool"}))
		}
		caseSensitive = b
	}
	if iss != nil {
		return nil, iss
	}
	return InputLine{Prompt: prompt, Answer: answer, CaseSensitive: caseSensitive}, nil
}

func matchASCIIDiagram(raw any, path string) (Payload, Issues) {
	arr, iss := wantSlice(raw, path)
	if iss != nil {
		return nil, iss
	}
	if len(arr) < 1 || len(arr) > 2 {
		return nil, arity(len(arr), 1, path)
	}
	text, _ := stringAt(arr, 0, path, &iss)
	align := defaultDiagramAlign
	if len(arr) == 2 {
		a, ok := stringAt(arr, 1, path, &iss)
		if ok {
			switch a {
			case "left", "center", "right":
				align = a
			default:
				iss = AppendIssues(iss, issueHint(idxPath(path, 1), CodeConstraintViolation,
					"align must be left, center or right", map[string]any{"got": a}))
			}
		}
	}
	if iss != nil {
		return nil, iss
	}
	return ASCIIDiagram{Text: text, Align: align}, nil
}

func matchCodeEditor(raw any, path string) (Payload, Issues) {
	arr, iss := wantSlice(raw, path)
	if iss != nil {
		return nil, iss
	}
	if len(arr) < 1 || len(arr) > 3 {
		return nil, arity(len(arr), 1, path)
	}
	code, _ := stringAt(arr, 0, path, &iss)
	// defaults applied before constraint checks, never via ambient state
	lang := defaultEditorLang
	readOnly := false
	if len(arr) >= 2 {
		l, ok := stringAt(arr, 1, path, &iss)
		if ok {
			if l == "" {
				iss = AppendIssues(iss, issueHint(idxPath(path, 1), CodeConstraintViolation, "empty language", nil))
			} else {
				lang = l
			}
		}
	}
	if len(arr) == 3 {
		b, ok := asBool(arr[2])
		if !ok {
			iss = AppendIssues(iss, issueHint(idxPath(path, 2), CodeInvalidType, "expected bool", map[string]any{"expected": "bool"}))
		}
		readOnly = b
	}
	if iss != nil {
		return nil, iss
	}
	return CodeEditor{Code: code, Lang: lang, ReadOnly: readOnly}, nil
}
