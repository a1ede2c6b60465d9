package lessonkit

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// walker drives one full validation pass. It never short-circuits: every
// container is visited and every diagnostic collected, so authors can fix the
// whole document in one iteration.

func validateLesson(ctx context.Context, raw any, opt ValidateOpt) Result {
	obj, ok := asMap(raw)
	if !ok {
		return Result{Issues: Issues{issueHint("/", CodeInvalidType, "lesson must be an object", map[string]any{"expected": "object"})}}
	}

	var iss Issues
	for k := range obj {
		switch k {
		case "title", "sections":
		default:
			iss = AppendIssues(iss, issueHint("/"+k, CodeUnknownKey, k, nil))
		}
	}

	lesson := &Lesson{}
	if v, ok := obj["title"]; ok {
		if lesson.Title, ok = asString(v); !ok {
			iss = AppendIssues(iss, issueHint("/title", CodeInvalidType, "expected string", map[string]any{"expected": "string"}))
		}
	}

	// a lesson with zero sections is valid and empty, not an error
	rawSections := []any{}
	if v, ok := obj["sections"]; ok {
		if rawSections, ok = asSlice(v); !ok {
			iss = AppendIssues(iss, issueHint("/sections", CodeInvalidType, "expected array", map[string]any{"expected": "array"}))
			rawSections = nil
		}
	}

	lesson.Sections = make([]Section, len(rawSections))
	sectionIss := make([]Issues, len(rawSections))
	if opt.Parallel && len(rawSections) > 1 {
		// sibling sections share no state; merge by index keeps output
		// identical to the sequential pass
		g, gctx := errgroup.WithContext(ctx)
		for i, rawSec := range rawSections {
			i, rawSec := i, rawSec
			g.Go(func() error {
				lesson.Sections[i], sectionIss[i] = validateSection(gctx, rawSec, idxPath("/sections", i))
				return nil
			})
		}
		_ = g.Wait()
	} else {
		for i, rawSec := range rawSections {
			lesson.Sections[i], sectionIss[i] = validateSection(ctx, rawSec, idxPath("/sections", i))
		}
	}
	for _, si := range sectionIss {
		iss = AppendIssues(iss, si...)
	}

	if !opt.DisableStyleChecks {
		iss = AppendIssues(iss, styleIssues(lesson)...)
	}
	return Result{Lesson: lesson, Issues: iss}
}

func validateSection(ctx context.Context, raw any, path string) (Section, Issues) {
	sec := Section{}
	obj, ok := asMap(raw)
	if !ok {
		return sec, Issues{issueHint(path, CodeInvalidType, "section must be an object", map[string]any{"expected": "object"})}
	}

	var iss Issues
	for k := range obj {
		switch k {
		// dividers are accepted on input so a canonical tree re-validates,
		// but they are always recomputed, never trusted
		case "title", "number", "items", "subsections", "dividers":
		default:
			iss = AppendIssues(iss, issueHint(path+"/"+k, CodeUnknownKey, k, nil))
		}
	}

	iss = AppendIssues(iss, titleField(obj, path, &sec.Title)...)

	// number is informational only; normalize any scalar to its display form
	if v, ok := obj["number"]; ok {
		switch n := v.(type) {
		case string:
			sec.Number = n
		case nil:
			// ignore
		default:
			sec.Number = fmt.Sprint(n)
		}
	}

	if v, ok := obj["items"]; ok {
		rawItems, ok := asSlice(v)
		if !ok {
			iss = AppendIssues(iss, issueHint(path+"/items", CodeInvalidType, "expected array", map[string]any{"expected": "array"}))
		} else {
			sec.Items, sec.Dividers, iss = container(rawItems, path+"/items", iss)
		}
	}

	if v, ok := obj["subsections"]; ok {
		rawSubs, ok := asSlice(v)
		if !ok {
			iss = AppendIssues(iss, issueHint(path+"/subsections", CodeInvalidType, "expected array", map[string]any{"expected": "array"}))
		} else {
			sec.Subsections = make([]Subsection, len(rawSubs))
			for i, rawSub := range rawSubs {
				var subIss Issues
				sec.Subsections[i], subIss = validateSubsection(ctx, rawSub, idxPath(path+"/subsections", i))
				iss = AppendIssues(iss, subIss...)
			}
		}
	}
	return sec, iss
}

func validateSubsection(_ context.Context, raw any, path string) (Subsection, Issues) {
	sub := Subsection{}
	obj, ok := asMap(raw)
	if !ok {
		return sub, Issues{issueHint(path, CodeInvalidType, "subsection must be an object", map[string]any{"expected": "object"})}
	}

	var iss Issues
	for k := range obj {
		switch k {
		case "title", "items", "dividers":
		default:
			iss = AppendIssues(iss, issueHint(path+"/"+k, CodeUnknownKey, k, nil))
		}
	}

	iss = AppendIssues(iss, titleField(obj, path, &sub.Title)...)

	if v, ok := obj["items"]; ok {
		rawItems, ok := asSlice(v)
		if !ok {
			iss = AppendIssues(iss, issueHint(path+"/items", CodeInvalidType, "expected array", map[string]any{"expected": "array"}))
		} else {
			sub.Items, sub.Dividers, iss = container(rawItems, path+"/items", iss)
		}
	}
	return sub, iss
}

// container normalizes every raw item independently, then applies the divider
// policy to the successfully normalized subsequence. A failed item contributes
// diagnostics but never aborts its siblings.
func container(rawItems []any, path string, iss Issues) ([]Item, []int, Issues) {
	items := make([]Item, 0, len(rawItems))
	for i, rawItem := range rawItems {
		item, itemIss := NormalizeItem(rawItem, idxPath(path, i))
		if itemIss != nil {
			iss = AppendIssues(iss, itemIss...)
			continue
		}
		items = append(items, item)
	}
	if len(items) == 0 {
		items = nil
	}
	return items, DividerPoints(len(items)), iss
}

func titleField(obj map[string]any, path string, dst *string) Issues {
	v, ok := obj["title"]
	if !ok {
		return Issues{IssueAt(path+"/title", CodeRequired, nil)}
	}
	s, ok := asString(v)
	if !ok {
		return Issues{issueHint(path+"/title", CodeInvalidType, "expected string", map[string]any{"expected": "string"})}
	}
	*dst = s
	return nil
}

// styleIssues runs the Warn-severity authoring guidance pass over the
// normalized tree: the lesson should close with a quiz, and every section
// should carry at least one mcqs block with three or more questions.
func styleIssues(lesson *Lesson) Issues {
	var iss Issues

	if last, lastPath, ok := finalItem(lesson); ok && last.Kind != KindMCQs {
		iss = AppendIssues(iss, issueHint(lastPath, CodeStyleWarning,
			"the lesson should end with an mcqs block", map[string]any{"got": string(last.Kind)}))
	}

	for i, sec := range lesson.Sections {
		if !sectionHasQuiz(sec) {
			iss = AppendIssues(iss, issueHint(idxPath("/sections", i), CodeStyleWarning,
				"section should contain an mcqs block with at least 3 questions", nil))
		}
	}
	return iss
}

// finalItem returns the last item in document order: a section's own items
// render before its subsections.
func finalItem(lesson *Lesson) (Item, string, bool) {
	for si := len(lesson.Sections) - 1; si >= 0; si-- {
		sec := lesson.Sections[si]
		for bi := len(sec.Subsections) - 1; bi >= 0; bi-- {
			if n := len(sec.Subsections[bi].Items); n > 0 {
				return sec.Subsections[bi].Items[n-1], sec.Subsections[bi].Items[n-1].SourcePath, true
			}
		}
		if n := len(sec.Items); n > 0 {
			return sec.Items[n-1], sec.Items[n-1].SourcePath, true
		}
	}
	return Item{}, "", false
}

func sectionHasQuiz(sec Section) bool {
	for _, it := range sec.Items {
		if quizLargeEnough(it) {
			return true
		}
	}
	for _, sub := range sec.Subsections {
		for _, it := range sub.Items {
			if quizLargeEnough(it) {
				return true
			}
		}
	}
	return false
}

func quizLargeEnough(it Item) bool {
	q, ok := it.Payload.(MCQs)
	return ok && len(q.Questions) >= 3
}
