package lessonkit_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	lessonkit "github.com/lessonkit/lessonkit"
)

func TestNormalizeItem_Shorthand(t *testing.T) {
	item, iss := lessonkit.NormalizeItem(map[string]any{"markdown": "# Hello"}, "/sections/0/items/0")
	require.Nil(t, iss)
	require.Equal(t, lessonkit.KindMarkdown, item.Kind)
	require.Equal(t, lessonkit.Markdown{Text: "# Hello"}, item.Payload)
	require.Equal(t, "/sections/0/items/0", item.SourcePath)
}

func TestNormalizeItem_Deterministic(t *testing.T) {
	raw := map[string]any{"flip": []any{"What is Go?", "A programming language"}}
	a, issA := lessonkit.NormalizeItem(raw, "/items/0")
	b, issB := lessonkit.NormalizeItem(raw, "/items/0")
	require.Nil(t, issA)
	require.Nil(t, issB)
	require.Equal(t, a, b)
}

func TestNormalizeItem_TwoShorthandKeys(t *testing.T) {
	_, iss := lessonkit.NormalizeItem(map[string]any{
		"markdown": "text",
		"flip":     []any{"a", "b"},
	}, "/items/0")
	require.Len(t, iss, 1)
	require.Equal(t, lessonkit.CodeMalformedItem, iss[0].Code)
}

func TestNormalizeItem_EmptyObject(t *testing.T) {
	_, iss := lessonkit.NormalizeItem(map[string]any{}, "/items/0")
	require.Len(t, iss, 1)
	require.Equal(t, lessonkit.CodeMalformedItem, iss[0].Code)
}

func TestNormalizeItem_UnknownKey(t *testing.T) {
	_, iss := lessonkit.NormalizeItem(map[string]any{"holo": []any{"x"}}, "/items/0")
	require.Len(t, iss, 1)
	require.Equal(t, lessonkit.CodeMalformedItem, iss[0].Code)
}

func TestNormalizeItem_UnknownType(t *testing.T) {
	_, iss := lessonkit.NormalizeItem(map[string]any{"type": "holo"}, "/items/0")
	require.Len(t, iss, 1)
	require.Equal(t, lessonkit.CodeMalformedItem, iss[0].Code)
}

func TestNormalizeItem_NotAnObject(t *testing.T) {
	_, iss := lessonkit.NormalizeItem("just a string", "/items/0")
	require.Len(t, iss, 1)
	require.Equal(t, lessonkit.CodeMalformedItem, iss[0].Code)
}

func TestNormalizeItem_FullFormObjectKeyed(t *testing.T) {
	item, iss := lessonkit.NormalizeItem(map[string]any{
		"type": "mcqs",
		"questions": []any{
			map[string]any{"q": "2+2?", "c": []any{"3", "4"}, "a": 1},
		},
	}, "/items/0")
	require.Nil(t, iss)
	require.Equal(t, lessonkit.KindMCQs, item.Kind)
	q := item.Payload.(lessonkit.MCQs)
	require.Len(t, q.Questions, 1)
	require.Equal(t, 1, q.Questions[0].A)
}

func TestNormalizeItem_FullFormPositional(t *testing.T) {
	item, iss := lessonkit.NormalizeItem(map[string]any{
		"type":  "flip",
		"value": []any{"front", "back"},
	}, "/items/0")
	require.Nil(t, iss)
	require.Equal(t, lessonkit.Flip{Front: "front", Back: "back"}, item.Payload)

	// the kind's own name works as the value field too
	item, iss = lessonkit.NormalizeItem(map[string]any{
		"type": "flip",
		"flip": []any{"front", "back"},
	}, "/items/0")
	require.Nil(t, iss)
	require.Equal(t, lessonkit.KindFlip, item.Kind)
}

func TestNormalizeItem_FullFormPositionalMissingValue(t *testing.T) {
	_, iss := lessonkit.NormalizeItem(map[string]any{
		"type":  "flip",
		"other": []any{"front", "back"},
	}, "/items/0")
	require.Len(t, iss, 1)
	require.Equal(t, lessonkit.CodeMalformedItem, iss[0].Code)
}

func TestNormalizeItem_MatcherFailureIsAllOrNothing(t *testing.T) {
	item, iss := lessonkit.NormalizeItem(map[string]any{"flip": []any{"only front"}}, "/items/0")
	require.NotNil(t, iss)
	require.Nil(t, item.Payload)
	require.Equal(t, lessonkit.CodeArityMismatch, iss[0].Code)
}
