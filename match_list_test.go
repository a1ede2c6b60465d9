package lessonkit_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	lessonkit "github.com/lessonkit/lessonkit"
)

func TestTable(t *testing.T) {
	item, iss := normalize(t, map[string]any{"table": []any{
		[]any{"Keyword", "Meaning"},
		[]any{"var", "declares a variable"},
		[]any{"const", "declares a constant"},
	}})
	require.Nil(t, iss)
	tb := item.Payload.(lessonkit.Table)
	require.Len(t, tb.Rows, 3)
	require.Equal(t, []string{"Keyword", "Meaning"}, tb.Rows[0])

	// empty table
	_, iss = normalize(t, map[string]any{"table": []any{}})
	requireOnlyCode(t, iss, lessonkit.CodeConstraintViolation)

	// ragged rows
	_, iss = normalize(t, map[string]any{"table": []any{
		[]any{"a", "b"},
		[]any{"c"},
	}})
	requireOnlyCode(t, iss, lessonkit.CodeConstraintViolation)
	require.Equal(t, "/items/0/table/1", iss[0].Path)
}

func TestCompare(t *testing.T) {
	item, iss := normalize(t, map[string]any{"compare": []any{
		[]any{"Array", "Slice"},
		[]any{"fixed length", "variable length"},
	}})
	require.Nil(t, iss)
	require.Len(t, item.Payload.(lessonkit.Compare).Rows, 2)

	_, iss = normalize(t, map[string]any{"compare": []any{}})
	requireOnlyCode(t, iss, lessonkit.CodeConstraintViolation)

	_, iss = normalize(t, map[string]any{"compare": []any{[]any{"a", "b", "c"}}})
	requireOnlyCode(t, iss, lessonkit.CodeArityMismatch)
}

func TestSwipeCards(t *testing.T) {
	item, iss := normalize(t, map[string]any{"swipecards": []any{
		[]any{"Go has classes", false, "Go has types and methods, not classes"},
		[]any{"Go has goroutines", true, "Right, they are lightweight threads"},
	}})
	require.Nil(t, iss)
	cards := item.Payload.(lessonkit.SwipeCards).Cards
	require.Len(t, cards, 2)
	require.False(t, cards[0].Right)

	// text ceiling is 120, feedback ceiling is 150
	_, iss = normalize(t, map[string]any{"swipecards": []any{
		[]any{strings.Repeat("x", 121), true, "fb"},
	}})
	requireOnlyCode(t, iss, lessonkit.CodeConstraintViolation)

	_, iss = normalize(t, map[string]any{"swipecards": []any{
		[]any{"text", true, strings.Repeat("x", 151)},
	}})
	requireOnlyCode(t, iss, lessonkit.CodeConstraintViolation)

	// direction must be a bool
	_, iss = normalize(t, map[string]any{"swipecards": []any{
		[]any{"text", "right", "fb"},
	}})
	requireOnlyCode(t, iss, lessonkit.CodeInvalidType)

	// card tuples are exactly 3 wide
	_, iss = normalize(t, map[string]any{"swipecards": []any{
		[]any{"text", true},
	}})
	requireOnlyCode(t, iss, lessonkit.CodeArityMismatch)
}
