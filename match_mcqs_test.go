package lessonkit_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	lessonkit "github.com/lessonkit/lessonkit"
)

func TestMCQs_AnswerBounds(t *testing.T) {
	// a == len(c)-1 is the last valid index
	item, iss := normalize(t, map[string]any{"mcqs": []any{
		map[string]any{"q": "Pick the Go keyword", "c": []any{"func", "function", "def"}, "a": 0},
	}})
	require.Nil(t, iss)
	require.Equal(t, 0, item.Payload.(lessonkit.MCQs).Questions[0].A)

	_, iss = normalize(t, map[string]any{"mcqs": []any{
		map[string]any{"q": "q", "c": []any{"x", "y"}, "a": 1},
	}})
	require.Nil(t, iss)

	// a == len(c) is out of bounds
	_, iss = normalize(t, map[string]any{"mcqs": []any{
		map[string]any{"q": "q", "c": []any{"x", "y"}, "a": 2},
	}})
	requireOnlyCode(t, iss, lessonkit.CodeConstraintViolation)

	_, iss = normalize(t, map[string]any{"mcqs": []any{
		map[string]any{"q": "q", "c": []any{"x", "y"}, "a": -1},
	}})
	requireOnlyCode(t, iss, lessonkit.CodeConstraintViolation)
}

func TestMCQs_Shapes(t *testing.T) {
	// object form with a questions field
	item, iss := normalize(t, map[string]any{"mcqs": map[string]any{
		"questions": []any{
			map[string]any{"q": "q1", "c": []any{"a", "b"}, "a": 0, "why": "because"},
		},
	}})
	require.Nil(t, iss)
	require.Equal(t, "because", item.Payload.(lessonkit.MCQs).Questions[0].Why)

	// questions must not be empty
	_, iss = normalize(t, map[string]any{"mcqs": []any{}})
	requireOnlyCode(t, iss, lessonkit.CodeConstraintViolation)

	// at least two choices
	_, iss = normalize(t, map[string]any{"mcqs": []any{
		map[string]any{"q": "q", "c": []any{"only"}, "a": 0},
	}})
	requireOnlyCode(t, iss, lessonkit.CodeConstraintViolation)

	// q, c and a are all required
	_, iss = normalize(t, map[string]any{"mcqs": []any{
		map[string]any{"q": "q", "c": []any{"x", "y"}},
	}})
	requireOnlyCode(t, iss, lessonkit.CodeRequired)

	// a must be an integer
	_, iss = normalize(t, map[string]any{"mcqs": []any{
		map[string]any{"q": "q", "c": []any{"x", "y"}, "a": 0.5},
	}})
	requireOnlyCode(t, iss, lessonkit.CodeInvalidType)
}

func TestMCQs_AllQuestionsReported(t *testing.T) {
	_, iss := normalize(t, map[string]any{"mcqs": []any{
		map[string]any{"q": "bad1", "c": []any{"x", "y"}, "a": 9},
		map[string]any{"q": "ok", "c": []any{"x", "y"}, "a": 0},
		map[string]any{"q": "bad2", "c": []any{"x", "y"}, "a": 7},
	}})
	require.Len(t, iss, 2)
	require.Equal(t, "/items/0/mcqs/0/a", iss[0].Path)
	require.Equal(t, "/items/0/mcqs/2/a", iss[1].Path)
}
