package lessonkit_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	lessonkit "github.com/lessonkit/lessonkit"
)

func TestInteractiveTerminal(t *testing.T) {
	item, iss := normalize(t, map[string]any{"interactiveTerminal": map[string]any{
		"welcome": "Try listing files.",
		"rules": []any{
			[]any{`^ls(\s|$)`, "ok", "main.go  go.mod"},
			[]any{`^rm\s`, "err", "permission denied"},
		},
	}})
	require.Nil(t, iss)
	it := item.Payload.(lessonkit.InteractiveTerminal)
	require.Equal(t, "$", it.Prompt) // default
	require.Len(t, it.Rules, 2)

	// level restricted to ok/err
	_, iss = normalize(t, map[string]any{"interactiveTerminal": map[string]any{
		"rules": []any{[]any{"^ls$", "warn", "out"}},
	}})
	requireOnlyCode(t, iss, lessonkit.CodeConstraintViolation)

	// pattern must compile
	_, iss = normalize(t, map[string]any{"interactiveTerminal": map[string]any{
		"rules": []any{[]any{"([", "ok", "out"}},
	}})
	requireOnlyCode(t, iss, lessonkit.CodeConstraintViolation)

	// rules are exactly 3-element tuples
	_, iss = normalize(t, map[string]any{"interactiveTerminal": map[string]any{
		"rules": []any{[]any{"^ls$", "ok"}},
	}})
	requireOnlyCode(t, iss, lessonkit.CodeArityMismatch)

	// rules are required and non-empty
	_, iss = normalize(t, map[string]any{"interactiveTerminal": map[string]any{}})
	requireOnlyCode(t, iss, lessonkit.CodeRequired)

	_, iss = normalize(t, map[string]any{"interactiveTerminal": map[string]any{"rules": []any{}}})
	requireOnlyCode(t, iss, lessonkit.CodeConstraintViolation)
}

func TestTerminalDemo_LevelUnrestricted(t *testing.T) {
	item, iss := normalize(t, map[string]any{"terminalDemo": map[string]any{
		"prompt": "demo$",
		"rules": []any{
			[]any{"go build ./...", "pause", ""},
			[]any{"go test ./...", "type", "ok  \tlessonkit\t0.31s"},
		},
	}})
	require.Nil(t, iss)
	td := item.Payload.(lessonkit.TerminalDemo)
	require.Equal(t, "demo$", td.Prompt)
	require.Len(t, td.Rules, 2)

	// unknown fields are rejected
	_, iss = normalize(t, map[string]any{"terminalDemo": map[string]any{
		"rules":   []any{[]any{"ls", "type", "out"}},
		"welcome": "hi",
	}})
	requireOnlyCode(t, iss, lessonkit.CodeUnknownKey)
}
