package lessonkit_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	lessonkit "github.com/lessonkit/lessonkit"
)

func TestIssues_ErrorSummary(t *testing.T) {
	iss := lessonkit.Issues{
		{Path: "/a", Code: lessonkit.CodeArityMismatch, Severity: lessonkit.Error},
		{Path: "/b", Code: lessonkit.CodeInvalidType, Severity: lessonkit.Error},
		{Path: "/c", Code: lessonkit.CodeRequired, Severity: lessonkit.Error},
		{Path: "/d", Code: lessonkit.CodeUnknownKey, Severity: lessonkit.Error},
	}
	msg := iss.Error()
	require.Contains(t, msg, "arity_mismatch at /a")
	require.Contains(t, msg, "(total 4)")
	// only the first three are spelled out
	require.False(t, strings.Contains(msg, "/d"))
}

func TestAsIssues(t *testing.T) {
	res := lessonkit.Validate(context.Background(), lessonOf(
		section("s", map[string]any{"flip": []any{"x"}}),
	), lessonkit.ValidateOpt{DisableStyleChecks: true})
	err := res.Err()
	require.Error(t, err)

	iss, ok := lessonkit.AsIssues(err)
	require.True(t, ok)
	require.Equal(t, lessonkit.CodeArityMismatch, iss[0].Code)

	// wrapping keeps the extraction working
	iss, ok = lessonkit.AsIssues(fmt.Errorf("validating: %w", err))
	require.True(t, ok)
	require.NotEmpty(t, iss)

	_, ok = lessonkit.AsIssues(nil)
	require.False(t, ok)
}

func TestIssueAt_Severity(t *testing.T) {
	require.Equal(t, lessonkit.Warn, lessonkit.IssueAt("/", lessonkit.CodeStyleWarning, nil).Severity)
	require.Equal(t, lessonkit.Error, lessonkit.IssueAt("/", lessonkit.CodeArityMismatch, nil).Severity)
}

func TestIssues_HasErrors(t *testing.T) {
	warnOnly := lessonkit.Issues{{Code: lessonkit.CodeStyleWarning, Severity: lessonkit.Warn}}
	require.False(t, warnOnly.HasErrors())
	require.Len(t, warnOnly.Warnings(), 1)

	mixed := append(warnOnly, lessonkit.Issue{Code: lessonkit.CodeRequired, Severity: lessonkit.Error})
	require.True(t, mixed.HasErrors())
}
