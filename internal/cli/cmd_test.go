package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	app := &App{}
	root := NewRootCmd(app)
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestKindsCmd(t *testing.T) {
	out, err := execute(t, "kinds")
	require.NoError(t, err)
	require.Contains(t, out, "markdown")
	require.Contains(t, out, "interactiveTerminal")
	require.Contains(t, out, "mcqs")
}

func TestCheckCmd_ValidFile(t *testing.T) {
	path := writeFile(t, "lesson.json", `{"sections":[{"title":"s","items":[
		{"mcqs":[
			{"q":"q1","c":["a","b"],"a":0},
			{"q":"q2","c":["a","b"],"a":1},
			{"q":"q3","c":["a","b"],"a":0}
		]}
	]}]}`)
	out, err := execute(t, "check", path)
	require.NoError(t, err)
	require.Contains(t, out, "ok")
}

func TestCheckCmd_RejectedFile(t *testing.T) {
	path := writeFile(t, "bad.json", `{"sections":[{"title":"s","items":[{"flip":["front only"]}]}]}`)
	out, err := execute(t, "check", path)
	require.Error(t, err)
	require.Contains(t, out, "rejected")
	require.Contains(t, out, "arity_mismatch")
}

func TestCheckCmd_YAMLByExtension(t *testing.T) {
	path := writeFile(t, "lesson.yaml", "sections:\n  - title: s\n    items:\n      - markdown: hi\n")
	out, err := execute(t, "check", path, "--no-style")
	require.NoError(t, err)
	require.Contains(t, out, "ok")
}

func TestCheckCmd_MissingFile(t *testing.T) {
	_, err := execute(t, "check", filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}
