package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	lessonkit "github.com/lessonkit/lessonkit"
)

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	pathStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	dimStyle  = lipgloss.NewStyle().Faint(true)
)

func printReport(cmd *cobra.Command, app *App, file string, res lessonkit.Result) {
	out := cmd.OutOrStdout()

	verdict := okStyle.Render("ok")
	if !res.Ok() {
		verdict = failStyle.Render("rejected")
	}
	if !app.Color {
		if res.Ok() {
			verdict = "ok"
		} else {
			verdict = "rejected"
		}
	}
	fmt.Fprintf(out, "%s: %s\n", file, verdict)

	for _, it := range res.Issues {
		label := it.Code
		path := it.Path
		if app.Color {
			if it.Severity == lessonkit.Warn {
				label = warnStyle.Render(it.Code)
			} else {
				label = failStyle.Render(it.Code)
			}
			path = pathStyle.Render(path)
		}
		line := fmt.Sprintf("  %s %s %s", label, path, it.Message)
		if it.Hint != "" {
			hint := "(" + it.Hint + ")"
			if app.Color {
				hint = dimStyle.Render(hint)
			}
			line += " " + hint
		}
		fmt.Fprintln(out, line)
	}
}
