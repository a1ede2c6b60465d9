package cli

import (
	"github.com/spf13/cobra"
)

// App carries shared CLI state resolved once at startup.
type App struct {
	Color bool
}

// NewRootCmd builds the lessonlint command tree.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "lessonlint",
		Short:         "Validate lesson widget documents",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newCheckCmd(app))
	root.AddCommand(newKindsCmd())
	return root
}
