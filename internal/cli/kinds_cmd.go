package cli

import (
	"sort"

	"github.com/spf13/cobra"

	lessonkit "github.com/lessonkit/lessonkit"
)

func newKindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the supported widget kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds := lessonkit.Kinds()
			sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
			for _, k := range kinds {
				cmd.Println(string(k))
			}
			return nil
		},
	}
}
