package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	lessonkit "github.com/lessonkit/lessonkit"
	"github.com/lessonkit/lessonkit/i18n"
)

func newCheckCmd(app *App) *cobra.Command {
	var (
		lang     string
		quiet    bool
		parallel bool
		noStyle  bool
	)

	cmd := &cobra.Command{
		Use:   "check FILE...",
		Short: "Validate lesson files (JSON or YAML) and report diagnostics",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			i18n.SetLanguage(lang)
			opt := lessonkit.ValidateOpt{Parallel: parallel, DisableStyleChecks: noStyle}

			rejected := 0
			for _, path := range args {
				res, err := checkFile(cmd.Context(), path, opt)
				if err != nil {
					return err
				}
				if !quiet {
					printReport(cmd, app, path, res)
				}
				if !res.Ok() {
					rejected++
				}
			}
			if rejected > 0 {
				return fmt.Errorf("%d of %d file(s) rejected", rejected, len(args))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "en", "diagnostic message language (en, ja)")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress per-file reports; exit status only")
	cmd.Flags().BoolVar(&parallel, "parallel", false, "validate sections concurrently")
	cmd.Flags().BoolVar(&noStyle, "no-style", false, "skip authoring guidance warnings")
	return cmd
}

func checkFile(ctx context.Context, path string, opt lessonkit.ValidateOpt) (lessonkit.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return lessonkit.Result{}, fmt.Errorf("reading %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return lessonkit.ValidateYAML(ctx, data, opt), nil
	default:
		return lessonkit.ValidateBytes(ctx, data, opt), nil
	}
}
