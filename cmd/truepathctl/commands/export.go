package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/truepath/advocates-site/internal/export"
	"github.com/truepath/advocates-site/internal/view"
)

func exportCmd(e *env) *cobra.Command {
	var (
		out         string
		concurrency int
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render the site to static files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			files, err := export.Site(cmd.Context(), e.site, export.Config{
				Dir:        out,
				ThanksPath: e.cfg.Site.ThanksPath,
				Page: view.PageOptions{
					Year:           e.cfg.Site.Year,
					CopyResetDelay: e.cfg.Site.CopyResetDelay,
				},
				Concurrency: concurrency,
				Logger:      e.logger,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("Exported %d files to %s", len(files), out)))

			for _, f := range files {
				fmt.Fprintf(w, "  %s %s\n", f.Path, mutedStyle.Render(fmt.Sprintf("(%d bytes)", f.Bytes)))
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "dist", "output directory")
	cmd.Flags().IntVar(&concurrency, "concurrency", export.DefaultConcurrency, "files written in parallel")

	return cmd
}
