package commands

import (
	"fmt"
	"sync"

	"github.com/spf13/cobra"

	"github.com/truepath/advocates-site/internal/app"
)

// availability is implemented by clipboards that can tell up front whether
// the host supports them.
type availability interface {
	Available() bool
}

func copyZelleCmd(e *env) *cobra.Command {
	var wait bool

	cmd := &cobra.Command{
		Use:   "copy-zelle",
		Short: "Copy the Zelle donation address to the clipboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			zelle, ok := e.site.CopyableDonation()
			if !ok {
				return fmt.Errorf("no copyable donation channel configured")
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, valueStyle.Render(zelle.CopyValue))

			if a, ok := e.clipboard.(availability); ok && !a.Available() {
				fmt.Fprintln(w, mutedStyle.Render(zelle.Hint))
				return nil
			}

			reset := make(chan struct{})

			var once sync.Once

			confirm := app.NewCopyConfirmation(app.CopyConfirmationConfig{
				Text:       zelle.CopyValue,
				Clipboard:  e.clipboard,
				ResetDelay: e.cfg.Site.CopyResetDelay,
				Logger:     e.logger,
				OnChange: func(copied bool) {
					if copied {
						fmt.Fprintln(w, successStyle.Render(app.CopyDoneLabel))
						return
					}

					fmt.Fprintln(w, mutedStyle.Render(app.CopyIdleLabel))
					once.Do(func() { close(reset) })
				},
			})
			defer confirm.Close()

			if !confirm.Copy(cmd.Context()) {
				fmt.Fprintln(w, mutedStyle.Render(zelle.Hint))
				return nil
			}

			if !wait {
				return nil
			}

			select {
			case <-reset:
			case <-cmd.Context().Done():
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&wait, "wait", true, "hold the acknowledgement until it resets before exiting")

	return cmd
}
