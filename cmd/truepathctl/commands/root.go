// Package commands implements truepathctl: exporting the site as static
// files and copying the Zelle address from a terminal.
package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/truepath/advocates-site/internal/adapters/clipboard"
	"github.com/truepath/advocates-site/internal/content"
	"github.com/truepath/advocates-site/internal/domain"
	"github.com/truepath/advocates-site/internal/platform/config"
	"github.com/truepath/advocates-site/internal/platform/logging"
	"github.com/truepath/advocates-site/internal/ports"
)

// env is what every subcommand works with after the root pre-run.
type env struct {
	configDir string
	profile   string
	logLevel  string

	clipboard ports.Clipboard

	cfg    *config.Config
	site   *domain.Site
	logger *slog.Logger
}

// Execute runs the CLI against the process arguments.
func Execute() error {
	return newRootCmd(&env{clipboard: clipboard.NewSystem()}).Execute()
}

func newRootCmd(e *env) *cobra.Command {
	root := &cobra.Command{
		Use:          "truepathctl",
		Short:        "Operate the TruePath Advocates site",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return e.load(cmd.ErrOrStderr())
		},
	}

	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	root.PersistentFlags().StringVar(&e.configDir, "config-dir", "configs", "directory holding base.yaml and profile files")
	root.PersistentFlags().StringVar(&e.profile, "profile", profile, "config profile to load")
	root.PersistentFlags().StringVar(&e.logLevel, "log-level", "", "override the configured log level")

	root.AddCommand(exportCmd(e), copyZelleCmd(e))

	return root
}

func (e *env) load(stderr io.Writer) error {
	cfg, err := config.LoadFrom(e.configDir, e.profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if e.logLevel != "" {
		cfg.Log.Level = e.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	e.cfg = cfg
	e.logger = logging.NewWithWriter(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  "pretty",
		Service: "truepathctl",
		Version: cfg.App.Version,
	}, stderr)

	e.site = content.New(content.Options{
		BusinessEmail: cfg.Site.BusinessEmail,
		FormEndpoint:  cfg.Site.FormEndpoint,
		NextURL:       cfg.Site.NextURL(),
	})

	return content.Validate(e.site)
}
