// Package cli implements the postie-web command: the browser shell server
// plus terminal helpers that share its pipeline and saved environments.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/shhac/postie/internal/app"
	"github.com/shhac/postie/internal/logging"
	"github.com/shhac/postie/internal/storage"
)

const appName = "postie-web"

// rootOptions holds the persistent flags and what is built from them.
type rootOptions struct {
	configPath  string
	debug       bool
	storagePath string

	cfg    *app.Config
	logger *slog.Logger

	// newLogger is replaced in tests
	newLogger func(debug bool) (*slog.Logger, error)
}

// NewRootCommand builds the postie-web command tree.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&rootOptions{
		newLogger: func(debug bool) (*slog.Logger, error) {
			return logging.InitLogger(appName, debug)
		},
	})
}

func newRootCommand(opts *rootOptions) *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Postie is a lightweight API testing client",
		Long: `Postie sends one HTTP request at a time and shows the formatted response.
Base URLs are saved per environment (development, production).

Run "postie-web serve" for the browser form, or "postie-web send" from a terminal.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (YAML or JSON)")
	flags.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	flags.StringVar(&opts.storagePath, "storage", "", "directory for saved base URLs (default ~/.postie)")

	root.AddCommand(
		newServeCommand(opts),
		newSendCommand(opts),
		newEnvCommand(opts),
		newVersionCommand(),
	)
	return root
}

// load reads config and applies flag overrides. Flags win over config.
func (o *rootOptions) load(cmd *cobra.Command) error {
	cfg, err := app.LoadConfig(o.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("debug") {
		cfg.Debug = o.debug
	}
	if o.storagePath != "" {
		cfg.StoragePath = o.storagePath
	}
	o.cfg = cfg

	logger, err := o.newLogger(cfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	o.logger = logger
	return nil
}

// services wires the pipeline over the file store.
func (o *rootOptions) services() (*app.Services, error) {
	path, err := o.cfg.ResolveStoragePath()
	if err != nil {
		return nil, err
	}
	store := storage.NewFileStore(path, o.logger)
	return app.NewServices(o.cfg, store, o.logger), nil
}
