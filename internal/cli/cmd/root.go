// Package cmd provides Cobra CLI commands for clonecfg.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bnema/clonecfg/internal/cli"
	"github.com/bnema/clonecfg/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootOpts  cli.Options
	stopFn    context.CancelFunc

	rootCmd = &cobra.Command{
		Use:   build.AppName,
		Short: "Edit and flatten app cloner configurations",
		Long: `clonecfg loads a hierarchical app cloner configuration, infers which
settings depend on each other, lets you edit values and writes the flat
key/value file the cloner imports.

The input comes from a file argument or from source.path / source.url in
the config file. Saved payloads go to the bridge command when one is
configured, otherwise to output.dir, and every save is kept in a local
history database.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch cmd.Name() {
			case "help", "completion", "version":
				return nil
			}

			var err error
			app, err = cli.NewApp(rootOpts)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			stopFn = stop
			app.WithContext(ctx)
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if stopFn != nil {
				stopFn()
			}
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&rootOpts.ConfigDir, "config-dir", "", "directory holding config.toml (default: XDG config dir)")
	flags.StringVar(&rootOpts.LogLevel, "log-level", "", "override logging.level (trace, debug, info, warn, error)")
	flags.BoolVar(&rootOpts.NoHistory, "no-history", false, "do not open the save history database")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

func requireApp() (*cli.App, error) {
	a := GetApp()
	if a == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return a, nil
}

// inputPath returns the optional positional file argument.
func inputPath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}
