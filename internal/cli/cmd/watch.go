package cmd

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/clonecfg/internal/application/port"
	"github.com/bnema/clonecfg/internal/cli/styles"
	"github.com/bnema/clonecfg/internal/infrastructure/config"
	"github.com/bnema/clonecfg/internal/infrastructure/sink"
	"github.com/bnema/clonecfg/internal/infrastructure/source"
	"github.com/bnema/clonecfg/internal/infrastructure/watcher"
	"github.com/bnema/clonecfg/internal/logging"
)

var watchOpts saveFlags

var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Save again every time the configuration file changes",
	Long: `Save the configuration once, then watch the file and save again after
every change settles (watch.debounce_ms). Edits from --set are reapplied
on each save. Changes to config.toml output settings are picked up without
restarting.

Stop with Ctrl+C.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	addSaveFlags(watchCmd, &watchOpts)
}

func runWatch(_ *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	ctx := logging.WithComponent(a.Ctx(), "watch")
	log := logging.FromContext(ctx)

	path := inputPath(args)
	if path == "" {
		path = a.Config.Source.Path
	}
	if path == "" {
		return fmt.Errorf("watch needs a file: pass one or set source.path")
	}

	var current atomic.Pointer[config.Config]
	current.Store(a.Config)
	a.Manager.OnConfigChange(func(cfg *config.Config) {
		current.Store(cfg)
		log.Info().Msg("configuration reloaded")
	})
	if err := a.Manager.Watch(); err != nil {
		log.Warn().Err(err).Msg("config file will not be watched")
	}

	fw, err := watcher.New(path, time.Duration(a.Config.Watch.DebounceMs)*time.Millisecond)
	if err != nil {
		return err
	}
	src := source.NewFileSource(fw.Path())
	renderer := styles.NewSavesRenderer(a.Theme)

	saveOnce := func(ctx context.Context) error {
		cfg := current.Load()
		var dst port.ConfigSink
		if watchOpts.outDir != "" {
			dst = sink.NewFileSink(watchOpts.outDir)
		} else {
			dst = sink.Select(ctx, cfg.Output.BridgeCommand, cfg.Output.Dir)
		}
		out, err := saveFrom(ctx, a, src, dst, watchOpts)
		if err != nil {
			return err
		}
		fmt.Println(renderer.RenderSaved(out.packageName, out.Destination, out.KeyCount))
		pruneAfterSave(ctx, a)
		return nil
	}

	if err := saveOnce(ctx); err != nil {
		log.Error().Err(err).Msg("initial save failed")
	}
	fmt.Println(a.Theme.Subtle.Render("Watching " + fw.Path() + " (Ctrl+C to stop)"))
	return fw.Run(ctx, saveOnce)
}
