package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/clonecfg/internal/application/port"
	"github.com/bnema/clonecfg/internal/application/usecase"
	"github.com/bnema/clonecfg/internal/cli"
	"github.com/bnema/clonecfg/internal/cli/styles"
	"github.com/bnema/clonecfg/internal/infrastructure/config"
	"github.com/bnema/clonecfg/internal/logging"
)

// saveFlags are shared by save and watch.
type saveFlags struct {
	packageName string
	splitCount  int
	outDir      string
	set         []string
}

var saveOpts saveFlags

var saveCmd = &cobra.Command{
	Use:   "save [file]",
	Short: "Flatten a configuration and hand it to the cloner",
	Long: `Load a configuration, apply edits, flatten it and save the result.

The payload goes to output.bridge_command when one is configured and
found on PATH, otherwise to output.dir as <package>_cloneSettings.json.
Each save is recorded in the history database, which is then pruned to
database.keep_per_package entries per package.

Examples:
  clonecfg save clone.json --package com.example.app
  clonecfg save --set privacy.spoofLocation=true --set general.name=Work`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSave,
}

func init() {
	rootCmd.AddCommand(saveCmd)
	addSaveFlags(saveCmd, &saveOpts)
}

func addSaveFlags(cmd *cobra.Command, opts *saveFlags) {
	cmd.Flags().StringVarP(&opts.packageName, "package", "p", "", "target package name (default: output.package_name)")
	cmd.Flags().IntVar(&opts.splitCount, "split", 0, "split count passed to the host (default: output.split_count)")
	cmd.Flags().StringVarP(&opts.outDir, "out", "o", "", "write to this directory instead of the configured sink")
	cmd.Flags().StringArrayVar(&opts.set, "set", nil, "apply category.key=<json> before saving (repeatable)")
}

func runSave(_ *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	ctx := a.Ctx()

	src, err := a.Source(inputPath(args))
	if err != nil {
		return err
	}
	out, err := saveFrom(ctx, a, src, a.Sink(saveOpts.outDir), saveOpts)
	if err != nil {
		return err
	}

	renderer := styles.NewSavesRenderer(a.Theme)
	fmt.Println(renderer.RenderSaved(out.packageName, out.Destination, out.KeyCount))

	if deleted := pruneAfterSave(ctx, a); deleted > 0 {
		fmt.Println(renderer.RenderPruned(deleted, a.Config.Database.KeepPerPackage))
	}
	return nil
}

type saveResult struct {
	*usecase.SaveConfigOutput
	packageName string
}

// saveFrom runs one load, edit and save cycle.
func saveFrom(ctx context.Context, a *cli.App, src port.ConfigSource, dst port.ConfigSink, opts saveFlags) (*saveResult, error) {
	if opts.packageName != "" && !config.ValidPackageName(opts.packageName) {
		return nil, fmt.Errorf("invalid package name %q", opts.packageName)
	}

	loaded, err := a.LoadSession(ctx, src, opts.packageName)
	if err != nil {
		return nil, err
	}
	session := loaded.Session
	if opts.splitCount > 0 {
		session.SplitCount = opts.splitCount
	}
	if err := a.ApplyEdits(ctx, session, opts.set); err != nil {
		return nil, err
	}

	out, err := a.SaveUseCase(dst).Execute(ctx, usecase.SaveConfigInput{Session: session})
	if err != nil {
		return nil, err
	}
	return &saveResult{SaveConfigOutput: out, packageName: session.PackageName}, nil
}

// pruneAfterSave trims history. Failures only warn since the save succeeded.
func pruneAfterSave(ctx context.Context, a *cli.App) int64 {
	keep := a.Config.Database.KeepPerPackage
	if a.PruneSavesUC == nil || keep <= 0 {
		return 0
	}
	deleted, err := a.PruneSavesUC.Execute(ctx, keep)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to prune save history")
		return 0
	}
	return deleted
}
