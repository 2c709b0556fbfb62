package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/clonecfg/internal/application/usecase"
	"github.com/bnema/clonecfg/internal/cli"
	"github.com/bnema/clonecfg/internal/logging"
)

const flatSuffix = ".flat.json"

var (
	flattenOut  string
	flattenSet  []string
	flattenJobs int
)

var flattenCmd = &cobra.Command{
	Use:   "flatten [file...]",
	Short: "Print or write the flat key/value form of configurations",
	Long: `Flatten one or more configurations without recording a save.

With a single input and no --out the result goes to stdout. With --out
every input is written to <out>/<name>.flat.json. Inputs are processed
concurrently.

Examples:
  clonecfg flatten clone.json
  clonecfg flatten --set privacy.spoofLocation=true clone.json
  clonecfg flatten --out ./flat configs/*.json`,
	RunE: runFlatten,
}

func init() {
	rootCmd.AddCommand(flattenCmd)
	flattenCmd.Flags().StringVarP(&flattenOut, "out", "o", "", "write results to this directory")
	flattenCmd.Flags().StringArrayVar(&flattenSet, "set", nil, "apply category.key=<json> before flattening (repeatable)")
	flattenCmd.Flags().IntVarP(&flattenJobs, "jobs", "j", runtime.NumCPU(), "maximum inputs processed at once")
}

func runFlatten(_ *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	ctx := a.Ctx()

	if len(args) <= 1 && flattenOut == "" {
		payload, err := flattenOne(ctx, a, inputPath(args))
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(payload)
		return err
	}
	if flattenOut == "" {
		return fmt.Errorf("--out is required with more than one input")
	}
	if len(args) == 0 {
		args = []string{""}
	}
	if err := os.MkdirAll(flattenOut, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", flattenOut, err)
	}

	var (
		mu      sync.Mutex
		written []string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(flattenJobs, 1))
	for _, path := range args {
		g.Go(func() error {
			payload, err := flattenOne(gctx, a, path)
			if err != nil {
				return err
			}
			dest := filepath.Join(flattenOut, flatName(path))
			if err := os.WriteFile(dest, payload, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", dest, err)
			}
			mu.Lock()
			written = append(written, dest)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, dest := range written {
		fmt.Println(a.Theme.RenderSuccess(dest))
	}
	return nil
}

func flattenOne(ctx context.Context, a *cli.App, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	src, err := a.Source(path)
	if err != nil {
		return nil, err
	}
	ctx = logging.WithComponent(ctx, "flatten")

	loaded, err := a.LoadSession(ctx, src, "")
	if err != nil {
		return nil, err
	}
	if err := a.ApplyEdits(ctx, loaded.Session, flattenSet); err != nil {
		return nil, fmt.Errorf("%s: %w", src.Location(), err)
	}
	out, err := a.FlattenUC.Execute(ctx, usecase.FlattenConfigInput{Session: loaded.Session})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src.Location(), err)
	}
	logging.FromContext(ctx).Debug().
		Str("source", src.Location()).
		Int("keys", out.Output.Len()).
		Msg("flattened")
	return out.Payload, nil
}

// flatName maps an input path to its output file name. An empty path means
// the configured source.
func flatName(path string) string {
	if path == "" {
		return "source" + flatSuffix
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base)) + flatSuffix
}
