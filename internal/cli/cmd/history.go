package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/bnema/clonecfg/internal/application/usecase"
	"github.com/bnema/clonecfg/internal/cli"
	"github.com/bnema/clonecfg/internal/cli/model"
	"github.com/bnema/clonecfg/internal/cli/styles"
	"github.com/bnema/clonecfg/internal/domain/entity"
)

var (
	historyPackage string
	historyLimit   int
	historyLatest  bool
	historyJSON    bool
	historyPayload bool
	pruneKeep      int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse saved payloads",
	Long: `List previous saves, newest first.

On a terminal this opens an interactive table; press enter on a row to
print its payload. Use --json or pipe the output for plain listings.

Examples:
  clonecfg history
  clonecfg history --package com.example.app --latest --payload > last.json
  clonecfg history --json --limit 5`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

var historyPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete old saves, keeping the newest per package",
	Args:  cobra.NoArgs,
	RunE:  runHistoryPrune,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyPruneCmd)

	historyCmd.Flags().StringVarP(&historyPackage, "package", "p", "", "only show saves for this package")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 50, "maximum saves to list")
	historyCmd.Flags().BoolVar(&historyLatest, "latest", false, "only the newest save of --package")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "print machine-readable JSON")
	historyCmd.Flags().BoolVar(&historyPayload, "payload", false, "print the payload of the newest matching save")

	historyPruneCmd.Flags().IntVar(&pruneKeep, "keep", -1, "saves to keep per package (default: database.keep_per_package)")
}

type saveJSON struct {
	ID          int64  `json:"id"`
	PackageName string `json:"package"`
	Destination string `json:"destination"`
	Digest      string `json:"digest"`
	KeyCount    int    `json:"key_count"`
	Size        int    `json:"size"`
	CreatedAt   string `json:"created_at"`
}

func historyApp() (*cli.App, error) {
	a, err := requireApp()
	if err != nil {
		return nil, err
	}
	if a.ListSavesUC == nil {
		return nil, fmt.Errorf("save history is disabled (database.enabled = false or --no-history)")
	}
	return a, nil
}

func runHistory(_ *cobra.Command, _ []string) error {
	a, err := historyApp()
	if err != nil {
		return err
	}
	if historyLatest && historyPackage == "" {
		return fmt.Errorf("--latest requires --package")
	}
	input := usecase.ListSavesInput{
		PackageName: historyPackage,
		Limit:       historyLimit,
		LatestOnly:  historyLatest,
	}

	interactive := !historyJSON && !historyPayload && isatty.IsTerminal(os.Stdout.Fd())
	if interactive {
		return runHistoryInteractive(a, input)
	}

	out, err := a.ListSavesUC.Execute(a.Ctx(), input)
	if err != nil {
		return err
	}

	switch {
	case historyPayload:
		if len(out.Saves) == 0 {
			return fmt.Errorf("no saves found")
		}
		_, err := os.Stdout.Write(out.Saves[0].Payload)
		return err
	case historyJSON:
		rows := make([]saveJSON, len(out.Saves))
		for i, s := range out.Saves {
			rows[i] = toSaveJSON(s)
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	default:
		fmt.Println(styles.NewSavesRenderer(a.Theme).RenderList(out.Saves))
		return nil
	}
}

func runHistoryInteractive(a *cli.App, input usecase.ListSavesInput) error {
	m := model.NewSavesModel(a.Ctx(), a.Theme, a.ListSavesUC, input)
	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}
	result, ok := final.(model.SavesModel)
	if !ok {
		return nil
	}
	if err := result.Err(); err != nil {
		return err
	}
	if result.Chosen() {
		_, err := os.Stdout.Write(result.Selected().Payload)
		return err
	}
	return nil
}

func runHistoryPrune(_ *cobra.Command, _ []string) error {
	a, err := historyApp()
	if err != nil {
		return err
	}
	keep := pruneKeep
	if keep < 0 {
		keep = a.Config.Database.KeepPerPackage
	}

	deleted, err := a.PruneSavesUC.Execute(a.Ctx(), keep)
	if err != nil {
		return err
	}
	fmt.Println(styles.NewSavesRenderer(a.Theme).RenderPruned(deleted, keep))
	return nil
}

func toSaveJSON(s *entity.SaveRecord) saveJSON {
	return saveJSON{
		ID:          s.ID,
		PackageName: s.PackageName,
		Destination: s.Destination,
		Digest:      s.Digest,
		KeyCount:    s.KeyCount,
		Size:        len(s.Payload),
		CreatedAt:   s.CreatedAt.UTC().Format(time.RFC3339),
	}
}
