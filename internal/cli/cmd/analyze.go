package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/clonecfg/internal/application/usecase"
	"github.com/bnema/clonecfg/internal/cli/styles"
	"github.com/bnema/clonecfg/internal/logging"
)

var (
	analyzeCategory string
	analyzeTree     bool
	analyzeJSON     bool
	analyzeSet      []string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "List settings with their inferred parent/child roles",
	Long: `Load a configuration, infer setting relationships and print every
setting with a one-line summary of its value.

Examples:
  clonecfg analyze clone.json
  clonecfg analyze clone.json --category privacy --tree
  clonecfg analyze --json | jq '.settings[] | select(.role == "parent")'`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringVarP(&analyzeCategory, "category", "c", "", "only describe this category")
	analyzeCmd.Flags().BoolVarP(&analyzeTree, "tree", "t", false, "list children under their parents")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "print machine-readable JSON")
	analyzeCmd.Flags().StringArrayVar(&analyzeSet, "set", nil, "apply category.key=<json> before describing (repeatable)")
}

type settingJSON struct {
	Category string   `json:"category"`
	Key      string   `json:"key"`
	Kind     string   `json:"kind"`
	Role     string   `json:"role"`
	Parents  []string `json:"parents,omitempty"`
	Children []string `json:"children,omitempty"`
	Summary  string   `json:"summary"`
}

type analyzeJSONOutput struct {
	Source   string        `json:"source"`
	Seeded   []string      `json:"seeded,omitempty"`
	Parents  int           `json:"parents"`
	Children int           `json:"children"`
	Settings []settingJSON `json:"settings"`
}

func runAnalyze(_ *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	ctx := a.Ctx()

	src, err := a.Source(inputPath(args))
	if err != nil {
		return err
	}
	loaded, err := a.LoadSession(ctx, src, "")
	if err != nil {
		return err
	}
	if err := a.ApplyEdits(ctx, loaded.Session, analyzeSet); err != nil {
		return err
	}

	described, err := a.DescribeUC.Execute(ctx, usecase.DescribeSessionInput{
		Session:  loaded.Session,
		Category: analyzeCategory,
	})
	if err != nil {
		return err
	}
	logging.FromContext(ctx).Debug().
		Str("source", src.Location()).
		Int("settings", len(described.Settings)).
		Msg("configuration analyzed")

	if analyzeJSON {
		out := analyzeJSONOutput{
			Source:   src.Location(),
			Seeded:   loaded.Seeded,
			Parents:  described.ParentCount,
			Children: described.ChildCount,
			Settings: make([]settingJSON, len(described.Settings)),
		}
		for i, s := range described.Settings {
			out.Settings[i] = settingJSON{
				Category: s.Category,
				Key:      s.Key,
				Kind:     s.Kind.String(),
				Role:     string(s.Role),
				Parents:  s.Parents,
				Children: s.Children,
				Summary:  s.Summary,
			}
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	rows := make([]styles.SettingRow, len(described.Settings))
	for i, s := range described.Settings {
		rows[i] = styles.SettingRow{
			Category: s.Category,
			Key:      s.Key,
			Role:     string(s.Role),
			Summary:  s.Summary,
			Children: s.Children,
		}
	}
	renderer := styles.NewSettingsRenderer(a.Theme)
	fmt.Println(renderer.Render(rows, analyzeTree))
	fmt.Println()
	fmt.Println(renderer.RenderCounts(len(rows), described.ParentCount, described.ChildCount))
	return nil
}
