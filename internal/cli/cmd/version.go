package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/clonecfg/internal/cli/styles"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	RunE: func(_ *cobra.Command, _ []string) error {
		renderer := styles.NewVersionRenderer(styles.NewTheme())
		fmt.Println(renderer.Render(buildInfo))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
