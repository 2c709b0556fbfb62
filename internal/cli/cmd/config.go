package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bnema/clonecfg/internal/cli/styles"
	"github.com/bnema/clonecfg/internal/infrastructure/config"
)

var (
	schemaOut  string
	resetForce bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show config file location",
	Long: `Print where config.toml lives. A default file and its JSON schema are
created on first run.`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		fmt.Println(styles.NewConfigRenderer(a.Theme).RenderConfigInfo(a.Manager.GetConfigFile()))
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as TOML",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		data, err := config.EncodeConfigOrdered(a.Config)
		if err != nil {
			return err
		}
		renderer := styles.NewConfigRenderer(a.Theme)
		fmt.Println(renderer.RenderBody(a.Manager.GetConfigFile(), string(data)))
		return nil
	},
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print or write the JSON schema for config.toml",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		if schemaOut == "" {
			data, err := config.GenerateSchema()
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		}
		if err := config.WriteSchemaFile(schemaOut); err != nil {
			return err
		}
		fmt.Println(styles.NewConfigRenderer(a.Theme).RenderWritten("schema", schemaOut))
		return nil
	},
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Overwrite config.toml with defaults",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		path := a.Manager.GetConfigFile()
		if !resetForce {
			return fmt.Errorf("this replaces %s; rerun with --force", path)
		}
		if err := a.Manager.Save(config.DefaultConfig()); err != nil {
			return err
		}
		renderer := styles.NewConfigRenderer(a.Theme)
		fmt.Println(renderer.RenderWritten("config", path))

		schemaPath := filepath.Join(a.Manager.ConfigDir(), "config.schema.json")
		if err := config.WriteSchemaFile(schemaPath); err != nil {
			return err
		}
		fmt.Println(renderer.RenderWritten("schema", schemaPath))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd, configSchemaCmd, configResetCmd)

	configSchemaCmd.Flags().StringVarP(&schemaOut, "out", "o", "", "write the schema to this file")
	configResetCmd.Flags().BoolVarP(&resetForce, "force", "f", false, "confirm overwriting")
}
