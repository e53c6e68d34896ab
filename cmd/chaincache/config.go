package main

import (
	"github.com/spf13/cobra"

	"github.com/goran-ethernal/ChainCache/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and migrate configuration files",
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		schema, err := config.GenerateSchema()
		if err != nil {
			return err
		}

		_, err = cmd.OutOrStdout().Write(append(schema, '\n'))
		return err
	},
}

var configUpgradeCmd = &cobra.Command{
	Use:   "upgrade [file]",
	Short: "Print a configuration file upgraded to the current layout",
	Long: `Reads a configuration file of any supported config_spec_version and prints it in the
current layout, in the same format. The file defaults to the --config path.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if len(args) == 1 {
			path = args[0]
		}

		out, err := config.UpgradeFile(path)
		if err != nil {
			return err
		}

		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

func init() {
	configCmd.AddCommand(configSchemaCmd, configUpgradeCmd)
}
