package main

import (
	"fmt"
	"os"

	"tasktrack/internal/config"
	"tasktrack/internal/fsutil"

	"github.com/spf13/cobra"
)

func addConfig(topLevel *cobra.Command, root *rootOptions) {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the config file.",
	}

	force := false
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default config file.",
		Example: `
tasktrack config init
tasktrack config init --force --config ./tasktrack.yaml
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			path := root.resolvedConfigPath()
			if path == "" {
				return fmt.Errorf("cannot determine config location, pass --config")
			}
			if _, err := os.Stat(path); err == nil {
				if !force {
					return fmt.Errorf("%s already exists, use --force to overwrite", path)
				}
				if fsutil.BestEffortBackup(path, 0o600) {
					fmt.Fprintf(cmd.OutOrStdout(), "Previous config saved to %s.bak\n", path)
				}
			}
			if err := config.Default().SaveTo(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Config written to %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the config file location.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), root.resolvedConfigPath())
		},
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective config as YAML.",
		Long: `Print the config after merging the file with defaults and applying
command-line overrides.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			data, err := cfg.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.AddCommand(initCmd, pathCmd, showCmd)
	topLevel.AddCommand(cmd)
}
