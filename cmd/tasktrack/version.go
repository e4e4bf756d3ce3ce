package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	goversion "go.hein.dev/go-version"
)

// versionFormats are the encodings go-version knows how to render.
var versionFormats = []string{"json", "yaml"}

func addVersion(topLevel *cobra.Command) {
	var (
		short  bool
		format string
	)
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the tasktrack build version.",
		Long: `Print the version, commit and build date baked in at release time.
Development builds report "dev".`,
		Example: `
tasktrack version
tasktrack version --short
tasktrack version -o yaml
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			f := strings.ToLower(strings.TrimSpace(format))
			if !slices.Contains(versionFormats, f) {
				return fmt.Errorf("invalid output %q, use %s", format, strings.Join(versionFormats, " or "))
			}
			fmt.Fprint(cmd.OutOrStdout(), goversion.FuncWithOutput(short, version, commit, date, f))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&short, "short", "s", false, "print only the version number")
	cmd.Flags().StringVarP(&format, "output", "o", "json", "output format: json or yaml")

	topLevel.AddCommand(cmd)
}
