// Package cmd implements the imagepipe command line interface.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/imagepipe/imagepipe/envconfig"
)

// appendEnvDocs adds the environment variable documentation to a
// command's help output.
func appendEnvDocs(cmd *cobra.Command) {
	envs := envconfig.AsMap()
	names := make([]string, 0, len(envs))
	for name := range envs {
		names = append(names, name)
	}
	sort.Strings(names)

	envUsage := `
Environment Variables:
`
	for _, name := range names {
		envUsage += fmt.Sprintf("      %-24s   %s\n", name, envs[name].Description)
	}

	cmd.SetUsageTemplate(cmd.UsageTemplate() + envUsage)
}

// NewCLI builds the root command with all subcommands attached.
func NewCLI() *cobra.Command {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: envconfig.LogLevel(),
	})))

	cobra.EnableCommandSorting = false

	rootCmd := &cobra.Command{
		Use:           "imagepipe",
		Short:         "Image preprocessing pipeline for model training and evaluation",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	preprocessCmd := newPreprocessCmd()
	appendEnvDocs(preprocessCmd)

	rootCmd.AddCommand(
		preprocessCmd,
		newDatasetsCmd(),
		newEnvCmd(),
	)

	return rootCmd
}

// newEnvCmd prints the current configuration.
func newEnvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Show imagepipe environment variables",
		RunE: func(cmd *cobra.Command, args []string) error {
			envs := envconfig.AsMap()
			names := make([]string, 0, len(envs))
			for name := range envs {
				names = append(names, name)
			}
			sort.Strings(names)

			for _, name := range names {
				e := envs[name]
				fmt.Fprintf(cmd.OutOrStdout(), "%-24s %v\n", e.Name, e.Value)
			}
			return nil
		},
	}
}
