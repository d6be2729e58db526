package main

import (
	"os"

	"github.com/spf13/cobra"

	"weekplan/internal/interfaces/cli/generate"
	"weekplan/internal/interfaces/cli/languages"
	"weekplan/internal/shared/errors"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "weekplan",
		Short:        "Weekplan - printable weekly planner generator",
		Long:         `Weekplan generates printable work-week planner documents with ISO week numbering and localized day names and date ranges.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		generate.NewCommand(),
		languages.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(errors.ExitCode(err))
	}
}
