package languages

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"weekplan/internal/domain/locale"
)

func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List the supported language tags",
		RunE:  run,
	}
}

func run(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	for _, tag := range locale.ListAvailable() {
		profile, err := locale.Resolve(tag)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", tag, strings.TrimSpace(profile.WeekPrefix), strings.Join(profile.DayNames, " "))
	}
	return w.Flush()
}
