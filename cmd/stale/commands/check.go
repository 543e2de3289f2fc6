package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [dir]",
		Short: "Report which objects are outdated and why",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			record, err := cmd.Flags().GetBool("record")
			if err != nil {
				return err
			}

			report, err := c.app.Check(cmd.Context(), dir, record)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, d := range report.Decisions {
				if d.Outdated {
					_, _ = fmt.Fprintf(out, "outdated  %s  (%s)\n", d.Ref, d.Reason)
				} else {
					_, _ = fmt.Fprintf(out, "fresh     %s\n", d.Ref)
				}
			}
			_, _ = fmt.Fprintf(out, "%d of %d objects outdated\n", report.OutdatedCount(), len(report.Decisions))
			return nil
		},
	}
	cmd.Flags().Bool("record", false, "Record the current state as the baseline for the next run")
	return cmd
}
