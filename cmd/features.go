package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/winestats/internal/analysis"
)

var featuresCmd = &cobra.Command{
	Use:   "features",
	Short: "List the features that can be reported",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults := map[string]bool{}
		for _, n := range analysis.DefaultFeatures {
			defaults[n] = true
		}
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tLABEL\tSOURCE\tDEFAULT")
		for _, f := range analysis.Features() {
			mark := ""
			if defaults[f.Name] {
				mark = "yes"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", f.Name, f.Label, f.Description, mark)
		}
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(featuresCmd)
}
