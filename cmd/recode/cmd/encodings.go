package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/zoobzio/recode"
)

// encodingsCmd represents the encodings command
var encodingsCmd = &cobra.Command{
	Use:   "encodings",
	Short: "List accepted encoding labels",
	Long: `List every encoding label recode accepts, next to the codec it
resolves to. Labels are case-sensitive.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "LABEL\tCODEC")
		for _, enc := range recode.Encodings() {
			c, err := recode.Canonical(enc)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%s\t%s\n", enc, c)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(encodingsCmd)
}
