package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "recode",
	Short: "Convert data between text encodings",
	Long: `recode converts values between base2, latin1, hex, base64, base64Url,
windows1252, utf16 and utf8, and lists the encoding labels it accepts.`,
	SilenceUsage: true,
}

// Execute runs the root command. Failures are reported on stderr and exit
// with status 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
