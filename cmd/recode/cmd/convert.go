package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/zoobzio/recode"
)

var (
	convertFrom   string
	convertTo     string
	convertBinary bool
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert <value>",
	Short: "Convert a value from one encoding to another",
	Long: `Convert a value from one encoding to another. Pass "-" to read the
value from stdin.

By default the value is text: it is decoded from --from and encoded as --to.
With --binary the value is raw bytes, rendered as --from text and decoded
as --to text, and the result is written to stdout unmodified.

Example:
  recode convert 48656c6c6f --from hex --to base64
  printf 'caf\xc3\xa9' | recode convert - --from utf8 --to latin1 --binary`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := readInput(cmd, args[0])
		if err != nil {
			return err
		}

		from, to := recode.Encoding(convertFrom), recode.Encoding(convertTo)

		if convertBinary {
			out, err := recode.ConvertBytes(input, from, to)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		}

		out, err := recode.ConvertString(string(input), from, to)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

// readInput returns the argument itself, or stdin when it is "-". A single
// trailing newline is dropped from stdin text.
func readInput(cmd *cobra.Command, arg string) ([]byte, error) {
	if arg != "-" {
		return []byte(arg), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	if !convertBinary {
		data = []byte(strings.TrimSuffix(strings.TrimSuffix(string(data), "\n"), "\r"))
	}
	return data, nil
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().StringVarP(&convertFrom, "from", "f", "", "Source encoding label")
	convertCmd.Flags().StringVarP(&convertTo, "to", "t", "", "Destination encoding label")
	convertCmd.Flags().BoolVarP(&convertBinary, "binary", "b", false, "Treat the value as raw bytes")
	_ = convertCmd.MarkFlagRequired("from")
	_ = convertCmd.MarkFlagRequired("to")
}
