package cmd

import (
	"fmt"
	"io"

	"github.com/mj1618/wintitle/internal/codec"
	"github.com/mj1618/wintitle/internal/output"
	"github.com/spf13/cobra"
)

var decodeCmd = &cobra.Command{
	Use:   "decode [text]",
	Short: "Decode serialized record text and print its name",
	Long: `Decode a serialized record and print its Name field. Reads stdin when
no argument is given.

Examples:
  wintitle decode '{"Name":"CIAO"}'
  wintitle serialize --name CIAO | wintitle decode`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDecode,
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}

func runDecode(cmd *cobra.Command, args []string) error {
	var text string
	if len(args) == 1 {
		text = args[0]
	} else {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		text = string(data)
	}

	rec, err := codec.Decode(text)
	if err != nil {
		return err
	}
	return output.Print(output.DecodeResult{OK: true, Name: rec.Name()})
}
