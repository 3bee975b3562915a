package cmd

import (
	"github.com/mj1618/wintitle/internal/codec"
	"github.com/mj1618/wintitle/internal/model"
	"github.com/mj1618/wintitle/internal/output"
	"github.com/spf13/cobra"
)

var serializeCmd = &cobra.Command{
	Use:   "serialize",
	Short: "Serialize records to compact JSON",
	Long: `Serialize one record per --name value to compact JSON, one per line.

Examples:
  wintitle serialize --name CIAO
  wintitle serialize --name a --name 'quoted "b"'`,
	RunE: runSerialize,
}

func init() {
	rootCmd.AddCommand(serializeCmd)
	serializeCmd.Flags().StringArray("name", nil, "Record name (repeatable; default from config)")
}

func runSerialize(cmd *cobra.Command, args []string) error {
	names, _ := cmd.Flags().GetStringArray("name")
	if !cmd.Flags().Changed("name") {
		names = []string{appConfig.Title.Name}
	}

	results, err := serializeNames(cmd, names)
	if err != nil {
		return err
	}
	appLog.Debug("records serialized", "count", len(results))
	return output.Print(results)
}

func serializeNames(cmd *cobra.Command, names []string) (output.SerializeResults, error) {
	records := make([]model.Record, len(names))
	for i, n := range names {
		records[i] = model.NewRecord(n)
	}
	texts, err := codec.SerializeAll(cmd.Context(), records)
	if err != nil {
		return nil, err
	}
	results := make(output.SerializeResults, len(names))
	for i := range names {
		results[i] = output.SerializeResult{Name: names[i], Text: texts[i]}
	}
	return results, nil
}
