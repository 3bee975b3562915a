package cmd

import (
	"github.com/mj1618/wintitle/internal/model"
	"github.com/mj1618/wintitle/internal/output"
	"github.com/mj1618/wintitle/internal/title"
	"github.com/spf13/cobra"
)

var titleCmd = &cobra.Command{
	Use:   "title",
	Short: "Print a base title with a serialized record appended",
	Long: `Serialize a record and append it to the base title with no separator.

Examples:
  wintitle title
  wintitle title --base "Editor - " --name notes.txt
  wintitle title --format yaml`,
	RunE: runTitle,
}

func init() {
	rootCmd.AddCommand(titleCmd)
	addTitleFlags(titleCmd)
}

// addTitleFlags registers --base and --name, shared by every command
// that composes a title.
func addTitleFlags(c *cobra.Command) {
	c.Flags().String("base", title.DefaultBase, "Base title")
	c.Flags().String("name", title.DefaultName, "Record name")
}

// composeFromFlags builds the window title from flags over config.
func composeFromFlags(cmd *cobra.Command) (model.Window, error) {
	base := stringFlagOr(cmd, "base", appConfig.Title.Base)
	name := stringFlagOr(cmd, "name", appConfig.Title.Name)
	w, err := title.ComposeWindow(base, model.NewRecord(name))
	if err != nil {
		return model.Window{}, err
	}
	appLog.Debug("title composed", "base", base, "length", len(w.Title))
	return w, nil
}

func runTitle(cmd *cobra.Command, args []string) error {
	w, err := composeFromFlags(cmd)
	if err != nil {
		return err
	}
	return output.Print(output.TitleResult{
		OK:     true,
		Base:   w.Base,
		Record: w.Record,
		Title:  w.Title,
	})
}
