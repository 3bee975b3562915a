package cmd

import (
	"fmt"

	"github.com/mj1618/wintitle/internal/platform"
	"github.com/spf13/cobra"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Open a desktop window titled with the composed title",
	Long: `Open a native window whose title is the base title with the serialized
record appended. Blocks until the window is closed or the process is
interrupted.

Examples:
  wintitle window
  wintitle window --base "Editor - " --name notes.txt --size 640x200`,
	RunE: runWindow,
}

func init() {
	rootCmd.AddCommand(windowCmd)
	addTitleFlags(windowCmd)
	windowCmd.Flags().String("size", fmt.Sprintf("%dx%d", platform.DefaultWidth, platform.DefaultHeight), "Window size as WxH")
}

func runWindow(cmd *cobra.Command, args []string) error {
	sizeStr, _ := cmd.Flags().GetString("size")
	opts, err := platform.ParseSize(sizeStr)
	if err != nil {
		return err
	}

	// Compose before touching the window system: an encoding error must
	// leave no window behind.
	w, err := composeFromFlags(cmd)
	if err != nil {
		return err
	}

	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}
	if provider.Presenter == nil {
		return fmt.Errorf("window presenter not available on this platform")
	}

	appLog.Info("opening window", "title", w.Title, "width", opts.Width, "height", opts.Height)
	return provider.Presenter.Present(cmd.Context(), w, opts)
}
