package cmd

import (
	"fmt"

	"github.com/mj1618/wintitle/internal/output"
	"github.com/mj1618/wintitle/internal/platform"
	"github.com/spf13/cobra"
)

// PreviewResult is the output of the `preview` command.
type PreviewResult struct {
	OK     bool   `yaml:"ok"     json:"ok"`
	Out    string `yaml:"out"    json:"out"`
	Title  string `yaml:"title"  json:"title"`
	Width  int    `yaml:"width"  json:"width"`
	Height int    `yaml:"height" json:"height"`
}

// RawText returns the written file path.
func (r PreviewResult) RawText() string { return r.Out }

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render the composed title onto a PNG title bar",
	Long: `Render the composed title onto a title bar image, for checking how a
title reads without opening a window.

Examples:
  wintitle preview --out title.png
  wintitle preview --name notes.txt --size 320x24 --out small.png`,
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
	addTitleFlags(previewCmd)
	previewCmd.Flags().String("out", "", "Output PNG path (required)")
	previewCmd.Flags().String("size", "640x32", "Image size as WxH")
	_ = previewCmd.MarkFlagRequired("out")
}

func runPreview(cmd *cobra.Command, args []string) error {
	out, _ := cmd.Flags().GetString("out")
	sizeStr, _ := cmd.Flags().GetString("size")
	size, err := platform.ParseSize(sizeStr)
	if err != nil {
		return err
	}

	w, err := composeFromFlags(cmd)
	if err != nil {
		return err
	}

	img, err := RenderTitleBar(w.Title, size.Width, size.Height)
	if err != nil {
		return err
	}
	if err := writePNG(out, img); err != nil {
		return fmt.Errorf("write preview: %w", err)
	}
	appLog.Debug("preview written", "out", out)

	return output.Print(PreviewResult{
		OK:     true,
		Out:    out,
		Title:  w.Title,
		Width:  size.Width,
		Height: size.Height,
	})
}
