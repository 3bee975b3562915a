package output

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format represents the output format.
type Format string

const (
	FormatRaw  Format = "raw"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// OutputFormat is the current output format, set by the root command's --format flag.
var OutputFormat Format = FormatRaw

// PrettyOutput enables pretty-printing for JSON output.
var PrettyOutput bool

// ParseFormat converts a --format value to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatRaw, FormatYAML, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported format: %s (use raw, yaml, or json)", s)
	}
}

// RawTexter is implemented by results that have a plain-text rendering
// for the raw format.
type RawTexter interface {
	RawText() string
}

// SerializeResult is the output of serializing one record.
type SerializeResult struct {
	Name string `yaml:"name" json:"name"`
	Text string `yaml:"text" json:"text"`
}

// SerializeResults is the output of the `serialize` command.
type SerializeResults []SerializeResult

// RawText returns one serialized record per line.
func (r SerializeResults) RawText() string {
	lines := make([]string, len(r))
	for i, res := range r {
		lines[i] = res.Text
	}
	return strings.Join(lines, "\n")
}

// TitleResult is the output of the `title` command.
type TitleResult struct {
	OK     bool   `yaml:"ok"     json:"ok"`
	Base   string `yaml:"base"   json:"base"`
	Record string `yaml:"record" json:"record"`
	Title  string `yaml:"title"  json:"title"`
}

// RawText returns the composed title.
func (r TitleResult) RawText() string { return r.Title }

// DecodeResult is the output of the `decode` command.
type DecodeResult struct {
	OK   bool   `yaml:"ok"   json:"ok"`
	Name string `yaml:"name" json:"name"`
}

// RawText returns the decoded name.
func (r DecodeResult) RawText() string { return r.Name }

// Print serializes v to stdout in the current output format.
// In raw format, values without a RawText method fall back to YAML.
func Print(v interface{}) error {
	switch OutputFormat {
	case FormatRaw:
		if t, ok := v.(RawTexter); ok {
			return PrintRaw(t.RawText())
		}
		return PrintYAML(v)
	case FormatJSON:
		if PrettyOutput {
			return PrintPrettyJSON(v)
		}
		return PrintJSON(v)
	case FormatYAML:
		return PrintYAML(v)
	default:
		return fmt.Errorf("unsupported output format: %s", OutputFormat)
	}
}

// PrintRaw writes s and a trailing newline to stdout.
func PrintRaw(s string) error {
	_, err := fmt.Fprintln(os.Stdout, s)
	return err
}

// PrintJSON serializes v to stdout as compact single-line JSON.
func PrintJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// PrintPrettyJSON serializes v to stdout as indented JSON.
func PrintPrettyJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// PrintYAML serializes v to stdout as YAML.
func PrintYAML(v interface{}) error {
	enc := yaml.NewEncoder(os.Stdout)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	return enc.Close()
}
