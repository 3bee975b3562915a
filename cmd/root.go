package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mj1618/wintitle/internal/config"
	"github.com/mj1618/wintitle/internal/logger"
	"github.com/mj1618/wintitle/internal/output"
	"github.com/mj1618/wintitle/internal/version"
	"github.com/spf13/cobra"
)

var (
	// appConfig is the loaded configuration, set by the root command's pre-run.
	appConfig = config.Default()
	// appLog writes diagnostics to stderr when --verbose is set.
	appLog = logger.Nop()
	// newLogger builds appLog from --verbose.
	newLogger = logger.New
)

var rootCmd = &cobra.Command{
	Use:   "wintitle",
	Short: "Serialize a record and append it to a window title",
	Long: `Build a one-field record, serialize it to compact JSON, and append the
result to a base window title:

  wintitle title --base MainWindow --name CIAO
  MainWindow{"Name":"CIAO"}`,
	SilenceUsage: true,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := executeWith(ctx)
	stop()
	appLog.Sync()
	if err != nil {
		os.Exit(1)
	}
}

// executeWith runs the root command and logs its failure. Cobra has
// already printed the error itself.
func executeWith(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		appLog.Error("command failed", "error", err)
	}
	return err
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "", "Output format: raw, yaml, json (default from config, else raw)")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON")
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log diagnostics to stderr")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		flags := rootCmd.PersistentFlags()

		cfgPath, _ := flags.GetString("config")
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		appConfig = cfg

		verbose, _ := flags.GetBool("verbose")
		l, err := newLogger(verbose)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		appLog = l.With("command", cmd.Name())

		// Explicit flags win over the config file.
		format := cfg.Output.Format
		if flags.Changed("format") {
			format, _ = flags.GetString("format")
		}
		f, err := output.ParseFormat(format)
		if err != nil {
			return err
		}
		output.OutputFormat = f

		output.PrettyOutput = cfg.Output.Pretty
		if flags.Changed("pretty") {
			output.PrettyOutput, _ = flags.GetBool("pretty")
		}

		appLog.Debug("config resolved", "config", cfgPath, "format", f, "pretty", output.PrettyOutput)
		return nil
	}
}

// stringFlagOr returns the named flag's value if it was set on the command
// line, and fallback otherwise.
func stringFlagOr(cmd *cobra.Command, name, fallback string) string {
	if cmd.Flags().Changed(name) {
		v, _ := cmd.Flags().GetString(name)
		return v
	}
	return fallback
}
