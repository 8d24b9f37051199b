package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/nchaloult/passgen/pkg/app"
	"github.com/nchaloult/passgen/pkg/display"
)

var (
	logger = zap.NewNop()
	styles = display.NewStyles(true)
)

// rootOptions holds the flags shared by every subcommand.
type rootOptions struct {
	configPath string
	verbose    bool
	noColor    bool
}

// loadConfig returns the config file named by --config, or the defaults.
func (o *rootOptions) loadConfig() (*app.Config, error) {
	if o.configPath == "" {
		return app.DefaultConfig(), nil
	}
	return app.LoadFromFile(o.configPath)
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "passgen",
		Short: "Generate memorable multi-word passphrases",
		Long: `passgen builds passphrases out of randomly chosen words, randomly capitalizes
them, optionally swaps vowels for look-alike symbols, and rates how strong the
result looks.

The strength rating counts character classes (length, upper case, lower case,
digits, symbols). It's a rule of thumb, not an entropy measurement.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			styles = display.NewStyles(!opts.noColor)

			config := zap.NewProductionConfig()
			config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
			if opts.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "",
		"path to a YAML config file")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false,
		"enable debug logging")
	cmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false,
		"disable colored output")

	cmd.AddCommand(
		newGenerateCmd(opts),
		newCheckCmd(opts),
		newCleanCmd(opts),
		newConfigCmd(opts),
	)

	return cmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt,
		syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		printError(err)
	}
}

func printError(err error) {
	fmt.Fprintln(os.Stderr, styles.Error.Render(fmt.Sprintf("ERROR: %v", err)))
	os.Exit(1)
}
