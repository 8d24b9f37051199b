package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/nchaloult/passgen/pkg/app"
	"github.com/nchaloult/passgen/pkg/display"
)

type cleanOptions struct {
	progress  bool
	minLength int
	maxLength int
	maxRepeat int
	common    []string
}

func newCleanCmd(root *rootOptions) *cobra.Command {
	opts := &cleanOptions{}

	cmd := &cobra.Command{
		Use:   "clean <output> <input>...",
		Short: "Clean raw word lists into a passphrase vocabulary",
		Long: `Reads one word per line from each input, strips punctuation, lowercases,
removes duplicates, words with digits, words with long runs of one letter,
words outside the length bounds, and common words, then writes the survivors
to output one per line. Inputs may be glob patterns such as "raw/**/*.txt".`,
		Example: `  passgen clean words-en.txt 'raw/**/*.txt'
  passgen clean --common hola,adios --progress words-es.txt diccionario.txt`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			opts.applyFlags(cmd, cfg)

			cc, err := app.NewCleanConfig(cfg, args[1:], args[0], logger)
			if err != nil {
				return err
			}

			var progress io.Writer
			if opts.progress {
				progress = cmd.ErrOrStderr()
			}
			stats, err := cc.Run(cmd.Context(), progress)
			if err != nil {
				return err
			}

			msgs := display.MessagesFor(cfg.Wordlist.Language)
			fmt.Fprintln(cmd.OutOrStdout(), styles.Label.Render(
				fmt.Sprintf(msgs.Cleaned, args[0], stats.Kept, stats.Read)))
			return nil
		},
	}

	f := cmd.Flags()
	f.BoolVar(&opts.progress, "progress", false,
		"draw a progress bar per input to stderr")
	f.IntVar(&opts.minLength, "min-length", 0, "shortest word to keep")
	f.IntVar(&opts.maxLength, "max-length", 0, "longest word to keep")
	f.IntVar(&opts.maxRepeat, "max-repeat", 0,
		"longest run of one repeated character to keep")
	f.StringSliceVar(&opts.common, "common", nil, "common words to drop")

	return cmd
}

func (o *cleanOptions) applyFlags(cmd *cobra.Command, cfg *app.Config) {
	f := cmd.Flags()
	if f.Changed("min-length") {
		cfg.Cleaner.MinLength = o.minLength
	}
	if f.Changed("max-length") {
		cfg.Cleaner.MaxLength = o.maxLength
	}
	if f.Changed("max-repeat") {
		cfg.Cleaner.MaxRepeat = o.maxRepeat
	}
	if f.Changed("common") {
		cfg.Cleaner.CommonWords = o.common
	}
}
