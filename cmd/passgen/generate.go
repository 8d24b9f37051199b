package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/nchaloult/passgen/pkg/app"
	"github.com/nchaloult/passgen/pkg/display"
	"github.com/nchaloult/passgen/pkg/metrics"
	"github.com/nchaloult/passgen/pkg/passphrase"
	"github.com/nchaloult/passgen/pkg/wordlist"
)

type generateOptions struct {
	words      int
	substitute bool
	lang       string
	dir        string
	count      int
	metrics    bool
}

func newGenerateCmd(root *rootOptions) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:     "generate [words] [true|false] [en|es]",
		Aliases: []string{"gen"},
		Short:   "Generate passphrases and rate their strength",
		Long: fmt.Sprintf(`Generates a passphrase and rates its strength.

Positional arguments may be given in any order: a number sets how many words
to use (%d to %d), true or false turns vowel substitution on or off, and a
language code (%s) picks the word list. Flags take precedence over
positional arguments, which take precedence over the config file.`,
			passphrase.MinWords, passphrase.MaxWords,
			strings.Join(wordlist.Languages(), ", ")),
		Example: `  passgen generate
  passgen generate 6 true
  passgen generate 3 es
  passgen generate --words 5 --substitute --count 10`,
		Args: cobra.MaximumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			if err := applyGenerateArgs(cfg, args); err != nil {
				return err
			}
			opts.applyFlags(cmd, cfg)

			return runGenerate(cmd, cfg, opts)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&opts.words, "words", "w", 0, "number of words in the passphrase")
	f.BoolVarP(&opts.substitute, "substitute", "s", false,
		"replace vowels with symbols in some words")
	f.StringVarP(&opts.lang, "lang", "l", "", "word list language")
	f.StringVar(&opts.dir, "dir", "",
		"directory holding words-<lang>.txt (default: built-in lists)")
	f.IntVarP(&opts.count, "count", "n", 1, "number of passphrases to generate")
	f.BoolVar(&opts.metrics, "metrics", false,
		"print generation metrics to stderr when done")

	return cmd
}

// applyGenerateArgs interprets free-order positional arguments.
func applyGenerateArgs(cfg *app.Config, args []string) error {
	langSet := false
	for _, arg := range args {
		lower := strings.ToLower(arg)
		switch {
		case isDigits(arg):
			n, err := strconv.Atoi(arg)
			if err != nil {
				return fmt.Errorf("invalid word count %q: %w", arg, err)
			}
			cfg.Generator.Words = n
		case lower == "true" || lower == "false":
			cfg.Generator.Substitution = lower == "true"
		case wordlist.IsSupported(arg):
			// Only the first language given counts.
			if !langSet {
				cfg.Wordlist.Language = arg
				langSet = true
			}
		default:
			return fmt.Errorf("unrecognized argument %q: expected a word"+
				" count, true/false, or one of: %s", arg,
				strings.Join(wordlist.Languages(), ", "))
		}
	}

	return nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (o *generateOptions) applyFlags(cmd *cobra.Command, cfg *app.Config) {
	f := cmd.Flags()
	if f.Changed("words") {
		cfg.Generator.Words = o.words
	}
	if f.Changed("substitute") {
		cfg.Generator.Substitution = o.substitute
	}
	if f.Changed("lang") {
		cfg.Wordlist.Language = o.lang
	}
	if f.Changed("dir") {
		cfg.Wordlist.Dir = o.dir
	}
}

func runGenerate(cmd *cobra.Command, cfg *app.Config, opts *generateOptions) error {
	var (
		observer passphrase.Observer
		reg      *prometheus.Registry
	)
	if opts.metrics {
		reg = prometheus.NewRegistry()
		observer = metrics.New(reg)
	}

	gc, err := app.NewGenerateConfig(cfg, opts.count, logger, observer)
	if err != nil {
		return err
	}
	results, err := gc.Run()
	if err != nil {
		return err
	}

	msgs := display.MessagesFor(cfg.Wordlist.Language)
	out := cmd.OutOrStdout()
	for _, r := range results {
		fmt.Fprintf(out, "%s %s\n", styles.Label.Render(msgs.Generated),
			styles.Value.Render(r.Passphrase))
		fmt.Fprintf(out, "%s %s\n", styles.Label.Render(msgs.Considered),
			styles.Tier(r.Tier))
	}

	if reg != nil {
		return metrics.WriteText(cmd.ErrOrStderr(), reg)
	}
	return nil
}
