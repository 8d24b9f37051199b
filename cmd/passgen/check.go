package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nchaloult/passgen/pkg/display"
	"github.com/nchaloult/passgen/pkg/input"
	"github.com/nchaloult/passgen/pkg/strength"
)

func newCheckCmd(root *rootOptions) *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:   "check [passphrase]",
		Short: "Rate the strength of an existing passphrase",
		Long: `Rates a passphrase by counting the character classes it covers: at least
12 characters, upper case, lower case, digits, and symbols. If no passphrase
is given as arguments, you're prompted for one.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("lang") {
				cfg, err := root.loadConfig()
				if err != nil {
					return err
				}
				lang = cfg.Wordlist.Language
			}
			msgs := display.MessagesFor(lang)

			p := strings.Join(args, " ")
			if len(args) == 0 {
				capturer, err := input.NewCapturer(">", msgs.Prompt,
					cmd.InOrStdin(), cmd.OutOrStdout())
				if err != nil {
					return err
				}
				if p, err = capturer.CapturePassphrase(); err != nil {
					return fmt.Errorf("failed to read passphrase: %w", err)
				}
			}

			report := strength.Evaluate(p)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", styles.Label.Render(msgs.Considered),
				styles.Tier(report.Tier()))
			if missing := report.Missing(); len(missing) > 0 {
				fmt.Fprintf(out, "%s %s\n", styles.Label.Render(msgs.Missing),
					strings.Join(missing, ", "))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&lang, "lang", "l", "", "message language")

	return cmd
}
