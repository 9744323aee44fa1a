package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zoobzio/devkit"
	"github.com/zoobzio/devkit/json"
)

func newRegexCmd(a *app) *cobra.Command {
	var flagSpec, replace string
	var highlight, asJSON bool
	cmd := &cobra.Command{
		Use:   "regex <pattern> [subject]",
		Short: "Evaluate a regular expression against a subject",
		Long: `Flags are given as letters: g (global), i (ignore case), m (multiline),
s (dot matches newline), u (unicode). Match indices count runes.

Replacements use $1, ${name}, $& and $$.`,
		Example: `  devkit regex -f g '\d+' 'a1 b22 c333'
  devkit regex -f g --replace '$2 $1' '(\w+) (\w+)' 'hello world'
  echo 'a1 b2' | devkit regex -f g --highlight '\d'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags, err := devkit.ParseFlags(flagSpec)
			if err != nil {
				return err
			}
			pattern := args[0]
			subject, err := readInput(cmd, args[1:])
			if err != nil {
				return err
			}

			ev := &devkit.RegexEvaluator{Timeout: a.cfg.Regex.Timeout.Duration}
			out := cmd.OutOrStdout()

			if highlight {
				marked, err := ev.Highlight(pattern, flags, subject, devkit.DefaultMarker)
				if err != nil {
					return err
				}
				a.done("regex.highlight", len(subject), len(marked))
				fmt.Fprintln(out, marked)
				return nil
			}

			var repl *string
			if cmd.Flags().Changed("replace") {
				repl = &replace
			}
			result, err := ev.Evaluate(pattern, flags, subject, repl)
			if err != nil {
				return err
			}
			a.done("regex.evaluate", len(subject), len(result.Matches))

			if asJSON {
				data, err := json.NewIndented("  ").Marshal(result)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(data))
				return nil
			}

			fmt.Fprint(out, formatEvaluation(result))
			return nil
		},
	}
	cmd.Flags().StringVarP(&flagSpec, "flags", "f", "", "Flag letters (gimsu)")
	cmd.Flags().StringVar(&replace, "replace", "", "Replacement template")
	cmd.Flags().BoolVar(&highlight, "highlight", false, "Print the subject with matches wrapped in <mark>")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the evaluation as JSON")
	cmd.MarkFlagsMutuallyExclusive("highlight", "replace")
	return cmd
}

// formatEvaluation renders one line per match, its groups indented below,
// then the replaced text when present.
func formatEvaluation(ev devkit.Evaluation) string {
	var b strings.Builder
	if len(ev.Matches) == 0 {
		b.WriteString("no matches\n")
	}
	for i, m := range ev.Matches {
		fmt.Fprintf(&b, "match %d: %q at %d (length %d)\n", i+1, m.Text, m.Index, m.Length)
		for j, g := range m.Groups {
			label := fmt.Sprintf("%d", j+1)
			if g.Name != "" {
				label = g.Name
			}
			if !g.Matched {
				fmt.Fprintf(&b, "  group %s: <unmatched>\n", label)
				continue
			}
			fmt.Fprintf(&b, "  group %s: %q\n", label, g.Value)
		}
	}
	if ev.Replaced != nil {
		fmt.Fprintf(&b, "replaced: %s\n", *ev.Replaced)
	}
	return b.String()
}
