package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zoobzio/devkit"
)

var caseStyles = []devkit.CaseStyle{
	devkit.CaseCamel,
	devkit.CasePascal,
	devkit.CaseSnake,
	devkit.CaseKebab,
	devkit.CaseUpper,
	devkit.CaseLower,
}

func newCaseCmd(a *app) *cobra.Command {
	var style string
	var all bool
	cmd := &cobra.Command{
		Use:   "case [text]",
		Short: "Convert identifier case",
		Long:  "Styles: camel, pascal, snake, kebab, upper, lower.",
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if all {
				for _, s := range caseStyles {
					converted, _ := devkit.ConvertCase(input, s)
					fmt.Fprintf(out, "%s: %s\n", s, converted)
				}
				return nil
			}

			converted, err := devkit.ConvertCase(input, devkit.CaseStyle(style))
			if err != nil {
				return err
			}
			a.done("case."+style, len(input), len(converted))
			fmt.Fprintln(out, converted)
			return nil
		},
	}
	cmd.Flags().StringVarP(&style, "to", "t", string(devkit.CaseCamel), "Target style")
	cmd.Flags().BoolVar(&all, "all", false, "Print every style")
	return cmd
}
