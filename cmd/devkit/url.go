package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zoobzio/devkit"
)

func newURLCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "url",
		Short: "Percent-encode and decode URI components",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "encode [text]",
		Short: "Percent-encode a URI component",
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			out, err := devkit.EncodeURIComponent(input)
			if err != nil {
				return err
			}
			a.done("url.encode", len(input), len(out))
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "decode [text]",
		Short: "Decode a percent-encoded URI component",
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			out, err := devkit.DecodeURIComponent(input)
			if err != nil {
				return err
			}
			a.done("url.decode", len(input), len(out))
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	})

	return cmd
}
