package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zoobzio/devkit"
)

func newTokenCmd(a *app) *cobra.Command {
	var length, count int
	var charset string
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Generate random tokens",
		Long:  "Charsets: alphanumeric, hex, numeric, symbols.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("length") {
				length = a.cfg.Token.Length
			}
			if !cmd.Flags().Changed("charset") {
				charset = a.cfg.Token.Charset
			}
			if count < 1 {
				return fmt.Errorf("count must be positive, got %d", count)
			}

			spec := devkit.TokenSpec{Length: length, Charset: devkit.Charset(charset)}
			for i := 0; i < count; i++ {
				tok, err := devkit.GenerateToken(spec)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), tok)
			}
			a.done("token.generate", 0, length*count)
			return nil
		},
	}
	cmd.Flags().IntVarP(&length, "length", "l", 0, "Token length (default from config, 32)")
	cmd.Flags().StringVarP(&charset, "charset", "c", "", "Alphabet (default from config, alphanumeric)")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of tokens")
	return cmd
}

func newUUIDCmd(a *app) *cobra.Command {
	var ver, count int
	var simulated bool
	cmd := &cobra.Command{
		Use:   "uuid",
		Short: "Generate UUIDs",
		Long: `Version 4 is random. Version 1 is time-based; with --simulated it is
random bytes carrying version 1 and RFC 4122 variant bits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if count < 1 {
				return fmt.Errorf("count must be positive, got %d", count)
			}

			var gen func() (string, error)
			switch {
			case ver == 4:
				gen = devkit.GenerateUUIDv4
			case ver == 1 && simulated:
				gen = devkit.GenerateUUIDv1Simulated
			case ver == 1:
				gen = devkit.GenerateUUIDv1
			default:
				return fmt.Errorf("unsupported UUID version %d", ver)
			}

			for i := 0; i < count; i++ {
				id, err := gen()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			a.done(fmt.Sprintf("uuid.v%d", ver), 0, count)
			return nil
		},
	}
	cmd.Flags().IntVarP(&ver, "version", "v", 4, "UUID version: 1 or 4")
	cmd.Flags().BoolVar(&simulated, "simulated", false, "Random version 1 UUID")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of UUIDs")
	return cmd
}
