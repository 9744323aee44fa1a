package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zoobzio/devkit"
)

func newBase64Cmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "base64",
		Short: "Encode and decode Base64 and data URLs",
	}
	cmd.AddCommand(
		newBase64EncodeCmd(a),
		newBase64DecodeCmd(a),
		newBase64DataURLCmd(a),
		newBase64ParseCmd(a),
	)
	return cmd
}

func newBase64EncodeCmd(a *app) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "encode [text]",
		Short: "Encode UTF-8 text, or a file with --file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if file != "" {
				data, err := readBytes(cmd, file)
				if err != nil {
					return err
				}
				out := devkit.EncodeBinary(data)
				a.done("base64.encode_binary", len(data), len(out))
				fmt.Fprintln(cmd.OutOrStdout(), out)
				return nil
			}

			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			out, err := devkit.EncodeText(input)
			if err != nil {
				return err
			}
			a.done("base64.encode", len(input), len(out))
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Encode the bytes of a file (- for stdin)")
	return cmd
}

func newBase64DecodeCmd(a *app) *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:   "decode [base64]",
		Short: "Decode Base64 to UTF-8 text, or to raw bytes with --raw",
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			if raw {
				data, err := devkit.DecodeBinary(input)
				if err != nil {
					return err
				}
				a.done("base64.decode_binary", len(input), len(data))
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			out, err := devkit.DecodeText(input)
			if err != nil {
				return err
			}
			a.done("base64.decode", len(input), len(out))
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "Write decoded bytes without UTF-8 validation")
	return cmd
}

func newBase64DataURLCmd(a *app) *cobra.Command {
	var mimeType, file string
	cmd := &cobra.Command{
		Use:   "dataurl [base64]",
		Short: "Wrap a Base64 payload, or a file with --file, as a data URL",
		RunE: func(cmd *cobra.Command, args []string) error {
			if file != "" {
				data, err := readBytes(cmd, file)
				if err != nil {
					return err
				}
				out := devkit.EncodeDataURL(data, mimeType)
				a.done("dataurl.encode", len(data), len(out))
				fmt.Fprintln(cmd.OutOrStdout(), out)
				return nil
			}

			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			mt := mimeType
			if mt == "" {
				mt = "text/plain"
			}
			// Wrapped Base64 is joined into one line before validation.
			out, err := devkit.BuildDataURL(strings.Join(strings.Fields(input), ""), mt)
			if err != nil {
				return err
			}
			a.done("dataurl.build", len(input), len(out))
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&mimeType, "mime", "", "Mime type (default text/plain, or sniffed for --file)")
	cmd.Flags().StringVarP(&file, "file", "f", "", "Encode the bytes of a file (- for stdin)")
	return cmd
}

func newBase64ParseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parse [dataurl]",
		Short: "Split a data URL into mime type and payload",
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			d, err := devkit.ParseDataURL(input)
			if err != nil {
				return err
			}
			a.done("dataurl.parse", len(input), len(d.Base64))
			fmt.Fprintf(cmd.OutOrStdout(), "mime: %s\nbase64: %s\n", d.MimeType, d.Base64)
			return nil
		},
	}
}
