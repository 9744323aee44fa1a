package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zoobzio/devkit"

	// Register document codecs for convert.
	_ "github.com/zoobzio/devkit/bson"
	_ "github.com/zoobzio/devkit/json"
	_ "github.com/zoobzio/devkit/msgpack"
	_ "github.com/zoobzio/devkit/xml"
	_ "github.com/zoobzio/devkit/yaml"
)

func newJSONCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "json",
		Short: "Format, minify, validate and convert documents",
	}
	cmd.AddCommand(
		newJSONFormatCmd(a),
		newJSONMinifyCmd(a),
		newJSONValidateCmd(a),
		newJSONConvertCmd(a),
	)
	return cmd
}

func newJSONFormatCmd(a *app) *cobra.Command {
	var indent int
	cmd := &cobra.Command{
		Use:   "format [json]",
		Short: "Re-indent a JSON document",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("indent") {
				indent = a.cfg.Document.Indent
			}
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			out, err := devkit.FormatJSON(input, indent)
			if err != nil {
				return err
			}
			a.done("document.format", len(input), len(out))
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().IntVarP(&indent, "indent", "i", 0, "Spaces per level, 0 for compact (default from config, 2)")
	return cmd
}

func newJSONMinifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "minify [json]",
		Short: "Strip insignificant whitespace from a JSON document",
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			out, err := devkit.MinifyJSON(input)
			if err != nil {
				return err
			}
			a.done("document.minify", len(input), len(out))
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func newJSONValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [json]",
		Short: "Check that input is well-formed JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			if err := devkit.ValidateJSON(input); err != nil {
				return err
			}
			a.done("document.validate", len(input), 0)
			fmt.Fprintln(cmd.OutOrStdout(), "valid")
			return nil
		},
	}
}

func newJSONConvertCmd(a *app) *cobra.Command {
	var from, to, file string
	cmd := &cobra.Command{
		Use:   "convert [document]",
		Short: "Convert a document between codecs",
		Long:  "Binary formats (msgpack, bson) are best read with --file and redirected on output.",
		Example: `  devkit json convert --to yaml '{"name":"devkit"}'
  devkit json convert --from yaml --to json --file config.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var input []byte
			if file != "" {
				data, err := readBytes(cmd, file)
				if err != nil {
					return err
				}
				input = data
			} else {
				s, err := readInput(cmd, args)
				if err != nil {
					return err
				}
				input = []byte(s)
			}

			out, err := devkit.ConvertDocumentByName(input, from, to)
			if err != nil {
				return err
			}
			a.done("document.convert", len(input), len(out))
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	cmd.Flags().StringVar(&from, "from", "json", "Source codec: "+strings.Join(codecShortNames(), ", "))
	cmd.Flags().StringVar(&to, "to", "yaml", "Target codec")
	cmd.Flags().StringVarP(&file, "file", "f", "", "Read the document from a file (- for stdin)")
	return cmd
}

// codecShortNames lists registered codec names, leaving out content types.
func codecShortNames() []string {
	var names []string
	for _, n := range devkit.CodecNames() {
		if !strings.Contains(n, "/") {
			names = append(names, n)
		}
	}
	return names
}
