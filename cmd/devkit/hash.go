package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zoobzio/devkit"
)

func newHashCmd(a *app) *cobra.Command {
	var algoName, format, file string
	var upper bool
	cmd := &cobra.Command{
		Use:   "hash [text]",
		Short: "Compute a digest of text or a file",
		Long:  "Algorithms: md5, sha1, sha256, sha384, sha512, sha3-256, blake2b-256.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("algo") {
				algoName = a.cfg.Digest.Algorithm
			}
			if !cmd.Flags().Changed("format") {
				format = a.cfg.Digest.Format
			}
			if !cmd.Flags().Changed("upper") {
				upper = a.cfg.Digest.Uppercase
			}

			algo, err := devkit.ParseDigestAlgo(algoName)
			if err != nil {
				return err
			}

			var sum []byte
			var size int
			if file != "" {
				data, err := readBytes(cmd, file)
				if err != nil {
					return err
				}
				size = len(data)
				sum, err = devkit.Digest(algo, data)
				if err != nil {
					return err
				}
			} else {
				input, err := readInput(cmd, args)
				if err != nil {
					return err
				}
				size = len(input)
				sum, err = devkit.Digest(algo, []byte(input))
				if err != nil {
					return err
				}
			}

			out, err := devkit.FormatDigest(sum, devkit.DigestFormat(format), upper)
			if err != nil {
				return err
			}
			a.done("digest."+string(algo), size, len(out))
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&algoName, "algo", "a", "", "Digest algorithm (default from config, sha256)")
	cmd.Flags().StringVar(&format, "format", "", "Output format: hex or base64")
	cmd.Flags().BoolVar(&upper, "upper", false, "Uppercase hex output")
	cmd.Flags().StringVarP(&file, "file", "f", "", "Hash the bytes of a file (- for stdin)")
	return cmd
}
