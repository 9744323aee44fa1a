package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zoobzio/devkit"
)

func newColorCmd(a *app) *cobra.Command {
	var rgbFlag, hslFlag, format string
	cmd := &cobra.Command{
		Use:   "color [hex]",
		Short: "Convert a color between HEX, RGB and HSL",
		Example: `  devkit color '#3b82f6'
  devkit color --rgb 59,130,246
  devkit color --hsl 217,91,60 --format hex`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var v devkit.ColorValue
			switch {
			case rgbFlag != "":
				ch, err := parseTriple(rgbFlag)
				if err != nil {
					return err
				}
				v = devkit.ColorFromRGB(devkit.RGB{R: ch[0], G: ch[1], B: ch[2]})
			case hslFlag != "":
				ch, err := parseTriple(hslFlag)
				if err != nil {
					return err
				}
				v = devkit.ColorFromHSL(devkit.HSL{H: ch[0], S: ch[1], L: ch[2]})
			default:
				input, err := readInput(cmd, args)
				if err != nil {
					return err
				}
				v, err = devkit.ColorFromHex(strings.TrimSpace(input))
				if err != nil {
					return err
				}
			}

			a.done("color.convert", 0, 0)
			out := cmd.OutOrStdout()
			if format != "" {
				s, err := v.CSS(devkit.ColorFormat(format))
				if err != nil {
					return err
				}
				fmt.Fprintln(out, s)
				return nil
			}
			fmt.Fprintf(out, "hex: %s\nrgb: %s\nhsl: %s\n", v.Hex, v.RGB, v.HSL)
			return nil
		},
	}
	cmd.Flags().StringVar(&rgbFlag, "rgb", "", "Source color as r,g,b")
	cmd.Flags().StringVar(&hslFlag, "hsl", "", "Source color as h,s,l")
	cmd.Flags().StringVar(&format, "format", "", "Print only one rendering: hex, rgb or hsl")
	cmd.MarkFlagsMutuallyExclusive("rgb", "hsl")
	return cmd
}

// parseTriple reads three comma-separated integers.
func parseTriple(s string) ([3]int, error) {
	var out [3]int
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return out, fmt.Errorf("expected three comma-separated values, got %q", s)
	}
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return out, fmt.Errorf("value %q: %w", p, err)
		}
		out[i] = n
	}
	return out, nil
}
