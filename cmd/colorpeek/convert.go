package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/colorpeek/colorpeek/internal/color"
)

func newConvertCmd() *cobra.Command {
	var target string

	cmd := &cobra.Command{
		Use:   "convert <color>",
		Short: "Re-serialize a color literal into equivalent notations",
		Long: `Parses a color literal (hex, rgb(a), hsl(a), or a bare "H S% L%"
triple) and prints equivalent representations in priority order for the
format the input was written in. With --to, prints only the requested
format, failing when the color cannot be represented in it (for example
a translucent color as plain hex).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, source, ok := color.Parse(args[0])
			if !ok {
				return fmt.Errorf("unrecognized color: %q", args[0])
			}

			if target != "" {
				format := color.ParseFormat(target)
				if format == color.FormatUnknown {
					return fmt.Errorf("unknown format: %q", target)
				}
				text, ok := color.Serialize(c, format)
				if !ok {
					return fmt.Errorf("%q is not representable as %s", args[0], format)
				}
				cmd.Println(text)
				return nil
			}

			for _, text := range color.Presentations(c, source) {
				cmd.Printf("%s %s\n", swatch(color.Canonical(c)), text)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&target, "to", "", "output format: hex, hex-alpha, rgb, rgba, hsl, hsla, tailwind")
	return cmd
}
