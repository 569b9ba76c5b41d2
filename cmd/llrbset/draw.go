package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Sumatoshi-tech/llrbset/pkg/treedraw"
)

// Supported draw formats.
const (
	formatTikz  = "tikz"
	formatASCII = "ascii"
)

func newDrawCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "draw [elements...]",
		Short: "Render the tree holding the given elements",
		Long: `Insert the given integer elements and render the resulting tree
structure, either as a TikZ picture for LaTeX documents or as an
indented ASCII outline with red nodes colored.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			elems, err := parseElements(args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			tree, err := buildTree(elems, false)
			if err != nil {
				return err
			}

			switch format {
			case formatTikz:
				fmt.Fprint(cmd.OutOrStdout(), treedraw.Tikz(tree))
			case formatASCII:
				fmt.Fprint(cmd.OutOrStdout(), treedraw.Sketch(tree))
			default:
				return fmt.Errorf("unknown format %q (want %s or %s)", format, formatTikz, formatASCII)
			}

			return nil
		},
	}

	defaultFormat := viper.GetString("format")
	if defaultFormat == "" {
		defaultFormat = formatTikz
	}

	cmd.Flags().StringVarP(&format, "format", "f", defaultFormat,
		"output format: tikz or ascii")

	return cmd
}
