package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/llrbset/pkg/llrb"
)

func newSortCommand() *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "sort [elements...]",
		Short: "Insert the given elements and drain them in ascending order",
		Long: `Insert the given integer elements (arguments, or stdin when no
arguments are given) into an ordered set and print the distinct
elements in ascending order, one per line.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			elems, err := parseElements(args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			tree, err := buildTree(elems, check)
			if err != nil {
				return err
			}

			sorted, err := drain(tree, check)
			if err != nil {
				return err
			}

			for _, v := range sorted {
				fmt.Fprintln(cmd.OutOrStdout(), v)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "revalidate tree invariants after every operation")

	return cmd
}

// drain empties the tree minimum-first and returns the elements in the
// order they came out.
func drain(tree *llrb.Tree[int64], check bool) ([]int64, error) {
	sorted := make([]int64, 0, tree.Len())

	for {
		v, ok := tree.TakeMin()
		if !ok {
			return sorted, nil
		}

		sorted = append(sorted, v)

		if check {
			if err := tree.Validate(); err != nil {
				return nil, fmt.Errorf("after removing %d: %w", v, err)
			}
		}
	}
}
