package main

import (
	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newStatsCommand() *cobra.Command {
	var drainCount int

	cmd := &cobra.Command{
		Use:   "stats [elements...]",
		Short: "Show arena occupancy for the tree holding the given elements",
		Long: `Insert the given integer elements, optionally remove the smallest
--drain of them, and print the arena's slot accounting.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			elems, err := parseElements(args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			tree, err := buildTree(elems, false)
			if err != nil {
				return err
			}

			for range drainCount {
				if _, ok := tree.TakeMin(); !ok {
					break
				}
			}

			stats := tree.Allocator().Stats()

			w := table.NewWriter()
			w.SetOutputMirror(cmd.OutOrStdout())
			w.AppendHeader(table.Row{"Metric", "Value"})
			w.AppendRows([]table.Row{
				{"elements", humanize.Comma(int64(tree.Len()))},
				{"arena slots", humanize.Comma(int64(stats.Slots))},
				{"live slots", humanize.Comma(int64(stats.Live))},
				{"free slots", humanize.Comma(int64(stats.Free))},
				{"footprint", humanize.IBytes(stats.FootprintBytes)},
			})
			w.Render()

			return nil
		},
	}

	cmd.Flags().IntVar(&drainCount, "drain", 0, "remove this many minimum elements before reporting")

	return cmd
}
