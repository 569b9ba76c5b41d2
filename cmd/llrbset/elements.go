package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/Sumatoshi-tech/llrbset/pkg/llrb"
)

// parseElements turns command arguments into int64 elements. With no
// arguments, whitespace-separated elements are read from r instead.
func parseElements(args []string, r io.Reader) ([]int64, error) {
	if len(args) == 0 {
		scanner := bufio.NewScanner(r)
		scanner.Split(bufio.ScanWords)

		for scanner.Scan() {
			args = append(args, scanner.Text())
		}

		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read elements: %w", err)
		}
	}

	elems := make([]int64, 0, len(args))

	for _, arg := range args {
		v, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse element %q: %w", arg, err)
		}

		elems = append(elems, v)
	}

	return elems, nil
}

// buildTree inserts every element into a fresh tree. With check set,
// the tree is revalidated after every insertion.
func buildTree(elems []int64, check bool) (*llrb.Tree[int64], error) {
	tree := llrb.New[int64]()

	for _, e := range elems {
		tree.Insert(e)

		if check {
			if err := tree.Validate(); err != nil {
				return nil, fmt.Errorf("after inserting %d: %w", e, err)
			}
		}
	}

	slog.Debug("tree built", "elements", len(elems), "distinct", tree.Len())

	return tree, nil
}
