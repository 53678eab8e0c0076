package main

import (
	"context"
	"io"
	"os"

	"github.com/navijation/njheap/util"
	"github.com/navijation/njheap/util/heap"
	"github.com/urfave/cli/v3"
)

func sortLines(_ context.Context, cmd *cli.Command) error {
	numeric := cmd.Bool("numeric")
	lines, err := readInputs(cmd.Args().Slice(), numeric)
	if err != nil {
		return err
	}

	return sortLinesHelper(os.Stdout, lines, sortOptions{
		numeric: numeric,
		reverse: cmd.Bool("reverse"),
		limit:   int(cmd.Uint("limit")),
	})
}

type sortOptions struct {
	numeric bool
	reverse bool
	limit   int
}

func sortLinesHelper(writer io.Writer, lines []line, options sortOptions) error {
	comparator := lineComparator(options.numeric)
	if !options.reverse {
		comparator = heap.Reverse(comparator)
	}

	sorted := heap.NewHeap(comparator, lines...)
	drained := sorted.Drain()
	if options.limit > 0 {
		drained = util.Take(drained, options.limit)
	}
	return writeLines(writer, drained)
}
