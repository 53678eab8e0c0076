package main

import (
	"context"
	"errors"
	"io"
	"os"
	"slices"

	"github.com/navijation/njheap/util/heap"
	"github.com/urfave/cli/v3"
)

func topLines(_ context.Context, cmd *cli.Command) error {
	count := int(cmd.Uint("count"))
	if count == 0 {
		return errors.New("usage: top --count N [file ...] with N > 0")
	}

	numeric := cmd.Bool("numeric")
	lines, err := readInputs(cmd.Args().Slice(), numeric)
	if err != nil {
		return err
	}

	return topLinesHelper(os.Stdout, lines, count, numeric)
}

// topLinesHelper writes the count largest lines, largest first. Only count+1
// lines are held in the heap at any time.
func topLinesHelper(writer io.Writer, lines []line, count int, numeric bool) error {
	comparator := lineComparator(numeric)

	// smallest kept line at the root so it can be evicted
	kept := heap.NewHeap(heap.Reverse(comparator))
	for _, entry := range lines {
		kept.Push(entry)
		if kept.Size() > count {
			kept.Pop()
		}
	}

	largest := slices.Collect(kept.Drain())
	slices.Reverse(largest)
	return writeLines(writer, slices.Values(largest))
}
