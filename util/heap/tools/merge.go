package main

import (
	"context"
	"errors"
	"io"
	"iter"
	"os"
	"slices"

	"github.com/navijation/njheap/util/heap"
	"github.com/urfave/cli/v3"
)

func mergeFiles(_ context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() < 1 {
		return errors.New("usage: merge file1 [file2 ...]")
	}

	numeric := cmd.Bool("numeric")

	var sources [][]line
	for _, path := range cmd.Args().Slice() {
		lines, err := readFile(path, numeric)
		if err != nil {
			return err
		}
		sources = append(sources, lines)
	}

	return mergeLinesHelper(os.Stdout, sources, numeric)
}

// mergeLinesHelper merges sources that are each already in ascending order.
func mergeLinesHelper(writer io.Writer, sources [][]line, numeric bool) error {
	seqs := make([]iter.Seq[line], 0, len(sources))
	for _, source := range sources {
		seqs = append(seqs, slices.Values(source))
	}

	return writeLines(writer, heap.Merge(lineComparator(numeric), seqs...))
}
