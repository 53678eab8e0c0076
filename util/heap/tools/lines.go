package main

import (
	"bufio"
	"cmp"
	"fmt"
	"io"
	"iter"
	"os"
	"strconv"

	"github.com/navijation/njheap/util/heap"
)

// line is a single input line; when sorting numerically, number holds its
// parsed value.
type line struct {
	text   string
	number float64
}

func lineComparator(numeric bool) heap.Comparator[line] {
	if numeric {
		return func(a, b line) int {
			if comp := cmp.Compare(a.number, b.number); comp != 0 {
				return comp
			}
			return cmp.Compare(a.text, b.text)
		}
	}
	return func(a, b line) int {
		return cmp.Compare(a.text, b.text)
	}
}

func readLines(reader io.Reader, name string, numeric bool) ([]line, error) {
	var out []line

	scanner := bufio.NewScanner(reader)
	for lineNumber := 1; scanner.Scan(); lineNumber++ {
		next := line{text: scanner.Text()}
		if numeric {
			number, err := strconv.ParseFloat(next.text, 64)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %q is not a number", name, lineNumber, next.text)
			}
			next.number = number
		}
		out = append(out, next)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	return out, nil
}

// readInputs reads every named file, or stdin when no files are given.
func readInputs(paths []string, numeric bool) ([]line, error) {
	if len(paths) == 0 {
		return readLines(os.Stdin, "stdin", numeric)
	}

	var out []line
	for _, path := range paths {
		lines, err := readFile(path, numeric)
		if err != nil {
			return nil, err
		}
		out = append(out, lines...)
	}
	return out, nil
}

func readFile(path string, numeric bool) ([]line, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %q: %w", path, err)
	}
	defer file.Close()

	return readLines(file, path, numeric)
}

func writeLines(writer io.Writer, lines iter.Seq[line]) error {
	buffered := bufio.NewWriter(writer)
	for entry := range lines {
		if _, err := fmt.Fprintln(buffered, entry.text); err != nil {
			return err
		}
	}
	return buffered.Flush()
}
