package main

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"
)

func numericFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  "numeric",
		Usage: "compare lines as floating point numbers",
	}
}

func main() {
	app := &cli.Command{
		Name:  "heap_tools",
		Usage: "order text lines with a binary heap",
		Commands: []*cli.Command{
			{
				Name:      "sort",
				Usage:     "sort lines in ascending order",
				ArgsUsage: "[file ...]",
				Action:    sortLines,
				Flags: []cli.Flag{
					numericFlag(),
					&cli.BoolFlag{
						Name:  "reverse",
						Usage: "sort in descending order",
					},
					&cli.UintFlag{
						Name:  "limit",
						Usage: "stop after this many lines (0 for all)",
					},
				},
			},
			{
				Name:      "top",
				Usage:     "print the largest lines in descending order",
				ArgsUsage: "[file ...]",
				Action:    topLines,
				Flags: []cli.Flag{
					numericFlag(),
					&cli.UintFlag{
						Name:        "count",
						DefaultText: "10",
						Value:       10,
						Usage:       "number of lines to keep",
					},
				},
			},
			{
				Name:      "merge",
				Usage:     "merge files whose lines are already sorted",
				ArgsUsage: "file1 [file2 ...]",
				Action:    mergeFiles,
				Flags: []cli.Flag{
					numericFlag(),
				},
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
