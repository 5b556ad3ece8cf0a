package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/eringen/webseo"
)

func runHistory(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("history", flag.ContinueOnError)
	historyPath := fs.String("history", "", "SQLite run history database")
	limit := fs.Int("n", 20, "number of runs to list (0 for all)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *historyPath == "" {
		return errors.New("history: -history is required")
	}

	store, err := webseo.NewStore(*historyPath)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.ListRuns(*limit)
	if err != nil {
		return fmt.Errorf("list runs: %w", err)
	}
	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded.")
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "STARTED\tOUTPUT\tSIZE\tSTATUS")
	for _, r := range runs {
		status := "minified"
		switch {
		case r.Warning != "":
			status = "unminified: " + r.Warning
		case !r.Stats.Minified:
			status = "unminified"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.StartedAt.Local().Format(time.DateTime), r.Output, r.Stats, status)
	}
	return tw.Flush()
}
