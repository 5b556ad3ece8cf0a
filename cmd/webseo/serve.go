package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/eringen/webseo"
)

func runServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	addr := fs.String("addr", ":8080", "listen address")
	dir := fs.String("dir", "build/web", "directory to serve")
	historyPath := fs.String("history", "", "SQLite run history to expose at "+webseo.RunsPath)
	if err := fs.Parse(args); err != nil {
		return err
	}

	var store *webseo.Store
	if *historyPath != "" {
		s, err := webseo.NewStore(*historyPath)
		if err != nil {
			return err
		}
		defer s.Close()
		store = s
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return webseo.NewServer(*dir, store).ListenAndServe(ctx, *addr)
}
