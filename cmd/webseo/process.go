package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/eringen/webseo"
	"github.com/eringen/webseo/internal/log"
)

func runProcess(args []string) error {
	fs := flag.NewFlagSet("process", flag.ContinueOnError)
	var cfg webseo.Config
	fs.StringVar(&cfg.WebsiteConfigPath, "website", webseo.DefaultWebsiteConfigPath, "site/personal info config document")
	fs.StringVar(&cfg.SeoConfigPath, "seo", webseo.DefaultSeoConfigPath, "SEO metadata config document")
	fs.StringVar(&cfg.InputPath, "in", webseo.DefaultInputPath, "HTML template produced by the web build")
	fs.StringVar(&cfg.OutputPath, "out", webseo.DefaultOutputPath, "output HTML file")
	fs.BoolVar(&cfg.SkipMinify, "no-minify", false, "skip HTML minification")
	fs.BoolVar(&cfg.Sitemap, "sitemap", false, "also write sitemap.xml and robots.txt next to the output")
	historyPath := fs.String("history", "", "record the run in this SQLite database")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := []webseo.Option{webseo.WithLogger(log.WithComponent("templater"))}
	if *historyPath != "" {
		store, err := webseo.NewStore(*historyPath)
		if err != nil {
			return err
		}
		defer store.Close()
		opts = append(opts, webseo.WithStore(store))
	}

	_, err := webseo.New(cfg, opts...).Run(ctx)
	return err
}
