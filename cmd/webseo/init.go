package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/eringen/webseo/scaffold"
)

// scaffoldData holds the template variables passed to every scaffold
// template. Values are JSON-string escaped because they land inside
// JSON documents.
type scaffoldData struct {
	SiteName string
	SiteURL  string
	Author   string
	Handle   string
}

func runInit(args []string, out io.Writer) error {
	flags := flag.NewFlagSet("init", flag.ContinueOnError)
	siteName := flags.String("name", "My Site", "site name")
	siteURL := flags.String("url", "https://example.com", "canonical base URL")
	author := flags.String("author", "Jane Doe", "author name")
	handle := flags.String("handle", "janedoe", "social media handle")
	if err := flags.Parse(args); err != nil {
		return err
	}
	dir := "."
	if flags.NArg() > 0 {
		dir = flags.Arg(0)
	}

	data := scaffoldData{
		SiteName: jsonEscape(*siteName),
		SiteURL:  jsonEscape(strings.TrimRight(*siteURL, "/")),
		Author:   jsonEscape(*author),
		Handle:   jsonEscape(strings.TrimPrefix(*handle, "@")),
	}
	return writeScaffold(dir, data, out)
}

// writeScaffold renders every embedded template into dir, keeping the
// relative layout and stripping the .tmpl suffix. Existing files are skipped.
func writeScaffold(dir string, data scaffoldData, out io.Writer) error {
	root := "templates"

	return fs.WalkDir(scaffold.Templates, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		outPath := strings.TrimSuffix(filepath.Join(dir, relPath), ".tmpl")

		if d.IsDir() {
			return os.MkdirAll(outPath, 0o755)
		}

		if _, err := os.Stat(outPath); err == nil {
			fmt.Fprintf(out, "  skipped %s (exists)\n", outPath)
			return nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return err
		}

		content, err := scaffold.Templates.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		tmpl, err := template.New(filepath.Base(path)).Parse(string(content))
		if err != nil {
			return fmt.Errorf("parse template %s: %w", path, err)
		}

		f, err := os.OpenFile(outPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err != nil {
			return fmt.Errorf("create %s: %w", outPath, err)
		}
		defer f.Close()

		if err := tmpl.Execute(f, data); err != nil {
			return fmt.Errorf("execute template %s: %w", path, err)
		}

		fmt.Fprintf(out, "  created %s\n", outPath)
		return nil
	})
}

// jsonEscape returns s escaped for use inside a JSON string literal.
func jsonEscape(s string) string {
	b, _ := json.Marshal(s)
	return string(b[1 : len(b)-1])
}
