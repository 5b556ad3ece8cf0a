package webseo

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/a-h/templ"
)

// RunsPage renders the run history as a standalone HTML page.
func RunsPage(runs []Run) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!doctype html><html lang="en"><head><meta charset="utf-8"><title>webseo runs</title>`+
			`<style>body{font-family:system-ui,sans-serif;margin:2rem}table{border-collapse:collapse}td,th{padding:.25rem .75rem;border-bottom:1px solid #ddd;text-align:left}.warn{color:#b45309}</style>`+
			`</head><body><h1>Processing runs</h1>`); err != nil {
			return err
		}
		if err := runsTable(runs).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}

func runsTable(runs []Run) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(runs) == 0 {
			_, err := io.WriteString(w, `<p>No runs recorded yet.</p>`)
			return err
		}
		if _, err := io.WriteString(w, `<table><thead><tr><th>Started</th><th>Output</th><th>Size</th><th>Status</th></tr></thead><tbody>`); err != nil {
			return err
		}
		for _, r := range runs {
			if err := runRow(r).Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</tbody></table>`)
		return err
	})
}

func runRow(r Run) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		status := `<td>minified</td>`
		switch {
		case r.Warning != "":
			status = `<td class="warn" title="` + templ.EscapeString(r.Warning) + `">unminified (minifier failed)</td>`
		case !r.Stats.Minified:
			status = `<td>unminified</td>`
		}
		_, err := fmt.Fprintf(w, `<tr id="run-%s"><td>%s</td><td>%s</td><td>%s</td>%s</tr>`,
			templ.EscapeString(r.ID),
			templ.EscapeString(r.StartedAt.Local().Format(time.DateTime)),
			templ.EscapeString(r.Output),
			templ.EscapeString(r.Stats.String()),
			status,
		)
		return err
	})
}
