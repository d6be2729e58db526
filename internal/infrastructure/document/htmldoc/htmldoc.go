// Package htmldoc renders planner documents as standalone HTML files with a
// print stylesheet. Week blocks are assembled as GitHub-flavored markdown,
// converted with goldmark and sanitized with bluemonday before the page shell
// is wrapped around them.
package htmldoc

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"weekplan/internal/domain/planner"
	"weekplan/internal/shared/errors"
)

const pageShell = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Weekly planner</title>
<style>
body { font-family: %s, sans-serif; font-size: %.0fpt; max-width: 48em; margin: 2em auto; }
table { border-collapse: collapse; width: 100%%; margin-bottom: 1.5em; }
th, td { border: 1px solid #888; padding: 0.8em 0.5em; text-align: left; }
td:first-child, th:first-child { width: 6em; }
div.page-break { page-break-before: always; break-before: page; }
div.week-spacing { height: 1.5em; }
@media print { body { max-width: none; margin: 0; } }
</style>
</head>
<body>
%s</body>
</html>
`

type Backend struct{}

func NewBackend() *Backend {
	return &Backend{}
}

func (b *Backend) Open(opts planner.Options) (planner.Document, error) {
	path := opts.OutputPath
	if path == "" {
		path = filepath.Join(os.TempDir(), fmt.Sprintf("weekplan-%d.html", time.Now().UnixNano()))
	}

	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Table),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)

	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements("div")
	policy.AllowElements("div")

	return &document{
		md:     md,
		policy: policy,
		path:   path,
		opts:   opts,
	}, nil
}

type document struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
	source strings.Builder
	path   string
	opts   planner.Options
	saved  bool
}

// AddWeek writes one week as a two-column table: header and subtitle in the
// table head, one empty row per workday.
func (d *document) AddWeek(block planner.WeekBlock) error {
	fmt.Fprintf(&d.source, "| %s | %s |\n", escapeCell(block.HeaderText), escapeCell(block.SubtitleText))
	d.source.WriteString("| --- | --- |\n")
	for _, line := range block.DayLines {
		name, _, _ := strings.Cut(line, "\t")
		fmt.Fprintf(&d.source, "| %s | &nbsp; |\n", escapeCell(name))
	}
	d.source.WriteString("\n")
	return nil
}

func (d *document) InsertSectionBreak() error {
	d.source.WriteString("<div class=\"page-break\"></div>\n\n")
	return nil
}

func (d *document) AddSpacing() error {
	d.source.WriteString("<div class=\"week-spacing\"></div>\n\n")
	return nil
}

func (d *document) Save() error {
	if d.saved {
		return nil
	}

	var buf bytes.Buffer
	if err := d.md.Convert([]byte(d.source.String()), &buf); err != nil {
		return errors.NewInternalError("converting planner markdown failed", err.Error())
	}
	body := d.policy.Sanitize(buf.String())

	page := fmt.Sprintf(pageShell, d.opts.FontFamily, d.opts.FontSize, body)
	if err := os.WriteFile(d.path, []byte(page), 0o644); err != nil {
		return errors.NewDestinationInvalidError("writing html failed", err.Error())
	}
	d.saved = true
	return nil
}

// Close drops the accumulated markdown when the document was never saved.
func (d *document) Close() error {
	if !d.saved {
		d.source.Reset()
	}
	return nil
}

func (d *document) Location() string {
	return d.path
}

// escapeCell keeps user-visible text from breaking the table markup.
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
