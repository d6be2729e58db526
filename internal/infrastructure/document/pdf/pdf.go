// Package pdf renders planner documents with go-pdf/fpdf: one A4 portrait
// document, one ruled Monday..Friday grid per week block.
package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"weekplan/internal/domain/planner"
	"weekplan/internal/shared/errors"
)

const (
	pageFormat  = "A4"
	dayRowMM    = 10.0 // writing space per weekday row
	headerPadMM = 2.0
)

type Backend struct{}

func NewBackend() *Backend {
	return &Backend{}
}

func (b *Backend) Open(opts planner.Options) (planner.Document, error) {
	path := opts.OutputPath
	if path == "" {
		// interactive mode: the document lands in a temp file and stays there
		path = filepath.Join(os.TempDir(), fmt.Sprintf("weekplan-%d.pdf", time.Now().UnixNano()))
	}

	doc := fpdf.New("P", "mm", pageFormat, "")
	doc.SetTitle("Weekly planner", true)
	doc.SetFont(opts.FontFamily, "", opts.FontSize)
	if doc.Err() {
		return nil, errors.NewBackendUnavailableError("pdf engine rejected the font", doc.Error().Error())
	}
	doc.AddPage()

	return &document{
		pdf: doc,
		// core fonts are cp1252; localized day and month names need the
		// translator to survive
		translate:  doc.UnicodeTranslatorFromDescriptor(""),
		path:       path,
		fontFamily: opts.FontFamily,
		fontSize:   opts.FontSize,
	}, nil
}

type document struct {
	pdf        *fpdf.Fpdf
	translate  func(string) string
	path       string
	fontFamily string
	fontSize   float64
	saved      bool
}

func (d *document) AddWeek(block planner.WeekBlock) error {
	lineHeight := d.fontSize * 0.5

	// a week grid is never split across pages
	blockHeight := 2*(lineHeight+headerPadMM) + float64(len(block.DayLines))*dayRowMM
	_, pageHeight := d.pdf.GetPageSize()
	_, _, _, marginBottom := d.pdf.GetMargins()
	if d.pdf.GetY()+blockHeight > pageHeight-marginBottom {
		d.pdf.AddPage()
	}

	d.pdf.SetFont(d.fontFamily, "B", d.fontSize+2)
	d.pdf.CellFormat(0, lineHeight+headerPadMM, d.translate(block.HeaderText), "", 1, "L", false, 0, "")

	d.pdf.SetFont(d.fontFamily, "I", d.fontSize)
	d.pdf.CellFormat(0, lineHeight+headerPadMM, d.translate(block.SubtitleText), "", 1, "L", false, 0, "")

	d.pdf.SetFont(d.fontFamily, "", d.fontSize)
	for _, line := range block.DayLines {
		text := strings.ReplaceAll(line, "\t", "  ")
		d.pdf.CellFormat(0, dayRowMM, d.translate(text), "1", 1, "LT", false, 0, "")
	}

	return d.err()
}

func (d *document) InsertSectionBreak() error {
	d.pdf.AddPage()
	return d.err()
}

func (d *document) AddSpacing() error {
	d.pdf.Ln(d.fontSize * 0.5)
	return d.err()
}

func (d *document) Save() error {
	if d.saved {
		return nil
	}

	if err := d.pdf.OutputFileAndClose(d.path); err != nil {
		return errors.NewDestinationInvalidError("writing pdf failed", err.Error())
	}
	d.saved = true
	return nil
}

// Close releases the in-memory document. An unsaved document is dropped
// without touching the destination.
func (d *document) Close() error {
	if !d.saved {
		d.pdf.Close()
	}
	return nil
}

func (d *document) Location() string {
	return d.path
}

func (d *document) err() error {
	if d.pdf.Err() {
		return errors.NewInternalError("pdf rendering failed", d.pdf.Error().Error())
	}
	return nil
}
