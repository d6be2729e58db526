// Package planner turns a requested span of ISO weeks into a sequence of
// rendered planner blocks and drives a document backend through it, deciding
// where section breaks go and how each week's header and date range are
// worded across year boundaries.
package planner

import (
	"time"

	"weekplan/internal/domain/calendar"
)

// BreakKind describes the layout directive preceding a week block.
type BreakKind int

const (
	BreakNone BreakKind = iota
	BreakSectionNewPage
)

// WeekBlock is one week's worth of planner content. Blocks are built by the
// pagination loop and handed to the document immediately; nothing retains
// them afterwards.
type WeekBlock struct {
	Week           calendar.WeekNumber
	Start          time.Time
	End            time.Time
	HeaderText     string
	SubtitleText   string
	DayLines       []string
	PrecedingBreak BreakKind
}

// Options carries the presentation parameters a backend needs to open a
// document. An empty OutputPath asks the backend for its interactive mode:
// the document is written somewhere inspectable (a temp file) and left there.
type Options struct {
	OutputPath string
	FontFamily string
	FontSize   float64
}

// Document is one open output document. Save persists the accumulated
// content to Location; Close releases the backend resources and must be safe
// to call on every exit path, including after Save and after errors. Closing
// an unsaved document drops its content, nothing partial reaches disk.
type Document interface {
	AddWeek(block WeekBlock) error
	InsertSectionBreak() error
	AddSpacing() error
	Save() error
	Close() error

	// Location reports where Save puts the document.
	Location() string
}

// Backend opens documents. Implementations wrap one concrete document
// format; opening may fail when the underlying engine cannot start.
type Backend interface {
	Open(opts Options) (Document, error)
}
