package planner

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weekplan/internal/domain/calendar"
	"weekplan/internal/domain/locale"
)

// recordingDocument captures the calls the pagination loop makes, in order.
type recordingDocument struct {
	events  []string
	blocks  []WeekBlock
	failAdd bool
	saved   int
	closed  int
}

func (d *recordingDocument) AddWeek(block WeekBlock) error {
	if d.failAdd {
		return fmt.Errorf("add week failed")
	}
	d.blocks = append(d.blocks, block)
	d.events = append(d.events, fmt.Sprintf("week %d", len(d.blocks)))
	return nil
}

func (d *recordingDocument) InsertSectionBreak() error {
	d.events = append(d.events, "break")
	return nil
}

func (d *recordingDocument) AddSpacing() error {
	d.events = append(d.events, "spacing")
	return nil
}

func (d *recordingDocument) Save() error {
	d.saved++
	return nil
}

func (d *recordingDocument) Close() error {
	d.closed++
	return nil
}

func (d *recordingDocument) Location() string { return "recording" }

func englishProfile(t *testing.T) locale.Profile {
	t.Helper()
	p, err := locale.Resolve("en")
	require.NoError(t, err)
	return p
}

func TestRunPeriodicBreaks(t *testing.T) {
	doc := &recordingDocument{}
	// 9 requested weeks emit 10 blocks (inclusive upper bound)
	r := Range{Year: 2026, FromWeek: 10, NumberOfWeeks: 9, BreakAfter: 3}

	require.NoError(t, Run(r, englishProfile(t), doc, nil))

	assert.Equal(t, []string{
		"week 1", "week 2", "week 3", "break",
		"week 4", "week 5", "week 6", "break",
		"week 7", "week 8", "week 9", "break",
		"week 10",
	}, doc.events, "breaks belong after the 3rd, 6th and 9th block, never after the last")
}

func TestRunBlockCountIsInclusive(t *testing.T) {
	doc := &recordingDocument{}
	r := Range{Year: 2026, FromWeek: 5, NumberOfWeeks: 1, BreakAfter: 0}

	require.NoError(t, Run(r, englishProfile(t), doc, nil))

	assert.Len(t, doc.blocks, 2)
	assert.Equal(t, 2, r.BlockCount())
	assert.Equal(t, calendar.WeekNumber{Year: 2026, Week: 5}, doc.blocks[0].Week)
	assert.Equal(t, calendar.WeekNumber{Year: 2026, Week: 6}, doc.blocks[1].Week)
}

func TestRunSpacingWhenPeriodicBreaksDisabled(t *testing.T) {
	doc := &recordingDocument{}
	// 2025 weeks 50..54: the 4th block straddles Dec 2025 / Jan 2026
	r := Range{Year: 2025, FromWeek: 50, NumberOfWeeks: 4, BreakAfter: 0}

	require.NoError(t, Run(r, englishProfile(t), doc, nil))

	assert.Equal(t, []string{
		"week 1", "spacing", "week 2", "spacing", "week 3",
		"break", "week 4", "spacing", "week 5",
	}, doc.events, "spacing separates blocks not already split by the year-boundary break")
}

func TestRunYearBoundary(t *testing.T) {
	doc := &recordingDocument{}
	// weeks 49..54 of 2025: the periodic break splits 49-51 from 52, then the
	// boundary-straddling week forces its own break and restarts the group
	r := Range{Year: 2025, FromWeek: 49, NumberOfWeeks: 5, BreakAfter: 3}

	require.NoError(t, Run(r, englishProfile(t), doc, nil))
	require.Len(t, doc.blocks, 6)

	assert.Equal(t, []string{
		"week 1", "week 2", "week 3", "break",
		"week 4", "break", "week 5", "week 6",
	}, doc.events)

	boundary := doc.blocks[4]
	assert.Equal(t, BreakSectionNewPage, boundary.PrecedingBreak)
	assert.Equal(t, calendar.WeekNumber{Year: 2026, Week: 1}, boundary.Week,
		"the straddling week is ISO week 1 of the next year")
	assert.Equal(t, "Week 1 (2026)", boundary.HeaderText, "week 1 is annotated with the ending year")
	assert.Equal(t, "December 29, 2025 - January 2, 2026", boundary.SubtitleText)

	next := doc.blocks[5]
	assert.Equal(t, BreakNone, next.PrecedingBreak)
	assert.Equal(t, "Week 2 (2026)", next.HeaderText,
		"the week after the boundary sits at group position 2 and flags the rollover")
}

func TestRunFirstBlockNeverBreaks(t *testing.T) {
	doc := &recordingDocument{}
	// the very first block already straddles the year boundary
	r := Range{Year: 2025, FromWeek: 53, NumberOfWeeks: 1, BreakAfter: 3}

	require.NoError(t, Run(r, englishProfile(t), doc, nil))
	require.NotEmpty(t, doc.blocks)

	assert.Equal(t, "week 1", doc.events[0])
	assert.Equal(t, BreakNone, doc.blocks[0].PrecedingBreak)
}

func TestRunYearBreakPreemptsPeriodicBreak(t *testing.T) {
	doc := &recordingDocument{}
	// weeks 51..54 of 2025: the boundary week would also be the 3rd of its
	// group, but the year-boundary break resets the cursor first, so the
	// block is broken once, before, and never after
	r := Range{Year: 2025, FromWeek: 51, NumberOfWeeks: 3, BreakAfter: 3}

	require.NoError(t, Run(r, englishProfile(t), doc, nil))

	assert.Equal(t, []string{
		"week 1", "week 2", "break", "week 3", "week 4",
	}, doc.events)
	assert.Equal(t, BreakSectionNewPage, doc.blocks[2].PrecedingBreak)
}

func TestRunBoundaryWeekAtGroupStartGetsNoExtraBreak(t *testing.T) {
	doc := &recordingDocument{}
	// weeks 50..53 of 2025: the periodic break after block 3 already puts the
	// boundary week at position 1 of a fresh group; the year-boundary rule
	// must not fire again
	r := Range{Year: 2025, FromWeek: 50, NumberOfWeeks: 3, BreakAfter: 3}

	require.NoError(t, Run(r, englishProfile(t), doc, nil))

	assert.Equal(t, []string{
		"week 1", "week 2", "week 3", "break", "week 4",
	}, doc.events)
	assert.Equal(t, BreakNone, doc.blocks[3].PrecedingBreak)
	assert.Equal(t, "Week 1 (2026)", doc.blocks[3].HeaderText,
		"the boundary week still opens its group with a year annotation")
}

func TestRunHeaderForWeek53(t *testing.T) {
	doc := &recordingDocument{}
	r := Range{Year: 2020, FromWeek: 53, NumberOfWeeks: 1, BreakAfter: 0}

	require.NoError(t, Run(r, englishProfile(t), doc, nil))
	require.Len(t, doc.blocks, 2)

	assert.Equal(t, calendar.WeekNumber{Year: 2020, Week: 53}, doc.blocks[0].Week)
	assert.Equal(t, "Week 53 (2020)", doc.blocks[0].HeaderText,
		"week 53 is annotated with the starting year")
	assert.Equal(t, "Week 1 (2021)", doc.blocks[1].HeaderText)
}

func TestRunProgressCallback(t *testing.T) {
	doc := &recordingDocument{}
	r := Range{Year: 2026, FromWeek: 1, NumberOfWeeks: 2, BreakAfter: 3}

	var seen []int
	total := 0
	err := Run(r, englishProfile(t), doc, func(emitted, runTotal int, block WeekBlock) {
		seen = append(seen, emitted)
		total = runTotal
	})

	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, seen)
	assert.Equal(t, 3, total)
}

func TestRunPropagatesDocumentErrors(t *testing.T) {
	doc := &recordingDocument{failAdd: true}
	r := Range{Year: 2026, FromWeek: 1, NumberOfWeeks: 3, BreakAfter: 3}

	err := Run(r, englishProfile(t), doc, nil)
	assert.EqualError(t, err, "add week failed")
}

func TestRunInvalidYear(t *testing.T) {
	doc := &recordingDocument{}
	r := Range{Year: 0, FromWeek: 1, NumberOfWeeks: 1, BreakAfter: 3}

	err := Run(r, englishProfile(t), doc, nil)
	assert.Error(t, err)
	assert.Empty(t, doc.events)
}

func TestBuildWeekBlockSubtitleCases(t *testing.T) {
	profile := englishProfile(t)

	tests := []struct {
		name     string
		start    time.Time
		expected string
	}{
		{
			name:     "same month",
			start:    time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC),
			expected: "March 9 - 13, 2026",
		},
		{
			name:     "different month",
			start:    time.Date(2026, time.June, 29, 0, 0, 0, 0, time.UTC),
			expected: "June 29 - July 3, 2026",
		},
		{
			name:     "different year",
			start:    time.Date(2025, time.December, 29, 0, 0, 0, 0, time.UTC),
			expected: "December 29, 2025 - January 2, 2026",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			end := tt.start.AddDate(0, 0, 4)
			block := BuildWeekBlock(profile, calendar.ISOWeek(tt.start), tt.start, end, 2)
			assert.Equal(t, tt.expected, block.SubtitleText)
		})
	}
}

func TestBuildWeekBlockDayLines(t *testing.T) {
	de, err := locale.Resolve("de")
	require.NoError(t, err)

	start := time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC)
	block := BuildWeekBlock(de, calendar.WeekNumber{Year: 2026, Week: 11}, start, start.AddDate(0, 0, 4), 1)

	assert.Equal(t, []string{"Mo\t:", "Di\t:", "Mi\t:", "Do\t:", "Fr\t:"}, block.DayLines)
	assert.Equal(t, "KW 11 (2026)", block.HeaderText)
}

func TestHeaderTextMidGroupHasNoYear(t *testing.T) {
	profile := englishProfile(t)
	start := time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC)

	block := BuildWeekBlock(profile, calendar.WeekNumber{Year: 2026, Week: 11}, start, start.AddDate(0, 0, 4), 2)
	assert.Equal(t, "Week 11", block.HeaderText)
}
