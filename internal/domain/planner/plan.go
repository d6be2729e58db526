package planner

import (
	"weekplan/internal/domain/calendar"
	"weekplan/internal/domain/locale"
)

// Range describes one generation run over consecutive ISO weeks.
type Range struct {
	Year          int
	FromWeek      int
	NumberOfWeeks int
	// BreakAfter inserts a section break after every BreakAfter-th week of a
	// group. 0 disables periodic breaks; blocks are then separated by a small
	// vertical spacing instead.
	BreakAfter int
}

// BlockCount returns how many week blocks a run over r emits.
//
// The upper bound is inclusive: a run over NumberOfWeeks emits
// NumberOfWeeks+1 blocks. The original tool iterated one week past the
// requested count and years of printed planners rely on the trailing week,
// so the off-by-one is kept rather than fixed.
func (r Range) BlockCount() int {
	return r.NumberOfWeeks + 1
}

// WeekFunc observes one emitted block: its 1-based index and the run total.
type WeekFunc func(emitted, total int, block WeekBlock)

// Run drives doc through the week sequence of r.
//
// Per week it computes the Monday and Friday, re-derives the actual ISO week
// number (the requested index may have run past the year end), and places
// breaks: a section break before any week whose Friday falls in a later year
// than its Monday (resetting the grouping cursor, never on the first block or
// when the cursor already sits at 1), and a section break after every
// BreakAfter-th week of a group except the final block of the run. The
// year-boundary break wins ties by resetting the cursor, so no week is ever
// broken twice.
//
// onWeek, if non-nil, is called after each block lands in doc.
func Run(r Range, profile locale.Profile, doc Document, onWeek WeekFunc) error {
	lastWeek := r.FromWeek + r.NumberOfWeeks // inclusive, see BlockCount
	total := r.BlockCount()

	cursor := 0
	emitted := 0
	for w := r.FromWeek; w <= lastWeek; w++ {
		start, err := calendar.WeekStart(r.Year, w)
		if err != nil {
			return err
		}
		end := start.AddDate(0, 0, 4)
		actual := calendar.ISOWeek(start)

		cursor++

		precedingBreak := BreakNone
		if emitted > 0 && cursor != 1 && end.Year() > start.Year() {
			precedingBreak = BreakSectionNewPage
			cursor = 1
		}

		block := BuildWeekBlock(profile, actual, start, end, cursor)
		block.PrecedingBreak = precedingBreak

		switch {
		case precedingBreak == BreakSectionNewPage:
			if err := doc.InsertSectionBreak(); err != nil {
				return err
			}
		case emitted > 0 && r.BreakAfter == 0:
			if err := doc.AddSpacing(); err != nil {
				return err
			}
		}

		if err := doc.AddWeek(block); err != nil {
			return err
		}
		emitted++

		if r.BreakAfter > 0 && cursor%r.BreakAfter == 0 && w != lastWeek {
			if err := doc.InsertSectionBreak(); err != nil {
				return err
			}
			// the next week opens a new group
			cursor = 0
		}

		if onWeek != nil {
			onWeek(emitted, total, block)
		}
	}
	return nil
}
