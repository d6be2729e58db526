package planner

import (
	"fmt"
	"time"

	"weekplan/internal/domain/calendar"
	"weekplan/internal/domain/locale"
)

// BuildWeekBlock assembles the textual content of one week. cursorPos is the
// week's 1-based position within its current break group; position 1 always
// carries a year annotation in the header.
func BuildWeekBlock(profile locale.Profile, week calendar.WeekNumber, start, end time.Time, cursorPos int) WeekBlock {
	return WeekBlock{
		Week:         week,
		Start:        start,
		End:          end,
		HeaderText:   headerText(profile, week.Week, start, end, cursorPos),
		SubtitleText: subtitleText(profile, start, end),
		DayLines:     dayLines(profile),
	}
}

// headerText words the week label. The first week of a group always names a
// year; weeks 52/53 flag the upcoming rollover with the starting year and
// weeks 1/2 flag the just-occurred rollover with the ending year. Weeks 1
// straddling the boundary take the Friday's year, since that is the year the
// ISO week belongs to.
func headerText(profile locale.Profile, actualWeek int, start, end time.Time, cursorPos int) string {
	switch {
	case cursorPos == 1:
		year := start.Year()
		if actualWeek == 1 {
			year = end.Year()
		}
		return fmt.Sprintf("%s%d (%d)", profile.WeekPrefix, actualWeek, year)
	case actualWeek == 52 || actualWeek == 53:
		return fmt.Sprintf("%s%d (%d)", profile.WeekPrefix, actualWeek, start.Year())
	case actualWeek == 1 || actualWeek == 2:
		return fmt.Sprintf("%s%d (%d)", profile.WeekPrefix, actualWeek, end.Year())
	default:
		return fmt.Sprintf("%s%d", profile.WeekPrefix, actualWeek)
	}
}

// subtitleText phrases the Monday..Friday range, picking the pattern pair for
// how much of the date the two ends share.
func subtitleText(profile locale.Profile, start, end time.Time) string {
	kind := locale.SameMonth
	switch {
	case start.Year() != end.Year():
		kind = locale.DifferentYear
	case start.Month() != end.Month():
		kind = locale.DifferentMonth
	}

	pair := profile.Patterns(kind)
	return fmt.Sprintf(profile.RangeTemplate, profile.Expand(pair.From, start), profile.Expand(pair.To, end))
}

// dayLines emits one blank planning line per localized workday name.
func dayLines(profile locale.Profile) []string {
	lines := make([]string, len(profile.DayNames))
	for i, name := range profile.DayNames {
		lines[i] = name + "\t:"
	}
	return lines
}
