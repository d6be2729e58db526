// Package calendar implements ISO-8601 week arithmetic: mapping (year, week)
// to the Monday that starts the week, and dates back to their ISO week number
// under the "week 1 contains the first Thursday" rule.
package calendar

import (
	"fmt"
	"time"

	"weekplan/internal/shared/errors"
)

// WeekNumber identifies an ISO week within a year.
type WeekNumber struct {
	Year int
	Week int
}

func (w WeekNumber) String() string {
	return fmt.Sprintf("%d-W%02d", w.Year, w.Week)
}

// WeekStart returns the Monday starting ISO week isoWeek of year.
// January 4th always falls in week 1, so the Monday of its week anchors the
// year; isoWeek is not clamped at the top, a value past the year's last week
// yields a Monday in the following year and callers re-derive the actual
// week number from the result.
func WeekStart(year, isoWeek int) (time.Time, error) {
	if year < 1 || year > 9999 {
		return time.Time{}, errors.NewInvalidDateError("year out of range", fmt.Sprintf("year %d", year))
	}
	if isoWeek < 1 {
		return time.Time{}, errors.NewInvalidDateError("week must be positive", fmt.Sprintf("week %d", isoWeek))
	}

	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	week1Monday := StartOfWeek(jan4)
	return week1Monday.AddDate(0, 0, (isoWeek-1)*7), nil
}

// StartOfWeek returns the Monday of the week containing date, truncated to
// midnight UTC.
func StartOfWeek(date time.Time) time.Time {
	date = midnight(date)
	return date.AddDate(0, 0, -(isoWeekday(date) - 1))
}

// ISOWeekNumber returns the ISO week number of date. Weeks start Monday and
// week 1 is the week containing the year's first Thursday; the last days of
// December may therefore belong to week 1 of the following year. A raw result
// of 53 is re-checked against the next January 1st: when that day opens week 1
// and date lies within three days of it, the date is part of that week and 1
// is returned instead.
func ISOWeekNumber(date time.Time) int {
	date = midnight(date)

	week := rawWeekOfYear(date)
	if week == 53 {
		nextJan1 := time.Date(date.Year()+1, time.January, 1, 0, 0, 0, 0, time.UTC)
		if isoWeekday(nextJan1) <= 4 && !date.Before(nextJan1.AddDate(0, 0, -3)) {
			week = 1
		}
	}
	return week
}

// ISOWeek returns the ISO week containing date together with its week-based
// year. The week-based year differs from the calendar year at the boundary:
// late December days in week 1 belong to the next year, early January days in
// week 52 or 53 to the previous one.
func ISOWeek(date time.Time) WeekNumber {
	week := ISOWeekNumber(date)
	year := date.Year()
	switch {
	case week == 1 && date.Month() == time.December:
		year++
	case week >= 52 && date.Month() == time.January:
		year--
	}
	return WeekNumber{Year: year, Week: week}
}

// rawWeekOfYear counts weeks from the Monday of week 1. Dates before week 1
// of their calendar year fall into the final week of the previous year.
func rawWeekOfYear(date time.Time) int {
	week1Monday := StartOfWeek(time.Date(date.Year(), time.January, 4, 0, 0, 0, 0, time.UTC))
	if date.Before(week1Monday) {
		week1Monday = StartOfWeek(time.Date(date.Year()-1, time.January, 4, 0, 0, 0, 0, time.UTC))
	}
	days := int(date.Sub(week1Monday) / (24 * time.Hour))
	return days/7 + 1
}

// isoWeekday maps Monday..Sunday to 1..7.
func isoWeekday(date time.Time) int {
	wd := int(date.Weekday())
	if wd == 0 {
		wd = 7
	}
	return wd
}

func midnight(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
