// Package locale holds the static localization table for planner output:
// day-name abbreviations, week-label prefixes and date-range phrasing per
// language. Profiles are declared in an embedded YAML table and never change
// at runtime; supporting a new language is a data edit.
package locale

import (
	"strconv"
	"strings"
	"time"
)

// RangeKind selects which pattern pair phrases a Monday..Friday date range.
type RangeKind int

const (
	SameMonth RangeKind = iota
	DifferentMonth
	DifferentYear
)

// PatternPair holds the from/to date patterns of one range case. Patterns use
// {day}, {month} and {year} placeholders; {month} expands to the localized
// month name.
type PatternPair struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// Profile is the immutable localization data of one language.
type Profile struct {
	Tag            string      `yaml:"-"`
	DayNames       []string    `yaml:"day_names"`
	MonthNames     []string    `yaml:"month_names"`
	WeekPrefix     string      `yaml:"week_prefix"`
	RangeTemplate  string      `yaml:"range_template"`
	SameMonth      PatternPair `yaml:"same_month"`
	DifferentMonth PatternPair `yaml:"different_month"`
	DifferentYear  PatternPair `yaml:"different_year"`
}

// Patterns returns the from/to pattern pair for kind.
func (p Profile) Patterns(kind RangeKind) PatternPair {
	switch kind {
	case DifferentMonth:
		return p.DifferentMonth
	case DifferentYear:
		return p.DifferentYear
	default:
		return p.SameMonth
	}
}

// Expand renders pattern for date, substituting the placeholders with the
// date's day of month, localized month name and year.
func (p Profile) Expand(pattern string, date time.Time) string {
	r := strings.NewReplacer(
		"{day}", strconv.Itoa(date.Day()),
		"{month}", p.MonthNames[int(date.Month())-1],
		"{year}", strconv.Itoa(date.Year()),
	)
	return r.Replace(pattern)
}
