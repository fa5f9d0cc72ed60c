// Package week maps date tokens to ISO calendar weeks and weekly note paths.
package week

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// WorkDays is the Monday-Friday span used for filenames and note headers.
const WorkDays = 5

// Accepted date layouts, tried in order. Two-digit-year layouts come
// last and are year-first so they cannot shadow the day-first forms.
var layouts = []string{
	"2006-01-02",
	"2006/01/02",
	"02-01-2006",
	"02/01/2006",
	"06-01-02",
	"06/01/02",
}

// Week identifies one calendar week. Year is the calendar year of the
// date the week was resolved from, not the ISO week-year; for dates in
// the first or last days of a year the two can differ, and that
// behavior is kept as-is.
type Week struct {
	Year int
	Week int
}

// ParseError reports a date token that matched none of the accepted layouts.
type ParseError struct {
	Token string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unable to parse date '%s'", e.Token)
}

// Resolve maps a date token to its calendar week. An empty token,
// "this" or "today" resolve relative to now; "last" resolves to seven
// days before now. Anything else must parse as one of the accepted
// date layouts.
func Resolve(token string, now time.Time) (Week, error) {
	date, err := resolveDate(token, now)
	if err != nil {
		return Week{}, err
	}
	_, wk := date.ISOWeek()
	return Week{Year: date.Year(), Week: wk}, nil
}

func resolveDate(token string, now time.Time) (time.Time, error) {
	switch token {
	case "", "this", "today":
		return now, nil
	case "last":
		return now.AddDate(0, 0, -7), nil
	}
	for _, layout := range layouts {
		if d, err := time.ParseInLocation(layout, token, time.Local); err == nil {
			return d, nil
		}
	}
	return time.Time{}, &ParseError{Token: token}
}

// Range returns the first and last day of the week, spanning the given
// number of days from Monday. January 4th is always in week 1, so the
// Monday of week 1 is found by rewinding Jan 4 to the start of its ISO
// week; later weeks advance in whole-week steps from there.
func (w Week) Range(days int) (start, end time.Time) {
	jan4 := time.Date(w.Year, time.January, 4, 0, 0, 0, 0, time.Local)
	start = jan4.AddDate(0, 0, -(isoWeekday(jan4) - 1))
	start = start.AddDate(0, 0, (w.Week-1)*7)
	end = start.AddDate(0, 0, days-1)
	return start, end
}

// Start returns the Monday of the work-week.
func (w Week) Start() time.Time {
	start, _ := w.Range(WorkDays)
	return start
}

// End returns the Friday of the work-week.
func (w Week) End() time.Time {
	_, end := w.Range(WorkDays)
	return end
}

// Previous returns the week containing the day seven days before this
// week's Monday.
func (w Week) Previous() Week {
	d := w.Start().AddDate(0, 0, -7)
	_, wk := d.ISOWeek()
	return Week{Year: d.Year(), Week: wk}
}

// Path returns the note file path for the week under baseDir:
// <baseDir>/<year>/<MM-DD of the work-week's Monday>.md. Environment
// variables in baseDir are expanded.
func (w Week) Path(baseDir string) string {
	start := w.Start()
	dir := filepath.Join(os.ExpandEnv(baseDir), strconv.Itoa(w.Year))
	return filepath.Join(dir, start.Format("01-02")+".md")
}

// FilePath resolves a token and derives its note path in one step.
func FilePath(baseDir, token string, now time.Time) (string, error) {
	w, err := Resolve(token, now)
	if err != nil {
		return "", err
	}
	return w.Path(baseDir), nil
}

// isoWeekday returns the ISO weekday number, 1=Monday through 7=Sunday.
func isoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}
