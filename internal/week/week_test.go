package week

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"
)

// Wednesday, June 12 2024: ISO week 24.
var wednesday = time.Date(2024, time.June, 12, 15, 0, 0, 0, time.Local)

func TestResolveRelativeTokens(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  Week
	}{
		{name: "empty token uses now", token: "", want: Week{2024, 24}},
		{name: "this", token: "this", want: Week{2024, 24}},
		{name: "today", token: "today", want: Week{2024, 24}},
		{name: "last is seven days back", token: "last", want: Week{2024, 23}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.token, wednesday)
			if err != nil {
				t.Fatalf("Resolve(%q) returned error: %v", tt.token, err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%q) = %+v, want %+v", tt.token, got, tt.want)
			}
		})
	}
}

// "last" evaluated during the first ISO week of a year lands in week
// 52 or 53 of the previous year.
func TestResolveLastAcrossYearBoundary(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want Week
	}{
		{
			name: "into week 52",
			// Jan 2 2025 (Thu) is in ISO week 1; seven days back is Dec 26 2024.
			now:  time.Date(2025, time.January, 2, 9, 0, 0, 0, time.Local),
			want: Week{2024, 52},
		},
		{
			name: "into week 53",
			// Jan 7 2021 (Thu) is in ISO week 1; seven days back is Dec 31 2020.
			now:  time.Date(2021, time.January, 7, 9, 0, 0, 0, time.Local),
			want: Week{2020, 53},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve("last", tt.now)
			if err != nil {
				t.Fatalf("Resolve(\"last\") returned error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Resolve(\"last\") = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestResolveDateFormats(t *testing.T) {
	// All layouts spell March 7 2024: ISO week 10.
	tokens := []string{
		"2024-03-07",
		"2024/03/07",
		"07-03-2024",
		"07/03/2024",
		"24-03-07",
		"24/03/07",
	}
	want := Week{2024, 10}

	for _, token := range tokens {
		got, err := Resolve(token, wednesday)
		if err != nil {
			t.Fatalf("Resolve(%q) returned error: %v", token, err)
		}
		if got != want {
			t.Errorf("Resolve(%q) = %+v, want %+v", token, got, want)
		}
	}
}

func TestResolveParseError(t *testing.T) {
	tokens := []string{"tomorrow", "2024-13-40", "not-a-date", "2024"}

	for _, token := range tokens {
		_, err := Resolve(token, wednesday)
		if err == nil {
			t.Errorf("Resolve(%q) expected error, got nil", token)
			continue
		}
		perr, ok := err.(*ParseError)
		if !ok {
			t.Errorf("Resolve(%q) error type = %T, want *ParseError", token, err)
			continue
		}
		if perr.Token != token {
			t.Errorf("ParseError.Token = %q, want %q", perr.Token, token)
		}
	}
}

func TestResolveIdempotent(t *testing.T) {
	first, err := Resolve("2024-01-01", wednesday)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	second, err := Resolve("2024-01-01", wednesday)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if first != second {
		t.Errorf("Resolve not idempotent: %+v vs %+v", first, second)
	}
	if p1, p2 := first.Path("/notes"), second.Path("/notes"); p1 != p2 {
		t.Errorf("Path not idempotent: %q vs %q", p1, p2)
	}
}

// The reported year is the calendar year of the resolved date, not the
// ISO week-year. Dates in the first or last days of a year can pair a
// calendar year with a week number belonging to the adjacent ISO year;
// that pairing is intentional and pinned here.
func TestResolveYearBoundary(t *testing.T) {
	tests := []struct {
		token string
		want  Week
	}{
		// Dec 31 2024 (Tue) falls in ISO week 1 of 2025.
		{token: "2024-12-31", want: Week{2024, 1}},
		// Jan 1 2027 (Fri) falls in ISO week 53 of 2026.
		{token: "2027-01-01", want: Week{2027, 53}},
		// Jan 2 2022 (Sun) falls in ISO week 52 of 2021.
		{token: "2022-01-02", want: Week{2022, 52}},
	}

	for _, tt := range tests {
		got, err := Resolve(tt.token, wednesday)
		if err != nil {
			t.Fatalf("Resolve(%q) returned error: %v", tt.token, err)
		}
		if got != tt.want {
			t.Errorf("Resolve(%q) = %+v, want %+v", tt.token, got, tt.want)
		}
	}
}

func TestJanuaryFourthAlwaysWeekOne(t *testing.T) {
	for year := 2000; year <= 2035; year++ {
		token := fmt.Sprintf("%d-01-04", year)
		got, err := Resolve(token, wednesday)
		if err != nil {
			t.Fatalf("Resolve(%q) returned error: %v", token, err)
		}
		if got.Week != 1 {
			t.Errorf("Resolve(%q).Week = %d, want 1", token, got.Week)
		}
		if got.Year != year {
			t.Errorf("Resolve(%q).Year = %d, want %d", token, got.Year, year)
		}
	}
}

func TestRangeWorkWeek(t *testing.T) {
	for year := 2015; year <= 2030; year++ {
		for wk := 1; wk <= 52; wk++ {
			w := Week{Year: year, Week: wk}
			start, end := w.Range(WorkDays)

			if start.Weekday() != time.Monday {
				t.Errorf("%d W%d: start %v is %v, want Monday", year, wk, start, start.Weekday())
			}
			if end.Weekday() != time.Friday {
				t.Errorf("%d W%d: end %v is %v, want Friday", year, wk, end, end.Weekday())
			}
			if !end.Equal(start.AddDate(0, 0, 4)) {
				t.Errorf("%d W%d: end %v is not 4 days after start %v", year, wk, end, start)
			}
		}
	}
}

func TestRangeFullWeek(t *testing.T) {
	w := Week{Year: 2024, Week: 24}
	start, end := w.Range(7)
	if start.Weekday() != time.Monday {
		t.Errorf("start is %v, want Monday", start.Weekday())
	}
	if end.Weekday() != time.Sunday {
		t.Errorf("end is %v, want Sunday", end.Weekday())
	}
}

func TestPathScenario(t *testing.T) {
	// Jan 1 2024 is a Monday, ISO week 1: the note is 2024/01-01.md.
	w, err := Resolve("2024-01-01", wednesday)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	got := w.Path("/notes")
	want := filepath.Join("/notes", "2024", "01-01.md")
	if got != want {
		t.Errorf("Path = %q, want %q", got, want)
	}
}

func TestPathExpandsEnv(t *testing.T) {
	t.Setenv("WEEKNOTE_TEST_BASE", "/tmp/weeknote-base")

	w := Week{Year: 2024, Week: 1}
	got := w.Path("$WEEKNOTE_TEST_BASE")
	want := filepath.Join("/tmp/weeknote-base", "2024", "01-01.md")
	if got != want {
		t.Errorf("Path = %q, want %q", got, want)
	}
}

func TestFilePath(t *testing.T) {
	got, err := FilePath("/notes", "2024-06-12", wednesday)
	if err != nil {
		t.Fatalf("FilePath returned error: %v", err)
	}
	// Week 24 of 2024 starts Monday June 10.
	want := filepath.Join("/notes", "2024", "06-10.md")
	if got != want {
		t.Errorf("FilePath = %q, want %q", got, want)
	}

	if _, err := FilePath("/notes", "junk", wednesday); err == nil {
		t.Error("FilePath with bad token expected error, got nil")
	}
}

func TestPrevious(t *testing.T) {
	tests := []struct {
		name string
		w    Week
		want Week
	}{
		{name: "mid-year", w: Week{2024, 24}, want: Week{2024, 23}},
		// Week 1 of 2024 starts Jan 1; the prior Monday is Dec 25 2023, week 52.
		{name: "wraps to previous year", w: Week{2024, 1}, want: Week{2023, 52}},
		// Week 1 of 2021 starts Jan 4; the prior Monday is Dec 28 2020, week 53.
		{name: "wraps to week 53", w: Week{2021, 1}, want: Week{2020, 53}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.w.Previous(); got != tt.want {
				t.Errorf("Previous(%+v) = %+v, want %+v", tt.w, got, tt.want)
			}
		})
	}
}
